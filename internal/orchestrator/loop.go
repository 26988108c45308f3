package orchestrator

import (
	"context"
	"sync"
	"time"
)

// Loop is the cooperative scheduler the session runs its automation steps on.
// All callbacks execute on a single goroutine in submission order, so steps
// never interleave; waits are expressed as deferred callbacks instead of
// blocking the caller's goroutine.
type Loop struct {
	tasks chan func()

	mu     sync.Mutex
	closed bool
	quit   chan struct{}
	wg     sync.WaitGroup
}

// NewLoop starts the run goroutine.
func NewLoop() *Loop {
	l := &Loop{
		tasks: make(chan func(), 64),
		quit:  make(chan struct{}),
	}
	l.wg.Add(1)
	go l.run()
	return l
}

func (l *Loop) run() {
	defer l.wg.Done()
	for {
		select {
		case fn := <-l.tasks:
			fn()
		case <-l.quit:
			// Drain what was already queued.
			for {
				select {
				case fn := <-l.tasks:
					fn()
				default:
					return
				}
			}
		}
	}
}

// CallSoon enqueues fn onto the loop. fn is skipped if ctx is done by the time
// it would run. Returns false when the loop is shut down.
func (l *Loop) CallSoon(ctx context.Context, fn func()) bool {
	wrapped := func() {
		if ctx.Err() != nil {
			return
		}
		fn()
	}
	select {
	case <-l.quit:
		return false
	case <-ctx.Done():
		return false
	case l.tasks <- wrapped:
		return true
	}
}

// CallLater schedules fn onto the loop after d. Cancelling ctx before the
// timer fires discards fn.
func (l *Loop) CallLater(ctx context.Context, d time.Duration, fn func()) {
	timer := time.NewTimer(d)
	l.wg.Add(1)
	go func() {
		defer l.wg.Done()
		defer timer.Stop()
		select {
		case <-timer.C:
			l.CallSoon(ctx, fn)
		case <-ctx.Done():
		case <-l.quit:
		}
	}()
}

// Sleep blocks the caller for d while keeping the wait cancellable; the
// wake-up itself passes through the loop so it stays ordered with other
// scheduled work.
func (l *Loop) Sleep(ctx context.Context, d time.Duration) error {
	done := make(chan struct{})
	l.CallLater(ctx, d, func() { close(done) })
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	case <-l.quit:
		return nil
	}
}

// Close stops the loop after the queued tasks drain. Pending timers are
// discarded.
func (l *Loop) Close() {
	l.mu.Lock()
	if !l.closed {
		l.closed = true
		close(l.quit)
	}
	l.mu.Unlock()
	l.wg.Wait()
}
