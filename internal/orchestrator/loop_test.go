package orchestrator

import (
	"context"
	"testing"
	"time"
)

func TestCallSoonRunsInOrder(t *testing.T) {
	l := NewLoop()
	defer l.Close()

	var got []int
	done := make(chan struct{})
	ctx := context.Background()
	for i := 1; i <= 3; i++ {
		i := i
		l.CallSoon(ctx, func() { got = append(got, i) })
	}
	l.CallSoon(ctx, func() { close(done) })

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("loop did not run queued tasks")
	}
	if len(got) != 3 || got[0] != 1 || got[1] != 2 || got[2] != 3 {
		t.Fatalf("got = %v, want [1 2 3]", got)
	}
}

func TestCallLaterCancelledContext(t *testing.T) {
	l := NewLoop()
	defer l.Close()

	ctx, cancel := context.WithCancel(context.Background())
	ran := make(chan struct{}, 1)
	l.CallLater(ctx, 10*time.Millisecond, func() { ran <- struct{}{} })
	cancel()

	select {
	case <-ran:
		t.Fatal("callback ran despite cancelled context")
	case <-time.After(50 * time.Millisecond):
	}
}

func TestSleepReturnsOnCancel(t *testing.T) {
	l := NewLoop()
	defer l.Close()

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(5 * time.Millisecond)
		cancel()
	}()
	if err := l.Sleep(ctx, time.Minute); err != context.Canceled {
		t.Fatalf("Sleep err = %v, want context.Canceled", err)
	}
}

func TestSleepElapses(t *testing.T) {
	l := NewLoop()
	defer l.Close()
	if err := l.Sleep(context.Background(), time.Millisecond); err != nil {
		t.Fatalf("Sleep: %v", err)
	}
}

func TestCloseDrainsQueued(t *testing.T) {
	l := NewLoop()
	ran := false
	l.CallSoon(context.Background(), func() { ran = true })
	l.Close()
	if !ran {
		t.Fatal("queued task dropped on Close")
	}
}

func TestCallSoonAfterClose(t *testing.T) {
	l := NewLoop()
	l.Close()
	if l.CallSoon(context.Background(), func() {}) {
		t.Fatal("CallSoon should report failure after Close")
	}
}
