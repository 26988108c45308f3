// Package dialogtest provides scripted dialog fakes for tests.
package dialogtest

import (
	"context"
	"sync"

	"github.com/ctvaccess/captvty-bridge/internal/dialog"
	"github.com/ctvaccess/captvty-bridge/internal/schedule"
)

// Choice scripts one Pick call.
type Choice struct {
	Index int
	Err   error
}

// Picker replays scripted choices and records everything shown to the user.
type Picker struct {
	mu       sync.Mutex
	Script   []Choice
	call     int
	Titles   []string
	Shown    [][]string
	Appended []string
}

var _ dialog.Picker = (*Picker)(nil)

func (p *Picker) Pick(ctx context.Context, title string, items []string) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.Titles = append(p.Titles, title)
	p.Shown = append(p.Shown, append([]string(nil), items...))
	if p.call >= len(p.Script) {
		return 0, dialog.ErrCancelled
	}
	c := p.Script[p.call]
	p.call++
	return c.Index, c.Err
}

func (p *Picker) Append(item string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.Appended = append(p.Appended, item)
}

// AppendedItems returns a copy of everything passed to Append.
func (p *Picker) AppendedItems() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]string(nil), p.Appended...)
}

// RangePicker returns a fixed window, or Err when set.
type RangePicker struct {
	Window schedule.Window
	Err    error
	Titles []string
}

var _ dialog.RangePicker = (*RangePicker)(nil)

func (r *RangePicker) PickRange(ctx context.Context, title string, initial schedule.Window) (schedule.Window, error) {
	if err := ctx.Err(); err != nil {
		return schedule.Window{}, err
	}
	r.Titles = append(r.Titles, title)
	if r.Err != nil {
		return schedule.Window{}, r.Err
	}
	return r.Window, nil
}
