package dialog

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ctvaccess/captvty-bridge/internal/schedule"
)

func key(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func TestListModelSelection(t *testing.T) {
	m := listModel{title: "Chaînes", items: []string{"TF1", "France 2", "Arte"}, chosen: -1}

	next, _ := m.Update(key("down"))
	next, _ = next.(listModel).Update(key("down"))
	next, _ = next.(listModel).Update(key("enter"))

	final := next.(listModel)
	if final.chosen != 2 {
		t.Fatalf("chosen = %d, want 2", final.chosen)
	}
	if final.cancelled {
		t.Fatal("selection should not be a cancellation")
	}
}

func TestListModelCursorBounds(t *testing.T) {
	m := listModel{items: []string{"only"}, chosen: -1}
	next, _ := m.Update(key("up"))
	next, _ = next.(listModel).Update(key("down"))
	if got := next.(listModel).cursor; got != 0 {
		t.Fatalf("cursor = %d, want 0", got)
	}
}

func TestListModelCancel(t *testing.T) {
	m := listModel{items: []string{"TF1"}, chosen: -1}
	next, _ := m.Update(key("esc"))
	if !next.(listModel).cancelled {
		t.Fatal("esc should cancel")
	}
}

func TestListModelAppendWhileOpen(t *testing.T) {
	m := listModel{items: []string{"TF1"}, chosen: -1}
	next, _ := m.Update(appendMsg("France 2"))
	final := next.(listModel)
	if len(final.items) != 2 || final.items[1] != "France 2" {
		t.Fatalf("items = %v", final.items)
	}
	if !strings.Contains(final.View(), "France 2") {
		t.Fatal("appended item missing from view")
	}
}

func TestListModelEnterOnEmptyList(t *testing.T) {
	m := listModel{chosen: -1}
	next, cmd := m.Update(key("enter"))
	if cmd != nil {
		t.Fatal("enter on empty list should not quit")
	}
	if next.(listModel).chosen != -1 {
		t.Fatal("empty list cannot yield a choice")
	}
}

func TestAppendAfterClose(t *testing.T) {
	p := NewListPicker()
	p.Append("ignored") // must not panic with no open dialog
	p.Close()
}

func TestRangeModelParse(t *testing.T) {
	m := newRangeModel("Enregistrement", schedule.Window{})
	m.inputs[0].SetValue("24/12/2026 20:50")
	m.inputs[1].SetValue("24/12/2026 22:15")

	win, err := m.parse()
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if win.Start.Hour() != 20 || win.Start.Minute() != 50 {
		t.Fatalf("start = %v", win.Start)
	}
	if win.End.Day() != 24 || win.End.Hour() != 22 {
		t.Fatalf("end = %v", win.End)
	}
}

func TestRangeModelRejectsGarbage(t *testing.T) {
	m := newRangeModel("Enregistrement", schedule.Window{})
	m.inputs[0].SetValue("not a date")
	if _, err := m.parse(); err == nil {
		t.Fatal("garbage start should fail")
	}
}

func TestClampWindowRaisesEnd(t *testing.T) {
	start := time.Date(2026, 6, 1, 21, 0, 0, 0, time.Local)
	end := start.Add(-time.Hour)
	w := ClampWindow(start, end)
	if !w.End.Equal(start) {
		t.Fatalf("End = %v, want clamped to %v", w.End, start)
	}
}

func TestRangeModelTabSwitchesFocus(t *testing.T) {
	m := newRangeModel("Enregistrement", schedule.Window{})
	next, _ := m.Update(key("tab"))
	final := next.(rangeModel)
	if final.focused != 1 {
		t.Fatalf("focused = %d, want 1", final.focused)
	}
	if !final.inputs[1].Focused() {
		t.Fatal("second field should have focus")
	}
}
