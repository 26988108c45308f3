package input

import (
	"testing"

	"go.uber.org/zap"

	"github.com/ctvaccess/captvty-bridge/internal/ax"
	"github.com/ctvaccess/captvty-bridge/internal/ax/axtest"
	"github.com/ctvaccess/captvty-bridge/internal/platform"
	"github.com/ctvaccess/captvty-bridge/internal/platform/platformtest"
)

func TestClickElement_CenterPlusOffsets(t *testing.T) {
	fake := &platformtest.Inputter{}
	syn := New(fake, zap.NewNop())

	el := axtest.New("chan", ax.RoleOther, ax.Rect{Left: 100, Top: 200, Width: 40, Height: 20})
	if err := syn.ClickElement(el, 162, -20, platform.MouseLeft); err != nil {
		t.Fatalf("ClickElement: %v", err)
	}
	// Center (120, 210) plus offsets (162, -20).
	want := platformtest.Event("click 282,190 left")
	if len(fake.Events) != 1 || fake.Events[0] != want {
		t.Fatalf("events = %v, want [%s]", fake.Events, want)
	}
}

func TestClickElement_Stale(t *testing.T) {
	fake := &platformtest.Inputter{}
	syn := New(fake, zap.NewNop())
	el := axtest.New("gone", ax.RoleOther, ax.Rect{})
	el.Stale = true
	if err := syn.ClickElement(el, 0, 0, platform.MouseLeft); err == nil {
		t.Fatal("expected error for stale element")
	}
	if len(fake.Events) != 0 {
		t.Fatalf("no input should be issued for a stale element, got %v", fake.Events)
	}
}

func TestHoverElement_MovesWithoutClicking(t *testing.T) {
	fake := &platformtest.Inputter{}
	syn := New(fake, zap.NewNop())

	el := axtest.New("row", ax.RoleOther, ax.Rect{Left: 400, Top: 300, Width: 400, Height: 40})
	if err := syn.HoverElement(el, -150, 0); err != nil {
		t.Fatalf("HoverElement: %v", err)
	}
	// Center (600, 320) plus offsets (-150, 0), and no button event.
	want := platformtest.Event("move 450,320")
	if len(fake.Events) != 1 || fake.Events[0] != want {
		t.Fatalf("events = %v, want [%s]", fake.Events, want)
	}
}

func TestScrollAt_SignPreserved(t *testing.T) {
	fake := &platformtest.Inputter{}
	syn := New(fake, zap.NewNop())
	el := axtest.New("list", ax.RoleScrollPane, ax.Rect{Left: 0, Top: 0, Width: 200, Height: 400})

	if err := syn.ScrollAt(el, -120, 0, 0); err != nil {
		t.Fatalf("ScrollAt: %v", err)
	}
	want := platformtest.Event("scroll 100,200 -120")
	if fake.Events[len(fake.Events)-1] != want {
		t.Fatalf("got %v, want %s", fake.Events, want)
	}
}

func TestTypeText_OrderPreserved(t *testing.T) {
	fake := &platformtest.Inputter{}
	syn := New(fake, zap.NewNop())
	if err := syn.TypeText([]string{"2", "0", "2", "4"}); err != nil {
		t.Fatalf("TypeText: %v", err)
	}
	want := []platformtest.Event{"key 2", "key 0", "key 2", "key 4"}
	if len(fake.Events) != len(want) {
		t.Fatalf("events = %v", fake.Events)
	}
	for i := range want {
		if fake.Events[i] != want[i] {
			t.Fatalf("event %d = %s, want %s", i, fake.Events[i], want[i])
		}
	}
}

func TestTypeString_SplitsRunes(t *testing.T) {
	fake := &platformtest.Inputter{}
	syn := New(fake, zap.NewNop())
	if err := syn.TypeString("07"); err != nil {
		t.Fatalf("TypeString: %v", err)
	}
	if len(fake.Events) != 2 || fake.Events[0] != "key 0" || fake.Events[1] != "key 7" {
		t.Fatalf("events = %v", fake.Events)
	}
}
