package model

import (
	"testing"

	"github.com/ctvaccess/captvty-bridge/internal/ax"
	"github.com/ctvaccess/captvty-bridge/internal/ax/axtest"
)

func sampleTree() *axtest.Node {
	win := axtest.New("Captvty", ax.RoleWindow, ax.Rect{Left: 0, Top: 0, Width: 1200, Height: 800})
	pane := axtest.New("", ax.RolePane, ax.Rect{Left: 0, Top: 0, Width: 244, Height: 800})
	direct := axtest.New("DIRECT", ax.RoleButton, ax.Rect{Left: 10, Top: 10, Width: 100, Height: 30})
	rattrapage := axtest.New("RATTRAPAGE", ax.RoleButton, ax.Rect{Left: 10, Top: 50, Width: 100, Height: 30})
	pane.Add(direct, rattrapage)
	win.Add(pane)
	return win
}

func TestSnapshot(t *testing.T) {
	snap := Snapshot(sampleTree(), 0)

	if snap.Role != "window" || snap.Name != "Captvty" {
		t.Fatalf("root: got %s %q", snap.Role, snap.Name)
	}
	if snap.Count() != 4 {
		t.Fatalf("count: got %d, want 4", snap.Count())
	}
	if snap.ID != 1 {
		t.Errorf("root id: got %d, want 1", snap.ID)
	}
	// Depth-first numbering.
	pane := snap.Children[0]
	if pane.ID != 2 || pane.Children[0].ID != 3 || pane.Children[1].ID != 4 {
		t.Errorf("ids: got %d %d %d", pane.ID, pane.Children[0].ID, pane.Children[1].ID)
	}
	if got := pane.Children[1].Name; got != "RATTRAPAGE" {
		t.Errorf("name: got %q", got)
	}
	if got := pane.Children[0].Bounds; got != [4]int{10, 10, 100, 30} {
		t.Errorf("bounds: got %v", got)
	}
}

func TestSnapshot_MaxDepth(t *testing.T) {
	snap := Snapshot(sampleTree(), 2)
	if snap.Count() != 2 {
		t.Fatalf("count: got %d, want 2", snap.Count())
	}
	if len(snap.Children[0].Children) != 0 {
		t.Error("depth 2 snapshot should stop at the pane")
	}
}

func TestSnapshot_StaleNode(t *testing.T) {
	root := sampleTree()
	root.Kids()[0].Kids()[1].Stale = true

	snap := Snapshot(root, 0)
	node := snap.Children[0].Children[1]
	if !node.Stale {
		t.Error("stale handle should be marked")
	}
	if node.Bounds != [4]int{} {
		t.Errorf("stale bounds: got %v, want zero", node.Bounds)
	}
	if node.Name != "RATTRAPAGE" {
		t.Errorf("stale node keeps its name, got %q", node.Name)
	}
}

func TestFlatten(t *testing.T) {
	flat := Flatten(Snapshot(sampleTree(), 0))

	if len(flat) != 4 {
		t.Fatalf("flat: got %d entries, want 4", len(flat))
	}
	if flat[0].Path != "window" {
		t.Errorf("root path: got %q", flat[0].Path)
	}
	if flat[2].Path != "window > pane > button" {
		t.Errorf("leaf path: got %q", flat[2].Path)
	}
	for i, f := range flat {
		if f.ID != i+1 {
			t.Errorf("flat order: entry %d has id %d", i, f.ID)
		}
	}
}
