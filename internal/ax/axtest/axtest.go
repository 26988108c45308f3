// Package axtest provides an in-memory ax.Element implementation for tests.
package axtest

import (
	"github.com/ctvaccess/captvty-bridge/internal/ax"
)

// Node is a synthetic accessibility element. Fields may be mutated between
// calls to simulate the host application moving or destroying controls.
type Node struct {
	ElemName string
	ElemRole ax.Role
	Rect     ax.Rect
	Stale    bool

	// Actions counts DoAction invocations.
	Actions int

	parent *Node
	kids   []*Node
}

// New creates a detached node.
func New(name string, role ax.Role, rect ax.Rect) *Node {
	return &Node{ElemName: name, ElemRole: role, Rect: rect}
}

// Add appends children and wires their parent pointers. It returns n for
// chained tree building.
func (n *Node) Add(children ...*Node) *Node {
	for _, c := range children {
		c.parent = n
		n.kids = append(n.kids, c)
	}
	return n
}

func (n *Node) Name() string { return n.ElemName }

func (n *Node) Role() ax.Role { return n.ElemRole }

func (n *Node) Location() (ax.Rect, error) {
	if n.Stale {
		return ax.Rect{}, ax.ErrElementStale
	}
	return n.Rect, nil
}

func (n *Node) Parent() ax.Element {
	if n.parent == nil {
		return nil
	}
	return n.parent
}

func (n *Node) Children() []ax.Element {
	out := make([]ax.Element, len(n.kids))
	for i, c := range n.kids {
		out[i] = c
	}
	return out
}

// Kids exposes the concrete children for tests that mutate them.
func (n *Node) Kids() []*Node { return n.kids }

func (n *Node) ChildCount() int { return len(n.kids) }

func (n *Node) DoAction() error {
	n.Actions++
	return nil
}
