// Package model holds the serializable snapshot of an accessibility tree.
//
// Snapshots are plain data: capturing one walks the live handles exactly
// once, so the output can outlive the handles it was built from. The target
// application custom-draws its widgetry and the location heuristics branch
// on geometry, so the snapshot keeps bounds on every node.
package model

import "github.com/ctvaccess/captvty-bridge/internal/ax"

// Element is one node of a captured tree.
type Element struct {
	ID       int       `yaml:"i"            json:"i"`
	Role     string    `yaml:"r"            json:"r"`
	Name     string    `yaml:"n,omitempty"  json:"n,omitempty"`
	Bounds   [4]int    `yaml:"b"            json:"b"`
	Stale    bool      `yaml:"st,omitempty" json:"st,omitempty"`
	Children []Element `yaml:"c,omitempty"  json:"c,omitempty"`
}

// Snapshot captures root and its descendants down to maxDepth levels.
// maxDepth 0 means unlimited. IDs are assigned in depth-first order
// starting at 1, matching the order a flattened listing prints in.
func Snapshot(root ax.Element, maxDepth int) Element {
	next := 1
	return capture(root, maxDepth, 1, &next)
}

func capture(el ax.Element, maxDepth, depth int, next *int) Element {
	out := Element{
		ID:   *next,
		Role: el.Role().String(),
		Name: el.Name(),
	}
	*next++

	rect, err := el.Location()
	if err != nil {
		// The handle died mid-walk; keep the node so the shape of the
		// tree stays visible, but mark it.
		out.Stale = true
	} else {
		out.Bounds = [4]int{rect.Left, rect.Top, rect.Width, rect.Height}
	}

	if maxDepth > 0 && depth >= maxDepth {
		return out
	}
	for _, child := range el.Children() {
		out.Children = append(out.Children, capture(child, maxDepth, depth+1, next))
	}
	return out
}

// Count returns the number of nodes rooted at e, including e itself.
func (e Element) Count() int {
	n := 1
	for _, c := range e.Children {
		n += c.Count()
	}
	return n
}
