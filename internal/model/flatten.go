package model

// FlatElement is an element with a path breadcrumb instead of children.
type FlatElement struct {
	ID     int    `yaml:"i"           json:"i"`
	Role   string `yaml:"r"           json:"r"`
	Name   string `yaml:"n,omitempty" json:"n,omitempty"`
	Bounds [4]int `yaml:"b"           json:"b"`
	Stale  bool   `yaml:"st,omitempty" json:"st,omitempty"`
	Path   string `yaml:"p,omitempty" json:"p,omitempty"`
}

// Flatten converts a snapshot into a depth-first list. Each entry gets a
// path string showing its location in the tree using role names joined
// with " > ".
func Flatten(root Element) []FlatElement {
	var result []FlatElement
	flattenRecursive(root, "", &result)
	return result
}

func flattenRecursive(el Element, parentPath string, result *[]FlatElement) {
	currentPath := el.Role
	if parentPath != "" {
		currentPath = parentPath + " > " + el.Role
	}

	*result = append(*result, FlatElement{
		ID:     el.ID,
		Role:   el.Role,
		Name:   el.Name,
		Bounds: el.Bounds,
		Stale:  el.Stale,
		Path:   currentPath,
	})

	for _, child := range el.Children {
		flattenRecursive(child, currentPath, result)
	}
}
