package model

import "hash/fnv"

// Tag is a user-defined label attached to a task.
type Tag struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color" validate:"omitempty,hexcolor"`
}

// tagPalette holds the colors assigned to tags. A tag's color is picked
// by hashing its name, so the same name always gets the same color.
var tagPalette = []string{
	"#4ECDC4",
	"#FFD166",
	"#FF6B6B",
	"#95E1D3",
	"#A8E6CF",
	"#0088FE",
	"#00C49F",
	"#FFBB28",
	"#FF8042",
	"#9C27B0",
}

// TagColor returns the deterministic display color for a tag name.
func TagColor(name string) string {
	h := fnv.New32a()
	h.Write([]byte(name))
	return tagPalette[h.Sum32()%uint32(len(tagPalette))]
}
