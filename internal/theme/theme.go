// Package theme defines the color schemes a user can pick. The scheme
// selection is persisted alongside the tasks and travels with share
// payloads; everything visual about it stays in the presentation layer.
package theme

// Scheme identifies a color scheme.
type Scheme string

const (
	Sunset   Scheme = "sunset"
	Ocean    Scheme = "ocean"
	Forest   Scheme = "forest"
	Lavender Scheme = "lavender"
)

// Default is the scheme used when none has been chosen.
const Default = Ocean

// Schemes returns all available schemes.
func Schemes() []Scheme {
	return []Scheme{Sunset, Ocean, Forest, Lavender}
}

// Valid returns true if s is a known scheme.
func (s Scheme) Valid() bool {
	switch s {
	case Sunset, Ocean, Forest, Lavender:
		return true
	}
	return false
}

// Palette holds the display colors of a scheme.
type Palette struct {
	Primary    string
	Secondary  string
	Background string
	Text       string
	Accent     string
}

var palettes = map[Scheme]Palette{
	Sunset: {
		Primary:    "#FF6B6B",
		Secondary:  "#4ECDC4",
		Background: "#FFE66D",
		Text:       "#2C3E50",
		Accent:     "#FF8B94",
	},
	Ocean: {
		Primary:    "#1A535C",
		Secondary:  "#4ECDC4",
		Background: "#F7FFF7",
		Text:       "#2C3E50",
		Accent:     "#FF6B6B",
	},
	Forest: {
		Primary:    "#2D6A4F",
		Secondary:  "#74C69D",
		Background: "#D8F3DC",
		Text:       "#1B4332",
		Accent:     "#40916C",
	},
	Lavender: {
		Primary:    "#6B4E71",
		Secondary:  "#C98BB9",
		Background: "#F2E5F7",
		Text:       "#4A4453",
		Accent:     "#9B6B9E",
	},
}

// Colors returns the palette for a scheme, falling back to the default
// palette for unknown schemes.
func (s Scheme) Colors() Palette {
	if p, ok := palettes[s]; ok {
		return p
	}
	return palettes[Default]
}
