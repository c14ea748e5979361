// Package palette loads palette files from a store directory into normalized
// color lists.
package palette

import (
	"encoding/json"

	"github.com/alexisbeaulieu97/colorhelper/internal/color"
)

// Entry is one palette color with its display name.
type Entry struct {
	Color color.Color
	Name  string
}

type entryJSON struct {
	R    float64 `json:"r"`
	G    float64 `json:"g"`
	B    float64 `json:"b"`
	A    float64 `json:"a"`
	Name string  `json:"name"`
}

// MarshalJSON writes the entry as {r, g, b, a, name}.
func (e Entry) MarshalJSON() ([]byte, error) {
	r, g, b, a := e.Color.RGBA()
	return json.Marshal(entryJSON{R: r, G: g, B: b, A: a, Name: e.Name})
}

// Palette is a labelled list of entries.
type Palette struct {
	FileName string  `json:"fileName"`
	Label    string  `json:"label"`
	Entries  []Entry `json:"entries"`
}

// Summary identifies a palette in a listing.
type Summary struct {
	FileName string `json:"fileName"`
	Label    string `json:"label"`
}
