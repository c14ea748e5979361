package palette

import (
	"embed"
	"io/fs"
	"math"
	"sort"

	"github.com/alexisbeaulieu97/colorhelper/internal/notation"
)

//go:embed defaults
var bundled embed.FS

// BundledDefaults returns the palette files shipped with the binary. They
// seed an empty store directory.
func BundledDefaults() fs.FS {
	sub, err := fs.Sub(bundled, "defaults")
	if err != nil {
		panic(err)
	}
	return sub
}

// Default returns the keyword palette, grouped by hue with achromatic colors
// first and transparent last.
func Default() Palette {
	keywords := notation.Keywords()
	keys := make(map[string]float64, len(keywords))
	for _, kw := range keywords {
		keys[kw.Name] = hueSortKey(kw)
	}
	sort.SliceStable(keywords, func(i, j int) bool {
		return keys[keywords[i].Name] < keys[keywords[j].Name]
	})

	entries := make([]Entry, len(keywords))
	for i, kw := range keywords {
		entries[i] = Entry{Color: kw.Color, Name: kw.Name}
	}
	return Palette{FileName: "", Label: DefaultLabel, Entries: entries}
}

func hueSortKey(kw notation.Keyword) float64 {
	if kw.Color.Alpha() == 0 {
		return 1000
	}
	h, s, v := kw.Color.HSV()
	if s < 0.01 {
		return -100 + v
	}
	return math.Round(h*100/15)*15 - s + v*2
}
