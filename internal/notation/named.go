package notation

import (
	"github.com/alexisbeaulieu97/colorhelper/internal/color"
)

// Named returns the CSS keyword notation. Only exact color matches can be
// generated.
func Named() *Descriptor {
	const id = "named"
	return &Descriptor{
		ID:          id,
		Label:       "Named",
		Description: "CSS color keyword",

		parseText: func(text string) Result {
			kw, name, ok := LookupKeyword(text)
			if !ok {
				return notThis()
			}
			return Result{
				Outcome:  Matched,
				Notation: id,
				Text:     name,
				Color:    kw.Color,
				Options:  Values{},
			}
		},

		generate: func(c color.Color, _ Context) (string, bool) {
			return KeywordFor(c)
		},
	}
}
