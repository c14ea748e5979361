package notation

import (
	"strings"
	"sync"

	"golang.org/x/image/colornames"

	"github.com/alexisbeaulieu97/colorhelper/internal/color"
)

// Keyword is a CSS color keyword. Aliases name the same color.
type Keyword struct {
	Name    string
	Aliases []string
	Color   color.Color
}

type keywordTable struct {
	list   []Keyword
	byName map[string]int
}

var (
	keywordsOnce sync.Once
	keywords     keywordTable
)

// colornames predates CSS Color 4.
var extraKeywords = []struct {
	name       string
	r, g, b, a uint8
}{
	{"rebeccapurple", 102, 51, 153, 255},
	{"transparent", 0, 0, 0, 0},
}

func keywordTableOf() keywordTable {
	keywordsOnce.Do(func() {
		keywords = buildKeywords()
	})
	return keywords
}

func buildKeywords() keywordTable {
	table := keywordTable{byName: make(map[string]int, len(colornames.Names)+len(extraKeywords))}
	byRGBA := make(map[[4]uint8]int)

	add := func(name string, rgba [4]uint8) {
		if _, dup := table.byName[name]; dup {
			return
		}
		if i, ok := byRGBA[rgba]; ok {
			table.list[i].Aliases = append(table.list[i].Aliases, name)
			table.byName[name] = i
			return
		}
		c := color.FromRGBA(
			float64(rgba[0])/255, float64(rgba[1])/255, float64(rgba[2])/255, float64(rgba[3])/255)
		table.list = append(table.list, Keyword{Name: name, Color: c})
		byRGBA[rgba] = len(table.list) - 1
		table.byName[name] = len(table.list) - 1
	}

	for _, name := range colornames.Names {
		rgba := colornames.Map[name]
		add(name, [4]uint8{rgba.R, rgba.G, rgba.B, rgba.A})
	}
	for _, extra := range extraKeywords {
		add(extra.name, [4]uint8{extra.r, extra.g, extra.b, extra.a})
	}
	return table
}

// Keywords returns the keyword table in alphabetical order of canonical
// names, followed by the CSS Color 4 additions.
func Keywords() []Keyword {
	list := keywordTableOf().list
	out := make([]Keyword, len(list))
	copy(out, list)
	return out
}

// LookupKeyword finds a keyword or alias case-insensitively. The returned
// name is the matched spelling.
func LookupKeyword(name string) (Keyword, string, bool) {
	table := keywordTableOf()
	lower := strings.ToLower(name)
	i, ok := table.byName[lower]
	if !ok {
		return Keyword{}, "", false
	}
	return table.list[i], lower, true
}

// KeywordFor returns the canonical keyword of an exact color match.
func KeywordFor(c color.Color) (string, bool) {
	for _, kw := range keywordTableOf().list {
		if kw.Color.Equal(c) {
			return kw.Name, true
		}
	}
	return "", false
}
