package palette

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/alexisbeaulieu97/colorhelper/internal/color"
	"github.com/alexisbeaulieu97/colorhelper/internal/notation"
)

// ColorParser interprets color text without side effects.
type ColorParser interface {
	ParseColor(text string) (color.Color, bool)
}

var reNumberLike = regexp.MustCompile(`^[+-]?\d+(?:\.\d+)?$`)

// asNumber accepts numeric values and numeric strings.
func asNumber(value any) (float64, bool) {
	switch v := value.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	case uint64:
		return float64(v), true
	case string:
		s := strings.TrimSpace(v)
		if !reNumberLike.MatchString(s) {
			return 0, false
		}
		n, err := strconv.ParseFloat(s, 64)
		return n, err == nil
	}
	return 0, false
}

// asString accepts scalar values rendered as non-empty text.
func asString(value any) (string, bool) {
	switch v := value.(type) {
	case nil, []any, map[string]any:
		return "", false
	case string:
		return v, v != ""
	case bool:
		return strconv.FormatBool(v), true
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), true
	case int:
		return strconv.Itoa(v), true
	default:
		s := fmt.Sprint(v)
		return s, s != ""
	}
}

// keyedExtractor converts a keyed record when all its fields are number-like.
type keyedExtractor struct {
	fields []string
	build  func(v []float64) color.Color
}

// Tried in order; the first complete field set wins. Bare "s" comes last
// because other shapes also carry an "s".
var keyedExtractors = []keyedExtractor{
	{fields: []string{"r", "g", "b"}, build: func(v []float64) color.Color {
		return color.FromRGB(v[0], v[1], v[2])
	}},
	{fields: []string{"h", "s", "b"}, build: func(v []float64) color.Color {
		return color.FromHSV(v[0], v[1], v[2])
	}},
	{fields: []string{"h", "s", "v"}, build: func(v []float64) color.Color {
		return color.FromHSV(v[0], v[1], v[2])
	}},
	{fields: []string{"h", "s", "l"}, build: func(v []float64) color.Color {
		return color.FromHSL(v[0], v[1], v[2])
	}},
	{fields: []string{"h", "w", "b"}, build: func(v []float64) color.Color {
		return color.FromHWB(v[0], v[1], v[2])
	}},
	{fields: []string{"c", "m", "y", "k"}, build: func(v []float64) color.Color {
		return color.FromCMYK(v[0], v[1], v[2], v[3])
	}},
	{fields: []string{"s"}, build: func(v []float64) color.Color {
		return color.FromRGB(v[0], v[0], v[0])
	}},
}

func (x keyedExtractor) extract(record map[string]any) (color.Color, bool) {
	values := make([]float64, len(x.fields))
	for i, field := range x.fields {
		n, ok := asNumber(record[field])
		if !ok {
			return color.Color{}, false
		}
		values[i] = n
	}
	return x.build(values), true
}

// ParseElement interprets one raw palette record: a color text, an array of
// [r, g, b[, a][, name]] or [text, name], or a keyed map. The returned name
// is empty when the record carries none.
func ParseElement(raw any, parser ColorParser) (Entry, bool) {
	if text, ok := asString(raw); ok {
		c, ok := parser.ParseColor(text)
		if !ok {
			return Entry{}, false
		}
		return Entry{Color: c, Name: keywordName(text)}, true
	}

	switch record := raw.(type) {
	case []any:
		return parseArray(record, parser)
	case map[string]any:
		return parseMap(record, parser)
	}
	return Entry{}, false
}

func parseArray(record []any, parser ColorParser) (Entry, bool) {
	at := func(i int) any {
		if i < len(record) {
			return record[i]
		}
		return nil
	}

	r, okR := asNumber(at(0))
	g, okG := asNumber(at(1))
	b, okB := asNumber(at(2))
	if okR && okG && okB {
		entry := Entry{}
		nameAt := 3
		if a, ok := asNumber(at(3)); ok {
			entry.Color = color.FromRGBA(r, g, b, a)
			nameAt = 4
		} else {
			entry.Color = color.FromRGB(r, g, b)
			// An empty alpha cell keeps the name in the fifth column.
			if _, ok := asString(at(3)); !ok {
				nameAt = 4
			}
		}
		entry.Name, _ = asString(at(nameAt))
		return entry, true
	}

	text, ok := asString(at(0))
	if !ok {
		return Entry{}, false
	}
	c, ok := parser.ParseColor(text)
	if !ok {
		return Entry{}, false
	}
	entry := Entry{Color: c, Name: keywordName(text)}
	if name, ok := asString(at(1)); ok {
		entry.Name = name
	}
	return entry, true
}

func parseMap(record map[string]any, parser ColorParser) (Entry, bool) {
	if text, ok := asString(record["color"]); ok {
		c, ok := parser.ParseColor(text)
		if !ok {
			return Entry{}, false
		}
		entry := Entry{Color: c, Name: keywordName(text)}
		if name, ok := asString(record["name"]); ok {
			entry.Name = name
		}
		return entry, true
	}

	for _, x := range keyedExtractors {
		c, ok := x.extract(record)
		if !ok {
			continue
		}
		if a, ok := asNumber(record["a"]); ok {
			c = c.WithAlpha(a)
		}
		entry := Entry{Color: c}
		entry.Name, _ = asString(record["name"])
		return entry, true
	}
	return Entry{}, false
}

// keywordName names a keyword record without an explicit name after the
// keyword itself.
func keywordName(text string) string {
	if _, name, ok := notation.LookupKeyword(strings.TrimSpace(text)); ok {
		return name
	}
	return ""
}
