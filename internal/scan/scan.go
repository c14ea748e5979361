// Package scan locates color literals inside stylesheet text.
package scan

import (
	"regexp"
	"sort"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/alexisbeaulieu97/colorhelper/internal/notation"
)

// Kind classifies a found literal.
type Kind string

const (
	KindHex      Kind = "hex"
	KindKeyword  Kind = "keyword"
	KindFunction Kind = "function"
)

// Functions lists the function names recognized as color literals.
var Functions = []string{"rgb", "rgba", "hsl", "hsla", "hwb", "gray", "device-cmyk", "color"}

// Span is one color literal. Start and End are byte offsets; Line and
// Column are 1-based, Column counting runes.
type Span struct {
	Start  int    `json:"start"`
	End    int    `json:"end"`
	Line   int    `json:"line"`
	Column int    `json:"column"`
	Text   string `json:"text"`
	Kind   Kind   `json:"kind"`
}

var (
	reComment   = regexp.MustCompile(`(?s)/\*.*?\*/`)
	reHex       = regexp.MustCompile(`#(?:[0-9a-fA-F]{8}|[0-9a-fA-F]{6}|[0-9a-fA-F]{4}|[0-9a-fA-F]{3})\b`)
	reFuncStart = regexp.MustCompile(`(?i)\b(?:` + alternation(Functions) + `) *\(`)
	reCallAhead = regexp.MustCompile(`^\s*\(`)

	keywordsOnce sync.Once
	reKeywords   *regexp.Regexp
)

func alternation(words []string) string {
	quoted := make([]string, len(words))
	for i, w := range words {
		quoted[i] = regexp.QuoteMeta(w)
	}
	// Longer names first so a prefix never wins the alternation.
	sort.SliceStable(quoted, func(i, j int) bool { return len(quoted[i]) > len(quoted[j]) })
	return strings.Join(quoted, "|")
}

func keywordPattern() *regexp.Regexp {
	keywordsOnce.Do(func() {
		var names []string
		for _, kw := range notation.Keywords() {
			names = append(names, kw.Name)
			names = append(names, kw.Aliases...)
		}
		reKeywords = regexp.MustCompile(`(?i)\b(?:` + alternation(names) + `)\b`)
	})
	return reKeywords
}

// Find returns the non-overlapping color literals of text ordered by offset.
// Comments are ignored. Hex literals are matched first, then keywords, then
// functional notations, whose nested parentheses are balanced.
func Find(text string) []Span {
	masked := []byte(reComment.ReplaceAllStringFunc(text, blank))
	lines := newLineIndex(text)

	var spans []Span
	add := func(start, end int, kind Kind) {
		line, col := lines.position(text, start)
		spans = append(spans, Span{
			Start: start, End: end,
			Line: line, Column: col,
			Text: text[start:end],
			Kind: kind,
		})
		for i := start; i < end; i++ {
			masked[i] = ' '
		}
	}

	for _, loc := range reHex.FindAllIndex(masked, -1) {
		add(loc[0], loc[1], KindHex)
	}

	for _, loc := range keywordPattern().FindAllIndex(masked, -1) {
		if reCallAhead.Match(masked[loc[1]:]) {
			continue
		}
		add(loc[0], loc[1], KindKeyword)
	}

	for _, loc := range reFuncStart.FindAllIndex(masked, -1) {
		if masked[loc[0]] == ' ' {
			continue
		}
		end, ok := closingParen(masked, loc[1]-1)
		if !ok {
			continue
		}
		add(loc[0], end, KindFunction)
	}

	sort.Slice(spans, func(i, j int) bool { return spans[i].Start < spans[j].Start })

	// A function span swallows literals found inside it, such as a
	// device-cmyk fallback.
	out := spans[:0]
	end := 0
	for _, span := range spans {
		if span.Start < end {
			continue
		}
		out = append(out, span)
		end = span.End
	}
	return out
}

func blank(s string) string {
	return strings.Repeat(" ", len(s))
}

// closingParen returns the offset just past the parenthesis closing the one
// at open.
func closingParen(text []byte, open int) (int, bool) {
	depth := 0
	for i := open; i < len(text); i++ {
		switch text[i] {
		case '(':
			depth++
		case ')':
			depth--
			if depth == 0 {
				return i + 1, true
			}
		}
	}
	return 0, false
}

// lineIndex maps byte offsets to line numbers. \r\n, \n and \r all end a line.
type lineIndex []int

func newLineIndex(text string) lineIndex {
	starts := lineIndex{0}
	for i := 0; i < len(text); i++ {
		switch text[i] {
		case '\n':
			starts = append(starts, i+1)
		case '\r':
			if i+1 < len(text) && text[i+1] == '\n' {
				continue
			}
			starts = append(starts, i+1)
		}
	}
	return starts
}

func (l lineIndex) position(text string, offset int) (int, int) {
	line := sort.Search(len(l), func(i int) bool { return l[i] > offset }) - 1
	return line + 1, utf8.RuneCountInString(text[l[line]:offset]) + 1
}
