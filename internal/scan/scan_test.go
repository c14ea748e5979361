package scan

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func texts(spans []Span) []string {
	out := make([]string, len(spans))
	for i, s := range spans {
		out[i] = s.Text
	}
	return out
}

func TestFindStylesheet(t *testing.T) {
	css := "a { color: #FFF; }\n" +
		"/* red is commented out: rgb(1, 2, 3) */\n" +
		"b { background: linear-gradient(Red, hsla(120, 50%, 50%, 0.5)); }\n" +
		"c { border: 1px solid gray(50%) }\n" +
		"d { fill: device-cmyk(0, 1, 1, 0, 1, rgb(255, 0, 0)); }\n"

	spans := Find(css)
	require.Equal(t, []string{
		"#FFF",
		"Red",
		"hsla(120, 50%, 50%, 0.5)",
		"gray(50%)",
		"device-cmyk(0, 1, 1, 0, 1, rgb(255, 0, 0))",
	}, texts(spans))

	assert.Equal(t, KindHex, spans[0].Kind)
	assert.Equal(t, 1, spans[0].Line)
	assert.Equal(t, 12, spans[0].Column)

	assert.Equal(t, KindKeyword, spans[1].Kind)
	assert.Equal(t, 3, spans[1].Line)

	assert.Equal(t, KindFunction, spans[2].Kind)
	assert.Equal(t, KindFunction, spans[3].Kind)
	assert.Equal(t, 4, spans[3].Line)
	assert.Equal(t, 5, spans[4].Line)

	for _, s := range spans {
		assert.Equal(t, s.Text, css[s.Start:s.End])
	}
}

func TestFindHexBoundaries(t *testing.T) {
	assert.Equal(t, []string{"#abc", "#11223344"}, texts(Find("#abc #abcde #11223344 #12345g")))
}

func TestFindKeywordBoundaries(t *testing.T) {
	assert.Equal(t, []string{"tan", "grey", "gray (x)"}, texts(Find("tangent tan grey blueish gray (x)")))
}

func TestFindUnbalancedFunction(t *testing.T) {
	assert.Empty(t, Find("rgb(1, 2, 3"))
	assert.Equal(t, []string{"RGB (1, (2), 3)"}, texts(Find("x: RGB (1, (2), 3);")))
}

func TestFindLineColumns(t *testing.T) {
	spans := Find("é #fff\r\nred\rblue")
	require.Len(t, spans, 3)
	assert.Equal(t, [2]int{1, 3}, [2]int{spans[0].Line, spans[0].Column})
	assert.Equal(t, [2]int{2, 1}, [2]int{spans[1].Line, spans[1].Column})
	assert.Equal(t, [2]int{3, 1}, [2]int{spans[2].Line, spans[2].Column})
}
