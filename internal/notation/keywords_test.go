package notation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/colorhelper/internal/color"
)

func TestLookupKeyword(t *testing.T) {
	kw, name, ok := LookupKeyword("GREY")
	require.True(t, ok)
	assert.Equal(t, "grey", name)
	assert.Equal(t, "gray", kw.Name)
	assert.Contains(t, kw.Aliases, "grey")

	kw, _, ok = LookupKeyword("cyan")
	require.True(t, ok)
	assert.Equal(t, "aqua", kw.Name)

	kw, _, ok = LookupKeyword("RebeccaPurple")
	require.True(t, ok)
	assert.True(t, kw.Color.Equal(color.FromRGB(102/255.0, 51/255.0, 153/255.0)))

	_, _, ok = LookupKeyword("chartreux")
	assert.False(t, ok)
}

func TestKeywordFor(t *testing.T) {
	name, ok := KeywordFor(color.FromRGBA(0, 0, 0, 0))
	require.True(t, ok)
	assert.Equal(t, "transparent", name)

	name, ok = KeywordFor(color.FromRGB(1, 0, 1))
	require.True(t, ok)
	assert.Equal(t, "fuchsia", name)

	_, ok = KeywordFor(color.FromRGB(0.1, 0.2, 0.3))
	assert.False(t, ok)
}

func TestKeywordsTable(t *testing.T) {
	list := Keywords()
	require.NotEmpty(t, list)
	assert.Equal(t, "transparent", list[len(list)-1].Name)

	seen := make(map[string]bool)
	for _, kw := range list {
		assert.False(t, seen[kw.Name], kw.Name)
		seen[kw.Name] = true
		for _, alias := range kw.Aliases {
			assert.False(t, seen[alias], alias)
			seen[alias] = true
		}
	}
	assert.True(t, seen["white"])
	assert.True(t, seen["magenta"])
}
