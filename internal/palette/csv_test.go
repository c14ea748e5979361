package palette

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadDelimitedRagged(t *testing.T) {
	records, err := ReadDelimited(strings.NewReader("red\n0,255,0,,Lime\n\n\"a,b\",1,2,3,4,5,6\n"), ',', RecordWidth)
	require.NoError(t, err)
	require.Len(t, records, 3)

	assert.Equal(t, []any{"red", "", "", "", ""}, records[0])
	assert.Equal(t, []any{"0", "255", "0", "", "Lime"}, records[1])
	assert.Len(t, records[2], 7)
	assert.Equal(t, "a,b", records[2].([]any)[0])
}

func TestReadDelimitedTabs(t *testing.T) {
	records, err := ReadDelimited(strings.NewReader("@Label\nhsl(0, 100%, 50%)\tRed\n"), '\t', RecordWidth)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, []any{"hsl(0, 100%, 50%)", "Red", "", "", ""}, records[1])
}

func TestReadDelimitedEmpty(t *testing.T) {
	records, err := ReadDelimited(strings.NewReader(""), ',', RecordWidth)
	require.NoError(t, err)
	assert.Empty(t, records)
}
