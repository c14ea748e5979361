package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/colorhelper/internal/palette"
)

func TestPalettesList_SeedsStore(t *testing.T) {
	home := setupHome(t)

	stdout, _, err := executeCommand("palettes", "list")
	require.NoError(t, err)
	assert.Contains(t, stdout, "(default)")
	assert.Contains(t, stdout, palette.DefaultLabel)
	assert.Contains(t, stdout, "material.palette.json")
	assert.Contains(t, stdout, "Material Design 500")
	assert.FileExists(t, filepath.Join(home, ".colorhelper", "palettes", "grays.palette.yaml"))
}

func TestPalettesList_StoreFlagAndJSON(t *testing.T) {
	setupHome(t)
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "brand.palette.json"), []byte(`["@Brand", "#336699"]`), 0o644))

	stdout, _, err := executeCommand("palettes", "list", "--store", dir, "--json")
	require.NoError(t, err)

	var summaries []palette.Summary
	require.NoError(t, json.Unmarshal([]byte(stdout), &summaries))
	assert.Equal(t, []palette.Summary{
		{FileName: "", Label: palette.DefaultLabel},
		{FileName: "brand.palette.json", Label: "Brand"},
	}, summaries)
}

func TestPalettesList_ConflictingStore(t *testing.T) {
	setupHome(t)
	file := filepath.Join(t.TempDir(), "not-a-dir")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0o644))

	_, _, err := executeCommand("palettes", "list", "--store", file)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "opening palette store")
}

func TestPalettesShow_TextOutput(t *testing.T) {
	home := setupHome(t)
	writeHomeConfig(t, home, "formats_order: [hex]\n")

	stdout, _, err := executeCommand("palettes", "show", "@basic.palette.csv")
	require.NoError(t, err)
	assert.Contains(t, stdout, "basic")
	assert.Contains(t, stdout, "Red      #f00")
	assert.Contains(t, stdout, "Magenta  #f0f")

	assert.Equal(t, "@basic.palette.csv", readStats(t, home).Palette)
}

type paletteJSON struct {
	FileName string `json:"fileName"`
	Label    string `json:"label"`
	Entries  []struct {
		R    float64 `json:"r"`
		G    float64 `json:"g"`
		B    float64 `json:"b"`
		A    float64 `json:"a"`
		Name string  `json:"name"`
	} `json:"entries"`
}

func TestPalettesShow_DefaultAndFallback(t *testing.T) {
	setupHome(t)

	stdout, _, err := executeCommand("palettes", "show", "--json")
	require.NoError(t, err)
	var pal paletteJSON
	require.NoError(t, json.Unmarshal([]byte(stdout), &pal))
	assert.Equal(t, palette.DefaultLabel, pal.Label)
	assert.Equal(t, "black", pal.Entries[0].Name)
	assert.Equal(t, 1.0, pal.Entries[0].A)
	last := pal.Entries[len(pal.Entries)-1]
	assert.Equal(t, "transparent", last.Name)
	assert.Equal(t, 0.0, last.A)

	stdout, stderr, err := executeCommand("palettes", "show", "missing.palette.json", "--json")
	require.NoError(t, err)
	assert.Contains(t, stderr, `palette "missing.palette.json" not found`)
	require.NoError(t, json.Unmarshal([]byte(stdout), &pal))
	assert.Equal(t, palette.DefaultLabel, pal.Label)
}
