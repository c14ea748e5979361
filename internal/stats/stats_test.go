package stats

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/colorhelper/internal/options"
	colorerrors "github.com/alexisbeaulieu97/colorhelper/pkg/errors"
)

func TestOpenMissingFile(t *testing.T) {
	t.Parallel()

	store := Open(filepath.Join(t.TempDir(), "nested", "stats.json"), nil)
	assert.Equal(t, Stats{}, store.Get())
}

func TestSaveAndReload(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "nested", "stats.json")
	store := Open(path, nil)
	store.Update(func(s *Stats) {
		s.Format = "hex"
		s.Value = "#ff0000"
		s.FormatsOrder = []string{"hex", "rgb"}
		s.Options = options.Bag{"hex": {"uppercase": true}}
		s.Palette = "material.palette.json"
	})
	require.NoError(t, store.Save())

	_, err := os.Stat(path + ".tmp")
	assert.True(t, errors.Is(err, os.ErrNotExist))

	reloaded := Open(path, nil)
	got := reloaded.Get()
	assert.Equal(t, "hex", got.Format)
	assert.Equal(t, "#ff0000", got.Value)
	assert.Equal(t, []string{"hex", "rgb"}, got.FormatsOrder)
	assert.Equal(t, true, got.Options["hex"]["uppercase"])
	assert.Equal(t, "material.palette.json", got.Palette)
	assert.False(t, got.UpdatedAt.IsZero())

	var file File
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(data, &file))
	assert.Equal(t, fileVersion, file.Version)
}

func TestLoadFailuresYieldEmptyStats(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name     string
		contents string
	}{
		{name: "malformed json", contents: `{"version": "1.0", "stats": {`},
		{name: "unknown format", contents: `{"version": "1.0", "stats": {"format": "lab"}}`},
		{name: "duplicate order", contents: `{"version": "1.0", "stats": {"formatsOrder": ["hex", "hex"]}}`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			path := filepath.Join(t.TempDir(), "stats.json")
			require.NoError(t, os.WriteFile(path, []byte(tc.contents), 0o644))

			store := Open(path, nil)
			assert.Equal(t, Stats{}, store.Get())

			err := store.Load()
			var parseErr *colorerrors.ParseError
			require.True(t, errors.As(err, &parseErr))
			assert.Equal(t, path, parseErr.Path)
		})
	}
}

func TestGetReturnsCopy(t *testing.T) {
	t.Parallel()

	store := Open(filepath.Join(t.TempDir(), "stats.json"), nil)
	store.Update(func(s *Stats) {
		s.FormatsOrder = []string{"rgb"}
		s.Options = options.Bag{"rgb": {"rgb_percent": false}}
	})

	got := store.Get()
	got.FormatsOrder[0] = "hex"
	got.Options["rgb"]["rgb_percent"] = true

	again := store.Get()
	assert.Equal(t, []string{"rgb"}, again.FormatsOrder)
	assert.Equal(t, false, again.Options["rgb"]["rgb_percent"])
}
