package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	colorerrors "github.com/alexisbeaulieu97/colorhelper/pkg/errors"
)

func writeConfig(t *testing.T, dir, contents string) string {
	t.Helper()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestParseConfig(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name     string
		contents string
		assert   func(t *testing.T, cfg *Config, err error)
	}{
		{
			name: "valid configuration is parsed",
			contents: `store_dir: /tmp/palettes
formats_order: [hex, rgb]
log_level: debug
default_notation: hsl
`,
			assert: func(t *testing.T, cfg *Config, err error) {
				require.NoError(t, err)
				assert.Equal(t, "/tmp/palettes", cfg.StoreDir)
				assert.Equal(t, []string{"hex", "rgb"}, cfg.FormatsOrder)
				assert.Equal(t, "debug", cfg.LogLevel)
				assert.Equal(t, "hsl", cfg.DefaultNotation)
			},
		},
		{
			name:     "empty document is valid",
			contents: "",
			assert: func(t *testing.T, cfg *Config, err error) {
				require.NoError(t, err)
				assert.Equal(t, Config{}, *cfg)
			},
		},
		{
			name:     "yaml syntax error reports the line",
			contents: "log_level: info\nformats_order: [hex\n",
			assert: func(t *testing.T, cfg *Config, err error) {
				require.Error(t, err)
				var parseErr *colorerrors.ParseError
				require.True(t, errors.As(err, &parseErr))
				assert.Positive(t, parseErr.Line)
			},
		},
		{
			name:     "unknown notation in formats order",
			contents: "formats_order: [hex, lab]\n",
			assert: func(t *testing.T, cfg *Config, err error) {
				var validationErr *colorerrors.ValidationError
				require.True(t, errors.As(err, &validationErr))
				assert.Equal(t, "formats_order[1]", validationErr.Field)
				assert.Contains(t, validationErr.Message, `"lab"`)
			},
		},
		{
			name:     "duplicate formats are rejected",
			contents: "formats_order: [hex, hex]\n",
			assert: func(t *testing.T, cfg *Config, err error) {
				var validationErr *colorerrors.ValidationError
				require.True(t, errors.As(err, &validationErr))
				assert.Equal(t, "formats_order", validationErr.Field)
			},
		},
		{
			name:     "log level must be known",
			contents: "log_level: loud\n",
			assert: func(t *testing.T, cfg *Config, err error) {
				var validationErr *colorerrors.ValidationError
				require.True(t, errors.As(err, &validationErr))
				assert.Equal(t, "log_level", validationErr.Field)
			},
		},
		{
			name:     "default notation must be known",
			contents: "default_notation: lab\n",
			assert: func(t *testing.T, cfg *Config, err error) {
				var validationErr *colorerrors.ValidationError
				require.True(t, errors.As(err, &validationErr))
				assert.Equal(t, "default_notation", validationErr.Field)
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			path := writeConfig(t, t.TempDir(), tc.contents)
			cfg, err := ParseConfig(path)
			tc.assert(t, cfg, err)
		})
	}
}

func TestParseConfigMissingFile(t *testing.T) {
	t.Parallel()

	_, err := ParseConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	var parseErr *colorerrors.ParseError
	require.True(t, errors.As(err, &parseErr))
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestLoadLookupOrder(t *testing.T) {
	t.Parallel()

	t.Run("defaults without a user file", func(t *testing.T) {
		t.Parallel()
		home := t.TempDir()
		cfg, err := load("", home)
		require.NoError(t, err)
		assert.Equal(t, Defaults(home), *cfg)
		assert.Equal(t, filepath.Join(home, ".colorhelper", "palettes"), cfg.StoreDir)
		assert.Equal(t, filepath.Join(home, ".colorhelper", "stats.json"), cfg.StatsPath)
	})

	t.Run("user file overlays defaults", func(t *testing.T) {
		t.Parallel()
		home := t.TempDir()
		require.NoError(t, os.MkdirAll(filepath.Join(home, ".colorhelper"), 0o755))
		writeConfig(t, filepath.Join(home, ".colorhelper"), "store_dir: ~/colors\nlog_level: warn\n")

		cfg, err := load("", home)
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(home, "colors"), cfg.StoreDir)
		assert.Equal(t, "warn", cfg.LogLevel)
		assert.Equal(t, "rgb", cfg.DefaultNotation)
	})

	t.Run("explicit path wins", func(t *testing.T) {
		t.Parallel()
		home := t.TempDir()
		require.NoError(t, os.MkdirAll(filepath.Join(home, ".colorhelper"), 0o755))
		writeConfig(t, filepath.Join(home, ".colorhelper"), "log_level: warn\n")
		explicit := writeConfig(t, t.TempDir(), "log_level: error\n")

		cfg, err := load(explicit, home)
		require.NoError(t, err)
		assert.Equal(t, "error", cfg.LogLevel)
	})

	t.Run("explicit path must exist", func(t *testing.T) {
		t.Parallel()
		_, err := load(filepath.Join(t.TempDir(), "nope.yaml"), t.TempDir())
		require.Error(t, err)
	})
}

func TestExpandHome(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "/home/u", expandHome("~", "/home/u"))
	assert.Equal(t, filepath.Join("/home/u", "a/b"), expandHome("~/a/b", "/home/u"))
	assert.Equal(t, "/abs", expandHome("/abs", "/home/u"))
	assert.Equal(t, "~user/x", expandHome("~user/x", "/home/u"))
}

func TestExtractLine(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 0, extractLine(nil))
	assert.Equal(t, 0, extractLine(errors.New("no position")))
	assert.Equal(t, 7, extractLine(errors.New("yaml: line 7: did not find expected node")))
}
