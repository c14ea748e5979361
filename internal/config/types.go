// Package config loads the colorhelper YAML configuration.
package config

import (
	"os"
	"path/filepath"
	"strings"
)

// DefaultFileName is the configuration file looked up in the user's
// colorhelper directory when no explicit path is given.
const DefaultFileName = "config.yaml"

// Config represents the colorhelper configuration document.
type Config struct {
	StoreDir        string   `yaml:"store_dir,omitempty"`
	StatsPath       string   `yaml:"stats_path,omitempty"`
	FormatsOrder    []string `yaml:"formats_order,omitempty" validate:"omitempty,unique,dive,notation"`
	LogLevel        string   `yaml:"log_level,omitempty" validate:"omitempty,oneof=debug info warn error"`
	DefaultNotation string   `yaml:"default_notation,omitempty" validate:"omitempty,notation"`
}

// Defaults returns the configuration used when no file is present. Paths are
// rooted at home; an empty home leaves them relative to the working directory.
func Defaults(home string) Config {
	base := filepath.Join(home, ".colorhelper")
	return Config{
		StoreDir:        filepath.Join(base, "palettes"),
		StatsPath:       filepath.Join(base, "stats.json"),
		LogLevel:        "info",
		DefaultNotation: "rgb",
	}
}

// UserPath returns $HOME/.colorhelper/config.yaml.
func UserPath(home string) string {
	return filepath.Join(home, ".colorhelper", DefaultFileName)
}

// merge overlays the non-empty fields of file onto c.
func (c Config) merge(file Config) Config {
	if file.StoreDir != "" {
		c.StoreDir = file.StoreDir
	}
	if file.StatsPath != "" {
		c.StatsPath = file.StatsPath
	}
	if len(file.FormatsOrder) > 0 {
		c.FormatsOrder = append([]string(nil), file.FormatsOrder...)
	}
	if file.LogLevel != "" {
		c.LogLevel = file.LogLevel
	}
	if file.DefaultNotation != "" {
		c.DefaultNotation = file.DefaultNotation
	}
	return c
}

func expandHome(path, home string) string {
	switch {
	case path == "~":
		return home
	case strings.HasPrefix(path, "~/"):
		return filepath.Join(home, path[2:])
	default:
		return path
	}
}

func homeDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return home
}
