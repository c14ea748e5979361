package config

import (
	"errors"
	"fmt"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"

	colorerrors "github.com/alexisbeaulieu97/colorhelper/pkg/errors"
)

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

// Load resolves the configuration. An explicit path must exist; otherwise
// $HOME/.colorhelper/config.yaml is used when present, else the defaults.
func Load(explicit string) (*Config, error) {
	return load(explicit, homeDir())
}

func load(explicit, home string) (*Config, error) {
	cfg := Defaults(home)

	path := explicit
	if path == "" {
		candidate := UserPath(home)
		if _, err := os.Stat(candidate); err != nil {
			if errors.Is(err, os.ErrNotExist) {
				return &cfg, nil
			}
			return nil, colorerrors.NewParseError(candidate, 0, err)
		}
		path = candidate
	}

	file, err := ParseConfig(expandHome(path, home))
	if err != nil {
		return nil, err
	}

	cfg = cfg.merge(*file)
	cfg.StoreDir = expandHome(cfg.StoreDir, home)
	cfg.StatsPath = expandHome(cfg.StatsPath, home)
	return &cfg, nil
}

// ParseConfig loads a configuration file from disk, validates it, and returns
// the values it sets. Unset fields are left empty.
func ParseConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, colorerrors.NewParseError(path, 0, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, colorerrors.NewParseError(path, extractLine(err), err)
	}

	if err := ValidateConfig(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func extractLine(err error) int {
	if err == nil {
		return 0
	}

	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}

	var line int
	if _, scanErr := fmt.Sscanf(matches[1], "%d", &line); scanErr != nil {
		return 0
	}

	return line
}
