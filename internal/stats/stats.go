// Package stats persists the last-used color, notation options and formats
// order between runs.
package stats

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/alexisbeaulieu97/colorhelper/internal/config"
	"github.com/alexisbeaulieu97/colorhelper/internal/logger"
	"github.com/alexisbeaulieu97/colorhelper/internal/options"
	colorerrors "github.com/alexisbeaulieu97/colorhelper/pkg/errors"
)

const fileVersion = "1.0"

// Stats is the state carried from one run to the next.
type Stats struct {
	Format       string      `json:"format,omitempty" validate:"omitempty,notation"`
	Options      options.Bag `json:"options,omitempty"`
	FormatsOrder []string    `json:"formatsOrder,omitempty" validate:"omitempty,unique,dive,notation"`
	Value        string      `json:"value,omitempty"`
	Palette      string      `json:"palette,omitempty"`
	UpdatedAt    time.Time   `json:"updatedAt,omitzero"`
}

// File is the on-disk document.
type File struct {
	Version string `json:"version"`
	Stats   Stats  `json:"stats"`
}

// Store guards the stats file.
type Store struct {
	path    string
	mu      sync.RWMutex
	version string
	stats   Stats
	log     *logger.Logger
}

// Open loads the stats at path. A missing, unreadable or invalid file yields
// empty stats; the failure is logged, never returned.
func Open(path string, log *logger.Logger) *Store {
	s := &Store{path: path, version: fileVersion, log: log.With("stats", path)}
	if err := s.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		s.log.Warn(err, "ignoring stats file")
	}
	return s
}

// Path returns the stats file location.
func (s *Store) Path() string {
	return s.path
}

// Load reads the stats file, replacing the in-memory state. On failure the
// state is reset to empty.
func (s *Store) Load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.stats = Stats{}

	data, err := os.ReadFile(s.path)
	if err != nil {
		return err
	}

	var file File
	if err := json.Unmarshal(data, &file); err != nil {
		return colorerrors.NewParseError(s.path, 0, err)
	}

	if err := config.GetValidator().Struct(file.Stats); err != nil {
		return colorerrors.NewParseError(s.path, 0, config.ConvertValidationError(err))
	}

	if file.Version != "" {
		s.version = file.Version
	}
	s.stats = file.Stats
	return nil
}

// Get returns a copy of the current stats.
func (s *Store) Get() Stats {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.stats.clone()
}

// Update applies fn to the stats under lock and stamps the change time.
func (s *Store) Update(fn func(*Stats)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(&s.stats)
	s.stats.UpdatedAt = time.Now().UTC()
}

// Save writes the stats to disk atomically.
func (s *Store) Save() error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("failed to create stats directory: %w", err)
	}

	data, err := json.MarshalIndent(File{Version: s.version, Stats: s.stats}, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal stats: %w", err)
	}

	tmpPath := s.path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0o644); err != nil {
		return fmt.Errorf("failed to write temporary file: %w", err)
	}

	if err := os.Rename(tmpPath, s.path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("failed to rename temporary file: %w", err)
	}

	return nil
}

func (st Stats) clone() Stats {
	out := st
	out.FormatsOrder = append([]string(nil), st.FormatsOrder...)
	if st.Options != nil {
		out.Options = make(options.Bag, len(st.Options))
		for id, values := range st.Options {
			copied := make(map[string]any, len(values))
			for k, v := range values {
				copied[k] = v
			}
			out.Options[id] = copied
		}
	}
	return out
}
