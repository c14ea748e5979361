package palette

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"syscall"

	"github.com/alexisbeaulieu97/colorhelper/internal/logger"
	colorerrors "github.com/alexisbeaulieu97/colorhelper/pkg/errors"
)

// DefaultLabel is the label of the always-present keyword palette.
const DefaultLabel = "CSS Colors"

// Options configures a Store.
type Options struct {
	// StoreDir holds the palette files. Empty means the bundled defaults are
	// read in place.
	StoreDir string
	// DefaultDir is the on-disk location of the bundled defaults, if any. A
	// StoreDir equal to it is never seeded.
	DefaultDir string
	// Defaults provides the bundled palette files; nil uses the embedded set.
	Defaults fs.FS
	Parser   ColorParser
	Logger   *logger.Logger
}

// Store lists and loads palettes. Files are re-read on every call.
type Store struct {
	dir      string
	files    fs.FS
	defaults fs.FS
	parser   ColorParser
	log      *logger.Logger
}

// source is one palette file found in the store.
type source struct {
	fileName string
	name     fileName
	label    string
}

// Open prepares the store directory, seeding it with the bundled defaults
// when it is missing or holds no palette. Seeding failures are logged and
// swallowed; a non-directory in place of the store is returned as a
// *ConflictingPathError.
func Open(opts Options) (*Store, error) {
	if opts.Parser == nil {
		return nil, fmt.Errorf("palette store requires a color parser")
	}
	defaults := opts.Defaults
	if defaults == nil {
		defaults = BundledDefaults()
	}

	s := &Store{
		defaults: defaults,
		parser:   opts.Parser,
		log:      opts.Logger,
	}
	if opts.StoreDir == "" {
		s.files = defaults
		return s, nil
	}

	dir, err := filepath.Abs(opts.StoreDir)
	if err != nil {
		return nil, fmt.Errorf("resolve store directory: %w", err)
	}
	s.dir = dir
	s.files = os.DirFS(dir)
	s.log = s.log.With("store", dir)

	if err := s.bootstrap(sameDir(dir, opts.DefaultDir)); err != nil {
		return nil, err
	}
	return s, nil
}

// Dir returns the store directory, empty when reading the bundled defaults.
func (s *Store) Dir() string {
	return s.dir
}

func (s *Store) bootstrap(isDefaultDir bool) error {
	info, err := os.Stat(s.dir)
	switch {
	case err == nil && !info.IsDir():
		return colorerrors.NewConflictingPathError(s.dir, nil)
	case errors.Is(err, syscall.ENOTDIR):
		return colorerrors.NewConflictingPathError(s.dir, err)
	case err == nil:
		if isDefaultDir || len(s.scan()) > 0 {
			return nil
		}
		s.log.Debug("store holds no palette, seeding defaults")
	case errors.Is(err, fs.ErrNotExist):
		if err := os.MkdirAll(s.dir, 0o755); err != nil {
			if errors.Is(err, syscall.ENOTDIR) || errors.Is(err, fs.ErrExist) {
				return colorerrors.NewConflictingPathError(s.dir, err)
			}
			s.log.Warn(colorerrors.NewBootstrapError(s.dir, err), "cannot create store directory")
			return nil
		}
	default:
		s.log.Warn(colorerrors.NewBootstrapError(s.dir, err), "cannot inspect store directory")
		return nil
	}

	if err := s.seed(); err != nil {
		s.log.Warn(colorerrors.NewBootstrapError(s.dir, err), "cannot copy default palettes")
	}
	return nil
}

// seed copies every bundled file into the store directory.
func (s *Store) seed() error {
	entries, err := fs.ReadDir(s.defaults, ".")
	if err != nil {
		return err
	}
	for _, entry := range entries {
		if !entry.Type().IsRegular() {
			continue
		}
		data, err := fs.ReadFile(s.defaults, entry.Name())
		if err != nil {
			return err
		}
		if err := os.WriteFile(filepath.Join(s.dir, entry.Name()), data, 0o644); err != nil {
			return err
		}
	}
	s.log.Info("default palettes copied", "count", len(entries))
	return nil
}

// scan lists the palette files of the store. Unreadable files are skipped.
func (s *Store) scan() []source {
	entries, err := fs.ReadDir(s.files, ".")
	if err != nil {
		s.log.Debug("cannot read store", "error", err.Error())
		return nil
	}

	var sources []source
	for _, entry := range entries {
		if !entry.Type().IsRegular() {
			continue
		}
		name, ok := parseFileName(entry.Name())
		if !ok {
			continue
		}
		src := source{fileName: entry.Name(), name: name, label: name.base}
		if !name.noLabel {
			records, err := s.read(src)
			if err != nil {
				s.log.Debug("skipping palette file", "file", src.fileName, "error", err.Error())
				continue
			}
			if label, _, ok := splitLabel(records); ok && label != "" {
				src.label = label
			}
		}
		sources = append(sources, src)
	}
	return sources
}

func (s *Store) read(src source) ([]any, error) {
	data, err := fs.ReadFile(s.files, src.fileName)
	if err != nil {
		return nil, colorerrors.NewParseError(src.fileName, 0, err)
	}
	records, line, err := decode(data, src.name)
	if err != nil {
		return nil, colorerrors.NewParseError(src.fileName, line, err)
	}
	return records, nil
}

// List returns the default palette followed by the store's palettes ordered
// case-insensitively by base name.
func (s *Store) List() []Summary {
	sources := s.scan()
	sort.SliceStable(sources, func(i, j int) bool {
		ki, kj := strings.ToLower(sources[i].name.base), strings.ToLower(sources[j].name.base)
		if ki != kj {
			return ki < kj
		}
		return sources[i].fileName < sources[j].fileName
	})

	list := make([]Summary, 0, len(sources)+1)
	list = append(list, Summary{FileName: "", Label: DefaultLabel})
	for _, src := range sources {
		list = append(list, Summary{FileName: src.fileName, Label: src.label})
	}
	return list
}

// Palette loads a palette by file name. The empty name, and any name that is
// not a readable palette file, yield the default palette.
func (s *Store) Palette(name string) Palette {
	if name == "" || name != filepath.Base(name) {
		return Default()
	}
	parsed, ok := parseFileName(name)
	if !ok {
		return Default()
	}
	src := source{fileName: name, name: parsed, label: parsed.base}
	records, err := s.read(src)
	if err != nil {
		s.log.Debug("palette unavailable, using default", "file", name, "error", err.Error())
		return Default()
	}

	if !parsed.noLabel {
		label, rest, ok := splitLabel(records)
		if ok {
			records = rest
			if label != "" {
				src.label = label
			}
		}
	}
	return Palette{
		FileName: name,
		Label:    src.label,
		Entries:  s.entries(name, records),
	}
}

func (s *Store) entries(file string, records []any) []Entry {
	entries := make([]Entry, 0, len(records))
	for i, record := range records {
		entry, ok := ParseElement(record, s.parser)
		if !ok {
			s.log.Debug("skipping palette record", "file", file, "position", i+1)
			continue
		}
		if entry.Name == "" {
			entry.Name = fmt.Sprintf("#%d", i+1)
		}
		entries = append(entries, entry)
	}
	return entries
}

func sameDir(a, b string) bool {
	if a == "" || b == "" {
		return false
	}
	absB, err := filepath.Abs(b)
	if err != nil {
		return false
	}
	return filepath.Clean(a) == filepath.Clean(absB)
}
