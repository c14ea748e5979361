package notation

import (
	"fmt"
	"strings"
	"sync"

	colorerrors "github.com/alexisbeaulieu97/colorhelper/pkg/errors"
)

// Registry is an ordered catalogue of notations. Registration order is the
// priority order for non-functional notations.
type Registry struct {
	mu      sync.RWMutex
	ordered []*Descriptor
	byID    map[string]*Descriptor
	byFunc  map[string]*Descriptor
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		byID:   make(map[string]*Descriptor),
		byFunc: make(map[string]*Descriptor),
	}
}

// Builtins returns fresh descriptors of the built-in notations in their
// default formats order.
func Builtins() []*Descriptor {
	return []*Descriptor{HSB(), HSL(), HWB(), RGB(), Hex(), Named(), CMYK(), Gray()}
}

var (
	defaultOnce     sync.Once
	defaultRegistry *Registry
)

// Default returns the shared registry of built-in notations.
func Default() *Registry {
	defaultOnce.Do(func() {
		reg := NewRegistry()
		for _, d := range Builtins() {
			if err := reg.Register(d); err != nil {
				panic(err)
			}
		}
		defaultRegistry = reg
	})
	return defaultRegistry
}

// Register adds a notation. Ids and function names must be unique.
func (r *Registry) Register(d *Descriptor) error {
	if d == nil {
		return colorerrors.NewRegistryError("", fmt.Errorf("descriptor is nil"))
	}
	if err := d.validate(); err != nil {
		return colorerrors.NewRegistryError(d.ID, err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[d.ID]; exists {
		return colorerrors.NewRegistryError(d.ID, fmt.Errorf("notation already registered"))
	}
	for _, name := range d.FuncNames {
		if owner, exists := r.byFunc[strings.ToLower(name)]; exists {
			return colorerrors.NewRegistryError(d.ID,
				fmt.Errorf("function '%s' already handled by '%s'", name, owner.ID))
		}
	}

	r.byID[d.ID] = d
	for _, name := range d.FuncNames {
		r.byFunc[strings.ToLower(name)] = d
	}
	r.ordered = append(r.ordered, d)
	return nil
}

// Lookup retrieves a notation by id.
func (r *Registry) Lookup(id string) (*Descriptor, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	d, ok := r.byID[id]
	return d, ok
}

// ForFunc retrieves the notation handling a function name, case-insensitively.
func (r *Registry) ForFunc(name string) (*Descriptor, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	d, ok := r.byFunc[strings.ToLower(name)]
	return d, ok
}

// Descriptors returns the notations in registration order.
func (r *Registry) Descriptors() []*Descriptor {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*Descriptor, len(r.ordered))
	copy(out, r.ordered)
	return out
}

// IDs returns the notation ids in registration order.
func (r *Registry) IDs() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	ids := make([]string, len(r.ordered))
	for i, d := range r.ordered {
		ids[i] = d.ID
	}
	return ids
}

// ParseText dispatches text to the notation it belongs to. A function-shaped
// text is only ever offered to the notation owning its function name; a
// Malformed outcome is final.
func (r *Registry) ParseText(text string) Result {
	text = strings.TrimSpace(StripComments(text))
	if text == "" {
		return notThis()
	}

	call, shaped, err := SplitFunc(text)
	if shaped {
		d, ok := r.ForFunc(call.Name)
		if !ok {
			return notThis()
		}
		if err != nil {
			return malformed(d.ID, "%v", err)
		}
		return d.ParseCall(call)
	}

	for _, d := range r.Descriptors() {
		if d.Functional() {
			continue
		}
		if res := d.ParseText(text); res.Outcome != NotThis {
			return res
		}
	}
	return notThis()
}
