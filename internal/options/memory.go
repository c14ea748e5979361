// Package options remembers the stylistic choices of each notation across
// parse and generate calls of one session.
package options

import (
	"maps"

	"github.com/alexisbeaulieu97/colorhelper/internal/notation"
)

// Bag maps notation ids to option values, the shape persisted in stats and
// accepted from callers.
type Bag map[string]map[string]any

// Memory holds the current option values of every registered notation and the
// last captured device-cmyk fallback. It is owned by a single session and is
// not safe for concurrent use.
type Memory struct {
	reg      *notation.Registry
	values   map[string]notation.Values
	fallback *notation.Fallback
}

// New returns a memory seeded with the schema defaults of reg.
func New(reg *notation.Registry) *Memory {
	m := &Memory{reg: reg, values: make(map[string]notation.Values)}
	m.Reset()
	return m
}

// Capture merges the options a parsed literal expressed. Keys the notation
// does not declare are ignored, as are enum values outside the declared set.
func (m *Memory) Capture(notationID string, parsed notation.Values) {
	d, ok := m.reg.Lookup(notationID)
	if !ok {
		return
	}
	current := m.values[notationID]
	for id, value := range parsed {
		schema, ok := d.Option(id)
		if !ok {
			continue
		}
		coerced, ok := schema.Coerce(value)
		if !ok {
			continue
		}
		current[id] = coerced
	}
}

// Apply returns a copy of the current options of a notation. Unset options
// carry their defaults.
func (m *Memory) Apply(notationID string) notation.Values {
	if values, ok := m.values[notationID]; ok {
		return values.Clone()
	}
	return notation.Values{}
}

// SetExternal merges a whole bag with the same validation as Capture.
func (m *Memory) SetExternal(bag Bag) {
	for notationID, values := range bag {
		m.Capture(notationID, notation.Values(values))
	}
}

// Snapshot exports every option value.
func (m *Memory) Snapshot() Bag {
	out := make(Bag, len(m.values))
	for id, values := range m.values {
		out[id] = maps.Clone(map[string]any(values))
	}
	return out
}

// Reset restores the schema defaults and forgets the fallback.
func (m *Memory) Reset() {
	for _, d := range m.reg.Descriptors() {
		m.values[d.ID] = d.Defaults()
	}
	m.fallback = nil
}

// Clone returns an independent copy.
func (m *Memory) Clone() *Memory {
	c := &Memory{reg: m.reg, values: make(map[string]notation.Values, len(m.values))}
	for id, values := range m.values {
		c.values[id] = values.Clone()
	}
	if m.fallback != nil {
		fb := *m.fallback
		c.fallback = &fb
	}
	return c
}

// SetFallback records the fallback of the last parsed device-cmyk literal.
// An empty token clears it.
func (m *Memory) SetFallback(fb *notation.Fallback) {
	if fb == nil || fb.Token == "" {
		m.fallback = nil
		return
	}
	captured := *fb
	m.fallback = &captured
}

// Fallback returns the captured device-cmyk fallback, or nil.
func (m *Memory) Fallback() *notation.Fallback {
	return m.fallback
}
