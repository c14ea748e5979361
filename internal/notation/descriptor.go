// Package notation implements the textual color notations: the argument
// tokenizer, the per-notation parse and generate rules and the registry that
// dispatches a text to the notation it belongs to.
package notation

import (
	"fmt"
	"math"
	"slices"

	"github.com/alexisbeaulieu97/colorhelper/internal/color"
)

// OptionKind identifies the shape of an option value.
type OptionKind string

const (
	KindBoolean OptionKind = "boolean"
	KindEnum    OptionKind = "enum"
)

// OptionSchema declares one stylistic option of a notation.
type OptionSchema struct {
	ID          string     `json:"id"`
	Label       string     `json:"label"`
	Description string     `json:"description"`
	Kind        OptionKind `json:"kind"`
	Values      []string   `json:"values,omitempty"`
	Default     any        `json:"default"`
}

// Accepts reports whether value is a member of the enum set. Boolean options
// accept anything because values are coerced.
func (o OptionSchema) Accepts(value any) bool {
	if o.Kind != KindEnum {
		return true
	}
	s, ok := value.(string)
	return ok && slices.Contains(o.Values, s)
}

// Coerce converts value into the option's native type. The second result is
// false when the value must be rejected.
func (o OptionSchema) Coerce(value any) (any, bool) {
	if o.Kind == KindEnum {
		if !o.Accepts(value) {
			return nil, false
		}
		return value, true
	}
	return truthy(value), true
}

func truthy(value any) bool {
	switch v := value.(type) {
	case nil:
		return false
	case bool:
		return v
	case string:
		return v != ""
	case int:
		return v != 0
	case int64:
		return v != 0
	case float64:
		return v != 0 && !math.IsNaN(v)
	default:
		return true
	}
}

// Values maps option ids to their current value (bool or string).
type Values map[string]any

// Bool returns the boolean option id, false when unset.
func (v Values) Bool(id string) bool {
	b, _ := v[id].(bool)
	return b
}

// String returns the enum option id, "" when unset.
func (v Values) String(id string) string {
	s, _ := v[id].(string)
	return s
}

// Clone returns a shallow copy.
func (v Values) Clone() Values {
	out := make(Values, len(v))
	for k, val := range v {
		out[k] = val
	}
	return out
}

// Outcome is the tri-state answer of a notation parser.
type Outcome int

const (
	// NotThis means the text does not belong to the notation.
	NotThis Outcome = iota
	// Malformed means the text belongs to the notation but is invalid.
	Malformed
	// Matched means the text was parsed.
	Matched
)

func (o Outcome) String() string {
	switch o {
	case Malformed:
		return "malformed"
	case Matched:
		return "matched"
	default:
		return "not-this"
	}
}

// Fallback is the trailing fallback color token of a device-cmyk() literal
// together with the color it was captured with.
type Fallback struct {
	Token string
	Color color.Color
}

// Result is what a notation parser returns.
type Result struct {
	Outcome  Outcome
	Notation string
	// Text is the normalized literal.
	Text  string
	Color color.Color
	// Options holds only the options the literal expressed.
	Options Values
	// Fallback is non-nil for notations that carry a fallback token; an
	// empty Token clears a previous capture.
	Fallback *Fallback
	// Reason explains a Malformed outcome.
	Reason string
}

func notThis() Result {
	return Result{Outcome: NotThis}
}

func malformed(id, format string, args ...any) Result {
	return Result{Outcome: Malformed, Notation: id, Reason: fmt.Sprintf(format, args...)}
}

// Context supplies generation with the session state it depends on.
type Context interface {
	// Options returns the current options of a notation, defaults filled in.
	Options(notationID string) Values
	// Fallback returns the last captured device-cmyk fallback, if any.
	Fallback() *Fallback
	// Generate renders c in another notation.
	Generate(c color.Color, notationID string) (string, bool)
}

// Descriptor describes one notation.
type Descriptor struct {
	ID          string
	Label       string
	Description string
	// FuncNames lists the recognized function names; empty for
	// non-functional notations such as hex or keywords.
	FuncNames []string
	Options   []OptionSchema

	parseCall func(call Call) Result
	parseText func(text string) Result
	generate  func(c color.Color, ctx Context) (string, bool)
}

// Functional reports whether the notation is written as name(args...).
func (d *Descriptor) Functional() bool {
	return len(d.FuncNames) > 0
}

// Defaults returns the option defaults of the notation.
func (d *Descriptor) Defaults() Values {
	values := make(Values, len(d.Options))
	for _, opt := range d.Options {
		values[opt.ID] = opt.Default
	}
	return values
}

// Option looks up an option schema by id.
func (d *Descriptor) Option(id string) (OptionSchema, bool) {
	for _, opt := range d.Options {
		if opt.ID == id {
			return opt, true
		}
	}
	return OptionSchema{}, false
}

// ParseCall interprets an already tokenized function call.
func (d *Descriptor) ParseCall(call Call) Result {
	if d.parseCall == nil {
		return notThis()
	}
	return d.parseCall(call)
}

// ParseText interprets a bare text for non-functional notations.
func (d *Descriptor) ParseText(text string) Result {
	if d.parseText == nil {
		return notThis()
	}
	return d.parseText(text)
}

// Generate renders c. The second result is false when c cannot be expressed
// in this notation.
func (d *Descriptor) Generate(c color.Color, ctx Context) (string, bool) {
	if d.generate == nil {
		return "", false
	}
	return d.generate(c, ctx)
}

func (d *Descriptor) validate() error {
	if d.ID == "" {
		return fmt.Errorf("notation id is empty")
	}
	if d.generate == nil {
		return fmt.Errorf("notation '%s' has no generator", d.ID)
	}
	if d.Functional() && d.parseCall == nil {
		return fmt.Errorf("notation '%s' declares functions but no call parser", d.ID)
	}
	if !d.Functional() && d.parseText == nil {
		return fmt.Errorf("notation '%s' has no text parser", d.ID)
	}
	seen := make(map[string]struct{}, len(d.Options))
	for _, opt := range d.Options {
		if _, dup := seen[opt.ID]; dup {
			return fmt.Errorf("notation '%s' declares option '%s' twice", d.ID, opt.ID)
		}
		seen[opt.ID] = struct{}{}
		if opt.Kind == KindEnum && !opt.Accepts(opt.Default) {
			return fmt.Errorf("notation '%s' option '%s' default is not an allowed value", d.ID, opt.ID)
		}
	}
	return nil
}
