package notation

import (
	"strings"

	"github.com/alexisbeaulieu97/colorhelper/internal/color"
)

// Option ids shared by several notations.
const (
	OptHueUnit      = "hue_unit"
	OptAlphaPercent = "alpha_percent"
	OptAlphaAlways  = "alpha_always"
	OptRGBPercent   = "rgb_percent"
	OptLongForm     = "long_form"
	OptUppercase    = "uppercase"
	OptCMYKPercent  = "cmyk_percent"
	OptFallback     = "fallback"
	OptGrayPercent  = "gray_percent"
)

func boolOption(id, label, description string, def bool) OptionSchema {
	return OptionSchema{ID: id, Label: label, Description: description, Kind: KindBoolean, Default: def}
}

func hueUnitOption() OptionSchema {
	return OptionSchema{
		ID:          OptHueUnit,
		Label:       "<H>",
		Description: "Unit of <H>. A bare number is read as deg.",
		Kind:        KindEnum,
		Values:      AngleUnits,
		Default:     UnitNone,
	}
}

func alphaOptions() []OptionSchema {
	return []OptionSchema{
		boolOption(OptAlphaPercent, "<A>%", "Expresses <A> as percentage.", false),
		boolOption(OptAlphaAlways, "<A>100", "Includes <A> even when it is 100% or 1.0.", false),
	}
}

// literal accumulates the normalized arguments of a functional literal.
type literal struct {
	id      string
	name    string
	args    []string
	options Values
	alpha   float64
}

func newLiteral(id, name string) *literal {
	return &literal{id: id, name: name, options: Values{}, alpha: 1}
}

func (l *literal) push(text string) {
	l.args = append(l.args, text)
}

// readAlpha parses the optional alpha argument at index i. It returns false
// when the argument is present but invalid.
func (l *literal) readAlpha(call Call, i int) bool {
	if i >= len(call.Args) {
		return true
	}
	a, percent, ok := parsePercentOrFraction(call.Args[i])
	if !ok {
		return false
	}
	l.alpha = a.num01
	l.options[OptAlphaPercent] = percent
	l.push(a.text)
	return true
}

func (l *literal) text() string {
	return l.name + "(" + strings.Join(l.args, ", ") + ")"
}

func (l *literal) result(c color.Color) Result {
	return Result{
		Outcome:  Matched,
		Notation: l.id,
		Text:     l.text(),
		Color:    c.WithAlpha(l.alpha),
		Options:  l.options,
	}
}

// checkArity validates the argument count of a call.
func checkArity(id string, call Call, min, max int) (Result, bool) {
	switch n := len(call.Args); {
	case n < min:
		return malformed(id, "%s() expects at least %d arguments, got %d", call.Name, min, n), false
	case n > max:
		return malformed(id, "%s() expects at most %d arguments, got %d", call.Name, max, n), false
	}
	return Result{}, true
}

// alphaText renders the alpha argument when it is needed or forced.
func alphaText(c color.Color, opts Values) (string, bool) {
	a := c.Alpha()
	if a < 1 || opts.Bool(OptAlphaAlways) {
		return generatePercentOrFraction(a, opts.Bool(OptAlphaPercent)), true
	}
	return "", false
}

func render(name string, args []string) string {
	return name + "(" + strings.Join(args, ", ") + ")"
}
