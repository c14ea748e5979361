package notation

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/alexisbeaulieu97/colorhelper/internal/numeric"
)

const numberPattern = `-?\d+(?:\.\d+)?`

var (
	reNumber  = regexp.MustCompile(`^(` + numberPattern + `)$`)
	rePercent = regexp.MustCompile(`^(` + numberPattern + `) *%$`)
	reAngle   = regexp.MustCompile(`(?i)^(` + numberPattern + `) *(deg|grad|rad|turn)?$`)
)

// Angle units. The empty unit is written as a bare number and read as deg.
const (
	UnitNone = ""
	UnitDeg  = "deg"
	UnitGrad = "grad"
	UnitRad  = "rad"
	UnitTurn = "turn"
)

// AngleUnits lists the accepted values of a hue unit option.
var AngleUnits = []string{UnitNone, UnitDeg, UnitGrad, UnitRad, UnitTurn}

var fullCircle = map[string]float64{
	UnitDeg:  360,
	UnitGrad: 400,
	UnitRad:  2 * math.Pi,
	UnitTurn: 1,
}

// angleDigits keeps every unit at 0.1deg resolution or finer.
var angleDigits = map[string]int{
	UnitRad:  3,
	UnitTurn: 4,
}

func circleOf(unit string) float64 {
	if full, ok := fullCircle[unit]; ok {
		return full
	}
	return fullCircle[UnitDeg]
}

// arg is one parsed numeric argument.
type arg struct {
	text  string
	num01 float64
}

type angleArg struct {
	arg
	unit string
}

func number(s string) float64 {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}

// parseAngle reads a hue such as "0100 grad" into "100grad" and a fraction of
// the full circle. Values outside the circle wrap around.
func parseAngle(text string) (angleArg, bool) {
	matches := reAngle.FindStringSubmatch(text)
	if matches == nil {
		return angleArg{}, false
	}
	unit := strings.ToLower(matches[2])
	full := circleOf(unit)
	num := numeric.Wrap(number(matches[1]), full)

	normalized := numeric.Wrap(numeric.Fix(num, 0, full, numeric.TextDigits), full)
	return angleArg{
		arg: arg{
			text:  numeric.Format(normalized) + unit,
			num01: numeric.Wrap(num/full, 1),
		},
		unit: unit,
	}, true
}

// parsePercent reads "050 %" into "50%" and 0.5.
func parsePercent(text string) (arg, bool) {
	matches := rePercent.FindStringSubmatch(text)
	if matches == nil {
		return arg{}, false
	}
	num := numeric.Fix(number(matches[1]), 0, 100, numeric.TextDigits)
	return arg{
		text:  numeric.Format(num) + "%",
		num01: numeric.Unit(num / 100),
	}, true
}

// parseFraction reads a bare number in [0, 1] such as "00.80" into "0.8".
func parseFraction(text string) (arg, bool) {
	matches := reNumber.FindStringSubmatch(text)
	if matches == nil {
		return arg{}, false
	}
	num01 := numeric.Unit(number(matches[1]))
	return arg{text: numeric.Format(num01), num01: num01}, true
}

// parseByte reads a 0-255 channel such as "00127" into "127" and 0.49804.
func parseByte(text string) (arg, bool) {
	matches := reNumber.FindStringSubmatch(text)
	if matches == nil {
		return arg{}, false
	}
	num := numeric.Fix(number(matches[1]), 0, 255, numeric.TextDigits)
	return arg{text: numeric.Format(num), num01: numeric.Unit(num / 255)}, true
}

// parseByteOrPercent reads a channel written either way and reports whether
// the percent form was used.
func parseByteOrPercent(text string) (arg, bool, bool) {
	if a, ok := parseByte(text); ok {
		return a, false, true
	}
	if a, ok := parsePercent(text); ok {
		return a, true, true
	}
	return arg{}, false, false
}

// parsePercentOrFraction reads a value written as a percent or a bare
// fraction and reports whether the percent form was used.
func parsePercentOrFraction(text string) (arg, bool, bool) {
	if a, ok := parsePercent(text); ok {
		return a, true, true
	}
	if a, ok := parseFraction(text); ok {
		return a, false, true
	}
	return arg{}, false, false
}

func generateAngle(num01 float64, unit string) string {
	full := circleOf(unit)
	digits, ok := angleDigits[unit]
	if !ok {
		digits = 1
	}
	num := numeric.Wrap(numeric.Fix(numeric.Wrap(num01, 1)*full, 0, full, digits), full)
	return numeric.Format(num) + unit
}

func generatePercent(num01 float64) string {
	return numeric.Format(numeric.Fix(num01*100, 0, 100, 1)) + "%"
}

func generateFraction(num01 float64) string {
	return numeric.Format(numeric.Fix(num01, 0, 1, 3))
}

func generateByte(num01 float64) string {
	return numeric.Format(numeric.Fix(num01*255, 0, 255, 0))
}

func generatePercentOrFraction(num01 float64, percent bool) string {
	if percent {
		return generatePercent(num01)
	}
	return generateFraction(num01)
}

func generateByteOrPercent(num01 float64, percent bool) string {
	if percent {
		return generatePercent(num01)
	}
	return generateByte(num01)
}
