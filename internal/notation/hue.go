package notation

import (
	"github.com/alexisbeaulieu97/colorhelper/internal/color"
)

// hueSpec describes a notation of the form name(<hue>, <x>%, <y>%[, <alpha>]).
type hueSpec struct {
	id          string
	label       string
	description string
	name        string
	// alphaName is the function name used when alpha is written; empty
	// keeps name.
	alphaName string
	build     func(h, x, y float64) color.Color
	split     func(c color.Color) (h, x, y float64)
}

func hueNotation(def hueSpec) *Descriptor {
	funcNames := []string{def.name}
	if def.alphaName != "" {
		funcNames = append(funcNames, def.alphaName)
	}
	nameFor := func(withAlpha bool) string {
		if withAlpha && def.alphaName != "" {
			return def.alphaName
		}
		return def.name
	}

	return &Descriptor{
		ID:          def.id,
		Label:       def.label,
		Description: def.description,
		FuncNames:   funcNames,
		Options:     append([]OptionSchema{hueUnitOption()}, alphaOptions()...),

		parseCall: func(call Call) Result {
			if res, ok := checkArity(def.id, call, 3, 4); !ok {
				return res
			}
			lit := newLiteral(def.id, nameFor(len(call.Args) > 3))

			hue, ok := parseAngle(call.Args[0])
			if !ok {
				return malformed(def.id, "invalid hue %q", call.Args[0])
			}
			lit.push(hue.text)
			lit.options[OptHueUnit] = hue.unit

			var xy [2]float64
			for i := range xy {
				a, ok := parsePercent(call.Args[i+1])
				if !ok {
					return malformed(def.id, "invalid percentage %q", call.Args[i+1])
				}
				xy[i] = a.num01
				lit.push(a.text)
			}
			if !lit.readAlpha(call, 3) {
				return malformed(def.id, "invalid alpha %q", call.Args[3])
			}
			return lit.result(def.build(hue.num01, xy[0], xy[1]))
		},

		generate: func(c color.Color, ctx Context) (string, bool) {
			opts := ctx.Options(def.id)
			h, x, y := def.split(c)
			args := []string{
				generateAngle(h, opts.String(OptHueUnit)),
				generatePercent(x),
				generatePercent(y),
			}
			alpha, withAlpha := alphaText(c, opts)
			if withAlpha {
				args = append(args, alpha)
			}
			return render(nameFor(withAlpha), args), true
		},
	}
}

// HSB returns the hsb()/hsba() notation.
func HSB() *Descriptor {
	return hueNotation(hueSpec{
		id:          "hsb",
		label:       "HSB",
		description: "hsb(<H>, <S>%, <B>%[, <A>])",
		name:        "hsb",
		alphaName:   "hsba",
		build:       color.FromHSV,
		split:       color.Color.HSV,
	})
}

// HSL returns the hsl()/hsla() notation.
func HSL() *Descriptor {
	return hueNotation(hueSpec{
		id:          "hsl",
		label:       "HSL",
		description: "hsl(<H>, <S>%, <L>%[, <A>])",
		name:        "hsl",
		alphaName:   "hsla",
		build:       color.FromHSL,
		split:       color.Color.HSL,
	})
}

// HWB returns the hwb() notation.
func HWB() *Descriptor {
	return hueNotation(hueSpec{
		id:          "hwb",
		label:       "HWB",
		description: "hwb(<H>, <W>%, <B>%[, <A>])",
		name:        "hwb",
		build:       color.FromHWB,
		split:       color.Color.HWB,
	})
}
