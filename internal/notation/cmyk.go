package notation

import (
	"github.com/alexisbeaulieu97/colorhelper/internal/color"
)

// CMYK returns the device-cmyk() notation. A trailing fallback color is
// remembered verbatim and replayed while the color stays unchanged.
func CMYK() *Descriptor {
	const id = "cmyk"
	return &Descriptor{
		ID:          id,
		Label:       "CMYK",
		Description: "device-cmyk(<C>, <M>, <Y>, <K>[, <A>[, <F>]])",
		FuncNames:   []string{"device-cmyk"},
		Options: append(append([]OptionSchema{
			boolOption(OptCMYKPercent, "<CMYK>%", "Expresses <C>, <M>, <Y> and <K> as percentage.", true),
		}, alphaOptions()...),
			boolOption(OptFallback, "<F>", "Includes the fallback color <F>.", false),
		),

		parseCall: func(call Call) Result {
			if res, ok := checkArity(id, call, 4, 6); !ok {
				return res
			}
			lit := newLiteral(id, "device-cmyk")

			var (
				cmyk    [4]float64
				percent bool
			)
			for i := range cmyk {
				a, usedPercent, ok := parsePercentOrFraction(call.Args[i])
				if !ok {
					return malformed(id, "invalid channel %q", call.Args[i])
				}
				percent = percent || usedPercent
				cmyk[i] = a.num01
				lit.push(a.text)
			}
			lit.options[OptCMYKPercent] = percent

			fallbackToken := call.Arg(5)
			if call.Arg(4) != "" || fallbackToken == "" {
				if !lit.readAlpha(call, 4) {
					return malformed(id, "invalid alpha %q", call.Args[4])
				}
			} else {
				// An empty alpha slot keeps the fallback position.
				lit.push(generateFraction(1))
			}

			res := lit.result(color.FromCMYK(cmyk[0], cmyk[1], cmyk[2], cmyk[3]))
			res.Fallback = &Fallback{}
			if fallbackToken != "" {
				lit.push(fallbackToken)
				res.Text = lit.text()
				res.Options[OptFallback] = true
				res.Fallback = &Fallback{Token: fallbackToken, Color: res.Color}
			}
			return res
		},

		generate: func(c color.Color, ctx Context) (string, bool) {
			opts := ctx.Options(id)
			percent := opts.Bool(OptCMYKPercent)
			cy, m, y, k := c.CMYK()
			args := []string{
				generatePercentOrFraction(cy, percent),
				generatePercentOrFraction(m, percent),
				generatePercentOrFraction(y, percent),
				generatePercentOrFraction(k, percent),
			}
			alpha, withAlpha := alphaText(c, opts)
			if withAlpha {
				args = append(args, alpha)
			}
			if opts.Bool(OptFallback) {
				if !withAlpha {
					args = append(args, generatePercentOrFraction(c.Alpha(), opts.Bool(OptAlphaPercent)))
				}
				args = append(args, fallbackFor(c, ctx))
			}
			return render("device-cmyk", args), true
		},
	}
}

func fallbackFor(c color.Color, ctx Context) string {
	if fb := ctx.Fallback(); fb != nil && fb.Token != "" && fb.Color.Equal(c) {
		return fb.Token
	}
	if text, ok := ctx.Generate(c, "rgb"); ok {
		return text
	}
	return c.Hex()
}
