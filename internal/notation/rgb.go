package notation

import (
	"github.com/alexisbeaulieu97/colorhelper/internal/color"
)

// RGB returns the rgb()/rgba() notation. Channels may mix 0-255 and percent
// forms; any percent channel switches the remembered flag on.
func RGB() *Descriptor {
	const id = "rgb"
	return &Descriptor{
		ID:          id,
		Label:       "RGB",
		Description: "rgb(<R>, <G>, <B>[, <A>])",
		FuncNames:   []string{"rgb", "rgba"},
		Options: append([]OptionSchema{
			boolOption(OptRGBPercent, "<RGB>%", "Expresses <R>, <G> and <B> as percentage.", true),
		}, alphaOptions()...),

		parseCall: func(call Call) Result {
			if res, ok := checkArity(id, call, 3, 4); !ok {
				return res
			}
			name := "rgb"
			if len(call.Args) > 3 {
				name = "rgba"
			}
			lit := newLiteral(id, name)

			var (
				rgb     [3]float64
				percent bool
			)
			for i := range rgb {
				a, usedPercent, ok := parseByteOrPercent(call.Args[i])
				if !ok {
					return malformed(id, "invalid channel %q", call.Args[i])
				}
				percent = percent || usedPercent
				rgb[i] = a.num01
				lit.push(a.text)
			}
			lit.options[OptRGBPercent] = percent
			if !lit.readAlpha(call, 3) {
				return malformed(id, "invalid alpha %q", call.Args[3])
			}
			return lit.result(color.FromRGB(rgb[0], rgb[1], rgb[2]))
		},

		generate: func(c color.Color, ctx Context) (string, bool) {
			opts := ctx.Options(id)
			percent := opts.Bool(OptRGBPercent)
			r, g, b := c.RGB()
			args := []string{
				generateByteOrPercent(r, percent),
				generateByteOrPercent(g, percent),
				generateByteOrPercent(b, percent),
			}
			name := "rgb"
			if alpha, ok := alphaText(c, opts); ok {
				name = "rgba"
				args = append(args, alpha)
			}
			return render(name, args), true
		},
	}
}
