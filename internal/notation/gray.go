package notation

import (
	"github.com/alexisbeaulieu97/colorhelper/internal/color"
)

// Gray returns the gray() notation. Colors whose channels differ cannot be
// written with it.
func Gray() *Descriptor {
	const id = "gray"
	return &Descriptor{
		ID:          id,
		Label:       "Gray",
		Description: "gray(<S>[, <A>])",
		FuncNames:   []string{"gray"},
		Options: append([]OptionSchema{
			boolOption(OptGrayPercent, "<S>%", "Expresses <S> as percentage.", true),
		}, alphaOptions()...),

		parseCall: func(call Call) Result {
			if res, ok := checkArity(id, call, 1, 2); !ok {
				return res
			}
			lit := newLiteral(id, "gray")
			shade, percent, ok := parseByteOrPercent(call.Args[0])
			if !ok {
				return malformed(id, "invalid shade %q", call.Args[0])
			}
			lit.push(shade.text)
			lit.options[OptGrayPercent] = percent
			if !lit.readAlpha(call, 1) {
				return malformed(id, "invalid alpha %q", call.Args[1])
			}
			return lit.result(color.FromRGB(shade.num01, shade.num01, shade.num01))
		},

		generate: func(c color.Color, ctx Context) (string, bool) {
			if !c.IsGray() {
				return "", false
			}
			opts := ctx.Options(id)
			r, _, _ := c.RGB()
			args := []string{generateByteOrPercent(r, opts.Bool(OptGrayPercent))}
			if alpha, ok := alphaText(c, opts); ok {
				args = append(args, alpha)
			}
			return render("gray", args), true
		},
	}
}
