package notation

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/alexisbeaulieu97/colorhelper/internal/color"
	"github.com/alexisbeaulieu97/colorhelper/internal/numeric"
)

var (
	reHex      = regexp.MustCompile(`^#([0-9a-fA-F]{3,4}|[0-9a-fA-F]{6}|[0-9a-fA-F]{8})$`)
	reHexUpper = regexp.MustCompile(`[A-F]`)
	reHexLower = regexp.MustCompile(`[a-f]`)
)

// Hex returns the #rgb / #rgba / #rrggbb / #rrggbbaa notation.
func Hex() *Descriptor {
	const id = "hex"
	return &Descriptor{
		ID:          id,
		Label:       "Hex",
		Description: "#<RR><GG><BB>[<AA>]",
		Options: []OptionSchema{
			boolOption(OptLongForm, "Not short", "Does not use the 3 or 4 digit variant.", false),
			boolOption(OptUppercase, "UC", "Uses upper-case characters.", false),
			boolOption(OptAlphaAlways, "<A>100", "Includes <A> even when it is ff.", false),
		},

		parseText: func(text string) Result {
			matches := reHex.FindStringSubmatch(text)
			if matches == nil {
				return notThis()
			}
			digits := matches[1]
			options := Values{}
			if len(digits) <= 4 {
				var long strings.Builder
				for _, d := range digits {
					long.WriteRune(d)
					long.WriteRune(d)
				}
				digits = long.String()
				options[OptLongForm] = false
			}

			channels := make([]float64, 0, 4)
			for i := 0; i < len(digits); i += 2 {
				v, err := strconv.ParseUint(digits[i:i+2], 16, 8)
				if err != nil {
					return notThis()
				}
				channels = append(channels, numeric.Unit(float64(v)/255))
			}
			alpha := 1.0
			if len(channels) == 4 {
				alpha = channels[3]
			}

			switch {
			case reHexUpper.MatchString(text):
				options[OptUppercase] = true
				text = strings.ToUpper(text)
			case reHexLower.MatchString(text):
				options[OptUppercase] = false
			}

			return Result{
				Outcome:  Matched,
				Notation: id,
				Text:     text,
				Color:    color.FromRGBA(channels[0], channels[1], channels[2], alpha),
				Options:  options,
			}
		},

		generate: func(c color.Color, ctx Context) (string, bool) {
			opts := ctx.Options(id)
			r, g, b, a := c.RGBA()
			channels := []float64{r, g, b}
			if a < 1 || opts.Bool(OptAlphaAlways) {
				channels = append(channels, a)
			}

			long := make([]string, len(channels))
			short := make([]string, 0, len(channels))
			for i, ch := range channels {
				pair := fmt.Sprintf("%02x", int(numeric.Fix(ch*255, 0, 255, 0)))
				long[i] = pair
				if pair[0] == pair[1] {
					short = append(short, pair[:1])
				}
			}

			digits := long
			if !opts.Bool(OptLongForm) && len(short) == len(long) {
				digits = short
			}
			text := "#" + strings.Join(digits, "")
			if opts.Bool(OptUppercase) {
				return strings.ToUpper(text), true
			}
			return text, true
		},
	}
}
