package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/colorhelper/internal/stats"
)

type parseOptions struct {
	jsonOutput bool
}

type parseJSONPayload struct {
	Notation string         `json:"notation"`
	Text     string         `json:"text"`
	RGBA     [4]float64     `json:"rgba"`
	Hex      string         `json:"hex"`
	Options  map[string]any `json:"options"`
}

func newParseCmd(rootFlags *rootFlags) *cobra.Command {
	opts := &parseOptions{}

	cmd := &cobra.Command{
		Use:   "parse <text>",
		Short: "Identify the notation of a color text and normalize it",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runParse(cmd, rootFlags, opts, strings.Join(args, " "))
		},
	}

	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Output in JSON format")

	return cmd
}

func runParse(cmd *cobra.Command, rootFlags *rootFlags, opts *parseOptions, text string) error {
	app, err := loadAppContext(cmd, "parse", rootFlags)
	if err != nil {
		return err
	}

	parsed, err := app.session.Parse(text)
	if err != nil {
		return newCommandError("parse", fmt.Sprintf("reading %q", text), err, "Run 'colorhelper notations' to see the supported notations.")
	}

	app.saveStats(func(s *stats.Stats) {
		s.Format = parsed.Notation
		s.Value = parsed.Text
	})

	out := cmd.OutOrStdout()
	if opts.jsonOutput {
		r, g, b, a := parsed.Color.RGBA()
		return writeJSON(out, parseJSONPayload{
			Notation: parsed.Notation,
			Text:     parsed.Text,
			RGBA:     [4]float64{r, g, b, a},
			Hex:      parsed.Color.Hex(),
			Options:  parsed.Options,
		})
	}

	fmt.Fprintf(out, "%s %s\n", labelStyle.Render("notation:"), parsed.Notation)
	fmt.Fprintf(out, "%s %s\n", labelStyle.Render("text:    "), parsed.Text)
	rgba := rgbaText(parsed.Color)
	if supportsSwatches(out) {
		rgba = swatch(parsed.Color) + " " + rgba
	}
	fmt.Fprintf(out, "%s %s\n", labelStyle.Render("rgba:    "), rgba)
	if len(parsed.Options) > 0 {
		fmt.Fprintf(out, "%s %s\n", labelStyle.Render("options: "), optionsText(parsed.Options))
	}
	return nil
}
