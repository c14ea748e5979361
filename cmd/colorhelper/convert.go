package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/colorhelper/internal/codec"
	"github.com/alexisbeaulieu97/colorhelper/internal/stats"
)

// writeClipboard is replaced in tests.
var writeClipboard = clipboard.WriteAll

type convertOptions struct {
	to         string
	copyOutput bool
	jsonOutput bool
}

func newConvertCmd(rootFlags *rootFlags) *cobra.Command {
	opts := &convertOptions{}

	cmd := &cobra.Command{
		Use:   "convert [text]...",
		Short: "Convert color texts (the last used color when none are given) to another notation",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConvert(cmd, rootFlags, opts, args)
		},
	}

	cmd.Flags().StringVar(&opts.to, "to", "", "Target notation (defaults to default_notation from the configuration)")
	cmd.Flags().BoolVar(&opts.copyOutput, "copy", false, "Copy the converted text to the clipboard")
	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Output in JSON format")

	return cmd
}

func runConvert(cmd *cobra.Command, rootFlags *rootFlags, opts *convertOptions, inputs []string) error {
	app, err := loadAppContext(cmd, "convert", rootFlags)
	if err != nil {
		return err
	}

	target := opts.to
	if target == "" {
		target = app.cfg.DefaultNotation
	}
	if _, ok := app.session.Registry().Lookup(target); !ok {
		return newCommandError("convert", fmt.Sprintf("unknown notation %q", target), fmt.Errorf("notation %q is not registered", target), "Run 'colorhelper notations' to see the supported notations.")
	}

	var results []codec.Conversion
	if len(inputs) == 0 {
		value := app.stats.Get().Value
		if value == "" {
			return newCommandError("convert", "choosing a color", errors.New("no color text given and no color remembered"), "Pass a color text or run 'colorhelper parse <text>' first.")
		}
		current := app.session.Color()
		output, ok := app.session.Generate(current, target)
		results = []codec.Conversion{{Input: value, Output: output, OK: ok, Color: current}}
	} else {
		results = app.session.Convert(inputs, target)
	}

	var outputs []string
	last := ""
	for _, res := range results {
		if res.OK {
			last = res.Output
		}
		outputs = append(outputs, res.Output)
	}

	order := codec.Hoist(app.formatsOrder(), target)
	app.saveStats(func(s *stats.Stats) {
		s.Format = target
		s.FormatsOrder = order
		if last != "" {
			s.Value = last
		}
	})

	if err := renderConversions(cmd, opts, target, results); err != nil {
		return err
	}

	if opts.copyOutput {
		if err := writeClipboard(strings.Join(outputs, "\n")); err != nil {
			return newCommandError("convert", "copying to the clipboard", err, "Install a clipboard utility such as xclip or wl-clipboard.")
		}
	}

	return nil
}

func renderConversions(cmd *cobra.Command, opts *convertOptions, target string, results []codec.Conversion) error {
	if opts.jsonOutput {
		return writeJSON(cmd.OutOrStdout(), results)
	}

	for _, res := range results {
		fmt.Fprintln(cmd.OutOrStdout(), res.Output)
		if !res.OK {
			fmt.Fprintf(cmd.ErrOrStderr(), "warning: %s\n", conversionWarning(res, target))
		}
	}
	return nil
}

func conversionWarning(res codec.Conversion, target string) string {
	switch {
	case res.Err != nil:
		return res.Err.Error()
	case strings.TrimSpace(res.Input) == "":
		return "empty input"
	default:
		return fmt.Sprintf("%q cannot be written as %s", res.Input, target)
	}
}
