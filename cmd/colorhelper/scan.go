package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/colorhelper/internal/scan"
)

type scanOptions struct {
	jsonOutput bool
}

func newScanCmd(rootFlags *rootFlags) *cobra.Command {
	opts := &scanOptions{}

	cmd := &cobra.Command{
		Use:   "scan <file>",
		Short: "Find color literals in a stylesheet",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScan(cmd, rootFlags, opts, args[0])
		},
	}

	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Output in JSON format")

	return cmd
}

func runScan(cmd *cobra.Command, rootFlags *rootFlags, opts *scanOptions, path string) error {
	app, err := loadAppContext(cmd, "scan", rootFlags)
	if err != nil {
		return err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return newCommandError("scan", fmt.Sprintf("reading %s", path), err, "Check that the file exists and is readable.")
	}

	spans := scan.Find(string(data))
	app.log.Debug("scanned file", "path", path, "found", len(spans))

	if opts.jsonOutput {
		if spans == nil {
			spans = []scan.Span{}
		}
		return writeJSON(cmd.OutOrStdout(), spans)
	}

	out := cmd.OutOrStdout()
	swatches := supportsSwatches(out)
	for _, span := range spans {
		line := fmt.Sprintf("%d:%d\t%s\t%s", span.Line, span.Column, span.Kind, span.Text)
		if swatches {
			if c, ok := app.session.ParseColor(span.Text); ok {
				line = swatch(c) + " " + line
			}
		}
		fmt.Fprintln(out, line)
	}
	return nil
}
