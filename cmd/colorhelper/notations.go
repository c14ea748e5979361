package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/colorhelper/internal/notation"
)

type notationsOptions struct {
	jsonOutput bool
}

type notationJSON struct {
	ID          string                  `json:"id"`
	Label       string                  `json:"label"`
	Description string                  `json:"description"`
	Functions   []string                `json:"functions,omitempty"`
	Options     []notation.OptionSchema `json:"options"`
	Current     notation.Values         `json:"current"`
}

func newNotationsCmd(rootFlags *rootFlags) *cobra.Command {
	opts := &notationsOptions{}

	cmd := &cobra.Command{
		Use:   "notations",
		Short: "List the supported color notations in preference order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runNotations(cmd, rootFlags, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Output in JSON format")

	return cmd
}

func runNotations(cmd *cobra.Command, rootFlags *rootFlags, opts *notationsOptions) error {
	app, err := loadAppContext(cmd, "list notations", rootFlags)
	if err != nil {
		return err
	}

	reg := app.session.Registry()
	var descriptors []*notation.Descriptor
	for _, id := range app.formatsOrder() {
		if d, ok := reg.Lookup(id); ok {
			descriptors = append(descriptors, d)
		}
	}

	if opts.jsonOutput {
		payload := make([]notationJSON, len(descriptors))
		for i, d := range descriptors {
			payload[i] = notationJSON{
				ID:          d.ID,
				Label:       d.Label,
				Description: d.Description,
				Functions:   d.FuncNames,
				Options:     d.Options,
				Current:     app.session.GetOptions(d.ID),
			}
		}
		return writeJSON(cmd.OutOrStdout(), payload)
	}

	writer := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(writer, "ID\tLABEL\tFUNCTIONS\tOPTIONS")
	for _, d := range descriptors {
		fmt.Fprintf(writer, "%s\t%s\t%s\t%s\n",
			d.ID,
			d.Label,
			valueOrFallback(strings.Join(d.FuncNames, ", "), "-"),
			valueOrFallback(optionsText(app.session.GetOptions(d.ID)), "-"),
		)
	}
	return writer.Flush()
}

func valueOrFallback(value, fallback string) string {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return fallback
	}
	return trimmed
}
