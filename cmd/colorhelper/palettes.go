package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/colorhelper/internal/palette"
	"github.com/alexisbeaulieu97/colorhelper/internal/stats"
)

type palettesOptions struct {
	storeDir   string
	jsonOutput bool
}

func newPalettesCmd(rootFlags *rootFlags) *cobra.Command {
	opts := &palettesOptions{}

	cmd := &cobra.Command{
		Use:   "palettes",
		Short: "Browse the palette store",
	}

	cmd.PersistentFlags().StringVar(&opts.storeDir, "store", "", "Palette store directory (defaults to store_dir from the configuration)")
	cmd.PersistentFlags().BoolVar(&opts.jsonOutput, "json", false, "Output in JSON format")

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List the available palettes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPalettesList(cmd, rootFlags, opts)
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "show [file-name]",
		Short: "Show the colors of a palette (the CSS keyword palette when omitted)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := ""
			if len(args) == 1 {
				name = args[0]
			}
			return runPalettesShow(cmd, rootFlags, opts, name)
		},
	})

	return cmd
}

func openPaletteStore(app *appContext, operation string, opts *palettesOptions) (*palette.Store, error) {
	dir := opts.storeDir
	if dir == "" {
		dir = app.cfg.StoreDir
	}

	store, err := palette.Open(palette.Options{
		StoreDir: dir,
		Parser:   app.session,
		Logger:   app.log,
	})
	if err != nil {
		return nil, newCommandError(operation, fmt.Sprintf("opening palette store %s", dir), err, "Point --store or store_dir at a directory.")
	}
	return store, nil
}

func runPalettesList(cmd *cobra.Command, rootFlags *rootFlags, opts *palettesOptions) error {
	app, err := loadAppContext(cmd, "list palettes", rootFlags)
	if err != nil {
		return err
	}

	store, err := openPaletteStore(app, "list palettes", opts)
	if err != nil {
		return err
	}

	summaries := store.List()
	if opts.jsonOutput {
		return writeJSON(cmd.OutOrStdout(), summaries)
	}

	writer := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(writer, "FILE\tLABEL")
	for _, summary := range summaries {
		fmt.Fprintf(writer, "%s\t%s\n", valueOrFallback(summary.FileName, "(default)"), summary.Label)
	}
	return writer.Flush()
}

func runPalettesShow(cmd *cobra.Command, rootFlags *rootFlags, opts *palettesOptions, name string) error {
	app, err := loadAppContext(cmd, "show palette", rootFlags)
	if err != nil {
		return err
	}

	store, err := openPaletteStore(app, "show palette", opts)
	if err != nil {
		return err
	}

	pal := store.Palette(name)
	if name != "" && pal.FileName != name {
		fmt.Fprintf(cmd.ErrOrStderr(), "warning: palette %q not found, showing %s\n", name, pal.Label)
	}

	app.saveStats(func(s *stats.Stats) {
		s.Palette = pal.FileName
	})

	if opts.jsonOutput {
		return writeJSON(cmd.OutOrStdout(), pal)
	}

	return renderPalette(cmd, app, pal)
}

func renderPalette(cmd *cobra.Command, app *appContext, pal palette.Palette) error {
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, labelStyle.Render(pal.Label))

	names := make([]string, len(pal.Entries))
	for i, entry := range pal.Entries {
		names[i] = entry.Name
	}
	width := maxWidth(names)
	swatches := supportsSwatches(out)
	target := app.formatsOrder()[0]

	for _, entry := range pal.Entries {
		text, ok := app.session.Generate(entry.Color, target)
		if !ok {
			text, _ = app.session.Generate(entry.Color, "rgb")
		}
		line := padRight(entry.Name, width) + "  " + text
		if swatches {
			line = swatch(entry.Color) + " " + line
		}
		fmt.Fprintln(out, line)
	}
	return nil
}
