package main

import (
	"github.com/spf13/cobra"
)

type rootFlags struct {
	configPath string
	logLevel   string
	verbose    bool
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "colorhelper",
		Short:         "Parse, convert and browse CSS color notations",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVar(&flags.configPath, "config", "", "Path to a configuration file")
	cmd.PersistentFlags().StringVar(&flags.logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose logging")

	cmd.AddCommand(newParseCmd(flags))
	cmd.AddCommand(newConvertCmd(flags))
	cmd.AddCommand(newNotationsCmd(flags))
	cmd.AddCommand(newPalettesCmd(flags))
	cmd.AddCommand(newScanCmd(flags))
	cmd.AddCommand(newVersionCmd())

	return cmd
}
