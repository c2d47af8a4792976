// Package cmd defines and implements the CLI commands for the adum-fetcher
// executable.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var cfgFile string

// newRootCmd creates and configures the root command.
func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "adum-fetcher",
		Short: "Fetches and republishes the ADUM thesis offer listing.",
		Long: `adum-fetcher retrieves the public ADUM thesis-subject listing, parses
the offer table, orders offers by their "Dernière mise à jour le" date,
and writes a JSON feed plus a static HTML page.`,
		SilenceUsage: true,
	}

	cmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (YAML)")

	cmd.AddCommand(newScrapeCmd())

	return cmd
}

// Execute is the main entry point.
func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
