// Package main is the entry point for the larder CLI.
package main

import (
	"fmt"
	"os"

	"github.com/jacksmith/larder/internal/cli"
	"github.com/spf13/cobra"
)

// Version is set at build time via ldflags.
var Version = "dev"

// verbose forces debug logging regardless of .larderconfig.yaml.
var verbose bool

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, cli.FormatError(err))
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "larder",
	Short: "larder - a shopping cart for the gourmet pantry",
	Long: `larder keeps a shopping cart and a saved-for-later list for the
gourmet food storefront. Both lists are written to local storage after
every change, so they survive between runs.

Browse the catalog with "larder products", fill the cart with
"larder add", and submit it with "larder checkout".`,
	Version:       Version,
	SilenceErrors: true,
	SilenceUsage:  true,
	// Show help when no subcommand is provided
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

func init() {
	// Disable the default completion command (we add our own)
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log debug output to stderr")

	// Set version template
	rootCmd.SetVersionTemplate("larder version {{.Version}}\n")
}
