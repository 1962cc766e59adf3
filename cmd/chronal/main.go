// Command chronal converts points in time between civil representation
// and the Unix, UTC, GPS, and TAI epochs, and inspects the historical
// leap-second table.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// version is stamped by the release build.
var version = "dev"

// rootCmd is the base command. Running `chronal` with no subcommand
// prints help.
var rootCmd = &cobra.Command{
	Use:   "chronal",
	Short: "chronal — calendar and epoch timestamp conversions",
	Long: `chronal converts ISO 8601 points in time between civil representation
and the Unix, UTC, GPS, and TAI time scales, accounting for every
historical leap second.

Quick start:
  chronal convert 2020-01-01T00:00:00Z            # all epoch timestamps
  chronal convert 2020-01-01T00:00:00Z --epoch gps
  chronal leap                                    # the leap-second table
  chronal iterate 2020-01-01 2020-01-02 --by 3600`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// versionCmd prints the build version.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the chronal version",
	Run: func(cmd *cobra.Command, _ []string) {
		fmt.Fprintln(cmd.OutOrStdout(), "chronal", version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
