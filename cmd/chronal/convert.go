package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/chronal/chronal/clock"
)

var convertFlags struct {
	Epoch string
}

var convertCmd = &cobra.Command{
	Use:   "convert <datetime>",
	Short: "Convert a point in time to epoch-relative timestamps",
	Long: `Convert parses an ISO 8601 point in time and prints its timestamp
relative to one epoch, or to every epoch defined at that instant.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		point, err := clock.Parse(args[0])
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()

		if convertFlags.Epoch != "" {
			epoch, err := clock.ParseEpoch(convertFlags.Epoch)
			if err != nil {
				return err
			}
			ts, err := point.Timestamp(epoch)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "%s\n", ts)
			return nil
		}

		fmt.Fprintf(out, "%-8s %s\n", "instant", point)
		for _, epoch := range []clock.Epoch{
			clock.EpochUnix, clock.EpochUTC, clock.EpochGPS, clock.EpochTAI,
		} {
			ts, err := point.Timestamp(epoch)
			if err != nil {
				// Instants before an epoch's anchor have no timestamp
				// on that scale.
				fmt.Fprintf(out, "%-8s undefined\n", epoch)
				continue
			}
			fmt.Fprintf(out, "%-8s %s\n", epoch, ts)
		}
		return nil
	},
}

func init() {
	convertCmd.Flags().StringVar(
		&convertFlags.Epoch, "epoch", "",
		"epoch to convert to: unix, utc, gps, or tai (default: all)",
	)
	rootCmd.AddCommand(convertCmd)
}
