package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/chronal/chronal/clock"
	"github.com/chronal/chronal/clock/types"
)

var iterateFlags struct {
	By       int64
	Backward bool
}

var iterateCmd = &cobra.Command{
	Use:   "iterate <start> <end>",
	Short: "Step through an interval by a fixed number of seconds",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		start, err := clock.Parse(args[0])
		if err != nil {
			return err
		}
		end, err := clock.Parse(args[1])
		if err != nil {
			return err
		}

		period := clock.NewPeriod(start, end)
		step := types.Seconds(iterateFlags.By)
		seq, err := period.Iterate(step)
		if iterateFlags.Backward {
			seq, err = period.IterateBackward(step)
		}
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		seq.Each(func(_ int, point clock.DateTime) bool {
			fmt.Fprintln(out, point)
			return true
		})
		return nil
	},
}

func init() {
	iterateCmd.Flags().Int64Var(&iterateFlags.By, "by", 86400, "step in seconds")
	iterateCmd.Flags().BoolVar(&iterateFlags.Backward, "backward", false, "step from end to start")
	rootCmd.AddCommand(iterateCmd)
}
