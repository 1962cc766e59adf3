package main

import (
	"fmt"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/chronal/chronal/clock"
	"github.com/chronal/chronal/clock/leap"
)

var leapFlags struct {
	Until string
	Since string
}

var leapCmd = &cobra.Command{
	Use:   "leap",
	Short: "Print the historical leap-second table",
	Long: `Leap prints the embedded table of UTC adjustments: the 1972 alignment
step and every leap second inserted since, with the cumulative TAI-UTC
offset after each. The --until and --since flags narrow the table to a
range of instants.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		table, err := leap.Load()
		if err != nil {
			return err
		}
		if leapFlags.Since != "" {
			point, err := clock.Parse(leapFlags.Since)
			if err != nil {
				return err
			}
			table = table.Since(point.GoTime())
		}
		if leapFlags.Until != "" {
			point, err := clock.Parse(leapFlags.Until)
			if err != nil {
				return err
			}
			table = table.Until(point.GoTime())
		}

		tw := tablewriter.NewWriter(cmd.OutOrStdout())
		tw.SetHeader([]string{"Effective (UTC)", "Step", "Cumulative"})
		tw.SetBorder(true)
		tw.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
		tw.SetAlignment(tablewriter.ALIGN_LEFT)
		tw.SetAutoWrapText(false)

		cumulative := int64(0)
		for _, rec := range table.Records() {
			cumulative += int64(rec.Step)
			tw.Append([]string{
				rec.Time.Format("2006-01-02"),
				fmt.Sprintf("%+d", rec.Step),
				fmt.Sprintf("%d", cumulative),
			})
		}
		tw.Render()

		fmt.Fprintf(
			cmd.OutOrStdout(), "%d events, TAI-UTC offset %s seconds\n",
			table.Count(), table.OffsetTAI(),
		)
		return nil
	},
}

func init() {
	leapCmd.Flags().StringVar(&leapFlags.Until, "until", "", "keep events at or before this instant")
	leapCmd.Flags().StringVar(&leapFlags.Since, "since", "", "keep events at or after this instant")
	rootCmd.AddCommand(leapCmd)
}
