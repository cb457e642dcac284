package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/hammal/riemann/input"
	"github.com/hammal/riemann/sweep"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var sweepCmd = &cobra.Command{
	Use:   "sweep [flags]",
	Short: "tabulate the approximation error over a range of rectangle counts.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		entry, err := readFunction(cmd)
		if err != nil {
			return err
		}
		var bounds [3]int
		for i, name := range []string{"from", "to", "step"} {
			if bounds[i], err = cmd.Flags().GetInt(name); err != nil {
				return err
			}
		}
		ns := sweep.Range(bounds[0], bounds[1], bounds[2])
		log.Debugf("sweeping %s over %d rectangle counts", entry.Label, len(ns))
		points, err := sweep.Run(entry.F, ns)
		if err != nil {
			return err
		}
		summary, err := sweep.Summarize(points)
		if err != nil {
			return err
		}
		if !sweep.Monotone(points) {
			log.Warnf("error of %s does not decrease monotonically", entry.Label)
		}
		return writeSweep(cmd.OutOrStdout(), points, summary)
	},
}

func writeSweep(w io.Writer, points []sweep.Point, summary sweep.Summary) error {
	tw := tabwriter.NewWriter(w, 0, 8, 2, ' ', 0)
	fmt.Fprintln(tw, "n\tapprox\treference\texact\t|error|")
	for _, p := range points {
		fmt.Fprintf(tw, "%d\t%.6f\t%.6f\t%.6f\t%.3e\n", p.N, p.Approximate, p.Reference, p.Exact, p.AbsError)
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "mean %.3e, median %.3e, max %.3e, stddev %.3e\n",
		summary.Mean, summary.Median, summary.Max, summary.StdDev)
	return err
}

func init() {
	rootCmd.AddCommand(sweepCmd)
	addFunctionFlag(sweepCmd)
	sweepCmd.Flags().Int("from", input.MinRectangles, "smallest rectangle count")
	sweepCmd.Flags().Int("to", input.MaxRectangles, "largest rectangle count")
	sweepCmd.Flags().Int("step", 1, "rectangle count increment")
}
