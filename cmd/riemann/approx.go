package main

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"text/tabwriter"

	"github.com/hammal/riemann"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var approxCmd = &cobra.Command{
	Use:   "approx [flags]",
	Short: "compute a Riemann sum approximation.",
	Long:  `Compute the left endpoint Riemann sum of a function over [0, 2] and compare it with the trapezoidal integral of a dense sample.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		entry, n, err := readSelection(cmd)
		if err != nil {
			return err
		}
		asJSON, err := cmd.Flags().GetBool("json")
		if err != nil {
			return err
		}
		listRectangles, err := cmd.Flags().GetBool("rectangles-table")
		if err != nil {
			return err
		}
		withExact, err := cmd.Flags().GetBool("exact")
		if err != nil {
			return err
		}

		log.Debugf("approximating %s with %d rectangles", entry.Label, n)
		res, err := riemann.Approximate(entry.F, n)
		if err != nil {
			return err
		}
		var exact *float64
		if withExact {
			v, err := riemann.Exact(entry.F, riemann.DefaultDomain)
			if err != nil {
				return err
			}
			exact = &v
		}
		if asJSON {
			return writeJSON(cmd.OutOrStdout(), entry.Label, res, exact)
		}
		return writeTable(cmd.OutOrStdout(), entry.Label, res, exact, listRectangles)
	},
}

type jsonResult struct {
	Function    string              `json:"function"`
	N           int                 `json:"n"`
	Approximate float64             `json:"approximate"`
	Reference   *float64            `json:"reference"`
	Exact       *float64            `json:"exact,omitempty"`
	Rectangles  []riemann.Rectangle `json:"rectangles"`
}

func writeJSON(w io.Writer, label string, res *riemann.Result, exact *float64) error {
	out := jsonResult{
		Function:    label,
		N:           res.N,
		Approximate: res.Approximate,
		Exact:       exact,
		Rectangles:  res.Rectangles,
	}
	// NaN has no JSON representation, it is written as null
	if !math.IsNaN(res.Reference) {
		ref := res.Reference
		out.Reference = &ref
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

func writeTable(w io.Writer, label string, res *riemann.Result, exact *float64, rectangles bool) error {
	fmt.Fprintf(w, "f(x) = %s, n = %d\n", label, res.N)
	fmt.Fprintf(w, "Actual ≈ %.3f, Approx ≈ %.3f\n", res.Reference, res.Approximate)
	if exact != nil {
		fmt.Fprintf(w, "Exact ≈ %.9f, Error ≈ %.9f\n", *exact, *exact-res.Approximate)
	}
	if !rectangles {
		return nil
	}
	tw := tabwriter.NewWriter(w, 0, 8, 2, ' ', 0)
	fmt.Fprintln(tw, "i\tx\tdx\tf(x)\tarea")
	for i, r := range res.Rectangles {
		fmt.Fprintf(tw, "%d\t%.4f\t%.4f\t%.6f\t%.6f\n", i, r.X, r.Width, r.Height, r.Area())
	}
	return tw.Flush()
}

func init() {
	rootCmd.AddCommand(approxCmd)
	addSelectionFlags(approxCmd)
	approxCmd.Flags().Bool("json", false, "write the result as JSON")
	approxCmd.Flags().BoolP("rectangles-table", "r", false, "list every rectangle")
	approxCmd.Flags().Bool("exact", false, "also report an adaptive Runge-Kutta reference integral")
}
