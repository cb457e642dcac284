package main

import (
	"github.com/hammal/riemann/catalog"
	"github.com/hammal/riemann/render"
	"github.com/hammal/riemann/viewer"
	"github.com/spf13/cobra"
)

var viewCmd = &cobra.Command{
	Use:   "view [flags]",
	Short: "explore Riemann sums interactively.",
	Long: `Open a window showing the approximation. Left/right arrows change the number
of rectangles (hold shift for steps of ten), up/down or the digit keys choose
the function and escape quits.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		entry, n, err := readSelection(cmd)
		if err != nil {
			return err
		}
		width, height, err := readSize(cmd)
		if err != nil {
			return err
		}
		return viewer.Run(catalog.Default(), viewer.Options{
			Width:      width,
			Height:     height,
			Label:      entry.Label,
			Rectangles: n,
			Theme:      render.DarkTheme,
		})
	},
}

func init() {
	rootCmd.AddCommand(viewCmd)
	addSelectionFlags(viewCmd)
	viewCmd.Flags().Int("width", 800, "window width in pixels")
	viewCmd.Flags().Int("height", 600, "window height in pixels")
}
