package main

import (
	"github.com/hammal/riemann/catalog"
	"github.com/hammal/riemann/input"
	"github.com/spf13/cobra"
)

// addFunctionFlag registers --function.
func addFunctionFlag(cmd *cobra.Command) {
	cmd.Flags().StringP("function", "f", catalog.Default().At(0).Label, "function to approximate (see \"riemann list\")")
}

// addSelectionFlags registers --function and --rectangles.
func addSelectionFlags(cmd *cobra.Command) {
	addFunctionFlag(cmd)
	cmd.Flags().IntP("rectangles", "n", input.InitialRectangles, "number of rectangles")
}

// readFunction resolves --function against the default catalog.
func readFunction(cmd *cobra.Command) (catalog.Entry, error) {
	label, err := cmd.Flags().GetString("function")
	if err != nil {
		return catalog.Entry{}, err
	}
	return catalog.Default().Entry(label)
}

// readSelection resolves --function and --rectangles.
func readSelection(cmd *cobra.Command) (catalog.Entry, int, error) {
	entry, err := readFunction(cmd)
	if err != nil {
		return catalog.Entry{}, 0, err
	}
	n, err := cmd.Flags().GetInt("rectangles")
	if err != nil {
		return catalog.Entry{}, 0, err
	}
	return entry, n, nil
}

// readSize reads the --width and --height pixel flags.
func readSize(cmd *cobra.Command) (int, int, error) {
	width, err := cmd.Flags().GetInt("width")
	if err != nil {
		return 0, 0, err
	}
	height, err := cmd.Flags().GetInt("height")
	if err != nil {
		return 0, 0, err
	}
	return width, height, nil
}
