package main

import (
	"fmt"

	"github.com/hammal/riemann/catalog"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "list the available functions.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		for i, label := range catalog.Default().Labels() {
			if _, err := fmt.Fprintf(cmd.OutOrStdout(), "%d\t%s\n", i+1, label); err != nil {
				return err
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}
