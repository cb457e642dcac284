package main

import (
	"os"
	"runtime/debug"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// rootCmd is the command every subcommand hangs off.
var rootCmd = &cobra.Command{
	Use:          "riemann",
	Short:        "Left endpoint Riemann sum approximations.",
	Long:         "Approximate, plot and explore left endpoint Riemann sums of a fixed set of functions over [0, 2].",
	Version:      buildVersion(),
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		verbose, err := cmd.Flags().GetBool("verbose")
		if err != nil {
			return err
		}
		if verbose {
			log.SetLevel(log.DebugLevel)
		}
		return nil
	},
}

// buildVersion is the module version recorded by "go install", if any.
func buildVersion() string {
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		return info.Main.Version
	}
	return "(devel)"
}

// Execute runs the command line and exits with status 1 on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "increase logging verbosity")
}
