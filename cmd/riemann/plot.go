package main

import (
	"github.com/hammal/riemann"
	"github.com/hammal/riemann/render"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/vgimg"
)

var plotCmd = &cobra.Command{
	Use:   "plot [flags]",
	Short: "draw a Riemann sum approximation to a file.",
	Long:  `Draw the function, its rectangles and both integral values. The image format follows the output file extension (png, svg, pdf, ...).`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		entry, n, err := readSelection(cmd)
		if err != nil {
			return err
		}
		filename, err := cmd.Flags().GetString("output")
		if err != nil {
			return err
		}
		width, height, err := readSize(cmd)
		if err != nil {
			return err
		}
		res, err := riemann.Approximate(entry.F, n)
		if err != nil {
			return err
		}
		p, err := render.Plot(res, entry.Label, render.DarkTheme)
		if err != nil {
			return err
		}
		if err := render.Save(p, filename, pixels(width), pixels(height)); err != nil {
			return err
		}
		log.Infof("wrote %s", filename)
		return nil
	},
}

// pixels converts a pixel count at the default raster resolution to a length.
func pixels(n int) vg.Length {
	return vg.Length(n) * vg.Inch / vgimg.DefaultDPI
}

func init() {
	rootCmd.AddCommand(plotCmd)
	addSelectionFlags(plotCmd)
	plotCmd.Flags().StringP("output", "o", "riemann.png", "output file")
	plotCmd.Flags().Int("width", 640, "image width in pixels")
	plotCmd.Flags().Int("height", 480, "image height in pixels")
}
