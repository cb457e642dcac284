// Package render draws an approximation result with gonum/plot: the dense
// reference curve, one filled polygon per rectangle, and a title comparing
// the reference and the approximate integral.
package render

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/hammal/riemann"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

// LegendLabel is the legend entry shared by all rectangles.
const LegendLabel = "Riemann Sum"

// Theme holds the colours used for a plot.
type Theme struct {
	Background color.Color
	Foreground color.Color
	Curve      color.Color
	CurveWidth vg.Length
	Fill       color.Color
	Edge       color.Color
	EdgeWidth  vg.Length
}

// DarkTheme is white on black with translucent orange rectangles.
var DarkTheme = Theme{
	Background: color.Black,
	Foreground: color.White,
	Curve:      color.White,
	CurveWidth: vg.Points(0.5),
	// orange at alpha 0.5, premultiplied
	Fill:      color.RGBA{R: 0x80, G: 0x52, B: 0x00, A: 0x80},
	Edge:      color.RGBA{R: 0xff, G: 0x8c, B: 0x00, A: 0xff},
	EdgeWidth: vg.Points(1.5),
}

// Title returns the two line plot title.
func Title(res *riemann.Result) string {
	return fmt.Sprintf("Riemann Sum (n = %d)\nActual ≈ %.3f, Approx ≈ %.3f", res.N, res.Reference, res.Approximate)
}

// Curve splits the reference curve into runs of finite points. Samples
// where the function is NaN or infinite are left out as gaps.
func Curve(res *riemann.Result) []plotter.XYs {
	var (
		runs []plotter.XYs
		run  plotter.XYs
	)
	for _, s := range res.Curve {
		if !finite(s.Y) {
			if len(run) > 0 {
				runs = append(runs, run)
				run = nil
			}
			continue
		}
		run = append(run, plotter.XY{X: s.X, Y: s.Y})
	}
	if len(run) > 0 {
		runs = append(runs, run)
	}
	return runs
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// Outline returns the four corners of a rectangle, starting at the bottom left.
func Outline(r riemann.Rectangle) plotter.XYs {
	return plotter.XYs{
		{X: r.X, Y: 0},
		{X: r.X, Y: r.Height},
		{X: r.X + r.Width, Y: r.Height},
		{X: r.X + r.Width, Y: 0},
	}
}

// Plot builds the plot of res. label names the function in the legend.
// Non finite curve samples and rectangles with a non finite height are not
// drawn.
func Plot(res *riemann.Result, label string, theme Theme) (*plot.Plot, error) {
	if res == nil || len(res.Curve) == 0 {
		return nil, errors.New("render: empty result")
	}
	p := plot.New()
	applyTheme(p, theme)

	p.Title.Text = Title(res)
	p.X.Label.Text = "x"
	p.Y.Label.Text = "f(x)"

	legend := false
	for _, r := range res.Rectangles {
		if !finite(r.Height) {
			continue
		}
		poly, err := plotter.NewPolygon(Outline(r))
		if err != nil {
			return nil, err
		}
		poly.Color = theme.Fill
		poly.LineStyle.Color = theme.Edge
		poly.LineStyle.Width = theme.EdgeWidth
		p.Add(poly)
		if !legend {
			p.Legend.Add(LegendLabel, poly)
			legend = true
		}
	}

	for i, run := range Curve(res) {
		line, err := plotter.NewLine(run)
		if err != nil {
			return nil, err
		}
		line.LineStyle.Color = theme.Curve
		line.LineStyle.Width = theme.CurveWidth
		p.Add(line)
		if i == 0 {
			p.Legend.Add(fmt.Sprintf("f(x) = %s", label), line)
		}
	}

	p.X.Min = res.Curve[0].X
	p.X.Max = res.Curve[len(res.Curve)-1].X
	p.Y.Min, p.Y.Max = yRange(res)
	return p, nil
}

// yRange is [0, 1.1 max f] over the reference curve. Curves that never rise
// above zero keep a unit range so the axis is not degenerate.
func yRange(res *riemann.Result) (float64, float64) {
	ys := make([]float64, 0, len(res.Curve))
	for _, s := range res.Curve {
		if finite(s.Y) {
			ys = append(ys, s.Y)
		}
	}
	if len(ys) == 0 {
		return 0, 1
	}
	top := floats.Max(ys)
	if top <= 0 {
		return 0, 1
	}
	return 0, top * 1.1
}

func applyTheme(p *plot.Plot, theme Theme) {
	p.BackgroundColor = theme.Background
	p.Title.TextStyle.Color = theme.Foreground
	p.Legend.TextStyle.Color = theme.Foreground
	p.Legend.Top = true
	for _, axis := range []*plot.Axis{&p.X, &p.Y} {
		axis.LineStyle.Color = theme.Foreground
		axis.Label.TextStyle.Color = theme.Foreground
		axis.Tick.LineStyle.Color = theme.Foreground
		axis.Tick.Label.Color = theme.Foreground
	}
}

// Save writes the plot to path. The format is chosen from the file
// extension (png, svg, pdf, eps, ...).
func Save(p *plot.Plot, path string, width, height vg.Length) error {
	return p.Save(width, height, path)
}

// Image rasterizes the plot into an image of the given size in pixels.
func Image(p *plot.Plot, width, height int) image.Image {
	c := vgimg.NewWith(
		vgimg.UseWH(vg.Length(width)*vg.Inch/vgimg.DefaultDPI, vg.Length(height)*vg.Inch/vgimg.DefaultDPI),
		vgimg.UseDPI(vgimg.DefaultDPI),
	)
	p.Draw(draw.New(c))
	return c.Image()
}
