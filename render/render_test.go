package render

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/hammal/riemann"
	"github.com/hammal/riemann/catalog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/plot/vg"
)

func TestTitle(t *testing.T) {
	res, err := riemann.Approximate(catalog.Square, 10)
	require.NoError(t, err)
	assert.Equal(t, "Riemann Sum (n = 10)\nActual ≈ 2.667, Approx ≈ 2.280", Title(res))

	res.Reference = math.NaN()
	assert.Contains(t, Title(res), "Actual ≈ NaN")
}

func TestOutline(t *testing.T) {
	pts := Outline(riemann.Rectangle{X: 0.2, Width: 0.2, Height: 0.04})
	require.Len(t, pts, 4)
	assert.Equal(t, 0.2, pts[0].X)
	assert.Equal(t, 0., pts[0].Y)
	assert.Equal(t, 0.04, pts[1].Y)
	assert.InDelta(t, 0.4, pts[2].X, 1e-15)
	assert.Equal(t, 0., pts[3].Y)
}

func TestPlotRanges(t *testing.T) {
	res, err := riemann.Approximate(math.Exp, 5)
	require.NoError(t, err)
	p, err := Plot(res, "eˣ", DarkTheme)
	require.NoError(t, err)

	assert.Equal(t, 0., p.X.Min)
	assert.Equal(t, 2., p.X.Max)
	assert.Equal(t, 0., p.Y.Min)
	assert.InDelta(t, math.Exp(2)*1.1, p.Y.Max, 1e-9)
	assert.Equal(t, Title(res), p.Title.Text)
}

func TestPlotNonPositiveCurve(t *testing.T) {
	res, err := riemann.Approximate(func(x float64) float64 { return -x }, 3)
	require.NoError(t, err)
	p, err := Plot(res, "-x", DarkTheme)
	require.NoError(t, err)
	assert.Equal(t, 1., p.Y.Max)
}

func TestPlotEmpty(t *testing.T) {
	_, err := Plot(nil, "", DarkTheme)
	assert.Error(t, err)
	_, err = Plot(&riemann.Result{}, "", DarkTheme)
	assert.Error(t, err)
}

func TestImageAndSave(t *testing.T) {
	res, err := riemann.Approximate(catalog.Sigmoid, 20)
	require.NoError(t, err)
	p, err := Plot(res, "sgm(x)", DarkTheme)
	require.NoError(t, err)

	img := Image(p, 320, 240)
	assert.Equal(t, 320, img.Bounds().Dx())
	assert.Equal(t, 240, img.Bounds().Dy())

	path := filepath.Join(t.TempDir(), "riemann.png")
	require.NoError(t, Save(p, path, 4*vg.Inch, 3*vg.Inch))
	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func TestPlotNonFiniteSamples(t *testing.T) {
	res, err := riemann.Domain{Start: -1, End: 1, Resolution: 200}.Approximate(math.Sqrt, 4)
	require.NoError(t, err)
	p, err := Plot(res, "√x", DarkTheme)
	require.NoError(t, err)
	assert.Equal(t, -1., p.X.Min)
	assert.InDelta(t, 1.1, p.Y.Max, 1e-9)
	assert.Len(t, Curve(res), 1)
}

func TestCurveGaps(t *testing.T) {
	hole := func(x float64) float64 {
		if x > 0.9 && x < 1.1 {
			return math.NaN()
		}
		return x
	}
	res, err := riemann.Approximate(hole, 10)
	require.NoError(t, err)
	runs := Curve(res)
	require.Len(t, runs, 2)
	total := len(runs[0]) + len(runs[1])
	assert.Less(t, total, len(res.Curve))

	_, err = Plot(res, "hole", DarkTheme)
	assert.NoError(t, err)

	allNaN, err := riemann.Approximate(func(float64) float64 { return math.NaN() }, 3)
	require.NoError(t, err)
	p, err := Plot(allNaN, "nan", DarkTheme)
	require.NoError(t, err)
	assert.Equal(t, 1., p.Y.Max)
	assert.Empty(t, Curve(allNaN))
}
