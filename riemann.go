// Package riemann computes left endpoint Riemann sum approximations of the
// functions in the catalog together with the geometry needed to draw them.
//
// Every call is a pure computation: nothing is cached and no state is kept
// between calls, so the functions may be used from several goroutines.
package riemann

import (
	"errors"
	"fmt"
	"math"

	"github.com/hammal/riemann/catalog"
	"github.com/hammal/riemann/gonumExtensions"
	"github.com/hammal/riemann/ode"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/integrate"
	"gonum.org/v1/gonum/mat"
)

// ErrInvalidCount is returned for rectangle counts below one.
var ErrInvalidCount = errors.New("riemann: rectangle count must be at least 1")

// Sample is a point on the reference curve.
type Sample struct {
	X, Y float64
}

// Rectangle is a single term of the Riemann sum. The rectangle spans
// [X, X+Width] and has the constant height f(X).
type Rectangle struct {
	X      float64
	Width  float64
	Height float64
}

// Area is the signed area Height * Width.
func (r Rectangle) Area() float64 {
	return r.Height * r.Width
}

// Result holds everything needed to render and compare an approximation.
type Result struct {
	// Number of rectangles
	N int
	entry := catalog.Entry{F: f}

	// Dense reference curve
	xCurve := gonumExtensions.Linspace(d.Start, d.End, d.Resolution)
	yCurve := entry.Value(mat.NewVecDense(len(xCurve), xCurve))
	curve := make([]Sample, len(xCurve))
	for index, x := range xCurve {
		curve[index] = Sample{x, yCurve.AtVec(index)}
	}

	// n equal sub intervals, the height of each rectangle is taken at its
	// left edge.
	edges := gonumExtensions.Linspace(d.Start, d.End, n+1)
	widths := gonumExtensions.Full(n, edges[1]-edges[0])
	heights := entry.Value(mat.NewVecDense(n, edges[:n]))
	rectangles := make([]Rectangle, n)
	for index := range rectangles {
		rectangles[index] = Rectangle{edges[index], widths.AtVec(index), heights.AtVec(index)}
	}
	var areas mat.VecDense
	areas.MulElemVec(heights, widths)

	return &Result{
		N:           n,
		Curve:       curve,
		Rectangles:  rectangles,
		Approximate: floats.Sum(areas.RawVector().Data),
		Reference:   Trapezoidal(xCurve, yCurve.RawVector().Data),
	}, nil
}

// Trapezoidal integrates the samples (x, y) with the composite trapezoidal
// rule. Any failure, including non finite samples, yields NaN.
func Trapezoidal(x, y []float64) (res float64) {
	defer func() {
		if r := recover(); r != nil {
			res = math.NaN()
		}
	}()
	if gonumExtensions.NANORINF(mat.NewVecDense(len(y), y)) {
		return math.NaN()
	}
	res = integrate.Trapezoidal(x, y)
	if math.IsNaN(res) || math.IsInf(res, 0) {
		return math.NaN()
	}
	return res
}

// Exact integrates f over the domain with an adaptive Runge-Kutta-Fehlberg
// method. It serves as the ground truth when measuring approximation errors.
func Exact(f catalog.Function, d Domain) (float64, error) {
	if err := d.Validate(); err != nil {
		return 0, err
	}
	return ode.NewNumericalIntegration(f).Integrate(d.Start, d.End)
}
