// Package sweep evaluates a Riemann approximation for a range of rectangle
// counts and measures how the error behaves as the count grows.
// The individual approximations are independent and are computed
// concurrently, the results are always returned in the order requested.
package sweep

import (
	"errors"
	"fmt"
	"math"
	"sync"

	"github.com/hammal/riemann"
	"github.com/hammal/riemann/catalog"
	"github.com/montanaflynn/stats"
)

// Point is the outcome of one approximation in a sweep.
type Point struct {
	N           int
	Approximate float64
	Reference   float64
	Exact       float64
	// |Exact - Approximate|
	AbsError float64
}

type indexed struct {
	index int
	point Point
	err   error
}

func computePoint(f catalog.Function, n int, exact float64, index int, returnChannel chan<- indexed, wg *sync.WaitGroup) {
	defer wg.Done()
	res, err := riemann.Approximate(f, n)
	if err != nil {
		returnChannel <- indexed{index: index, err: err}
		return
	}
	returnChannel <- indexed{index, Point{
		N:           n,
		Approximate: res.Approximate,
		Reference:   res.Reference,
		Exact:       exact,
		AbsError:    math.Abs(exact - res.Approximate),
	}, nil}
}

// Run approximates f for every rectangle count in ns.
func Run(f catalog.Function, ns []int) ([]Point, error) {
	if len(ns) == 0 {
		return nil, errors.New("sweep: no rectangle counts")
	}
	exact, err := riemann.Exact(f, riemann.DefaultDomain)
	if err != nil {
		return nil, fmt.Errorf("sweep: exact integral: %w", err)
	}

	var wg sync.WaitGroup
	returnChannel := make(chan indexed)
	wg.Add(len(ns))
	for index, n := range ns {
		go computePoint(f, n, exact, index, returnChannel, &wg)
	}

	go func() {
		wg.Wait()
		close(returnChannel)
	}()

	res := make([]Point, len(ns))
	var firstErr error
	for r := range returnChannel {
		if r.err != nil {
			if firstErr == nil {
				firstErr = fmt.Errorf("sweep: n=%d: %w", ns[r.index], r.err)
			}
			continue
		}
		res[r.index] = r.point
	}
	if firstErr != nil {
		return nil, firstErr
	}
	return res, nil
}

// Range returns from, from+step, ... up to and including to.
func Range(from, to, step int) []int {
	if step <= 0 || to < from {
		return nil
	}
	res := make([]int, 0, (to-from)/step+1)
	for n := from; n <= to; n += step {
		res = append(res, n)
	}
	return res
}

// Monotone reports whether the absolute error never grows along the sweep.
func Monotone(points []Point) bool {
	for index := 1; index < len(points); index++ {
		if points[index].AbsError > points[index-1].AbsError {
			return false
		}
	}
	return true
}

// Summary holds statistics of the absolute errors of a sweep.
type Summary struct {
	Mean   float64
	Median float64
	Max    float64
	StdDev float64
}

// Summarize computes error statistics over points.
func Summarize(points []Point) (Summary, error) {
	data := make(stats.Float64Data, len(points))
	for index, p := range points {
		data[index] = p.AbsError
	}
	var (
		s   Summary
		err error
	)
	if s.Mean, err = data.Mean(); err != nil {
		return Summary{}, err
	}
	if s.Median, err = data.Median(); err != nil {
		return Summary{}, err
	}
	if s.Max, err = data.Max(); err != nil {
		return Summary{}, err
	}
	if s.StdDev, err = data.StandardDeviation(); err != nil {
		return Summary{}, err
	}
	return s, nil
}
