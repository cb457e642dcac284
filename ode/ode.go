// Package ode is a ordinary differential equation library that implements the
// Runge-Kutta methods https://en.wikipedia.org/wiki/Runge–Kutta_methods.
// The package is used to compute high accuracy reference integrals by solving
// the initial value problem y'(t) = f(t), y(from) = 0.
package ode

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/mat"
)

// ErrNoConvergence is returned by AdaptiveCompute when the error tolerance
// could not be met within the iteration budget.
var ErrNoConvergence = errors.New("ode: maximum number of iterations reached, adaptive Runge-Kutta doesn't converge")

// DifferentiableSystem returns the derivative of the state at time t.
type DifferentiableSystem interface {
	Derivative(t float64, state mat.Vector) mat.Vector
}

// RungeKutta holds the butcherTableau which describes the Runge Kutta method.
type RungeKutta struct {
	Description butcherTableau
}

// Stages returns the number of derivative evaluations per step.
func (rk RungeKutta) Stages() int {
	return rk.Description.stages
}

// Adaptive reports whether the tableau carries an embedded error estimate.
func (rk RungeKutta) Adaptive() bool {
	return len(rk.Description.weights) == 2
}

// Compute the update for a Runge-Kutta system based on a current value at t = from
// , a target time t = to, a initial value x(t=from) = value and a system model.
// When algorithm is finished the result is copied into the value. The returned
// vector is the local error estimate, which is zero for non adaptive tableaus.
func (rk RungeKutta) Compute(from, to float64, value *mat.VecDense, system DifferentiableSystem) mat.Vector {
	// State order
	M := value.Len()
	// The precomputed derivative points
	K := make([]mat.Vector, rk.Description.stages)
	// Step length
	h := to - from
	for index := range K {
		// Compute the relevant vector by combining previously computed derivate points
		// according to Butcher Tableau.
		tempV := mat.NewVecDense(M, nil)
		tempV.CloneFromVec(value)
		for index2, a := range rk.Description.rungeKuttaMatrix[index] {
			tempV.AddScaledVec(tempV, h*a, K[index2])
		}
		K[index] = system.Derivative(from+h*rk.Description.nodes[index], tempV)
	}

	// Initialize the error vector
	err := mat.NewVecDense(M, nil)
	next := mat.NewVecDense(M, nil)
	next.CloneFromVec(value)
	// Sum up the different contributions with relevant weights.
	for index, k := range K {
		next.AddScaledVec(next, h*rk.Description.weights[0][index], k)
		// If the Butcher Tableau allows for adaptive error computation
		if rk.Adaptive() {
			err.AddScaledVec(err, h*(rk.Description.weights[1][index]-rk.Description.weights[0][index]), k)
		}
	}

	value.CopyVec(next)
	return err
}

// Steps integrates from from to to with n equally sized steps.
func (rk RungeKutta) Steps(from, to float64, n int, value *mat.VecDense, system DifferentiableSystem) {
	h := (to - from) / float64(n)
	for index := 0; index < n; index++ {
		t0 := from + float64(index)*h
		rk.Compute(t0, t0+h, value, system)
	}
}

// AdaptiveCompute implements an adaptive version which for a
// given error tolerance err. Makes steps such that the local error
// never exceeds the error specification. Rejected steps are halved and
// accepted steps are allowed to double again.
func (rk RungeKutta) AdaptiveCompute(from, to, err float64, value *mat.VecDense, system DifferentiableSystem) error {
	var (
		currentError float64
		tnow, tnext  float64
		count        int
	)
	// Set max number of iterations
	const maxNumberOfIterations int = 100000

	if !rk.Adaptive() {
		return errors.New("ode: tableau has no embedded error estimate")
	}

	// Initialize current time
	tnow = from
	step := to - from

	tmpState := mat.NewVecDense(value.Len(), nil)

	// Repeat until time to is reached
	for tnow < to {
		// Set target time
		tnext = math.Min(tnow+step, to)
		// Copy the current state into tmpState
		tmpState.CopyVec(value)
		// Execute the Runge Kutta computation
		currentErrorVector := rk.Compute(tnow, tnext, tmpState, system)
		currentError = 0.
		for index := 0; index < currentErrorVector.Len(); index++ {
			currentError += math.Abs(currentErrorVector.AtVec(index))
		}
		if math.IsNaN(currentError) {
			return errors.New("ode: non finite error estimate")
		}

		count++
		if count >= maxNumberOfIterations {
			return ErrNoConvergence
		}

		// Has the target error been achived?
		if currentError >= err {
			// Half the next integration interval and try again
			step = (tnext - tnow) / 2.
			continue
		}
		// Save this state and update tnow
		value.CopyVec(tmpState)
		tnow = tnext
		step *= 2.
	}

	// Successful integration!  Return nil error
	return nil
}

// NewRK4 function returns a forth order Runge-Kutta object
func NewRK4() *RungeKutta {
	var temp butcherTableau
	temp.stages = 4
	temp.nodes = []float64{0, 1. / 2., 1. / 2., 1}
	temp.weights = [][]float64{{1. / 6., 1. / 3., 1. / 3., 1. / 6.}}
	temp.rungeKuttaMatrix = [][]float64{
		nil,
		{1. / 2.},
		{0, 1. / 2.},
		{0, 0, 1.},
	}
	rk := RungeKutta{temp}
	return &rk
}

// NewEulerMethod returns a pointer to a Runge-Kutta that does the Euler method.
func NewEulerMethod() *RungeKutta {
	var temp butcherTableau
	temp.stages = 1
	temp.nodes = []float64{0}
	temp.weights = [][]float64{{1}}
	temp.rungeKuttaMatrix = [][]float64{nil}
	rk := RungeKutta{temp}
	return &rk
}

// butcherTableau which describes the approximate solution, see https://en.wikipedia.org/wiki/Runge–Kutta_methods.
type butcherTableau struct {
	stages           int
	weights          [][]float64
	nodes            []float64
	rungeKuttaMatrix [][]float64
}

// NewFehlberg45 implements https://en.wikipedia.org/wiki/Runge%E2%80%93Kutta%E2%80%93Fehlberg_method
func NewFehlberg45() *RungeKutta {
	var temp butcherTableau
	temp.stages = 6
	temp.nodes = []float64{0, 1. / 4., 3. / 8., 12. / 13., 1., 1. / 2.}
	temp.weights = [][]float64{
		{16. / 135., 0, 6656. / 12825., 28561. / 56430., -9. / 50., 2. / 55.},
		{25. / 216., 0, 1408. / 2565., 2197. / 4104., -1. / 5., 0},
	}
	temp.rungeKuttaMatrix = [][]float64{
		nil,
		{1. / 4.},
		{3. / 32., 9. / 32.},
		{1932. / 2197., -7200. / 2197., 7296. / 2197.},
		{439. / 216., -8., 3680. / 513., -845. / 4104.},
		{-8. / 27., 2, -3544. / 2565., 1859. / 4104., -11. / 40.},
	}
	rk := RungeKutta{temp}
	return &rk
}
