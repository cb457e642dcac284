package ode

import (
	"gonum.org/v1/gonum/mat"
)

// faultTolerance is the local error accepted per adaptive step.
const faultTolerance = 1e-10

// NumericalIntegration turns a scalar function into the system
// y'(t) = f(t)
// such that solving it from y(from) = 0 yields the definite integral of f.
type NumericalIntegration struct {
	derivative func(float64) float64
}

// NewNumericalIntegration returns the integration system for f.
func NewNumericalIntegration(f func(float64) float64) NumericalIntegration {
	return NumericalIntegration{f}
}

// Derivative ignores the state since the right hand side only depends on time.
func (nI NumericalIntegration) Derivative(time float64, state mat.Vector) mat.Vector {
	return mat.NewVecDense(1, []float64{nI.derivative(time)})
}

// Integrate computes the integral of f over [from, to] with the adaptive
// Runge-Kutta-Fehlberg 4(5) method.
func (nI NumericalIntegration) Integrate(from, to float64) (float64, error) {
	tmpRes := mat.NewVecDense(1, nil)
	o := NewFehlberg45()
	if err := o.AdaptiveCompute(from, to, faultTolerance, tmpRes, nI); err != nil {
		return 0, err
	}
	return tmpRes.AtVec(0), nil
}
