package riemann

import (
	"errors"
	"fmt"
)

// Domain struct contains the interval and sampling resolution an
// approximation is computed on.
type Domain struct {
	// starting point
	Start float64
	// ending point
	End float64
	// Number of samples of the dense reference curve
	Resolution int
}

// DefaultDomain is the fixed interval [0, 2] sampled at 200 points.
var DefaultDomain = Domain{Start: 0, End: 2, Resolution: 200}

// Validate checks that the domain describes a non empty interval with at
// least two reference samples.
func (d Domain) Validate() error {
	if !(d.Start < d.End) {
		return fmt.Errorf("riemann: empty domain [%v, %v]", d.Start, d.End)
	}
	if d.Resolution < 2 {
		return errors.New("riemann: domain resolution must be at least 2")
	}
	return nil
}

// Length returns End - Start
func (d Domain) Length() float64 {
	return d.End - d.Start
}
