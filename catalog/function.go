package catalog

import (
	"gonum.org/v1/gonum/mat"
)

// Function is a scalar real valued function f: Reals -> Reals.
type Function func(float64) float64

// Entry associates a human readable label with a Function. For instance
// the entry "x²" is the label of
// f(x) = x * x
// evaluated element-wise whenever it is applied to a vector of arguments.
type Entry struct {
	Label string
	F     Function
}

// Value returns the element-wise function value f(x_i) for every entry of x.
func (e Entry) Value(x mat.Vector) *mat.VecDense {
	n := x.Len()
	res := mat.NewVecDense(n, nil)
	for index := 0; index < n; index++ {
		res.SetVec(index, e.F(x.AtVec(index)))
	}
	return res
}

func (e Entry) String() string {
	return e.Label
}
