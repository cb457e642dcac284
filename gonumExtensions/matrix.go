package gonumExtensions

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Linspace returns n evenly spaced samples over the closed interval
// [start, end]. The last sample is exactly end.
func Linspace(start, end float64, n int) []float64 {
	if n < 1 {
		return nil
	}
	if n == 1 {
		return []float64{start}
	}
	res := floats.Span(make([]float64, n), start, end)
	res[n-1] = end
	return res
}

// Full returns a vector of length n filled with value
func Full(n int, value float64) *mat.VecDense {
	data := make([]float64, n)
	for index := range data {
		data[index] = value
	}
	return mat.NewVecDense(n, data)
}

// NANORINF checks if there are any NAN or INF in vector
func NANORINF(vector mat.Vector) bool {
	for index := 0; index < vector.Len(); index++ {
		if math.IsNaN(vector.AtVec(index)) || math.IsInf(vector.AtVec(index), 0) {
			return true
		}
	}
	return false
}
