// Package input holds the state of the two controls that drive an
// approximation: the selected function and the rectangle count. The state is
// an explicit value that is passed along with every request.
package input

import (
	"github.com/hammal/riemann/catalog"
)

const (
	// MinRectangles is the smallest rectangle count the controls allow.
	MinRectangles = 2
	// MaxRectangles is the largest rectangle count the controls allow.
	MaxRectangles = 100
	// InitialRectangles is the rectangle count of a new selection.
	InitialRectangles = 10
)

// Selection is the current state of the controls.
type Selection struct {
	// Index of the selected catalog entry
	Index int
	// Number of rectangles
	N int
}

// New returns a selection of the first entry with InitialRectangles.
func New() Selection {
	return Selection{Index: 0, N: InitialRectangles}
}

// clamp limits n to [MinRectangles, MaxRectangles]
func clamp(n int) int {
	if n < MinRectangles {
		return MinRectangles
	}
	if n > MaxRectangles {
		return MaxRectangles
	}
	return n
}

// SetN sets the rectangle count, clamped to the allowed range. It reports
// whether the selection changed.
func (s *Selection) SetN(n int) bool {
	n = clamp(n)
	if n == s.N {
		return false
	}
	s.N = n
	return true
}

// StepN moves the rectangle count by delta.
func (s *Selection) StepN(delta int) bool {
	return s.SetN(s.N + delta)
}

// Select chooses entry i of c. Out of range indices are ignored.
func (s *Selection) Select(c *catalog.Catalog, i int) bool {
	if i < 0 || i >= c.Len() || i == s.Index {
		return false
	}
	s.Index = i
	return true
}

// Cycle moves the selected entry of c by delta, wrapping around.
func (s *Selection) Cycle(c *catalog.Catalog, delta int) bool {
	size := c.Len()
	if size == 0 {
		return false
	}
	i := ((s.Index+delta)%size + size) % size
	return s.Select(c, i)
}

// SelectLabel chooses the entry with label in c.
func (s *Selection) SelectLabel(c *catalog.Catalog, label string) (bool, error) {
	i := c.IndexOf(label)
	if i < 0 {
		return false, &catalog.NotFoundError{Label: label}
	}
	return s.Select(c, i), nil
}

// Request returns the selected entry and rectangle count.
func (s Selection) Request(c *catalog.Catalog) (catalog.Entry, int) {
	return c.At(s.Index), s.N
}
