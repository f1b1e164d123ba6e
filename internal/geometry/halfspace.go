package geometry

import "fmt"

// #region halfspace
// HalfSpace is a single linear inequality A·x <= B.
type HalfSpace struct {
	A []float64
	B float64
}

// NewHalfSpace copies coeffs so callers can reuse their slices.
func NewHalfSpace(a []float64, b float64) HalfSpace {
	coeffs := make([]float64, len(a))
	copy(coeffs, a)
	return HalfSpace{A: coeffs, B: b}
}

// AxisUpper returns the half-space x_i <= bound in d dimensions.
func AxisUpper(d, i int, bound float64) HalfSpace {
	a := make([]float64, d)
	a[i] = 1
	return HalfSpace{A: a, B: bound}
}

// AxisLower returns the half-space -x_i <= -bound (x_i >= bound) in d dimensions.
func AxisLower(d, i int, bound float64) HalfSpace {
	a := make([]float64, d)
	a[i] = -1
	return HalfSpace{A: a, B: -bound}
}

// Dim returns the dimensionality of the half-space.
func (h HalfSpace) Dim() int {
	return len(h.A)
}

// Negate returns the complementary half-space (-A, -B).
// The complement of A·x <= B is A·x > B, which is -A·x < -B; callers
// pick up the strict comparison through ModeAny aggregation.
func (h HalfSpace) Negate() HalfSpace {
	a := make([]float64, len(h.A))
	for i, v := range h.A {
		a[i] = -v
	}
	return HalfSpace{A: a, B: -h.B}
}

// Eval returns A·x - B. Negative or zero means the point satisfies
// the non-strict inequality.
func (h HalfSpace) Eval(x []float64) (float64, error) {
	if len(x) != len(h.A) {
		return 0, fmt.Errorf("half-space dim %d, point dim %d", len(h.A), len(x))
	}
	var dot float64
	for i, a := range h.A {
		dot += a * x[i]
	}
	return dot - h.B, nil
}

// #endregion halfspace
