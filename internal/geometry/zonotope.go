package geometry

import "fmt"

// #region zonotope
// Zonotope is the abstract-domain summary of a region: a center point
// plus one generator vector per dimension. For the axis-aligned boxes
// built here, generator i has a single nonzero entry equal to the
// half-width of dimension i. The summary feeds an external
// abstract-interpretation verifier and must always describe the same
// bounds as the half-space form of the region.
type Zonotope struct {
	Center     []float64
	Generators [][]float64
}

// AxisAligned builds the zonotope summary of the box [lower, upper].
func AxisAligned(lower, upper []float64) (Zonotope, error) {
	if len(lower) != len(upper) {
		return Zonotope{}, fmt.Errorf("lower dim %d, upper dim %d", len(lower), len(upper))
	}
	d := len(lower)
	z := Zonotope{
		Center:     make([]float64, d),
		Generators: make([][]float64, d),
	}
	for i := 0; i < d; i++ {
		if lower[i] > upper[i] {
			return Zonotope{}, fmt.Errorf("dim %d: lower %g exceeds upper %g", i, lower[i], upper[i])
		}
		z.Center[i] = (upper[i] + lower[i]) / 2
		gen := make([]float64, d)
		gen[i] = (upper[i] - lower[i]) / 2
		z.Generators[i] = gen
	}
	return z, nil
}

// Dim returns the dimensionality of the zonotope.
func (z Zonotope) Dim() int {
	return len(z.Center)
}

// Bounds reconstructs the per-dimension interval hull of the zonotope.
// For axis-aligned summaries this round-trips the bounds it was built from.
func (z Zonotope) Bounds() (lower, upper []float64) {
	d := z.Dim()
	lower = make([]float64, d)
	upper = make([]float64, d)
	for i := 0; i < d; i++ {
		var radius float64
		for _, gen := range z.Generators {
			if gen[i] < 0 {
				radius -= gen[i]
			} else {
				radius += gen[i]
			}
		}
		lower[i] = z.Center[i] - radius
		upper[i] = z.Center[i] + radius
	}
	return lower, upper
}

// #endregion zonotope
