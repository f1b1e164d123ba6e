package region

import (
	"fmt"
	"sort"

	"github.com/verisafe/shield/go-monitor/internal/geometry"
)

// #region overrides

// Override tightens one dimension of the safe box: the raw bounds are
// replaced with [center - radius, center + radius]. When AtMidpoint is
// set the center is taken from the midpoint of the raw bounds instead
// of the Center field.
type Override struct {
	Center     float64
	Radius     float64
	AtMidpoint bool
}

// Overrides maps dimension index to tightening rule. Unlisted
// dimensions keep the raw observation-space bounds.
type Overrides map[int]Override

// DefaultWalkerOverrides returns the tightening table for the bipedal
// walker: hull angle, angular velocity, horizontal and vertical
// velocity, and the first hip-joint angle. Values are in normalized
// observation units.
func DefaultWalkerOverrides() Overrides {
	return Overrides{
		0: {AtMidpoint: true, Radius: 0.7},
		1: {Center: 0.25, Radius: 0.9},
		2: {AtMidpoint: true, Radius: 0.8},
		3: {AtMidpoint: true, Radius: 0.8},
		4: {Center: 0.15, Radius: 1.1},
	}
}

// Apply returns copies of lower/upper with every override substituted.
// Overrides referencing dimensions outside the bounds are rejected.
func (ov Overrides) Apply(lower, upper []float64) ([]float64, []float64, error) {
	if len(lower) != len(upper) {
		return nil, nil, fmt.Errorf("lower dim %d, upper dim %d", len(lower), len(upper))
	}
	lo := make([]float64, len(lower))
	hi := make([]float64, len(upper))
	copy(lo, lower)
	copy(hi, upper)

	// Deterministic application order regardless of map iteration.
	dims := make([]int, 0, len(ov))
	for i := range ov {
		dims = append(dims, i)
	}
	sort.Ints(dims)

	for _, i := range dims {
		if i < 0 || i >= len(lower) {
			return nil, nil, fmt.Errorf("override dim %d out of range [0,%d)", i, len(lower))
		}
		rule := ov[i]
		if rule.Radius < 0 {
			return nil, nil, fmt.Errorf("override dim %d: negative radius %g", i, rule.Radius)
		}
		center := rule.Center
		if rule.AtMidpoint {
			center = (lower[i] + upper[i]) / 2
		}
		lo[i] = center - rule.Radius
		hi[i] = center + rule.Radius
	}
	return lo, hi, nil
}

// #endregion overrides

// #region box

// Box bundles the half-space form of an axis-aligned safe region with
// its zonotope summary and the bounds both were built from. The two
// representations are always constructed together so they cannot drift.
type Box struct {
	Safe    geometry.Polytope
	Summary geometry.Zonotope
	Lower   []float64
	Upper   []float64
}

// Dim returns the dimensionality of the box.
func (b Box) Dim() int {
	return len(b.Lower)
}

// BuildBox constructs the safe polytope and matching summary for the
// box [lower, upper]. For each dimension i, in index order, it emits
// x_i <= upper[i] followed by -x_i <= -lower[i], 2d constraints total.
// Infeasible bounds (lower > upper) fail fast rather than producing an
// always-violated region.
func BuildBox(lower, upper []float64) (Box, error) {
	if len(lower) != len(upper) {
		return Box{}, fmt.Errorf("lower dim %d, upper dim %d", len(lower), len(upper))
	}
	d := len(lower)
	if d == 0 {
		return Box{}, fmt.Errorf("empty bounds")
	}
	for i := 0; i < d; i++ {
		if lower[i] > upper[i] {
			return Box{}, fmt.Errorf("dim %d: lower %g exceeds upper %g", i, lower[i], upper[i])
		}
	}

	constraints := make([]geometry.HalfSpace, 0, 2*d)
	for i := 0; i < d; i++ {
		constraints = append(constraints, geometry.AxisUpper(d, i, upper[i]))
		constraints = append(constraints, geometry.AxisLower(d, i, lower[i]))
	}

	summary, err := geometry.AxisAligned(lower, upper)
	if err != nil {
		return Box{}, fmt.Errorf("build summary: %w", err)
	}

	lo := make([]float64, d)
	hi := make([]float64, d)
	copy(lo, lower)
	copy(hi, upper)

	return Box{
		Safe:    geometry.Polytope{Constraints: constraints, Mode: geometry.ModeAll},
		Summary: summary,
		Lower:   lo,
		Upper:   hi,
	}, nil
}

// BuildSafeRegion applies the override table to the raw bounds and
// builds the resulting box.
func BuildSafeRegion(lower, upper []float64, overrides Overrides) (Box, error) {
	lo, hi, err := overrides.Apply(lower, upper)
	if err != nil {
		return Box{}, fmt.Errorf("apply overrides: %w", err)
	}
	return BuildBox(lo, hi)
}

// #endregion box
