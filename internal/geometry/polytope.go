package geometry

import "fmt"

// #region aggregation-mode
// AggregationMode selects how a region's half-spaces combine.
type AggregationMode int

const (
	// ModeAll: the region is the intersection of its half-spaces.
	// Membership requires every constraint to hold, non-strictly —
	// boundary points belong to the region.
	ModeAll AggregationMode = iota

	// ModeAny: the region is the union of its half-spaces.
	// Membership requires at least one constraint to hold strictly —
	// boundary points do not belong to the region. This is the exact
	// complement of a ModeAll box built from the negated constraints.
	ModeAny
)

func (m AggregationMode) String() string {
	switch m {
	case ModeAll:
		return "all"
	case ModeAny:
		return "any"
	default:
		return fmt.Sprintf("mode(%d)", int(m))
	}
}

// #endregion aggregation-mode

// #region polytope
// Polytope is an ordered collection of half-spaces with an explicit
// aggregation mode. ModeAll polytopes are convex regions; ModeAny
// polytopes are complement unions (one violation condition per row).
type Polytope struct {
	Constraints []HalfSpace
	Mode        AggregationMode
}

// Dim returns the dimensionality of the polytope, 0 when empty.
func (p Polytope) Dim() int {
	if len(p.Constraints) == 0 {
		return 0
	}
	return p.Constraints[0].Dim()
}

// Contains reports membership of x under the polytope's aggregation mode.
// A point whose length differs from the polytope dimension is rejected.
func (p Polytope) Contains(x []float64) (bool, error) {
	if len(p.Constraints) == 0 {
		return false, fmt.Errorf("empty polytope")
	}
	if len(x) != p.Dim() {
		return false, fmt.Errorf("polytope dim %d, point dim %d", p.Dim(), len(x))
	}

	switch p.Mode {
	case ModeAll:
		for _, h := range p.Constraints {
			v, err := h.Eval(x)
			if err != nil {
				return false, err
			}
			if v > 0 {
				return false, nil
			}
		}
		return true, nil
	case ModeAny:
		for _, h := range p.Constraints {
			v, err := h.Eval(x)
			if err != nil {
				return false, err
			}
			if v < 0 {
				return true, nil
			}
		}
		return false, nil
	default:
		return false, fmt.Errorf("unknown aggregation mode %v", p.Mode)
	}
}

// #endregion polytope
