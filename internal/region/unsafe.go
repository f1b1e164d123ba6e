package region

import (
	"fmt"

	"github.com/verisafe/shield/go-monitor/internal/geometry"
)

// #region unsafe

// DeriveUnsafeRegion builds the complement of the safe box as a ModeAny
// polytope: one negated row per safe half-space, in the builder's order,
// followed by the absolute observation-space bound violations for every
// dimension (upper violation, then lower violation, by dimension index).
//
// The boundary rows come from the declared observation bounds, not the
// tightened safe box, so states outside the declared space are unsafe
// even when overrides shrank the safe box well inside it.
func DeriveUnsafeRegion(safe geometry.Polytope, obsLower, obsUpper []float64) (geometry.Polytope, error) {
	if safe.Mode != geometry.ModeAll {
		return geometry.Polytope{}, fmt.Errorf("safe polytope must be ModeAll, got %v", safe.Mode)
	}
	if len(obsLower) != len(obsUpper) {
		return geometry.Polytope{}, fmt.Errorf("obs lower dim %d, upper dim %d", len(obsLower), len(obsUpper))
	}
	d := safe.Dim()
	if d != len(obsLower) {
		return geometry.Polytope{}, fmt.Errorf("safe polytope dim %d, obs bounds dim %d", d, len(obsLower))
	}

	rows := make([]geometry.HalfSpace, 0, len(safe.Constraints)+2*d)
	for _, h := range safe.Constraints {
		rows = append(rows, h.Negate())
	}
	for i := 0; i < d; i++ {
		// x_i > obsUpper[i], stored as the negation of x_i <= obsUpper[i].
		rows = append(rows, geometry.AxisUpper(d, i, obsUpper[i]).Negate())
		// x_i < obsLower[i], stored as the negation of x_i >= obsLower[i].
		rows = append(rows, geometry.AxisLower(d, i, obsLower[i]).Negate())
	}

	return geometry.Polytope{Constraints: rows, Mode: geometry.ModeAny}, nil
}

// #endregion unsafe
