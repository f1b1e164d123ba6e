// Package scale maps raw observations into the normalized [-1, 1]
// coordinate system the safety regions are expressed in.
package scale

import "fmt"

// #region normalize

// Normalize maps x affinely from [min, max] to [-1, 1] per dimension.
// Degenerate dimensions (min == max) map to 0.
func Normalize(x, min, max []float64) ([]float64, error) {
	if err := checkDims(len(x), len(min), len(max)); err != nil {
		return nil, err
	}
	out := make([]float64, len(x))
	for i := range x {
		span := max[i] - min[i]
		if span == 0 {
			out[i] = 0
			continue
		}
		out[i] = 2*(x[i]-min[i])/span - 1
	}
	return out, nil
}

// Denormalize maps x from [-1, 1] back to [min, max] per dimension.
func Denormalize(x, min, max []float64) ([]float64, error) {
	if err := checkDims(len(x), len(min), len(max)); err != nil {
		return nil, err
	}
	out := make([]float64, len(x))
	for i := range x {
		out[i] = (x[i]+1)/2*(max[i]-min[i]) + min[i]
	}
	return out, nil
}

// NormalizeBounds maps a [lower, upper] box through Normalize. Bound
// vectors ride the same affine map as states, so tightened raw bounds
// land at the right place in normalized space.
func NormalizeBounds(lower, upper, min, max []float64) (nLower, nUpper []float64, err error) {
	nLower, err = Normalize(lower, min, max)
	if err != nil {
		return nil, nil, fmt.Errorf("normalize lower: %w", err)
	}
	nUpper, err = Normalize(upper, min, max)
	if err != nil {
		return nil, nil, fmt.Errorf("normalize upper: %w", err)
	}
	return nLower, nUpper, nil
}

func checkDims(x, min, max int) error {
	if x != min || x != max {
		return fmt.Errorf("dim mismatch: x %d, min %d, max %d", x, min, max)
	}
	return nil
}

// #endregion normalize
