package region

import (
	"fmt"

	"github.com/verisafe/shield/go-monitor/internal/geometry"
)

// #region selector

// Selector chooses which region copy a containment query runs against.
type Selector int

const (
	// SelectOriginal queries the ground-truth region fixed at construction.
	SelectOriginal Selector = iota
	// SelectCurrent queries the possibly-tightened operating envelope.
	SelectCurrent
)

func (s Selector) String() string {
	switch s {
	case SelectOriginal:
		return "original"
	case SelectCurrent:
		return "current"
	default:
		return fmt.Sprintf("selector(%d)", int(s))
	}
}

// ParseSelector maps the stored text form back to a Selector.
func ParseSelector(s string) (Selector, error) {
	switch s {
	case "original":
		return SelectOriginal, nil
	case "current":
		return SelectCurrent, nil
	default:
		return 0, fmt.Errorf("unknown selector %q", s)
	}
}

// #endregion selector

// #region envelope

// regionPair is one safe box plus its derived unsafe complement.
type regionPair struct {
	box    Box
	unsafe geometry.Polytope
}

// Envelope keeps two parallel copies of the safety region: the original
// copy fixed at construction and a current copy that a runtime policy
// may tighten later. The current region is always a per-dimension
// subset of the original. Envelope is not safe for concurrent mutation;
// concurrent hosts must give each worker its own copy.
type Envelope struct {
	obsLower []float64
	obsUpper []float64
	base     Overrides // construction table, overlaid by Tighten
	original regionPair
	current  regionPair
}

// NewEnvelope builds both copies from the declared observation bounds
// and the override table. Construction is the only place the original
// copy is written.
func NewEnvelope(obsLower, obsUpper []float64, overrides Overrides) (*Envelope, error) {
	box, err := BuildSafeRegion(obsLower, obsUpper, overrides)
	if err != nil {
		return nil, fmt.Errorf("build safe region: %w", err)
	}
	uns, err := DeriveUnsafeRegion(box.Safe, obsLower, obsUpper)
	if err != nil {
		return nil, fmt.Errorf("derive unsafe region: %w", err)
	}

	lo := make([]float64, len(obsLower))
	hi := make([]float64, len(obsUpper))
	copy(lo, obsLower)
	copy(hi, obsUpper)

	base := make(Overrides, len(overrides))
	for i, rule := range overrides {
		base[i] = rule
	}

	pair := regionPair{box: box, unsafe: uns}
	return &Envelope{
		obsLower: lo,
		obsUpper: hi,
		base:     base,
		original: pair,
		current:  pair,
	}, nil
}

// Dim returns the dimensionality of the envelope.
func (e *Envelope) Dim() int {
	return len(e.obsLower)
}

// Tighten rebuilds the current copy with the given rules overlaid on
// the construction table; dimensions the new table does not mention
// keep their construction rule. The result must stay inside the
// original safe box; a table that would widen any dimension is
// rejected and the current copy is left unchanged. The unsafe
// complement keeps its boundary rows on the declared observation
// bounds.
func (e *Envelope) Tighten(overrides Overrides) error {
	merged := make(Overrides, len(e.base)+len(overrides))
	for i, rule := range e.base {
		merged[i] = rule
	}
	for i, rule := range overrides {
		merged[i] = rule
	}

	box, err := BuildSafeRegion(e.obsLower, e.obsUpper, merged)
	if err != nil {
		return fmt.Errorf("build tightened region: %w", err)
	}
	for i := 0; i < box.Dim(); i++ {
		if box.Lower[i] < e.original.box.Lower[i] || box.Upper[i] > e.original.box.Upper[i] {
			return fmt.Errorf("dim %d: tightened bounds [%g,%g] escape original [%g,%g]",
				i, box.Lower[i], box.Upper[i], e.original.box.Lower[i], e.original.box.Upper[i])
		}
	}
	uns, err := DeriveUnsafeRegion(box.Safe, e.obsLower, e.obsUpper)
	if err != nil {
		return fmt.Errorf("derive tightened unsafe region: %w", err)
	}
	e.current = regionPair{box: box, unsafe: uns}
	return nil
}

// pair resolves a selector to a region copy.
func (e *Envelope) pair(sel Selector) (regionPair, error) {
	switch sel {
	case SelectOriginal:
		return e.original, nil
	case SelectCurrent:
		return e.current, nil
	default:
		return regionPair{}, fmt.Errorf("unknown selector %v", sel)
	}
}

// IsSafe reports whether x satisfies every constraint of the selected
// safe polytope. Boundary points are safe.
func (e *Envelope) IsSafe(x []float64, sel Selector) (bool, error) {
	p, err := e.pair(sel)
	if err != nil {
		return false, err
	}
	return p.box.Safe.Contains(x)
}

// IsUnsafe reports whether x strictly satisfies at least one violation
// row of the selected unsafe region. Boundary points are not unsafe.
func (e *Envelope) IsUnsafe(x []float64, sel Selector) (bool, error) {
	p, err := e.pair(sel)
	if err != nil {
		return false, err
	}
	return p.unsafe.Contains(x)
}

// Safe returns the selected safe polytope.
func (e *Envelope) Safe(sel Selector) (geometry.Polytope, error) {
	p, err := e.pair(sel)
	if err != nil {
		return geometry.Polytope{}, err
	}
	return p.box.Safe, nil
}

// Unsafe returns the selected unsafe region.
func (e *Envelope) Unsafe(sel Selector) (geometry.Polytope, error) {
	p, err := e.pair(sel)
	if err != nil {
		return geometry.Polytope{}, err
	}
	return p.unsafe, nil
}

// Summary returns the selected abstract-domain summary.
func (e *Envelope) Summary(sel Selector) (geometry.Zonotope, error) {
	p, err := e.pair(sel)
	if err != nil {
		return geometry.Zonotope{}, err
	}
	return p.box.Summary, nil
}

// Bounds returns the selected safe box bounds.
func (e *Envelope) Bounds(sel Selector) (lower, upper []float64, err error) {
	p, err := e.pair(sel)
	if err != nil {
		return nil, nil, err
	}
	return p.box.Lower, p.box.Upper, nil
}

// #endregion envelope
