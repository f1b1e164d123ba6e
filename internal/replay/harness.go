// Package replay re-classifies recorded walker states against a
// freshly built envelope and reports where the stored labels diverge.
package replay

import (
	"fmt"

	"github.com/verisafe/shield/go-monitor/internal/episode"
	"github.com/verisafe/shield/go-monitor/internal/region"
)

// #region types

// Sample is one recorded state with its stored classification.
type Sample struct {
	Index  int
	State  []float64
	Safe   bool
	Unsafe bool
}

// Result captures the outcome of re-classifying one sample.
type Result struct {
	Index        int
	State        []float64
	StoredSafe   bool
	StoredUnsafe bool
	Safe         bool
	Unsafe       bool
	Diverged     bool
}

// Summary provides aggregate stats from a replay run.
type Summary struct {
	Total       int
	Matches     int
	Divergences int
	UnsafeSeen  int
}

// #endregion types

// #region replay

// Replay runs every sample through the envelope's containment queries
// using the given region selector. Operates entirely in-memory.
func Replay(env *region.Envelope, sel region.Selector, samples []Sample) ([]Result, error) {
	results := make([]Result, 0, len(samples))
	for _, sm := range samples {
		safe, err := env.IsSafe(sm.State, sel)
		if err != nil {
			return nil, fmt.Errorf("sample %d: %w", sm.Index, err)
		}
		unsafe, err := env.IsUnsafe(sm.State, sel)
		if err != nil {
			return nil, fmt.Errorf("sample %d: %w", sm.Index, err)
		}
		results = append(results, Result{
			Index:        sm.Index,
			State:        sm.State,
			StoredSafe:   sm.Safe,
			StoredUnsafe: sm.Unsafe,
			Safe:         safe,
			Unsafe:       unsafe,
			Diverged:     safe != sm.Safe || unsafe != sm.Unsafe,
		})
	}
	return results, nil
}

// FromSteps converts stored step records into replay samples, using
// the reduced/raw observation the classification originally ran on.
func FromSteps(steps []episode.StepRecord) []Sample {
	samples := make([]Sample, 0, len(steps))
	for _, rec := range steps {
		samples = append(samples, Sample{
			Index:  rec.Index,
			State:  rec.State,
			Safe:   rec.Safe,
			Unsafe: rec.Unsafe,
		})
	}
	return samples
}

// Summarize computes aggregate stats from replay results.
func Summarize(results []Result) Summary {
	s := Summary{Total: len(results)}
	for _, r := range results {
		if r.Diverged {
			s.Divergences++
		} else {
			s.Matches++
		}
		if r.Unsafe {
			s.UnsafeSeen++
		}
	}
	return s
}

// #endregion replay
