package replay

import (
	"testing"

	"github.com/verisafe/shield/go-monitor/internal/episode"
	"github.com/verisafe/shield/go-monitor/internal/region"
)

// helper: 2-dim envelope over [-1,1] with dim 0 tightened to [-0.5,0.5].
func testEnvelope(t *testing.T) *region.Envelope {
	t.Helper()
	env, err := region.NewEnvelope(
		[]float64{-1, -1}, []float64{1, 1},
		region.Overrides{0: {Radius: 0.5}},
	)
	if err != nil {
		t.Fatalf("new envelope: %v", err)
	}
	return env
}

// 1. Matching labels replay with no divergences.
func TestReplay_AllMatch(t *testing.T) {
	env := testEnvelope(t)
	samples := []Sample{
		{Index: 0, State: []float64{0, 0}, Safe: true},
		{Index: 1, State: []float64{0.5, 0}, Safe: true},
		{Index: 2, State: []float64{0.8, 0}, Unsafe: true},
	}

	results, err := Replay(env, region.SelectOriginal, samples)
	if err != nil {
		t.Fatalf("replay: %v", err)
	}
	if len(results) != 3 {
		t.Fatalf("expected 3 results, got %d", len(results))
	}
	for _, r := range results {
		if r.Diverged {
			t.Errorf("sample %d: unexpected divergence: %+v", r.Index, r)
		}
	}
}

// 2. A wrong stored label is flagged as divergence.
func TestReplay_Divergence(t *testing.T) {
	env := testEnvelope(t)
	samples := []Sample{
		{Index: 0, State: []float64{0.8, 0}, Safe: true}, // stored safe, actually unsafe
	}

	results, err := Replay(env, region.SelectOriginal, samples)
	if err != nil {
		t.Fatalf("replay: %v", err)
	}
	r := results[0]
	if !r.Diverged {
		t.Fatal("expected divergence")
	}
	if r.Safe || !r.Unsafe {
		t.Errorf("expected recomputed unsafe, got safe=%v unsafe=%v", r.Safe, r.Unsafe)
	}
	if !r.StoredSafe || r.StoredUnsafe {
		t.Errorf("stored labels should be preserved: %+v", r)
	}
}

// 3. The selector picks the region copy.
func TestReplay_SelectorPicksCopy(t *testing.T) {
	env := testEnvelope(t)
	if err := env.Tighten(region.Overrides{1: {Radius: 0.3}}); err != nil {
		t.Fatalf("tighten: %v", err)
	}
	samples := []Sample{{Index: 0, State: []float64{0, 0.6}, Safe: true}}

	results, err := Replay(env, region.SelectOriginal, samples)
	if err != nil {
		t.Fatalf("replay original: %v", err)
	}
	if results[0].Diverged {
		t.Error("state is inside the original copy; expected no divergence")
	}

	results, err = Replay(env, region.SelectCurrent, samples)
	if err != nil {
		t.Fatalf("replay current: %v", err)
	}
	if !results[0].Diverged {
		t.Error("state escapes the tightened current copy; expected divergence")
	}
}

// 4. Dimension mismatches surface as errors, not silent divergences.
func TestReplay_DimMismatch(t *testing.T) {
	env := testEnvelope(t)
	samples := []Sample{{Index: 0, State: []float64{0, 0, 0}}}
	if _, err := Replay(env, region.SelectOriginal, samples); err == nil {
		t.Fatal("expected error for 3-dim state against 2-dim envelope")
	}
}

// 5. Step records convert with labels intact.
func TestFromSteps(t *testing.T) {
	steps := []episode.StepRecord{
		{Index: 0, State: []float64{0.1, 0.2}, Safe: true},
		{Index: 1, State: []float64{0.9, 0}, Unsafe: true},
	}
	samples := FromSteps(steps)
	if len(samples) != 2 {
		t.Fatalf("expected 2 samples, got %d", len(samples))
	}
	if !samples[0].Safe || samples[0].Unsafe {
		t.Errorf("sample 0 labels wrong: %+v", samples[0])
	}
	if samples[1].State[0] != 0.9 || !samples[1].Unsafe {
		t.Errorf("sample 1 wrong: %+v", samples[1])
	}
}

// 6. Summarize counts match the results.
func TestSummarize(t *testing.T) {
	results := []Result{
		{Index: 0, Safe: true},
		{Index: 1, Unsafe: true, Diverged: true},
		{Index: 2, Unsafe: true},
	}
	s := Summarize(results)
	if s.Total != 3 {
		t.Errorf("expected total 3, got %d", s.Total)
	}
	if s.Matches != 2 {
		t.Errorf("expected 2 matches, got %d", s.Matches)
	}
	if s.Divergences != 1 {
		t.Errorf("expected 1 divergence, got %d", s.Divergences)
	}
	if s.UnsafeSeen != 2 {
		t.Errorf("expected 2 unsafe, got %d", s.UnsafeSeen)
	}
}
