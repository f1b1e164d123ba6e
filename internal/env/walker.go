// Package env wraps the remote walker simulation with the safety
// envelopes the monitor classifies against. All region queries run in
// the normalized [-1, 1] coordinate system.
package env

import (
	"context"
	"fmt"

	"github.com/verisafe/shield/go-monitor/internal/bridge"
	"github.com/verisafe/shield/go-monitor/internal/region"
	"github.com/verisafe/shield/go-monitor/internal/scale"
)

// DefaultMaxEpisodeSteps caps an episode that neither terminates nor
// gets truncated by the simulator itself.
const DefaultMaxEpisodeSteps = 1600

// #region interfaces

// Simulator is the remote physics process.
type Simulator interface {
	Spec(ctx context.Context) (bridge.Spec, error)
	Reset(ctx context.Context, seed int64) ([]float64, error)
	Step(ctx context.Context, action []float64) (bridge.StepResult, error)
}

// Reducer maps a normalized raw state into the learned reduced space.
type Reducer interface {
	Reduce(ctx context.Context, state []float64) ([]float64, error)
}

// #endregion interfaces

// #region config

// Config tunes walker construction. Zero values pick the defaults.
type Config struct {
	// ReducedDim is the dimensionality of the reducer's output space.
	// Required when a reducer is attached, ignored otherwise.
	ReducedDim int
	// MaxEpisodeSteps truncates an episode after this many steps.
	MaxEpisodeSteps int
	// Overrides tightens the raw-space envelope. Nil picks
	// DefaultWalkerOverrides.
	Overrides region.Overrides
}

// #endregion config

// #region transition

// Transition is one observed state of the walker. State is the reduced
// observation when a reducer is attached, otherwise the normalized raw
// observation. RawState is always the normalized raw observation.
type Transition struct {
	State      []float64
	RawState   []float64
	Reward     float64
	Terminated bool
	Truncated  bool
}

// #endregion transition

// #region walker

// Walker owns the simulator connection, the optional reducer, and the
// two safety envelopes: one over the normalized raw observation space,
// one over the reduced space. Not safe for concurrent use.
type Walker struct {
	sim     Simulator
	reducer Reducer

	obsLow  []float64
	obsHigh []float64

	raw     *region.Envelope
	reduced *region.Envelope

	actionDim  int
	maxSteps   int
	steps      int
	terminated bool
	truncated  bool
}

// NewWalker queries the simulator spec and builds both envelopes. The
// raw envelope spans the normalized box with the override table
// applied; the reduced envelope spans the untightened normalized box
// and is only built when a reducer is attached.
func NewWalker(ctx context.Context, sim Simulator, reducer Reducer, cfg Config) (*Walker, error) {
	spec, err := sim.Spec(ctx)
	if err != nil {
		return nil, fmt.Errorf("simulator spec: %w", err)
	}
	d := len(spec.ObsLow)
	if d == 0 {
		return nil, fmt.Errorf("simulator reports empty observation space")
	}

	overrides := cfg.Overrides
	if overrides == nil {
		overrides = region.DefaultWalkerOverrides()
	}
	maxSteps := cfg.MaxEpisodeSteps
	if maxSteps <= 0 {
		maxSteps = DefaultMaxEpisodeSteps
	}

	raw, err := region.NewEnvelope(unitBounds(d, -1), unitBounds(d, 1), overrides)
	if err != nil {
		return nil, fmt.Errorf("build raw envelope: %w", err)
	}

	var reduced *region.Envelope
	if reducer != nil {
		if cfg.ReducedDim <= 0 {
			return nil, fmt.Errorf("reducer attached but reduced dim is %d", cfg.ReducedDim)
		}
		reduced, err = region.NewEnvelope(unitBounds(cfg.ReducedDim, -1), unitBounds(cfg.ReducedDim, 1), nil)
		if err != nil {
			return nil, fmt.Errorf("build reduced envelope: %w", err)
		}
	}

	return &Walker{
		sim:       sim,
		reducer:   reducer,
		obsLow:    spec.ObsLow,
		obsHigh:   spec.ObsHigh,
		raw:       raw,
		reduced:   reduced,
		actionDim: spec.ActionDim,
		maxSteps:  maxSteps,
	}, nil
}

func unitBounds(d int, v float64) []float64 {
	out := make([]float64, d)
	for i := range out {
		out[i] = v
	}
	return out
}

// #endregion walker

// #region episode

// Reset starts a new episode with an explicit seed and returns the
// initial transition. Reward and the done flags are always zero after
// a reset.
func (w *Walker) Reset(ctx context.Context, seed int64) (Transition, error) {
	state, err := w.sim.Reset(ctx, seed)
	if err != nil {
		return Transition{}, fmt.Errorf("reset: %w", err)
	}
	w.steps = 0
	w.terminated = false
	w.truncated = false
	return w.observe(ctx, state, 0, false, false)
}

// Step advances the simulation by one action.
func (w *Walker) Step(ctx context.Context, action []float64) (Transition, error) {
	if w.actionDim > 0 && len(action) != w.actionDim {
		return Transition{}, fmt.Errorf("action dim %d, want %d", len(action), w.actionDim)
	}
	result, err := w.sim.Step(ctx, action)
	if err != nil {
		return Transition{}, fmt.Errorf("step: %w", err)
	}
	w.steps++
	truncated := result.Truncated || w.steps >= w.maxSteps
	w.terminated = result.Terminated
	w.truncated = truncated
	return w.observe(ctx, result.State, result.Reward, result.Terminated, truncated)
}

// observe normalizes the raw state and runs it through the reducer.
func (w *Walker) observe(ctx context.Context, rawState []float64, reward float64, terminated, truncated bool) (Transition, error) {
	norm, err := scale.Normalize(rawState, w.obsLow, w.obsHigh)
	if err != nil {
		return Transition{}, fmt.Errorf("normalize state: %w", err)
	}
	state := norm
	if w.reducer != nil {
		state, err = w.reducer.Reduce(ctx, norm)
		if err != nil {
			return Transition{}, fmt.Errorf("reduce state: %w", err)
		}
	}
	return Transition{
		State:      state,
		RawState:   norm,
		Reward:     reward,
		Terminated: terminated,
		Truncated:  truncated,
	}, nil
}

// ActionDim returns the simulator's action dimensionality.
func (w *Walker) ActionDim() int {
	return w.actionDim
}

// Steps returns the number of steps taken since the last reset.
func (w *Walker) Steps() int {
	return w.steps
}

// EpisodeDone reports whether the episode has ended, either by the
// simulator or by the step cap.
func (w *Walker) EpisodeDone() bool {
	return w.terminated || w.truncated || w.steps >= w.maxSteps
}

// #endregion episode

// #region safety

// IsUnsafe classifies a state against the unsafe region. With reduced
// set, the state is checked in the reduced space against the current
// (possibly tightened) copy; otherwise against the raw envelope's
// original copy.
func (w *Walker) IsUnsafe(state []float64, reduced bool) (bool, error) {
	if reduced {
		if w.reduced == nil {
			return false, fmt.Errorf("no reducer attached")
		}
		return w.reduced.IsUnsafe(state, region.SelectCurrent)
	}
	return w.raw.IsUnsafe(state, region.SelectOriginal)
}

// IsSafe is the complementary query over the safe region.
func (w *Walker) IsSafe(state []float64, reduced bool) (bool, error) {
	if reduced {
		if w.reduced == nil {
			return false, fmt.Errorf("no reducer attached")
		}
		return w.reduced.IsSafe(state, region.SelectCurrent)
	}
	return w.raw.IsSafe(state, region.SelectOriginal)
}

// Raw returns the raw-space envelope.
func (w *Walker) Raw() *region.Envelope {
	return w.raw
}

// Reduced returns the reduced-space envelope, or nil when no reducer
// is attached.
func (w *Walker) Reduced() *region.Envelope {
	return w.reduced
}

// #endregion safety
