// Package episode persists walker rollouts and their per-step safety
// classifications to SQLite.
package episode

import "time"

// #region types

// Outcome records how an episode ended.
type Outcome string

const (
	// OutcomeTerminated means the simulator ended the episode.
	OutcomeTerminated Outcome = "terminated"
	// OutcomeTruncated means the step cap was reached.
	OutcomeTruncated Outcome = "truncated"
	// OutcomeAborted means the monitor stopped the episode early.
	OutcomeAborted Outcome = "aborted"
)

// Episode is one seeded rollout.
type Episode struct {
	ID         string
	Seed       int64
	StartedAt  time.Time
	FinishedAt time.Time
	Steps      int
	Outcome    Outcome
}

// StepRecord is one classified step of an episode. State is the
// observation the classification ran against; Selector names the
// region copy that produced Safe/Unsafe.
type StepRecord struct {
	EpisodeID string
	Index     int
	State     []float64
	RawState  []float64
	Reward    float64
	Safe      bool
	Unsafe    bool
	Selector  string
	CreatedAt time.Time
}

// #endregion types
