package main

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/verisafe/shield/go-monitor/internal/bridge"
	"github.com/verisafe/shield/go-monitor/internal/config"
	"github.com/verisafe/shield/go-monitor/internal/env"
	"github.com/verisafe/shield/go-monitor/internal/episode"
	"github.com/verisafe/shield/go-monitor/internal/region"
)

// #region main
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	overrides, err := config.LoadOverrides(cfg.OverridesPath)
	if err != nil {
		log.Fatalf("load overrides: %v", err)
	}

	store, err := episode.NewStore(cfg.DBPath)
	if err != nil {
		log.Fatalf("open store: %v", err)
	}
	defer store.Close()

	client, err := bridge.NewClient(cfg.SimAddr)
	if err != nil {
		log.Fatalf("connect to simulator at %s: %v", cfg.SimAddr, err)
	}
	defer client.Close()

	var reducer env.Reducer
	if cfg.ReducedDim > 0 {
		reducer = client
	}

	ctx := context.Background()
	walker, err := env.NewWalker(ctx, client, reducer, env.Config{
		ReducedDim:      cfg.ReducedDim,
		MaxEpisodeSteps: cfg.MaxEpisodeSteps,
		Overrides:       overrides,
	})
	if err != nil {
		log.Fatalf("build walker: %v", err)
	}

	fmt.Println("Safety monitor ready.")
	fmt.Printf("  DB: %s | Sim: %s | Episodes: %d | Reduced dim: %d\n",
		cfg.DBPath, cfg.SimAddr, cfg.Episodes, cfg.ReducedDim)

	for i := 0; i < cfg.Episodes; i++ {
		seed := cfg.BaseSeed + int64(i)
		if err := runEpisode(ctx, walker, store, seed, cfg.ReducedDim > 0); err != nil {
			log.Fatalf("episode %d (seed %d): %v", i, seed, err)
		}
	}
}
// #endregion main

// #region episode-loop

// runEpisode performs one seeded rollout with uniform random actions
// and records every step's classification.
func runEpisode(ctx context.Context, walker *env.Walker, store *episode.Store, seed int64, reduced bool) error {
	ep, err := store.Begin(seed)
	if err != nil {
		return fmt.Errorf("begin episode: %w", err)
	}

	selector := region.SelectOriginal
	if reduced {
		selector = region.SelectCurrent
	}

	tr, err := walker.Reset(ctx, seed)
	if err != nil {
		return fmt.Errorf("reset: %w", err)
	}

	rng := rand.New(rand.NewSource(seed))
	unsafeSteps := 0
	start := time.Now()

	for step := 0; !walker.EpisodeDone(); step++ {
		safe, err := walker.IsSafe(tr.State, reduced)
		if err != nil {
			return fmt.Errorf("classify step %d: %w", step, err)
		}
		unsafe, err := walker.IsUnsafe(tr.State, reduced)
		if err != nil {
			return fmt.Errorf("classify step %d: %w", step, err)
		}
		if unsafe {
			unsafeSteps++
		}

		err = store.LogStep(episode.StepRecord{
			EpisodeID: ep.ID,
			Index:     step,
			State:     tr.State,
			RawState:  tr.RawState,
			Reward:    tr.Reward,
			Safe:      safe,
			Unsafe:    unsafe,
			Selector:  selector.String(),
		})
		if err != nil {
			return fmt.Errorf("log step %d: %w", step, err)
		}

		tr, err = walker.Step(ctx, randomAction(rng, walker.ActionDim()))
		if err != nil {
			return fmt.Errorf("step %d: %w", step, err)
		}
	}

	outcome := episode.OutcomeTruncated
	if tr.Terminated {
		outcome = episode.OutcomeTerminated
	}
	if err := store.Finish(ep.ID, outcome); err != nil {
		return fmt.Errorf("finish episode: %w", err)
	}

	fmt.Printf("[%s] seed=%d steps=%d unsafe=%d outcome=%s elapsed=%s\n",
		shortID(ep.ID), seed, walker.Steps(), unsafeSteps, outcome, time.Since(start).Round(time.Millisecond))
	return nil
}

// #endregion episode-loop

// #region helpers

// randomAction samples a uniform action in [-1, 1]^d.
func randomAction(rng *rand.Rand, d int) []float64 {
	a := make([]float64, d)
	for i := range a {
		a[i] = 2*rng.Float64() - 1
	}
	return a
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

// #endregion helpers
