package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/verisafe/shield/go-monitor/internal/config"
	"github.com/verisafe/shield/go-monitor/internal/episode"
	"github.com/verisafe/shield/go-monitor/internal/region"
	"github.com/verisafe/shield/go-monitor/internal/replay"
)

// #region main

func main() {
	dbPath := flag.String("db", "", "path to shield.db (DB mode)")
	episodeID := flag.String("episode", "", "episode to re-classify (DB mode)")
	fixturePath := flag.String("fixture", "", "path to fixture JSON (fixture mode)")
	overridesPath := flag.String("overrides", "", "YAML override table; empty uses the built-in walker table")
	flag.Parse()

	dbMode := *dbPath != "" && *episodeID != ""
	fixtureMode := *fixturePath != ""
	if dbMode == fixtureMode {
		fmt.Fprintln(os.Stderr, "usage: replay --db path/to/shield.db --episode id [--overrides table.yaml]")
		fmt.Fprintln(os.Stderr, "       replay --fixture path/to/fixture.json")
		os.Exit(2)
	}

	var exitCode int
	if fixtureMode {
		exitCode = runFixtureMode(*fixturePath)
	} else {
		exitCode = runDBMode(*dbPath, *episodeID, *overridesPath)
	}
	os.Exit(exitCode)
}

// #endregion main

// #region db-mode

// runDBMode rebuilds the envelope the episode was monitored with and
// re-classifies every recorded step. The override table must match the
// one used during recording.
func runDBMode(dbPath, episodeID, overridesPath string) int {
	store, err := episode.NewStore(dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "open db: %v\n", err)
		return 2
	}
	defer store.Close()

	ep, steps, err := store.Get(episodeID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "get episode: %v\n", err)
		return 2
	}
	if len(steps) == 0 {
		fmt.Fprintf(os.Stderr, "episode %s has no recorded steps\n", episodeID)
		return 2
	}

	sel, err := region.ParseSelector(steps[0].Selector)
	if err != nil {
		fmt.Fprintf(os.Stderr, "stored selector: %v\n", err)
		return 2
	}

	// The reduced-space run classifies against an untightened box; the
	// raw-space run carries the override table.
	var overrides region.Overrides
	if sel == region.SelectOriginal {
		overrides, err = config.LoadOverrides(overridesPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "load overrides: %v\n", err)
			return 2
		}
	}

	d := len(steps[0].State)
	env, err := region.NewEnvelope(unitBounds(d, -1), unitBounds(d, 1), overrides)
	if err != nil {
		fmt.Fprintf(os.Stderr, "build envelope: %v\n", err)
		return 2
	}

	results, err := replay.Replay(env, sel, replay.FromSteps(steps))
	if err != nil {
		fmt.Fprintf(os.Stderr, "replay: %v\n", err)
		return 2
	}

	fmt.Printf("Episode %s (seed %d, %d steps, selector %s)\n\n", ep.ID, ep.Seed, len(steps), sel)
	return printComparison(results)
}

// #endregion db-mode

// #region fixture-mode

func runFixtureMode(path string) int {
	f, err := replay.LoadFixture(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "load fixture: %v\n", err)
		return 2
	}
	env, err := f.ToEnvelope()
	if err != nil {
		fmt.Fprintf(os.Stderr, "build envelope: %v\n", err)
		return 2
	}
	sel, err := f.ToSelector()
	if err != nil {
		fmt.Fprintf(os.Stderr, "selector: %v\n", err)
		return 2
	}

	results, err := replay.Replay(env, sel, f.ToSamples())
	if err != nil {
		fmt.Fprintf(os.Stderr, "replay: %v\n", err)
		return 2
	}

	if f.Description != "" {
		fmt.Printf("%s\n\n", f.Description)
	}
	return printComparison(results)
}

// #endregion fixture-mode

// #region output

// printComparison outputs a stored-vs-recomputed table and returns the
// exit code: 1 when any step diverges.
func printComparison(results []replay.Result) int {
	fmt.Printf("%-6s| %-14s| %-14s| %s\n", "Step", "Stored", "Replayed", "Match")
	fmt.Printf("%-6s+%-15s+%-15s+%s\n",
		"------", "---------------", "---------------", "------")

	for _, r := range results {
		match := "OK"
		if r.Diverged {
			match = "DIFF"
		}
		fmt.Printf("%-6d| %-14s| %-14s| %s\n",
			r.Index, labels(r.StoredSafe, r.StoredUnsafe), labels(r.Safe, r.Unsafe), match)
	}

	s := replay.Summarize(results)
	fmt.Printf("\nSummary: %d total, %d match, %d diverge, %d unsafe\n",
		s.Total, s.Matches, s.Divergences, s.UnsafeSeen)

	if s.Divergences > 0 {
		return 1
	}
	return 0
}

func labels(safe, unsafe bool) string {
	switch {
	case safe && !unsafe:
		return "safe"
	case !safe && unsafe:
		return "unsafe"
	case safe && unsafe:
		return "safe+unsafe"
	default:
		return "neither"
	}
}

func unitBounds(d int, v float64) []float64 {
	out := make([]float64, d)
	for i := range out {
		out[i] = v
	}
	return out
}

// #endregion output
