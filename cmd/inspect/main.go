package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/verisafe/shield/go-monitor/internal/episode"
)

// #region main

func main() {
	dbPath := flag.String("db", "", "path to shield.db")
	last := flag.Int("last", 20, "show N most recent episodes")
	episodeID := flag.String("episode", "", "show single episode detail")
	violations := flag.Bool("violations", false, "detail mode: only show unsafe steps")
	jsonOut := flag.Bool("json", false, "output as JSON instead of table")
	flag.Parse()

	if *dbPath == "" {
		fmt.Fprintln(os.Stderr, "usage: inspect --db path/to/shield.db [--last N] [--episode id] [--violations] [--json]")
		os.Exit(2)
	}

	store, err := episode.NewStore(*dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "open db: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if *episodeID != "" {
		if err := runDetailMode(store, *episodeID, *violations, *jsonOut); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
	} else {
		if err := runListMode(store, *last, *jsonOut); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
	}
}

// #endregion main

// #region list-mode

type listRow struct {
	EpisodeID string `json:"episode_id"`
	Seed      int64  `json:"seed"`
	Steps     int    `json:"steps"`
	Outcome   string `json:"outcome"`
	StartedAt string `json:"started_at"`
}

func runListMode(store *episode.Store, last int, jsonOut bool) error {
	episodes, err := store.List(last)
	if err != nil {
		return err
	}
	if len(episodes) == 0 {
		fmt.Fprintln(os.Stderr, "no episodes found")
		return nil
	}

	rows := make([]listRow, len(episodes))
	for i, ep := range episodes {
		rows[i] = listRow{
			EpisodeID: ep.ID,
			Seed:      ep.Seed,
			Steps:     ep.Steps,
			Outcome:   string(ep.Outcome),
			StartedAt: ep.StartedAt.Format("2006-01-02T15:04:05Z"),
		}
	}

	if jsonOut {
		return printJSON(rows)
	}

	fmt.Printf("%-10s  %8s  %6s  %-12s  %s\n", "Episode", "Seed", "Steps", "Outcome", "Started")
	fmt.Printf("%-10s+-%8s+-%6s+-%-12s+-%s\n",
		"----------", "--------", "------", "------------", "--------------------")
	for _, r := range rows {
		outcome := r.Outcome
		if outcome == "" {
			outcome = "running"
		}
		fmt.Printf("%-10s  %8d  %6d  %-12s  %s\n",
			shortID(r.EpisodeID), r.Seed, r.Steps, outcome, r.StartedAt)
	}
	return nil
}

// #endregion list-mode

// #region detail-mode

type stepRow struct {
	Index    int       `json:"index"`
	State    []float64 `json:"state"`
	Reward   float64   `json:"reward"`
	Safe     bool      `json:"safe"`
	Unsafe   bool      `json:"unsafe"`
	Selector string    `json:"selector"`
}

type detailOutput struct {
	EpisodeID   string    `json:"episode_id"`
	Seed        int64     `json:"seed"`
	Steps       int       `json:"steps"`
	Outcome     string    `json:"outcome"`
	UnsafeSteps int       `json:"unsafe_steps"`
	StartedAt   string    `json:"started_at"`
	StepLog     []stepRow `json:"step_log"`
}

func runDetailMode(store *episode.Store, episodeID string, violationsOnly, jsonOut bool) error {
	ep, steps, err := store.Get(episodeID)
	if err != nil {
		return err
	}

	out := detailOutput{
		EpisodeID: ep.ID,
		Seed:      ep.Seed,
		Steps:     ep.Steps,
		Outcome:   string(ep.Outcome),
		StartedAt: ep.StartedAt.Format("2006-01-02T15:04:05Z"),
	}
	for _, rec := range steps {
		if rec.Unsafe {
			out.UnsafeSteps++
		}
		if violationsOnly && !rec.Unsafe {
			continue
		}
		out.StepLog = append(out.StepLog, stepRow{
			Index:    rec.Index,
			State:    rec.State,
			Reward:   rec.Reward,
			Safe:     rec.Safe,
			Unsafe:   rec.Unsafe,
			Selector: rec.Selector,
		})
	}

	if jsonOut {
		return printJSON(out)
	}

	fmt.Printf("Episode:      %s\n", out.EpisodeID)
	fmt.Printf("Seed:         %d\n", out.Seed)
	fmt.Printf("Steps:        %d\n", out.Steps)
	fmt.Printf("Outcome:      %s\n", out.Outcome)
	fmt.Printf("Unsafe steps: %d\n", out.UnsafeSteps)
	fmt.Printf("Started:      %s\n", out.StartedAt)

	if len(out.StepLog) == 0 {
		return nil
	}
	fmt.Printf("\n%-6s  %8s  %-6s  %-8s  %s\n", "Step", "Reward", "Safe", "Selector", "State")
	fmt.Printf("%-6s+-%8s+-%-6s+-%-8s+-%s\n",
		"------", "--------", "------", "--------", "--------------------")
	for _, r := range out.StepLog {
		fmt.Printf("%-6d  %8.3f  %-6v  %-8s  %s\n",
			r.Index, r.Reward, r.Safe, r.Selector, formatState(r.State))
	}
	return nil
}

// #endregion detail-mode

// #region output

// formatState prints the first few coordinates of a state vector.
func formatState(x []float64) string {
	const maxShown = 5
	s := "["
	for i, v := range x {
		if i == maxShown {
			s += fmt.Sprintf(" ... +%d", len(x)-maxShown)
			break
		}
		if i > 0 {
			s += " "
		}
		s += fmt.Sprintf("%.3f", v)
	}
	return s + "]"
}

func printJSON(v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal json: %w", err)
	}
	fmt.Println(string(data))
	return nil
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

// #endregion output
