package episode

import (
	"database/sql"
	"encoding/binary"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

// #region schema
const schema = `
CREATE TABLE IF NOT EXISTS episodes (
	episode_id   TEXT PRIMARY KEY,
	seed         INTEGER NOT NULL,
	started_at   TEXT NOT NULL,
	finished_at  TEXT,
	steps        INTEGER NOT NULL DEFAULT 0,
	outcome      TEXT
);

CREATE TABLE IF NOT EXISTS step_log (
	id           INTEGER PRIMARY KEY AUTOINCREMENT,
	episode_id   TEXT NOT NULL,
	step_idx     INTEGER NOT NULL,
	state        BLOB NOT NULL,
	raw_state    BLOB NOT NULL,
	reward       REAL NOT NULL,
	safe         INTEGER NOT NULL,
	unsafe       INTEGER NOT NULL,
	selector     TEXT NOT NULL,
	created_at   TEXT NOT NULL,
	FOREIGN KEY (episode_id) REFERENCES episodes(episode_id)
);

CREATE INDEX IF NOT EXISTS idx_step_log_episode ON step_log(episode_id, step_idx);
`
// #endregion schema

// #region store-struct
// Store manages episode and step records in SQLite.
type Store struct {
	db *sql.DB
}
// #endregion store-struct

// #region constructor
// NewStore opens a SQLite database and runs migrations.
func NewStore(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		return nil, fmt.Errorf("pragma: %w", err)
	}
	if _, err := db.Exec("PRAGMA foreign_keys=ON"); err != nil {
		return nil, fmt.Errorf("pragma fk: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return &Store{db: db}, nil
}
// #endregion constructor

// #region close
// Close closes the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}
// #endregion close

// #region begin
// Begin creates a new episode record and returns it.
func (s *Store) Begin(seed int64) (Episode, error) {
	ep := Episode{
		ID:        uuid.New().String(),
		Seed:      seed,
		StartedAt: time.Now().UTC(),
	}
	_, err := s.db.Exec(
		`INSERT INTO episodes (episode_id, seed, started_at) VALUES (?, ?, ?)`,
		ep.ID, ep.Seed, ep.StartedAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		return Episode{}, fmt.Errorf("insert episode: %w", err)
	}
	return ep, nil
}
// #endregion begin

// #region log-step
// LogStep appends one classified step to an episode.
func (s *Store) LogStep(rec StepRecord) error {
	created := rec.CreatedAt
	if created.IsZero() {
		created = time.Now().UTC()
	}
	_, err := s.db.Exec(
		`INSERT INTO step_log (episode_id, step_idx, state, raw_state, reward, safe, unsafe, selector, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.EpisodeID, rec.Index, encodeVector(rec.State), encodeVector(rec.RawState),
		rec.Reward, boolInt(rec.Safe), boolInt(rec.Unsafe), rec.Selector,
		created.Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("insert step: %w", err)
	}
	return nil
}
// #endregion log-step

// #region finish
// Finish marks an episode as done, recording its outcome and the step
// count from the log.
func (s *Store) Finish(episodeID string, outcome Outcome) error {
	var steps int
	err := s.db.QueryRow(
		`SELECT COUNT(*) FROM step_log WHERE episode_id = ?`, episodeID,
	).Scan(&steps)
	if err != nil {
		return fmt.Errorf("count steps: %w", err)
	}

	res, err := s.db.Exec(
		`UPDATE episodes SET finished_at = ?, steps = ?, outcome = ? WHERE episode_id = ?`,
		time.Now().UTC().Format(time.RFC3339Nano), steps, string(outcome), episodeID,
	)
	if err != nil {
		return fmt.Errorf("finish episode: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("finish episode: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("episode %s not found", episodeID)
	}
	return nil
}
// #endregion finish

// #region get
// Get retrieves one episode and its full step log.
func (s *Store) Get(episodeID string) (Episode, []StepRecord, error) {
	ep, err := s.scanEpisode(s.db.QueryRow(
		`SELECT episode_id, seed, started_at, finished_at, steps, outcome
		 FROM episodes WHERE episode_id = ?`, episodeID,
	))
	if err != nil {
		return Episode{}, nil, fmt.Errorf("get episode %s: %w", episodeID, err)
	}

	rows, err := s.db.Query(
		`SELECT episode_id, step_idx, state, raw_state, reward, safe, unsafe, selector, created_at
		 FROM step_log WHERE episode_id = ? ORDER BY step_idx`, episodeID,
	)
	if err != nil {
		return Episode{}, nil, fmt.Errorf("query steps: %w", err)
	}
	defer rows.Close()

	var steps []StepRecord
	for rows.Next() {
		var rec StepRecord
		var stateBlob, rawBlob []byte
		var safe, unsafe int
		var createdStr string
		if err := rows.Scan(&rec.EpisodeID, &rec.Index, &stateBlob, &rawBlob,
			&rec.Reward, &safe, &unsafe, &rec.Selector, &createdStr); err != nil {
			return Episode{}, nil, fmt.Errorf("scan step: %w", err)
		}
		rec.State = decodeVector(stateBlob)
		rec.RawState = decodeVector(rawBlob)
		rec.Safe = safe != 0
		rec.Unsafe = unsafe != 0
		rec.CreatedAt, _ = time.Parse(time.RFC3339Nano, createdStr)
		steps = append(steps, rec)
	}
	return ep, steps, rows.Err()
}
// #endregion get

// #region list
// List returns the most recent episodes.
func (s *Store) List(limit int) ([]Episode, error) {
	rows, err := s.db.Query(
		`SELECT episode_id, seed, started_at, finished_at, steps, outcome
		 FROM episodes ORDER BY started_at DESC LIMIT ?`, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("list episodes: %w", err)
	}
	defer rows.Close()

	var episodes []Episode
	for rows.Next() {
		ep, err := s.scanEpisode(rows)
		if err != nil {
			return nil, fmt.Errorf("scan episode: %w", err)
		}
		episodes = append(episodes, ep)
	}
	return episodes, rows.Err()
}
// #endregion list

// #region scan
type rowScanner interface {
	Scan(dest ...interface{}) error
}

func (s *Store) scanEpisode(row rowScanner) (Episode, error) {
	var ep Episode
	var startedStr string
	var finishedStr sql.NullString
	var outcome sql.NullString

	if err := row.Scan(&ep.ID, &ep.Seed, &startedStr, &finishedStr, &ep.Steps, &outcome); err != nil {
		return Episode{}, err
	}
	ep.StartedAt, _ = time.Parse(time.RFC3339Nano, startedStr)
	if finishedStr.Valid {
		ep.FinishedAt, _ = time.Parse(time.RFC3339Nano, finishedStr.String)
	}
	if outcome.Valid {
		ep.Outcome = Outcome(outcome.String)
	}
	return ep, nil
}
// #endregion scan

// #region vector-encoding
func encodeVector(v []float64) []byte {
	buf := make([]byte, len(v)*8)
	for i, f := range v {
		binary.LittleEndian.PutUint64(buf[i*8:], math.Float64bits(f))
	}
	return buf
}

func decodeVector(b []byte) []float64 {
	v := make([]float64, len(b)/8)
	for i := range v {
		v[i] = math.Float64frombits(binary.LittleEndian.Uint64(b[i*8:]))
	}
	return v
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
// #endregion vector-encoding
