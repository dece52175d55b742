package store

import (
	"context"
	"time"
)

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit      int       // max results (0 = unlimited)
	After      int64     // sequence > After
	Before     int64     // sequence < Before
	From       time.Time // timestamp >= From
	To         time.Time // timestamp <= To
	Difficulty string    // filter by difficulty (empty = all)
}

const (
	// SnapshotVersion is the current snapshot data format version.
	SnapshotVersion = 1

	// SnapshotKeep is how many snapshots Prune retains by default.
	SnapshotKeep = 10
)

// Attempt outcomes as persisted in attempt events.
const (
	OutcomeSuccess = "success"
	OutcomeMiss    = "miss"
	OutcomeTimeout = "timeout"
	OutcomeAbort   = "abort"
)

// AttemptEventData captures one resolved confirmation session.
type AttemptEventData struct {
	SessionID   string
	Difficulty  string
	Outcome     string
	Progress    float64
	ZoneStart   float64
	ZoneEnd     float64
	TimeLimitMs int
	ElapsedMs   int
}

// AttemptRecord is an attempt event read back from the store.
type AttemptRecord struct {
	Sequence  int64
	Timestamp time.Time
	AttemptEventData
}

// DifficultyStats aggregates attempts for one difficulty.
type DifficultyStats struct {
	Difficulty string
	Attempts   int
	Successes  int
}

// SuccessRate returns successes over attempts, or 0 when empty.
func (s DifficultyStats) SuccessRate() float64 {
	if s.Attempts == 0 {
		return 0
	}
	return float64(s.Successes) / float64(s.Attempts)
}

// EventRepo provides append and query access to attempt events.
type EventRepo interface {
	// AppendAttempt records a resolved session.
	AppendAttempt(ctx context.Context, data AttemptEventData) error

	// QueryAttempts returns attempts matching opts, newest first.
	QueryAttempts(ctx context.Context, opts QueryOpts) ([]AttemptRecord, error)

	// Stats aggregates attempt counts per difficulty.
	Stats(ctx context.Context) ([]DifficultyStats, error)

	// PurgeAttempts deletes all recorded attempts and returns the count.
	PurgeAttempts(ctx context.Context) (int, error)
}

// Preferences are the widget settings carried across runs.
type Preferences struct {
	Difficulty   string `json:"difficulty"`
	TimeLimitMs  int    `json:"time_limit_ms"`
	ResetDelayMs int    `json:"reset_delay_ms"`
}

// SnapshotData captures preferences and running totals at a point in time.
type SnapshotData struct {
	Version       int          `json:"version"`
	Prefs         *Preferences `json:"prefs,omitempty"`
	TotalConfirms int          `json:"total_confirms"`
}

// Snapshot represents a point-in-time capture of user state.
type Snapshot struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	Data      SnapshotData
}

// SnapshotRepo manages user state snapshots.
type SnapshotRepo interface {
	// Save stores a new snapshot.
	Save(ctx context.Context, snap *Snapshot) error

	// Latest returns the most recent snapshot, or nil if none exist.
	Latest(ctx context.Context) (*Snapshot, error)

	// Prune deletes all but the N most recent snapshots.
	Prune(ctx context.Context, keep int) error
}
