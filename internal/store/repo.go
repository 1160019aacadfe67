package store

import (
	"context"
	"time"
)

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit    int       // max results (0 = unlimited)
	After    int64     // sequence > After
	Before   int64     // sequence < Before
	From     time.Time // timestamp >= From
	To       time.Time // timestamp <= To
	Exercise string    // restrict to one exercise type ("" = all)
}

// ExerciseProgress is the rolled-up progress for one exercise type.
type ExerciseProgress struct {
	TotalSessions   int       `json:"total_sessions"`
	AverageAccuracy float64   `json:"average_accuracy"`
	LastSessionAt   time.Time `json:"last_session_at"`
}

// SnapshotData captures the rolled-up progress state at a point in time.
type SnapshotData struct {
	Version  int                         `json:"version"`
	Progress map[string]ExerciseProgress `json:"progress"` // keyed by exercise type
}

// Snapshot represents a point-in-time capture of progress state.
type Snapshot struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	Data      SnapshotData
}

// SnapshotRepo manages progress snapshots.
type SnapshotRepo interface {
	// Save stores a new snapshot.
	Save(ctx context.Context, snap *Snapshot) error

	// Latest returns the most recent snapshot, or nil if none exist.
	Latest(ctx context.Context) (*Snapshot, error)

	// Prune deletes all but the N most recent snapshots.
	Prune(ctx context.Context, keep int) error
}

// SessionEventData captures one session lifecycle event. The totals are
// meaningful on "end" events only.
type SessionEventData struct {
	SessionID     string
	Action        string // start or end
	Exercise      string
	ItemsTotal    int
	ItemsCorrect  int
	ItemsPartial  int
	ItemsTimedOut int
	CuesUsed      int
	MeanLatencyMs int64
}

// ResponseEventData captures the single scored response for one item.
type ResponseEventData struct {
	SessionID      string
	Exercise       string
	ItemID         string
	ExpectedAnswer string
	Answer         string
	Correct        bool
	Partial        bool
	Score          float64
	CuesUsed       int
	TimedOut       bool
	LatencyMs      int64
}

// CueEventData captures one hint shown while an item was unanswered.
type CueEventData struct {
	SessionID string
	ItemID    string
	Level     int
	CueText   string
}

// SessionSummaryRecord is one completed session as read back from the log.
type SessionSummaryRecord struct {
	SessionID     string
	Exercise      string
	Timestamp     time.Time
	ItemsTotal    int
	ItemsCorrect  int
	ItemsPartial  int
	ItemsTimedOut int
	CuesUsed      int
	MeanLatencyMs int64
}

// EventRepo provides append and query access to domain events.
type EventRepo interface {
	// AppendSessionEvent records a session start or end.
	AppendSessionEvent(ctx context.Context, data SessionEventData) error

	// AppendResponseEvent records the scored response for one item.
	AppendResponseEvent(ctx context.Context, data ResponseEventData) error

	// AppendCueEvent records a cue shown during an item.
	AppendCueEvent(ctx context.Context, data CueEventData) error

	// QuerySessionSummaries returns completed sessions, newest first.
	QuerySessionSummaries(ctx context.Context, opts QueryOpts) ([]SessionSummaryRecord, error)

	// ExerciseStats rolls up the session log per exercise type.
	ExerciseStats(ctx context.Context) (map[string]ExerciseProgress, error)

	// ItemAccuracy returns the lifetime accuracy for one item, or 0 when
	// the item has never been answered.
	ItemAccuracy(ctx context.Context, itemID string) (float64, error)

	// LatestResponseTime returns the timestamp of the most recent response
	// to an item, or the zero time when none exists.
	LatestResponseTime(ctx context.Context, itemID string) (time.Time, error)

	// CurrentSequence returns the last sequence number assigned to any
	// event, 0 when the log is empty.
	CurrentSequence(ctx context.Context) (int64, error)
}
