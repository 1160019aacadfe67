package store

import (
	"context"
	"fmt"
	"time"

	"github.com/fweiner/parrotsoftware-treatment-sub000/internal/exercise"
	"github.com/fweiner/parrotsoftware-treatment-sub000/internal/progress"
)

// snapshotKeep is how many progress snapshots survive pruning.
const snapshotKeep = 10

// snapshotVersion is the SnapshotData schema version written by this build.
const snapshotVersion = 1

// EventRecorder adapts the event log to the engine's Recorder interface.
// One recorder serves one session; the item list pins the expected answers
// so response events are self-contained in the log.
type EventRecorder struct {
	repo     EventRepo
	snaps    SnapshotRepo
	exercise exercise.Type
	expected map[string]string
}

// NewEventRecorder builds a recorder for one upcoming session.
func NewEventRecorder(repo EventRepo, snaps SnapshotRepo, t exercise.Type, items []exercise.Item) *EventRecorder {
	expected := make(map[string]string, len(items))
	for _, it := range items {
		expected[it.ID] = it.ExpectedAnswer
	}
	return &EventRecorder{repo: repo, snaps: snaps, exercise: t, expected: expected}
}

func (r *EventRecorder) SessionStarted(sessionID string, t exercise.Type, itemCount int) error {
	return r.repo.AppendSessionEvent(context.Background(), SessionEventData{
		SessionID: sessionID,
		Action:    "start",
		Exercise:  string(t),
	})
}

func (r *EventRecorder) CueShown(sessionID, itemID string, level int, text string) error {
	return r.repo.AppendCueEvent(context.Background(), CueEventData{
		SessionID: sessionID,
		ItemID:    itemID,
		Level:     level,
		CueText:   text,
	})
}

func (r *EventRecorder) ResponseRecorded(sessionID string, resp progress.Response) error {
	return r.repo.AppendResponseEvent(context.Background(), ResponseEventData{
		SessionID:      sessionID,
		Exercise:       string(r.exercise),
		ItemID:         resp.ItemID,
		ExpectedAnswer: r.expected[resp.ItemID],
		Answer:         resp.Answer,
		Correct:        resp.Correct,
		Partial:        resp.Partial,
		Score:          resp.Score,
		CuesUsed:       resp.CuesUsed,
		TimedOut:       resp.TimedOut,
		LatencyMs:      resp.Latency.Milliseconds(),
	})
}

func (r *EventRecorder) SessionCompleted(summary progress.Summary) error {
	ctx := context.Background()
	err := r.repo.AppendSessionEvent(ctx, SessionEventData{
		SessionID:     summary.SessionID,
		Action:        "end",
		Exercise:      string(summary.Exercise),
		ItemsTotal:    summary.Totals.Items,
		ItemsCorrect:  summary.Totals.Correct,
		ItemsPartial:  summary.Totals.Partial,
		ItemsTimedOut: summary.Totals.TimedOut,
		CuesUsed:      summary.Totals.CuesUsed,
		MeanLatencyMs: summary.Totals.MeanLatency.Milliseconds(),
	})
	if err != nil {
		return err
	}
	return r.refreshSnapshot(ctx)
}

// refreshSnapshot rolls up the session log and saves a fresh snapshot so
// the stats view never has to replay events.
func (r *EventRecorder) refreshSnapshot(ctx context.Context) error {
	stats, err := r.repo.ExerciseStats(ctx)
	if err != nil {
		return err
	}
	seq, err := r.repo.CurrentSequence(ctx)
	if err != nil {
		return err
	}
	snap := &Snapshot{
		Sequence:  seq,
		Timestamp: time.Now().UTC(),
		Data: SnapshotData{
			Version:  snapshotVersion,
			Progress: stats,
		},
	}
	if err := r.snaps.Save(ctx, snap); err != nil {
		return fmt.Errorf("refresh snapshot: %w", err)
	}
	return r.snaps.Prune(ctx, snapshotKeep)
}
