package progress

import (
	"testing"
	"time"

	"github.com/fweiner/parrotsoftware-treatment-sub000/internal/exercise"
)

func TestRunningTotals(t *testing.T) {
	start := time.Date(2026, 3, 4, 10, 0, 0, 0, time.UTC)
	agg := NewAggregator("s-1", exercise.LifeWords, start)

	agg.Record(Response{ItemID: "a", Correct: true, Score: 1.0, Latency: 2 * time.Second})
	agg.Record(Response{ItemID: "b", Correct: true, Partial: true, Score: 0.8, CuesUsed: 2, Latency: 6 * time.Second})
	agg.Record(Response{ItemID: "c", TimedOut: true, CuesUsed: 7, Latency: 4 * time.Second})

	totals := agg.Totals()
	if totals.Items != 3 || totals.Correct != 2 || totals.Partial != 1 || totals.TimedOut != 1 {
		t.Errorf("totals = %+v", totals)
	}
	if totals.CuesUsed != 9 {
		t.Errorf("cues used = %d, want 9", totals.CuesUsed)
	}
	if totals.MeanLatency != 4*time.Second {
		t.Errorf("mean latency = %v, want 4s", totals.MeanLatency)
	}
	if acc := totals.Accuracy(); acc < 0.66 || acc > 0.67 {
		t.Errorf("accuracy = %v, want 2/3", acc)
	}
}

func TestEmptyAggregator(t *testing.T) {
	agg := NewAggregator("s-2", exercise.WordFinding, time.Now())
	totals := agg.Totals()
	if totals.Items != 0 || totals.Accuracy() != 0 || totals.MeanLatency != 0 {
		t.Errorf("empty totals = %+v", totals)
	}
}

func TestCompleteSnapshotIsDetached(t *testing.T) {
	start := time.Now()
	agg := NewAggregator("s-3", exercise.ListRecall, start)
	agg.Record(Response{ItemID: "a", Correct: true})

	done := start.Add(90 * time.Second)
	summary := agg.Complete(done)

	// Recording after the snapshot must not leak into it.
	agg.Record(Response{ItemID: "b"})

	if len(summary.Responses) != 1 {
		t.Fatalf("snapshot responses = %d, want 1", len(summary.Responses))
	}
	if summary.Totals.Items != 1 {
		t.Errorf("snapshot items = %d, want 1", summary.Totals.Items)
	}
	if !summary.CompletedAt.Equal(done) || !summary.StartedAt.Equal(start) {
		t.Errorf("timestamps = %v / %v", summary.StartedAt, summary.CompletedAt)
	}
	if summary.SessionID != "s-3" || summary.Exercise != exercise.ListRecall {
		t.Errorf("identity = %s / %s", summary.SessionID, summary.Exercise)
	}
}
