package store

import (
	"context"
	"testing"
	"time"

	"github.com/fweiner/parrotsoftware-treatment-sub000/internal/exercise"
	"github.com/fweiner/parrotsoftware-treatment-sub000/internal/progress"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func testEventRepo(t *testing.T, s *Store) EventRepo {
	t.Helper()
	repo, err := s.EventRepo()
	if err != nil {
		t.Fatalf("event repo: %v", err)
	}
	return repo
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so we skip journal_mode here. It is tested with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestSequenceMonotonic(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	seq, err := newSequenceCounter(s.DB())
	if err != nil {
		t.Fatalf("new sequence counter: %v", err)
	}

	var last int64
	for i := 0; i < 5; i++ {
		n, err := seq.Next(ctx)
		if err != nil {
			t.Fatalf("next: %v", err)
		}
		if n <= last && i > 0 {
			t.Fatalf("sequence not increasing: %d after %d", n, last)
		}
		last = n
	}

	cur, err := seq.Current(ctx)
	if err != nil {
		t.Fatalf("current: %v", err)
	}
	if cur != last {
		t.Fatalf("current = %d, want %d", cur, last)
	}
}

func TestSessionEventsAndSummaries(t *testing.T) {
	s := openTestStore(t)
	repo := testEventRepo(t, s)
	ctx := context.Background()

	if err := repo.AppendSessionEvent(ctx, SessionEventData{
		SessionID: "s1", Action: "start", Exercise: "word_finding",
	}); err != nil {
		t.Fatalf("append start: %v", err)
	}
	if err := repo.AppendSessionEvent(ctx, SessionEventData{
		SessionID: "s1", Action: "end", Exercise: "word_finding",
		ItemsTotal: 10, ItemsCorrect: 7, ItemsPartial: 2, CuesUsed: 5, MeanLatencyMs: 4200,
	}); err != nil {
		t.Fatalf("append end: %v", err)
	}
	if err := repo.AppendSessionEvent(ctx, SessionEventData{
		SessionID: "s2", Action: "end", Exercise: "life_words",
		ItemsTotal: 5, ItemsCorrect: 5,
	}); err != nil {
		t.Fatalf("append end: %v", err)
	}

	all, err := repo.QuerySessionSummaries(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("query summaries: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("got %d summaries, want 2 (start events excluded)", len(all))
	}
	// Newest first.
	if all[0].SessionID != "s2" {
		t.Errorf("expected s2 first, got %s", all[0].SessionID)
	}

	wf, err := repo.QuerySessionSummaries(ctx, QueryOpts{Exercise: "word_finding"})
	if err != nil {
		t.Fatalf("query filtered: %v", err)
	}
	if len(wf) != 1 || wf[0].ItemsCorrect != 7 {
		t.Fatalf("unexpected word_finding summary: %+v", wf)
	}
}

func TestExerciseStats(t *testing.T) {
	s := openTestStore(t)
	repo := testEventRepo(t, s)
	ctx := context.Background()

	for _, e := range []SessionEventData{
		{SessionID: "a", Action: "end", Exercise: "word_finding", ItemsTotal: 10, ItemsCorrect: 6},
		{SessionID: "b", Action: "end", Exercise: "word_finding", ItemsTotal: 10, ItemsCorrect: 8},
		{SessionID: "c", Action: "end", Exercise: "personal_facts", ItemsTotal: 4, ItemsCorrect: 4},
		{SessionID: "d", Action: "start", Exercise: "list_recall"},
	} {
		if err := repo.AppendSessionEvent(ctx, e); err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	stats, err := repo.ExerciseStats(ctx)
	if err != nil {
		t.Fatalf("exercise stats: %v", err)
	}

	wf := stats["word_finding"]
	if wf.TotalSessions != 2 {
		t.Errorf("word_finding sessions = %d, want 2", wf.TotalSessions)
	}
	if wf.AverageAccuracy != 0.7 {
		t.Errorf("word_finding accuracy = %v, want 0.7", wf.AverageAccuracy)
	}
	if wf.LastSessionAt.IsZero() {
		t.Error("expected last session time to be set")
	}
	if _, ok := stats["list_recall"]; ok {
		t.Error("start-only exercise should not appear in stats")
	}
}

func TestResponseEvents(t *testing.T) {
	s := openTestStore(t)
	repo := testEventRepo(t, s)
	ctx := context.Background()

	for _, d := range []ResponseEventData{
		{SessionID: "s1", Exercise: "word_finding", ItemID: "wf:kettle", ExpectedAnswer: "kettle", Answer: "kettle", Correct: true, Score: 1},
		{SessionID: "s1", Exercise: "word_finding", ItemID: "wf:kettle", ExpectedAnswer: "kettle", Answer: "pot", TimedOut: false},
	} {
		if err := repo.AppendResponseEvent(ctx, d); err != nil {
			t.Fatalf("append response: %v", err)
		}
	}

	acc, err := repo.ItemAccuracy(ctx, "wf:kettle")
	if err != nil {
		t.Fatalf("item accuracy: %v", err)
	}
	if acc != 0.5 {
		t.Errorf("accuracy = %v, want 0.5", acc)
	}

	acc, err = repo.ItemAccuracy(ctx, "wf:never-seen")
	if err != nil {
		t.Fatalf("item accuracy: %v", err)
	}
	if acc != 0 {
		t.Errorf("unseen item accuracy = %v, want 0", acc)
	}

	ts, err := repo.LatestResponseTime(ctx, "wf:kettle")
	if err != nil {
		t.Fatalf("latest response time: %v", err)
	}
	if ts.IsZero() {
		t.Error("expected non-zero latest response time")
	}
}

func TestSnapshotSaveLatestPrune(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	snap, err := repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest on empty store: %v", err)
	}
	if snap != nil {
		t.Fatal("expected nil snapshot on empty store")
	}

	base := time.Now().Add(-time.Hour)
	for i := 0; i < 4; i++ {
		err := repo.Save(ctx, &Snapshot{
			Sequence:  int64(i + 1),
			Timestamp: base.Add(time.Duration(i) * time.Minute),
			Data: SnapshotData{
				Version: snapshotVersion,
				Progress: map[string]ExerciseProgress{
					"word_finding": {TotalSessions: i + 1, AverageAccuracy: 0.5},
				},
			},
		})
		if err != nil {
			t.Fatalf("save snapshot %d: %v", i, err)
		}
	}

	latest, err := repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if latest == nil || latest.Sequence != 4 {
		t.Fatalf("unexpected latest snapshot: %+v", latest)
	}
	if latest.Data.Progress["word_finding"].TotalSessions != 4 {
		t.Errorf("progress round-trip lost data: %+v", latest.Data)
	}

	if err := repo.Prune(ctx, 2); err != nil {
		t.Fatalf("prune: %v", err)
	}
	count, err := s.Client().Snapshot.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count snapshots: %v", err)
	}
	if count != 2 {
		t.Errorf("after prune: %d snapshots, want 2", count)
	}
}

func TestEventRecorderRoundTrip(t *testing.T) {
	s := openTestStore(t)
	repo := testEventRepo(t, s)
	ctx := context.Background()

	items := []exercise.Item{
		{ID: "wf:kettle", ExpectedAnswer: "kettle"},
		{ID: "wf:wallet", ExpectedAnswer: "wallet"},
	}
	rec := NewEventRecorder(repo, s.SnapshotRepo(), exercise.WordFinding, items)

	if err := rec.SessionStarted("sess-1", exercise.WordFinding, len(items)); err != nil {
		t.Fatalf("session started: %v", err)
	}
	if err := rec.CueShown("sess-1", "wf:kettle", 1, "It's something you'd find in the kitchen."); err != nil {
		t.Fatalf("cue shown: %v", err)
	}
	if err := rec.ResponseRecorded("sess-1", progress.Response{
		ItemID: "wf:kettle", Answer: "kettle", Correct: true, Score: 1, CuesUsed: 1, Latency: 3 * time.Second,
	}); err != nil {
		t.Fatalf("response recorded: %v", err)
	}

	summary := progress.Summary{
		SessionID:   "sess-1",
		Exercise:    exercise.WordFinding,
		CompletedAt: time.Now(),
		Totals:      progress.Totals{Items: 1, Correct: 1, CuesUsed: 1, MeanLatency: 3 * time.Second},
	}
	if err := rec.SessionCompleted(summary); err != nil {
		t.Fatalf("session completed: %v", err)
	}

	// End event persisted with the expected answer carried on the response.
	resp, err := s.Client().ResponseEvent.Query().Only(ctx)
	if err != nil {
		t.Fatalf("query response event: %v", err)
	}
	if resp.ExpectedAnswer != "kettle" || resp.LatencyMs != 3000 {
		t.Errorf("unexpected response event: %+v", resp)
	}

	// Completion refreshed the rollup snapshot.
	snap, err := s.SnapshotRepo().Latest(ctx)
	if err != nil {
		t.Fatalf("latest snapshot: %v", err)
	}
	if snap == nil {
		t.Fatal("expected snapshot after completion")
	}
	if snap.Data.Progress["word_finding"].TotalSessions != 1 {
		t.Errorf("rollup missing session: %+v", snap.Data)
	}
}
