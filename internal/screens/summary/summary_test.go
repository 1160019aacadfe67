package summary

import (
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/fweiner/parrotsoftware-treatment-sub000/internal/exercise"
	"github.com/fweiner/parrotsoftware-treatment-sub000/internal/progress"
)

func testSummary() progress.Summary {
	start := time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)
	return progress.Summary{
		SessionID:   "test-session",
		Exercise:    exercise.WordFinding,
		StartedAt:   start,
		CompletedAt: start.Add(4 * time.Minute),
		Totals: progress.Totals{
			Items:       3,
			Correct:     2,
			Partial:     1,
			TimedOut:    1,
			CuesUsed:    2,
			MeanLatency: 5 * time.Second,
		},
		Responses: []progress.Response{
			{ItemID: "wf:kettle", Answer: "kettle", Correct: true, Score: 1},
			{ItemID: "wf:wallet", Answer: "walet", Correct: true, Partial: true, Score: 0.8, CuesUsed: 1},
			{ItemID: "wf:comb", Answer: "", TimedOut: true, CuesUsed: 1},
		},
	}
}

func testItems() map[string]exercise.Item {
	return map[string]exercise.Item{
		"wf:kettle": {ID: "wf:kettle", ExpectedAnswer: "kettle"},
		"wf:wallet": {ID: "wf:wallet", ExpectedAnswer: "wallet"},
		"wf:comb":   {ID: "wf:comb", ExpectedAnswer: "comb"},
	}
}

func TestSummaryScreen_Title(t *testing.T) {
	s := New(testSummary(), testItems())
	if s.Title() != "Word Finding Summary" {
		t.Errorf("Title = %q, want %q", s.Title(), "Word Finding Summary")
	}
}

func TestSummaryScreen_Display(t *testing.T) {
	s := New(testSummary(), testItems())
	view := s.View(80, 24)
	if view == "" {
		t.Fatal("expected non-empty summary view")
	}
	for _, want := range []string{"Items: 3", "Recalled: 2", "kettle", "wallet", "comb"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestSummaryScreen_ShowsMistakenAnswer(t *testing.T) {
	sum := testSummary()
	sum.Responses = []progress.Response{
		{ItemID: "wf:comb", Answer: "brush", Correct: false},
	}
	s := New(sum, testItems())
	view := s.View(80, 24)
	if !strings.Contains(view, `you said "brush"`) {
		t.Errorf("expected wrong answer shown, got:\n%s", view)
	}
}

func TestSummaryScreen_Navigation_Enter(t *testing.T) {
	s := New(testSummary(), testItems())
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Error("expected a command on Enter (pop)")
	}
}

func TestSummaryScreen_Navigation_Esc(t *testing.T) {
	s := New(testSummary(), testItems())
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if cmd == nil {
		t.Error("expected a command on Esc (pop)")
	}
}
