// Package progress accumulates finalized item Responses into session totals
// and produces the immutable completion snapshot used for reporting.
package progress

import (
	"time"

	"github.com/fweiner/parrotsoftware-treatment-sub000/internal/exercise"
)

// Response is the finalized, immutable outcome record for one item.
// Created exactly once per processed item and never mutated afterward.
type Response struct {
	ItemID   string
	Answer   string // final transcript; empty when the item timed out with no speech
	Correct  bool
	Partial  bool
	Score    float64
	CuesUsed int  // pre-reveal cues shown; the reveal itself is not a cue
	TimedOut bool // the finalizing event was a timeout
	Latency  time.Duration
}

// Totals are the running counters exposed while a session is live.
type Totals struct {
	Items       int
	Correct     int
	Partial     int
	TimedOut    int
	CuesUsed    int
	MeanLatency time.Duration
}

// Accuracy is correct answers over items processed, 0 for an empty session.
func (t Totals) Accuracy() float64 {
	if t.Items == 0 {
		return 0
	}
	return float64(t.Correct) / float64(t.Items)
}

// Summary is the completion snapshot. It is the only object handed to
// reporting collaborators; the live aggregator is never exposed.
type Summary struct {
	SessionID   string
	Exercise    exercise.Type
	StartedAt   time.Time
	CompletedAt time.Time
	Totals      Totals
	Responses   []Response
}

// Aggregator consumes Responses in item order. It is owned by exactly one
// session and accessed from its goroutine only.
type Aggregator struct {
	sessionID    string
	exerciseType exercise.Type
	startedAt    time.Time
	responses    []Response
	totalLatency time.Duration
}

// NewAggregator creates an aggregator for one session.
func NewAggregator(sessionID string, t exercise.Type, startedAt time.Time) *Aggregator {
	return &Aggregator{
		sessionID:    sessionID,
		exerciseType: t,
		startedAt:    startedAt,
	}
}

// Record appends a finalized Response.
func (a *Aggregator) Record(r Response) {
	a.responses = append(a.responses, r)
	a.totalLatency += r.Latency
}

// Totals returns the running counters for the responses recorded so far.
func (a *Aggregator) Totals() Totals {
	t := Totals{Items: len(a.responses)}
	for _, r := range a.responses {
		if r.Correct {
			t.Correct++
		}
		if r.Partial {
			t.Partial++
		}
		if r.TimedOut {
			t.TimedOut++
		}
		t.CuesUsed += r.CuesUsed
	}
	if t.Items > 0 {
		t.MeanLatency = a.totalLatency / time.Duration(t.Items)
	}
	return t
}

// Complete produces the immutable completion snapshot. The response list is
// copied so later aggregator use cannot alias into the snapshot.
func (a *Aggregator) Complete(at time.Time) Summary {
	responses := make([]Response, len(a.responses))
	copy(responses, a.responses)
	return Summary{
		SessionID:   a.sessionID,
		Exercise:    a.exerciseType,
		StartedAt:   a.startedAt,
		CompletedAt: at,
		Totals:      a.Totals(),
		Responses:   responses,
	}
}
