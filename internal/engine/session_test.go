package engine

import (
	"testing"
	"time"

	"github.com/fweiner/parrotsoftware-treatment-sub000/internal/evaluate"
	"github.com/fweiner/parrotsoftware-treatment-sub000/internal/exercise"
	"github.com/fweiner/parrotsoftware-treatment-sub000/internal/progress"
)

type event struct {
	kind    string // present, cue, reveal, finalized, completed
	level   int
	text    string
	resp    progress.Response
	summary progress.Summary
}

// chanListener funnels emissions into a channel so tests can sequence on
// them instead of sleeping.
type chanListener struct {
	ch chan event
}

func newChanListener() *chanListener {
	return &chanListener{ch: make(chan event, 64)}
}

func (l *chanListener) ItemPresented(item exercise.Item, index, total int) {
	l.ch <- event{kind: "present"}
}
func (l *chanListener) CueIssued(item exercise.Item, level int, text string) {
	l.ch <- event{kind: "cue", level: level, text: text}
}
func (l *chanListener) ItemRevealed(item exercise.Item, text string, result evaluate.Result) {
	l.ch <- event{kind: "reveal", text: text}
}
func (l *chanListener) ItemFinalized(resp progress.Response) {
	l.ch <- event{kind: "finalized", resp: resp}
}
func (l *chanListener) SessionCompleted(summary progress.Summary) {
	l.ch <- event{kind: "completed", summary: summary}
}

// next waits for the next emission of the wanted kind, failing the test on
// anything unexpected in between except presents and reveals.
func next(t *testing.T, l *chanListener, kind string) event {
	t.Helper()
	deadline := time.After(3 * time.Second)
	for {
		select {
		case ev := <-l.ch:
			if ev.kind == kind {
				return ev
			}
		case <-deadline:
			t.Fatalf("timed out waiting for %q emission", kind)
		}
	}
}

func fastConfig(t exercise.Type, ladderLen int) exercise.Config {
	return exercise.Config{
		Type:         t,
		LadderLen:    ladderLen,
		AnswerWindow: 40 * time.Millisecond,
		RevealDelay:  5 * time.Millisecond,
		TimerPolicy:  exercise.TimerImmediate,
	}
}

func noTimerConfig(t exercise.Type, ladderLen int) exercise.Config {
	cfg := fastConfig(t, ladderLen)
	cfg.TimerPolicy = exercise.TimerNone
	return cfg
}

func testItems(n int) []exercise.Item {
	names := []string{"Scissors", "Wallet", "Umbrella", "Kettle"}
	items := make([]exercise.Item, n)
	for i := range items {
		items[i] = exercise.Item{ID: names[i], ExpectedAnswer: names[i]}
	}
	return items
}

func TestConstructorValidation(t *testing.T) {
	cfg := fastConfig(exercise.WordFinding, 3)

	if _, err := NewSession(cfg, nil, Options{}); err != ErrNoItems {
		t.Errorf("empty items: err = %v, want ErrNoItems", err)
	}

	bad := []exercise.Item{{ID: "x"}}
	if _, err := NewSession(cfg, bad, Options{}); err != ErrInvalidItem {
		t.Errorf("empty expected answer: err = %v, want ErrInvalidItem", err)
	}
}

func TestCorrectAnswerFlow(t *testing.T) {
	l := newChanListener()
	s, err := NewSession(noTimerConfig(exercise.WordFinding, 3), testItems(2), Options{
		SessionID: "s-1",
		Listener:  l,
	})
	if err != nil {
		t.Fatal(err)
	}
	if err := s.Start(); err != nil {
		t.Fatal(err)
	}
	next(t, l, "present")

	if err := s.Submit("scissors"); err != nil {
		t.Fatal(err)
	}
	fin := next(t, l, "finalized")
	if !fin.resp.Correct || fin.resp.Score != 1.0 || fin.resp.CuesUsed != 0 || fin.resp.TimedOut {
		t.Errorf("response = %+v", fin.resp)
	}

	next(t, l, "present") // second item after the reveal delay
	if err := s.Submit("wallet"); err != nil {
		t.Fatal(err)
	}
	next(t, l, "finalized")

	done := next(t, l, "completed")
	if done.summary.Totals.Items != 2 || done.summary.Totals.Correct != 2 {
		t.Errorf("summary totals = %+v", done.summary.Totals)
	}
	if s.Phase() != PhaseCompleted {
		t.Errorf("phase = %v, want PhaseCompleted", s.Phase())
	}
}

func TestWrongAnswersClimbLadderThenReveal(t *testing.T) {
	l := newChanListener()
	s, err := NewSession(noTimerConfig(exercise.WordFinding, 3), testItems(1), Options{Listener: l})
	if err != nil {
		t.Fatal(err)
	}
	if err := s.Start(); err != nil {
		t.Fatal(err)
	}
	next(t, l, "present")

	// Ladder length 3: wrong answers raise cue level 1, 2, then exhaust.
	if err := s.Submit("xylophone"); err != nil {
		t.Fatal(err)
	}
	if ev := next(t, l, "cue"); ev.level != 1 {
		t.Errorf("first cue level = %d, want 1", ev.level)
	}
	if err := s.Submit("kazoo"); err != nil {
		t.Fatal(err)
	}
	if ev := next(t, l, "cue"); ev.level != 2 {
		t.Errorf("second cue level = %d, want 2", ev.level)
	}
	if err := s.Submit("trombone"); err != nil {
		t.Fatal(err)
	}

	rev := next(t, l, "reveal")
	if rev.text == "" {
		t.Error("reveal text empty")
	}
	fin := next(t, l, "finalized")
	if fin.resp.Correct || fin.resp.TimedOut {
		t.Errorf("response = %+v, want incorrect, not timed out", fin.resp)
	}
	if fin.resp.CuesUsed != 2 {
		t.Errorf("cues used = %d, want 2 (reveal is not a cue)", fin.resp.CuesUsed)
	}
	if fin.resp.Answer != "trombone" {
		t.Errorf("final answer = %q", fin.resp.Answer)
	}

	next(t, l, "completed")
}

func TestTimeoutEscalatesThenFlagsResponse(t *testing.T) {
	l := newChanListener()
	s, err := NewSession(fastConfig(exercise.WordFinding, 2), testItems(1), Options{Listener: l})
	if err != nil {
		t.Fatal(err)
	}
	if err := s.Start(); err != nil {
		t.Fatal(err)
	}
	next(t, l, "present")

	// First timeout: cue level 0 -> 1, no Response yet.
	if ev := next(t, l, "cue"); ev.level != 1 {
		t.Errorf("cue level = %d, want 1", ev.level)
	}
	if s.Phase() == PhaseCompleted {
		t.Fatal("session completed before ladder exhausted")
	}

	// Second timeout exhausts the two-level ladder: reveal + timed-out Response.
	fin := next(t, l, "finalized")
	if fin.resp.Correct || !fin.resp.TimedOut {
		t.Errorf("response = %+v, want incorrect timed-out", fin.resp)
	}
	if fin.resp.Answer != "" {
		t.Errorf("answer = %q, want empty for timeout", fin.resp.Answer)
	}

	next(t, l, "completed")
}

func TestAnswerAfterCueStillAccepted(t *testing.T) {
	l := newChanListener()
	s, err := NewSession(noTimerConfig(exercise.WordFinding, 5), testItems(1), Options{Listener: l})
	if err != nil {
		t.Fatal(err)
	}
	if err := s.Start(); err != nil {
		t.Fatal(err)
	}
	next(t, l, "present")

	if err := s.Submit("spoon"); err != nil {
		t.Fatal(err)
	}
	next(t, l, "cue")

	if err := s.Submit("scissors"); err != nil {
		t.Fatal(err)
	}
	fin := next(t, l, "finalized")
	if !fin.resp.Correct || fin.resp.CuesUsed != 1 {
		t.Errorf("response = %+v, want correct with 1 cue used", fin.resp)
	}
}

func TestSubmitOutsideAnswerWindowIgnored(t *testing.T) {
	l := newChanListener()
	s, err := NewSession(noTimerConfig(exercise.WordFinding, 2), testItems(2), Options{Listener: l})
	if err != nil {
		t.Fatal(err)
	}

	if err := s.Submit("early"); err != ErrNotStarted {
		t.Errorf("submit before start: err = %v, want ErrNotStarted", err)
	}

	if err := s.Start(); err != nil {
		t.Fatal(err)
	}
	next(t, l, "present")

	if err := s.Submit("scissors"); err != nil {
		t.Fatal(err)
	}
	next(t, l, "reveal")

	// During the reveal the answer window is closed; a duplicate transcript
	// is dropped without producing a second Response.
	if err := s.Submit("scissors"); err != nil {
		t.Errorf("submit during reveal: err = %v, want nil (ignored)", err)
	}

	next(t, l, "present")
	if totals := s.Totals(); totals.Items != 1 {
		t.Errorf("responses after duplicate submit = %d, want 1", totals.Items)
	}
}

func TestEndDropsInFlightItem(t *testing.T) {
	l := newChanListener()
	s, err := NewSession(noTimerConfig(exercise.LifeWords, 4), testItems(3), Options{Listener: l})
	if err != nil {
		t.Fatal(err)
	}
	if err := s.Start(); err != nil {
		t.Fatal(err)
	}
	next(t, l, "present")

	if err := s.Submit("scissors"); err != nil {
		t.Fatal(err)
	}
	next(t, l, "finalized")
	next(t, l, "present") // item 2 in flight

	s.End()
	done := next(t, l, "completed")
	if done.summary.Totals.Items != 1 {
		t.Errorf("items in summary = %d, want 1 (in-flight item dropped)", done.summary.Totals.Items)
	}

	// Terminal: no further events accepted.
	if err := s.Submit("wallet"); err != ErrCompleted {
		t.Errorf("submit after end: err = %v, want ErrCompleted", err)
	}
	s.End() // idempotent

	if _, ok := s.Summary(); !ok {
		t.Error("summary unavailable after completion")
	}
}

func TestEmptyTranscriptIsIncorrectNotError(t *testing.T) {
	l := newChanListener()
	s, err := NewSession(noTimerConfig(exercise.WordFinding, 2), testItems(1), Options{Listener: l})
	if err != nil {
		t.Fatal(err)
	}
	if err := s.Start(); err != nil {
		t.Fatal(err)
	}
	next(t, l, "present")

	if err := s.Submit("   "); err != nil {
		t.Fatalf("whitespace transcript: err = %v", err)
	}
	if ev := next(t, l, "cue"); ev.level != 1 {
		t.Errorf("cue level = %d, want 1", ev.level)
	}
}

func TestPresentationGatesTimer(t *testing.T) {
	cfg := exercise.Config{
		Type:         exercise.ListRecall,
		LadderLen:    2,
		AnswerWindow: 30 * time.Millisecond,
		RevealDelay:  5 * time.Millisecond,
		TimerPolicy:  exercise.TimerAfterPresentation,
		TeachFirst:   true,
	}
	l := newChanListener()
	s, err := NewSession(cfg, testItems(1), Options{Listener: l})
	if err != nil {
		t.Fatal(err)
	}
	if err := s.Start(); err != nil {
		t.Fatal(err)
	}
	next(t, l, "present")

	// While presentation is running the countdown must not fire.
	time.Sleep(60 * time.Millisecond)
	if got := s.Phase(); got != PhasePresenting {
		t.Fatalf("phase during presentation = %v, want PhasePresenting", got)
	}

	s.PresentationFinished()
	s.PresentationFinished() // duplicate completion signals are fine

	// Now the countdown runs: expect a timeout-driven cue.
	if ev := next(t, l, "cue"); ev.level != 1 {
		t.Errorf("cue level = %d, want 1", ev.level)
	}
}

func TestAccommodationsFlowThroughEngine(t *testing.T) {
	strict := evaluate.Strict()
	l := newChanListener()
	items := []exercise.Item{{ID: "father", ExpectedAnswer: "father", Alternatives: []string{"dad"}}}
	s, err := NewSession(noTimerConfig(exercise.PersonQuestions, 2), items, Options{
		Listener: l,
		Settings: &strict,
	})
	if err != nil {
		t.Fatal(err)
	}
	if err := s.Start(); err != nil {
		t.Fatal(err)
	}
	next(t, l, "present")

	// Strict settings: the listed alternative does not count.
	if err := s.Submit("dad"); err != nil {
		t.Fatal(err)
	}
	if ev := next(t, l, "cue"); ev.level != 1 {
		t.Errorf("cue level = %d, want 1", ev.level)
	}
}

func TestDoubleStart(t *testing.T) {
	s, err := NewSession(noTimerConfig(exercise.WordFinding, 2), testItems(1), Options{})
	if err != nil {
		t.Fatal(err)
	}
	if err := s.Start(); err != nil {
		t.Fatal(err)
	}
	if err := s.Start(); err != ErrAlreadyStarted {
		t.Errorf("second start: err = %v, want ErrAlreadyStarted", err)
	}
}
