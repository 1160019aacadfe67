// Package engine runs one adaptive recall session: a per-item state machine
// that presents stimuli, waits for transcripts, escalates the cue ladder on
// failure and finalizes exactly one Response per processed item. All five
// exercise types run through this one machine; everything that varies
// between them is carried by exercise.Config.
package engine

import (
	"errors"
	"sync"
	"time"

	"github.com/fweiner/parrotsoftware-treatment-sub000/internal/cue"
	"github.com/fweiner/parrotsoftware-treatment-sub000/internal/evaluate"
	"github.com/fweiner/parrotsoftware-treatment-sub000/internal/exercise"
	"github.com/fweiner/parrotsoftware-treatment-sub000/internal/progress"
)

// Phase is the session's observable state.
type Phase int

const (
	PhaseIdle           Phase = iota // created, not started
	PhasePresenting                  // payload being rendered/spoken
	PhaseAwaitingAnswer              // answer window open (covers cue playback)
	PhaseRevealing                   // verdict shown, auto-advance pending
	PhaseCompleted                   // terminal
)

// Caller-contract violations. These indicate programming errors in the
// caller, not user or runtime conditions.
var (
	ErrNoItems        = errors.New("engine: session requires at least one item")
	ErrInvalidItem    = errors.New("engine: item has an empty expected answer")
	ErrNotStarted     = errors.New("engine: session not started")
	ErrAlreadyStarted = errors.New("engine: session already started")
	ErrCompleted      = errors.New("engine: session already completed")
)

// ItemState is the live state of the in-flight item. Snapshots of it are
// handed out by value; the engine owns the only mutable copy.
type ItemState struct {
	Index     int
	Item      exercise.Item
	CueLevel  int // 0 = no cue shown yet
	Attempts  int
	StartedAt time.Time
}

// Session drives an ordered, pre-shuffled item list through the recall
// state machine. One Session is owned by one caller; its methods are safe
// against the only real hazard, the timer goroutine racing a submission.
type Session struct {
	cfg      exercise.Config
	ladder   cue.Ladder
	settings evaluate.Settings
	items    []exercise.Item

	listener Listener
	recorder Recorder

	mu         sync.Mutex
	id         string
	phase      Phase
	idx        int
	cur        ItemState
	processing bool // in-flight answer latch: set for evaluate + persist
	agg        *progress.Aggregator
	summary    *progress.Summary

	timer   countdown // answer window
	advance countdown // reveal delay before next item
}

// Options carries the session collaborators. Nil fields get no-ops.
type Options struct {
	SessionID string
	Listener  Listener
	Recorder  Recorder
	Settings  *evaluate.Settings // nil = DefaultSettings
}

// NewSession validates the item list and builds an unstarted session.
func NewSession(cfg exercise.Config, items []exercise.Item, opts Options) (*Session, error) {
	if len(items) == 0 {
		return nil, ErrNoItems
	}
	for _, it := range items {
		if !it.Valid() {
			return nil, ErrInvalidItem
		}
	}

	settings := evaluate.DefaultSettings()
	if opts.Settings != nil {
		settings = *opts.Settings
	}
	listener := opts.Listener
	if listener == nil {
		listener = NopListener{}
	}
	recorder := opts.Recorder
	if recorder == nil {
		recorder = NopRecorder{}
	}

	return &Session{
		cfg:      cfg,
		ladder:   cue.NewLadder(cfg),
		settings: settings,
		items:    items,
		listener: listener,
		recorder: recorder,
		id:       opts.SessionID,
		phase:    PhaseIdle,
	}, nil
}

// Start presents the first item and opens the session.
func (s *Session) Start() error {
	s.mu.Lock()
	if s.phase != PhaseIdle {
		s.mu.Unlock()
		return ErrAlreadyStarted
	}
	s.agg = progress.NewAggregator(s.id, s.cfg.Type, time.Now())
	_ = s.recorder.SessionStarted(s.id, s.cfg.Type, len(s.items))
	emits := s.presentLocked()
	s.mu.Unlock()

	for _, emit := range emits {
		emit()
	}
	return nil
}

// PresentationFinished signals that rendering/speech of the current item's
// payload is done; for waiting timer policies this opens the answer window.
// Calling it in any other phase is a no-op (duplicate completion signals
// from a speech collaborator are expected).
func (s *Session) PresentationFinished() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.phase != PhasePresenting {
		return
	}
	s.openAnswerWindowLocked()
}

// Submit hands the engine one final transcript for the current item.
// Empty or whitespace-only transcripts are evaluated as incorrect answers,
// never rejected. A transcript arriving outside the answer window, or while
// a previous one is mid-evaluation, is silently ignored. That is the
// expected duplicate-callback race, not an error.
func (s *Session) Submit(transcript string) error {
	s.mu.Lock()
	switch {
	case s.phase == PhaseIdle:
		s.mu.Unlock()
		return ErrNotStarted
	case s.phase == PhaseCompleted:
		s.mu.Unlock()
		return ErrCompleted
	case s.phase != PhaseAwaitingAnswer || s.processing:
		s.mu.Unlock()
		return nil
	}

	s.processing = true
	s.timer.cancel()
	emits := s.handleAttemptLocked(transcript, false)
	s.processing = false
	s.mu.Unlock()

	for _, emit := range emits {
		emit()
	}
	return nil
}

// End terminates the session from any state. The in-flight item is dropped,
// not scored: no Response is emitted for it and no further events for it
// are accepted. Safe to call repeatedly.
func (s *Session) End() {
	s.mu.Lock()
	if s.phase == PhaseCompleted || s.phase == PhaseIdle {
		s.mu.Unlock()
		return
	}
	s.processing = false
	emits := s.completeLocked()
	s.mu.Unlock()

	for _, emit := range emits {
		emit()
	}
}

// Phase returns the current observable phase.
func (s *Session) Phase() Phase {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.phase
}

// Current returns a snapshot of the in-flight item state.
func (s *Session) Current() ItemState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cur
}

// Totals returns the running aggregate for responses finalized so far.
func (s *Session) Totals() progress.Totals {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.agg == nil {
		return progress.Totals{}
	}
	return s.agg.Totals()
}

// Summary returns the completion snapshot once the session is completed.
func (s *Session) Summary() (progress.Summary, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.summary == nil {
		return progress.Summary{}, false
	}
	return *s.summary, true
}

// presentLocked enters Presenting for the item at s.idx.
func (s *Session) presentLocked() []func() {
	item := s.items[s.idx]
	s.cur = ItemState{
		Index:     s.idx,
		Item:      item,
		StartedAt: time.Now(),
	}
	s.phase = PhasePresenting

	index, total := s.idx, len(s.items)
	emits := []func(){func() { s.listener.ItemPresented(item, index, total) }}

	// Exercises with nothing to wait for open the answer window at once.
	if s.cfg.TimerPolicy == exercise.TimerImmediate {
		s.openAnswerWindowLocked()
	}
	return emits
}

// openAnswerWindowLocked moves to AwaitingAnswer and arms the countdown.
func (s *Session) openAnswerWindowLocked() {
	s.phase = PhaseAwaitingAnswer
	s.cur.StartedAt = time.Now() // latency counts from when answering became possible
	s.armTimerLocked()
}

// armTimerLocked (re)arms the answer countdown for the current attempt.
// The firing carries the (item, attempt) it was armed for, so a firing that
// slipped past cancellation while a submission was mid-flight is discarded
// instead of timing out the next attempt.
func (s *Session) armTimerLocked() {
	if s.cfg.TimerPolicy == exercise.TimerNone {
		return
	}
	index, attempt := s.cur.Index, s.cur.Attempts
	s.timer.arm(s.cfg.Window(), func() { s.onTimeout(index, attempt) })
}

// onTimeout is the countdown firing: treated exactly like an incorrect
// answer with an empty transcript, except the Response it may produce is
// flagged TimedOut.
func (s *Session) onTimeout(index, attempt int) {
	s.mu.Lock()
	if s.phase != PhaseAwaitingAnswer || s.processing ||
		s.cur.Index != index || s.cur.Attempts != attempt {
		s.mu.Unlock()
		return
	}
	s.processing = true
	emits := s.handleAttemptLocked("", true)
	s.processing = false
	s.mu.Unlock()

	for _, emit := range emits {
		emit()
	}
}

// handleAttemptLocked evaluates one attempt and either finalizes the item
// or escalates the cue ladder, re-arming the countdown.
func (s *Session) handleAttemptLocked(transcript string, viaTimeout bool) []func() {
	item := s.cur.Item
	s.cur.Attempts++

	result := evaluate.Evaluate(transcript, item.ExpectedAnswer, item.Alternatives, s.settings)
	if result.Correct {
		return s.finalizeLocked(transcript, result, false)
	}

	s.cur.CueLevel++
	if s.cur.CueLevel < s.ladder.Len() {
		level := s.cur.CueLevel
		text, ok := s.ladder.Cue(item, level)
		if ok {
			_ = s.recorder.CueShown(s.id, item.ID, level, text)
			s.armTimerLocked()
			return []func(){func() { s.listener.CueIssued(item, level, text) }}
		}
		// A ladder shorter than its config claims: fall through to reveal.
	}

	// Ladder exhausted: reveal, finalize incorrect.
	return s.finalizeLocked(transcript, result, viaTimeout)
}

// finalizeLocked produces the item's single immutable Response, emits the
// reveal and schedules the advance.
func (s *Session) finalizeLocked(transcript string, result evaluate.Result, timedOut bool) []func() {
	item := s.cur.Item

	cuesUsed := s.cur.CueLevel
	if cuesUsed >= s.ladder.Len() {
		cuesUsed = s.ladder.Len() - 1 // the reveal level is not a cue
	}
	answer := transcript
	if timedOut {
		answer = ""
	}
	resp := progress.Response{
		ItemID:   item.ID,
		Answer:   answer,
		Correct:  result.Correct,
		Partial:  result.Partial,
		Score:    result.Score,
		CuesUsed: cuesUsed,
		TimedOut: timedOut,
		Latency:  time.Since(s.cur.StartedAt),
	}
	s.agg.Record(resp)
	_ = s.recorder.ResponseRecorded(s.id, resp)

	s.phase = PhaseRevealing
	revealText, _ := s.ladder.Cue(item, s.ladder.Len())
	s.advance.arm(s.cfg.Delay(), s.onAdvance)

	return []func(){
		func() { s.listener.ItemRevealed(item, revealText, result) },
		func() { s.listener.ItemFinalized(resp) },
	}
}

// onAdvance moves past the reveal to the next item, or completes.
func (s *Session) onAdvance() {
	s.mu.Lock()
	if s.phase != PhaseRevealing {
		s.mu.Unlock()
		return
	}
	s.idx++
	var emits []func()
	if s.idx >= len(s.items) {
		emits = s.completeLocked()
	} else {
		emits = s.presentLocked()
	}
	s.mu.Unlock()

	for _, emit := range emits {
		emit()
	}
}

// completeLocked transitions atomically to Completed: timers invalidated,
// snapshot emitted exactly once.
func (s *Session) completeLocked() []func() {
	s.timer.cancel()
	s.advance.cancel()
	s.phase = PhaseCompleted

	summary := s.agg.Complete(time.Now())
	s.summary = &summary
	_ = s.recorder.SessionCompleted(summary)

	return []func(){func() { s.listener.SessionCompleted(summary) }}
}
