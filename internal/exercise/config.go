package exercise

import "time"

// TimerPolicy controls when the answer countdown is armed for an item.
type TimerPolicy int

const (
	// TimerAfterPresentation arms the countdown once the caller signals that
	// presentation (image display, teach sentence, spoken list) has finished.
	TimerAfterPresentation TimerPolicy = iota

	// TimerImmediate arms the countdown as soon as the item is presented.
	TimerImmediate

	// TimerNone disables the countdown; the item waits indefinitely.
	TimerNone
)

// DefaultAnswerWindow is the countdown used when a config leaves it zero.
const DefaultAnswerWindow = 30 * time.Second

// DefaultRevealDelay is how long the reveal stays up before auto-advancing.
const DefaultRevealDelay = 4 * time.Second

// Config holds the per-exercise parameters of the session engine. The five
// exercises share one state machine; everything that varied between them is
// data here.
type Config struct {
	Type         Type
	LadderLen    int           // cue levels before reveal; last level restates the answer
	AnswerWindow time.Duration // countdown per attempt (0 = DefaultAnswerWindow)
	RevealDelay  time.Duration // pause on the reveal before advancing (0 = DefaultRevealDelay)
	TimerPolicy  TimerPolicy
	TeachFirst   bool // presentation includes a teach sub-phase before the answer window
}

// ConfigFor returns the tuned configuration for an exercise type.
func ConfigFor(t Type) Config {
	cfg := Config{
		Type:         t,
		AnswerWindow: DefaultAnswerWindow,
		RevealDelay:  DefaultRevealDelay,
		TimerPolicy:  TimerAfterPresentation,
	}

	switch t {
	case WordFinding:
		cfg.LadderLen = 7
		cfg.TimerPolicy = TimerImmediate // static image, nothing to wait for
	case LifeWords:
		cfg.LadderLen = 8
	case PersonalFacts:
		cfg.LadderLen = 2
	case PersonQuestions:
		cfg.LadderLen = 5
	case ListRecall:
		cfg.LadderLen = 2
		cfg.TeachFirst = true // the list is read aloud before the timer starts
	default:
		cfg.LadderLen = 2
	}

	return cfg
}

// Window returns the effective answer window.
func (c Config) Window() time.Duration {
	if c.AnswerWindow > 0 {
		return c.AnswerWindow
	}
	return DefaultAnswerWindow
}

// Delay returns the effective reveal delay.
func (c Config) Delay() time.Duration {
	if c.RevealDelay > 0 {
		return c.RevealDelay
	}
	return DefaultRevealDelay
}
