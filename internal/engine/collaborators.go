package engine

import (
	"github.com/fweiner/parrotsoftware-treatment-sub000/internal/evaluate"
	"github.com/fweiner/parrotsoftware-treatment-sub000/internal/exercise"
	"github.com/fweiner/parrotsoftware-treatment-sub000/internal/progress"
)

// Listener receives engine emissions: what to show or speak, and what was
// decided. The session never holds its internal lock while calling a
// listener, so implementations may call back into the session.
type Listener interface {
	// ItemPresented asks the caller to render/speak the item's presentation
	// payload. For timer policies that wait, the caller signals completion
	// via Session.PresentationFinished.
	ItemPresented(item exercise.Item, index, total int)

	// CueIssued asks the caller to show/speak the next hint. Speech failure
	// must be treated as playback completing instantly; the answer window is
	// already re-armed when this fires.
	CueIssued(item exercise.Item, level int, text string)

	// ItemRevealed fires when the item resolves, with the fully revealing
	// answer text and the verdict of the final attempt.
	ItemRevealed(item exercise.Item, text string, result evaluate.Result)

	// ItemFinalized delivers the immutable Response for a processed item.
	ItemFinalized(resp progress.Response)

	// SessionCompleted delivers the completion snapshot. Terminal.
	SessionCompleted(summary progress.Summary)
}

// Recorder is the persistence collaborator. The engine never depends on a
// Recorder call succeeding: errors are dropped here and surfaced by the
// implementation's own logging.
type Recorder interface {
	SessionStarted(sessionID string, t exercise.Type, itemCount int) error
	CueShown(sessionID, itemID string, level int, text string) error
	ResponseRecorded(sessionID string, resp progress.Response) error
	SessionCompleted(summary progress.Summary) error
}

// NopListener ignores every emission.
type NopListener struct{}

func (NopListener) ItemPresented(exercise.Item, int, int) {}
func (NopListener) CueIssued(exercise.Item, int, string) {}
func (NopListener) ItemRevealed(exercise.Item, string, evaluate.Result) {}
func (NopListener) ItemFinalized(progress.Response) {}
func (NopListener) SessionCompleted(progress.Summary) {}

// NopRecorder drops every event.
type NopRecorder struct{}

func (NopRecorder) SessionStarted(string, exercise.Type, int) error { return nil }
func (NopRecorder) CueShown(string, string, int, string) error { return nil }
func (NopRecorder) ResponseRecorded(string, progress.Response) error { return nil }
func (NopRecorder) SessionCompleted(progress.Summary) error { return nil }
