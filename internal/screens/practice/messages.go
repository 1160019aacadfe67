package practice

import (
	"github.com/fweiner/parrotsoftware-treatment-sub000/internal/evaluate"
	"github.com/fweiner/parrotsoftware-treatment-sub000/internal/exercise"
	"github.com/fweiner/parrotsoftware-treatment-sub000/internal/progress"
)

// sessionReadyMsg is sent when the item list is built and the engine started.
type sessionReadyMsg struct {
	Err error
}

// itemPresentedMsg mirrors the engine's ItemPresented emission.
type itemPresentedMsg struct {
	Item  exercise.Item
	Index int
	Total int
}

// cueIssuedMsg mirrors the engine's CueIssued emission.
type cueIssuedMsg struct {
	Item  exercise.Item
	Level int
	Text  string
}

// itemRevealedMsg mirrors the engine's ItemRevealed emission.
type itemRevealedMsg struct {
	Item   exercise.Item
	Text   string
	Result evaluate.Result
}

// itemFinalizedMsg mirrors the engine's ItemFinalized emission.
type itemFinalizedMsg struct {
	Resp progress.Response
}

// sessionCompletedMsg mirrors the engine's SessionCompleted emission.
type sessionCompletedMsg struct {
	Summary progress.Summary
}

// presentationDoneMsg is sent once the item's presentation payload has been
// spoken (or immediately when speech is disabled).
type presentationDoneMsg struct{}

// speechPlayedMsg is sent when a fire-and-forget utterance finishes.
// The screen ignores it; it exists so the speaking Cmd has a Msg to return.
type speechPlayedMsg struct{}
