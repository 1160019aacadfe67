package practice

import (
	tea "charm.land/bubbletea/v2"

	"github.com/fweiner/parrotsoftware-treatment-sub000/internal/evaluate"
	"github.com/fweiner/parrotsoftware-treatment-sub000/internal/exercise"
	"github.com/fweiner/parrotsoftware-treatment-sub000/internal/progress"
)

// eventBuffer is sized so a full emit burst (present + cue + reveal +
// finalize) never blocks an engine timer goroutine on the TUI reader.
const eventBuffer = 64

// chanListener funnels engine emissions into a channel the Bubble Tea loop
// drains via waitForEvent. Emissions arrive from both the Update goroutine
// (submits) and engine timers, so the channel is the synchronization point.
type chanListener struct {
	ch chan tea.Msg
}

func newChanListener() chanListener {
	return chanListener{ch: make(chan tea.Msg, eventBuffer)}
}

func (l chanListener) send(msg tea.Msg) {
	select {
	case l.ch <- msg:
	default:
		// A stalled reader should never wedge the engine.
	}
}

func (l chanListener) ItemPresented(item exercise.Item, index, total int) {
	l.send(itemPresentedMsg{Item: item, Index: index, Total: total})
}

func (l chanListener) CueIssued(item exercise.Item, level int, text string) {
	l.send(cueIssuedMsg{Item: item, Level: level, Text: text})
}

func (l chanListener) ItemRevealed(item exercise.Item, text string, result evaluate.Result) {
	l.send(itemRevealedMsg{Item: item, Text: text, Result: result})
}

func (l chanListener) ItemFinalized(resp progress.Response) {
	l.send(itemFinalizedMsg{Resp: resp})
}

func (l chanListener) SessionCompleted(summary progress.Summary) {
	l.send(sessionCompletedMsg{Summary: summary})
}
