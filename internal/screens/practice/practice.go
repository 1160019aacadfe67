package practice

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/google/uuid"

	"github.com/fweiner/parrotsoftware-treatment-sub000/internal/engine"
	"github.com/fweiner/parrotsoftware-treatment-sub000/internal/evaluate"
	"github.com/fweiner/parrotsoftware-treatment-sub000/internal/exercise"
	"github.com/fweiner/parrotsoftware-treatment-sub000/internal/items"
	"github.com/fweiner/parrotsoftware-treatment-sub000/internal/progress"
	"github.com/fweiner/parrotsoftware-treatment-sub000/internal/router"
	"github.com/fweiner/parrotsoftware-treatment-sub000/internal/screen"
	"github.com/fweiner/parrotsoftware-treatment-sub000/internal/screens/summary"
	"github.com/fweiner/parrotsoftware-treatment-sub000/internal/speech"
	"github.com/fweiner/parrotsoftware-treatment-sub000/internal/store"
	"github.com/fweiner/parrotsoftware-treatment-sub000/internal/ui/components"
	"github.com/fweiner/parrotsoftware-treatment-sub000/internal/ui/layout"
)

// viewMode tracks what the screen is currently showing. It mirrors the
// engine's emissions rather than its phase: the engine advances on its own
// timers and the screen just renders the latest thing it was told.
type viewMode int

const (
	modeLoading viewMode = iota
	modeTeach
	modeItem
	modeReveal
	modeError
)

// Options carries the practice screen's collaborators.
type Options struct {
	Exercise     exercise.Type
	Source       *items.Source
	EventRepo    store.EventRepo
	SnapshotRepo store.SnapshotRepo
	Speaker      *speech.Speaker
	Settings     *evaluate.Settings
}

// PracticeScreen runs one recall session end to end.
type PracticeScreen struct {
	opts     Options
	cfg      exercise.Config
	listener chanListener
	sess     *engine.Session
	byID     map[string]exercise.Item

	input components.TextInput

	mode        viewMode
	item        exercise.Item
	index       int
	total       int
	cues        []string
	revealText  string
	lastResp    *progress.Response
	quitConfirm bool
	errMsg      string
}

var _ screen.Screen = (*PracticeScreen)(nil)
var _ screen.KeyHintProvider = (*PracticeScreen)(nil)
var _ screen.StatusProvider = (*PracticeScreen)(nil)

// New creates a practice screen for one exercise.
func New(opts Options) *PracticeScreen {
	return &PracticeScreen{
		opts:     opts,
		cfg:      exercise.ConfigFor(opts.Exercise),
		listener: newChanListener(),
		input:    components.NewTextInput("Type your answer...", 60),
	}
}

func (p *PracticeScreen) Init() tea.Cmd {
	return tea.Batch(
		p.startSession(),
		p.input.Init(),
		p.waitForEvent(),
	)
}

func (p *PracticeScreen) Title() string {
	return p.opts.Exercise.DisplayName()
}

func (p *PracticeScreen) Status() string {
	if p.total == 0 {
		return ""
	}
	return fmt.Sprintf("Item %d of %d", p.index+1, p.total)
}

func (p *PracticeScreen) KeyHints() []layout.KeyHint {
	if p.quitConfirm {
		return []layout.KeyHint{
			{Key: "Y", Description: "End session"},
			{Key: "N", Description: "Keep going"},
		}
	}
	return []layout.KeyHint{
		{Key: "Enter", Description: "Submit"},
		{Key: "Esc", Description: "End early"},
	}
}

// startSession builds the item list, wires the engine, and starts it.
// The engine's emissions land on the listener channel from here on.
func (p *PracticeScreen) startSession() tea.Cmd {
	return func() tea.Msg {
		itemList, err := p.opts.Source.Items(p.opts.Exercise)
		if err != nil {
			return sessionReadyMsg{Err: err}
		}

		byID := make(map[string]exercise.Item, len(itemList))
		for _, it := range itemList {
			byID[it.ID] = it
		}
		p.byID = byID

		var recorder engine.Recorder = engine.NopRecorder{}
		if p.opts.EventRepo != nil && p.opts.SnapshotRepo != nil {
			recorder = store.NewEventRecorder(p.opts.EventRepo, p.opts.SnapshotRepo, p.opts.Exercise, itemList)
		}

		sess, err := engine.NewSession(p.cfg, itemList, engine.Options{
			SessionID: uuid.New().String(),
			Listener:  p.listener,
			Recorder:  recorder,
			Settings:  p.opts.Settings,
		})
		if err != nil {
			return sessionReadyMsg{Err: err}
		}
		p.sess = sess

		if err := sess.Start(); err != nil {
			return sessionReadyMsg{Err: err}
		}
		return sessionReadyMsg{}
	}
}

// waitForEvent delivers the next engine emission to the Update loop.
func (p *PracticeScreen) waitForEvent() tea.Cmd {
	return func() tea.Msg {
		return <-p.listener.ch
	}
}

func (p *PracticeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case sessionReadyMsg:
		if msg.Err != nil {
			p.mode = modeError
			p.errMsg = msg.Err.Error()
		}
		return p, nil

	case itemPresentedMsg:
		if p.cfg.TeachFirst && (msg.Item.Presentation.Teach != "" || len(msg.Item.Presentation.SpokenList) > 0) {
			p.mode = modeTeach
		} else {
			p.mode = modeItem
		}
		p.item = msg.Item
		p.index = msg.Index
		p.total = msg.Total
		p.cues = nil
		p.revealText = ""
		p.lastResp = nil
		p.input.Reset()
		return p, tea.Batch(p.speakPresentation(msg.Item), p.waitForEvent())

	case cueIssuedMsg:
		p.cues = append(p.cues, msg.Text)
		return p, tea.Batch(p.say(msg.Text), p.waitForEvent())

	case itemRevealedMsg:
		p.mode = modeReveal
		p.revealText = msg.Text
		return p, tea.Batch(p.say(msg.Text), p.waitForEvent())

	case itemFinalizedMsg:
		resp := msg.Resp
		p.lastResp = &resp
		return p, p.waitForEvent()

	case sessionCompletedMsg:
		sum := msg.Summary
		byID := p.byID
		return p, func() tea.Msg {
			return router.ReplaceScreenMsg{Screen: summary.New(sum, byID)}
		}

	case presentationDoneMsg:
		if p.mode == modeTeach {
			p.mode = modeItem
		}
		if p.sess != nil {
			p.sess.PresentationFinished()
		}
		return p, nil

	case speechPlayedMsg:
		return p, nil

	case tea.KeyMsg:
		return p.handleKey(msg)
	}

	// Everything else feeds the transcript field while answering.
	if p.mode == modeItem && !p.quitConfirm {
		var cmd tea.Cmd
		p.input, cmd = p.input.Update(msg)
		return p, cmd
	}
	return p, nil
}

func (p *PracticeScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	if p.mode == modeError {
		return p, func() tea.Msg { return router.PopScreenMsg{} }
	}

	if p.quitConfirm {
		switch key {
		case "y", "Y":
			p.quitConfirm = false
			if p.sess != nil {
				// End drops the in-flight item; completion arrives on the
				// listener channel like any other emission.
				p.sess.End()
			}
			return p, nil
		case "n", "N", "esc":
			p.quitConfirm = false
			return p, nil
		}
		return p, nil
	}

	switch key {
	case "esc":
		p.quitConfirm = true
		return p, nil
	case "enter":
		if p.mode != modeItem || p.sess == nil {
			return p, nil
		}
		transcript := p.input.Value()
		p.input.Reset()
		// An empty submit is "I don't know": the engine escalates the cue
		// ladder exactly as for a wrong answer.
		_ = p.sess.Submit(transcript)
		return p, nil
	}

	if p.mode == modeItem {
		var cmd tea.Cmd
		p.input, cmd = p.input.Update(msg)
		return p, cmd
	}
	return p, nil
}

// wordDisplayTime is how long each list word stays on screen when the list
// is shown rather than spoken.
const wordDisplayTime = 2 * time.Second

// speakPresentation voices the item's teach text, spoken list, and prompt,
// then tells the engine presentation is over. With speech disabled, a list
// is shown on screen instead (the teach view) and held long enough to read;
// the words disappear when the answer window opens.
func (p *PracticeScreen) speakPresentation(item exercise.Item) tea.Cmd {
	speaker := p.opts.Speaker
	return func() tea.Msg {
		switch {
		case speaker != nil && speaker.Enabled():
			ctx := context.Background()
			if item.Presentation.Teach != "" {
				_ = speaker.Say(ctx, item.Presentation.Teach)
			}
			if len(item.Presentation.SpokenList) > 0 {
				_ = speaker.Say(ctx, strings.Join(item.Presentation.SpokenList, ". "))
			}
			if item.Presentation.Prompt != "" {
				_ = speaker.Say(ctx, item.Presentation.Prompt)
			}
		case len(item.Presentation.SpokenList) > 0:
			time.Sleep(time.Duration(len(item.Presentation.SpokenList)) * wordDisplayTime)
		}
		return presentationDoneMsg{}
	}
}

// say voices one utterance without blocking the session.
func (p *PracticeScreen) say(text string) tea.Cmd {
	speaker := p.opts.Speaker
	return func() tea.Msg {
		if speaker != nil {
			_ = speaker.Say(context.Background(), text)
		}
		return speechPlayedMsg{}
	}
}
