package app

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/fweiner/parrotsoftware-treatment-sub000/internal/evaluate"
	"github.com/fweiner/parrotsoftware-treatment-sub000/internal/exercise"
	"github.com/fweiner/parrotsoftware-treatment-sub000/internal/items"
	"github.com/fweiner/parrotsoftware-treatment-sub000/internal/router"
	"github.com/fweiner/parrotsoftware-treatment-sub000/internal/screen"
	"github.com/fweiner/parrotsoftware-treatment-sub000/internal/screens/home"
	"github.com/fweiner/parrotsoftware-treatment-sub000/internal/screens/practice"
	"github.com/fweiner/parrotsoftware-treatment-sub000/internal/speech"
	"github.com/fweiner/parrotsoftware-treatment-sub000/internal/store"
	"github.com/fweiner/parrotsoftware-treatment-sub000/internal/ui/layout"
)

// Options carries everything the TUI needs. StartExercise, when set, skips
// the home menu and drops straight into that exercise.
type Options struct {
	Source        *items.Source
	EventRepo     store.EventRepo
	SnapshotRepo  store.SnapshotRepo
	Speaker       *speech.Speaker
	Settings      *evaluate.Settings
	StartExercise *exercise.Type
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router  *router.Router
	initCmd tea.Cmd
	width   int
	height  int
}

func newAppModel(opts Options) AppModel {
	homeScreen := home.New(home.Deps{
		Source:       opts.Source,
		EventRepo:    opts.EventRepo,
		SnapshotRepo: opts.SnapshotRepo,
		Speaker:      opts.Speaker,
		Settings:     opts.Settings,
	})
	r := router.New(homeScreen)

	// Router.Push runs the screen's Init; stash the command so the program
	// picks it up when it starts.
	var initCmd tea.Cmd
	if opts.StartExercise != nil {
		initCmd = r.Push(practice.New(practice.Options{
			Exercise:     *opts.StartExercise,
			Source:       opts.Source,
			EventRepo:    opts.EventRepo,
			SnapshotRepo: opts.SnapshotRepo,
			Speaker:      opts.Speaker,
			Settings:     opts.Settings,
		}))
	}
	return AppModel{router: r, initCmd: initCmd}
}

func (m AppModel) Init() tea.Cmd {
	return m.initCmd
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		// Esc is deliberately NOT handled here: each screen decides what
		// it means (the practice screen asks before ending a session).
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()

	title := ""
	status := ""
	if active != nil {
		title = active.Title()
		if sp, ok := active.(screen.StatusProvider); ok {
			status = sp.Status()
		}
	}
	header := layout.RenderHeader(title, status, m.width)

	footerHints := []layout.KeyHint{
		{Key: "Ctrl+C", Description: "Quit"},
	}
	if hp, ok := active.(screen.KeyHintProvider); ok {
		footerHints = append(hp.KeyHints(), footerHints...)
	}
	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
