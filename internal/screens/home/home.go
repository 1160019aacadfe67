package home

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/fweiner/parrotsoftware-treatment-sub000/internal/evaluate"
	"github.com/fweiner/parrotsoftware-treatment-sub000/internal/exercise"
	"github.com/fweiner/parrotsoftware-treatment-sub000/internal/items"
	"github.com/fweiner/parrotsoftware-treatment-sub000/internal/router"
	"github.com/fweiner/parrotsoftware-treatment-sub000/internal/screen"
	"github.com/fweiner/parrotsoftware-treatment-sub000/internal/screens/practice"
	"github.com/fweiner/parrotsoftware-treatment-sub000/internal/speech"
	"github.com/fweiner/parrotsoftware-treatment-sub000/internal/store"
	"github.com/fweiner/parrotsoftware-treatment-sub000/internal/ui/components"
	"github.com/fweiner/parrotsoftware-treatment-sub000/internal/ui/layout"
	"github.com/fweiner/parrotsoftware-treatment-sub000/internal/ui/theme"
)

// Deps are the shared services the home screen threads into each practice
// session it launches.
type Deps struct {
	Source       *items.Source
	EventRepo    store.EventRepo
	SnapshotRepo store.SnapshotRepo
	Speaker      *speech.Speaker
	Settings     *evaluate.Settings
}

// HomeScreen is the exercise picker shown at startup.
type HomeScreen struct {
	menu     components.Menu
	sessions int
}

var _ screen.Screen = (*HomeScreen)(nil)
var _ screen.KeyHintProvider = (*HomeScreen)(nil)

// New creates the home screen. Per-exercise progress lines come from the
// latest snapshot; a missing or empty snapshot just means no detail lines.
func New(deps Deps) *HomeScreen {
	var prog map[string]store.ExerciseProgress
	var sessions int
	if deps.SnapshotRepo != nil {
		if snap, err := deps.SnapshotRepo.Latest(context.Background()); err == nil && snap != nil {
			prog = snap.Data.Progress
			for _, p := range prog {
				sessions += p.TotalSessions
			}
		}
	}

	var menuItems []components.MenuItem
	for _, t := range exercise.All() {
		t := t
		menuItems = append(menuItems, components.MenuItem{
			Label:  t.DisplayName(),
			Detail: progressDetail(prog[string(t)]),
			Action: func() tea.Cmd {
				return func() tea.Msg {
					return router.PushScreenMsg{Screen: practice.New(practice.Options{
						Exercise:     t,
						Source:       deps.Source,
						EventRepo:    deps.EventRepo,
						SnapshotRepo: deps.SnapshotRepo,
						Speaker:      deps.Speaker,
						Settings:     deps.Settings,
					})}
				}
			},
		})
	}
	menuItems = append(menuItems, components.MenuItem{
		Label: "Exit",
		Action: func() tea.Cmd {
			return tea.Quit
		},
	})

	return &HomeScreen{
		menu:     components.NewMenu(menuItems),
		sessions: sessions,
	}
}

// progressDetail formats one exercise's history for the menu, or returns
// empty when the exercise has never been practiced.
func progressDetail(p store.ExerciseProgress) string {
	if p.TotalSessions == 0 {
		return ""
	}
	noun := "sessions"
	if p.TotalSessions == 1 {
		noun = "session"
	}
	detail := fmt.Sprintf("%d %s · %.0f%% recalled", p.TotalSessions, noun, p.AverageAccuracy*100)
	if !p.LastSessionAt.IsZero() {
		detail += " · last " + p.LastSessionAt.Format("Jan 2")
	}
	return detail
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Title() string {
	return "Home"
}

func (h *HomeScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑/↓", Description: "Navigate"},
		{Key: "Enter", Description: "Start"},
	}
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	var b strings.Builder
	b.WriteString("\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Bold(true).
		Render("What would you like to practice today?"))
	b.WriteString("\n")

	if h.sessions > 0 {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render(fmt.Sprintf("%d sessions completed so far — keep it up!", h.sessions)))
	}
	b.WriteString("\n\n")

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, h.menu.View()))

	return b.String()
}
