package summary

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/fweiner/parrotsoftware-treatment-sub000/internal/exercise"
	"github.com/fweiner/parrotsoftware-treatment-sub000/internal/progress"
	"github.com/fweiner/parrotsoftware-treatment-sub000/internal/router"
	"github.com/fweiner/parrotsoftware-treatment-sub000/internal/screen"
	"github.com/fweiner/parrotsoftware-treatment-sub000/internal/ui/components"
	"github.com/fweiner/parrotsoftware-treatment-sub000/internal/ui/layout"
	"github.com/fweiner/parrotsoftware-treatment-sub000/internal/ui/theme"
)

// SummaryScreen displays the results of a finished practice session.
type SummaryScreen struct {
	summary progress.Summary
	items   map[string]exercise.Item
}

var _ screen.Screen = (*SummaryScreen)(nil)
var _ screen.KeyHintProvider = (*SummaryScreen)(nil)

// New creates a summary screen. items maps item IDs to the items that were
// practiced, so responses can be shown alongside their expected answers.
func New(summary progress.Summary, items map[string]exercise.Item) *SummaryScreen {
	return &SummaryScreen{summary: summary, items: items}
}

func (s *SummaryScreen) Init() tea.Cmd {
	return nil
}

func (s *SummaryScreen) Title() string {
	return s.summary.Exercise.DisplayName() + " Summary"
}

func (s *SummaryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Home"},
	}
}

func (s *SummaryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "enter", "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return s, nil
}

func (s *SummaryScreen) View(width, height int) string {
	sum := s.summary
	var b strings.Builder

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Bold(true).
		Render("Nice work — session complete!"))
	b.WriteString("\n\n")

	dur := sum.CompletedAt.Sub(sum.StartedAt)
	mins := int(dur.Minutes())
	secs := int(dur.Seconds()) % 60
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("Duration: %d:%02d", mins, secs)))
	b.WriteString("\n\n")

	t := sum.Totals
	accuracy := 0.0
	if t.Items > 0 {
		accuracy = float64(t.Correct) / float64(t.Items)
	}
	statsLine := fmt.Sprintf("Items: %d        Recalled: %d        Accuracy: %.0f%%",
		t.Items, t.Correct, accuracy*100)
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Render(statsLine))
	b.WriteString("\n")

	bar := components.NewProgressBar("", accuracy, false, min(width-20, 40))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, bar.View()))
	b.WriteString("\n")

	detailLine := fmt.Sprintf("Close answers: %d        Hints used: %d        Timed out: %d",
		t.Partial, t.CuesUsed, t.TimedOut)
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render(detailLine))
	b.WriteString("\n")

	if t.MeanLatency > 0 {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render(fmt.Sprintf("Average response time: %.1fs", t.MeanLatency.Seconds())))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	divider := lipgloss.NewStyle().Foreground(theme.Border).Render(
		strings.Repeat("─", min(width-8, 60)))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		lipgloss.NewStyle().Foreground(theme.TextDim).Render("Items")))
	b.WriteString("\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, divider))
	b.WriteString("\n\n")

	for _, resp := range sum.Responses {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			s.renderResponse(resp)))
		b.WriteString("\n")
	}

	return b.String()
}

// renderResponse formats one item line: marker, expected answer, and what
// the practicer actually said when it differed.
func (s *SummaryScreen) renderResponse(resp progress.Response) string {
	expected := resp.ItemID
	if it, ok := s.items[resp.ItemID]; ok {
		expected = it.ExpectedAnswer
	}

	var marker string
	var style lipgloss.Style
	switch {
	case resp.Correct && !resp.Partial:
		marker = "✓"
		style = lipgloss.NewStyle().Foreground(theme.Success)
	case resp.Correct:
		marker = "~"
		style = lipgloss.NewStyle().Foreground(theme.Secondary)
	case resp.TimedOut:
		marker = "⏱"
		style = lipgloss.NewStyle().Foreground(theme.Accent)
	default:
		marker = "✗"
		style = lipgloss.NewStyle().Foreground(theme.Error)
	}

	line := fmt.Sprintf("  %s %s", marker, expected)
	if !resp.Correct && resp.Answer != "" && !strings.EqualFold(resp.Answer, expected) {
		line += fmt.Sprintf("  (you said %q)", resp.Answer)
	}
	if resp.CuesUsed > 0 {
		line += fmt.Sprintf("  · %d hint", resp.CuesUsed)
		if resp.CuesUsed > 1 {
			line += "s"
		}
	}
	return style.Render(line)
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
