package practice

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/fweiner/parrotsoftware-treatment-sub000/internal/ui/theme"
)

func (p *PracticeScreen) View(width, height int) string {
	if p.quitConfirm {
		return renderQuitConfirm(width)
	}
	switch p.mode {
	case modeError:
		return renderError(width, p.errMsg)
	case modeTeach:
		return p.renderTeach(width)
	case modeItem:
		return p.renderItem(width)
	case modeReveal:
		return p.renderReveal(width)
	default:
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("\n\n\n  Preparing your session...")
	}
}

// renderTeach shows the teach payload: the list words stay up while they
// are being presented and vanish when the answer window opens.
func (p *PracticeScreen) renderTeach(width int) string {
	var b strings.Builder
	b.WriteString("\n\n")

	teach := p.item.Presentation.Teach
	if teach == "" {
		teach = "Listen carefully."
	}
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true).
		Render(teach))
	b.WriteString("\n\n")

	for _, word := range p.item.Presentation.SpokenList {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Primary).
			Bold(true).
			Render(word))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("Try to remember these."))

	return b.String()
}

// renderItem shows the prompt, any cues issued so far, and the answer field.
func (p *PracticeScreen) renderItem(width int) string {
	var b strings.Builder
	b.WriteString("\n")

	if p.item.Presentation.ImageURL != "" {
		photo := lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(theme.Border).
			Foreground(theme.TextDim).
			Padding(1, 3).
			Render("photo: " + p.item.Presentation.ImageURL)
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, photo))
		b.WriteString("\n\n")
	}

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true).
		Render(p.item.Presentation.Prompt))
	b.WriteString("\n\n")

	for i, cueText := range p.cues {
		line := fmt.Sprintf("Hint %d: %s", i+1, cueText)
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Accent).
			Render(line))
		b.WriteString("\n")
	}
	if len(p.cues) > 0 {
		b.WriteString("\n")
	}

	answerLine := lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Render("Answer: " + p.input.View())
	b.WriteString(answerLine)

	return b.String()
}

// renderReveal shows the resolving answer and the verdict of the final
// attempt, covering the reveal delay before the next item.
func (p *PracticeScreen) renderReveal(width int) string {
	var b strings.Builder
	b.WriteString("\n\n")

	if p.lastResp != nil {
		var verdict string
		var style lipgloss.Style
		switch {
		case p.lastResp.TimedOut:
			verdict = "Time's up"
			style = lipgloss.NewStyle().Foreground(theme.Accent).Bold(true)
		case p.lastResp.Correct && !p.lastResp.Partial:
			verdict = "That's right!"
			style = lipgloss.NewStyle().Foreground(theme.Success).Bold(true)
		case p.lastResp.Correct:
			verdict = "Close enough — well done!"
			style = lipgloss.NewStyle().Foreground(theme.Success).Bold(true)
		default:
			verdict = "Not quite"
			style = lipgloss.NewStyle().Foreground(theme.Error).Bold(true)
		}
		b.WriteString(style.Width(width).Align(lipgloss.Center).Render(verdict))
		b.WriteString("\n\n")
	}

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Render(p.revealText))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("Next one coming up..."))

	return b.String()
}

// renderQuitConfirm renders the end-early confirmation dialog.
func renderQuitConfirm(width int) string {
	var b strings.Builder
	b.WriteString("\n\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true).
		Render("End session early?"))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("Finished items are already saved; the current one won't be scored."))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Success).
		Render("[Y] Yes, end session"))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Render("[N] No, keep going"))

	return b.String()
}

// renderError renders a build or startup failure.
func renderError(width int, errMsg string) string {
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Error).
		Render(fmt.Sprintf("\n\n\n  %s\n\n  Press any key to go back.", errMsg))
}
