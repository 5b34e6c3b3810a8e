package play

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/Takatakatake/Esperanto-words-4choice-quizzes/internal/ui/components"
	"github.com/Takatakatake/Esperanto-words-4choice-quizzes/internal/ui/theme"
)

func (s *PlayScreen) View(width, height int) string {
	if s.showingQuitConfirm {
		return renderQuitConfirm(width, height)
	}

	var b strings.Builder

	pos, total := s.session.Position()
	infoLeft := theme.POSBadge.Render("  " + s.group.PartOfSpeech.DisplayName())
	infoRight := lipgloss.NewStyle().Foreground(theme.TextDim).Render(fmt.Sprintf("Q %d/%d   %s %d   streak %d",
		pos, total, theme.Correct.Render("✓"), s.session.Correct, s.session.Streak))

	infoLine := infoLeft
	if pad := width - lipgloss.Width(infoLeft) - lipgloss.Width(infoRight) - 4; pad > 0 {
		infoLine += strings.Repeat(" ", pad) + infoRight
	}
	b.WriteString(infoLine)
	b.WriteString("\n  ")
	b.WriteString(components.NewProgressBar("", len(s.session.Answers), total, max(width-6, 10)).View())
	b.WriteString("\n\n")

	panel := lipgloss.NewStyle().Padding(0, 4).Render(s.choice.View())
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, panel))

	if s.showingFeedback {
		b.WriteString("\n")
		b.WriteString(s.renderFeedback(width))
	}

	return b.String()
}

func (s *PlayScreen) renderFeedback(width int) string {
	e := s.last.Question.Correct()
	var line string
	if s.last.Correct {
		line = theme.Correct.Render("Ĝuste!") + "  " + theme.Body.Render(e.Text+" = "+e.Translation)
	} else {
		line = theme.Incorrect.Render("Malĝuste.") + "  " + theme.Body.Render(e.Text+" = "+e.Translation)
	}
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, line)
}

func renderQuitConfirm(width, height int) string {
	msg := lipgloss.JoinVertical(lipgloss.Center,
		theme.Title.Render("End this quiz?"),
		"",
		theme.Faded.Render("Answers so far go to the summary."),
		"",
		theme.Hint.Render("Y to end · N to keep going"),
	)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, msg)
}
