package summary

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/Takatakatake/Esperanto-words-4choice-quizzes/internal/grouping"
	"github.com/Takatakatake/Esperanto-words-4choice-quizzes/internal/quiz"
	"github.com/Takatakatake/Esperanto-words-4choice-quizzes/internal/router"
	"github.com/Takatakatake/Esperanto-words-4choice-quizzes/internal/screen"
	"github.com/Takatakatake/Esperanto-words-4choice-quizzes/internal/ui/layout"
	"github.com/Takatakatake/Esperanto-words-4choice-quizzes/internal/ui/theme"
)

// maxMissedShown caps the review list so the screen fits a small terminal.
const maxMissedShown = 8

// SummaryScreen displays the result of a finished quiz.
type SummaryScreen struct {
	summary quiz.Summary
	group   *grouping.Group
	retry   func() screen.Screen
}

var _ screen.Screen = (*SummaryScreen)(nil)
var _ screen.KeyHintProvider = (*SummaryScreen)(nil)

// New creates a new SummaryScreen. retry builds a fresh quiz over the same
// group; nil disables the retry key.
func New(summary quiz.Summary, group *grouping.Group, retry func() screen.Screen) *SummaryScreen {
	return &SummaryScreen{summary: summary, group: group, retry: retry}
}

func (s *SummaryScreen) Init() tea.Cmd {
	return nil
}

func (s *SummaryScreen) Title() string {
	return "Result"
}

func (s *SummaryScreen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{{Key: "Enter", Description: "Groups"}}
	if s.retry != nil {
		hints = append(hints, layout.KeyHint{Key: "R", Description: "Retry"})
	}
	return append(hints, layout.KeyHint{Key: "Esc", Description: "Back"})
}

func (s *SummaryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "enter", "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "r", "R":
			if s.retry != nil {
				next := s.retry()
				return s, func() tea.Msg { return router.ReplaceScreenMsg{Screen: next} }
			}
		}
	}
	return s, nil
}

func (s *SummaryScreen) View(width, height int) string {
	sum := s.summary
	center := func(style lipgloss.Style, text string) string {
		return lipgloss.NewStyle().Width(width).Align(lipgloss.Center).Render(style.Render(text))
	}

	var b strings.Builder

	title := "Bone farite!"
	if sum.TotalQuestions > 0 && sum.TotalCorrect == sum.TotalQuestions {
		title = "Perfekte!"
	}
	b.WriteString(center(theme.Title, title))
	b.WriteString("\n")
	if s.group != nil {
		b.WriteString(center(theme.StageBadge,
			fmt.Sprintf("%s · %s", s.group.PartOfSpeech.DisplayName(), grouping.FormatLabels(s.group.StageLabels))))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	mins := int(sum.Duration.Minutes())
	secs := int(sum.Duration.Seconds()) % 60
	b.WriteString(center(theme.Faded, fmt.Sprintf("Duration: %d:%02d", mins, secs)))
	b.WriteString("\n\n")

	b.WriteString(center(theme.Body, fmt.Sprintf("Questions: %d      Correct: %d      Accuracy: %.0f%%      Best streak: %d",
		sum.TotalQuestions, sum.TotalCorrect, sum.Accuracy*100, sum.BestStreak)))
	b.WriteString("\n\n")

	if len(sum.Missed) == 0 {
		return b.String()
	}

	divider := theme.Faded.Render(strings.Repeat("─", max(min(width-8, 60), 0)))
	b.WriteString(center(theme.Faded, "To review"))
	b.WriteString("\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, divider))
	b.WriteString("\n\n")

	for i, a := range sum.Missed {
		if i == maxMissedShown {
			b.WriteString(center(theme.Faded, fmt.Sprintf("… and %d more", len(sum.Missed)-maxMissedShown)))
			b.WriteString("\n")
			break
		}
		e := a.Question.Correct()
		line := fmt.Sprintf("%s  →  %s", theme.Incorrect.Render(e.Text), theme.Body.Render(e.Translation))
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, line))
		b.WriteString("\n")
	}

	return b.String()
}
