// Package play is the multiple-choice quiz screen for one group.
package play

import (
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/Takatakatake/Esperanto-words-4choice-quizzes/internal/grouping"
	"github.com/Takatakatake/Esperanto-words-4choice-quizzes/internal/quiz"
	"github.com/Takatakatake/Esperanto-words-4choice-quizzes/internal/router"
	"github.com/Takatakatake/Esperanto-words-4choice-quizzes/internal/screen"
	"github.com/Takatakatake/Esperanto-words-4choice-quizzes/internal/screens/summary"
	"github.com/Takatakatake/Esperanto-words-4choice-quizzes/internal/ui/components"
	"github.com/Takatakatake/Esperanto-words-4choice-quizzes/internal/ui/layout"
)

// FeedbackDelay is how long a correct answer stays on screen before the
// next question. Wrong answers wait for a key press.
const FeedbackDelay = 700 * time.Millisecond

// Settings are the quiz options shared by every run from the picker.
type Settings struct {
	Rand       grouping.RandomSource
	MinOptions int
	MaxOptions int
}

// PlayScreen asks every word of a group once.
type PlayScreen struct {
	group    *grouping.Group
	settings Settings
	session  *quiz.Session
	choice   components.MultiChoice

	showingFeedback    bool
	showingQuitConfirm bool
	last               quiz.Answer
}

var _ screen.Screen = (*PlayScreen)(nil)
var _ screen.KeyHintProvider = (*PlayScreen)(nil)
var _ screen.CapturesEsc = (*PlayScreen)(nil)

// New starts a quiz over g with freshly shuffled questions.
func New(g *grouping.Group, settings Settings) *PlayScreen {
	if settings.Rand == nil {
		settings.Rand = quiz.NewRand()
	}
	questions := quiz.BuildAll(g, settings.Rand, settings.MinOptions, settings.MaxOptions)
	s := &PlayScreen{
		group:    g,
		settings: settings,
		session:  quiz.NewSession(g.ID, questions),
	}
	s.loadQuestion()
	return s
}

// Session exposes the running session.
func (s *PlayScreen) Session() *quiz.Session {
	return s.session
}

func (s *PlayScreen) Init() tea.Cmd {
	if s.session.Done() {
		return s.finish()
	}
	return nil
}

func (s *PlayScreen) Title() string {
	return grouping.FormatLabels(s.group.StageLabels)
}

func (s *PlayScreen) CapturesEsc() bool {
	return true
}

func (s *PlayScreen) KeyHints() []layout.KeyHint {
	switch {
	case s.showingQuitConfirm:
		return []layout.KeyHint{
			{Key: "Y", Description: "End quiz"},
			{Key: "N", Description: "Keep going"},
		}
	case s.showingFeedback:
		return []layout.KeyHint{
			{Key: "any key", Description: "Continue"},
		}
	}
	return []layout.KeyHint{
		{Key: "1-9", Description: "Answer"},
		{Key: "↑↓", Description: "Move"},
		{Key: "Enter", Description: "Submit"},
		{Key: "Esc", Description: "Quit"},
	}
}

func (s *PlayScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case feedbackDoneMsg:
		if s.showingFeedback && msg.Question == len(s.session.Answers)-1 && !s.showingQuitConfirm {
			return s, s.advance()
		}
		return s, nil

	case tea.KeyMsg:
		return s.handleKey(msg)
	}
	return s, nil
}

func (s *PlayScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	if s.showingQuitConfirm {
		switch key {
		case "y", "Y":
			s.showingQuitConfirm = false
			return s, s.finish()
		case "n", "N", "esc":
			s.showingQuitConfirm = false
		}
		return s, nil
	}

	if key == "esc" {
		if len(s.session.Answers) == 0 {
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
		s.showingQuitConfirm = true
		return s, nil
	}

	if s.showingFeedback {
		return s, s.advance()
	}

	var cmd tea.Cmd
	s.choice, cmd = s.choice.Update(msg)
	if !s.choice.Submitted {
		return s, cmd
	}

	answer, err := s.session.Submit(s.choice.ChosenIndex)
	if err != nil {
		return s, nil
	}
	s.last = answer
	s.showingFeedback = true

	if answer.Correct {
		idx := len(s.session.Answers) - 1
		return s, tea.Tick(FeedbackDelay, func(time.Time) tea.Msg {
			return feedbackDoneMsg{Question: idx}
		})
	}
	return s, nil
}

// advance leaves the feedback view for the next question or the summary.
func (s *PlayScreen) advance() tea.Cmd {
	s.showingFeedback = false
	if s.session.Done() {
		return s.finish()
	}
	s.loadQuestion()
	return nil
}

func (s *PlayScreen) loadQuestion() {
	q, ok := s.session.Current()
	if !ok {
		return
	}
	labels := make([]string, len(q.Options))
	for i, o := range q.Options {
		labels[i] = o.Translation
	}
	s.choice = components.NewMultiChoice(q.Prompt, labels, q.AnswerIndex)
}

// finish swaps this screen for the summary.
func (s *PlayScreen) finish() tea.Cmd {
	g, settings := s.group, s.settings
	sum := summary.New(s.session.Summary(), g, func() screen.Screen {
		return New(g, settings)
	})
	return func() tea.Msg { return router.ReplaceScreenMsg{Screen: sum} }
}
