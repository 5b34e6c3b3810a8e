package summary

import (
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/Takatakatake/Esperanto-words-4choice-quizzes/internal/grouping"
	"github.com/Takatakatake/Esperanto-words-4choice-quizzes/internal/pos"
	"github.com/Takatakatake/Esperanto-words-4choice-quizzes/internal/quiz"
	"github.com/Takatakatake/Esperanto-words-4choice-quizzes/internal/router"
	"github.com/Takatakatake/Esperanto-words-4choice-quizzes/internal/screen"
)

func testGroup() *grouping.Group {
	return &grouping.Group{
		ID:           "noun:beginner_1:g1",
		PartOfSpeech: pos.Noun,
		StageLabels:  []string{"beginner_1"},
		Entries: []*grouping.Entry{
			{Text: "hundo", Translation: "犬"},
			{Text: "kato", Translation: "猫"},
		},
	}
}

func testSummary() quiz.Summary {
	g := testGroup()
	return quiz.Summary{
		SessionID:      "s1",
		GroupID:        g.ID,
		Duration:       95 * time.Second,
		TotalQuestions: 14,
		TotalCorrect:   11,
		Accuracy:       float64(11) / float64(14),
		BestStreak:     6,
		Missed: []quiz.Answer{{
			Question: quiz.Question{Prompt: "kato", AnswerIndex: 1, Options: g.Entries},
			Chosen:   0,
		}},
	}
}

func TestSummaryScreen_Title(t *testing.T) {
	s := New(testSummary(), testGroup(), nil)
	if s.Title() != "Result" {
		t.Errorf("Title = %q, want %q", s.Title(), "Result")
	}
}

func TestSummaryScreen_Display(t *testing.T) {
	s := New(testSummary(), testGroup(), nil)
	view := s.View(80, 24)
	for _, want := range []string{"1:35", "Accuracy: 79%", "Best streak: 6", "kato", "猫", "Noun · Beginner 1"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestSummaryScreen_PerfectRun(t *testing.T) {
	sum := testSummary()
	sum.TotalCorrect = sum.TotalQuestions
	sum.Missed = nil
	view := New(sum, nil, nil).View(80, 24)
	if !strings.Contains(view, "Perfekte!") {
		t.Error("expected perfect-run title")
	}
	if strings.Contains(view, "To review") {
		t.Error("did not expect a review list")
	}
}

func TestSummaryScreen_Navigation_Enter(t *testing.T) {
	s := New(testSummary(), testGroup(), nil)
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a command on Enter (pop)")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Error("expected PopScreenMsg")
	}
}

func TestSummaryScreen_Navigation_Esc(t *testing.T) {
	s := New(testSummary(), testGroup(), nil)
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if cmd == nil {
		t.Error("expected a command on Esc (pop)")
	}
}

type retryScreen struct{}

func (retryScreen) Init() tea.Cmd                           { return nil }
func (r retryScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) { return r, nil }
func (retryScreen) View(int, int) string                    { return "" }
func (retryScreen) Title() string                           { return "retry" }

func TestSummaryScreen_Retry(t *testing.T) {
	s := New(testSummary(), testGroup(), func() screen.Screen { return retryScreen{} })
	_, cmd := s.Update(tea.KeyPressMsg{Code: 'r', Text: "r"})
	if cmd == nil {
		t.Fatal("expected a command on r")
	}
	msg, ok := cmd().(router.ReplaceScreenMsg)
	if !ok {
		t.Fatalf("expected ReplaceScreenMsg, got %T", cmd())
	}
	if msg.Screen.Title() != "retry" {
		t.Errorf("replacement title = %q", msg.Screen.Title())
	}
}

func TestSummaryScreen_RetryDisabled(t *testing.T) {
	s := New(testSummary(), testGroup(), nil)
	if _, cmd := s.Update(tea.KeyPressMsg{Code: 'r', Text: "r"}); cmd != nil {
		t.Error("expected no command without a retry function")
	}
}

func TestSummaryScreen_KeyHints(t *testing.T) {
	if n := len(New(testSummary(), nil, nil).KeyHints()); n != 2 {
		t.Errorf("KeyHints length = %d, want 2", n)
	}
	retry := func() screen.Screen { return retryScreen{} }
	if n := len(New(testSummary(), nil, retry).KeyHints()); n != 3 {
		t.Errorf("KeyHints length = %d, want 3", n)
	}
}
