package picker

import (
	"fmt"
	"math/rand/v2"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/Takatakatake/Esperanto-words-4choice-quizzes/internal/grouping"
	"github.com/Takatakatake/Esperanto-words-4choice-quizzes/internal/pos"
	"github.com/Takatakatake/Esperanto-words-4choice-quizzes/internal/router"
	"github.com/Takatakatake/Esperanto-words-4choice-quizzes/internal/screens/play"
)

func testGroups() []*grouping.Group {
	mk := func(tag pos.Tag, labels []string, n int) *grouping.Group {
		g := &grouping.Group{
			ID:           grouping.GroupID(tag, labels, 1),
			PartOfSpeech: tag,
			StageLabels:  labels,
		}
		for i := 0; i < n; i++ {
			g.Entries = append(g.Entries, &grouping.Entry{Text: fmt.Sprintf("%s%d", tag, i), Translation: fmt.Sprint(i)})
		}
		return g
	}
	return []*grouping.Group{
		mk(pos.Noun, []string{"beginner_1"}, 22),
		mk(pos.Noun, []string{"advanced_1"}, 25),
		mk(pos.Verb, []string{"beginner_1", "beginner_2"}, 24),
	}
}

func newPicker() *PickerScreen {
	return New(testGroups(), play.Settings{Rand: rand.New(rand.NewPCG(3, 4)), MinOptions: 2, MaxOptions: 4})
}

func typeText(p *PickerScreen, s string) {
	for _, r := range s {
		p.Update(tea.KeyPressMsg{Code: r, Text: string(r)})
	}
}

func TestPicker_ListsAllGroups(t *testing.T) {
	p := newPicker()
	if len(p.Shown()) != 3 {
		t.Fatalf("shown = %d, want 3", len(p.Shown()))
	}
	view := p.View(100, 30)
	for _, want := range []string{"3 of 3 groups · 71 words", "Beginner 1-2", "verb:beginner_1+beginner_2:g1"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestPicker_FilterNarrowsList(t *testing.T) {
	p := newPicker()
	typeText(p, "verb")
	if got := len(p.Shown()); got != 1 {
		t.Fatalf("shown = %d, want 1", got)
	}
	if p.Shown()[0].PartOfSpeech != pos.Verb {
		t.Errorf("shown %q, want a verb group", p.Shown()[0].ID)
	}

	p.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if got := len(p.Shown()); got != 3 {
		t.Errorf("after Esc shown = %d, want 3", got)
	}
}

func TestPicker_NoMatch(t *testing.T) {
	p := newPicker()
	typeText(p, "zzz")
	if !strings.Contains(p.View(100, 30), "no group matches") {
		t.Error("expected empty-state message")
	}
	if _, cmd := p.Update(tea.KeyPressMsg{Code: tea.KeyEnter}); cmd != nil {
		t.Error("expected Enter on an empty list to do nothing")
	}
}

func TestPicker_EnterStartsQuiz(t *testing.T) {
	p := newPicker()
	p.Update(tea.KeyPressMsg{Code: tea.KeyDown})

	_, cmd := p.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a command on Enter")
	}
	msg, ok := cmd().(router.PushScreenMsg)
	if !ok {
		t.Fatalf("expected PushScreenMsg, got %T", cmd())
	}
	ps, ok := msg.Screen.(*play.PlayScreen)
	if !ok {
		t.Fatalf("expected play screen, got %T", msg.Screen)
	}
	if got := ps.Session().GroupID; got != "noun:advanced_1:g1" {
		t.Errorf("quiz group = %q, want noun:advanced_1:g1", got)
	}
}

func TestPicker_Title(t *testing.T) {
	if newPicker().Title() != "Groups" {
		t.Error("unexpected title")
	}
}
