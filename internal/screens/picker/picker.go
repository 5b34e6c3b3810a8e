// Package picker is the start screen: a filterable list of groups.
package picker

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/Takatakatake/Esperanto-words-4choice-quizzes/internal/grouping"
	"github.com/Takatakatake/Esperanto-words-4choice-quizzes/internal/router"
	"github.com/Takatakatake/Esperanto-words-4choice-quizzes/internal/screen"
	"github.com/Takatakatake/Esperanto-words-4choice-quizzes/internal/screens/play"
	"github.com/Takatakatake/Esperanto-words-4choice-quizzes/internal/ui/components"
	"github.com/Takatakatake/Esperanto-words-4choice-quizzes/internal/ui/layout"
	"github.com/Takatakatake/Esperanto-words-4choice-quizzes/internal/ui/theme"
)

// PickerScreen lists groups and starts a quiz on the chosen one.
type PickerScreen struct {
	groups   []*grouping.Group
	settings play.Settings
	filter   components.FilterInput
	menu     components.Menu
	shown    []*grouping.Group
}

var _ screen.Screen = (*PickerScreen)(nil)
var _ screen.KeyHintProvider = (*PickerScreen)(nil)

// New creates a picker over groups.
func New(groups []*grouping.Group, settings play.Settings) *PickerScreen {
	p := &PickerScreen{
		groups:   groups,
		settings: settings,
		filter:   components.NewFilterInput("filter by pos or stage, e.g. noun:beginner", 64),
	}
	p.refresh()
	return p
}

func (p *PickerScreen) Init() tea.Cmd {
	return p.filter.Init()
}

func (p *PickerScreen) Title() string {
	return "Groups"
}

func (p *PickerScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "type", Description: "Filter"},
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Start"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

// Shown returns the groups matching the current filter.
func (p *PickerScreen) Shown() []*grouping.Group {
	return p.shown
}

func (p *PickerScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "up", "down", "pgup", "pgdown", "enter":
			var cmd tea.Cmd
			p.menu, cmd = p.menu.Update(msg)
			return p, cmd
		case "esc":
			if p.filter.Value() != "" {
				p.filter.Reset()
				p.refresh()
			}
			return p, nil
		}
	}

	before := p.filter.Value()
	var cmd tea.Cmd
	p.filter, cmd = p.filter.Update(msg)
	if p.filter.Value() != before {
		p.refresh()
	}
	return p, cmd
}

// refresh rebuilds the menu from the filter text.
func (p *PickerScreen) refresh() {
	p.shown = grouping.FilterGroups(p.groups, "", p.filter.Value())

	items := make([]components.MenuItem, len(p.shown))
	for i, g := range p.shown {
		items[i] = components.MenuItem{
			Label: fmt.Sprintf("%-18s %-24s", g.PartOfSpeech.DisplayName(), grouping.FormatLabels(g.StageLabels)),
			Detail: fmt.Sprintf("%2d words  %s", g.Size(), g.ID),
			Action: p.start(g),
		}
	}
	height := p.menu.Height
	p.menu = components.NewMenu(items)
	p.menu.SetHeight(height)
}

func (p *PickerScreen) start(g *grouping.Group) func() tea.Cmd {
	return func() tea.Cmd {
		next := play.New(g, p.settings)
		return func() tea.Msg { return router.PushScreenMsg{Screen: next} }
	}
}

func (p *PickerScreen) View(width, height int) string {
	// filter line, counter and blank lines
	p.menu.SetHeight(max(height-5, 3))

	counter := theme.Faded.Render(fmt.Sprintf("%d of %d groups · %d words",
		len(p.shown), len(p.groups), grouping.TotalEntries(p.shown)))

	var body string
	if len(p.shown) == 0 {
		body = theme.Hint.Render("    no group matches")
	} else {
		body = p.menu.View()
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		"  "+p.filter.View(),
		"  "+counter,
		"",
		body,
	)
}
