package app

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/Takatakatake/Esperanto-words-4choice-quizzes/internal/grouping"
	"github.com/Takatakatake/Esperanto-words-4choice-quizzes/internal/router"
	"github.com/Takatakatake/Esperanto-words-4choice-quizzes/internal/screen"
	"github.com/Takatakatake/Esperanto-words-4choice-quizzes/internal/screens/picker"
	"github.com/Takatakatake/Esperanto-words-4choice-quizzes/internal/screens/play"
	"github.com/Takatakatake/Esperanto-words-4choice-quizzes/internal/ui/layout"
)

// Options configures the quiz program.
type Options struct {
	Groups   []*grouping.Group
	Settings play.Settings

	// Status is shown on the right of the header, e.g. "seed 1".
	Status string

	// StartGroupID opens that group's quiz directly; Esc leads back to
	// the picker.
	StartGroupID string
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	status string
	width  int
	height int
}

// newAppModel creates a new AppModel with the picker as root screen.
func newAppModel(opts Options) (AppModel, error) {
	m := AppModel{
		router: router.New(picker.New(opts.Groups, opts.Settings)),
		status: opts.Status,
	}
	if opts.StartGroupID != "" {
		g := grouping.FindGroup(opts.Groups, opts.StartGroupID)
		if g == nil {
			return AppModel{}, fmt.Errorf("unknown group %q", opts.StartGroupID)
		}
		m.router.Push(play.New(g, opts.Settings))
	}
	return m, nil
}

func (m AppModel) Init() tea.Cmd {
	return m.router.Active().Init()
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if c, ok := m.router.Active().(screen.CapturesEsc); ok && c.CapturesEsc() {
				break
			}
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
		}
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
	header := layout.RenderHeader(m.router.Trail(), m.status, m.width)

	footerHints := []layout.KeyHint{
		{Key: "Esc", Description: "Back"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
	if p, ok := active.(screen.KeyHintProvider); ok {
		footerHints = p.KeyHints()
	}
	footer := layout.RenderFooter(footerHints, m.width)

	contentHeight := max(m.height-lipgloss.Height(header)-lipgloss.Height(footer), 0)
	content := m.router.View(m.width, contentHeight)
	v.SetContent(layout.RenderFrame(header, content, footer, m.width, m.height))
	return v
}

// Run starts the Bubble Tea program and blocks until it exits.
func Run(opts Options) error {
	m, err := newAppModel(opts)
	if err != nil {
		return err
	}
	if _, err := tea.NewProgram(m).Run(); err != nil {
		return fmt.Errorf("run quiz: %w", err)
	}
	return nil
}
