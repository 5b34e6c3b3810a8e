package components

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/Takatakatake/Esperanto-words-4choice-quizzes/internal/ui/theme"
)

// MenuItem represents a single item in a navigation menu.
type MenuItem struct {
	Label    string
	Detail   string
	Action   func() tea.Cmd
	Disabled bool
}

// Menu is a vertical, scrolling list. Only arrow keys navigate so that
// letters can go to a filter input next to it.
type Menu struct {
	Items    []MenuItem
	Selected int

	// Height is the number of visible rows; 0 shows everything.
	Height int
	offset int
}

// NewMenu creates a new menu with the first enabled item selected.
func NewMenu(items []MenuItem) Menu {
	m := Menu{Items: items}
	for i, item := range items {
		if !item.Disabled {
			m.Selected = i
			break
		}
	}
	return m
}

// Update handles keyboard navigation.
func (m Menu) Update(msg tea.Msg) (Menu, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch kmsg.String() {
	case "up":
		m.move(-1, 1)
	case "down":
		m.move(1, 1)
	case "pgup":
		m.move(-1, max(m.Height-1, 1))
	case "pgdown":
		m.move(1, max(m.Height-1, 1))
	case "enter":
		if item, ok := m.Current(); ok && item.Action != nil && !item.Disabled {
			return m, item.Action()
		}
	}

	return m, nil
}

// move steps over enabled items in dir, up to n of them.
func (m *Menu) move(dir, n int) {
	for i := m.Selected + dir; i >= 0 && i < len(m.Items) && n > 0; i += dir {
		if !m.Items[i].Disabled {
			m.Selected = i
			n--
		}
	}
	m.scroll()
}

func (m *Menu) scroll() {
	if m.Height <= 0 {
		m.offset = 0
		return
	}
	if m.Selected < m.offset {
		m.offset = m.Selected
	}
	if m.Selected >= m.offset+m.Height {
		m.offset = m.Selected - m.Height + 1
	}
}

// Current returns the selected item.
func (m Menu) Current() (MenuItem, bool) {
	if m.Selected < 0 || m.Selected >= len(m.Items) {
		return MenuItem{}, false
	}
	return m.Items[m.Selected], true
}

// SetHeight changes the visible window and keeps the selection in view.
func (m *Menu) SetHeight(h int) {
	m.Height = h
	m.scroll()
}

// View renders the visible window of the menu.
func (m Menu) View() string {
	end := len(m.Items)
	if m.Height > 0 {
		end = min(m.offset+m.Height, len(m.Items))
	}

	var b strings.Builder
	for i := m.offset; i < end; i++ {
		item := m.Items[i]
		label := item.Label
		if item.Detail != "" {
			label += "  " + theme.Faded.Render(item.Detail)
		}
		switch {
		case i == m.Selected:
			b.WriteString(theme.Selected.Render("  ▸ ") + lipgloss.NewStyle().Bold(true).Render(label))
		case item.Disabled:
			b.WriteString(theme.Faded.Render("    " + item.Label))
		default:
			b.WriteString(theme.Unselected.Render("    ") + label)
		}
		b.WriteString("\n")
	}
	return b.String()
}
