package components

import (
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
)

// FilterInput is a single-line text input used to narrow a list.
type FilterInput struct {
	Model textinput.Model
}

// NewFilterInput creates a focused filter input.
func NewFilterInput(placeholder string, charLimit int) FilterInput {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Prompt = "/ "
	if charLimit > 0 {
		ti.CharLimit = charLimit
	}
	ti.Focus()
	return FilterInput{Model: ti}
}

// Init returns the cursor blink command.
func (f FilterInput) Init() tea.Cmd {
	return f.Model.Focus()
}

// Update handles messages.
func (f FilterInput) Update(msg tea.Msg) (FilterInput, tea.Cmd) {
	var cmd tea.Cmd
	f.Model, cmd = f.Model.Update(msg)
	return f, cmd
}

// View renders the input.
func (f FilterInput) View() string {
	return f.Model.View()
}

// Value returns the current text.
func (f FilterInput) Value() string {
	return f.Model.Value()
}

// Reset clears the text.
func (f *FilterInput) Reset() {
	f.Model.Reset()
}
