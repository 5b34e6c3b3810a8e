// Package screen defines what the router needs from a full-window view.
package screen

import (
	tea "charm.land/bubbletea/v2"

	"github.com/Takatakatake/Esperanto-words-4choice-quizzes/internal/ui/layout"
)

// Screen defines the interface for all application screens.
type Screen interface {
	// Init returns an initial command when the screen is first created.
	Init() tea.Cmd

	// Update handles messages and returns updated screen + command.
	Update(msg tea.Msg) (Screen, tea.Cmd)

	// View renders the screen content (excluding header/footer).
	View(width, height int) string

	// Title returns the screen name for the header.
	Title() string
}

// KeyHintProvider is an optional interface that screens can implement
// to provide custom footer key hints.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}

// CapturesEsc is implemented by screens that handle Esc themselves, such
// as a quiz asking for confirmation before leaving.
type CapturesEsc interface {
	CapturesEsc() bool
}
