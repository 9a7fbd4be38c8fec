package screen

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/quizdeck/internal/ui/layout"
)

// Screen is one page of the quiz UI.
type Screen interface {
	// Init returns an initial command when the screen becomes active.
	Init() tea.Cmd

	// Update handles messages and returns the updated screen and command.
	Update(msg tea.Msg) (Screen, tea.Cmd)

	// View renders the screen body (excluding header and footer).
	View(width, height int) string

	// Title returns the screen name for the header.
	Title() string
}

// KeyHintProvider is implemented by screens that supply their own footer
// key hints.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}

// StatusProvider is implemented by screens that show a status string on the
// right side of the header, such as question progress or a timer.
type StatusProvider interface {
	Status() string
}

// Resumer is implemented by screens that restart background work, such as a
// ticking timer, when a screen pushed over them is popped.
type Resumer interface {
	Resume() tea.Cmd
}
