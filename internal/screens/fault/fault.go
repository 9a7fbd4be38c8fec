package fault

import (
	"strings"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/quizdeck/internal/router"
	"github.com/abhisek/quizdeck/internal/screen"
	"github.com/abhisek/quizdeck/internal/ui/layout"
	"github.com/abhisek/quizdeck/internal/ui/theme"
)

const message = "Something went wrong. Press r to reload the quiz."

var (
	reloadKey = key.NewBinding(key.WithKeys("r"))
	quitKey   = key.NewBinding(key.WithKeys("q", "esc"))
)

// FaultScreen is shown in place of whatever failed. It displays the error
// and offers a full reload.
type FaultScreen struct {
	err    error
	reload func() screen.Screen
}

var _ screen.Screen = (*FaultScreen)(nil)
var _ screen.KeyHintProvider = (*FaultScreen)(nil)

// New creates a FaultScreen for err. reload builds a fresh first screen;
// when nil, only quitting is offered.
func New(err error, reload func() screen.Screen) *FaultScreen {
	return &FaultScreen{err: err, reload: reload}
}

// Err returns the error being displayed.
func (s *FaultScreen) Err() error {
	return s.err
}

func (s *FaultScreen) Init() tea.Cmd {
	return nil
}

func (s *FaultScreen) Title() string {
	return "Error"
}

func (s *FaultScreen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{{Key: "q", Description: "Quit"}}
	if s.reload != nil {
		hints = append([]layout.KeyHint{{Key: "r", Description: "Reload"}}, hints...)
	}
	return hints
}

func (s *FaultScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}
	switch {
	case key.Matches(kmsg, reloadKey) && s.reload != nil:
		next := s.reload()
		return s, func() tea.Msg {
			return router.ResetScreenMsg{Screen: next}
		}
	case key.Matches(kmsg, quitKey):
		return s, tea.Quit
	}
	return s, nil
}

func (s *FaultScreen) View(width, height int) string {
	cardWidth := layout.CardWidth(width)

	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Error).Bold(true).Render("✗ " + message))
	b.WriteString("\n\n")
	if s.err != nil {
		b.WriteString(theme.Muted.Width(cardWidth - 4).Render(s.err.Error()))
	}

	card := theme.Card.Width(cardWidth).BorderForeground(theme.Error).Render(b.String())
	return layout.Centered(width, height, card)
}
