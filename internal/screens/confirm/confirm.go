package confirm

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

var (
	yesKey = key.NewBinding(key.WithKeys("y", "Y"))
	noKey  = key.NewBinding(key.WithKeys("n", "N"))
)

// ConfirmScreen is a yes/no dialog pushed over another screen. No pops back
// to the screen underneath; Esc does the same through the root model.
type ConfirmScreen struct {
	question string
	note     string
	onYes    func() tea.Cmd
}

var _ screen.Screen = (*ConfirmScreen)(nil)
var _ screen.KeyHintProvider = (*ConfirmScreen)(nil)

// New creates a ConfirmScreen. onYes runs when the user accepts.
func New(question, note string, onYes func() tea.Cmd) *ConfirmScreen {
	return &ConfirmScreen{question: question, note: note, onYes: onYes}
}

func (s *ConfirmScreen) Init() tea.Cmd {
	return nil
}

func (s *ConfirmScreen) Title() string {
	return "Confirm"
}

func (s *ConfirmScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Y", Description: "Yes"},
		{Key: "N/Esc", Description: "No"},
	}
}

func (s *ConfirmScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}
	switch {
	case key.Matches(kmsg, yesKey):
		if s.onYes == nil {
			return s, nil
		}
		return s, s.onYes()
	case key.Matches(kmsg, noKey):
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}
	return s, nil
}

func (s *ConfirmScreen) View(width, height int) string {
	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(s.question))
	b.WriteString("\n")
	if s.note != "" {
		b.WriteString(theme.Hint.Render(s.note))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Error).Render("[Y] Yes"))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Primary).Render("[N] No, go back"))
	return layout.Centered(width, height, b.String())
}
