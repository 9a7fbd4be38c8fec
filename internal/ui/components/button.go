package components

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/quizdeck/internal/ui/theme"
)

// Button is a labelled action that is either enabled or greyed out.
type Button struct {
	Label   string
	Key     string
	Enabled bool
}

// NewButton creates a new button.
func NewButton(label, key string, enabled bool) Button {
	return Button{Label: label, Key: key, Enabled: enabled}
}

// View renders the button.
func (b Button) View() string {
	label := b.Label
	if b.Key != "" {
		label += " [" + b.Key + "]"
	}
	if b.Enabled {
		return theme.ButtonActive.Render(label)
	}
	return theme.ButtonDisabled.Render(label)
}

// ButtonRow lays buttons out side by side with a gap.
func ButtonRow(buttons ...Button) string {
	parts := make([]string, 0, len(buttons)*2)
	for i, b := range buttons {
		if i > 0 {
			parts = append(parts, "  ")
		}
		parts = append(parts, b.View())
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}
