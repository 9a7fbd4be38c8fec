package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/quizdeck/internal/ui/theme"
)

// ChoiceList renders the choices of one question. It holds no state of its
// own; the quiz controller decides what is selected and revealed.
type ChoiceList struct {
	Choices      []string
	Explanations []string
	Answer       int
	Selected     int
	HasSelection bool
	Revealed     bool
	Width        int
}

// View renders the numbered choices. Once revealed, the correct choice is
// green, a wrong selection red, and the rest dimmed.
func (c ChoiceList) View() string {
	var b strings.Builder
	for i, choice := range c.Choices {
		marker := "  "
		if c.HasSelection && i == c.Selected {
			marker = "▸ "
		}
		line := fmt.Sprintf("%s%d. %s", marker, i+1, choice)
		b.WriteString(c.styleFor(i).Width(c.Width).Render(line))
		b.WriteString("\n")
	}
	return b.String()
}

// ExplanationsView renders the per-choice explanations after reveal.
func (c ChoiceList) ExplanationsView() string {
	if !c.Revealed {
		return ""
	}
	var b strings.Builder
	for i := range c.Choices {
		text := ""
		if i < len(c.Explanations) {
			text = c.Explanations[i]
		}
		style := theme.Muted
		switch {
		case i == c.Answer:
			style = lipgloss.NewStyle().Foreground(theme.Success)
		case c.HasSelection && i == c.Selected:
			style = lipgloss.NewStyle().Foreground(theme.Error)
		}
		b.WriteString(style.Width(c.Width).Render(fmt.Sprintf("%d. %s", i+1, text)))
		b.WriteString("\n")
	}
	return b.String()
}

func (c ChoiceList) styleFor(i int) lipgloss.Style {
	selected := c.HasSelection && i == c.Selected
	if !c.Revealed {
		if selected {
			return theme.Selected
		}
		return theme.Unselected
	}
	switch {
	case i == c.Answer:
		return theme.Correct
	case selected:
		return theme.Incorrect
	default:
		return theme.Muted
	}
}
