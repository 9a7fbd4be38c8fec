package quiz

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/quizdeck/internal/ui/components"
	"github.com/abhisek/quizdeck/internal/ui/layout"
	"github.com/abhisek/quizdeck/internal/ui/theme"
)

func (s *QuizScreen) View(width, height int) string {
	snap := s.ctrl.Snapshot()
	if !snap.HasQuestion {
		return ""
	}
	q := snap.Question
	cardWidth := layout.CardWidth(width)

	var b strings.Builder

	progress := float64(snap.Index) / float64(snap.Total)
	if snap.ExplanationRevealed {
		progress = float64(snap.Index+1) / float64(snap.Total)
	}
	b.WriteString(components.NewProgressBar(
		fmt.Sprintf("%d / %d", snap.Index+1, snap.Total), progress, false, cardWidth).View())
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(cardWidth).
		Foreground(theme.Text).
		Bold(true).
		Render(q.Question))
	b.WriteString("\n\n")

	choices := components.ChoiceList{
		Choices:      q.Choices,
		Explanations: q.Explanations,
		Answer:       q.Answer,
		Selected:     snap.Selected,
		HasSelection: snap.HasSelection,
		Revealed:     snap.ExplanationRevealed,
		Width:        cardWidth,
	}
	b.WriteString(choices.View())
	b.WriteString("\n")

	if snap.ExplanationRevealed {
		if rec, ok := snap.Current(); ok {
			if rec.Correct {
				b.WriteString(theme.Correct.Render("Correct!"))
			} else {
				b.WriteString(theme.Incorrect.Render(fmt.Sprintf("Not quite. The answer is %d.", q.Answer+1)))
			}
			b.WriteString("\n\n")
		}
		b.WriteString(choices.ExplanationsView())
		b.WriteString("\n")
	}

	next := "Next"
	if snap.IsLast {
		next = "Results"
	}
	b.WriteString(components.ButtonRow(
		components.NewButton("Check", "enter", snap.CanReveal),
		components.NewButton(next, "enter", snap.CanAdvance),
	))

	return lipgloss.PlaceHorizontal(width, lipgloss.Center, "\n"+b.String())
}
