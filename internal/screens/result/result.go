package result

import (
	"fmt"
	"strings"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/quizdeck/internal/quiz"
	"github.com/abhisek/quizdeck/internal/router"
	"github.com/abhisek/quizdeck/internal/screen"
	"github.com/abhisek/quizdeck/internal/ui/components"
	"github.com/abhisek/quizdeck/internal/ui/layout"
	"github.com/abhisek/quizdeck/internal/ui/theme"
)

var (
	retryKey = key.NewBinding(key.WithKeys("r"))
	quitKey  = key.NewBinding(key.WithKeys("q"))
)

// ResultScreen shows the summary of a completed session.
type ResultScreen struct {
	ctrl  *quiz.Controller
	retry func() screen.Screen
	menu  components.Menu
}

var _ screen.Screen = (*ResultScreen)(nil)
var _ screen.KeyHintProvider = (*ResultScreen)(nil)

// New creates a ResultScreen. retry builds the screen shown after the
// controller has been restarted.
func New(ctrl *quiz.Controller, retry func() screen.Screen) *ResultScreen {
	s := &ResultScreen{ctrl: ctrl, retry: retry}
	s.menu = components.NewMenu([]components.MenuItem{
		{Label: "Try again", Action: s.doRetry},
		{Label: "Quit", Action: func() tea.Cmd { return tea.Quit }},
	})
	return s
}

func (s *ResultScreen) Init() tea.Cmd {
	return nil
}

func (s *ResultScreen) Title() string {
	return "Results"
}

func (s *ResultScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "r", Description: "Try again"},
		{Key: "q", Description: "Quit"},
		{Key: "↑↓ Enter", Description: "Menu"},
	}
}

func (s *ResultScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}
	switch {
	case key.Matches(kmsg, retryKey):
		return s, s.doRetry()
	case key.Matches(kmsg, quitKey):
		return s, tea.Quit
	}

	var cmd tea.Cmd
	s.menu, cmd = s.menu.Update(msg)
	return s, cmd
}

func (s *ResultScreen) doRetry() tea.Cmd {
	if !s.ctrl.Retry() {
		return nil
	}
	next := s.retry()
	return func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: next}
	}
}

func (s *ResultScreen) View(width, height int) string {
	st := s.ctrl.Stats()
	cardWidth := layout.CardWidth(width)

	var b strings.Builder
	b.WriteString(theme.Title.Width(cardWidth).Render("Results"))
	b.WriteString("\n\n")

	row := func(label, value string, style lipgloss.Style) {
		b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Width(16).Render(label))
		b.WriteString(style.Render(value))
		b.WriteString("\n")
	}
	row("Questions", fmt.Sprintf("%d", st.Total), theme.Body.Bold(true))
	row("Correct", fmt.Sprintf("%d", st.Correct), theme.Correct)
	row("Wrong", fmt.Sprintf("%d", st.Wrong), theme.Incorrect)
	row("Score", fmt.Sprintf("%d%%", st.Percent), lipgloss.NewStyle().Foreground(theme.Primary).Bold(true))
	row("Time", fmt.Sprintf("%ds", st.ElapsedSeconds), theme.Body.Bold(true))
	b.WriteString("\n")

	b.WriteString(components.NewProgressBar("", float64(st.Percent)/100, true, cardWidth).View())
	b.WriteString("\n\n")

	b.WriteString(theme.Muted.Render("Review"))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", cardWidth)))
	b.WriteString("\n")
	for i, item := range s.ctrl.Review() {
		mark, style := "✓", theme.Correct
		if !item.Answer.Correct {
			mark, style = "✗", theme.Incorrect
		}
		line := fmt.Sprintf("%s %d. %s", mark, i+1, item.Question.Question)
		b.WriteString(style.Width(cardWidth).MaxHeight(1).Render(line))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(s.menu.View())

	return lipgloss.PlaceHorizontal(width, lipgloss.Center, "\n"+b.String())
}
