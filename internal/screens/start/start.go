package start

import (
	"context"
	"fmt"
	"strings"
	"time"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"go.uber.org/zap"

	"github.com/abhisek/quizdeck/internal/question"
	"github.com/abhisek/quizdeck/internal/quiz"
	"github.com/abhisek/quizdeck/internal/router"
	"github.com/abhisek/quizdeck/internal/screen"
	"github.com/abhisek/quizdeck/internal/screens/fault"
	quizscreen "github.com/abhisek/quizdeck/internal/screens/quiz"
	"github.com/abhisek/quizdeck/internal/ui/components"
	"github.com/abhisek/quizdeck/internal/ui/layout"
	"github.com/abhisek/quizdeck/internal/ui/theme"
)

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

const spinnerInterval = 100 * time.Millisecond

var quitKey = key.NewBinding(key.WithKeys("q", "esc"))

// Deps holds what the start screen needs to build a session.
type Deps struct {
	Source  question.Source
	Timeout time.Duration
	Logger  *zap.Logger
}

// loadedMsg carries the outcome of the question fetch.
type loadedMsg struct {
	Questions []question.Question
	Err       error
}

// spinnerTickMsg advances the loading spinner.
type spinnerTickMsg time.Time

// StartScreen loads the question set and offers to begin the quiz.
type StartScreen struct {
	deps    Deps
	store   *question.Store
	ctrl    *quiz.Controller
	loading bool
	frame   int
	menu    components.Menu
}

var _ screen.Screen = (*StartScreen)(nil)
var _ screen.KeyHintProvider = (*StartScreen)(nil)

// New creates a StartScreen with a fresh store over deps.Source.
func New(deps Deps) *StartScreen {
	if deps.Logger == nil {
		deps.Logger = zap.NewNop()
	}
	if deps.Source == nil {
		deps.Source = question.EmbeddedSource{}
	}
	opts := []question.Option{question.WithLogger(deps.Logger)}
	if deps.Timeout > 0 {
		opts = append(opts, question.WithTimeout(deps.Timeout))
	}
	return &StartScreen{
		deps:    deps,
		store:   question.NewStore(deps.Source, opts...),
		loading: true,
	}
}

func (s *StartScreen) Init() tea.Cmd {
	return tea.Batch(s.load(), spinnerTick())
}

func (s *StartScreen) Title() string {
	return "Start"
}

func (s *StartScreen) KeyHints() []layout.KeyHint {
	if s.loading {
		return nil
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "q", Description: "Quit"},
	}
}

func (s *StartScreen) load() tea.Cmd {
	store := s.store
	return func() tea.Msg {
		err := store.Load(context.Background())
		return loadedMsg{Questions: store.Questions(), Err: err}
	}
}

func (s *StartScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case spinnerTickMsg:
		if !s.loading {
			return s, nil
		}
		s.frame = (s.frame + 1) % len(spinnerFrames)
		return s, spinnerTick()

	case loadedMsg:
		s.loading = false
		if msg.Err != nil {
			deps := s.deps
			f := fault.New(msg.Err, func() screen.Screen { return New(deps) })
			return s, func() tea.Msg { return router.ReplaceScreenMsg{Screen: f} }
		}
		s.ctrl = quiz.NewController(msg.Questions, quiz.WithLogger(s.deps.Logger))
		s.menu = components.NewMenu([]components.MenuItem{
			{Label: "Start quiz", Action: s.begin},
			{Label: "Quit", Action: func() tea.Cmd { return tea.Quit }},
		})
		return s, nil

	case tea.KeyMsg:
		// Nothing is interactive until the questions are in.
		if s.loading {
			return s, nil
		}
		if key.Matches(msg, quitKey) {
			return s, tea.Quit
		}
		var cmd tea.Cmd
		s.menu, cmd = s.menu.Update(msg)
		return s, cmd
	}
	return s, nil
}

func (s *StartScreen) begin() tea.Cmd {
	if !s.ctrl.Start() {
		return nil
	}
	next := quizscreen.New(s.ctrl)
	return func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: next}
	}
}

func (s *StartScreen) View(width, height int) string {
	var b strings.Builder

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, renderBanner(width)))
	b.WriteString("\n\n")
	b.WriteString(theme.Subtitle.Width(width).Render(s.deps.Source.String()))
	b.WriteString("\n\n")

	if s.loading {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render(spinnerFrames[s.frame] + " Loading questions..."))
		return b.String()
	}

	b.WriteString(theme.Body.Width(width).Align(lipgloss.Center).
		Render(fmt.Sprintf("%d questions ready", s.ctrl.Questions())))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.menu.View()))
	return b.String()
}

func spinnerTick() tea.Cmd {
	return tea.Tick(spinnerInterval, func(t time.Time) tea.Msg {
		return spinnerTickMsg(t)
	})
}
