package quiz

import (
	"fmt"
	"sync/atomic"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/bubbles/v2/key"

	qz "github.com/abhisek/quizdeck/internal/quiz"
	"github.com/abhisek/quizdeck/internal/router"
	"github.com/abhisek/quizdeck/internal/screen"
	"github.com/abhisek/quizdeck/internal/screens/confirm"
	"github.com/abhisek/quizdeck/internal/screens/result"
	"github.com/abhisek/quizdeck/internal/ui/layout"
)

// timerTickMsg refreshes the elapsed time shown in the header. Each timer
// loop has its own id; a screen only re-arms ticks from its current loop.
type timerTickMsg struct {
	id   uint64
	at time.Time
}

var timerSeq atomic.Uint64

// QuizScreen presents the current question of a running session and maps
// key presses onto controller transitions.
type QuizScreen struct {
	ctrl    *qz.Controller
	timerID uint64
}

var _ screen.Screen = (*QuizScreen)(nil)
var _ screen.KeyHintProvider = (*QuizScreen)(nil)
var _ screen.StatusProvider = (*QuizScreen)(nil)
var _ screen.Resumer = (*QuizScreen)(nil)

// New creates a QuizScreen over a started controller.
func New(ctrl *qz.Controller) *QuizScreen {
	return &QuizScreen{ctrl: ctrl}
}

func (s *QuizScreen) Init() tea.Cmd {
	return s.startTimer()
}

// Resume restarts the timer after the quit dialog is dismissed.
func (s *QuizScreen) Resume() tea.Cmd {
	return s.startTimer()
}

// startTimer begins a new tick loop and orphans any previous one.
func (s *QuizScreen) startTimer() tea.Cmd {
	s.timerID = timerSeq.Add(1)
	return tickCmd(s.timerID)
}

func (s *QuizScreen) Title() string {
	return "Quiz"
}

func (s *QuizScreen) Status() string {
	snap := s.ctrl.Snapshot()
	if !snap.HasQuestion {
		return ""
	}
	st := s.ctrl.Stats()
	return fmt.Sprintf("%d / %d   %s  ", snap.Index+1, snap.Total, layout.FormatElapsed(st.ElapsedSeconds))
}

func (s *QuizScreen) KeyHints() []layout.KeyHint {
	snap := s.ctrl.Snapshot()
	if snap.ExplanationRevealed {
		next := "Next"
		if snap.IsLast {
			next = "Results"
		}
		return []layout.KeyHint{
			{Key: "Enter", Description: next},
			{Key: "q", Description: "Quit"},
		}
	}
	hints := []layout.KeyHint{
		{Key: "1-9", Description: "Choose"},
		{Key: "↑↓", Description: "Move"},
	}
	if snap.CanReveal {
		hints = append(hints, layout.KeyHint{Key: "Enter", Description: "Check"})
	}
	return append(hints, layout.KeyHint{Key: "q", Description: "Quit"})
}

func (s *QuizScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case timerTickMsg:
		if msg.id != s.timerID || s.ctrl.Phase() != qz.PhasePresenting {
			return s, nil
		}
		return s, tickCmd(s.timerID)

	case tea.KeyMsg:
		return s.handleKey(msg)
	}
	return s, nil
}

func (s *QuizScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	if key.Matches(msg, keys.Quit) {
		dialog := confirm.New("End the quiz?", "Answers are not saved.", func() tea.Cmd { return tea.Quit })
		return s, func() tea.Msg { return router.PushScreenMsg{Screen: dialog} }
	}

	snap := s.ctrl.Snapshot()
	if !snap.HasQuestion {
		return s, nil
	}

	// Disabled actions are simply not dispatched.
	switch {
	case snap.CanSelect && key.Matches(msg, keys.Choose):
		idx := int(msg.String()[0] - '1')
		s.ctrl.SelectChoice(idx)

	case snap.CanSelect && key.Matches(msg, keys.Up):
		s.ctrl.SelectChoice(s.step(snap, -1))

	case snap.CanSelect && key.Matches(msg, keys.Down):
		s.ctrl.SelectChoice(s.step(snap, +1))

	case snap.CanReveal && key.Matches(msg, keys.Reveal):
		s.ctrl.Reveal()

	case snap.CanAdvance && key.Matches(msg, keys.Advance):
		s.ctrl.Advance()
		if s.ctrl.Phase() == qz.PhaseCompleted {
			return s, s.showResult()
		}
	}
	return s, nil
}

// step moves the selection by delta, wrapping around. With no selection yet,
// down picks the first choice and up the last.
func (s *QuizScreen) step(snap qz.Snapshot, delta int) int {
	n := snap.Question.NumChoices()
	if !snap.HasSelection {
		if delta > 0 {
			return 0
		}
		return n - 1
	}
	return (snap.Selected + delta + n) % n
}

func (s *QuizScreen) showResult() tea.Cmd {
	ctrl := s.ctrl
	retry := func() screen.Screen { return New(ctrl) }
	res := result.New(ctrl, retry)
	return func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: res}
	}
}

// tickCmd returns a 1-second tick command for timer loop id.
func tickCmd(id uint64) tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return timerTickMsg{id: id, at: t}
	})
}
