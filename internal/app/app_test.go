package app

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
	"go.uber.org/zap"

	"github.com/abhisek/quizdeck/internal/router"
	"github.com/abhisek/quizdeck/internal/screen"
	"github.com/abhisek/quizdeck/internal/screens/confirm"
	"github.com/abhisek/quizdeck/internal/screens/fault"
	"github.com/abhisek/quizdeck/internal/screens/start"
)

type panicScreen struct {
	onUpdate bool
	onView   bool
}

func (s *panicScreen) Init() tea.Cmd { return nil }
func (s *panicScreen) Title() string { return "Broken" }

func (s *panicScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) {
	if s.onUpdate {
		panic("index out of range")
	}
	return s, nil
}

func (s *panicScreen) View(int, int) string {
	if s.onView {
		panic("nil map")
	}
	return "ok"
}

func reloadStart() screen.Screen { return start.New(start.Deps{}) }

func sized(m AppModel) AppModel {
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 30})
	return updated.(AppModel)
}

func TestAppModel_StartsAtStartScreen(t *testing.T) {
	m := newAppModel(Options{})
	if _, ok := m.router.Active().(*start.StartScreen); !ok {
		t.Fatalf("active screen = %T, want start screen", m.router.Active())
	}
	if m.Init() == nil {
		t.Error("expected Init to kick off loading")
	}
}

func TestAppModel_CtrlCQuits(t *testing.T) {
	m := newAppModel(Options{})
	_, cmd := m.Update(tea.KeyPressMsg{Code: 'c', Mod: tea.ModCtrl})
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected tea.QuitMsg")
	}
}

func TestAppModel_RecoversUpdatePanic(t *testing.T) {
	m := sized(newModel(&panicScreen{onUpdate: true}, reloadStart, zap.NewNop()))

	m.Update(tea.KeyPressMsg{Code: 'x', Text: "x"})

	f, ok := m.router.Active().(*fault.FaultScreen)
	if !ok {
		t.Fatalf("active screen = %T, want fault screen", m.router.Active())
	}
	if !strings.Contains(f.Err().Error(), "index out of range") {
		t.Errorf("unexpected error: %v", f.Err())
	}
}

func TestAppModel_RecoversViewPanic(t *testing.T) {
	m := sized(newModel(&panicScreen{onView: true}, reloadStart, zap.NewNop()))

	content := m.content()
	if !strings.Contains(content, "Something went wrong") {
		t.Error("expected fault screen content")
	}
	if _, ok := m.router.Active().(*fault.FaultScreen); !ok {
		t.Errorf("active screen = %T, want fault screen", m.router.Active())
	}
}

func TestAppModel_TooSmall(t *testing.T) {
	m := newAppModel(Options{})
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 40, Height: 10})
	content := updated.(AppModel).content()
	if !strings.Contains(content, "Terminal too small") {
		t.Error("expected too-small message")
	}
}

func TestAppModel_FooterShowsScreenHints(t *testing.T) {
	m := sized(newModel(fault.New(nil, reloadStart), reloadStart, zap.NewNop()))
	content := m.content()
	for _, want := range []string{"Reload", "Exit"} {
		if !strings.Contains(content, want) {
			t.Errorf("expected %q in footer", want)
		}
	}
}

func TestAppModel_FaultViewPanicDoesNotRecurse(t *testing.T) {
	m := sized(newModel(&panicScreen{onView: true}, reloadStart, zap.NewNop()))
	m.newFault = func(error, func() screen.Screen) screen.Screen {
		return &panicScreen{onView: true}
	}

	content := m.content()
	if !strings.Contains(content, "nil map") {
		t.Errorf("expected the error text, got %q", content)
	}
}

func TestAppModel_EscPopsPushedScreen(t *testing.T) {
	base := fault.New(nil, reloadStart)
	m := sized(newModel(base, reloadStart, zap.NewNop()))

	dialog := confirm.New("End the quiz?", "", func() tea.Cmd { return tea.Quit })
	m.Update(router.PushScreenMsg{Screen: dialog})
	if m.router.Depth() != 2 {
		t.Fatalf("depth = %d, want 2", m.router.Depth())
	}

	_, cmd := m.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if cmd == nil {
		t.Fatal("expected a pop command")
	}
	m.Update(cmd())
	if m.router.Depth() != 1 {
		t.Errorf("depth = %d, want 1", m.router.Depth())
	}
	if m.router.Active() != screen.Screen(base) {
		t.Errorf("active = %T, want the base screen", m.router.Active())
	}
}

func TestAppModel_EscAtRootReachesScreen(t *testing.T) {
	m := sized(newModel(fault.New(nil, nil), reloadStart, zap.NewNop()))
	_, cmd := m.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if cmd == nil {
		t.Fatal("expected the fault screen to handle esc")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected tea.QuitMsg")
	}
}
