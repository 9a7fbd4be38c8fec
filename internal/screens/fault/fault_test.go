package fault

import (
	"errors"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/quizdeck/internal/router"
	"github.com/abhisek/quizdeck/internal/screen"
)

type stubScreen struct{}

func (s *stubScreen) Init() tea.Cmd                           { return nil }
func (s *stubScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) { return s, nil }
func (s *stubScreen) View(int, int) string                    { return "" }
func (s *stubScreen) Title() string                           { return "Start" }

func TestFaultScreen_ShowsError(t *testing.T) {
	s := New(errors.New("fetch questions: 404 Not Found"), nil)
	view := s.View(80, 24)

	assert.Contains(t, view, "Something went wrong")
	assert.Contains(t, view, "404 Not Found")
	assert.Equal(t, "Error", s.Title())
}

func TestFaultScreen_Reload(t *testing.T) {
	fresh := &stubScreen{}
	s := New(errors.New("boom"), func() screen.Screen { return fresh })

	_, cmd := s.Update(tea.KeyPressMsg{Code: 'r', Text: "r"})
	require.NotNil(t, cmd)

	msg, ok := cmd().(router.ResetScreenMsg)
	require.True(t, ok, "expected ResetScreenMsg")
	assert.Same(t, fresh, msg.Screen)
}

func TestFaultScreen_ReloadWithoutFactory(t *testing.T) {
	s := New(errors.New("boom"), nil)
	_, cmd := s.Update(tea.KeyPressMsg{Code: 'r', Text: "r"})
	assert.Nil(t, cmd)
	assert.Len(t, s.KeyHints(), 1)
}

func TestFaultScreen_Quit(t *testing.T) {
	s := New(errors.New("boom"), nil)
	_, cmd := s.Update(tea.KeyPressMsg{Code: 'q', Text: "q"})
	require.NotNil(t, cmd)
	_, ok := cmd().(tea.QuitMsg)
	assert.True(t, ok)
}

func TestFaultScreen_HintsIncludeReload(t *testing.T) {
	s := New(errors.New("boom"), func() screen.Screen { return &stubScreen{} })
	hints := s.KeyHints()
	require.Len(t, hints, 2)
	assert.True(t, strings.EqualFold(hints[0].Key, "r"))
}
