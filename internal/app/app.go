package app

import (
	"fmt"
	"os"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"go.uber.org/zap"

	"github.com/abhisek/quizdeck/internal/question"
	"github.com/abhisek/quizdeck/internal/router"
	"github.com/abhisek/quizdeck/internal/screen"
	"github.com/abhisek/quizdeck/internal/screens/fault"
	"github.com/abhisek/quizdeck/internal/screens/start"
	"github.com/abhisek/quizdeck/internal/ui/layout"
)

// Options configures a run of the quiz.
type Options struct {
	Source  question.Source
	Timeout time.Duration
	Logger  *zap.Logger
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router   *router.Router
	reload   func() screen.Screen
	newFault func(err error, reload func() screen.Screen) screen.Screen
	logger   *zap.Logger
	width    int
	height   int
}

// newAppModel creates a new AppModel starting at the load screen.
func newAppModel(opts Options) AppModel {
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	reload := func() screen.Screen {
		return start.New(start.Deps{
			Source:  opts.Source,
			Timeout: opts.Timeout,
			Logger:  opts.Logger,
		})
	}
	return newModel(reload(), reload, opts.Logger)
}

func newModel(initial screen.Screen, reload func() screen.Screen, logger *zap.Logger) AppModel {
	return AppModel{
		router: router.New(initial),
		reload: reload,
		newFault: func(err error, reload func() screen.Screen) screen.Screen {
			return fault.New(err, reload)
		},
		logger: logger,
	}
}

func (m AppModel) Init() tea.Cmd {
	if active := m.router.Active(); active != nil {
		return active.Init()
	}
	return nil
}

func (m AppModel) Update(msg tea.Msg) (model tea.Model, cmd tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
		}
	}

	defer func() {
		if r := recover(); r != nil {
			model, cmd = m, m.fail("update", r)
		}
	}()
	return m, m.router.Update(msg)
}

// fail replaces the whole screen stack with the fault screen.
func (m AppModel) fail(phase string, r any) tea.Cmd {
	err := fmt.Errorf("%s: %v", phase, r)
	m.logger.Error("recovered from panic",
		zap.String("screen", m.title()),
		zap.Error(err),
		zap.Stack("stack"))
	return m.router.Reset(m.newFault(err, m.reload))
}

func (m AppModel) title() string {
	if active := m.router.Active(); active != nil {
		return active.Title()
	}
	return ""
}

func (m AppModel) View() tea.View {
	v := tea.NewView(m.content())
	v.AltScreen = true
	return v
}

func (m AppModel) content() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	if layout.IsTooSmall(m.width, m.height) {
		return layout.RenderMinSizeMessage(m.width, m.height)
	}
	return m.render()
}

// render draws the frame. A panicking screen is swapped for the fault
// screen and drawn once more; if that fails too, only the error is shown.
func (m AppModel) render() string {
	frame, err := m.tryRender()
	if err == nil {
		return frame
	}
	m.fail("view", err)

	frame, err = m.tryRender()
	if err != nil {
		m.logger.Error("fault screen failed to render", zap.Error(err))
		return layout.Centered(m.width, m.height, err.Error())
	}
	return frame
}

func (m AppModel) tryRender() (frame string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%v", r)
		}
	}()

	active := m.router.Active()
	status := ""
	if sp, ok := active.(screen.StatusProvider); ok {
		status = sp.Status()
	}
	header := layout.RenderHeader(m.title(), status, m.width)

	var footerHints []layout.KeyHint
	if kp, ok := active.(screen.KeyHintProvider); ok {
		footerHints = kp.KeyHints()
	}
	footerHints = append(footerHints, layout.KeyHint{Key: "Ctrl+C", Description: "Exit"})
	footer := layout.RenderFooter(footerHints, m.width)

	contentHeight := max(0, m.height-lipgloss.Height(header)-lipgloss.Height(footer))
	content := m.router.View(m.width, contentHeight)
	return layout.RenderFrame(header, content, footer, m.width, m.height), nil
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
