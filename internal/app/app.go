// Package app hosts the root Bubble Tea model and program loop.
package app

import (
	"context"
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/2210030429cse-tech/learningplatform/internal/quiz"
	"github.com/2210030429cse-tech/learningplatform/internal/router"
	"github.com/2210030429cse-tech/learningplatform/internal/screen"
	"github.com/2210030429cse-tech/learningplatform/internal/screens/home"
	"github.com/2210030429cse-tech/learningplatform/internal/session"
	"github.com/2210030429cse-tech/learningplatform/internal/store"
	"github.com/2210030429cse-tech/learningplatform/internal/tutor"
	"github.com/2210030429cse-tech/learningplatform/internal/ui/layout"
	"github.com/2210030429cse-tech/learningplatform/internal/ui/theme"
)

// Deps carries the wired services the UI runs on.
type Deps struct {
	Session  *session.Session
	Tutor    *tutor.Service
	Engine   *quiz.Engine
	Progress store.ProgressRepo
	Prefs    store.PrefsRepo
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	deps   Deps
	router *router.Router
	width  int
	height int
}

// newAppModel creates a new AppModel with the home screen.
func newAppModel(deps Deps) AppModel {
	homeScreen := home.New(deps.Session, deps.Tutor, deps.Engine, deps.Progress, deps.Prefs)
	return AppModel{
		deps:   deps,
		router: router.New(homeScreen),
	}
}

func (m AppModel) Init() tea.Cmd {
	return nil
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
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
			return m, nil
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	header := layout.RenderHeader(title,
		string(m.deps.Session.Level), string(m.deps.Session.Subject), m.width)

	var footerHints []layout.KeyHint
	if hp, ok := active.(screen.KeyHintProvider); ok {
		footerHints = hp.KeyHints()
	}
	if footerHints == nil {
		footerHints = []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}

	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// Run applies the persisted theme and starts the Bubble Tea program.
func Run(deps Deps) error {
	if name, err := deps.Prefs.Get(context.Background(), store.PrefKeyTheme); err == nil && name != "" {
		theme.Apply(theme.ByName(name))
	}

	p := tea.NewProgram(newAppModel(deps))
	if _, err := p.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
