// Package home is the landing screen: session setup, the main menu, and a
// glance at overall progress.
package home

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/2210030429cse-tech/learningplatform/internal/quiz"
	"github.com/2210030429cse-tech/learningplatform/internal/router"
	"github.com/2210030429cse-tech/learningplatform/internal/screen"
	chatscreen "github.com/2210030429cse-tech/learningplatform/internal/screens/chat"
	progressscreen "github.com/2210030429cse-tech/learningplatform/internal/screens/progress"
	quizscreen "github.com/2210030429cse-tech/learningplatform/internal/screens/quiz"
	"github.com/2210030429cse-tech/learningplatform/internal/session"
	"github.com/2210030429cse-tech/learningplatform/internal/store"
	"github.com/2210030429cse-tech/learningplatform/internal/tutor"
	"github.com/2210030429cse-tech/learningplatform/internal/ui/components"
	"github.com/2210030429cse-tech/learningplatform/internal/ui/layout"
	"github.com/2210030429cse-tech/learningplatform/internal/ui/theme"
)

// HomeScreen is the main landing screen of the application.
type HomeScreen struct {
	sess     *session.Session
	tutorSvc *tutor.Service
	engine   *quiz.Engine
	progress store.ProgressRepo
	prefs    store.PrefsRepo

	menu         components.Menu
	totalQuizzes int
	accuracy     int
}

var _ screen.Screen = (*HomeScreen)(nil)
var _ screen.KeyHintProvider = (*HomeScreen)(nil)

// New creates the home screen with injected dependencies.
func New(sess *session.Session, tutorSvc *tutor.Service, engine *quiz.Engine, progress store.ProgressRepo, prefs store.PrefsRepo) *HomeScreen {
	h := &HomeScreen{
		sess:     sess,
		tutorSvc: tutorSvc,
		engine:   engine,
		progress: progress,
		prefs:    prefs,
	}

	if p, err := progress.Get(context.Background()); err == nil {
		h.totalQuizzes = p.TotalQuizzes
		h.accuracy = quiz.Accuracy(p.TotalCorrect, p.TotalQuizzes)
	}

	items := []components.MenuItem{
		{Label: "TUTOR CHAT", Hint: "Ask anything, explained at your level", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: chatscreen.New(sess, tutorSvc)}
			}
		}},
		{Label: "TAKE QUIZ", Hint: "Five questions on your subject", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: quizscreen.New(sess, engine)}
			}
		}},
		{Label: "MY PROGRESS", Hint: "Lifetime score and accuracy", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: progressscreen.New(progress)}
			}
		}},
		{Label: "EXIT", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}
	h.menu = components.NewMenu(items)

	return h
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Title() string {
	return "Home"
}

func (h *HomeScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "L", Description: "Level"},
		{Key: "S", Description: "Subject"},
		{Key: "T", Description: "Theme"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "l", "L":
			h.sess.Level = h.sess.Level.Next()
			return h, nil
		case "s", "S":
			h.sess.Subject = h.sess.Subject.Next()
			return h, nil
		case "t", "T":
			p := theme.Toggle()
			// Persisting the choice is best effort.
			_ = h.prefs.Set(context.Background(), store.PrefKeyTheme, p.Name)
			return h, nil
		}
	}

	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	var sections []string

	sections = append(sections,
		theme.Title.Width(width).Render("EduMate AI"),
		theme.Subtitle.Width(width).Render("Your personalized terminal tutor"),
	)

	setup := fmt.Sprintf("Level: %s    Subject: %s", h.sess.Level, h.sess.Subject)
	sections = append(sections, lipgloss.NewStyle().
		Foreground(theme.Accent).
		Width(width).
		Align(lipgloss.Center).
		Render(setup))

	if h.totalQuizzes > 0 {
		stats := fmt.Sprintf("%d quizzes · %d%% accuracy", h.totalQuizzes, h.accuracy)
		sections = append(sections, theme.Hint.Width(width).Align(lipgloss.Center).Render(stats))
	}

	menu := lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Render(h.menu.View())
	sections = append(sections, menu)

	content := strings.Join(sections, "\n\n")

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)
}
