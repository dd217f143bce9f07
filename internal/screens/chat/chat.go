// Package chat is the tutoring conversation screen.
package chat

import (
	"context"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/2210030429cse-tech/learningplatform/internal/screen"
	sess "github.com/2210030429cse-tech/learningplatform/internal/session"
	"github.com/2210030429cse-tech/learningplatform/internal/tutor"
	"github.com/2210030429cse-tech/learningplatform/internal/ui/components"
	"github.com/2210030429cse-tech/learningplatform/internal/ui/layout"
)

// ChatScreen implements screen.Screen for the tutoring conversation.
type ChatScreen struct {
	session *sess.Session
	svc     *tutor.Service

	input components.TextInput

	// card holds summary or plan text shown over the conversation, "" when
	// the conversation itself is visible.
	card      string
	cardTitle string
}

var _ screen.Screen = (*ChatScreen)(nil)
var _ screen.KeyHintProvider = (*ChatScreen)(nil)

// New creates the chat screen for an active session.
func New(session *sess.Session, svc *tutor.Service) *ChatScreen {
	return &ChatScreen{
		session: session,
		svc:     svc,
		input:   components.NewTextInput("Ask me anything...", 500),
	}
}

func (c *ChatScreen) Init() tea.Cmd {
	return c.input.Init()
}

func (c *ChatScreen) Title() string {
	return "Tutor Chat"
}

func (c *ChatScreen) KeyHints() []layout.KeyHint {
	if c.card != "" {
		return []layout.KeyHint{
			{Key: "any key", Description: "Back to chat"},
		}
	}
	hints := []layout.KeyHint{
		{Key: "Enter", Description: "Send"},
	}
	if c.session.HasExchange() {
		hints = append(hints,
			layout.KeyHint{Key: "Ctrl+S", Description: "Summary"},
			layout.KeyHint{Key: "Ctrl+P", Description: "Plan"},
		)
	}
	return append(hints, layout.KeyHint{Key: "Esc", Description: "Back"})
}

func (c *ChatScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case replyMsg:
		return c, nil

	case summaryMsg:
		c.card = msg.Text
		c.cardTitle = "Session Summary"
		return c, nil

	case planMsg:
		c.card = msg.Text
		c.cardTitle = "Revision Plan"
		return c, nil

	case tea.KeyMsg:
		return c.handleKey(msg)
	}

	var cmd tea.Cmd
	c.input, cmd = c.input.Update(msg)
	return c, cmd
}

func (c *ChatScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	// Card overlay: any key except esc dismisses (esc pops the screen at
	// the app level, so swallow it here too for consistency).
	if c.card != "" {
		c.card = ""
		c.cardTitle = ""
		return c, nil
	}

	switch msg.String() {
	case "enter":
		return c, c.send()
	case "ctrl+s":
		return c, c.summarize()
	case "ctrl+p":
		return c, c.plan()
	}

	var cmd tea.Cmd
	c.input, cmd = c.input.Update(msg)
	return c, cmd
}

// send dispatches the typed message. A no-op while another request is in
// flight or the input is empty.
func (c *ChatScreen) send() tea.Cmd {
	text := strings.TrimSpace(c.input.Value())
	if text == "" {
		return nil
	}
	if err := c.session.Begin(sess.RequestChat); err != nil {
		return nil
	}
	c.input.Reset()

	session, svc := c.session, c.svc
	return func() tea.Msg {
		defer session.End()
		reply, err := svc.Send(context.Background(), session, text)
		return replyMsg{Text: reply, Err: err}
	}
}

func (c *ChatScreen) summarize() tea.Cmd {
	if !c.session.HasExchange() {
		return nil
	}
	if err := c.session.Begin(sess.RequestSummary); err != nil {
		return nil
	}

	session, svc := c.session, c.svc
	return func() tea.Msg {
		defer session.End()
		text, err := svc.Summarize(context.Background(), session)
		return summaryMsg{Text: text, Err: err}
	}
}

func (c *ChatScreen) plan() tea.Cmd {
	if !c.session.HasExchange() {
		return nil
	}
	if err := c.session.Begin(sess.RequestPlan); err != nil {
		return nil
	}

	session, svc := c.session, c.svc
	return func() tea.Msg {
		defer session.End()
		text, err := svc.Plan(context.Background(), session)
		return planMsg{Text: text, Err: err}
	}
}
