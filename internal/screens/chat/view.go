package chat

import (
	"strings"

	"charm.land/lipgloss/v2"

	sess "github.com/2210030429cse-tech/learningplatform/internal/session"
	"github.com/2210030429cse-tech/learningplatform/internal/ui/theme"
)

func (c *ChatScreen) View(width, height int) string {
	if c.card != "" {
		return c.renderCard(width, height)
	}
	return c.renderConversation(width, height)
}

func (c *ChatScreen) renderConversation(width, height int) string {
	inputLine := "  > " + c.input.View()
	if c.session.Busy() {
		inputLine = theme.Hint.Render("  Thinking...")
	}

	// Conversation area is everything above the input line.
	convHeight := height - 2
	if convHeight < 1 {
		convHeight = 1
	}

	var lines []string
	bubbleWidth := width - 6
	if bubbleWidth < 20 {
		bubbleWidth = 20
	}

	tutorLabel := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render("Tutor")
	youLabel := lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).Render("You")
	body := lipgloss.NewStyle().Foreground(theme.Text).Width(bubbleWidth)

	for _, m := range c.session.Messages() {
		label := tutorLabel
		if m.Role == sess.RoleUser {
			label = youLabel
		}
		lines = append(lines, "  "+label)
		for _, l := range strings.Split(body.Render(m.Text), "\n") {
			lines = append(lines, "    "+l)
		}
		lines = append(lines, "")
	}

	// Show the tail of the conversation.
	if len(lines) > convHeight {
		lines = lines[len(lines)-convHeight:]
	}

	conv := strings.Join(lines, "\n")
	convBox := lipgloss.NewStyle().
		Width(width).
		Height(convHeight).
		Render(conv)

	return convBox + "\n" + inputLine
}

func (c *ChatScreen) renderCard(width, height int) string {
	cardWidth := width - 10
	if cardWidth < 30 {
		cardWidth = 30
	}

	title := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true).
		Render(c.cardTitle)

	body := lipgloss.NewStyle().
		Foreground(theme.Text).
		Width(cardWidth - 6).
		Render(c.card)

	card := theme.Card.Width(cardWidth).Render(title + "\n\n" + body)

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(card)
}
