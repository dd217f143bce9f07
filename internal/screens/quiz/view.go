package quiz

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	qz "github.com/2210030429cse-tech/learningplatform/internal/quiz"
	"github.com/2210030429cse-tech/learningplatform/internal/ui/theme"
)

func (q *QuizScreen) View(width, height int) string {
	switch {
	case q.errMsg != "":
		return q.renderError(width, height)
	case q.loading:
		return centered(width, height, theme.Hint.Render("Generating your quiz..."))
	case q.submitting:
		return centered(width, height, theme.Hint.Render("Scoring..."))
	case len(q.lists) == 0:
		return centered(width, height, theme.Hint.Render("No quiz loaded."))
	case q.engine.State() == qz.StateSubmitted:
		return q.renderReview(width, height)
	default:
		return q.renderQuestion(width, height)
	}
}

func (q *QuizScreen) renderQuestion(width, height int) string {
	progress := theme.Subtitle.Render(fmt.Sprintf(
		"Question %d of %d  ·  %d answered",
		q.current+1, len(q.lists), len(q.engine.Answers()),
	))

	card := theme.Card.Width(cardWidth(width)).Render(q.lists[q.current].View())

	var footer string
	if q.engine.AllAnswered() {
		footer = theme.Correct.Render("All answered. Press S to submit.")
	} else {
		footer = theme.Hint.Render("Answer every question to submit.")
	}

	return centered(width, height, progress+"\n\n"+card+"\n\n"+footer)
}

func (q *QuizScreen) renderReview(width, height int) string {
	banner := fmt.Sprintf("Score: %d/%d (%d%%)", q.result.Score, qz.NumQuestions, q.result.Percentage)

	bannerStyle := theme.Correct
	if q.feedback.Tone == qz.ToneNeedsWork || q.feedback.Tone == qz.ToneAverage {
		bannerStyle = theme.Incorrect
	}

	parts := []string{
		bannerStyle.Render(banner),
		theme.Body.Render(q.feedback.Message),
		theme.Hint.Render(q.feedback.Suggestion),
		"",
		theme.Subtitle.Render(fmt.Sprintf("Reviewing question %d of %d", q.current+1, len(q.lists))),
		"",
		theme.Card.Width(cardWidth(width)).Render(q.lists[q.current].View()),
	}

	return centered(width, height, strings.Join(parts, "\n"))
}

func (q *QuizScreen) renderError(width, height int) string {
	msg := lipgloss.NewStyle().
		Foreground(theme.Error).
		Bold(true).
		Render("Quiz unavailable")

	detail := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Width(cardWidth(width)).
		Render(q.errMsg)

	hint := theme.Hint.Render("Press R to retry or Esc to go back.")

	return centered(width, height, msg+"\n\n"+detail+"\n\n"+hint)
}

func cardWidth(width int) int {
	w := width - 10
	if w < 40 {
		w = 40
	}
	return w
}

func centered(width, height int, content string) string {
	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)
}
