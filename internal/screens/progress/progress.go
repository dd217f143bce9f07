// Package progress shows lifetime quiz statistics.
package progress

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/2210030429cse-tech/learningplatform/internal/quiz"
	"github.com/2210030429cse-tech/learningplatform/internal/screen"
	"github.com/2210030429cse-tech/learningplatform/internal/store"
	"github.com/2210030429cse-tech/learningplatform/internal/ui/layout"
	"github.com/2210030429cse-tech/learningplatform/internal/ui/theme"
)

// ProgressScreen implements screen.Screen for the stats view.
type ProgressScreen struct {
	repo store.ProgressRepo

	progress     store.Progress
	loadErr      error
	confirmReset bool
}

var _ screen.Screen = (*ProgressScreen)(nil)
var _ screen.KeyHintProvider = (*ProgressScreen)(nil)

// New creates the progress screen and loads the aggregate.
func New(repo store.ProgressRepo) *ProgressScreen {
	p := &ProgressScreen{repo: repo}
	p.progress, p.loadErr = repo.Get(context.Background())
	return p
}

func (p *ProgressScreen) Init() tea.Cmd {
	return nil
}

func (p *ProgressScreen) Title() string {
	return "My Progress"
}

func (p *ProgressScreen) KeyHints() []layout.KeyHint {
	if p.confirmReset {
		return []layout.KeyHint{
			{Key: "Y", Description: "Reset progress"},
			{Key: "N", Description: "Keep it"},
		}
	}
	return []layout.KeyHint{
		{Key: "R", Description: "Reset"},
		{Key: "Esc", Description: "Back"},
	}
}

func (p *ProgressScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return p, nil
	}

	if p.confirmReset {
		switch kmsg.String() {
		case "y", "Y":
			p.confirmReset = false
			if err := p.repo.Reset(context.Background()); err == nil {
				p.progress = store.Progress{}
			}
		case "n", "N", "esc":
			p.confirmReset = false
		}
		return p, nil
	}

	if kmsg.String() == "r" || kmsg.String() == "R" {
		p.confirmReset = true
	}
	return p, nil
}

func (p *ProgressScreen) View(width, height int) string {
	if p.loadErr != nil {
		return centered(width, height,
			theme.Incorrect.Render("Could not load progress: "+p.loadErr.Error()))
	}

	if p.confirmReset {
		card := theme.Card.Render("Reset all progress?\n\nThis cannot be undone.")
		return centered(width, height, card)
	}

	accuracy := quiz.Accuracy(p.progress.TotalCorrect, p.progress.TotalQuizzes)

	var lines []string
	lines = append(lines,
		theme.Title.Render("My Progress"),
		"",
		fmt.Sprintf("Quizzes taken     %d", p.progress.TotalQuizzes),
		fmt.Sprintf("Correct answers   %d", p.progress.TotalCorrect),
		fmt.Sprintf("Accuracy          %d%%", accuracy),
		"",
		theme.Hint.Render(quiz.Motivation(accuracy)),
	)

	if p.progress.TotalQuizzes == 0 {
		lines = append(lines, "", theme.Subtitle.Render("Take your first quiz to start tracking."))
	}

	card := theme.Card.Render(strings.Join(lines, "\n"))
	return centered(width, height, card)
}

func centered(width, height int, content string) string {
	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)
}
