package components

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/2210030429cse-tech/learningplatform/internal/quiz"
	"github.com/2210030429cse-tech/learningplatform/internal/ui/theme"
)

// OptionList renders one quiz question with its lettered options. Before
// review it shows the cursor and the learner's chosen letter; in review it
// colors the correct and chosen options.
type OptionList struct {
	Question quiz.Question
	Number   int // 1-based position in the quiz

	Cursor int    // highlighted option
	Chosen string // selected answer letter, "" if none

	Review bool // color correct/incorrect instead of the cursor
}

// NewOptionList creates an option list for one question.
func NewOptionList(number int, q quiz.Question) OptionList {
	return OptionList{
		Question: q,
		Number:   number,
	}
}

// Init returns nil.
func (o OptionList) Init() tea.Cmd {
	return nil
}

// Update handles cursor movement and letter selection.
func (o OptionList) Update(msg tea.Msg) (OptionList, tea.Cmd) {
	if o.Review {
		return o, nil
	}

	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return o, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if o.Cursor > 0 {
			o.Cursor--
		}
	case "down", "j":
		if o.Cursor < len(o.Question.Options)-1 {
			o.Cursor++
		}
	case "enter", " ":
		o.Chosen = quiz.Letters[o.Cursor]
	case "a":
		o.choose(0)
	case "b":
		o.choose(1)
	case "c":
		o.choose(2)
	case "d":
		o.choose(3)
	}

	return o, nil
}

func (o *OptionList) choose(i int) {
	if i >= 0 && i < len(o.Question.Options) {
		o.Cursor = i
		o.Chosen = quiz.Letters[i]
	}
}

// View renders the question and its options.
func (o OptionList) View() string {
	questionStyle := lipgloss.NewStyle().Foreground(theme.Text).Bold(true)
	s := questionStyle.Render(fmt.Sprintf("%d. %s", o.Number, o.Question.Question)) + "\n\n"

	for i, opt := range o.Question.Options {
		letter := quiz.Letters[i]
		prefix := "  "
		if i == o.Cursor && !o.Review {
			prefix = "▸ "
		}

		marker := " "
		if o.Chosen == letter {
			marker = "●"
		}

		line := fmt.Sprintf("%s%s %s)  %s", prefix, marker, letter, opt)

		switch {
		case o.Review && letter == o.Question.Answer:
			s += theme.Correct.Render(line) + "\n"
		case o.Review && o.Chosen == letter:
			s += theme.Incorrect.Render(line) + "\n"
		case o.Review:
			s += lipgloss.NewStyle().Foreground(theme.TextDim).Render(line) + "\n"
		case o.Chosen == letter:
			s += lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).Render(line) + "\n"
		case i == o.Cursor:
			s += theme.Selected.Render(line) + "\n"
		default:
			s += theme.Unselected.Render(line) + "\n"
		}
	}

	return s
}

// Answered reports whether a letter has been chosen.
func (o OptionList) Answered() bool {
	return o.Chosen != ""
}

// IsCorrect reports whether the chosen letter matches the answer.
func (o OptionList) IsCorrect() bool {
	return o.Chosen != "" && o.Chosen == o.Question.Answer
}
