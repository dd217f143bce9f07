// Package quiz is the quiz-taking screen: generation, answering, and review.
package quiz

import (
	"context"

	tea "charm.land/bubbletea/v2"

	qz "github.com/2210030429cse-tech/learningplatform/internal/quiz"
	"github.com/2210030429cse-tech/learningplatform/internal/router"
	"github.com/2210030429cse-tech/learningplatform/internal/screen"
	sess "github.com/2210030429cse-tech/learningplatform/internal/session"
	"github.com/2210030429cse-tech/learningplatform/internal/ui/components"
	"github.com/2210030429cse-tech/learningplatform/internal/ui/layout"
)

// QuizScreen implements screen.Screen for a quiz round.
type QuizScreen struct {
	session *sess.Session
	engine  *qz.Engine

	lists   []components.OptionList
	current int

	result   qz.Result
	feedback qz.Feedback

	loading      bool
	submitting   bool
	failedSubmit bool
	errMsg       string
}

var _ screen.Screen = (*QuizScreen)(nil)
var _ screen.KeyHintProvider = (*QuizScreen)(nil)

// New creates the quiz screen. Generation starts on Init.
func New(session *sess.Session, engine *qz.Engine) *QuizScreen {
	return &QuizScreen{
		session: session,
		engine:  engine,
	}
}

func (q *QuizScreen) Init() tea.Cmd {
	return q.requestQuiz()
}

func (q *QuizScreen) Title() string {
	return "Quiz"
}

func (q *QuizScreen) KeyHints() []layout.KeyHint {
	switch {
	case q.errMsg != "":
		return []layout.KeyHint{
			{Key: "R", Description: "Retry"},
			{Key: "Esc", Description: "Back"},
		}
	case q.loading || q.submitting:
		return nil
	case q.engine.State() == qz.StateSubmitted:
		return []layout.KeyHint{
			{Key: "←→", Description: "Question"},
			{Key: "N", Description: "New quiz"},
			{Key: "Esc", Description: "Back"},
		}
	default:
		hints := []layout.KeyHint{
			{Key: "↑↓", Description: "Option"},
			{Key: "A-D/Enter", Description: "Answer"},
			{Key: "←→", Description: "Question"},
		}
		if q.engine.AllAnswered() {
			hints = append(hints, layout.KeyHint{Key: "S", Description: "Submit"})
		}
		return append(hints, layout.KeyHint{Key: "Esc", Description: "Back"})
	}
}

func (q *QuizScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case quizReadyMsg:
		return q.handleReady(msg)

	case submitDoneMsg:
		return q.handleSubmitted(msg)

	case tea.KeyMsg:
		return q.handleKey(msg)
	}
	return q, nil
}

func (q *QuizScreen) handleReady(msg quizReadyMsg) (screen.Screen, tea.Cmd) {
	q.loading = false

	if msg.Err != nil {
		q.errMsg = msg.Err.Error()
		return q, nil
	}

	q.errMsg = ""
	q.lists = make([]components.OptionList, len(msg.Questions))
	for i, question := range msg.Questions {
		q.lists[i] = components.NewOptionList(i+1, question)
	}
	q.current = 0
	return q, nil
}

func (q *QuizScreen) handleSubmitted(msg submitDoneMsg) (screen.Screen, tea.Cmd) {
	q.submitting = false

	if msg.Err != nil {
		// The engine keeps the quiz answerable after a failed submit, so a
		// retry resubmits instead of regenerating.
		q.failedSubmit = true
		q.errMsg = msg.Err.Error()
		return q, nil
	}

	q.failedSubmit = false
	q.result = msg.Result
	q.feedback = qz.FeedbackFor(msg.Result.Percentage, string(q.session.Subject), string(q.session.Level))

	q.session.RecordQuiz(sess.LastQuiz{
		Subject: q.session.Subject,
		Level:   q.session.Level,
		Score:   msg.Result.Score,
		Total:   qz.NumQuestions,
	})

	for i := range q.lists {
		q.lists[i].Review = true
	}
	q.current = 0
	return q, nil
}

func (q *QuizScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	if q.errMsg != "" {
		if key == "r" || key == "R" {
			q.errMsg = ""
			if q.failedSubmit {
				return q, q.submit()
			}
			return q, q.requestQuiz()
		}
		return q, nil
	}

	if q.loading || q.submitting {
		return q, nil
	}

	switch q.engine.State() {
	case qz.StateSubmitted:
		switch key {
		case "left", "h":
			q.prevQuestion()
		case "right", "l", "tab":
			q.nextQuestion()
		case "n", "N":
			q.engine.Reset()
			session, engine := q.session, q.engine
			return q, func() tea.Msg {
				return router.ReplaceScreenMsg{Screen: New(session, engine)}
			}
		}
		return q, nil

	case qz.StatePopulated:
		switch key {
		case "left", "h":
			q.prevQuestion()
			return q, nil
		case "right", "tab":
			q.nextQuestion()
			return q, nil
		case "s", "S":
			if q.engine.AllAnswered() {
				return q, q.submit()
			}
			return q, nil
		}

		before := q.lists[q.current].Chosen
		var cmd tea.Cmd
		q.lists[q.current], cmd = q.lists[q.current].Update(msg)
		if after := q.lists[q.current].Chosen; after != "" && after != before {
			_ = q.engine.Select(q.current, after)
		}
		return q, cmd
	}

	return q, nil
}

func (q *QuizScreen) prevQuestion() {
	if q.current > 0 {
		q.current--
	}
}

func (q *QuizScreen) nextQuestion() {
	if q.current < len(q.lists)-1 {
		q.current++
	}
}

// requestQuiz generates a fresh quiz asynchronously. The session guard keeps
// chat and quiz requests mutually exclusive; the command goroutine releases
// it on completion even if this screen has been left by then.
func (q *QuizScreen) requestQuiz() tea.Cmd {
	if err := q.session.Begin(sess.RequestQuiz); err != nil {
		q.errMsg = err.Error()
		return nil
	}
	q.loading = true

	session, engine := q.session, q.engine
	subject, level := session.Subject, session.Level
	return func() tea.Msg {
		defer session.End()
		questions, err := engine.Request(context.Background(), subject, level)
		return quizReadyMsg{Questions: questions, Err: err}
	}
}

// submit scores the quiz and persists the result asynchronously. Scoring
// holds the session guard so no generation can run against the engine until
// the round-trip finishes.
func (q *QuizScreen) submit() tea.Cmd {
	if err := q.session.Begin(sess.RequestQuiz); err != nil {
		return nil
	}
	q.submitting = true

	session, engine := q.session, q.engine
	return func() tea.Msg {
		defer session.End()
		result, err := engine.Submit(context.Background())
		return submitDoneMsg{Result: result, Err: err}
	}
}
