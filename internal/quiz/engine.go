package quiz

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/2210030429cse-tech/learningplatform/internal/llm"
	"github.com/2210030429cse-tech/learningplatform/internal/prompt"
	"github.com/2210030429cse-tech/learningplatform/internal/session"
	"github.com/2210030429cse-tech/learningplatform/internal/store"
)

// Model parameters for quiz generation. Low temperature keeps the output
// close to the requested JSON shape.
const (
	quizTemperature = 0.3
	quizMaxTokens   = 1800
)

var (
	// ErrNoActiveQuiz is returned by answer and submit operations when no
	// validated quiz is loaded.
	ErrNoActiveQuiz = errors.New("no active quiz")

	// ErrAlreadySubmitted is returned when mutating a quiz after scoring.
	ErrAlreadySubmitted = errors.New("quiz already submitted")

	// ErrIncomplete is returned by Submit while any question is unanswered.
	ErrIncomplete = errors.New("not all questions answered")
)

// Engine drives one quiz at a time: request, answer, submit, reset.
// A failed request or submission never disturbs existing state, so the
// learner keeps whatever quiz and answers they had before the attempt.
// State access is mutex-guarded: the render loop may read while a command
// goroutine runs Request or Submit. Callers still serialize the mutating
// operations themselves (one request in flight at a time).
type Engine struct {
	provider llm.Provider
	progress store.ProgressRepo

	mu        sync.Mutex
	questions []Question
	answers   map[int]string
	submitted bool
}

// NewEngine returns an engine with no active quiz.
func NewEngine(provider llm.Provider, progress store.ProgressRepo) *Engine {
	return &Engine{
		provider: provider,
		progress: progress,
	}
}

// Request asks the model for a fresh question batch. The new quiz replaces
// any previous one only after the response passes contract validation; on
// any error the engine's prior state is untouched.
func (e *Engine) Request(ctx context.Context, subject session.Subject, level session.Level) ([]Question, error) {
	ctx = llm.WithPurpose(ctx, "quiz")

	resp, err := e.provider.Chat(ctx, llm.Request{
		System: prompt.QuizSystem,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: prompt.QuizTask(subject, level)},
		},
		Temperature: quizTemperature,
		MaxTokens:   quizMaxTokens,
	})
	if err != nil {
		return nil, fmt.Errorf("request quiz: %w", err)
	}

	questions, err := Parse(resp.Text)
	if err != nil {
		return nil, err
	}

	e.mu.Lock()
	e.questions = questions
	e.answers = make(map[int]string, NumQuestions)
	e.submitted = false
	e.mu.Unlock()
	return e.Questions(), nil
}

// Select records the learner's answer for question index i. Re-selecting
// overwrites the previous choice.
func (e *Engine) Select(i int, letter string) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	switch {
	case len(e.questions) == 0:
		return ErrNoActiveQuiz
	case e.submitted:
		return ErrAlreadySubmitted
	case i < 0 || i >= len(e.questions):
		return fmt.Errorf("question index %d out of range", i)
	case letterIndex(letter) < 0:
		return fmt.Errorf("invalid answer letter %q", letter)
	}
	e.answers[i] = letter
	return nil
}

// AllAnswered reports whether every question has an answer selected.
func (e *Engine) AllAnswered() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.allAnswered()
}

func (e *Engine) allAnswered() bool {
	return len(e.questions) > 0 && len(e.answers) == len(e.questions)
}

// Submit scores the quiz and records the result in the progress aggregate.
// Persistence happens before the quiz is frozen: if the write fails the quiz
// stays answerable and resubmitting does not double-count.
func (e *Engine) Submit(ctx context.Context) (Result, error) {
	e.mu.Lock()
	switch {
	case len(e.questions) == 0:
		e.mu.Unlock()
		return Result{}, ErrNoActiveQuiz
	case e.submitted:
		e.mu.Unlock()
		return Result{}, ErrAlreadySubmitted
	case !e.allAnswered():
		e.mu.Unlock()
		return Result{}, ErrIncomplete
	}
	score := Score(e.questions, e.answers)
	total := len(e.questions)
	e.mu.Unlock()

	if _, err := e.progress.Add(ctx, score); err != nil {
		return Result{}, fmt.Errorf("record quiz result: %w", err)
	}

	e.mu.Lock()
	e.submitted = true
	e.mu.Unlock()
	return Result{
		Score:      score,
		Percentage: Percentage(score, total),
	}, nil
}

// Reset discards the active quiz and its answers.
func (e *Engine) Reset() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.questions = nil
	e.answers = nil
	e.submitted = false
}

// State reports the lifecycle state of the current quiz.
func (e *Engine) State() State {
	e.mu.Lock()
	defer e.mu.Unlock()
	switch {
	case len(e.questions) == 0:
		return StateEmpty
	case e.submitted:
		return StateSubmitted
	default:
		return StatePopulated
	}
}

// Questions returns a copy of the active question batch.
func (e *Engine) Questions() []Question {
	e.mu.Lock()
	defer e.mu.Unlock()
	out := make([]Question, len(e.questions))
	copy(out, e.questions)
	return out
}

// Answers returns a copy of the selected answers, keyed by question index.
func (e *Engine) Answers() map[int]string {
	e.mu.Lock()
	defer e.mu.Unlock()
	out := make(map[int]string, len(e.answers))
	for i, letter := range e.answers {
		out[i] = letter
	}
	return out
}
