// Package tutor implements the conversational side of EduMate: chat turns
// with the model, session summaries, and revision plans.
package tutor

import (
	"context"
	"errors"

	"github.com/2210030429cse-tech/learningplatform/internal/llm"
	"github.com/2210030429cse-tech/learningplatform/internal/prompt"
	"github.com/2210030429cse-tech/learningplatform/internal/quiz"
	"github.com/2210030429cse-tech/learningplatform/internal/session"
	"github.com/2210030429cse-tech/learningplatform/internal/store"
)

// Model parameters per request category. Chat runs warm for a natural tone;
// summaries and plans run slightly cooler and much shorter.
const (
	chatTemperature = 0.72
	chatMaxTokens   = 2048

	assistTemperature = 0.68
	summaryMaxTokens  = 380
	planMaxTokens     = 420
)

// Apology replaces the assistant turn when a chat request fails. The
// conversation always stays well-formed: every user turn gets a reply.
const Apology = "Sorry, something went wrong. Please try again."

// Fallback texts when summary or plan generation fails.
const (
	summaryFallback = "I couldn't put a summary together right now. Please try again in a moment."
	planFallback    = "I couldn't build a revision plan right now. Please try again in a moment."
)

// ErrNoExchange is returned when a summary or plan is requested before any
// real conversation has happened.
var ErrNoExchange = errors.New("no conversation to work from yet")

// Service talks to the model on behalf of a session.
type Service struct {
	provider llm.Provider
	progress store.ProgressRepo
}

// NewService wires a tutor service to its provider and progress source.
func NewService(provider llm.Provider, progress store.ProgressRepo) *Service {
	return &Service{provider: provider, progress: progress}
}

// Send appends the user's message to the session, asks the model for a
// reply, and appends that reply. On failure the assistant turn is the
// apology text and the error is also returned so the caller can surface it.
// The session history is consistent either way.
func (s *Service) Send(ctx context.Context, sess *session.Session, text string) (string, error) {
	ctx = llm.WithPurpose(ctx, "chat")

	history := sess.Messages()
	sess.AppendUser(text)

	messages := make([]llm.Message, 0, len(history)+1)
	for _, m := range history {
		messages = append(messages, llm.Message{
			Role:    llm.Role(m.Role),
			Content: m.Text,
		})
	}
	messages = append(messages, llm.Message{Role: llm.RoleUser, Content: text})

	resp, err := s.provider.Chat(ctx, llm.Request{
		System:      prompt.ChatSystem(sess.Level, sess.Subject),
		Messages:    messages,
		Temperature: chatTemperature,
		MaxTokens:   chatMaxTokens,
	})
	if err != nil {
		sess.AppendAssistant(Apology)
		return Apology, err
	}

	sess.AppendAssistant(resp.Text)
	return resp.Text, nil
}

// Summarize produces a short session summary. Requires at least one real
// exchange. On model failure it returns a fallback text plus the error.
func (s *Service) Summarize(ctx context.Context, sess *session.Session) (string, error) {
	return s.assist(ctx, sess, "summary", prompt.Summary, summaryMaxTokens, summaryFallback)
}

// Plan produces a short revision plan. Same preconditions and failure
// behavior as Summarize.
func (s *Service) Plan(ctx context.Context, sess *session.Session) (string, error) {
	return s.assist(ctx, sess, "plan", prompt.RevisionPlan, planMaxTokens, planFallback)
}

func (s *Service) assist(
	ctx context.Context,
	sess *session.Session,
	purpose string,
	build func(prompt.SummaryInput) string,
	maxTokens int,
	fallback string,
) (string, error) {
	if !sess.HasExchange() {
		return "", ErrNoExchange
	}

	ctx = llm.WithPurpose(ctx, purpose)

	input := prompt.SummaryInput{
		Level:    sess.Level,
		Subject:  sess.Subject,
		Messages: sess.Messages(),
		Quiz:     sess.LastQuizOutcome(),
	}

	// Aggregate stats enrich the prompt but are not worth failing over.
	if progress, err := s.progress.Get(ctx); err == nil {
		input.Progress = prompt.ProgressStats{
			TotalQuizzes: progress.TotalQuizzes,
			Accuracy:     quiz.Accuracy(progress.TotalCorrect, progress.TotalQuizzes),
		}
	}

	resp, err := s.provider.Chat(ctx, llm.Request{
		System: prompt.AssistantSystem,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: build(input)},
		},
		Temperature: assistTemperature,
		MaxTokens:   maxTokens,
	})
	if err != nil {
		return fallback, err
	}
	return resp.Text, nil
}
