package tutor

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/2210030429cse-tech/learningplatform/internal/llm"
	"github.com/2210030429cse-tech/learningplatform/internal/session"
	"github.com/2210030429cse-tech/learningplatform/internal/store"
)

type fakeProgress struct {
	progress store.Progress
}

func (f *fakeProgress) Get(context.Context) (store.Progress, error) { return f.progress, nil }
func (f *fakeProgress) Add(_ context.Context, score int) (store.Progress, error) {
	f.progress.TotalQuizzes++
	f.progress.TotalCorrect += score
	return f.progress, nil
}
func (f *fakeProgress) Reset(context.Context) error {
	f.progress = store.Progress{}
	return nil
}

func newTestService(replies ...llm.MockReply) (*Service, *llm.MockProvider) {
	provider := llm.NewMockProvider(replies...)
	return NewService(provider, &fakeProgress{}), provider
}

func TestSendAppendsBothTurns(t *testing.T) {
	svc, provider := newTestService(llm.MockReply{Text: "A pointer holds an address."})
	sess := session.New(session.LevelBeginner, session.SubjectPython)

	reply, err := svc.Send(context.Background(), sess, "What is a pointer?")
	require.NoError(t, err)
	require.Equal(t, "A pointer holds an address.", reply)

	messages := sess.Messages()
	require.Len(t, messages, 3) // greeting, user, assistant
	require.Equal(t, session.RoleUser, messages[1].Role)
	require.Equal(t, "What is a pointer?", messages[1].Text)
	require.Equal(t, session.RoleAssistant, messages[2].Role)
	require.Equal(t, reply, messages[2].Text)

	// The system prompt reflects the session parameters.
	req := provider.Calls[0]
	require.Contains(t, req.System, "Student level: Beginner")
	require.Contains(t, req.System, "Focus subject: Python")
	require.Equal(t, 0.72, req.Temperature)
	require.Equal(t, 2048, req.MaxTokens)
}

func TestSendCarriesHistory(t *testing.T) {
	svc, provider := newTestService(
		llm.MockReply{Text: "first reply"},
		llm.MockReply{Text: "second reply"},
	)
	sess := session.New(session.LevelIntermediate, session.SubjectGeneral)

	_, err := svc.Send(context.Background(), sess, "first question")
	require.NoError(t, err)
	_, err = svc.Send(context.Background(), sess, "second question")
	require.NoError(t, err)

	// The second request carries the greeting and the full first exchange.
	req := provider.Calls[1]
	require.Len(t, req.Messages, 4)
	require.Equal(t, llm.RoleAssistant, req.Messages[0].Role)
	require.Equal(t, "first question", req.Messages[1].Content)
	require.Equal(t, "first reply", req.Messages[2].Content)
	require.Equal(t, "second question", req.Messages[3].Content)
}

func TestSendFailureAppendsApology(t *testing.T) {
	svc, _ := newTestService(llm.MockReply{Err: &llm.ErrUnavailable{}})
	sess := session.New(session.LevelBeginner, session.SubjectGeneral)

	reply, err := svc.Send(context.Background(), sess, "hello?")
	require.Error(t, err)
	require.Equal(t, Apology, reply)

	messages := sess.Messages()
	require.Len(t, messages, 3)
	require.Equal(t, "hello?", messages[1].Text)
	require.Equal(t, Apology, messages[2].Text)
}

func TestSummarizeRequiresExchange(t *testing.T) {
	svc, provider := newTestService()
	sess := session.New(session.LevelBeginner, session.SubjectGeneral)

	_, err := svc.Summarize(context.Background(), sess)
	require.ErrorIs(t, err, ErrNoExchange)
	require.Zero(t, provider.CallCount())

	_, err = svc.Plan(context.Background(), sess)
	require.ErrorIs(t, err, ErrNoExchange)
}

func TestSummarizeIncludesContext(t *testing.T) {
	svc, provider := newTestService(
		llm.MockReply{Text: "chat reply"},
		llm.MockReply{Text: "a warm summary"},
	)
	sess := session.New(session.LevelAdvanced, session.SubjectMachineLearning)

	_, err := svc.Send(context.Background(), sess, "explain overfitting")
	require.NoError(t, err)

	sess.RecordQuiz(session.LastQuiz{
		Subject: session.SubjectMachineLearning,
		Level:   session.LevelAdvanced,
		Score:   4,
		Total:   5,
	})

	summary, err := svc.Summarize(context.Background(), sess)
	require.NoError(t, err)
	require.Equal(t, "a warm summary", summary)

	req := provider.Calls[1]
	require.Equal(t, 380, req.MaxTokens)
	task := req.Messages[0].Content
	require.Contains(t, task, "Level: Advanced")
	require.Contains(t, task, "Subject: Machine Learning")
	require.Contains(t, task, "Score 4/5 (80%)")
	require.Contains(t, task, "You: explain overfitting")
	require.Contains(t, task, "Tutor: chat reply")
}

func TestPlanFallbackOnFailure(t *testing.T) {
	svc, _ := newTestService(
		llm.MockReply{Text: "chat reply"},
		llm.MockReply{Err: &llm.ErrUnavailable{}},
	)
	sess := session.New(session.LevelBeginner, session.SubjectGeneral)

	_, err := svc.Send(context.Background(), sess, "hi")
	require.NoError(t, err)

	plan, err := svc.Plan(context.Background(), sess)
	require.Error(t, err)
	require.Equal(t, planFallback, plan)
}
