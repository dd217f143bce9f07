package quiz

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/2210030429cse-tech/learningplatform/internal/llm"
	"github.com/2210030429cse-tech/learningplatform/internal/session"
	"github.com/2210030429cse-tech/learningplatform/internal/store"
)

// fakeProgress is an in-memory ProgressRepo.
type fakeProgress struct {
	progress store.Progress
	addErr   error
	addCalls int
}

func (f *fakeProgress) Get(context.Context) (store.Progress, error) {
	return f.progress, nil
}

func (f *fakeProgress) Add(_ context.Context, score int) (store.Progress, error) {
	f.addCalls++
	if f.addErr != nil {
		return store.Progress{}, f.addErr
	}
	f.progress.TotalQuizzes++
	f.progress.TotalCorrect += score
	return f.progress, nil
}

func (f *fakeProgress) Reset(context.Context) error {
	f.progress = store.Progress{}
	return nil
}

func newTestEngine(t *testing.T, replies ...llm.MockReply) (*Engine, *llm.MockProvider, *fakeProgress) {
	t.Helper()
	provider := llm.NewMockProvider(replies...)
	progress := &fakeProgress{}
	return NewEngine(provider, progress), provider, progress
}

func TestEngineRequestPopulates(t *testing.T) {
	engine, provider, _ := newTestEngine(t, llm.MockReply{Text: validBatch()})

	questions, err := engine.Request(context.Background(), session.SubjectMathematics, session.LevelBeginner)
	require.NoError(t, err)
	require.Len(t, questions, NumQuestions)
	require.Equal(t, StatePopulated, engine.State())

	// The request carries the fixed generation parameters and the subject.
	require.Equal(t, 1, provider.CallCount())
	req := provider.Calls[0]
	require.Equal(t, 0.3, req.Temperature)
	require.Equal(t, 1800, req.MaxTokens)
	require.Contains(t, req.Messages[0].Content, "Mathematics")
	require.Contains(t, req.Messages[0].Content, "Beginner")
}

func TestEngineRequestProviderError(t *testing.T) {
	engine, _, _ := newTestEngine(t, llm.MockReply{Err: &llm.ErrUnavailable{}})

	_, err := engine.Request(context.Background(), session.SubjectGeneral, session.LevelBeginner)
	require.Error(t, err)
	require.Equal(t, StateEmpty, engine.State())
}

func TestEngineRequestKeepsStateOnBadPayload(t *testing.T) {
	engine, provider, _ := newTestEngine(t, llm.MockReply{Text: validBatch()})

	_, err := engine.Request(context.Background(), session.SubjectPython, session.LevelIntermediate)
	require.NoError(t, err)
	require.NoError(t, engine.Select(0, "A"))

	// Second request fails validation. The first quiz and its answer survive.
	provider.AddReply(llm.MockReply{Text: "not json at all"})
	_, err = engine.Request(context.Background(), session.SubjectPython, session.LevelIntermediate)

	var malformed *ErrMalformedResponse
	require.ErrorAs(t, err, &malformed)
	require.Equal(t, StatePopulated, engine.State())
	require.Equal(t, map[int]string{0: "A"}, engine.Answers())
}

func TestEngineSelect(t *testing.T) {
	engine, _, _ := newTestEngine(t, llm.MockReply{Text: validBatch()})
	_, err := engine.Request(context.Background(), session.SubjectGeneral, session.LevelBeginner)
	require.NoError(t, err)

	require.NoError(t, engine.Select(0, "A"))
	require.NoError(t, engine.Select(0, "C")) // reselect overwrites
	require.Equal(t, "C", engine.Answers()[0])

	require.Error(t, engine.Select(-1, "A"))
	require.Error(t, engine.Select(NumQuestions, "A"))
	require.Error(t, engine.Select(1, "E"))
}

func TestEngineSelectWithoutQuiz(t *testing.T) {
	engine, _, _ := newTestEngine(t)
	require.ErrorIs(t, engine.Select(0, "A"), ErrNoActiveQuiz)
}

func TestEngineSubmit(t *testing.T) {
	engine, _, progress := newTestEngine(t, llm.MockReply{Text: validBatch()})
	_, err := engine.Request(context.Background(), session.SubjectWebDevelopment, session.LevelAdvanced)
	require.NoError(t, err)

	// validBatch answers are all "B"; answer 3 right, 2 wrong.
	for i, letter := range []string{"B", "B", "B", "A", "A"} {
		require.NoError(t, engine.Select(i, letter))
	}

	result, err := engine.Submit(context.Background())
	require.NoError(t, err)
	require.Equal(t, Result{Score: 3, Percentage: 60}, result)
	require.Equal(t, StateSubmitted, engine.State())

	require.Equal(t, store.Progress{TotalQuizzes: 1, TotalCorrect: 3}, progress.progress)
}

func TestEngineSubmitGuards(t *testing.T) {
	engine, _, progress := newTestEngine(t, llm.MockReply{Text: validBatch()})

	_, err := engine.Submit(context.Background())
	require.ErrorIs(t, err, ErrNoActiveQuiz)

	_, err = engine.Request(context.Background(), session.SubjectGeneral, session.LevelBeginner)
	require.NoError(t, err)

	require.NoError(t, engine.Select(0, "B"))
	_, err = engine.Submit(context.Background())
	require.ErrorIs(t, err, ErrIncomplete)
	require.Zero(t, progress.addCalls)

	for i := 0; i < NumQuestions; i++ {
		require.NoError(t, engine.Select(i, "B"))
	}
	_, err = engine.Submit(context.Background())
	require.NoError(t, err)

	_, err = engine.Submit(context.Background())
	require.ErrorIs(t, err, ErrAlreadySubmitted)
	require.Equal(t, 1, progress.addCalls)

	require.ErrorIs(t, engine.Select(0, "A"), ErrAlreadySubmitted)
}

func TestEngineSubmitPersistFailure(t *testing.T) {
	engine, _, progress := newTestEngine(t, llm.MockReply{Text: validBatch()})
	_, err := engine.Request(context.Background(), session.SubjectGeneral, session.LevelBeginner)
	require.NoError(t, err)

	for i := 0; i < NumQuestions; i++ {
		require.NoError(t, engine.Select(i, "B"))
	}

	progress.addErr = errors.New("disk full")
	_, err = engine.Submit(context.Background())
	require.Error(t, err)

	// The quiz stays answerable; a retry after the failure succeeds and the
	// aggregate is bumped exactly once.
	require.Equal(t, StatePopulated, engine.State())

	progress.addErr = nil
	result, err := engine.Submit(context.Background())
	require.NoError(t, err)
	require.Equal(t, 5, result.Score)
	require.Equal(t, store.Progress{TotalQuizzes: 1, TotalCorrect: 5}, progress.progress)
}

func TestEngineReset(t *testing.T) {
	engine, _, _ := newTestEngine(t, llm.MockReply{Text: validBatch()})
	_, err := engine.Request(context.Background(), session.SubjectGeneral, session.LevelBeginner)
	require.NoError(t, err)
	require.NoError(t, engine.Select(0, "A"))

	engine.Reset()
	require.Equal(t, StateEmpty, engine.State())
	require.Empty(t, engine.Questions())
	require.Empty(t, engine.Answers())
}

func TestEngineFullRound(t *testing.T) {
	engine, _, progress := newTestEngine(t,
		llm.MockReply{Text: validBatch()},
		llm.MockReply{Text: validBatch()},
	)

	ctx := context.Background()

	// First quiz: 4/5.
	_, err := engine.Request(ctx, session.SubjectMathematics, session.LevelBeginner)
	require.NoError(t, err)
	for i, letter := range []string{"B", "B", "B", "B", "C"} {
		require.NoError(t, engine.Select(i, letter))
	}
	result, err := engine.Submit(ctx)
	require.NoError(t, err)
	require.Equal(t, Result{Score: 4, Percentage: 80}, result)

	// Second quiz replaces the submitted one directly.
	_, err = engine.Request(ctx, session.SubjectMathematics, session.LevelBeginner)
	require.NoError(t, err)
	require.Equal(t, StatePopulated, engine.State())
	require.Empty(t, engine.Answers())

	for i := 0; i < NumQuestions; i++ {
		require.NoError(t, engine.Select(i, "B"))
	}
	result, err = engine.Submit(ctx)
	require.NoError(t, err)
	require.Equal(t, 5, result.Score)

	require.Equal(t, store.Progress{TotalQuizzes: 2, TotalCorrect: 9}, progress.progress)
	require.Equal(t, 90, Accuracy(progress.progress.TotalCorrect, progress.progress.TotalQuizzes))
}
