package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestProgressLifecycle(t *testing.T) {
	s := openTestStore(t)
	repo := s.ProgressRepo()
	ctx := context.Background()

	// Empty store reads as zero progress.
	p, err := repo.Get(ctx)
	require.NoError(t, err)
	require.Equal(t, Progress{}, p)

	p, err = repo.Add(ctx, 4)
	require.NoError(t, err)
	require.Equal(t, Progress{TotalQuizzes: 1, TotalCorrect: 4}, p)

	p, err = repo.Add(ctx, 2)
	require.NoError(t, err)
	require.Equal(t, Progress{TotalQuizzes: 2, TotalCorrect: 6}, p)

	p, err = repo.Get(ctx)
	require.NoError(t, err)
	require.Equal(t, Progress{TotalQuizzes: 2, TotalCorrect: 6}, p)

	require.NoError(t, repo.Reset(ctx))

	p, err = repo.Get(ctx)
	require.NoError(t, err)
	require.Equal(t, Progress{}, p)
}

func TestProgressRejectsNegativeScore(t *testing.T) {
	s := openTestStore(t)
	_, err := s.ProgressRepo().Add(context.Background(), -1)
	require.Error(t, err)
}

func TestProgressSurvivesReopen(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.db")
	ctx := context.Background()

	s, err := Open(path)
	require.NoError(t, err)
	_, err = s.ProgressRepo().Add(ctx, 5)
	require.NoError(t, err)
	require.NoError(t, s.Close())

	s2, err := Open(path)
	require.NoError(t, err)
	defer s2.Close()

	p, err := s2.ProgressRepo().Get(ctx)
	require.NoError(t, err)
	require.Equal(t, Progress{TotalQuizzes: 1, TotalCorrect: 5}, p)
}

func TestPrefs(t *testing.T) {
	s := openTestStore(t)
	repo := s.PrefsRepo()
	ctx := context.Background()

	v, err := repo.Get(ctx, PrefKeyTheme)
	require.NoError(t, err)
	require.Empty(t, v)

	require.NoError(t, repo.Set(ctx, PrefKeyTheme, "light"))
	require.NoError(t, repo.Set(ctx, PrefKeyTheme, "dark")) // upsert overwrites

	v, err = repo.Get(ctx, PrefKeyTheme)
	require.NoError(t, err)
	require.Equal(t, "dark", v)
}

func TestLLMEvents(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	for _, purpose := range []string{"chat", "quiz", "chat"} {
		require.NoError(t, repo.AppendLLMEvent(ctx, LLMEventData{
			Provider:     "openrouter",
			Model:        "xiaomi/mimo-v2-flash:free",
			Purpose:      purpose,
			InputTokens:  100,
			OutputTokens: 50,
			LatencyMs:    1200,
			Success:      true,
		}))
	}

	events, err := repo.QueryLLMEvents(ctx, QueryOpts{})
	require.NoError(t, err)
	require.Len(t, events, 3)
	// Newest first.
	require.Greater(t, events[0].ID, events[2].ID)

	chatOnly, err := repo.QueryLLMEvents(ctx, QueryOpts{Purpose: "chat"})
	require.NoError(t, err)
	require.Len(t, chatOnly, 2)

	limited, err := repo.QueryLLMEvents(ctx, QueryOpts{Limit: 1})
	require.NoError(t, err)
	require.Len(t, limited, 1)

	e, err := repo.GetLLMEvent(ctx, events[0].ID)
	require.NoError(t, err)
	require.NotNil(t, e)
	require.Equal(t, "openrouter", e.Provider)

	missing, err := repo.GetLLMEvent(ctx, 9999)
	require.NoError(t, err)
	require.Nil(t, missing)
}
