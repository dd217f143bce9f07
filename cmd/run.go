package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/2210030429cse-tech/learningplatform/internal/app"
	"github.com/2210030429cse-tech/learningplatform/internal/llm"
	"github.com/2210030429cse-tech/learningplatform/internal/quiz"
	"github.com/2210030429cse-tech/learningplatform/internal/session"
	"github.com/2210030429cse-tech/learningplatform/internal/store"
	"github.com/2210030429cse-tech/learningplatform/internal/tutor"
)

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	ctx := cmd.Context()
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	log := newLogger()

	provider, err := llm.NewProviderFromEnv(ctx, st.EventRepo(), log)
	if err != nil {
		return fmt.Errorf("LLM provider not configured: %w\n\nSet OPENROUTER_API_KEY (or OPENAI_API_KEY, ANTHROPIC_API_KEY, GEMINI_API_KEY) and try again", err)
	}

	progress := st.ProgressRepo()
	sess := session.New(session.LevelBeginner, session.SubjectGeneral)

	return app.Run(app.Deps{
		Session:  sess,
		Tutor:    tutor.NewService(provider, progress),
		Engine:   quiz.NewEngine(provider, progress),
		Progress: progress,
		Prefs:    st.PrefsRepo(),
	})
}
