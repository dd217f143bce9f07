package cmd

import (
	"io"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/2210030429cse-tech/learningplatform/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "edumate",
	Short: "AI tutor in your terminal",
	Long:  "EduMate — an adaptive AI tutor with chat, quizzes and progress tracking, right in the terminal.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides EDUMATE_DB env var)")

	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then EDUMATE_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

// newLogger builds the application logger. The TUI owns stdout, so logs go
// to a file under the XDG state dir; logging is disabled if that fails.
func newLogger() *logrus.Logger {
	log := logrus.New()
	log.SetFormatter(&logrus.JSONFormatter{})
	log.SetOutput(io.Discard)

	stateHome := os.Getenv("XDG_STATE_HOME")
	if stateHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return log
		}
		stateHome = filepath.Join(home, ".local", "state")
	}

	path := filepath.Join(stateHome, "edumate", "edumate.log")
	if err := store.EnsureDir(path); err != nil {
		return log
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return log
	}
	log.SetOutput(f)
	return log
}
