package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/2210030429cse-tech/learningplatform/internal/quiz"
	"github.com/2210030429cse-tech/learningplatform/internal/store"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show quiz statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}

		s, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		progress, err := s.ProgressRepo().Get(context.Background())
		if err != nil {
			return fmt.Errorf("load progress: %w", err)
		}

		if progress.TotalQuizzes == 0 {
			fmt.Println("No quizzes taken yet.")
			return nil
		}

		accuracy := quiz.Accuracy(progress.TotalCorrect, progress.TotalQuizzes)

		fmt.Printf("Quizzes taken:    %d\n", progress.TotalQuizzes)
		fmt.Printf("Correct answers:  %d of %d\n", progress.TotalCorrect, progress.TotalQuizzes*quiz.NumQuestions)
		fmt.Printf("Accuracy:         %d%%\n", accuracy)
		fmt.Println()
		fmt.Println(quiz.Motivation(accuracy))
		return nil
	},
}
