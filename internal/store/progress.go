package store

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// progressRowID pins the aggregate to a single row.
const progressRowID = 1

// Progress is the persisted quiz history aggregate.
type Progress struct {
	TotalQuizzes int
	TotalCorrect int
}

// ProgressRepo manages the learner's aggregate quiz history.
type ProgressRepo interface {
	// Get returns the current progress, zero-valued if nothing is stored.
	Get(ctx context.Context) (Progress, error)

	// Add records one submitted quiz: TotalCorrect += score, TotalQuizzes++.
	// Called exactly once per submission.
	Add(ctx context.Context, score int) (Progress, error)

	// Reset discards all accumulated progress.
	Reset(ctx context.Context) error
}

type progressRepo struct {
	db *gorm.DB
}

func (r *progressRepo) Get(ctx context.Context) (Progress, error) {
	var rec ProgressRecord
	err := r.db.WithContext(ctx).First(&rec, progressRowID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return Progress{}, nil
	}
	if err != nil {
		return Progress{}, fmt.Errorf("load progress: %w", err)
	}
	return Progress{
		TotalQuizzes: rec.TotalQuizzes,
		TotalCorrect: rec.TotalCorrect,
	}, nil
}

func (r *progressRepo) Add(ctx context.Context, score int) (Progress, error) {
	if score < 0 {
		return Progress{}, fmt.Errorf("negative score: %d", score)
	}

	var out Progress
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var rec ProgressRecord
		err := tx.First(&rec, progressRowID).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			rec = ProgressRecord{ID: progressRowID, SchemaVersion: SchemaVersion}
		} else if err != nil {
			return err
		}

		rec.TotalQuizzes++
		rec.TotalCorrect += score
		rec.SchemaVersion = SchemaVersion

		if err := tx.Save(&rec).Error; err != nil {
			return err
		}

		out = Progress{
			TotalQuizzes: rec.TotalQuizzes,
			TotalCorrect: rec.TotalCorrect,
		}
		return nil
	})
	if err != nil {
		return Progress{}, fmt.Errorf("update progress: %w", err)
	}
	return out, nil
}

func (r *progressRepo) Reset(ctx context.Context) error {
	err := r.db.WithContext(ctx).Delete(&ProgressRecord{}, progressRowID).Error
	if err != nil {
		return fmt.Errorf("reset progress: %w", err)
	}
	return nil
}
