package store

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// PrefKeyTheme stores the UI theme preference, "dark" or "light".
const PrefKeyTheme = "theme"

// PrefsRepo manages persisted string preferences.
type PrefsRepo interface {
	// Get returns the stored value for key, or ("", nil) if unset.
	Get(ctx context.Context, key string) (string, error)

	// Set stores value under key, overwriting any previous value.
	Set(ctx context.Context, key, value string) error
}

type prefsRepo struct {
	db *gorm.DB
}

func (r *prefsRepo) Get(ctx context.Context, key string) (string, error) {
	var pref Preference
	err := r.db.WithContext(ctx).First(&pref, "key = ?", key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("load preference %q: %w", key, err)
	}
	return pref.Value, nil
}

func (r *prefsRepo) Set(ctx context.Context, key, value string) error {
	pref := Preference{
		Key:           key,
		Value:         value,
		SchemaVersion: SchemaVersion,
	}
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "schema_version", "updated_at"}),
		}).
		Create(&pref).Error
	if err != nil {
		return fmt.Errorf("save preference %q: %w", key, err)
	}
	return nil
}
