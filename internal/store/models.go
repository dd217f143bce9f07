package store

import "time"

// ProgressRecord is the single aggregate row of quiz history.
// TotalCorrect accumulates scores out of 5; TotalQuizzes counts submissions.
type ProgressRecord struct {
	ID            uint `gorm:"primaryKey"`
	SchemaVersion int
	TotalQuizzes  int
	TotalCorrect  int
	UpdatedAt     time.Time
}

// Preference is a string key/value setting, e.g. theme = dark|light.
type Preference struct {
	Key           string `gorm:"primaryKey"`
	Value         string
	SchemaVersion int
	UpdatedAt     time.Time
}

// LLMEvent records one request to the external model.
type LLMEvent struct {
	ID           uint `gorm:"primaryKey"`
	CreatedAt    time.Time
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}
