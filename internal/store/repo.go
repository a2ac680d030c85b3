package store

import (
	"context"
	"time"
)

// AnswerRecordData captures the data for a single submitted answer.
type AnswerRecordData struct {
	SessionID  string
	QuestionID string
	Language   string
	Level      string
	Platform   string
	AnswerText string
	Correct    bool

	// Timestamp is the submission time. The zero value means "now".
	Timestamp time.Time
}

// AnswerRecord is a persisted answer record as read back from the store.
type AnswerRecord struct {
	Sequence   int64
	Timestamp  time.Time
	SessionID  string
	QuestionID string
	Language   string
	Level      string
	Platform   string
	AnswerText string
	Correct    bool
}

// AnswerRepo provides append and read access to the answer record log.
// Records are immutable once written; there is no update or delete.
type AnswerRepo interface {
	// Append durably stores a new answer record.
	Append(ctx context.Context, data AnswerRecordData) error

	// CountSince returns the number of records for the given
	// (language, level, platform) combination with timestamp >= since.
	CountSince(ctx context.Context, language, level, platform string, since time.Time) (int, error)

	// All returns every answer record ordered by ascending sequence.
	All(ctx context.Context) ([]AnswerRecord, error)

	// Recent returns the latest records ordered newest first,
	// at most limit of them (0 = unlimited).
	Recent(ctx context.Context, limit int) ([]AnswerRecord, error)
}

// QuestionRecord is a stored question as read back from the store.
type QuestionRecord struct {
	ID          string
	CreatedAt   time.Time
	Language    string
	Level       string
	Platform    string
	Difficulty  int
	Prompt      string
	Choices     []string
	Answer      string
	Explanation string
}

// QuestionRepo manages the imported question bank.
type QuestionRepo interface {
	// Put inserts a question if its ID is not already present.
	// Returns true if a row was inserted, false if it already existed.
	Put(ctx context.Context, q QuestionRecord) (bool, error)

	// ByLanguageLevel returns questions for the given language and level
	// in their bank order (ascending creation time, then ID).
	ByLanguageLevel(ctx context.Context, language, level string) ([]QuestionRecord, error)

	// Count returns the total number of stored questions.
	Count(ctx context.Context) (int, error)
}
