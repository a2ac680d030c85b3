package questionbank

import (
	"context"
	"time"
)

// Question is one multiple-choice coding-challenge question from the bank.
// Questions are immutable once loaded.
type Question struct {
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

// Source supplies ordered question lists to the session engine.
type Source interface {
	// LoadQuestions returns the bank's questions for the given language
	// and level, in bank order. An empty slice means no questions are
	// available for that combination.
	LoadQuestions(ctx context.Context, language, level string) ([]Question, error)
}
