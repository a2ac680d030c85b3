package questionbank

import (
	"context"
	"fmt"

	"github.com/tatumgames/tatumtech/internal/store"
)

// StoreSource loads questions from the local store, where the importer
// placed them.
type StoreSource struct {
	questions store.QuestionRepo
}

// NewStoreSource creates a Source backed by the given question repository.
func NewStoreSource(questions store.QuestionRepo) *StoreSource {
	return &StoreSource{questions: questions}
}

func (s *StoreSource) LoadQuestions(ctx context.Context, language, level string) ([]Question, error) {
	records, err := s.questions.ByLanguageLevel(ctx, language, level)
	if err != nil {
		return nil, fmt.Errorf("query question bank: %w", err)
	}

	questions := make([]Question, 0, len(records))
	for _, rec := range records {
		questions = append(questions, Question{
			ID:          rec.ID,
			CreatedAt:   rec.CreatedAt,
			Language:    rec.Language,
			Level:       rec.Level,
			Platform:    rec.Platform,
			Difficulty:  rec.Difficulty,
			Prompt:      rec.Prompt,
			Choices:     rec.Choices,
			Answer:      rec.Answer,
			Explanation: rec.Explanation,
		})
	}
	return questions, nil
}
