package store

import (
	"context"
	"fmt"

	"github.com/tatumgames/tatumtech/ent"
	"github.com/tatumgames/tatumtech/ent/question"
)

// questionRepo implements QuestionRepo backed by ent.
type questionRepo struct {
	client *ent.Client
}

func (r *questionRepo) Put(ctx context.Context, q QuestionRecord) (bool, error) {
	exists, err := r.client.Question.Query().
		Where(question.ID(q.ID)).
		Exist(ctx)
	if err != nil {
		return false, fmt.Errorf("check question %s: %w", q.ID, err)
	}
	if exists {
		return false, nil
	}

	builder := r.client.Question.Create().
		SetID(q.ID).
		SetLanguage(q.Language).
		SetLevel(q.Level).
		SetPlatform(q.Platform).
		SetDifficulty(q.Difficulty).
		SetPrompt(q.Prompt).
		SetChoices(q.Choices).
		SetAnswer(q.Answer).
		SetExplanation(q.Explanation)

	if !q.CreatedAt.IsZero() {
		builder = builder.SetCreatedAt(q.CreatedAt)
	}

	_, err = builder.Save(ctx)
	if err != nil {
		return false, fmt.Errorf("save question %s: %w", q.ID, err)
	}
	return true, nil
}

func (r *questionRepo) ByLanguageLevel(ctx context.Context, language, level string) ([]QuestionRecord, error) {
	rows, err := r.client.Question.Query().
		Where(
			question.Language(language),
			question.Level(level),
		).
		Order(ent.Asc(question.FieldCreatedAt), ent.Asc(question.FieldID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query questions: %w", err)
	}

	records := make([]QuestionRecord, 0, len(rows))
	for _, row := range rows {
		records = append(records, QuestionRecord{
			ID:          row.ID,
			CreatedAt:   row.CreatedAt,
			Language:    row.Language,
			Level:       row.Level,
			Platform:    row.Platform,
			Difficulty:  row.Difficulty,
			Prompt:      row.Prompt,
			Choices:     row.Choices,
			Answer:      row.Answer,
			Explanation: row.Explanation,
		})
	}
	return records, nil
}

func (r *questionRepo) Count(ctx context.Context) (int, error) {
	count, err := r.client.Question.Query().Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count questions: %w", err)
	}
	return count, nil
}
