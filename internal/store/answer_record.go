package store

import (
	"context"
	"fmt"
	"time"

	"github.com/tatumgames/tatumtech/ent"
	"github.com/tatumgames/tatumtech/ent/answerrecord"
)

// answerRepo implements AnswerRepo backed by ent and the global sequence
// counter.
type answerRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}

func (r *answerRepo) Append(ctx context.Context, data AnswerRecordData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	builder := r.client.AnswerRecord.Create().
		SetSequence(seqNum).
		SetSessionID(data.SessionID).
		SetQuestionID(data.QuestionID).
		SetLanguage(data.Language).
		SetLevel(data.Level).
		SetPlatform(data.Platform).
		SetAnswerText(data.AnswerText).
		SetCorrect(data.Correct)

	if !data.Timestamp.IsZero() {
		builder = builder.SetTimestamp(data.Timestamp)
	}

	_, err = builder.Save(ctx)
	if err != nil {
		return fmt.Errorf("save answer record: %w", err)
	}
	return nil
}

func (r *answerRepo) CountSince(ctx context.Context, language, level, platform string, since time.Time) (int, error) {
	count, err := r.client.AnswerRecord.Query().
		Where(
			answerrecord.Language(language),
			answerrecord.Level(level),
			answerrecord.Platform(platform),
			answerrecord.TimestampGTE(since),
		).
		Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count answer records: %w", err)
	}
	return count, nil
}

func (r *answerRepo) All(ctx context.Context) ([]AnswerRecord, error) {
	rows, err := r.client.AnswerRecord.Query().
		Order(ent.Asc(answerrecord.FieldSequence)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query answer records: %w", err)
	}
	return fromEntRecords(rows), nil
}

func (r *answerRepo) Recent(ctx context.Context, limit int) ([]AnswerRecord, error) {
	query := r.client.AnswerRecord.Query().
		Order(ent.Desc(answerrecord.FieldSequence))
	if limit > 0 {
		query = query.Limit(limit)
	}

	rows, err := query.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query recent answer records: %w", err)
	}
	return fromEntRecords(rows), nil
}

func fromEntRecords(rows []*ent.AnswerRecord) []AnswerRecord {
	records := make([]AnswerRecord, 0, len(rows))
	for _, row := range rows {
		records = append(records, AnswerRecord{
			Sequence:   row.Sequence,
			Timestamp:  row.Timestamp,
			SessionID:  row.SessionID,
			QuestionID: row.QuestionID,
			Language:   row.Language,
			Level:      row.Level,
			Platform:   row.Platform,
			AnswerText: row.AnswerText,
			Correct:    row.Correct,
		})
	}
	return records
}
