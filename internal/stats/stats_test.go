package stats

import (
	"context"
	"testing"
	"time"

	"github.com/tatumgames/tatumtech/internal/store"
	"github.com/tatumgames/tatumtech/internal/streak"
)

func record(language, level string, correct bool, day int) store.AnswerRecord {
	return store.AnswerRecord{
		Language:  language,
		Level:     level,
		Platform:  "Mobile",
		Correct:   correct,
		Timestamp: time.Date(2025, time.April, day, 10, 0, 0, 0, time.UTC),
	}
}

func TestComputeEmpty(t *testing.T) {
	summary := Compute(nil)
	if summary.TotalAnswered != 0 || summary.TotalCorrect != 0 {
		t.Errorf("totals = %d/%d, want 0/0", summary.TotalAnswered, summary.TotalCorrect)
	}
	if summary.Accuracy != 0 {
		t.Errorf("accuracy = %f, want 0", summary.Accuracy)
	}
}

func TestComputeAggregates(t *testing.T) {
	records := []store.AnswerRecord{
		record("Kotlin", "Beginner", true, 1),
		record("Kotlin", "Beginner", false, 1),
		record("Kotlin", "Advanced", true, 2),
		record("Go", "Beginner", true, 2),
	}

	summary := Compute(records)

	if summary.TotalAnswered != 4 {
		t.Errorf("TotalAnswered = %d, want 4", summary.TotalAnswered)
	}
	if summary.TotalCorrect != 3 {
		t.Errorf("TotalCorrect = %d, want 3", summary.TotalCorrect)
	}
	if summary.Accuracy != 0.75 {
		t.Errorf("Accuracy = %f, want 0.75", summary.Accuracy)
	}

	kb := summary.ByTrack[Track{Language: "Kotlin", Level: "Beginner"}]
	if kb.Answered != 2 || kb.Correct != 1 || kb.Accuracy != 0.5 {
		t.Errorf("Kotlin/Beginner = %+v, want 2 answered, 1 correct, 0.5", kb)
	}
}

func TestSummaryTracksSorted(t *testing.T) {
	summary := Compute([]store.AnswerRecord{
		record("Kotlin", "Beginner", true, 1),
		record("Go", "Beginner", true, 1),
		record("Kotlin", "Advanced", true, 1),
	})

	tracks := summary.Tracks()
	want := []Track{
		{Language: "Go", Level: "Beginner"},
		{Language: "Kotlin", Level: "Advanced"},
		{Language: "Kotlin", Level: "Beginner"},
	}
	if len(tracks) != len(want) {
		t.Fatalf("len(tracks) = %d, want %d", len(tracks), len(want))
	}
	for i := range want {
		if tracks[i] != want[i] {
			t.Errorf("tracks[%d] = %+v, want %+v", i, tracks[i], want[i])
		}
	}
}

// fixedRepo returns a fixed record list.
type fixedRepo struct {
	records []store.AnswerRecord
}

func (r *fixedRepo) Append(ctx context.Context, data store.AnswerRecordData) error { return nil }

func (r *fixedRepo) CountSince(ctx context.Context, language, level, platform string, since time.Time) (int, error) {
	return 0, nil
}

func (r *fixedRepo) All(ctx context.Context) ([]store.AnswerRecord, error) {
	return r.records, nil
}

func (r *fixedRepo) Recent(ctx context.Context, limit int) ([]store.AnswerRecord, error) {
	return r.records, nil
}

func TestServiceSummaryIncludesStreak(t *testing.T) {
	repo := &fixedRepo{records: []store.AnswerRecord{
		record("Kotlin", "Beginner", true, 1),
		record("Kotlin", "Beginner", true, 2),
	}}
	service := NewService(repo, streak.NewCalculator(repo, time.UTC))

	summary, err := service.Summary(context.Background())
	if err != nil {
		t.Fatalf("summary: %v", err)
	}
	if summary.Streak != 2 {
		t.Errorf("Streak = %d, want 2", summary.Streak)
	}
	if summary.TotalAnswered != 2 {
		t.Errorf("TotalAnswered = %d, want 2", summary.TotalAnswered)
	}
}
