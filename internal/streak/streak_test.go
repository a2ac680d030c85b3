package streak

import (
	"context"
	"testing"
	"time"

	"github.com/tatumgames/tatumtech/internal/store"
)

func day(yearDay int, hour int) time.Time {
	return time.Date(2025, time.March, yearDay, hour, 0, 0, 0, time.UTC)
}

func TestFromTimesEmpty(t *testing.T) {
	if got := FromTimes(nil, time.UTC); got != 0 {
		t.Errorf("streak = %d, want 0", got)
	}
}

func TestFromTimesSingleDay(t *testing.T) {
	times := []time.Time{day(10, 9), day(10, 12), day(10, 23)}
	if got := FromTimes(times, time.UTC); got != 1 {
		t.Errorf("streak = %d, want 1", got)
	}
}

func TestFromTimesThreeConsecutiveDays(t *testing.T) {
	times := []time.Time{day(10, 9), day(11, 20), day(12, 7)}
	if got := FromTimes(times, time.UTC); got != 3 {
		t.Errorf("streak = %d, want 3", got)
	}
}

func TestFromTimesGapBreaksRun(t *testing.T) {
	// Days 10, 11, 13: the gap at day 12 breaks the run, counting from
	// the most recent day backward.
	times := []time.Time{day(10, 9), day(11, 9), day(13, 9)}
	if got := FromTimes(times, time.UTC); got != 2 {
		t.Errorf("streak = %d, want 2", got)
	}
}

func TestFromTimesDuplicateDaysDeduplicated(t *testing.T) {
	times := []time.Time{day(10, 9), day(10, 10), day(11, 9), day(11, 23)}
	if got := FromTimes(times, time.UTC); got != 2 {
		t.Errorf("streak = %d, want 2", got)
	}
}

func TestFromTimesMonthBoundary(t *testing.T) {
	times := []time.Time{
		time.Date(2025, time.January, 31, 12, 0, 0, 0, time.UTC),
		time.Date(2025, time.February, 1, 12, 0, 0, 0, time.UTC),
	}
	if got := FromTimes(times, time.UTC); got != 2 {
		t.Errorf("streak = %d, want 2", got)
	}
}

func TestFromTimesHistoricalRunNotReanchored(t *testing.T) {
	// The most recent answer is days in the past; the run ending there
	// is still reported.
	times := []time.Time{day(1, 9), day(2, 9), day(3, 9)}
	if got := FromTimes(times, time.UTC); got != 3 {
		t.Errorf("streak = %d, want 3", got)
	}
}

func TestFromTimesBucketsInLocation(t *testing.T) {
	// 23:30 UTC on day 10 is already day 11 in UTC+2, so together with a
	// day 12 answer (UTC+2) the run is 2.
	loc := time.FixedZone("UTC+2", 2*60*60)
	times := []time.Time{
		time.Date(2025, time.March, 10, 23, 30, 0, 0, time.UTC),
		time.Date(2025, time.March, 12, 9, 0, 0, 0, loc),
	}
	if got := FromTimes(times, loc); got != 2 {
		t.Errorf("streak = %d, want 2", got)
	}
}

// recordedRepo is a minimal store.AnswerRepo returning fixed records.
type recordedRepo struct {
	records []store.AnswerRecord
}

func (r *recordedRepo) Append(ctx context.Context, data store.AnswerRecordData) error {
	r.records = append(r.records, store.AnswerRecord{Timestamp: data.Timestamp})
	return nil
}

func (r *recordedRepo) CountSince(ctx context.Context, language, level, platform string, since time.Time) (int, error) {
	return 0, nil
}

func (r *recordedRepo) All(ctx context.Context) ([]store.AnswerRecord, error) {
	return r.records, nil
}

func (r *recordedRepo) Recent(ctx context.Context, limit int) ([]store.AnswerRecord, error) {
	return r.records, nil
}

func TestCalculatorCurrentIsIdempotent(t *testing.T) {
	repo := &recordedRepo{records: []store.AnswerRecord{
		{Timestamp: day(10, 9)},
		{Timestamp: day(11, 9)},
	}}
	calc := NewCalculator(repo, time.UTC)
	ctx := context.Background()

	first, err := calc.Current(ctx)
	if err != nil {
		t.Fatalf("current: %v", err)
	}
	second, err := calc.Current(ctx)
	if err != nil {
		t.Fatalf("current (again): %v", err)
	}
	if first != second {
		t.Errorf("streak changed between calls: %d then %d", first, second)
	}
	if first != 2 {
		t.Errorf("streak = %d, want 2", first)
	}
}
