package challenge

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/tatumgames/tatumtech/internal/questionbank"
	"github.com/tatumgames/tatumtech/internal/store"
)

// fakeAnswerRepo is an in-memory store.AnswerRepo for engine tests.
type fakeAnswerRepo struct {
	records    []store.AnswerRecord
	failAppend error
	seq        int64
}

func (f *fakeAnswerRepo) Append(ctx context.Context, data store.AnswerRecordData) error {
	if f.failAppend != nil {
		return f.failAppend
	}
	f.seq++
	f.records = append(f.records, store.AnswerRecord{
		Sequence:   f.seq,
		Timestamp:  data.Timestamp,
		SessionID:  data.SessionID,
		QuestionID: data.QuestionID,
		Language:   data.Language,
		Level:      data.Level,
		Platform:   data.Platform,
		AnswerText: data.AnswerText,
		Correct:    data.Correct,
	})
	return nil
}

func (f *fakeAnswerRepo) CountSince(ctx context.Context, language, level, platform string, since time.Time) (int, error) {
	count := 0
	for _, rec := range f.records {
		if rec.Language == language && rec.Level == level && rec.Platform == platform && !rec.Timestamp.Before(since) {
			count++
		}
	}
	return count, nil
}

func (f *fakeAnswerRepo) All(ctx context.Context) ([]store.AnswerRecord, error) {
	return f.records, nil
}

func (f *fakeAnswerRepo) Recent(ctx context.Context, limit int) ([]store.AnswerRecord, error) {
	out := make([]store.AnswerRecord, len(f.records))
	copy(out, f.records)
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

// fakeSource serves a fixed question list for any language/level.
type fakeSource struct {
	questions []questionbank.Question
	err       error
}

func (f *fakeSource) LoadQuestions(ctx context.Context, language, level string) ([]questionbank.Question, error) {
	return f.questions, f.err
}

func makeQuestions(n int) []questionbank.Question {
	questions := make([]questionbank.Question, 0, n)
	for i := 0; i < n; i++ {
		questions = append(questions, questionbank.Question{
			ID:       fmt.Sprintf("q-%d", i+1),
			Language: "Kotlin",
			Level:    LevelBeginner,
			Platform: "Mobile",
			Prompt:   fmt.Sprintf("prompt %d", i+1),
			Choices:  []string{"right", "wrong"},
			Answer:   "right",
		})
	}
	return questions
}

var testNow = time.Date(2025, time.June, 5, 14, 30, 0, 0, time.UTC)

func newTestSession(t *testing.T, repo *fakeAnswerRepo, questions []questionbank.Question) *Session {
	t.Helper()
	s := NewSession(Config{
		Answers:  repo,
		Source:   &fakeSource{questions: questions},
		Platform: "Mobile",
		Now:      func() time.Time { return testNow },
		Location: time.UTC,
	})
	if len(questions) > 0 {
		if err := s.LoadQuestions(context.Background(), "Kotlin", LevelBeginner); err != nil {
			t.Fatalf("load questions: %v", err)
		}
	}
	return s
}

func TestLoadQuestionsEmptySet(t *testing.T) {
	s := newTestSession(t, &fakeAnswerRepo{}, nil)

	err := s.LoadQuestions(context.Background(), "Kotlin", LevelBeginner)
	if !errors.Is(err, ErrEmptyQuestionSet) {
		t.Fatalf("err = %v, want ErrEmptyQuestionSet", err)
	}
}

func TestSubmitAnswerBeforeLoad(t *testing.T) {
	s := newTestSession(t, &fakeAnswerRepo{}, nil)

	_, err := s.SubmitAnswer(context.Background(), "right")
	if !errors.Is(err, ErrEmptyQuestionSet) {
		t.Fatalf("err = %v, want ErrEmptyQuestionSet", err)
	}
}

func TestSubmitAnswerCorrect(t *testing.T) {
	repo := &fakeAnswerRepo{}
	s := newTestSession(t, repo, makeQuestions(3))

	outcome, err := s.SubmitAnswer(context.Background(), "right")
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if !outcome.Correct {
		t.Error("expected outcome.Correct")
	}
	if outcome.RemainingToday != 4 {
		t.Errorf("RemainingToday = %d, want 4", outcome.RemainingToday)
	}
	if s.Phase() != PhaseAdvancing {
		t.Errorf("phase = %v, want advancing", s.Phase())
	}
	if s.CorrectCount() != 1 {
		t.Errorf("correct count = %d, want 1", s.CorrectCount())
	}
	if len(repo.records) != 1 {
		t.Fatalf("len(records) = %d, want 1", len(repo.records))
	}
	if repo.records[0].QuestionID != "q-1" {
		t.Errorf("question id = %q, want q-1", repo.records[0].QuestionID)
	}
	if !repo.records[0].Timestamp.Equal(testNow) {
		t.Errorf("timestamp = %v, want %v", repo.records[0].Timestamp, testNow)
	}
}

func TestSubmitAnswerIncorrect(t *testing.T) {
	repo := &fakeAnswerRepo{}
	s := newTestSession(t, repo, makeQuestions(1))

	outcome, err := s.SubmitAnswer(context.Background(), "wrong")
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if outcome.Correct {
		t.Error("expected incorrect outcome")
	}
	if s.CorrectCount() != 0 {
		t.Errorf("correct count = %d, want 0", s.CorrectCount())
	}
	// The record is still persisted.
	if len(repo.records) != 1 {
		t.Errorf("len(records) = %d, want 1", len(repo.records))
	}
	if repo.records[0].Correct {
		t.Error("record should be marked incorrect")
	}
}

func TestSubmitAnswerOutsideAwaitingPhase(t *testing.T) {
	s := newTestSession(t, &fakeAnswerRepo{}, makeQuestions(2))

	if _, err := s.SubmitAnswer(context.Background(), "right"); err != nil {
		t.Fatalf("submit: %v", err)
	}

	// Phase is now Advancing; a second submit must be rejected.
	_, err := s.SubmitAnswer(context.Background(), "right")
	if !errors.Is(err, ErrNotAwaitingAnswer) {
		t.Fatalf("err = %v, want ErrNotAwaitingAnswer", err)
	}
}

func TestDailyCapEnforced(t *testing.T) {
	repo := &fakeAnswerRepo{}
	s := newTestSession(t, repo, makeQuestions(6))
	ctx := context.Background()

	// Beginner cap is 5: the first five submissions persist.
	for i := 0; i < 5; i++ {
		if _, err := s.SubmitAnswer(ctx, "right"); err != nil {
			t.Fatalf("submit %d: %v", i+1, err)
		}
		s.Advance()
	}
	if len(repo.records) != 5 {
		t.Fatalf("len(records) = %d, want 5", len(repo.records))
	}

	ok, err := s.CanAnswerMoreToday(ctx, "Kotlin", LevelBeginner, "Mobile")
	if err != nil {
		t.Fatalf("can answer more today: %v", err)
	}
	if ok {
		t.Error("expected CanAnswerMoreToday to be false at the cap")
	}

	// The sixth submission is rejected and writes nothing.
	_, err = s.SubmitAnswer(ctx, "right")
	if !errors.Is(err, ErrDailyLimitReached) {
		t.Fatalf("err = %v, want ErrDailyLimitReached", err)
	}
	if len(repo.records) != 5 {
		t.Errorf("len(records) = %d after rejection, want 5", len(repo.records))
	}
	if s.Phase() != PhaseLimitReached {
		t.Errorf("phase = %v, want limit-reached", s.Phase())
	}

	// LimitReached is terminal: Advance does not leave it.
	if got := s.Advance(); got != PhaseLimitReached {
		t.Errorf("advance from limit-reached = %v, want limit-reached", got)
	}
}

func TestDailyCapScopedToCombination(t *testing.T) {
	repo := &fakeAnswerRepo{}
	// Five Beginner answers today already on record.
	for i := 0; i < 5; i++ {
		repo.Append(context.Background(), store.AnswerRecordData{
			QuestionID: fmt.Sprintf("old-%d", i),
			Language:   "Kotlin",
			Level:      LevelBeginner,
			Platform:   "Mobile",
			AnswerText: "x",
			Timestamp:  testNow.Add(-time.Hour),
		})
	}
	s := newTestSession(t, repo, makeQuestions(1))
	ctx := context.Background()

	ok, err := s.CanAnswerMoreToday(ctx, "Kotlin", LevelBeginner, "Mobile")
	if err != nil {
		t.Fatalf("can answer more today: %v", err)
	}
	if ok {
		t.Error("Beginner track should be capped")
	}

	// A different level and a different platform are counted independently.
	for _, probe := range []struct{ language, level, platform string }{
		{"Kotlin", LevelAdvanced, "Mobile"},
		{"Kotlin", LevelBeginner, "Web"},
		{"Go", LevelBeginner, "Mobile"},
	} {
		ok, err := s.CanAnswerMoreToday(ctx, probe.language, probe.level, probe.platform)
		if err != nil {
			t.Fatalf("can answer more today (%v): %v", probe, err)
		}
		if !ok {
			t.Errorf("expected %s/%s/%s to be under its cap", probe.language, probe.level, probe.platform)
		}
	}
}

func TestDailyCapIgnoresEarlierDays(t *testing.T) {
	repo := &fakeAnswerRepo{}
	// Yesterday's answers must not count toward today's cap.
	for i := 0; i < 5; i++ {
		repo.Append(context.Background(), store.AnswerRecordData{
			QuestionID: fmt.Sprintf("old-%d", i),
			Language:   "Kotlin",
			Level:      LevelBeginner,
			Platform:   "Mobile",
			AnswerText: "x",
			Timestamp:  testNow.Add(-24 * time.Hour),
		})
	}
	s := newTestSession(t, repo, makeQuestions(1))

	if _, err := s.SubmitAnswer(context.Background(), "right"); err != nil {
		t.Fatalf("submit: %v", err)
	}
}

func TestAdvanceWalksToResults(t *testing.T) {
	s := newTestSession(t, &fakeAnswerRepo{}, makeQuestions(3))

	if got := s.Advance(); got != PhaseAwaitingAnswer || s.Index() != 1 {
		t.Fatalf("after advance 1: phase=%v index=%d, want awaiting-answer/1", got, s.Index())
	}
	if got := s.Advance(); got != PhaseAwaitingAnswer || s.Index() != 2 {
		t.Fatalf("after advance 2: phase=%v index=%d, want awaiting-answer/2", got, s.Index())
	}
	if got := s.Advance(); got != PhaseShowingResults {
		t.Fatalf("after advance 3: phase=%v, want showing-results", got)
	}
	// Terminal: further advances stay in results.
	if got := s.Advance(); got != PhaseShowingResults {
		t.Errorf("advance past results = %v, want showing-results", got)
	}
}

func TestSubmitWriteFailureLeavesStateUntouched(t *testing.T) {
	repo := &fakeAnswerRepo{failAppend: errors.New("disk full")}
	s := newTestSession(t, repo, makeQuestions(2))
	ctx := context.Background()

	_, err := s.SubmitAnswer(ctx, "right")
	if err == nil {
		t.Fatal("expected an error")
	}
	if errors.Is(err, ErrDailyLimitReached) || errors.Is(err, ErrNotAwaitingAnswer) {
		t.Fatalf("err = %v, want a wrapped write error", err)
	}
	if s.Phase() != PhaseAwaitingAnswer {
		t.Errorf("phase = %v, want awaiting-answer", s.Phase())
	}
	if s.Index() != 0 || s.CorrectCount() != 0 {
		t.Errorf("index=%d correct=%d, want 0/0", s.Index(), s.CorrectCount())
	}
	if len(repo.records) != 0 {
		t.Errorf("len(records) = %d, want 0", len(repo.records))
	}

	// The same submission succeeds once the store recovers.
	repo.failAppend = nil
	outcome, err := s.SubmitAnswer(ctx, "right")
	if err != nil {
		t.Fatalf("retry submit: %v", err)
	}
	if !outcome.Correct {
		t.Error("expected correct outcome on retry")
	}
	if len(repo.records) != 1 {
		t.Errorf("len(records) = %d, want 1", len(repo.records))
	}
}

func TestResetForNewDayKeepsPersistedRecords(t *testing.T) {
	repo := &fakeAnswerRepo{}
	s := newTestSession(t, repo, makeQuestions(2))
	ctx := context.Background()

	if _, err := s.SubmitAnswer(ctx, "right"); err != nil {
		t.Fatalf("submit: %v", err)
	}
	s.Advance()

	s.ResetForNewDay()

	if s.Phase() != PhaseAwaitingAnswer || s.Index() != 0 {
		t.Errorf("phase=%v index=%d, want awaiting-answer/0", s.Phase(), s.Index())
	}
	if s.CorrectCount() != 0 {
		t.Errorf("correct count = %d, want 0", s.CorrectCount())
	}
	if _, ok := s.ChosenAnswer("q-1"); ok {
		t.Error("chosen answers should be cleared")
	}

	// Reset never deletes history.
	records, err := repo.All(ctx)
	if err != nil {
		t.Fatalf("all: %v", err)
	}
	if len(records) != 1 {
		t.Errorf("len(records) = %d, want 1", len(records))
	}
}

func TestCurrentQuestion(t *testing.T) {
	s := newTestSession(t, &fakeAnswerRepo{}, makeQuestions(2))

	q, ok := s.CurrentQuestion()
	if !ok || q.ID != "q-1" {
		t.Fatalf("current = %q/%v, want q-1/true", q.ID, ok)
	}

	s.Advance()
	q, ok = s.CurrentQuestion()
	if !ok || q.ID != "q-2" {
		t.Fatalf("current after advance = %q/%v, want q-2/true", q.ID, ok)
	}
}
