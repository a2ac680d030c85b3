package app

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/tatumgames/tatumtech/internal/questionbank"
	"github.com/tatumgames/tatumtech/internal/store"
)

type memAnswerRepo struct {
	records []store.AnswerRecord
}

func (m *memAnswerRepo) Append(ctx context.Context, data store.AnswerRecordData) error {
	m.records = append(m.records, store.AnswerRecord{
		QuestionID: data.QuestionID,
		Language:   data.Language,
		Level:      data.Level,
		Platform:   data.Platform,
		AnswerText: data.AnswerText,
		Correct:    data.Correct,
		Timestamp:  data.Timestamp,
	})
	return nil
}

func (m *memAnswerRepo) CountSince(ctx context.Context, language, level, platform string, since time.Time) (int, error) {
	count := 0
	for _, rec := range m.records {
		if rec.Language == language && rec.Level == level && rec.Platform == platform && !rec.Timestamp.Before(since) {
			count++
		}
	}
	return count, nil
}

func (m *memAnswerRepo) All(ctx context.Context) ([]store.AnswerRecord, error) {
	return m.records, nil
}

func (m *memAnswerRepo) Recent(ctx context.Context, limit int) ([]store.AnswerRecord, error) {
	return m.records, nil
}

type listSource struct {
	questions []questionbank.Question
}

func (s *listSource) LoadQuestions(ctx context.Context, language, level string) ([]questionbank.Question, error) {
	return s.questions, nil
}

func testOptions(repo *memAnswerRepo, questions []questionbank.Question, input string, out *bytes.Buffer) Options {
	return Options{
		Answers:  repo,
		Source:   &listSource{questions: questions},
		Platform: "Mobile",
		Location: time.UTC,
		In:       strings.NewReader(input),
		Out:      out,
	}
}

func TestRunCompletesSession(t *testing.T) {
	questions := []questionbank.Question{
		{ID: "q1", Prompt: "p1", Choices: []string{"right", "wrong"}, Answer: "right"},
		{ID: "q2", Prompt: "p2", Choices: []string{"right", "wrong"}, Answer: "right"},
	}
	repo := &memAnswerRepo{}
	var out bytes.Buffer

	// Option number for q1, answer text for q2.
	err := Run(context.Background(), testOptions(repo, questions, "1\nwrong\n", &out), "Kotlin", "Beginner")
	if err != nil {
		t.Fatalf("run: %v", err)
	}

	if len(repo.records) != 2 {
		t.Fatalf("len(records) = %d, want 2", len(repo.records))
	}
	if !repo.records[0].Correct || repo.records[1].Correct {
		t.Errorf("record correctness = %v/%v, want true/false",
			repo.records[0].Correct, repo.records[1].Correct)
	}

	output := out.String()
	if !strings.Contains(output, "Correct!") {
		t.Error("expected a correct acknowledgement in output")
	}
	if !strings.Contains(output, "Session complete: 1/2 correct") {
		t.Errorf("missing summary in output:\n%s", output)
	}
}

func TestRunNoQuestions(t *testing.T) {
	var out bytes.Buffer
	err := Run(context.Background(), testOptions(&memAnswerRepo{}, nil, "", &out), "Kotlin", "Beginner")
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if !strings.Contains(out.String(), "No questions available") {
		t.Errorf("missing empty-bank message in output:\n%s", out.String())
	}
}

func TestRunStopsAtDailyLimit(t *testing.T) {
	questions := make([]questionbank.Question, 6)
	for i := range questions {
		questions[i] = questionbank.Question{
			ID:      string(rune('a' + i)),
			Prompt:  "p",
			Choices: []string{"right", "wrong"},
			Answer:  "right",
		}
	}
	repo := &memAnswerRepo{}
	var out bytes.Buffer

	input := strings.Repeat("1\n", 6)
	err := Run(context.Background(), testOptions(repo, questions, input, &out), "Kotlin", "Beginner")
	if err != nil {
		t.Fatalf("run: %v", err)
	}

	// Beginner cap is 5: the sixth answer is rejected, not recorded.
	if len(repo.records) != 5 {
		t.Errorf("len(records) = %d, want 5", len(repo.records))
	}
	if !strings.Contains(out.String(), "Daily limit reached") {
		t.Errorf("missing limit message in output:\n%s", out.String())
	}
}
