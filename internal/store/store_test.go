package store

import (
	"context"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so we skip journal_mode here. It is tested with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestSequenceCounter(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	var seqs []int64
	for i := 0; i < 5; i++ {
		seq, err := s.seq.Next(ctx)
		if err != nil {
			t.Fatalf("next %d: %v", i, err)
		}
		seqs = append(seqs, seq)
	}

	// Should be monotonically increasing starting from 1.
	for i, seq := range seqs {
		expected := int64(i + 1)
		if seq != expected {
			t.Errorf("seq[%d] = %d, want %d", i, seq, expected)
		}
	}
}

func TestAnswerRepoAppendAndAll(t *testing.T) {
	s := openTestStore(t)
	repo := s.AnswerRepo()
	ctx := context.Background()

	base := time.Date(2025, time.March, 10, 9, 0, 0, 0, time.UTC)
	for i := 0; i < 3; i++ {
		err := repo.Append(ctx, AnswerRecordData{
			SessionID:  "sess-1",
			QuestionID: "q-1",
			Language:   "Kotlin",
			Level:      "Beginner",
			Platform:   "Mobile",
			AnswerText: "val",
			Correct:    i%2 == 0,
			Timestamp:  base.Add(time.Duration(i) * time.Minute),
		})
		if err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	records, err := repo.All(ctx)
	if err != nil {
		t.Fatalf("all: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("len(records) = %d, want 3", len(records))
	}

	// Ascending sequence order.
	for i := 1; i < len(records); i++ {
		if records[i].Sequence <= records[i-1].Sequence {
			t.Errorf("records not in sequence order: %d then %d",
				records[i-1].Sequence, records[i].Sequence)
		}
	}
	if records[0].QuestionID != "q-1" {
		t.Errorf("question id = %q, want %q", records[0].QuestionID, "q-1")
	}
	if !records[0].Timestamp.Equal(base) {
		t.Errorf("timestamp = %v, want %v", records[0].Timestamp, base)
	}
}

func TestAnswerRepoCountSince(t *testing.T) {
	s := openTestStore(t)
	repo := s.AnswerRepo()
	ctx := context.Background()

	base := time.Date(2025, time.March, 10, 12, 0, 0, 0, time.UTC)
	records := []AnswerRecordData{
		{SessionID: "s", QuestionID: "q1", Language: "Kotlin", Level: "Beginner", Platform: "Mobile", AnswerText: "a", Timestamp: base},
		{SessionID: "s", QuestionID: "q2", Language: "Kotlin", Level: "Beginner", Platform: "Mobile", AnswerText: "b", Timestamp: base.Add(time.Hour)},
		// Different level: must not be counted.
		{SessionID: "s", QuestionID: "q3", Language: "Kotlin", Level: "Advanced", Platform: "Mobile", AnswerText: "c", Timestamp: base},
		// Same combination but before the cutoff.
		{SessionID: "s", QuestionID: "q4", Language: "Kotlin", Level: "Beginner", Platform: "Mobile", AnswerText: "d", Timestamp: base.Add(-24 * time.Hour)},
	}
	for i, data := range records {
		if err := repo.Append(ctx, data); err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	count, err := repo.CountSince(ctx, "Kotlin", "Beginner", "Mobile", base)
	if err != nil {
		t.Fatalf("count since: %v", err)
	}
	if count != 2 {
		t.Errorf("count = %d, want 2", count)
	}
}

func TestAnswerRepoRecent(t *testing.T) {
	s := openTestStore(t)
	repo := s.AnswerRepo()
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		err := repo.Append(ctx, AnswerRecordData{
			SessionID:  "s",
			QuestionID: "q",
			Language:   "Go",
			Level:      "Beginner",
			Platform:   "Mobile",
			AnswerText: "x",
		})
		if err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	records, err := repo.Recent(ctx, 2)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("len(records) = %d, want 2", len(records))
	}
	if records[0].Sequence <= records[1].Sequence {
		t.Errorf("expected newest first, got sequences %d then %d",
			records[0].Sequence, records[1].Sequence)
	}
}

func TestQuestionRepoPutIsIdempotent(t *testing.T) {
	s := openTestStore(t)
	repo := s.QuestionRepo()
	ctx := context.Background()

	q := QuestionRecord{
		ID:       "kotlin-beginner-001",
		Language: "Kotlin",
		Level:    "Beginner",
		Platform: "Mobile",
		Prompt:   "Which keyword declares a read-only variable?",
		Choices:  []string{"var", "val", "let", "const"},
		Answer:   "val",
	}

	inserted, err := repo.Put(ctx, q)
	if err != nil {
		t.Fatalf("put: %v", err)
	}
	if !inserted {
		t.Error("expected first put to insert")
	}

	inserted, err = repo.Put(ctx, q)
	if err != nil {
		t.Fatalf("put (again): %v", err)
	}
	if inserted {
		t.Error("expected second put to be a no-op")
	}

	count, err := repo.Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 1 {
		t.Errorf("count = %d, want 1", count)
	}
}

func TestQuestionRepoByLanguageLevel(t *testing.T) {
	s := openTestStore(t)
	repo := s.QuestionRepo()
	ctx := context.Background()

	base := time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)
	questions := []QuestionRecord{
		{ID: "k-b-2", Language: "Kotlin", Level: "Beginner", Platform: "Mobile", Prompt: "p2", Choices: []string{"a", "b"}, Answer: "a", CreatedAt: base.Add(time.Hour)},
		{ID: "k-b-1", Language: "Kotlin", Level: "Beginner", Platform: "Mobile", Prompt: "p1", Choices: []string{"a", "b"}, Answer: "b", CreatedAt: base},
		{ID: "k-a-1", Language: "Kotlin", Level: "Advanced", Platform: "Mobile", Prompt: "p3", Choices: []string{"a", "b"}, Answer: "a", CreatedAt: base},
	}
	for _, q := range questions {
		if _, err := repo.Put(ctx, q); err != nil {
			t.Fatalf("put %s: %v", q.ID, err)
		}
	}

	got, err := repo.ByLanguageLevel(ctx, "Kotlin", "Beginner")
	if err != nil {
		t.Fatalf("by language/level: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
	if got[0].ID != "k-b-1" || got[1].ID != "k-b-2" {
		t.Errorf("order = [%s, %s], want [k-b-1, k-b-2]", got[0].ID, got[1].ID)
	}
}

func TestAutoMigrationCreatesTables(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	for _, table := range []string{"questions", "answer_records"} {
		var name string
		err := db.QueryRow(
			"SELECT name FROM sqlite_master WHERE type='table' AND name=?", table,
		).Scan(&name)
		if err != nil {
			t.Fatalf("query sqlite_master for %s: %v", table, err)
		}
		if name != table {
			t.Errorf("table name = %q, want %q", name, table)
		}
	}
}
