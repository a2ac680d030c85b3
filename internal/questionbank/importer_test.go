package questionbank

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tatumgames/tatumtech/internal/store"
)

// memQuestionRepo is an in-memory store.QuestionRepo.
type memQuestionRepo struct {
	byID  map[string]store.QuestionRecord
	order []string
}

func newMemQuestionRepo() *memQuestionRepo {
	return &memQuestionRepo{byID: make(map[string]store.QuestionRecord)}
}

func (m *memQuestionRepo) Put(ctx context.Context, q store.QuestionRecord) (bool, error) {
	if _, ok := m.byID[q.ID]; ok {
		return false, nil
	}
	m.byID[q.ID] = q
	m.order = append(m.order, q.ID)
	return true, nil
}

func (m *memQuestionRepo) ByLanguageLevel(ctx context.Context, language, level string) ([]store.QuestionRecord, error) {
	var out []store.QuestionRecord
	for _, id := range m.order {
		q := m.byID[id]
		if q.Language == language && q.Level == level {
			out = append(out, q)
		}
	}
	return out, nil
}

func (m *memQuestionRepo) Count(ctx context.Context) (int, error) {
	return len(m.byID), nil
}

const validBank = `{
  "questions": [
    {
      "id": "kotlin-beginner-001",
      "created_at": "2024-02-01T09:00:00Z",
      "language": "Kotlin",
      "level": "Beginner",
      "platform": "Mobile",
      "difficulty": 1,
      "prompt": "Which keyword declares a read-only variable?",
      "choices": ["var", "val", "let", "const"],
      "answer": "val",
      "explanation": "val declares an immutable reference."
    },
    {
      "id": "kotlin-beginner-002",
      "language": "Kotlin",
      "level": "Beginner",
      "platform": "Mobile",
      "prompt": "Which function prints a line to standard output?",
      "choices": ["echo", "println", "printf", "write"],
      "answer": "println"
    }
  ]
}`

func TestImportValidBank(t *testing.T) {
	repo := newMemQuestionRepo()
	importer := NewImporter(repo)

	result, err := importer.Import(context.Background(), []byte(validBank))
	require.NoError(t, err)
	assert.Equal(t, 2, result.Imported)
	assert.Equal(t, 0, result.Skipped)

	q := repo.byID["kotlin-beginner-001"]
	assert.Equal(t, "Kotlin", q.Language)
	assert.Equal(t, []string{"var", "val", "let", "const"}, q.Choices)
	assert.Equal(t, "val", q.Answer)
	assert.Equal(t, time.Date(2024, time.February, 1, 9, 0, 0, 0, time.UTC), q.CreatedAt)

	// Omitted difficulty defaults to 1.
	assert.Equal(t, 1, repo.byID["kotlin-beginner-002"].Difficulty)
}

func TestImportIsIdempotent(t *testing.T) {
	repo := newMemQuestionRepo()
	importer := NewImporter(repo)
	ctx := context.Background()

	_, err := importer.Import(ctx, []byte(validBank))
	require.NoError(t, err)

	result, err := importer.Import(ctx, []byte(validBank))
	require.NoError(t, err)
	assert.Equal(t, 0, result.Imported)
	assert.Equal(t, 2, result.Skipped)

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestImportRejectsInvalidPayloads(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"not json", `{"questions": [`},
		{"missing questions key", `{}`},
		{"missing prompt", `{"questions": [{"id": "x", "language": "Go", "level": "Beginner", "platform": "Mobile", "choices": ["a", "b"], "answer": "a"}]}`},
		{"unknown level", `{"questions": [{"id": "x", "language": "Go", "level": "Wizard", "platform": "Mobile", "prompt": "p", "choices": ["a", "b"], "answer": "a"}]}`},
		{"single choice", `{"questions": [{"id": "x", "language": "Go", "level": "Beginner", "platform": "Mobile", "prompt": "p", "choices": ["a"], "answer": "a"}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newMemQuestionRepo()
			_, err := NewImporter(repo).Import(context.Background(), []byte(tt.raw))
			require.Error(t, err)
			assert.Empty(t, repo.byID)
		})
	}
}

func TestImportRejectsAnswerNotInChoices(t *testing.T) {
	raw := `{"questions": [{"id": "x", "language": "Go", "level": "Beginner", "platform": "Mobile", "prompt": "p", "choices": ["a", "b"], "answer": "c"}]}`
	_, err := NewImporter(newMemQuestionRepo()).Import(context.Background(), []byte(raw))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not among the choices")
}

func TestImportFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bank.json")
	require.NoError(t, os.WriteFile(path, []byte(validBank), 0o644))

	repo := newMemQuestionRepo()
	result, err := NewImporter(repo).ImportFile(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, 2, result.Imported)
}

func TestImportFileMissing(t *testing.T) {
	_, err := NewImporter(newMemQuestionRepo()).ImportFile(context.Background(), filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
}

func TestStoreSourceLoadQuestions(t *testing.T) {
	repo := newMemQuestionRepo()
	_, err := NewImporter(repo).Import(context.Background(), []byte(validBank))
	require.NoError(t, err)

	source := NewStoreSource(repo)
	questions, err := source.LoadQuestions(context.Background(), "Kotlin", "Beginner")
	require.NoError(t, err)
	require.Len(t, questions, 2)
	assert.Equal(t, "kotlin-beginner-001", questions[0].ID)

	questions, err = source.LoadQuestions(context.Background(), "Kotlin", "Advanced")
	require.NoError(t, err)
	assert.Empty(t, questions)
}
