package questionbank

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"slices"
	"sync"
	"time"

	"github.com/santhosh-tekuri/jsonschema/v6"

	"github.com/tatumgames/tatumtech/internal/store"
)

// bankFile mirrors the question-bank asset format.
type bankFile struct {
	Questions []bankQuestion `json:"questions"`
}

type bankQuestion struct {
	ID          string   `json:"id"`
	CreatedAt   string   `json:"created_at"`
	Language    string   `json:"language"`
	Level       string   `json:"level"`
	Platform    string   `json:"platform"`
	Difficulty  int      `json:"difficulty"`
	Prompt      string   `json:"prompt"`
	Choices     []string `json:"choices"`
	Answer      string   `json:"answer"`
	Explanation string   `json:"explanation"`
}

// ImportResult summarizes a bank import.
type ImportResult struct {
	Imported int // questions inserted
	Skipped  int // questions whose IDs were already present
}

// Importer loads question-bank asset files into the local store.
type Importer struct {
	questions store.QuestionRepo
}

// NewImporter creates an Importer writing to the given question repository.
func NewImporter(questions store.QuestionRepo) *Importer {
	return &Importer{questions: questions}
}

// ImportFile reads, validates, and imports a question-bank JSON file.
// Re-importing the same file is a no-op for already-present question IDs.
func (im *Importer) ImportFile(ctx context.Context, path string) (ImportResult, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return ImportResult{}, fmt.Errorf("read bank file: %w", err)
	}
	return im.Import(ctx, raw)
}

// Import validates and imports a raw question-bank JSON payload.
func (im *Importer) Import(ctx context.Context, raw []byte) (ImportResult, error) {
	if err := validateBank(raw); err != nil {
		return ImportResult{}, err
	}

	var bank bankFile
	if err := json.Unmarshal(raw, &bank); err != nil {
		return ImportResult{}, fmt.Errorf("parse bank file: %w", err)
	}

	var result ImportResult
	for _, bq := range bank.Questions {
		rec, err := toRecord(bq)
		if err != nil {
			return result, fmt.Errorf("question %s: %w", bq.ID, err)
		}
		inserted, err := im.questions.Put(ctx, rec)
		if err != nil {
			return result, err
		}
		if inserted {
			result.Imported++
		} else {
			result.Skipped++
		}
	}
	return result, nil
}

func toRecord(bq bankQuestion) (store.QuestionRecord, error) {
	// The schema can't express "answer is one of choices".
	if !slices.Contains(bq.Choices, bq.Answer) {
		return store.QuestionRecord{}, fmt.Errorf("answer %q is not among the choices", bq.Answer)
	}

	var createdAt time.Time
	if bq.CreatedAt != "" {
		t, err := time.Parse(time.RFC3339, bq.CreatedAt)
		if err != nil {
			return store.QuestionRecord{}, fmt.Errorf("parse created_at: %w", err)
		}
		createdAt = t
	}

	difficulty := bq.Difficulty
	if difficulty == 0 {
		difficulty = 1
	}

	return store.QuestionRecord{
		ID:          bq.ID,
		CreatedAt:   createdAt,
		Language:    bq.Language,
		Level:       bq.Level,
		Platform:    bq.Platform,
		Difficulty:  difficulty,
		Prompt:      bq.Prompt,
		Choices:     bq.Choices,
		Answer:      bq.Answer,
		Explanation: bq.Explanation,
	}, nil
}

var (
	compileOnce    sync.Once
	compiledSchema *jsonschema.Schema
	compileErr     error
)

// validateBank checks raw JSON against BankSchema.
func validateBank(raw []byte) error {
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}

	compiled, err := bankSchema()
	if err != nil {
		return fmt.Errorf("compile bank schema: %w", err)
	}

	if err := compiled.Validate(parsed); err != nil {
		return fmt.Errorf("schema validation failed: %w", err)
	}
	return nil
}

// bankSchema compiles BankSchema once and caches the result.
func bankSchema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		// The jsonschema library expects a parsed JSON value (any), not
		// raw bytes. Marshal then unmarshal to get a clean any
		// representation.
		defBytes, err := json.Marshal(BankSchema)
		if err != nil {
			compileErr = fmt.Errorf("marshal schema definition: %w", err)
			return
		}
		var defParsed any
		if err := json.Unmarshal(defBytes, &defParsed); err != nil {
			compileErr = fmt.Errorf("parse schema definition: %w", err)
			return
		}

		c := jsonschema.NewCompiler()
		const schemaURL = "schema://question-bank.json"
		if err := c.AddResource(schemaURL, defParsed); err != nil {
			compileErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiledSchema, compileErr = c.Compile(schemaURL)
	})
	return compiledSchema, compileErr
}
