package questionbank

// BankSchema defines the JSON schema a question-bank asset file must satisfy
// before import.
var BankSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"questions": map[string]any{
			"type": "array",
			"items": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"id": map[string]any{
						"type":      "string",
						"minLength": 1,
					},
					"created_at": map[string]any{
						"type":        "string",
						"description": "RFC 3339 creation timestamp, optional",
					},
					"language": map[string]any{
						"type":      "string",
						"minLength": 1,
					},
					"level": map[string]any{
						"type": "string",
						"enum": []any{"Beginner", "Intermediate", "Advanced"},
					},
					"platform": map[string]any{
						"type":      "string",
						"minLength": 1,
					},
					"difficulty": map[string]any{
						"type":    "integer",
						"minimum": 1,
						"maximum": 5,
					},
					"prompt": map[string]any{
						"type":      "string",
						"minLength": 1,
					},
					"choices": map[string]any{
						"type":     "array",
						"items":    map[string]any{"type": "string"},
						"minItems": 2,
					},
					"answer": map[string]any{
						"type":      "string",
						"minLength": 1,
					},
					"explanation": map[string]any{
						"type": "string",
					},
				},
				"required":             []any{"id", "language", "level", "platform", "prompt", "choices", "answer"},
				"additionalProperties": false,
			},
		},
	},
	"required":             []any{"questions"},
	"additionalProperties": false,
}
