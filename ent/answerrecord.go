// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/tatumgames/tatumtech/ent/answerrecord"
)

// AnswerRecord is the model entity for the AnswerRecord schema.
type AnswerRecord struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Monotonically increasing global sequence number
	Sequence int64 `json:"sequence,omitempty"`
	// Wall-clock time of the record
	Timestamp time.Time `json:"timestamp,omitempty"`
	// The challenge session that produced this answer
	SessionID string `json:"session_id,omitempty"`
	// Links to Question
	QuestionID string `json:"question_id,omitempty"`
	// Language of the answered question
	Language string `json:"language,omitempty"`
	// Level of the answered question
	Level string `json:"level,omitempty"`
	// Platform of the answered question
	Platform string `json:"platform,omitempty"`
	// The option the user chose
	AnswerText string `json:"answer_text,omitempty"`
	// Whether the chosen option was the correct one
	Correct      bool `json:"correct,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*AnswerRecord) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case answerrecord.FieldCorrect:
			values[i] = new(sql.NullBool)
		case answerrecord.FieldID, answerrecord.FieldSequence:
			values[i] = new(sql.NullInt64)
		case answerrecord.FieldSessionID, answerrecord.FieldQuestionID, answerrecord.FieldLanguage, answerrecord.FieldLevel, answerrecord.FieldPlatform, answerrecord.FieldAnswerText:
			values[i] = new(sql.NullString)
		case answerrecord.FieldTimestamp:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the AnswerRecord fields.
func (ar *AnswerRecord) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case answerrecord.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			ar.ID = int(value.Int64)
		case answerrecord.FieldSequence:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sequence", values[i])
			} else if value.Valid {
				ar.Sequence = value.Int64
			}
		case answerrecord.FieldTimestamp:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field timestamp", values[i])
			} else if value.Valid {
				ar.Timestamp = value.Time
			}
		case answerrecord.FieldSessionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field session_id", values[i])
			} else if value.Valid {
				ar.SessionID = value.String
			}
		case answerrecord.FieldQuestionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field question_id", values[i])
			} else if value.Valid {
				ar.QuestionID = value.String
			}
		case answerrecord.FieldLanguage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field language", values[i])
			} else if value.Valid {
				ar.Language = value.String
			}
		case answerrecord.FieldLevel:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field level", values[i])
			} else if value.Valid {
				ar.Level = value.String
			}
		case answerrecord.FieldPlatform:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field platform", values[i])
			} else if value.Valid {
				ar.Platform = value.String
			}
		case answerrecord.FieldAnswerText:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field answer_text", values[i])
			} else if value.Valid {
				ar.AnswerText = value.String
			}
		case answerrecord.FieldCorrect:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field correct", values[i])
			} else if value.Valid {
				ar.Correct = value.Bool
			}
		default:
			ar.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the AnswerRecord.
// This includes values selected through modifiers, order, etc.
func (ar *AnswerRecord) Value(name string) (ent.Value, error) {
	return ar.selectValues.Get(name)
}

// Update returns a builder for updating this AnswerRecord.
// Note that you need to call AnswerRecord.Unwrap() before calling this method if this AnswerRecord
// was returned from a transaction, and the transaction was committed or rolled back.
func (ar *AnswerRecord) Update() *AnswerRecordUpdateOne {
	return NewAnswerRecordClient(ar.config).UpdateOne(ar)
}

// Unwrap unwraps the AnswerRecord entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (ar *AnswerRecord) Unwrap() *AnswerRecord {
	_tx, ok := ar.config.driver.(*txDriver)
	if !ok {
		panic("ent: AnswerRecord is not a transactional entity")
	}
	ar.config.driver = _tx.drv
	return ar
}

// String implements the fmt.Stringer.
func (ar *AnswerRecord) String() string {
	var builder strings.Builder
	builder.WriteString("AnswerRecord(")
	builder.WriteString(fmt.Sprintf("id=%v, ", ar.ID))
	builder.WriteString("sequence=")
	builder.WriteString(fmt.Sprintf("%v", ar.Sequence))
	builder.WriteString(", ")
	builder.WriteString("timestamp=")
	builder.WriteString(ar.Timestamp.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("session_id=")
	builder.WriteString(ar.SessionID)
	builder.WriteString(", ")
	builder.WriteString("question_id=")
	builder.WriteString(ar.QuestionID)
	builder.WriteString(", ")
	builder.WriteString("language=")
	builder.WriteString(ar.Language)
	builder.WriteString(", ")
	builder.WriteString("level=")
	builder.WriteString(ar.Level)
	builder.WriteString(", ")
	builder.WriteString("platform=")
	builder.WriteString(ar.Platform)
	builder.WriteString(", ")
	builder.WriteString("answer_text=")
	builder.WriteString(ar.AnswerText)
	builder.WriteString(", ")
	builder.WriteString("correct=")
	builder.WriteString(fmt.Sprintf("%v", ar.Correct))
	builder.WriteByte(')')
	return builder.String()
}

// AnswerRecords is a parsable slice of AnswerRecord.
type AnswerRecords []*AnswerRecord
