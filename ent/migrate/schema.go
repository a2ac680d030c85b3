// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AnswerRecordsColumns holds the columns for the "answer_records" table.
	AnswerRecordsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString},
		{Name: "question_id", Type: field.TypeString},
		{Name: "language", Type: field.TypeString},
		{Name: "level", Type: field.TypeString},
		{Name: "platform", Type: field.TypeString},
		{Name: "answer_text", Type: field.TypeString},
		{Name: "correct", Type: field.TypeBool},
	}
	// AnswerRecordsTable holds the schema information for the "answer_records" table.
	AnswerRecordsTable = &schema.Table{
		Name:       "answer_records",
		Columns:    AnswerRecordsColumns,
		PrimaryKey: []*schema.Column{AnswerRecordsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "answerrecord_sequence",
				Unique:  false,
				Columns: []*schema.Column{AnswerRecordsColumns[1]},
			},
			{
				Name:    "answerrecord_timestamp",
				Unique:  false,
				Columns: []*schema.Column{AnswerRecordsColumns[2]},
			},
			{
				Name:    "answerrecord_question_id",
				Unique:  false,
				Columns: []*schema.Column{AnswerRecordsColumns[4]},
			},
			{
				Name:    "answerrecord_language_level_platform_timestamp",
				Unique:  false,
				Columns: []*schema.Column{AnswerRecordsColumns[5], AnswerRecordsColumns[6], AnswerRecordsColumns[7], AnswerRecordsColumns[2]},
			},
		},
	}
	// QuestionsColumns holds the columns for the "questions" table.
	QuestionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "language", Type: field.TypeString},
		{Name: "level", Type: field.TypeString},
		{Name: "platform", Type: field.TypeString},
		{Name: "difficulty", Type: field.TypeInt, Default: 1},
		{Name: "prompt", Type: field.TypeString, Size: 2147483647},
		{Name: "choices", Type: field.TypeJSON},
		{Name: "answer", Type: field.TypeString},
		{Name: "explanation", Type: field.TypeString, Size: 2147483647},
	}
	// QuestionsTable holds the schema information for the "questions" table.
	QuestionsTable = &schema.Table{
		Name:       "questions",
		Columns:    QuestionsColumns,
		PrimaryKey: []*schema.Column{QuestionsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "question_language_level",
				Unique:  false,
				Columns: []*schema.Column{QuestionsColumns[2], QuestionsColumns[3]},
			},
			{
				Name:    "question_platform",
				Unique:  false,
				Columns: []*schema.Column{QuestionsColumns[4]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AnswerRecordsTable,
		QuestionsTable,
	}
)

func init() {
}
