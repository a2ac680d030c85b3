package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AnswerRecord records a single submitted answer. Records are append-only:
// they are written exactly once by the session engine and never mutated or
// deleted. The language/level/platform of the answered question are
// denormalized here so the daily-cap count is a single indexed query.
type AnswerRecord struct {
	ent.Schema
}

func (AnswerRecord) Mixin() []ent.Mixin {
	return []ent.Mixin{RecordMixin{}}
}

func (AnswerRecord) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Comment("The challenge session that produced this answer"),
		field.String("question_id").
			NotEmpty().
			Comment("Links to Question"),
		field.String("language").
			NotEmpty().
			Comment("Language of the answered question"),
		field.String("level").
			NotEmpty().
			Comment("Level of the answered question"),
		field.String("platform").
			NotEmpty().
			Comment("Platform of the answered question"),
		field.String("answer_text").
			NotEmpty().
			Comment("The option the user chose"),
		field.Bool("correct").
			Comment("Whether the chosen option was the correct one"),
	}
}

func (AnswerRecord) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("question_id"),
		index.Fields("language", "level", "platform", "timestamp"),
	}
}
