package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Question is one multiple-choice coding-challenge question. Questions are
// loaded from bundled assets by the importer and never mutated afterwards.
type Question struct {
	ent.Schema
}

func (Question) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			NotEmpty().
			Immutable().
			Comment("Stable question identifier from the question bank"),
		field.Time("created_at").
			Default(time.Now).
			Immutable().
			Comment("When the question entered the bank"),
		field.String("language").
			NotEmpty().
			Comment("Source language tag, e.g. kotlin or go"),
		field.String("level").
			NotEmpty().
			Comment("Beginner, Intermediate, or Advanced"),
		field.String("platform").
			NotEmpty().
			Comment("Target platform tag, e.g. mobile"),
		field.Int("difficulty").
			Default(1).
			Comment("Relative difficulty within the level"),
		field.Text("prompt").
			NotEmpty().
			Comment("The question text shown to the user"),
		field.Strings("choices").
			Comment("Ordered answer options"),
		field.String("answer").
			NotEmpty().
			Comment("The text of the correct option"),
		field.Text("explanation").
			Comment("Worked explanation shown after answering"),
	}
}

func (Question) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("language", "level"),
		index.Fields("platform"),
	}
}
