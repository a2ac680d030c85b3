// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// AnswerRecord is the predicate function for answerrecord builders.
type AnswerRecord func(*sql.Selector)

// Question is the predicate function for question builders.
type Question func(*sql.Selector)
