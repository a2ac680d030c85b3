// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/tatumgames/tatumtech/ent/answerrecord"
)

// AnswerRecordCreate is the builder for creating a AnswerRecord entity.
type AnswerRecordCreate struct {
	config
	mutation *AnswerRecordMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (arc *AnswerRecordCreate) SetSequence(i int64) *AnswerRecordCreate {
	arc.mutation.SetSequence(i)
	return arc
}

// SetTimestamp sets the "timestamp" field.
func (arc *AnswerRecordCreate) SetTimestamp(t time.Time) *AnswerRecordCreate {
	arc.mutation.SetTimestamp(t)
	return arc
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (arc *AnswerRecordCreate) SetNillableTimestamp(t *time.Time) *AnswerRecordCreate {
	if t != nil {
		arc.SetTimestamp(*t)
	}
	return arc
}

// SetSessionID sets the "session_id" field.
func (arc *AnswerRecordCreate) SetSessionID(s string) *AnswerRecordCreate {
	arc.mutation.SetSessionID(s)
	return arc
}

// SetQuestionID sets the "question_id" field.
func (arc *AnswerRecordCreate) SetQuestionID(s string) *AnswerRecordCreate {
	arc.mutation.SetQuestionID(s)
	return arc
}

// SetLanguage sets the "language" field.
func (arc *AnswerRecordCreate) SetLanguage(s string) *AnswerRecordCreate {
	arc.mutation.SetLanguage(s)
	return arc
}

// SetLevel sets the "level" field.
func (arc *AnswerRecordCreate) SetLevel(s string) *AnswerRecordCreate {
	arc.mutation.SetLevel(s)
	return arc
}

// SetPlatform sets the "platform" field.
func (arc *AnswerRecordCreate) SetPlatform(s string) *AnswerRecordCreate {
	arc.mutation.SetPlatform(s)
	return arc
}

// SetAnswerText sets the "answer_text" field.
func (arc *AnswerRecordCreate) SetAnswerText(s string) *AnswerRecordCreate {
	arc.mutation.SetAnswerText(s)
	return arc
}

// SetCorrect sets the "correct" field.
func (arc *AnswerRecordCreate) SetCorrect(b bool) *AnswerRecordCreate {
	arc.mutation.SetCorrect(b)
	return arc
}

// Mutation returns the AnswerRecordMutation object of the builder.
func (arc *AnswerRecordCreate) Mutation() *AnswerRecordMutation {
	return arc.mutation
}

// Save creates the AnswerRecord in the database.
func (arc *AnswerRecordCreate) Save(ctx context.Context) (*AnswerRecord, error) {
	arc.defaults()
	return withHooks(ctx, arc.sqlSave, arc.mutation, arc.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (arc *AnswerRecordCreate) SaveX(ctx context.Context) *AnswerRecord {
	v, err := arc.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (arc *AnswerRecordCreate) Exec(ctx context.Context) error {
	_, err := arc.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (arc *AnswerRecordCreate) ExecX(ctx context.Context) {
	if err := arc.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (arc *AnswerRecordCreate) defaults() {
	if _, ok := arc.mutation.Timestamp(); !ok {
		v := answerrecord.DefaultTimestamp()
		arc.mutation.SetTimestamp(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (arc *AnswerRecordCreate) check() error {
	if _, ok := arc.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "AnswerRecord.sequence"`)}
	}
	if _, ok := arc.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "AnswerRecord.timestamp"`)}
	}
	if _, ok := arc.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "AnswerRecord.session_id"`)}
	}
	if v, ok := arc.mutation.SessionID(); ok {
		if err := answerrecord.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "AnswerRecord.session_id": %w`, err)}
		}
	}
	if _, ok := arc.mutation.QuestionID(); !ok {
		return &ValidationError{Name: "question_id", err: errors.New(`ent: missing required field "AnswerRecord.question_id"`)}
	}
	if v, ok := arc.mutation.QuestionID(); ok {
		if err := answerrecord.QuestionIDValidator(v); err != nil {
			return &ValidationError{Name: "question_id", err: fmt.Errorf(`ent: validator failed for field "AnswerRecord.question_id": %w`, err)}
		}
	}
	if _, ok := arc.mutation.Language(); !ok {
		return &ValidationError{Name: "language", err: errors.New(`ent: missing required field "AnswerRecord.language"`)}
	}
	if v, ok := arc.mutation.Language(); ok {
		if err := answerrecord.LanguageValidator(v); err != nil {
			return &ValidationError{Name: "language", err: fmt.Errorf(`ent: validator failed for field "AnswerRecord.language": %w`, err)}
		}
	}
	if _, ok := arc.mutation.Level(); !ok {
		return &ValidationError{Name: "level", err: errors.New(`ent: missing required field "AnswerRecord.level"`)}
	}
	if v, ok := arc.mutation.Level(); ok {
		if err := answerrecord.LevelValidator(v); err != nil {
			return &ValidationError{Name: "level", err: fmt.Errorf(`ent: validator failed for field "AnswerRecord.level": %w`, err)}
		}
	}
	if _, ok := arc.mutation.Platform(); !ok {
		return &ValidationError{Name: "platform", err: errors.New(`ent: missing required field "AnswerRecord.platform"`)}
	}
	if v, ok := arc.mutation.Platform(); ok {
		if err := answerrecord.PlatformValidator(v); err != nil {
			return &ValidationError{Name: "platform", err: fmt.Errorf(`ent: validator failed for field "AnswerRecord.platform": %w`, err)}
		}
	}
	if _, ok := arc.mutation.AnswerText(); !ok {
		return &ValidationError{Name: "answer_text", err: errors.New(`ent: missing required field "AnswerRecord.answer_text"`)}
	}
	if v, ok := arc.mutation.AnswerText(); ok {
		if err := answerrecord.AnswerTextValidator(v); err != nil {
			return &ValidationError{Name: "answer_text", err: fmt.Errorf(`ent: validator failed for field "AnswerRecord.answer_text": %w`, err)}
		}
	}
	if _, ok := arc.mutation.Correct(); !ok {
		return &ValidationError{Name: "correct", err: errors.New(`ent: missing required field "AnswerRecord.correct"`)}
	}
	return nil
}

func (arc *AnswerRecordCreate) sqlSave(ctx context.Context) (*AnswerRecord, error) {
	if err := arc.check(); err != nil {
		return nil, err
	}
	_node, _spec := arc.createSpec()
	if err := sqlgraph.CreateNode(ctx, arc.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	arc.mutation.id = &_node.ID
	arc.mutation.done = true
	return _node, nil
}

func (arc *AnswerRecordCreate) createSpec() (*AnswerRecord, *sqlgraph.CreateSpec) {
	var (
		_node = &AnswerRecord{config: arc.config}
		_spec = sqlgraph.NewCreateSpec(answerrecord.Table, sqlgraph.NewFieldSpec(answerrecord.FieldID, field.TypeInt))
	)
	if value, ok := arc.mutation.Sequence(); ok {
		_spec.SetField(answerrecord.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := arc.mutation.Timestamp(); ok {
		_spec.SetField(answerrecord.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := arc.mutation.SessionID(); ok {
		_spec.SetField(answerrecord.FieldSessionID, field.TypeString, value)
		_node.SessionID = value
	}
	if value, ok := arc.mutation.QuestionID(); ok {
		_spec.SetField(answerrecord.FieldQuestionID, field.TypeString, value)
		_node.QuestionID = value
	}
	if value, ok := arc.mutation.Language(); ok {
		_spec.SetField(answerrecord.FieldLanguage, field.TypeString, value)
		_node.Language = value
	}
	if value, ok := arc.mutation.Level(); ok {
		_spec.SetField(answerrecord.FieldLevel, field.TypeString, value)
		_node.Level = value
	}
	if value, ok := arc.mutation.Platform(); ok {
		_spec.SetField(answerrecord.FieldPlatform, field.TypeString, value)
		_node.Platform = value
	}
	if value, ok := arc.mutation.AnswerText(); ok {
		_spec.SetField(answerrecord.FieldAnswerText, field.TypeString, value)
		_node.AnswerText = value
	}
	if value, ok := arc.mutation.Correct(); ok {
		_spec.SetField(answerrecord.FieldCorrect, field.TypeBool, value)
		_node.Correct = value
	}
	return _node, _spec
}

// AnswerRecordCreateBulk is the builder for creating many AnswerRecord entities in bulk.
type AnswerRecordCreateBulk struct {
	config
	err      error
	builders []*AnswerRecordCreate
}

// Save creates the AnswerRecord entities in the database.
func (arcb *AnswerRecordCreateBulk) Save(ctx context.Context) ([]*AnswerRecord, error) {
	if arcb.err != nil {
		return nil, arcb.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(arcb.builders))
	nodes := make([]*AnswerRecord, len(arcb.builders))
	mutators := make([]Mutator, len(arcb.builders))
	for i := range arcb.builders {
		func(i int, root context.Context) {
			builder := arcb.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AnswerRecordMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, arcb.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, arcb.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, arcb.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (arcb *AnswerRecordCreateBulk) SaveX(ctx context.Context) []*AnswerRecord {
	v, err := arcb.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (arcb *AnswerRecordCreateBulk) Exec(ctx context.Context) error {
	_, err := arcb.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (arcb *AnswerRecordCreateBulk) ExecX(ctx context.Context) {
	if err := arcb.Exec(ctx); err != nil {
		panic(err)
	}
}
