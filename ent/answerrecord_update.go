// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/tatumgames/tatumtech/ent/answerrecord"
	"github.com/tatumgames/tatumtech/ent/predicate"
)

// AnswerRecordUpdate is the builder for updating AnswerRecord entities.
type AnswerRecordUpdate struct {
	config
	hooks    []Hook
	mutation *AnswerRecordMutation
}

// Where appends a list predicates to the AnswerRecordUpdate builder.
func (aru *AnswerRecordUpdate) Where(ps ...predicate.AnswerRecord) *AnswerRecordUpdate {
	aru.mutation.Where(ps...)
	return aru
}

// SetSessionID sets the "session_id" field.
func (aru *AnswerRecordUpdate) SetSessionID(s string) *AnswerRecordUpdate {
	aru.mutation.SetSessionID(s)
	return aru
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (aru *AnswerRecordUpdate) SetNillableSessionID(s *string) *AnswerRecordUpdate {
	if s != nil {
		aru.SetSessionID(*s)
	}
	return aru
}

// SetQuestionID sets the "question_id" field.
func (aru *AnswerRecordUpdate) SetQuestionID(s string) *AnswerRecordUpdate {
	aru.mutation.SetQuestionID(s)
	return aru
}

// SetNillableQuestionID sets the "question_id" field if the given value is not nil.
func (aru *AnswerRecordUpdate) SetNillableQuestionID(s *string) *AnswerRecordUpdate {
	if s != nil {
		aru.SetQuestionID(*s)
	}
	return aru
}

// SetLanguage sets the "language" field.
func (aru *AnswerRecordUpdate) SetLanguage(s string) *AnswerRecordUpdate {
	aru.mutation.SetLanguage(s)
	return aru
}

// SetNillableLanguage sets the "language" field if the given value is not nil.
func (aru *AnswerRecordUpdate) SetNillableLanguage(s *string) *AnswerRecordUpdate {
	if s != nil {
		aru.SetLanguage(*s)
	}
	return aru
}

// SetLevel sets the "level" field.
func (aru *AnswerRecordUpdate) SetLevel(s string) *AnswerRecordUpdate {
	aru.mutation.SetLevel(s)
	return aru
}

// SetNillableLevel sets the "level" field if the given value is not nil.
func (aru *AnswerRecordUpdate) SetNillableLevel(s *string) *AnswerRecordUpdate {
	if s != nil {
		aru.SetLevel(*s)
	}
	return aru
}

// SetPlatform sets the "platform" field.
func (aru *AnswerRecordUpdate) SetPlatform(s string) *AnswerRecordUpdate {
	aru.mutation.SetPlatform(s)
	return aru
}

// SetNillablePlatform sets the "platform" field if the given value is not nil.
func (aru *AnswerRecordUpdate) SetNillablePlatform(s *string) *AnswerRecordUpdate {
	if s != nil {
		aru.SetPlatform(*s)
	}
	return aru
}

// SetAnswerText sets the "answer_text" field.
func (aru *AnswerRecordUpdate) SetAnswerText(s string) *AnswerRecordUpdate {
	aru.mutation.SetAnswerText(s)
	return aru
}

// SetNillableAnswerText sets the "answer_text" field if the given value is not nil.
func (aru *AnswerRecordUpdate) SetNillableAnswerText(s *string) *AnswerRecordUpdate {
	if s != nil {
		aru.SetAnswerText(*s)
	}
	return aru
}

// SetCorrect sets the "correct" field.
func (aru *AnswerRecordUpdate) SetCorrect(b bool) *AnswerRecordUpdate {
	aru.mutation.SetCorrect(b)
	return aru
}

// SetNillableCorrect sets the "correct" field if the given value is not nil.
func (aru *AnswerRecordUpdate) SetNillableCorrect(b *bool) *AnswerRecordUpdate {
	if b != nil {
		aru.SetCorrect(*b)
	}
	return aru
}

// Mutation returns the AnswerRecordMutation object of the builder.
func (aru *AnswerRecordUpdate) Mutation() *AnswerRecordMutation {
	return aru.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (aru *AnswerRecordUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, aru.sqlSave, aru.mutation, aru.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (aru *AnswerRecordUpdate) SaveX(ctx context.Context) int {
	affected, err := aru.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (aru *AnswerRecordUpdate) Exec(ctx context.Context) error {
	_, err := aru.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (aru *AnswerRecordUpdate) ExecX(ctx context.Context) {
	if err := aru.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (aru *AnswerRecordUpdate) check() error {
	if v, ok := aru.mutation.SessionID(); ok {
		if err := answerrecord.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "AnswerRecord.session_id": %w`, err)}
		}
	}
	if v, ok := aru.mutation.QuestionID(); ok {
		if err := answerrecord.QuestionIDValidator(v); err != nil {
			return &ValidationError{Name: "question_id", err: fmt.Errorf(`ent: validator failed for field "AnswerRecord.question_id": %w`, err)}
		}
	}
	if v, ok := aru.mutation.Language(); ok {
		if err := answerrecord.LanguageValidator(v); err != nil {
			return &ValidationError{Name: "language", err: fmt.Errorf(`ent: validator failed for field "AnswerRecord.language": %w`, err)}
		}
	}
	if v, ok := aru.mutation.Level(); ok {
		if err := answerrecord.LevelValidator(v); err != nil {
			return &ValidationError{Name: "level", err: fmt.Errorf(`ent: validator failed for field "AnswerRecord.level": %w`, err)}
		}
	}
	if v, ok := aru.mutation.Platform(); ok {
		if err := answerrecord.PlatformValidator(v); err != nil {
			return &ValidationError{Name: "platform", err: fmt.Errorf(`ent: validator failed for field "AnswerRecord.platform": %w`, err)}
		}
	}
	if v, ok := aru.mutation.AnswerText(); ok {
		if err := answerrecord.AnswerTextValidator(v); err != nil {
			return &ValidationError{Name: "answer_text", err: fmt.Errorf(`ent: validator failed for field "AnswerRecord.answer_text": %w`, err)}
		}
	}
	return nil
}

func (aru *AnswerRecordUpdate) sqlSave(ctx context.Context) (n int, err error) {
	if err := aru.check(); err != nil {
		return n, err
	}
	_spec := sqlgraph.NewUpdateSpec(answerrecord.Table, answerrecord.Columns, sqlgraph.NewFieldSpec(answerrecord.FieldID, field.TypeInt))
	if ps := aru.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := aru.mutation.SessionID(); ok {
		_spec.SetField(answerrecord.FieldSessionID, field.TypeString, value)
	}
	if value, ok := aru.mutation.QuestionID(); ok {
		_spec.SetField(answerrecord.FieldQuestionID, field.TypeString, value)
	}
	if value, ok := aru.mutation.Language(); ok {
		_spec.SetField(answerrecord.FieldLanguage, field.TypeString, value)
	}
	if value, ok := aru.mutation.Level(); ok {
		_spec.SetField(answerrecord.FieldLevel, field.TypeString, value)
	}
	if value, ok := aru.mutation.Platform(); ok {
		_spec.SetField(answerrecord.FieldPlatform, field.TypeString, value)
	}
	if value, ok := aru.mutation.AnswerText(); ok {
		_spec.SetField(answerrecord.FieldAnswerText, field.TypeString, value)
	}
	if value, ok := aru.mutation.Correct(); ok {
		_spec.SetField(answerrecord.FieldCorrect, field.TypeBool, value)
	}
	if n, err = sqlgraph.UpdateNodes(ctx, aru.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{answerrecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	aru.mutation.done = true
	return n, nil
}

// AnswerRecordUpdateOne is the builder for updating a single AnswerRecord entity.
type AnswerRecordUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AnswerRecordMutation
}

// SetSessionID sets the "session_id" field.
func (aruo *AnswerRecordUpdateOne) SetSessionID(s string) *AnswerRecordUpdateOne {
	aruo.mutation.SetSessionID(s)
	return aruo
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (aruo *AnswerRecordUpdateOne) SetNillableSessionID(s *string) *AnswerRecordUpdateOne {
	if s != nil {
		aruo.SetSessionID(*s)
	}
	return aruo
}

// SetQuestionID sets the "question_id" field.
func (aruo *AnswerRecordUpdateOne) SetQuestionID(s string) *AnswerRecordUpdateOne {
	aruo.mutation.SetQuestionID(s)
	return aruo
}

// SetNillableQuestionID sets the "question_id" field if the given value is not nil.
func (aruo *AnswerRecordUpdateOne) SetNillableQuestionID(s *string) *AnswerRecordUpdateOne {
	if s != nil {
		aruo.SetQuestionID(*s)
	}
	return aruo
}

// SetLanguage sets the "language" field.
func (aruo *AnswerRecordUpdateOne) SetLanguage(s string) *AnswerRecordUpdateOne {
	aruo.mutation.SetLanguage(s)
	return aruo
}

// SetNillableLanguage sets the "language" field if the given value is not nil.
func (aruo *AnswerRecordUpdateOne) SetNillableLanguage(s *string) *AnswerRecordUpdateOne {
	if s != nil {
		aruo.SetLanguage(*s)
	}
	return aruo
}

// SetLevel sets the "level" field.
func (aruo *AnswerRecordUpdateOne) SetLevel(s string) *AnswerRecordUpdateOne {
	aruo.mutation.SetLevel(s)
	return aruo
}

// SetNillableLevel sets the "level" field if the given value is not nil.
func (aruo *AnswerRecordUpdateOne) SetNillableLevel(s *string) *AnswerRecordUpdateOne {
	if s != nil {
		aruo.SetLevel(*s)
	}
	return aruo
}

// SetPlatform sets the "platform" field.
func (aruo *AnswerRecordUpdateOne) SetPlatform(s string) *AnswerRecordUpdateOne {
	aruo.mutation.SetPlatform(s)
	return aruo
}

// SetNillablePlatform sets the "platform" field if the given value is not nil.
func (aruo *AnswerRecordUpdateOne) SetNillablePlatform(s *string) *AnswerRecordUpdateOne {
	if s != nil {
		aruo.SetPlatform(*s)
	}
	return aruo
}

// SetAnswerText sets the "answer_text" field.
func (aruo *AnswerRecordUpdateOne) SetAnswerText(s string) *AnswerRecordUpdateOne {
	aruo.mutation.SetAnswerText(s)
	return aruo
}

// SetNillableAnswerText sets the "answer_text" field if the given value is not nil.
func (aruo *AnswerRecordUpdateOne) SetNillableAnswerText(s *string) *AnswerRecordUpdateOne {
	if s != nil {
		aruo.SetAnswerText(*s)
	}
	return aruo
}

// SetCorrect sets the "correct" field.
func (aruo *AnswerRecordUpdateOne) SetCorrect(b bool) *AnswerRecordUpdateOne {
	aruo.mutation.SetCorrect(b)
	return aruo
}

// SetNillableCorrect sets the "correct" field if the given value is not nil.
func (aruo *AnswerRecordUpdateOne) SetNillableCorrect(b *bool) *AnswerRecordUpdateOne {
	if b != nil {
		aruo.SetCorrect(*b)
	}
	return aruo
}

// Mutation returns the AnswerRecordMutation object of the builder.
func (aruo *AnswerRecordUpdateOne) Mutation() *AnswerRecordMutation {
	return aruo.mutation
}

// Where appends a list predicates to the AnswerRecordUpdate builder.
func (aruo *AnswerRecordUpdateOne) Where(ps ...predicate.AnswerRecord) *AnswerRecordUpdateOne {
	aruo.mutation.Where(ps...)
	return aruo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (aruo *AnswerRecordUpdateOne) Select(field string, fields ...string) *AnswerRecordUpdateOne {
	aruo.fields = append([]string{field}, fields...)
	return aruo
}

// Save executes the query and returns the updated AnswerRecord entity.
func (aruo *AnswerRecordUpdateOne) Save(ctx context.Context) (*AnswerRecord, error) {
	return withHooks(ctx, aruo.sqlSave, aruo.mutation, aruo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (aruo *AnswerRecordUpdateOne) SaveX(ctx context.Context) *AnswerRecord {
	node, err := aruo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (aruo *AnswerRecordUpdateOne) Exec(ctx context.Context) error {
	_, err := aruo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (aruo *AnswerRecordUpdateOne) ExecX(ctx context.Context) {
	if err := aruo.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (aruo *AnswerRecordUpdateOne) check() error {
	if v, ok := aruo.mutation.SessionID(); ok {
		if err := answerrecord.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "AnswerRecord.session_id": %w`, err)}
		}
	}
	if v, ok := aruo.mutation.QuestionID(); ok {
		if err := answerrecord.QuestionIDValidator(v); err != nil {
			return &ValidationError{Name: "question_id", err: fmt.Errorf(`ent: validator failed for field "AnswerRecord.question_id": %w`, err)}
		}
	}
	if v, ok := aruo.mutation.Language(); ok {
		if err := answerrecord.LanguageValidator(v); err != nil {
			return &ValidationError{Name: "language", err: fmt.Errorf(`ent: validator failed for field "AnswerRecord.language": %w`, err)}
		}
	}
	if v, ok := aruo.mutation.Level(); ok {
		if err := answerrecord.LevelValidator(v); err != nil {
			return &ValidationError{Name: "level", err: fmt.Errorf(`ent: validator failed for field "AnswerRecord.level": %w`, err)}
		}
	}
	if v, ok := aruo.mutation.Platform(); ok {
		if err := answerrecord.PlatformValidator(v); err != nil {
			return &ValidationError{Name: "platform", err: fmt.Errorf(`ent: validator failed for field "AnswerRecord.platform": %w`, err)}
		}
	}
	if v, ok := aruo.mutation.AnswerText(); ok {
		if err := answerrecord.AnswerTextValidator(v); err != nil {
			return &ValidationError{Name: "answer_text", err: fmt.Errorf(`ent: validator failed for field "AnswerRecord.answer_text": %w`, err)}
		}
	}
	return nil
}

func (aruo *AnswerRecordUpdateOne) sqlSave(ctx context.Context) (_node *AnswerRecord, err error) {
	if err := aruo.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(answerrecord.Table, answerrecord.Columns, sqlgraph.NewFieldSpec(answerrecord.FieldID, field.TypeInt))
	id, ok := aruo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "AnswerRecord.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := aruo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, answerrecord.FieldID)
		for _, f := range fields {
			if !answerrecord.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != answerrecord.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := aruo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := aruo.mutation.SessionID(); ok {
		_spec.SetField(answerrecord.FieldSessionID, field.TypeString, value)
	}
	if value, ok := aruo.mutation.QuestionID(); ok {
		_spec.SetField(answerrecord.FieldQuestionID, field.TypeString, value)
	}
	if value, ok := aruo.mutation.Language(); ok {
		_spec.SetField(answerrecord.FieldLanguage, field.TypeString, value)
	}
	if value, ok := aruo.mutation.Level(); ok {
		_spec.SetField(answerrecord.FieldLevel, field.TypeString, value)
	}
	if value, ok := aruo.mutation.Platform(); ok {
		_spec.SetField(answerrecord.FieldPlatform, field.TypeString, value)
	}
	if value, ok := aruo.mutation.AnswerText(); ok {
		_spec.SetField(answerrecord.FieldAnswerText, field.TypeString, value)
	}
	if value, ok := aruo.mutation.Correct(); ok {
		_spec.SetField(answerrecord.FieldCorrect, field.TypeBool, value)
	}
	_node = &AnswerRecord{config: aruo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, aruo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{answerrecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	aruo.mutation.done = true
	return _node, nil
}
