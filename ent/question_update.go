// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/tatumgames/tatumtech/ent/predicate"
	"github.com/tatumgames/tatumtech/ent/question"
)

// QuestionUpdate is the builder for updating Question entities.
type QuestionUpdate struct {
	config
	hooks    []Hook
	mutation *QuestionMutation
}

// Where appends a list predicates to the QuestionUpdate builder.
func (qu *QuestionUpdate) Where(ps ...predicate.Question) *QuestionUpdate {
	qu.mutation.Where(ps...)
	return qu
}

// SetLanguage sets the "language" field.
func (qu *QuestionUpdate) SetLanguage(s string) *QuestionUpdate {
	qu.mutation.SetLanguage(s)
	return qu
}

// SetNillableLanguage sets the "language" field if the given value is not nil.
func (qu *QuestionUpdate) SetNillableLanguage(s *string) *QuestionUpdate {
	if s != nil {
		qu.SetLanguage(*s)
	}
	return qu
}

// SetLevel sets the "level" field.
func (qu *QuestionUpdate) SetLevel(s string) *QuestionUpdate {
	qu.mutation.SetLevel(s)
	return qu
}

// SetNillableLevel sets the "level" field if the given value is not nil.
func (qu *QuestionUpdate) SetNillableLevel(s *string) *QuestionUpdate {
	if s != nil {
		qu.SetLevel(*s)
	}
	return qu
}

// SetPlatform sets the "platform" field.
func (qu *QuestionUpdate) SetPlatform(s string) *QuestionUpdate {
	qu.mutation.SetPlatform(s)
	return qu
}

// SetNillablePlatform sets the "platform" field if the given value is not nil.
func (qu *QuestionUpdate) SetNillablePlatform(s *string) *QuestionUpdate {
	if s != nil {
		qu.SetPlatform(*s)
	}
	return qu
}

// SetDifficulty sets the "difficulty" field.
func (qu *QuestionUpdate) SetDifficulty(i int) *QuestionUpdate {
	qu.mutation.ResetDifficulty()
	qu.mutation.SetDifficulty(i)
	return qu
}

// SetNillableDifficulty sets the "difficulty" field if the given value is not nil.
func (qu *QuestionUpdate) SetNillableDifficulty(i *int) *QuestionUpdate {
	if i != nil {
		qu.SetDifficulty(*i)
	}
	return qu
}

// AddDifficulty adds i to the "difficulty" field.
func (qu *QuestionUpdate) AddDifficulty(i int) *QuestionUpdate {
	qu.mutation.AddDifficulty(i)
	return qu
}

// SetPrompt sets the "prompt" field.
func (qu *QuestionUpdate) SetPrompt(s string) *QuestionUpdate {
	qu.mutation.SetPrompt(s)
	return qu
}

// SetNillablePrompt sets the "prompt" field if the given value is not nil.
func (qu *QuestionUpdate) SetNillablePrompt(s *string) *QuestionUpdate {
	if s != nil {
		qu.SetPrompt(*s)
	}
	return qu
}

// SetChoices sets the "choices" field.
func (qu *QuestionUpdate) SetChoices(s []string) *QuestionUpdate {
	qu.mutation.SetChoices(s)
	return qu
}

// AppendChoices appends s to the "choices" field.
func (qu *QuestionUpdate) AppendChoices(s []string) *QuestionUpdate {
	qu.mutation.AppendChoices(s)
	return qu
}

// SetAnswer sets the "answer" field.
func (qu *QuestionUpdate) SetAnswer(s string) *QuestionUpdate {
	qu.mutation.SetAnswer(s)
	return qu
}

// SetNillableAnswer sets the "answer" field if the given value is not nil.
func (qu *QuestionUpdate) SetNillableAnswer(s *string) *QuestionUpdate {
	if s != nil {
		qu.SetAnswer(*s)
	}
	return qu
}

// SetExplanation sets the "explanation" field.
func (qu *QuestionUpdate) SetExplanation(s string) *QuestionUpdate {
	qu.mutation.SetExplanation(s)
	return qu
}

// SetNillableExplanation sets the "explanation" field if the given value is not nil.
func (qu *QuestionUpdate) SetNillableExplanation(s *string) *QuestionUpdate {
	if s != nil {
		qu.SetExplanation(*s)
	}
	return qu
}

// Mutation returns the QuestionMutation object of the builder.
func (qu *QuestionUpdate) Mutation() *QuestionMutation {
	return qu.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (qu *QuestionUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, qu.sqlSave, qu.mutation, qu.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (qu *QuestionUpdate) SaveX(ctx context.Context) int {
	affected, err := qu.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (qu *QuestionUpdate) Exec(ctx context.Context) error {
	_, err := qu.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (qu *QuestionUpdate) ExecX(ctx context.Context) {
	if err := qu.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (qu *QuestionUpdate) check() error {
	if v, ok := qu.mutation.Language(); ok {
		if err := question.LanguageValidator(v); err != nil {
			return &ValidationError{Name: "language", err: fmt.Errorf(`ent: validator failed for field "Question.language": %w`, err)}
		}
	}
	if v, ok := qu.mutation.Level(); ok {
		if err := question.LevelValidator(v); err != nil {
			return &ValidationError{Name: "level", err: fmt.Errorf(`ent: validator failed for field "Question.level": %w`, err)}
		}
	}
	if v, ok := qu.mutation.Platform(); ok {
		if err := question.PlatformValidator(v); err != nil {
			return &ValidationError{Name: "platform", err: fmt.Errorf(`ent: validator failed for field "Question.platform": %w`, err)}
		}
	}
	if v, ok := qu.mutation.Prompt(); ok {
		if err := question.PromptValidator(v); err != nil {
			return &ValidationError{Name: "prompt", err: fmt.Errorf(`ent: validator failed for field "Question.prompt": %w`, err)}
		}
	}
	if v, ok := qu.mutation.Answer(); ok {
		if err := question.AnswerValidator(v); err != nil {
			return &ValidationError{Name: "answer", err: fmt.Errorf(`ent: validator failed for field "Question.answer": %w`, err)}
		}
	}
	return nil
}

func (qu *QuestionUpdate) sqlSave(ctx context.Context) (n int, err error) {
	if err := qu.check(); err != nil {
		return n, err
	}
	_spec := sqlgraph.NewUpdateSpec(question.Table, question.Columns, sqlgraph.NewFieldSpec(question.FieldID, field.TypeString))
	if ps := qu.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := qu.mutation.Language(); ok {
		_spec.SetField(question.FieldLanguage, field.TypeString, value)
	}
	if value, ok := qu.mutation.Level(); ok {
		_spec.SetField(question.FieldLevel, field.TypeString, value)
	}
	if value, ok := qu.mutation.Platform(); ok {
		_spec.SetField(question.FieldPlatform, field.TypeString, value)
	}
	if value, ok := qu.mutation.Difficulty(); ok {
		_spec.SetField(question.FieldDifficulty, field.TypeInt, value)
	}
	if value, ok := qu.mutation.AddedDifficulty(); ok {
		_spec.AddField(question.FieldDifficulty, field.TypeInt, value)
	}
	if value, ok := qu.mutation.Prompt(); ok {
		_spec.SetField(question.FieldPrompt, field.TypeString, value)
	}
	if value, ok := qu.mutation.Choices(); ok {
		_spec.SetField(question.FieldChoices, field.TypeJSON, value)
	}
	if value, ok := qu.mutation.AppendedChoices(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, question.FieldChoices, value)
		})
	}
	if value, ok := qu.mutation.Answer(); ok {
		_spec.SetField(question.FieldAnswer, field.TypeString, value)
	}
	if value, ok := qu.mutation.Explanation(); ok {
		_spec.SetField(question.FieldExplanation, field.TypeString, value)
	}
	if n, err = sqlgraph.UpdateNodes(ctx, qu.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{question.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	qu.mutation.done = true
	return n, nil
}

// QuestionUpdateOne is the builder for updating a single Question entity.
type QuestionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *QuestionMutation
}

// SetLanguage sets the "language" field.
func (quo *QuestionUpdateOne) SetLanguage(s string) *QuestionUpdateOne {
	quo.mutation.SetLanguage(s)
	return quo
}

// SetNillableLanguage sets the "language" field if the given value is not nil.
func (quo *QuestionUpdateOne) SetNillableLanguage(s *string) *QuestionUpdateOne {
	if s != nil {
		quo.SetLanguage(*s)
	}
	return quo
}

// SetLevel sets the "level" field.
func (quo *QuestionUpdateOne) SetLevel(s string) *QuestionUpdateOne {
	quo.mutation.SetLevel(s)
	return quo
}

// SetNillableLevel sets the "level" field if the given value is not nil.
func (quo *QuestionUpdateOne) SetNillableLevel(s *string) *QuestionUpdateOne {
	if s != nil {
		quo.SetLevel(*s)
	}
	return quo
}

// SetPlatform sets the "platform" field.
func (quo *QuestionUpdateOne) SetPlatform(s string) *QuestionUpdateOne {
	quo.mutation.SetPlatform(s)
	return quo
}

// SetNillablePlatform sets the "platform" field if the given value is not nil.
func (quo *QuestionUpdateOne) SetNillablePlatform(s *string) *QuestionUpdateOne {
	if s != nil {
		quo.SetPlatform(*s)
	}
	return quo
}

// SetDifficulty sets the "difficulty" field.
func (quo *QuestionUpdateOne) SetDifficulty(i int) *QuestionUpdateOne {
	quo.mutation.ResetDifficulty()
	quo.mutation.SetDifficulty(i)
	return quo
}

// SetNillableDifficulty sets the "difficulty" field if the given value is not nil.
func (quo *QuestionUpdateOne) SetNillableDifficulty(i *int) *QuestionUpdateOne {
	if i != nil {
		quo.SetDifficulty(*i)
	}
	return quo
}

// AddDifficulty adds i to the "difficulty" field.
func (quo *QuestionUpdateOne) AddDifficulty(i int) *QuestionUpdateOne {
	quo.mutation.AddDifficulty(i)
	return quo
}

// SetPrompt sets the "prompt" field.
func (quo *QuestionUpdateOne) SetPrompt(s string) *QuestionUpdateOne {
	quo.mutation.SetPrompt(s)
	return quo
}

// SetNillablePrompt sets the "prompt" field if the given value is not nil.
func (quo *QuestionUpdateOne) SetNillablePrompt(s *string) *QuestionUpdateOne {
	if s != nil {
		quo.SetPrompt(*s)
	}
	return quo
}

// SetChoices sets the "choices" field.
func (quo *QuestionUpdateOne) SetChoices(s []string) *QuestionUpdateOne {
	quo.mutation.SetChoices(s)
	return quo
}

// AppendChoices appends s to the "choices" field.
func (quo *QuestionUpdateOne) AppendChoices(s []string) *QuestionUpdateOne {
	quo.mutation.AppendChoices(s)
	return quo
}

// SetAnswer sets the "answer" field.
func (quo *QuestionUpdateOne) SetAnswer(s string) *QuestionUpdateOne {
	quo.mutation.SetAnswer(s)
	return quo
}

// SetNillableAnswer sets the "answer" field if the given value is not nil.
func (quo *QuestionUpdateOne) SetNillableAnswer(s *string) *QuestionUpdateOne {
	if s != nil {
		quo.SetAnswer(*s)
	}
	return quo
}

// SetExplanation sets the "explanation" field.
func (quo *QuestionUpdateOne) SetExplanation(s string) *QuestionUpdateOne {
	quo.mutation.SetExplanation(s)
	return quo
}

// SetNillableExplanation sets the "explanation" field if the given value is not nil.
func (quo *QuestionUpdateOne) SetNillableExplanation(s *string) *QuestionUpdateOne {
	if s != nil {
		quo.SetExplanation(*s)
	}
	return quo
}

// Mutation returns the QuestionMutation object of the builder.
func (quo *QuestionUpdateOne) Mutation() *QuestionMutation {
	return quo.mutation
}

// Where appends a list predicates to the QuestionUpdate builder.
func (quo *QuestionUpdateOne) Where(ps ...predicate.Question) *QuestionUpdateOne {
	quo.mutation.Where(ps...)
	return quo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (quo *QuestionUpdateOne) Select(field string, fields ...string) *QuestionUpdateOne {
	quo.fields = append([]string{field}, fields...)
	return quo
}

// Save executes the query and returns the updated Question entity.
func (quo *QuestionUpdateOne) Save(ctx context.Context) (*Question, error) {
	return withHooks(ctx, quo.sqlSave, quo.mutation, quo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (quo *QuestionUpdateOne) SaveX(ctx context.Context) *Question {
	node, err := quo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (quo *QuestionUpdateOne) Exec(ctx context.Context) error {
	_, err := quo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (quo *QuestionUpdateOne) ExecX(ctx context.Context) {
	if err := quo.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (quo *QuestionUpdateOne) check() error {
	if v, ok := quo.mutation.Language(); ok {
		if err := question.LanguageValidator(v); err != nil {
			return &ValidationError{Name: "language", err: fmt.Errorf(`ent: validator failed for field "Question.language": %w`, err)}
		}
	}
	if v, ok := quo.mutation.Level(); ok {
		if err := question.LevelValidator(v); err != nil {
			return &ValidationError{Name: "level", err: fmt.Errorf(`ent: validator failed for field "Question.level": %w`, err)}
		}
	}
	if v, ok := quo.mutation.Platform(); ok {
		if err := question.PlatformValidator(v); err != nil {
			return &ValidationError{Name: "platform", err: fmt.Errorf(`ent: validator failed for field "Question.platform": %w`, err)}
		}
	}
	if v, ok := quo.mutation.Prompt(); ok {
		if err := question.PromptValidator(v); err != nil {
			return &ValidationError{Name: "prompt", err: fmt.Errorf(`ent: validator failed for field "Question.prompt": %w`, err)}
		}
	}
	if v, ok := quo.mutation.Answer(); ok {
		if err := question.AnswerValidator(v); err != nil {
			return &ValidationError{Name: "answer", err: fmt.Errorf(`ent: validator failed for field "Question.answer": %w`, err)}
		}
	}
	return nil
}

func (quo *QuestionUpdateOne) sqlSave(ctx context.Context) (_node *Question, err error) {
	if err := quo.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(question.Table, question.Columns, sqlgraph.NewFieldSpec(question.FieldID, field.TypeString))
	id, ok := quo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Question.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := quo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, question.FieldID)
		for _, f := range fields {
			if !question.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != question.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := quo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := quo.mutation.Language(); ok {
		_spec.SetField(question.FieldLanguage, field.TypeString, value)
	}
	if value, ok := quo.mutation.Level(); ok {
		_spec.SetField(question.FieldLevel, field.TypeString, value)
	}
	if value, ok := quo.mutation.Platform(); ok {
		_spec.SetField(question.FieldPlatform, field.TypeString, value)
	}
	if value, ok := quo.mutation.Difficulty(); ok {
		_spec.SetField(question.FieldDifficulty, field.TypeInt, value)
	}
	if value, ok := quo.mutation.AddedDifficulty(); ok {
		_spec.AddField(question.FieldDifficulty, field.TypeInt, value)
	}
	if value, ok := quo.mutation.Prompt(); ok {
		_spec.SetField(question.FieldPrompt, field.TypeString, value)
	}
	if value, ok := quo.mutation.Choices(); ok {
		_spec.SetField(question.FieldChoices, field.TypeJSON, value)
	}
	if value, ok := quo.mutation.AppendedChoices(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, question.FieldChoices, value)
		})
	}
	if value, ok := quo.mutation.Answer(); ok {
		_spec.SetField(question.FieldAnswer, field.TypeString, value)
	}
	if value, ok := quo.mutation.Explanation(); ok {
		_spec.SetField(question.FieldExplanation, field.TypeString, value)
	}
	_node = &Question{config: quo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, quo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{question.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	quo.mutation.done = true
	return _node, nil
}
