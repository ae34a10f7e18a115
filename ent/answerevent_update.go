// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/quizforge/quizforge/ent/answerevent"
	"github.com/quizforge/quizforge/ent/predicate"
)

// AnswerEventUpdate is the builder for updating AnswerEvent entities.
type AnswerEventUpdate struct {
	config
	hooks    []Hook
	mutation *AnswerEventMutation
}

// Where appends a list predicates to the AnswerEventUpdate builder.
func (_u *AnswerEventUpdate) Where(ps ...predicate.AnswerEvent) *AnswerEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *AnswerEventUpdate) SetSessionID(v string) *AnswerEventUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *AnswerEventUpdate) SetNillableSessionID(v *string) *AnswerEventUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetQuestionIndex sets the "question_index" field.
func (_u *AnswerEventUpdate) SetQuestionIndex(v int) *AnswerEventUpdate {
	_u.mutation.ResetQuestionIndex()
	_u.mutation.SetQuestionIndex(v)
	return _u
}

// SetNillableQuestionIndex sets the "question_index" field if the given value is not nil.
func (_u *AnswerEventUpdate) SetNillableQuestionIndex(v *int) *AnswerEventUpdate {
	if v != nil {
		_u.SetQuestionIndex(*v)
	}
	return _u
}

// AddQuestionIndex adds value to the "question_index" field.
func (_u *AnswerEventUpdate) AddQuestionIndex(v int) *AnswerEventUpdate {
	_u.mutation.AddQuestionIndex(v)
	return _u
}

// SetPrompt sets the "prompt" field.
func (_u *AnswerEventUpdate) SetPrompt(v string) *AnswerEventUpdate {
	_u.mutation.SetPrompt(v)
	return _u
}

// SetNillablePrompt sets the "prompt" field if the given value is not nil.
func (_u *AnswerEventUpdate) SetNillablePrompt(v *string) *AnswerEventUpdate {
	if v != nil {
		_u.SetPrompt(*v)
	}
	return _u
}

// SetCorrectLabel sets the "correct_label" field.
func (_u *AnswerEventUpdate) SetCorrectLabel(v string) *AnswerEventUpdate {
	_u.mutation.SetCorrectLabel(v)
	return _u
}

// SetNillableCorrectLabel sets the "correct_label" field if the given value is not nil.
func (_u *AnswerEventUpdate) SetNillableCorrectLabel(v *string) *AnswerEventUpdate {
	if v != nil {
		_u.SetCorrectLabel(*v)
	}
	return _u
}

// SetChosenLabel sets the "chosen_label" field.
func (_u *AnswerEventUpdate) SetChosenLabel(v string) *AnswerEventUpdate {
	_u.mutation.SetChosenLabel(v)
	return _u
}

// SetNillableChosenLabel sets the "chosen_label" field if the given value is not nil.
func (_u *AnswerEventUpdate) SetNillableChosenLabel(v *string) *AnswerEventUpdate {
	if v != nil {
		_u.SetChosenLabel(*v)
	}
	return _u
}

// SetCorrect sets the "correct" field.
func (_u *AnswerEventUpdate) SetCorrect(v bool) *AnswerEventUpdate {
	_u.mutation.SetCorrect(v)
	return _u
}

// SetNillableCorrect sets the "correct" field if the given value is not nil.
func (_u *AnswerEventUpdate) SetNillableCorrect(v *bool) *AnswerEventUpdate {
	if v != nil {
		_u.SetCorrect(*v)
	}
	return _u
}

// Mutation returns the AnswerEventMutation object of the builder.
func (_u *AnswerEventUpdate) Mutation() *AnswerEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AnswerEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AnswerEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AnswerEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AnswerEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AnswerEventUpdate) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := answerevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "AnswerEvent.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Prompt(); ok {
		if err := answerevent.PromptValidator(v); err != nil {
			return &ValidationError{Name: "prompt", err: fmt.Errorf(`ent: validator failed for field "AnswerEvent.prompt": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CorrectLabel(); ok {
		if err := answerevent.CorrectLabelValidator(v); err != nil {
			return &ValidationError{Name: "correct_label", err: fmt.Errorf(`ent: validator failed for field "AnswerEvent.correct_label": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ChosenLabel(); ok {
		if err := answerevent.ChosenLabelValidator(v); err != nil {
			return &ValidationError{Name: "chosen_label", err: fmt.Errorf(`ent: validator failed for field "AnswerEvent.chosen_label": %w`, err)}
		}
	}
	return nil
}

func (_u *AnswerEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(answerevent.Table, answerevent.Columns, sqlgraph.NewFieldSpec(answerevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(answerevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.QuestionIndex(); ok {
		_spec.SetField(answerevent.FieldQuestionIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedQuestionIndex(); ok {
		_spec.AddField(answerevent.FieldQuestionIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Prompt(); ok {
		_spec.SetField(answerevent.FieldPrompt, field.TypeString, value)
	}
	if value, ok := _u.mutation.CorrectLabel(); ok {
		_spec.SetField(answerevent.FieldCorrectLabel, field.TypeString, value)
	}
	if value, ok := _u.mutation.ChosenLabel(); ok {
		_spec.SetField(answerevent.FieldChosenLabel, field.TypeString, value)
	}
	if value, ok := _u.mutation.Correct(); ok {
		_spec.SetField(answerevent.FieldCorrect, field.TypeBool, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{answerevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AnswerEventUpdateOne is the builder for updating a single AnswerEvent entity.
type AnswerEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AnswerEventMutation
}

// SetSessionID sets the "session_id" field.
func (_u *AnswerEventUpdateOne) SetSessionID(v string) *AnswerEventUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *AnswerEventUpdateOne) SetNillableSessionID(v *string) *AnswerEventUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetQuestionIndex sets the "question_index" field.
func (_u *AnswerEventUpdateOne) SetQuestionIndex(v int) *AnswerEventUpdateOne {
	_u.mutation.ResetQuestionIndex()
	_u.mutation.SetQuestionIndex(v)
	return _u
}

// SetNillableQuestionIndex sets the "question_index" field if the given value is not nil.
func (_u *AnswerEventUpdateOne) SetNillableQuestionIndex(v *int) *AnswerEventUpdateOne {
	if v != nil {
		_u.SetQuestionIndex(*v)
	}
	return _u
}

// AddQuestionIndex adds value to the "question_index" field.
func (_u *AnswerEventUpdateOne) AddQuestionIndex(v int) *AnswerEventUpdateOne {
	_u.mutation.AddQuestionIndex(v)
	return _u
}

// SetPrompt sets the "prompt" field.
func (_u *AnswerEventUpdateOne) SetPrompt(v string) *AnswerEventUpdateOne {
	_u.mutation.SetPrompt(v)
	return _u
}

// SetNillablePrompt sets the "prompt" field if the given value is not nil.
func (_u *AnswerEventUpdateOne) SetNillablePrompt(v *string) *AnswerEventUpdateOne {
	if v != nil {
		_u.SetPrompt(*v)
	}
	return _u
}

// SetCorrectLabel sets the "correct_label" field.
func (_u *AnswerEventUpdateOne) SetCorrectLabel(v string) *AnswerEventUpdateOne {
	_u.mutation.SetCorrectLabel(v)
	return _u
}

// SetNillableCorrectLabel sets the "correct_label" field if the given value is not nil.
func (_u *AnswerEventUpdateOne) SetNillableCorrectLabel(v *string) *AnswerEventUpdateOne {
	if v != nil {
		_u.SetCorrectLabel(*v)
	}
	return _u
}

// SetChosenLabel sets the "chosen_label" field.
func (_u *AnswerEventUpdateOne) SetChosenLabel(v string) *AnswerEventUpdateOne {
	_u.mutation.SetChosenLabel(v)
	return _u
}

// SetNillableChosenLabel sets the "chosen_label" field if the given value is not nil.
func (_u *AnswerEventUpdateOne) SetNillableChosenLabel(v *string) *AnswerEventUpdateOne {
	if v != nil {
		_u.SetChosenLabel(*v)
	}
	return _u
}

// SetCorrect sets the "correct" field.
func (_u *AnswerEventUpdateOne) SetCorrect(v bool) *AnswerEventUpdateOne {
	_u.mutation.SetCorrect(v)
	return _u
}

// SetNillableCorrect sets the "correct" field if the given value is not nil.
func (_u *AnswerEventUpdateOne) SetNillableCorrect(v *bool) *AnswerEventUpdateOne {
	if v != nil {
		_u.SetCorrect(*v)
	}
	return _u
}

// Mutation returns the AnswerEventMutation object of the builder.
func (_u *AnswerEventUpdateOne) Mutation() *AnswerEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the AnswerEventUpdate builder.
func (_u *AnswerEventUpdateOne) Where(ps ...predicate.AnswerEvent) *AnswerEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AnswerEventUpdateOne) Select(field string, fields ...string) *AnswerEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated AnswerEvent entity.
func (_u *AnswerEventUpdateOne) Save(ctx context.Context) (*AnswerEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AnswerEventUpdateOne) SaveX(ctx context.Context) *AnswerEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AnswerEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AnswerEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AnswerEventUpdateOne) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := answerevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "AnswerEvent.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Prompt(); ok {
		if err := answerevent.PromptValidator(v); err != nil {
			return &ValidationError{Name: "prompt", err: fmt.Errorf(`ent: validator failed for field "AnswerEvent.prompt": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CorrectLabel(); ok {
		if err := answerevent.CorrectLabelValidator(v); err != nil {
			return &ValidationError{Name: "correct_label", err: fmt.Errorf(`ent: validator failed for field "AnswerEvent.correct_label": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ChosenLabel(); ok {
		if err := answerevent.ChosenLabelValidator(v); err != nil {
			return &ValidationError{Name: "chosen_label", err: fmt.Errorf(`ent: validator failed for field "AnswerEvent.chosen_label": %w`, err)}
		}
	}
	return nil
}

func (_u *AnswerEventUpdateOne) sqlSave(ctx context.Context) (_node *AnswerEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(answerevent.Table, answerevent.Columns, sqlgraph.NewFieldSpec(answerevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "AnswerEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, answerevent.FieldID)
		for _, f := range fields {
			if !answerevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != answerevent.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(answerevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.QuestionIndex(); ok {
		_spec.SetField(answerevent.FieldQuestionIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedQuestionIndex(); ok {
		_spec.AddField(answerevent.FieldQuestionIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Prompt(); ok {
		_spec.SetField(answerevent.FieldPrompt, field.TypeString, value)
	}
	if value, ok := _u.mutation.CorrectLabel(); ok {
		_spec.SetField(answerevent.FieldCorrectLabel, field.TypeString, value)
	}
	if value, ok := _u.mutation.ChosenLabel(); ok {
		_spec.SetField(answerevent.FieldChosenLabel, field.TypeString, value)
	}
	if value, ok := _u.mutation.Correct(); ok {
		_spec.SetField(answerevent.FieldCorrect, field.TypeBool, value)
	}
	_node = &AnswerEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{answerevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
