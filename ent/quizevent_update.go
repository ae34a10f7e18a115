// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/quizforge/quizforge/ent/predicate"
	"github.com/quizforge/quizforge/ent/quizevent"
)

// QuizEventUpdate is the builder for updating QuizEvent entities.
type QuizEventUpdate struct {
	config
	hooks    []Hook
	mutation *QuizEventMutation
}

// Where appends a list predicates to the QuizEventUpdate builder.
func (_u *QuizEventUpdate) Where(ps ...predicate.QuizEvent) *QuizEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *QuizEventUpdate) SetSessionID(v string) *QuizEventUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *QuizEventUpdate) SetNillableSessionID(v *string) *QuizEventUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetTopic sets the "topic" field.
func (_u *QuizEventUpdate) SetTopic(v string) *QuizEventUpdate {
	_u.mutation.SetTopic(v)
	return _u
}

// SetNillableTopic sets the "topic" field if the given value is not nil.
func (_u *QuizEventUpdate) SetNillableTopic(v *string) *QuizEventUpdate {
	if v != nil {
		_u.SetTopic(*v)
	}
	return _u
}

// SetDifficulty sets the "difficulty" field.
func (_u *QuizEventUpdate) SetDifficulty(v string) *QuizEventUpdate {
	_u.mutation.SetDifficulty(v)
	return _u
}

// SetNillableDifficulty sets the "difficulty" field if the given value is not nil.
func (_u *QuizEventUpdate) SetNillableDifficulty(v *string) *QuizEventUpdate {
	if v != nil {
		_u.SetDifficulty(*v)
	}
	return _u
}

// SetScore sets the "score" field.
func (_u *QuizEventUpdate) SetScore(v int) *QuizEventUpdate {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *QuizEventUpdate) SetNillableScore(v *int) *QuizEventUpdate {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *QuizEventUpdate) AddScore(v int) *QuizEventUpdate {
	_u.mutation.AddScore(v)
	return _u
}

// SetTotal sets the "total" field.
func (_u *QuizEventUpdate) SetTotal(v int) *QuizEventUpdate {
	_u.mutation.ResetTotal()
	_u.mutation.SetTotal(v)
	return _u
}

// SetNillableTotal sets the "total" field if the given value is not nil.
func (_u *QuizEventUpdate) SetNillableTotal(v *int) *QuizEventUpdate {
	if v != nil {
		_u.SetTotal(*v)
	}
	return _u
}

// AddTotal adds value to the "total" field.
func (_u *QuizEventUpdate) AddTotal(v int) *QuizEventUpdate {
	_u.mutation.AddTotal(v)
	return _u
}

// SetAnswered sets the "answered" field.
func (_u *QuizEventUpdate) SetAnswered(v int) *QuizEventUpdate {
	_u.mutation.ResetAnswered()
	_u.mutation.SetAnswered(v)
	return _u
}

// SetNillableAnswered sets the "answered" field if the given value is not nil.
func (_u *QuizEventUpdate) SetNillableAnswered(v *int) *QuizEventUpdate {
	if v != nil {
		_u.SetAnswered(*v)
	}
	return _u
}

// AddAnswered adds value to the "answered" field.
func (_u *QuizEventUpdate) AddAnswered(v int) *QuizEventUpdate {
	_u.mutation.AddAnswered(v)
	return _u
}

// SetAccuracy sets the "accuracy" field.
func (_u *QuizEventUpdate) SetAccuracy(v float64) *QuizEventUpdate {
	_u.mutation.ResetAccuracy()
	_u.mutation.SetAccuracy(v)
	return _u
}

// SetNillableAccuracy sets the "accuracy" field if the given value is not nil.
func (_u *QuizEventUpdate) SetNillableAccuracy(v *float64) *QuizEventUpdate {
	if v != nil {
		_u.SetAccuracy(*v)
	}
	return _u
}

// AddAccuracy adds value to the "accuracy" field.
func (_u *QuizEventUpdate) AddAccuracy(v float64) *QuizEventUpdate {
	_u.mutation.AddAccuracy(v)
	return _u
}

// Mutation returns the QuizEventMutation object of the builder.
func (_u *QuizEventUpdate) Mutation() *QuizEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *QuizEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *QuizEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *QuizEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *QuizEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *QuizEventUpdate) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := quizevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "QuizEvent.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Topic(); ok {
		if err := quizevent.TopicValidator(v); err != nil {
			return &ValidationError{Name: "topic", err: fmt.Errorf(`ent: validator failed for field "QuizEvent.topic": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Difficulty(); ok {
		if err := quizevent.DifficultyValidator(v); err != nil {
			return &ValidationError{Name: "difficulty", err: fmt.Errorf(`ent: validator failed for field "QuizEvent.difficulty": %w`, err)}
		}
	}
	return nil
}

func (_u *QuizEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(quizevent.Table, quizevent.Columns, sqlgraph.NewFieldSpec(quizevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(quizevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Topic(); ok {
		_spec.SetField(quizevent.FieldTopic, field.TypeString, value)
	}
	if value, ok := _u.mutation.Difficulty(); ok {
		_spec.SetField(quizevent.FieldDifficulty, field.TypeString, value)
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(quizevent.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(quizevent.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Total(); ok {
		_spec.SetField(quizevent.FieldTotal, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotal(); ok {
		_spec.AddField(quizevent.FieldTotal, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Answered(); ok {
		_spec.SetField(quizevent.FieldAnswered, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAnswered(); ok {
		_spec.AddField(quizevent.FieldAnswered, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Accuracy(); ok {
		_spec.SetField(quizevent.FieldAccuracy, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAccuracy(); ok {
		_spec.AddField(quizevent.FieldAccuracy, field.TypeFloat64, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{quizevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// QuizEventUpdateOne is the builder for updating a single QuizEvent entity.
type QuizEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *QuizEventMutation
}

// SetSessionID sets the "session_id" field.
func (_u *QuizEventUpdateOne) SetSessionID(v string) *QuizEventUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *QuizEventUpdateOne) SetNillableSessionID(v *string) *QuizEventUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetTopic sets the "topic" field.
func (_u *QuizEventUpdateOne) SetTopic(v string) *QuizEventUpdateOne {
	_u.mutation.SetTopic(v)
	return _u
}

// SetNillableTopic sets the "topic" field if the given value is not nil.
func (_u *QuizEventUpdateOne) SetNillableTopic(v *string) *QuizEventUpdateOne {
	if v != nil {
		_u.SetTopic(*v)
	}
	return _u
}

// SetDifficulty sets the "difficulty" field.
func (_u *QuizEventUpdateOne) SetDifficulty(v string) *QuizEventUpdateOne {
	_u.mutation.SetDifficulty(v)
	return _u
}

// SetNillableDifficulty sets the "difficulty" field if the given value is not nil.
func (_u *QuizEventUpdateOne) SetNillableDifficulty(v *string) *QuizEventUpdateOne {
	if v != nil {
		_u.SetDifficulty(*v)
	}
	return _u
}

// SetScore sets the "score" field.
func (_u *QuizEventUpdateOne) SetScore(v int) *QuizEventUpdateOne {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *QuizEventUpdateOne) SetNillableScore(v *int) *QuizEventUpdateOne {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *QuizEventUpdateOne) AddScore(v int) *QuizEventUpdateOne {
	_u.mutation.AddScore(v)
	return _u
}

// SetTotal sets the "total" field.
func (_u *QuizEventUpdateOne) SetTotal(v int) *QuizEventUpdateOne {
	_u.mutation.ResetTotal()
	_u.mutation.SetTotal(v)
	return _u
}

// SetNillableTotal sets the "total" field if the given value is not nil.
func (_u *QuizEventUpdateOne) SetNillableTotal(v *int) *QuizEventUpdateOne {
	if v != nil {
		_u.SetTotal(*v)
	}
	return _u
}

// AddTotal adds value to the "total" field.
func (_u *QuizEventUpdateOne) AddTotal(v int) *QuizEventUpdateOne {
	_u.mutation.AddTotal(v)
	return _u
}

// SetAnswered sets the "answered" field.
func (_u *QuizEventUpdateOne) SetAnswered(v int) *QuizEventUpdateOne {
	_u.mutation.ResetAnswered()
	_u.mutation.SetAnswered(v)
	return _u
}

// SetNillableAnswered sets the "answered" field if the given value is not nil.
func (_u *QuizEventUpdateOne) SetNillableAnswered(v *int) *QuizEventUpdateOne {
	if v != nil {
		_u.SetAnswered(*v)
	}
	return _u
}

// AddAnswered adds value to the "answered" field.
func (_u *QuizEventUpdateOne) AddAnswered(v int) *QuizEventUpdateOne {
	_u.mutation.AddAnswered(v)
	return _u
}

// SetAccuracy sets the "accuracy" field.
func (_u *QuizEventUpdateOne) SetAccuracy(v float64) *QuizEventUpdateOne {
	_u.mutation.ResetAccuracy()
	_u.mutation.SetAccuracy(v)
	return _u
}

// SetNillableAccuracy sets the "accuracy" field if the given value is not nil.
func (_u *QuizEventUpdateOne) SetNillableAccuracy(v *float64) *QuizEventUpdateOne {
	if v != nil {
		_u.SetAccuracy(*v)
	}
	return _u
}

// AddAccuracy adds value to the "accuracy" field.
func (_u *QuizEventUpdateOne) AddAccuracy(v float64) *QuizEventUpdateOne {
	_u.mutation.AddAccuracy(v)
	return _u
}

// Mutation returns the QuizEventMutation object of the builder.
func (_u *QuizEventUpdateOne) Mutation() *QuizEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the QuizEventUpdate builder.
func (_u *QuizEventUpdateOne) Where(ps ...predicate.QuizEvent) *QuizEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *QuizEventUpdateOne) Select(field string, fields ...string) *QuizEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated QuizEvent entity.
func (_u *QuizEventUpdateOne) Save(ctx context.Context) (*QuizEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *QuizEventUpdateOne) SaveX(ctx context.Context) *QuizEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *QuizEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *QuizEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *QuizEventUpdateOne) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := quizevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "QuizEvent.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Topic(); ok {
		if err := quizevent.TopicValidator(v); err != nil {
			return &ValidationError{Name: "topic", err: fmt.Errorf(`ent: validator failed for field "QuizEvent.topic": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Difficulty(); ok {
		if err := quizevent.DifficultyValidator(v); err != nil {
			return &ValidationError{Name: "difficulty", err: fmt.Errorf(`ent: validator failed for field "QuizEvent.difficulty": %w`, err)}
		}
	}
	return nil
}

func (_u *QuizEventUpdateOne) sqlSave(ctx context.Context) (_node *QuizEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(quizevent.Table, quizevent.Columns, sqlgraph.NewFieldSpec(quizevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "QuizEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, quizevent.FieldID)
		for _, f := range fields {
			if !quizevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != quizevent.FieldID {
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
		_spec.SetField(quizevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Topic(); ok {
		_spec.SetField(quizevent.FieldTopic, field.TypeString, value)
	}
	if value, ok := _u.mutation.Difficulty(); ok {
		_spec.SetField(quizevent.FieldDifficulty, field.TypeString, value)
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(quizevent.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(quizevent.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Total(); ok {
		_spec.SetField(quizevent.FieldTotal, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotal(); ok {
		_spec.AddField(quizevent.FieldTotal, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Answered(); ok {
		_spec.SetField(quizevent.FieldAnswered, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAnswered(); ok {
		_spec.AddField(quizevent.FieldAnswered, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Accuracy(); ok {
		_spec.SetField(quizevent.FieldAccuracy, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAccuracy(); ok {
		_spec.AddField(quizevent.FieldAccuracy, field.TypeFloat64, value)
	}
	_node = &QuizEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{quizevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
