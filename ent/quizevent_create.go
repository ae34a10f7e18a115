// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/quizforge/quizforge/ent/quizevent"
)

// QuizEventCreate is the builder for creating a QuizEvent entity.
type QuizEventCreate struct {
	config
	mutation *QuizEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *QuizEventCreate) SetSequence(v int64) *QuizEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *QuizEventCreate) SetTimestamp(v time.Time) *QuizEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *QuizEventCreate) SetNillableTimestamp(v *time.Time) *QuizEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetSessionID sets the "session_id" field.
func (_c *QuizEventCreate) SetSessionID(v string) *QuizEventCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetTopic sets the "topic" field.
func (_c *QuizEventCreate) SetTopic(v string) *QuizEventCreate {
	_c.mutation.SetTopic(v)
	return _c
}

// SetDifficulty sets the "difficulty" field.
func (_c *QuizEventCreate) SetDifficulty(v string) *QuizEventCreate {
	_c.mutation.SetDifficulty(v)
	return _c
}

// SetScore sets the "score" field.
func (_c *QuizEventCreate) SetScore(v int) *QuizEventCreate {
	_c.mutation.SetScore(v)
	return _c
}

// SetTotal sets the "total" field.
func (_c *QuizEventCreate) SetTotal(v int) *QuizEventCreate {
	_c.mutation.SetTotal(v)
	return _c
}

// SetAnswered sets the "answered" field.
func (_c *QuizEventCreate) SetAnswered(v int) *QuizEventCreate {
	_c.mutation.SetAnswered(v)
	return _c
}

// SetAccuracy sets the "accuracy" field.
func (_c *QuizEventCreate) SetAccuracy(v float64) *QuizEventCreate {
	_c.mutation.SetAccuracy(v)
	return _c
}

// Mutation returns the QuizEventMutation object of the builder.
func (_c *QuizEventCreate) Mutation() *QuizEventMutation {
	return _c.mutation
}

// Save creates the QuizEvent in the database.
func (_c *QuizEventCreate) Save(ctx context.Context) (*QuizEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *QuizEventCreate) SaveX(ctx context.Context) *QuizEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *QuizEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *QuizEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *QuizEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := quizevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *QuizEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "QuizEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "QuizEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "QuizEvent.session_id"`)}
	}
	if v, ok := _c.mutation.SessionID(); ok {
		if err := quizevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "QuizEvent.session_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Topic(); !ok {
		return &ValidationError{Name: "topic", err: errors.New(`ent: missing required field "QuizEvent.topic"`)}
	}
	if v, ok := _c.mutation.Topic(); ok {
		if err := quizevent.TopicValidator(v); err != nil {
			return &ValidationError{Name: "topic", err: fmt.Errorf(`ent: validator failed for field "QuizEvent.topic": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Difficulty(); !ok {
		return &ValidationError{Name: "difficulty", err: errors.New(`ent: missing required field "QuizEvent.difficulty"`)}
	}
	if v, ok := _c.mutation.Difficulty(); ok {
		if err := quizevent.DifficultyValidator(v); err != nil {
			return &ValidationError{Name: "difficulty", err: fmt.Errorf(`ent: validator failed for field "QuizEvent.difficulty": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Score(); !ok {
		return &ValidationError{Name: "score", err: errors.New(`ent: missing required field "QuizEvent.score"`)}
	}
	if _, ok := _c.mutation.Total(); !ok {
		return &ValidationError{Name: "total", err: errors.New(`ent: missing required field "QuizEvent.total"`)}
	}
	if _, ok := _c.mutation.Answered(); !ok {
		return &ValidationError{Name: "answered", err: errors.New(`ent: missing required field "QuizEvent.answered"`)}
	}
	if _, ok := _c.mutation.Accuracy(); !ok {
		return &ValidationError{Name: "accuracy", err: errors.New(`ent: missing required field "QuizEvent.accuracy"`)}
	}
	return nil
}

func (_c *QuizEventCreate) sqlSave(ctx context.Context) (*QuizEvent, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *QuizEventCreate) createSpec() (*QuizEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &QuizEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(quizevent.Table, sqlgraph.NewFieldSpec(quizevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(quizevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(quizevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.SessionID(); ok {
		_spec.SetField(quizevent.FieldSessionID, field.TypeString, value)
		_node.SessionID = value
	}
	if value, ok := _c.mutation.Topic(); ok {
		_spec.SetField(quizevent.FieldTopic, field.TypeString, value)
		_node.Topic = value
	}
	if value, ok := _c.mutation.Difficulty(); ok {
		_spec.SetField(quizevent.FieldDifficulty, field.TypeString, value)
		_node.Difficulty = value
	}
	if value, ok := _c.mutation.Score(); ok {
		_spec.SetField(quizevent.FieldScore, field.TypeInt, value)
		_node.Score = value
	}
	if value, ok := _c.mutation.Total(); ok {
		_spec.SetField(quizevent.FieldTotal, field.TypeInt, value)
		_node.Total = value
	}
	if value, ok := _c.mutation.Answered(); ok {
		_spec.SetField(quizevent.FieldAnswered, field.TypeInt, value)
		_node.Answered = value
	}
	if value, ok := _c.mutation.Accuracy(); ok {
		_spec.SetField(quizevent.FieldAccuracy, field.TypeFloat64, value)
		_node.Accuracy = value
	}
	return _node, _spec
}

// QuizEventCreateBulk is the builder for creating many QuizEvent entities in bulk.
type QuizEventCreateBulk struct {
	config
	err      error
	builders []*QuizEventCreate
}

// Save creates the QuizEvent entities in the database.
func (_c *QuizEventCreateBulk) Save(ctx context.Context) ([]*QuizEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*QuizEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*QuizEventMutation)
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
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
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
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *QuizEventCreateBulk) SaveX(ctx context.Context) []*QuizEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *QuizEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *QuizEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
