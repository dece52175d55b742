// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/sohandillikar/statue-confirmation-component/ent/attemptevent"
)

// AttemptEventCreate is the builder for creating a AttemptEvent entity.
type AttemptEventCreate struct {
	config
	mutation *AttemptEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *AttemptEventCreate) SetSequence(v int64) *AttemptEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *AttemptEventCreate) SetTimestamp(v time.Time) *AttemptEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *AttemptEventCreate) SetNillableTimestamp(v *time.Time) *AttemptEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetSessionID sets the "session_id" field.
func (_c *AttemptEventCreate) SetSessionID(v string) *AttemptEventCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetDifficulty sets the "difficulty" field.
func (_c *AttemptEventCreate) SetDifficulty(v string) *AttemptEventCreate {
	_c.mutation.SetDifficulty(v)
	return _c
}

// SetOutcome sets the "outcome" field.
func (_c *AttemptEventCreate) SetOutcome(v string) *AttemptEventCreate {
	_c.mutation.SetOutcome(v)
	return _c
}

// SetProgress sets the "progress" field.
func (_c *AttemptEventCreate) SetProgress(v float64) *AttemptEventCreate {
	_c.mutation.SetProgress(v)
	return _c
}

// SetZoneStart sets the "zone_start" field.
func (_c *AttemptEventCreate) SetZoneStart(v float64) *AttemptEventCreate {
	_c.mutation.SetZoneStart(v)
	return _c
}

// SetNillableZoneStart sets the "zone_start" field if the given value is not nil.
func (_c *AttemptEventCreate) SetNillableZoneStart(v *float64) *AttemptEventCreate {
	if v != nil {
		_c.SetZoneStart(*v)
	}
	return _c
}

// SetZoneEnd sets the "zone_end" field.
func (_c *AttemptEventCreate) SetZoneEnd(v float64) *AttemptEventCreate {
	_c.mutation.SetZoneEnd(v)
	return _c
}

// SetNillableZoneEnd sets the "zone_end" field if the given value is not nil.
func (_c *AttemptEventCreate) SetNillableZoneEnd(v *float64) *AttemptEventCreate {
	if v != nil {
		_c.SetZoneEnd(*v)
	}
	return _c
}

// SetTimeLimitMs sets the "time_limit_ms" field.
func (_c *AttemptEventCreate) SetTimeLimitMs(v int) *AttemptEventCreate {
	_c.mutation.SetTimeLimitMs(v)
	return _c
}

// SetNillableTimeLimitMs sets the "time_limit_ms" field if the given value is not nil.
func (_c *AttemptEventCreate) SetNillableTimeLimitMs(v *int) *AttemptEventCreate {
	if v != nil {
		_c.SetTimeLimitMs(*v)
	}
	return _c
}

// SetElapsedMs sets the "elapsed_ms" field.
func (_c *AttemptEventCreate) SetElapsedMs(v int) *AttemptEventCreate {
	_c.mutation.SetElapsedMs(v)
	return _c
}

// SetNillableElapsedMs sets the "elapsed_ms" field if the given value is not nil.
func (_c *AttemptEventCreate) SetNillableElapsedMs(v *int) *AttemptEventCreate {
	if v != nil {
		_c.SetElapsedMs(*v)
	}
	return _c
}

// Mutation returns the AttemptEventMutation object of the builder.
func (_c *AttemptEventCreate) Mutation() *AttemptEventMutation {
	return _c.mutation
}

// Save creates the AttemptEvent in the database.
func (_c *AttemptEventCreate) Save(ctx context.Context) (*AttemptEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AttemptEventCreate) SaveX(ctx context.Context) *AttemptEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AttemptEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AttemptEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AttemptEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := attemptevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
	if _, ok := _c.mutation.ZoneStart(); !ok {
		v := attemptevent.DefaultZoneStart
		_c.mutation.SetZoneStart(v)
	}
	if _, ok := _c.mutation.ZoneEnd(); !ok {
		v := attemptevent.DefaultZoneEnd
		_c.mutation.SetZoneEnd(v)
	}
	if _, ok := _c.mutation.TimeLimitMs(); !ok {
		v := attemptevent.DefaultTimeLimitMs
		_c.mutation.SetTimeLimitMs(v)
	}
	if _, ok := _c.mutation.ElapsedMs(); !ok {
		v := attemptevent.DefaultElapsedMs
		_c.mutation.SetElapsedMs(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AttemptEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "AttemptEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "AttemptEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "AttemptEvent.session_id"`)}
	}
	if v, ok := _c.mutation.SessionID(); ok {
		if err := attemptevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "AttemptEvent.session_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Difficulty(); !ok {
		return &ValidationError{Name: "difficulty", err: errors.New(`ent: missing required field "AttemptEvent.difficulty"`)}
	}
	if v, ok := _c.mutation.Difficulty(); ok {
		if err := attemptevent.DifficultyValidator(v); err != nil {
			return &ValidationError{Name: "difficulty", err: fmt.Errorf(`ent: validator failed for field "AttemptEvent.difficulty": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Outcome(); !ok {
		return &ValidationError{Name: "outcome", err: errors.New(`ent: missing required field "AttemptEvent.outcome"`)}
	}
	if v, ok := _c.mutation.Outcome(); ok {
		if err := attemptevent.OutcomeValidator(v); err != nil {
			return &ValidationError{Name: "outcome", err: fmt.Errorf(`ent: validator failed for field "AttemptEvent.outcome": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Progress(); !ok {
		return &ValidationError{Name: "progress", err: errors.New(`ent: missing required field "AttemptEvent.progress"`)}
	}
	if _, ok := _c.mutation.ZoneStart(); !ok {
		return &ValidationError{Name: "zone_start", err: errors.New(`ent: missing required field "AttemptEvent.zone_start"`)}
	}
	if _, ok := _c.mutation.ZoneEnd(); !ok {
		return &ValidationError{Name: "zone_end", err: errors.New(`ent: missing required field "AttemptEvent.zone_end"`)}
	}
	if _, ok := _c.mutation.TimeLimitMs(); !ok {
		return &ValidationError{Name: "time_limit_ms", err: errors.New(`ent: missing required field "AttemptEvent.time_limit_ms"`)}
	}
	if _, ok := _c.mutation.ElapsedMs(); !ok {
		return &ValidationError{Name: "elapsed_ms", err: errors.New(`ent: missing required field "AttemptEvent.elapsed_ms"`)}
	}
	return nil
}

func (_c *AttemptEventCreate) sqlSave(ctx context.Context) (*AttemptEvent, error) {
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

func (_c *AttemptEventCreate) createSpec() (*AttemptEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &AttemptEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(attemptevent.Table, sqlgraph.NewFieldSpec(attemptevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(attemptevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(attemptevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.SessionID(); ok {
		_spec.SetField(attemptevent.FieldSessionID, field.TypeString, value)
		_node.SessionID = value
	}
	if value, ok := _c.mutation.Difficulty(); ok {
		_spec.SetField(attemptevent.FieldDifficulty, field.TypeString, value)
		_node.Difficulty = value
	}
	if value, ok := _c.mutation.Outcome(); ok {
		_spec.SetField(attemptevent.FieldOutcome, field.TypeString, value)
		_node.Outcome = value
	}
	if value, ok := _c.mutation.Progress(); ok {
		_spec.SetField(attemptevent.FieldProgress, field.TypeFloat64, value)
		_node.Progress = value
	}
	if value, ok := _c.mutation.ZoneStart(); ok {
		_spec.SetField(attemptevent.FieldZoneStart, field.TypeFloat64, value)
		_node.ZoneStart = value
	}
	if value, ok := _c.mutation.ZoneEnd(); ok {
		_spec.SetField(attemptevent.FieldZoneEnd, field.TypeFloat64, value)
		_node.ZoneEnd = value
	}
	if value, ok := _c.mutation.TimeLimitMs(); ok {
		_spec.SetField(attemptevent.FieldTimeLimitMs, field.TypeInt, value)
		_node.TimeLimitMs = value
	}
	if value, ok := _c.mutation.ElapsedMs(); ok {
		_spec.SetField(attemptevent.FieldElapsedMs, field.TypeInt, value)
		_node.ElapsedMs = value
	}
	return _node, _spec
}

// AttemptEventCreateBulk is the builder for creating many AttemptEvent entities in bulk.
type AttemptEventCreateBulk struct {
	config
	err      error
	builders []*AttemptEventCreate
}

// Save creates the AttemptEvent entities in the database.
func (_c *AttemptEventCreateBulk) Save(ctx context.Context) ([]*AttemptEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*AttemptEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AttemptEventMutation)
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
func (_c *AttemptEventCreateBulk) SaveX(ctx context.Context) []*AttemptEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AttemptEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AttemptEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
