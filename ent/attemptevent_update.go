// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/sohandillikar/statue-confirmation-component/ent/attemptevent"
	"github.com/sohandillikar/statue-confirmation-component/ent/predicate"
)

// AttemptEventUpdate is the builder for updating AttemptEvent entities.
type AttemptEventUpdate struct {
	config
	hooks    []Hook
	mutation *AttemptEventMutation
}

// Where appends a list predicates to the AttemptEventUpdate builder.
func (_u *AttemptEventUpdate) Where(ps ...predicate.AttemptEvent) *AttemptEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *AttemptEventUpdate) SetSessionID(v string) *AttemptEventUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *AttemptEventUpdate) SetNillableSessionID(v *string) *AttemptEventUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetDifficulty sets the "difficulty" field.
func (_u *AttemptEventUpdate) SetDifficulty(v string) *AttemptEventUpdate {
	_u.mutation.SetDifficulty(v)
	return _u
}

// SetNillableDifficulty sets the "difficulty" field if the given value is not nil.
func (_u *AttemptEventUpdate) SetNillableDifficulty(v *string) *AttemptEventUpdate {
	if v != nil {
		_u.SetDifficulty(*v)
	}
	return _u
}

// SetOutcome sets the "outcome" field.
func (_u *AttemptEventUpdate) SetOutcome(v string) *AttemptEventUpdate {
	_u.mutation.SetOutcome(v)
	return _u
}

// SetNillableOutcome sets the "outcome" field if the given value is not nil.
func (_u *AttemptEventUpdate) SetNillableOutcome(v *string) *AttemptEventUpdate {
	if v != nil {
		_u.SetOutcome(*v)
	}
	return _u
}

// SetProgress sets the "progress" field.
func (_u *AttemptEventUpdate) SetProgress(v float64) *AttemptEventUpdate {
	_u.mutation.ResetProgress()
	_u.mutation.SetProgress(v)
	return _u
}

// SetNillableProgress sets the "progress" field if the given value is not nil.
func (_u *AttemptEventUpdate) SetNillableProgress(v *float64) *AttemptEventUpdate {
	if v != nil {
		_u.SetProgress(*v)
	}
	return _u
}

// AddProgress adds value to the "progress" field.
func (_u *AttemptEventUpdate) AddProgress(v float64) *AttemptEventUpdate {
	_u.mutation.AddProgress(v)
	return _u
}

// SetZoneStart sets the "zone_start" field.
func (_u *AttemptEventUpdate) SetZoneStart(v float64) *AttemptEventUpdate {
	_u.mutation.ResetZoneStart()
	_u.mutation.SetZoneStart(v)
	return _u
}

// SetNillableZoneStart sets the "zone_start" field if the given value is not nil.
func (_u *AttemptEventUpdate) SetNillableZoneStart(v *float64) *AttemptEventUpdate {
	if v != nil {
		_u.SetZoneStart(*v)
	}
	return _u
}

// AddZoneStart adds value to the "zone_start" field.
func (_u *AttemptEventUpdate) AddZoneStart(v float64) *AttemptEventUpdate {
	_u.mutation.AddZoneStart(v)
	return _u
}

// SetZoneEnd sets the "zone_end" field.
func (_u *AttemptEventUpdate) SetZoneEnd(v float64) *AttemptEventUpdate {
	_u.mutation.ResetZoneEnd()
	_u.mutation.SetZoneEnd(v)
	return _u
}

// SetNillableZoneEnd sets the "zone_end" field if the given value is not nil.
func (_u *AttemptEventUpdate) SetNillableZoneEnd(v *float64) *AttemptEventUpdate {
	if v != nil {
		_u.SetZoneEnd(*v)
	}
	return _u
}

// AddZoneEnd adds value to the "zone_end" field.
func (_u *AttemptEventUpdate) AddZoneEnd(v float64) *AttemptEventUpdate {
	_u.mutation.AddZoneEnd(v)
	return _u
}

// SetTimeLimitMs sets the "time_limit_ms" field.
func (_u *AttemptEventUpdate) SetTimeLimitMs(v int) *AttemptEventUpdate {
	_u.mutation.ResetTimeLimitMs()
	_u.mutation.SetTimeLimitMs(v)
	return _u
}

// SetNillableTimeLimitMs sets the "time_limit_ms" field if the given value is not nil.
func (_u *AttemptEventUpdate) SetNillableTimeLimitMs(v *int) *AttemptEventUpdate {
	if v != nil {
		_u.SetTimeLimitMs(*v)
	}
	return _u
}

// AddTimeLimitMs adds value to the "time_limit_ms" field.
func (_u *AttemptEventUpdate) AddTimeLimitMs(v int) *AttemptEventUpdate {
	_u.mutation.AddTimeLimitMs(v)
	return _u
}

// SetElapsedMs sets the "elapsed_ms" field.
func (_u *AttemptEventUpdate) SetElapsedMs(v int) *AttemptEventUpdate {
	_u.mutation.ResetElapsedMs()
	_u.mutation.SetElapsedMs(v)
	return _u
}

// SetNillableElapsedMs sets the "elapsed_ms" field if the given value is not nil.
func (_u *AttemptEventUpdate) SetNillableElapsedMs(v *int) *AttemptEventUpdate {
	if v != nil {
		_u.SetElapsedMs(*v)
	}
	return _u
}

// AddElapsedMs adds value to the "elapsed_ms" field.
func (_u *AttemptEventUpdate) AddElapsedMs(v int) *AttemptEventUpdate {
	_u.mutation.AddElapsedMs(v)
	return _u
}

// Mutation returns the AttemptEventMutation object of the builder.
func (_u *AttemptEventUpdate) Mutation() *AttemptEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AttemptEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AttemptEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AttemptEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AttemptEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AttemptEventUpdate) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := attemptevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "AttemptEvent.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Difficulty(); ok {
		if err := attemptevent.DifficultyValidator(v); err != nil {
			return &ValidationError{Name: "difficulty", err: fmt.Errorf(`ent: validator failed for field "AttemptEvent.difficulty": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Outcome(); ok {
		if err := attemptevent.OutcomeValidator(v); err != nil {
			return &ValidationError{Name: "outcome", err: fmt.Errorf(`ent: validator failed for field "AttemptEvent.outcome": %w`, err)}
		}
	}
	return nil
}

func (_u *AttemptEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(attemptevent.Table, attemptevent.Columns, sqlgraph.NewFieldSpec(attemptevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(attemptevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Difficulty(); ok {
		_spec.SetField(attemptevent.FieldDifficulty, field.TypeString, value)
	}
	if value, ok := _u.mutation.Outcome(); ok {
		_spec.SetField(attemptevent.FieldOutcome, field.TypeString, value)
	}
	if value, ok := _u.mutation.Progress(); ok {
		_spec.SetField(attemptevent.FieldProgress, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedProgress(); ok {
		_spec.AddField(attemptevent.FieldProgress, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.ZoneStart(); ok {
		_spec.SetField(attemptevent.FieldZoneStart, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedZoneStart(); ok {
		_spec.AddField(attemptevent.FieldZoneStart, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.ZoneEnd(); ok {
		_spec.SetField(attemptevent.FieldZoneEnd, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedZoneEnd(); ok {
		_spec.AddField(attemptevent.FieldZoneEnd, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.TimeLimitMs(); ok {
		_spec.SetField(attemptevent.FieldTimeLimitMs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTimeLimitMs(); ok {
		_spec.AddField(attemptevent.FieldTimeLimitMs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ElapsedMs(); ok {
		_spec.SetField(attemptevent.FieldElapsedMs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedElapsedMs(); ok {
		_spec.AddField(attemptevent.FieldElapsedMs, field.TypeInt, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{attemptevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AttemptEventUpdateOne is the builder for updating a single AttemptEvent entity.
type AttemptEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AttemptEventMutation
}

// SetSessionID sets the "session_id" field.
func (_u *AttemptEventUpdateOne) SetSessionID(v string) *AttemptEventUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *AttemptEventUpdateOne) SetNillableSessionID(v *string) *AttemptEventUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetDifficulty sets the "difficulty" field.
func (_u *AttemptEventUpdateOne) SetDifficulty(v string) *AttemptEventUpdateOne {
	_u.mutation.SetDifficulty(v)
	return _u
}

// SetNillableDifficulty sets the "difficulty" field if the given value is not nil.
func (_u *AttemptEventUpdateOne) SetNillableDifficulty(v *string) *AttemptEventUpdateOne {
	if v != nil {
		_u.SetDifficulty(*v)
	}
	return _u
}

// SetOutcome sets the "outcome" field.
func (_u *AttemptEventUpdateOne) SetOutcome(v string) *AttemptEventUpdateOne {
	_u.mutation.SetOutcome(v)
	return _u
}

// SetNillableOutcome sets the "outcome" field if the given value is not nil.
func (_u *AttemptEventUpdateOne) SetNillableOutcome(v *string) *AttemptEventUpdateOne {
	if v != nil {
		_u.SetOutcome(*v)
	}
	return _u
}

// SetProgress sets the "progress" field.
func (_u *AttemptEventUpdateOne) SetProgress(v float64) *AttemptEventUpdateOne {
	_u.mutation.ResetProgress()
	_u.mutation.SetProgress(v)
	return _u
}

// SetNillableProgress sets the "progress" field if the given value is not nil.
func (_u *AttemptEventUpdateOne) SetNillableProgress(v *float64) *AttemptEventUpdateOne {
	if v != nil {
		_u.SetProgress(*v)
	}
	return _u
}

// AddProgress adds value to the "progress" field.
func (_u *AttemptEventUpdateOne) AddProgress(v float64) *AttemptEventUpdateOne {
	_u.mutation.AddProgress(v)
	return _u
}

// SetZoneStart sets the "zone_start" field.
func (_u *AttemptEventUpdateOne) SetZoneStart(v float64) *AttemptEventUpdateOne {
	_u.mutation.ResetZoneStart()
	_u.mutation.SetZoneStart(v)
	return _u
}

// SetNillableZoneStart sets the "zone_start" field if the given value is not nil.
func (_u *AttemptEventUpdateOne) SetNillableZoneStart(v *float64) *AttemptEventUpdateOne {
	if v != nil {
		_u.SetZoneStart(*v)
	}
	return _u
}

// AddZoneStart adds value to the "zone_start" field.
func (_u *AttemptEventUpdateOne) AddZoneStart(v float64) *AttemptEventUpdateOne {
	_u.mutation.AddZoneStart(v)
	return _u
}

// SetZoneEnd sets the "zone_end" field.
func (_u *AttemptEventUpdateOne) SetZoneEnd(v float64) *AttemptEventUpdateOne {
	_u.mutation.ResetZoneEnd()
	_u.mutation.SetZoneEnd(v)
	return _u
}

// SetNillableZoneEnd sets the "zone_end" field if the given value is not nil.
func (_u *AttemptEventUpdateOne) SetNillableZoneEnd(v *float64) *AttemptEventUpdateOne {
	if v != nil {
		_u.SetZoneEnd(*v)
	}
	return _u
}

// AddZoneEnd adds value to the "zone_end" field.
func (_u *AttemptEventUpdateOne) AddZoneEnd(v float64) *AttemptEventUpdateOne {
	_u.mutation.AddZoneEnd(v)
	return _u
}

// SetTimeLimitMs sets the "time_limit_ms" field.
func (_u *AttemptEventUpdateOne) SetTimeLimitMs(v int) *AttemptEventUpdateOne {
	_u.mutation.ResetTimeLimitMs()
	_u.mutation.SetTimeLimitMs(v)
	return _u
}

// SetNillableTimeLimitMs sets the "time_limit_ms" field if the given value is not nil.
func (_u *AttemptEventUpdateOne) SetNillableTimeLimitMs(v *int) *AttemptEventUpdateOne {
	if v != nil {
		_u.SetTimeLimitMs(*v)
	}
	return _u
}

// AddTimeLimitMs adds value to the "time_limit_ms" field.
func (_u *AttemptEventUpdateOne) AddTimeLimitMs(v int) *AttemptEventUpdateOne {
	_u.mutation.AddTimeLimitMs(v)
	return _u
}

// SetElapsedMs sets the "elapsed_ms" field.
func (_u *AttemptEventUpdateOne) SetElapsedMs(v int) *AttemptEventUpdateOne {
	_u.mutation.ResetElapsedMs()
	_u.mutation.SetElapsedMs(v)
	return _u
}

// SetNillableElapsedMs sets the "elapsed_ms" field if the given value is not nil.
func (_u *AttemptEventUpdateOne) SetNillableElapsedMs(v *int) *AttemptEventUpdateOne {
	if v != nil {
		_u.SetElapsedMs(*v)
	}
	return _u
}

// AddElapsedMs adds value to the "elapsed_ms" field.
func (_u *AttemptEventUpdateOne) AddElapsedMs(v int) *AttemptEventUpdateOne {
	_u.mutation.AddElapsedMs(v)
	return _u
}

// Mutation returns the AttemptEventMutation object of the builder.
func (_u *AttemptEventUpdateOne) Mutation() *AttemptEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the AttemptEventUpdate builder.
func (_u *AttemptEventUpdateOne) Where(ps ...predicate.AttemptEvent) *AttemptEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AttemptEventUpdateOne) Select(field string, fields ...string) *AttemptEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated AttemptEvent entity.
func (_u *AttemptEventUpdateOne) Save(ctx context.Context) (*AttemptEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AttemptEventUpdateOne) SaveX(ctx context.Context) *AttemptEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AttemptEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AttemptEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AttemptEventUpdateOne) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := attemptevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "AttemptEvent.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Difficulty(); ok {
		if err := attemptevent.DifficultyValidator(v); err != nil {
			return &ValidationError{Name: "difficulty", err: fmt.Errorf(`ent: validator failed for field "AttemptEvent.difficulty": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Outcome(); ok {
		if err := attemptevent.OutcomeValidator(v); err != nil {
			return &ValidationError{Name: "outcome", err: fmt.Errorf(`ent: validator failed for field "AttemptEvent.outcome": %w`, err)}
		}
	}
	return nil
}

func (_u *AttemptEventUpdateOne) sqlSave(ctx context.Context) (_node *AttemptEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(attemptevent.Table, attemptevent.Columns, sqlgraph.NewFieldSpec(attemptevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "AttemptEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, attemptevent.FieldID)
		for _, f := range fields {
			if !attemptevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != attemptevent.FieldID {
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
		_spec.SetField(attemptevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Difficulty(); ok {
		_spec.SetField(attemptevent.FieldDifficulty, field.TypeString, value)
	}
	if value, ok := _u.mutation.Outcome(); ok {
		_spec.SetField(attemptevent.FieldOutcome, field.TypeString, value)
	}
	if value, ok := _u.mutation.Progress(); ok {
		_spec.SetField(attemptevent.FieldProgress, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedProgress(); ok {
		_spec.AddField(attemptevent.FieldProgress, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.ZoneStart(); ok {
		_spec.SetField(attemptevent.FieldZoneStart, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedZoneStart(); ok {
		_spec.AddField(attemptevent.FieldZoneStart, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.ZoneEnd(); ok {
		_spec.SetField(attemptevent.FieldZoneEnd, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedZoneEnd(); ok {
		_spec.AddField(attemptevent.FieldZoneEnd, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.TimeLimitMs(); ok {
		_spec.SetField(attemptevent.FieldTimeLimitMs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTimeLimitMs(); ok {
		_spec.AddField(attemptevent.FieldTimeLimitMs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ElapsedMs(); ok {
		_spec.SetField(attemptevent.FieldElapsedMs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedElapsedMs(); ok {
		_spec.AddField(attemptevent.FieldElapsedMs, field.TypeInt, value)
	}
	_node = &AttemptEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{attemptevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
