// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/limitz/ent/predicate"
	"github.com/abhisek/limitz/ent/sessionevent"
)

// SessionEventUpdate is the builder for updating SessionEvent entities.
type SessionEventUpdate struct {
	config
	hooks    []Hook
	mutation *SessionEventMutation
}

// Where appends a list predicates to the SessionEventUpdate builder.
func (_u *SessionEventUpdate) Where(ps ...predicate.SessionEvent) *SessionEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetEventType sets the "event_type" field.
func (_u *SessionEventUpdate) SetEventType(v string) *SessionEventUpdate {
	_u.mutation.SetEventType(v)
	return _u
}

// SetNillableEventType sets the "event_type" field if the given value is not nil.
func (_u *SessionEventUpdate) SetNillableEventType(v *string) *SessionEventUpdate {
	if v != nil {
		_u.SetEventType(*v)
	}
	return _u
}

// SetStreak sets the "streak" field.
func (_u *SessionEventUpdate) SetStreak(v int) *SessionEventUpdate {
	_u.mutation.ResetStreak()
	_u.mutation.SetStreak(v)
	return _u
}

// SetNillableStreak sets the "streak" field if the given value is not nil.
func (_u *SessionEventUpdate) SetNillableStreak(v *int) *SessionEventUpdate {
	if v != nil {
		_u.SetStreak(*v)
	}
	return _u
}

// AddStreak adds value to the "streak" field.
func (_u *SessionEventUpdate) AddStreak(v int) *SessionEventUpdate {
	_u.mutation.AddStreak(v)
	return _u
}

// SetBestStreak sets the "best_streak" field.
func (_u *SessionEventUpdate) SetBestStreak(v int) *SessionEventUpdate {
	_u.mutation.ResetBestStreak()
	_u.mutation.SetBestStreak(v)
	return _u
}

// SetNillableBestStreak sets the "best_streak" field if the given value is not nil.
func (_u *SessionEventUpdate) SetNillableBestStreak(v *int) *SessionEventUpdate {
	if v != nil {
		_u.SetBestStreak(*v)
	}
	return _u
}

// AddBestStreak adds value to the "best_streak" field.
func (_u *SessionEventUpdate) AddBestStreak(v int) *SessionEventUpdate {
	_u.mutation.AddBestStreak(v)
	return _u
}

// SetTotalSolved sets the "total_solved" field.
func (_u *SessionEventUpdate) SetTotalSolved(v int) *SessionEventUpdate {
	_u.mutation.ResetTotalSolved()
	_u.mutation.SetTotalSolved(v)
	return _u
}

// SetNillableTotalSolved sets the "total_solved" field if the given value is not nil.
func (_u *SessionEventUpdate) SetNillableTotalSolved(v *int) *SessionEventUpdate {
	if v != nil {
		_u.SetTotalSolved(*v)
	}
	return _u
}

// AddTotalSolved adds value to the "total_solved" field.
func (_u *SessionEventUpdate) AddTotalSolved(v int) *SessionEventUpdate {
	_u.mutation.AddTotalSolved(v)
	return _u
}

// Mutation returns the SessionEventMutation object of the builder.
func (_u *SessionEventUpdate) Mutation() *SessionEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SessionEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SessionEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SessionEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SessionEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SessionEventUpdate) check() error {
	if v, ok := _u.mutation.EventType(); ok {
		if err := sessionevent.EventTypeValidator(v); err != nil {
			return &ValidationError{Name: "event_type", err: fmt.Errorf(`ent: validator failed for field "SessionEvent.event_type": %w`, err)}
		}
	}
	return nil
}

func (_u *SessionEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(sessionevent.Table, sessionevent.Columns, sqlgraph.NewFieldSpec(sessionevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.EventType(); ok {
		_spec.SetField(sessionevent.FieldEventType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Streak(); ok {
		_spec.SetField(sessionevent.FieldStreak, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStreak(); ok {
		_spec.AddField(sessionevent.FieldStreak, field.TypeInt, value)
	}
	if value, ok := _u.mutation.BestStreak(); ok {
		_spec.SetField(sessionevent.FieldBestStreak, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedBestStreak(); ok {
		_spec.AddField(sessionevent.FieldBestStreak, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TotalSolved(); ok {
		_spec.SetField(sessionevent.FieldTotalSolved, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalSolved(); ok {
		_spec.AddField(sessionevent.FieldTotalSolved, field.TypeInt, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{sessionevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SessionEventUpdateOne is the builder for updating a single SessionEvent entity.
type SessionEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SessionEventMutation
}

// SetEventType sets the "event_type" field.
func (_u *SessionEventUpdateOne) SetEventType(v string) *SessionEventUpdateOne {
	_u.mutation.SetEventType(v)
	return _u
}

// SetNillableEventType sets the "event_type" field if the given value is not nil.
func (_u *SessionEventUpdateOne) SetNillableEventType(v *string) *SessionEventUpdateOne {
	if v != nil {
		_u.SetEventType(*v)
	}
	return _u
}

// SetStreak sets the "streak" field.
func (_u *SessionEventUpdateOne) SetStreak(v int) *SessionEventUpdateOne {
	_u.mutation.ResetStreak()
	_u.mutation.SetStreak(v)
	return _u
}

// SetNillableStreak sets the "streak" field if the given value is not nil.
func (_u *SessionEventUpdateOne) SetNillableStreak(v *int) *SessionEventUpdateOne {
	if v != nil {
		_u.SetStreak(*v)
	}
	return _u
}

// AddStreak adds value to the "streak" field.
func (_u *SessionEventUpdateOne) AddStreak(v int) *SessionEventUpdateOne {
	_u.mutation.AddStreak(v)
	return _u
}

// SetBestStreak sets the "best_streak" field.
func (_u *SessionEventUpdateOne) SetBestStreak(v int) *SessionEventUpdateOne {
	_u.mutation.ResetBestStreak()
	_u.mutation.SetBestStreak(v)
	return _u
}

// SetNillableBestStreak sets the "best_streak" field if the given value is not nil.
func (_u *SessionEventUpdateOne) SetNillableBestStreak(v *int) *SessionEventUpdateOne {
	if v != nil {
		_u.SetBestStreak(*v)
	}
	return _u
}

// AddBestStreak adds value to the "best_streak" field.
func (_u *SessionEventUpdateOne) AddBestStreak(v int) *SessionEventUpdateOne {
	_u.mutation.AddBestStreak(v)
	return _u
}

// SetTotalSolved sets the "total_solved" field.
func (_u *SessionEventUpdateOne) SetTotalSolved(v int) *SessionEventUpdateOne {
	_u.mutation.ResetTotalSolved()
	_u.mutation.SetTotalSolved(v)
	return _u
}

// SetNillableTotalSolved sets the "total_solved" field if the given value is not nil.
func (_u *SessionEventUpdateOne) SetNillableTotalSolved(v *int) *SessionEventUpdateOne {
	if v != nil {
		_u.SetTotalSolved(*v)
	}
	return _u
}

// AddTotalSolved adds value to the "total_solved" field.
func (_u *SessionEventUpdateOne) AddTotalSolved(v int) *SessionEventUpdateOne {
	_u.mutation.AddTotalSolved(v)
	return _u
}

// Mutation returns the SessionEventMutation object of the builder.
func (_u *SessionEventUpdateOne) Mutation() *SessionEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the SessionEventUpdate builder.
func (_u *SessionEventUpdateOne) Where(ps ...predicate.SessionEvent) *SessionEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SessionEventUpdateOne) Select(field string, fields ...string) *SessionEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated SessionEvent entity.
func (_u *SessionEventUpdateOne) Save(ctx context.Context) (*SessionEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SessionEventUpdateOne) SaveX(ctx context.Context) *SessionEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SessionEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SessionEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SessionEventUpdateOne) check() error {
	if v, ok := _u.mutation.EventType(); ok {
		if err := sessionevent.EventTypeValidator(v); err != nil {
			return &ValidationError{Name: "event_type", err: fmt.Errorf(`ent: validator failed for field "SessionEvent.event_type": %w`, err)}
		}
	}
	return nil
}

func (_u *SessionEventUpdateOne) sqlSave(ctx context.Context) (_node *SessionEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(sessionevent.Table, sessionevent.Columns, sqlgraph.NewFieldSpec(sessionevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "SessionEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, sessionevent.FieldID)
		for _, f := range fields {
			if !sessionevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != sessionevent.FieldID {
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
	if value, ok := _u.mutation.EventType(); ok {
		_spec.SetField(sessionevent.FieldEventType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Streak(); ok {
		_spec.SetField(sessionevent.FieldStreak, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStreak(); ok {
		_spec.AddField(sessionevent.FieldStreak, field.TypeInt, value)
	}
	if value, ok := _u.mutation.BestStreak(); ok {
		_spec.SetField(sessionevent.FieldBestStreak, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedBestStreak(); ok {
		_spec.AddField(sessionevent.FieldBestStreak, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TotalSolved(); ok {
		_spec.SetField(sessionevent.FieldTotalSolved, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalSolved(); ok {
		_spec.AddField(sessionevent.FieldTotalSolved, field.TypeInt, value)
	}
	_node = &SessionEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{sessionevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
