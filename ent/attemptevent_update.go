// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/limitz/ent/attemptevent"
	"github.com/abhisek/limitz/ent/predicate"
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

// SetCoefficientA sets the "coefficient_a" field.
func (_u *AttemptEventUpdate) SetCoefficientA(v int) *AttemptEventUpdate {
	_u.mutation.ResetCoefficientA()
	_u.mutation.SetCoefficientA(v)
	return _u
}

// SetNillableCoefficientA sets the "coefficient_a" field if the given value is not nil.
func (_u *AttemptEventUpdate) SetNillableCoefficientA(v *int) *AttemptEventUpdate {
	if v != nil {
		_u.SetCoefficientA(*v)
	}
	return _u
}

// AddCoefficientA adds value to the "coefficient_a" field.
func (_u *AttemptEventUpdate) AddCoefficientA(v int) *AttemptEventUpdate {
	_u.mutation.AddCoefficientA(v)
	return _u
}

// SetRawInput sets the "raw_input" field.
func (_u *AttemptEventUpdate) SetRawInput(v string) *AttemptEventUpdate {
	_u.mutation.SetRawInput(v)
	return _u
}

// SetNillableRawInput sets the "raw_input" field if the given value is not nil.
func (_u *AttemptEventUpdate) SetNillableRawInput(v *string) *AttemptEventUpdate {
	if v != nil {
		_u.SetRawInput(*v)
	}
	return _u
}

// SetParsedValue sets the "parsed_value" field.
func (_u *AttemptEventUpdate) SetParsedValue(v string) *AttemptEventUpdate {
	_u.mutation.SetParsedValue(v)
	return _u
}

// SetNillableParsedValue sets the "parsed_value" field if the given value is not nil.
func (_u *AttemptEventUpdate) SetNillableParsedValue(v *string) *AttemptEventUpdate {
	if v != nil {
		_u.SetParsedValue(*v)
	}
	return _u
}

// SetVerdict sets the "verdict" field.
func (_u *AttemptEventUpdate) SetVerdict(v string) *AttemptEventUpdate {
	_u.mutation.SetVerdict(v)
	return _u
}

// SetNillableVerdict sets the "verdict" field if the given value is not nil.
func (_u *AttemptEventUpdate) SetNillableVerdict(v *string) *AttemptEventUpdate {
	if v != nil {
		_u.SetVerdict(*v)
	}
	return _u
}

// SetHintTier sets the "hint_tier" field.
func (_u *AttemptEventUpdate) SetHintTier(v int) *AttemptEventUpdate {
	_u.mutation.ResetHintTier()
	_u.mutation.SetHintTier(v)
	return _u
}

// SetNillableHintTier sets the "hint_tier" field if the given value is not nil.
func (_u *AttemptEventUpdate) SetNillableHintTier(v *int) *AttemptEventUpdate {
	if v != nil {
		_u.SetHintTier(*v)
	}
	return _u
}

// AddHintTier adds value to the "hint_tier" field.
func (_u *AttemptEventUpdate) AddHintTier(v int) *AttemptEventUpdate {
	_u.mutation.AddHintTier(v)
	return _u
}

// SetReplayed sets the "replayed" field.
func (_u *AttemptEventUpdate) SetReplayed(v bool) *AttemptEventUpdate {
	_u.mutation.SetReplayed(v)
	return _u
}

// SetNillableReplayed sets the "replayed" field if the given value is not nil.
func (_u *AttemptEventUpdate) SetNillableReplayed(v *bool) *AttemptEventUpdate {
	if v != nil {
		_u.SetReplayed(*v)
	}
	return _u
}

// SetTimeMs sets the "time_ms" field.
func (_u *AttemptEventUpdate) SetTimeMs(v int64) *AttemptEventUpdate {
	_u.mutation.ResetTimeMs()
	_u.mutation.SetTimeMs(v)
	return _u
}

// SetNillableTimeMs sets the "time_ms" field if the given value is not nil.
func (_u *AttemptEventUpdate) SetNillableTimeMs(v *int64) *AttemptEventUpdate {
	if v != nil {
		_u.SetTimeMs(*v)
	}
	return _u
}

// AddTimeMs adds value to the "time_ms" field.
func (_u *AttemptEventUpdate) AddTimeMs(v int64) *AttemptEventUpdate {
	_u.mutation.AddTimeMs(v)
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
	if v, ok := _u.mutation.RawInput(); ok {
		if err := attemptevent.RawInputValidator(v); err != nil {
			return &ValidationError{Name: "raw_input", err: fmt.Errorf(`ent: validator failed for field "AttemptEvent.raw_input": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Verdict(); ok {
		if err := attemptevent.VerdictValidator(v); err != nil {
			return &ValidationError{Name: "verdict", err: fmt.Errorf(`ent: validator failed for field "AttemptEvent.verdict": %w`, err)}
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
	if value, ok := _u.mutation.CoefficientA(); ok {
		_spec.SetField(attemptevent.FieldCoefficientA, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCoefficientA(); ok {
		_spec.AddField(attemptevent.FieldCoefficientA, field.TypeInt, value)
	}
	if value, ok := _u.mutation.RawInput(); ok {
		_spec.SetField(attemptevent.FieldRawInput, field.TypeString, value)
	}
	if value, ok := _u.mutation.ParsedValue(); ok {
		_spec.SetField(attemptevent.FieldParsedValue, field.TypeString, value)
	}
	if value, ok := _u.mutation.Verdict(); ok {
		_spec.SetField(attemptevent.FieldVerdict, field.TypeString, value)
	}
	if value, ok := _u.mutation.HintTier(); ok {
		_spec.SetField(attemptevent.FieldHintTier, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedHintTier(); ok {
		_spec.AddField(attemptevent.FieldHintTier, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Replayed(); ok {
		_spec.SetField(attemptevent.FieldReplayed, field.TypeBool, value)
	}
	if value, ok := _u.mutation.TimeMs(); ok {
		_spec.SetField(attemptevent.FieldTimeMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedTimeMs(); ok {
		_spec.AddField(attemptevent.FieldTimeMs, field.TypeInt64, value)
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

// SetCoefficientA sets the "coefficient_a" field.
func (_u *AttemptEventUpdateOne) SetCoefficientA(v int) *AttemptEventUpdateOne {
	_u.mutation.ResetCoefficientA()
	_u.mutation.SetCoefficientA(v)
	return _u
}

// SetNillableCoefficientA sets the "coefficient_a" field if the given value is not nil.
func (_u *AttemptEventUpdateOne) SetNillableCoefficientA(v *int) *AttemptEventUpdateOne {
	if v != nil {
		_u.SetCoefficientA(*v)
	}
	return _u
}

// AddCoefficientA adds value to the "coefficient_a" field.
func (_u *AttemptEventUpdateOne) AddCoefficientA(v int) *AttemptEventUpdateOne {
	_u.mutation.AddCoefficientA(v)
	return _u
}

// SetRawInput sets the "raw_input" field.
func (_u *AttemptEventUpdateOne) SetRawInput(v string) *AttemptEventUpdateOne {
	_u.mutation.SetRawInput(v)
	return _u
}

// SetNillableRawInput sets the "raw_input" field if the given value is not nil.
func (_u *AttemptEventUpdateOne) SetNillableRawInput(v *string) *AttemptEventUpdateOne {
	if v != nil {
		_u.SetRawInput(*v)
	}
	return _u
}

// SetParsedValue sets the "parsed_value" field.
func (_u *AttemptEventUpdateOne) SetParsedValue(v string) *AttemptEventUpdateOne {
	_u.mutation.SetParsedValue(v)
	return _u
}

// SetNillableParsedValue sets the "parsed_value" field if the given value is not nil.
func (_u *AttemptEventUpdateOne) SetNillableParsedValue(v *string) *AttemptEventUpdateOne {
	if v != nil {
		_u.SetParsedValue(*v)
	}
	return _u
}

// SetVerdict sets the "verdict" field.
func (_u *AttemptEventUpdateOne) SetVerdict(v string) *AttemptEventUpdateOne {
	_u.mutation.SetVerdict(v)
	return _u
}

// SetNillableVerdict sets the "verdict" field if the given value is not nil.
func (_u *AttemptEventUpdateOne) SetNillableVerdict(v *string) *AttemptEventUpdateOne {
	if v != nil {
		_u.SetVerdict(*v)
	}
	return _u
}

// SetHintTier sets the "hint_tier" field.
func (_u *AttemptEventUpdateOne) SetHintTier(v int) *AttemptEventUpdateOne {
	_u.mutation.ResetHintTier()
	_u.mutation.SetHintTier(v)
	return _u
}

// SetNillableHintTier sets the "hint_tier" field if the given value is not nil.
func (_u *AttemptEventUpdateOne) SetNillableHintTier(v *int) *AttemptEventUpdateOne {
	if v != nil {
		_u.SetHintTier(*v)
	}
	return _u
}

// AddHintTier adds value to the "hint_tier" field.
func (_u *AttemptEventUpdateOne) AddHintTier(v int) *AttemptEventUpdateOne {
	_u.mutation.AddHintTier(v)
	return _u
}

// SetReplayed sets the "replayed" field.
func (_u *AttemptEventUpdateOne) SetReplayed(v bool) *AttemptEventUpdateOne {
	_u.mutation.SetReplayed(v)
	return _u
}

// SetNillableReplayed sets the "replayed" field if the given value is not nil.
func (_u *AttemptEventUpdateOne) SetNillableReplayed(v *bool) *AttemptEventUpdateOne {
	if v != nil {
		_u.SetReplayed(*v)
	}
	return _u
}

// SetTimeMs sets the "time_ms" field.
func (_u *AttemptEventUpdateOne) SetTimeMs(v int64) *AttemptEventUpdateOne {
	_u.mutation.ResetTimeMs()
	_u.mutation.SetTimeMs(v)
	return _u
}

// SetNillableTimeMs sets the "time_ms" field if the given value is not nil.
func (_u *AttemptEventUpdateOne) SetNillableTimeMs(v *int64) *AttemptEventUpdateOne {
	if v != nil {
		_u.SetTimeMs(*v)
	}
	return _u
}

// AddTimeMs adds value to the "time_ms" field.
func (_u *AttemptEventUpdateOne) AddTimeMs(v int64) *AttemptEventUpdateOne {
	_u.mutation.AddTimeMs(v)
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
	if v, ok := _u.mutation.RawInput(); ok {
		if err := attemptevent.RawInputValidator(v); err != nil {
			return &ValidationError{Name: "raw_input", err: fmt.Errorf(`ent: validator failed for field "AttemptEvent.raw_input": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Verdict(); ok {
		if err := attemptevent.VerdictValidator(v); err != nil {
			return &ValidationError{Name: "verdict", err: fmt.Errorf(`ent: validator failed for field "AttemptEvent.verdict": %w`, err)}
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
	if value, ok := _u.mutation.CoefficientA(); ok {
		_spec.SetField(attemptevent.FieldCoefficientA, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCoefficientA(); ok {
		_spec.AddField(attemptevent.FieldCoefficientA, field.TypeInt, value)
	}
	if value, ok := _u.mutation.RawInput(); ok {
		_spec.SetField(attemptevent.FieldRawInput, field.TypeString, value)
	}
	if value, ok := _u.mutation.ParsedValue(); ok {
		_spec.SetField(attemptevent.FieldParsedValue, field.TypeString, value)
	}
	if value, ok := _u.mutation.Verdict(); ok {
		_spec.SetField(attemptevent.FieldVerdict, field.TypeString, value)
	}
	if value, ok := _u.mutation.HintTier(); ok {
		_spec.SetField(attemptevent.FieldHintTier, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedHintTier(); ok {
		_spec.AddField(attemptevent.FieldHintTier, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Replayed(); ok {
		_spec.SetField(attemptevent.FieldReplayed, field.TypeBool, value)
	}
	if value, ok := _u.mutation.TimeMs(); ok {
		_spec.SetField(attemptevent.FieldTimeMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedTimeMs(); ok {
		_spec.AddField(attemptevent.FieldTimeMs, field.TypeInt64, value)
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
