// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/limitz/ent/hintevent"
	"github.com/abhisek/limitz/ent/predicate"
)

// HintEventUpdate is the builder for updating HintEvent entities.
type HintEventUpdate struct {
	config
	hooks    []Hook
	mutation *HintEventMutation
}

// Where appends a list predicates to the HintEventUpdate builder.
func (_u *HintEventUpdate) Where(ps ...predicate.HintEvent) *HintEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetCoefficientA sets the "coefficient_a" field.
func (_u *HintEventUpdate) SetCoefficientA(v int) *HintEventUpdate {
	_u.mutation.ResetCoefficientA()
	_u.mutation.SetCoefficientA(v)
	return _u
}

// SetNillableCoefficientA sets the "coefficient_a" field if the given value is not nil.
func (_u *HintEventUpdate) SetNillableCoefficientA(v *int) *HintEventUpdate {
	if v != nil {
		_u.SetCoefficientA(*v)
	}
	return _u
}

// AddCoefficientA adds value to the "coefficient_a" field.
func (_u *HintEventUpdate) AddCoefficientA(v int) *HintEventUpdate {
	_u.mutation.AddCoefficientA(v)
	return _u
}

// SetTier sets the "tier" field.
func (_u *HintEventUpdate) SetTier(v int) *HintEventUpdate {
	_u.mutation.ResetTier()
	_u.mutation.SetTier(v)
	return _u
}

// SetNillableTier sets the "tier" field if the given value is not nil.
func (_u *HintEventUpdate) SetNillableTier(v *int) *HintEventUpdate {
	if v != nil {
		_u.SetTier(*v)
	}
	return _u
}

// AddTier adds value to the "tier" field.
func (_u *HintEventUpdate) AddTier(v int) *HintEventUpdate {
	_u.mutation.AddTier(v)
	return _u
}

// Mutation returns the HintEventMutation object of the builder.
func (_u *HintEventUpdate) Mutation() *HintEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *HintEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *HintEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *HintEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *HintEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *HintEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(hintevent.Table, hintevent.Columns, sqlgraph.NewFieldSpec(hintevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.CoefficientA(); ok {
		_spec.SetField(hintevent.FieldCoefficientA, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCoefficientA(); ok {
		_spec.AddField(hintevent.FieldCoefficientA, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Tier(); ok {
		_spec.SetField(hintevent.FieldTier, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTier(); ok {
		_spec.AddField(hintevent.FieldTier, field.TypeInt, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{hintevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// HintEventUpdateOne is the builder for updating a single HintEvent entity.
type HintEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *HintEventMutation
}

// SetCoefficientA sets the "coefficient_a" field.
func (_u *HintEventUpdateOne) SetCoefficientA(v int) *HintEventUpdateOne {
	_u.mutation.ResetCoefficientA()
	_u.mutation.SetCoefficientA(v)
	return _u
}

// SetNillableCoefficientA sets the "coefficient_a" field if the given value is not nil.
func (_u *HintEventUpdateOne) SetNillableCoefficientA(v *int) *HintEventUpdateOne {
	if v != nil {
		_u.SetCoefficientA(*v)
	}
	return _u
}

// AddCoefficientA adds value to the "coefficient_a" field.
func (_u *HintEventUpdateOne) AddCoefficientA(v int) *HintEventUpdateOne {
	_u.mutation.AddCoefficientA(v)
	return _u
}

// SetTier sets the "tier" field.
func (_u *HintEventUpdateOne) SetTier(v int) *HintEventUpdateOne {
	_u.mutation.ResetTier()
	_u.mutation.SetTier(v)
	return _u
}

// SetNillableTier sets the "tier" field if the given value is not nil.
func (_u *HintEventUpdateOne) SetNillableTier(v *int) *HintEventUpdateOne {
	if v != nil {
		_u.SetTier(*v)
	}
	return _u
}

// AddTier adds value to the "tier" field.
func (_u *HintEventUpdateOne) AddTier(v int) *HintEventUpdateOne {
	_u.mutation.AddTier(v)
	return _u
}

// Mutation returns the HintEventMutation object of the builder.
func (_u *HintEventUpdateOne) Mutation() *HintEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the HintEventUpdate builder.
func (_u *HintEventUpdateOne) Where(ps ...predicate.HintEvent) *HintEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *HintEventUpdateOne) Select(field string, fields ...string) *HintEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated HintEvent entity.
func (_u *HintEventUpdateOne) Save(ctx context.Context) (*HintEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *HintEventUpdateOne) SaveX(ctx context.Context) *HintEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *HintEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *HintEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *HintEventUpdateOne) sqlSave(ctx context.Context) (_node *HintEvent, err error) {
	_spec := sqlgraph.NewUpdateSpec(hintevent.Table, hintevent.Columns, sqlgraph.NewFieldSpec(hintevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "HintEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, hintevent.FieldID)
		for _, f := range fields {
			if !hintevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != hintevent.FieldID {
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
		_spec.SetField(hintevent.FieldCoefficientA, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCoefficientA(); ok {
		_spec.AddField(hintevent.FieldCoefficientA, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Tier(); ok {
		_spec.SetField(hintevent.FieldTier, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTier(); ok {
		_spec.AddField(hintevent.FieldTier, field.TypeInt, value)
	}
	_node = &HintEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{hintevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
