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
	"github.com/abhisek/limitz/ent/problemevent"
)

// ProblemEventUpdate is the builder for updating ProblemEvent entities.
type ProblemEventUpdate struct {
	config
	hooks    []Hook
	mutation *ProblemEventMutation
}

// Where appends a list predicates to the ProblemEventUpdate builder.
func (_u *ProblemEventUpdate) Where(ps ...predicate.ProblemEvent) *ProblemEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetCoefficientA sets the "coefficient_a" field.
func (_u *ProblemEventUpdate) SetCoefficientA(v int) *ProblemEventUpdate {
	_u.mutation.ResetCoefficientA()
	_u.mutation.SetCoefficientA(v)
	return _u
}

// SetNillableCoefficientA sets the "coefficient_a" field if the given value is not nil.
func (_u *ProblemEventUpdate) SetNillableCoefficientA(v *int) *ProblemEventUpdate {
	if v != nil {
		_u.SetCoefficientA(*v)
	}
	return _u
}

// AddCoefficientA adds value to the "coefficient_a" field.
func (_u *ProblemEventUpdate) AddCoefficientA(v int) *ProblemEventUpdate {
	_u.mutation.AddCoefficientA(v)
	return _u
}

// SetCoefficientC sets the "coefficient_c" field.
func (_u *ProblemEventUpdate) SetCoefficientC(v int) *ProblemEventUpdate {
	_u.mutation.ResetCoefficientC()
	_u.mutation.SetCoefficientC(v)
	return _u
}

// SetNillableCoefficientC sets the "coefficient_c" field if the given value is not nil.
func (_u *ProblemEventUpdate) SetNillableCoefficientC(v *int) *ProblemEventUpdate {
	if v != nil {
		_u.SetCoefficientC(*v)
	}
	return _u
}

// AddCoefficientC adds value to the "coefficient_c" field.
func (_u *ProblemEventUpdate) AddCoefficientC(v int) *ProblemEventUpdate {
	_u.mutation.AddCoefficientC(v)
	return _u
}

// SetCoefficientB sets the "coefficient_b" field.
func (_u *ProblemEventUpdate) SetCoefficientB(v int) *ProblemEventUpdate {
	_u.mutation.ResetCoefficientB()
	_u.mutation.SetCoefficientB(v)
	return _u
}

// SetNillableCoefficientB sets the "coefficient_b" field if the given value is not nil.
func (_u *ProblemEventUpdate) SetNillableCoefficientB(v *int) *ProblemEventUpdate {
	if v != nil {
		_u.SetCoefficientB(*v)
	}
	return _u
}

// AddCoefficientB adds value to the "coefficient_b" field.
func (_u *ProblemEventUpdate) AddCoefficientB(v int) *ProblemEventUpdate {
	_u.mutation.AddCoefficientB(v)
	return _u
}

// SetTarget sets the "target" field.
func (_u *ProblemEventUpdate) SetTarget(v string) *ProblemEventUpdate {
	_u.mutation.SetTarget(v)
	return _u
}

// SetNillableTarget sets the "target" field if the given value is not nil.
func (_u *ProblemEventUpdate) SetNillableTarget(v *string) *ProblemEventUpdate {
	if v != nil {
		_u.SetTarget(*v)
	}
	return _u
}

// SetSource sets the "source" field.
func (_u *ProblemEventUpdate) SetSource(v string) *ProblemEventUpdate {
	_u.mutation.SetSource(v)
	return _u
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_u *ProblemEventUpdate) SetNillableSource(v *string) *ProblemEventUpdate {
	if v != nil {
		_u.SetSource(*v)
	}
	return _u
}

// SetShareCode sets the "share_code" field.
func (_u *ProblemEventUpdate) SetShareCode(v string) *ProblemEventUpdate {
	_u.mutation.SetShareCode(v)
	return _u
}

// SetNillableShareCode sets the "share_code" field if the given value is not nil.
func (_u *ProblemEventUpdate) SetNillableShareCode(v *string) *ProblemEventUpdate {
	if v != nil {
		_u.SetShareCode(*v)
	}
	return _u
}

// Mutation returns the ProblemEventMutation object of the builder.
func (_u *ProblemEventUpdate) Mutation() *ProblemEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ProblemEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ProblemEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ProblemEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ProblemEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ProblemEventUpdate) check() error {
	if v, ok := _u.mutation.Target(); ok {
		if err := problemevent.TargetValidator(v); err != nil {
			return &ValidationError{Name: "target", err: fmt.Errorf(`ent: validator failed for field "ProblemEvent.target": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Source(); ok {
		if err := problemevent.SourceValidator(v); err != nil {
			return &ValidationError{Name: "source", err: fmt.Errorf(`ent: validator failed for field "ProblemEvent.source": %w`, err)}
		}
	}
	return nil
}

func (_u *ProblemEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(problemevent.Table, problemevent.Columns, sqlgraph.NewFieldSpec(problemevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.CoefficientA(); ok {
		_spec.SetField(problemevent.FieldCoefficientA, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCoefficientA(); ok {
		_spec.AddField(problemevent.FieldCoefficientA, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CoefficientC(); ok {
		_spec.SetField(problemevent.FieldCoefficientC, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCoefficientC(); ok {
		_spec.AddField(problemevent.FieldCoefficientC, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CoefficientB(); ok {
		_spec.SetField(problemevent.FieldCoefficientB, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCoefficientB(); ok {
		_spec.AddField(problemevent.FieldCoefficientB, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Target(); ok {
		_spec.SetField(problemevent.FieldTarget, field.TypeString, value)
	}
	if value, ok := _u.mutation.Source(); ok {
		_spec.SetField(problemevent.FieldSource, field.TypeString, value)
	}
	if value, ok := _u.mutation.ShareCode(); ok {
		_spec.SetField(problemevent.FieldShareCode, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{problemevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ProblemEventUpdateOne is the builder for updating a single ProblemEvent entity.
type ProblemEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ProblemEventMutation
}

// SetCoefficientA sets the "coefficient_a" field.
func (_u *ProblemEventUpdateOne) SetCoefficientA(v int) *ProblemEventUpdateOne {
	_u.mutation.ResetCoefficientA()
	_u.mutation.SetCoefficientA(v)
	return _u
}

// SetNillableCoefficientA sets the "coefficient_a" field if the given value is not nil.
func (_u *ProblemEventUpdateOne) SetNillableCoefficientA(v *int) *ProblemEventUpdateOne {
	if v != nil {
		_u.SetCoefficientA(*v)
	}
	return _u
}

// AddCoefficientA adds value to the "coefficient_a" field.
func (_u *ProblemEventUpdateOne) AddCoefficientA(v int) *ProblemEventUpdateOne {
	_u.mutation.AddCoefficientA(v)
	return _u
}

// SetCoefficientC sets the "coefficient_c" field.
func (_u *ProblemEventUpdateOne) SetCoefficientC(v int) *ProblemEventUpdateOne {
	_u.mutation.ResetCoefficientC()
	_u.mutation.SetCoefficientC(v)
	return _u
}

// SetNillableCoefficientC sets the "coefficient_c" field if the given value is not nil.
func (_u *ProblemEventUpdateOne) SetNillableCoefficientC(v *int) *ProblemEventUpdateOne {
	if v != nil {
		_u.SetCoefficientC(*v)
	}
	return _u
}

// AddCoefficientC adds value to the "coefficient_c" field.
func (_u *ProblemEventUpdateOne) AddCoefficientC(v int) *ProblemEventUpdateOne {
	_u.mutation.AddCoefficientC(v)
	return _u
}

// SetCoefficientB sets the "coefficient_b" field.
func (_u *ProblemEventUpdateOne) SetCoefficientB(v int) *ProblemEventUpdateOne {
	_u.mutation.ResetCoefficientB()
	_u.mutation.SetCoefficientB(v)
	return _u
}

// SetNillableCoefficientB sets the "coefficient_b" field if the given value is not nil.
func (_u *ProblemEventUpdateOne) SetNillableCoefficientB(v *int) *ProblemEventUpdateOne {
	if v != nil {
		_u.SetCoefficientB(*v)
	}
	return _u
}

// AddCoefficientB adds value to the "coefficient_b" field.
func (_u *ProblemEventUpdateOne) AddCoefficientB(v int) *ProblemEventUpdateOne {
	_u.mutation.AddCoefficientB(v)
	return _u
}

// SetTarget sets the "target" field.
func (_u *ProblemEventUpdateOne) SetTarget(v string) *ProblemEventUpdateOne {
	_u.mutation.SetTarget(v)
	return _u
}

// SetNillableTarget sets the "target" field if the given value is not nil.
func (_u *ProblemEventUpdateOne) SetNillableTarget(v *string) *ProblemEventUpdateOne {
	if v != nil {
		_u.SetTarget(*v)
	}
	return _u
}

// SetSource sets the "source" field.
func (_u *ProblemEventUpdateOne) SetSource(v string) *ProblemEventUpdateOne {
	_u.mutation.SetSource(v)
	return _u
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_u *ProblemEventUpdateOne) SetNillableSource(v *string) *ProblemEventUpdateOne {
	if v != nil {
		_u.SetSource(*v)
	}
	return _u
}

// SetShareCode sets the "share_code" field.
func (_u *ProblemEventUpdateOne) SetShareCode(v string) *ProblemEventUpdateOne {
	_u.mutation.SetShareCode(v)
	return _u
}

// SetNillableShareCode sets the "share_code" field if the given value is not nil.
func (_u *ProblemEventUpdateOne) SetNillableShareCode(v *string) *ProblemEventUpdateOne {
	if v != nil {
		_u.SetShareCode(*v)
	}
	return _u
}

// Mutation returns the ProblemEventMutation object of the builder.
func (_u *ProblemEventUpdateOne) Mutation() *ProblemEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the ProblemEventUpdate builder.
func (_u *ProblemEventUpdateOne) Where(ps ...predicate.ProblemEvent) *ProblemEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ProblemEventUpdateOne) Select(field string, fields ...string) *ProblemEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ProblemEvent entity.
func (_u *ProblemEventUpdateOne) Save(ctx context.Context) (*ProblemEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ProblemEventUpdateOne) SaveX(ctx context.Context) *ProblemEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ProblemEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ProblemEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ProblemEventUpdateOne) check() error {
	if v, ok := _u.mutation.Target(); ok {
		if err := problemevent.TargetValidator(v); err != nil {
			return &ValidationError{Name: "target", err: fmt.Errorf(`ent: validator failed for field "ProblemEvent.target": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Source(); ok {
		if err := problemevent.SourceValidator(v); err != nil {
			return &ValidationError{Name: "source", err: fmt.Errorf(`ent: validator failed for field "ProblemEvent.source": %w`, err)}
		}
	}
	return nil
}

func (_u *ProblemEventUpdateOne) sqlSave(ctx context.Context) (_node *ProblemEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(problemevent.Table, problemevent.Columns, sqlgraph.NewFieldSpec(problemevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ProblemEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, problemevent.FieldID)
		for _, f := range fields {
			if !problemevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != problemevent.FieldID {
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
		_spec.SetField(problemevent.FieldCoefficientA, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCoefficientA(); ok {
		_spec.AddField(problemevent.FieldCoefficientA, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CoefficientC(); ok {
		_spec.SetField(problemevent.FieldCoefficientC, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCoefficientC(); ok {
		_spec.AddField(problemevent.FieldCoefficientC, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CoefficientB(); ok {
		_spec.SetField(problemevent.FieldCoefficientB, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCoefficientB(); ok {
		_spec.AddField(problemevent.FieldCoefficientB, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Target(); ok {
		_spec.SetField(problemevent.FieldTarget, field.TypeString, value)
	}
	if value, ok := _u.mutation.Source(); ok {
		_spec.SetField(problemevent.FieldSource, field.TypeString, value)
	}
	if value, ok := _u.mutation.ShareCode(); ok {
		_spec.SetField(problemevent.FieldShareCode, field.TypeString, value)
	}
	_node = &ProblemEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{problemevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
