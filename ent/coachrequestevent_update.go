// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/limitz/ent/coachrequestevent"
	"github.com/abhisek/limitz/ent/predicate"
)

// CoachRequestEventUpdate is the builder for updating CoachRequestEvent entities.
type CoachRequestEventUpdate struct {
	config
	hooks    []Hook
	mutation *CoachRequestEventMutation
}

// Where appends a list predicates to the CoachRequestEventUpdate builder.
func (_u *CoachRequestEventUpdate) Where(ps ...predicate.CoachRequestEvent) *CoachRequestEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetProvider sets the "provider" field.
func (_u *CoachRequestEventUpdate) SetProvider(v string) *CoachRequestEventUpdate {
	_u.mutation.SetProvider(v)
	return _u
}

// SetNillableProvider sets the "provider" field if the given value is not nil.
func (_u *CoachRequestEventUpdate) SetNillableProvider(v *string) *CoachRequestEventUpdate {
	if v != nil {
		_u.SetProvider(*v)
	}
	return _u
}

// SetModel sets the "model" field.
func (_u *CoachRequestEventUpdate) SetModel(v string) *CoachRequestEventUpdate {
	_u.mutation.SetModel(v)
	return _u
}

// SetNillableModel sets the "model" field if the given value is not nil.
func (_u *CoachRequestEventUpdate) SetNillableModel(v *string) *CoachRequestEventUpdate {
	if v != nil {
		_u.SetModel(*v)
	}
	return _u
}

// SetCoefficientA sets the "coefficient_a" field.
func (_u *CoachRequestEventUpdate) SetCoefficientA(v int) *CoachRequestEventUpdate {
	_u.mutation.ResetCoefficientA()
	_u.mutation.SetCoefficientA(v)
	return _u
}

// SetNillableCoefficientA sets the "coefficient_a" field if the given value is not nil.
func (_u *CoachRequestEventUpdate) SetNillableCoefficientA(v *int) *CoachRequestEventUpdate {
	if v != nil {
		_u.SetCoefficientA(*v)
	}
	return _u
}

// AddCoefficientA adds value to the "coefficient_a" field.
func (_u *CoachRequestEventUpdate) AddCoefficientA(v int) *CoachRequestEventUpdate {
	_u.mutation.AddCoefficientA(v)
	return _u
}

// SetInputTokens sets the "input_tokens" field.
func (_u *CoachRequestEventUpdate) SetInputTokens(v int) *CoachRequestEventUpdate {
	_u.mutation.ResetInputTokens()
	_u.mutation.SetInputTokens(v)
	return _u
}

// SetNillableInputTokens sets the "input_tokens" field if the given value is not nil.
func (_u *CoachRequestEventUpdate) SetNillableInputTokens(v *int) *CoachRequestEventUpdate {
	if v != nil {
		_u.SetInputTokens(*v)
	}
	return _u
}

// AddInputTokens adds value to the "input_tokens" field.
func (_u *CoachRequestEventUpdate) AddInputTokens(v int) *CoachRequestEventUpdate {
	_u.mutation.AddInputTokens(v)
	return _u
}

// SetOutputTokens sets the "output_tokens" field.
func (_u *CoachRequestEventUpdate) SetOutputTokens(v int) *CoachRequestEventUpdate {
	_u.mutation.ResetOutputTokens()
	_u.mutation.SetOutputTokens(v)
	return _u
}

// SetNillableOutputTokens sets the "output_tokens" field if the given value is not nil.
func (_u *CoachRequestEventUpdate) SetNillableOutputTokens(v *int) *CoachRequestEventUpdate {
	if v != nil {
		_u.SetOutputTokens(*v)
	}
	return _u
}

// AddOutputTokens adds value to the "output_tokens" field.
func (_u *CoachRequestEventUpdate) AddOutputTokens(v int) *CoachRequestEventUpdate {
	_u.mutation.AddOutputTokens(v)
	return _u
}

// SetLatencyMs sets the "latency_ms" field.
func (_u *CoachRequestEventUpdate) SetLatencyMs(v int64) *CoachRequestEventUpdate {
	_u.mutation.ResetLatencyMs()
	_u.mutation.SetLatencyMs(v)
	return _u
}

// SetNillableLatencyMs sets the "latency_ms" field if the given value is not nil.
func (_u *CoachRequestEventUpdate) SetNillableLatencyMs(v *int64) *CoachRequestEventUpdate {
	if v != nil {
		_u.SetLatencyMs(*v)
	}
	return _u
}

// AddLatencyMs adds value to the "latency_ms" field.
func (_u *CoachRequestEventUpdate) AddLatencyMs(v int64) *CoachRequestEventUpdate {
	_u.mutation.AddLatencyMs(v)
	return _u
}

// SetSuccess sets the "success" field.
func (_u *CoachRequestEventUpdate) SetSuccess(v bool) *CoachRequestEventUpdate {
	_u.mutation.SetSuccess(v)
	return _u
}

// SetNillableSuccess sets the "success" field if the given value is not nil.
func (_u *CoachRequestEventUpdate) SetNillableSuccess(v *bool) *CoachRequestEventUpdate {
	if v != nil {
		_u.SetSuccess(*v)
	}
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *CoachRequestEventUpdate) SetErrorMessage(v string) *CoachRequestEventUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *CoachRequestEventUpdate) SetNillableErrorMessage(v *string) *CoachRequestEventUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// Mutation returns the CoachRequestEventMutation object of the builder.
func (_u *CoachRequestEventUpdate) Mutation() *CoachRequestEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *CoachRequestEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CoachRequestEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *CoachRequestEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CoachRequestEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CoachRequestEventUpdate) check() error {
	if v, ok := _u.mutation.Provider(); ok {
		if err := coachrequestevent.ProviderValidator(v); err != nil {
			return &ValidationError{Name: "provider", err: fmt.Errorf(`ent: validator failed for field "CoachRequestEvent.provider": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Model(); ok {
		if err := coachrequestevent.ModelValidator(v); err != nil {
			return &ValidationError{Name: "model", err: fmt.Errorf(`ent: validator failed for field "CoachRequestEvent.model": %w`, err)}
		}
	}
	return nil
}

func (_u *CoachRequestEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(coachrequestevent.Table, coachrequestevent.Columns, sqlgraph.NewFieldSpec(coachrequestevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Provider(); ok {
		_spec.SetField(coachrequestevent.FieldProvider, field.TypeString, value)
	}
	if value, ok := _u.mutation.Model(); ok {
		_spec.SetField(coachrequestevent.FieldModel, field.TypeString, value)
	}
	if value, ok := _u.mutation.CoefficientA(); ok {
		_spec.SetField(coachrequestevent.FieldCoefficientA, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCoefficientA(); ok {
		_spec.AddField(coachrequestevent.FieldCoefficientA, field.TypeInt, value)
	}
	if value, ok := _u.mutation.InputTokens(); ok {
		_spec.SetField(coachrequestevent.FieldInputTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedInputTokens(); ok {
		_spec.AddField(coachrequestevent.FieldInputTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.OutputTokens(); ok {
		_spec.SetField(coachrequestevent.FieldOutputTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedOutputTokens(); ok {
		_spec.AddField(coachrequestevent.FieldOutputTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LatencyMs(); ok {
		_spec.SetField(coachrequestevent.FieldLatencyMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedLatencyMs(); ok {
		_spec.AddField(coachrequestevent.FieldLatencyMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Success(); ok {
		_spec.SetField(coachrequestevent.FieldSuccess, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(coachrequestevent.FieldErrorMessage, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{coachrequestevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// CoachRequestEventUpdateOne is the builder for updating a single CoachRequestEvent entity.
type CoachRequestEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *CoachRequestEventMutation
}

// SetProvider sets the "provider" field.
func (_u *CoachRequestEventUpdateOne) SetProvider(v string) *CoachRequestEventUpdateOne {
	_u.mutation.SetProvider(v)
	return _u
}

// SetNillableProvider sets the "provider" field if the given value is not nil.
func (_u *CoachRequestEventUpdateOne) SetNillableProvider(v *string) *CoachRequestEventUpdateOne {
	if v != nil {
		_u.SetProvider(*v)
	}
	return _u
}

// SetModel sets the "model" field.
func (_u *CoachRequestEventUpdateOne) SetModel(v string) *CoachRequestEventUpdateOne {
	_u.mutation.SetModel(v)
	return _u
}

// SetNillableModel sets the "model" field if the given value is not nil.
func (_u *CoachRequestEventUpdateOne) SetNillableModel(v *string) *CoachRequestEventUpdateOne {
	if v != nil {
		_u.SetModel(*v)
	}
	return _u
}

// SetCoefficientA sets the "coefficient_a" field.
func (_u *CoachRequestEventUpdateOne) SetCoefficientA(v int) *CoachRequestEventUpdateOne {
	_u.mutation.ResetCoefficientA()
	_u.mutation.SetCoefficientA(v)
	return _u
}

// SetNillableCoefficientA sets the "coefficient_a" field if the given value is not nil.
func (_u *CoachRequestEventUpdateOne) SetNillableCoefficientA(v *int) *CoachRequestEventUpdateOne {
	if v != nil {
		_u.SetCoefficientA(*v)
	}
	return _u
}

// AddCoefficientA adds value to the "coefficient_a" field.
func (_u *CoachRequestEventUpdateOne) AddCoefficientA(v int) *CoachRequestEventUpdateOne {
	_u.mutation.AddCoefficientA(v)
	return _u
}

// SetInputTokens sets the "input_tokens" field.
func (_u *CoachRequestEventUpdateOne) SetInputTokens(v int) *CoachRequestEventUpdateOne {
	_u.mutation.ResetInputTokens()
	_u.mutation.SetInputTokens(v)
	return _u
}

// SetNillableInputTokens sets the "input_tokens" field if the given value is not nil.
func (_u *CoachRequestEventUpdateOne) SetNillableInputTokens(v *int) *CoachRequestEventUpdateOne {
	if v != nil {
		_u.SetInputTokens(*v)
	}
	return _u
}

// AddInputTokens adds value to the "input_tokens" field.
func (_u *CoachRequestEventUpdateOne) AddInputTokens(v int) *CoachRequestEventUpdateOne {
	_u.mutation.AddInputTokens(v)
	return _u
}

// SetOutputTokens sets the "output_tokens" field.
func (_u *CoachRequestEventUpdateOne) SetOutputTokens(v int) *CoachRequestEventUpdateOne {
	_u.mutation.ResetOutputTokens()
	_u.mutation.SetOutputTokens(v)
	return _u
}

// SetNillableOutputTokens sets the "output_tokens" field if the given value is not nil.
func (_u *CoachRequestEventUpdateOne) SetNillableOutputTokens(v *int) *CoachRequestEventUpdateOne {
	if v != nil {
		_u.SetOutputTokens(*v)
	}
	return _u
}

// AddOutputTokens adds value to the "output_tokens" field.
func (_u *CoachRequestEventUpdateOne) AddOutputTokens(v int) *CoachRequestEventUpdateOne {
	_u.mutation.AddOutputTokens(v)
	return _u
}

// SetLatencyMs sets the "latency_ms" field.
func (_u *CoachRequestEventUpdateOne) SetLatencyMs(v int64) *CoachRequestEventUpdateOne {
	_u.mutation.ResetLatencyMs()
	_u.mutation.SetLatencyMs(v)
	return _u
}

// SetNillableLatencyMs sets the "latency_ms" field if the given value is not nil.
func (_u *CoachRequestEventUpdateOne) SetNillableLatencyMs(v *int64) *CoachRequestEventUpdateOne {
	if v != nil {
		_u.SetLatencyMs(*v)
	}
	return _u
}

// AddLatencyMs adds value to the "latency_ms" field.
func (_u *CoachRequestEventUpdateOne) AddLatencyMs(v int64) *CoachRequestEventUpdateOne {
	_u.mutation.AddLatencyMs(v)
	return _u
}

// SetSuccess sets the "success" field.
func (_u *CoachRequestEventUpdateOne) SetSuccess(v bool) *CoachRequestEventUpdateOne {
	_u.mutation.SetSuccess(v)
	return _u
}

// SetNillableSuccess sets the "success" field if the given value is not nil.
func (_u *CoachRequestEventUpdateOne) SetNillableSuccess(v *bool) *CoachRequestEventUpdateOne {
	if v != nil {
		_u.SetSuccess(*v)
	}
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *CoachRequestEventUpdateOne) SetErrorMessage(v string) *CoachRequestEventUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *CoachRequestEventUpdateOne) SetNillableErrorMessage(v *string) *CoachRequestEventUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// Mutation returns the CoachRequestEventMutation object of the builder.
func (_u *CoachRequestEventUpdateOne) Mutation() *CoachRequestEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the CoachRequestEventUpdate builder.
func (_u *CoachRequestEventUpdateOne) Where(ps ...predicate.CoachRequestEvent) *CoachRequestEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *CoachRequestEventUpdateOne) Select(field string, fields ...string) *CoachRequestEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated CoachRequestEvent entity.
func (_u *CoachRequestEventUpdateOne) Save(ctx context.Context) (*CoachRequestEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CoachRequestEventUpdateOne) SaveX(ctx context.Context) *CoachRequestEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *CoachRequestEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CoachRequestEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CoachRequestEventUpdateOne) check() error {
	if v, ok := _u.mutation.Provider(); ok {
		if err := coachrequestevent.ProviderValidator(v); err != nil {
			return &ValidationError{Name: "provider", err: fmt.Errorf(`ent: validator failed for field "CoachRequestEvent.provider": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Model(); ok {
		if err := coachrequestevent.ModelValidator(v); err != nil {
			return &ValidationError{Name: "model", err: fmt.Errorf(`ent: validator failed for field "CoachRequestEvent.model": %w`, err)}
		}
	}
	return nil
}

func (_u *CoachRequestEventUpdateOne) sqlSave(ctx context.Context) (_node *CoachRequestEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(coachrequestevent.Table, coachrequestevent.Columns, sqlgraph.NewFieldSpec(coachrequestevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "CoachRequestEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, coachrequestevent.FieldID)
		for _, f := range fields {
			if !coachrequestevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != coachrequestevent.FieldID {
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
	if value, ok := _u.mutation.Provider(); ok {
		_spec.SetField(coachrequestevent.FieldProvider, field.TypeString, value)
	}
	if value, ok := _u.mutation.Model(); ok {
		_spec.SetField(coachrequestevent.FieldModel, field.TypeString, value)
	}
	if value, ok := _u.mutation.CoefficientA(); ok {
		_spec.SetField(coachrequestevent.FieldCoefficientA, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCoefficientA(); ok {
		_spec.AddField(coachrequestevent.FieldCoefficientA, field.TypeInt, value)
	}
	if value, ok := _u.mutation.InputTokens(); ok {
		_spec.SetField(coachrequestevent.FieldInputTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedInputTokens(); ok {
		_spec.AddField(coachrequestevent.FieldInputTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.OutputTokens(); ok {
		_spec.SetField(coachrequestevent.FieldOutputTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedOutputTokens(); ok {
		_spec.AddField(coachrequestevent.FieldOutputTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LatencyMs(); ok {
		_spec.SetField(coachrequestevent.FieldLatencyMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedLatencyMs(); ok {
		_spec.AddField(coachrequestevent.FieldLatencyMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Success(); ok {
		_spec.SetField(coachrequestevent.FieldSuccess, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(coachrequestevent.FieldErrorMessage, field.TypeString, value)
	}
	_node = &CoachRequestEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{coachrequestevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
