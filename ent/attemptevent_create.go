// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/limitz/ent/attemptevent"
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

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_c *AttemptEventCreate) SetNillableSessionID(v *string) *AttemptEventCreate {
	if v != nil {
		_c.SetSessionID(*v)
	}
	return _c
}

// SetCoefficientA sets the "coefficient_a" field.
func (_c *AttemptEventCreate) SetCoefficientA(v int) *AttemptEventCreate {
	_c.mutation.SetCoefficientA(v)
	return _c
}

// SetRawInput sets the "raw_input" field.
func (_c *AttemptEventCreate) SetRawInput(v string) *AttemptEventCreate {
	_c.mutation.SetRawInput(v)
	return _c
}

// SetParsedValue sets the "parsed_value" field.
func (_c *AttemptEventCreate) SetParsedValue(v string) *AttemptEventCreate {
	_c.mutation.SetParsedValue(v)
	return _c
}

// SetNillableParsedValue sets the "parsed_value" field if the given value is not nil.
func (_c *AttemptEventCreate) SetNillableParsedValue(v *string) *AttemptEventCreate {
	if v != nil {
		_c.SetParsedValue(*v)
	}
	return _c
}

// SetVerdict sets the "verdict" field.
func (_c *AttemptEventCreate) SetVerdict(v string) *AttemptEventCreate {
	_c.mutation.SetVerdict(v)
	return _c
}

// SetHintTier sets the "hint_tier" field.
func (_c *AttemptEventCreate) SetHintTier(v int) *AttemptEventCreate {
	_c.mutation.SetHintTier(v)
	return _c
}

// SetNillableHintTier sets the "hint_tier" field if the given value is not nil.
func (_c *AttemptEventCreate) SetNillableHintTier(v *int) *AttemptEventCreate {
	if v != nil {
		_c.SetHintTier(*v)
	}
	return _c
}

// SetReplayed sets the "replayed" field.
func (_c *AttemptEventCreate) SetReplayed(v bool) *AttemptEventCreate {
	_c.mutation.SetReplayed(v)
	return _c
}

// SetNillableReplayed sets the "replayed" field if the given value is not nil.
func (_c *AttemptEventCreate) SetNillableReplayed(v *bool) *AttemptEventCreate {
	if v != nil {
		_c.SetReplayed(*v)
	}
	return _c
}

// SetTimeMs sets the "time_ms" field.
func (_c *AttemptEventCreate) SetTimeMs(v int64) *AttemptEventCreate {
	_c.mutation.SetTimeMs(v)
	return _c
}

// SetNillableTimeMs sets the "time_ms" field if the given value is not nil.
func (_c *AttemptEventCreate) SetNillableTimeMs(v *int64) *AttemptEventCreate {
	if v != nil {
		_c.SetTimeMs(*v)
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
	if _, ok := _c.mutation.SessionID(); !ok {
		v := attemptevent.DefaultSessionID
		_c.mutation.SetSessionID(v)
	}
	if _, ok := _c.mutation.ParsedValue(); !ok {
		v := attemptevent.DefaultParsedValue
		_c.mutation.SetParsedValue(v)
	}
	if _, ok := _c.mutation.HintTier(); !ok {
		v := attemptevent.DefaultHintTier
		_c.mutation.SetHintTier(v)
	}
	if _, ok := _c.mutation.Replayed(); !ok {
		v := attemptevent.DefaultReplayed
		_c.mutation.SetReplayed(v)
	}
	if _, ok := _c.mutation.TimeMs(); !ok {
		v := attemptevent.DefaultTimeMs
		_c.mutation.SetTimeMs(v)
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
	if _, ok := _c.mutation.CoefficientA(); !ok {
		return &ValidationError{Name: "coefficient_a", err: errors.New(`ent: missing required field "AttemptEvent.coefficient_a"`)}
	}
	if _, ok := _c.mutation.RawInput(); !ok {
		return &ValidationError{Name: "raw_input", err: errors.New(`ent: missing required field "AttemptEvent.raw_input"`)}
	}
	if v, ok := _c.mutation.RawInput(); ok {
		if err := attemptevent.RawInputValidator(v); err != nil {
			return &ValidationError{Name: "raw_input", err: fmt.Errorf(`ent: validator failed for field "AttemptEvent.raw_input": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ParsedValue(); !ok {
		return &ValidationError{Name: "parsed_value", err: errors.New(`ent: missing required field "AttemptEvent.parsed_value"`)}
	}
	if _, ok := _c.mutation.Verdict(); !ok {
		return &ValidationError{Name: "verdict", err: errors.New(`ent: missing required field "AttemptEvent.verdict"`)}
	}
	if v, ok := _c.mutation.Verdict(); ok {
		if err := attemptevent.VerdictValidator(v); err != nil {
			return &ValidationError{Name: "verdict", err: fmt.Errorf(`ent: validator failed for field "AttemptEvent.verdict": %w`, err)}
		}
	}
	if _, ok := _c.mutation.HintTier(); !ok {
		return &ValidationError{Name: "hint_tier", err: errors.New(`ent: missing required field "AttemptEvent.hint_tier"`)}
	}
	if _, ok := _c.mutation.Replayed(); !ok {
		return &ValidationError{Name: "replayed", err: errors.New(`ent: missing required field "AttemptEvent.replayed"`)}
	}
	if _, ok := _c.mutation.TimeMs(); !ok {
		return &ValidationError{Name: "time_ms", err: errors.New(`ent: missing required field "AttemptEvent.time_ms"`)}
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
	if value, ok := _c.mutation.CoefficientA(); ok {
		_spec.SetField(attemptevent.FieldCoefficientA, field.TypeInt, value)
		_node.CoefficientA = value
	}
	if value, ok := _c.mutation.RawInput(); ok {
		_spec.SetField(attemptevent.FieldRawInput, field.TypeString, value)
		_node.RawInput = value
	}
	if value, ok := _c.mutation.ParsedValue(); ok {
		_spec.SetField(attemptevent.FieldParsedValue, field.TypeString, value)
		_node.ParsedValue = value
	}
	if value, ok := _c.mutation.Verdict(); ok {
		_spec.SetField(attemptevent.FieldVerdict, field.TypeString, value)
		_node.Verdict = value
	}
	if value, ok := _c.mutation.HintTier(); ok {
		_spec.SetField(attemptevent.FieldHintTier, field.TypeInt, value)
		_node.HintTier = value
	}
	if value, ok := _c.mutation.Replayed(); ok {
		_spec.SetField(attemptevent.FieldReplayed, field.TypeBool, value)
		_node.Replayed = value
	}
	if value, ok := _c.mutation.TimeMs(); ok {
		_spec.SetField(attemptevent.FieldTimeMs, field.TypeInt64, value)
		_node.TimeMs = value
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
