// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/limitz/ent/problemevent"
)

// ProblemEventCreate is the builder for creating a ProblemEvent entity.
type ProblemEventCreate struct {
	config
	mutation *ProblemEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *ProblemEventCreate) SetSequence(v int64) *ProblemEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *ProblemEventCreate) SetTimestamp(v time.Time) *ProblemEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *ProblemEventCreate) SetNillableTimestamp(v *time.Time) *ProblemEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetSessionID sets the "session_id" field.
func (_c *ProblemEventCreate) SetSessionID(v string) *ProblemEventCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_c *ProblemEventCreate) SetNillableSessionID(v *string) *ProblemEventCreate {
	if v != nil {
		_c.SetSessionID(*v)
	}
	return _c
}

// SetCoefficientA sets the "coefficient_a" field.
func (_c *ProblemEventCreate) SetCoefficientA(v int) *ProblemEventCreate {
	_c.mutation.SetCoefficientA(v)
	return _c
}

// SetCoefficientC sets the "coefficient_c" field.
func (_c *ProblemEventCreate) SetCoefficientC(v int) *ProblemEventCreate {
	_c.mutation.SetCoefficientC(v)
	return _c
}

// SetCoefficientB sets the "coefficient_b" field.
func (_c *ProblemEventCreate) SetCoefficientB(v int) *ProblemEventCreate {
	_c.mutation.SetCoefficientB(v)
	return _c
}

// SetTarget sets the "target" field.
func (_c *ProblemEventCreate) SetTarget(v string) *ProblemEventCreate {
	_c.mutation.SetTarget(v)
	return _c
}

// SetSource sets the "source" field.
func (_c *ProblemEventCreate) SetSource(v string) *ProblemEventCreate {
	_c.mutation.SetSource(v)
	return _c
}

// SetShareCode sets the "share_code" field.
func (_c *ProblemEventCreate) SetShareCode(v string) *ProblemEventCreate {
	_c.mutation.SetShareCode(v)
	return _c
}

// SetNillableShareCode sets the "share_code" field if the given value is not nil.
func (_c *ProblemEventCreate) SetNillableShareCode(v *string) *ProblemEventCreate {
	if v != nil {
		_c.SetShareCode(*v)
	}
	return _c
}

// Mutation returns the ProblemEventMutation object of the builder.
func (_c *ProblemEventCreate) Mutation() *ProblemEventMutation {
	return _c.mutation
}

// Save creates the ProblemEvent in the database.
func (_c *ProblemEventCreate) Save(ctx context.Context) (*ProblemEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ProblemEventCreate) SaveX(ctx context.Context) *ProblemEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ProblemEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ProblemEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ProblemEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := problemevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
	if _, ok := _c.mutation.SessionID(); !ok {
		v := problemevent.DefaultSessionID
		_c.mutation.SetSessionID(v)
	}
	if _, ok := _c.mutation.ShareCode(); !ok {
		v := problemevent.DefaultShareCode
		_c.mutation.SetShareCode(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ProblemEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "ProblemEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "ProblemEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "ProblemEvent.session_id"`)}
	}
	if _, ok := _c.mutation.CoefficientA(); !ok {
		return &ValidationError{Name: "coefficient_a", err: errors.New(`ent: missing required field "ProblemEvent.coefficient_a"`)}
	}
	if _, ok := _c.mutation.CoefficientC(); !ok {
		return &ValidationError{Name: "coefficient_c", err: errors.New(`ent: missing required field "ProblemEvent.coefficient_c"`)}
	}
	if _, ok := _c.mutation.CoefficientB(); !ok {
		return &ValidationError{Name: "coefficient_b", err: errors.New(`ent: missing required field "ProblemEvent.coefficient_b"`)}
	}
	if _, ok := _c.mutation.Target(); !ok {
		return &ValidationError{Name: "target", err: errors.New(`ent: missing required field "ProblemEvent.target"`)}
	}
	if v, ok := _c.mutation.Target(); ok {
		if err := problemevent.TargetValidator(v); err != nil {
			return &ValidationError{Name: "target", err: fmt.Errorf(`ent: validator failed for field "ProblemEvent.target": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Source(); !ok {
		return &ValidationError{Name: "source", err: errors.New(`ent: missing required field "ProblemEvent.source"`)}
	}
	if v, ok := _c.mutation.Source(); ok {
		if err := problemevent.SourceValidator(v); err != nil {
			return &ValidationError{Name: "source", err: fmt.Errorf(`ent: validator failed for field "ProblemEvent.source": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ShareCode(); !ok {
		return &ValidationError{Name: "share_code", err: errors.New(`ent: missing required field "ProblemEvent.share_code"`)}
	}
	return nil
}

func (_c *ProblemEventCreate) sqlSave(ctx context.Context) (*ProblemEvent, error) {
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

func (_c *ProblemEventCreate) createSpec() (*ProblemEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &ProblemEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(problemevent.Table, sqlgraph.NewFieldSpec(problemevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(problemevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(problemevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.SessionID(); ok {
		_spec.SetField(problemevent.FieldSessionID, field.TypeString, value)
		_node.SessionID = value
	}
	if value, ok := _c.mutation.CoefficientA(); ok {
		_spec.SetField(problemevent.FieldCoefficientA, field.TypeInt, value)
		_node.CoefficientA = value
	}
	if value, ok := _c.mutation.CoefficientC(); ok {
		_spec.SetField(problemevent.FieldCoefficientC, field.TypeInt, value)
		_node.CoefficientC = value
	}
	if value, ok := _c.mutation.CoefficientB(); ok {
		_spec.SetField(problemevent.FieldCoefficientB, field.TypeInt, value)
		_node.CoefficientB = value
	}
	if value, ok := _c.mutation.Target(); ok {
		_spec.SetField(problemevent.FieldTarget, field.TypeString, value)
		_node.Target = value
	}
	if value, ok := _c.mutation.Source(); ok {
		_spec.SetField(problemevent.FieldSource, field.TypeString, value)
		_node.Source = value
	}
	if value, ok := _c.mutation.ShareCode(); ok {
		_spec.SetField(problemevent.FieldShareCode, field.TypeString, value)
		_node.ShareCode = value
	}
	return _node, _spec
}

// ProblemEventCreateBulk is the builder for creating many ProblemEvent entities in bulk.
type ProblemEventCreateBulk struct {
	config
	err      error
	builders []*ProblemEventCreate
}

// Save creates the ProblemEvent entities in the database.
func (_c *ProblemEventCreateBulk) Save(ctx context.Context) ([]*ProblemEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ProblemEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ProblemEventMutation)
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
func (_c *ProblemEventCreateBulk) SaveX(ctx context.Context) []*ProblemEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ProblemEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ProblemEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
