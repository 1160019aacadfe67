// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/fweiner/parrotsoftware-treatment-sub000/ent/cueevent"
)

// CueEventCreate is the builder for creating a CueEvent entity.
type CueEventCreate struct {
	config
	mutation *CueEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *CueEventCreate) SetSequence(v int64) *CueEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *CueEventCreate) SetTimestamp(v time.Time) *CueEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *CueEventCreate) SetNillableTimestamp(v *time.Time) *CueEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetSessionID sets the "session_id" field.
func (_c *CueEventCreate) SetSessionID(v string) *CueEventCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetItemID sets the "item_id" field.
func (_c *CueEventCreate) SetItemID(v string) *CueEventCreate {
	_c.mutation.SetItemID(v)
	return _c
}

// SetLevel sets the "level" field.
func (_c *CueEventCreate) SetLevel(v int) *CueEventCreate {
	_c.mutation.SetLevel(v)
	return _c
}

// SetCueText sets the "cue_text" field.
func (_c *CueEventCreate) SetCueText(v string) *CueEventCreate {
	_c.mutation.SetCueText(v)
	return _c
}

// Mutation returns the CueEventMutation object of the builder.
func (_c *CueEventCreate) Mutation() *CueEventMutation {
	return _c.mutation
}

// Save creates the CueEvent in the database.
func (_c *CueEventCreate) Save(ctx context.Context) (*CueEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *CueEventCreate) SaveX(ctx context.Context) *CueEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CueEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CueEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *CueEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := cueevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *CueEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "CueEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "CueEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "CueEvent.session_id"`)}
	}
	if v, ok := _c.mutation.SessionID(); ok {
		if err := cueevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "CueEvent.session_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ItemID(); !ok {
		return &ValidationError{Name: "item_id", err: errors.New(`ent: missing required field "CueEvent.item_id"`)}
	}
	if v, ok := _c.mutation.ItemID(); ok {
		if err := cueevent.ItemIDValidator(v); err != nil {
			return &ValidationError{Name: "item_id", err: fmt.Errorf(`ent: validator failed for field "CueEvent.item_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Level(); !ok {
		return &ValidationError{Name: "level", err: errors.New(`ent: missing required field "CueEvent.level"`)}
	}
	if v, ok := _c.mutation.Level(); ok {
		if err := cueevent.LevelValidator(v); err != nil {
			return &ValidationError{Name: "level", err: fmt.Errorf(`ent: validator failed for field "CueEvent.level": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CueText(); !ok {
		return &ValidationError{Name: "cue_text", err: errors.New(`ent: missing required field "CueEvent.cue_text"`)}
	}
	if v, ok := _c.mutation.CueText(); ok {
		if err := cueevent.CueTextValidator(v); err != nil {
			return &ValidationError{Name: "cue_text", err: fmt.Errorf(`ent: validator failed for field "CueEvent.cue_text": %w`, err)}
		}
	}
	return nil
}

func (_c *CueEventCreate) sqlSave(ctx context.Context) (*CueEvent, error) {
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

func (_c *CueEventCreate) createSpec() (*CueEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &CueEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(cueevent.Table, sqlgraph.NewFieldSpec(cueevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(cueevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(cueevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.SessionID(); ok {
		_spec.SetField(cueevent.FieldSessionID, field.TypeString, value)
		_node.SessionID = value
	}
	if value, ok := _c.mutation.ItemID(); ok {
		_spec.SetField(cueevent.FieldItemID, field.TypeString, value)
		_node.ItemID = value
	}
	if value, ok := _c.mutation.Level(); ok {
		_spec.SetField(cueevent.FieldLevel, field.TypeInt, value)
		_node.Level = value
	}
	if value, ok := _c.mutation.CueText(); ok {
		_spec.SetField(cueevent.FieldCueText, field.TypeString, value)
		_node.CueText = value
	}
	return _node, _spec
}

// CueEventCreateBulk is the builder for creating many CueEvent entities in bulk.
type CueEventCreateBulk struct {
	config
	err      error
	builders []*CueEventCreate
}

// Save creates the CueEvent entities in the database.
func (_c *CueEventCreateBulk) Save(ctx context.Context) ([]*CueEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*CueEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*CueEventMutation)
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
func (_c *CueEventCreateBulk) SaveX(ctx context.Context) []*CueEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CueEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CueEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
