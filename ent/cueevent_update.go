// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/fweiner/parrotsoftware-treatment-sub000/ent/cueevent"
	"github.com/fweiner/parrotsoftware-treatment-sub000/ent/predicate"
)

// CueEventUpdate is the builder for updating CueEvent entities.
type CueEventUpdate struct {
	config
	hooks    []Hook
	mutation *CueEventMutation
}

// Where appends a list predicates to the CueEventUpdate builder.
func (_u *CueEventUpdate) Where(ps ...predicate.CueEvent) *CueEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *CueEventUpdate) SetSessionID(v string) *CueEventUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *CueEventUpdate) SetNillableSessionID(v *string) *CueEventUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetItemID sets the "item_id" field.
func (_u *CueEventUpdate) SetItemID(v string) *CueEventUpdate {
	_u.mutation.SetItemID(v)
	return _u
}

// SetNillableItemID sets the "item_id" field if the given value is not nil.
func (_u *CueEventUpdate) SetNillableItemID(v *string) *CueEventUpdate {
	if v != nil {
		_u.SetItemID(*v)
	}
	return _u
}

// SetLevel sets the "level" field.
func (_u *CueEventUpdate) SetLevel(v int) *CueEventUpdate {
	_u.mutation.ResetLevel()
	_u.mutation.SetLevel(v)
	return _u
}

// SetNillableLevel sets the "level" field if the given value is not nil.
func (_u *CueEventUpdate) SetNillableLevel(v *int) *CueEventUpdate {
	if v != nil {
		_u.SetLevel(*v)
	}
	return _u
}

// AddLevel adds value to the "level" field.
func (_u *CueEventUpdate) AddLevel(v int) *CueEventUpdate {
	_u.mutation.AddLevel(v)
	return _u
}

// SetCueText sets the "cue_text" field.
func (_u *CueEventUpdate) SetCueText(v string) *CueEventUpdate {
	_u.mutation.SetCueText(v)
	return _u
}

// SetNillableCueText sets the "cue_text" field if the given value is not nil.
func (_u *CueEventUpdate) SetNillableCueText(v *string) *CueEventUpdate {
	if v != nil {
		_u.SetCueText(*v)
	}
	return _u
}

// Mutation returns the CueEventMutation object of the builder.
func (_u *CueEventUpdate) Mutation() *CueEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *CueEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CueEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *CueEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CueEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CueEventUpdate) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := cueevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "CueEvent.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ItemID(); ok {
		if err := cueevent.ItemIDValidator(v); err != nil {
			return &ValidationError{Name: "item_id", err: fmt.Errorf(`ent: validator failed for field "CueEvent.item_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Level(); ok {
		if err := cueevent.LevelValidator(v); err != nil {
			return &ValidationError{Name: "level", err: fmt.Errorf(`ent: validator failed for field "CueEvent.level": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CueText(); ok {
		if err := cueevent.CueTextValidator(v); err != nil {
			return &ValidationError{Name: "cue_text", err: fmt.Errorf(`ent: validator failed for field "CueEvent.cue_text": %w`, err)}
		}
	}
	return nil
}

func (_u *CueEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(cueevent.Table, cueevent.Columns, sqlgraph.NewFieldSpec(cueevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(cueevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ItemID(); ok {
		_spec.SetField(cueevent.FieldItemID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Level(); ok {
		_spec.SetField(cueevent.FieldLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLevel(); ok {
		_spec.AddField(cueevent.FieldLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CueText(); ok {
		_spec.SetField(cueevent.FieldCueText, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{cueevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// CueEventUpdateOne is the builder for updating a single CueEvent entity.
type CueEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *CueEventMutation
}

// SetSessionID sets the "session_id" field.
func (_u *CueEventUpdateOne) SetSessionID(v string) *CueEventUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *CueEventUpdateOne) SetNillableSessionID(v *string) *CueEventUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetItemID sets the "item_id" field.
func (_u *CueEventUpdateOne) SetItemID(v string) *CueEventUpdateOne {
	_u.mutation.SetItemID(v)
	return _u
}

// SetNillableItemID sets the "item_id" field if the given value is not nil.
func (_u *CueEventUpdateOne) SetNillableItemID(v *string) *CueEventUpdateOne {
	if v != nil {
		_u.SetItemID(*v)
	}
	return _u
}

// SetLevel sets the "level" field.
func (_u *CueEventUpdateOne) SetLevel(v int) *CueEventUpdateOne {
	_u.mutation.ResetLevel()
	_u.mutation.SetLevel(v)
	return _u
}

// SetNillableLevel sets the "level" field if the given value is not nil.
func (_u *CueEventUpdateOne) SetNillableLevel(v *int) *CueEventUpdateOne {
	if v != nil {
		_u.SetLevel(*v)
	}
	return _u
}

// AddLevel adds value to the "level" field.
func (_u *CueEventUpdateOne) AddLevel(v int) *CueEventUpdateOne {
	_u.mutation.AddLevel(v)
	return _u
}

// SetCueText sets the "cue_text" field.
func (_u *CueEventUpdateOne) SetCueText(v string) *CueEventUpdateOne {
	_u.mutation.SetCueText(v)
	return _u
}

// SetNillableCueText sets the "cue_text" field if the given value is not nil.
func (_u *CueEventUpdateOne) SetNillableCueText(v *string) *CueEventUpdateOne {
	if v != nil {
		_u.SetCueText(*v)
	}
	return _u
}

// Mutation returns the CueEventMutation object of the builder.
func (_u *CueEventUpdateOne) Mutation() *CueEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the CueEventUpdate builder.
func (_u *CueEventUpdateOne) Where(ps ...predicate.CueEvent) *CueEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *CueEventUpdateOne) Select(field string, fields ...string) *CueEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated CueEvent entity.
func (_u *CueEventUpdateOne) Save(ctx context.Context) (*CueEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CueEventUpdateOne) SaveX(ctx context.Context) *CueEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *CueEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CueEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CueEventUpdateOne) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := cueevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "CueEvent.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ItemID(); ok {
		if err := cueevent.ItemIDValidator(v); err != nil {
			return &ValidationError{Name: "item_id", err: fmt.Errorf(`ent: validator failed for field "CueEvent.item_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Level(); ok {
		if err := cueevent.LevelValidator(v); err != nil {
			return &ValidationError{Name: "level", err: fmt.Errorf(`ent: validator failed for field "CueEvent.level": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CueText(); ok {
		if err := cueevent.CueTextValidator(v); err != nil {
			return &ValidationError{Name: "cue_text", err: fmt.Errorf(`ent: validator failed for field "CueEvent.cue_text": %w`, err)}
		}
	}
	return nil
}

func (_u *CueEventUpdateOne) sqlSave(ctx context.Context) (_node *CueEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(cueevent.Table, cueevent.Columns, sqlgraph.NewFieldSpec(cueevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "CueEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, cueevent.FieldID)
		for _, f := range fields {
			if !cueevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != cueevent.FieldID {
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
		_spec.SetField(cueevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ItemID(); ok {
		_spec.SetField(cueevent.FieldItemID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Level(); ok {
		_spec.SetField(cueevent.FieldLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLevel(); ok {
		_spec.AddField(cueevent.FieldLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CueText(); ok {
		_spec.SetField(cueevent.FieldCueText, field.TypeString, value)
	}
	_node = &CueEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{cueevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
