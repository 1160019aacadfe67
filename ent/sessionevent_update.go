// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/fweiner/parrotsoftware-treatment-sub000/ent/predicate"
	"github.com/fweiner/parrotsoftware-treatment-sub000/ent/sessionevent"
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

// SetSessionID sets the "session_id" field.
func (_u *SessionEventUpdate) SetSessionID(v string) *SessionEventUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *SessionEventUpdate) SetNillableSessionID(v *string) *SessionEventUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetAction sets the "action" field.
func (_u *SessionEventUpdate) SetAction(v string) *SessionEventUpdate {
	_u.mutation.SetAction(v)
	return _u
}

// SetNillableAction sets the "action" field if the given value is not nil.
func (_u *SessionEventUpdate) SetNillableAction(v *string) *SessionEventUpdate {
	if v != nil {
		_u.SetAction(*v)
	}
	return _u
}

// SetExercise sets the "exercise" field.
func (_u *SessionEventUpdate) SetExercise(v string) *SessionEventUpdate {
	_u.mutation.SetExercise(v)
	return _u
}

// SetNillableExercise sets the "exercise" field if the given value is not nil.
func (_u *SessionEventUpdate) SetNillableExercise(v *string) *SessionEventUpdate {
	if v != nil {
		_u.SetExercise(*v)
	}
	return _u
}

// SetItemsTotal sets the "items_total" field.
func (_u *SessionEventUpdate) SetItemsTotal(v int) *SessionEventUpdate {
	_u.mutation.ResetItemsTotal()
	_u.mutation.SetItemsTotal(v)
	return _u
}

// SetNillableItemsTotal sets the "items_total" field if the given value is not nil.
func (_u *SessionEventUpdate) SetNillableItemsTotal(v *int) *SessionEventUpdate {
	if v != nil {
		_u.SetItemsTotal(*v)
	}
	return _u
}

// AddItemsTotal adds value to the "items_total" field.
func (_u *SessionEventUpdate) AddItemsTotal(v int) *SessionEventUpdate {
	_u.mutation.AddItemsTotal(v)
	return _u
}

// SetItemsCorrect sets the "items_correct" field.
func (_u *SessionEventUpdate) SetItemsCorrect(v int) *SessionEventUpdate {
	_u.mutation.ResetItemsCorrect()
	_u.mutation.SetItemsCorrect(v)
	return _u
}

// SetNillableItemsCorrect sets the "items_correct" field if the given value is not nil.
func (_u *SessionEventUpdate) SetNillableItemsCorrect(v *int) *SessionEventUpdate {
	if v != nil {
		_u.SetItemsCorrect(*v)
	}
	return _u
}

// AddItemsCorrect adds value to the "items_correct" field.
func (_u *SessionEventUpdate) AddItemsCorrect(v int) *SessionEventUpdate {
	_u.mutation.AddItemsCorrect(v)
	return _u
}

// SetItemsPartial sets the "items_partial" field.
func (_u *SessionEventUpdate) SetItemsPartial(v int) *SessionEventUpdate {
	_u.mutation.ResetItemsPartial()
	_u.mutation.SetItemsPartial(v)
	return _u
}

// SetNillableItemsPartial sets the "items_partial" field if the given value is not nil.
func (_u *SessionEventUpdate) SetNillableItemsPartial(v *int) *SessionEventUpdate {
	if v != nil {
		_u.SetItemsPartial(*v)
	}
	return _u
}

// AddItemsPartial adds value to the "items_partial" field.
func (_u *SessionEventUpdate) AddItemsPartial(v int) *SessionEventUpdate {
	_u.mutation.AddItemsPartial(v)
	return _u
}

// SetItemsTimedOut sets the "items_timed_out" field.
func (_u *SessionEventUpdate) SetItemsTimedOut(v int) *SessionEventUpdate {
	_u.mutation.ResetItemsTimedOut()
	_u.mutation.SetItemsTimedOut(v)
	return _u
}

// SetNillableItemsTimedOut sets the "items_timed_out" field if the given value is not nil.
func (_u *SessionEventUpdate) SetNillableItemsTimedOut(v *int) *SessionEventUpdate {
	if v != nil {
		_u.SetItemsTimedOut(*v)
	}
	return _u
}

// AddItemsTimedOut adds value to the "items_timed_out" field.
func (_u *SessionEventUpdate) AddItemsTimedOut(v int) *SessionEventUpdate {
	_u.mutation.AddItemsTimedOut(v)
	return _u
}

// SetCuesUsed sets the "cues_used" field.
func (_u *SessionEventUpdate) SetCuesUsed(v int) *SessionEventUpdate {
	_u.mutation.ResetCuesUsed()
	_u.mutation.SetCuesUsed(v)
	return _u
}

// SetNillableCuesUsed sets the "cues_used" field if the given value is not nil.
func (_u *SessionEventUpdate) SetNillableCuesUsed(v *int) *SessionEventUpdate {
	if v != nil {
		_u.SetCuesUsed(*v)
	}
	return _u
}

// AddCuesUsed adds value to the "cues_used" field.
func (_u *SessionEventUpdate) AddCuesUsed(v int) *SessionEventUpdate {
	_u.mutation.AddCuesUsed(v)
	return _u
}

// SetMeanLatencyMs sets the "mean_latency_ms" field.
func (_u *SessionEventUpdate) SetMeanLatencyMs(v int64) *SessionEventUpdate {
	_u.mutation.ResetMeanLatencyMs()
	_u.mutation.SetMeanLatencyMs(v)
	return _u
}

// SetNillableMeanLatencyMs sets the "mean_latency_ms" field if the given value is not nil.
func (_u *SessionEventUpdate) SetNillableMeanLatencyMs(v *int64) *SessionEventUpdate {
	if v != nil {
		_u.SetMeanLatencyMs(*v)
	}
	return _u
}

// AddMeanLatencyMs adds value to the "mean_latency_ms" field.
func (_u *SessionEventUpdate) AddMeanLatencyMs(v int64) *SessionEventUpdate {
	_u.mutation.AddMeanLatencyMs(v)
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
	if v, ok := _u.mutation.SessionID(); ok {
		if err := sessionevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "SessionEvent.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Action(); ok {
		if err := sessionevent.ActionValidator(v); err != nil {
			return &ValidationError{Name: "action", err: fmt.Errorf(`ent: validator failed for field "SessionEvent.action": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Exercise(); ok {
		if err := sessionevent.ExerciseValidator(v); err != nil {
			return &ValidationError{Name: "exercise", err: fmt.Errorf(`ent: validator failed for field "SessionEvent.exercise": %w`, err)}
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
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(sessionevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Action(); ok {
		_spec.SetField(sessionevent.FieldAction, field.TypeString, value)
	}
	if value, ok := _u.mutation.Exercise(); ok {
		_spec.SetField(sessionevent.FieldExercise, field.TypeString, value)
	}
	if value, ok := _u.mutation.ItemsTotal(); ok {
		_spec.SetField(sessionevent.FieldItemsTotal, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedItemsTotal(); ok {
		_spec.AddField(sessionevent.FieldItemsTotal, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ItemsCorrect(); ok {
		_spec.SetField(sessionevent.FieldItemsCorrect, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedItemsCorrect(); ok {
		_spec.AddField(sessionevent.FieldItemsCorrect, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ItemsPartial(); ok {
		_spec.SetField(sessionevent.FieldItemsPartial, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedItemsPartial(); ok {
		_spec.AddField(sessionevent.FieldItemsPartial, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ItemsTimedOut(); ok {
		_spec.SetField(sessionevent.FieldItemsTimedOut, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedItemsTimedOut(); ok {
		_spec.AddField(sessionevent.FieldItemsTimedOut, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CuesUsed(); ok {
		_spec.SetField(sessionevent.FieldCuesUsed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCuesUsed(); ok {
		_spec.AddField(sessionevent.FieldCuesUsed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.MeanLatencyMs(); ok {
		_spec.SetField(sessionevent.FieldMeanLatencyMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedMeanLatencyMs(); ok {
		_spec.AddField(sessionevent.FieldMeanLatencyMs, field.TypeInt64, value)
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

// SetSessionID sets the "session_id" field.
func (_u *SessionEventUpdateOne) SetSessionID(v string) *SessionEventUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *SessionEventUpdateOne) SetNillableSessionID(v *string) *SessionEventUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetAction sets the "action" field.
func (_u *SessionEventUpdateOne) SetAction(v string) *SessionEventUpdateOne {
	_u.mutation.SetAction(v)
	return _u
}

// SetNillableAction sets the "action" field if the given value is not nil.
func (_u *SessionEventUpdateOne) SetNillableAction(v *string) *SessionEventUpdateOne {
	if v != nil {
		_u.SetAction(*v)
	}
	return _u
}

// SetExercise sets the "exercise" field.
func (_u *SessionEventUpdateOne) SetExercise(v string) *SessionEventUpdateOne {
	_u.mutation.SetExercise(v)
	return _u
}

// SetNillableExercise sets the "exercise" field if the given value is not nil.
func (_u *SessionEventUpdateOne) SetNillableExercise(v *string) *SessionEventUpdateOne {
	if v != nil {
		_u.SetExercise(*v)
	}
	return _u
}

// SetItemsTotal sets the "items_total" field.
func (_u *SessionEventUpdateOne) SetItemsTotal(v int) *SessionEventUpdateOne {
	_u.mutation.ResetItemsTotal()
	_u.mutation.SetItemsTotal(v)
	return _u
}

// SetNillableItemsTotal sets the "items_total" field if the given value is not nil.
func (_u *SessionEventUpdateOne) SetNillableItemsTotal(v *int) *SessionEventUpdateOne {
	if v != nil {
		_u.SetItemsTotal(*v)
	}
	return _u
}

// AddItemsTotal adds value to the "items_total" field.
func (_u *SessionEventUpdateOne) AddItemsTotal(v int) *SessionEventUpdateOne {
	_u.mutation.AddItemsTotal(v)
	return _u
}

// SetItemsCorrect sets the "items_correct" field.
func (_u *SessionEventUpdateOne) SetItemsCorrect(v int) *SessionEventUpdateOne {
	_u.mutation.ResetItemsCorrect()
	_u.mutation.SetItemsCorrect(v)
	return _u
}

// SetNillableItemsCorrect sets the "items_correct" field if the given value is not nil.
func (_u *SessionEventUpdateOne) SetNillableItemsCorrect(v *int) *SessionEventUpdateOne {
	if v != nil {
		_u.SetItemsCorrect(*v)
	}
	return _u
}

// AddItemsCorrect adds value to the "items_correct" field.
func (_u *SessionEventUpdateOne) AddItemsCorrect(v int) *SessionEventUpdateOne {
	_u.mutation.AddItemsCorrect(v)
	return _u
}

// SetItemsPartial sets the "items_partial" field.
func (_u *SessionEventUpdateOne) SetItemsPartial(v int) *SessionEventUpdateOne {
	_u.mutation.ResetItemsPartial()
	_u.mutation.SetItemsPartial(v)
	return _u
}

// SetNillableItemsPartial sets the "items_partial" field if the given value is not nil.
func (_u *SessionEventUpdateOne) SetNillableItemsPartial(v *int) *SessionEventUpdateOne {
	if v != nil {
		_u.SetItemsPartial(*v)
	}
	return _u
}

// AddItemsPartial adds value to the "items_partial" field.
func (_u *SessionEventUpdateOne) AddItemsPartial(v int) *SessionEventUpdateOne {
	_u.mutation.AddItemsPartial(v)
	return _u
}

// SetItemsTimedOut sets the "items_timed_out" field.
func (_u *SessionEventUpdateOne) SetItemsTimedOut(v int) *SessionEventUpdateOne {
	_u.mutation.ResetItemsTimedOut()
	_u.mutation.SetItemsTimedOut(v)
	return _u
}

// SetNillableItemsTimedOut sets the "items_timed_out" field if the given value is not nil.
func (_u *SessionEventUpdateOne) SetNillableItemsTimedOut(v *int) *SessionEventUpdateOne {
	if v != nil {
		_u.SetItemsTimedOut(*v)
	}
	return _u
}

// AddItemsTimedOut adds value to the "items_timed_out" field.
func (_u *SessionEventUpdateOne) AddItemsTimedOut(v int) *SessionEventUpdateOne {
	_u.mutation.AddItemsTimedOut(v)
	return _u
}

// SetCuesUsed sets the "cues_used" field.
func (_u *SessionEventUpdateOne) SetCuesUsed(v int) *SessionEventUpdateOne {
	_u.mutation.ResetCuesUsed()
	_u.mutation.SetCuesUsed(v)
	return _u
}

// SetNillableCuesUsed sets the "cues_used" field if the given value is not nil.
func (_u *SessionEventUpdateOne) SetNillableCuesUsed(v *int) *SessionEventUpdateOne {
	if v != nil {
		_u.SetCuesUsed(*v)
	}
	return _u
}

// AddCuesUsed adds value to the "cues_used" field.
func (_u *SessionEventUpdateOne) AddCuesUsed(v int) *SessionEventUpdateOne {
	_u.mutation.AddCuesUsed(v)
	return _u
}

// SetMeanLatencyMs sets the "mean_latency_ms" field.
func (_u *SessionEventUpdateOne) SetMeanLatencyMs(v int64) *SessionEventUpdateOne {
	_u.mutation.ResetMeanLatencyMs()
	_u.mutation.SetMeanLatencyMs(v)
	return _u
}

// SetNillableMeanLatencyMs sets the "mean_latency_ms" field if the given value is not nil.
func (_u *SessionEventUpdateOne) SetNillableMeanLatencyMs(v *int64) *SessionEventUpdateOne {
	if v != nil {
		_u.SetMeanLatencyMs(*v)
	}
	return _u
}

// AddMeanLatencyMs adds value to the "mean_latency_ms" field.
func (_u *SessionEventUpdateOne) AddMeanLatencyMs(v int64) *SessionEventUpdateOne {
	_u.mutation.AddMeanLatencyMs(v)
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
	if v, ok := _u.mutation.SessionID(); ok {
		if err := sessionevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "SessionEvent.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Action(); ok {
		if err := sessionevent.ActionValidator(v); err != nil {
			return &ValidationError{Name: "action", err: fmt.Errorf(`ent: validator failed for field "SessionEvent.action": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Exercise(); ok {
		if err := sessionevent.ExerciseValidator(v); err != nil {
			return &ValidationError{Name: "exercise", err: fmt.Errorf(`ent: validator failed for field "SessionEvent.exercise": %w`, err)}
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
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(sessionevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Action(); ok {
		_spec.SetField(sessionevent.FieldAction, field.TypeString, value)
	}
	if value, ok := _u.mutation.Exercise(); ok {
		_spec.SetField(sessionevent.FieldExercise, field.TypeString, value)
	}
	if value, ok := _u.mutation.ItemsTotal(); ok {
		_spec.SetField(sessionevent.FieldItemsTotal, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedItemsTotal(); ok {
		_spec.AddField(sessionevent.FieldItemsTotal, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ItemsCorrect(); ok {
		_spec.SetField(sessionevent.FieldItemsCorrect, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedItemsCorrect(); ok {
		_spec.AddField(sessionevent.FieldItemsCorrect, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ItemsPartial(); ok {
		_spec.SetField(sessionevent.FieldItemsPartial, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedItemsPartial(); ok {
		_spec.AddField(sessionevent.FieldItemsPartial, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ItemsTimedOut(); ok {
		_spec.SetField(sessionevent.FieldItemsTimedOut, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedItemsTimedOut(); ok {
		_spec.AddField(sessionevent.FieldItemsTimedOut, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CuesUsed(); ok {
		_spec.SetField(sessionevent.FieldCuesUsed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCuesUsed(); ok {
		_spec.AddField(sessionevent.FieldCuesUsed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.MeanLatencyMs(); ok {
		_spec.SetField(sessionevent.FieldMeanLatencyMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedMeanLatencyMs(); ok {
		_spec.AddField(sessionevent.FieldMeanLatencyMs, field.TypeInt64, value)
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
