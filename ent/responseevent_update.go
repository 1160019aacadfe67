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
	"github.com/fweiner/parrotsoftware-treatment-sub000/ent/responseevent"
)

// ResponseEventUpdate is the builder for updating ResponseEvent entities.
type ResponseEventUpdate struct {
	config
	hooks    []Hook
	mutation *ResponseEventMutation
}

// Where appends a list predicates to the ResponseEventUpdate builder.
func (_u *ResponseEventUpdate) Where(ps ...predicate.ResponseEvent) *ResponseEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *ResponseEventUpdate) SetSessionID(v string) *ResponseEventUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *ResponseEventUpdate) SetNillableSessionID(v *string) *ResponseEventUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetExercise sets the "exercise" field.
func (_u *ResponseEventUpdate) SetExercise(v string) *ResponseEventUpdate {
	_u.mutation.SetExercise(v)
	return _u
}

// SetNillableExercise sets the "exercise" field if the given value is not nil.
func (_u *ResponseEventUpdate) SetNillableExercise(v *string) *ResponseEventUpdate {
	if v != nil {
		_u.SetExercise(*v)
	}
	return _u
}

// SetItemID sets the "item_id" field.
func (_u *ResponseEventUpdate) SetItemID(v string) *ResponseEventUpdate {
	_u.mutation.SetItemID(v)
	return _u
}

// SetNillableItemID sets the "item_id" field if the given value is not nil.
func (_u *ResponseEventUpdate) SetNillableItemID(v *string) *ResponseEventUpdate {
	if v != nil {
		_u.SetItemID(*v)
	}
	return _u
}

// SetExpectedAnswer sets the "expected_answer" field.
func (_u *ResponseEventUpdate) SetExpectedAnswer(v string) *ResponseEventUpdate {
	_u.mutation.SetExpectedAnswer(v)
	return _u
}

// SetNillableExpectedAnswer sets the "expected_answer" field if the given value is not nil.
func (_u *ResponseEventUpdate) SetNillableExpectedAnswer(v *string) *ResponseEventUpdate {
	if v != nil {
		_u.SetExpectedAnswer(*v)
	}
	return _u
}

// SetAnswer sets the "answer" field.
func (_u *ResponseEventUpdate) SetAnswer(v string) *ResponseEventUpdate {
	_u.mutation.SetAnswer(v)
	return _u
}

// SetNillableAnswer sets the "answer" field if the given value is not nil.
func (_u *ResponseEventUpdate) SetNillableAnswer(v *string) *ResponseEventUpdate {
	if v != nil {
		_u.SetAnswer(*v)
	}
	return _u
}

// SetCorrect sets the "correct" field.
func (_u *ResponseEventUpdate) SetCorrect(v bool) *ResponseEventUpdate {
	_u.mutation.SetCorrect(v)
	return _u
}

// SetNillableCorrect sets the "correct" field if the given value is not nil.
func (_u *ResponseEventUpdate) SetNillableCorrect(v *bool) *ResponseEventUpdate {
	if v != nil {
		_u.SetCorrect(*v)
	}
	return _u
}

// SetPartial sets the "partial" field.
func (_u *ResponseEventUpdate) SetPartial(v bool) *ResponseEventUpdate {
	_u.mutation.SetPartial(v)
	return _u
}

// SetNillablePartial sets the "partial" field if the given value is not nil.
func (_u *ResponseEventUpdate) SetNillablePartial(v *bool) *ResponseEventUpdate {
	if v != nil {
		_u.SetPartial(*v)
	}
	return _u
}

// SetScore sets the "score" field.
func (_u *ResponseEventUpdate) SetScore(v float64) *ResponseEventUpdate {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *ResponseEventUpdate) SetNillableScore(v *float64) *ResponseEventUpdate {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *ResponseEventUpdate) AddScore(v float64) *ResponseEventUpdate {
	_u.mutation.AddScore(v)
	return _u
}

// SetCuesUsed sets the "cues_used" field.
func (_u *ResponseEventUpdate) SetCuesUsed(v int) *ResponseEventUpdate {
	_u.mutation.ResetCuesUsed()
	_u.mutation.SetCuesUsed(v)
	return _u
}

// SetNillableCuesUsed sets the "cues_used" field if the given value is not nil.
func (_u *ResponseEventUpdate) SetNillableCuesUsed(v *int) *ResponseEventUpdate {
	if v != nil {
		_u.SetCuesUsed(*v)
	}
	return _u
}

// AddCuesUsed adds value to the "cues_used" field.
func (_u *ResponseEventUpdate) AddCuesUsed(v int) *ResponseEventUpdate {
	_u.mutation.AddCuesUsed(v)
	return _u
}

// SetTimedOut sets the "timed_out" field.
func (_u *ResponseEventUpdate) SetTimedOut(v bool) *ResponseEventUpdate {
	_u.mutation.SetTimedOut(v)
	return _u
}

// SetNillableTimedOut sets the "timed_out" field if the given value is not nil.
func (_u *ResponseEventUpdate) SetNillableTimedOut(v *bool) *ResponseEventUpdate {
	if v != nil {
		_u.SetTimedOut(*v)
	}
	return _u
}

// SetLatencyMs sets the "latency_ms" field.
func (_u *ResponseEventUpdate) SetLatencyMs(v int64) *ResponseEventUpdate {
	_u.mutation.ResetLatencyMs()
	_u.mutation.SetLatencyMs(v)
	return _u
}

// SetNillableLatencyMs sets the "latency_ms" field if the given value is not nil.
func (_u *ResponseEventUpdate) SetNillableLatencyMs(v *int64) *ResponseEventUpdate {
	if v != nil {
		_u.SetLatencyMs(*v)
	}
	return _u
}

// AddLatencyMs adds value to the "latency_ms" field.
func (_u *ResponseEventUpdate) AddLatencyMs(v int64) *ResponseEventUpdate {
	_u.mutation.AddLatencyMs(v)
	return _u
}

// Mutation returns the ResponseEventMutation object of the builder.
func (_u *ResponseEventUpdate) Mutation() *ResponseEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ResponseEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ResponseEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ResponseEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ResponseEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ResponseEventUpdate) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := responseevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "ResponseEvent.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Exercise(); ok {
		if err := responseevent.ExerciseValidator(v); err != nil {
			return &ValidationError{Name: "exercise", err: fmt.Errorf(`ent: validator failed for field "ResponseEvent.exercise": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ItemID(); ok {
		if err := responseevent.ItemIDValidator(v); err != nil {
			return &ValidationError{Name: "item_id", err: fmt.Errorf(`ent: validator failed for field "ResponseEvent.item_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ExpectedAnswer(); ok {
		if err := responseevent.ExpectedAnswerValidator(v); err != nil {
			return &ValidationError{Name: "expected_answer", err: fmt.Errorf(`ent: validator failed for field "ResponseEvent.expected_answer": %w`, err)}
		}
	}
	return nil
}

func (_u *ResponseEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(responseevent.Table, responseevent.Columns, sqlgraph.NewFieldSpec(responseevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(responseevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Exercise(); ok {
		_spec.SetField(responseevent.FieldExercise, field.TypeString, value)
	}
	if value, ok := _u.mutation.ItemID(); ok {
		_spec.SetField(responseevent.FieldItemID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ExpectedAnswer(); ok {
		_spec.SetField(responseevent.FieldExpectedAnswer, field.TypeString, value)
	}
	if value, ok := _u.mutation.Answer(); ok {
		_spec.SetField(responseevent.FieldAnswer, field.TypeString, value)
	}
	if value, ok := _u.mutation.Correct(); ok {
		_spec.SetField(responseevent.FieldCorrect, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Partial(); ok {
		_spec.SetField(responseevent.FieldPartial, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(responseevent.FieldScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(responseevent.FieldScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.CuesUsed(); ok {
		_spec.SetField(responseevent.FieldCuesUsed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCuesUsed(); ok {
		_spec.AddField(responseevent.FieldCuesUsed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TimedOut(); ok {
		_spec.SetField(responseevent.FieldTimedOut, field.TypeBool, value)
	}
	if value, ok := _u.mutation.LatencyMs(); ok {
		_spec.SetField(responseevent.FieldLatencyMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedLatencyMs(); ok {
		_spec.AddField(responseevent.FieldLatencyMs, field.TypeInt64, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{responseevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ResponseEventUpdateOne is the builder for updating a single ResponseEvent entity.
type ResponseEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ResponseEventMutation
}

// SetSessionID sets the "session_id" field.
func (_u *ResponseEventUpdateOne) SetSessionID(v string) *ResponseEventUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *ResponseEventUpdateOne) SetNillableSessionID(v *string) *ResponseEventUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetExercise sets the "exercise" field.
func (_u *ResponseEventUpdateOne) SetExercise(v string) *ResponseEventUpdateOne {
	_u.mutation.SetExercise(v)
	return _u
}

// SetNillableExercise sets the "exercise" field if the given value is not nil.
func (_u *ResponseEventUpdateOne) SetNillableExercise(v *string) *ResponseEventUpdateOne {
	if v != nil {
		_u.SetExercise(*v)
	}
	return _u
}

// SetItemID sets the "item_id" field.
func (_u *ResponseEventUpdateOne) SetItemID(v string) *ResponseEventUpdateOne {
	_u.mutation.SetItemID(v)
	return _u
}

// SetNillableItemID sets the "item_id" field if the given value is not nil.
func (_u *ResponseEventUpdateOne) SetNillableItemID(v *string) *ResponseEventUpdateOne {
	if v != nil {
		_u.SetItemID(*v)
	}
	return _u
}

// SetExpectedAnswer sets the "expected_answer" field.
func (_u *ResponseEventUpdateOne) SetExpectedAnswer(v string) *ResponseEventUpdateOne {
	_u.mutation.SetExpectedAnswer(v)
	return _u
}

// SetNillableExpectedAnswer sets the "expected_answer" field if the given value is not nil.
func (_u *ResponseEventUpdateOne) SetNillableExpectedAnswer(v *string) *ResponseEventUpdateOne {
	if v != nil {
		_u.SetExpectedAnswer(*v)
	}
	return _u
}

// SetAnswer sets the "answer" field.
func (_u *ResponseEventUpdateOne) SetAnswer(v string) *ResponseEventUpdateOne {
	_u.mutation.SetAnswer(v)
	return _u
}

// SetNillableAnswer sets the "answer" field if the given value is not nil.
func (_u *ResponseEventUpdateOne) SetNillableAnswer(v *string) *ResponseEventUpdateOne {
	if v != nil {
		_u.SetAnswer(*v)
	}
	return _u
}

// SetCorrect sets the "correct" field.
func (_u *ResponseEventUpdateOne) SetCorrect(v bool) *ResponseEventUpdateOne {
	_u.mutation.SetCorrect(v)
	return _u
}

// SetNillableCorrect sets the "correct" field if the given value is not nil.
func (_u *ResponseEventUpdateOne) SetNillableCorrect(v *bool) *ResponseEventUpdateOne {
	if v != nil {
		_u.SetCorrect(*v)
	}
	return _u
}

// SetPartial sets the "partial" field.
func (_u *ResponseEventUpdateOne) SetPartial(v bool) *ResponseEventUpdateOne {
	_u.mutation.SetPartial(v)
	return _u
}

// SetNillablePartial sets the "partial" field if the given value is not nil.
func (_u *ResponseEventUpdateOne) SetNillablePartial(v *bool) *ResponseEventUpdateOne {
	if v != nil {
		_u.SetPartial(*v)
	}
	return _u
}

// SetScore sets the "score" field.
func (_u *ResponseEventUpdateOne) SetScore(v float64) *ResponseEventUpdateOne {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *ResponseEventUpdateOne) SetNillableScore(v *float64) *ResponseEventUpdateOne {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *ResponseEventUpdateOne) AddScore(v float64) *ResponseEventUpdateOne {
	_u.mutation.AddScore(v)
	return _u
}

// SetCuesUsed sets the "cues_used" field.
func (_u *ResponseEventUpdateOne) SetCuesUsed(v int) *ResponseEventUpdateOne {
	_u.mutation.ResetCuesUsed()
	_u.mutation.SetCuesUsed(v)
	return _u
}

// SetNillableCuesUsed sets the "cues_used" field if the given value is not nil.
func (_u *ResponseEventUpdateOne) SetNillableCuesUsed(v *int) *ResponseEventUpdateOne {
	if v != nil {
		_u.SetCuesUsed(*v)
	}
	return _u
}

// AddCuesUsed adds value to the "cues_used" field.
func (_u *ResponseEventUpdateOne) AddCuesUsed(v int) *ResponseEventUpdateOne {
	_u.mutation.AddCuesUsed(v)
	return _u
}

// SetTimedOut sets the "timed_out" field.
func (_u *ResponseEventUpdateOne) SetTimedOut(v bool) *ResponseEventUpdateOne {
	_u.mutation.SetTimedOut(v)
	return _u
}

// SetNillableTimedOut sets the "timed_out" field if the given value is not nil.
func (_u *ResponseEventUpdateOne) SetNillableTimedOut(v *bool) *ResponseEventUpdateOne {
	if v != nil {
		_u.SetTimedOut(*v)
	}
	return _u
}

// SetLatencyMs sets the "latency_ms" field.
func (_u *ResponseEventUpdateOne) SetLatencyMs(v int64) *ResponseEventUpdateOne {
	_u.mutation.ResetLatencyMs()
	_u.mutation.SetLatencyMs(v)
	return _u
}

// SetNillableLatencyMs sets the "latency_ms" field if the given value is not nil.
func (_u *ResponseEventUpdateOne) SetNillableLatencyMs(v *int64) *ResponseEventUpdateOne {
	if v != nil {
		_u.SetLatencyMs(*v)
	}
	return _u
}

// AddLatencyMs adds value to the "latency_ms" field.
func (_u *ResponseEventUpdateOne) AddLatencyMs(v int64) *ResponseEventUpdateOne {
	_u.mutation.AddLatencyMs(v)
	return _u
}

// Mutation returns the ResponseEventMutation object of the builder.
func (_u *ResponseEventUpdateOne) Mutation() *ResponseEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the ResponseEventUpdate builder.
func (_u *ResponseEventUpdateOne) Where(ps ...predicate.ResponseEvent) *ResponseEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ResponseEventUpdateOne) Select(field string, fields ...string) *ResponseEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ResponseEvent entity.
func (_u *ResponseEventUpdateOne) Save(ctx context.Context) (*ResponseEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ResponseEventUpdateOne) SaveX(ctx context.Context) *ResponseEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ResponseEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ResponseEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ResponseEventUpdateOne) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := responseevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "ResponseEvent.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Exercise(); ok {
		if err := responseevent.ExerciseValidator(v); err != nil {
			return &ValidationError{Name: "exercise", err: fmt.Errorf(`ent: validator failed for field "ResponseEvent.exercise": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ItemID(); ok {
		if err := responseevent.ItemIDValidator(v); err != nil {
			return &ValidationError{Name: "item_id", err: fmt.Errorf(`ent: validator failed for field "ResponseEvent.item_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ExpectedAnswer(); ok {
		if err := responseevent.ExpectedAnswerValidator(v); err != nil {
			return &ValidationError{Name: "expected_answer", err: fmt.Errorf(`ent: validator failed for field "ResponseEvent.expected_answer": %w`, err)}
		}
	}
	return nil
}

func (_u *ResponseEventUpdateOne) sqlSave(ctx context.Context) (_node *ResponseEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(responseevent.Table, responseevent.Columns, sqlgraph.NewFieldSpec(responseevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ResponseEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, responseevent.FieldID)
		for _, f := range fields {
			if !responseevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != responseevent.FieldID {
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
		_spec.SetField(responseevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Exercise(); ok {
		_spec.SetField(responseevent.FieldExercise, field.TypeString, value)
	}
	if value, ok := _u.mutation.ItemID(); ok {
		_spec.SetField(responseevent.FieldItemID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ExpectedAnswer(); ok {
		_spec.SetField(responseevent.FieldExpectedAnswer, field.TypeString, value)
	}
	if value, ok := _u.mutation.Answer(); ok {
		_spec.SetField(responseevent.FieldAnswer, field.TypeString, value)
	}
	if value, ok := _u.mutation.Correct(); ok {
		_spec.SetField(responseevent.FieldCorrect, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Partial(); ok {
		_spec.SetField(responseevent.FieldPartial, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(responseevent.FieldScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(responseevent.FieldScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.CuesUsed(); ok {
		_spec.SetField(responseevent.FieldCuesUsed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCuesUsed(); ok {
		_spec.AddField(responseevent.FieldCuesUsed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TimedOut(); ok {
		_spec.SetField(responseevent.FieldTimedOut, field.TypeBool, value)
	}
	if value, ok := _u.mutation.LatencyMs(); ok {
		_spec.SetField(responseevent.FieldLatencyMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedLatencyMs(); ok {
		_spec.AddField(responseevent.FieldLatencyMs, field.TypeInt64, value)
	}
	_node = &ResponseEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{responseevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
