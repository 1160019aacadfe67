// Code generated by ent, DO NOT EDIT.

package sessionevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/fweiner/parrotsoftware-treatment-sub000/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldEQ(FieldTimestamp, v))
}

// SessionID applies equality check predicate on the "session_id" field. It's identical to SessionIDEQ.
func SessionID(v string) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldEQ(FieldSessionID, v))
}

// Action applies equality check predicate on the "action" field. It's identical to ActionEQ.
func Action(v string) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldEQ(FieldAction, v))
}

// Exercise applies equality check predicate on the "exercise" field. It's identical to ExerciseEQ.
func Exercise(v string) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldEQ(FieldExercise, v))
}

// ItemsTotal applies equality check predicate on the "items_total" field. It's identical to ItemsTotalEQ.
func ItemsTotal(v int) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldEQ(FieldItemsTotal, v))
}

// ItemsCorrect applies equality check predicate on the "items_correct" field. It's identical to ItemsCorrectEQ.
func ItemsCorrect(v int) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldEQ(FieldItemsCorrect, v))
}

// ItemsPartial applies equality check predicate on the "items_partial" field. It's identical to ItemsPartialEQ.
func ItemsPartial(v int) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldEQ(FieldItemsPartial, v))
}

// ItemsTimedOut applies equality check predicate on the "items_timed_out" field. It's identical to ItemsTimedOutEQ.
func ItemsTimedOut(v int) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldEQ(FieldItemsTimedOut, v))
}

// CuesUsed applies equality check predicate on the "cues_used" field. It's identical to CuesUsedEQ.
func CuesUsed(v int) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldEQ(FieldCuesUsed, v))
}

// MeanLatencyMs applies equality check predicate on the "mean_latency_ms" field. It's identical to MeanLatencyMsEQ.
func MeanLatencyMs(v int64) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldEQ(FieldMeanLatencyMs, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldLTE(FieldTimestamp, v))
}

// SessionIDEQ applies the EQ predicate on the "session_id" field.
func SessionIDEQ(v string) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldEQ(FieldSessionID, v))
}

// SessionIDNEQ applies the NEQ predicate on the "session_id" field.
func SessionIDNEQ(v string) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldNEQ(FieldSessionID, v))
}

// SessionIDIn applies the In predicate on the "session_id" field.
func SessionIDIn(vs ...string) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldIn(FieldSessionID, vs...))
}

// SessionIDNotIn applies the NotIn predicate on the "session_id" field.
func SessionIDNotIn(vs ...string) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldNotIn(FieldSessionID, vs...))
}

// SessionIDGT applies the GT predicate on the "session_id" field.
func SessionIDGT(v string) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldGT(FieldSessionID, v))
}

// SessionIDGTE applies the GTE predicate on the "session_id" field.
func SessionIDGTE(v string) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldGTE(FieldSessionID, v))
}

// SessionIDLT applies the LT predicate on the "session_id" field.
func SessionIDLT(v string) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldLT(FieldSessionID, v))
}

// SessionIDLTE applies the LTE predicate on the "session_id" field.
func SessionIDLTE(v string) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldLTE(FieldSessionID, v))
}

// SessionIDContains applies the Contains predicate on the "session_id" field.
func SessionIDContains(v string) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldContains(FieldSessionID, v))
}

// SessionIDHasPrefix applies the HasPrefix predicate on the "session_id" field.
func SessionIDHasPrefix(v string) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldHasPrefix(FieldSessionID, v))
}

// SessionIDHasSuffix applies the HasSuffix predicate on the "session_id" field.
func SessionIDHasSuffix(v string) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldHasSuffix(FieldSessionID, v))
}

// SessionIDEqualFold applies the EqualFold predicate on the "session_id" field.
func SessionIDEqualFold(v string) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldEqualFold(FieldSessionID, v))
}

// SessionIDContainsFold applies the ContainsFold predicate on the "session_id" field.
func SessionIDContainsFold(v string) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldContainsFold(FieldSessionID, v))
}

// ActionEQ applies the EQ predicate on the "action" field.
func ActionEQ(v string) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldEQ(FieldAction, v))
}

// ActionNEQ applies the NEQ predicate on the "action" field.
func ActionNEQ(v string) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldNEQ(FieldAction, v))
}

// ActionIn applies the In predicate on the "action" field.
func ActionIn(vs ...string) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldIn(FieldAction, vs...))
}

// ActionNotIn applies the NotIn predicate on the "action" field.
func ActionNotIn(vs ...string) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldNotIn(FieldAction, vs...))
}

// ActionGT applies the GT predicate on the "action" field.
func ActionGT(v string) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldGT(FieldAction, v))
}

// ActionGTE applies the GTE predicate on the "action" field.
func ActionGTE(v string) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldGTE(FieldAction, v))
}

// ActionLT applies the LT predicate on the "action" field.
func ActionLT(v string) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldLT(FieldAction, v))
}

// ActionLTE applies the LTE predicate on the "action" field.
func ActionLTE(v string) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldLTE(FieldAction, v))
}

// ActionContains applies the Contains predicate on the "action" field.
func ActionContains(v string) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldContains(FieldAction, v))
}

// ActionHasPrefix applies the HasPrefix predicate on the "action" field.
func ActionHasPrefix(v string) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldHasPrefix(FieldAction, v))
}

// ActionHasSuffix applies the HasSuffix predicate on the "action" field.
func ActionHasSuffix(v string) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldHasSuffix(FieldAction, v))
}

// ActionEqualFold applies the EqualFold predicate on the "action" field.
func ActionEqualFold(v string) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldEqualFold(FieldAction, v))
}

// ActionContainsFold applies the ContainsFold predicate on the "action" field.
func ActionContainsFold(v string) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldContainsFold(FieldAction, v))
}

// ExerciseEQ applies the EQ predicate on the "exercise" field.
func ExerciseEQ(v string) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldEQ(FieldExercise, v))
}

// ExerciseNEQ applies the NEQ predicate on the "exercise" field.
func ExerciseNEQ(v string) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldNEQ(FieldExercise, v))
}

// ExerciseIn applies the In predicate on the "exercise" field.
func ExerciseIn(vs ...string) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldIn(FieldExercise, vs...))
}

// ExerciseNotIn applies the NotIn predicate on the "exercise" field.
func ExerciseNotIn(vs ...string) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldNotIn(FieldExercise, vs...))
}

// ExerciseGT applies the GT predicate on the "exercise" field.
func ExerciseGT(v string) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldGT(FieldExercise, v))
}

// ExerciseGTE applies the GTE predicate on the "exercise" field.
func ExerciseGTE(v string) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldGTE(FieldExercise, v))
}

// ExerciseLT applies the LT predicate on the "exercise" field.
func ExerciseLT(v string) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldLT(FieldExercise, v))
}

// ExerciseLTE applies the LTE predicate on the "exercise" field.
func ExerciseLTE(v string) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldLTE(FieldExercise, v))
}

// ExerciseContains applies the Contains predicate on the "exercise" field.
func ExerciseContains(v string) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldContains(FieldExercise, v))
}

// ExerciseHasPrefix applies the HasPrefix predicate on the "exercise" field.
func ExerciseHasPrefix(v string) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldHasPrefix(FieldExercise, v))
}

// ExerciseHasSuffix applies the HasSuffix predicate on the "exercise" field.
func ExerciseHasSuffix(v string) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldHasSuffix(FieldExercise, v))
}

// ExerciseEqualFold applies the EqualFold predicate on the "exercise" field.
func ExerciseEqualFold(v string) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldEqualFold(FieldExercise, v))
}

// ExerciseContainsFold applies the ContainsFold predicate on the "exercise" field.
func ExerciseContainsFold(v string) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldContainsFold(FieldExercise, v))
}

// ItemsTotalEQ applies the EQ predicate on the "items_total" field.
func ItemsTotalEQ(v int) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldEQ(FieldItemsTotal, v))
}

// ItemsTotalNEQ applies the NEQ predicate on the "items_total" field.
func ItemsTotalNEQ(v int) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldNEQ(FieldItemsTotal, v))
}

// ItemsTotalIn applies the In predicate on the "items_total" field.
func ItemsTotalIn(vs ...int) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldIn(FieldItemsTotal, vs...))
}

// ItemsTotalNotIn applies the NotIn predicate on the "items_total" field.
func ItemsTotalNotIn(vs ...int) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldNotIn(FieldItemsTotal, vs...))
}

// ItemsTotalGT applies the GT predicate on the "items_total" field.
func ItemsTotalGT(v int) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldGT(FieldItemsTotal, v))
}

// ItemsTotalGTE applies the GTE predicate on the "items_total" field.
func ItemsTotalGTE(v int) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldGTE(FieldItemsTotal, v))
}

// ItemsTotalLT applies the LT predicate on the "items_total" field.
func ItemsTotalLT(v int) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldLT(FieldItemsTotal, v))
}

// ItemsTotalLTE applies the LTE predicate on the "items_total" field.
func ItemsTotalLTE(v int) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldLTE(FieldItemsTotal, v))
}

// ItemsCorrectEQ applies the EQ predicate on the "items_correct" field.
func ItemsCorrectEQ(v int) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldEQ(FieldItemsCorrect, v))
}

// ItemsCorrectNEQ applies the NEQ predicate on the "items_correct" field.
func ItemsCorrectNEQ(v int) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldNEQ(FieldItemsCorrect, v))
}

// ItemsCorrectIn applies the In predicate on the "items_correct" field.
func ItemsCorrectIn(vs ...int) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldIn(FieldItemsCorrect, vs...))
}

// ItemsCorrectNotIn applies the NotIn predicate on the "items_correct" field.
func ItemsCorrectNotIn(vs ...int) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldNotIn(FieldItemsCorrect, vs...))
}

// ItemsCorrectGT applies the GT predicate on the "items_correct" field.
func ItemsCorrectGT(v int) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldGT(FieldItemsCorrect, v))
}

// ItemsCorrectGTE applies the GTE predicate on the "items_correct" field.
func ItemsCorrectGTE(v int) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldGTE(FieldItemsCorrect, v))
}

// ItemsCorrectLT applies the LT predicate on the "items_correct" field.
func ItemsCorrectLT(v int) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldLT(FieldItemsCorrect, v))
}

// ItemsCorrectLTE applies the LTE predicate on the "items_correct" field.
func ItemsCorrectLTE(v int) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldLTE(FieldItemsCorrect, v))
}

// ItemsPartialEQ applies the EQ predicate on the "items_partial" field.
func ItemsPartialEQ(v int) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldEQ(FieldItemsPartial, v))
}

// ItemsPartialNEQ applies the NEQ predicate on the "items_partial" field.
func ItemsPartialNEQ(v int) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldNEQ(FieldItemsPartial, v))
}

// ItemsPartialIn applies the In predicate on the "items_partial" field.
func ItemsPartialIn(vs ...int) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldIn(FieldItemsPartial, vs...))
}

// ItemsPartialNotIn applies the NotIn predicate on the "items_partial" field.
func ItemsPartialNotIn(vs ...int) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldNotIn(FieldItemsPartial, vs...))
}

// ItemsPartialGT applies the GT predicate on the "items_partial" field.
func ItemsPartialGT(v int) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldGT(FieldItemsPartial, v))
}

// ItemsPartialGTE applies the GTE predicate on the "items_partial" field.
func ItemsPartialGTE(v int) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldGTE(FieldItemsPartial, v))
}

// ItemsPartialLT applies the LT predicate on the "items_partial" field.
func ItemsPartialLT(v int) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldLT(FieldItemsPartial, v))
}

// ItemsPartialLTE applies the LTE predicate on the "items_partial" field.
func ItemsPartialLTE(v int) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldLTE(FieldItemsPartial, v))
}

// ItemsTimedOutEQ applies the EQ predicate on the "items_timed_out" field.
func ItemsTimedOutEQ(v int) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldEQ(FieldItemsTimedOut, v))
}

// ItemsTimedOutNEQ applies the NEQ predicate on the "items_timed_out" field.
func ItemsTimedOutNEQ(v int) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldNEQ(FieldItemsTimedOut, v))
}

// ItemsTimedOutIn applies the In predicate on the "items_timed_out" field.
func ItemsTimedOutIn(vs ...int) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldIn(FieldItemsTimedOut, vs...))
}

// ItemsTimedOutNotIn applies the NotIn predicate on the "items_timed_out" field.
func ItemsTimedOutNotIn(vs ...int) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldNotIn(FieldItemsTimedOut, vs...))
}

// ItemsTimedOutGT applies the GT predicate on the "items_timed_out" field.
func ItemsTimedOutGT(v int) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldGT(FieldItemsTimedOut, v))
}

// ItemsTimedOutGTE applies the GTE predicate on the "items_timed_out" field.
func ItemsTimedOutGTE(v int) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldGTE(FieldItemsTimedOut, v))
}

// ItemsTimedOutLT applies the LT predicate on the "items_timed_out" field.
func ItemsTimedOutLT(v int) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldLT(FieldItemsTimedOut, v))
}

// ItemsTimedOutLTE applies the LTE predicate on the "items_timed_out" field.
func ItemsTimedOutLTE(v int) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldLTE(FieldItemsTimedOut, v))
}

// CuesUsedEQ applies the EQ predicate on the "cues_used" field.
func CuesUsedEQ(v int) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldEQ(FieldCuesUsed, v))
}

// CuesUsedNEQ applies the NEQ predicate on the "cues_used" field.
func CuesUsedNEQ(v int) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldNEQ(FieldCuesUsed, v))
}

// CuesUsedIn applies the In predicate on the "cues_used" field.
func CuesUsedIn(vs ...int) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldIn(FieldCuesUsed, vs...))
}

// CuesUsedNotIn applies the NotIn predicate on the "cues_used" field.
func CuesUsedNotIn(vs ...int) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldNotIn(FieldCuesUsed, vs...))
}

// CuesUsedGT applies the GT predicate on the "cues_used" field.
func CuesUsedGT(v int) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldGT(FieldCuesUsed, v))
}

// CuesUsedGTE applies the GTE predicate on the "cues_used" field.
func CuesUsedGTE(v int) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldGTE(FieldCuesUsed, v))
}

// CuesUsedLT applies the LT predicate on the "cues_used" field.
func CuesUsedLT(v int) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldLT(FieldCuesUsed, v))
}

// CuesUsedLTE applies the LTE predicate on the "cues_used" field.
func CuesUsedLTE(v int) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldLTE(FieldCuesUsed, v))
}

// MeanLatencyMsEQ applies the EQ predicate on the "mean_latency_ms" field.
func MeanLatencyMsEQ(v int64) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldEQ(FieldMeanLatencyMs, v))
}

// MeanLatencyMsNEQ applies the NEQ predicate on the "mean_latency_ms" field.
func MeanLatencyMsNEQ(v int64) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldNEQ(FieldMeanLatencyMs, v))
}

// MeanLatencyMsIn applies the In predicate on the "mean_latency_ms" field.
func MeanLatencyMsIn(vs ...int64) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldIn(FieldMeanLatencyMs, vs...))
}

// MeanLatencyMsNotIn applies the NotIn predicate on the "mean_latency_ms" field.
func MeanLatencyMsNotIn(vs ...int64) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldNotIn(FieldMeanLatencyMs, vs...))
}

// MeanLatencyMsGT applies the GT predicate on the "mean_latency_ms" field.
func MeanLatencyMsGT(v int64) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldGT(FieldMeanLatencyMs, v))
}

// MeanLatencyMsGTE applies the GTE predicate on the "mean_latency_ms" field.
func MeanLatencyMsGTE(v int64) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldGTE(FieldMeanLatencyMs, v))
}

// MeanLatencyMsLT applies the LT predicate on the "mean_latency_ms" field.
func MeanLatencyMsLT(v int64) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldLT(FieldMeanLatencyMs, v))
}

// MeanLatencyMsLTE applies the LTE predicate on the "mean_latency_ms" field.
func MeanLatencyMsLTE(v int64) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldLTE(FieldMeanLatencyMs, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.SessionEvent) predicate.SessionEvent {
	return predicate.SessionEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.SessionEvent) predicate.SessionEvent {
	return predicate.SessionEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.SessionEvent) predicate.SessionEvent {
	return predicate.SessionEvent(sql.NotPredicates(p))
}
