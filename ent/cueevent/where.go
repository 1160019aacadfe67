// Code generated by ent, DO NOT EDIT.

package cueevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/fweiner/parrotsoftware-treatment-sub000/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.CueEvent {
	return predicate.CueEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.CueEvent {
	return predicate.CueEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.CueEvent {
	return predicate.CueEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.CueEvent {
	return predicate.CueEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.CueEvent {
	return predicate.CueEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.CueEvent {
	return predicate.CueEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.CueEvent {
	return predicate.CueEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.CueEvent {
	return predicate.CueEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.CueEvent {
	return predicate.CueEvent(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.CueEvent {
	return predicate.CueEvent(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.CueEvent {
	return predicate.CueEvent(sql.FieldEQ(FieldTimestamp, v))
}

// SessionID applies equality check predicate on the "session_id" field. It's identical to SessionIDEQ.
func SessionID(v string) predicate.CueEvent {
	return predicate.CueEvent(sql.FieldEQ(FieldSessionID, v))
}

// ItemID applies equality check predicate on the "item_id" field. It's identical to ItemIDEQ.
func ItemID(v string) predicate.CueEvent {
	return predicate.CueEvent(sql.FieldEQ(FieldItemID, v))
}

// Level applies equality check predicate on the "level" field. It's identical to LevelEQ.
func Level(v int) predicate.CueEvent {
	return predicate.CueEvent(sql.FieldEQ(FieldLevel, v))
}

// CueText applies equality check predicate on the "cue_text" field. It's identical to CueTextEQ.
func CueText(v string) predicate.CueEvent {
	return predicate.CueEvent(sql.FieldEQ(FieldCueText, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.CueEvent {
	return predicate.CueEvent(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.CueEvent {
	return predicate.CueEvent(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.CueEvent {
	return predicate.CueEvent(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.CueEvent {
	return predicate.CueEvent(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.CueEvent {
	return predicate.CueEvent(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.CueEvent {
	return predicate.CueEvent(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.CueEvent {
	return predicate.CueEvent(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.CueEvent {
	return predicate.CueEvent(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.CueEvent {
	return predicate.CueEvent(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.CueEvent {
	return predicate.CueEvent(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.CueEvent {
	return predicate.CueEvent(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.CueEvent {
	return predicate.CueEvent(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.CueEvent {
	return predicate.CueEvent(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.CueEvent {
	return predicate.CueEvent(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.CueEvent {
	return predicate.CueEvent(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.CueEvent {
	return predicate.CueEvent(sql.FieldLTE(FieldTimestamp, v))
}

// SessionIDEQ applies the EQ predicate on the "session_id" field.
func SessionIDEQ(v string) predicate.CueEvent {
	return predicate.CueEvent(sql.FieldEQ(FieldSessionID, v))
}

// SessionIDNEQ applies the NEQ predicate on the "session_id" field.
func SessionIDNEQ(v string) predicate.CueEvent {
	return predicate.CueEvent(sql.FieldNEQ(FieldSessionID, v))
}

// SessionIDIn applies the In predicate on the "session_id" field.
func SessionIDIn(vs ...string) predicate.CueEvent {
	return predicate.CueEvent(sql.FieldIn(FieldSessionID, vs...))
}

// SessionIDNotIn applies the NotIn predicate on the "session_id" field.
func SessionIDNotIn(vs ...string) predicate.CueEvent {
	return predicate.CueEvent(sql.FieldNotIn(FieldSessionID, vs...))
}

// SessionIDGT applies the GT predicate on the "session_id" field.
func SessionIDGT(v string) predicate.CueEvent {
	return predicate.CueEvent(sql.FieldGT(FieldSessionID, v))
}

// SessionIDGTE applies the GTE predicate on the "session_id" field.
func SessionIDGTE(v string) predicate.CueEvent {
	return predicate.CueEvent(sql.FieldGTE(FieldSessionID, v))
}

// SessionIDLT applies the LT predicate on the "session_id" field.
func SessionIDLT(v string) predicate.CueEvent {
	return predicate.CueEvent(sql.FieldLT(FieldSessionID, v))
}

// SessionIDLTE applies the LTE predicate on the "session_id" field.
func SessionIDLTE(v string) predicate.CueEvent {
	return predicate.CueEvent(sql.FieldLTE(FieldSessionID, v))
}

// SessionIDContains applies the Contains predicate on the "session_id" field.
func SessionIDContains(v string) predicate.CueEvent {
	return predicate.CueEvent(sql.FieldContains(FieldSessionID, v))
}

// SessionIDHasPrefix applies the HasPrefix predicate on the "session_id" field.
func SessionIDHasPrefix(v string) predicate.CueEvent {
	return predicate.CueEvent(sql.FieldHasPrefix(FieldSessionID, v))
}

// SessionIDHasSuffix applies the HasSuffix predicate on the "session_id" field.
func SessionIDHasSuffix(v string) predicate.CueEvent {
	return predicate.CueEvent(sql.FieldHasSuffix(FieldSessionID, v))
}

// SessionIDEqualFold applies the EqualFold predicate on the "session_id" field.
func SessionIDEqualFold(v string) predicate.CueEvent {
	return predicate.CueEvent(sql.FieldEqualFold(FieldSessionID, v))
}

// SessionIDContainsFold applies the ContainsFold predicate on the "session_id" field.
func SessionIDContainsFold(v string) predicate.CueEvent {
	return predicate.CueEvent(sql.FieldContainsFold(FieldSessionID, v))
}

// ItemIDEQ applies the EQ predicate on the "item_id" field.
func ItemIDEQ(v string) predicate.CueEvent {
	return predicate.CueEvent(sql.FieldEQ(FieldItemID, v))
}

// ItemIDNEQ applies the NEQ predicate on the "item_id" field.
func ItemIDNEQ(v string) predicate.CueEvent {
	return predicate.CueEvent(sql.FieldNEQ(FieldItemID, v))
}

// ItemIDIn applies the In predicate on the "item_id" field.
func ItemIDIn(vs ...string) predicate.CueEvent {
	return predicate.CueEvent(sql.FieldIn(FieldItemID, vs...))
}

// ItemIDNotIn applies the NotIn predicate on the "item_id" field.
func ItemIDNotIn(vs ...string) predicate.CueEvent {
	return predicate.CueEvent(sql.FieldNotIn(FieldItemID, vs...))
}

// ItemIDGT applies the GT predicate on the "item_id" field.
func ItemIDGT(v string) predicate.CueEvent {
	return predicate.CueEvent(sql.FieldGT(FieldItemID, v))
}

// ItemIDGTE applies the GTE predicate on the "item_id" field.
func ItemIDGTE(v string) predicate.CueEvent {
	return predicate.CueEvent(sql.FieldGTE(FieldItemID, v))
}

// ItemIDLT applies the LT predicate on the "item_id" field.
func ItemIDLT(v string) predicate.CueEvent {
	return predicate.CueEvent(sql.FieldLT(FieldItemID, v))
}

// ItemIDLTE applies the LTE predicate on the "item_id" field.
func ItemIDLTE(v string) predicate.CueEvent {
	return predicate.CueEvent(sql.FieldLTE(FieldItemID, v))
}

// ItemIDContains applies the Contains predicate on the "item_id" field.
func ItemIDContains(v string) predicate.CueEvent {
	return predicate.CueEvent(sql.FieldContains(FieldItemID, v))
}

// ItemIDHasPrefix applies the HasPrefix predicate on the "item_id" field.
func ItemIDHasPrefix(v string) predicate.CueEvent {
	return predicate.CueEvent(sql.FieldHasPrefix(FieldItemID, v))
}

// ItemIDHasSuffix applies the HasSuffix predicate on the "item_id" field.
func ItemIDHasSuffix(v string) predicate.CueEvent {
	return predicate.CueEvent(sql.FieldHasSuffix(FieldItemID, v))
}

// ItemIDEqualFold applies the EqualFold predicate on the "item_id" field.
func ItemIDEqualFold(v string) predicate.CueEvent {
	return predicate.CueEvent(sql.FieldEqualFold(FieldItemID, v))
}

// ItemIDContainsFold applies the ContainsFold predicate on the "item_id" field.
func ItemIDContainsFold(v string) predicate.CueEvent {
	return predicate.CueEvent(sql.FieldContainsFold(FieldItemID, v))
}

// LevelEQ applies the EQ predicate on the "level" field.
func LevelEQ(v int) predicate.CueEvent {
	return predicate.CueEvent(sql.FieldEQ(FieldLevel, v))
}

// LevelNEQ applies the NEQ predicate on the "level" field.
func LevelNEQ(v int) predicate.CueEvent {
	return predicate.CueEvent(sql.FieldNEQ(FieldLevel, v))
}

// LevelIn applies the In predicate on the "level" field.
func LevelIn(vs ...int) predicate.CueEvent {
	return predicate.CueEvent(sql.FieldIn(FieldLevel, vs...))
}

// LevelNotIn applies the NotIn predicate on the "level" field.
func LevelNotIn(vs ...int) predicate.CueEvent {
	return predicate.CueEvent(sql.FieldNotIn(FieldLevel, vs...))
}

// LevelGT applies the GT predicate on the "level" field.
func LevelGT(v int) predicate.CueEvent {
	return predicate.CueEvent(sql.FieldGT(FieldLevel, v))
}

// LevelGTE applies the GTE predicate on the "level" field.
func LevelGTE(v int) predicate.CueEvent {
	return predicate.CueEvent(sql.FieldGTE(FieldLevel, v))
}

// LevelLT applies the LT predicate on the "level" field.
func LevelLT(v int) predicate.CueEvent {
	return predicate.CueEvent(sql.FieldLT(FieldLevel, v))
}

// LevelLTE applies the LTE predicate on the "level" field.
func LevelLTE(v int) predicate.CueEvent {
	return predicate.CueEvent(sql.FieldLTE(FieldLevel, v))
}

// CueTextEQ applies the EQ predicate on the "cue_text" field.
func CueTextEQ(v string) predicate.CueEvent {
	return predicate.CueEvent(sql.FieldEQ(FieldCueText, v))
}

// CueTextNEQ applies the NEQ predicate on the "cue_text" field.
func CueTextNEQ(v string) predicate.CueEvent {
	return predicate.CueEvent(sql.FieldNEQ(FieldCueText, v))
}

// CueTextIn applies the In predicate on the "cue_text" field.
func CueTextIn(vs ...string) predicate.CueEvent {
	return predicate.CueEvent(sql.FieldIn(FieldCueText, vs...))
}

// CueTextNotIn applies the NotIn predicate on the "cue_text" field.
func CueTextNotIn(vs ...string) predicate.CueEvent {
	return predicate.CueEvent(sql.FieldNotIn(FieldCueText, vs...))
}

// CueTextGT applies the GT predicate on the "cue_text" field.
func CueTextGT(v string) predicate.CueEvent {
	return predicate.CueEvent(sql.FieldGT(FieldCueText, v))
}

// CueTextGTE applies the GTE predicate on the "cue_text" field.
func CueTextGTE(v string) predicate.CueEvent {
	return predicate.CueEvent(sql.FieldGTE(FieldCueText, v))
}

// CueTextLT applies the LT predicate on the "cue_text" field.
func CueTextLT(v string) predicate.CueEvent {
	return predicate.CueEvent(sql.FieldLT(FieldCueText, v))
}

// CueTextLTE applies the LTE predicate on the "cue_text" field.
func CueTextLTE(v string) predicate.CueEvent {
	return predicate.CueEvent(sql.FieldLTE(FieldCueText, v))
}

// CueTextContains applies the Contains predicate on the "cue_text" field.
func CueTextContains(v string) predicate.CueEvent {
	return predicate.CueEvent(sql.FieldContains(FieldCueText, v))
}

// CueTextHasPrefix applies the HasPrefix predicate on the "cue_text" field.
func CueTextHasPrefix(v string) predicate.CueEvent {
	return predicate.CueEvent(sql.FieldHasPrefix(FieldCueText, v))
}

// CueTextHasSuffix applies the HasSuffix predicate on the "cue_text" field.
func CueTextHasSuffix(v string) predicate.CueEvent {
	return predicate.CueEvent(sql.FieldHasSuffix(FieldCueText, v))
}

// CueTextEqualFold applies the EqualFold predicate on the "cue_text" field.
func CueTextEqualFold(v string) predicate.CueEvent {
	return predicate.CueEvent(sql.FieldEqualFold(FieldCueText, v))
}

// CueTextContainsFold applies the ContainsFold predicate on the "cue_text" field.
func CueTextContainsFold(v string) predicate.CueEvent {
	return predicate.CueEvent(sql.FieldContainsFold(FieldCueText, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.CueEvent) predicate.CueEvent {
	return predicate.CueEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.CueEvent) predicate.CueEvent {
	return predicate.CueEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.CueEvent) predicate.CueEvent {
	return predicate.CueEvent(sql.NotPredicates(p))
}
