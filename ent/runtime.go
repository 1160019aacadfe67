// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/fweiner/parrotsoftware-treatment-sub000/ent/cueevent"
	"github.com/fweiner/parrotsoftware-treatment-sub000/ent/responseevent"
	"github.com/fweiner/parrotsoftware-treatment-sub000/ent/schema"
	"github.com/fweiner/parrotsoftware-treatment-sub000/ent/sessionevent"
	"github.com/fweiner/parrotsoftware-treatment-sub000/ent/snapshot"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	cueeventMixin := schema.CueEvent{}.Mixin()
	cueeventMixinFields0 := cueeventMixin[0].Fields()
	_ = cueeventMixinFields0
	cueeventFields := schema.CueEvent{}.Fields()
	_ = cueeventFields
	// cueeventDescTimestamp is the schema descriptor for timestamp field.
	cueeventDescTimestamp := cueeventMixinFields0[1].Descriptor()
	// cueevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	cueevent.DefaultTimestamp = cueeventDescTimestamp.Default.(func() time.Time)
	// cueeventDescSessionID is the schema descriptor for session_id field.
	cueeventDescSessionID := cueeventFields[0].Descriptor()
	// cueevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	cueevent.SessionIDValidator = cueeventDescSessionID.Validators[0].(func(string) error)
	// cueeventDescItemID is the schema descriptor for item_id field.
	cueeventDescItemID := cueeventFields[1].Descriptor()
	// cueevent.ItemIDValidator is a validator for the "item_id" field. It is called by the builders before save.
	cueevent.ItemIDValidator = cueeventDescItemID.Validators[0].(func(string) error)
	// cueeventDescLevel is the schema descriptor for level field.
	cueeventDescLevel := cueeventFields[2].Descriptor()
	// cueevent.LevelValidator is a validator for the "level" field. It is called by the builders before save.
	cueevent.LevelValidator = cueeventDescLevel.Validators[0].(func(int) error)
	// cueeventDescCueText is the schema descriptor for cue_text field.
	cueeventDescCueText := cueeventFields[3].Descriptor()
	// cueevent.CueTextValidator is a validator for the "cue_text" field. It is called by the builders before save.
	cueevent.CueTextValidator = cueeventDescCueText.Validators[0].(func(string) error)
	responseeventMixin := schema.ResponseEvent{}.Mixin()
	responseeventMixinFields0 := responseeventMixin[0].Fields()
	_ = responseeventMixinFields0
	responseeventFields := schema.ResponseEvent{}.Fields()
	_ = responseeventFields
	// responseeventDescTimestamp is the schema descriptor for timestamp field.
	responseeventDescTimestamp := responseeventMixinFields0[1].Descriptor()
	// responseevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	responseevent.DefaultTimestamp = responseeventDescTimestamp.Default.(func() time.Time)
	// responseeventDescSessionID is the schema descriptor for session_id field.
	responseeventDescSessionID := responseeventFields[0].Descriptor()
	// responseevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	responseevent.SessionIDValidator = responseeventDescSessionID.Validators[0].(func(string) error)
	// responseeventDescExercise is the schema descriptor for exercise field.
	responseeventDescExercise := responseeventFields[1].Descriptor()
	// responseevent.ExerciseValidator is a validator for the "exercise" field. It is called by the builders before save.
	responseevent.ExerciseValidator = responseeventDescExercise.Validators[0].(func(string) error)
	// responseeventDescItemID is the schema descriptor for item_id field.
	responseeventDescItemID := responseeventFields[2].Descriptor()
	// responseevent.ItemIDValidator is a validator for the "item_id" field. It is called by the builders before save.
	responseevent.ItemIDValidator = responseeventDescItemID.Validators[0].(func(string) error)
	// responseeventDescExpectedAnswer is the schema descriptor for expected_answer field.
	responseeventDescExpectedAnswer := responseeventFields[3].Descriptor()
	// responseevent.ExpectedAnswerValidator is a validator for the "expected_answer" field. It is called by the builders before save.
	responseevent.ExpectedAnswerValidator = responseeventDescExpectedAnswer.Validators[0].(func(string) error)
	// responseeventDescCorrect is the schema descriptor for correct field.
	responseeventDescCorrect := responseeventFields[5].Descriptor()
	// responseevent.DefaultCorrect holds the default value on creation for the correct field.
	responseevent.DefaultCorrect = responseeventDescCorrect.Default.(bool)
	// responseeventDescPartial is the schema descriptor for partial field.
	responseeventDescPartial := responseeventFields[6].Descriptor()
	// responseevent.DefaultPartial holds the default value on creation for the partial field.
	responseevent.DefaultPartial = responseeventDescPartial.Default.(bool)
	// responseeventDescScore is the schema descriptor for score field.
	responseeventDescScore := responseeventFields[7].Descriptor()
	// responseevent.DefaultScore holds the default value on creation for the score field.
	responseevent.DefaultScore = responseeventDescScore.Default.(float64)
	// responseeventDescCuesUsed is the schema descriptor for cues_used field.
	responseeventDescCuesUsed := responseeventFields[8].Descriptor()
	// responseevent.DefaultCuesUsed holds the default value on creation for the cues_used field.
	responseevent.DefaultCuesUsed = responseeventDescCuesUsed.Default.(int)
	// responseeventDescTimedOut is the schema descriptor for timed_out field.
	responseeventDescTimedOut := responseeventFields[9].Descriptor()
	// responseevent.DefaultTimedOut holds the default value on creation for the timed_out field.
	responseevent.DefaultTimedOut = responseeventDescTimedOut.Default.(bool)
	// responseeventDescLatencyMs is the schema descriptor for latency_ms field.
	responseeventDescLatencyMs := responseeventFields[10].Descriptor()
	// responseevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	responseevent.DefaultLatencyMs = responseeventDescLatencyMs.Default.(int64)
	sessioneventMixin := schema.SessionEvent{}.Mixin()
	sessioneventMixinFields0 := sessioneventMixin[0].Fields()
	_ = sessioneventMixinFields0
	sessioneventFields := schema.SessionEvent{}.Fields()
	_ = sessioneventFields
	// sessioneventDescTimestamp is the schema descriptor for timestamp field.
	sessioneventDescTimestamp := sessioneventMixinFields0[1].Descriptor()
	// sessionevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	sessionevent.DefaultTimestamp = sessioneventDescTimestamp.Default.(func() time.Time)
	// sessioneventDescSessionID is the schema descriptor for session_id field.
	sessioneventDescSessionID := sessioneventFields[0].Descriptor()
	// sessionevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	sessionevent.SessionIDValidator = sessioneventDescSessionID.Validators[0].(func(string) error)
	// sessioneventDescAction is the schema descriptor for action field.
	sessioneventDescAction := sessioneventFields[1].Descriptor()
	// sessionevent.ActionValidator is a validator for the "action" field. It is called by the builders before save.
	sessionevent.ActionValidator = sessioneventDescAction.Validators[0].(func(string) error)
	// sessioneventDescExercise is the schema descriptor for exercise field.
	sessioneventDescExercise := sessioneventFields[2].Descriptor()
	// sessionevent.ExerciseValidator is a validator for the "exercise" field. It is called by the builders before save.
	sessionevent.ExerciseValidator = sessioneventDescExercise.Validators[0].(func(string) error)
	// sessioneventDescItemsTotal is the schema descriptor for items_total field.
	sessioneventDescItemsTotal := sessioneventFields[3].Descriptor()
	// sessionevent.DefaultItemsTotal holds the default value on creation for the items_total field.
	sessionevent.DefaultItemsTotal = sessioneventDescItemsTotal.Default.(int)
	// sessioneventDescItemsCorrect is the schema descriptor for items_correct field.
	sessioneventDescItemsCorrect := sessioneventFields[4].Descriptor()
	// sessionevent.DefaultItemsCorrect holds the default value on creation for the items_correct field.
	sessionevent.DefaultItemsCorrect = sessioneventDescItemsCorrect.Default.(int)
	// sessioneventDescItemsPartial is the schema descriptor for items_partial field.
	sessioneventDescItemsPartial := sessioneventFields[5].Descriptor()
	// sessionevent.DefaultItemsPartial holds the default value on creation for the items_partial field.
	sessionevent.DefaultItemsPartial = sessioneventDescItemsPartial.Default.(int)
	// sessioneventDescItemsTimedOut is the schema descriptor for items_timed_out field.
	sessioneventDescItemsTimedOut := sessioneventFields[6].Descriptor()
	// sessionevent.DefaultItemsTimedOut holds the default value on creation for the items_timed_out field.
	sessionevent.DefaultItemsTimedOut = sessioneventDescItemsTimedOut.Default.(int)
	// sessioneventDescCuesUsed is the schema descriptor for cues_used field.
	sessioneventDescCuesUsed := sessioneventFields[7].Descriptor()
	// sessionevent.DefaultCuesUsed holds the default value on creation for the cues_used field.
	sessionevent.DefaultCuesUsed = sessioneventDescCuesUsed.Default.(int)
	// sessioneventDescMeanLatencyMs is the schema descriptor for mean_latency_ms field.
	sessioneventDescMeanLatencyMs := sessioneventFields[8].Descriptor()
	// sessionevent.DefaultMeanLatencyMs holds the default value on creation for the mean_latency_ms field.
	sessionevent.DefaultMeanLatencyMs = sessioneventDescMeanLatencyMs.Default.(int64)
	snapshotFields := schema.Snapshot{}.Fields()
	_ = snapshotFields
	// snapshotDescTimestamp is the schema descriptor for timestamp field.
	snapshotDescTimestamp := snapshotFields[1].Descriptor()
	// snapshot.DefaultTimestamp holds the default value on creation for the timestamp field.
	snapshot.DefaultTimestamp = snapshotDescTimestamp.Default.(func() time.Time)
}
