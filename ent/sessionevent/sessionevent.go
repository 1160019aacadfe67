// Code generated by ent, DO NOT EDIT.

package sessionevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the sessionevent type in the database.
	Label = "session_event"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSequence holds the string denoting the sequence field in the database.
	FieldSequence = "sequence"
	// FieldTimestamp holds the string denoting the timestamp field in the database.
	FieldTimestamp = "timestamp"
	// FieldSessionID holds the string denoting the session_id field in the database.
	FieldSessionID = "session_id"
	// FieldAction holds the string denoting the action field in the database.
	FieldAction = "action"
	// FieldExercise holds the string denoting the exercise field in the database.
	FieldExercise = "exercise"
	// FieldItemsTotal holds the string denoting the items_total field in the database.
	FieldItemsTotal = "items_total"
	// FieldItemsCorrect holds the string denoting the items_correct field in the database.
	FieldItemsCorrect = "items_correct"
	// FieldItemsPartial holds the string denoting the items_partial field in the database.
	FieldItemsPartial = "items_partial"
	// FieldItemsTimedOut holds the string denoting the items_timed_out field in the database.
	FieldItemsTimedOut = "items_timed_out"
	// FieldCuesUsed holds the string denoting the cues_used field in the database.
	FieldCuesUsed = "cues_used"
	// FieldMeanLatencyMs holds the string denoting the mean_latency_ms field in the database.
	FieldMeanLatencyMs = "mean_latency_ms"
	// Table holds the table name of the sessionevent in the database.
	Table = "session_events"
)

// Columns holds all SQL columns for sessionevent fields.
var Columns = []string{
	FieldID,
	FieldSequence,
	FieldTimestamp,
	FieldSessionID,
	FieldAction,
	FieldExercise,
	FieldItemsTotal,
	FieldItemsCorrect,
	FieldItemsPartial,
	FieldItemsTimedOut,
	FieldCuesUsed,
	FieldMeanLatencyMs,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultTimestamp holds the default value on creation for the "timestamp" field.
	DefaultTimestamp func() time.Time
	// SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	SessionIDValidator func(string) error
	// ActionValidator is a validator for the "action" field. It is called by the builders before save.
	ActionValidator func(string) error
	// ExerciseValidator is a validator for the "exercise" field. It is called by the builders before save.
	ExerciseValidator func(string) error
	// DefaultItemsTotal holds the default value on creation for the "items_total" field.
	DefaultItemsTotal int
	// DefaultItemsCorrect holds the default value on creation for the "items_correct" field.
	DefaultItemsCorrect int
	// DefaultItemsPartial holds the default value on creation for the "items_partial" field.
	DefaultItemsPartial int
	// DefaultItemsTimedOut holds the default value on creation for the "items_timed_out" field.
	DefaultItemsTimedOut int
	// DefaultCuesUsed holds the default value on creation for the "cues_used" field.
	DefaultCuesUsed int
	// DefaultMeanLatencyMs holds the default value on creation for the "mean_latency_ms" field.
	DefaultMeanLatencyMs int64
)

// OrderOption defines the ordering options for the SessionEvent queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySequence orders the results by the sequence field.
func BySequence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSequence, opts...).ToFunc()
}

// ByTimestamp orders the results by the timestamp field.
func ByTimestamp(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimestamp, opts...).ToFunc()
}

// BySessionID orders the results by the session_id field.
func BySessionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSessionID, opts...).ToFunc()
}

// ByAction orders the results by the action field.
func ByAction(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAction, opts...).ToFunc()
}

// ByExercise orders the results by the exercise field.
func ByExercise(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExercise, opts...).ToFunc()
}

// ByItemsTotal orders the results by the items_total field.
func ByItemsTotal(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldItemsTotal, opts...).ToFunc()
}

// ByItemsCorrect orders the results by the items_correct field.
func ByItemsCorrect(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldItemsCorrect, opts...).ToFunc()
}

// ByItemsPartial orders the results by the items_partial field.
func ByItemsPartial(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldItemsPartial, opts...).ToFunc()
}

// ByItemsTimedOut orders the results by the items_timed_out field.
func ByItemsTimedOut(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldItemsTimedOut, opts...).ToFunc()
}

// ByCuesUsed orders the results by the cues_used field.
func ByCuesUsed(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCuesUsed, opts...).ToFunc()
}

// ByMeanLatencyMs orders the results by the mean_latency_ms field.
func ByMeanLatencyMs(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMeanLatencyMs, opts...).ToFunc()
}
