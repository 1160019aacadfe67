// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/fweiner/parrotsoftware-treatment-sub000/ent/sessionevent"
)

// SessionEvent is the model entity for the SessionEvent schema.
type SessionEvent struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Monotonically increasing global sequence number
	Sequence int64 `json:"sequence,omitempty"`
	// UTC wall-clock time of the event
	Timestamp time.Time `json:"timestamp,omitempty"`
	// UUID grouping events in a session
	SessionID string `json:"session_id,omitempty"`
	// start or end
	Action string `json:"action,omitempty"`
	// Exercise type key, e.g. word_finding
	Exercise string `json:"exercise,omitempty"`
	// Items scored (on end only)
	ItemsTotal int `json:"items_total,omitempty"`
	// Fully correct items (on end only)
	ItemsCorrect int `json:"items_correct,omitempty"`
	// Partial-credit items (on end only)
	ItemsPartial int `json:"items_partial,omitempty"`
	// Items whose final event was a timeout (on end only)
	ItemsTimedOut int `json:"items_timed_out,omitempty"`
	// Total cues across all items (on end only)
	CuesUsed int `json:"cues_used,omitempty"`
	// Mean response latency in milliseconds (on end only)
	MeanLatencyMs int64 `json:"mean_latency_ms,omitempty"`
	selectValues  sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*SessionEvent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case sessionevent.FieldID, sessionevent.FieldSequence, sessionevent.FieldItemsTotal, sessionevent.FieldItemsCorrect, sessionevent.FieldItemsPartial, sessionevent.FieldItemsTimedOut, sessionevent.FieldCuesUsed, sessionevent.FieldMeanLatencyMs:
			values[i] = new(sql.NullInt64)
		case sessionevent.FieldSessionID, sessionevent.FieldAction, sessionevent.FieldExercise:
			values[i] = new(sql.NullString)
		case sessionevent.FieldTimestamp:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the SessionEvent fields.
func (_m *SessionEvent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case sessionevent.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case sessionevent.FieldSequence:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sequence", values[i])
			} else if value.Valid {
				_m.Sequence = value.Int64
			}
		case sessionevent.FieldTimestamp:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field timestamp", values[i])
			} else if value.Valid {
				_m.Timestamp = value.Time
			}
		case sessionevent.FieldSessionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field session_id", values[i])
			} else if value.Valid {
				_m.SessionID = value.String
			}
		case sessionevent.FieldAction:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field action", values[i])
			} else if value.Valid {
				_m.Action = value.String
			}
		case sessionevent.FieldExercise:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field exercise", values[i])
			} else if value.Valid {
				_m.Exercise = value.String
			}
		case sessionevent.FieldItemsTotal:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field items_total", values[i])
			} else if value.Valid {
				_m.ItemsTotal = int(value.Int64)
			}
		case sessionevent.FieldItemsCorrect:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field items_correct", values[i])
			} else if value.Valid {
				_m.ItemsCorrect = int(value.Int64)
			}
		case sessionevent.FieldItemsPartial:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field items_partial", values[i])
			} else if value.Valid {
				_m.ItemsPartial = int(value.Int64)
			}
		case sessionevent.FieldItemsTimedOut:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field items_timed_out", values[i])
			} else if value.Valid {
				_m.ItemsTimedOut = int(value.Int64)
			}
		case sessionevent.FieldCuesUsed:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field cues_used", values[i])
			} else if value.Valid {
				_m.CuesUsed = int(value.Int64)
			}
		case sessionevent.FieldMeanLatencyMs:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field mean_latency_ms", values[i])
			} else if value.Valid {
				_m.MeanLatencyMs = value.Int64
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the SessionEvent.
// This includes values selected through modifiers, order, etc.
func (_m *SessionEvent) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this SessionEvent.
// Note that you need to call SessionEvent.Unwrap() before calling this method if this SessionEvent
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *SessionEvent) Update() *SessionEventUpdateOne {
	return NewSessionEventClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the SessionEvent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *SessionEvent) Unwrap() *SessionEvent {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: SessionEvent is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *SessionEvent) String() string {
	var builder strings.Builder
	builder.WriteString("SessionEvent(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("sequence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Sequence))
	builder.WriteString(", ")
	builder.WriteString("timestamp=")
	builder.WriteString(_m.Timestamp.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("session_id=")
	builder.WriteString(_m.SessionID)
	builder.WriteString(", ")
	builder.WriteString("action=")
	builder.WriteString(_m.Action)
	builder.WriteString(", ")
	builder.WriteString("exercise=")
	builder.WriteString(_m.Exercise)
	builder.WriteString(", ")
	builder.WriteString("items_total=")
	builder.WriteString(fmt.Sprintf("%v", _m.ItemsTotal))
	builder.WriteString(", ")
	builder.WriteString("items_correct=")
	builder.WriteString(fmt.Sprintf("%v", _m.ItemsCorrect))
	builder.WriteString(", ")
	builder.WriteString("items_partial=")
	builder.WriteString(fmt.Sprintf("%v", _m.ItemsPartial))
	builder.WriteString(", ")
	builder.WriteString("items_timed_out=")
	builder.WriteString(fmt.Sprintf("%v", _m.ItemsTimedOut))
	builder.WriteString(", ")
	builder.WriteString("cues_used=")
	builder.WriteString(fmt.Sprintf("%v", _m.CuesUsed))
	builder.WriteString(", ")
	builder.WriteString("mean_latency_ms=")
	builder.WriteString(fmt.Sprintf("%v", _m.MeanLatencyMs))
	builder.WriteByte(')')
	return builder.String()
}

// SessionEvents is a parsable slice of SessionEvent.
type SessionEvents []*SessionEvent
