package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// SessionEvent records session lifecycle events (start/end).
type SessionEvent struct {
	ent.Schema
}

func (SessionEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (SessionEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Comment("UUID grouping events in a session"),
		field.String("action").
			NotEmpty().
			Comment("start or end"),
		field.String("exercise").
			NotEmpty().
			Comment("Exercise type key, e.g. word_finding"),
		field.Int("items_total").
			Default(0).
			Comment("Items scored (on end only)"),
		field.Int("items_correct").
			Default(0).
			Comment("Fully correct items (on end only)"),
		field.Int("items_partial").
			Default(0).
			Comment("Partial-credit items (on end only)"),
		field.Int("items_timed_out").
			Default(0).
			Comment("Items whose final event was a timeout (on end only)"),
		field.Int("cues_used").
			Default(0).
			Comment("Total cues across all items (on end only)"),
		field.Int64("mean_latency_ms").
			Default(0).
			Comment("Mean response latency in milliseconds (on end only)"),
	}
}

func (SessionEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("action"),
		index.Fields("exercise"),
	}
}
