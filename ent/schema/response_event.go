package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ResponseEvent records the single scored response for one item in a
// session. Exactly one is appended per presented item.
type ResponseEvent struct {
	ent.Schema
}

func (ResponseEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (ResponseEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Comment("UUID of the owning session"),
		field.String("exercise").
			NotEmpty().
			Comment("Exercise type key"),
		field.String("item_id").
			NotEmpty().
			Comment("Stable item identifier within the roster or stimulus bank"),
		field.String("expected_answer").
			NotEmpty(),
		field.String("answer").
			Comment("Transcript of the final attempt, empty when timed out"),
		field.Bool("correct").
			Default(false),
		field.Bool("partial").
			Default(false).
			Comment("Matched through an accommodation, not exactly"),
		field.Float("score").
			Default(0).
			Comment("Evaluator score in [0, 1]"),
		field.Int("cues_used").
			Default(0).
			Comment("Pre-reveal cues issued before the item was finalized"),
		field.Bool("timed_out").
			Default(false).
			Comment("Whether a timeout, not an answer, finalized the item"),
		field.Int64("latency_ms").
			Default(0).
			Comment("Time from answer window opening to finalization"),
	}
}

func (ResponseEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("exercise"),
		index.Fields("item_id"),
	}
}
