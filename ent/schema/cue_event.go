package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// CueEvent records each hint shown while an item was unanswered.
type CueEvent struct {
	ent.Schema
}

func (CueEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (CueEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Comment("UUID of the owning session"),
		field.String("item_id").
			NotEmpty(),
		field.Int("level").
			Positive().
			Comment("1-based position on the cue ladder"),
		field.String("cue_text").
			NotEmpty(),
	}
}

func (CueEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("item_id"),
	}
}
