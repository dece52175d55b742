package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AttemptEvent records one resolved confirmation session: how the gesture
// ended, where the handle was, and how the countdown stood.
type AttemptEvent struct {
	ent.Schema
}

func (AttemptEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (AttemptEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Comment("UUID of the gesture session"),
		field.String("difficulty").
			NotEmpty().
			Comment("easy, medium or hard"),
		field.String("outcome").
			NotEmpty().
			Comment("success, miss, timeout or abort"),
		field.Float("progress").
			Comment("Normalized progress at resolution, 0..1"),
		field.Float("zone_start").
			Default(0).
			Comment("Target zone start fraction (hard only)"),
		field.Float("zone_end").
			Default(0).
			Comment("Target zone end fraction (hard only)"),
		field.Int("time_limit_ms").
			Default(0).
			Comment("Configured countdown (timed difficulties only)"),
		field.Int("elapsed_ms").
			Default(0).
			Comment("Gesture duration from begin to resolution"),
	}
}

func (AttemptEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("difficulty"),
		index.Fields("outcome"),
	}
}
