package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// EventScore holds the latest dual score for an event; one row per event,
// last writer wins (scoring is idempotent with respect to its inputs).
type EventScore struct {
	ent.Schema
}

// Fields of the EventScore.
func (EventScore) Fields() []ent.Field {
	return []ent.Field{
		field.Int("event_id").
			Unique(),
		field.Float("score_plantao").
			Default(0),
		field.Float("score_oceano_azul").
			Default(0),
		field.JSON("reasons_json", map[string][]string{}).
			Optional().
			Comment("keys: plantao, oceano_azul"),
		field.Time("computed_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Indexes of the EventScore.
func (EventScore) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("score_oceano_azul"),
	}
}
