package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// FeedbackEvent is the editorial action log. Every action writes one row
// before any state mutation; replaying the log reconstructs the final event
// state modulo timeouts.
type FeedbackEvent struct {
	ent.Schema
}

// Fields of the FeedbackEvent.
func (FeedbackEvent) Fields() []ent.Field {
	return []ent.Field{
		field.Int("event_id"),
		field.Enum("action").
			NamedValues(
				"Ignore", "IGNORE",
				"Snooze", "SNOOZE",
				"Pautar", "PAUTAR",
				"Merge", "MERGE",
				"Split", "SPLIT",
			),
		field.String("actor").
			Optional(),
		field.JSON("payload_json", map[string]interface{}{}).
			Optional(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the FeedbackEvent.
func (FeedbackEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("event_id", "created_at"),
	}
}
