package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Alert is one delivered notification. Routing is a single internal channel;
// dedupe and cooldown live in EventAlertState.
type Alert struct {
	ent.Schema
}

// Fields of the Alert.
func (Alert) Fields() []ent.Field {
	return []ent.Field{
		field.Int("event_id"),
		field.String("channel").
			Default("internal"),
		field.String("status").
			Default("SENT"),
		field.String("alert_hash"),
		field.JSON("payload_json", map[string]interface{}{}).
			Optional(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the Alert.
func (Alert) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("event_id", "created_at"),
	}
}
