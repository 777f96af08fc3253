package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

// EventAlertState is the per-event alert dedupe record: last emitted key and
// the cooldown horizon.
type EventAlertState struct {
	ent.Schema
}

// Fields of the EventAlertState.
func (EventAlertState) Fields() []ent.Field {
	return []ent.Field{
		field.Int("event_id").
			Unique(),
		field.String("last_alert_hash").
			Optional(),
		field.Time("last_alert_at").
			Optional().
			Nillable(),
		field.Time("cooldown_until").
			Optional().
			Nillable(),
	}
}
