package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// EventState is the append-only status history of an event. The current
// Event.status always equals the latest row's status.
type EventState struct {
	ent.Schema
}

// Fields of the EventState.
func (EventState) Fields() []ent.Field {
	return []ent.Field{
		field.Int("event_id"),
		field.Enum("status").
			NamedValues(
				"New", "NEW",
				"Hydrating", "HYDRATING",
				"PartialEnrich", "PARTIAL_ENRICH",
				"FailedEnrich", "FAILED_ENRICH",
				"Quarantine", "QUARANTINE",
				"Hot", "HOT",
				"Merged", "MERGED",
				"Ignored", "IGNORED",
				"Expired", "EXPIRED",
			),
		field.String("status_reason"),
		field.Time("updated_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the EventState.
func (EventState) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("event_id", "updated_at"),
		index.Fields("updated_at", "id"),
	}
}
