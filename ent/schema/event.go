package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Event is a canonical factual cluster. A row with canonical_event_id set is
// a tombstone: it redirects to its canonical successor and never appears in
// feeds. Tombstones are data, not a separate kind.
type Event struct {
	ent.Schema
}

// Fields of the Event.
func (Event) Fields() []ent.Field {
	return []ent.Field{
		field.Int("canonical_event_id").
			Optional().
			Nillable(),
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
			).
			Default("NEW"),
		field.String("lane").
			Optional(),
		field.Text("summary").
			Optional(),
		field.JSON("flags_json", []string{}).
			Optional(),
		field.Float("score_plantao").
			Default(0).
			Comment("Materialized for feed ordering"),
		field.Time("first_seen_at").
			Default(time.Now),
		field.Time("last_seen_at").
			Default(time.Now),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the Event.
func (Event) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status"),
		index.Fields("canonical_event_id"),
		index.Fields("score_plantao"),
		index.Fields("updated_at", "id"),
		index.Fields("first_seen_at"),
	}
}
