package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// EventDoc links a document to an event. At most one row per event carries
// is_primary=true; (event_id, doc_id) is unique.
type EventDoc struct {
	ent.Schema
}

// Fields of the EventDoc.
func (EventDoc) Fields() []ent.Field {
	return []ent.Field{
		field.Int("event_id"),
		field.Int("doc_id"),
		field.Int("source_id"),
		field.Time("seen_at").
			Default(time.Now),
		field.Bool("is_primary").
			Default(false),
	}
}

// Indexes of the EventDoc.
func (EventDoc) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("event_id", "doc_id").
			Unique(),
		index.Fields("doc_id"),
		index.Fields("source_id"),
		index.Fields("event_id", "seen_at"),
	}
}
