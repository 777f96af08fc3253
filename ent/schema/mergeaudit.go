package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// MergeAudit records one absorption of an event into its canonical
// successor. The (from, to, reason) triple doubles as the merge idempotence
// guard.
type MergeAudit struct {
	ent.Schema
}

// Fields of the MergeAudit.
func (MergeAudit) Fields() []ent.Field {
	return []ent.Field{
		field.Int("from_event_id"),
		field.Int("to_event_id"),
		field.String("reason_code").
			Comment("HARD_ANCHOR_MATCH or EDITORIAL_MERGE"),
		field.JSON("evidence_json", map[string]interface{}{}).
			Optional(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the MergeAudit.
func (MergeAudit) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("from_event_id", "to_event_id", "reason_code"),
		index.Fields("to_event_id"),
		index.Fields("created_at", "id"),
	}
}
