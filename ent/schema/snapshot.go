package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Snapshot is an immutable record of one raw HTTP 200 response whose content
// differed from the previous capture of the same URL.
type Snapshot struct {
	ent.Schema
}

// Fields of the Snapshot.
func (Snapshot) Fields() []ent.Field {
	return []ent.Field{
		field.Int("source_id"),
		field.String("url"),
		field.Time("fetched_at").
			Default(time.Now).
			Immutable(),
		field.JSON("response_headers", map[string]string{}).
			Optional(),
		field.Bytes("body").
			Comment("Raw body; base64 of the original bytes for payload_kind=pdf_base64"),
		field.String("content_hash").
			Comment("SHA-256 of the body"),
		field.String("snapshot_hash").
			Unique().
			Immutable().
			Comment("SHA-256 of url || content_hash"),
	}
}

// Edges of the Snapshot.
func (Snapshot) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("source", Source.Type).
			Ref("snapshots").
			Field("source_id").
			Unique().
			Required(),
	}
}

// Indexes of the Snapshot.
func (Snapshot) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("url", "fetched_at"),
		index.Fields("content_hash"),
	}
}
