package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// FetchAttempt records one fetch outcome: success, 304, failure or a
// preflight block. Exactly one row is appended per attempt.
type FetchAttempt struct {
	ent.Schema
}

// Fields of the FetchAttempt.
func (FetchAttempt) Fields() []ent.Field {
	return []ent.Field{
		field.Int("source_id"),
		field.String("url"),
		field.Int("status_code").
			Default(0).
			Comment("0 when the request never left the process (guard block)"),
		field.String("error_class").
			Optional().
			Nillable().
			Comment("Stable taxonomy string, e.g. RateLimited, Timeout"),
		field.Int64("latency_ms").
			Default(0),
		field.Int64("bytes").
			Default(0),
		field.String("pool").
			Comment("FAST, HEAVY_RENDER or DEEP_EXTRACT"),
		field.String("snapshot_hash").
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the FetchAttempt.
func (FetchAttempt) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("source", Source.Type).
			Ref("fetch_attempts").
			Field("source_id").
			Unique().
			Required(),
	}
}

// Indexes of the FetchAttempt.
func (FetchAttempt) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("source_id", "created_at"),
		index.Fields("error_class"),
	}
}
