package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Document is a normalized extracted item. Documents are identity-addressed:
// the same (url | canonical_url) accumulates monotonically increasing
// versions, one per distinct content_hash.
type Document struct {
	ent.Schema
}

// Fields of the Document.
func (Document) Fields() []ent.Field {
	return []ent.Field{
		field.Int("source_id"),
		field.Int("snapshot_id").
			Optional().
			Nillable(),
		field.String("url"),
		field.String("canonical_url").
			Optional().
			Nillable(),
		field.String("title").
			Optional(),
		field.String("author").
			Optional().
			Nillable(),
		field.Time("published_at").
			Optional().
			Nillable(),
		field.Time("modified_at").
			Optional().
			Nillable(),
		field.Text("clean_text"),
		field.String("language").
			Optional(),
		field.String("content_hash"),
		field.Uint64("simhash").
			Optional().
			Comment("64-bit fingerprint; 0 means not computed"),
		field.Int("version_no").
			Default(1).
			Min(1),
		field.String("lane").
			Optional(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the Document.
func (Document) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("source", Source.Type).
			Ref("documents").
			Field("source_id").
			Unique().
			Required(),
		edge.To("anchors", DocAnchor.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("evidence", DocEvidenceFeature.Type).
			Unique().
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("mentions", EntityMention.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the Document.
func (Document) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("url", "created_at"),
		index.Fields("canonical_url"),
		index.Fields("content_hash"),
		index.Fields("created_at"),
	}
}
