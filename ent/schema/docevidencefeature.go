package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// DocEvidenceFeature is the per-document evidence summary derived from the
// anchor set; one row per document.
type DocEvidenceFeature struct {
	ent.Schema
}

// Fields of the DocEvidenceFeature.
func (DocEvidenceFeature) Fields() []ent.Field {
	return []ent.Field{
		field.Int("doc_id").
			Unique(),
		field.Float("evidence_score").
			Default(0),
		field.Bool("has_pdf").
			Default(false),
		field.Bool("has_official_domain").
			Default(false),
		field.Int("anchors_count").
			Default(0),
		field.Int("money_count").
			Default(0),
		field.Bool("has_table_like").
			Default(false),
		field.JSON("evidence_json", map[string]interface{}{}).
			Optional(),
	}
}

// Edges of the DocEvidenceFeature.
func (DocEvidenceFeature) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("document", Document.Type).
			Ref("evidence").
			Field("doc_id").
			Unique().
			Required(),
	}
}

// Indexes of the DocEvidenceFeature.
func (DocEvidenceFeature) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("evidence_score"),
	}
}
