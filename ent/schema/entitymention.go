package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// EntityMention is a lightweight entity derived from anchors (no semantic NLP
// in the core): CNPJ→ORG, CPF→PER, CNJ/SEI/TCU/ATO→GOV, PL→EVENT.
type EntityMention struct {
	ent.Schema
}

// Fields of the EntityMention.
func (EntityMention) Fields() []ent.Field {
	return []ent.Field{
		field.Int("doc_id"),
		field.String("entity_key"),
		field.Enum("label").
			Values("PER", "ORG", "LOC", "GOV", "EVENT"),
		field.String("span").
			Optional(),
		field.Text("evidence_ptr").
			Optional(),
		field.Float("confidence").
			Default(0.9),
	}
}

// Edges of the EntityMention.
func (EntityMention) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("document", Document.Type).
			Ref("mentions").
			Field("doc_id").
			Unique().
			Required(),
	}
}

// Indexes of the EntityMention.
func (EntityMention) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("entity_key"),
		index.Fields("doc_id"),
	}
}
