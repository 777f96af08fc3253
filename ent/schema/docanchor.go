package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// DocAnchor is one deterministic identifier extracted from a document by the
// regex pack, already normalized.
type DocAnchor struct {
	ent.Schema
}

// Fields of the DocAnchor.
func (DocAnchor) Fields() []ent.Field {
	return []ent.Field{
		field.Int("doc_id"),
		field.Enum("type").
			NamedValues(
				"CNPJ", "CNPJ",
				"CPF", "CPF",
				"CNJ", "CNJ",
				"SEI", "SEI",
				"TCU", "TCU",
				"PL", "PL",
				"ATO", "ATO",
				"VALOR", "VALOR",
				"DATA", "DATA",
				"HORA", "HORA",
				"LinkGov", "LINK_GOV",
				"PDF", "PDF",
			),
		field.String("value"),
		field.Text("evidence_ptr").
			Optional().
			Comment("±30 char window around the match"),
		field.Float("confidence").
			Default(1.0),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the DocAnchor.
func (DocAnchor) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("document", Document.Type).
			Ref("anchors").
			Field("doc_id").
			Unique().
			Required(),
	}
}

// Indexes of the DocAnchor.
func (DocAnchor) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("type", "value"),
		index.Fields("doc_id"),
	}
}
