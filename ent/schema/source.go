package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Source holds the schema definition for one catalog row. A source is never
// deleted; operators disable it instead.
type Source struct {
	ent.Schema
}

// Fields of the Source.
func (Source) Fields() []ent.Field {
	return []ent.Field{
		field.String("domain").
			Comment("Registrable domain, lower-case"),
		field.String("name"),
		field.Int("tier").
			Default(3).
			Min(1).
			Max(3),
		field.Bool("is_official").
			Default(false),
		field.String("language").
			Default("pt-BR"),
		field.Bool("enabled").
			Default(true),
		field.JSON("profile", map[string]interface{}{}).
			Comment("SourceProfile blob, validated on read"),
		field.String("source_class").
			Optional().
			Nillable().
			Comment("OFFICIAL, PRESS or AGGREGATOR (taxonomy inference)"),
		field.String("editorial_group").
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the Source.
func (Source) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("snapshots", Snapshot.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("fetch_attempts", FetchAttempt.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("documents", Document.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the Source.
func (Source) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("domain"),
		index.Fields("enabled"),
		index.Fields("name", "domain").
			Unique(),
	}
}
