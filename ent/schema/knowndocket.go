package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// KnownDocket holds the schema definition for an authoritative
// catalogue entry scraped from a PSC site. Lifecycle is independent of
// hearings; rows are upserted by the periodic catalogue sync.
type KnownDocket struct {
	ent.Schema
}

// Mixin of the KnownDocket.
func (KnownDocket) Mixin() []ent.Mixin {
	return []ent.Mixin{TimeMixin{}}
}

// Fields of the KnownDocket.
func (KnownDocket) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("known_docket_id").
			Unique().
			Immutable(),
		field.String("state_code").
			MaxLen(2),
		field.String("docket_number"),
		field.String("normalized_id").
			Unique().
			Comment("<STATE>-<docket_number>, globally unique"),
		field.Int("year").
			Optional().
			Nillable(),
		field.String("case_number").
			Optional(),
		field.String("suffix").
			Optional(),
		field.String("utility_sector").
			Optional(),
		field.String("title").
			Optional(),
		field.String("utility_name").
			Optional(),
		field.Time("filing_date").
			Optional().
			Nillable(),
		field.String("status").
			Optional(),
		field.String("case_type").
			Optional(),
		field.String("source_url").
			Optional(),
	}
}

// Edges of the KnownDocket.
func (KnownDocket) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("dockets", Docket.Type),
		edge.To("extracted_dockets", ExtractedDocket.Type),
	}
}

// Indexes of the KnownDocket.
func (KnownDocket) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("state_code", "docket_number").
			Unique(),
		index.Fields("state_code"),
	}
}
