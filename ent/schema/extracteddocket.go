package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ExtractedDocket holds the schema definition for a per-candidate
// review record. One row per candidate emitted by the extraction
// pipeline, including rejected ones.
type ExtractedDocket struct {
	ent.Schema
}

// Mixin of the ExtractedDocket.
func (ExtractedDocket) Mixin() []ent.Mixin {
	return []ent.Mixin{TimeMixin{}}
}

// Fields of the ExtractedDocket.
func (ExtractedDocket) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("extracted_docket_id").
			Unique().
			Immutable(),
		field.String("hearing_id").
			Immutable(),
		field.String("raw_text"),
		field.String("normalized_id"),
		field.String("state_code").
			MaxLen(2),
		field.Int("year").
			Optional().
			Nillable(),
		field.String("case_number").
			Optional(),
		field.String("suffix").
			Optional(),
		field.String("sector").
			Optional(),
		field.Float("confidence"),
		field.Enum("status").
			Values("accepted", "needs_review", "rejected"),
		field.Enum("match_type").
			Values("exact", "fuzzy", "none").
			Default("none"),
		field.String("trigger_phrase").
			Optional(),
		field.String("known_docket_id").
			Optional().
			Nillable(),
		field.Float("fuzzy_score").
			Default(0),
		field.String("context_before").
			Optional(),
		field.String("context_after").
			Optional(),
		field.String("suggested_correction").
			Optional(),
	}
}

// Edges of the ExtractedDocket.
func (ExtractedDocket) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("hearing", Hearing.Type).
			Ref("extracted_dockets").
			Field("hearing_id").
			Unique().
			Required().
			Immutable(),
		edge.From("known_docket", KnownDocket.Type).
			Ref("extracted_dockets").
			Field("known_docket_id").
			Unique(),
	}
}

// Indexes of the ExtractedDocket.
func (ExtractedDocket) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("hearing_id"),
		index.Fields("status"),
	}
}
