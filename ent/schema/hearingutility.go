package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// HearingUtility holds the schema definition for a hearing↔utility
// link produced by entity linking. utility_id is null when the
// extracted name matched nothing (kept for canonicalization review).
type HearingUtility struct {
	ent.Schema
}

// Mixin of the HearingUtility.
func (HearingUtility) Mixin() []ent.Mixin {
	return []ent.Mixin{TimeMixin{}}
}

// Fields of the HearingUtility.
func (HearingUtility) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("hearing_utility_id").
			Unique().
			Immutable(),
		field.String("hearing_id").
			Immutable(),
		field.String("utility_id").
			Optional().
			Nillable(),
		field.String("raw_name"),
		field.String("role").
			Optional(),
		field.Float("confidence").
			Default(0),
		field.Bool("needs_review").
			Default(false),
	}
}

// Edges of the HearingUtility.
func (HearingUtility) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("hearing", Hearing.Type).
			Ref("hearing_utilities").
			Field("hearing_id").
			Unique().
			Required().
			Immutable(),
		edge.From("utility", Utility.Type).
			Ref("hearing_utilities").
			Field("utility_id").
			Unique(),
	}
}

// Indexes of the HearingUtility.
func (HearingUtility) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("hearing_id"),
	}
}
