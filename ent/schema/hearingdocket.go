package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// HearingDocket holds the schema definition for the hearing↔docket
// many-to-many link. On duplicate (hearing, docket) the fields are
// updated in place.
type HearingDocket struct {
	ent.Schema
}

// Mixin of the HearingDocket.
func (HearingDocket) Mixin() []ent.Mixin {
	return []ent.Mixin{TimeMixin{}}
}

// Fields of the HearingDocket.
func (HearingDocket) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("hearing_docket_id").
			Unique().
			Immutable(),
		field.String("hearing_id").
			Immutable(),
		field.String("docket_id").
			Immutable(),
		field.Float("confidence_score").
			Comment("In [0,100]"),
		field.Enum("match_type").
			Values("exact", "fuzzy", "none").
			Default("none"),
		field.Bool("needs_review").
			Default(true),
		field.String("review_reason").
			Optional(),
		field.Text("context_summary").
			Optional().
			Comment("Transcript snippet with the matched span delimited"),
		field.Bool("is_primary").
			Default(false),
	}
}

// Edges of the HearingDocket.
func (HearingDocket) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("hearing", Hearing.Type).
			Ref("hearing_dockets").
			Field("hearing_id").
			Unique().
			Required().
			Immutable(),
		edge.From("docket", Docket.Type).
			Ref("hearing_dockets").
			Field("docket_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the HearingDocket.
func (HearingDocket) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("hearing_id", "docket_id").
			Unique(),
		index.Fields("needs_review"),
	}
}
