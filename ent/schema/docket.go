package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Docket holds the schema definition for an in-use docket record as
// referenced from one or more hearings. Created on first extraction;
// mention_count/last_mentioned_at updated on each subsequent mention.
// Never deleted while any HearingDocket link exists.
type Docket struct {
	ent.Schema
}

// Mixin of the Docket.
func (Docket) Mixin() []ent.Mixin {
	return []ent.Mixin{TimeMixin{}}
}

// Fields of the Docket.
func (Docket) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("docket_id").
			Unique().
			Immutable(),
		field.String("state_code").
			MaxLen(2),
		field.String("docket_number"),
		field.String("normalized_id").
			Unique(),
		field.String("title").
			Optional(),
		field.String("company").
			Optional(),
		field.String("sector").
			Optional(),
		field.String("status").
			Optional(),
		field.Time("first_seen_at"),
		field.Time("last_mentioned_at"),
		field.Int("mention_count").
			Default(1),
		field.Enum("confidence").
			Values("verified", "possible", "unverified").
			Default("unverified"),
		field.String("known_docket_id").
			Optional().
			Nillable(),
		field.Float("match_score").
			Default(0),
	}
}

// Edges of the Docket.
func (Docket) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("known_docket", KnownDocket.Type).
			Ref("dockets").
			Field("known_docket_id").
			Unique(),
		edge.To("hearing_dockets", HearingDocket.Type),
	}
}

// Indexes of the Docket.
func (Docket) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("state_code"),
		index.Fields("confidence"),
	}
}
