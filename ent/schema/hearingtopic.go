package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// HearingTopic holds the schema definition for a hearing↔topic link
// produced by entity linking.
type HearingTopic struct {
	ent.Schema
}

// Mixin of the HearingTopic.
func (HearingTopic) Mixin() []ent.Mixin {
	return []ent.Mixin{TimeMixin{}}
}

// Fields of the HearingTopic.
func (HearingTopic) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("hearing_topic_id").
			Unique().
			Immutable(),
		field.String("hearing_id").
			Immutable(),
		field.String("topic_id").
			Optional().
			Nillable(),
		field.String("raw_name"),
		field.String("relevance").
			Optional(),
		field.Float("confidence").
			Default(0),
		field.Bool("needs_review").
			Default(false),
	}
}

// Edges of the HearingTopic.
func (HearingTopic) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("hearing", Hearing.Type).
			Ref("hearing_topics").
			Field("hearing_id").
			Unique().
			Required().
			Immutable(),
		edge.From("topic", Topic.Type).
			Ref("hearing_topics").
			Field("topic_id").
			Unique(),
	}
}

// Indexes of the HearingTopic.
func (HearingTopic) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("hearing_id"),
	}
}
