package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
)

// Topic holds the schema definition for a canonical topic tag used by
// entity linking.
type Topic struct {
	ent.Schema
}

// Mixin of the Topic.
func (Topic) Mixin() []ent.Mixin {
	return []ent.Mixin{TimeMixin{}}
}

// Fields of the Topic.
func (Topic) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("topic_id").
			Unique().
			Immutable(),
		field.String("name"),
		field.String("normalized_name").
			Unique(),
		field.JSON("aliases", []string{}).
			Optional(),
		field.String("category").
			Optional(),
		field.Int("mention_count").
			Default(0),
	}
}

// Edges of the Topic.
func (Topic) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("hearing_topics", HearingTopic.Type),
	}
}
