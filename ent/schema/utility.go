package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Utility holds the schema definition for a canonical utility company
// record used by entity linking.
type Utility struct {
	ent.Schema
}

// Mixin of the Utility.
func (Utility) Mixin() []ent.Mixin {
	return []ent.Mixin{TimeMixin{}}
}

// Fields of the Utility.
func (Utility) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("utility_id").
			Unique().
			Immutable(),
		field.String("state_code").
			MaxLen(2),
		field.String("name"),
		field.String("normalized_name").
			Comment("Lowercased, trimmed"),
		field.JSON("aliases", []string{}).
			Optional(),
		field.String("sector").
			Optional(),
		field.Int("mention_count").
			Default(0),
	}
}

// Edges of the Utility.
func (Utility) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("hearing_utilities", HearingUtility.Type),
	}
}

// Indexes of the Utility.
func (Utility) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("state_code", "normalized_name").
			Unique(),
	}
}
