package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

// State holds the schema definition for the State reference entity (~50 rows).
type State struct {
	ent.Schema
}

// Mixin of the State.
func (State) Mixin() []ent.Mixin {
	return []ent.Mixin{TimeMixin{}}
}

// Fields of the State.
func (State) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("state_id").
			Unique().
			Immutable(),
		field.String("code").
			Unique().
			MaxLen(2).
			Comment("Two-letter postal code, e.g. 'FL'"),
		field.String("name"),
		field.String("commission_name").
			Optional().
			Comment("e.g. 'Florida Public Service Commission'"),
	}
}
