package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

// PipelineState holds the schema definition for the singleton
// cross-process coordination row (pause flag).
type PipelineState struct {
	ent.Schema
}

// Mixin of the PipelineState.
func (PipelineState) Mixin() []ent.Mixin {
	return []ent.Mixin{TimeMixin{}}
}

// Fields of the PipelineState.
func (PipelineState) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("state_key").
			Unique().
			Immutable().
			Comment("Always 'pipeline'"),
		field.Bool("paused").
			Default(false),
	}
}
