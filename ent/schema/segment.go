package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Segment holds the schema definition for an ordered fragment of a
// transcript. Indexes are dense and monotone from 0 within a hearing.
type Segment struct {
	ent.Schema
}

// Mixin of the Segment.
func (Segment) Mixin() []ent.Mixin {
	return []ent.Mixin{TimeMixin{}}
}

// Fields of the Segment.
func (Segment) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("segment_id").
			Unique().
			Immutable(),
		field.String("hearing_id").
			Immutable(),
		field.Int("segment_index"),
		field.Float("start_time").
			Comment("Seconds from hearing start"),
		field.Float("end_time"),
		field.Text("text"),
		field.String("speaker").
			Optional().
			Nillable(),
		field.String("speaker_role").
			Optional().
			Nillable(),
	}
}

// Edges of the Segment.
func (Segment) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("hearing", Hearing.Type).
			Ref("segments").
			Field("hearing_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the Segment.
func (Segment) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("hearing_id", "segment_index").
			Unique(),
	}
}
