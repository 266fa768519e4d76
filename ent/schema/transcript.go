package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
)

// Transcript holds the schema definition for a hearing's transcript
// (one per hearing, cascade-owned).
type Transcript struct {
	ent.Schema
}

// Mixin of the Transcript.
func (Transcript) Mixin() []ent.Mixin {
	return []ent.Mixin{TimeMixin{}}
}

// Fields of the Transcript.
func (Transcript) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("transcript_id").
			Unique().
			Immutable(),
		field.String("hearing_id").
			Unique().
			Immutable(),
		field.Text("full_text"),
		field.Int("word_count").
			Default(0),
		field.String("model").
			Optional().
			Comment("Whisper model/provider that produced this transcript"),
		field.Float("cost_usd").
			Default(0),
	}
}

// Edges of the Transcript.
func (Transcript) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("hearing", Hearing.Type).
			Ref("transcript").
			Field("hearing_id").
			Unique().
			Required().
			Immutable(),
	}
}
