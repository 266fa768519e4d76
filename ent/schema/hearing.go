package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Hearing holds the schema definition for one regulatory proceeding recording.
// Its status field is the pipeline orchestrator's ground truth.
type Hearing struct {
	ent.Schema
}

// Mixin of the Hearing.
func (Hearing) Mixin() []ent.Mixin {
	return []ent.Mixin{TimeMixin{}}
}

// Fields of the Hearing.
func (Hearing) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("hearing_id").
			Unique().
			Immutable(),
		field.String("source_id").
			Immutable(),
		field.String("state_code").
			MaxLen(2),
		field.String("external_id").
			Comment("Unique within source"),
		field.String("title"),
		field.Text("description").
			Optional(),
		field.Time("hearing_date").
			Optional().
			Nillable(),
		field.String("hearing_type").
			Optional(),
		field.String("utility_name").
			Optional(),
		field.JSON("docket_numbers", []string{}).
			Optional(),
		field.String("source_url").
			Optional(),
		field.String("media_url").
			Optional(),
		field.Float("duration_seconds").
			Optional().
			Nillable(),
		field.Enum("status").
			Values(
				"discovered", "downloading", "transcribing", "transcribed",
				"analyzing", "analyzed", "extracting", "extracted",
				"complete", "error", "skipped",
			).
			Default("discovered"),
	}
}

// Edges of the Hearing.
func (Hearing) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("source", Source.Type).
			Ref("hearings").
			Field("source_id").
			Unique().
			Required().
			Immutable(),
		edge.To("transcript", Transcript.Type).
			Unique().
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("segments", Segment.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("analysis", Analysis.Type).
			Unique().
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("pipeline_jobs", PipelineJob.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("hearing_dockets", HearingDocket.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("extracted_dockets", ExtractedDocket.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("hearing_utilities", HearingUtility.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("hearing_topics", HearingTopic.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the Hearing.
func (Hearing) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("source_id", "external_id").
			Unique(),
		index.Fields("status"),
		index.Fields("state_code"),
		index.Fields("status", "updated_at"),
	}
}
