package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// PipelineSchedule holds the schema definition for a database-backed
// recurring schedule that dispatches orchestrator runs.
type PipelineSchedule struct {
	ent.Schema
}

// Mixin of the PipelineSchedule.
func (PipelineSchedule) Mixin() []ent.Mixin {
	return []ent.Mixin{TimeMixin{}}
}

// Fields of the PipelineSchedule.
func (PipelineSchedule) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("schedule_id").
			Unique().
			Immutable(),
		field.String("name").
			Unique(),
		field.Enum("target").
			Values("pipeline", "scraper", "all"),
		field.Enum("schedule_type").
			Values("interval", "daily", "cron"),
		field.String("schedule_value").
			Comment("'30m' | 'HH:MM' UTC | 5-field cron"),
		field.JSON("config", map[string]any{}).
			Optional().
			Comment("Run filters and caps passed to the target"),
		field.Bool("enabled").
			Default(true),
		field.Time("next_run_at").
			Optional().
			Nillable(),
		field.Time("last_run_at").
			Optional().
			Nillable(),
		field.String("last_run_status").
			Optional(),
		field.String("last_run_error").
			Optional().
			MaxLen(500),
	}
}

// Indexes of the PipelineSchedule.
func (PipelineSchedule) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("enabled", "next_run_at"),
	}
}
