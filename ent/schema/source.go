package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Source holds the schema definition for one ingestion endpoint.
type Source struct {
	ent.Schema
}

// Mixin of the Source.
func (Source) Mixin() []ent.Mixin {
	return []ent.Mixin{TimeMixin{}}
}

// Fields of the Source.
func (Source) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("source_id").
			Unique().
			Immutable(),
		field.String("state_code").
			MaxLen(2),
		field.Enum("kind").
			Values("video_channel", "admin_monitor", "rss_feed", "api_endpoint"),
		field.String("url"),
		field.JSON("config", map[string]any{}).
			Optional().
			Comment("Adapter-private configuration"),
		field.Bool("enabled").
			Default(true),
		field.Int("check_frequency_hours").
			Default(24),
		field.Time("last_checked_at").
			Optional().
			Nillable(),
		field.Time("last_hearing_at").
			Optional().
			Nillable(),
		field.Enum("status").
			Values("pending", "active", "error").
			Default("pending"),
		field.String("error_message").
			Optional().
			Nillable().
			MaxLen(500),
	}
}

// Edges of the Source.
func (Source) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("hearings", Hearing.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the Source.
func (Source) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("state_code"),
		index.Fields("enabled", "status"),
	}
}
