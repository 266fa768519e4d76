package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
)

// Analysis holds the schema definition for the fixed-schema LLM output
// for a hearing (one per hearing, cascade-owned). The known fields are
// typed columns; everything the model emits is also kept verbatim in
// raw_output for forward compatibility.
type Analysis struct {
	ent.Schema
}

// Mixin of the Analysis.
func (Analysis) Mixin() []ent.Mixin {
	return []ent.Mixin{TimeMixin{}}
}

// Fields of the Analysis.
func (Analysis) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("analysis_id").
			Unique().
			Immutable(),
		field.String("hearing_id").
			Unique().
			Immutable(),
		field.Text("summary").
			Optional(),
		field.String("one_sentence_summary").
			Optional(),
		field.JSON("participants", []map[string]any{}).
			Optional(),
		field.JSON("issues", []string{}).
			Optional(),
		field.JSON("commitments", []string{}).
			Optional(),
		field.JSON("vulnerabilities", []string{}).
			Optional(),
		field.JSON("commissioner_concerns", []string{}).
			Optional(),
		field.Enum("commissioner_mood").
			Values("supportive", "skeptical", "hostile", "neutral", "mixed").
			Optional(),
		field.Enum("public_sentiment").
			Values("supportive", "opposed", "mixed", "none").
			Optional(),
		field.String("likely_outcome").
			Optional(),
		field.Float("outcome_confidence").
			Optional().
			Nillable().
			Comment("In [0,1]"),
		field.JSON("risk_factors", []string{}).
			Optional(),
		field.JSON("action_items", []string{}).
			Optional(),
		field.JSON("quotes", []map[string]any{}).
			Optional(),
		field.JSON("topics", []map[string]any{}).
			Optional(),
		field.JSON("utilities", []map[string]any{}).
			Optional(),
		field.JSON("dockets", []string{}).
			Optional(),
		field.JSON("raw_output", map[string]any{}).
			Optional(),
		field.String("model").
			Optional(),
		field.Float("cost_usd").
			Default(0),
	}
}

// Edges of the Analysis.
func (Analysis) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("hearing", Hearing.Type).
			Ref("analysis").
			Field("hearing_id").
			Unique().
			Required().
			Immutable(),
	}
}
