// Code generated by ent, DO NOT EDIT.

package analysis

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the analysis type in the database.
	Label = "analysis"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "analysis_id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// FieldHearingID holds the string denoting the hearing_id field in the database.
	FieldHearingID = "hearing_id"
	// FieldSummary holds the string denoting the summary field in the database.
	FieldSummary = "summary"
	// FieldOneSentenceSummary holds the string denoting the one_sentence_summary field in the database.
	FieldOneSentenceSummary = "one_sentence_summary"
	// FieldParticipants holds the string denoting the participants field in the database.
	FieldParticipants = "participants"
	// FieldIssues holds the string denoting the issues field in the database.
	FieldIssues = "issues"
	// FieldCommitments holds the string denoting the commitments field in the database.
	FieldCommitments = "commitments"
	// FieldVulnerabilities holds the string denoting the vulnerabilities field in the database.
	FieldVulnerabilities = "vulnerabilities"
	// FieldCommissionerConcerns holds the string denoting the commissioner_concerns field in the database.
	FieldCommissionerConcerns = "commissioner_concerns"
	// FieldCommissionerMood holds the string denoting the commissioner_mood field in the database.
	FieldCommissionerMood = "commissioner_mood"
	// FieldPublicSentiment holds the string denoting the public_sentiment field in the database.
	FieldPublicSentiment = "public_sentiment"
	// FieldLikelyOutcome holds the string denoting the likely_outcome field in the database.
	FieldLikelyOutcome = "likely_outcome"
	// FieldOutcomeConfidence holds the string denoting the outcome_confidence field in the database.
	FieldOutcomeConfidence = "outcome_confidence"
	// FieldRiskFactors holds the string denoting the risk_factors field in the database.
	FieldRiskFactors = "risk_factors"
	// FieldActionItems holds the string denoting the action_items field in the database.
	FieldActionItems = "action_items"
	// FieldQuotes holds the string denoting the quotes field in the database.
	FieldQuotes = "quotes"
	// FieldTopics holds the string denoting the topics field in the database.
	FieldTopics = "topics"
	// FieldUtilities holds the string denoting the utilities field in the database.
	FieldUtilities = "utilities"
	// FieldDockets holds the string denoting the dockets field in the database.
	FieldDockets = "dockets"
	// FieldRawOutput holds the string denoting the raw_output field in the database.
	FieldRawOutput = "raw_output"
	// FieldModel holds the string denoting the model field in the database.
	FieldModel = "model"
	// FieldCostUsd holds the string denoting the cost_usd field in the database.
	FieldCostUsd = "cost_usd"
	// EdgeHearing holds the string denoting the hearing edge name in mutations.
	EdgeHearing = "hearing"
	// HearingFieldID holds the string denoting the ID field of the Hearing.
	HearingFieldID = "hearing_id"
	// Table holds the table name of the analysis in the database.
	Table = "analyses"
	// HearingTable is the table that holds the hearing relation/edge.
	HearingTable = "analyses"
	// HearingInverseTable is the table name for the Hearing entity.
	// It exists in this package in order to avoid circular dependency with the "hearing" package.
	HearingInverseTable = "hearings"
	// HearingColumn is the table column denoting the hearing relation/edge.
	HearingColumn = "hearing_id"
)

// Columns holds all SQL columns for analysis fields.
var Columns = []string{
	FieldID,
	FieldCreatedAt,
	FieldUpdatedAt,
	FieldHearingID,
	FieldSummary,
	FieldOneSentenceSummary,
	FieldParticipants,
	FieldIssues,
	FieldCommitments,
	FieldVulnerabilities,
	FieldCommissionerConcerns,
	FieldCommissionerMood,
	FieldPublicSentiment,
	FieldLikelyOutcome,
	FieldOutcomeConfidence,
	FieldRiskFactors,
	FieldActionItems,
	FieldQuotes,
	FieldTopics,
	FieldUtilities,
	FieldDockets,
	FieldRawOutput,
	FieldModel,
	FieldCostUsd,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
	// DefaultCostUsd holds the default value on creation for the "cost_usd" field.
	DefaultCostUsd float64
)

// CommissionerMood defines the type for the "commissioner_mood" enum field.
type CommissionerMood string

// CommissionerMood values.
const (
	CommissionerMoodSupportive CommissionerMood = "supportive"
	CommissionerMoodSkeptical  CommissionerMood = "skeptical"
	CommissionerMoodHostile    CommissionerMood = "hostile"
	CommissionerMoodNeutral    CommissionerMood = "neutral"
	CommissionerMoodMixed      CommissionerMood = "mixed"
)

func (cm CommissionerMood) String() string {
	return string(cm)
}

// CommissionerMoodValidator is a validator for the "commissioner_mood" field enum values. It is called by the builders before save.
func CommissionerMoodValidator(cm CommissionerMood) error {
	switch cm {
	case CommissionerMoodSupportive, CommissionerMoodSkeptical, CommissionerMoodHostile, CommissionerMoodNeutral, CommissionerMoodMixed:
		return nil
	default:
		return fmt.Errorf("analysis: invalid enum value for commissioner_mood field: %q", cm)
	}
}

// PublicSentiment defines the type for the "public_sentiment" enum field.
type PublicSentiment string

// PublicSentiment values.
const (
	PublicSentimentSupportive PublicSentiment = "supportive"
	PublicSentimentOpposed    PublicSentiment = "opposed"
	PublicSentimentMixed      PublicSentiment = "mixed"
	PublicSentimentNone       PublicSentiment = "none"
)

func (ps PublicSentiment) String() string {
	return string(ps)
}

// PublicSentimentValidator is a validator for the "public_sentiment" field enum values. It is called by the builders before save.
func PublicSentimentValidator(ps PublicSentiment) error {
	switch ps {
	case PublicSentimentSupportive, PublicSentimentOpposed, PublicSentimentMixed, PublicSentimentNone:
		return nil
	default:
		return fmt.Errorf("analysis: invalid enum value for public_sentiment field: %q", ps)
	}
}

// OrderOption defines the ordering options for the Analysis queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByHearingID orders the results by the hearing_id field.
func ByHearingID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldHearingID, opts...).ToFunc()
}

// BySummary orders the results by the summary field.
func BySummary(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSummary, opts...).ToFunc()
}

// ByOneSentenceSummary orders the results by the one_sentence_summary field.
func ByOneSentenceSummary(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOneSentenceSummary, opts...).ToFunc()
}

// ByCommissionerMood orders the results by the commissioner_mood field.
func ByCommissionerMood(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCommissionerMood, opts...).ToFunc()
}

// ByPublicSentiment orders the results by the public_sentiment field.
func ByPublicSentiment(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPublicSentiment, opts...).ToFunc()
}

// ByLikelyOutcome orders the results by the likely_outcome field.
func ByLikelyOutcome(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLikelyOutcome, opts...).ToFunc()
}

// ByOutcomeConfidence orders the results by the outcome_confidence field.
func ByOutcomeConfidence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOutcomeConfidence, opts...).ToFunc()
}

// ByModel orders the results by the model field.
func ByModel(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldModel, opts...).ToFunc()
}

// ByCostUsd orders the results by the cost_usd field.
func ByCostUsd(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCostUsd, opts...).ToFunc()
}

// ByHearingField orders the results by hearing field.
func ByHearingField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newHearingStep(), sql.OrderByField(field, opts...))
	}
}
func newHearingStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(HearingInverseTable, HearingFieldID),
		sqlgraph.Edge(sqlgraph.O2O, true, HearingTable, HearingColumn),
	)
}
