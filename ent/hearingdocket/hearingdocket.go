// Code generated by ent, DO NOT EDIT.

package hearingdocket

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the hearingdocket type in the database.
	Label = "hearing_docket"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "hearing_docket_id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// FieldHearingID holds the string denoting the hearing_id field in the database.
	FieldHearingID = "hearing_id"
	// FieldDocketID holds the string denoting the docket_id field in the database.
	FieldDocketID = "docket_id"
	// FieldConfidenceScore holds the string denoting the confidence_score field in the database.
	FieldConfidenceScore = "confidence_score"
	// FieldMatchType holds the string denoting the match_type field in the database.
	FieldMatchType = "match_type"
	// FieldNeedsReview holds the string denoting the needs_review field in the database.
	FieldNeedsReview = "needs_review"
	// FieldReviewReason holds the string denoting the review_reason field in the database.
	FieldReviewReason = "review_reason"
	// FieldContextSummary holds the string denoting the context_summary field in the database.
	FieldContextSummary = "context_summary"
	// FieldIsPrimary holds the string denoting the is_primary field in the database.
	FieldIsPrimary = "is_primary"
	// EdgeHearing holds the string denoting the hearing edge name in mutations.
	EdgeHearing = "hearing"
	// EdgeDocket holds the string denoting the docket edge name in mutations.
	EdgeDocket = "docket"
	// HearingFieldID holds the string denoting the ID field of the Hearing.
	HearingFieldID = "hearing_id"
	// DocketFieldID holds the string denoting the ID field of the Docket.
	DocketFieldID = "docket_id"
	// Table holds the table name of the hearingdocket in the database.
	Table = "hearing_dockets"
	// HearingTable is the table that holds the hearing relation/edge.
	HearingTable = "hearing_dockets"
	// HearingInverseTable is the table name for the Hearing entity.
	// It exists in this package in order to avoid circular dependency with the "hearing" package.
	HearingInverseTable = "hearings"
	// HearingColumn is the table column denoting the hearing relation/edge.
	HearingColumn = "hearing_id"
	// DocketTable is the table that holds the docket relation/edge.
	DocketTable = "hearing_dockets"
	// DocketInverseTable is the table name for the Docket entity.
	// It exists in this package in order to avoid circular dependency with the "docket" package.
	DocketInverseTable = "dockets"
	// DocketColumn is the table column denoting the docket relation/edge.
	DocketColumn = "docket_id"
)

// Columns holds all SQL columns for hearingdocket fields.
var Columns = []string{
	FieldID,
	FieldCreatedAt,
	FieldUpdatedAt,
	FieldHearingID,
	FieldDocketID,
	FieldConfidenceScore,
	FieldMatchType,
	FieldNeedsReview,
	FieldReviewReason,
	FieldContextSummary,
	FieldIsPrimary,
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
	// DefaultNeedsReview holds the default value on creation for the "needs_review" field.
	DefaultNeedsReview bool
	// DefaultIsPrimary holds the default value on creation for the "is_primary" field.
	DefaultIsPrimary bool
)

// MatchType defines the type for the "match_type" enum field.
type MatchType string

// MatchTypeNone is the default value of the MatchType enum.
const DefaultMatchType = MatchTypeNone

// MatchType values.
const (
	MatchTypeExact MatchType = "exact"
	MatchTypeFuzzy MatchType = "fuzzy"
	MatchTypeNone  MatchType = "none"
)

func (mt MatchType) String() string {
	return string(mt)
}

// MatchTypeValidator is a validator for the "match_type" field enum values. It is called by the builders before save.
func MatchTypeValidator(mt MatchType) error {
	switch mt {
	case MatchTypeExact, MatchTypeFuzzy, MatchTypeNone:
		return nil
	default:
		return fmt.Errorf("hearingdocket: invalid enum value for match_type field: %q", mt)
	}
}

// OrderOption defines the ordering options for the HearingDocket queries.
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

// ByDocketID orders the results by the docket_id field.
func ByDocketID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDocketID, opts...).ToFunc()
}

// ByConfidenceScore orders the results by the confidence_score field.
func ByConfidenceScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConfidenceScore, opts...).ToFunc()
}

// ByMatchType orders the results by the match_type field.
func ByMatchType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMatchType, opts...).ToFunc()
}

// ByNeedsReview orders the results by the needs_review field.
func ByNeedsReview(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNeedsReview, opts...).ToFunc()
}

// ByReviewReason orders the results by the review_reason field.
func ByReviewReason(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReviewReason, opts...).ToFunc()
}

// ByContextSummary orders the results by the context_summary field.
func ByContextSummary(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldContextSummary, opts...).ToFunc()
}

// ByIsPrimary orders the results by the is_primary field.
func ByIsPrimary(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIsPrimary, opts...).ToFunc()
}

// ByHearingField orders the results by hearing field.
func ByHearingField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newHearingStep(), sql.OrderByField(field, opts...))
	}
}

// ByDocketField orders the results by docket field.
func ByDocketField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newDocketStep(), sql.OrderByField(field, opts...))
	}
}
func newHearingStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(HearingInverseTable, HearingFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, HearingTable, HearingColumn),
	)
}
func newDocketStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(DocketInverseTable, DocketFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, DocketTable, DocketColumn),
	)
}
