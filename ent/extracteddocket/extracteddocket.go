// Code generated by ent, DO NOT EDIT.

package extracteddocket

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the extracteddocket type in the database.
	Label = "extracted_docket"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "extracted_docket_id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// FieldHearingID holds the string denoting the hearing_id field in the database.
	FieldHearingID = "hearing_id"
	// FieldRawText holds the string denoting the raw_text field in the database.
	FieldRawText = "raw_text"
	// FieldNormalizedID holds the string denoting the normalized_id field in the database.
	FieldNormalizedID = "normalized_id"
	// FieldStateCode holds the string denoting the state_code field in the database.
	FieldStateCode = "state_code"
	// FieldYear holds the string denoting the year field in the database.
	FieldYear = "year"
	// FieldCaseNumber holds the string denoting the case_number field in the database.
	FieldCaseNumber = "case_number"
	// FieldSuffix holds the string denoting the suffix field in the database.
	FieldSuffix = "suffix"
	// FieldSector holds the string denoting the sector field in the database.
	FieldSector = "sector"
	// FieldConfidence holds the string denoting the confidence field in the database.
	FieldConfidence = "confidence"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldMatchType holds the string denoting the match_type field in the database.
	FieldMatchType = "match_type"
	// FieldTriggerPhrase holds the string denoting the trigger_phrase field in the database.
	FieldTriggerPhrase = "trigger_phrase"
	// FieldKnownDocketID holds the string denoting the known_docket_id field in the database.
	FieldKnownDocketID = "known_docket_id"
	// FieldFuzzyScore holds the string denoting the fuzzy_score field in the database.
	FieldFuzzyScore = "fuzzy_score"
	// FieldContextBefore holds the string denoting the context_before field in the database.
	FieldContextBefore = "context_before"
	// FieldContextAfter holds the string denoting the context_after field in the database.
	FieldContextAfter = "context_after"
	// FieldSuggestedCorrection holds the string denoting the suggested_correction field in the database.
	FieldSuggestedCorrection = "suggested_correction"
	// EdgeHearing holds the string denoting the hearing edge name in mutations.
	EdgeHearing = "hearing"
	// EdgeKnownDocket holds the string denoting the known_docket edge name in mutations.
	EdgeKnownDocket = "known_docket"
	// HearingFieldID holds the string denoting the ID field of the Hearing.
	HearingFieldID = "hearing_id"
	// KnownDocketFieldID holds the string denoting the ID field of the KnownDocket.
	KnownDocketFieldID = "known_docket_id"
	// Table holds the table name of the extracteddocket in the database.
	Table = "extracted_dockets"
	// HearingTable is the table that holds the hearing relation/edge.
	HearingTable = "extracted_dockets"
	// HearingInverseTable is the table name for the Hearing entity.
	// It exists in this package in order to avoid circular dependency with the "hearing" package.
	HearingInverseTable = "hearings"
	// HearingColumn is the table column denoting the hearing relation/edge.
	HearingColumn = "hearing_id"
	// KnownDocketTable is the table that holds the known_docket relation/edge.
	KnownDocketTable = "extracted_dockets"
	// KnownDocketInverseTable is the table name for the KnownDocket entity.
	// It exists in this package in order to avoid circular dependency with the "knowndocket" package.
	KnownDocketInverseTable = "known_dockets"
	// KnownDocketColumn is the table column denoting the known_docket relation/edge.
	KnownDocketColumn = "known_docket_id"
)

// Columns holds all SQL columns for extracteddocket fields.
var Columns = []string{
	FieldID,
	FieldCreatedAt,
	FieldUpdatedAt,
	FieldHearingID,
	FieldRawText,
	FieldNormalizedID,
	FieldStateCode,
	FieldYear,
	FieldCaseNumber,
	FieldSuffix,
	FieldSector,
	FieldConfidence,
	FieldStatus,
	FieldMatchType,
	FieldTriggerPhrase,
	FieldKnownDocketID,
	FieldFuzzyScore,
	FieldContextBefore,
	FieldContextAfter,
	FieldSuggestedCorrection,
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
	// StateCodeValidator is a validator for the "state_code" field. It is called by the builders before save.
	StateCodeValidator func(string) error
	// DefaultFuzzyScore holds the default value on creation for the "fuzzy_score" field.
	DefaultFuzzyScore float64
)

// Status defines the type for the "status" enum field.
type Status string

// Status values.
const (
	StatusAccepted    Status = "accepted"
	StatusNeedsReview Status = "needs_review"
	StatusRejected    Status = "rejected"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusAccepted, StatusNeedsReview, StatusRejected:
		return nil
	default:
		return fmt.Errorf("extracteddocket: invalid enum value for status field: %q", s)
	}
}

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
		return fmt.Errorf("extracteddocket: invalid enum value for match_type field: %q", mt)
	}
}

// OrderOption defines the ordering options for the ExtractedDocket queries.
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

// ByRawText orders the results by the raw_text field.
func ByRawText(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRawText, opts...).ToFunc()
}

// ByNormalizedID orders the results by the normalized_id field.
func ByNormalizedID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNormalizedID, opts...).ToFunc()
}

// ByStateCode orders the results by the state_code field.
func ByStateCode(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStateCode, opts...).ToFunc()
}

// ByYear orders the results by the year field.
func ByYear(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldYear, opts...).ToFunc()
}

// ByCaseNumber orders the results by the case_number field.
func ByCaseNumber(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCaseNumber, opts...).ToFunc()
}

// BySuffix orders the results by the suffix field.
func BySuffix(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSuffix, opts...).ToFunc()
}

// BySector orders the results by the sector field.
func BySector(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSector, opts...).ToFunc()
}

// ByConfidence orders the results by the confidence field.
func ByConfidence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConfidence, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByMatchType orders the results by the match_type field.
func ByMatchType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMatchType, opts...).ToFunc()
}

// ByTriggerPhrase orders the results by the trigger_phrase field.
func ByTriggerPhrase(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTriggerPhrase, opts...).ToFunc()
}

// ByKnownDocketID orders the results by the known_docket_id field.
func ByKnownDocketID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldKnownDocketID, opts...).ToFunc()
}

// ByFuzzyScore orders the results by the fuzzy_score field.
func ByFuzzyScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFuzzyScore, opts...).ToFunc()
}

// ByContextBefore orders the results by the context_before field.
func ByContextBefore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldContextBefore, opts...).ToFunc()
}

// ByContextAfter orders the results by the context_after field.
func ByContextAfter(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldContextAfter, opts...).ToFunc()
}

// BySuggestedCorrection orders the results by the suggested_correction field.
func BySuggestedCorrection(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSuggestedCorrection, opts...).ToFunc()
}

// ByHearingField orders the results by hearing field.
func ByHearingField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newHearingStep(), sql.OrderByField(field, opts...))
	}
}

// ByKnownDocketField orders the results by known_docket field.
func ByKnownDocketField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newKnownDocketStep(), sql.OrderByField(field, opts...))
	}
}
func newHearingStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(HearingInverseTable, HearingFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, HearingTable, HearingColumn),
	)
}
func newKnownDocketStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(KnownDocketInverseTable, KnownDocketFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, KnownDocketTable, KnownDocketColumn),
	)
}
