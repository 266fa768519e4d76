// Code generated by ent, DO NOT EDIT.

package docket

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the docket type in the database.
	Label = "docket"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "docket_id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// FieldStateCode holds the string denoting the state_code field in the database.
	FieldStateCode = "state_code"
	// FieldDocketNumber holds the string denoting the docket_number field in the database.
	FieldDocketNumber = "docket_number"
	// FieldNormalizedID holds the string denoting the normalized_id field in the database.
	FieldNormalizedID = "normalized_id"
	// FieldTitle holds the string denoting the title field in the database.
	FieldTitle = "title"
	// FieldCompany holds the string denoting the company field in the database.
	FieldCompany = "company"
	// FieldSector holds the string denoting the sector field in the database.
	FieldSector = "sector"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldFirstSeenAt holds the string denoting the first_seen_at field in the database.
	FieldFirstSeenAt = "first_seen_at"
	// FieldLastMentionedAt holds the string denoting the last_mentioned_at field in the database.
	FieldLastMentionedAt = "last_mentioned_at"
	// FieldMentionCount holds the string denoting the mention_count field in the database.
	FieldMentionCount = "mention_count"
	// FieldConfidence holds the string denoting the confidence field in the database.
	FieldConfidence = "confidence"
	// FieldKnownDocketID holds the string denoting the known_docket_id field in the database.
	FieldKnownDocketID = "known_docket_id"
	// FieldMatchScore holds the string denoting the match_score field in the database.
	FieldMatchScore = "match_score"
	// EdgeKnownDocket holds the string denoting the known_docket edge name in mutations.
	EdgeKnownDocket = "known_docket"
	// EdgeHearingDockets holds the string denoting the hearing_dockets edge name in mutations.
	EdgeHearingDockets = "hearing_dockets"
	// KnownDocketFieldID holds the string denoting the ID field of the KnownDocket.
	KnownDocketFieldID = "known_docket_id"
	// HearingDocketFieldID holds the string denoting the ID field of the HearingDocket.
	HearingDocketFieldID = "hearing_docket_id"
	// Table holds the table name of the docket in the database.
	Table = "dockets"
	// KnownDocketTable is the table that holds the known_docket relation/edge.
	KnownDocketTable = "dockets"
	// KnownDocketInverseTable is the table name for the KnownDocket entity.
	// It exists in this package in order to avoid circular dependency with the "knowndocket" package.
	KnownDocketInverseTable = "known_dockets"
	// KnownDocketColumn is the table column denoting the known_docket relation/edge.
	KnownDocketColumn = "known_docket_id"
	// HearingDocketsTable is the table that holds the hearing_dockets relation/edge.
	HearingDocketsTable = "hearing_dockets"
	// HearingDocketsInverseTable is the table name for the HearingDocket entity.
	// It exists in this package in order to avoid circular dependency with the "hearingdocket" package.
	HearingDocketsInverseTable = "hearing_dockets"
	// HearingDocketsColumn is the table column denoting the hearing_dockets relation/edge.
	HearingDocketsColumn = "docket_id"
)

// Columns holds all SQL columns for docket fields.
var Columns = []string{
	FieldID,
	FieldCreatedAt,
	FieldUpdatedAt,
	FieldStateCode,
	FieldDocketNumber,
	FieldNormalizedID,
	FieldTitle,
	FieldCompany,
	FieldSector,
	FieldStatus,
	FieldFirstSeenAt,
	FieldLastMentionedAt,
	FieldMentionCount,
	FieldConfidence,
	FieldKnownDocketID,
	FieldMatchScore,
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
	// DefaultMentionCount holds the default value on creation for the "mention_count" field.
	DefaultMentionCount int
	// DefaultMatchScore holds the default value on creation for the "match_score" field.
	DefaultMatchScore float64
)

// Confidence defines the type for the "confidence" enum field.
type Confidence string

// ConfidenceUnverified is the default value of the Confidence enum.
const DefaultConfidence = ConfidenceUnverified

// Confidence values.
const (
	ConfidenceVerified   Confidence = "verified"
	ConfidencePossible   Confidence = "possible"
	ConfidenceUnverified Confidence = "unverified"
)

func (c Confidence) String() string {
	return string(c)
}

// ConfidenceValidator is a validator for the "confidence" field enum values. It is called by the builders before save.
func ConfidenceValidator(c Confidence) error {
	switch c {
	case ConfidenceVerified, ConfidencePossible, ConfidenceUnverified:
		return nil
	default:
		return fmt.Errorf("docket: invalid enum value for confidence field: %q", c)
	}
}

// OrderOption defines the ordering options for the Docket queries.
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

// ByStateCode orders the results by the state_code field.
func ByStateCode(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStateCode, opts...).ToFunc()
}

// ByDocketNumber orders the results by the docket_number field.
func ByDocketNumber(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDocketNumber, opts...).ToFunc()
}

// ByNormalizedID orders the results by the normalized_id field.
func ByNormalizedID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNormalizedID, opts...).ToFunc()
}

// ByTitle orders the results by the title field.
func ByTitle(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTitle, opts...).ToFunc()
}

// ByCompany orders the results by the company field.
func ByCompany(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompany, opts...).ToFunc()
}

// BySector orders the results by the sector field.
func BySector(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSector, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByFirstSeenAt orders the results by the first_seen_at field.
func ByFirstSeenAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFirstSeenAt, opts...).ToFunc()
}

// ByLastMentionedAt orders the results by the last_mentioned_at field.
func ByLastMentionedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastMentionedAt, opts...).ToFunc()
}

// ByMentionCount orders the results by the mention_count field.
func ByMentionCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMentionCount, opts...).ToFunc()
}

// ByConfidence orders the results by the confidence field.
func ByConfidence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConfidence, opts...).ToFunc()
}

// ByKnownDocketID orders the results by the known_docket_id field.
func ByKnownDocketID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldKnownDocketID, opts...).ToFunc()
}

// ByMatchScore orders the results by the match_score field.
func ByMatchScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMatchScore, opts...).ToFunc()
}

// ByKnownDocketField orders the results by known_docket field.
func ByKnownDocketField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newKnownDocketStep(), sql.OrderByField(field, opts...))
	}
}

// ByHearingDocketsCount orders the results by hearing_dockets count.
func ByHearingDocketsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newHearingDocketsStep(), opts...)
	}
}

// ByHearingDockets orders the results by hearing_dockets terms.
func ByHearingDockets(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newHearingDocketsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newKnownDocketStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(KnownDocketInverseTable, KnownDocketFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, KnownDocketTable, KnownDocketColumn),
	)
}
func newHearingDocketsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(HearingDocketsInverseTable, HearingDocketFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, HearingDocketsTable, HearingDocketsColumn),
	)
}
