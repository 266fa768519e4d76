// Code generated by ent, DO NOT EDIT.

package hearingutility

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the hearingutility type in the database.
	Label = "hearing_utility"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "hearing_utility_id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// FieldHearingID holds the string denoting the hearing_id field in the database.
	FieldHearingID = "hearing_id"
	// FieldUtilityID holds the string denoting the utility_id field in the database.
	FieldUtilityID = "utility_id"
	// FieldRawName holds the string denoting the raw_name field in the database.
	FieldRawName = "raw_name"
	// FieldRole holds the string denoting the role field in the database.
	FieldRole = "role"
	// FieldConfidence holds the string denoting the confidence field in the database.
	FieldConfidence = "confidence"
	// FieldNeedsReview holds the string denoting the needs_review field in the database.
	FieldNeedsReview = "needs_review"
	// EdgeHearing holds the string denoting the hearing edge name in mutations.
	EdgeHearing = "hearing"
	// EdgeUtility holds the string denoting the utility edge name in mutations.
	EdgeUtility = "utility"
	// HearingFieldID holds the string denoting the ID field of the Hearing.
	HearingFieldID = "hearing_id"
	// UtilityFieldID holds the string denoting the ID field of the Utility.
	UtilityFieldID = "utility_id"
	// Table holds the table name of the hearingutility in the database.
	Table = "hearing_utilities"
	// HearingTable is the table that holds the hearing relation/edge.
	HearingTable = "hearing_utilities"
	// HearingInverseTable is the table name for the Hearing entity.
	// It exists in this package in order to avoid circular dependency with the "hearing" package.
	HearingInverseTable = "hearings"
	// HearingColumn is the table column denoting the hearing relation/edge.
	HearingColumn = "hearing_id"
	// UtilityTable is the table that holds the utility relation/edge.
	UtilityTable = "hearing_utilities"
	// UtilityInverseTable is the table name for the Utility entity.
	// It exists in this package in order to avoid circular dependency with the "utility" package.
	UtilityInverseTable = "utilities"
	// UtilityColumn is the table column denoting the utility relation/edge.
	UtilityColumn = "utility_id"
)

// Columns holds all SQL columns for hearingutility fields.
var Columns = []string{
	FieldID,
	FieldCreatedAt,
	FieldUpdatedAt,
	FieldHearingID,
	FieldUtilityID,
	FieldRawName,
	FieldRole,
	FieldConfidence,
	FieldNeedsReview,
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
	// DefaultConfidence holds the default value on creation for the "confidence" field.
	DefaultConfidence float64
	// DefaultNeedsReview holds the default value on creation for the "needs_review" field.
	DefaultNeedsReview bool
)

// OrderOption defines the ordering options for the HearingUtility queries.
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

// ByUtilityID orders the results by the utility_id field.
func ByUtilityID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUtilityID, opts...).ToFunc()
}

// ByRawName orders the results by the raw_name field.
func ByRawName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRawName, opts...).ToFunc()
}

// ByRole orders the results by the role field.
func ByRole(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRole, opts...).ToFunc()
}

// ByConfidence orders the results by the confidence field.
func ByConfidence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConfidence, opts...).ToFunc()
}

// ByNeedsReview orders the results by the needs_review field.
func ByNeedsReview(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNeedsReview, opts...).ToFunc()
}

// ByHearingField orders the results by hearing field.
func ByHearingField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newHearingStep(), sql.OrderByField(field, opts...))
	}
}

// ByUtilityField orders the results by utility field.
func ByUtilityField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newUtilityStep(), sql.OrderByField(field, opts...))
	}
}
func newHearingStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(HearingInverseTable, HearingFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, HearingTable, HearingColumn),
	)
}
func newUtilityStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(UtilityInverseTable, UtilityFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, UtilityTable, UtilityColumn),
	)
}
