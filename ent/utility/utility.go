// Code generated by ent, DO NOT EDIT.

package utility

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the utility type in the database.
	Label = "utility"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "utility_id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// FieldStateCode holds the string denoting the state_code field in the database.
	FieldStateCode = "state_code"
	// FieldName holds the string denoting the name field in the database.
	FieldName = "name"
	// FieldNormalizedName holds the string denoting the normalized_name field in the database.
	FieldNormalizedName = "normalized_name"
	// FieldAliases holds the string denoting the aliases field in the database.
	FieldAliases = "aliases"
	// FieldSector holds the string denoting the sector field in the database.
	FieldSector = "sector"
	// FieldMentionCount holds the string denoting the mention_count field in the database.
	FieldMentionCount = "mention_count"
	// EdgeHearingUtilities holds the string denoting the hearing_utilities edge name in mutations.
	EdgeHearingUtilities = "hearing_utilities"
	// HearingUtilityFieldID holds the string denoting the ID field of the HearingUtility.
	HearingUtilityFieldID = "hearing_utility_id"
	// Table holds the table name of the utility in the database.
	Table = "utilities"
	// HearingUtilitiesTable is the table that holds the hearing_utilities relation/edge.
	HearingUtilitiesTable = "hearing_utilities"
	// HearingUtilitiesInverseTable is the table name for the HearingUtility entity.
	// It exists in this package in order to avoid circular dependency with the "hearingutility" package.
	HearingUtilitiesInverseTable = "hearing_utilities"
	// HearingUtilitiesColumn is the table column denoting the hearing_utilities relation/edge.
	HearingUtilitiesColumn = "utility_id"
)

// Columns holds all SQL columns for utility fields.
var Columns = []string{
	FieldID,
	FieldCreatedAt,
	FieldUpdatedAt,
	FieldStateCode,
	FieldName,
	FieldNormalizedName,
	FieldAliases,
	FieldSector,
	FieldMentionCount,
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
)

// OrderOption defines the ordering options for the Utility queries.
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

// ByName orders the results by the name field.
func ByName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldName, opts...).ToFunc()
}

// ByNormalizedName orders the results by the normalized_name field.
func ByNormalizedName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNormalizedName, opts...).ToFunc()
}

// BySector orders the results by the sector field.
func BySector(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSector, opts...).ToFunc()
}

// ByMentionCount orders the results by the mention_count field.
func ByMentionCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMentionCount, opts...).ToFunc()
}

// ByHearingUtilitiesCount orders the results by hearing_utilities count.
func ByHearingUtilitiesCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newHearingUtilitiesStep(), opts...)
	}
}

// ByHearingUtilities orders the results by hearing_utilities terms.
func ByHearingUtilities(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newHearingUtilitiesStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newHearingUtilitiesStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(HearingUtilitiesInverseTable, HearingUtilityFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, HearingUtilitiesTable, HearingUtilitiesColumn),
	)
}
