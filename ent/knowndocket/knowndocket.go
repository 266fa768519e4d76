// Code generated by ent, DO NOT EDIT.

package knowndocket

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the knowndocket type in the database.
	Label = "known_docket"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "known_docket_id"
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
	// FieldYear holds the string denoting the year field in the database.
	FieldYear = "year"
	// FieldCaseNumber holds the string denoting the case_number field in the database.
	FieldCaseNumber = "case_number"
	// FieldSuffix holds the string denoting the suffix field in the database.
	FieldSuffix = "suffix"
	// FieldUtilitySector holds the string denoting the utility_sector field in the database.
	FieldUtilitySector = "utility_sector"
	// FieldTitle holds the string denoting the title field in the database.
	FieldTitle = "title"
	// FieldUtilityName holds the string denoting the utility_name field in the database.
	FieldUtilityName = "utility_name"
	// FieldFilingDate holds the string denoting the filing_date field in the database.
	FieldFilingDate = "filing_date"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldCaseType holds the string denoting the case_type field in the database.
	FieldCaseType = "case_type"
	// FieldSourceURL holds the string denoting the source_url field in the database.
	FieldSourceURL = "source_url"
	// EdgeDockets holds the string denoting the dockets edge name in mutations.
	EdgeDockets = "dockets"
	// EdgeExtractedDockets holds the string denoting the extracted_dockets edge name in mutations.
	EdgeExtractedDockets = "extracted_dockets"
	// DocketFieldID holds the string denoting the ID field of the Docket.
	DocketFieldID = "docket_id"
	// ExtractedDocketFieldID holds the string denoting the ID field of the ExtractedDocket.
	ExtractedDocketFieldID = "extracted_docket_id"
	// Table holds the table name of the knowndocket in the database.
	Table = "known_dockets"
	// DocketsTable is the table that holds the dockets relation/edge.
	DocketsTable = "dockets"
	// DocketsInverseTable is the table name for the Docket entity.
	// It exists in this package in order to avoid circular dependency with the "docket" package.
	DocketsInverseTable = "dockets"
	// DocketsColumn is the table column denoting the dockets relation/edge.
	DocketsColumn = "known_docket_id"
	// ExtractedDocketsTable is the table that holds the extracted_dockets relation/edge.
	ExtractedDocketsTable = "extracted_dockets"
	// ExtractedDocketsInverseTable is the table name for the ExtractedDocket entity.
	// It exists in this package in order to avoid circular dependency with the "extracteddocket" package.
	ExtractedDocketsInverseTable = "extracted_dockets"
	// ExtractedDocketsColumn is the table column denoting the extracted_dockets relation/edge.
	ExtractedDocketsColumn = "known_docket_id"
)

// Columns holds all SQL columns for knowndocket fields.
var Columns = []string{
	FieldID,
	FieldCreatedAt,
	FieldUpdatedAt,
	FieldStateCode,
	FieldDocketNumber,
	FieldNormalizedID,
	FieldYear,
	FieldCaseNumber,
	FieldSuffix,
	FieldUtilitySector,
	FieldTitle,
	FieldUtilityName,
	FieldFilingDate,
	FieldStatus,
	FieldCaseType,
	FieldSourceURL,
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
)

// OrderOption defines the ordering options for the KnownDocket queries.
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

// ByUtilitySector orders the results by the utility_sector field.
func ByUtilitySector(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUtilitySector, opts...).ToFunc()
}

// ByTitle orders the results by the title field.
func ByTitle(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTitle, opts...).ToFunc()
}

// ByUtilityName orders the results by the utility_name field.
func ByUtilityName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUtilityName, opts...).ToFunc()
}

// ByFilingDate orders the results by the filing_date field.
func ByFilingDate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFilingDate, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByCaseType orders the results by the case_type field.
func ByCaseType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCaseType, opts...).ToFunc()
}

// BySourceURL orders the results by the source_url field.
func BySourceURL(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSourceURL, opts...).ToFunc()
}

// ByDocketsCount orders the results by dockets count.
func ByDocketsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newDocketsStep(), opts...)
	}
}

// ByDockets orders the results by dockets terms.
func ByDockets(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newDocketsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByExtractedDocketsCount orders the results by extracted_dockets count.
func ByExtractedDocketsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newExtractedDocketsStep(), opts...)
	}
}

// ByExtractedDockets orders the results by extracted_dockets terms.
func ByExtractedDockets(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newExtractedDocketsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newDocketsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(DocketsInverseTable, DocketFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, DocketsTable, DocketsColumn),
	)
}
func newExtractedDocketsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ExtractedDocketsInverseTable, ExtractedDocketFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, ExtractedDocketsTable, ExtractedDocketsColumn),
	)
}
