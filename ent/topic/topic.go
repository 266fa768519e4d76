// Code generated by ent, DO NOT EDIT.

package topic

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the topic type in the database.
	Label = "topic"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "topic_id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// FieldName holds the string denoting the name field in the database.
	FieldName = "name"
	// FieldNormalizedName holds the string denoting the normalized_name field in the database.
	FieldNormalizedName = "normalized_name"
	// FieldAliases holds the string denoting the aliases field in the database.
	FieldAliases = "aliases"
	// FieldCategory holds the string denoting the category field in the database.
	FieldCategory = "category"
	// FieldMentionCount holds the string denoting the mention_count field in the database.
	FieldMentionCount = "mention_count"
	// EdgeHearingTopics holds the string denoting the hearing_topics edge name in mutations.
	EdgeHearingTopics = "hearing_topics"
	// HearingTopicFieldID holds the string denoting the ID field of the HearingTopic.
	HearingTopicFieldID = "hearing_topic_id"
	// Table holds the table name of the topic in the database.
	Table = "topics"
	// HearingTopicsTable is the table that holds the hearing_topics relation/edge.
	HearingTopicsTable = "hearing_topics"
	// HearingTopicsInverseTable is the table name for the HearingTopic entity.
	// It exists in this package in order to avoid circular dependency with the "hearingtopic" package.
	HearingTopicsInverseTable = "hearing_topics"
	// HearingTopicsColumn is the table column denoting the hearing_topics relation/edge.
	HearingTopicsColumn = "topic_id"
)

// Columns holds all SQL columns for topic fields.
var Columns = []string{
	FieldID,
	FieldCreatedAt,
	FieldUpdatedAt,
	FieldName,
	FieldNormalizedName,
	FieldAliases,
	FieldCategory,
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
	// DefaultMentionCount holds the default value on creation for the "mention_count" field.
	DefaultMentionCount int
)

// OrderOption defines the ordering options for the Topic queries.
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

// ByName orders the results by the name field.
func ByName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldName, opts...).ToFunc()
}

// ByNormalizedName orders the results by the normalized_name field.
func ByNormalizedName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNormalizedName, opts...).ToFunc()
}

// ByCategory orders the results by the category field.
func ByCategory(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCategory, opts...).ToFunc()
}

// ByMentionCount orders the results by the mention_count field.
func ByMentionCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMentionCount, opts...).ToFunc()
}

// ByHearingTopicsCount orders the results by hearing_topics count.
func ByHearingTopicsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newHearingTopicsStep(), opts...)
	}
}

// ByHearingTopics orders the results by hearing_topics terms.
func ByHearingTopics(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newHearingTopicsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newHearingTopicsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(HearingTopicsInverseTable, HearingTopicFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, HearingTopicsTable, HearingTopicsColumn),
	)
}
