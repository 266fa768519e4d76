// Code generated by ent, DO NOT EDIT.

package pipelineschedule

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the pipelineschedule type in the database.
	Label = "pipeline_schedule"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "schedule_id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// FieldName holds the string denoting the name field in the database.
	FieldName = "name"
	// FieldTarget holds the string denoting the target field in the database.
	FieldTarget = "target"
	// FieldScheduleType holds the string denoting the schedule_type field in the database.
	FieldScheduleType = "schedule_type"
	// FieldScheduleValue holds the string denoting the schedule_value field in the database.
	FieldScheduleValue = "schedule_value"
	// FieldConfig holds the string denoting the config field in the database.
	FieldConfig = "config"
	// FieldEnabled holds the string denoting the enabled field in the database.
	FieldEnabled = "enabled"
	// FieldNextRunAt holds the string denoting the next_run_at field in the database.
	FieldNextRunAt = "next_run_at"
	// FieldLastRunAt holds the string denoting the last_run_at field in the database.
	FieldLastRunAt = "last_run_at"
	// FieldLastRunStatus holds the string denoting the last_run_status field in the database.
	FieldLastRunStatus = "last_run_status"
	// FieldLastRunError holds the string denoting the last_run_error field in the database.
	FieldLastRunError = "last_run_error"
	// Table holds the table name of the pipelineschedule in the database.
	Table = "pipeline_schedules"
)

// Columns holds all SQL columns for pipelineschedule fields.
var Columns = []string{
	FieldID,
	FieldCreatedAt,
	FieldUpdatedAt,
	FieldName,
	FieldTarget,
	FieldScheduleType,
	FieldScheduleValue,
	FieldConfig,
	FieldEnabled,
	FieldNextRunAt,
	FieldLastRunAt,
	FieldLastRunStatus,
	FieldLastRunError,
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
	// DefaultEnabled holds the default value on creation for the "enabled" field.
	DefaultEnabled bool
	// LastRunErrorValidator is a validator for the "last_run_error" field. It is called by the builders before save.
	LastRunErrorValidator func(string) error
)

// Target defines the type for the "target" enum field.
type Target string

// Target values.
const (
	TargetPipeline Target = "pipeline"
	TargetScraper  Target = "scraper"
	TargetAll      Target = "all"
)

func (t Target) String() string {
	return string(t)
}

// TargetValidator is a validator for the "target" field enum values. It is called by the builders before save.
func TargetValidator(t Target) error {
	switch t {
	case TargetPipeline, TargetScraper, TargetAll:
		return nil
	default:
		return fmt.Errorf("pipelineschedule: invalid enum value for target field: %q", t)
	}
}

// ScheduleType defines the type for the "schedule_type" enum field.
type ScheduleType string

// ScheduleType values.
const (
	ScheduleTypeInterval ScheduleType = "interval"
	ScheduleTypeDaily    ScheduleType = "daily"
	ScheduleTypeCron     ScheduleType = "cron"
)

func (st ScheduleType) String() string {
	return string(st)
}

// ScheduleTypeValidator is a validator for the "schedule_type" field enum values. It is called by the builders before save.
func ScheduleTypeValidator(st ScheduleType) error {
	switch st {
	case ScheduleTypeInterval, ScheduleTypeDaily, ScheduleTypeCron:
		return nil
	default:
		return fmt.Errorf("pipelineschedule: invalid enum value for schedule_type field: %q", st)
	}
}

// OrderOption defines the ordering options for the PipelineSchedule queries.
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

// ByTarget orders the results by the target field.
func ByTarget(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTarget, opts...).ToFunc()
}

// ByScheduleType orders the results by the schedule_type field.
func ByScheduleType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldScheduleType, opts...).ToFunc()
}

// ByScheduleValue orders the results by the schedule_value field.
func ByScheduleValue(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldScheduleValue, opts...).ToFunc()
}

// ByEnabled orders the results by the enabled field.
func ByEnabled(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEnabled, opts...).ToFunc()
}

// ByNextRunAt orders the results by the next_run_at field.
func ByNextRunAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNextRunAt, opts...).ToFunc()
}

// ByLastRunAt orders the results by the last_run_at field.
func ByLastRunAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastRunAt, opts...).ToFunc()
}

// ByLastRunStatus orders the results by the last_run_status field.
func ByLastRunStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastRunStatus, opts...).ToFunc()
}

// ByLastRunError orders the results by the last_run_error field.
func ByLastRunError(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastRunError, opts...).ToFunc()
}
