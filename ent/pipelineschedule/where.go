// Code generated by ent, DO NOT EDIT.

package pipelineschedule

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/canaryscope/canaryscope/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.PipelineSchedule {
	return predicate.PipelineSchedule(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.PipelineSchedule {
	return predicate.PipelineSchedule(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.PipelineSchedule {
	return predicate.PipelineSchedule(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.PipelineSchedule {
	return predicate.PipelineSchedule(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.PipelineSchedule {
	return predicate.PipelineSchedule(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.PipelineSchedule {
	return predicate.PipelineSchedule(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.PipelineSchedule {
	return predicate.PipelineSchedule(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.PipelineSchedule {
	return predicate.PipelineSchedule(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.PipelineSchedule {
	return predicate.PipelineSchedule(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.PipelineSchedule {
	return predicate.PipelineSchedule(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.PipelineSchedule {
	return predicate.PipelineSchedule(sql.FieldContainsFold(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.PipelineSchedule {
	return predicate.PipelineSchedule(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.PipelineSchedule {
	return predicate.PipelineSchedule(sql.FieldEQ(FieldUpdatedAt, v))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.PipelineSchedule {
	return predicate.PipelineSchedule(sql.FieldEQ(FieldName, v))
}

// ScheduleValue applies equality check predicate on the "schedule_value" field. It's identical to ScheduleValueEQ.
func ScheduleValue(v string) predicate.PipelineSchedule {
	return predicate.PipelineSchedule(sql.FieldEQ(FieldScheduleValue, v))
}

// Enabled applies equality check predicate on the "enabled" field. It's identical to EnabledEQ.
func Enabled(v bool) predicate.PipelineSchedule {
	return predicate.PipelineSchedule(sql.FieldEQ(FieldEnabled, v))
}

// NextRunAt applies equality check predicate on the "next_run_at" field. It's identical to NextRunAtEQ.
func NextRunAt(v time.Time) predicate.PipelineSchedule {
	return predicate.PipelineSchedule(sql.FieldEQ(FieldNextRunAt, v))
}

// LastRunAt applies equality check predicate on the "last_run_at" field. It's identical to LastRunAtEQ.
func LastRunAt(v time.Time) predicate.PipelineSchedule {
	return predicate.PipelineSchedule(sql.FieldEQ(FieldLastRunAt, v))
}

// LastRunStatus applies equality check predicate on the "last_run_status" field. It's identical to LastRunStatusEQ.
func LastRunStatus(v string) predicate.PipelineSchedule {
	return predicate.PipelineSchedule(sql.FieldEQ(FieldLastRunStatus, v))
}

// LastRunError applies equality check predicate on the "last_run_error" field. It's identical to LastRunErrorEQ.
func LastRunError(v string) predicate.PipelineSchedule {
	return predicate.PipelineSchedule(sql.FieldEQ(FieldLastRunError, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.PipelineSchedule {
	return predicate.PipelineSchedule(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.PipelineSchedule {
	return predicate.PipelineSchedule(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.PipelineSchedule {
	return predicate.PipelineSchedule(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.PipelineSchedule {
	return predicate.PipelineSchedule(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.PipelineSchedule {
	return predicate.PipelineSchedule(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.PipelineSchedule {
	return predicate.PipelineSchedule(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.PipelineSchedule {
	return predicate.PipelineSchedule(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.PipelineSchedule {
	return predicate.PipelineSchedule(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.PipelineSchedule {
	return predicate.PipelineSchedule(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.PipelineSchedule {
	return predicate.PipelineSchedule(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.PipelineSchedule {
	return predicate.PipelineSchedule(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.PipelineSchedule {
	return predicate.PipelineSchedule(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.PipelineSchedule {
	return predicate.PipelineSchedule(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.PipelineSchedule {
	return predicate.PipelineSchedule(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.PipelineSchedule {
	return predicate.PipelineSchedule(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.PipelineSchedule {
	return predicate.PipelineSchedule(sql.FieldLTE(FieldUpdatedAt, v))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.PipelineSchedule {
	return predicate.PipelineSchedule(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.PipelineSchedule {
	return predicate.PipelineSchedule(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.PipelineSchedule {
	return predicate.PipelineSchedule(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.PipelineSchedule {
	return predicate.PipelineSchedule(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.PipelineSchedule {
	return predicate.PipelineSchedule(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.PipelineSchedule {
	return predicate.PipelineSchedule(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.PipelineSchedule {
	return predicate.PipelineSchedule(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.PipelineSchedule {
	return predicate.PipelineSchedule(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.PipelineSchedule {
	return predicate.PipelineSchedule(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.PipelineSchedule {
	return predicate.PipelineSchedule(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.PipelineSchedule {
	return predicate.PipelineSchedule(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.PipelineSchedule {
	return predicate.PipelineSchedule(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.PipelineSchedule {
	return predicate.PipelineSchedule(sql.FieldContainsFold(FieldName, v))
}

// TargetEQ applies the EQ predicate on the "target" field.
func TargetEQ(v Target) predicate.PipelineSchedule {
	return predicate.PipelineSchedule(sql.FieldEQ(FieldTarget, v))
}

// TargetNEQ applies the NEQ predicate on the "target" field.
func TargetNEQ(v Target) predicate.PipelineSchedule {
	return predicate.PipelineSchedule(sql.FieldNEQ(FieldTarget, v))
}

// TargetIn applies the In predicate on the "target" field.
func TargetIn(vs ...Target) predicate.PipelineSchedule {
	return predicate.PipelineSchedule(sql.FieldIn(FieldTarget, vs...))
}

// TargetNotIn applies the NotIn predicate on the "target" field.
func TargetNotIn(vs ...Target) predicate.PipelineSchedule {
	return predicate.PipelineSchedule(sql.FieldNotIn(FieldTarget, vs...))
}

// ScheduleTypeEQ applies the EQ predicate on the "schedule_type" field.
func ScheduleTypeEQ(v ScheduleType) predicate.PipelineSchedule {
	return predicate.PipelineSchedule(sql.FieldEQ(FieldScheduleType, v))
}

// ScheduleTypeNEQ applies the NEQ predicate on the "schedule_type" field.
func ScheduleTypeNEQ(v ScheduleType) predicate.PipelineSchedule {
	return predicate.PipelineSchedule(sql.FieldNEQ(FieldScheduleType, v))
}

// ScheduleTypeIn applies the In predicate on the "schedule_type" field.
func ScheduleTypeIn(vs ...ScheduleType) predicate.PipelineSchedule {
	return predicate.PipelineSchedule(sql.FieldIn(FieldScheduleType, vs...))
}

// ScheduleTypeNotIn applies the NotIn predicate on the "schedule_type" field.
func ScheduleTypeNotIn(vs ...ScheduleType) predicate.PipelineSchedule {
	return predicate.PipelineSchedule(sql.FieldNotIn(FieldScheduleType, vs...))
}

// ScheduleValueEQ applies the EQ predicate on the "schedule_value" field.
func ScheduleValueEQ(v string) predicate.PipelineSchedule {
	return predicate.PipelineSchedule(sql.FieldEQ(FieldScheduleValue, v))
}

// ScheduleValueNEQ applies the NEQ predicate on the "schedule_value" field.
func ScheduleValueNEQ(v string) predicate.PipelineSchedule {
	return predicate.PipelineSchedule(sql.FieldNEQ(FieldScheduleValue, v))
}

// ScheduleValueIn applies the In predicate on the "schedule_value" field.
func ScheduleValueIn(vs ...string) predicate.PipelineSchedule {
	return predicate.PipelineSchedule(sql.FieldIn(FieldScheduleValue, vs...))
}

// ScheduleValueNotIn applies the NotIn predicate on the "schedule_value" field.
func ScheduleValueNotIn(vs ...string) predicate.PipelineSchedule {
	return predicate.PipelineSchedule(sql.FieldNotIn(FieldScheduleValue, vs...))
}

// ScheduleValueGT applies the GT predicate on the "schedule_value" field.
func ScheduleValueGT(v string) predicate.PipelineSchedule {
	return predicate.PipelineSchedule(sql.FieldGT(FieldScheduleValue, v))
}

// ScheduleValueGTE applies the GTE predicate on the "schedule_value" field.
func ScheduleValueGTE(v string) predicate.PipelineSchedule {
	return predicate.PipelineSchedule(sql.FieldGTE(FieldScheduleValue, v))
}

// ScheduleValueLT applies the LT predicate on the "schedule_value" field.
func ScheduleValueLT(v string) predicate.PipelineSchedule {
	return predicate.PipelineSchedule(sql.FieldLT(FieldScheduleValue, v))
}

// ScheduleValueLTE applies the LTE predicate on the "schedule_value" field.
func ScheduleValueLTE(v string) predicate.PipelineSchedule {
	return predicate.PipelineSchedule(sql.FieldLTE(FieldScheduleValue, v))
}

// ScheduleValueContains applies the Contains predicate on the "schedule_value" field.
func ScheduleValueContains(v string) predicate.PipelineSchedule {
	return predicate.PipelineSchedule(sql.FieldContains(FieldScheduleValue, v))
}

// ScheduleValueHasPrefix applies the HasPrefix predicate on the "schedule_value" field.
func ScheduleValueHasPrefix(v string) predicate.PipelineSchedule {
	return predicate.PipelineSchedule(sql.FieldHasPrefix(FieldScheduleValue, v))
}

// ScheduleValueHasSuffix applies the HasSuffix predicate on the "schedule_value" field.
func ScheduleValueHasSuffix(v string) predicate.PipelineSchedule {
	return predicate.PipelineSchedule(sql.FieldHasSuffix(FieldScheduleValue, v))
}

// ScheduleValueEqualFold applies the EqualFold predicate on the "schedule_value" field.
func ScheduleValueEqualFold(v string) predicate.PipelineSchedule {
	return predicate.PipelineSchedule(sql.FieldEqualFold(FieldScheduleValue, v))
}

// ScheduleValueContainsFold applies the ContainsFold predicate on the "schedule_value" field.
func ScheduleValueContainsFold(v string) predicate.PipelineSchedule {
	return predicate.PipelineSchedule(sql.FieldContainsFold(FieldScheduleValue, v))
}

// ConfigIsNil applies the IsNil predicate on the "config" field.
func ConfigIsNil() predicate.PipelineSchedule {
	return predicate.PipelineSchedule(sql.FieldIsNull(FieldConfig))
}

// ConfigNotNil applies the NotNil predicate on the "config" field.
func ConfigNotNil() predicate.PipelineSchedule {
	return predicate.PipelineSchedule(sql.FieldNotNull(FieldConfig))
}

// EnabledEQ applies the EQ predicate on the "enabled" field.
func EnabledEQ(v bool) predicate.PipelineSchedule {
	return predicate.PipelineSchedule(sql.FieldEQ(FieldEnabled, v))
}

// EnabledNEQ applies the NEQ predicate on the "enabled" field.
func EnabledNEQ(v bool) predicate.PipelineSchedule {
	return predicate.PipelineSchedule(sql.FieldNEQ(FieldEnabled, v))
}

// NextRunAtEQ applies the EQ predicate on the "next_run_at" field.
func NextRunAtEQ(v time.Time) predicate.PipelineSchedule {
	return predicate.PipelineSchedule(sql.FieldEQ(FieldNextRunAt, v))
}

// NextRunAtNEQ applies the NEQ predicate on the "next_run_at" field.
func NextRunAtNEQ(v time.Time) predicate.PipelineSchedule {
	return predicate.PipelineSchedule(sql.FieldNEQ(FieldNextRunAt, v))
}

// NextRunAtIn applies the In predicate on the "next_run_at" field.
func NextRunAtIn(vs ...time.Time) predicate.PipelineSchedule {
	return predicate.PipelineSchedule(sql.FieldIn(FieldNextRunAt, vs...))
}

// NextRunAtNotIn applies the NotIn predicate on the "next_run_at" field.
func NextRunAtNotIn(vs ...time.Time) predicate.PipelineSchedule {
	return predicate.PipelineSchedule(sql.FieldNotIn(FieldNextRunAt, vs...))
}

// NextRunAtGT applies the GT predicate on the "next_run_at" field.
func NextRunAtGT(v time.Time) predicate.PipelineSchedule {
	return predicate.PipelineSchedule(sql.FieldGT(FieldNextRunAt, v))
}

// NextRunAtGTE applies the GTE predicate on the "next_run_at" field.
func NextRunAtGTE(v time.Time) predicate.PipelineSchedule {
	return predicate.PipelineSchedule(sql.FieldGTE(FieldNextRunAt, v))
}

// NextRunAtLT applies the LT predicate on the "next_run_at" field.
func NextRunAtLT(v time.Time) predicate.PipelineSchedule {
	return predicate.PipelineSchedule(sql.FieldLT(FieldNextRunAt, v))
}

// NextRunAtLTE applies the LTE predicate on the "next_run_at" field.
func NextRunAtLTE(v time.Time) predicate.PipelineSchedule {
	return predicate.PipelineSchedule(sql.FieldLTE(FieldNextRunAt, v))
}

// NextRunAtIsNil applies the IsNil predicate on the "next_run_at" field.
func NextRunAtIsNil() predicate.PipelineSchedule {
	return predicate.PipelineSchedule(sql.FieldIsNull(FieldNextRunAt))
}

// NextRunAtNotNil applies the NotNil predicate on the "next_run_at" field.
func NextRunAtNotNil() predicate.PipelineSchedule {
	return predicate.PipelineSchedule(sql.FieldNotNull(FieldNextRunAt))
}

// LastRunAtEQ applies the EQ predicate on the "last_run_at" field.
func LastRunAtEQ(v time.Time) predicate.PipelineSchedule {
	return predicate.PipelineSchedule(sql.FieldEQ(FieldLastRunAt, v))
}

// LastRunAtNEQ applies the NEQ predicate on the "last_run_at" field.
func LastRunAtNEQ(v time.Time) predicate.PipelineSchedule {
	return predicate.PipelineSchedule(sql.FieldNEQ(FieldLastRunAt, v))
}

// LastRunAtIn applies the In predicate on the "last_run_at" field.
func LastRunAtIn(vs ...time.Time) predicate.PipelineSchedule {
	return predicate.PipelineSchedule(sql.FieldIn(FieldLastRunAt, vs...))
}

// LastRunAtNotIn applies the NotIn predicate on the "last_run_at" field.
func LastRunAtNotIn(vs ...time.Time) predicate.PipelineSchedule {
	return predicate.PipelineSchedule(sql.FieldNotIn(FieldLastRunAt, vs...))
}

// LastRunAtGT applies the GT predicate on the "last_run_at" field.
func LastRunAtGT(v time.Time) predicate.PipelineSchedule {
	return predicate.PipelineSchedule(sql.FieldGT(FieldLastRunAt, v))
}

// LastRunAtGTE applies the GTE predicate on the "last_run_at" field.
func LastRunAtGTE(v time.Time) predicate.PipelineSchedule {
	return predicate.PipelineSchedule(sql.FieldGTE(FieldLastRunAt, v))
}

// LastRunAtLT applies the LT predicate on the "last_run_at" field.
func LastRunAtLT(v time.Time) predicate.PipelineSchedule {
	return predicate.PipelineSchedule(sql.FieldLT(FieldLastRunAt, v))
}

// LastRunAtLTE applies the LTE predicate on the "last_run_at" field.
func LastRunAtLTE(v time.Time) predicate.PipelineSchedule {
	return predicate.PipelineSchedule(sql.FieldLTE(FieldLastRunAt, v))
}

// LastRunAtIsNil applies the IsNil predicate on the "last_run_at" field.
func LastRunAtIsNil() predicate.PipelineSchedule {
	return predicate.PipelineSchedule(sql.FieldIsNull(FieldLastRunAt))
}

// LastRunAtNotNil applies the NotNil predicate on the "last_run_at" field.
func LastRunAtNotNil() predicate.PipelineSchedule {
	return predicate.PipelineSchedule(sql.FieldNotNull(FieldLastRunAt))
}

// LastRunStatusEQ applies the EQ predicate on the "last_run_status" field.
func LastRunStatusEQ(v string) predicate.PipelineSchedule {
	return predicate.PipelineSchedule(sql.FieldEQ(FieldLastRunStatus, v))
}

// LastRunStatusNEQ applies the NEQ predicate on the "last_run_status" field.
func LastRunStatusNEQ(v string) predicate.PipelineSchedule {
	return predicate.PipelineSchedule(sql.FieldNEQ(FieldLastRunStatus, v))
}

// LastRunStatusIn applies the In predicate on the "last_run_status" field.
func LastRunStatusIn(vs ...string) predicate.PipelineSchedule {
	return predicate.PipelineSchedule(sql.FieldIn(FieldLastRunStatus, vs...))
}

// LastRunStatusNotIn applies the NotIn predicate on the "last_run_status" field.
func LastRunStatusNotIn(vs ...string) predicate.PipelineSchedule {
	return predicate.PipelineSchedule(sql.FieldNotIn(FieldLastRunStatus, vs...))
}

// LastRunStatusGT applies the GT predicate on the "last_run_status" field.
func LastRunStatusGT(v string) predicate.PipelineSchedule {
	return predicate.PipelineSchedule(sql.FieldGT(FieldLastRunStatus, v))
}

// LastRunStatusGTE applies the GTE predicate on the "last_run_status" field.
func LastRunStatusGTE(v string) predicate.PipelineSchedule {
	return predicate.PipelineSchedule(sql.FieldGTE(FieldLastRunStatus, v))
}

// LastRunStatusLT applies the LT predicate on the "last_run_status" field.
func LastRunStatusLT(v string) predicate.PipelineSchedule {
	return predicate.PipelineSchedule(sql.FieldLT(FieldLastRunStatus, v))
}

// LastRunStatusLTE applies the LTE predicate on the "last_run_status" field.
func LastRunStatusLTE(v string) predicate.PipelineSchedule {
	return predicate.PipelineSchedule(sql.FieldLTE(FieldLastRunStatus, v))
}

// LastRunStatusContains applies the Contains predicate on the "last_run_status" field.
func LastRunStatusContains(v string) predicate.PipelineSchedule {
	return predicate.PipelineSchedule(sql.FieldContains(FieldLastRunStatus, v))
}

// LastRunStatusHasPrefix applies the HasPrefix predicate on the "last_run_status" field.
func LastRunStatusHasPrefix(v string) predicate.PipelineSchedule {
	return predicate.PipelineSchedule(sql.FieldHasPrefix(FieldLastRunStatus, v))
}

// LastRunStatusHasSuffix applies the HasSuffix predicate on the "last_run_status" field.
func LastRunStatusHasSuffix(v string) predicate.PipelineSchedule {
	return predicate.PipelineSchedule(sql.FieldHasSuffix(FieldLastRunStatus, v))
}

// LastRunStatusIsNil applies the IsNil predicate on the "last_run_status" field.
func LastRunStatusIsNil() predicate.PipelineSchedule {
	return predicate.PipelineSchedule(sql.FieldIsNull(FieldLastRunStatus))
}

// LastRunStatusNotNil applies the NotNil predicate on the "last_run_status" field.
func LastRunStatusNotNil() predicate.PipelineSchedule {
	return predicate.PipelineSchedule(sql.FieldNotNull(FieldLastRunStatus))
}

// LastRunStatusEqualFold applies the EqualFold predicate on the "last_run_status" field.
func LastRunStatusEqualFold(v string) predicate.PipelineSchedule {
	return predicate.PipelineSchedule(sql.FieldEqualFold(FieldLastRunStatus, v))
}

// LastRunStatusContainsFold applies the ContainsFold predicate on the "last_run_status" field.
func LastRunStatusContainsFold(v string) predicate.PipelineSchedule {
	return predicate.PipelineSchedule(sql.FieldContainsFold(FieldLastRunStatus, v))
}

// LastRunErrorEQ applies the EQ predicate on the "last_run_error" field.
func LastRunErrorEQ(v string) predicate.PipelineSchedule {
	return predicate.PipelineSchedule(sql.FieldEQ(FieldLastRunError, v))
}

// LastRunErrorNEQ applies the NEQ predicate on the "last_run_error" field.
func LastRunErrorNEQ(v string) predicate.PipelineSchedule {
	return predicate.PipelineSchedule(sql.FieldNEQ(FieldLastRunError, v))
}

// LastRunErrorIn applies the In predicate on the "last_run_error" field.
func LastRunErrorIn(vs ...string) predicate.PipelineSchedule {
	return predicate.PipelineSchedule(sql.FieldIn(FieldLastRunError, vs...))
}

// LastRunErrorNotIn applies the NotIn predicate on the "last_run_error" field.
func LastRunErrorNotIn(vs ...string) predicate.PipelineSchedule {
	return predicate.PipelineSchedule(sql.FieldNotIn(FieldLastRunError, vs...))
}

// LastRunErrorGT applies the GT predicate on the "last_run_error" field.
func LastRunErrorGT(v string) predicate.PipelineSchedule {
	return predicate.PipelineSchedule(sql.FieldGT(FieldLastRunError, v))
}

// LastRunErrorGTE applies the GTE predicate on the "last_run_error" field.
func LastRunErrorGTE(v string) predicate.PipelineSchedule {
	return predicate.PipelineSchedule(sql.FieldGTE(FieldLastRunError, v))
}

// LastRunErrorLT applies the LT predicate on the "last_run_error" field.
func LastRunErrorLT(v string) predicate.PipelineSchedule {
	return predicate.PipelineSchedule(sql.FieldLT(FieldLastRunError, v))
}

// LastRunErrorLTE applies the LTE predicate on the "last_run_error" field.
func LastRunErrorLTE(v string) predicate.PipelineSchedule {
	return predicate.PipelineSchedule(sql.FieldLTE(FieldLastRunError, v))
}

// LastRunErrorContains applies the Contains predicate on the "last_run_error" field.
func LastRunErrorContains(v string) predicate.PipelineSchedule {
	return predicate.PipelineSchedule(sql.FieldContains(FieldLastRunError, v))
}

// LastRunErrorHasPrefix applies the HasPrefix predicate on the "last_run_error" field.
func LastRunErrorHasPrefix(v string) predicate.PipelineSchedule {
	return predicate.PipelineSchedule(sql.FieldHasPrefix(FieldLastRunError, v))
}

// LastRunErrorHasSuffix applies the HasSuffix predicate on the "last_run_error" field.
func LastRunErrorHasSuffix(v string) predicate.PipelineSchedule {
	return predicate.PipelineSchedule(sql.FieldHasSuffix(FieldLastRunError, v))
}

// LastRunErrorIsNil applies the IsNil predicate on the "last_run_error" field.
func LastRunErrorIsNil() predicate.PipelineSchedule {
	return predicate.PipelineSchedule(sql.FieldIsNull(FieldLastRunError))
}

// LastRunErrorNotNil applies the NotNil predicate on the "last_run_error" field.
func LastRunErrorNotNil() predicate.PipelineSchedule {
	return predicate.PipelineSchedule(sql.FieldNotNull(FieldLastRunError))
}

// LastRunErrorEqualFold applies the EqualFold predicate on the "last_run_error" field.
func LastRunErrorEqualFold(v string) predicate.PipelineSchedule {
	return predicate.PipelineSchedule(sql.FieldEqualFold(FieldLastRunError, v))
}

// LastRunErrorContainsFold applies the ContainsFold predicate on the "last_run_error" field.
func LastRunErrorContainsFold(v string) predicate.PipelineSchedule {
	return predicate.PipelineSchedule(sql.FieldContainsFold(FieldLastRunError, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.PipelineSchedule) predicate.PipelineSchedule {
	return predicate.PipelineSchedule(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.PipelineSchedule) predicate.PipelineSchedule {
	return predicate.PipelineSchedule(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.PipelineSchedule) predicate.PipelineSchedule {
	return predicate.PipelineSchedule(sql.NotPredicates(p))
}
