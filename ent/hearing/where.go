// Code generated by ent, DO NOT EDIT.

package hearing

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/canaryscope/canaryscope/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Hearing {
	return predicate.Hearing(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Hearing {
	return predicate.Hearing(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Hearing {
	return predicate.Hearing(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Hearing {
	return predicate.Hearing(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Hearing {
	return predicate.Hearing(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Hearing {
	return predicate.Hearing(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Hearing {
	return predicate.Hearing(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Hearing {
	return predicate.Hearing(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Hearing {
	return predicate.Hearing(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Hearing {
	return predicate.Hearing(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Hearing {
	return predicate.Hearing(sql.FieldContainsFold(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Hearing {
	return predicate.Hearing(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Hearing {
	return predicate.Hearing(sql.FieldEQ(FieldUpdatedAt, v))
}

// SourceID applies equality check predicate on the "source_id" field. It's identical to SourceIDEQ.
func SourceID(v string) predicate.Hearing {
	return predicate.Hearing(sql.FieldEQ(FieldSourceID, v))
}

// StateCode applies equality check predicate on the "state_code" field. It's identical to StateCodeEQ.
func StateCode(v string) predicate.Hearing {
	return predicate.Hearing(sql.FieldEQ(FieldStateCode, v))
}

// ExternalID applies equality check predicate on the "external_id" field. It's identical to ExternalIDEQ.
func ExternalID(v string) predicate.Hearing {
	return predicate.Hearing(sql.FieldEQ(FieldExternalID, v))
}

// Title applies equality check predicate on the "title" field. It's identical to TitleEQ.
func Title(v string) predicate.Hearing {
	return predicate.Hearing(sql.FieldEQ(FieldTitle, v))
}

// Description applies equality check predicate on the "description" field. It's identical to DescriptionEQ.
func Description(v string) predicate.Hearing {
	return predicate.Hearing(sql.FieldEQ(FieldDescription, v))
}

// HearingDate applies equality check predicate on the "hearing_date" field. It's identical to HearingDateEQ.
func HearingDate(v time.Time) predicate.Hearing {
	return predicate.Hearing(sql.FieldEQ(FieldHearingDate, v))
}

// HearingType applies equality check predicate on the "hearing_type" field. It's identical to HearingTypeEQ.
func HearingType(v string) predicate.Hearing {
	return predicate.Hearing(sql.FieldEQ(FieldHearingType, v))
}

// UtilityName applies equality check predicate on the "utility_name" field. It's identical to UtilityNameEQ.
func UtilityName(v string) predicate.Hearing {
	return predicate.Hearing(sql.FieldEQ(FieldUtilityName, v))
}

// SourceURL applies equality check predicate on the "source_url" field. It's identical to SourceURLEQ.
func SourceURL(v string) predicate.Hearing {
	return predicate.Hearing(sql.FieldEQ(FieldSourceURL, v))
}

// MediaURL applies equality check predicate on the "media_url" field. It's identical to MediaURLEQ.
func MediaURL(v string) predicate.Hearing {
	return predicate.Hearing(sql.FieldEQ(FieldMediaURL, v))
}

// DurationSeconds applies equality check predicate on the "duration_seconds" field. It's identical to DurationSecondsEQ.
func DurationSeconds(v float64) predicate.Hearing {
	return predicate.Hearing(sql.FieldEQ(FieldDurationSeconds, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Hearing {
	return predicate.Hearing(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Hearing {
	return predicate.Hearing(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Hearing {
	return predicate.Hearing(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Hearing {
	return predicate.Hearing(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Hearing {
	return predicate.Hearing(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Hearing {
	return predicate.Hearing(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Hearing {
	return predicate.Hearing(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Hearing {
	return predicate.Hearing(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Hearing {
	return predicate.Hearing(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Hearing {
	return predicate.Hearing(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Hearing {
	return predicate.Hearing(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Hearing {
	return predicate.Hearing(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Hearing {
	return predicate.Hearing(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Hearing {
	return predicate.Hearing(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Hearing {
	return predicate.Hearing(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Hearing {
	return predicate.Hearing(sql.FieldLTE(FieldUpdatedAt, v))
}

// SourceIDEQ applies the EQ predicate on the "source_id" field.
func SourceIDEQ(v string) predicate.Hearing {
	return predicate.Hearing(sql.FieldEQ(FieldSourceID, v))
}

// SourceIDNEQ applies the NEQ predicate on the "source_id" field.
func SourceIDNEQ(v string) predicate.Hearing {
	return predicate.Hearing(sql.FieldNEQ(FieldSourceID, v))
}

// SourceIDIn applies the In predicate on the "source_id" field.
func SourceIDIn(vs ...string) predicate.Hearing {
	return predicate.Hearing(sql.FieldIn(FieldSourceID, vs...))
}

// SourceIDNotIn applies the NotIn predicate on the "source_id" field.
func SourceIDNotIn(vs ...string) predicate.Hearing {
	return predicate.Hearing(sql.FieldNotIn(FieldSourceID, vs...))
}

// SourceIDGT applies the GT predicate on the "source_id" field.
func SourceIDGT(v string) predicate.Hearing {
	return predicate.Hearing(sql.FieldGT(FieldSourceID, v))
}

// SourceIDGTE applies the GTE predicate on the "source_id" field.
func SourceIDGTE(v string) predicate.Hearing {
	return predicate.Hearing(sql.FieldGTE(FieldSourceID, v))
}

// SourceIDLT applies the LT predicate on the "source_id" field.
func SourceIDLT(v string) predicate.Hearing {
	return predicate.Hearing(sql.FieldLT(FieldSourceID, v))
}

// SourceIDLTE applies the LTE predicate on the "source_id" field.
func SourceIDLTE(v string) predicate.Hearing {
	return predicate.Hearing(sql.FieldLTE(FieldSourceID, v))
}

// SourceIDContains applies the Contains predicate on the "source_id" field.
func SourceIDContains(v string) predicate.Hearing {
	return predicate.Hearing(sql.FieldContains(FieldSourceID, v))
}

// SourceIDHasPrefix applies the HasPrefix predicate on the "source_id" field.
func SourceIDHasPrefix(v string) predicate.Hearing {
	return predicate.Hearing(sql.FieldHasPrefix(FieldSourceID, v))
}

// SourceIDHasSuffix applies the HasSuffix predicate on the "source_id" field.
func SourceIDHasSuffix(v string) predicate.Hearing {
	return predicate.Hearing(sql.FieldHasSuffix(FieldSourceID, v))
}

// SourceIDEqualFold applies the EqualFold predicate on the "source_id" field.
func SourceIDEqualFold(v string) predicate.Hearing {
	return predicate.Hearing(sql.FieldEqualFold(FieldSourceID, v))
}

// SourceIDContainsFold applies the ContainsFold predicate on the "source_id" field.
func SourceIDContainsFold(v string) predicate.Hearing {
	return predicate.Hearing(sql.FieldContainsFold(FieldSourceID, v))
}

// StateCodeEQ applies the EQ predicate on the "state_code" field.
func StateCodeEQ(v string) predicate.Hearing {
	return predicate.Hearing(sql.FieldEQ(FieldStateCode, v))
}

// StateCodeNEQ applies the NEQ predicate on the "state_code" field.
func StateCodeNEQ(v string) predicate.Hearing {
	return predicate.Hearing(sql.FieldNEQ(FieldStateCode, v))
}

// StateCodeIn applies the In predicate on the "state_code" field.
func StateCodeIn(vs ...string) predicate.Hearing {
	return predicate.Hearing(sql.FieldIn(FieldStateCode, vs...))
}

// StateCodeNotIn applies the NotIn predicate on the "state_code" field.
func StateCodeNotIn(vs ...string) predicate.Hearing {
	return predicate.Hearing(sql.FieldNotIn(FieldStateCode, vs...))
}

// StateCodeGT applies the GT predicate on the "state_code" field.
func StateCodeGT(v string) predicate.Hearing {
	return predicate.Hearing(sql.FieldGT(FieldStateCode, v))
}

// StateCodeGTE applies the GTE predicate on the "state_code" field.
func StateCodeGTE(v string) predicate.Hearing {
	return predicate.Hearing(sql.FieldGTE(FieldStateCode, v))
}

// StateCodeLT applies the LT predicate on the "state_code" field.
func StateCodeLT(v string) predicate.Hearing {
	return predicate.Hearing(sql.FieldLT(FieldStateCode, v))
}

// StateCodeLTE applies the LTE predicate on the "state_code" field.
func StateCodeLTE(v string) predicate.Hearing {
	return predicate.Hearing(sql.FieldLTE(FieldStateCode, v))
}

// StateCodeContains applies the Contains predicate on the "state_code" field.
func StateCodeContains(v string) predicate.Hearing {
	return predicate.Hearing(sql.FieldContains(FieldStateCode, v))
}

// StateCodeHasPrefix applies the HasPrefix predicate on the "state_code" field.
func StateCodeHasPrefix(v string) predicate.Hearing {
	return predicate.Hearing(sql.FieldHasPrefix(FieldStateCode, v))
}

// StateCodeHasSuffix applies the HasSuffix predicate on the "state_code" field.
func StateCodeHasSuffix(v string) predicate.Hearing {
	return predicate.Hearing(sql.FieldHasSuffix(FieldStateCode, v))
}

// StateCodeEqualFold applies the EqualFold predicate on the "state_code" field.
func StateCodeEqualFold(v string) predicate.Hearing {
	return predicate.Hearing(sql.FieldEqualFold(FieldStateCode, v))
}

// StateCodeContainsFold applies the ContainsFold predicate on the "state_code" field.
func StateCodeContainsFold(v string) predicate.Hearing {
	return predicate.Hearing(sql.FieldContainsFold(FieldStateCode, v))
}

// ExternalIDEQ applies the EQ predicate on the "external_id" field.
func ExternalIDEQ(v string) predicate.Hearing {
	return predicate.Hearing(sql.FieldEQ(FieldExternalID, v))
}

// ExternalIDNEQ applies the NEQ predicate on the "external_id" field.
func ExternalIDNEQ(v string) predicate.Hearing {
	return predicate.Hearing(sql.FieldNEQ(FieldExternalID, v))
}

// ExternalIDIn applies the In predicate on the "external_id" field.
func ExternalIDIn(vs ...string) predicate.Hearing {
	return predicate.Hearing(sql.FieldIn(FieldExternalID, vs...))
}

// ExternalIDNotIn applies the NotIn predicate on the "external_id" field.
func ExternalIDNotIn(vs ...string) predicate.Hearing {
	return predicate.Hearing(sql.FieldNotIn(FieldExternalID, vs...))
}

// ExternalIDGT applies the GT predicate on the "external_id" field.
func ExternalIDGT(v string) predicate.Hearing {
	return predicate.Hearing(sql.FieldGT(FieldExternalID, v))
}

// ExternalIDGTE applies the GTE predicate on the "external_id" field.
func ExternalIDGTE(v string) predicate.Hearing {
	return predicate.Hearing(sql.FieldGTE(FieldExternalID, v))
}

// ExternalIDLT applies the LT predicate on the "external_id" field.
func ExternalIDLT(v string) predicate.Hearing {
	return predicate.Hearing(sql.FieldLT(FieldExternalID, v))
}

// ExternalIDLTE applies the LTE predicate on the "external_id" field.
func ExternalIDLTE(v string) predicate.Hearing {
	return predicate.Hearing(sql.FieldLTE(FieldExternalID, v))
}

// ExternalIDContains applies the Contains predicate on the "external_id" field.
func ExternalIDContains(v string) predicate.Hearing {
	return predicate.Hearing(sql.FieldContains(FieldExternalID, v))
}

// ExternalIDHasPrefix applies the HasPrefix predicate on the "external_id" field.
func ExternalIDHasPrefix(v string) predicate.Hearing {
	return predicate.Hearing(sql.FieldHasPrefix(FieldExternalID, v))
}

// ExternalIDHasSuffix applies the HasSuffix predicate on the "external_id" field.
func ExternalIDHasSuffix(v string) predicate.Hearing {
	return predicate.Hearing(sql.FieldHasSuffix(FieldExternalID, v))
}

// ExternalIDEqualFold applies the EqualFold predicate on the "external_id" field.
func ExternalIDEqualFold(v string) predicate.Hearing {
	return predicate.Hearing(sql.FieldEqualFold(FieldExternalID, v))
}

// ExternalIDContainsFold applies the ContainsFold predicate on the "external_id" field.
func ExternalIDContainsFold(v string) predicate.Hearing {
	return predicate.Hearing(sql.FieldContainsFold(FieldExternalID, v))
}

// TitleEQ applies the EQ predicate on the "title" field.
func TitleEQ(v string) predicate.Hearing {
	return predicate.Hearing(sql.FieldEQ(FieldTitle, v))
}

// TitleNEQ applies the NEQ predicate on the "title" field.
func TitleNEQ(v string) predicate.Hearing {
	return predicate.Hearing(sql.FieldNEQ(FieldTitle, v))
}

// TitleIn applies the In predicate on the "title" field.
func TitleIn(vs ...string) predicate.Hearing {
	return predicate.Hearing(sql.FieldIn(FieldTitle, vs...))
}

// TitleNotIn applies the NotIn predicate on the "title" field.
func TitleNotIn(vs ...string) predicate.Hearing {
	return predicate.Hearing(sql.FieldNotIn(FieldTitle, vs...))
}

// TitleGT applies the GT predicate on the "title" field.
func TitleGT(v string) predicate.Hearing {
	return predicate.Hearing(sql.FieldGT(FieldTitle, v))
}

// TitleGTE applies the GTE predicate on the "title" field.
func TitleGTE(v string) predicate.Hearing {
	return predicate.Hearing(sql.FieldGTE(FieldTitle, v))
}

// TitleLT applies the LT predicate on the "title" field.
func TitleLT(v string) predicate.Hearing {
	return predicate.Hearing(sql.FieldLT(FieldTitle, v))
}

// TitleLTE applies the LTE predicate on the "title" field.
func TitleLTE(v string) predicate.Hearing {
	return predicate.Hearing(sql.FieldLTE(FieldTitle, v))
}

// TitleContains applies the Contains predicate on the "title" field.
func TitleContains(v string) predicate.Hearing {
	return predicate.Hearing(sql.FieldContains(FieldTitle, v))
}

// TitleHasPrefix applies the HasPrefix predicate on the "title" field.
func TitleHasPrefix(v string) predicate.Hearing {
	return predicate.Hearing(sql.FieldHasPrefix(FieldTitle, v))
}

// TitleHasSuffix applies the HasSuffix predicate on the "title" field.
func TitleHasSuffix(v string) predicate.Hearing {
	return predicate.Hearing(sql.FieldHasSuffix(FieldTitle, v))
}

// TitleEqualFold applies the EqualFold predicate on the "title" field.
func TitleEqualFold(v string) predicate.Hearing {
	return predicate.Hearing(sql.FieldEqualFold(FieldTitle, v))
}

// TitleContainsFold applies the ContainsFold predicate on the "title" field.
func TitleContainsFold(v string) predicate.Hearing {
	return predicate.Hearing(sql.FieldContainsFold(FieldTitle, v))
}

// DescriptionEQ applies the EQ predicate on the "description" field.
func DescriptionEQ(v string) predicate.Hearing {
	return predicate.Hearing(sql.FieldEQ(FieldDescription, v))
}

// DescriptionNEQ applies the NEQ predicate on the "description" field.
func DescriptionNEQ(v string) predicate.Hearing {
	return predicate.Hearing(sql.FieldNEQ(FieldDescription, v))
}

// DescriptionIn applies the In predicate on the "description" field.
func DescriptionIn(vs ...string) predicate.Hearing {
	return predicate.Hearing(sql.FieldIn(FieldDescription, vs...))
}

// DescriptionNotIn applies the NotIn predicate on the "description" field.
func DescriptionNotIn(vs ...string) predicate.Hearing {
	return predicate.Hearing(sql.FieldNotIn(FieldDescription, vs...))
}

// DescriptionGT applies the GT predicate on the "description" field.
func DescriptionGT(v string) predicate.Hearing {
	return predicate.Hearing(sql.FieldGT(FieldDescription, v))
}

// DescriptionGTE applies the GTE predicate on the "description" field.
func DescriptionGTE(v string) predicate.Hearing {
	return predicate.Hearing(sql.FieldGTE(FieldDescription, v))
}

// DescriptionLT applies the LT predicate on the "description" field.
func DescriptionLT(v string) predicate.Hearing {
	return predicate.Hearing(sql.FieldLT(FieldDescription, v))
}

// DescriptionLTE applies the LTE predicate on the "description" field.
func DescriptionLTE(v string) predicate.Hearing {
	return predicate.Hearing(sql.FieldLTE(FieldDescription, v))
}

// DescriptionContains applies the Contains predicate on the "description" field.
func DescriptionContains(v string) predicate.Hearing {
	return predicate.Hearing(sql.FieldContains(FieldDescription, v))
}

// DescriptionHasPrefix applies the HasPrefix predicate on the "description" field.
func DescriptionHasPrefix(v string) predicate.Hearing {
	return predicate.Hearing(sql.FieldHasPrefix(FieldDescription, v))
}

// DescriptionHasSuffix applies the HasSuffix predicate on the "description" field.
func DescriptionHasSuffix(v string) predicate.Hearing {
	return predicate.Hearing(sql.FieldHasSuffix(FieldDescription, v))
}

// DescriptionIsNil applies the IsNil predicate on the "description" field.
func DescriptionIsNil() predicate.Hearing {
	return predicate.Hearing(sql.FieldIsNull(FieldDescription))
}

// DescriptionNotNil applies the NotNil predicate on the "description" field.
func DescriptionNotNil() predicate.Hearing {
	return predicate.Hearing(sql.FieldNotNull(FieldDescription))
}

// DescriptionEqualFold applies the EqualFold predicate on the "description" field.
func DescriptionEqualFold(v string) predicate.Hearing {
	return predicate.Hearing(sql.FieldEqualFold(FieldDescription, v))
}

// DescriptionContainsFold applies the ContainsFold predicate on the "description" field.
func DescriptionContainsFold(v string) predicate.Hearing {
	return predicate.Hearing(sql.FieldContainsFold(FieldDescription, v))
}

// HearingDateEQ applies the EQ predicate on the "hearing_date" field.
func HearingDateEQ(v time.Time) predicate.Hearing {
	return predicate.Hearing(sql.FieldEQ(FieldHearingDate, v))
}

// HearingDateNEQ applies the NEQ predicate on the "hearing_date" field.
func HearingDateNEQ(v time.Time) predicate.Hearing {
	return predicate.Hearing(sql.FieldNEQ(FieldHearingDate, v))
}

// HearingDateIn applies the In predicate on the "hearing_date" field.
func HearingDateIn(vs ...time.Time) predicate.Hearing {
	return predicate.Hearing(sql.FieldIn(FieldHearingDate, vs...))
}

// HearingDateNotIn applies the NotIn predicate on the "hearing_date" field.
func HearingDateNotIn(vs ...time.Time) predicate.Hearing {
	return predicate.Hearing(sql.FieldNotIn(FieldHearingDate, vs...))
}

// HearingDateGT applies the GT predicate on the "hearing_date" field.
func HearingDateGT(v time.Time) predicate.Hearing {
	return predicate.Hearing(sql.FieldGT(FieldHearingDate, v))
}

// HearingDateGTE applies the GTE predicate on the "hearing_date" field.
func HearingDateGTE(v time.Time) predicate.Hearing {
	return predicate.Hearing(sql.FieldGTE(FieldHearingDate, v))
}

// HearingDateLT applies the LT predicate on the "hearing_date" field.
func HearingDateLT(v time.Time) predicate.Hearing {
	return predicate.Hearing(sql.FieldLT(FieldHearingDate, v))
}

// HearingDateLTE applies the LTE predicate on the "hearing_date" field.
func HearingDateLTE(v time.Time) predicate.Hearing {
	return predicate.Hearing(sql.FieldLTE(FieldHearingDate, v))
}

// HearingDateIsNil applies the IsNil predicate on the "hearing_date" field.
func HearingDateIsNil() predicate.Hearing {
	return predicate.Hearing(sql.FieldIsNull(FieldHearingDate))
}

// HearingDateNotNil applies the NotNil predicate on the "hearing_date" field.
func HearingDateNotNil() predicate.Hearing {
	return predicate.Hearing(sql.FieldNotNull(FieldHearingDate))
}

// HearingTypeEQ applies the EQ predicate on the "hearing_type" field.
func HearingTypeEQ(v string) predicate.Hearing {
	return predicate.Hearing(sql.FieldEQ(FieldHearingType, v))
}

// HearingTypeNEQ applies the NEQ predicate on the "hearing_type" field.
func HearingTypeNEQ(v string) predicate.Hearing {
	return predicate.Hearing(sql.FieldNEQ(FieldHearingType, v))
}

// HearingTypeIn applies the In predicate on the "hearing_type" field.
func HearingTypeIn(vs ...string) predicate.Hearing {
	return predicate.Hearing(sql.FieldIn(FieldHearingType, vs...))
}

// HearingTypeNotIn applies the NotIn predicate on the "hearing_type" field.
func HearingTypeNotIn(vs ...string) predicate.Hearing {
	return predicate.Hearing(sql.FieldNotIn(FieldHearingType, vs...))
}

// HearingTypeGT applies the GT predicate on the "hearing_type" field.
func HearingTypeGT(v string) predicate.Hearing {
	return predicate.Hearing(sql.FieldGT(FieldHearingType, v))
}

// HearingTypeGTE applies the GTE predicate on the "hearing_type" field.
func HearingTypeGTE(v string) predicate.Hearing {
	return predicate.Hearing(sql.FieldGTE(FieldHearingType, v))
}

// HearingTypeLT applies the LT predicate on the "hearing_type" field.
func HearingTypeLT(v string) predicate.Hearing {
	return predicate.Hearing(sql.FieldLT(FieldHearingType, v))
}

// HearingTypeLTE applies the LTE predicate on the "hearing_type" field.
func HearingTypeLTE(v string) predicate.Hearing {
	return predicate.Hearing(sql.FieldLTE(FieldHearingType, v))
}

// HearingTypeContains applies the Contains predicate on the "hearing_type" field.
func HearingTypeContains(v string) predicate.Hearing {
	return predicate.Hearing(sql.FieldContains(FieldHearingType, v))
}

// HearingTypeHasPrefix applies the HasPrefix predicate on the "hearing_type" field.
func HearingTypeHasPrefix(v string) predicate.Hearing {
	return predicate.Hearing(sql.FieldHasPrefix(FieldHearingType, v))
}

// HearingTypeHasSuffix applies the HasSuffix predicate on the "hearing_type" field.
func HearingTypeHasSuffix(v string) predicate.Hearing {
	return predicate.Hearing(sql.FieldHasSuffix(FieldHearingType, v))
}

// HearingTypeIsNil applies the IsNil predicate on the "hearing_type" field.
func HearingTypeIsNil() predicate.Hearing {
	return predicate.Hearing(sql.FieldIsNull(FieldHearingType))
}

// HearingTypeNotNil applies the NotNil predicate on the "hearing_type" field.
func HearingTypeNotNil() predicate.Hearing {
	return predicate.Hearing(sql.FieldNotNull(FieldHearingType))
}

// HearingTypeEqualFold applies the EqualFold predicate on the "hearing_type" field.
func HearingTypeEqualFold(v string) predicate.Hearing {
	return predicate.Hearing(sql.FieldEqualFold(FieldHearingType, v))
}

// HearingTypeContainsFold applies the ContainsFold predicate on the "hearing_type" field.
func HearingTypeContainsFold(v string) predicate.Hearing {
	return predicate.Hearing(sql.FieldContainsFold(FieldHearingType, v))
}

// UtilityNameEQ applies the EQ predicate on the "utility_name" field.
func UtilityNameEQ(v string) predicate.Hearing {
	return predicate.Hearing(sql.FieldEQ(FieldUtilityName, v))
}

// UtilityNameNEQ applies the NEQ predicate on the "utility_name" field.
func UtilityNameNEQ(v string) predicate.Hearing {
	return predicate.Hearing(sql.FieldNEQ(FieldUtilityName, v))
}

// UtilityNameIn applies the In predicate on the "utility_name" field.
func UtilityNameIn(vs ...string) predicate.Hearing {
	return predicate.Hearing(sql.FieldIn(FieldUtilityName, vs...))
}

// UtilityNameNotIn applies the NotIn predicate on the "utility_name" field.
func UtilityNameNotIn(vs ...string) predicate.Hearing {
	return predicate.Hearing(sql.FieldNotIn(FieldUtilityName, vs...))
}

// UtilityNameGT applies the GT predicate on the "utility_name" field.
func UtilityNameGT(v string) predicate.Hearing {
	return predicate.Hearing(sql.FieldGT(FieldUtilityName, v))
}

// UtilityNameGTE applies the GTE predicate on the "utility_name" field.
func UtilityNameGTE(v string) predicate.Hearing {
	return predicate.Hearing(sql.FieldGTE(FieldUtilityName, v))
}

// UtilityNameLT applies the LT predicate on the "utility_name" field.
func UtilityNameLT(v string) predicate.Hearing {
	return predicate.Hearing(sql.FieldLT(FieldUtilityName, v))
}

// UtilityNameLTE applies the LTE predicate on the "utility_name" field.
func UtilityNameLTE(v string) predicate.Hearing {
	return predicate.Hearing(sql.FieldLTE(FieldUtilityName, v))
}

// UtilityNameContains applies the Contains predicate on the "utility_name" field.
func UtilityNameContains(v string) predicate.Hearing {
	return predicate.Hearing(sql.FieldContains(FieldUtilityName, v))
}

// UtilityNameHasPrefix applies the HasPrefix predicate on the "utility_name" field.
func UtilityNameHasPrefix(v string) predicate.Hearing {
	return predicate.Hearing(sql.FieldHasPrefix(FieldUtilityName, v))
}

// UtilityNameHasSuffix applies the HasSuffix predicate on the "utility_name" field.
func UtilityNameHasSuffix(v string) predicate.Hearing {
	return predicate.Hearing(sql.FieldHasSuffix(FieldUtilityName, v))
}

// UtilityNameIsNil applies the IsNil predicate on the "utility_name" field.
func UtilityNameIsNil() predicate.Hearing {
	return predicate.Hearing(sql.FieldIsNull(FieldUtilityName))
}

// UtilityNameNotNil applies the NotNil predicate on the "utility_name" field.
func UtilityNameNotNil() predicate.Hearing {
	return predicate.Hearing(sql.FieldNotNull(FieldUtilityName))
}

// UtilityNameEqualFold applies the EqualFold predicate on the "utility_name" field.
func UtilityNameEqualFold(v string) predicate.Hearing {
	return predicate.Hearing(sql.FieldEqualFold(FieldUtilityName, v))
}

// UtilityNameContainsFold applies the ContainsFold predicate on the "utility_name" field.
func UtilityNameContainsFold(v string) predicate.Hearing {
	return predicate.Hearing(sql.FieldContainsFold(FieldUtilityName, v))
}

// DocketNumbersIsNil applies the IsNil predicate on the "docket_numbers" field.
func DocketNumbersIsNil() predicate.Hearing {
	return predicate.Hearing(sql.FieldIsNull(FieldDocketNumbers))
}

// DocketNumbersNotNil applies the NotNil predicate on the "docket_numbers" field.
func DocketNumbersNotNil() predicate.Hearing {
	return predicate.Hearing(sql.FieldNotNull(FieldDocketNumbers))
}

// SourceURLEQ applies the EQ predicate on the "source_url" field.
func SourceURLEQ(v string) predicate.Hearing {
	return predicate.Hearing(sql.FieldEQ(FieldSourceURL, v))
}

// SourceURLNEQ applies the NEQ predicate on the "source_url" field.
func SourceURLNEQ(v string) predicate.Hearing {
	return predicate.Hearing(sql.FieldNEQ(FieldSourceURL, v))
}

// SourceURLIn applies the In predicate on the "source_url" field.
func SourceURLIn(vs ...string) predicate.Hearing {
	return predicate.Hearing(sql.FieldIn(FieldSourceURL, vs...))
}

// SourceURLNotIn applies the NotIn predicate on the "source_url" field.
func SourceURLNotIn(vs ...string) predicate.Hearing {
	return predicate.Hearing(sql.FieldNotIn(FieldSourceURL, vs...))
}

// SourceURLGT applies the GT predicate on the "source_url" field.
func SourceURLGT(v string) predicate.Hearing {
	return predicate.Hearing(sql.FieldGT(FieldSourceURL, v))
}

// SourceURLGTE applies the GTE predicate on the "source_url" field.
func SourceURLGTE(v string) predicate.Hearing {
	return predicate.Hearing(sql.FieldGTE(FieldSourceURL, v))
}

// SourceURLLT applies the LT predicate on the "source_url" field.
func SourceURLLT(v string) predicate.Hearing {
	return predicate.Hearing(sql.FieldLT(FieldSourceURL, v))
}

// SourceURLLTE applies the LTE predicate on the "source_url" field.
func SourceURLLTE(v string) predicate.Hearing {
	return predicate.Hearing(sql.FieldLTE(FieldSourceURL, v))
}

// SourceURLContains applies the Contains predicate on the "source_url" field.
func SourceURLContains(v string) predicate.Hearing {
	return predicate.Hearing(sql.FieldContains(FieldSourceURL, v))
}

// SourceURLHasPrefix applies the HasPrefix predicate on the "source_url" field.
func SourceURLHasPrefix(v string) predicate.Hearing {
	return predicate.Hearing(sql.FieldHasPrefix(FieldSourceURL, v))
}

// SourceURLHasSuffix applies the HasSuffix predicate on the "source_url" field.
func SourceURLHasSuffix(v string) predicate.Hearing {
	return predicate.Hearing(sql.FieldHasSuffix(FieldSourceURL, v))
}

// SourceURLIsNil applies the IsNil predicate on the "source_url" field.
func SourceURLIsNil() predicate.Hearing {
	return predicate.Hearing(sql.FieldIsNull(FieldSourceURL))
}

// SourceURLNotNil applies the NotNil predicate on the "source_url" field.
func SourceURLNotNil() predicate.Hearing {
	return predicate.Hearing(sql.FieldNotNull(FieldSourceURL))
}

// SourceURLEqualFold applies the EqualFold predicate on the "source_url" field.
func SourceURLEqualFold(v string) predicate.Hearing {
	return predicate.Hearing(sql.FieldEqualFold(FieldSourceURL, v))
}

// SourceURLContainsFold applies the ContainsFold predicate on the "source_url" field.
func SourceURLContainsFold(v string) predicate.Hearing {
	return predicate.Hearing(sql.FieldContainsFold(FieldSourceURL, v))
}

// MediaURLEQ applies the EQ predicate on the "media_url" field.
func MediaURLEQ(v string) predicate.Hearing {
	return predicate.Hearing(sql.FieldEQ(FieldMediaURL, v))
}

// MediaURLNEQ applies the NEQ predicate on the "media_url" field.
func MediaURLNEQ(v string) predicate.Hearing {
	return predicate.Hearing(sql.FieldNEQ(FieldMediaURL, v))
}

// MediaURLIn applies the In predicate on the "media_url" field.
func MediaURLIn(vs ...string) predicate.Hearing {
	return predicate.Hearing(sql.FieldIn(FieldMediaURL, vs...))
}

// MediaURLNotIn applies the NotIn predicate on the "media_url" field.
func MediaURLNotIn(vs ...string) predicate.Hearing {
	return predicate.Hearing(sql.FieldNotIn(FieldMediaURL, vs...))
}

// MediaURLGT applies the GT predicate on the "media_url" field.
func MediaURLGT(v string) predicate.Hearing {
	return predicate.Hearing(sql.FieldGT(FieldMediaURL, v))
}

// MediaURLGTE applies the GTE predicate on the "media_url" field.
func MediaURLGTE(v string) predicate.Hearing {
	return predicate.Hearing(sql.FieldGTE(FieldMediaURL, v))
}

// MediaURLLT applies the LT predicate on the "media_url" field.
func MediaURLLT(v string) predicate.Hearing {
	return predicate.Hearing(sql.FieldLT(FieldMediaURL, v))
}

// MediaURLLTE applies the LTE predicate on the "media_url" field.
func MediaURLLTE(v string) predicate.Hearing {
	return predicate.Hearing(sql.FieldLTE(FieldMediaURL, v))
}

// MediaURLContains applies the Contains predicate on the "media_url" field.
func MediaURLContains(v string) predicate.Hearing {
	return predicate.Hearing(sql.FieldContains(FieldMediaURL, v))
}

// MediaURLHasPrefix applies the HasPrefix predicate on the "media_url" field.
func MediaURLHasPrefix(v string) predicate.Hearing {
	return predicate.Hearing(sql.FieldHasPrefix(FieldMediaURL, v))
}

// MediaURLHasSuffix applies the HasSuffix predicate on the "media_url" field.
func MediaURLHasSuffix(v string) predicate.Hearing {
	return predicate.Hearing(sql.FieldHasSuffix(FieldMediaURL, v))
}

// MediaURLIsNil applies the IsNil predicate on the "media_url" field.
func MediaURLIsNil() predicate.Hearing {
	return predicate.Hearing(sql.FieldIsNull(FieldMediaURL))
}

// MediaURLNotNil applies the NotNil predicate on the "media_url" field.
func MediaURLNotNil() predicate.Hearing {
	return predicate.Hearing(sql.FieldNotNull(FieldMediaURL))
}

// MediaURLEqualFold applies the EqualFold predicate on the "media_url" field.
func MediaURLEqualFold(v string) predicate.Hearing {
	return predicate.Hearing(sql.FieldEqualFold(FieldMediaURL, v))
}

// MediaURLContainsFold applies the ContainsFold predicate on the "media_url" field.
func MediaURLContainsFold(v string) predicate.Hearing {
	return predicate.Hearing(sql.FieldContainsFold(FieldMediaURL, v))
}

// DurationSecondsEQ applies the EQ predicate on the "duration_seconds" field.
func DurationSecondsEQ(v float64) predicate.Hearing {
	return predicate.Hearing(sql.FieldEQ(FieldDurationSeconds, v))
}

// DurationSecondsNEQ applies the NEQ predicate on the "duration_seconds" field.
func DurationSecondsNEQ(v float64) predicate.Hearing {
	return predicate.Hearing(sql.FieldNEQ(FieldDurationSeconds, v))
}

// DurationSecondsIn applies the In predicate on the "duration_seconds" field.
func DurationSecondsIn(vs ...float64) predicate.Hearing {
	return predicate.Hearing(sql.FieldIn(FieldDurationSeconds, vs...))
}

// DurationSecondsNotIn applies the NotIn predicate on the "duration_seconds" field.
func DurationSecondsNotIn(vs ...float64) predicate.Hearing {
	return predicate.Hearing(sql.FieldNotIn(FieldDurationSeconds, vs...))
}

// DurationSecondsGT applies the GT predicate on the "duration_seconds" field.
func DurationSecondsGT(v float64) predicate.Hearing {
	return predicate.Hearing(sql.FieldGT(FieldDurationSeconds, v))
}

// DurationSecondsGTE applies the GTE predicate on the "duration_seconds" field.
func DurationSecondsGTE(v float64) predicate.Hearing {
	return predicate.Hearing(sql.FieldGTE(FieldDurationSeconds, v))
}

// DurationSecondsLT applies the LT predicate on the "duration_seconds" field.
func DurationSecondsLT(v float64) predicate.Hearing {
	return predicate.Hearing(sql.FieldLT(FieldDurationSeconds, v))
}

// DurationSecondsLTE applies the LTE predicate on the "duration_seconds" field.
func DurationSecondsLTE(v float64) predicate.Hearing {
	return predicate.Hearing(sql.FieldLTE(FieldDurationSeconds, v))
}

// DurationSecondsIsNil applies the IsNil predicate on the "duration_seconds" field.
func DurationSecondsIsNil() predicate.Hearing {
	return predicate.Hearing(sql.FieldIsNull(FieldDurationSeconds))
}

// DurationSecondsNotNil applies the NotNil predicate on the "duration_seconds" field.
func DurationSecondsNotNil() predicate.Hearing {
	return predicate.Hearing(sql.FieldNotNull(FieldDurationSeconds))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.Hearing {
	return predicate.Hearing(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.Hearing {
	return predicate.Hearing(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.Hearing {
	return predicate.Hearing(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.Hearing {
	return predicate.Hearing(sql.FieldNotIn(FieldStatus, vs...))
}

// HasSource applies the HasEdge predicate on the "source" edge.
func HasSource() predicate.Hearing {
	return predicate.Hearing(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, SourceTable, SourceColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasSourceWith applies the HasEdge predicate on the "source" edge with a given conditions (other predicates).
func HasSourceWith(preds ...predicate.Source) predicate.Hearing {
	return predicate.Hearing(func(s *sql.Selector) {
		step := newSourceStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasTranscript applies the HasEdge predicate on the "transcript" edge.
func HasTranscript() predicate.Hearing {
	return predicate.Hearing(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2O, false, TranscriptTable, TranscriptColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasTranscriptWith applies the HasEdge predicate on the "transcript" edge with a given conditions (other predicates).
func HasTranscriptWith(preds ...predicate.Transcript) predicate.Hearing {
	return predicate.Hearing(func(s *sql.Selector) {
		step := newTranscriptStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasSegments applies the HasEdge predicate on the "segments" edge.
func HasSegments() predicate.Hearing {
	return predicate.Hearing(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, SegmentsTable, SegmentsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasSegmentsWith applies the HasEdge predicate on the "segments" edge with a given conditions (other predicates).
func HasSegmentsWith(preds ...predicate.Segment) predicate.Hearing {
	return predicate.Hearing(func(s *sql.Selector) {
		step := newSegmentsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasAnalysis applies the HasEdge predicate on the "analysis" edge.
func HasAnalysis() predicate.Hearing {
	return predicate.Hearing(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2O, false, AnalysisTable, AnalysisColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasAnalysisWith applies the HasEdge predicate on the "analysis" edge with a given conditions (other predicates).
func HasAnalysisWith(preds ...predicate.Analysis) predicate.Hearing {
	return predicate.Hearing(func(s *sql.Selector) {
		step := newAnalysisStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasPipelineJobs applies the HasEdge predicate on the "pipeline_jobs" edge.
func HasPipelineJobs() predicate.Hearing {
	return predicate.Hearing(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, PipelineJobsTable, PipelineJobsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasPipelineJobsWith applies the HasEdge predicate on the "pipeline_jobs" edge with a given conditions (other predicates).
func HasPipelineJobsWith(preds ...predicate.PipelineJob) predicate.Hearing {
	return predicate.Hearing(func(s *sql.Selector) {
		step := newPipelineJobsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasHearingDockets applies the HasEdge predicate on the "hearing_dockets" edge.
func HasHearingDockets() predicate.Hearing {
	return predicate.Hearing(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, HearingDocketsTable, HearingDocketsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasHearingDocketsWith applies the HasEdge predicate on the "hearing_dockets" edge with a given conditions (other predicates).
func HasHearingDocketsWith(preds ...predicate.HearingDocket) predicate.Hearing {
	return predicate.Hearing(func(s *sql.Selector) {
		step := newHearingDocketsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasExtractedDockets applies the HasEdge predicate on the "extracted_dockets" edge.
func HasExtractedDockets() predicate.Hearing {
	return predicate.Hearing(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, ExtractedDocketsTable, ExtractedDocketsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasExtractedDocketsWith applies the HasEdge predicate on the "extracted_dockets" edge with a given conditions (other predicates).
func HasExtractedDocketsWith(preds ...predicate.ExtractedDocket) predicate.Hearing {
	return predicate.Hearing(func(s *sql.Selector) {
		step := newExtractedDocketsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasHearingUtilities applies the HasEdge predicate on the "hearing_utilities" edge.
func HasHearingUtilities() predicate.Hearing {
	return predicate.Hearing(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, HearingUtilitiesTable, HearingUtilitiesColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasHearingUtilitiesWith applies the HasEdge predicate on the "hearing_utilities" edge with a given conditions (other predicates).
func HasHearingUtilitiesWith(preds ...predicate.HearingUtility) predicate.Hearing {
	return predicate.Hearing(func(s *sql.Selector) {
		step := newHearingUtilitiesStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasHearingTopics applies the HasEdge predicate on the "hearing_topics" edge.
func HasHearingTopics() predicate.Hearing {
	return predicate.Hearing(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, HearingTopicsTable, HearingTopicsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasHearingTopicsWith applies the HasEdge predicate on the "hearing_topics" edge with a given conditions (other predicates).
func HasHearingTopicsWith(preds ...predicate.HearingTopic) predicate.Hearing {
	return predicate.Hearing(func(s *sql.Selector) {
		step := newHearingTopicsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Hearing) predicate.Hearing {
	return predicate.Hearing(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Hearing) predicate.Hearing {
	return predicate.Hearing(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Hearing) predicate.Hearing {
	return predicate.Hearing(sql.NotPredicates(p))
}
