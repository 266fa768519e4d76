// Code generated by ent, DO NOT EDIT.

package knowndocket

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/canaryscope/canaryscope/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.KnownDocket {
	return predicate.KnownDocket(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.KnownDocket {
	return predicate.KnownDocket(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.KnownDocket {
	return predicate.KnownDocket(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.KnownDocket {
	return predicate.KnownDocket(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.KnownDocket {
	return predicate.KnownDocket(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.KnownDocket {
	return predicate.KnownDocket(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.KnownDocket {
	return predicate.KnownDocket(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.KnownDocket {
	return predicate.KnownDocket(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.KnownDocket {
	return predicate.KnownDocket(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.KnownDocket {
	return predicate.KnownDocket(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.KnownDocket {
	return predicate.KnownDocket(sql.FieldContainsFold(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.KnownDocket {
	return predicate.KnownDocket(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.KnownDocket {
	return predicate.KnownDocket(sql.FieldEQ(FieldUpdatedAt, v))
}

// StateCode applies equality check predicate on the "state_code" field. It's identical to StateCodeEQ.
func StateCode(v string) predicate.KnownDocket {
	return predicate.KnownDocket(sql.FieldEQ(FieldStateCode, v))
}

// DocketNumber applies equality check predicate on the "docket_number" field. It's identical to DocketNumberEQ.
func DocketNumber(v string) predicate.KnownDocket {
	return predicate.KnownDocket(sql.FieldEQ(FieldDocketNumber, v))
}

// NormalizedID applies equality check predicate on the "normalized_id" field. It's identical to NormalizedIDEQ.
func NormalizedID(v string) predicate.KnownDocket {
	return predicate.KnownDocket(sql.FieldEQ(FieldNormalizedID, v))
}

// Year applies equality check predicate on the "year" field. It's identical to YearEQ.
func Year(v int) predicate.KnownDocket {
	return predicate.KnownDocket(sql.FieldEQ(FieldYear, v))
}

// CaseNumber applies equality check predicate on the "case_number" field. It's identical to CaseNumberEQ.
func CaseNumber(v string) predicate.KnownDocket {
	return predicate.KnownDocket(sql.FieldEQ(FieldCaseNumber, v))
}

// Suffix applies equality check predicate on the "suffix" field. It's identical to SuffixEQ.
func Suffix(v string) predicate.KnownDocket {
	return predicate.KnownDocket(sql.FieldEQ(FieldSuffix, v))
}

// UtilitySector applies equality check predicate on the "utility_sector" field. It's identical to UtilitySectorEQ.
func UtilitySector(v string) predicate.KnownDocket {
	return predicate.KnownDocket(sql.FieldEQ(FieldUtilitySector, v))
}

// Title applies equality check predicate on the "title" field. It's identical to TitleEQ.
func Title(v string) predicate.KnownDocket {
	return predicate.KnownDocket(sql.FieldEQ(FieldTitle, v))
}

// UtilityName applies equality check predicate on the "utility_name" field. It's identical to UtilityNameEQ.
func UtilityName(v string) predicate.KnownDocket {
	return predicate.KnownDocket(sql.FieldEQ(FieldUtilityName, v))
}

// FilingDate applies equality check predicate on the "filing_date" field. It's identical to FilingDateEQ.
func FilingDate(v time.Time) predicate.KnownDocket {
	return predicate.KnownDocket(sql.FieldEQ(FieldFilingDate, v))
}

// Status applies equality check predicate on the "status" field. It's identical to StatusEQ.
func Status(v string) predicate.KnownDocket {
	return predicate.KnownDocket(sql.FieldEQ(FieldStatus, v))
}

// CaseType applies equality check predicate on the "case_type" field. It's identical to CaseTypeEQ.
func CaseType(v string) predicate.KnownDocket {
	return predicate.KnownDocket(sql.FieldEQ(FieldCaseType, v))
}

// SourceURL applies equality check predicate on the "source_url" field. It's identical to SourceURLEQ.
func SourceURL(v string) predicate.KnownDocket {
	return predicate.KnownDocket(sql.FieldEQ(FieldSourceURL, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.KnownDocket {
	return predicate.KnownDocket(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.KnownDocket {
	return predicate.KnownDocket(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.KnownDocket {
	return predicate.KnownDocket(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.KnownDocket {
	return predicate.KnownDocket(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.KnownDocket {
	return predicate.KnownDocket(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.KnownDocket {
	return predicate.KnownDocket(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.KnownDocket {
	return predicate.KnownDocket(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.KnownDocket {
	return predicate.KnownDocket(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.KnownDocket {
	return predicate.KnownDocket(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.KnownDocket {
	return predicate.KnownDocket(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.KnownDocket {
	return predicate.KnownDocket(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.KnownDocket {
	return predicate.KnownDocket(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.KnownDocket {
	return predicate.KnownDocket(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.KnownDocket {
	return predicate.KnownDocket(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.KnownDocket {
	return predicate.KnownDocket(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.KnownDocket {
	return predicate.KnownDocket(sql.FieldLTE(FieldUpdatedAt, v))
}

// StateCodeEQ applies the EQ predicate on the "state_code" field.
func StateCodeEQ(v string) predicate.KnownDocket {
	return predicate.KnownDocket(sql.FieldEQ(FieldStateCode, v))
}

// StateCodeNEQ applies the NEQ predicate on the "state_code" field.
func StateCodeNEQ(v string) predicate.KnownDocket {
	return predicate.KnownDocket(sql.FieldNEQ(FieldStateCode, v))
}

// StateCodeIn applies the In predicate on the "state_code" field.
func StateCodeIn(vs ...string) predicate.KnownDocket {
	return predicate.KnownDocket(sql.FieldIn(FieldStateCode, vs...))
}

// StateCodeNotIn applies the NotIn predicate on the "state_code" field.
func StateCodeNotIn(vs ...string) predicate.KnownDocket {
	return predicate.KnownDocket(sql.FieldNotIn(FieldStateCode, vs...))
}

// StateCodeGT applies the GT predicate on the "state_code" field.
func StateCodeGT(v string) predicate.KnownDocket {
	return predicate.KnownDocket(sql.FieldGT(FieldStateCode, v))
}

// StateCodeGTE applies the GTE predicate on the "state_code" field.
func StateCodeGTE(v string) predicate.KnownDocket {
	return predicate.KnownDocket(sql.FieldGTE(FieldStateCode, v))
}

// StateCodeLT applies the LT predicate on the "state_code" field.
func StateCodeLT(v string) predicate.KnownDocket {
	return predicate.KnownDocket(sql.FieldLT(FieldStateCode, v))
}

// StateCodeLTE applies the LTE predicate on the "state_code" field.
func StateCodeLTE(v string) predicate.KnownDocket {
	return predicate.KnownDocket(sql.FieldLTE(FieldStateCode, v))
}

// StateCodeContains applies the Contains predicate on the "state_code" field.
func StateCodeContains(v string) predicate.KnownDocket {
	return predicate.KnownDocket(sql.FieldContains(FieldStateCode, v))
}

// StateCodeHasPrefix applies the HasPrefix predicate on the "state_code" field.
func StateCodeHasPrefix(v string) predicate.KnownDocket {
	return predicate.KnownDocket(sql.FieldHasPrefix(FieldStateCode, v))
}

// StateCodeHasSuffix applies the HasSuffix predicate on the "state_code" field.
func StateCodeHasSuffix(v string) predicate.KnownDocket {
	return predicate.KnownDocket(sql.FieldHasSuffix(FieldStateCode, v))
}

// StateCodeEqualFold applies the EqualFold predicate on the "state_code" field.
func StateCodeEqualFold(v string) predicate.KnownDocket {
	return predicate.KnownDocket(sql.FieldEqualFold(FieldStateCode, v))
}

// StateCodeContainsFold applies the ContainsFold predicate on the "state_code" field.
func StateCodeContainsFold(v string) predicate.KnownDocket {
	return predicate.KnownDocket(sql.FieldContainsFold(FieldStateCode, v))
}

// DocketNumberEQ applies the EQ predicate on the "docket_number" field.
func DocketNumberEQ(v string) predicate.KnownDocket {
	return predicate.KnownDocket(sql.FieldEQ(FieldDocketNumber, v))
}

// DocketNumberNEQ applies the NEQ predicate on the "docket_number" field.
func DocketNumberNEQ(v string) predicate.KnownDocket {
	return predicate.KnownDocket(sql.FieldNEQ(FieldDocketNumber, v))
}

// DocketNumberIn applies the In predicate on the "docket_number" field.
func DocketNumberIn(vs ...string) predicate.KnownDocket {
	return predicate.KnownDocket(sql.FieldIn(FieldDocketNumber, vs...))
}

// DocketNumberNotIn applies the NotIn predicate on the "docket_number" field.
func DocketNumberNotIn(vs ...string) predicate.KnownDocket {
	return predicate.KnownDocket(sql.FieldNotIn(FieldDocketNumber, vs...))
}

// DocketNumberGT applies the GT predicate on the "docket_number" field.
func DocketNumberGT(v string) predicate.KnownDocket {
	return predicate.KnownDocket(sql.FieldGT(FieldDocketNumber, v))
}

// DocketNumberGTE applies the GTE predicate on the "docket_number" field.
func DocketNumberGTE(v string) predicate.KnownDocket {
	return predicate.KnownDocket(sql.FieldGTE(FieldDocketNumber, v))
}

// DocketNumberLT applies the LT predicate on the "docket_number" field.
func DocketNumberLT(v string) predicate.KnownDocket {
	return predicate.KnownDocket(sql.FieldLT(FieldDocketNumber, v))
}

// DocketNumberLTE applies the LTE predicate on the "docket_number" field.
func DocketNumberLTE(v string) predicate.KnownDocket {
	return predicate.KnownDocket(sql.FieldLTE(FieldDocketNumber, v))
}

// DocketNumberContains applies the Contains predicate on the "docket_number" field.
func DocketNumberContains(v string) predicate.KnownDocket {
	return predicate.KnownDocket(sql.FieldContains(FieldDocketNumber, v))
}

// DocketNumberHasPrefix applies the HasPrefix predicate on the "docket_number" field.
func DocketNumberHasPrefix(v string) predicate.KnownDocket {
	return predicate.KnownDocket(sql.FieldHasPrefix(FieldDocketNumber, v))
}

// DocketNumberHasSuffix applies the HasSuffix predicate on the "docket_number" field.
func DocketNumberHasSuffix(v string) predicate.KnownDocket {
	return predicate.KnownDocket(sql.FieldHasSuffix(FieldDocketNumber, v))
}

// DocketNumberEqualFold applies the EqualFold predicate on the "docket_number" field.
func DocketNumberEqualFold(v string) predicate.KnownDocket {
	return predicate.KnownDocket(sql.FieldEqualFold(FieldDocketNumber, v))
}

// DocketNumberContainsFold applies the ContainsFold predicate on the "docket_number" field.
func DocketNumberContainsFold(v string) predicate.KnownDocket {
	return predicate.KnownDocket(sql.FieldContainsFold(FieldDocketNumber, v))
}

// NormalizedIDEQ applies the EQ predicate on the "normalized_id" field.
func NormalizedIDEQ(v string) predicate.KnownDocket {
	return predicate.KnownDocket(sql.FieldEQ(FieldNormalizedID, v))
}

// NormalizedIDNEQ applies the NEQ predicate on the "normalized_id" field.
func NormalizedIDNEQ(v string) predicate.KnownDocket {
	return predicate.KnownDocket(sql.FieldNEQ(FieldNormalizedID, v))
}

// NormalizedIDIn applies the In predicate on the "normalized_id" field.
func NormalizedIDIn(vs ...string) predicate.KnownDocket {
	return predicate.KnownDocket(sql.FieldIn(FieldNormalizedID, vs...))
}

// NormalizedIDNotIn applies the NotIn predicate on the "normalized_id" field.
func NormalizedIDNotIn(vs ...string) predicate.KnownDocket {
	return predicate.KnownDocket(sql.FieldNotIn(FieldNormalizedID, vs...))
}

// NormalizedIDGT applies the GT predicate on the "normalized_id" field.
func NormalizedIDGT(v string) predicate.KnownDocket {
	return predicate.KnownDocket(sql.FieldGT(FieldNormalizedID, v))
}

// NormalizedIDGTE applies the GTE predicate on the "normalized_id" field.
func NormalizedIDGTE(v string) predicate.KnownDocket {
	return predicate.KnownDocket(sql.FieldGTE(FieldNormalizedID, v))
}

// NormalizedIDLT applies the LT predicate on the "normalized_id" field.
func NormalizedIDLT(v string) predicate.KnownDocket {
	return predicate.KnownDocket(sql.FieldLT(FieldNormalizedID, v))
}

// NormalizedIDLTE applies the LTE predicate on the "normalized_id" field.
func NormalizedIDLTE(v string) predicate.KnownDocket {
	return predicate.KnownDocket(sql.FieldLTE(FieldNormalizedID, v))
}

// NormalizedIDContains applies the Contains predicate on the "normalized_id" field.
func NormalizedIDContains(v string) predicate.KnownDocket {
	return predicate.KnownDocket(sql.FieldContains(FieldNormalizedID, v))
}

// NormalizedIDHasPrefix applies the HasPrefix predicate on the "normalized_id" field.
func NormalizedIDHasPrefix(v string) predicate.KnownDocket {
	return predicate.KnownDocket(sql.FieldHasPrefix(FieldNormalizedID, v))
}

// NormalizedIDHasSuffix applies the HasSuffix predicate on the "normalized_id" field.
func NormalizedIDHasSuffix(v string) predicate.KnownDocket {
	return predicate.KnownDocket(sql.FieldHasSuffix(FieldNormalizedID, v))
}

// NormalizedIDEqualFold applies the EqualFold predicate on the "normalized_id" field.
func NormalizedIDEqualFold(v string) predicate.KnownDocket {
	return predicate.KnownDocket(sql.FieldEqualFold(FieldNormalizedID, v))
}

// NormalizedIDContainsFold applies the ContainsFold predicate on the "normalized_id" field.
func NormalizedIDContainsFold(v string) predicate.KnownDocket {
	return predicate.KnownDocket(sql.FieldContainsFold(FieldNormalizedID, v))
}

// YearEQ applies the EQ predicate on the "year" field.
func YearEQ(v int) predicate.KnownDocket {
	return predicate.KnownDocket(sql.FieldEQ(FieldYear, v))
}

// YearNEQ applies the NEQ predicate on the "year" field.
func YearNEQ(v int) predicate.KnownDocket {
	return predicate.KnownDocket(sql.FieldNEQ(FieldYear, v))
}

// YearIn applies the In predicate on the "year" field.
func YearIn(vs ...int) predicate.KnownDocket {
	return predicate.KnownDocket(sql.FieldIn(FieldYear, vs...))
}

// YearNotIn applies the NotIn predicate on the "year" field.
func YearNotIn(vs ...int) predicate.KnownDocket {
	return predicate.KnownDocket(sql.FieldNotIn(FieldYear, vs...))
}

// YearGT applies the GT predicate on the "year" field.
func YearGT(v int) predicate.KnownDocket {
	return predicate.KnownDocket(sql.FieldGT(FieldYear, v))
}

// YearGTE applies the GTE predicate on the "year" field.
func YearGTE(v int) predicate.KnownDocket {
	return predicate.KnownDocket(sql.FieldGTE(FieldYear, v))
}

// YearLT applies the LT predicate on the "year" field.
func YearLT(v int) predicate.KnownDocket {
	return predicate.KnownDocket(sql.FieldLT(FieldYear, v))
}

// YearLTE applies the LTE predicate on the "year" field.
func YearLTE(v int) predicate.KnownDocket {
	return predicate.KnownDocket(sql.FieldLTE(FieldYear, v))
}

// YearIsNil applies the IsNil predicate on the "year" field.
func YearIsNil() predicate.KnownDocket {
	return predicate.KnownDocket(sql.FieldIsNull(FieldYear))
}

// YearNotNil applies the NotNil predicate on the "year" field.
func YearNotNil() predicate.KnownDocket {
	return predicate.KnownDocket(sql.FieldNotNull(FieldYear))
}

// CaseNumberEQ applies the EQ predicate on the "case_number" field.
func CaseNumberEQ(v string) predicate.KnownDocket {
	return predicate.KnownDocket(sql.FieldEQ(FieldCaseNumber, v))
}

// CaseNumberNEQ applies the NEQ predicate on the "case_number" field.
func CaseNumberNEQ(v string) predicate.KnownDocket {
	return predicate.KnownDocket(sql.FieldNEQ(FieldCaseNumber, v))
}

// CaseNumberIn applies the In predicate on the "case_number" field.
func CaseNumberIn(vs ...string) predicate.KnownDocket {
	return predicate.KnownDocket(sql.FieldIn(FieldCaseNumber, vs...))
}

// CaseNumberNotIn applies the NotIn predicate on the "case_number" field.
func CaseNumberNotIn(vs ...string) predicate.KnownDocket {
	return predicate.KnownDocket(sql.FieldNotIn(FieldCaseNumber, vs...))
}

// CaseNumberGT applies the GT predicate on the "case_number" field.
func CaseNumberGT(v string) predicate.KnownDocket {
	return predicate.KnownDocket(sql.FieldGT(FieldCaseNumber, v))
}

// CaseNumberGTE applies the GTE predicate on the "case_number" field.
func CaseNumberGTE(v string) predicate.KnownDocket {
	return predicate.KnownDocket(sql.FieldGTE(FieldCaseNumber, v))
}

// CaseNumberLT applies the LT predicate on the "case_number" field.
func CaseNumberLT(v string) predicate.KnownDocket {
	return predicate.KnownDocket(sql.FieldLT(FieldCaseNumber, v))
}

// CaseNumberLTE applies the LTE predicate on the "case_number" field.
func CaseNumberLTE(v string) predicate.KnownDocket {
	return predicate.KnownDocket(sql.FieldLTE(FieldCaseNumber, v))
}

// CaseNumberContains applies the Contains predicate on the "case_number" field.
func CaseNumberContains(v string) predicate.KnownDocket {
	return predicate.KnownDocket(sql.FieldContains(FieldCaseNumber, v))
}

// CaseNumberHasPrefix applies the HasPrefix predicate on the "case_number" field.
func CaseNumberHasPrefix(v string) predicate.KnownDocket {
	return predicate.KnownDocket(sql.FieldHasPrefix(FieldCaseNumber, v))
}

// CaseNumberHasSuffix applies the HasSuffix predicate on the "case_number" field.
func CaseNumberHasSuffix(v string) predicate.KnownDocket {
	return predicate.KnownDocket(sql.FieldHasSuffix(FieldCaseNumber, v))
}

// CaseNumberIsNil applies the IsNil predicate on the "case_number" field.
func CaseNumberIsNil() predicate.KnownDocket {
	return predicate.KnownDocket(sql.FieldIsNull(FieldCaseNumber))
}

// CaseNumberNotNil applies the NotNil predicate on the "case_number" field.
func CaseNumberNotNil() predicate.KnownDocket {
	return predicate.KnownDocket(sql.FieldNotNull(FieldCaseNumber))
}

// CaseNumberEqualFold applies the EqualFold predicate on the "case_number" field.
func CaseNumberEqualFold(v string) predicate.KnownDocket {
	return predicate.KnownDocket(sql.FieldEqualFold(FieldCaseNumber, v))
}

// CaseNumberContainsFold applies the ContainsFold predicate on the "case_number" field.
func CaseNumberContainsFold(v string) predicate.KnownDocket {
	return predicate.KnownDocket(sql.FieldContainsFold(FieldCaseNumber, v))
}

// SuffixEQ applies the EQ predicate on the "suffix" field.
func SuffixEQ(v string) predicate.KnownDocket {
	return predicate.KnownDocket(sql.FieldEQ(FieldSuffix, v))
}

// SuffixNEQ applies the NEQ predicate on the "suffix" field.
func SuffixNEQ(v string) predicate.KnownDocket {
	return predicate.KnownDocket(sql.FieldNEQ(FieldSuffix, v))
}

// SuffixIn applies the In predicate on the "suffix" field.
func SuffixIn(vs ...string) predicate.KnownDocket {
	return predicate.KnownDocket(sql.FieldIn(FieldSuffix, vs...))
}

// SuffixNotIn applies the NotIn predicate on the "suffix" field.
func SuffixNotIn(vs ...string) predicate.KnownDocket {
	return predicate.KnownDocket(sql.FieldNotIn(FieldSuffix, vs...))
}

// SuffixGT applies the GT predicate on the "suffix" field.
func SuffixGT(v string) predicate.KnownDocket {
	return predicate.KnownDocket(sql.FieldGT(FieldSuffix, v))
}

// SuffixGTE applies the GTE predicate on the "suffix" field.
func SuffixGTE(v string) predicate.KnownDocket {
	return predicate.KnownDocket(sql.FieldGTE(FieldSuffix, v))
}

// SuffixLT applies the LT predicate on the "suffix" field.
func SuffixLT(v string) predicate.KnownDocket {
	return predicate.KnownDocket(sql.FieldLT(FieldSuffix, v))
}

// SuffixLTE applies the LTE predicate on the "suffix" field.
func SuffixLTE(v string) predicate.KnownDocket {
	return predicate.KnownDocket(sql.FieldLTE(FieldSuffix, v))
}

// SuffixContains applies the Contains predicate on the "suffix" field.
func SuffixContains(v string) predicate.KnownDocket {
	return predicate.KnownDocket(sql.FieldContains(FieldSuffix, v))
}

// SuffixHasPrefix applies the HasPrefix predicate on the "suffix" field.
func SuffixHasPrefix(v string) predicate.KnownDocket {
	return predicate.KnownDocket(sql.FieldHasPrefix(FieldSuffix, v))
}

// SuffixHasSuffix applies the HasSuffix predicate on the "suffix" field.
func SuffixHasSuffix(v string) predicate.KnownDocket {
	return predicate.KnownDocket(sql.FieldHasSuffix(FieldSuffix, v))
}

// SuffixIsNil applies the IsNil predicate on the "suffix" field.
func SuffixIsNil() predicate.KnownDocket {
	return predicate.KnownDocket(sql.FieldIsNull(FieldSuffix))
}

// SuffixNotNil applies the NotNil predicate on the "suffix" field.
func SuffixNotNil() predicate.KnownDocket {
	return predicate.KnownDocket(sql.FieldNotNull(FieldSuffix))
}

// SuffixEqualFold applies the EqualFold predicate on the "suffix" field.
func SuffixEqualFold(v string) predicate.KnownDocket {
	return predicate.KnownDocket(sql.FieldEqualFold(FieldSuffix, v))
}

// SuffixContainsFold applies the ContainsFold predicate on the "suffix" field.
func SuffixContainsFold(v string) predicate.KnownDocket {
	return predicate.KnownDocket(sql.FieldContainsFold(FieldSuffix, v))
}

// UtilitySectorEQ applies the EQ predicate on the "utility_sector" field.
func UtilitySectorEQ(v string) predicate.KnownDocket {
	return predicate.KnownDocket(sql.FieldEQ(FieldUtilitySector, v))
}

// UtilitySectorNEQ applies the NEQ predicate on the "utility_sector" field.
func UtilitySectorNEQ(v string) predicate.KnownDocket {
	return predicate.KnownDocket(sql.FieldNEQ(FieldUtilitySector, v))
}

// UtilitySectorIn applies the In predicate on the "utility_sector" field.
func UtilitySectorIn(vs ...string) predicate.KnownDocket {
	return predicate.KnownDocket(sql.FieldIn(FieldUtilitySector, vs...))
}

// UtilitySectorNotIn applies the NotIn predicate on the "utility_sector" field.
func UtilitySectorNotIn(vs ...string) predicate.KnownDocket {
	return predicate.KnownDocket(sql.FieldNotIn(FieldUtilitySector, vs...))
}

// UtilitySectorGT applies the GT predicate on the "utility_sector" field.
func UtilitySectorGT(v string) predicate.KnownDocket {
	return predicate.KnownDocket(sql.FieldGT(FieldUtilitySector, v))
}

// UtilitySectorGTE applies the GTE predicate on the "utility_sector" field.
func UtilitySectorGTE(v string) predicate.KnownDocket {
	return predicate.KnownDocket(sql.FieldGTE(FieldUtilitySector, v))
}

// UtilitySectorLT applies the LT predicate on the "utility_sector" field.
func UtilitySectorLT(v string) predicate.KnownDocket {
	return predicate.KnownDocket(sql.FieldLT(FieldUtilitySector, v))
}

// UtilitySectorLTE applies the LTE predicate on the "utility_sector" field.
func UtilitySectorLTE(v string) predicate.KnownDocket {
	return predicate.KnownDocket(sql.FieldLTE(FieldUtilitySector, v))
}

// UtilitySectorContains applies the Contains predicate on the "utility_sector" field.
func UtilitySectorContains(v string) predicate.KnownDocket {
	return predicate.KnownDocket(sql.FieldContains(FieldUtilitySector, v))
}

// UtilitySectorHasPrefix applies the HasPrefix predicate on the "utility_sector" field.
func UtilitySectorHasPrefix(v string) predicate.KnownDocket {
	return predicate.KnownDocket(sql.FieldHasPrefix(FieldUtilitySector, v))
}

// UtilitySectorHasSuffix applies the HasSuffix predicate on the "utility_sector" field.
func UtilitySectorHasSuffix(v string) predicate.KnownDocket {
	return predicate.KnownDocket(sql.FieldHasSuffix(FieldUtilitySector, v))
}

// UtilitySectorIsNil applies the IsNil predicate on the "utility_sector" field.
func UtilitySectorIsNil() predicate.KnownDocket {
	return predicate.KnownDocket(sql.FieldIsNull(FieldUtilitySector))
}

// UtilitySectorNotNil applies the NotNil predicate on the "utility_sector" field.
func UtilitySectorNotNil() predicate.KnownDocket {
	return predicate.KnownDocket(sql.FieldNotNull(FieldUtilitySector))
}

// UtilitySectorEqualFold applies the EqualFold predicate on the "utility_sector" field.
func UtilitySectorEqualFold(v string) predicate.KnownDocket {
	return predicate.KnownDocket(sql.FieldEqualFold(FieldUtilitySector, v))
}

// UtilitySectorContainsFold applies the ContainsFold predicate on the "utility_sector" field.
func UtilitySectorContainsFold(v string) predicate.KnownDocket {
	return predicate.KnownDocket(sql.FieldContainsFold(FieldUtilitySector, v))
}

// TitleEQ applies the EQ predicate on the "title" field.
func TitleEQ(v string) predicate.KnownDocket {
	return predicate.KnownDocket(sql.FieldEQ(FieldTitle, v))
}

// TitleNEQ applies the NEQ predicate on the "title" field.
func TitleNEQ(v string) predicate.KnownDocket {
	return predicate.KnownDocket(sql.FieldNEQ(FieldTitle, v))
}

// TitleIn applies the In predicate on the "title" field.
func TitleIn(vs ...string) predicate.KnownDocket {
	return predicate.KnownDocket(sql.FieldIn(FieldTitle, vs...))
}

// TitleNotIn applies the NotIn predicate on the "title" field.
func TitleNotIn(vs ...string) predicate.KnownDocket {
	return predicate.KnownDocket(sql.FieldNotIn(FieldTitle, vs...))
}

// TitleGT applies the GT predicate on the "title" field.
func TitleGT(v string) predicate.KnownDocket {
	return predicate.KnownDocket(sql.FieldGT(FieldTitle, v))
}

// TitleGTE applies the GTE predicate on the "title" field.
func TitleGTE(v string) predicate.KnownDocket {
	return predicate.KnownDocket(sql.FieldGTE(FieldTitle, v))
}

// TitleLT applies the LT predicate on the "title" field.
func TitleLT(v string) predicate.KnownDocket {
	return predicate.KnownDocket(sql.FieldLT(FieldTitle, v))
}

// TitleLTE applies the LTE predicate on the "title" field.
func TitleLTE(v string) predicate.KnownDocket {
	return predicate.KnownDocket(sql.FieldLTE(FieldTitle, v))
}

// TitleContains applies the Contains predicate on the "title" field.
func TitleContains(v string) predicate.KnownDocket {
	return predicate.KnownDocket(sql.FieldContains(FieldTitle, v))
}

// TitleHasPrefix applies the HasPrefix predicate on the "title" field.
func TitleHasPrefix(v string) predicate.KnownDocket {
	return predicate.KnownDocket(sql.FieldHasPrefix(FieldTitle, v))
}

// TitleHasSuffix applies the HasSuffix predicate on the "title" field.
func TitleHasSuffix(v string) predicate.KnownDocket {
	return predicate.KnownDocket(sql.FieldHasSuffix(FieldTitle, v))
}

// TitleIsNil applies the IsNil predicate on the "title" field.
func TitleIsNil() predicate.KnownDocket {
	return predicate.KnownDocket(sql.FieldIsNull(FieldTitle))
}

// TitleNotNil applies the NotNil predicate on the "title" field.
func TitleNotNil() predicate.KnownDocket {
	return predicate.KnownDocket(sql.FieldNotNull(FieldTitle))
}

// TitleEqualFold applies the EqualFold predicate on the "title" field.
func TitleEqualFold(v string) predicate.KnownDocket {
	return predicate.KnownDocket(sql.FieldEqualFold(FieldTitle, v))
}

// TitleContainsFold applies the ContainsFold predicate on the "title" field.
func TitleContainsFold(v string) predicate.KnownDocket {
	return predicate.KnownDocket(sql.FieldContainsFold(FieldTitle, v))
}

// UtilityNameEQ applies the EQ predicate on the "utility_name" field.
func UtilityNameEQ(v string) predicate.KnownDocket {
	return predicate.KnownDocket(sql.FieldEQ(FieldUtilityName, v))
}

// UtilityNameNEQ applies the NEQ predicate on the "utility_name" field.
func UtilityNameNEQ(v string) predicate.KnownDocket {
	return predicate.KnownDocket(sql.FieldNEQ(FieldUtilityName, v))
}

// UtilityNameIn applies the In predicate on the "utility_name" field.
func UtilityNameIn(vs ...string) predicate.KnownDocket {
	return predicate.KnownDocket(sql.FieldIn(FieldUtilityName, vs...))
}

// UtilityNameNotIn applies the NotIn predicate on the "utility_name" field.
func UtilityNameNotIn(vs ...string) predicate.KnownDocket {
	return predicate.KnownDocket(sql.FieldNotIn(FieldUtilityName, vs...))
}

// UtilityNameGT applies the GT predicate on the "utility_name" field.
func UtilityNameGT(v string) predicate.KnownDocket {
	return predicate.KnownDocket(sql.FieldGT(FieldUtilityName, v))
}

// UtilityNameGTE applies the GTE predicate on the "utility_name" field.
func UtilityNameGTE(v string) predicate.KnownDocket {
	return predicate.KnownDocket(sql.FieldGTE(FieldUtilityName, v))
}

// UtilityNameLT applies the LT predicate on the "utility_name" field.
func UtilityNameLT(v string) predicate.KnownDocket {
	return predicate.KnownDocket(sql.FieldLT(FieldUtilityName, v))
}

// UtilityNameLTE applies the LTE predicate on the "utility_name" field.
func UtilityNameLTE(v string) predicate.KnownDocket {
	return predicate.KnownDocket(sql.FieldLTE(FieldUtilityName, v))
}

// UtilityNameContains applies the Contains predicate on the "utility_name" field.
func UtilityNameContains(v string) predicate.KnownDocket {
	return predicate.KnownDocket(sql.FieldContains(FieldUtilityName, v))
}

// UtilityNameHasPrefix applies the HasPrefix predicate on the "utility_name" field.
func UtilityNameHasPrefix(v string) predicate.KnownDocket {
	return predicate.KnownDocket(sql.FieldHasPrefix(FieldUtilityName, v))
}

// UtilityNameHasSuffix applies the HasSuffix predicate on the "utility_name" field.
func UtilityNameHasSuffix(v string) predicate.KnownDocket {
	return predicate.KnownDocket(sql.FieldHasSuffix(FieldUtilityName, v))
}

// UtilityNameIsNil applies the IsNil predicate on the "utility_name" field.
func UtilityNameIsNil() predicate.KnownDocket {
	return predicate.KnownDocket(sql.FieldIsNull(FieldUtilityName))
}

// UtilityNameNotNil applies the NotNil predicate on the "utility_name" field.
func UtilityNameNotNil() predicate.KnownDocket {
	return predicate.KnownDocket(sql.FieldNotNull(FieldUtilityName))
}

// UtilityNameEqualFold applies the EqualFold predicate on the "utility_name" field.
func UtilityNameEqualFold(v string) predicate.KnownDocket {
	return predicate.KnownDocket(sql.FieldEqualFold(FieldUtilityName, v))
}

// UtilityNameContainsFold applies the ContainsFold predicate on the "utility_name" field.
func UtilityNameContainsFold(v string) predicate.KnownDocket {
	return predicate.KnownDocket(sql.FieldContainsFold(FieldUtilityName, v))
}

// FilingDateEQ applies the EQ predicate on the "filing_date" field.
func FilingDateEQ(v time.Time) predicate.KnownDocket {
	return predicate.KnownDocket(sql.FieldEQ(FieldFilingDate, v))
}

// FilingDateNEQ applies the NEQ predicate on the "filing_date" field.
func FilingDateNEQ(v time.Time) predicate.KnownDocket {
	return predicate.KnownDocket(sql.FieldNEQ(FieldFilingDate, v))
}

// FilingDateIn applies the In predicate on the "filing_date" field.
func FilingDateIn(vs ...time.Time) predicate.KnownDocket {
	return predicate.KnownDocket(sql.FieldIn(FieldFilingDate, vs...))
}

// FilingDateNotIn applies the NotIn predicate on the "filing_date" field.
func FilingDateNotIn(vs ...time.Time) predicate.KnownDocket {
	return predicate.KnownDocket(sql.FieldNotIn(FieldFilingDate, vs...))
}

// FilingDateGT applies the GT predicate on the "filing_date" field.
func FilingDateGT(v time.Time) predicate.KnownDocket {
	return predicate.KnownDocket(sql.FieldGT(FieldFilingDate, v))
}

// FilingDateGTE applies the GTE predicate on the "filing_date" field.
func FilingDateGTE(v time.Time) predicate.KnownDocket {
	return predicate.KnownDocket(sql.FieldGTE(FieldFilingDate, v))
}

// FilingDateLT applies the LT predicate on the "filing_date" field.
func FilingDateLT(v time.Time) predicate.KnownDocket {
	return predicate.KnownDocket(sql.FieldLT(FieldFilingDate, v))
}

// FilingDateLTE applies the LTE predicate on the "filing_date" field.
func FilingDateLTE(v time.Time) predicate.KnownDocket {
	return predicate.KnownDocket(sql.FieldLTE(FieldFilingDate, v))
}

// FilingDateIsNil applies the IsNil predicate on the "filing_date" field.
func FilingDateIsNil() predicate.KnownDocket {
	return predicate.KnownDocket(sql.FieldIsNull(FieldFilingDate))
}

// FilingDateNotNil applies the NotNil predicate on the "filing_date" field.
func FilingDateNotNil() predicate.KnownDocket {
	return predicate.KnownDocket(sql.FieldNotNull(FieldFilingDate))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v string) predicate.KnownDocket {
	return predicate.KnownDocket(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v string) predicate.KnownDocket {
	return predicate.KnownDocket(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...string) predicate.KnownDocket {
	return predicate.KnownDocket(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...string) predicate.KnownDocket {
	return predicate.KnownDocket(sql.FieldNotIn(FieldStatus, vs...))
}

// StatusGT applies the GT predicate on the "status" field.
func StatusGT(v string) predicate.KnownDocket {
	return predicate.KnownDocket(sql.FieldGT(FieldStatus, v))
}

// StatusGTE applies the GTE predicate on the "status" field.
func StatusGTE(v string) predicate.KnownDocket {
	return predicate.KnownDocket(sql.FieldGTE(FieldStatus, v))
}

// StatusLT applies the LT predicate on the "status" field.
func StatusLT(v string) predicate.KnownDocket {
	return predicate.KnownDocket(sql.FieldLT(FieldStatus, v))
}

// StatusLTE applies the LTE predicate on the "status" field.
func StatusLTE(v string) predicate.KnownDocket {
	return predicate.KnownDocket(sql.FieldLTE(FieldStatus, v))
}

// StatusContains applies the Contains predicate on the "status" field.
func StatusContains(v string) predicate.KnownDocket {
	return predicate.KnownDocket(sql.FieldContains(FieldStatus, v))
}

// StatusHasPrefix applies the HasPrefix predicate on the "status" field.
func StatusHasPrefix(v string) predicate.KnownDocket {
	return predicate.KnownDocket(sql.FieldHasPrefix(FieldStatus, v))
}

// StatusHasSuffix applies the HasSuffix predicate on the "status" field.
func StatusHasSuffix(v string) predicate.KnownDocket {
	return predicate.KnownDocket(sql.FieldHasSuffix(FieldStatus, v))
}

// StatusIsNil applies the IsNil predicate on the "status" field.
func StatusIsNil() predicate.KnownDocket {
	return predicate.KnownDocket(sql.FieldIsNull(FieldStatus))
}

// StatusNotNil applies the NotNil predicate on the "status" field.
func StatusNotNil() predicate.KnownDocket {
	return predicate.KnownDocket(sql.FieldNotNull(FieldStatus))
}

// StatusEqualFold applies the EqualFold predicate on the "status" field.
func StatusEqualFold(v string) predicate.KnownDocket {
	return predicate.KnownDocket(sql.FieldEqualFold(FieldStatus, v))
}

// StatusContainsFold applies the ContainsFold predicate on the "status" field.
func StatusContainsFold(v string) predicate.KnownDocket {
	return predicate.KnownDocket(sql.FieldContainsFold(FieldStatus, v))
}

// CaseTypeEQ applies the EQ predicate on the "case_type" field.
func CaseTypeEQ(v string) predicate.KnownDocket {
	return predicate.KnownDocket(sql.FieldEQ(FieldCaseType, v))
}

// CaseTypeNEQ applies the NEQ predicate on the "case_type" field.
func CaseTypeNEQ(v string) predicate.KnownDocket {
	return predicate.KnownDocket(sql.FieldNEQ(FieldCaseType, v))
}

// CaseTypeIn applies the In predicate on the "case_type" field.
func CaseTypeIn(vs ...string) predicate.KnownDocket {
	return predicate.KnownDocket(sql.FieldIn(FieldCaseType, vs...))
}

// CaseTypeNotIn applies the NotIn predicate on the "case_type" field.
func CaseTypeNotIn(vs ...string) predicate.KnownDocket {
	return predicate.KnownDocket(sql.FieldNotIn(FieldCaseType, vs...))
}

// CaseTypeGT applies the GT predicate on the "case_type" field.
func CaseTypeGT(v string) predicate.KnownDocket {
	return predicate.KnownDocket(sql.FieldGT(FieldCaseType, v))
}

// CaseTypeGTE applies the GTE predicate on the "case_type" field.
func CaseTypeGTE(v string) predicate.KnownDocket {
	return predicate.KnownDocket(sql.FieldGTE(FieldCaseType, v))
}

// CaseTypeLT applies the LT predicate on the "case_type" field.
func CaseTypeLT(v string) predicate.KnownDocket {
	return predicate.KnownDocket(sql.FieldLT(FieldCaseType, v))
}

// CaseTypeLTE applies the LTE predicate on the "case_type" field.
func CaseTypeLTE(v string) predicate.KnownDocket {
	return predicate.KnownDocket(sql.FieldLTE(FieldCaseType, v))
}

// CaseTypeContains applies the Contains predicate on the "case_type" field.
func CaseTypeContains(v string) predicate.KnownDocket {
	return predicate.KnownDocket(sql.FieldContains(FieldCaseType, v))
}

// CaseTypeHasPrefix applies the HasPrefix predicate on the "case_type" field.
func CaseTypeHasPrefix(v string) predicate.KnownDocket {
	return predicate.KnownDocket(sql.FieldHasPrefix(FieldCaseType, v))
}

// CaseTypeHasSuffix applies the HasSuffix predicate on the "case_type" field.
func CaseTypeHasSuffix(v string) predicate.KnownDocket {
	return predicate.KnownDocket(sql.FieldHasSuffix(FieldCaseType, v))
}

// CaseTypeIsNil applies the IsNil predicate on the "case_type" field.
func CaseTypeIsNil() predicate.KnownDocket {
	return predicate.KnownDocket(sql.FieldIsNull(FieldCaseType))
}

// CaseTypeNotNil applies the NotNil predicate on the "case_type" field.
func CaseTypeNotNil() predicate.KnownDocket {
	return predicate.KnownDocket(sql.FieldNotNull(FieldCaseType))
}

// CaseTypeEqualFold applies the EqualFold predicate on the "case_type" field.
func CaseTypeEqualFold(v string) predicate.KnownDocket {
	return predicate.KnownDocket(sql.FieldEqualFold(FieldCaseType, v))
}

// CaseTypeContainsFold applies the ContainsFold predicate on the "case_type" field.
func CaseTypeContainsFold(v string) predicate.KnownDocket {
	return predicate.KnownDocket(sql.FieldContainsFold(FieldCaseType, v))
}

// SourceURLEQ applies the EQ predicate on the "source_url" field.
func SourceURLEQ(v string) predicate.KnownDocket {
	return predicate.KnownDocket(sql.FieldEQ(FieldSourceURL, v))
}

// SourceURLNEQ applies the NEQ predicate on the "source_url" field.
func SourceURLNEQ(v string) predicate.KnownDocket {
	return predicate.KnownDocket(sql.FieldNEQ(FieldSourceURL, v))
}

// SourceURLIn applies the In predicate on the "source_url" field.
func SourceURLIn(vs ...string) predicate.KnownDocket {
	return predicate.KnownDocket(sql.FieldIn(FieldSourceURL, vs...))
}

// SourceURLNotIn applies the NotIn predicate on the "source_url" field.
func SourceURLNotIn(vs ...string) predicate.KnownDocket {
	return predicate.KnownDocket(sql.FieldNotIn(FieldSourceURL, vs...))
}

// SourceURLGT applies the GT predicate on the "source_url" field.
func SourceURLGT(v string) predicate.KnownDocket {
	return predicate.KnownDocket(sql.FieldGT(FieldSourceURL, v))
}

// SourceURLGTE applies the GTE predicate on the "source_url" field.
func SourceURLGTE(v string) predicate.KnownDocket {
	return predicate.KnownDocket(sql.FieldGTE(FieldSourceURL, v))
}

// SourceURLLT applies the LT predicate on the "source_url" field.
func SourceURLLT(v string) predicate.KnownDocket {
	return predicate.KnownDocket(sql.FieldLT(FieldSourceURL, v))
}

// SourceURLLTE applies the LTE predicate on the "source_url" field.
func SourceURLLTE(v string) predicate.KnownDocket {
	return predicate.KnownDocket(sql.FieldLTE(FieldSourceURL, v))
}

// SourceURLContains applies the Contains predicate on the "source_url" field.
func SourceURLContains(v string) predicate.KnownDocket {
	return predicate.KnownDocket(sql.FieldContains(FieldSourceURL, v))
}

// SourceURLHasPrefix applies the HasPrefix predicate on the "source_url" field.
func SourceURLHasPrefix(v string) predicate.KnownDocket {
	return predicate.KnownDocket(sql.FieldHasPrefix(FieldSourceURL, v))
}

// SourceURLHasSuffix applies the HasSuffix predicate on the "source_url" field.
func SourceURLHasSuffix(v string) predicate.KnownDocket {
	return predicate.KnownDocket(sql.FieldHasSuffix(FieldSourceURL, v))
}

// SourceURLIsNil applies the IsNil predicate on the "source_url" field.
func SourceURLIsNil() predicate.KnownDocket {
	return predicate.KnownDocket(sql.FieldIsNull(FieldSourceURL))
}

// SourceURLNotNil applies the NotNil predicate on the "source_url" field.
func SourceURLNotNil() predicate.KnownDocket {
	return predicate.KnownDocket(sql.FieldNotNull(FieldSourceURL))
}

// SourceURLEqualFold applies the EqualFold predicate on the "source_url" field.
func SourceURLEqualFold(v string) predicate.KnownDocket {
	return predicate.KnownDocket(sql.FieldEqualFold(FieldSourceURL, v))
}

// SourceURLContainsFold applies the ContainsFold predicate on the "source_url" field.
func SourceURLContainsFold(v string) predicate.KnownDocket {
	return predicate.KnownDocket(sql.FieldContainsFold(FieldSourceURL, v))
}

// HasDockets applies the HasEdge predicate on the "dockets" edge.
func HasDockets() predicate.KnownDocket {
	return predicate.KnownDocket(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, DocketsTable, DocketsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasDocketsWith applies the HasEdge predicate on the "dockets" edge with a given conditions (other predicates).
func HasDocketsWith(preds ...predicate.Docket) predicate.KnownDocket {
	return predicate.KnownDocket(func(s *sql.Selector) {
		step := newDocketsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasExtractedDockets applies the HasEdge predicate on the "extracted_dockets" edge.
func HasExtractedDockets() predicate.KnownDocket {
	return predicate.KnownDocket(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, ExtractedDocketsTable, ExtractedDocketsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasExtractedDocketsWith applies the HasEdge predicate on the "extracted_dockets" edge with a given conditions (other predicates).
func HasExtractedDocketsWith(preds ...predicate.ExtractedDocket) predicate.KnownDocket {
	return predicate.KnownDocket(func(s *sql.Selector) {
		step := newExtractedDocketsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.KnownDocket) predicate.KnownDocket {
	return predicate.KnownDocket(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.KnownDocket) predicate.KnownDocket {
	return predicate.KnownDocket(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.KnownDocket) predicate.KnownDocket {
	return predicate.KnownDocket(sql.NotPredicates(p))
}
