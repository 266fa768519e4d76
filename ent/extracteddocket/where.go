// Code generated by ent, DO NOT EDIT.

package extracteddocket

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/canaryscope/canaryscope/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.ExtractedDocket {
	return predicate.ExtractedDocket(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.ExtractedDocket {
	return predicate.ExtractedDocket(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.ExtractedDocket {
	return predicate.ExtractedDocket(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.ExtractedDocket {
	return predicate.ExtractedDocket(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.ExtractedDocket {
	return predicate.ExtractedDocket(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.ExtractedDocket {
	return predicate.ExtractedDocket(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.ExtractedDocket {
	return predicate.ExtractedDocket(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.ExtractedDocket {
	return predicate.ExtractedDocket(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.ExtractedDocket {
	return predicate.ExtractedDocket(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.ExtractedDocket {
	return predicate.ExtractedDocket(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.ExtractedDocket {
	return predicate.ExtractedDocket(sql.FieldContainsFold(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.ExtractedDocket {
	return predicate.ExtractedDocket(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.ExtractedDocket {
	return predicate.ExtractedDocket(sql.FieldEQ(FieldUpdatedAt, v))
}

// HearingID applies equality check predicate on the "hearing_id" field. It's identical to HearingIDEQ.
func HearingID(v string) predicate.ExtractedDocket {
	return predicate.ExtractedDocket(sql.FieldEQ(FieldHearingID, v))
}

// RawText applies equality check predicate on the "raw_text" field. It's identical to RawTextEQ.
func RawText(v string) predicate.ExtractedDocket {
	return predicate.ExtractedDocket(sql.FieldEQ(FieldRawText, v))
}

// NormalizedID applies equality check predicate on the "normalized_id" field. It's identical to NormalizedIDEQ.
func NormalizedID(v string) predicate.ExtractedDocket {
	return predicate.ExtractedDocket(sql.FieldEQ(FieldNormalizedID, v))
}

// StateCode applies equality check predicate on the "state_code" field. It's identical to StateCodeEQ.
func StateCode(v string) predicate.ExtractedDocket {
	return predicate.ExtractedDocket(sql.FieldEQ(FieldStateCode, v))
}

// Year applies equality check predicate on the "year" field. It's identical to YearEQ.
func Year(v int) predicate.ExtractedDocket {
	return predicate.ExtractedDocket(sql.FieldEQ(FieldYear, v))
}

// CaseNumber applies equality check predicate on the "case_number" field. It's identical to CaseNumberEQ.
func CaseNumber(v string) predicate.ExtractedDocket {
	return predicate.ExtractedDocket(sql.FieldEQ(FieldCaseNumber, v))
}

// Suffix applies equality check predicate on the "suffix" field. It's identical to SuffixEQ.
func Suffix(v string) predicate.ExtractedDocket {
	return predicate.ExtractedDocket(sql.FieldEQ(FieldSuffix, v))
}

// Sector applies equality check predicate on the "sector" field. It's identical to SectorEQ.
func Sector(v string) predicate.ExtractedDocket {
	return predicate.ExtractedDocket(sql.FieldEQ(FieldSector, v))
}

// Confidence applies equality check predicate on the "confidence" field. It's identical to ConfidenceEQ.
func Confidence(v float64) predicate.ExtractedDocket {
	return predicate.ExtractedDocket(sql.FieldEQ(FieldConfidence, v))
}

// TriggerPhrase applies equality check predicate on the "trigger_phrase" field. It's identical to TriggerPhraseEQ.
func TriggerPhrase(v string) predicate.ExtractedDocket {
	return predicate.ExtractedDocket(sql.FieldEQ(FieldTriggerPhrase, v))
}

// KnownDocketID applies equality check predicate on the "known_docket_id" field. It's identical to KnownDocketIDEQ.
func KnownDocketID(v string) predicate.ExtractedDocket {
	return predicate.ExtractedDocket(sql.FieldEQ(FieldKnownDocketID, v))
}

// FuzzyScore applies equality check predicate on the "fuzzy_score" field. It's identical to FuzzyScoreEQ.
func FuzzyScore(v float64) predicate.ExtractedDocket {
	return predicate.ExtractedDocket(sql.FieldEQ(FieldFuzzyScore, v))
}

// ContextBefore applies equality check predicate on the "context_before" field. It's identical to ContextBeforeEQ.
func ContextBefore(v string) predicate.ExtractedDocket {
	return predicate.ExtractedDocket(sql.FieldEQ(FieldContextBefore, v))
}

// ContextAfter applies equality check predicate on the "context_after" field. It's identical to ContextAfterEQ.
func ContextAfter(v string) predicate.ExtractedDocket {
	return predicate.ExtractedDocket(sql.FieldEQ(FieldContextAfter, v))
}

// SuggestedCorrection applies equality check predicate on the "suggested_correction" field. It's identical to SuggestedCorrectionEQ.
func SuggestedCorrection(v string) predicate.ExtractedDocket {
	return predicate.ExtractedDocket(sql.FieldEQ(FieldSuggestedCorrection, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.ExtractedDocket {
	return predicate.ExtractedDocket(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.ExtractedDocket {
	return predicate.ExtractedDocket(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.ExtractedDocket {
	return predicate.ExtractedDocket(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.ExtractedDocket {
	return predicate.ExtractedDocket(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.ExtractedDocket {
	return predicate.ExtractedDocket(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.ExtractedDocket {
	return predicate.ExtractedDocket(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.ExtractedDocket {
	return predicate.ExtractedDocket(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.ExtractedDocket {
	return predicate.ExtractedDocket(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.ExtractedDocket {
	return predicate.ExtractedDocket(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.ExtractedDocket {
	return predicate.ExtractedDocket(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.ExtractedDocket {
	return predicate.ExtractedDocket(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.ExtractedDocket {
	return predicate.ExtractedDocket(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.ExtractedDocket {
	return predicate.ExtractedDocket(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.ExtractedDocket {
	return predicate.ExtractedDocket(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.ExtractedDocket {
	return predicate.ExtractedDocket(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.ExtractedDocket {
	return predicate.ExtractedDocket(sql.FieldLTE(FieldUpdatedAt, v))
}

// HearingIDEQ applies the EQ predicate on the "hearing_id" field.
func HearingIDEQ(v string) predicate.ExtractedDocket {
	return predicate.ExtractedDocket(sql.FieldEQ(FieldHearingID, v))
}

// HearingIDNEQ applies the NEQ predicate on the "hearing_id" field.
func HearingIDNEQ(v string) predicate.ExtractedDocket {
	return predicate.ExtractedDocket(sql.FieldNEQ(FieldHearingID, v))
}

// HearingIDIn applies the In predicate on the "hearing_id" field.
func HearingIDIn(vs ...string) predicate.ExtractedDocket {
	return predicate.ExtractedDocket(sql.FieldIn(FieldHearingID, vs...))
}

// HearingIDNotIn applies the NotIn predicate on the "hearing_id" field.
func HearingIDNotIn(vs ...string) predicate.ExtractedDocket {
	return predicate.ExtractedDocket(sql.FieldNotIn(FieldHearingID, vs...))
}

// HearingIDGT applies the GT predicate on the "hearing_id" field.
func HearingIDGT(v string) predicate.ExtractedDocket {
	return predicate.ExtractedDocket(sql.FieldGT(FieldHearingID, v))
}

// HearingIDGTE applies the GTE predicate on the "hearing_id" field.
func HearingIDGTE(v string) predicate.ExtractedDocket {
	return predicate.ExtractedDocket(sql.FieldGTE(FieldHearingID, v))
}

// HearingIDLT applies the LT predicate on the "hearing_id" field.
func HearingIDLT(v string) predicate.ExtractedDocket {
	return predicate.ExtractedDocket(sql.FieldLT(FieldHearingID, v))
}

// HearingIDLTE applies the LTE predicate on the "hearing_id" field.
func HearingIDLTE(v string) predicate.ExtractedDocket {
	return predicate.ExtractedDocket(sql.FieldLTE(FieldHearingID, v))
}

// HearingIDContains applies the Contains predicate on the "hearing_id" field.
func HearingIDContains(v string) predicate.ExtractedDocket {
	return predicate.ExtractedDocket(sql.FieldContains(FieldHearingID, v))
}

// HearingIDHasPrefix applies the HasPrefix predicate on the "hearing_id" field.
func HearingIDHasPrefix(v string) predicate.ExtractedDocket {
	return predicate.ExtractedDocket(sql.FieldHasPrefix(FieldHearingID, v))
}

// HearingIDHasSuffix applies the HasSuffix predicate on the "hearing_id" field.
func HearingIDHasSuffix(v string) predicate.ExtractedDocket {
	return predicate.ExtractedDocket(sql.FieldHasSuffix(FieldHearingID, v))
}

// HearingIDEqualFold applies the EqualFold predicate on the "hearing_id" field.
func HearingIDEqualFold(v string) predicate.ExtractedDocket {
	return predicate.ExtractedDocket(sql.FieldEqualFold(FieldHearingID, v))
}

// HearingIDContainsFold applies the ContainsFold predicate on the "hearing_id" field.
func HearingIDContainsFold(v string) predicate.ExtractedDocket {
	return predicate.ExtractedDocket(sql.FieldContainsFold(FieldHearingID, v))
}

// RawTextEQ applies the EQ predicate on the "raw_text" field.
func RawTextEQ(v string) predicate.ExtractedDocket {
	return predicate.ExtractedDocket(sql.FieldEQ(FieldRawText, v))
}

// RawTextNEQ applies the NEQ predicate on the "raw_text" field.
func RawTextNEQ(v string) predicate.ExtractedDocket {
	return predicate.ExtractedDocket(sql.FieldNEQ(FieldRawText, v))
}

// RawTextIn applies the In predicate on the "raw_text" field.
func RawTextIn(vs ...string) predicate.ExtractedDocket {
	return predicate.ExtractedDocket(sql.FieldIn(FieldRawText, vs...))
}

// RawTextNotIn applies the NotIn predicate on the "raw_text" field.
func RawTextNotIn(vs ...string) predicate.ExtractedDocket {
	return predicate.ExtractedDocket(sql.FieldNotIn(FieldRawText, vs...))
}

// RawTextGT applies the GT predicate on the "raw_text" field.
func RawTextGT(v string) predicate.ExtractedDocket {
	return predicate.ExtractedDocket(sql.FieldGT(FieldRawText, v))
}

// RawTextGTE applies the GTE predicate on the "raw_text" field.
func RawTextGTE(v string) predicate.ExtractedDocket {
	return predicate.ExtractedDocket(sql.FieldGTE(FieldRawText, v))
}

// RawTextLT applies the LT predicate on the "raw_text" field.
func RawTextLT(v string) predicate.ExtractedDocket {
	return predicate.ExtractedDocket(sql.FieldLT(FieldRawText, v))
}

// RawTextLTE applies the LTE predicate on the "raw_text" field.
func RawTextLTE(v string) predicate.ExtractedDocket {
	return predicate.ExtractedDocket(sql.FieldLTE(FieldRawText, v))
}

// RawTextContains applies the Contains predicate on the "raw_text" field.
func RawTextContains(v string) predicate.ExtractedDocket {
	return predicate.ExtractedDocket(sql.FieldContains(FieldRawText, v))
}

// RawTextHasPrefix applies the HasPrefix predicate on the "raw_text" field.
func RawTextHasPrefix(v string) predicate.ExtractedDocket {
	return predicate.ExtractedDocket(sql.FieldHasPrefix(FieldRawText, v))
}

// RawTextHasSuffix applies the HasSuffix predicate on the "raw_text" field.
func RawTextHasSuffix(v string) predicate.ExtractedDocket {
	return predicate.ExtractedDocket(sql.FieldHasSuffix(FieldRawText, v))
}

// RawTextEqualFold applies the EqualFold predicate on the "raw_text" field.
func RawTextEqualFold(v string) predicate.ExtractedDocket {
	return predicate.ExtractedDocket(sql.FieldEqualFold(FieldRawText, v))
}

// RawTextContainsFold applies the ContainsFold predicate on the "raw_text" field.
func RawTextContainsFold(v string) predicate.ExtractedDocket {
	return predicate.ExtractedDocket(sql.FieldContainsFold(FieldRawText, v))
}

// NormalizedIDEQ applies the EQ predicate on the "normalized_id" field.
func NormalizedIDEQ(v string) predicate.ExtractedDocket {
	return predicate.ExtractedDocket(sql.FieldEQ(FieldNormalizedID, v))
}

// NormalizedIDNEQ applies the NEQ predicate on the "normalized_id" field.
func NormalizedIDNEQ(v string) predicate.ExtractedDocket {
	return predicate.ExtractedDocket(sql.FieldNEQ(FieldNormalizedID, v))
}

// NormalizedIDIn applies the In predicate on the "normalized_id" field.
func NormalizedIDIn(vs ...string) predicate.ExtractedDocket {
	return predicate.ExtractedDocket(sql.FieldIn(FieldNormalizedID, vs...))
}

// NormalizedIDNotIn applies the NotIn predicate on the "normalized_id" field.
func NormalizedIDNotIn(vs ...string) predicate.ExtractedDocket {
	return predicate.ExtractedDocket(sql.FieldNotIn(FieldNormalizedID, vs...))
}

// NormalizedIDGT applies the GT predicate on the "normalized_id" field.
func NormalizedIDGT(v string) predicate.ExtractedDocket {
	return predicate.ExtractedDocket(sql.FieldGT(FieldNormalizedID, v))
}

// NormalizedIDGTE applies the GTE predicate on the "normalized_id" field.
func NormalizedIDGTE(v string) predicate.ExtractedDocket {
	return predicate.ExtractedDocket(sql.FieldGTE(FieldNormalizedID, v))
}

// NormalizedIDLT applies the LT predicate on the "normalized_id" field.
func NormalizedIDLT(v string) predicate.ExtractedDocket {
	return predicate.ExtractedDocket(sql.FieldLT(FieldNormalizedID, v))
}

// NormalizedIDLTE applies the LTE predicate on the "normalized_id" field.
func NormalizedIDLTE(v string) predicate.ExtractedDocket {
	return predicate.ExtractedDocket(sql.FieldLTE(FieldNormalizedID, v))
}

// NormalizedIDContains applies the Contains predicate on the "normalized_id" field.
func NormalizedIDContains(v string) predicate.ExtractedDocket {
	return predicate.ExtractedDocket(sql.FieldContains(FieldNormalizedID, v))
}

// NormalizedIDHasPrefix applies the HasPrefix predicate on the "normalized_id" field.
func NormalizedIDHasPrefix(v string) predicate.ExtractedDocket {
	return predicate.ExtractedDocket(sql.FieldHasPrefix(FieldNormalizedID, v))
}

// NormalizedIDHasSuffix applies the HasSuffix predicate on the "normalized_id" field.
func NormalizedIDHasSuffix(v string) predicate.ExtractedDocket {
	return predicate.ExtractedDocket(sql.FieldHasSuffix(FieldNormalizedID, v))
}

// NormalizedIDEqualFold applies the EqualFold predicate on the "normalized_id" field.
func NormalizedIDEqualFold(v string) predicate.ExtractedDocket {
	return predicate.ExtractedDocket(sql.FieldEqualFold(FieldNormalizedID, v))
}

// NormalizedIDContainsFold applies the ContainsFold predicate on the "normalized_id" field.
func NormalizedIDContainsFold(v string) predicate.ExtractedDocket {
	return predicate.ExtractedDocket(sql.FieldContainsFold(FieldNormalizedID, v))
}

// StateCodeEQ applies the EQ predicate on the "state_code" field.
func StateCodeEQ(v string) predicate.ExtractedDocket {
	return predicate.ExtractedDocket(sql.FieldEQ(FieldStateCode, v))
}

// StateCodeNEQ applies the NEQ predicate on the "state_code" field.
func StateCodeNEQ(v string) predicate.ExtractedDocket {
	return predicate.ExtractedDocket(sql.FieldNEQ(FieldStateCode, v))
}

// StateCodeIn applies the In predicate on the "state_code" field.
func StateCodeIn(vs ...string) predicate.ExtractedDocket {
	return predicate.ExtractedDocket(sql.FieldIn(FieldStateCode, vs...))
}

// StateCodeNotIn applies the NotIn predicate on the "state_code" field.
func StateCodeNotIn(vs ...string) predicate.ExtractedDocket {
	return predicate.ExtractedDocket(sql.FieldNotIn(FieldStateCode, vs...))
}

// StateCodeGT applies the GT predicate on the "state_code" field.
func StateCodeGT(v string) predicate.ExtractedDocket {
	return predicate.ExtractedDocket(sql.FieldGT(FieldStateCode, v))
}

// StateCodeGTE applies the GTE predicate on the "state_code" field.
func StateCodeGTE(v string) predicate.ExtractedDocket {
	return predicate.ExtractedDocket(sql.FieldGTE(FieldStateCode, v))
}

// StateCodeLT applies the LT predicate on the "state_code" field.
func StateCodeLT(v string) predicate.ExtractedDocket {
	return predicate.ExtractedDocket(sql.FieldLT(FieldStateCode, v))
}

// StateCodeLTE applies the LTE predicate on the "state_code" field.
func StateCodeLTE(v string) predicate.ExtractedDocket {
	return predicate.ExtractedDocket(sql.FieldLTE(FieldStateCode, v))
}

// StateCodeContains applies the Contains predicate on the "state_code" field.
func StateCodeContains(v string) predicate.ExtractedDocket {
	return predicate.ExtractedDocket(sql.FieldContains(FieldStateCode, v))
}

// StateCodeHasPrefix applies the HasPrefix predicate on the "state_code" field.
func StateCodeHasPrefix(v string) predicate.ExtractedDocket {
	return predicate.ExtractedDocket(sql.FieldHasPrefix(FieldStateCode, v))
}

// StateCodeHasSuffix applies the HasSuffix predicate on the "state_code" field.
func StateCodeHasSuffix(v string) predicate.ExtractedDocket {
	return predicate.ExtractedDocket(sql.FieldHasSuffix(FieldStateCode, v))
}

// StateCodeEqualFold applies the EqualFold predicate on the "state_code" field.
func StateCodeEqualFold(v string) predicate.ExtractedDocket {
	return predicate.ExtractedDocket(sql.FieldEqualFold(FieldStateCode, v))
}

// StateCodeContainsFold applies the ContainsFold predicate on the "state_code" field.
func StateCodeContainsFold(v string) predicate.ExtractedDocket {
	return predicate.ExtractedDocket(sql.FieldContainsFold(FieldStateCode, v))
}

// YearEQ applies the EQ predicate on the "year" field.
func YearEQ(v int) predicate.ExtractedDocket {
	return predicate.ExtractedDocket(sql.FieldEQ(FieldYear, v))
}

// YearNEQ applies the NEQ predicate on the "year" field.
func YearNEQ(v int) predicate.ExtractedDocket {
	return predicate.ExtractedDocket(sql.FieldNEQ(FieldYear, v))
}

// YearIn applies the In predicate on the "year" field.
func YearIn(vs ...int) predicate.ExtractedDocket {
	return predicate.ExtractedDocket(sql.FieldIn(FieldYear, vs...))
}

// YearNotIn applies the NotIn predicate on the "year" field.
func YearNotIn(vs ...int) predicate.ExtractedDocket {
	return predicate.ExtractedDocket(sql.FieldNotIn(FieldYear, vs...))
}

// YearGT applies the GT predicate on the "year" field.
func YearGT(v int) predicate.ExtractedDocket {
	return predicate.ExtractedDocket(sql.FieldGT(FieldYear, v))
}

// YearGTE applies the GTE predicate on the "year" field.
func YearGTE(v int) predicate.ExtractedDocket {
	return predicate.ExtractedDocket(sql.FieldGTE(FieldYear, v))
}

// YearLT applies the LT predicate on the "year" field.
func YearLT(v int) predicate.ExtractedDocket {
	return predicate.ExtractedDocket(sql.FieldLT(FieldYear, v))
}

// YearLTE applies the LTE predicate on the "year" field.
func YearLTE(v int) predicate.ExtractedDocket {
	return predicate.ExtractedDocket(sql.FieldLTE(FieldYear, v))
}

// YearIsNil applies the IsNil predicate on the "year" field.
func YearIsNil() predicate.ExtractedDocket {
	return predicate.ExtractedDocket(sql.FieldIsNull(FieldYear))
}

// YearNotNil applies the NotNil predicate on the "year" field.
func YearNotNil() predicate.ExtractedDocket {
	return predicate.ExtractedDocket(sql.FieldNotNull(FieldYear))
}

// CaseNumberEQ applies the EQ predicate on the "case_number" field.
func CaseNumberEQ(v string) predicate.ExtractedDocket {
	return predicate.ExtractedDocket(sql.FieldEQ(FieldCaseNumber, v))
}

// CaseNumberNEQ applies the NEQ predicate on the "case_number" field.
func CaseNumberNEQ(v string) predicate.ExtractedDocket {
	return predicate.ExtractedDocket(sql.FieldNEQ(FieldCaseNumber, v))
}

// CaseNumberIn applies the In predicate on the "case_number" field.
func CaseNumberIn(vs ...string) predicate.ExtractedDocket {
	return predicate.ExtractedDocket(sql.FieldIn(FieldCaseNumber, vs...))
}

// CaseNumberNotIn applies the NotIn predicate on the "case_number" field.
func CaseNumberNotIn(vs ...string) predicate.ExtractedDocket {
	return predicate.ExtractedDocket(sql.FieldNotIn(FieldCaseNumber, vs...))
}

// CaseNumberGT applies the GT predicate on the "case_number" field.
func CaseNumberGT(v string) predicate.ExtractedDocket {
	return predicate.ExtractedDocket(sql.FieldGT(FieldCaseNumber, v))
}

// CaseNumberGTE applies the GTE predicate on the "case_number" field.
func CaseNumberGTE(v string) predicate.ExtractedDocket {
	return predicate.ExtractedDocket(sql.FieldGTE(FieldCaseNumber, v))
}

// CaseNumberLT applies the LT predicate on the "case_number" field.
func CaseNumberLT(v string) predicate.ExtractedDocket {
	return predicate.ExtractedDocket(sql.FieldLT(FieldCaseNumber, v))
}

// CaseNumberLTE applies the LTE predicate on the "case_number" field.
func CaseNumberLTE(v string) predicate.ExtractedDocket {
	return predicate.ExtractedDocket(sql.FieldLTE(FieldCaseNumber, v))
}

// CaseNumberContains applies the Contains predicate on the "case_number" field.
func CaseNumberContains(v string) predicate.ExtractedDocket {
	return predicate.ExtractedDocket(sql.FieldContains(FieldCaseNumber, v))
}

// CaseNumberHasPrefix applies the HasPrefix predicate on the "case_number" field.
func CaseNumberHasPrefix(v string) predicate.ExtractedDocket {
	return predicate.ExtractedDocket(sql.FieldHasPrefix(FieldCaseNumber, v))
}

// CaseNumberHasSuffix applies the HasSuffix predicate on the "case_number" field.
func CaseNumberHasSuffix(v string) predicate.ExtractedDocket {
	return predicate.ExtractedDocket(sql.FieldHasSuffix(FieldCaseNumber, v))
}

// CaseNumberIsNil applies the IsNil predicate on the "case_number" field.
func CaseNumberIsNil() predicate.ExtractedDocket {
	return predicate.ExtractedDocket(sql.FieldIsNull(FieldCaseNumber))
}

// CaseNumberNotNil applies the NotNil predicate on the "case_number" field.
func CaseNumberNotNil() predicate.ExtractedDocket {
	return predicate.ExtractedDocket(sql.FieldNotNull(FieldCaseNumber))
}

// CaseNumberEqualFold applies the EqualFold predicate on the "case_number" field.
func CaseNumberEqualFold(v string) predicate.ExtractedDocket {
	return predicate.ExtractedDocket(sql.FieldEqualFold(FieldCaseNumber, v))
}

// CaseNumberContainsFold applies the ContainsFold predicate on the "case_number" field.
func CaseNumberContainsFold(v string) predicate.ExtractedDocket {
	return predicate.ExtractedDocket(sql.FieldContainsFold(FieldCaseNumber, v))
}

// SuffixEQ applies the EQ predicate on the "suffix" field.
func SuffixEQ(v string) predicate.ExtractedDocket {
	return predicate.ExtractedDocket(sql.FieldEQ(FieldSuffix, v))
}

// SuffixNEQ applies the NEQ predicate on the "suffix" field.
func SuffixNEQ(v string) predicate.ExtractedDocket {
	return predicate.ExtractedDocket(sql.FieldNEQ(FieldSuffix, v))
}

// SuffixIn applies the In predicate on the "suffix" field.
func SuffixIn(vs ...string) predicate.ExtractedDocket {
	return predicate.ExtractedDocket(sql.FieldIn(FieldSuffix, vs...))
}

// SuffixNotIn applies the NotIn predicate on the "suffix" field.
func SuffixNotIn(vs ...string) predicate.ExtractedDocket {
	return predicate.ExtractedDocket(sql.FieldNotIn(FieldSuffix, vs...))
}

// SuffixGT applies the GT predicate on the "suffix" field.
func SuffixGT(v string) predicate.ExtractedDocket {
	return predicate.ExtractedDocket(sql.FieldGT(FieldSuffix, v))
}

// SuffixGTE applies the GTE predicate on the "suffix" field.
func SuffixGTE(v string) predicate.ExtractedDocket {
	return predicate.ExtractedDocket(sql.FieldGTE(FieldSuffix, v))
}

// SuffixLT applies the LT predicate on the "suffix" field.
func SuffixLT(v string) predicate.ExtractedDocket {
	return predicate.ExtractedDocket(sql.FieldLT(FieldSuffix, v))
}

// SuffixLTE applies the LTE predicate on the "suffix" field.
func SuffixLTE(v string) predicate.ExtractedDocket {
	return predicate.ExtractedDocket(sql.FieldLTE(FieldSuffix, v))
}

// SuffixContains applies the Contains predicate on the "suffix" field.
func SuffixContains(v string) predicate.ExtractedDocket {
	return predicate.ExtractedDocket(sql.FieldContains(FieldSuffix, v))
}

// SuffixHasPrefix applies the HasPrefix predicate on the "suffix" field.
func SuffixHasPrefix(v string) predicate.ExtractedDocket {
	return predicate.ExtractedDocket(sql.FieldHasPrefix(FieldSuffix, v))
}

// SuffixHasSuffix applies the HasSuffix predicate on the "suffix" field.
func SuffixHasSuffix(v string) predicate.ExtractedDocket {
	return predicate.ExtractedDocket(sql.FieldHasSuffix(FieldSuffix, v))
}

// SuffixIsNil applies the IsNil predicate on the "suffix" field.
func SuffixIsNil() predicate.ExtractedDocket {
	return predicate.ExtractedDocket(sql.FieldIsNull(FieldSuffix))
}

// SuffixNotNil applies the NotNil predicate on the "suffix" field.
func SuffixNotNil() predicate.ExtractedDocket {
	return predicate.ExtractedDocket(sql.FieldNotNull(FieldSuffix))
}

// SuffixEqualFold applies the EqualFold predicate on the "suffix" field.
func SuffixEqualFold(v string) predicate.ExtractedDocket {
	return predicate.ExtractedDocket(sql.FieldEqualFold(FieldSuffix, v))
}

// SuffixContainsFold applies the ContainsFold predicate on the "suffix" field.
func SuffixContainsFold(v string) predicate.ExtractedDocket {
	return predicate.ExtractedDocket(sql.FieldContainsFold(FieldSuffix, v))
}

// SectorEQ applies the EQ predicate on the "sector" field.
func SectorEQ(v string) predicate.ExtractedDocket {
	return predicate.ExtractedDocket(sql.FieldEQ(FieldSector, v))
}

// SectorNEQ applies the NEQ predicate on the "sector" field.
func SectorNEQ(v string) predicate.ExtractedDocket {
	return predicate.ExtractedDocket(sql.FieldNEQ(FieldSector, v))
}

// SectorIn applies the In predicate on the "sector" field.
func SectorIn(vs ...string) predicate.ExtractedDocket {
	return predicate.ExtractedDocket(sql.FieldIn(FieldSector, vs...))
}

// SectorNotIn applies the NotIn predicate on the "sector" field.
func SectorNotIn(vs ...string) predicate.ExtractedDocket {
	return predicate.ExtractedDocket(sql.FieldNotIn(FieldSector, vs...))
}

// SectorGT applies the GT predicate on the "sector" field.
func SectorGT(v string) predicate.ExtractedDocket {
	return predicate.ExtractedDocket(sql.FieldGT(FieldSector, v))
}

// SectorGTE applies the GTE predicate on the "sector" field.
func SectorGTE(v string) predicate.ExtractedDocket {
	return predicate.ExtractedDocket(sql.FieldGTE(FieldSector, v))
}

// SectorLT applies the LT predicate on the "sector" field.
func SectorLT(v string) predicate.ExtractedDocket {
	return predicate.ExtractedDocket(sql.FieldLT(FieldSector, v))
}

// SectorLTE applies the LTE predicate on the "sector" field.
func SectorLTE(v string) predicate.ExtractedDocket {
	return predicate.ExtractedDocket(sql.FieldLTE(FieldSector, v))
}

// SectorContains applies the Contains predicate on the "sector" field.
func SectorContains(v string) predicate.ExtractedDocket {
	return predicate.ExtractedDocket(sql.FieldContains(FieldSector, v))
}

// SectorHasPrefix applies the HasPrefix predicate on the "sector" field.
func SectorHasPrefix(v string) predicate.ExtractedDocket {
	return predicate.ExtractedDocket(sql.FieldHasPrefix(FieldSector, v))
}

// SectorHasSuffix applies the HasSuffix predicate on the "sector" field.
func SectorHasSuffix(v string) predicate.ExtractedDocket {
	return predicate.ExtractedDocket(sql.FieldHasSuffix(FieldSector, v))
}

// SectorIsNil applies the IsNil predicate on the "sector" field.
func SectorIsNil() predicate.ExtractedDocket {
	return predicate.ExtractedDocket(sql.FieldIsNull(FieldSector))
}

// SectorNotNil applies the NotNil predicate on the "sector" field.
func SectorNotNil() predicate.ExtractedDocket {
	return predicate.ExtractedDocket(sql.FieldNotNull(FieldSector))
}

// SectorEqualFold applies the EqualFold predicate on the "sector" field.
func SectorEqualFold(v string) predicate.ExtractedDocket {
	return predicate.ExtractedDocket(sql.FieldEqualFold(FieldSector, v))
}

// SectorContainsFold applies the ContainsFold predicate on the "sector" field.
func SectorContainsFold(v string) predicate.ExtractedDocket {
	return predicate.ExtractedDocket(sql.FieldContainsFold(FieldSector, v))
}

// ConfidenceEQ applies the EQ predicate on the "confidence" field.
func ConfidenceEQ(v float64) predicate.ExtractedDocket {
	return predicate.ExtractedDocket(sql.FieldEQ(FieldConfidence, v))
}

// ConfidenceNEQ applies the NEQ predicate on the "confidence" field.
func ConfidenceNEQ(v float64) predicate.ExtractedDocket {
	return predicate.ExtractedDocket(sql.FieldNEQ(FieldConfidence, v))
}

// ConfidenceIn applies the In predicate on the "confidence" field.
func ConfidenceIn(vs ...float64) predicate.ExtractedDocket {
	return predicate.ExtractedDocket(sql.FieldIn(FieldConfidence, vs...))
}

// ConfidenceNotIn applies the NotIn predicate on the "confidence" field.
func ConfidenceNotIn(vs ...float64) predicate.ExtractedDocket {
	return predicate.ExtractedDocket(sql.FieldNotIn(FieldConfidence, vs...))
}

// ConfidenceGT applies the GT predicate on the "confidence" field.
func ConfidenceGT(v float64) predicate.ExtractedDocket {
	return predicate.ExtractedDocket(sql.FieldGT(FieldConfidence, v))
}

// ConfidenceGTE applies the GTE predicate on the "confidence" field.
func ConfidenceGTE(v float64) predicate.ExtractedDocket {
	return predicate.ExtractedDocket(sql.FieldGTE(FieldConfidence, v))
}

// ConfidenceLT applies the LT predicate on the "confidence" field.
func ConfidenceLT(v float64) predicate.ExtractedDocket {
	return predicate.ExtractedDocket(sql.FieldLT(FieldConfidence, v))
}

// ConfidenceLTE applies the LTE predicate on the "confidence" field.
func ConfidenceLTE(v float64) predicate.ExtractedDocket {
	return predicate.ExtractedDocket(sql.FieldLTE(FieldConfidence, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.ExtractedDocket {
	return predicate.ExtractedDocket(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.ExtractedDocket {
	return predicate.ExtractedDocket(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.ExtractedDocket {
	return predicate.ExtractedDocket(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.ExtractedDocket {
	return predicate.ExtractedDocket(sql.FieldNotIn(FieldStatus, vs...))
}

// MatchTypeEQ applies the EQ predicate on the "match_type" field.
func MatchTypeEQ(v MatchType) predicate.ExtractedDocket {
	return predicate.ExtractedDocket(sql.FieldEQ(FieldMatchType, v))
}

// MatchTypeNEQ applies the NEQ predicate on the "match_type" field.
func MatchTypeNEQ(v MatchType) predicate.ExtractedDocket {
	return predicate.ExtractedDocket(sql.FieldNEQ(FieldMatchType, v))
}

// MatchTypeIn applies the In predicate on the "match_type" field.
func MatchTypeIn(vs ...MatchType) predicate.ExtractedDocket {
	return predicate.ExtractedDocket(sql.FieldIn(FieldMatchType, vs...))
}

// MatchTypeNotIn applies the NotIn predicate on the "match_type" field.
func MatchTypeNotIn(vs ...MatchType) predicate.ExtractedDocket {
	return predicate.ExtractedDocket(sql.FieldNotIn(FieldMatchType, vs...))
}

// TriggerPhraseEQ applies the EQ predicate on the "trigger_phrase" field.
func TriggerPhraseEQ(v string) predicate.ExtractedDocket {
	return predicate.ExtractedDocket(sql.FieldEQ(FieldTriggerPhrase, v))
}

// TriggerPhraseNEQ applies the NEQ predicate on the "trigger_phrase" field.
func TriggerPhraseNEQ(v string) predicate.ExtractedDocket {
	return predicate.ExtractedDocket(sql.FieldNEQ(FieldTriggerPhrase, v))
}

// TriggerPhraseIn applies the In predicate on the "trigger_phrase" field.
func TriggerPhraseIn(vs ...string) predicate.ExtractedDocket {
	return predicate.ExtractedDocket(sql.FieldIn(FieldTriggerPhrase, vs...))
}

// TriggerPhraseNotIn applies the NotIn predicate on the "trigger_phrase" field.
func TriggerPhraseNotIn(vs ...string) predicate.ExtractedDocket {
	return predicate.ExtractedDocket(sql.FieldNotIn(FieldTriggerPhrase, vs...))
}

// TriggerPhraseGT applies the GT predicate on the "trigger_phrase" field.
func TriggerPhraseGT(v string) predicate.ExtractedDocket {
	return predicate.ExtractedDocket(sql.FieldGT(FieldTriggerPhrase, v))
}

// TriggerPhraseGTE applies the GTE predicate on the "trigger_phrase" field.
func TriggerPhraseGTE(v string) predicate.ExtractedDocket {
	return predicate.ExtractedDocket(sql.FieldGTE(FieldTriggerPhrase, v))
}

// TriggerPhraseLT applies the LT predicate on the "trigger_phrase" field.
func TriggerPhraseLT(v string) predicate.ExtractedDocket {
	return predicate.ExtractedDocket(sql.FieldLT(FieldTriggerPhrase, v))
}

// TriggerPhraseLTE applies the LTE predicate on the "trigger_phrase" field.
func TriggerPhraseLTE(v string) predicate.ExtractedDocket {
	return predicate.ExtractedDocket(sql.FieldLTE(FieldTriggerPhrase, v))
}

// TriggerPhraseContains applies the Contains predicate on the "trigger_phrase" field.
func TriggerPhraseContains(v string) predicate.ExtractedDocket {
	return predicate.ExtractedDocket(sql.FieldContains(FieldTriggerPhrase, v))
}

// TriggerPhraseHasPrefix applies the HasPrefix predicate on the "trigger_phrase" field.
func TriggerPhraseHasPrefix(v string) predicate.ExtractedDocket {
	return predicate.ExtractedDocket(sql.FieldHasPrefix(FieldTriggerPhrase, v))
}

// TriggerPhraseHasSuffix applies the HasSuffix predicate on the "trigger_phrase" field.
func TriggerPhraseHasSuffix(v string) predicate.ExtractedDocket {
	return predicate.ExtractedDocket(sql.FieldHasSuffix(FieldTriggerPhrase, v))
}

// TriggerPhraseIsNil applies the IsNil predicate on the "trigger_phrase" field.
func TriggerPhraseIsNil() predicate.ExtractedDocket {
	return predicate.ExtractedDocket(sql.FieldIsNull(FieldTriggerPhrase))
}

// TriggerPhraseNotNil applies the NotNil predicate on the "trigger_phrase" field.
func TriggerPhraseNotNil() predicate.ExtractedDocket {
	return predicate.ExtractedDocket(sql.FieldNotNull(FieldTriggerPhrase))
}

// TriggerPhraseEqualFold applies the EqualFold predicate on the "trigger_phrase" field.
func TriggerPhraseEqualFold(v string) predicate.ExtractedDocket {
	return predicate.ExtractedDocket(sql.FieldEqualFold(FieldTriggerPhrase, v))
}

// TriggerPhraseContainsFold applies the ContainsFold predicate on the "trigger_phrase" field.
func TriggerPhraseContainsFold(v string) predicate.ExtractedDocket {
	return predicate.ExtractedDocket(sql.FieldContainsFold(FieldTriggerPhrase, v))
}

// KnownDocketIDEQ applies the EQ predicate on the "known_docket_id" field.
func KnownDocketIDEQ(v string) predicate.ExtractedDocket {
	return predicate.ExtractedDocket(sql.FieldEQ(FieldKnownDocketID, v))
}

// KnownDocketIDNEQ applies the NEQ predicate on the "known_docket_id" field.
func KnownDocketIDNEQ(v string) predicate.ExtractedDocket {
	return predicate.ExtractedDocket(sql.FieldNEQ(FieldKnownDocketID, v))
}

// KnownDocketIDIn applies the In predicate on the "known_docket_id" field.
func KnownDocketIDIn(vs ...string) predicate.ExtractedDocket {
	return predicate.ExtractedDocket(sql.FieldIn(FieldKnownDocketID, vs...))
}

// KnownDocketIDNotIn applies the NotIn predicate on the "known_docket_id" field.
func KnownDocketIDNotIn(vs ...string) predicate.ExtractedDocket {
	return predicate.ExtractedDocket(sql.FieldNotIn(FieldKnownDocketID, vs...))
}

// KnownDocketIDGT applies the GT predicate on the "known_docket_id" field.
func KnownDocketIDGT(v string) predicate.ExtractedDocket {
	return predicate.ExtractedDocket(sql.FieldGT(FieldKnownDocketID, v))
}

// KnownDocketIDGTE applies the GTE predicate on the "known_docket_id" field.
func KnownDocketIDGTE(v string) predicate.ExtractedDocket {
	return predicate.ExtractedDocket(sql.FieldGTE(FieldKnownDocketID, v))
}

// KnownDocketIDLT applies the LT predicate on the "known_docket_id" field.
func KnownDocketIDLT(v string) predicate.ExtractedDocket {
	return predicate.ExtractedDocket(sql.FieldLT(FieldKnownDocketID, v))
}

// KnownDocketIDLTE applies the LTE predicate on the "known_docket_id" field.
func KnownDocketIDLTE(v string) predicate.ExtractedDocket {
	return predicate.ExtractedDocket(sql.FieldLTE(FieldKnownDocketID, v))
}

// KnownDocketIDContains applies the Contains predicate on the "known_docket_id" field.
func KnownDocketIDContains(v string) predicate.ExtractedDocket {
	return predicate.ExtractedDocket(sql.FieldContains(FieldKnownDocketID, v))
}

// KnownDocketIDHasPrefix applies the HasPrefix predicate on the "known_docket_id" field.
func KnownDocketIDHasPrefix(v string) predicate.ExtractedDocket {
	return predicate.ExtractedDocket(sql.FieldHasPrefix(FieldKnownDocketID, v))
}

// KnownDocketIDHasSuffix applies the HasSuffix predicate on the "known_docket_id" field.
func KnownDocketIDHasSuffix(v string) predicate.ExtractedDocket {
	return predicate.ExtractedDocket(sql.FieldHasSuffix(FieldKnownDocketID, v))
}

// KnownDocketIDIsNil applies the IsNil predicate on the "known_docket_id" field.
func KnownDocketIDIsNil() predicate.ExtractedDocket {
	return predicate.ExtractedDocket(sql.FieldIsNull(FieldKnownDocketID))
}

// KnownDocketIDNotNil applies the NotNil predicate on the "known_docket_id" field.
func KnownDocketIDNotNil() predicate.ExtractedDocket {
	return predicate.ExtractedDocket(sql.FieldNotNull(FieldKnownDocketID))
}

// KnownDocketIDEqualFold applies the EqualFold predicate on the "known_docket_id" field.
func KnownDocketIDEqualFold(v string) predicate.ExtractedDocket {
	return predicate.ExtractedDocket(sql.FieldEqualFold(FieldKnownDocketID, v))
}

// KnownDocketIDContainsFold applies the ContainsFold predicate on the "known_docket_id" field.
func KnownDocketIDContainsFold(v string) predicate.ExtractedDocket {
	return predicate.ExtractedDocket(sql.FieldContainsFold(FieldKnownDocketID, v))
}

// FuzzyScoreEQ applies the EQ predicate on the "fuzzy_score" field.
func FuzzyScoreEQ(v float64) predicate.ExtractedDocket {
	return predicate.ExtractedDocket(sql.FieldEQ(FieldFuzzyScore, v))
}

// FuzzyScoreNEQ applies the NEQ predicate on the "fuzzy_score" field.
func FuzzyScoreNEQ(v float64) predicate.ExtractedDocket {
	return predicate.ExtractedDocket(sql.FieldNEQ(FieldFuzzyScore, v))
}

// FuzzyScoreIn applies the In predicate on the "fuzzy_score" field.
func FuzzyScoreIn(vs ...float64) predicate.ExtractedDocket {
	return predicate.ExtractedDocket(sql.FieldIn(FieldFuzzyScore, vs...))
}

// FuzzyScoreNotIn applies the NotIn predicate on the "fuzzy_score" field.
func FuzzyScoreNotIn(vs ...float64) predicate.ExtractedDocket {
	return predicate.ExtractedDocket(sql.FieldNotIn(FieldFuzzyScore, vs...))
}

// FuzzyScoreGT applies the GT predicate on the "fuzzy_score" field.
func FuzzyScoreGT(v float64) predicate.ExtractedDocket {
	return predicate.ExtractedDocket(sql.FieldGT(FieldFuzzyScore, v))
}

// FuzzyScoreGTE applies the GTE predicate on the "fuzzy_score" field.
func FuzzyScoreGTE(v float64) predicate.ExtractedDocket {
	return predicate.ExtractedDocket(sql.FieldGTE(FieldFuzzyScore, v))
}

// FuzzyScoreLT applies the LT predicate on the "fuzzy_score" field.
func FuzzyScoreLT(v float64) predicate.ExtractedDocket {
	return predicate.ExtractedDocket(sql.FieldLT(FieldFuzzyScore, v))
}

// FuzzyScoreLTE applies the LTE predicate on the "fuzzy_score" field.
func FuzzyScoreLTE(v float64) predicate.ExtractedDocket {
	return predicate.ExtractedDocket(sql.FieldLTE(FieldFuzzyScore, v))
}

// ContextBeforeEQ applies the EQ predicate on the "context_before" field.
func ContextBeforeEQ(v string) predicate.ExtractedDocket {
	return predicate.ExtractedDocket(sql.FieldEQ(FieldContextBefore, v))
}

// ContextBeforeNEQ applies the NEQ predicate on the "context_before" field.
func ContextBeforeNEQ(v string) predicate.ExtractedDocket {
	return predicate.ExtractedDocket(sql.FieldNEQ(FieldContextBefore, v))
}

// ContextBeforeIn applies the In predicate on the "context_before" field.
func ContextBeforeIn(vs ...string) predicate.ExtractedDocket {
	return predicate.ExtractedDocket(sql.FieldIn(FieldContextBefore, vs...))
}

// ContextBeforeNotIn applies the NotIn predicate on the "context_before" field.
func ContextBeforeNotIn(vs ...string) predicate.ExtractedDocket {
	return predicate.ExtractedDocket(sql.FieldNotIn(FieldContextBefore, vs...))
}

// ContextBeforeGT applies the GT predicate on the "context_before" field.
func ContextBeforeGT(v string) predicate.ExtractedDocket {
	return predicate.ExtractedDocket(sql.FieldGT(FieldContextBefore, v))
}

// ContextBeforeGTE applies the GTE predicate on the "context_before" field.
func ContextBeforeGTE(v string) predicate.ExtractedDocket {
	return predicate.ExtractedDocket(sql.FieldGTE(FieldContextBefore, v))
}

// ContextBeforeLT applies the LT predicate on the "context_before" field.
func ContextBeforeLT(v string) predicate.ExtractedDocket {
	return predicate.ExtractedDocket(sql.FieldLT(FieldContextBefore, v))
}

// ContextBeforeLTE applies the LTE predicate on the "context_before" field.
func ContextBeforeLTE(v string) predicate.ExtractedDocket {
	return predicate.ExtractedDocket(sql.FieldLTE(FieldContextBefore, v))
}

// ContextBeforeContains applies the Contains predicate on the "context_before" field.
func ContextBeforeContains(v string) predicate.ExtractedDocket {
	return predicate.ExtractedDocket(sql.FieldContains(FieldContextBefore, v))
}

// ContextBeforeHasPrefix applies the HasPrefix predicate on the "context_before" field.
func ContextBeforeHasPrefix(v string) predicate.ExtractedDocket {
	return predicate.ExtractedDocket(sql.FieldHasPrefix(FieldContextBefore, v))
}

// ContextBeforeHasSuffix applies the HasSuffix predicate on the "context_before" field.
func ContextBeforeHasSuffix(v string) predicate.ExtractedDocket {
	return predicate.ExtractedDocket(sql.FieldHasSuffix(FieldContextBefore, v))
}

// ContextBeforeIsNil applies the IsNil predicate on the "context_before" field.
func ContextBeforeIsNil() predicate.ExtractedDocket {
	return predicate.ExtractedDocket(sql.FieldIsNull(FieldContextBefore))
}

// ContextBeforeNotNil applies the NotNil predicate on the "context_before" field.
func ContextBeforeNotNil() predicate.ExtractedDocket {
	return predicate.ExtractedDocket(sql.FieldNotNull(FieldContextBefore))
}

// ContextBeforeEqualFold applies the EqualFold predicate on the "context_before" field.
func ContextBeforeEqualFold(v string) predicate.ExtractedDocket {
	return predicate.ExtractedDocket(sql.FieldEqualFold(FieldContextBefore, v))
}

// ContextBeforeContainsFold applies the ContainsFold predicate on the "context_before" field.
func ContextBeforeContainsFold(v string) predicate.ExtractedDocket {
	return predicate.ExtractedDocket(sql.FieldContainsFold(FieldContextBefore, v))
}

// ContextAfterEQ applies the EQ predicate on the "context_after" field.
func ContextAfterEQ(v string) predicate.ExtractedDocket {
	return predicate.ExtractedDocket(sql.FieldEQ(FieldContextAfter, v))
}

// ContextAfterNEQ applies the NEQ predicate on the "context_after" field.
func ContextAfterNEQ(v string) predicate.ExtractedDocket {
	return predicate.ExtractedDocket(sql.FieldNEQ(FieldContextAfter, v))
}

// ContextAfterIn applies the In predicate on the "context_after" field.
func ContextAfterIn(vs ...string) predicate.ExtractedDocket {
	return predicate.ExtractedDocket(sql.FieldIn(FieldContextAfter, vs...))
}

// ContextAfterNotIn applies the NotIn predicate on the "context_after" field.
func ContextAfterNotIn(vs ...string) predicate.ExtractedDocket {
	return predicate.ExtractedDocket(sql.FieldNotIn(FieldContextAfter, vs...))
}

// ContextAfterGT applies the GT predicate on the "context_after" field.
func ContextAfterGT(v string) predicate.ExtractedDocket {
	return predicate.ExtractedDocket(sql.FieldGT(FieldContextAfter, v))
}

// ContextAfterGTE applies the GTE predicate on the "context_after" field.
func ContextAfterGTE(v string) predicate.ExtractedDocket {
	return predicate.ExtractedDocket(sql.FieldGTE(FieldContextAfter, v))
}

// ContextAfterLT applies the LT predicate on the "context_after" field.
func ContextAfterLT(v string) predicate.ExtractedDocket {
	return predicate.ExtractedDocket(sql.FieldLT(FieldContextAfter, v))
}

// ContextAfterLTE applies the LTE predicate on the "context_after" field.
func ContextAfterLTE(v string) predicate.ExtractedDocket {
	return predicate.ExtractedDocket(sql.FieldLTE(FieldContextAfter, v))
}

// ContextAfterContains applies the Contains predicate on the "context_after" field.
func ContextAfterContains(v string) predicate.ExtractedDocket {
	return predicate.ExtractedDocket(sql.FieldContains(FieldContextAfter, v))
}

// ContextAfterHasPrefix applies the HasPrefix predicate on the "context_after" field.
func ContextAfterHasPrefix(v string) predicate.ExtractedDocket {
	return predicate.ExtractedDocket(sql.FieldHasPrefix(FieldContextAfter, v))
}

// ContextAfterHasSuffix applies the HasSuffix predicate on the "context_after" field.
func ContextAfterHasSuffix(v string) predicate.ExtractedDocket {
	return predicate.ExtractedDocket(sql.FieldHasSuffix(FieldContextAfter, v))
}

// ContextAfterIsNil applies the IsNil predicate on the "context_after" field.
func ContextAfterIsNil() predicate.ExtractedDocket {
	return predicate.ExtractedDocket(sql.FieldIsNull(FieldContextAfter))
}

// ContextAfterNotNil applies the NotNil predicate on the "context_after" field.
func ContextAfterNotNil() predicate.ExtractedDocket {
	return predicate.ExtractedDocket(sql.FieldNotNull(FieldContextAfter))
}

// ContextAfterEqualFold applies the EqualFold predicate on the "context_after" field.
func ContextAfterEqualFold(v string) predicate.ExtractedDocket {
	return predicate.ExtractedDocket(sql.FieldEqualFold(FieldContextAfter, v))
}

// ContextAfterContainsFold applies the ContainsFold predicate on the "context_after" field.
func ContextAfterContainsFold(v string) predicate.ExtractedDocket {
	return predicate.ExtractedDocket(sql.FieldContainsFold(FieldContextAfter, v))
}

// SuggestedCorrectionEQ applies the EQ predicate on the "suggested_correction" field.
func SuggestedCorrectionEQ(v string) predicate.ExtractedDocket {
	return predicate.ExtractedDocket(sql.FieldEQ(FieldSuggestedCorrection, v))
}

// SuggestedCorrectionNEQ applies the NEQ predicate on the "suggested_correction" field.
func SuggestedCorrectionNEQ(v string) predicate.ExtractedDocket {
	return predicate.ExtractedDocket(sql.FieldNEQ(FieldSuggestedCorrection, v))
}

// SuggestedCorrectionIn applies the In predicate on the "suggested_correction" field.
func SuggestedCorrectionIn(vs ...string) predicate.ExtractedDocket {
	return predicate.ExtractedDocket(sql.FieldIn(FieldSuggestedCorrection, vs...))
}

// SuggestedCorrectionNotIn applies the NotIn predicate on the "suggested_correction" field.
func SuggestedCorrectionNotIn(vs ...string) predicate.ExtractedDocket {
	return predicate.ExtractedDocket(sql.FieldNotIn(FieldSuggestedCorrection, vs...))
}

// SuggestedCorrectionGT applies the GT predicate on the "suggested_correction" field.
func SuggestedCorrectionGT(v string) predicate.ExtractedDocket {
	return predicate.ExtractedDocket(sql.FieldGT(FieldSuggestedCorrection, v))
}

// SuggestedCorrectionGTE applies the GTE predicate on the "suggested_correction" field.
func SuggestedCorrectionGTE(v string) predicate.ExtractedDocket {
	return predicate.ExtractedDocket(sql.FieldGTE(FieldSuggestedCorrection, v))
}

// SuggestedCorrectionLT applies the LT predicate on the "suggested_correction" field.
func SuggestedCorrectionLT(v string) predicate.ExtractedDocket {
	return predicate.ExtractedDocket(sql.FieldLT(FieldSuggestedCorrection, v))
}

// SuggestedCorrectionLTE applies the LTE predicate on the "suggested_correction" field.
func SuggestedCorrectionLTE(v string) predicate.ExtractedDocket {
	return predicate.ExtractedDocket(sql.FieldLTE(FieldSuggestedCorrection, v))
}

// SuggestedCorrectionContains applies the Contains predicate on the "suggested_correction" field.
func SuggestedCorrectionContains(v string) predicate.ExtractedDocket {
	return predicate.ExtractedDocket(sql.FieldContains(FieldSuggestedCorrection, v))
}

// SuggestedCorrectionHasPrefix applies the HasPrefix predicate on the "suggested_correction" field.
func SuggestedCorrectionHasPrefix(v string) predicate.ExtractedDocket {
	return predicate.ExtractedDocket(sql.FieldHasPrefix(FieldSuggestedCorrection, v))
}

// SuggestedCorrectionHasSuffix applies the HasSuffix predicate on the "suggested_correction" field.
func SuggestedCorrectionHasSuffix(v string) predicate.ExtractedDocket {
	return predicate.ExtractedDocket(sql.FieldHasSuffix(FieldSuggestedCorrection, v))
}

// SuggestedCorrectionIsNil applies the IsNil predicate on the "suggested_correction" field.
func SuggestedCorrectionIsNil() predicate.ExtractedDocket {
	return predicate.ExtractedDocket(sql.FieldIsNull(FieldSuggestedCorrection))
}

// SuggestedCorrectionNotNil applies the NotNil predicate on the "suggested_correction" field.
func SuggestedCorrectionNotNil() predicate.ExtractedDocket {
	return predicate.ExtractedDocket(sql.FieldNotNull(FieldSuggestedCorrection))
}

// SuggestedCorrectionEqualFold applies the EqualFold predicate on the "suggested_correction" field.
func SuggestedCorrectionEqualFold(v string) predicate.ExtractedDocket {
	return predicate.ExtractedDocket(sql.FieldEqualFold(FieldSuggestedCorrection, v))
}

// SuggestedCorrectionContainsFold applies the ContainsFold predicate on the "suggested_correction" field.
func SuggestedCorrectionContainsFold(v string) predicate.ExtractedDocket {
	return predicate.ExtractedDocket(sql.FieldContainsFold(FieldSuggestedCorrection, v))
}

// HasHearing applies the HasEdge predicate on the "hearing" edge.
func HasHearing() predicate.ExtractedDocket {
	return predicate.ExtractedDocket(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, HearingTable, HearingColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasHearingWith applies the HasEdge predicate on the "hearing" edge with a given conditions (other predicates).
func HasHearingWith(preds ...predicate.Hearing) predicate.ExtractedDocket {
	return predicate.ExtractedDocket(func(s *sql.Selector) {
		step := newHearingStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasKnownDocket applies the HasEdge predicate on the "known_docket" edge.
func HasKnownDocket() predicate.ExtractedDocket {
	return predicate.ExtractedDocket(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, KnownDocketTable, KnownDocketColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasKnownDocketWith applies the HasEdge predicate on the "known_docket" edge with a given conditions (other predicates).
func HasKnownDocketWith(preds ...predicate.KnownDocket) predicate.ExtractedDocket {
	return predicate.ExtractedDocket(func(s *sql.Selector) {
		step := newKnownDocketStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ExtractedDocket) predicate.ExtractedDocket {
	return predicate.ExtractedDocket(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ExtractedDocket) predicate.ExtractedDocket {
	return predicate.ExtractedDocket(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ExtractedDocket) predicate.ExtractedDocket {
	return predicate.ExtractedDocket(sql.NotPredicates(p))
}
