// Code generated by ent, DO NOT EDIT.

package docket

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/canaryscope/canaryscope/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Docket {
	return predicate.Docket(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Docket {
	return predicate.Docket(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Docket {
	return predicate.Docket(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Docket {
	return predicate.Docket(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Docket {
	return predicate.Docket(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Docket {
	return predicate.Docket(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Docket {
	return predicate.Docket(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Docket {
	return predicate.Docket(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Docket {
	return predicate.Docket(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Docket {
	return predicate.Docket(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Docket {
	return predicate.Docket(sql.FieldContainsFold(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Docket {
	return predicate.Docket(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Docket {
	return predicate.Docket(sql.FieldEQ(FieldUpdatedAt, v))
}

// StateCode applies equality check predicate on the "state_code" field. It's identical to StateCodeEQ.
func StateCode(v string) predicate.Docket {
	return predicate.Docket(sql.FieldEQ(FieldStateCode, v))
}

// DocketNumber applies equality check predicate on the "docket_number" field. It's identical to DocketNumberEQ.
func DocketNumber(v string) predicate.Docket {
	return predicate.Docket(sql.FieldEQ(FieldDocketNumber, v))
}

// NormalizedID applies equality check predicate on the "normalized_id" field. It's identical to NormalizedIDEQ.
func NormalizedID(v string) predicate.Docket {
	return predicate.Docket(sql.FieldEQ(FieldNormalizedID, v))
}

// Title applies equality check predicate on the "title" field. It's identical to TitleEQ.
func Title(v string) predicate.Docket {
	return predicate.Docket(sql.FieldEQ(FieldTitle, v))
}

// Company applies equality check predicate on the "company" field. It's identical to CompanyEQ.
func Company(v string) predicate.Docket {
	return predicate.Docket(sql.FieldEQ(FieldCompany, v))
}

// Sector applies equality check predicate on the "sector" field. It's identical to SectorEQ.
func Sector(v string) predicate.Docket {
	return predicate.Docket(sql.FieldEQ(FieldSector, v))
}

// Status applies equality check predicate on the "status" field. It's identical to StatusEQ.
func Status(v string) predicate.Docket {
	return predicate.Docket(sql.FieldEQ(FieldStatus, v))
}

// FirstSeenAt applies equality check predicate on the "first_seen_at" field. It's identical to FirstSeenAtEQ.
func FirstSeenAt(v time.Time) predicate.Docket {
	return predicate.Docket(sql.FieldEQ(FieldFirstSeenAt, v))
}

// LastMentionedAt applies equality check predicate on the "last_mentioned_at" field. It's identical to LastMentionedAtEQ.
func LastMentionedAt(v time.Time) predicate.Docket {
	return predicate.Docket(sql.FieldEQ(FieldLastMentionedAt, v))
}

// MentionCount applies equality check predicate on the "mention_count" field. It's identical to MentionCountEQ.
func MentionCount(v int) predicate.Docket {
	return predicate.Docket(sql.FieldEQ(FieldMentionCount, v))
}

// KnownDocketID applies equality check predicate on the "known_docket_id" field. It's identical to KnownDocketIDEQ.
func KnownDocketID(v string) predicate.Docket {
	return predicate.Docket(sql.FieldEQ(FieldKnownDocketID, v))
}

// MatchScore applies equality check predicate on the "match_score" field. It's identical to MatchScoreEQ.
func MatchScore(v float64) predicate.Docket {
	return predicate.Docket(sql.FieldEQ(FieldMatchScore, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Docket {
	return predicate.Docket(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Docket {
	return predicate.Docket(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Docket {
	return predicate.Docket(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Docket {
	return predicate.Docket(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Docket {
	return predicate.Docket(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Docket {
	return predicate.Docket(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Docket {
	return predicate.Docket(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Docket {
	return predicate.Docket(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Docket {
	return predicate.Docket(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Docket {
	return predicate.Docket(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Docket {
	return predicate.Docket(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Docket {
	return predicate.Docket(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Docket {
	return predicate.Docket(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Docket {
	return predicate.Docket(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Docket {
	return predicate.Docket(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Docket {
	return predicate.Docket(sql.FieldLTE(FieldUpdatedAt, v))
}

// StateCodeEQ applies the EQ predicate on the "state_code" field.
func StateCodeEQ(v string) predicate.Docket {
	return predicate.Docket(sql.FieldEQ(FieldStateCode, v))
}

// StateCodeNEQ applies the NEQ predicate on the "state_code" field.
func StateCodeNEQ(v string) predicate.Docket {
	return predicate.Docket(sql.FieldNEQ(FieldStateCode, v))
}

// StateCodeIn applies the In predicate on the "state_code" field.
func StateCodeIn(vs ...string) predicate.Docket {
	return predicate.Docket(sql.FieldIn(FieldStateCode, vs...))
}

// StateCodeNotIn applies the NotIn predicate on the "state_code" field.
func StateCodeNotIn(vs ...string) predicate.Docket {
	return predicate.Docket(sql.FieldNotIn(FieldStateCode, vs...))
}

// StateCodeGT applies the GT predicate on the "state_code" field.
func StateCodeGT(v string) predicate.Docket {
	return predicate.Docket(sql.FieldGT(FieldStateCode, v))
}

// StateCodeGTE applies the GTE predicate on the "state_code" field.
func StateCodeGTE(v string) predicate.Docket {
	return predicate.Docket(sql.FieldGTE(FieldStateCode, v))
}

// StateCodeLT applies the LT predicate on the "state_code" field.
func StateCodeLT(v string) predicate.Docket {
	return predicate.Docket(sql.FieldLT(FieldStateCode, v))
}

// StateCodeLTE applies the LTE predicate on the "state_code" field.
func StateCodeLTE(v string) predicate.Docket {
	return predicate.Docket(sql.FieldLTE(FieldStateCode, v))
}

// StateCodeContains applies the Contains predicate on the "state_code" field.
func StateCodeContains(v string) predicate.Docket {
	return predicate.Docket(sql.FieldContains(FieldStateCode, v))
}

// StateCodeHasPrefix applies the HasPrefix predicate on the "state_code" field.
func StateCodeHasPrefix(v string) predicate.Docket {
	return predicate.Docket(sql.FieldHasPrefix(FieldStateCode, v))
}

// StateCodeHasSuffix applies the HasSuffix predicate on the "state_code" field.
func StateCodeHasSuffix(v string) predicate.Docket {
	return predicate.Docket(sql.FieldHasSuffix(FieldStateCode, v))
}

// StateCodeEqualFold applies the EqualFold predicate on the "state_code" field.
func StateCodeEqualFold(v string) predicate.Docket {
	return predicate.Docket(sql.FieldEqualFold(FieldStateCode, v))
}

// StateCodeContainsFold applies the ContainsFold predicate on the "state_code" field.
func StateCodeContainsFold(v string) predicate.Docket {
	return predicate.Docket(sql.FieldContainsFold(FieldStateCode, v))
}

// DocketNumberEQ applies the EQ predicate on the "docket_number" field.
func DocketNumberEQ(v string) predicate.Docket {
	return predicate.Docket(sql.FieldEQ(FieldDocketNumber, v))
}

// DocketNumberNEQ applies the NEQ predicate on the "docket_number" field.
func DocketNumberNEQ(v string) predicate.Docket {
	return predicate.Docket(sql.FieldNEQ(FieldDocketNumber, v))
}

// DocketNumberIn applies the In predicate on the "docket_number" field.
func DocketNumberIn(vs ...string) predicate.Docket {
	return predicate.Docket(sql.FieldIn(FieldDocketNumber, vs...))
}

// DocketNumberNotIn applies the NotIn predicate on the "docket_number" field.
func DocketNumberNotIn(vs ...string) predicate.Docket {
	return predicate.Docket(sql.FieldNotIn(FieldDocketNumber, vs...))
}

// DocketNumberGT applies the GT predicate on the "docket_number" field.
func DocketNumberGT(v string) predicate.Docket {
	return predicate.Docket(sql.FieldGT(FieldDocketNumber, v))
}

// DocketNumberGTE applies the GTE predicate on the "docket_number" field.
func DocketNumberGTE(v string) predicate.Docket {
	return predicate.Docket(sql.FieldGTE(FieldDocketNumber, v))
}

// DocketNumberLT applies the LT predicate on the "docket_number" field.
func DocketNumberLT(v string) predicate.Docket {
	return predicate.Docket(sql.FieldLT(FieldDocketNumber, v))
}

// DocketNumberLTE applies the LTE predicate on the "docket_number" field.
func DocketNumberLTE(v string) predicate.Docket {
	return predicate.Docket(sql.FieldLTE(FieldDocketNumber, v))
}

// DocketNumberContains applies the Contains predicate on the "docket_number" field.
func DocketNumberContains(v string) predicate.Docket {
	return predicate.Docket(sql.FieldContains(FieldDocketNumber, v))
}

// DocketNumberHasPrefix applies the HasPrefix predicate on the "docket_number" field.
func DocketNumberHasPrefix(v string) predicate.Docket {
	return predicate.Docket(sql.FieldHasPrefix(FieldDocketNumber, v))
}

// DocketNumberHasSuffix applies the HasSuffix predicate on the "docket_number" field.
func DocketNumberHasSuffix(v string) predicate.Docket {
	return predicate.Docket(sql.FieldHasSuffix(FieldDocketNumber, v))
}

// DocketNumberEqualFold applies the EqualFold predicate on the "docket_number" field.
func DocketNumberEqualFold(v string) predicate.Docket {
	return predicate.Docket(sql.FieldEqualFold(FieldDocketNumber, v))
}

// DocketNumberContainsFold applies the ContainsFold predicate on the "docket_number" field.
func DocketNumberContainsFold(v string) predicate.Docket {
	return predicate.Docket(sql.FieldContainsFold(FieldDocketNumber, v))
}

// NormalizedIDEQ applies the EQ predicate on the "normalized_id" field.
func NormalizedIDEQ(v string) predicate.Docket {
	return predicate.Docket(sql.FieldEQ(FieldNormalizedID, v))
}

// NormalizedIDNEQ applies the NEQ predicate on the "normalized_id" field.
func NormalizedIDNEQ(v string) predicate.Docket {
	return predicate.Docket(sql.FieldNEQ(FieldNormalizedID, v))
}

// NormalizedIDIn applies the In predicate on the "normalized_id" field.
func NormalizedIDIn(vs ...string) predicate.Docket {
	return predicate.Docket(sql.FieldIn(FieldNormalizedID, vs...))
}

// NormalizedIDNotIn applies the NotIn predicate on the "normalized_id" field.
func NormalizedIDNotIn(vs ...string) predicate.Docket {
	return predicate.Docket(sql.FieldNotIn(FieldNormalizedID, vs...))
}

// NormalizedIDGT applies the GT predicate on the "normalized_id" field.
func NormalizedIDGT(v string) predicate.Docket {
	return predicate.Docket(sql.FieldGT(FieldNormalizedID, v))
}

// NormalizedIDGTE applies the GTE predicate on the "normalized_id" field.
func NormalizedIDGTE(v string) predicate.Docket {
	return predicate.Docket(sql.FieldGTE(FieldNormalizedID, v))
}

// NormalizedIDLT applies the LT predicate on the "normalized_id" field.
func NormalizedIDLT(v string) predicate.Docket {
	return predicate.Docket(sql.FieldLT(FieldNormalizedID, v))
}

// NormalizedIDLTE applies the LTE predicate on the "normalized_id" field.
func NormalizedIDLTE(v string) predicate.Docket {
	return predicate.Docket(sql.FieldLTE(FieldNormalizedID, v))
}

// NormalizedIDContains applies the Contains predicate on the "normalized_id" field.
func NormalizedIDContains(v string) predicate.Docket {
	return predicate.Docket(sql.FieldContains(FieldNormalizedID, v))
}

// NormalizedIDHasPrefix applies the HasPrefix predicate on the "normalized_id" field.
func NormalizedIDHasPrefix(v string) predicate.Docket {
	return predicate.Docket(sql.FieldHasPrefix(FieldNormalizedID, v))
}

// NormalizedIDHasSuffix applies the HasSuffix predicate on the "normalized_id" field.
func NormalizedIDHasSuffix(v string) predicate.Docket {
	return predicate.Docket(sql.FieldHasSuffix(FieldNormalizedID, v))
}

// NormalizedIDEqualFold applies the EqualFold predicate on the "normalized_id" field.
func NormalizedIDEqualFold(v string) predicate.Docket {
	return predicate.Docket(sql.FieldEqualFold(FieldNormalizedID, v))
}

// NormalizedIDContainsFold applies the ContainsFold predicate on the "normalized_id" field.
func NormalizedIDContainsFold(v string) predicate.Docket {
	return predicate.Docket(sql.FieldContainsFold(FieldNormalizedID, v))
}

// TitleEQ applies the EQ predicate on the "title" field.
func TitleEQ(v string) predicate.Docket {
	return predicate.Docket(sql.FieldEQ(FieldTitle, v))
}

// TitleNEQ applies the NEQ predicate on the "title" field.
func TitleNEQ(v string) predicate.Docket {
	return predicate.Docket(sql.FieldNEQ(FieldTitle, v))
}

// TitleIn applies the In predicate on the "title" field.
func TitleIn(vs ...string) predicate.Docket {
	return predicate.Docket(sql.FieldIn(FieldTitle, vs...))
}

// TitleNotIn applies the NotIn predicate on the "title" field.
func TitleNotIn(vs ...string) predicate.Docket {
	return predicate.Docket(sql.FieldNotIn(FieldTitle, vs...))
}

// TitleGT applies the GT predicate on the "title" field.
func TitleGT(v string) predicate.Docket {
	return predicate.Docket(sql.FieldGT(FieldTitle, v))
}

// TitleGTE applies the GTE predicate on the "title" field.
func TitleGTE(v string) predicate.Docket {
	return predicate.Docket(sql.FieldGTE(FieldTitle, v))
}

// TitleLT applies the LT predicate on the "title" field.
func TitleLT(v string) predicate.Docket {
	return predicate.Docket(sql.FieldLT(FieldTitle, v))
}

// TitleLTE applies the LTE predicate on the "title" field.
func TitleLTE(v string) predicate.Docket {
	return predicate.Docket(sql.FieldLTE(FieldTitle, v))
}

// TitleContains applies the Contains predicate on the "title" field.
func TitleContains(v string) predicate.Docket {
	return predicate.Docket(sql.FieldContains(FieldTitle, v))
}

// TitleHasPrefix applies the HasPrefix predicate on the "title" field.
func TitleHasPrefix(v string) predicate.Docket {
	return predicate.Docket(sql.FieldHasPrefix(FieldTitle, v))
}

// TitleHasSuffix applies the HasSuffix predicate on the "title" field.
func TitleHasSuffix(v string) predicate.Docket {
	return predicate.Docket(sql.FieldHasSuffix(FieldTitle, v))
}

// TitleIsNil applies the IsNil predicate on the "title" field.
func TitleIsNil() predicate.Docket {
	return predicate.Docket(sql.FieldIsNull(FieldTitle))
}

// TitleNotNil applies the NotNil predicate on the "title" field.
func TitleNotNil() predicate.Docket {
	return predicate.Docket(sql.FieldNotNull(FieldTitle))
}

// TitleEqualFold applies the EqualFold predicate on the "title" field.
func TitleEqualFold(v string) predicate.Docket {
	return predicate.Docket(sql.FieldEqualFold(FieldTitle, v))
}

// TitleContainsFold applies the ContainsFold predicate on the "title" field.
func TitleContainsFold(v string) predicate.Docket {
	return predicate.Docket(sql.FieldContainsFold(FieldTitle, v))
}

// CompanyEQ applies the EQ predicate on the "company" field.
func CompanyEQ(v string) predicate.Docket {
	return predicate.Docket(sql.FieldEQ(FieldCompany, v))
}

// CompanyNEQ applies the NEQ predicate on the "company" field.
func CompanyNEQ(v string) predicate.Docket {
	return predicate.Docket(sql.FieldNEQ(FieldCompany, v))
}

// CompanyIn applies the In predicate on the "company" field.
func CompanyIn(vs ...string) predicate.Docket {
	return predicate.Docket(sql.FieldIn(FieldCompany, vs...))
}

// CompanyNotIn applies the NotIn predicate on the "company" field.
func CompanyNotIn(vs ...string) predicate.Docket {
	return predicate.Docket(sql.FieldNotIn(FieldCompany, vs...))
}

// CompanyGT applies the GT predicate on the "company" field.
func CompanyGT(v string) predicate.Docket {
	return predicate.Docket(sql.FieldGT(FieldCompany, v))
}

// CompanyGTE applies the GTE predicate on the "company" field.
func CompanyGTE(v string) predicate.Docket {
	return predicate.Docket(sql.FieldGTE(FieldCompany, v))
}

// CompanyLT applies the LT predicate on the "company" field.
func CompanyLT(v string) predicate.Docket {
	return predicate.Docket(sql.FieldLT(FieldCompany, v))
}

// CompanyLTE applies the LTE predicate on the "company" field.
func CompanyLTE(v string) predicate.Docket {
	return predicate.Docket(sql.FieldLTE(FieldCompany, v))
}

// CompanyContains applies the Contains predicate on the "company" field.
func CompanyContains(v string) predicate.Docket {
	return predicate.Docket(sql.FieldContains(FieldCompany, v))
}

// CompanyHasPrefix applies the HasPrefix predicate on the "company" field.
func CompanyHasPrefix(v string) predicate.Docket {
	return predicate.Docket(sql.FieldHasPrefix(FieldCompany, v))
}

// CompanyHasSuffix applies the HasSuffix predicate on the "company" field.
func CompanyHasSuffix(v string) predicate.Docket {
	return predicate.Docket(sql.FieldHasSuffix(FieldCompany, v))
}

// CompanyIsNil applies the IsNil predicate on the "company" field.
func CompanyIsNil() predicate.Docket {
	return predicate.Docket(sql.FieldIsNull(FieldCompany))
}

// CompanyNotNil applies the NotNil predicate on the "company" field.
func CompanyNotNil() predicate.Docket {
	return predicate.Docket(sql.FieldNotNull(FieldCompany))
}

// CompanyEqualFold applies the EqualFold predicate on the "company" field.
func CompanyEqualFold(v string) predicate.Docket {
	return predicate.Docket(sql.FieldEqualFold(FieldCompany, v))
}

// CompanyContainsFold applies the ContainsFold predicate on the "company" field.
func CompanyContainsFold(v string) predicate.Docket {
	return predicate.Docket(sql.FieldContainsFold(FieldCompany, v))
}

// SectorEQ applies the EQ predicate on the "sector" field.
func SectorEQ(v string) predicate.Docket {
	return predicate.Docket(sql.FieldEQ(FieldSector, v))
}

// SectorNEQ applies the NEQ predicate on the "sector" field.
func SectorNEQ(v string) predicate.Docket {
	return predicate.Docket(sql.FieldNEQ(FieldSector, v))
}

// SectorIn applies the In predicate on the "sector" field.
func SectorIn(vs ...string) predicate.Docket {
	return predicate.Docket(sql.FieldIn(FieldSector, vs...))
}

// SectorNotIn applies the NotIn predicate on the "sector" field.
func SectorNotIn(vs ...string) predicate.Docket {
	return predicate.Docket(sql.FieldNotIn(FieldSector, vs...))
}

// SectorGT applies the GT predicate on the "sector" field.
func SectorGT(v string) predicate.Docket {
	return predicate.Docket(sql.FieldGT(FieldSector, v))
}

// SectorGTE applies the GTE predicate on the "sector" field.
func SectorGTE(v string) predicate.Docket {
	return predicate.Docket(sql.FieldGTE(FieldSector, v))
}

// SectorLT applies the LT predicate on the "sector" field.
func SectorLT(v string) predicate.Docket {
	return predicate.Docket(sql.FieldLT(FieldSector, v))
}

// SectorLTE applies the LTE predicate on the "sector" field.
func SectorLTE(v string) predicate.Docket {
	return predicate.Docket(sql.FieldLTE(FieldSector, v))
}

// SectorContains applies the Contains predicate on the "sector" field.
func SectorContains(v string) predicate.Docket {
	return predicate.Docket(sql.FieldContains(FieldSector, v))
}

// SectorHasPrefix applies the HasPrefix predicate on the "sector" field.
func SectorHasPrefix(v string) predicate.Docket {
	return predicate.Docket(sql.FieldHasPrefix(FieldSector, v))
}

// SectorHasSuffix applies the HasSuffix predicate on the "sector" field.
func SectorHasSuffix(v string) predicate.Docket {
	return predicate.Docket(sql.FieldHasSuffix(FieldSector, v))
}

// SectorIsNil applies the IsNil predicate on the "sector" field.
func SectorIsNil() predicate.Docket {
	return predicate.Docket(sql.FieldIsNull(FieldSector))
}

// SectorNotNil applies the NotNil predicate on the "sector" field.
func SectorNotNil() predicate.Docket {
	return predicate.Docket(sql.FieldNotNull(FieldSector))
}

// SectorEqualFold applies the EqualFold predicate on the "sector" field.
func SectorEqualFold(v string) predicate.Docket {
	return predicate.Docket(sql.FieldEqualFold(FieldSector, v))
}

// SectorContainsFold applies the ContainsFold predicate on the "sector" field.
func SectorContainsFold(v string) predicate.Docket {
	return predicate.Docket(sql.FieldContainsFold(FieldSector, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v string) predicate.Docket {
	return predicate.Docket(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v string) predicate.Docket {
	return predicate.Docket(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...string) predicate.Docket {
	return predicate.Docket(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...string) predicate.Docket {
	return predicate.Docket(sql.FieldNotIn(FieldStatus, vs...))
}

// StatusGT applies the GT predicate on the "status" field.
func StatusGT(v string) predicate.Docket {
	return predicate.Docket(sql.FieldGT(FieldStatus, v))
}

// StatusGTE applies the GTE predicate on the "status" field.
func StatusGTE(v string) predicate.Docket {
	return predicate.Docket(sql.FieldGTE(FieldStatus, v))
}

// StatusLT applies the LT predicate on the "status" field.
func StatusLT(v string) predicate.Docket {
	return predicate.Docket(sql.FieldLT(FieldStatus, v))
}

// StatusLTE applies the LTE predicate on the "status" field.
func StatusLTE(v string) predicate.Docket {
	return predicate.Docket(sql.FieldLTE(FieldStatus, v))
}

// StatusContains applies the Contains predicate on the "status" field.
func StatusContains(v string) predicate.Docket {
	return predicate.Docket(sql.FieldContains(FieldStatus, v))
}

// StatusHasPrefix applies the HasPrefix predicate on the "status" field.
func StatusHasPrefix(v string) predicate.Docket {
	return predicate.Docket(sql.FieldHasPrefix(FieldStatus, v))
}

// StatusHasSuffix applies the HasSuffix predicate on the "status" field.
func StatusHasSuffix(v string) predicate.Docket {
	return predicate.Docket(sql.FieldHasSuffix(FieldStatus, v))
}

// StatusIsNil applies the IsNil predicate on the "status" field.
func StatusIsNil() predicate.Docket {
	return predicate.Docket(sql.FieldIsNull(FieldStatus))
}

// StatusNotNil applies the NotNil predicate on the "status" field.
func StatusNotNil() predicate.Docket {
	return predicate.Docket(sql.FieldNotNull(FieldStatus))
}

// StatusEqualFold applies the EqualFold predicate on the "status" field.
func StatusEqualFold(v string) predicate.Docket {
	return predicate.Docket(sql.FieldEqualFold(FieldStatus, v))
}

// StatusContainsFold applies the ContainsFold predicate on the "status" field.
func StatusContainsFold(v string) predicate.Docket {
	return predicate.Docket(sql.FieldContainsFold(FieldStatus, v))
}

// FirstSeenAtEQ applies the EQ predicate on the "first_seen_at" field.
func FirstSeenAtEQ(v time.Time) predicate.Docket {
	return predicate.Docket(sql.FieldEQ(FieldFirstSeenAt, v))
}

// FirstSeenAtNEQ applies the NEQ predicate on the "first_seen_at" field.
func FirstSeenAtNEQ(v time.Time) predicate.Docket {
	return predicate.Docket(sql.FieldNEQ(FieldFirstSeenAt, v))
}

// FirstSeenAtIn applies the In predicate on the "first_seen_at" field.
func FirstSeenAtIn(vs ...time.Time) predicate.Docket {
	return predicate.Docket(sql.FieldIn(FieldFirstSeenAt, vs...))
}

// FirstSeenAtNotIn applies the NotIn predicate on the "first_seen_at" field.
func FirstSeenAtNotIn(vs ...time.Time) predicate.Docket {
	return predicate.Docket(sql.FieldNotIn(FieldFirstSeenAt, vs...))
}

// FirstSeenAtGT applies the GT predicate on the "first_seen_at" field.
func FirstSeenAtGT(v time.Time) predicate.Docket {
	return predicate.Docket(sql.FieldGT(FieldFirstSeenAt, v))
}

// FirstSeenAtGTE applies the GTE predicate on the "first_seen_at" field.
func FirstSeenAtGTE(v time.Time) predicate.Docket {
	return predicate.Docket(sql.FieldGTE(FieldFirstSeenAt, v))
}

// FirstSeenAtLT applies the LT predicate on the "first_seen_at" field.
func FirstSeenAtLT(v time.Time) predicate.Docket {
	return predicate.Docket(sql.FieldLT(FieldFirstSeenAt, v))
}

// FirstSeenAtLTE applies the LTE predicate on the "first_seen_at" field.
func FirstSeenAtLTE(v time.Time) predicate.Docket {
	return predicate.Docket(sql.FieldLTE(FieldFirstSeenAt, v))
}

// LastMentionedAtEQ applies the EQ predicate on the "last_mentioned_at" field.
func LastMentionedAtEQ(v time.Time) predicate.Docket {
	return predicate.Docket(sql.FieldEQ(FieldLastMentionedAt, v))
}

// LastMentionedAtNEQ applies the NEQ predicate on the "last_mentioned_at" field.
func LastMentionedAtNEQ(v time.Time) predicate.Docket {
	return predicate.Docket(sql.FieldNEQ(FieldLastMentionedAt, v))
}

// LastMentionedAtIn applies the In predicate on the "last_mentioned_at" field.
func LastMentionedAtIn(vs ...time.Time) predicate.Docket {
	return predicate.Docket(sql.FieldIn(FieldLastMentionedAt, vs...))
}

// LastMentionedAtNotIn applies the NotIn predicate on the "last_mentioned_at" field.
func LastMentionedAtNotIn(vs ...time.Time) predicate.Docket {
	return predicate.Docket(sql.FieldNotIn(FieldLastMentionedAt, vs...))
}

// LastMentionedAtGT applies the GT predicate on the "last_mentioned_at" field.
func LastMentionedAtGT(v time.Time) predicate.Docket {
	return predicate.Docket(sql.FieldGT(FieldLastMentionedAt, v))
}

// LastMentionedAtGTE applies the GTE predicate on the "last_mentioned_at" field.
func LastMentionedAtGTE(v time.Time) predicate.Docket {
	return predicate.Docket(sql.FieldGTE(FieldLastMentionedAt, v))
}

// LastMentionedAtLT applies the LT predicate on the "last_mentioned_at" field.
func LastMentionedAtLT(v time.Time) predicate.Docket {
	return predicate.Docket(sql.FieldLT(FieldLastMentionedAt, v))
}

// LastMentionedAtLTE applies the LTE predicate on the "last_mentioned_at" field.
func LastMentionedAtLTE(v time.Time) predicate.Docket {
	return predicate.Docket(sql.FieldLTE(FieldLastMentionedAt, v))
}

// MentionCountEQ applies the EQ predicate on the "mention_count" field.
func MentionCountEQ(v int) predicate.Docket {
	return predicate.Docket(sql.FieldEQ(FieldMentionCount, v))
}

// MentionCountNEQ applies the NEQ predicate on the "mention_count" field.
func MentionCountNEQ(v int) predicate.Docket {
	return predicate.Docket(sql.FieldNEQ(FieldMentionCount, v))
}

// MentionCountIn applies the In predicate on the "mention_count" field.
func MentionCountIn(vs ...int) predicate.Docket {
	return predicate.Docket(sql.FieldIn(FieldMentionCount, vs...))
}

// MentionCountNotIn applies the NotIn predicate on the "mention_count" field.
func MentionCountNotIn(vs ...int) predicate.Docket {
	return predicate.Docket(sql.FieldNotIn(FieldMentionCount, vs...))
}

// MentionCountGT applies the GT predicate on the "mention_count" field.
func MentionCountGT(v int) predicate.Docket {
	return predicate.Docket(sql.FieldGT(FieldMentionCount, v))
}

// MentionCountGTE applies the GTE predicate on the "mention_count" field.
func MentionCountGTE(v int) predicate.Docket {
	return predicate.Docket(sql.FieldGTE(FieldMentionCount, v))
}

// MentionCountLT applies the LT predicate on the "mention_count" field.
func MentionCountLT(v int) predicate.Docket {
	return predicate.Docket(sql.FieldLT(FieldMentionCount, v))
}

// MentionCountLTE applies the LTE predicate on the "mention_count" field.
func MentionCountLTE(v int) predicate.Docket {
	return predicate.Docket(sql.FieldLTE(FieldMentionCount, v))
}

// ConfidenceEQ applies the EQ predicate on the "confidence" field.
func ConfidenceEQ(v Confidence) predicate.Docket {
	return predicate.Docket(sql.FieldEQ(FieldConfidence, v))
}

// ConfidenceNEQ applies the NEQ predicate on the "confidence" field.
func ConfidenceNEQ(v Confidence) predicate.Docket {
	return predicate.Docket(sql.FieldNEQ(FieldConfidence, v))
}

// ConfidenceIn applies the In predicate on the "confidence" field.
func ConfidenceIn(vs ...Confidence) predicate.Docket {
	return predicate.Docket(sql.FieldIn(FieldConfidence, vs...))
}

// ConfidenceNotIn applies the NotIn predicate on the "confidence" field.
func ConfidenceNotIn(vs ...Confidence) predicate.Docket {
	return predicate.Docket(sql.FieldNotIn(FieldConfidence, vs...))
}

// KnownDocketIDEQ applies the EQ predicate on the "known_docket_id" field.
func KnownDocketIDEQ(v string) predicate.Docket {
	return predicate.Docket(sql.FieldEQ(FieldKnownDocketID, v))
}

// KnownDocketIDNEQ applies the NEQ predicate on the "known_docket_id" field.
func KnownDocketIDNEQ(v string) predicate.Docket {
	return predicate.Docket(sql.FieldNEQ(FieldKnownDocketID, v))
}

// KnownDocketIDIn applies the In predicate on the "known_docket_id" field.
func KnownDocketIDIn(vs ...string) predicate.Docket {
	return predicate.Docket(sql.FieldIn(FieldKnownDocketID, vs...))
}

// KnownDocketIDNotIn applies the NotIn predicate on the "known_docket_id" field.
func KnownDocketIDNotIn(vs ...string) predicate.Docket {
	return predicate.Docket(sql.FieldNotIn(FieldKnownDocketID, vs...))
}

// KnownDocketIDGT applies the GT predicate on the "known_docket_id" field.
func KnownDocketIDGT(v string) predicate.Docket {
	return predicate.Docket(sql.FieldGT(FieldKnownDocketID, v))
}

// KnownDocketIDGTE applies the GTE predicate on the "known_docket_id" field.
func KnownDocketIDGTE(v string) predicate.Docket {
	return predicate.Docket(sql.FieldGTE(FieldKnownDocketID, v))
}

// KnownDocketIDLT applies the LT predicate on the "known_docket_id" field.
func KnownDocketIDLT(v string) predicate.Docket {
	return predicate.Docket(sql.FieldLT(FieldKnownDocketID, v))
}

// KnownDocketIDLTE applies the LTE predicate on the "known_docket_id" field.
func KnownDocketIDLTE(v string) predicate.Docket {
	return predicate.Docket(sql.FieldLTE(FieldKnownDocketID, v))
}

// KnownDocketIDContains applies the Contains predicate on the "known_docket_id" field.
func KnownDocketIDContains(v string) predicate.Docket {
	return predicate.Docket(sql.FieldContains(FieldKnownDocketID, v))
}

// KnownDocketIDHasPrefix applies the HasPrefix predicate on the "known_docket_id" field.
func KnownDocketIDHasPrefix(v string) predicate.Docket {
	return predicate.Docket(sql.FieldHasPrefix(FieldKnownDocketID, v))
}

// KnownDocketIDHasSuffix applies the HasSuffix predicate on the "known_docket_id" field.
func KnownDocketIDHasSuffix(v string) predicate.Docket {
	return predicate.Docket(sql.FieldHasSuffix(FieldKnownDocketID, v))
}

// KnownDocketIDIsNil applies the IsNil predicate on the "known_docket_id" field.
func KnownDocketIDIsNil() predicate.Docket {
	return predicate.Docket(sql.FieldIsNull(FieldKnownDocketID))
}

// KnownDocketIDNotNil applies the NotNil predicate on the "known_docket_id" field.
func KnownDocketIDNotNil() predicate.Docket {
	return predicate.Docket(sql.FieldNotNull(FieldKnownDocketID))
}

// KnownDocketIDEqualFold applies the EqualFold predicate on the "known_docket_id" field.
func KnownDocketIDEqualFold(v string) predicate.Docket {
	return predicate.Docket(sql.FieldEqualFold(FieldKnownDocketID, v))
}

// KnownDocketIDContainsFold applies the ContainsFold predicate on the "known_docket_id" field.
func KnownDocketIDContainsFold(v string) predicate.Docket {
	return predicate.Docket(sql.FieldContainsFold(FieldKnownDocketID, v))
}

// MatchScoreEQ applies the EQ predicate on the "match_score" field.
func MatchScoreEQ(v float64) predicate.Docket {
	return predicate.Docket(sql.FieldEQ(FieldMatchScore, v))
}

// MatchScoreNEQ applies the NEQ predicate on the "match_score" field.
func MatchScoreNEQ(v float64) predicate.Docket {
	return predicate.Docket(sql.FieldNEQ(FieldMatchScore, v))
}

// MatchScoreIn applies the In predicate on the "match_score" field.
func MatchScoreIn(vs ...float64) predicate.Docket {
	return predicate.Docket(sql.FieldIn(FieldMatchScore, vs...))
}

// MatchScoreNotIn applies the NotIn predicate on the "match_score" field.
func MatchScoreNotIn(vs ...float64) predicate.Docket {
	return predicate.Docket(sql.FieldNotIn(FieldMatchScore, vs...))
}

// MatchScoreGT applies the GT predicate on the "match_score" field.
func MatchScoreGT(v float64) predicate.Docket {
	return predicate.Docket(sql.FieldGT(FieldMatchScore, v))
}

// MatchScoreGTE applies the GTE predicate on the "match_score" field.
func MatchScoreGTE(v float64) predicate.Docket {
	return predicate.Docket(sql.FieldGTE(FieldMatchScore, v))
}

// MatchScoreLT applies the LT predicate on the "match_score" field.
func MatchScoreLT(v float64) predicate.Docket {
	return predicate.Docket(sql.FieldLT(FieldMatchScore, v))
}

// MatchScoreLTE applies the LTE predicate on the "match_score" field.
func MatchScoreLTE(v float64) predicate.Docket {
	return predicate.Docket(sql.FieldLTE(FieldMatchScore, v))
}

// HasKnownDocket applies the HasEdge predicate on the "known_docket" edge.
func HasKnownDocket() predicate.Docket {
	return predicate.Docket(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, KnownDocketTable, KnownDocketColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasKnownDocketWith applies the HasEdge predicate on the "known_docket" edge with a given conditions (other predicates).
func HasKnownDocketWith(preds ...predicate.KnownDocket) predicate.Docket {
	return predicate.Docket(func(s *sql.Selector) {
		step := newKnownDocketStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasHearingDockets applies the HasEdge predicate on the "hearing_dockets" edge.
func HasHearingDockets() predicate.Docket {
	return predicate.Docket(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, HearingDocketsTable, HearingDocketsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasHearingDocketsWith applies the HasEdge predicate on the "hearing_dockets" edge with a given conditions (other predicates).
func HasHearingDocketsWith(preds ...predicate.HearingDocket) predicate.Docket {
	return predicate.Docket(func(s *sql.Selector) {
		step := newHearingDocketsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Docket) predicate.Docket {
	return predicate.Docket(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Docket) predicate.Docket {
	return predicate.Docket(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Docket) predicate.Docket {
	return predicate.Docket(sql.NotPredicates(p))
}
