// Code generated by ent, DO NOT EDIT.

package hearingdocket

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/canaryscope/canaryscope/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.HearingDocket {
	return predicate.HearingDocket(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.HearingDocket {
	return predicate.HearingDocket(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.HearingDocket {
	return predicate.HearingDocket(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.HearingDocket {
	return predicate.HearingDocket(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.HearingDocket {
	return predicate.HearingDocket(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.HearingDocket {
	return predicate.HearingDocket(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.HearingDocket {
	return predicate.HearingDocket(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.HearingDocket {
	return predicate.HearingDocket(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.HearingDocket {
	return predicate.HearingDocket(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.HearingDocket {
	return predicate.HearingDocket(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.HearingDocket {
	return predicate.HearingDocket(sql.FieldContainsFold(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.HearingDocket {
	return predicate.HearingDocket(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.HearingDocket {
	return predicate.HearingDocket(sql.FieldEQ(FieldUpdatedAt, v))
}

// HearingID applies equality check predicate on the "hearing_id" field. It's identical to HearingIDEQ.
func HearingID(v string) predicate.HearingDocket {
	return predicate.HearingDocket(sql.FieldEQ(FieldHearingID, v))
}

// DocketID applies equality check predicate on the "docket_id" field. It's identical to DocketIDEQ.
func DocketID(v string) predicate.HearingDocket {
	return predicate.HearingDocket(sql.FieldEQ(FieldDocketID, v))
}

// ConfidenceScore applies equality check predicate on the "confidence_score" field. It's identical to ConfidenceScoreEQ.
func ConfidenceScore(v float64) predicate.HearingDocket {
	return predicate.HearingDocket(sql.FieldEQ(FieldConfidenceScore, v))
}

// NeedsReview applies equality check predicate on the "needs_review" field. It's identical to NeedsReviewEQ.
func NeedsReview(v bool) predicate.HearingDocket {
	return predicate.HearingDocket(sql.FieldEQ(FieldNeedsReview, v))
}

// ReviewReason applies equality check predicate on the "review_reason" field. It's identical to ReviewReasonEQ.
func ReviewReason(v string) predicate.HearingDocket {
	return predicate.HearingDocket(sql.FieldEQ(FieldReviewReason, v))
}

// ContextSummary applies equality check predicate on the "context_summary" field. It's identical to ContextSummaryEQ.
func ContextSummary(v string) predicate.HearingDocket {
	return predicate.HearingDocket(sql.FieldEQ(FieldContextSummary, v))
}

// IsPrimary applies equality check predicate on the "is_primary" field. It's identical to IsPrimaryEQ.
func IsPrimary(v bool) predicate.HearingDocket {
	return predicate.HearingDocket(sql.FieldEQ(FieldIsPrimary, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.HearingDocket {
	return predicate.HearingDocket(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.HearingDocket {
	return predicate.HearingDocket(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.HearingDocket {
	return predicate.HearingDocket(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.HearingDocket {
	return predicate.HearingDocket(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.HearingDocket {
	return predicate.HearingDocket(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.HearingDocket {
	return predicate.HearingDocket(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.HearingDocket {
	return predicate.HearingDocket(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.HearingDocket {
	return predicate.HearingDocket(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.HearingDocket {
	return predicate.HearingDocket(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.HearingDocket {
	return predicate.HearingDocket(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.HearingDocket {
	return predicate.HearingDocket(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.HearingDocket {
	return predicate.HearingDocket(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.HearingDocket {
	return predicate.HearingDocket(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.HearingDocket {
	return predicate.HearingDocket(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.HearingDocket {
	return predicate.HearingDocket(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.HearingDocket {
	return predicate.HearingDocket(sql.FieldLTE(FieldUpdatedAt, v))
}

// HearingIDEQ applies the EQ predicate on the "hearing_id" field.
func HearingIDEQ(v string) predicate.HearingDocket {
	return predicate.HearingDocket(sql.FieldEQ(FieldHearingID, v))
}

// HearingIDNEQ applies the NEQ predicate on the "hearing_id" field.
func HearingIDNEQ(v string) predicate.HearingDocket {
	return predicate.HearingDocket(sql.FieldNEQ(FieldHearingID, v))
}

// HearingIDIn applies the In predicate on the "hearing_id" field.
func HearingIDIn(vs ...string) predicate.HearingDocket {
	return predicate.HearingDocket(sql.FieldIn(FieldHearingID, vs...))
}

// HearingIDNotIn applies the NotIn predicate on the "hearing_id" field.
func HearingIDNotIn(vs ...string) predicate.HearingDocket {
	return predicate.HearingDocket(sql.FieldNotIn(FieldHearingID, vs...))
}

// HearingIDGT applies the GT predicate on the "hearing_id" field.
func HearingIDGT(v string) predicate.HearingDocket {
	return predicate.HearingDocket(sql.FieldGT(FieldHearingID, v))
}

// HearingIDGTE applies the GTE predicate on the "hearing_id" field.
func HearingIDGTE(v string) predicate.HearingDocket {
	return predicate.HearingDocket(sql.FieldGTE(FieldHearingID, v))
}

// HearingIDLT applies the LT predicate on the "hearing_id" field.
func HearingIDLT(v string) predicate.HearingDocket {
	return predicate.HearingDocket(sql.FieldLT(FieldHearingID, v))
}

// HearingIDLTE applies the LTE predicate on the "hearing_id" field.
func HearingIDLTE(v string) predicate.HearingDocket {
	return predicate.HearingDocket(sql.FieldLTE(FieldHearingID, v))
}

// HearingIDContains applies the Contains predicate on the "hearing_id" field.
func HearingIDContains(v string) predicate.HearingDocket {
	return predicate.HearingDocket(sql.FieldContains(FieldHearingID, v))
}

// HearingIDHasPrefix applies the HasPrefix predicate on the "hearing_id" field.
func HearingIDHasPrefix(v string) predicate.HearingDocket {
	return predicate.HearingDocket(sql.FieldHasPrefix(FieldHearingID, v))
}

// HearingIDHasSuffix applies the HasSuffix predicate on the "hearing_id" field.
func HearingIDHasSuffix(v string) predicate.HearingDocket {
	return predicate.HearingDocket(sql.FieldHasSuffix(FieldHearingID, v))
}

// HearingIDEqualFold applies the EqualFold predicate on the "hearing_id" field.
func HearingIDEqualFold(v string) predicate.HearingDocket {
	return predicate.HearingDocket(sql.FieldEqualFold(FieldHearingID, v))
}

// HearingIDContainsFold applies the ContainsFold predicate on the "hearing_id" field.
func HearingIDContainsFold(v string) predicate.HearingDocket {
	return predicate.HearingDocket(sql.FieldContainsFold(FieldHearingID, v))
}

// DocketIDEQ applies the EQ predicate on the "docket_id" field.
func DocketIDEQ(v string) predicate.HearingDocket {
	return predicate.HearingDocket(sql.FieldEQ(FieldDocketID, v))
}

// DocketIDNEQ applies the NEQ predicate on the "docket_id" field.
func DocketIDNEQ(v string) predicate.HearingDocket {
	return predicate.HearingDocket(sql.FieldNEQ(FieldDocketID, v))
}

// DocketIDIn applies the In predicate on the "docket_id" field.
func DocketIDIn(vs ...string) predicate.HearingDocket {
	return predicate.HearingDocket(sql.FieldIn(FieldDocketID, vs...))
}

// DocketIDNotIn applies the NotIn predicate on the "docket_id" field.
func DocketIDNotIn(vs ...string) predicate.HearingDocket {
	return predicate.HearingDocket(sql.FieldNotIn(FieldDocketID, vs...))
}

// DocketIDGT applies the GT predicate on the "docket_id" field.
func DocketIDGT(v string) predicate.HearingDocket {
	return predicate.HearingDocket(sql.FieldGT(FieldDocketID, v))
}

// DocketIDGTE applies the GTE predicate on the "docket_id" field.
func DocketIDGTE(v string) predicate.HearingDocket {
	return predicate.HearingDocket(sql.FieldGTE(FieldDocketID, v))
}

// DocketIDLT applies the LT predicate on the "docket_id" field.
func DocketIDLT(v string) predicate.HearingDocket {
	return predicate.HearingDocket(sql.FieldLT(FieldDocketID, v))
}

// DocketIDLTE applies the LTE predicate on the "docket_id" field.
func DocketIDLTE(v string) predicate.HearingDocket {
	return predicate.HearingDocket(sql.FieldLTE(FieldDocketID, v))
}

// DocketIDContains applies the Contains predicate on the "docket_id" field.
func DocketIDContains(v string) predicate.HearingDocket {
	return predicate.HearingDocket(sql.FieldContains(FieldDocketID, v))
}

// DocketIDHasPrefix applies the HasPrefix predicate on the "docket_id" field.
func DocketIDHasPrefix(v string) predicate.HearingDocket {
	return predicate.HearingDocket(sql.FieldHasPrefix(FieldDocketID, v))
}

// DocketIDHasSuffix applies the HasSuffix predicate on the "docket_id" field.
func DocketIDHasSuffix(v string) predicate.HearingDocket {
	return predicate.HearingDocket(sql.FieldHasSuffix(FieldDocketID, v))
}

// DocketIDEqualFold applies the EqualFold predicate on the "docket_id" field.
func DocketIDEqualFold(v string) predicate.HearingDocket {
	return predicate.HearingDocket(sql.FieldEqualFold(FieldDocketID, v))
}

// DocketIDContainsFold applies the ContainsFold predicate on the "docket_id" field.
func DocketIDContainsFold(v string) predicate.HearingDocket {
	return predicate.HearingDocket(sql.FieldContainsFold(FieldDocketID, v))
}

// ConfidenceScoreEQ applies the EQ predicate on the "confidence_score" field.
func ConfidenceScoreEQ(v float64) predicate.HearingDocket {
	return predicate.HearingDocket(sql.FieldEQ(FieldConfidenceScore, v))
}

// ConfidenceScoreNEQ applies the NEQ predicate on the "confidence_score" field.
func ConfidenceScoreNEQ(v float64) predicate.HearingDocket {
	return predicate.HearingDocket(sql.FieldNEQ(FieldConfidenceScore, v))
}

// ConfidenceScoreIn applies the In predicate on the "confidence_score" field.
func ConfidenceScoreIn(vs ...float64) predicate.HearingDocket {
	return predicate.HearingDocket(sql.FieldIn(FieldConfidenceScore, vs...))
}

// ConfidenceScoreNotIn applies the NotIn predicate on the "confidence_score" field.
func ConfidenceScoreNotIn(vs ...float64) predicate.HearingDocket {
	return predicate.HearingDocket(sql.FieldNotIn(FieldConfidenceScore, vs...))
}

// ConfidenceScoreGT applies the GT predicate on the "confidence_score" field.
func ConfidenceScoreGT(v float64) predicate.HearingDocket {
	return predicate.HearingDocket(sql.FieldGT(FieldConfidenceScore, v))
}

// ConfidenceScoreGTE applies the GTE predicate on the "confidence_score" field.
func ConfidenceScoreGTE(v float64) predicate.HearingDocket {
	return predicate.HearingDocket(sql.FieldGTE(FieldConfidenceScore, v))
}

// ConfidenceScoreLT applies the LT predicate on the "confidence_score" field.
func ConfidenceScoreLT(v float64) predicate.HearingDocket {
	return predicate.HearingDocket(sql.FieldLT(FieldConfidenceScore, v))
}

// ConfidenceScoreLTE applies the LTE predicate on the "confidence_score" field.
func ConfidenceScoreLTE(v float64) predicate.HearingDocket {
	return predicate.HearingDocket(sql.FieldLTE(FieldConfidenceScore, v))
}

// MatchTypeEQ applies the EQ predicate on the "match_type" field.
func MatchTypeEQ(v MatchType) predicate.HearingDocket {
	return predicate.HearingDocket(sql.FieldEQ(FieldMatchType, v))
}

// MatchTypeNEQ applies the NEQ predicate on the "match_type" field.
func MatchTypeNEQ(v MatchType) predicate.HearingDocket {
	return predicate.HearingDocket(sql.FieldNEQ(FieldMatchType, v))
}

// MatchTypeIn applies the In predicate on the "match_type" field.
func MatchTypeIn(vs ...MatchType) predicate.HearingDocket {
	return predicate.HearingDocket(sql.FieldIn(FieldMatchType, vs...))
}

// MatchTypeNotIn applies the NotIn predicate on the "match_type" field.
func MatchTypeNotIn(vs ...MatchType) predicate.HearingDocket {
	return predicate.HearingDocket(sql.FieldNotIn(FieldMatchType, vs...))
}

// NeedsReviewEQ applies the EQ predicate on the "needs_review" field.
func NeedsReviewEQ(v bool) predicate.HearingDocket {
	return predicate.HearingDocket(sql.FieldEQ(FieldNeedsReview, v))
}

// NeedsReviewNEQ applies the NEQ predicate on the "needs_review" field.
func NeedsReviewNEQ(v bool) predicate.HearingDocket {
	return predicate.HearingDocket(sql.FieldNEQ(FieldNeedsReview, v))
}

// ReviewReasonEQ applies the EQ predicate on the "review_reason" field.
func ReviewReasonEQ(v string) predicate.HearingDocket {
	return predicate.HearingDocket(sql.FieldEQ(FieldReviewReason, v))
}

// ReviewReasonNEQ applies the NEQ predicate on the "review_reason" field.
func ReviewReasonNEQ(v string) predicate.HearingDocket {
	return predicate.HearingDocket(sql.FieldNEQ(FieldReviewReason, v))
}

// ReviewReasonIn applies the In predicate on the "review_reason" field.
func ReviewReasonIn(vs ...string) predicate.HearingDocket {
	return predicate.HearingDocket(sql.FieldIn(FieldReviewReason, vs...))
}

// ReviewReasonNotIn applies the NotIn predicate on the "review_reason" field.
func ReviewReasonNotIn(vs ...string) predicate.HearingDocket {
	return predicate.HearingDocket(sql.FieldNotIn(FieldReviewReason, vs...))
}

// ReviewReasonGT applies the GT predicate on the "review_reason" field.
func ReviewReasonGT(v string) predicate.HearingDocket {
	return predicate.HearingDocket(sql.FieldGT(FieldReviewReason, v))
}

// ReviewReasonGTE applies the GTE predicate on the "review_reason" field.
func ReviewReasonGTE(v string) predicate.HearingDocket {
	return predicate.HearingDocket(sql.FieldGTE(FieldReviewReason, v))
}

// ReviewReasonLT applies the LT predicate on the "review_reason" field.
func ReviewReasonLT(v string) predicate.HearingDocket {
	return predicate.HearingDocket(sql.FieldLT(FieldReviewReason, v))
}

// ReviewReasonLTE applies the LTE predicate on the "review_reason" field.
func ReviewReasonLTE(v string) predicate.HearingDocket {
	return predicate.HearingDocket(sql.FieldLTE(FieldReviewReason, v))
}

// ReviewReasonContains applies the Contains predicate on the "review_reason" field.
func ReviewReasonContains(v string) predicate.HearingDocket {
	return predicate.HearingDocket(sql.FieldContains(FieldReviewReason, v))
}

// ReviewReasonHasPrefix applies the HasPrefix predicate on the "review_reason" field.
func ReviewReasonHasPrefix(v string) predicate.HearingDocket {
	return predicate.HearingDocket(sql.FieldHasPrefix(FieldReviewReason, v))
}

// ReviewReasonHasSuffix applies the HasSuffix predicate on the "review_reason" field.
func ReviewReasonHasSuffix(v string) predicate.HearingDocket {
	return predicate.HearingDocket(sql.FieldHasSuffix(FieldReviewReason, v))
}

// ReviewReasonIsNil applies the IsNil predicate on the "review_reason" field.
func ReviewReasonIsNil() predicate.HearingDocket {
	return predicate.HearingDocket(sql.FieldIsNull(FieldReviewReason))
}

// ReviewReasonNotNil applies the NotNil predicate on the "review_reason" field.
func ReviewReasonNotNil() predicate.HearingDocket {
	return predicate.HearingDocket(sql.FieldNotNull(FieldReviewReason))
}

// ReviewReasonEqualFold applies the EqualFold predicate on the "review_reason" field.
func ReviewReasonEqualFold(v string) predicate.HearingDocket {
	return predicate.HearingDocket(sql.FieldEqualFold(FieldReviewReason, v))
}

// ReviewReasonContainsFold applies the ContainsFold predicate on the "review_reason" field.
func ReviewReasonContainsFold(v string) predicate.HearingDocket {
	return predicate.HearingDocket(sql.FieldContainsFold(FieldReviewReason, v))
}

// ContextSummaryEQ applies the EQ predicate on the "context_summary" field.
func ContextSummaryEQ(v string) predicate.HearingDocket {
	return predicate.HearingDocket(sql.FieldEQ(FieldContextSummary, v))
}

// ContextSummaryNEQ applies the NEQ predicate on the "context_summary" field.
func ContextSummaryNEQ(v string) predicate.HearingDocket {
	return predicate.HearingDocket(sql.FieldNEQ(FieldContextSummary, v))
}

// ContextSummaryIn applies the In predicate on the "context_summary" field.
func ContextSummaryIn(vs ...string) predicate.HearingDocket {
	return predicate.HearingDocket(sql.FieldIn(FieldContextSummary, vs...))
}

// ContextSummaryNotIn applies the NotIn predicate on the "context_summary" field.
func ContextSummaryNotIn(vs ...string) predicate.HearingDocket {
	return predicate.HearingDocket(sql.FieldNotIn(FieldContextSummary, vs...))
}

// ContextSummaryGT applies the GT predicate on the "context_summary" field.
func ContextSummaryGT(v string) predicate.HearingDocket {
	return predicate.HearingDocket(sql.FieldGT(FieldContextSummary, v))
}

// ContextSummaryGTE applies the GTE predicate on the "context_summary" field.
func ContextSummaryGTE(v string) predicate.HearingDocket {
	return predicate.HearingDocket(sql.FieldGTE(FieldContextSummary, v))
}

// ContextSummaryLT applies the LT predicate on the "context_summary" field.
func ContextSummaryLT(v string) predicate.HearingDocket {
	return predicate.HearingDocket(sql.FieldLT(FieldContextSummary, v))
}

// ContextSummaryLTE applies the LTE predicate on the "context_summary" field.
func ContextSummaryLTE(v string) predicate.HearingDocket {
	return predicate.HearingDocket(sql.FieldLTE(FieldContextSummary, v))
}

// ContextSummaryContains applies the Contains predicate on the "context_summary" field.
func ContextSummaryContains(v string) predicate.HearingDocket {
	return predicate.HearingDocket(sql.FieldContains(FieldContextSummary, v))
}

// ContextSummaryHasPrefix applies the HasPrefix predicate on the "context_summary" field.
func ContextSummaryHasPrefix(v string) predicate.HearingDocket {
	return predicate.HearingDocket(sql.FieldHasPrefix(FieldContextSummary, v))
}

// ContextSummaryHasSuffix applies the HasSuffix predicate on the "context_summary" field.
func ContextSummaryHasSuffix(v string) predicate.HearingDocket {
	return predicate.HearingDocket(sql.FieldHasSuffix(FieldContextSummary, v))
}

// ContextSummaryIsNil applies the IsNil predicate on the "context_summary" field.
func ContextSummaryIsNil() predicate.HearingDocket {
	return predicate.HearingDocket(sql.FieldIsNull(FieldContextSummary))
}

// ContextSummaryNotNil applies the NotNil predicate on the "context_summary" field.
func ContextSummaryNotNil() predicate.HearingDocket {
	return predicate.HearingDocket(sql.FieldNotNull(FieldContextSummary))
}

// ContextSummaryEqualFold applies the EqualFold predicate on the "context_summary" field.
func ContextSummaryEqualFold(v string) predicate.HearingDocket {
	return predicate.HearingDocket(sql.FieldEqualFold(FieldContextSummary, v))
}

// ContextSummaryContainsFold applies the ContainsFold predicate on the "context_summary" field.
func ContextSummaryContainsFold(v string) predicate.HearingDocket {
	return predicate.HearingDocket(sql.FieldContainsFold(FieldContextSummary, v))
}

// IsPrimaryEQ applies the EQ predicate on the "is_primary" field.
func IsPrimaryEQ(v bool) predicate.HearingDocket {
	return predicate.HearingDocket(sql.FieldEQ(FieldIsPrimary, v))
}

// IsPrimaryNEQ applies the NEQ predicate on the "is_primary" field.
func IsPrimaryNEQ(v bool) predicate.HearingDocket {
	return predicate.HearingDocket(sql.FieldNEQ(FieldIsPrimary, v))
}

// HasHearing applies the HasEdge predicate on the "hearing" edge.
func HasHearing() predicate.HearingDocket {
	return predicate.HearingDocket(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, HearingTable, HearingColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasHearingWith applies the HasEdge predicate on the "hearing" edge with a given conditions (other predicates).
func HasHearingWith(preds ...predicate.Hearing) predicate.HearingDocket {
	return predicate.HearingDocket(func(s *sql.Selector) {
		step := newHearingStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasDocket applies the HasEdge predicate on the "docket" edge.
func HasDocket() predicate.HearingDocket {
	return predicate.HearingDocket(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, DocketTable, DocketColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasDocketWith applies the HasEdge predicate on the "docket" edge with a given conditions (other predicates).
func HasDocketWith(preds ...predicate.Docket) predicate.HearingDocket {
	return predicate.HearingDocket(func(s *sql.Selector) {
		step := newDocketStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.HearingDocket) predicate.HearingDocket {
	return predicate.HearingDocket(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.HearingDocket) predicate.HearingDocket {
	return predicate.HearingDocket(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.HearingDocket) predicate.HearingDocket {
	return predicate.HearingDocket(sql.NotPredicates(p))
}
