// Code generated by ent, DO NOT EDIT.

package analysis

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/canaryscope/canaryscope/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Analysis {
	return predicate.Analysis(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Analysis {
	return predicate.Analysis(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Analysis {
	return predicate.Analysis(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Analysis {
	return predicate.Analysis(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Analysis {
	return predicate.Analysis(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Analysis {
	return predicate.Analysis(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Analysis {
	return predicate.Analysis(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Analysis {
	return predicate.Analysis(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Analysis {
	return predicate.Analysis(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Analysis {
	return predicate.Analysis(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Analysis {
	return predicate.Analysis(sql.FieldContainsFold(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Analysis {
	return predicate.Analysis(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Analysis {
	return predicate.Analysis(sql.FieldEQ(FieldUpdatedAt, v))
}

// HearingID applies equality check predicate on the "hearing_id" field. It's identical to HearingIDEQ.
func HearingID(v string) predicate.Analysis {
	return predicate.Analysis(sql.FieldEQ(FieldHearingID, v))
}

// Summary applies equality check predicate on the "summary" field. It's identical to SummaryEQ.
func Summary(v string) predicate.Analysis {
	return predicate.Analysis(sql.FieldEQ(FieldSummary, v))
}

// OneSentenceSummary applies equality check predicate on the "one_sentence_summary" field. It's identical to OneSentenceSummaryEQ.
func OneSentenceSummary(v string) predicate.Analysis {
	return predicate.Analysis(sql.FieldEQ(FieldOneSentenceSummary, v))
}

// LikelyOutcome applies equality check predicate on the "likely_outcome" field. It's identical to LikelyOutcomeEQ.
func LikelyOutcome(v string) predicate.Analysis {
	return predicate.Analysis(sql.FieldEQ(FieldLikelyOutcome, v))
}

// OutcomeConfidence applies equality check predicate on the "outcome_confidence" field. It's identical to OutcomeConfidenceEQ.
func OutcomeConfidence(v float64) predicate.Analysis {
	return predicate.Analysis(sql.FieldEQ(FieldOutcomeConfidence, v))
}

// Model applies equality check predicate on the "model" field. It's identical to ModelEQ.
func Model(v string) predicate.Analysis {
	return predicate.Analysis(sql.FieldEQ(FieldModel, v))
}

// CostUsd applies equality check predicate on the "cost_usd" field. It's identical to CostUsdEQ.
func CostUsd(v float64) predicate.Analysis {
	return predicate.Analysis(sql.FieldEQ(FieldCostUsd, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Analysis {
	return predicate.Analysis(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Analysis {
	return predicate.Analysis(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Analysis {
	return predicate.Analysis(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Analysis {
	return predicate.Analysis(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Analysis {
	return predicate.Analysis(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Analysis {
	return predicate.Analysis(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Analysis {
	return predicate.Analysis(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Analysis {
	return predicate.Analysis(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Analysis {
	return predicate.Analysis(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Analysis {
	return predicate.Analysis(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Analysis {
	return predicate.Analysis(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Analysis {
	return predicate.Analysis(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Analysis {
	return predicate.Analysis(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Analysis {
	return predicate.Analysis(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Analysis {
	return predicate.Analysis(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Analysis {
	return predicate.Analysis(sql.FieldLTE(FieldUpdatedAt, v))
}

// HearingIDEQ applies the EQ predicate on the "hearing_id" field.
func HearingIDEQ(v string) predicate.Analysis {
	return predicate.Analysis(sql.FieldEQ(FieldHearingID, v))
}

// HearingIDNEQ applies the NEQ predicate on the "hearing_id" field.
func HearingIDNEQ(v string) predicate.Analysis {
	return predicate.Analysis(sql.FieldNEQ(FieldHearingID, v))
}

// HearingIDIn applies the In predicate on the "hearing_id" field.
func HearingIDIn(vs ...string) predicate.Analysis {
	return predicate.Analysis(sql.FieldIn(FieldHearingID, vs...))
}

// HearingIDNotIn applies the NotIn predicate on the "hearing_id" field.
func HearingIDNotIn(vs ...string) predicate.Analysis {
	return predicate.Analysis(sql.FieldNotIn(FieldHearingID, vs...))
}

// HearingIDGT applies the GT predicate on the "hearing_id" field.
func HearingIDGT(v string) predicate.Analysis {
	return predicate.Analysis(sql.FieldGT(FieldHearingID, v))
}

// HearingIDGTE applies the GTE predicate on the "hearing_id" field.
func HearingIDGTE(v string) predicate.Analysis {
	return predicate.Analysis(sql.FieldGTE(FieldHearingID, v))
}

// HearingIDLT applies the LT predicate on the "hearing_id" field.
func HearingIDLT(v string) predicate.Analysis {
	return predicate.Analysis(sql.FieldLT(FieldHearingID, v))
}

// HearingIDLTE applies the LTE predicate on the "hearing_id" field.
func HearingIDLTE(v string) predicate.Analysis {
	return predicate.Analysis(sql.FieldLTE(FieldHearingID, v))
}

// HearingIDContains applies the Contains predicate on the "hearing_id" field.
func HearingIDContains(v string) predicate.Analysis {
	return predicate.Analysis(sql.FieldContains(FieldHearingID, v))
}

// HearingIDHasPrefix applies the HasPrefix predicate on the "hearing_id" field.
func HearingIDHasPrefix(v string) predicate.Analysis {
	return predicate.Analysis(sql.FieldHasPrefix(FieldHearingID, v))
}

// HearingIDHasSuffix applies the HasSuffix predicate on the "hearing_id" field.
func HearingIDHasSuffix(v string) predicate.Analysis {
	return predicate.Analysis(sql.FieldHasSuffix(FieldHearingID, v))
}

// HearingIDEqualFold applies the EqualFold predicate on the "hearing_id" field.
func HearingIDEqualFold(v string) predicate.Analysis {
	return predicate.Analysis(sql.FieldEqualFold(FieldHearingID, v))
}

// HearingIDContainsFold applies the ContainsFold predicate on the "hearing_id" field.
func HearingIDContainsFold(v string) predicate.Analysis {
	return predicate.Analysis(sql.FieldContainsFold(FieldHearingID, v))
}

// SummaryEQ applies the EQ predicate on the "summary" field.
func SummaryEQ(v string) predicate.Analysis {
	return predicate.Analysis(sql.FieldEQ(FieldSummary, v))
}

// SummaryNEQ applies the NEQ predicate on the "summary" field.
func SummaryNEQ(v string) predicate.Analysis {
	return predicate.Analysis(sql.FieldNEQ(FieldSummary, v))
}

// SummaryIn applies the In predicate on the "summary" field.
func SummaryIn(vs ...string) predicate.Analysis {
	return predicate.Analysis(sql.FieldIn(FieldSummary, vs...))
}

// SummaryNotIn applies the NotIn predicate on the "summary" field.
func SummaryNotIn(vs ...string) predicate.Analysis {
	return predicate.Analysis(sql.FieldNotIn(FieldSummary, vs...))
}

// SummaryGT applies the GT predicate on the "summary" field.
func SummaryGT(v string) predicate.Analysis {
	return predicate.Analysis(sql.FieldGT(FieldSummary, v))
}

// SummaryGTE applies the GTE predicate on the "summary" field.
func SummaryGTE(v string) predicate.Analysis {
	return predicate.Analysis(sql.FieldGTE(FieldSummary, v))
}

// SummaryLT applies the LT predicate on the "summary" field.
func SummaryLT(v string) predicate.Analysis {
	return predicate.Analysis(sql.FieldLT(FieldSummary, v))
}

// SummaryLTE applies the LTE predicate on the "summary" field.
func SummaryLTE(v string) predicate.Analysis {
	return predicate.Analysis(sql.FieldLTE(FieldSummary, v))
}

// SummaryContains applies the Contains predicate on the "summary" field.
func SummaryContains(v string) predicate.Analysis {
	return predicate.Analysis(sql.FieldContains(FieldSummary, v))
}

// SummaryHasPrefix applies the HasPrefix predicate on the "summary" field.
func SummaryHasPrefix(v string) predicate.Analysis {
	return predicate.Analysis(sql.FieldHasPrefix(FieldSummary, v))
}

// SummaryHasSuffix applies the HasSuffix predicate on the "summary" field.
func SummaryHasSuffix(v string) predicate.Analysis {
	return predicate.Analysis(sql.FieldHasSuffix(FieldSummary, v))
}

// SummaryIsNil applies the IsNil predicate on the "summary" field.
func SummaryIsNil() predicate.Analysis {
	return predicate.Analysis(sql.FieldIsNull(FieldSummary))
}

// SummaryNotNil applies the NotNil predicate on the "summary" field.
func SummaryNotNil() predicate.Analysis {
	return predicate.Analysis(sql.FieldNotNull(FieldSummary))
}

// SummaryEqualFold applies the EqualFold predicate on the "summary" field.
func SummaryEqualFold(v string) predicate.Analysis {
	return predicate.Analysis(sql.FieldEqualFold(FieldSummary, v))
}

// SummaryContainsFold applies the ContainsFold predicate on the "summary" field.
func SummaryContainsFold(v string) predicate.Analysis {
	return predicate.Analysis(sql.FieldContainsFold(FieldSummary, v))
}

// OneSentenceSummaryEQ applies the EQ predicate on the "one_sentence_summary" field.
func OneSentenceSummaryEQ(v string) predicate.Analysis {
	return predicate.Analysis(sql.FieldEQ(FieldOneSentenceSummary, v))
}

// OneSentenceSummaryNEQ applies the NEQ predicate on the "one_sentence_summary" field.
func OneSentenceSummaryNEQ(v string) predicate.Analysis {
	return predicate.Analysis(sql.FieldNEQ(FieldOneSentenceSummary, v))
}

// OneSentenceSummaryIn applies the In predicate on the "one_sentence_summary" field.
func OneSentenceSummaryIn(vs ...string) predicate.Analysis {
	return predicate.Analysis(sql.FieldIn(FieldOneSentenceSummary, vs...))
}

// OneSentenceSummaryNotIn applies the NotIn predicate on the "one_sentence_summary" field.
func OneSentenceSummaryNotIn(vs ...string) predicate.Analysis {
	return predicate.Analysis(sql.FieldNotIn(FieldOneSentenceSummary, vs...))
}

// OneSentenceSummaryGT applies the GT predicate on the "one_sentence_summary" field.
func OneSentenceSummaryGT(v string) predicate.Analysis {
	return predicate.Analysis(sql.FieldGT(FieldOneSentenceSummary, v))
}

// OneSentenceSummaryGTE applies the GTE predicate on the "one_sentence_summary" field.
func OneSentenceSummaryGTE(v string) predicate.Analysis {
	return predicate.Analysis(sql.FieldGTE(FieldOneSentenceSummary, v))
}

// OneSentenceSummaryLT applies the LT predicate on the "one_sentence_summary" field.
func OneSentenceSummaryLT(v string) predicate.Analysis {
	return predicate.Analysis(sql.FieldLT(FieldOneSentenceSummary, v))
}

// OneSentenceSummaryLTE applies the LTE predicate on the "one_sentence_summary" field.
func OneSentenceSummaryLTE(v string) predicate.Analysis {
	return predicate.Analysis(sql.FieldLTE(FieldOneSentenceSummary, v))
}

// OneSentenceSummaryContains applies the Contains predicate on the "one_sentence_summary" field.
func OneSentenceSummaryContains(v string) predicate.Analysis {
	return predicate.Analysis(sql.FieldContains(FieldOneSentenceSummary, v))
}

// OneSentenceSummaryHasPrefix applies the HasPrefix predicate on the "one_sentence_summary" field.
func OneSentenceSummaryHasPrefix(v string) predicate.Analysis {
	return predicate.Analysis(sql.FieldHasPrefix(FieldOneSentenceSummary, v))
}

// OneSentenceSummaryHasSuffix applies the HasSuffix predicate on the "one_sentence_summary" field.
func OneSentenceSummaryHasSuffix(v string) predicate.Analysis {
	return predicate.Analysis(sql.FieldHasSuffix(FieldOneSentenceSummary, v))
}

// OneSentenceSummaryIsNil applies the IsNil predicate on the "one_sentence_summary" field.
func OneSentenceSummaryIsNil() predicate.Analysis {
	return predicate.Analysis(sql.FieldIsNull(FieldOneSentenceSummary))
}

// OneSentenceSummaryNotNil applies the NotNil predicate on the "one_sentence_summary" field.
func OneSentenceSummaryNotNil() predicate.Analysis {
	return predicate.Analysis(sql.FieldNotNull(FieldOneSentenceSummary))
}

// OneSentenceSummaryEqualFold applies the EqualFold predicate on the "one_sentence_summary" field.
func OneSentenceSummaryEqualFold(v string) predicate.Analysis {
	return predicate.Analysis(sql.FieldEqualFold(FieldOneSentenceSummary, v))
}

// OneSentenceSummaryContainsFold applies the ContainsFold predicate on the "one_sentence_summary" field.
func OneSentenceSummaryContainsFold(v string) predicate.Analysis {
	return predicate.Analysis(sql.FieldContainsFold(FieldOneSentenceSummary, v))
}

// ParticipantsIsNil applies the IsNil predicate on the "participants" field.
func ParticipantsIsNil() predicate.Analysis {
	return predicate.Analysis(sql.FieldIsNull(FieldParticipants))
}

// ParticipantsNotNil applies the NotNil predicate on the "participants" field.
func ParticipantsNotNil() predicate.Analysis {
	return predicate.Analysis(sql.FieldNotNull(FieldParticipants))
}

// IssuesIsNil applies the IsNil predicate on the "issues" field.
func IssuesIsNil() predicate.Analysis {
	return predicate.Analysis(sql.FieldIsNull(FieldIssues))
}

// IssuesNotNil applies the NotNil predicate on the "issues" field.
func IssuesNotNil() predicate.Analysis {
	return predicate.Analysis(sql.FieldNotNull(FieldIssues))
}

// CommitmentsIsNil applies the IsNil predicate on the "commitments" field.
func CommitmentsIsNil() predicate.Analysis {
	return predicate.Analysis(sql.FieldIsNull(FieldCommitments))
}

// CommitmentsNotNil applies the NotNil predicate on the "commitments" field.
func CommitmentsNotNil() predicate.Analysis {
	return predicate.Analysis(sql.FieldNotNull(FieldCommitments))
}

// VulnerabilitiesIsNil applies the IsNil predicate on the "vulnerabilities" field.
func VulnerabilitiesIsNil() predicate.Analysis {
	return predicate.Analysis(sql.FieldIsNull(FieldVulnerabilities))
}

// VulnerabilitiesNotNil applies the NotNil predicate on the "vulnerabilities" field.
func VulnerabilitiesNotNil() predicate.Analysis {
	return predicate.Analysis(sql.FieldNotNull(FieldVulnerabilities))
}

// CommissionerConcernsIsNil applies the IsNil predicate on the "commissioner_concerns" field.
func CommissionerConcernsIsNil() predicate.Analysis {
	return predicate.Analysis(sql.FieldIsNull(FieldCommissionerConcerns))
}

// CommissionerConcernsNotNil applies the NotNil predicate on the "commissioner_concerns" field.
func CommissionerConcernsNotNil() predicate.Analysis {
	return predicate.Analysis(sql.FieldNotNull(FieldCommissionerConcerns))
}

// CommissionerMoodEQ applies the EQ predicate on the "commissioner_mood" field.
func CommissionerMoodEQ(v CommissionerMood) predicate.Analysis {
	return predicate.Analysis(sql.FieldEQ(FieldCommissionerMood, v))
}

// CommissionerMoodNEQ applies the NEQ predicate on the "commissioner_mood" field.
func CommissionerMoodNEQ(v CommissionerMood) predicate.Analysis {
	return predicate.Analysis(sql.FieldNEQ(FieldCommissionerMood, v))
}

// CommissionerMoodIn applies the In predicate on the "commissioner_mood" field.
func CommissionerMoodIn(vs ...CommissionerMood) predicate.Analysis {
	return predicate.Analysis(sql.FieldIn(FieldCommissionerMood, vs...))
}

// CommissionerMoodNotIn applies the NotIn predicate on the "commissioner_mood" field.
func CommissionerMoodNotIn(vs ...CommissionerMood) predicate.Analysis {
	return predicate.Analysis(sql.FieldNotIn(FieldCommissionerMood, vs...))
}

// CommissionerMoodIsNil applies the IsNil predicate on the "commissioner_mood" field.
func CommissionerMoodIsNil() predicate.Analysis {
	return predicate.Analysis(sql.FieldIsNull(FieldCommissionerMood))
}

// CommissionerMoodNotNil applies the NotNil predicate on the "commissioner_mood" field.
func CommissionerMoodNotNil() predicate.Analysis {
	return predicate.Analysis(sql.FieldNotNull(FieldCommissionerMood))
}

// PublicSentimentEQ applies the EQ predicate on the "public_sentiment" field.
func PublicSentimentEQ(v PublicSentiment) predicate.Analysis {
	return predicate.Analysis(sql.FieldEQ(FieldPublicSentiment, v))
}

// PublicSentimentNEQ applies the NEQ predicate on the "public_sentiment" field.
func PublicSentimentNEQ(v PublicSentiment) predicate.Analysis {
	return predicate.Analysis(sql.FieldNEQ(FieldPublicSentiment, v))
}

// PublicSentimentIn applies the In predicate on the "public_sentiment" field.
func PublicSentimentIn(vs ...PublicSentiment) predicate.Analysis {
	return predicate.Analysis(sql.FieldIn(FieldPublicSentiment, vs...))
}

// PublicSentimentNotIn applies the NotIn predicate on the "public_sentiment" field.
func PublicSentimentNotIn(vs ...PublicSentiment) predicate.Analysis {
	return predicate.Analysis(sql.FieldNotIn(FieldPublicSentiment, vs...))
}

// PublicSentimentIsNil applies the IsNil predicate on the "public_sentiment" field.
func PublicSentimentIsNil() predicate.Analysis {
	return predicate.Analysis(sql.FieldIsNull(FieldPublicSentiment))
}

// PublicSentimentNotNil applies the NotNil predicate on the "public_sentiment" field.
func PublicSentimentNotNil() predicate.Analysis {
	return predicate.Analysis(sql.FieldNotNull(FieldPublicSentiment))
}

// LikelyOutcomeEQ applies the EQ predicate on the "likely_outcome" field.
func LikelyOutcomeEQ(v string) predicate.Analysis {
	return predicate.Analysis(sql.FieldEQ(FieldLikelyOutcome, v))
}

// LikelyOutcomeNEQ applies the NEQ predicate on the "likely_outcome" field.
func LikelyOutcomeNEQ(v string) predicate.Analysis {
	return predicate.Analysis(sql.FieldNEQ(FieldLikelyOutcome, v))
}

// LikelyOutcomeIn applies the In predicate on the "likely_outcome" field.
func LikelyOutcomeIn(vs ...string) predicate.Analysis {
	return predicate.Analysis(sql.FieldIn(FieldLikelyOutcome, vs...))
}

// LikelyOutcomeNotIn applies the NotIn predicate on the "likely_outcome" field.
func LikelyOutcomeNotIn(vs ...string) predicate.Analysis {
	return predicate.Analysis(sql.FieldNotIn(FieldLikelyOutcome, vs...))
}

// LikelyOutcomeGT applies the GT predicate on the "likely_outcome" field.
func LikelyOutcomeGT(v string) predicate.Analysis {
	return predicate.Analysis(sql.FieldGT(FieldLikelyOutcome, v))
}

// LikelyOutcomeGTE applies the GTE predicate on the "likely_outcome" field.
func LikelyOutcomeGTE(v string) predicate.Analysis {
	return predicate.Analysis(sql.FieldGTE(FieldLikelyOutcome, v))
}

// LikelyOutcomeLT applies the LT predicate on the "likely_outcome" field.
func LikelyOutcomeLT(v string) predicate.Analysis {
	return predicate.Analysis(sql.FieldLT(FieldLikelyOutcome, v))
}

// LikelyOutcomeLTE applies the LTE predicate on the "likely_outcome" field.
func LikelyOutcomeLTE(v string) predicate.Analysis {
	return predicate.Analysis(sql.FieldLTE(FieldLikelyOutcome, v))
}

// LikelyOutcomeContains applies the Contains predicate on the "likely_outcome" field.
func LikelyOutcomeContains(v string) predicate.Analysis {
	return predicate.Analysis(sql.FieldContains(FieldLikelyOutcome, v))
}

// LikelyOutcomeHasPrefix applies the HasPrefix predicate on the "likely_outcome" field.
func LikelyOutcomeHasPrefix(v string) predicate.Analysis {
	return predicate.Analysis(sql.FieldHasPrefix(FieldLikelyOutcome, v))
}

// LikelyOutcomeHasSuffix applies the HasSuffix predicate on the "likely_outcome" field.
func LikelyOutcomeHasSuffix(v string) predicate.Analysis {
	return predicate.Analysis(sql.FieldHasSuffix(FieldLikelyOutcome, v))
}

// LikelyOutcomeIsNil applies the IsNil predicate on the "likely_outcome" field.
func LikelyOutcomeIsNil() predicate.Analysis {
	return predicate.Analysis(sql.FieldIsNull(FieldLikelyOutcome))
}

// LikelyOutcomeNotNil applies the NotNil predicate on the "likely_outcome" field.
func LikelyOutcomeNotNil() predicate.Analysis {
	return predicate.Analysis(sql.FieldNotNull(FieldLikelyOutcome))
}

// LikelyOutcomeEqualFold applies the EqualFold predicate on the "likely_outcome" field.
func LikelyOutcomeEqualFold(v string) predicate.Analysis {
	return predicate.Analysis(sql.FieldEqualFold(FieldLikelyOutcome, v))
}

// LikelyOutcomeContainsFold applies the ContainsFold predicate on the "likely_outcome" field.
func LikelyOutcomeContainsFold(v string) predicate.Analysis {
	return predicate.Analysis(sql.FieldContainsFold(FieldLikelyOutcome, v))
}

// OutcomeConfidenceEQ applies the EQ predicate on the "outcome_confidence" field.
func OutcomeConfidenceEQ(v float64) predicate.Analysis {
	return predicate.Analysis(sql.FieldEQ(FieldOutcomeConfidence, v))
}

// OutcomeConfidenceNEQ applies the NEQ predicate on the "outcome_confidence" field.
func OutcomeConfidenceNEQ(v float64) predicate.Analysis {
	return predicate.Analysis(sql.FieldNEQ(FieldOutcomeConfidence, v))
}

// OutcomeConfidenceIn applies the In predicate on the "outcome_confidence" field.
func OutcomeConfidenceIn(vs ...float64) predicate.Analysis {
	return predicate.Analysis(sql.FieldIn(FieldOutcomeConfidence, vs...))
}

// OutcomeConfidenceNotIn applies the NotIn predicate on the "outcome_confidence" field.
func OutcomeConfidenceNotIn(vs ...float64) predicate.Analysis {
	return predicate.Analysis(sql.FieldNotIn(FieldOutcomeConfidence, vs...))
}

// OutcomeConfidenceGT applies the GT predicate on the "outcome_confidence" field.
func OutcomeConfidenceGT(v float64) predicate.Analysis {
	return predicate.Analysis(sql.FieldGT(FieldOutcomeConfidence, v))
}

// OutcomeConfidenceGTE applies the GTE predicate on the "outcome_confidence" field.
func OutcomeConfidenceGTE(v float64) predicate.Analysis {
	return predicate.Analysis(sql.FieldGTE(FieldOutcomeConfidence, v))
}

// OutcomeConfidenceLT applies the LT predicate on the "outcome_confidence" field.
func OutcomeConfidenceLT(v float64) predicate.Analysis {
	return predicate.Analysis(sql.FieldLT(FieldOutcomeConfidence, v))
}

// OutcomeConfidenceLTE applies the LTE predicate on the "outcome_confidence" field.
func OutcomeConfidenceLTE(v float64) predicate.Analysis {
	return predicate.Analysis(sql.FieldLTE(FieldOutcomeConfidence, v))
}

// OutcomeConfidenceIsNil applies the IsNil predicate on the "outcome_confidence" field.
func OutcomeConfidenceIsNil() predicate.Analysis {
	return predicate.Analysis(sql.FieldIsNull(FieldOutcomeConfidence))
}

// OutcomeConfidenceNotNil applies the NotNil predicate on the "outcome_confidence" field.
func OutcomeConfidenceNotNil() predicate.Analysis {
	return predicate.Analysis(sql.FieldNotNull(FieldOutcomeConfidence))
}

// RiskFactorsIsNil applies the IsNil predicate on the "risk_factors" field.
func RiskFactorsIsNil() predicate.Analysis {
	return predicate.Analysis(sql.FieldIsNull(FieldRiskFactors))
}

// RiskFactorsNotNil applies the NotNil predicate on the "risk_factors" field.
func RiskFactorsNotNil() predicate.Analysis {
	return predicate.Analysis(sql.FieldNotNull(FieldRiskFactors))
}

// ActionItemsIsNil applies the IsNil predicate on the "action_items" field.
func ActionItemsIsNil() predicate.Analysis {
	return predicate.Analysis(sql.FieldIsNull(FieldActionItems))
}

// ActionItemsNotNil applies the NotNil predicate on the "action_items" field.
func ActionItemsNotNil() predicate.Analysis {
	return predicate.Analysis(sql.FieldNotNull(FieldActionItems))
}

// QuotesIsNil applies the IsNil predicate on the "quotes" field.
func QuotesIsNil() predicate.Analysis {
	return predicate.Analysis(sql.FieldIsNull(FieldQuotes))
}

// QuotesNotNil applies the NotNil predicate on the "quotes" field.
func QuotesNotNil() predicate.Analysis {
	return predicate.Analysis(sql.FieldNotNull(FieldQuotes))
}

// TopicsIsNil applies the IsNil predicate on the "topics" field.
func TopicsIsNil() predicate.Analysis {
	return predicate.Analysis(sql.FieldIsNull(FieldTopics))
}

// TopicsNotNil applies the NotNil predicate on the "topics" field.
func TopicsNotNil() predicate.Analysis {
	return predicate.Analysis(sql.FieldNotNull(FieldTopics))
}

// UtilitiesIsNil applies the IsNil predicate on the "utilities" field.
func UtilitiesIsNil() predicate.Analysis {
	return predicate.Analysis(sql.FieldIsNull(FieldUtilities))
}

// UtilitiesNotNil applies the NotNil predicate on the "utilities" field.
func UtilitiesNotNil() predicate.Analysis {
	return predicate.Analysis(sql.FieldNotNull(FieldUtilities))
}

// DocketsIsNil applies the IsNil predicate on the "dockets" field.
func DocketsIsNil() predicate.Analysis {
	return predicate.Analysis(sql.FieldIsNull(FieldDockets))
}

// DocketsNotNil applies the NotNil predicate on the "dockets" field.
func DocketsNotNil() predicate.Analysis {
	return predicate.Analysis(sql.FieldNotNull(FieldDockets))
}

// RawOutputIsNil applies the IsNil predicate on the "raw_output" field.
func RawOutputIsNil() predicate.Analysis {
	return predicate.Analysis(sql.FieldIsNull(FieldRawOutput))
}

// RawOutputNotNil applies the NotNil predicate on the "raw_output" field.
func RawOutputNotNil() predicate.Analysis {
	return predicate.Analysis(sql.FieldNotNull(FieldRawOutput))
}

// ModelEQ applies the EQ predicate on the "model" field.
func ModelEQ(v string) predicate.Analysis {
	return predicate.Analysis(sql.FieldEQ(FieldModel, v))
}

// ModelNEQ applies the NEQ predicate on the "model" field.
func ModelNEQ(v string) predicate.Analysis {
	return predicate.Analysis(sql.FieldNEQ(FieldModel, v))
}

// ModelIn applies the In predicate on the "model" field.
func ModelIn(vs ...string) predicate.Analysis {
	return predicate.Analysis(sql.FieldIn(FieldModel, vs...))
}

// ModelNotIn applies the NotIn predicate on the "model" field.
func ModelNotIn(vs ...string) predicate.Analysis {
	return predicate.Analysis(sql.FieldNotIn(FieldModel, vs...))
}

// ModelGT applies the GT predicate on the "model" field.
func ModelGT(v string) predicate.Analysis {
	return predicate.Analysis(sql.FieldGT(FieldModel, v))
}

// ModelGTE applies the GTE predicate on the "model" field.
func ModelGTE(v string) predicate.Analysis {
	return predicate.Analysis(sql.FieldGTE(FieldModel, v))
}

// ModelLT applies the LT predicate on the "model" field.
func ModelLT(v string) predicate.Analysis {
	return predicate.Analysis(sql.FieldLT(FieldModel, v))
}

// ModelLTE applies the LTE predicate on the "model" field.
func ModelLTE(v string) predicate.Analysis {
	return predicate.Analysis(sql.FieldLTE(FieldModel, v))
}

// ModelContains applies the Contains predicate on the "model" field.
func ModelContains(v string) predicate.Analysis {
	return predicate.Analysis(sql.FieldContains(FieldModel, v))
}

// ModelHasPrefix applies the HasPrefix predicate on the "model" field.
func ModelHasPrefix(v string) predicate.Analysis {
	return predicate.Analysis(sql.FieldHasPrefix(FieldModel, v))
}

// ModelHasSuffix applies the HasSuffix predicate on the "model" field.
func ModelHasSuffix(v string) predicate.Analysis {
	return predicate.Analysis(sql.FieldHasSuffix(FieldModel, v))
}

// ModelIsNil applies the IsNil predicate on the "model" field.
func ModelIsNil() predicate.Analysis {
	return predicate.Analysis(sql.FieldIsNull(FieldModel))
}

// ModelNotNil applies the NotNil predicate on the "model" field.
func ModelNotNil() predicate.Analysis {
	return predicate.Analysis(sql.FieldNotNull(FieldModel))
}

// ModelEqualFold applies the EqualFold predicate on the "model" field.
func ModelEqualFold(v string) predicate.Analysis {
	return predicate.Analysis(sql.FieldEqualFold(FieldModel, v))
}

// ModelContainsFold applies the ContainsFold predicate on the "model" field.
func ModelContainsFold(v string) predicate.Analysis {
	return predicate.Analysis(sql.FieldContainsFold(FieldModel, v))
}

// CostUsdEQ applies the EQ predicate on the "cost_usd" field.
func CostUsdEQ(v float64) predicate.Analysis {
	return predicate.Analysis(sql.FieldEQ(FieldCostUsd, v))
}

// CostUsdNEQ applies the NEQ predicate on the "cost_usd" field.
func CostUsdNEQ(v float64) predicate.Analysis {
	return predicate.Analysis(sql.FieldNEQ(FieldCostUsd, v))
}

// CostUsdIn applies the In predicate on the "cost_usd" field.
func CostUsdIn(vs ...float64) predicate.Analysis {
	return predicate.Analysis(sql.FieldIn(FieldCostUsd, vs...))
}

// CostUsdNotIn applies the NotIn predicate on the "cost_usd" field.
func CostUsdNotIn(vs ...float64) predicate.Analysis {
	return predicate.Analysis(sql.FieldNotIn(FieldCostUsd, vs...))
}

// CostUsdGT applies the GT predicate on the "cost_usd" field.
func CostUsdGT(v float64) predicate.Analysis {
	return predicate.Analysis(sql.FieldGT(FieldCostUsd, v))
}

// CostUsdGTE applies the GTE predicate on the "cost_usd" field.
func CostUsdGTE(v float64) predicate.Analysis {
	return predicate.Analysis(sql.FieldGTE(FieldCostUsd, v))
}

// CostUsdLT applies the LT predicate on the "cost_usd" field.
func CostUsdLT(v float64) predicate.Analysis {
	return predicate.Analysis(sql.FieldLT(FieldCostUsd, v))
}

// CostUsdLTE applies the LTE predicate on the "cost_usd" field.
func CostUsdLTE(v float64) predicate.Analysis {
	return predicate.Analysis(sql.FieldLTE(FieldCostUsd, v))
}

// HasHearing applies the HasEdge predicate on the "hearing" edge.
func HasHearing() predicate.Analysis {
	return predicate.Analysis(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2O, true, HearingTable, HearingColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasHearingWith applies the HasEdge predicate on the "hearing" edge with a given conditions (other predicates).
func HasHearingWith(preds ...predicate.Hearing) predicate.Analysis {
	return predicate.Analysis(func(s *sql.Selector) {
		step := newHearingStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Analysis) predicate.Analysis {
	return predicate.Analysis(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Analysis) predicate.Analysis {
	return predicate.Analysis(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Analysis) predicate.Analysis {
	return predicate.Analysis(sql.NotPredicates(p))
}
