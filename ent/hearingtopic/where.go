// Code generated by ent, DO NOT EDIT.

package hearingtopic

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/canaryscope/canaryscope/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.HearingTopic {
	return predicate.HearingTopic(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.HearingTopic {
	return predicate.HearingTopic(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.HearingTopic {
	return predicate.HearingTopic(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.HearingTopic {
	return predicate.HearingTopic(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.HearingTopic {
	return predicate.HearingTopic(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.HearingTopic {
	return predicate.HearingTopic(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.HearingTopic {
	return predicate.HearingTopic(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.HearingTopic {
	return predicate.HearingTopic(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.HearingTopic {
	return predicate.HearingTopic(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.HearingTopic {
	return predicate.HearingTopic(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.HearingTopic {
	return predicate.HearingTopic(sql.FieldContainsFold(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.HearingTopic {
	return predicate.HearingTopic(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.HearingTopic {
	return predicate.HearingTopic(sql.FieldEQ(FieldUpdatedAt, v))
}

// HearingID applies equality check predicate on the "hearing_id" field. It's identical to HearingIDEQ.
func HearingID(v string) predicate.HearingTopic {
	return predicate.HearingTopic(sql.FieldEQ(FieldHearingID, v))
}

// TopicID applies equality check predicate on the "topic_id" field. It's identical to TopicIDEQ.
func TopicID(v string) predicate.HearingTopic {
	return predicate.HearingTopic(sql.FieldEQ(FieldTopicID, v))
}

// RawName applies equality check predicate on the "raw_name" field. It's identical to RawNameEQ.
func RawName(v string) predicate.HearingTopic {
	return predicate.HearingTopic(sql.FieldEQ(FieldRawName, v))
}

// Relevance applies equality check predicate on the "relevance" field. It's identical to RelevanceEQ.
func Relevance(v string) predicate.HearingTopic {
	return predicate.HearingTopic(sql.FieldEQ(FieldRelevance, v))
}

// Confidence applies equality check predicate on the "confidence" field. It's identical to ConfidenceEQ.
func Confidence(v float64) predicate.HearingTopic {
	return predicate.HearingTopic(sql.FieldEQ(FieldConfidence, v))
}

// NeedsReview applies equality check predicate on the "needs_review" field. It's identical to NeedsReviewEQ.
func NeedsReview(v bool) predicate.HearingTopic {
	return predicate.HearingTopic(sql.FieldEQ(FieldNeedsReview, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.HearingTopic {
	return predicate.HearingTopic(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.HearingTopic {
	return predicate.HearingTopic(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.HearingTopic {
	return predicate.HearingTopic(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.HearingTopic {
	return predicate.HearingTopic(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.HearingTopic {
	return predicate.HearingTopic(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.HearingTopic {
	return predicate.HearingTopic(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.HearingTopic {
	return predicate.HearingTopic(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.HearingTopic {
	return predicate.HearingTopic(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.HearingTopic {
	return predicate.HearingTopic(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.HearingTopic {
	return predicate.HearingTopic(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.HearingTopic {
	return predicate.HearingTopic(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.HearingTopic {
	return predicate.HearingTopic(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.HearingTopic {
	return predicate.HearingTopic(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.HearingTopic {
	return predicate.HearingTopic(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.HearingTopic {
	return predicate.HearingTopic(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.HearingTopic {
	return predicate.HearingTopic(sql.FieldLTE(FieldUpdatedAt, v))
}

// HearingIDEQ applies the EQ predicate on the "hearing_id" field.
func HearingIDEQ(v string) predicate.HearingTopic {
	return predicate.HearingTopic(sql.FieldEQ(FieldHearingID, v))
}

// HearingIDNEQ applies the NEQ predicate on the "hearing_id" field.
func HearingIDNEQ(v string) predicate.HearingTopic {
	return predicate.HearingTopic(sql.FieldNEQ(FieldHearingID, v))
}

// HearingIDIn applies the In predicate on the "hearing_id" field.
func HearingIDIn(vs ...string) predicate.HearingTopic {
	return predicate.HearingTopic(sql.FieldIn(FieldHearingID, vs...))
}

// HearingIDNotIn applies the NotIn predicate on the "hearing_id" field.
func HearingIDNotIn(vs ...string) predicate.HearingTopic {
	return predicate.HearingTopic(sql.FieldNotIn(FieldHearingID, vs...))
}

// HearingIDGT applies the GT predicate on the "hearing_id" field.
func HearingIDGT(v string) predicate.HearingTopic {
	return predicate.HearingTopic(sql.FieldGT(FieldHearingID, v))
}

// HearingIDGTE applies the GTE predicate on the "hearing_id" field.
func HearingIDGTE(v string) predicate.HearingTopic {
	return predicate.HearingTopic(sql.FieldGTE(FieldHearingID, v))
}

// HearingIDLT applies the LT predicate on the "hearing_id" field.
func HearingIDLT(v string) predicate.HearingTopic {
	return predicate.HearingTopic(sql.FieldLT(FieldHearingID, v))
}

// HearingIDLTE applies the LTE predicate on the "hearing_id" field.
func HearingIDLTE(v string) predicate.HearingTopic {
	return predicate.HearingTopic(sql.FieldLTE(FieldHearingID, v))
}

// HearingIDContains applies the Contains predicate on the "hearing_id" field.
func HearingIDContains(v string) predicate.HearingTopic {
	return predicate.HearingTopic(sql.FieldContains(FieldHearingID, v))
}

// HearingIDHasPrefix applies the HasPrefix predicate on the "hearing_id" field.
func HearingIDHasPrefix(v string) predicate.HearingTopic {
	return predicate.HearingTopic(sql.FieldHasPrefix(FieldHearingID, v))
}

// HearingIDHasSuffix applies the HasSuffix predicate on the "hearing_id" field.
func HearingIDHasSuffix(v string) predicate.HearingTopic {
	return predicate.HearingTopic(sql.FieldHasSuffix(FieldHearingID, v))
}

// HearingIDEqualFold applies the EqualFold predicate on the "hearing_id" field.
func HearingIDEqualFold(v string) predicate.HearingTopic {
	return predicate.HearingTopic(sql.FieldEqualFold(FieldHearingID, v))
}

// HearingIDContainsFold applies the ContainsFold predicate on the "hearing_id" field.
func HearingIDContainsFold(v string) predicate.HearingTopic {
	return predicate.HearingTopic(sql.FieldContainsFold(FieldHearingID, v))
}

// TopicIDEQ applies the EQ predicate on the "topic_id" field.
func TopicIDEQ(v string) predicate.HearingTopic {
	return predicate.HearingTopic(sql.FieldEQ(FieldTopicID, v))
}

// TopicIDNEQ applies the NEQ predicate on the "topic_id" field.
func TopicIDNEQ(v string) predicate.HearingTopic {
	return predicate.HearingTopic(sql.FieldNEQ(FieldTopicID, v))
}

// TopicIDIn applies the In predicate on the "topic_id" field.
func TopicIDIn(vs ...string) predicate.HearingTopic {
	return predicate.HearingTopic(sql.FieldIn(FieldTopicID, vs...))
}

// TopicIDNotIn applies the NotIn predicate on the "topic_id" field.
func TopicIDNotIn(vs ...string) predicate.HearingTopic {
	return predicate.HearingTopic(sql.FieldNotIn(FieldTopicID, vs...))
}

// TopicIDGT applies the GT predicate on the "topic_id" field.
func TopicIDGT(v string) predicate.HearingTopic {
	return predicate.HearingTopic(sql.FieldGT(FieldTopicID, v))
}

// TopicIDGTE applies the GTE predicate on the "topic_id" field.
func TopicIDGTE(v string) predicate.HearingTopic {
	return predicate.HearingTopic(sql.FieldGTE(FieldTopicID, v))
}

// TopicIDLT applies the LT predicate on the "topic_id" field.
func TopicIDLT(v string) predicate.HearingTopic {
	return predicate.HearingTopic(sql.FieldLT(FieldTopicID, v))
}

// TopicIDLTE applies the LTE predicate on the "topic_id" field.
func TopicIDLTE(v string) predicate.HearingTopic {
	return predicate.HearingTopic(sql.FieldLTE(FieldTopicID, v))
}

// TopicIDContains applies the Contains predicate on the "topic_id" field.
func TopicIDContains(v string) predicate.HearingTopic {
	return predicate.HearingTopic(sql.FieldContains(FieldTopicID, v))
}

// TopicIDHasPrefix applies the HasPrefix predicate on the "topic_id" field.
func TopicIDHasPrefix(v string) predicate.HearingTopic {
	return predicate.HearingTopic(sql.FieldHasPrefix(FieldTopicID, v))
}

// TopicIDHasSuffix applies the HasSuffix predicate on the "topic_id" field.
func TopicIDHasSuffix(v string) predicate.HearingTopic {
	return predicate.HearingTopic(sql.FieldHasSuffix(FieldTopicID, v))
}

// TopicIDIsNil applies the IsNil predicate on the "topic_id" field.
func TopicIDIsNil() predicate.HearingTopic {
	return predicate.HearingTopic(sql.FieldIsNull(FieldTopicID))
}

// TopicIDNotNil applies the NotNil predicate on the "topic_id" field.
func TopicIDNotNil() predicate.HearingTopic {
	return predicate.HearingTopic(sql.FieldNotNull(FieldTopicID))
}

// TopicIDEqualFold applies the EqualFold predicate on the "topic_id" field.
func TopicIDEqualFold(v string) predicate.HearingTopic {
	return predicate.HearingTopic(sql.FieldEqualFold(FieldTopicID, v))
}

// TopicIDContainsFold applies the ContainsFold predicate on the "topic_id" field.
func TopicIDContainsFold(v string) predicate.HearingTopic {
	return predicate.HearingTopic(sql.FieldContainsFold(FieldTopicID, v))
}

// RawNameEQ applies the EQ predicate on the "raw_name" field.
func RawNameEQ(v string) predicate.HearingTopic {
	return predicate.HearingTopic(sql.FieldEQ(FieldRawName, v))
}

// RawNameNEQ applies the NEQ predicate on the "raw_name" field.
func RawNameNEQ(v string) predicate.HearingTopic {
	return predicate.HearingTopic(sql.FieldNEQ(FieldRawName, v))
}

// RawNameIn applies the In predicate on the "raw_name" field.
func RawNameIn(vs ...string) predicate.HearingTopic {
	return predicate.HearingTopic(sql.FieldIn(FieldRawName, vs...))
}

// RawNameNotIn applies the NotIn predicate on the "raw_name" field.
func RawNameNotIn(vs ...string) predicate.HearingTopic {
	return predicate.HearingTopic(sql.FieldNotIn(FieldRawName, vs...))
}

// RawNameGT applies the GT predicate on the "raw_name" field.
func RawNameGT(v string) predicate.HearingTopic {
	return predicate.HearingTopic(sql.FieldGT(FieldRawName, v))
}

// RawNameGTE applies the GTE predicate on the "raw_name" field.
func RawNameGTE(v string) predicate.HearingTopic {
	return predicate.HearingTopic(sql.FieldGTE(FieldRawName, v))
}

// RawNameLT applies the LT predicate on the "raw_name" field.
func RawNameLT(v string) predicate.HearingTopic {
	return predicate.HearingTopic(sql.FieldLT(FieldRawName, v))
}

// RawNameLTE applies the LTE predicate on the "raw_name" field.
func RawNameLTE(v string) predicate.HearingTopic {
	return predicate.HearingTopic(sql.FieldLTE(FieldRawName, v))
}

// RawNameContains applies the Contains predicate on the "raw_name" field.
func RawNameContains(v string) predicate.HearingTopic {
	return predicate.HearingTopic(sql.FieldContains(FieldRawName, v))
}

// RawNameHasPrefix applies the HasPrefix predicate on the "raw_name" field.
func RawNameHasPrefix(v string) predicate.HearingTopic {
	return predicate.HearingTopic(sql.FieldHasPrefix(FieldRawName, v))
}

// RawNameHasSuffix applies the HasSuffix predicate on the "raw_name" field.
func RawNameHasSuffix(v string) predicate.HearingTopic {
	return predicate.HearingTopic(sql.FieldHasSuffix(FieldRawName, v))
}

// RawNameEqualFold applies the EqualFold predicate on the "raw_name" field.
func RawNameEqualFold(v string) predicate.HearingTopic {
	return predicate.HearingTopic(sql.FieldEqualFold(FieldRawName, v))
}

// RawNameContainsFold applies the ContainsFold predicate on the "raw_name" field.
func RawNameContainsFold(v string) predicate.HearingTopic {
	return predicate.HearingTopic(sql.FieldContainsFold(FieldRawName, v))
}

// RelevanceEQ applies the EQ predicate on the "relevance" field.
func RelevanceEQ(v string) predicate.HearingTopic {
	return predicate.HearingTopic(sql.FieldEQ(FieldRelevance, v))
}

// RelevanceNEQ applies the NEQ predicate on the "relevance" field.
func RelevanceNEQ(v string) predicate.HearingTopic {
	return predicate.HearingTopic(sql.FieldNEQ(FieldRelevance, v))
}

// RelevanceIn applies the In predicate on the "relevance" field.
func RelevanceIn(vs ...string) predicate.HearingTopic {
	return predicate.HearingTopic(sql.FieldIn(FieldRelevance, vs...))
}

// RelevanceNotIn applies the NotIn predicate on the "relevance" field.
func RelevanceNotIn(vs ...string) predicate.HearingTopic {
	return predicate.HearingTopic(sql.FieldNotIn(FieldRelevance, vs...))
}

// RelevanceGT applies the GT predicate on the "relevance" field.
func RelevanceGT(v string) predicate.HearingTopic {
	return predicate.HearingTopic(sql.FieldGT(FieldRelevance, v))
}

// RelevanceGTE applies the GTE predicate on the "relevance" field.
func RelevanceGTE(v string) predicate.HearingTopic {
	return predicate.HearingTopic(sql.FieldGTE(FieldRelevance, v))
}

// RelevanceLT applies the LT predicate on the "relevance" field.
func RelevanceLT(v string) predicate.HearingTopic {
	return predicate.HearingTopic(sql.FieldLT(FieldRelevance, v))
}

// RelevanceLTE applies the LTE predicate on the "relevance" field.
func RelevanceLTE(v string) predicate.HearingTopic {
	return predicate.HearingTopic(sql.FieldLTE(FieldRelevance, v))
}

// RelevanceContains applies the Contains predicate on the "relevance" field.
func RelevanceContains(v string) predicate.HearingTopic {
	return predicate.HearingTopic(sql.FieldContains(FieldRelevance, v))
}

// RelevanceHasPrefix applies the HasPrefix predicate on the "relevance" field.
func RelevanceHasPrefix(v string) predicate.HearingTopic {
	return predicate.HearingTopic(sql.FieldHasPrefix(FieldRelevance, v))
}

// RelevanceHasSuffix applies the HasSuffix predicate on the "relevance" field.
func RelevanceHasSuffix(v string) predicate.HearingTopic {
	return predicate.HearingTopic(sql.FieldHasSuffix(FieldRelevance, v))
}

// RelevanceIsNil applies the IsNil predicate on the "relevance" field.
func RelevanceIsNil() predicate.HearingTopic {
	return predicate.HearingTopic(sql.FieldIsNull(FieldRelevance))
}

// RelevanceNotNil applies the NotNil predicate on the "relevance" field.
func RelevanceNotNil() predicate.HearingTopic {
	return predicate.HearingTopic(sql.FieldNotNull(FieldRelevance))
}

// RelevanceEqualFold applies the EqualFold predicate on the "relevance" field.
func RelevanceEqualFold(v string) predicate.HearingTopic {
	return predicate.HearingTopic(sql.FieldEqualFold(FieldRelevance, v))
}

// RelevanceContainsFold applies the ContainsFold predicate on the "relevance" field.
func RelevanceContainsFold(v string) predicate.HearingTopic {
	return predicate.HearingTopic(sql.FieldContainsFold(FieldRelevance, v))
}

// ConfidenceEQ applies the EQ predicate on the "confidence" field.
func ConfidenceEQ(v float64) predicate.HearingTopic {
	return predicate.HearingTopic(sql.FieldEQ(FieldConfidence, v))
}

// ConfidenceNEQ applies the NEQ predicate on the "confidence" field.
func ConfidenceNEQ(v float64) predicate.HearingTopic {
	return predicate.HearingTopic(sql.FieldNEQ(FieldConfidence, v))
}

// ConfidenceIn applies the In predicate on the "confidence" field.
func ConfidenceIn(vs ...float64) predicate.HearingTopic {
	return predicate.HearingTopic(sql.FieldIn(FieldConfidence, vs...))
}

// ConfidenceNotIn applies the NotIn predicate on the "confidence" field.
func ConfidenceNotIn(vs ...float64) predicate.HearingTopic {
	return predicate.HearingTopic(sql.FieldNotIn(FieldConfidence, vs...))
}

// ConfidenceGT applies the GT predicate on the "confidence" field.
func ConfidenceGT(v float64) predicate.HearingTopic {
	return predicate.HearingTopic(sql.FieldGT(FieldConfidence, v))
}

// ConfidenceGTE applies the GTE predicate on the "confidence" field.
func ConfidenceGTE(v float64) predicate.HearingTopic {
	return predicate.HearingTopic(sql.FieldGTE(FieldConfidence, v))
}

// ConfidenceLT applies the LT predicate on the "confidence" field.
func ConfidenceLT(v float64) predicate.HearingTopic {
	return predicate.HearingTopic(sql.FieldLT(FieldConfidence, v))
}

// ConfidenceLTE applies the LTE predicate on the "confidence" field.
func ConfidenceLTE(v float64) predicate.HearingTopic {
	return predicate.HearingTopic(sql.FieldLTE(FieldConfidence, v))
}

// NeedsReviewEQ applies the EQ predicate on the "needs_review" field.
func NeedsReviewEQ(v bool) predicate.HearingTopic {
	return predicate.HearingTopic(sql.FieldEQ(FieldNeedsReview, v))
}

// NeedsReviewNEQ applies the NEQ predicate on the "needs_review" field.
func NeedsReviewNEQ(v bool) predicate.HearingTopic {
	return predicate.HearingTopic(sql.FieldNEQ(FieldNeedsReview, v))
}

// HasHearing applies the HasEdge predicate on the "hearing" edge.
func HasHearing() predicate.HearingTopic {
	return predicate.HearingTopic(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, HearingTable, HearingColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasHearingWith applies the HasEdge predicate on the "hearing" edge with a given conditions (other predicates).
func HasHearingWith(preds ...predicate.Hearing) predicate.HearingTopic {
	return predicate.HearingTopic(func(s *sql.Selector) {
		step := newHearingStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasTopic applies the HasEdge predicate on the "topic" edge.
func HasTopic() predicate.HearingTopic {
	return predicate.HearingTopic(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, TopicTable, TopicColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasTopicWith applies the HasEdge predicate on the "topic" edge with a given conditions (other predicates).
func HasTopicWith(preds ...predicate.Topic) predicate.HearingTopic {
	return predicate.HearingTopic(func(s *sql.Selector) {
		step := newTopicStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.HearingTopic) predicate.HearingTopic {
	return predicate.HearingTopic(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.HearingTopic) predicate.HearingTopic {
	return predicate.HearingTopic(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.HearingTopic) predicate.HearingTopic {
	return predicate.HearingTopic(sql.NotPredicates(p))
}
