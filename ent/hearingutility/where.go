// Code generated by ent, DO NOT EDIT.

package hearingutility

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/canaryscope/canaryscope/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.HearingUtility {
	return predicate.HearingUtility(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.HearingUtility {
	return predicate.HearingUtility(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.HearingUtility {
	return predicate.HearingUtility(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.HearingUtility {
	return predicate.HearingUtility(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.HearingUtility {
	return predicate.HearingUtility(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.HearingUtility {
	return predicate.HearingUtility(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.HearingUtility {
	return predicate.HearingUtility(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.HearingUtility {
	return predicate.HearingUtility(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.HearingUtility {
	return predicate.HearingUtility(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.HearingUtility {
	return predicate.HearingUtility(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.HearingUtility {
	return predicate.HearingUtility(sql.FieldContainsFold(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.HearingUtility {
	return predicate.HearingUtility(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.HearingUtility {
	return predicate.HearingUtility(sql.FieldEQ(FieldUpdatedAt, v))
}

// HearingID applies equality check predicate on the "hearing_id" field. It's identical to HearingIDEQ.
func HearingID(v string) predicate.HearingUtility {
	return predicate.HearingUtility(sql.FieldEQ(FieldHearingID, v))
}

// UtilityID applies equality check predicate on the "utility_id" field. It's identical to UtilityIDEQ.
func UtilityID(v string) predicate.HearingUtility {
	return predicate.HearingUtility(sql.FieldEQ(FieldUtilityID, v))
}

// RawName applies equality check predicate on the "raw_name" field. It's identical to RawNameEQ.
func RawName(v string) predicate.HearingUtility {
	return predicate.HearingUtility(sql.FieldEQ(FieldRawName, v))
}

// Role applies equality check predicate on the "role" field. It's identical to RoleEQ.
func Role(v string) predicate.HearingUtility {
	return predicate.HearingUtility(sql.FieldEQ(FieldRole, v))
}

// Confidence applies equality check predicate on the "confidence" field. It's identical to ConfidenceEQ.
func Confidence(v float64) predicate.HearingUtility {
	return predicate.HearingUtility(sql.FieldEQ(FieldConfidence, v))
}

// NeedsReview applies equality check predicate on the "needs_review" field. It's identical to NeedsReviewEQ.
func NeedsReview(v bool) predicate.HearingUtility {
	return predicate.HearingUtility(sql.FieldEQ(FieldNeedsReview, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.HearingUtility {
	return predicate.HearingUtility(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.HearingUtility {
	return predicate.HearingUtility(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.HearingUtility {
	return predicate.HearingUtility(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.HearingUtility {
	return predicate.HearingUtility(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.HearingUtility {
	return predicate.HearingUtility(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.HearingUtility {
	return predicate.HearingUtility(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.HearingUtility {
	return predicate.HearingUtility(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.HearingUtility {
	return predicate.HearingUtility(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.HearingUtility {
	return predicate.HearingUtility(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.HearingUtility {
	return predicate.HearingUtility(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.HearingUtility {
	return predicate.HearingUtility(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.HearingUtility {
	return predicate.HearingUtility(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.HearingUtility {
	return predicate.HearingUtility(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.HearingUtility {
	return predicate.HearingUtility(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.HearingUtility {
	return predicate.HearingUtility(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.HearingUtility {
	return predicate.HearingUtility(sql.FieldLTE(FieldUpdatedAt, v))
}

// HearingIDEQ applies the EQ predicate on the "hearing_id" field.
func HearingIDEQ(v string) predicate.HearingUtility {
	return predicate.HearingUtility(sql.FieldEQ(FieldHearingID, v))
}

// HearingIDNEQ applies the NEQ predicate on the "hearing_id" field.
func HearingIDNEQ(v string) predicate.HearingUtility {
	return predicate.HearingUtility(sql.FieldNEQ(FieldHearingID, v))
}

// HearingIDIn applies the In predicate on the "hearing_id" field.
func HearingIDIn(vs ...string) predicate.HearingUtility {
	return predicate.HearingUtility(sql.FieldIn(FieldHearingID, vs...))
}

// HearingIDNotIn applies the NotIn predicate on the "hearing_id" field.
func HearingIDNotIn(vs ...string) predicate.HearingUtility {
	return predicate.HearingUtility(sql.FieldNotIn(FieldHearingID, vs...))
}

// HearingIDGT applies the GT predicate on the "hearing_id" field.
func HearingIDGT(v string) predicate.HearingUtility {
	return predicate.HearingUtility(sql.FieldGT(FieldHearingID, v))
}

// HearingIDGTE applies the GTE predicate on the "hearing_id" field.
func HearingIDGTE(v string) predicate.HearingUtility {
	return predicate.HearingUtility(sql.FieldGTE(FieldHearingID, v))
}

// HearingIDLT applies the LT predicate on the "hearing_id" field.
func HearingIDLT(v string) predicate.HearingUtility {
	return predicate.HearingUtility(sql.FieldLT(FieldHearingID, v))
}

// HearingIDLTE applies the LTE predicate on the "hearing_id" field.
func HearingIDLTE(v string) predicate.HearingUtility {
	return predicate.HearingUtility(sql.FieldLTE(FieldHearingID, v))
}

// HearingIDContains applies the Contains predicate on the "hearing_id" field.
func HearingIDContains(v string) predicate.HearingUtility {
	return predicate.HearingUtility(sql.FieldContains(FieldHearingID, v))
}

// HearingIDHasPrefix applies the HasPrefix predicate on the "hearing_id" field.
func HearingIDHasPrefix(v string) predicate.HearingUtility {
	return predicate.HearingUtility(sql.FieldHasPrefix(FieldHearingID, v))
}

// HearingIDHasSuffix applies the HasSuffix predicate on the "hearing_id" field.
func HearingIDHasSuffix(v string) predicate.HearingUtility {
	return predicate.HearingUtility(sql.FieldHasSuffix(FieldHearingID, v))
}

// HearingIDEqualFold applies the EqualFold predicate on the "hearing_id" field.
func HearingIDEqualFold(v string) predicate.HearingUtility {
	return predicate.HearingUtility(sql.FieldEqualFold(FieldHearingID, v))
}

// HearingIDContainsFold applies the ContainsFold predicate on the "hearing_id" field.
func HearingIDContainsFold(v string) predicate.HearingUtility {
	return predicate.HearingUtility(sql.FieldContainsFold(FieldHearingID, v))
}

// UtilityIDEQ applies the EQ predicate on the "utility_id" field.
func UtilityIDEQ(v string) predicate.HearingUtility {
	return predicate.HearingUtility(sql.FieldEQ(FieldUtilityID, v))
}

// UtilityIDNEQ applies the NEQ predicate on the "utility_id" field.
func UtilityIDNEQ(v string) predicate.HearingUtility {
	return predicate.HearingUtility(sql.FieldNEQ(FieldUtilityID, v))
}

// UtilityIDIn applies the In predicate on the "utility_id" field.
func UtilityIDIn(vs ...string) predicate.HearingUtility {
	return predicate.HearingUtility(sql.FieldIn(FieldUtilityID, vs...))
}

// UtilityIDNotIn applies the NotIn predicate on the "utility_id" field.
func UtilityIDNotIn(vs ...string) predicate.HearingUtility {
	return predicate.HearingUtility(sql.FieldNotIn(FieldUtilityID, vs...))
}

// UtilityIDGT applies the GT predicate on the "utility_id" field.
func UtilityIDGT(v string) predicate.HearingUtility {
	return predicate.HearingUtility(sql.FieldGT(FieldUtilityID, v))
}

// UtilityIDGTE applies the GTE predicate on the "utility_id" field.
func UtilityIDGTE(v string) predicate.HearingUtility {
	return predicate.HearingUtility(sql.FieldGTE(FieldUtilityID, v))
}

// UtilityIDLT applies the LT predicate on the "utility_id" field.
func UtilityIDLT(v string) predicate.HearingUtility {
	return predicate.HearingUtility(sql.FieldLT(FieldUtilityID, v))
}

// UtilityIDLTE applies the LTE predicate on the "utility_id" field.
func UtilityIDLTE(v string) predicate.HearingUtility {
	return predicate.HearingUtility(sql.FieldLTE(FieldUtilityID, v))
}

// UtilityIDContains applies the Contains predicate on the "utility_id" field.
func UtilityIDContains(v string) predicate.HearingUtility {
	return predicate.HearingUtility(sql.FieldContains(FieldUtilityID, v))
}

// UtilityIDHasPrefix applies the HasPrefix predicate on the "utility_id" field.
func UtilityIDHasPrefix(v string) predicate.HearingUtility {
	return predicate.HearingUtility(sql.FieldHasPrefix(FieldUtilityID, v))
}

// UtilityIDHasSuffix applies the HasSuffix predicate on the "utility_id" field.
func UtilityIDHasSuffix(v string) predicate.HearingUtility {
	return predicate.HearingUtility(sql.FieldHasSuffix(FieldUtilityID, v))
}

// UtilityIDIsNil applies the IsNil predicate on the "utility_id" field.
func UtilityIDIsNil() predicate.HearingUtility {
	return predicate.HearingUtility(sql.FieldIsNull(FieldUtilityID))
}

// UtilityIDNotNil applies the NotNil predicate on the "utility_id" field.
func UtilityIDNotNil() predicate.HearingUtility {
	return predicate.HearingUtility(sql.FieldNotNull(FieldUtilityID))
}

// UtilityIDEqualFold applies the EqualFold predicate on the "utility_id" field.
func UtilityIDEqualFold(v string) predicate.HearingUtility {
	return predicate.HearingUtility(sql.FieldEqualFold(FieldUtilityID, v))
}

// UtilityIDContainsFold applies the ContainsFold predicate on the "utility_id" field.
func UtilityIDContainsFold(v string) predicate.HearingUtility {
	return predicate.HearingUtility(sql.FieldContainsFold(FieldUtilityID, v))
}

// RawNameEQ applies the EQ predicate on the "raw_name" field.
func RawNameEQ(v string) predicate.HearingUtility {
	return predicate.HearingUtility(sql.FieldEQ(FieldRawName, v))
}

// RawNameNEQ applies the NEQ predicate on the "raw_name" field.
func RawNameNEQ(v string) predicate.HearingUtility {
	return predicate.HearingUtility(sql.FieldNEQ(FieldRawName, v))
}

// RawNameIn applies the In predicate on the "raw_name" field.
func RawNameIn(vs ...string) predicate.HearingUtility {
	return predicate.HearingUtility(sql.FieldIn(FieldRawName, vs...))
}

// RawNameNotIn applies the NotIn predicate on the "raw_name" field.
func RawNameNotIn(vs ...string) predicate.HearingUtility {
	return predicate.HearingUtility(sql.FieldNotIn(FieldRawName, vs...))
}

// RawNameGT applies the GT predicate on the "raw_name" field.
func RawNameGT(v string) predicate.HearingUtility {
	return predicate.HearingUtility(sql.FieldGT(FieldRawName, v))
}

// RawNameGTE applies the GTE predicate on the "raw_name" field.
func RawNameGTE(v string) predicate.HearingUtility {
	return predicate.HearingUtility(sql.FieldGTE(FieldRawName, v))
}

// RawNameLT applies the LT predicate on the "raw_name" field.
func RawNameLT(v string) predicate.HearingUtility {
	return predicate.HearingUtility(sql.FieldLT(FieldRawName, v))
}

// RawNameLTE applies the LTE predicate on the "raw_name" field.
func RawNameLTE(v string) predicate.HearingUtility {
	return predicate.HearingUtility(sql.FieldLTE(FieldRawName, v))
}

// RawNameContains applies the Contains predicate on the "raw_name" field.
func RawNameContains(v string) predicate.HearingUtility {
	return predicate.HearingUtility(sql.FieldContains(FieldRawName, v))
}

// RawNameHasPrefix applies the HasPrefix predicate on the "raw_name" field.
func RawNameHasPrefix(v string) predicate.HearingUtility {
	return predicate.HearingUtility(sql.FieldHasPrefix(FieldRawName, v))
}

// RawNameHasSuffix applies the HasSuffix predicate on the "raw_name" field.
func RawNameHasSuffix(v string) predicate.HearingUtility {
	return predicate.HearingUtility(sql.FieldHasSuffix(FieldRawName, v))
}

// RawNameEqualFold applies the EqualFold predicate on the "raw_name" field.
func RawNameEqualFold(v string) predicate.HearingUtility {
	return predicate.HearingUtility(sql.FieldEqualFold(FieldRawName, v))
}

// RawNameContainsFold applies the ContainsFold predicate on the "raw_name" field.
func RawNameContainsFold(v string) predicate.HearingUtility {
	return predicate.HearingUtility(sql.FieldContainsFold(FieldRawName, v))
}

// RoleEQ applies the EQ predicate on the "role" field.
func RoleEQ(v string) predicate.HearingUtility {
	return predicate.HearingUtility(sql.FieldEQ(FieldRole, v))
}

// RoleNEQ applies the NEQ predicate on the "role" field.
func RoleNEQ(v string) predicate.HearingUtility {
	return predicate.HearingUtility(sql.FieldNEQ(FieldRole, v))
}

// RoleIn applies the In predicate on the "role" field.
func RoleIn(vs ...string) predicate.HearingUtility {
	return predicate.HearingUtility(sql.FieldIn(FieldRole, vs...))
}

// RoleNotIn applies the NotIn predicate on the "role" field.
func RoleNotIn(vs ...string) predicate.HearingUtility {
	return predicate.HearingUtility(sql.FieldNotIn(FieldRole, vs...))
}

// RoleGT applies the GT predicate on the "role" field.
func RoleGT(v string) predicate.HearingUtility {
	return predicate.HearingUtility(sql.FieldGT(FieldRole, v))
}

// RoleGTE applies the GTE predicate on the "role" field.
func RoleGTE(v string) predicate.HearingUtility {
	return predicate.HearingUtility(sql.FieldGTE(FieldRole, v))
}

// RoleLT applies the LT predicate on the "role" field.
func RoleLT(v string) predicate.HearingUtility {
	return predicate.HearingUtility(sql.FieldLT(FieldRole, v))
}

// RoleLTE applies the LTE predicate on the "role" field.
func RoleLTE(v string) predicate.HearingUtility {
	return predicate.HearingUtility(sql.FieldLTE(FieldRole, v))
}

// RoleContains applies the Contains predicate on the "role" field.
func RoleContains(v string) predicate.HearingUtility {
	return predicate.HearingUtility(sql.FieldContains(FieldRole, v))
}

// RoleHasPrefix applies the HasPrefix predicate on the "role" field.
func RoleHasPrefix(v string) predicate.HearingUtility {
	return predicate.HearingUtility(sql.FieldHasPrefix(FieldRole, v))
}

// RoleHasSuffix applies the HasSuffix predicate on the "role" field.
func RoleHasSuffix(v string) predicate.HearingUtility {
	return predicate.HearingUtility(sql.FieldHasSuffix(FieldRole, v))
}

// RoleIsNil applies the IsNil predicate on the "role" field.
func RoleIsNil() predicate.HearingUtility {
	return predicate.HearingUtility(sql.FieldIsNull(FieldRole))
}

// RoleNotNil applies the NotNil predicate on the "role" field.
func RoleNotNil() predicate.HearingUtility {
	return predicate.HearingUtility(sql.FieldNotNull(FieldRole))
}

// RoleEqualFold applies the EqualFold predicate on the "role" field.
func RoleEqualFold(v string) predicate.HearingUtility {
	return predicate.HearingUtility(sql.FieldEqualFold(FieldRole, v))
}

// RoleContainsFold applies the ContainsFold predicate on the "role" field.
func RoleContainsFold(v string) predicate.HearingUtility {
	return predicate.HearingUtility(sql.FieldContainsFold(FieldRole, v))
}

// ConfidenceEQ applies the EQ predicate on the "confidence" field.
func ConfidenceEQ(v float64) predicate.HearingUtility {
	return predicate.HearingUtility(sql.FieldEQ(FieldConfidence, v))
}

// ConfidenceNEQ applies the NEQ predicate on the "confidence" field.
func ConfidenceNEQ(v float64) predicate.HearingUtility {
	return predicate.HearingUtility(sql.FieldNEQ(FieldConfidence, v))
}

// ConfidenceIn applies the In predicate on the "confidence" field.
func ConfidenceIn(vs ...float64) predicate.HearingUtility {
	return predicate.HearingUtility(sql.FieldIn(FieldConfidence, vs...))
}

// ConfidenceNotIn applies the NotIn predicate on the "confidence" field.
func ConfidenceNotIn(vs ...float64) predicate.HearingUtility {
	return predicate.HearingUtility(sql.FieldNotIn(FieldConfidence, vs...))
}

// ConfidenceGT applies the GT predicate on the "confidence" field.
func ConfidenceGT(v float64) predicate.HearingUtility {
	return predicate.HearingUtility(sql.FieldGT(FieldConfidence, v))
}

// ConfidenceGTE applies the GTE predicate on the "confidence" field.
func ConfidenceGTE(v float64) predicate.HearingUtility {
	return predicate.HearingUtility(sql.FieldGTE(FieldConfidence, v))
}

// ConfidenceLT applies the LT predicate on the "confidence" field.
func ConfidenceLT(v float64) predicate.HearingUtility {
	return predicate.HearingUtility(sql.FieldLT(FieldConfidence, v))
}

// ConfidenceLTE applies the LTE predicate on the "confidence" field.
func ConfidenceLTE(v float64) predicate.HearingUtility {
	return predicate.HearingUtility(sql.FieldLTE(FieldConfidence, v))
}

// NeedsReviewEQ applies the EQ predicate on the "needs_review" field.
func NeedsReviewEQ(v bool) predicate.HearingUtility {
	return predicate.HearingUtility(sql.FieldEQ(FieldNeedsReview, v))
}

// NeedsReviewNEQ applies the NEQ predicate on the "needs_review" field.
func NeedsReviewNEQ(v bool) predicate.HearingUtility {
	return predicate.HearingUtility(sql.FieldNEQ(FieldNeedsReview, v))
}

// HasHearing applies the HasEdge predicate on the "hearing" edge.
func HasHearing() predicate.HearingUtility {
	return predicate.HearingUtility(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, HearingTable, HearingColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasHearingWith applies the HasEdge predicate on the "hearing" edge with a given conditions (other predicates).
func HasHearingWith(preds ...predicate.Hearing) predicate.HearingUtility {
	return predicate.HearingUtility(func(s *sql.Selector) {
		step := newHearingStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasUtility applies the HasEdge predicate on the "utility" edge.
func HasUtility() predicate.HearingUtility {
	return predicate.HearingUtility(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, UtilityTable, UtilityColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasUtilityWith applies the HasEdge predicate on the "utility" edge with a given conditions (other predicates).
func HasUtilityWith(preds ...predicate.Utility) predicate.HearingUtility {
	return predicate.HearingUtility(func(s *sql.Selector) {
		step := newUtilityStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.HearingUtility) predicate.HearingUtility {
	return predicate.HearingUtility(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.HearingUtility) predicate.HearingUtility {
	return predicate.HearingUtility(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.HearingUtility) predicate.HearingUtility {
	return predicate.HearingUtility(sql.NotPredicates(p))
}
