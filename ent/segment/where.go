// Code generated by ent, DO NOT EDIT.

package segment

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/canaryscope/canaryscope/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Segment {
	return predicate.Segment(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Segment {
	return predicate.Segment(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Segment {
	return predicate.Segment(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Segment {
	return predicate.Segment(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Segment {
	return predicate.Segment(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Segment {
	return predicate.Segment(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Segment {
	return predicate.Segment(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Segment {
	return predicate.Segment(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Segment {
	return predicate.Segment(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Segment {
	return predicate.Segment(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Segment {
	return predicate.Segment(sql.FieldContainsFold(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Segment {
	return predicate.Segment(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Segment {
	return predicate.Segment(sql.FieldEQ(FieldUpdatedAt, v))
}

// HearingID applies equality check predicate on the "hearing_id" field. It's identical to HearingIDEQ.
func HearingID(v string) predicate.Segment {
	return predicate.Segment(sql.FieldEQ(FieldHearingID, v))
}

// SegmentIndex applies equality check predicate on the "segment_index" field. It's identical to SegmentIndexEQ.
func SegmentIndex(v int) predicate.Segment {
	return predicate.Segment(sql.FieldEQ(FieldSegmentIndex, v))
}

// StartTime applies equality check predicate on the "start_time" field. It's identical to StartTimeEQ.
func StartTime(v float64) predicate.Segment {
	return predicate.Segment(sql.FieldEQ(FieldStartTime, v))
}

// EndTime applies equality check predicate on the "end_time" field. It's identical to EndTimeEQ.
func EndTime(v float64) predicate.Segment {
	return predicate.Segment(sql.FieldEQ(FieldEndTime, v))
}

// Text applies equality check predicate on the "text" field. It's identical to TextEQ.
func Text(v string) predicate.Segment {
	return predicate.Segment(sql.FieldEQ(FieldText, v))
}

// Speaker applies equality check predicate on the "speaker" field. It's identical to SpeakerEQ.
func Speaker(v string) predicate.Segment {
	return predicate.Segment(sql.FieldEQ(FieldSpeaker, v))
}

// SpeakerRole applies equality check predicate on the "speaker_role" field. It's identical to SpeakerRoleEQ.
func SpeakerRole(v string) predicate.Segment {
	return predicate.Segment(sql.FieldEQ(FieldSpeakerRole, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Segment {
	return predicate.Segment(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Segment {
	return predicate.Segment(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Segment {
	return predicate.Segment(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Segment {
	return predicate.Segment(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Segment {
	return predicate.Segment(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Segment {
	return predicate.Segment(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Segment {
	return predicate.Segment(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Segment {
	return predicate.Segment(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Segment {
	return predicate.Segment(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Segment {
	return predicate.Segment(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Segment {
	return predicate.Segment(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Segment {
	return predicate.Segment(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Segment {
	return predicate.Segment(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Segment {
	return predicate.Segment(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Segment {
	return predicate.Segment(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Segment {
	return predicate.Segment(sql.FieldLTE(FieldUpdatedAt, v))
}

// HearingIDEQ applies the EQ predicate on the "hearing_id" field.
func HearingIDEQ(v string) predicate.Segment {
	return predicate.Segment(sql.FieldEQ(FieldHearingID, v))
}

// HearingIDNEQ applies the NEQ predicate on the "hearing_id" field.
func HearingIDNEQ(v string) predicate.Segment {
	return predicate.Segment(sql.FieldNEQ(FieldHearingID, v))
}

// HearingIDIn applies the In predicate on the "hearing_id" field.
func HearingIDIn(vs ...string) predicate.Segment {
	return predicate.Segment(sql.FieldIn(FieldHearingID, vs...))
}

// HearingIDNotIn applies the NotIn predicate on the "hearing_id" field.
func HearingIDNotIn(vs ...string) predicate.Segment {
	return predicate.Segment(sql.FieldNotIn(FieldHearingID, vs...))
}

// HearingIDGT applies the GT predicate on the "hearing_id" field.
func HearingIDGT(v string) predicate.Segment {
	return predicate.Segment(sql.FieldGT(FieldHearingID, v))
}

// HearingIDGTE applies the GTE predicate on the "hearing_id" field.
func HearingIDGTE(v string) predicate.Segment {
	return predicate.Segment(sql.FieldGTE(FieldHearingID, v))
}

// HearingIDLT applies the LT predicate on the "hearing_id" field.
func HearingIDLT(v string) predicate.Segment {
	return predicate.Segment(sql.FieldLT(FieldHearingID, v))
}

// HearingIDLTE applies the LTE predicate on the "hearing_id" field.
func HearingIDLTE(v string) predicate.Segment {
	return predicate.Segment(sql.FieldLTE(FieldHearingID, v))
}

// HearingIDContains applies the Contains predicate on the "hearing_id" field.
func HearingIDContains(v string) predicate.Segment {
	return predicate.Segment(sql.FieldContains(FieldHearingID, v))
}

// HearingIDHasPrefix applies the HasPrefix predicate on the "hearing_id" field.
func HearingIDHasPrefix(v string) predicate.Segment {
	return predicate.Segment(sql.FieldHasPrefix(FieldHearingID, v))
}

// HearingIDHasSuffix applies the HasSuffix predicate on the "hearing_id" field.
func HearingIDHasSuffix(v string) predicate.Segment {
	return predicate.Segment(sql.FieldHasSuffix(FieldHearingID, v))
}

// HearingIDEqualFold applies the EqualFold predicate on the "hearing_id" field.
func HearingIDEqualFold(v string) predicate.Segment {
	return predicate.Segment(sql.FieldEqualFold(FieldHearingID, v))
}

// HearingIDContainsFold applies the ContainsFold predicate on the "hearing_id" field.
func HearingIDContainsFold(v string) predicate.Segment {
	return predicate.Segment(sql.FieldContainsFold(FieldHearingID, v))
}

// SegmentIndexEQ applies the EQ predicate on the "segment_index" field.
func SegmentIndexEQ(v int) predicate.Segment {
	return predicate.Segment(sql.FieldEQ(FieldSegmentIndex, v))
}

// SegmentIndexNEQ applies the NEQ predicate on the "segment_index" field.
func SegmentIndexNEQ(v int) predicate.Segment {
	return predicate.Segment(sql.FieldNEQ(FieldSegmentIndex, v))
}

// SegmentIndexIn applies the In predicate on the "segment_index" field.
func SegmentIndexIn(vs ...int) predicate.Segment {
	return predicate.Segment(sql.FieldIn(FieldSegmentIndex, vs...))
}

// SegmentIndexNotIn applies the NotIn predicate on the "segment_index" field.
func SegmentIndexNotIn(vs ...int) predicate.Segment {
	return predicate.Segment(sql.FieldNotIn(FieldSegmentIndex, vs...))
}

// SegmentIndexGT applies the GT predicate on the "segment_index" field.
func SegmentIndexGT(v int) predicate.Segment {
	return predicate.Segment(sql.FieldGT(FieldSegmentIndex, v))
}

// SegmentIndexGTE applies the GTE predicate on the "segment_index" field.
func SegmentIndexGTE(v int) predicate.Segment {
	return predicate.Segment(sql.FieldGTE(FieldSegmentIndex, v))
}

// SegmentIndexLT applies the LT predicate on the "segment_index" field.
func SegmentIndexLT(v int) predicate.Segment {
	return predicate.Segment(sql.FieldLT(FieldSegmentIndex, v))
}

// SegmentIndexLTE applies the LTE predicate on the "segment_index" field.
func SegmentIndexLTE(v int) predicate.Segment {
	return predicate.Segment(sql.FieldLTE(FieldSegmentIndex, v))
}

// StartTimeEQ applies the EQ predicate on the "start_time" field.
func StartTimeEQ(v float64) predicate.Segment {
	return predicate.Segment(sql.FieldEQ(FieldStartTime, v))
}

// StartTimeNEQ applies the NEQ predicate on the "start_time" field.
func StartTimeNEQ(v float64) predicate.Segment {
	return predicate.Segment(sql.FieldNEQ(FieldStartTime, v))
}

// StartTimeIn applies the In predicate on the "start_time" field.
func StartTimeIn(vs ...float64) predicate.Segment {
	return predicate.Segment(sql.FieldIn(FieldStartTime, vs...))
}

// StartTimeNotIn applies the NotIn predicate on the "start_time" field.
func StartTimeNotIn(vs ...float64) predicate.Segment {
	return predicate.Segment(sql.FieldNotIn(FieldStartTime, vs...))
}

// StartTimeGT applies the GT predicate on the "start_time" field.
func StartTimeGT(v float64) predicate.Segment {
	return predicate.Segment(sql.FieldGT(FieldStartTime, v))
}

// StartTimeGTE applies the GTE predicate on the "start_time" field.
func StartTimeGTE(v float64) predicate.Segment {
	return predicate.Segment(sql.FieldGTE(FieldStartTime, v))
}

// StartTimeLT applies the LT predicate on the "start_time" field.
func StartTimeLT(v float64) predicate.Segment {
	return predicate.Segment(sql.FieldLT(FieldStartTime, v))
}

// StartTimeLTE applies the LTE predicate on the "start_time" field.
func StartTimeLTE(v float64) predicate.Segment {
	return predicate.Segment(sql.FieldLTE(FieldStartTime, v))
}

// EndTimeEQ applies the EQ predicate on the "end_time" field.
func EndTimeEQ(v float64) predicate.Segment {
	return predicate.Segment(sql.FieldEQ(FieldEndTime, v))
}

// EndTimeNEQ applies the NEQ predicate on the "end_time" field.
func EndTimeNEQ(v float64) predicate.Segment {
	return predicate.Segment(sql.FieldNEQ(FieldEndTime, v))
}

// EndTimeIn applies the In predicate on the "end_time" field.
func EndTimeIn(vs ...float64) predicate.Segment {
	return predicate.Segment(sql.FieldIn(FieldEndTime, vs...))
}

// EndTimeNotIn applies the NotIn predicate on the "end_time" field.
func EndTimeNotIn(vs ...float64) predicate.Segment {
	return predicate.Segment(sql.FieldNotIn(FieldEndTime, vs...))
}

// EndTimeGT applies the GT predicate on the "end_time" field.
func EndTimeGT(v float64) predicate.Segment {
	return predicate.Segment(sql.FieldGT(FieldEndTime, v))
}

// EndTimeGTE applies the GTE predicate on the "end_time" field.
func EndTimeGTE(v float64) predicate.Segment {
	return predicate.Segment(sql.FieldGTE(FieldEndTime, v))
}

// EndTimeLT applies the LT predicate on the "end_time" field.
func EndTimeLT(v float64) predicate.Segment {
	return predicate.Segment(sql.FieldLT(FieldEndTime, v))
}

// EndTimeLTE applies the LTE predicate on the "end_time" field.
func EndTimeLTE(v float64) predicate.Segment {
	return predicate.Segment(sql.FieldLTE(FieldEndTime, v))
}

// TextEQ applies the EQ predicate on the "text" field.
func TextEQ(v string) predicate.Segment {
	return predicate.Segment(sql.FieldEQ(FieldText, v))
}

// TextNEQ applies the NEQ predicate on the "text" field.
func TextNEQ(v string) predicate.Segment {
	return predicate.Segment(sql.FieldNEQ(FieldText, v))
}

// TextIn applies the In predicate on the "text" field.
func TextIn(vs ...string) predicate.Segment {
	return predicate.Segment(sql.FieldIn(FieldText, vs...))
}

// TextNotIn applies the NotIn predicate on the "text" field.
func TextNotIn(vs ...string) predicate.Segment {
	return predicate.Segment(sql.FieldNotIn(FieldText, vs...))
}

// TextGT applies the GT predicate on the "text" field.
func TextGT(v string) predicate.Segment {
	return predicate.Segment(sql.FieldGT(FieldText, v))
}

// TextGTE applies the GTE predicate on the "text" field.
func TextGTE(v string) predicate.Segment {
	return predicate.Segment(sql.FieldGTE(FieldText, v))
}

// TextLT applies the LT predicate on the "text" field.
func TextLT(v string) predicate.Segment {
	return predicate.Segment(sql.FieldLT(FieldText, v))
}

// TextLTE applies the LTE predicate on the "text" field.
func TextLTE(v string) predicate.Segment {
	return predicate.Segment(sql.FieldLTE(FieldText, v))
}

// TextContains applies the Contains predicate on the "text" field.
func TextContains(v string) predicate.Segment {
	return predicate.Segment(sql.FieldContains(FieldText, v))
}

// TextHasPrefix applies the HasPrefix predicate on the "text" field.
func TextHasPrefix(v string) predicate.Segment {
	return predicate.Segment(sql.FieldHasPrefix(FieldText, v))
}

// TextHasSuffix applies the HasSuffix predicate on the "text" field.
func TextHasSuffix(v string) predicate.Segment {
	return predicate.Segment(sql.FieldHasSuffix(FieldText, v))
}

// TextEqualFold applies the EqualFold predicate on the "text" field.
func TextEqualFold(v string) predicate.Segment {
	return predicate.Segment(sql.FieldEqualFold(FieldText, v))
}

// TextContainsFold applies the ContainsFold predicate on the "text" field.
func TextContainsFold(v string) predicate.Segment {
	return predicate.Segment(sql.FieldContainsFold(FieldText, v))
}

// SpeakerEQ applies the EQ predicate on the "speaker" field.
func SpeakerEQ(v string) predicate.Segment {
	return predicate.Segment(sql.FieldEQ(FieldSpeaker, v))
}

// SpeakerNEQ applies the NEQ predicate on the "speaker" field.
func SpeakerNEQ(v string) predicate.Segment {
	return predicate.Segment(sql.FieldNEQ(FieldSpeaker, v))
}

// SpeakerIn applies the In predicate on the "speaker" field.
func SpeakerIn(vs ...string) predicate.Segment {
	return predicate.Segment(sql.FieldIn(FieldSpeaker, vs...))
}

// SpeakerNotIn applies the NotIn predicate on the "speaker" field.
func SpeakerNotIn(vs ...string) predicate.Segment {
	return predicate.Segment(sql.FieldNotIn(FieldSpeaker, vs...))
}

// SpeakerGT applies the GT predicate on the "speaker" field.
func SpeakerGT(v string) predicate.Segment {
	return predicate.Segment(sql.FieldGT(FieldSpeaker, v))
}

// SpeakerGTE applies the GTE predicate on the "speaker" field.
func SpeakerGTE(v string) predicate.Segment {
	return predicate.Segment(sql.FieldGTE(FieldSpeaker, v))
}

// SpeakerLT applies the LT predicate on the "speaker" field.
func SpeakerLT(v string) predicate.Segment {
	return predicate.Segment(sql.FieldLT(FieldSpeaker, v))
}

// SpeakerLTE applies the LTE predicate on the "speaker" field.
func SpeakerLTE(v string) predicate.Segment {
	return predicate.Segment(sql.FieldLTE(FieldSpeaker, v))
}

// SpeakerContains applies the Contains predicate on the "speaker" field.
func SpeakerContains(v string) predicate.Segment {
	return predicate.Segment(sql.FieldContains(FieldSpeaker, v))
}

// SpeakerHasPrefix applies the HasPrefix predicate on the "speaker" field.
func SpeakerHasPrefix(v string) predicate.Segment {
	return predicate.Segment(sql.FieldHasPrefix(FieldSpeaker, v))
}

// SpeakerHasSuffix applies the HasSuffix predicate on the "speaker" field.
func SpeakerHasSuffix(v string) predicate.Segment {
	return predicate.Segment(sql.FieldHasSuffix(FieldSpeaker, v))
}

// SpeakerIsNil applies the IsNil predicate on the "speaker" field.
func SpeakerIsNil() predicate.Segment {
	return predicate.Segment(sql.FieldIsNull(FieldSpeaker))
}

// SpeakerNotNil applies the NotNil predicate on the "speaker" field.
func SpeakerNotNil() predicate.Segment {
	return predicate.Segment(sql.FieldNotNull(FieldSpeaker))
}

// SpeakerEqualFold applies the EqualFold predicate on the "speaker" field.
func SpeakerEqualFold(v string) predicate.Segment {
	return predicate.Segment(sql.FieldEqualFold(FieldSpeaker, v))
}

// SpeakerContainsFold applies the ContainsFold predicate on the "speaker" field.
func SpeakerContainsFold(v string) predicate.Segment {
	return predicate.Segment(sql.FieldContainsFold(FieldSpeaker, v))
}

// SpeakerRoleEQ applies the EQ predicate on the "speaker_role" field.
func SpeakerRoleEQ(v string) predicate.Segment {
	return predicate.Segment(sql.FieldEQ(FieldSpeakerRole, v))
}

// SpeakerRoleNEQ applies the NEQ predicate on the "speaker_role" field.
func SpeakerRoleNEQ(v string) predicate.Segment {
	return predicate.Segment(sql.FieldNEQ(FieldSpeakerRole, v))
}

// SpeakerRoleIn applies the In predicate on the "speaker_role" field.
func SpeakerRoleIn(vs ...string) predicate.Segment {
	return predicate.Segment(sql.FieldIn(FieldSpeakerRole, vs...))
}

// SpeakerRoleNotIn applies the NotIn predicate on the "speaker_role" field.
func SpeakerRoleNotIn(vs ...string) predicate.Segment {
	return predicate.Segment(sql.FieldNotIn(FieldSpeakerRole, vs...))
}

// SpeakerRoleGT applies the GT predicate on the "speaker_role" field.
func SpeakerRoleGT(v string) predicate.Segment {
	return predicate.Segment(sql.FieldGT(FieldSpeakerRole, v))
}

// SpeakerRoleGTE applies the GTE predicate on the "speaker_role" field.
func SpeakerRoleGTE(v string) predicate.Segment {
	return predicate.Segment(sql.FieldGTE(FieldSpeakerRole, v))
}

// SpeakerRoleLT applies the LT predicate on the "speaker_role" field.
func SpeakerRoleLT(v string) predicate.Segment {
	return predicate.Segment(sql.FieldLT(FieldSpeakerRole, v))
}

// SpeakerRoleLTE applies the LTE predicate on the "speaker_role" field.
func SpeakerRoleLTE(v string) predicate.Segment {
	return predicate.Segment(sql.FieldLTE(FieldSpeakerRole, v))
}

// SpeakerRoleContains applies the Contains predicate on the "speaker_role" field.
func SpeakerRoleContains(v string) predicate.Segment {
	return predicate.Segment(sql.FieldContains(FieldSpeakerRole, v))
}

// SpeakerRoleHasPrefix applies the HasPrefix predicate on the "speaker_role" field.
func SpeakerRoleHasPrefix(v string) predicate.Segment {
	return predicate.Segment(sql.FieldHasPrefix(FieldSpeakerRole, v))
}

// SpeakerRoleHasSuffix applies the HasSuffix predicate on the "speaker_role" field.
func SpeakerRoleHasSuffix(v string) predicate.Segment {
	return predicate.Segment(sql.FieldHasSuffix(FieldSpeakerRole, v))
}

// SpeakerRoleIsNil applies the IsNil predicate on the "speaker_role" field.
func SpeakerRoleIsNil() predicate.Segment {
	return predicate.Segment(sql.FieldIsNull(FieldSpeakerRole))
}

// SpeakerRoleNotNil applies the NotNil predicate on the "speaker_role" field.
func SpeakerRoleNotNil() predicate.Segment {
	return predicate.Segment(sql.FieldNotNull(FieldSpeakerRole))
}

// SpeakerRoleEqualFold applies the EqualFold predicate on the "speaker_role" field.
func SpeakerRoleEqualFold(v string) predicate.Segment {
	return predicate.Segment(sql.FieldEqualFold(FieldSpeakerRole, v))
}

// SpeakerRoleContainsFold applies the ContainsFold predicate on the "speaker_role" field.
func SpeakerRoleContainsFold(v string) predicate.Segment {
	return predicate.Segment(sql.FieldContainsFold(FieldSpeakerRole, v))
}

// HasHearing applies the HasEdge predicate on the "hearing" edge.
func HasHearing() predicate.Segment {
	return predicate.Segment(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, HearingTable, HearingColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasHearingWith applies the HasEdge predicate on the "hearing" edge with a given conditions (other predicates).
func HasHearingWith(preds ...predicate.Hearing) predicate.Segment {
	return predicate.Segment(func(s *sql.Selector) {
		step := newHearingStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Segment) predicate.Segment {
	return predicate.Segment(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Segment) predicate.Segment {
	return predicate.Segment(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Segment) predicate.Segment {
	return predicate.Segment(sql.NotPredicates(p))
}
