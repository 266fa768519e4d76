// Code generated by ent, DO NOT EDIT.

package state

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/canaryscope/canaryscope/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.State {
	return predicate.State(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.State {
	return predicate.State(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.State {
	return predicate.State(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.State {
	return predicate.State(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.State {
	return predicate.State(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.State {
	return predicate.State(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.State {
	return predicate.State(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.State {
	return predicate.State(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.State {
	return predicate.State(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.State {
	return predicate.State(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.State {
	return predicate.State(sql.FieldContainsFold(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.State {
	return predicate.State(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.State {
	return predicate.State(sql.FieldEQ(FieldUpdatedAt, v))
}

// Code applies equality check predicate on the "code" field. It's identical to CodeEQ.
func Code(v string) predicate.State {
	return predicate.State(sql.FieldEQ(FieldCode, v))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.State {
	return predicate.State(sql.FieldEQ(FieldName, v))
}

// CommissionName applies equality check predicate on the "commission_name" field. It's identical to CommissionNameEQ.
func CommissionName(v string) predicate.State {
	return predicate.State(sql.FieldEQ(FieldCommissionName, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.State {
	return predicate.State(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.State {
	return predicate.State(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.State {
	return predicate.State(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.State {
	return predicate.State(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.State {
	return predicate.State(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.State {
	return predicate.State(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.State {
	return predicate.State(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.State {
	return predicate.State(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.State {
	return predicate.State(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.State {
	return predicate.State(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.State {
	return predicate.State(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.State {
	return predicate.State(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.State {
	return predicate.State(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.State {
	return predicate.State(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.State {
	return predicate.State(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.State {
	return predicate.State(sql.FieldLTE(FieldUpdatedAt, v))
}

// CodeEQ applies the EQ predicate on the "code" field.
func CodeEQ(v string) predicate.State {
	return predicate.State(sql.FieldEQ(FieldCode, v))
}

// CodeNEQ applies the NEQ predicate on the "code" field.
func CodeNEQ(v string) predicate.State {
	return predicate.State(sql.FieldNEQ(FieldCode, v))
}

// CodeIn applies the In predicate on the "code" field.
func CodeIn(vs ...string) predicate.State {
	return predicate.State(sql.FieldIn(FieldCode, vs...))
}

// CodeNotIn applies the NotIn predicate on the "code" field.
func CodeNotIn(vs ...string) predicate.State {
	return predicate.State(sql.FieldNotIn(FieldCode, vs...))
}

// CodeGT applies the GT predicate on the "code" field.
func CodeGT(v string) predicate.State {
	return predicate.State(sql.FieldGT(FieldCode, v))
}

// CodeGTE applies the GTE predicate on the "code" field.
func CodeGTE(v string) predicate.State {
	return predicate.State(sql.FieldGTE(FieldCode, v))
}

// CodeLT applies the LT predicate on the "code" field.
func CodeLT(v string) predicate.State {
	return predicate.State(sql.FieldLT(FieldCode, v))
}

// CodeLTE applies the LTE predicate on the "code" field.
func CodeLTE(v string) predicate.State {
	return predicate.State(sql.FieldLTE(FieldCode, v))
}

// CodeContains applies the Contains predicate on the "code" field.
func CodeContains(v string) predicate.State {
	return predicate.State(sql.FieldContains(FieldCode, v))
}

// CodeHasPrefix applies the HasPrefix predicate on the "code" field.
func CodeHasPrefix(v string) predicate.State {
	return predicate.State(sql.FieldHasPrefix(FieldCode, v))
}

// CodeHasSuffix applies the HasSuffix predicate on the "code" field.
func CodeHasSuffix(v string) predicate.State {
	return predicate.State(sql.FieldHasSuffix(FieldCode, v))
}

// CodeEqualFold applies the EqualFold predicate on the "code" field.
func CodeEqualFold(v string) predicate.State {
	return predicate.State(sql.FieldEqualFold(FieldCode, v))
}

// CodeContainsFold applies the ContainsFold predicate on the "code" field.
func CodeContainsFold(v string) predicate.State {
	return predicate.State(sql.FieldContainsFold(FieldCode, v))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.State {
	return predicate.State(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.State {
	return predicate.State(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.State {
	return predicate.State(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.State {
	return predicate.State(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.State {
	return predicate.State(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.State {
	return predicate.State(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.State {
	return predicate.State(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.State {
	return predicate.State(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.State {
	return predicate.State(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.State {
	return predicate.State(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.State {
	return predicate.State(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.State {
	return predicate.State(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.State {
	return predicate.State(sql.FieldContainsFold(FieldName, v))
}

// CommissionNameEQ applies the EQ predicate on the "commission_name" field.
func CommissionNameEQ(v string) predicate.State {
	return predicate.State(sql.FieldEQ(FieldCommissionName, v))
}

// CommissionNameNEQ applies the NEQ predicate on the "commission_name" field.
func CommissionNameNEQ(v string) predicate.State {
	return predicate.State(sql.FieldNEQ(FieldCommissionName, v))
}

// CommissionNameIn applies the In predicate on the "commission_name" field.
func CommissionNameIn(vs ...string) predicate.State {
	return predicate.State(sql.FieldIn(FieldCommissionName, vs...))
}

// CommissionNameNotIn applies the NotIn predicate on the "commission_name" field.
func CommissionNameNotIn(vs ...string) predicate.State {
	return predicate.State(sql.FieldNotIn(FieldCommissionName, vs...))
}

// CommissionNameGT applies the GT predicate on the "commission_name" field.
func CommissionNameGT(v string) predicate.State {
	return predicate.State(sql.FieldGT(FieldCommissionName, v))
}

// CommissionNameGTE applies the GTE predicate on the "commission_name" field.
func CommissionNameGTE(v string) predicate.State {
	return predicate.State(sql.FieldGTE(FieldCommissionName, v))
}

// CommissionNameLT applies the LT predicate on the "commission_name" field.
func CommissionNameLT(v string) predicate.State {
	return predicate.State(sql.FieldLT(FieldCommissionName, v))
}

// CommissionNameLTE applies the LTE predicate on the "commission_name" field.
func CommissionNameLTE(v string) predicate.State {
	return predicate.State(sql.FieldLTE(FieldCommissionName, v))
}

// CommissionNameContains applies the Contains predicate on the "commission_name" field.
func CommissionNameContains(v string) predicate.State {
	return predicate.State(sql.FieldContains(FieldCommissionName, v))
}

// CommissionNameHasPrefix applies the HasPrefix predicate on the "commission_name" field.
func CommissionNameHasPrefix(v string) predicate.State {
	return predicate.State(sql.FieldHasPrefix(FieldCommissionName, v))
}

// CommissionNameHasSuffix applies the HasSuffix predicate on the "commission_name" field.
func CommissionNameHasSuffix(v string) predicate.State {
	return predicate.State(sql.FieldHasSuffix(FieldCommissionName, v))
}

// CommissionNameIsNil applies the IsNil predicate on the "commission_name" field.
func CommissionNameIsNil() predicate.State {
	return predicate.State(sql.FieldIsNull(FieldCommissionName))
}

// CommissionNameNotNil applies the NotNil predicate on the "commission_name" field.
func CommissionNameNotNil() predicate.State {
	return predicate.State(sql.FieldNotNull(FieldCommissionName))
}

// CommissionNameEqualFold applies the EqualFold predicate on the "commission_name" field.
func CommissionNameEqualFold(v string) predicate.State {
	return predicate.State(sql.FieldEqualFold(FieldCommissionName, v))
}

// CommissionNameContainsFold applies the ContainsFold predicate on the "commission_name" field.
func CommissionNameContainsFold(v string) predicate.State {
	return predicate.State(sql.FieldContainsFold(FieldCommissionName, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.State) predicate.State {
	return predicate.State(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.State) predicate.State {
	return predicate.State(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.State) predicate.State {
	return predicate.State(sql.NotPredicates(p))
}
