// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/canaryscope/canaryscope/ent/hearingutility"
	"github.com/canaryscope/canaryscope/ent/predicate"
	"github.com/canaryscope/canaryscope/ent/utility"
)

// HearingUtilityUpdate is the builder for updating HearingUtility entities.
type HearingUtilityUpdate struct {
	config
	hooks    []Hook
	mutation *HearingUtilityMutation
}

// Where appends a list predicates to the HearingUtilityUpdate builder.
func (_u *HearingUtilityUpdate) Where(ps ...predicate.HearingUtility) *HearingUtilityUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *HearingUtilityUpdate) SetUpdatedAt(v time.Time) *HearingUtilityUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetUtilityID sets the "utility_id" field.
func (_u *HearingUtilityUpdate) SetUtilityID(v string) *HearingUtilityUpdate {
	_u.mutation.SetUtilityID(v)
	return _u
}

// SetNillableUtilityID sets the "utility_id" field if the given value is not nil.
func (_u *HearingUtilityUpdate) SetNillableUtilityID(v *string) *HearingUtilityUpdate {
	if v != nil {
		_u.SetUtilityID(*v)
	}
	return _u
}

// ClearUtilityID clears the value of the "utility_id" field.
func (_u *HearingUtilityUpdate) ClearUtilityID() *HearingUtilityUpdate {
	_u.mutation.ClearUtilityID()
	return _u
}

// SetRawName sets the "raw_name" field.
func (_u *HearingUtilityUpdate) SetRawName(v string) *HearingUtilityUpdate {
	_u.mutation.SetRawName(v)
	return _u
}

// SetNillableRawName sets the "raw_name" field if the given value is not nil.
func (_u *HearingUtilityUpdate) SetNillableRawName(v *string) *HearingUtilityUpdate {
	if v != nil {
		_u.SetRawName(*v)
	}
	return _u
}

// SetRole sets the "role" field.
func (_u *HearingUtilityUpdate) SetRole(v string) *HearingUtilityUpdate {
	_u.mutation.SetRole(v)
	return _u
}

// SetNillableRole sets the "role" field if the given value is not nil.
func (_u *HearingUtilityUpdate) SetNillableRole(v *string) *HearingUtilityUpdate {
	if v != nil {
		_u.SetRole(*v)
	}
	return _u
}

// ClearRole clears the value of the "role" field.
func (_u *HearingUtilityUpdate) ClearRole() *HearingUtilityUpdate {
	_u.mutation.ClearRole()
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *HearingUtilityUpdate) SetConfidence(v float64) *HearingUtilityUpdate {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *HearingUtilityUpdate) SetNillableConfidence(v *float64) *HearingUtilityUpdate {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *HearingUtilityUpdate) AddConfidence(v float64) *HearingUtilityUpdate {
	_u.mutation.AddConfidence(v)
	return _u
}

// SetNeedsReview sets the "needs_review" field.
func (_u *HearingUtilityUpdate) SetNeedsReview(v bool) *HearingUtilityUpdate {
	_u.mutation.SetNeedsReview(v)
	return _u
}

// SetNillableNeedsReview sets the "needs_review" field if the given value is not nil.
func (_u *HearingUtilityUpdate) SetNillableNeedsReview(v *bool) *HearingUtilityUpdate {
	if v != nil {
		_u.SetNeedsReview(*v)
	}
	return _u
}

// SetUtility sets the "utility" edge to the Utility entity.
func (_u *HearingUtilityUpdate) SetUtility(v *Utility) *HearingUtilityUpdate {
	return _u.SetUtilityID(v.ID)
}

// Mutation returns the HearingUtilityMutation object of the builder.
func (_u *HearingUtilityUpdate) Mutation() *HearingUtilityMutation {
	return _u.mutation
}

// ClearUtility clears the "utility" edge to the Utility entity.
func (_u *HearingUtilityUpdate) ClearUtility() *HearingUtilityUpdate {
	_u.mutation.ClearUtility()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *HearingUtilityUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *HearingUtilityUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *HearingUtilityUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *HearingUtilityUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *HearingUtilityUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := hearingutility.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *HearingUtilityUpdate) check() error {
	if _u.mutation.HearingCleared() && len(_u.mutation.HearingIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "HearingUtility.hearing"`)
	}
	return nil
}

func (_u *HearingUtilityUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(hearingutility.Table, hearingutility.Columns, sqlgraph.NewFieldSpec(hearingutility.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(hearingutility.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.RawName(); ok {
		_spec.SetField(hearingutility.FieldRawName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Role(); ok {
		_spec.SetField(hearingutility.FieldRole, field.TypeString, value)
	}
	if _u.mutation.RoleCleared() {
		_spec.ClearField(hearingutility.FieldRole, field.TypeString)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(hearingutility.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(hearingutility.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.NeedsReview(); ok {
		_spec.SetField(hearingutility.FieldNeedsReview, field.TypeBool, value)
	}
	if _u.mutation.UtilityCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   hearingutility.UtilityTable,
			Columns: []string{hearingutility.UtilityColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(utility.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.UtilityIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   hearingutility.UtilityTable,
			Columns: []string{hearingutility.UtilityColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(utility.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{hearingutility.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// HearingUtilityUpdateOne is the builder for updating a single HearingUtility entity.
type HearingUtilityUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *HearingUtilityMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *HearingUtilityUpdateOne) SetUpdatedAt(v time.Time) *HearingUtilityUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetUtilityID sets the "utility_id" field.
func (_u *HearingUtilityUpdateOne) SetUtilityID(v string) *HearingUtilityUpdateOne {
	_u.mutation.SetUtilityID(v)
	return _u
}

// SetNillableUtilityID sets the "utility_id" field if the given value is not nil.
func (_u *HearingUtilityUpdateOne) SetNillableUtilityID(v *string) *HearingUtilityUpdateOne {
	if v != nil {
		_u.SetUtilityID(*v)
	}
	return _u
}

// ClearUtilityID clears the value of the "utility_id" field.
func (_u *HearingUtilityUpdateOne) ClearUtilityID() *HearingUtilityUpdateOne {
	_u.mutation.ClearUtilityID()
	return _u
}

// SetRawName sets the "raw_name" field.
func (_u *HearingUtilityUpdateOne) SetRawName(v string) *HearingUtilityUpdateOne {
	_u.mutation.SetRawName(v)
	return _u
}

// SetNillableRawName sets the "raw_name" field if the given value is not nil.
func (_u *HearingUtilityUpdateOne) SetNillableRawName(v *string) *HearingUtilityUpdateOne {
	if v != nil {
		_u.SetRawName(*v)
	}
	return _u
}

// SetRole sets the "role" field.
func (_u *HearingUtilityUpdateOne) SetRole(v string) *HearingUtilityUpdateOne {
	_u.mutation.SetRole(v)
	return _u
}

// SetNillableRole sets the "role" field if the given value is not nil.
func (_u *HearingUtilityUpdateOne) SetNillableRole(v *string) *HearingUtilityUpdateOne {
	if v != nil {
		_u.SetRole(*v)
	}
	return _u
}

// ClearRole clears the value of the "role" field.
func (_u *HearingUtilityUpdateOne) ClearRole() *HearingUtilityUpdateOne {
	_u.mutation.ClearRole()
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *HearingUtilityUpdateOne) SetConfidence(v float64) *HearingUtilityUpdateOne {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *HearingUtilityUpdateOne) SetNillableConfidence(v *float64) *HearingUtilityUpdateOne {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *HearingUtilityUpdateOne) AddConfidence(v float64) *HearingUtilityUpdateOne {
	_u.mutation.AddConfidence(v)
	return _u
}

// SetNeedsReview sets the "needs_review" field.
func (_u *HearingUtilityUpdateOne) SetNeedsReview(v bool) *HearingUtilityUpdateOne {
	_u.mutation.SetNeedsReview(v)
	return _u
}

// SetNillableNeedsReview sets the "needs_review" field if the given value is not nil.
func (_u *HearingUtilityUpdateOne) SetNillableNeedsReview(v *bool) *HearingUtilityUpdateOne {
	if v != nil {
		_u.SetNeedsReview(*v)
	}
	return _u
}

// SetUtility sets the "utility" edge to the Utility entity.
func (_u *HearingUtilityUpdateOne) SetUtility(v *Utility) *HearingUtilityUpdateOne {
	return _u.SetUtilityID(v.ID)
}

// Mutation returns the HearingUtilityMutation object of the builder.
func (_u *HearingUtilityUpdateOne) Mutation() *HearingUtilityMutation {
	return _u.mutation
}

// ClearUtility clears the "utility" edge to the Utility entity.
func (_u *HearingUtilityUpdateOne) ClearUtility() *HearingUtilityUpdateOne {
	_u.mutation.ClearUtility()
	return _u
}

// Where appends a list predicates to the HearingUtilityUpdate builder.
func (_u *HearingUtilityUpdateOne) Where(ps ...predicate.HearingUtility) *HearingUtilityUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *HearingUtilityUpdateOne) Select(field string, fields ...string) *HearingUtilityUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated HearingUtility entity.
func (_u *HearingUtilityUpdateOne) Save(ctx context.Context) (*HearingUtility, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *HearingUtilityUpdateOne) SaveX(ctx context.Context) *HearingUtility {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *HearingUtilityUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *HearingUtilityUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *HearingUtilityUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := hearingutility.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *HearingUtilityUpdateOne) check() error {
	if _u.mutation.HearingCleared() && len(_u.mutation.HearingIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "HearingUtility.hearing"`)
	}
	return nil
}

func (_u *HearingUtilityUpdateOne) sqlSave(ctx context.Context) (_node *HearingUtility, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(hearingutility.Table, hearingutility.Columns, sqlgraph.NewFieldSpec(hearingutility.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "HearingUtility.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, hearingutility.FieldID)
		for _, f := range fields {
			if !hearingutility.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != hearingutility.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(hearingutility.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.RawName(); ok {
		_spec.SetField(hearingutility.FieldRawName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Role(); ok {
		_spec.SetField(hearingutility.FieldRole, field.TypeString, value)
	}
	if _u.mutation.RoleCleared() {
		_spec.ClearField(hearingutility.FieldRole, field.TypeString)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(hearingutility.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(hearingutility.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.NeedsReview(); ok {
		_spec.SetField(hearingutility.FieldNeedsReview, field.TypeBool, value)
	}
	if _u.mutation.UtilityCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   hearingutility.UtilityTable,
			Columns: []string{hearingutility.UtilityColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(utility.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.UtilityIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   hearingutility.UtilityTable,
			Columns: []string{hearingutility.UtilityColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(utility.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &HearingUtility{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{hearingutility.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
