// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/canaryscope/canaryscope/ent/hearingutility"
	"github.com/canaryscope/canaryscope/ent/predicate"
	"github.com/canaryscope/canaryscope/ent/utility"
)

// UtilityUpdate is the builder for updating Utility entities.
type UtilityUpdate struct {
	config
	hooks    []Hook
	mutation *UtilityMutation
}

// Where appends a list predicates to the UtilityUpdate builder.
func (_u *UtilityUpdate) Where(ps ...predicate.Utility) *UtilityUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *UtilityUpdate) SetUpdatedAt(v time.Time) *UtilityUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetStateCode sets the "state_code" field.
func (_u *UtilityUpdate) SetStateCode(v string) *UtilityUpdate {
	_u.mutation.SetStateCode(v)
	return _u
}

// SetNillableStateCode sets the "state_code" field if the given value is not nil.
func (_u *UtilityUpdate) SetNillableStateCode(v *string) *UtilityUpdate {
	if v != nil {
		_u.SetStateCode(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *UtilityUpdate) SetName(v string) *UtilityUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *UtilityUpdate) SetNillableName(v *string) *UtilityUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetNormalizedName sets the "normalized_name" field.
func (_u *UtilityUpdate) SetNormalizedName(v string) *UtilityUpdate {
	_u.mutation.SetNormalizedName(v)
	return _u
}

// SetNillableNormalizedName sets the "normalized_name" field if the given value is not nil.
func (_u *UtilityUpdate) SetNillableNormalizedName(v *string) *UtilityUpdate {
	if v != nil {
		_u.SetNormalizedName(*v)
	}
	return _u
}

// SetAliases sets the "aliases" field.
func (_u *UtilityUpdate) SetAliases(v []string) *UtilityUpdate {
	_u.mutation.SetAliases(v)
	return _u
}

// AppendAliases appends value to the "aliases" field.
func (_u *UtilityUpdate) AppendAliases(v []string) *UtilityUpdate {
	_u.mutation.AppendAliases(v)
	return _u
}

// ClearAliases clears the value of the "aliases" field.
func (_u *UtilityUpdate) ClearAliases() *UtilityUpdate {
	_u.mutation.ClearAliases()
	return _u
}

// SetSector sets the "sector" field.
func (_u *UtilityUpdate) SetSector(v string) *UtilityUpdate {
	_u.mutation.SetSector(v)
	return _u
}

// SetNillableSector sets the "sector" field if the given value is not nil.
func (_u *UtilityUpdate) SetNillableSector(v *string) *UtilityUpdate {
	if v != nil {
		_u.SetSector(*v)
	}
	return _u
}

// ClearSector clears the value of the "sector" field.
func (_u *UtilityUpdate) ClearSector() *UtilityUpdate {
	_u.mutation.ClearSector()
	return _u
}

// SetMentionCount sets the "mention_count" field.
func (_u *UtilityUpdate) SetMentionCount(v int) *UtilityUpdate {
	_u.mutation.ResetMentionCount()
	_u.mutation.SetMentionCount(v)
	return _u
}

// SetNillableMentionCount sets the "mention_count" field if the given value is not nil.
func (_u *UtilityUpdate) SetNillableMentionCount(v *int) *UtilityUpdate {
	if v != nil {
		_u.SetMentionCount(*v)
	}
	return _u
}

// AddMentionCount adds value to the "mention_count" field.
func (_u *UtilityUpdate) AddMentionCount(v int) *UtilityUpdate {
	_u.mutation.AddMentionCount(v)
	return _u
}

// AddHearingUtilityIDs adds the "hearing_utilities" edge to the HearingUtility entity by IDs.
func (_u *UtilityUpdate) AddHearingUtilityIDs(ids ...string) *UtilityUpdate {
	_u.mutation.AddHearingUtilityIDs(ids...)
	return _u
}

// AddHearingUtilities adds the "hearing_utilities" edges to the HearingUtility entity.
func (_u *UtilityUpdate) AddHearingUtilities(v ...*HearingUtility) *UtilityUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddHearingUtilityIDs(ids...)
}

// Mutation returns the UtilityMutation object of the builder.
func (_u *UtilityUpdate) Mutation() *UtilityMutation {
	return _u.mutation
}

// ClearHearingUtilities clears all "hearing_utilities" edges to the HearingUtility entity.
func (_u *UtilityUpdate) ClearHearingUtilities() *UtilityUpdate {
	_u.mutation.ClearHearingUtilities()
	return _u
}

// RemoveHearingUtilityIDs removes the "hearing_utilities" edge to HearingUtility entities by IDs.
func (_u *UtilityUpdate) RemoveHearingUtilityIDs(ids ...string) *UtilityUpdate {
	_u.mutation.RemoveHearingUtilityIDs(ids...)
	return _u
}

// RemoveHearingUtilities removes "hearing_utilities" edges to HearingUtility entities.
func (_u *UtilityUpdate) RemoveHearingUtilities(v ...*HearingUtility) *UtilityUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveHearingUtilityIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *UtilityUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *UtilityUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *UtilityUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *UtilityUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *UtilityUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := utility.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *UtilityUpdate) check() error {
	if v, ok := _u.mutation.StateCode(); ok {
		if err := utility.StateCodeValidator(v); err != nil {
			return &ValidationError{Name: "state_code", err: fmt.Errorf(`ent: validator failed for field "Utility.state_code": %w`, err)}
		}
	}
	return nil
}

func (_u *UtilityUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(utility.Table, utility.Columns, sqlgraph.NewFieldSpec(utility.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(utility.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.StateCode(); ok {
		_spec.SetField(utility.FieldStateCode, field.TypeString, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(utility.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.NormalizedName(); ok {
		_spec.SetField(utility.FieldNormalizedName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Aliases(); ok {
		_spec.SetField(utility.FieldAliases, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedAliases(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, utility.FieldAliases, value)
		})
	}
	if _u.mutation.AliasesCleared() {
		_spec.ClearField(utility.FieldAliases, field.TypeJSON)
	}
	if value, ok := _u.mutation.Sector(); ok {
		_spec.SetField(utility.FieldSector, field.TypeString, value)
	}
	if _u.mutation.SectorCleared() {
		_spec.ClearField(utility.FieldSector, field.TypeString)
	}
	if value, ok := _u.mutation.MentionCount(); ok {
		_spec.SetField(utility.FieldMentionCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMentionCount(); ok {
		_spec.AddField(utility.FieldMentionCount, field.TypeInt, value)
	}
	if _u.mutation.HearingUtilitiesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   utility.HearingUtilitiesTable,
			Columns: []string{utility.HearingUtilitiesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(hearingutility.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedHearingUtilitiesIDs(); len(nodes) > 0 && !_u.mutation.HearingUtilitiesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   utility.HearingUtilitiesTable,
			Columns: []string{utility.HearingUtilitiesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(hearingutility.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.HearingUtilitiesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   utility.HearingUtilitiesTable,
			Columns: []string{utility.HearingUtilitiesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(hearingutility.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{utility.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// UtilityUpdateOne is the builder for updating a single Utility entity.
type UtilityUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *UtilityMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *UtilityUpdateOne) SetUpdatedAt(v time.Time) *UtilityUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetStateCode sets the "state_code" field.
func (_u *UtilityUpdateOne) SetStateCode(v string) *UtilityUpdateOne {
	_u.mutation.SetStateCode(v)
	return _u
}

// SetNillableStateCode sets the "state_code" field if the given value is not nil.
func (_u *UtilityUpdateOne) SetNillableStateCode(v *string) *UtilityUpdateOne {
	if v != nil {
		_u.SetStateCode(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *UtilityUpdateOne) SetName(v string) *UtilityUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *UtilityUpdateOne) SetNillableName(v *string) *UtilityUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetNormalizedName sets the "normalized_name" field.
func (_u *UtilityUpdateOne) SetNormalizedName(v string) *UtilityUpdateOne {
	_u.mutation.SetNormalizedName(v)
	return _u
}

// SetNillableNormalizedName sets the "normalized_name" field if the given value is not nil.
func (_u *UtilityUpdateOne) SetNillableNormalizedName(v *string) *UtilityUpdateOne {
	if v != nil {
		_u.SetNormalizedName(*v)
	}
	return _u
}

// SetAliases sets the "aliases" field.
func (_u *UtilityUpdateOne) SetAliases(v []string) *UtilityUpdateOne {
	_u.mutation.SetAliases(v)
	return _u
}

// AppendAliases appends value to the "aliases" field.
func (_u *UtilityUpdateOne) AppendAliases(v []string) *UtilityUpdateOne {
	_u.mutation.AppendAliases(v)
	return _u
}

// ClearAliases clears the value of the "aliases" field.
func (_u *UtilityUpdateOne) ClearAliases() *UtilityUpdateOne {
	_u.mutation.ClearAliases()
	return _u
}

// SetSector sets the "sector" field.
func (_u *UtilityUpdateOne) SetSector(v string) *UtilityUpdateOne {
	_u.mutation.SetSector(v)
	return _u
}

// SetNillableSector sets the "sector" field if the given value is not nil.
func (_u *UtilityUpdateOne) SetNillableSector(v *string) *UtilityUpdateOne {
	if v != nil {
		_u.SetSector(*v)
	}
	return _u
}

// ClearSector clears the value of the "sector" field.
func (_u *UtilityUpdateOne) ClearSector() *UtilityUpdateOne {
	_u.mutation.ClearSector()
	return _u
}

// SetMentionCount sets the "mention_count" field.
func (_u *UtilityUpdateOne) SetMentionCount(v int) *UtilityUpdateOne {
	_u.mutation.ResetMentionCount()
	_u.mutation.SetMentionCount(v)
	return _u
}

// SetNillableMentionCount sets the "mention_count" field if the given value is not nil.
func (_u *UtilityUpdateOne) SetNillableMentionCount(v *int) *UtilityUpdateOne {
	if v != nil {
		_u.SetMentionCount(*v)
	}
	return _u
}

// AddMentionCount adds value to the "mention_count" field.
func (_u *UtilityUpdateOne) AddMentionCount(v int) *UtilityUpdateOne {
	_u.mutation.AddMentionCount(v)
	return _u
}

// AddHearingUtilityIDs adds the "hearing_utilities" edge to the HearingUtility entity by IDs.
func (_u *UtilityUpdateOne) AddHearingUtilityIDs(ids ...string) *UtilityUpdateOne {
	_u.mutation.AddHearingUtilityIDs(ids...)
	return _u
}

// AddHearingUtilities adds the "hearing_utilities" edges to the HearingUtility entity.
func (_u *UtilityUpdateOne) AddHearingUtilities(v ...*HearingUtility) *UtilityUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddHearingUtilityIDs(ids...)
}

// Mutation returns the UtilityMutation object of the builder.
func (_u *UtilityUpdateOne) Mutation() *UtilityMutation {
	return _u.mutation
}

// ClearHearingUtilities clears all "hearing_utilities" edges to the HearingUtility entity.
func (_u *UtilityUpdateOne) ClearHearingUtilities() *UtilityUpdateOne {
	_u.mutation.ClearHearingUtilities()
	return _u
}

// RemoveHearingUtilityIDs removes the "hearing_utilities" edge to HearingUtility entities by IDs.
func (_u *UtilityUpdateOne) RemoveHearingUtilityIDs(ids ...string) *UtilityUpdateOne {
	_u.mutation.RemoveHearingUtilityIDs(ids...)
	return _u
}

// RemoveHearingUtilities removes "hearing_utilities" edges to HearingUtility entities.
func (_u *UtilityUpdateOne) RemoveHearingUtilities(v ...*HearingUtility) *UtilityUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveHearingUtilityIDs(ids...)
}

// Where appends a list predicates to the UtilityUpdate builder.
func (_u *UtilityUpdateOne) Where(ps ...predicate.Utility) *UtilityUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *UtilityUpdateOne) Select(field string, fields ...string) *UtilityUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Utility entity.
func (_u *UtilityUpdateOne) Save(ctx context.Context) (*Utility, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *UtilityUpdateOne) SaveX(ctx context.Context) *Utility {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *UtilityUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *UtilityUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *UtilityUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := utility.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *UtilityUpdateOne) check() error {
	if v, ok := _u.mutation.StateCode(); ok {
		if err := utility.StateCodeValidator(v); err != nil {
			return &ValidationError{Name: "state_code", err: fmt.Errorf(`ent: validator failed for field "Utility.state_code": %w`, err)}
		}
	}
	return nil
}

func (_u *UtilityUpdateOne) sqlSave(ctx context.Context) (_node *Utility, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(utility.Table, utility.Columns, sqlgraph.NewFieldSpec(utility.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Utility.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, utility.FieldID)
		for _, f := range fields {
			if !utility.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != utility.FieldID {
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
		_spec.SetField(utility.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.StateCode(); ok {
		_spec.SetField(utility.FieldStateCode, field.TypeString, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(utility.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.NormalizedName(); ok {
		_spec.SetField(utility.FieldNormalizedName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Aliases(); ok {
		_spec.SetField(utility.FieldAliases, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedAliases(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, utility.FieldAliases, value)
		})
	}
	if _u.mutation.AliasesCleared() {
		_spec.ClearField(utility.FieldAliases, field.TypeJSON)
	}
	if value, ok := _u.mutation.Sector(); ok {
		_spec.SetField(utility.FieldSector, field.TypeString, value)
	}
	if _u.mutation.SectorCleared() {
		_spec.ClearField(utility.FieldSector, field.TypeString)
	}
	if value, ok := _u.mutation.MentionCount(); ok {
		_spec.SetField(utility.FieldMentionCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMentionCount(); ok {
		_spec.AddField(utility.FieldMentionCount, field.TypeInt, value)
	}
	if _u.mutation.HearingUtilitiesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   utility.HearingUtilitiesTable,
			Columns: []string{utility.HearingUtilitiesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(hearingutility.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedHearingUtilitiesIDs(); len(nodes) > 0 && !_u.mutation.HearingUtilitiesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   utility.HearingUtilitiesTable,
			Columns: []string{utility.HearingUtilitiesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(hearingutility.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.HearingUtilitiesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   utility.HearingUtilitiesTable,
			Columns: []string{utility.HearingUtilitiesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(hearingutility.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Utility{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{utility.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
