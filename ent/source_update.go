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
	"github.com/canaryscope/canaryscope/ent/hearing"
	"github.com/canaryscope/canaryscope/ent/predicate"
	"github.com/canaryscope/canaryscope/ent/source"
)

// SourceUpdate is the builder for updating Source entities.
type SourceUpdate struct {
	config
	hooks    []Hook
	mutation *SourceMutation
}

// Where appends a list predicates to the SourceUpdate builder.
func (_u *SourceUpdate) Where(ps ...predicate.Source) *SourceUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *SourceUpdate) SetUpdatedAt(v time.Time) *SourceUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetStateCode sets the "state_code" field.
func (_u *SourceUpdate) SetStateCode(v string) *SourceUpdate {
	_u.mutation.SetStateCode(v)
	return _u
}

// SetNillableStateCode sets the "state_code" field if the given value is not nil.
func (_u *SourceUpdate) SetNillableStateCode(v *string) *SourceUpdate {
	if v != nil {
		_u.SetStateCode(*v)
	}
	return _u
}

// SetKind sets the "kind" field.
func (_u *SourceUpdate) SetKind(v source.Kind) *SourceUpdate {
	_u.mutation.SetKind(v)
	return _u
}

// SetNillableKind sets the "kind" field if the given value is not nil.
func (_u *SourceUpdate) SetNillableKind(v *source.Kind) *SourceUpdate {
	if v != nil {
		_u.SetKind(*v)
	}
	return _u
}

// SetURL sets the "url" field.
func (_u *SourceUpdate) SetURL(v string) *SourceUpdate {
	_u.mutation.SetURL(v)
	return _u
}

// SetNillableURL sets the "url" field if the given value is not nil.
func (_u *SourceUpdate) SetNillableURL(v *string) *SourceUpdate {
	if v != nil {
		_u.SetURL(*v)
	}
	return _u
}

// SetConfig sets the "config" field.
func (_u *SourceUpdate) SetConfig(v map[string]interface{}) *SourceUpdate {
	_u.mutation.SetConfig(v)
	return _u
}

// ClearConfig clears the value of the "config" field.
func (_u *SourceUpdate) ClearConfig() *SourceUpdate {
	_u.mutation.ClearConfig()
	return _u
}

// SetEnabled sets the "enabled" field.
func (_u *SourceUpdate) SetEnabled(v bool) *SourceUpdate {
	_u.mutation.SetEnabled(v)
	return _u
}

// SetNillableEnabled sets the "enabled" field if the given value is not nil.
func (_u *SourceUpdate) SetNillableEnabled(v *bool) *SourceUpdate {
	if v != nil {
		_u.SetEnabled(*v)
	}
	return _u
}

// SetCheckFrequencyHours sets the "check_frequency_hours" field.
func (_u *SourceUpdate) SetCheckFrequencyHours(v int) *SourceUpdate {
	_u.mutation.ResetCheckFrequencyHours()
	_u.mutation.SetCheckFrequencyHours(v)
	return _u
}

// SetNillableCheckFrequencyHours sets the "check_frequency_hours" field if the given value is not nil.
func (_u *SourceUpdate) SetNillableCheckFrequencyHours(v *int) *SourceUpdate {
	if v != nil {
		_u.SetCheckFrequencyHours(*v)
	}
	return _u
}

// AddCheckFrequencyHours adds value to the "check_frequency_hours" field.
func (_u *SourceUpdate) AddCheckFrequencyHours(v int) *SourceUpdate {
	_u.mutation.AddCheckFrequencyHours(v)
	return _u
}

// SetLastCheckedAt sets the "last_checked_at" field.
func (_u *SourceUpdate) SetLastCheckedAt(v time.Time) *SourceUpdate {
	_u.mutation.SetLastCheckedAt(v)
	return _u
}

// SetNillableLastCheckedAt sets the "last_checked_at" field if the given value is not nil.
func (_u *SourceUpdate) SetNillableLastCheckedAt(v *time.Time) *SourceUpdate {
	if v != nil {
		_u.SetLastCheckedAt(*v)
	}
	return _u
}

// ClearLastCheckedAt clears the value of the "last_checked_at" field.
func (_u *SourceUpdate) ClearLastCheckedAt() *SourceUpdate {
	_u.mutation.ClearLastCheckedAt()
	return _u
}

// SetLastHearingAt sets the "last_hearing_at" field.
func (_u *SourceUpdate) SetLastHearingAt(v time.Time) *SourceUpdate {
	_u.mutation.SetLastHearingAt(v)
	return _u
}

// SetNillableLastHearingAt sets the "last_hearing_at" field if the given value is not nil.
func (_u *SourceUpdate) SetNillableLastHearingAt(v *time.Time) *SourceUpdate {
	if v != nil {
		_u.SetLastHearingAt(*v)
	}
	return _u
}

// ClearLastHearingAt clears the value of the "last_hearing_at" field.
func (_u *SourceUpdate) ClearLastHearingAt() *SourceUpdate {
	_u.mutation.ClearLastHearingAt()
	return _u
}

// SetStatus sets the "status" field.
func (_u *SourceUpdate) SetStatus(v source.Status) *SourceUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *SourceUpdate) SetNillableStatus(v *source.Status) *SourceUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *SourceUpdate) SetErrorMessage(v string) *SourceUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *SourceUpdate) SetNillableErrorMessage(v *string) *SourceUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *SourceUpdate) ClearErrorMessage() *SourceUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// AddHearingIDs adds the "hearings" edge to the Hearing entity by IDs.
func (_u *SourceUpdate) AddHearingIDs(ids ...string) *SourceUpdate {
	_u.mutation.AddHearingIDs(ids...)
	return _u
}

// AddHearings adds the "hearings" edges to the Hearing entity.
func (_u *SourceUpdate) AddHearings(v ...*Hearing) *SourceUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddHearingIDs(ids...)
}

// Mutation returns the SourceMutation object of the builder.
func (_u *SourceUpdate) Mutation() *SourceMutation {
	return _u.mutation
}

// ClearHearings clears all "hearings" edges to the Hearing entity.
func (_u *SourceUpdate) ClearHearings() *SourceUpdate {
	_u.mutation.ClearHearings()
	return _u
}

// RemoveHearingIDs removes the "hearings" edge to Hearing entities by IDs.
func (_u *SourceUpdate) RemoveHearingIDs(ids ...string) *SourceUpdate {
	_u.mutation.RemoveHearingIDs(ids...)
	return _u
}

// RemoveHearings removes "hearings" edges to Hearing entities.
func (_u *SourceUpdate) RemoveHearings(v ...*Hearing) *SourceUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveHearingIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SourceUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SourceUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SourceUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SourceUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *SourceUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := source.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SourceUpdate) check() error {
	if v, ok := _u.mutation.StateCode(); ok {
		if err := source.StateCodeValidator(v); err != nil {
			return &ValidationError{Name: "state_code", err: fmt.Errorf(`ent: validator failed for field "Source.state_code": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Kind(); ok {
		if err := source.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`ent: validator failed for field "Source.kind": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := source.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Source.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ErrorMessage(); ok {
		if err := source.ErrorMessageValidator(v); err != nil {
			return &ValidationError{Name: "error_message", err: fmt.Errorf(`ent: validator failed for field "Source.error_message": %w`, err)}
		}
	}
	return nil
}

func (_u *SourceUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(source.Table, source.Columns, sqlgraph.NewFieldSpec(source.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(source.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.StateCode(); ok {
		_spec.SetField(source.FieldStateCode, field.TypeString, value)
	}
	if value, ok := _u.mutation.Kind(); ok {
		_spec.SetField(source.FieldKind, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.URL(); ok {
		_spec.SetField(source.FieldURL, field.TypeString, value)
	}
	if value, ok := _u.mutation.Config(); ok {
		_spec.SetField(source.FieldConfig, field.TypeJSON, value)
	}
	if _u.mutation.ConfigCleared() {
		_spec.ClearField(source.FieldConfig, field.TypeJSON)
	}
	if value, ok := _u.mutation.Enabled(); ok {
		_spec.SetField(source.FieldEnabled, field.TypeBool, value)
	}
	if value, ok := _u.mutation.CheckFrequencyHours(); ok {
		_spec.SetField(source.FieldCheckFrequencyHours, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCheckFrequencyHours(); ok {
		_spec.AddField(source.FieldCheckFrequencyHours, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastCheckedAt(); ok {
		_spec.SetField(source.FieldLastCheckedAt, field.TypeTime, value)
	}
	if _u.mutation.LastCheckedAtCleared() {
		_spec.ClearField(source.FieldLastCheckedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.LastHearingAt(); ok {
		_spec.SetField(source.FieldLastHearingAt, field.TypeTime, value)
	}
	if _u.mutation.LastHearingAtCleared() {
		_spec.ClearField(source.FieldLastHearingAt, field.TypeTime)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(source.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(source.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(source.FieldErrorMessage, field.TypeString)
	}
	if _u.mutation.HearingsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   source.HearingsTable,
			Columns: []string{source.HearingsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(hearing.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedHearingsIDs(); len(nodes) > 0 && !_u.mutation.HearingsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   source.HearingsTable,
			Columns: []string{source.HearingsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(hearing.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.HearingsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   source.HearingsTable,
			Columns: []string{source.HearingsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(hearing.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{source.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SourceUpdateOne is the builder for updating a single Source entity.
type SourceUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SourceMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *SourceUpdateOne) SetUpdatedAt(v time.Time) *SourceUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetStateCode sets the "state_code" field.
func (_u *SourceUpdateOne) SetStateCode(v string) *SourceUpdateOne {
	_u.mutation.SetStateCode(v)
	return _u
}

// SetNillableStateCode sets the "state_code" field if the given value is not nil.
func (_u *SourceUpdateOne) SetNillableStateCode(v *string) *SourceUpdateOne {
	if v != nil {
		_u.SetStateCode(*v)
	}
	return _u
}

// SetKind sets the "kind" field.
func (_u *SourceUpdateOne) SetKind(v source.Kind) *SourceUpdateOne {
	_u.mutation.SetKind(v)
	return _u
}

// SetNillableKind sets the "kind" field if the given value is not nil.
func (_u *SourceUpdateOne) SetNillableKind(v *source.Kind) *SourceUpdateOne {
	if v != nil {
		_u.SetKind(*v)
	}
	return _u
}

// SetURL sets the "url" field.
func (_u *SourceUpdateOne) SetURL(v string) *SourceUpdateOne {
	_u.mutation.SetURL(v)
	return _u
}

// SetNillableURL sets the "url" field if the given value is not nil.
func (_u *SourceUpdateOne) SetNillableURL(v *string) *SourceUpdateOne {
	if v != nil {
		_u.SetURL(*v)
	}
	return _u
}

// SetConfig sets the "config" field.
func (_u *SourceUpdateOne) SetConfig(v map[string]interface{}) *SourceUpdateOne {
	_u.mutation.SetConfig(v)
	return _u
}

// ClearConfig clears the value of the "config" field.
func (_u *SourceUpdateOne) ClearConfig() *SourceUpdateOne {
	_u.mutation.ClearConfig()
	return _u
}

// SetEnabled sets the "enabled" field.
func (_u *SourceUpdateOne) SetEnabled(v bool) *SourceUpdateOne {
	_u.mutation.SetEnabled(v)
	return _u
}

// SetNillableEnabled sets the "enabled" field if the given value is not nil.
func (_u *SourceUpdateOne) SetNillableEnabled(v *bool) *SourceUpdateOne {
	if v != nil {
		_u.SetEnabled(*v)
	}
	return _u
}

// SetCheckFrequencyHours sets the "check_frequency_hours" field.
func (_u *SourceUpdateOne) SetCheckFrequencyHours(v int) *SourceUpdateOne {
	_u.mutation.ResetCheckFrequencyHours()
	_u.mutation.SetCheckFrequencyHours(v)
	return _u
}

// SetNillableCheckFrequencyHours sets the "check_frequency_hours" field if the given value is not nil.
func (_u *SourceUpdateOne) SetNillableCheckFrequencyHours(v *int) *SourceUpdateOne {
	if v != nil {
		_u.SetCheckFrequencyHours(*v)
	}
	return _u
}

// AddCheckFrequencyHours adds value to the "check_frequency_hours" field.
func (_u *SourceUpdateOne) AddCheckFrequencyHours(v int) *SourceUpdateOne {
	_u.mutation.AddCheckFrequencyHours(v)
	return _u
}

// SetLastCheckedAt sets the "last_checked_at" field.
func (_u *SourceUpdateOne) SetLastCheckedAt(v time.Time) *SourceUpdateOne {
	_u.mutation.SetLastCheckedAt(v)
	return _u
}

// SetNillableLastCheckedAt sets the "last_checked_at" field if the given value is not nil.
func (_u *SourceUpdateOne) SetNillableLastCheckedAt(v *time.Time) *SourceUpdateOne {
	if v != nil {
		_u.SetLastCheckedAt(*v)
	}
	return _u
}

// ClearLastCheckedAt clears the value of the "last_checked_at" field.
func (_u *SourceUpdateOne) ClearLastCheckedAt() *SourceUpdateOne {
	_u.mutation.ClearLastCheckedAt()
	return _u
}

// SetLastHearingAt sets the "last_hearing_at" field.
func (_u *SourceUpdateOne) SetLastHearingAt(v time.Time) *SourceUpdateOne {
	_u.mutation.SetLastHearingAt(v)
	return _u
}

// SetNillableLastHearingAt sets the "last_hearing_at" field if the given value is not nil.
func (_u *SourceUpdateOne) SetNillableLastHearingAt(v *time.Time) *SourceUpdateOne {
	if v != nil {
		_u.SetLastHearingAt(*v)
	}
	return _u
}

// ClearLastHearingAt clears the value of the "last_hearing_at" field.
func (_u *SourceUpdateOne) ClearLastHearingAt() *SourceUpdateOne {
	_u.mutation.ClearLastHearingAt()
	return _u
}

// SetStatus sets the "status" field.
func (_u *SourceUpdateOne) SetStatus(v source.Status) *SourceUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *SourceUpdateOne) SetNillableStatus(v *source.Status) *SourceUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *SourceUpdateOne) SetErrorMessage(v string) *SourceUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *SourceUpdateOne) SetNillableErrorMessage(v *string) *SourceUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *SourceUpdateOne) ClearErrorMessage() *SourceUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// AddHearingIDs adds the "hearings" edge to the Hearing entity by IDs.
func (_u *SourceUpdateOne) AddHearingIDs(ids ...string) *SourceUpdateOne {
	_u.mutation.AddHearingIDs(ids...)
	return _u
}

// AddHearings adds the "hearings" edges to the Hearing entity.
func (_u *SourceUpdateOne) AddHearings(v ...*Hearing) *SourceUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddHearingIDs(ids...)
}

// Mutation returns the SourceMutation object of the builder.
func (_u *SourceUpdateOne) Mutation() *SourceMutation {
	return _u.mutation
}

// ClearHearings clears all "hearings" edges to the Hearing entity.
func (_u *SourceUpdateOne) ClearHearings() *SourceUpdateOne {
	_u.mutation.ClearHearings()
	return _u
}

// RemoveHearingIDs removes the "hearings" edge to Hearing entities by IDs.
func (_u *SourceUpdateOne) RemoveHearingIDs(ids ...string) *SourceUpdateOne {
	_u.mutation.RemoveHearingIDs(ids...)
	return _u
}

// RemoveHearings removes "hearings" edges to Hearing entities.
func (_u *SourceUpdateOne) RemoveHearings(v ...*Hearing) *SourceUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveHearingIDs(ids...)
}

// Where appends a list predicates to the SourceUpdate builder.
func (_u *SourceUpdateOne) Where(ps ...predicate.Source) *SourceUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SourceUpdateOne) Select(field string, fields ...string) *SourceUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Source entity.
func (_u *SourceUpdateOne) Save(ctx context.Context) (*Source, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SourceUpdateOne) SaveX(ctx context.Context) *Source {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SourceUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SourceUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *SourceUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := source.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SourceUpdateOne) check() error {
	if v, ok := _u.mutation.StateCode(); ok {
		if err := source.StateCodeValidator(v); err != nil {
			return &ValidationError{Name: "state_code", err: fmt.Errorf(`ent: validator failed for field "Source.state_code": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Kind(); ok {
		if err := source.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`ent: validator failed for field "Source.kind": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := source.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Source.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ErrorMessage(); ok {
		if err := source.ErrorMessageValidator(v); err != nil {
			return &ValidationError{Name: "error_message", err: fmt.Errorf(`ent: validator failed for field "Source.error_message": %w`, err)}
		}
	}
	return nil
}

func (_u *SourceUpdateOne) sqlSave(ctx context.Context) (_node *Source, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(source.Table, source.Columns, sqlgraph.NewFieldSpec(source.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Source.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, source.FieldID)
		for _, f := range fields {
			if !source.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != source.FieldID {
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
		_spec.SetField(source.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.StateCode(); ok {
		_spec.SetField(source.FieldStateCode, field.TypeString, value)
	}
	if value, ok := _u.mutation.Kind(); ok {
		_spec.SetField(source.FieldKind, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.URL(); ok {
		_spec.SetField(source.FieldURL, field.TypeString, value)
	}
	if value, ok := _u.mutation.Config(); ok {
		_spec.SetField(source.FieldConfig, field.TypeJSON, value)
	}
	if _u.mutation.ConfigCleared() {
		_spec.ClearField(source.FieldConfig, field.TypeJSON)
	}
	if value, ok := _u.mutation.Enabled(); ok {
		_spec.SetField(source.FieldEnabled, field.TypeBool, value)
	}
	if value, ok := _u.mutation.CheckFrequencyHours(); ok {
		_spec.SetField(source.FieldCheckFrequencyHours, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCheckFrequencyHours(); ok {
		_spec.AddField(source.FieldCheckFrequencyHours, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastCheckedAt(); ok {
		_spec.SetField(source.FieldLastCheckedAt, field.TypeTime, value)
	}
	if _u.mutation.LastCheckedAtCleared() {
		_spec.ClearField(source.FieldLastCheckedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.LastHearingAt(); ok {
		_spec.SetField(source.FieldLastHearingAt, field.TypeTime, value)
	}
	if _u.mutation.LastHearingAtCleared() {
		_spec.ClearField(source.FieldLastHearingAt, field.TypeTime)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(source.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(source.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(source.FieldErrorMessage, field.TypeString)
	}
	if _u.mutation.HearingsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   source.HearingsTable,
			Columns: []string{source.HearingsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(hearing.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedHearingsIDs(); len(nodes) > 0 && !_u.mutation.HearingsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   source.HearingsTable,
			Columns: []string{source.HearingsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(hearing.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.HearingsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   source.HearingsTable,
			Columns: []string{source.HearingsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(hearing.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Source{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{source.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
