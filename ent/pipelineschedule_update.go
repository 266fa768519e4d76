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
	"github.com/canaryscope/canaryscope/ent/pipelineschedule"
	"github.com/canaryscope/canaryscope/ent/predicate"
)

// PipelineScheduleUpdate is the builder for updating PipelineSchedule entities.
type PipelineScheduleUpdate struct {
	config
	hooks    []Hook
	mutation *PipelineScheduleMutation
}

// Where appends a list predicates to the PipelineScheduleUpdate builder.
func (_u *PipelineScheduleUpdate) Where(ps ...predicate.PipelineSchedule) *PipelineScheduleUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *PipelineScheduleUpdate) SetUpdatedAt(v time.Time) *PipelineScheduleUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetName sets the "name" field.
func (_u *PipelineScheduleUpdate) SetName(v string) *PipelineScheduleUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *PipelineScheduleUpdate) SetNillableName(v *string) *PipelineScheduleUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetTarget sets the "target" field.
func (_u *PipelineScheduleUpdate) SetTarget(v pipelineschedule.Target) *PipelineScheduleUpdate {
	_u.mutation.SetTarget(v)
	return _u
}

// SetNillableTarget sets the "target" field if the given value is not nil.
func (_u *PipelineScheduleUpdate) SetNillableTarget(v *pipelineschedule.Target) *PipelineScheduleUpdate {
	if v != nil {
		_u.SetTarget(*v)
	}
	return _u
}

// SetScheduleType sets the "schedule_type" field.
func (_u *PipelineScheduleUpdate) SetScheduleType(v pipelineschedule.ScheduleType) *PipelineScheduleUpdate {
	_u.mutation.SetScheduleType(v)
	return _u
}

// SetNillableScheduleType sets the "schedule_type" field if the given value is not nil.
func (_u *PipelineScheduleUpdate) SetNillableScheduleType(v *pipelineschedule.ScheduleType) *PipelineScheduleUpdate {
	if v != nil {
		_u.SetScheduleType(*v)
	}
	return _u
}

// SetScheduleValue sets the "schedule_value" field.
func (_u *PipelineScheduleUpdate) SetScheduleValue(v string) *PipelineScheduleUpdate {
	_u.mutation.SetScheduleValue(v)
	return _u
}

// SetNillableScheduleValue sets the "schedule_value" field if the given value is not nil.
func (_u *PipelineScheduleUpdate) SetNillableScheduleValue(v *string) *PipelineScheduleUpdate {
	if v != nil {
		_u.SetScheduleValue(*v)
	}
	return _u
}

// SetConfig sets the "config" field.
func (_u *PipelineScheduleUpdate) SetConfig(v map[string]interface{}) *PipelineScheduleUpdate {
	_u.mutation.SetConfig(v)
	return _u
}

// ClearConfig clears the value of the "config" field.
func (_u *PipelineScheduleUpdate) ClearConfig() *PipelineScheduleUpdate {
	_u.mutation.ClearConfig()
	return _u
}

// SetEnabled sets the "enabled" field.
func (_u *PipelineScheduleUpdate) SetEnabled(v bool) *PipelineScheduleUpdate {
	_u.mutation.SetEnabled(v)
	return _u
}

// SetNillableEnabled sets the "enabled" field if the given value is not nil.
func (_u *PipelineScheduleUpdate) SetNillableEnabled(v *bool) *PipelineScheduleUpdate {
	if v != nil {
		_u.SetEnabled(*v)
	}
	return _u
}

// SetNextRunAt sets the "next_run_at" field.
func (_u *PipelineScheduleUpdate) SetNextRunAt(v time.Time) *PipelineScheduleUpdate {
	_u.mutation.SetNextRunAt(v)
	return _u
}

// SetNillableNextRunAt sets the "next_run_at" field if the given value is not nil.
func (_u *PipelineScheduleUpdate) SetNillableNextRunAt(v *time.Time) *PipelineScheduleUpdate {
	if v != nil {
		_u.SetNextRunAt(*v)
	}
	return _u
}

// ClearNextRunAt clears the value of the "next_run_at" field.
func (_u *PipelineScheduleUpdate) ClearNextRunAt() *PipelineScheduleUpdate {
	_u.mutation.ClearNextRunAt()
	return _u
}

// SetLastRunAt sets the "last_run_at" field.
func (_u *PipelineScheduleUpdate) SetLastRunAt(v time.Time) *PipelineScheduleUpdate {
	_u.mutation.SetLastRunAt(v)
	return _u
}

// SetNillableLastRunAt sets the "last_run_at" field if the given value is not nil.
func (_u *PipelineScheduleUpdate) SetNillableLastRunAt(v *time.Time) *PipelineScheduleUpdate {
	if v != nil {
		_u.SetLastRunAt(*v)
	}
	return _u
}

// ClearLastRunAt clears the value of the "last_run_at" field.
func (_u *PipelineScheduleUpdate) ClearLastRunAt() *PipelineScheduleUpdate {
	_u.mutation.ClearLastRunAt()
	return _u
}

// SetLastRunStatus sets the "last_run_status" field.
func (_u *PipelineScheduleUpdate) SetLastRunStatus(v string) *PipelineScheduleUpdate {
	_u.mutation.SetLastRunStatus(v)
	return _u
}

// SetNillableLastRunStatus sets the "last_run_status" field if the given value is not nil.
func (_u *PipelineScheduleUpdate) SetNillableLastRunStatus(v *string) *PipelineScheduleUpdate {
	if v != nil {
		_u.SetLastRunStatus(*v)
	}
	return _u
}

// ClearLastRunStatus clears the value of the "last_run_status" field.
func (_u *PipelineScheduleUpdate) ClearLastRunStatus() *PipelineScheduleUpdate {
	_u.mutation.ClearLastRunStatus()
	return _u
}

// SetLastRunError sets the "last_run_error" field.
func (_u *PipelineScheduleUpdate) SetLastRunError(v string) *PipelineScheduleUpdate {
	_u.mutation.SetLastRunError(v)
	return _u
}

// SetNillableLastRunError sets the "last_run_error" field if the given value is not nil.
func (_u *PipelineScheduleUpdate) SetNillableLastRunError(v *string) *PipelineScheduleUpdate {
	if v != nil {
		_u.SetLastRunError(*v)
	}
	return _u
}

// ClearLastRunError clears the value of the "last_run_error" field.
func (_u *PipelineScheduleUpdate) ClearLastRunError() *PipelineScheduleUpdate {
	_u.mutation.ClearLastRunError()
	return _u
}

// Mutation returns the PipelineScheduleMutation object of the builder.
func (_u *PipelineScheduleUpdate) Mutation() *PipelineScheduleMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *PipelineScheduleUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PipelineScheduleUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *PipelineScheduleUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PipelineScheduleUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *PipelineScheduleUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := pipelineschedule.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PipelineScheduleUpdate) check() error {
	if v, ok := _u.mutation.Target(); ok {
		if err := pipelineschedule.TargetValidator(v); err != nil {
			return &ValidationError{Name: "target", err: fmt.Errorf(`ent: validator failed for field "PipelineSchedule.target": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ScheduleType(); ok {
		if err := pipelineschedule.ScheduleTypeValidator(v); err != nil {
			return &ValidationError{Name: "schedule_type", err: fmt.Errorf(`ent: validator failed for field "PipelineSchedule.schedule_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.LastRunError(); ok {
		if err := pipelineschedule.LastRunErrorValidator(v); err != nil {
			return &ValidationError{Name: "last_run_error", err: fmt.Errorf(`ent: validator failed for field "PipelineSchedule.last_run_error": %w`, err)}
		}
	}
	return nil
}

func (_u *PipelineScheduleUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(pipelineschedule.Table, pipelineschedule.Columns, sqlgraph.NewFieldSpec(pipelineschedule.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(pipelineschedule.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(pipelineschedule.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Target(); ok {
		_spec.SetField(pipelineschedule.FieldTarget, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ScheduleType(); ok {
		_spec.SetField(pipelineschedule.FieldScheduleType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ScheduleValue(); ok {
		_spec.SetField(pipelineschedule.FieldScheduleValue, field.TypeString, value)
	}
	if value, ok := _u.mutation.Config(); ok {
		_spec.SetField(pipelineschedule.FieldConfig, field.TypeJSON, value)
	}
	if _u.mutation.ConfigCleared() {
		_spec.ClearField(pipelineschedule.FieldConfig, field.TypeJSON)
	}
	if value, ok := _u.mutation.Enabled(); ok {
		_spec.SetField(pipelineschedule.FieldEnabled, field.TypeBool, value)
	}
	if value, ok := _u.mutation.NextRunAt(); ok {
		_spec.SetField(pipelineschedule.FieldNextRunAt, field.TypeTime, value)
	}
	if _u.mutation.NextRunAtCleared() {
		_spec.ClearField(pipelineschedule.FieldNextRunAt, field.TypeTime)
	}
	if value, ok := _u.mutation.LastRunAt(); ok {
		_spec.SetField(pipelineschedule.FieldLastRunAt, field.TypeTime, value)
	}
	if _u.mutation.LastRunAtCleared() {
		_spec.ClearField(pipelineschedule.FieldLastRunAt, field.TypeTime)
	}
	if value, ok := _u.mutation.LastRunStatus(); ok {
		_spec.SetField(pipelineschedule.FieldLastRunStatus, field.TypeString, value)
	}
	if _u.mutation.LastRunStatusCleared() {
		_spec.ClearField(pipelineschedule.FieldLastRunStatus, field.TypeString)
	}
	if value, ok := _u.mutation.LastRunError(); ok {
		_spec.SetField(pipelineschedule.FieldLastRunError, field.TypeString, value)
	}
	if _u.mutation.LastRunErrorCleared() {
		_spec.ClearField(pipelineschedule.FieldLastRunError, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{pipelineschedule.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// PipelineScheduleUpdateOne is the builder for updating a single PipelineSchedule entity.
type PipelineScheduleUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PipelineScheduleMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *PipelineScheduleUpdateOne) SetUpdatedAt(v time.Time) *PipelineScheduleUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetName sets the "name" field.
func (_u *PipelineScheduleUpdateOne) SetName(v string) *PipelineScheduleUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *PipelineScheduleUpdateOne) SetNillableName(v *string) *PipelineScheduleUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetTarget sets the "target" field.
func (_u *PipelineScheduleUpdateOne) SetTarget(v pipelineschedule.Target) *PipelineScheduleUpdateOne {
	_u.mutation.SetTarget(v)
	return _u
}

// SetNillableTarget sets the "target" field if the given value is not nil.
func (_u *PipelineScheduleUpdateOne) SetNillableTarget(v *pipelineschedule.Target) *PipelineScheduleUpdateOne {
	if v != nil {
		_u.SetTarget(*v)
	}
	return _u
}

// SetScheduleType sets the "schedule_type" field.
func (_u *PipelineScheduleUpdateOne) SetScheduleType(v pipelineschedule.ScheduleType) *PipelineScheduleUpdateOne {
	_u.mutation.SetScheduleType(v)
	return _u
}

// SetNillableScheduleType sets the "schedule_type" field if the given value is not nil.
func (_u *PipelineScheduleUpdateOne) SetNillableScheduleType(v *pipelineschedule.ScheduleType) *PipelineScheduleUpdateOne {
	if v != nil {
		_u.SetScheduleType(*v)
	}
	return _u
}

// SetScheduleValue sets the "schedule_value" field.
func (_u *PipelineScheduleUpdateOne) SetScheduleValue(v string) *PipelineScheduleUpdateOne {
	_u.mutation.SetScheduleValue(v)
	return _u
}

// SetNillableScheduleValue sets the "schedule_value" field if the given value is not nil.
func (_u *PipelineScheduleUpdateOne) SetNillableScheduleValue(v *string) *PipelineScheduleUpdateOne {
	if v != nil {
		_u.SetScheduleValue(*v)
	}
	return _u
}

// SetConfig sets the "config" field.
func (_u *PipelineScheduleUpdateOne) SetConfig(v map[string]interface{}) *PipelineScheduleUpdateOne {
	_u.mutation.SetConfig(v)
	return _u
}

// ClearConfig clears the value of the "config" field.
func (_u *PipelineScheduleUpdateOne) ClearConfig() *PipelineScheduleUpdateOne {
	_u.mutation.ClearConfig()
	return _u
}

// SetEnabled sets the "enabled" field.
func (_u *PipelineScheduleUpdateOne) SetEnabled(v bool) *PipelineScheduleUpdateOne {
	_u.mutation.SetEnabled(v)
	return _u
}

// SetNillableEnabled sets the "enabled" field if the given value is not nil.
func (_u *PipelineScheduleUpdateOne) SetNillableEnabled(v *bool) *PipelineScheduleUpdateOne {
	if v != nil {
		_u.SetEnabled(*v)
	}
	return _u
}

// SetNextRunAt sets the "next_run_at" field.
func (_u *PipelineScheduleUpdateOne) SetNextRunAt(v time.Time) *PipelineScheduleUpdateOne {
	_u.mutation.SetNextRunAt(v)
	return _u
}

// SetNillableNextRunAt sets the "next_run_at" field if the given value is not nil.
func (_u *PipelineScheduleUpdateOne) SetNillableNextRunAt(v *time.Time) *PipelineScheduleUpdateOne {
	if v != nil {
		_u.SetNextRunAt(*v)
	}
	return _u
}

// ClearNextRunAt clears the value of the "next_run_at" field.
func (_u *PipelineScheduleUpdateOne) ClearNextRunAt() *PipelineScheduleUpdateOne {
	_u.mutation.ClearNextRunAt()
	return _u
}

// SetLastRunAt sets the "last_run_at" field.
func (_u *PipelineScheduleUpdateOne) SetLastRunAt(v time.Time) *PipelineScheduleUpdateOne {
	_u.mutation.SetLastRunAt(v)
	return _u
}

// SetNillableLastRunAt sets the "last_run_at" field if the given value is not nil.
func (_u *PipelineScheduleUpdateOne) SetNillableLastRunAt(v *time.Time) *PipelineScheduleUpdateOne {
	if v != nil {
		_u.SetLastRunAt(*v)
	}
	return _u
}

// ClearLastRunAt clears the value of the "last_run_at" field.
func (_u *PipelineScheduleUpdateOne) ClearLastRunAt() *PipelineScheduleUpdateOne {
	_u.mutation.ClearLastRunAt()
	return _u
}

// SetLastRunStatus sets the "last_run_status" field.
func (_u *PipelineScheduleUpdateOne) SetLastRunStatus(v string) *PipelineScheduleUpdateOne {
	_u.mutation.SetLastRunStatus(v)
	return _u
}

// SetNillableLastRunStatus sets the "last_run_status" field if the given value is not nil.
func (_u *PipelineScheduleUpdateOne) SetNillableLastRunStatus(v *string) *PipelineScheduleUpdateOne {
	if v != nil {
		_u.SetLastRunStatus(*v)
	}
	return _u
}

// ClearLastRunStatus clears the value of the "last_run_status" field.
func (_u *PipelineScheduleUpdateOne) ClearLastRunStatus() *PipelineScheduleUpdateOne {
	_u.mutation.ClearLastRunStatus()
	return _u
}

// SetLastRunError sets the "last_run_error" field.
func (_u *PipelineScheduleUpdateOne) SetLastRunError(v string) *PipelineScheduleUpdateOne {
	_u.mutation.SetLastRunError(v)
	return _u
}

// SetNillableLastRunError sets the "last_run_error" field if the given value is not nil.
func (_u *PipelineScheduleUpdateOne) SetNillableLastRunError(v *string) *PipelineScheduleUpdateOne {
	if v != nil {
		_u.SetLastRunError(*v)
	}
	return _u
}

// ClearLastRunError clears the value of the "last_run_error" field.
func (_u *PipelineScheduleUpdateOne) ClearLastRunError() *PipelineScheduleUpdateOne {
	_u.mutation.ClearLastRunError()
	return _u
}

// Mutation returns the PipelineScheduleMutation object of the builder.
func (_u *PipelineScheduleUpdateOne) Mutation() *PipelineScheduleMutation {
	return _u.mutation
}

// Where appends a list predicates to the PipelineScheduleUpdate builder.
func (_u *PipelineScheduleUpdateOne) Where(ps ...predicate.PipelineSchedule) *PipelineScheduleUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *PipelineScheduleUpdateOne) Select(field string, fields ...string) *PipelineScheduleUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated PipelineSchedule entity.
func (_u *PipelineScheduleUpdateOne) Save(ctx context.Context) (*PipelineSchedule, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PipelineScheduleUpdateOne) SaveX(ctx context.Context) *PipelineSchedule {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *PipelineScheduleUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PipelineScheduleUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *PipelineScheduleUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := pipelineschedule.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PipelineScheduleUpdateOne) check() error {
	if v, ok := _u.mutation.Target(); ok {
		if err := pipelineschedule.TargetValidator(v); err != nil {
			return &ValidationError{Name: "target", err: fmt.Errorf(`ent: validator failed for field "PipelineSchedule.target": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ScheduleType(); ok {
		if err := pipelineschedule.ScheduleTypeValidator(v); err != nil {
			return &ValidationError{Name: "schedule_type", err: fmt.Errorf(`ent: validator failed for field "PipelineSchedule.schedule_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.LastRunError(); ok {
		if err := pipelineschedule.LastRunErrorValidator(v); err != nil {
			return &ValidationError{Name: "last_run_error", err: fmt.Errorf(`ent: validator failed for field "PipelineSchedule.last_run_error": %w`, err)}
		}
	}
	return nil
}

func (_u *PipelineScheduleUpdateOne) sqlSave(ctx context.Context) (_node *PipelineSchedule, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(pipelineschedule.Table, pipelineschedule.Columns, sqlgraph.NewFieldSpec(pipelineschedule.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "PipelineSchedule.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, pipelineschedule.FieldID)
		for _, f := range fields {
			if !pipelineschedule.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != pipelineschedule.FieldID {
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
		_spec.SetField(pipelineschedule.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(pipelineschedule.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Target(); ok {
		_spec.SetField(pipelineschedule.FieldTarget, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ScheduleType(); ok {
		_spec.SetField(pipelineschedule.FieldScheduleType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ScheduleValue(); ok {
		_spec.SetField(pipelineschedule.FieldScheduleValue, field.TypeString, value)
	}
	if value, ok := _u.mutation.Config(); ok {
		_spec.SetField(pipelineschedule.FieldConfig, field.TypeJSON, value)
	}
	if _u.mutation.ConfigCleared() {
		_spec.ClearField(pipelineschedule.FieldConfig, field.TypeJSON)
	}
	if value, ok := _u.mutation.Enabled(); ok {
		_spec.SetField(pipelineschedule.FieldEnabled, field.TypeBool, value)
	}
	if value, ok := _u.mutation.NextRunAt(); ok {
		_spec.SetField(pipelineschedule.FieldNextRunAt, field.TypeTime, value)
	}
	if _u.mutation.NextRunAtCleared() {
		_spec.ClearField(pipelineschedule.FieldNextRunAt, field.TypeTime)
	}
	if value, ok := _u.mutation.LastRunAt(); ok {
		_spec.SetField(pipelineschedule.FieldLastRunAt, field.TypeTime, value)
	}
	if _u.mutation.LastRunAtCleared() {
		_spec.ClearField(pipelineschedule.FieldLastRunAt, field.TypeTime)
	}
	if value, ok := _u.mutation.LastRunStatus(); ok {
		_spec.SetField(pipelineschedule.FieldLastRunStatus, field.TypeString, value)
	}
	if _u.mutation.LastRunStatusCleared() {
		_spec.ClearField(pipelineschedule.FieldLastRunStatus, field.TypeString)
	}
	if value, ok := _u.mutation.LastRunError(); ok {
		_spec.SetField(pipelineschedule.FieldLastRunError, field.TypeString, value)
	}
	if _u.mutation.LastRunErrorCleared() {
		_spec.ClearField(pipelineschedule.FieldLastRunError, field.TypeString)
	}
	_node = &PipelineSchedule{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{pipelineschedule.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
