// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/canaryscope/canaryscope/ent/pipelineschedule"
)

// PipelineScheduleCreate is the builder for creating a PipelineSchedule entity.
type PipelineScheduleCreate struct {
	config
	mutation *PipelineScheduleMutation
	hooks    []Hook
}

// SetCreatedAt sets the "created_at" field.
func (_c *PipelineScheduleCreate) SetCreatedAt(v time.Time) *PipelineScheduleCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *PipelineScheduleCreate) SetNillableCreatedAt(v *time.Time) *PipelineScheduleCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *PipelineScheduleCreate) SetUpdatedAt(v time.Time) *PipelineScheduleCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *PipelineScheduleCreate) SetNillableUpdatedAt(v *time.Time) *PipelineScheduleCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetName sets the "name" field.
func (_c *PipelineScheduleCreate) SetName(v string) *PipelineScheduleCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetTarget sets the "target" field.
func (_c *PipelineScheduleCreate) SetTarget(v pipelineschedule.Target) *PipelineScheduleCreate {
	_c.mutation.SetTarget(v)
	return _c
}

// SetScheduleType sets the "schedule_type" field.
func (_c *PipelineScheduleCreate) SetScheduleType(v pipelineschedule.ScheduleType) *PipelineScheduleCreate {
	_c.mutation.SetScheduleType(v)
	return _c
}

// SetScheduleValue sets the "schedule_value" field.
func (_c *PipelineScheduleCreate) SetScheduleValue(v string) *PipelineScheduleCreate {
	_c.mutation.SetScheduleValue(v)
	return _c
}

// SetConfig sets the "config" field.
func (_c *PipelineScheduleCreate) SetConfig(v map[string]interface{}) *PipelineScheduleCreate {
	_c.mutation.SetConfig(v)
	return _c
}

// SetEnabled sets the "enabled" field.
func (_c *PipelineScheduleCreate) SetEnabled(v bool) *PipelineScheduleCreate {
	_c.mutation.SetEnabled(v)
	return _c
}

// SetNillableEnabled sets the "enabled" field if the given value is not nil.
func (_c *PipelineScheduleCreate) SetNillableEnabled(v *bool) *PipelineScheduleCreate {
	if v != nil {
		_c.SetEnabled(*v)
	}
	return _c
}

// SetNextRunAt sets the "next_run_at" field.
func (_c *PipelineScheduleCreate) SetNextRunAt(v time.Time) *PipelineScheduleCreate {
	_c.mutation.SetNextRunAt(v)
	return _c
}

// SetNillableNextRunAt sets the "next_run_at" field if the given value is not nil.
func (_c *PipelineScheduleCreate) SetNillableNextRunAt(v *time.Time) *PipelineScheduleCreate {
	if v != nil {
		_c.SetNextRunAt(*v)
	}
	return _c
}

// SetLastRunAt sets the "last_run_at" field.
func (_c *PipelineScheduleCreate) SetLastRunAt(v time.Time) *PipelineScheduleCreate {
	_c.mutation.SetLastRunAt(v)
	return _c
}

// SetNillableLastRunAt sets the "last_run_at" field if the given value is not nil.
func (_c *PipelineScheduleCreate) SetNillableLastRunAt(v *time.Time) *PipelineScheduleCreate {
	if v != nil {
		_c.SetLastRunAt(*v)
	}
	return _c
}

// SetLastRunStatus sets the "last_run_status" field.
func (_c *PipelineScheduleCreate) SetLastRunStatus(v string) *PipelineScheduleCreate {
	_c.mutation.SetLastRunStatus(v)
	return _c
}

// SetNillableLastRunStatus sets the "last_run_status" field if the given value is not nil.
func (_c *PipelineScheduleCreate) SetNillableLastRunStatus(v *string) *PipelineScheduleCreate {
	if v != nil {
		_c.SetLastRunStatus(*v)
	}
	return _c
}

// SetLastRunError sets the "last_run_error" field.
func (_c *PipelineScheduleCreate) SetLastRunError(v string) *PipelineScheduleCreate {
	_c.mutation.SetLastRunError(v)
	return _c
}

// SetNillableLastRunError sets the "last_run_error" field if the given value is not nil.
func (_c *PipelineScheduleCreate) SetNillableLastRunError(v *string) *PipelineScheduleCreate {
	if v != nil {
		_c.SetLastRunError(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *PipelineScheduleCreate) SetID(v string) *PipelineScheduleCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the PipelineScheduleMutation object of the builder.
func (_c *PipelineScheduleCreate) Mutation() *PipelineScheduleMutation {
	return _c.mutation
}

// Save creates the PipelineSchedule in the database.
func (_c *PipelineScheduleCreate) Save(ctx context.Context) (*PipelineSchedule, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *PipelineScheduleCreate) SaveX(ctx context.Context) *PipelineSchedule {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PipelineScheduleCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PipelineScheduleCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *PipelineScheduleCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := pipelineschedule.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := pipelineschedule.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.Enabled(); !ok {
		v := pipelineschedule.DefaultEnabled
		_c.mutation.SetEnabled(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *PipelineScheduleCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "PipelineSchedule.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "PipelineSchedule.updated_at"`)}
	}
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "PipelineSchedule.name"`)}
	}
	if _, ok := _c.mutation.Target(); !ok {
		return &ValidationError{Name: "target", err: errors.New(`ent: missing required field "PipelineSchedule.target"`)}
	}
	if v, ok := _c.mutation.Target(); ok {
		if err := pipelineschedule.TargetValidator(v); err != nil {
			return &ValidationError{Name: "target", err: fmt.Errorf(`ent: validator failed for field "PipelineSchedule.target": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ScheduleType(); !ok {
		return &ValidationError{Name: "schedule_type", err: errors.New(`ent: missing required field "PipelineSchedule.schedule_type"`)}
	}
	if v, ok := _c.mutation.ScheduleType(); ok {
		if err := pipelineschedule.ScheduleTypeValidator(v); err != nil {
			return &ValidationError{Name: "schedule_type", err: fmt.Errorf(`ent: validator failed for field "PipelineSchedule.schedule_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ScheduleValue(); !ok {
		return &ValidationError{Name: "schedule_value", err: errors.New(`ent: missing required field "PipelineSchedule.schedule_value"`)}
	}
	if _, ok := _c.mutation.Enabled(); !ok {
		return &ValidationError{Name: "enabled", err: errors.New(`ent: missing required field "PipelineSchedule.enabled"`)}
	}
	if v, ok := _c.mutation.LastRunError(); ok {
		if err := pipelineschedule.LastRunErrorValidator(v); err != nil {
			return &ValidationError{Name: "last_run_error", err: fmt.Errorf(`ent: validator failed for field "PipelineSchedule.last_run_error": %w`, err)}
		}
	}
	return nil
}

func (_c *PipelineScheduleCreate) sqlSave(ctx context.Context) (*PipelineSchedule, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected PipelineSchedule.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *PipelineScheduleCreate) createSpec() (*PipelineSchedule, *sqlgraph.CreateSpec) {
	var (
		_node = &PipelineSchedule{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(pipelineschedule.Table, sqlgraph.NewFieldSpec(pipelineschedule.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(pipelineschedule.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(pipelineschedule.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(pipelineschedule.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.Target(); ok {
		_spec.SetField(pipelineschedule.FieldTarget, field.TypeEnum, value)
		_node.Target = value
	}
	if value, ok := _c.mutation.ScheduleType(); ok {
		_spec.SetField(pipelineschedule.FieldScheduleType, field.TypeEnum, value)
		_node.ScheduleType = value
	}
	if value, ok := _c.mutation.ScheduleValue(); ok {
		_spec.SetField(pipelineschedule.FieldScheduleValue, field.TypeString, value)
		_node.ScheduleValue = value
	}
	if value, ok := _c.mutation.Config(); ok {
		_spec.SetField(pipelineschedule.FieldConfig, field.TypeJSON, value)
		_node.Config = value
	}
	if value, ok := _c.mutation.Enabled(); ok {
		_spec.SetField(pipelineschedule.FieldEnabled, field.TypeBool, value)
		_node.Enabled = value
	}
	if value, ok := _c.mutation.NextRunAt(); ok {
		_spec.SetField(pipelineschedule.FieldNextRunAt, field.TypeTime, value)
		_node.NextRunAt = &value
	}
	if value, ok := _c.mutation.LastRunAt(); ok {
		_spec.SetField(pipelineschedule.FieldLastRunAt, field.TypeTime, value)
		_node.LastRunAt = &value
	}
	if value, ok := _c.mutation.LastRunStatus(); ok {
		_spec.SetField(pipelineschedule.FieldLastRunStatus, field.TypeString, value)
		_node.LastRunStatus = value
	}
	if value, ok := _c.mutation.LastRunError(); ok {
		_spec.SetField(pipelineschedule.FieldLastRunError, field.TypeString, value)
		_node.LastRunError = value
	}
	return _node, _spec
}

// PipelineScheduleCreateBulk is the builder for creating many PipelineSchedule entities in bulk.
type PipelineScheduleCreateBulk struct {
	config
	err      error
	builders []*PipelineScheduleCreate
}

// Save creates the PipelineSchedule entities in the database.
func (_c *PipelineScheduleCreateBulk) Save(ctx context.Context) ([]*PipelineSchedule, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*PipelineSchedule, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*PipelineScheduleMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *PipelineScheduleCreateBulk) SaveX(ctx context.Context) []*PipelineSchedule {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PipelineScheduleCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PipelineScheduleCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
