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
	"github.com/canaryscope/canaryscope/ent/pipelinestate"
	"github.com/canaryscope/canaryscope/ent/predicate"
)

// PipelineStateUpdate is the builder for updating PipelineState entities.
type PipelineStateUpdate struct {
	config
	hooks    []Hook
	mutation *PipelineStateMutation
}

// Where appends a list predicates to the PipelineStateUpdate builder.
func (_u *PipelineStateUpdate) Where(ps ...predicate.PipelineState) *PipelineStateUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *PipelineStateUpdate) SetUpdatedAt(v time.Time) *PipelineStateUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetPaused sets the "paused" field.
func (_u *PipelineStateUpdate) SetPaused(v bool) *PipelineStateUpdate {
	_u.mutation.SetPaused(v)
	return _u
}

// SetNillablePaused sets the "paused" field if the given value is not nil.
func (_u *PipelineStateUpdate) SetNillablePaused(v *bool) *PipelineStateUpdate {
	if v != nil {
		_u.SetPaused(*v)
	}
	return _u
}

// Mutation returns the PipelineStateMutation object of the builder.
func (_u *PipelineStateUpdate) Mutation() *PipelineStateMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *PipelineStateUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PipelineStateUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *PipelineStateUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PipelineStateUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *PipelineStateUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := pipelinestate.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *PipelineStateUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(pipelinestate.Table, pipelinestate.Columns, sqlgraph.NewFieldSpec(pipelinestate.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(pipelinestate.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Paused(); ok {
		_spec.SetField(pipelinestate.FieldPaused, field.TypeBool, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{pipelinestate.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// PipelineStateUpdateOne is the builder for updating a single PipelineState entity.
type PipelineStateUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PipelineStateMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *PipelineStateUpdateOne) SetUpdatedAt(v time.Time) *PipelineStateUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetPaused sets the "paused" field.
func (_u *PipelineStateUpdateOne) SetPaused(v bool) *PipelineStateUpdateOne {
	_u.mutation.SetPaused(v)
	return _u
}

// SetNillablePaused sets the "paused" field if the given value is not nil.
func (_u *PipelineStateUpdateOne) SetNillablePaused(v *bool) *PipelineStateUpdateOne {
	if v != nil {
		_u.SetPaused(*v)
	}
	return _u
}

// Mutation returns the PipelineStateMutation object of the builder.
func (_u *PipelineStateUpdateOne) Mutation() *PipelineStateMutation {
	return _u.mutation
}

// Where appends a list predicates to the PipelineStateUpdate builder.
func (_u *PipelineStateUpdateOne) Where(ps ...predicate.PipelineState) *PipelineStateUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *PipelineStateUpdateOne) Select(field string, fields ...string) *PipelineStateUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated PipelineState entity.
func (_u *PipelineStateUpdateOne) Save(ctx context.Context) (*PipelineState, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PipelineStateUpdateOne) SaveX(ctx context.Context) *PipelineState {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *PipelineStateUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PipelineStateUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *PipelineStateUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := pipelinestate.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *PipelineStateUpdateOne) sqlSave(ctx context.Context) (_node *PipelineState, err error) {
	_spec := sqlgraph.NewUpdateSpec(pipelinestate.Table, pipelinestate.Columns, sqlgraph.NewFieldSpec(pipelinestate.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "PipelineState.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, pipelinestate.FieldID)
		for _, f := range fields {
			if !pipelinestate.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != pipelinestate.FieldID {
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
		_spec.SetField(pipelinestate.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Paused(); ok {
		_spec.SetField(pipelinestate.FieldPaused, field.TypeBool, value)
	}
	_node = &PipelineState{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{pipelinestate.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
