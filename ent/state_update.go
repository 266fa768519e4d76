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
	"github.com/canaryscope/canaryscope/ent/predicate"
	"github.com/canaryscope/canaryscope/ent/state"
)

// StateUpdate is the builder for updating State entities.
type StateUpdate struct {
	config
	hooks    []Hook
	mutation *StateMutation
}

// Where appends a list predicates to the StateUpdate builder.
func (_u *StateUpdate) Where(ps ...predicate.State) *StateUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *StateUpdate) SetUpdatedAt(v time.Time) *StateUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetCode sets the "code" field.
func (_u *StateUpdate) SetCode(v string) *StateUpdate {
	_u.mutation.SetCode(v)
	return _u
}

// SetNillableCode sets the "code" field if the given value is not nil.
func (_u *StateUpdate) SetNillableCode(v *string) *StateUpdate {
	if v != nil {
		_u.SetCode(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *StateUpdate) SetName(v string) *StateUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *StateUpdate) SetNillableName(v *string) *StateUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetCommissionName sets the "commission_name" field.
func (_u *StateUpdate) SetCommissionName(v string) *StateUpdate {
	_u.mutation.SetCommissionName(v)
	return _u
}

// SetNillableCommissionName sets the "commission_name" field if the given value is not nil.
func (_u *StateUpdate) SetNillableCommissionName(v *string) *StateUpdate {
	if v != nil {
		_u.SetCommissionName(*v)
	}
	return _u
}

// ClearCommissionName clears the value of the "commission_name" field.
func (_u *StateUpdate) ClearCommissionName() *StateUpdate {
	_u.mutation.ClearCommissionName()
	return _u
}

// Mutation returns the StateMutation object of the builder.
func (_u *StateUpdate) Mutation() *StateMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *StateUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *StateUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *StateUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *StateUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *StateUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := state.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *StateUpdate) check() error {
	if v, ok := _u.mutation.Code(); ok {
		if err := state.CodeValidator(v); err != nil {
			return &ValidationError{Name: "code", err: fmt.Errorf(`ent: validator failed for field "State.code": %w`, err)}
		}
	}
	return nil
}

func (_u *StateUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(state.Table, state.Columns, sqlgraph.NewFieldSpec(state.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(state.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Code(); ok {
		_spec.SetField(state.FieldCode, field.TypeString, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(state.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.CommissionName(); ok {
		_spec.SetField(state.FieldCommissionName, field.TypeString, value)
	}
	if _u.mutation.CommissionNameCleared() {
		_spec.ClearField(state.FieldCommissionName, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{state.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// StateUpdateOne is the builder for updating a single State entity.
type StateUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *StateMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *StateUpdateOne) SetUpdatedAt(v time.Time) *StateUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetCode sets the "code" field.
func (_u *StateUpdateOne) SetCode(v string) *StateUpdateOne {
	_u.mutation.SetCode(v)
	return _u
}

// SetNillableCode sets the "code" field if the given value is not nil.
func (_u *StateUpdateOne) SetNillableCode(v *string) *StateUpdateOne {
	if v != nil {
		_u.SetCode(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *StateUpdateOne) SetName(v string) *StateUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *StateUpdateOne) SetNillableName(v *string) *StateUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetCommissionName sets the "commission_name" field.
func (_u *StateUpdateOne) SetCommissionName(v string) *StateUpdateOne {
	_u.mutation.SetCommissionName(v)
	return _u
}

// SetNillableCommissionName sets the "commission_name" field if the given value is not nil.
func (_u *StateUpdateOne) SetNillableCommissionName(v *string) *StateUpdateOne {
	if v != nil {
		_u.SetCommissionName(*v)
	}
	return _u
}

// ClearCommissionName clears the value of the "commission_name" field.
func (_u *StateUpdateOne) ClearCommissionName() *StateUpdateOne {
	_u.mutation.ClearCommissionName()
	return _u
}

// Mutation returns the StateMutation object of the builder.
func (_u *StateUpdateOne) Mutation() *StateMutation {
	return _u.mutation
}

// Where appends a list predicates to the StateUpdate builder.
func (_u *StateUpdateOne) Where(ps ...predicate.State) *StateUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *StateUpdateOne) Select(field string, fields ...string) *StateUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated State entity.
func (_u *StateUpdateOne) Save(ctx context.Context) (*State, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *StateUpdateOne) SaveX(ctx context.Context) *State {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *StateUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *StateUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *StateUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := state.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *StateUpdateOne) check() error {
	if v, ok := _u.mutation.Code(); ok {
		if err := state.CodeValidator(v); err != nil {
			return &ValidationError{Name: "code", err: fmt.Errorf(`ent: validator failed for field "State.code": %w`, err)}
		}
	}
	return nil
}

func (_u *StateUpdateOne) sqlSave(ctx context.Context) (_node *State, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(state.Table, state.Columns, sqlgraph.NewFieldSpec(state.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "State.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, state.FieldID)
		for _, f := range fields {
			if !state.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != state.FieldID {
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
		_spec.SetField(state.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Code(); ok {
		_spec.SetField(state.FieldCode, field.TypeString, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(state.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.CommissionName(); ok {
		_spec.SetField(state.FieldCommissionName, field.TypeString, value)
	}
	if _u.mutation.CommissionNameCleared() {
		_spec.ClearField(state.FieldCommissionName, field.TypeString)
	}
	_node = &State{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{state.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
