// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/canaryscope/canaryscope/ent/hearing"
	"github.com/canaryscope/canaryscope/ent/hearingutility"
	"github.com/canaryscope/canaryscope/ent/utility"
)

// HearingUtilityCreate is the builder for creating a HearingUtility entity.
type HearingUtilityCreate struct {
	config
	mutation *HearingUtilityMutation
	hooks    []Hook
}

// SetCreatedAt sets the "created_at" field.
func (_c *HearingUtilityCreate) SetCreatedAt(v time.Time) *HearingUtilityCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *HearingUtilityCreate) SetNillableCreatedAt(v *time.Time) *HearingUtilityCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *HearingUtilityCreate) SetUpdatedAt(v time.Time) *HearingUtilityCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *HearingUtilityCreate) SetNillableUpdatedAt(v *time.Time) *HearingUtilityCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetHearingID sets the "hearing_id" field.
func (_c *HearingUtilityCreate) SetHearingID(v string) *HearingUtilityCreate {
	_c.mutation.SetHearingID(v)
	return _c
}

// SetUtilityID sets the "utility_id" field.
func (_c *HearingUtilityCreate) SetUtilityID(v string) *HearingUtilityCreate {
	_c.mutation.SetUtilityID(v)
	return _c
}

// SetNillableUtilityID sets the "utility_id" field if the given value is not nil.
func (_c *HearingUtilityCreate) SetNillableUtilityID(v *string) *HearingUtilityCreate {
	if v != nil {
		_c.SetUtilityID(*v)
	}
	return _c
}

// SetRawName sets the "raw_name" field.
func (_c *HearingUtilityCreate) SetRawName(v string) *HearingUtilityCreate {
	_c.mutation.SetRawName(v)
	return _c
}

// SetRole sets the "role" field.
func (_c *HearingUtilityCreate) SetRole(v string) *HearingUtilityCreate {
	_c.mutation.SetRole(v)
	return _c
}

// SetNillableRole sets the "role" field if the given value is not nil.
func (_c *HearingUtilityCreate) SetNillableRole(v *string) *HearingUtilityCreate {
	if v != nil {
		_c.SetRole(*v)
	}
	return _c
}

// SetConfidence sets the "confidence" field.
func (_c *HearingUtilityCreate) SetConfidence(v float64) *HearingUtilityCreate {
	_c.mutation.SetConfidence(v)
	return _c
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_c *HearingUtilityCreate) SetNillableConfidence(v *float64) *HearingUtilityCreate {
	if v != nil {
		_c.SetConfidence(*v)
	}
	return _c
}

// SetNeedsReview sets the "needs_review" field.
func (_c *HearingUtilityCreate) SetNeedsReview(v bool) *HearingUtilityCreate {
	_c.mutation.SetNeedsReview(v)
	return _c
}

// SetNillableNeedsReview sets the "needs_review" field if the given value is not nil.
func (_c *HearingUtilityCreate) SetNillableNeedsReview(v *bool) *HearingUtilityCreate {
	if v != nil {
		_c.SetNeedsReview(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *HearingUtilityCreate) SetID(v string) *HearingUtilityCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetHearing sets the "hearing" edge to the Hearing entity.
func (_c *HearingUtilityCreate) SetHearing(v *Hearing) *HearingUtilityCreate {
	return _c.SetHearingID(v.ID)
}

// SetUtility sets the "utility" edge to the Utility entity.
func (_c *HearingUtilityCreate) SetUtility(v *Utility) *HearingUtilityCreate {
	return _c.SetUtilityID(v.ID)
}

// Mutation returns the HearingUtilityMutation object of the builder.
func (_c *HearingUtilityCreate) Mutation() *HearingUtilityMutation {
	return _c.mutation
}

// Save creates the HearingUtility in the database.
func (_c *HearingUtilityCreate) Save(ctx context.Context) (*HearingUtility, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *HearingUtilityCreate) SaveX(ctx context.Context) *HearingUtility {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *HearingUtilityCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *HearingUtilityCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *HearingUtilityCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := hearingutility.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := hearingutility.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.Confidence(); !ok {
		v := hearingutility.DefaultConfidence
		_c.mutation.SetConfidence(v)
	}
	if _, ok := _c.mutation.NeedsReview(); !ok {
		v := hearingutility.DefaultNeedsReview
		_c.mutation.SetNeedsReview(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *HearingUtilityCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "HearingUtility.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "HearingUtility.updated_at"`)}
	}
	if _, ok := _c.mutation.HearingID(); !ok {
		return &ValidationError{Name: "hearing_id", err: errors.New(`ent: missing required field "HearingUtility.hearing_id"`)}
	}
	if _, ok := _c.mutation.RawName(); !ok {
		return &ValidationError{Name: "raw_name", err: errors.New(`ent: missing required field "HearingUtility.raw_name"`)}
	}
	if _, ok := _c.mutation.Confidence(); !ok {
		return &ValidationError{Name: "confidence", err: errors.New(`ent: missing required field "HearingUtility.confidence"`)}
	}
	if _, ok := _c.mutation.NeedsReview(); !ok {
		return &ValidationError{Name: "needs_review", err: errors.New(`ent: missing required field "HearingUtility.needs_review"`)}
	}
	if len(_c.mutation.HearingIDs()) == 0 {
		return &ValidationError{Name: "hearing", err: errors.New(`ent: missing required edge "HearingUtility.hearing"`)}
	}
	return nil
}

func (_c *HearingUtilityCreate) sqlSave(ctx context.Context) (*HearingUtility, error) {
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
			return nil, fmt.Errorf("unexpected HearingUtility.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *HearingUtilityCreate) createSpec() (*HearingUtility, *sqlgraph.CreateSpec) {
	var (
		_node = &HearingUtility{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(hearingutility.Table, sqlgraph.NewFieldSpec(hearingutility.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(hearingutility.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(hearingutility.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.RawName(); ok {
		_spec.SetField(hearingutility.FieldRawName, field.TypeString, value)
		_node.RawName = value
	}
	if value, ok := _c.mutation.Role(); ok {
		_spec.SetField(hearingutility.FieldRole, field.TypeString, value)
		_node.Role = value
	}
	if value, ok := _c.mutation.Confidence(); ok {
		_spec.SetField(hearingutility.FieldConfidence, field.TypeFloat64, value)
		_node.Confidence = value
	}
	if value, ok := _c.mutation.NeedsReview(); ok {
		_spec.SetField(hearingutility.FieldNeedsReview, field.TypeBool, value)
		_node.NeedsReview = value
	}
	if nodes := _c.mutation.HearingIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   hearingutility.HearingTable,
			Columns: []string{hearingutility.HearingColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(hearing.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.HearingID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.UtilityIDs(); len(nodes) > 0 {
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
		_node.UtilityID = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// HearingUtilityCreateBulk is the builder for creating many HearingUtility entities in bulk.
type HearingUtilityCreateBulk struct {
	config
	err      error
	builders []*HearingUtilityCreate
}

// Save creates the HearingUtility entities in the database.
func (_c *HearingUtilityCreateBulk) Save(ctx context.Context) ([]*HearingUtility, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*HearingUtility, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*HearingUtilityMutation)
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
func (_c *HearingUtilityCreateBulk) SaveX(ctx context.Context) []*HearingUtility {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *HearingUtilityCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *HearingUtilityCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
