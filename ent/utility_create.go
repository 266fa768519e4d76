// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/canaryscope/canaryscope/ent/hearingutility"
	"github.com/canaryscope/canaryscope/ent/utility"
)

// UtilityCreate is the builder for creating a Utility entity.
type UtilityCreate struct {
	config
	mutation *UtilityMutation
	hooks    []Hook
}

// SetCreatedAt sets the "created_at" field.
func (_c *UtilityCreate) SetCreatedAt(v time.Time) *UtilityCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *UtilityCreate) SetNillableCreatedAt(v *time.Time) *UtilityCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *UtilityCreate) SetUpdatedAt(v time.Time) *UtilityCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *UtilityCreate) SetNillableUpdatedAt(v *time.Time) *UtilityCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetStateCode sets the "state_code" field.
func (_c *UtilityCreate) SetStateCode(v string) *UtilityCreate {
	_c.mutation.SetStateCode(v)
	return _c
}

// SetName sets the "name" field.
func (_c *UtilityCreate) SetName(v string) *UtilityCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetNormalizedName sets the "normalized_name" field.
func (_c *UtilityCreate) SetNormalizedName(v string) *UtilityCreate {
	_c.mutation.SetNormalizedName(v)
	return _c
}

// SetAliases sets the "aliases" field.
func (_c *UtilityCreate) SetAliases(v []string) *UtilityCreate {
	_c.mutation.SetAliases(v)
	return _c
}

// SetSector sets the "sector" field.
func (_c *UtilityCreate) SetSector(v string) *UtilityCreate {
	_c.mutation.SetSector(v)
	return _c
}

// SetNillableSector sets the "sector" field if the given value is not nil.
func (_c *UtilityCreate) SetNillableSector(v *string) *UtilityCreate {
	if v != nil {
		_c.SetSector(*v)
	}
	return _c
}

// SetMentionCount sets the "mention_count" field.
func (_c *UtilityCreate) SetMentionCount(v int) *UtilityCreate {
	_c.mutation.SetMentionCount(v)
	return _c
}

// SetNillableMentionCount sets the "mention_count" field if the given value is not nil.
func (_c *UtilityCreate) SetNillableMentionCount(v *int) *UtilityCreate {
	if v != nil {
		_c.SetMentionCount(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *UtilityCreate) SetID(v string) *UtilityCreate {
	_c.mutation.SetID(v)
	return _c
}

// AddHearingUtilityIDs adds the "hearing_utilities" edge to the HearingUtility entity by IDs.
func (_c *UtilityCreate) AddHearingUtilityIDs(ids ...string) *UtilityCreate {
	_c.mutation.AddHearingUtilityIDs(ids...)
	return _c
}

// AddHearingUtilities adds the "hearing_utilities" edges to the HearingUtility entity.
func (_c *UtilityCreate) AddHearingUtilities(v ...*HearingUtility) *UtilityCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddHearingUtilityIDs(ids...)
}

// Mutation returns the UtilityMutation object of the builder.
func (_c *UtilityCreate) Mutation() *UtilityMutation {
	return _c.mutation
}

// Save creates the Utility in the database.
func (_c *UtilityCreate) Save(ctx context.Context) (*Utility, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *UtilityCreate) SaveX(ctx context.Context) *Utility {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *UtilityCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *UtilityCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *UtilityCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := utility.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := utility.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.MentionCount(); !ok {
		v := utility.DefaultMentionCount
		_c.mutation.SetMentionCount(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *UtilityCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Utility.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Utility.updated_at"`)}
	}
	if _, ok := _c.mutation.StateCode(); !ok {
		return &ValidationError{Name: "state_code", err: errors.New(`ent: missing required field "Utility.state_code"`)}
	}
	if v, ok := _c.mutation.StateCode(); ok {
		if err := utility.StateCodeValidator(v); err != nil {
			return &ValidationError{Name: "state_code", err: fmt.Errorf(`ent: validator failed for field "Utility.state_code": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "Utility.name"`)}
	}
	if _, ok := _c.mutation.NormalizedName(); !ok {
		return &ValidationError{Name: "normalized_name", err: errors.New(`ent: missing required field "Utility.normalized_name"`)}
	}
	if _, ok := _c.mutation.MentionCount(); !ok {
		return &ValidationError{Name: "mention_count", err: errors.New(`ent: missing required field "Utility.mention_count"`)}
	}
	return nil
}

func (_c *UtilityCreate) sqlSave(ctx context.Context) (*Utility, error) {
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
			return nil, fmt.Errorf("unexpected Utility.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *UtilityCreate) createSpec() (*Utility, *sqlgraph.CreateSpec) {
	var (
		_node = &Utility{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(utility.Table, sqlgraph.NewFieldSpec(utility.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(utility.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(utility.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.StateCode(); ok {
		_spec.SetField(utility.FieldStateCode, field.TypeString, value)
		_node.StateCode = value
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(utility.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.NormalizedName(); ok {
		_spec.SetField(utility.FieldNormalizedName, field.TypeString, value)
		_node.NormalizedName = value
	}
	if value, ok := _c.mutation.Aliases(); ok {
		_spec.SetField(utility.FieldAliases, field.TypeJSON, value)
		_node.Aliases = value
	}
	if value, ok := _c.mutation.Sector(); ok {
		_spec.SetField(utility.FieldSector, field.TypeString, value)
		_node.Sector = value
	}
	if value, ok := _c.mutation.MentionCount(); ok {
		_spec.SetField(utility.FieldMentionCount, field.TypeInt, value)
		_node.MentionCount = value
	}
	if nodes := _c.mutation.HearingUtilitiesIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// UtilityCreateBulk is the builder for creating many Utility entities in bulk.
type UtilityCreateBulk struct {
	config
	err      error
	builders []*UtilityCreate
}

// Save creates the Utility entities in the database.
func (_c *UtilityCreateBulk) Save(ctx context.Context) ([]*Utility, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Utility, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*UtilityMutation)
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
func (_c *UtilityCreateBulk) SaveX(ctx context.Context) []*Utility {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *UtilityCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *UtilityCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
