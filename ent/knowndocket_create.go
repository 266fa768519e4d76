// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/canaryscope/canaryscope/ent/docket"
	"github.com/canaryscope/canaryscope/ent/extracteddocket"
	"github.com/canaryscope/canaryscope/ent/knowndocket"
)

// KnownDocketCreate is the builder for creating a KnownDocket entity.
type KnownDocketCreate struct {
	config
	mutation *KnownDocketMutation
	hooks    []Hook
}

// SetCreatedAt sets the "created_at" field.
func (_c *KnownDocketCreate) SetCreatedAt(v time.Time) *KnownDocketCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *KnownDocketCreate) SetNillableCreatedAt(v *time.Time) *KnownDocketCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *KnownDocketCreate) SetUpdatedAt(v time.Time) *KnownDocketCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *KnownDocketCreate) SetNillableUpdatedAt(v *time.Time) *KnownDocketCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetStateCode sets the "state_code" field.
func (_c *KnownDocketCreate) SetStateCode(v string) *KnownDocketCreate {
	_c.mutation.SetStateCode(v)
	return _c
}

// SetDocketNumber sets the "docket_number" field.
func (_c *KnownDocketCreate) SetDocketNumber(v string) *KnownDocketCreate {
	_c.mutation.SetDocketNumber(v)
	return _c
}

// SetNormalizedID sets the "normalized_id" field.
func (_c *KnownDocketCreate) SetNormalizedID(v string) *KnownDocketCreate {
	_c.mutation.SetNormalizedID(v)
	return _c
}

// SetYear sets the "year" field.
func (_c *KnownDocketCreate) SetYear(v int) *KnownDocketCreate {
	_c.mutation.SetYear(v)
	return _c
}

// SetNillableYear sets the "year" field if the given value is not nil.
func (_c *KnownDocketCreate) SetNillableYear(v *int) *KnownDocketCreate {
	if v != nil {
		_c.SetYear(*v)
	}
	return _c
}

// SetCaseNumber sets the "case_number" field.
func (_c *KnownDocketCreate) SetCaseNumber(v string) *KnownDocketCreate {
	_c.mutation.SetCaseNumber(v)
	return _c
}

// SetNillableCaseNumber sets the "case_number" field if the given value is not nil.
func (_c *KnownDocketCreate) SetNillableCaseNumber(v *string) *KnownDocketCreate {
	if v != nil {
		_c.SetCaseNumber(*v)
	}
	return _c
}

// SetSuffix sets the "suffix" field.
func (_c *KnownDocketCreate) SetSuffix(v string) *KnownDocketCreate {
	_c.mutation.SetSuffix(v)
	return _c
}

// SetNillableSuffix sets the "suffix" field if the given value is not nil.
func (_c *KnownDocketCreate) SetNillableSuffix(v *string) *KnownDocketCreate {
	if v != nil {
		_c.SetSuffix(*v)
	}
	return _c
}

// SetUtilitySector sets the "utility_sector" field.
func (_c *KnownDocketCreate) SetUtilitySector(v string) *KnownDocketCreate {
	_c.mutation.SetUtilitySector(v)
	return _c
}

// SetNillableUtilitySector sets the "utility_sector" field if the given value is not nil.
func (_c *KnownDocketCreate) SetNillableUtilitySector(v *string) *KnownDocketCreate {
	if v != nil {
		_c.SetUtilitySector(*v)
	}
	return _c
}

// SetTitle sets the "title" field.
func (_c *KnownDocketCreate) SetTitle(v string) *KnownDocketCreate {
	_c.mutation.SetTitle(v)
	return _c
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_c *KnownDocketCreate) SetNillableTitle(v *string) *KnownDocketCreate {
	if v != nil {
		_c.SetTitle(*v)
	}
	return _c
}

// SetUtilityName sets the "utility_name" field.
func (_c *KnownDocketCreate) SetUtilityName(v string) *KnownDocketCreate {
	_c.mutation.SetUtilityName(v)
	return _c
}

// SetNillableUtilityName sets the "utility_name" field if the given value is not nil.
func (_c *KnownDocketCreate) SetNillableUtilityName(v *string) *KnownDocketCreate {
	if v != nil {
		_c.SetUtilityName(*v)
	}
	return _c
}

// SetFilingDate sets the "filing_date" field.
func (_c *KnownDocketCreate) SetFilingDate(v time.Time) *KnownDocketCreate {
	_c.mutation.SetFilingDate(v)
	return _c
}

// SetNillableFilingDate sets the "filing_date" field if the given value is not nil.
func (_c *KnownDocketCreate) SetNillableFilingDate(v *time.Time) *KnownDocketCreate {
	if v != nil {
		_c.SetFilingDate(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *KnownDocketCreate) SetStatus(v string) *KnownDocketCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *KnownDocketCreate) SetNillableStatus(v *string) *KnownDocketCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetCaseType sets the "case_type" field.
func (_c *KnownDocketCreate) SetCaseType(v string) *KnownDocketCreate {
	_c.mutation.SetCaseType(v)
	return _c
}

// SetNillableCaseType sets the "case_type" field if the given value is not nil.
func (_c *KnownDocketCreate) SetNillableCaseType(v *string) *KnownDocketCreate {
	if v != nil {
		_c.SetCaseType(*v)
	}
	return _c
}

// SetSourceURL sets the "source_url" field.
func (_c *KnownDocketCreate) SetSourceURL(v string) *KnownDocketCreate {
	_c.mutation.SetSourceURL(v)
	return _c
}

// SetNillableSourceURL sets the "source_url" field if the given value is not nil.
func (_c *KnownDocketCreate) SetNillableSourceURL(v *string) *KnownDocketCreate {
	if v != nil {
		_c.SetSourceURL(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *KnownDocketCreate) SetID(v string) *KnownDocketCreate {
	_c.mutation.SetID(v)
	return _c
}

// AddDocketIDs adds the "dockets" edge to the Docket entity by IDs.
func (_c *KnownDocketCreate) AddDocketIDs(ids ...string) *KnownDocketCreate {
	_c.mutation.AddDocketIDs(ids...)
	return _c
}

// AddDockets adds the "dockets" edges to the Docket entity.
func (_c *KnownDocketCreate) AddDockets(v ...*Docket) *KnownDocketCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddDocketIDs(ids...)
}

// AddExtractedDocketIDs adds the "extracted_dockets" edge to the ExtractedDocket entity by IDs.
func (_c *KnownDocketCreate) AddExtractedDocketIDs(ids ...string) *KnownDocketCreate {
	_c.mutation.AddExtractedDocketIDs(ids...)
	return _c
}

// AddExtractedDockets adds the "extracted_dockets" edges to the ExtractedDocket entity.
func (_c *KnownDocketCreate) AddExtractedDockets(v ...*ExtractedDocket) *KnownDocketCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddExtractedDocketIDs(ids...)
}

// Mutation returns the KnownDocketMutation object of the builder.
func (_c *KnownDocketCreate) Mutation() *KnownDocketMutation {
	return _c.mutation
}

// Save creates the KnownDocket in the database.
func (_c *KnownDocketCreate) Save(ctx context.Context) (*KnownDocket, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *KnownDocketCreate) SaveX(ctx context.Context) *KnownDocket {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *KnownDocketCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *KnownDocketCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *KnownDocketCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := knowndocket.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := knowndocket.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *KnownDocketCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "KnownDocket.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "KnownDocket.updated_at"`)}
	}
	if _, ok := _c.mutation.StateCode(); !ok {
		return &ValidationError{Name: "state_code", err: errors.New(`ent: missing required field "KnownDocket.state_code"`)}
	}
	if v, ok := _c.mutation.StateCode(); ok {
		if err := knowndocket.StateCodeValidator(v); err != nil {
			return &ValidationError{Name: "state_code", err: fmt.Errorf(`ent: validator failed for field "KnownDocket.state_code": %w`, err)}
		}
	}
	if _, ok := _c.mutation.DocketNumber(); !ok {
		return &ValidationError{Name: "docket_number", err: errors.New(`ent: missing required field "KnownDocket.docket_number"`)}
	}
	if _, ok := _c.mutation.NormalizedID(); !ok {
		return &ValidationError{Name: "normalized_id", err: errors.New(`ent: missing required field "KnownDocket.normalized_id"`)}
	}
	return nil
}

func (_c *KnownDocketCreate) sqlSave(ctx context.Context) (*KnownDocket, error) {
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
			return nil, fmt.Errorf("unexpected KnownDocket.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *KnownDocketCreate) createSpec() (*KnownDocket, *sqlgraph.CreateSpec) {
	var (
		_node = &KnownDocket{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(knowndocket.Table, sqlgraph.NewFieldSpec(knowndocket.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(knowndocket.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(knowndocket.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.StateCode(); ok {
		_spec.SetField(knowndocket.FieldStateCode, field.TypeString, value)
		_node.StateCode = value
	}
	if value, ok := _c.mutation.DocketNumber(); ok {
		_spec.SetField(knowndocket.FieldDocketNumber, field.TypeString, value)
		_node.DocketNumber = value
	}
	if value, ok := _c.mutation.NormalizedID(); ok {
		_spec.SetField(knowndocket.FieldNormalizedID, field.TypeString, value)
		_node.NormalizedID = value
	}
	if value, ok := _c.mutation.Year(); ok {
		_spec.SetField(knowndocket.FieldYear, field.TypeInt, value)
		_node.Year = &value
	}
	if value, ok := _c.mutation.CaseNumber(); ok {
		_spec.SetField(knowndocket.FieldCaseNumber, field.TypeString, value)
		_node.CaseNumber = value
	}
	if value, ok := _c.mutation.Suffix(); ok {
		_spec.SetField(knowndocket.FieldSuffix, field.TypeString, value)
		_node.Suffix = value
	}
	if value, ok := _c.mutation.UtilitySector(); ok {
		_spec.SetField(knowndocket.FieldUtilitySector, field.TypeString, value)
		_node.UtilitySector = value
	}
	if value, ok := _c.mutation.Title(); ok {
		_spec.SetField(knowndocket.FieldTitle, field.TypeString, value)
		_node.Title = value
	}
	if value, ok := _c.mutation.UtilityName(); ok {
		_spec.SetField(knowndocket.FieldUtilityName, field.TypeString, value)
		_node.UtilityName = value
	}
	if value, ok := _c.mutation.FilingDate(); ok {
		_spec.SetField(knowndocket.FieldFilingDate, field.TypeTime, value)
		_node.FilingDate = &value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(knowndocket.FieldStatus, field.TypeString, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.CaseType(); ok {
		_spec.SetField(knowndocket.FieldCaseType, field.TypeString, value)
		_node.CaseType = value
	}
	if value, ok := _c.mutation.SourceURL(); ok {
		_spec.SetField(knowndocket.FieldSourceURL, field.TypeString, value)
		_node.SourceURL = value
	}
	if nodes := _c.mutation.DocketsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   knowndocket.DocketsTable,
			Columns: []string{knowndocket.DocketsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(docket.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.ExtractedDocketsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   knowndocket.ExtractedDocketsTable,
			Columns: []string{knowndocket.ExtractedDocketsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(extracteddocket.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// KnownDocketCreateBulk is the builder for creating many KnownDocket entities in bulk.
type KnownDocketCreateBulk struct {
	config
	err      error
	builders []*KnownDocketCreate
}

// Save creates the KnownDocket entities in the database.
func (_c *KnownDocketCreateBulk) Save(ctx context.Context) ([]*KnownDocket, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*KnownDocket, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*KnownDocketMutation)
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
func (_c *KnownDocketCreateBulk) SaveX(ctx context.Context) []*KnownDocket {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *KnownDocketCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *KnownDocketCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
