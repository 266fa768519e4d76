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
	"github.com/canaryscope/canaryscope/ent/hearingdocket"
	"github.com/canaryscope/canaryscope/ent/knowndocket"
)

// DocketCreate is the builder for creating a Docket entity.
type DocketCreate struct {
	config
	mutation *DocketMutation
	hooks    []Hook
}

// SetCreatedAt sets the "created_at" field.
func (_c *DocketCreate) SetCreatedAt(v time.Time) *DocketCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *DocketCreate) SetNillableCreatedAt(v *time.Time) *DocketCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *DocketCreate) SetUpdatedAt(v time.Time) *DocketCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *DocketCreate) SetNillableUpdatedAt(v *time.Time) *DocketCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetStateCode sets the "state_code" field.
func (_c *DocketCreate) SetStateCode(v string) *DocketCreate {
	_c.mutation.SetStateCode(v)
	return _c
}

// SetDocketNumber sets the "docket_number" field.
func (_c *DocketCreate) SetDocketNumber(v string) *DocketCreate {
	_c.mutation.SetDocketNumber(v)
	return _c
}

// SetNormalizedID sets the "normalized_id" field.
func (_c *DocketCreate) SetNormalizedID(v string) *DocketCreate {
	_c.mutation.SetNormalizedID(v)
	return _c
}

// SetTitle sets the "title" field.
func (_c *DocketCreate) SetTitle(v string) *DocketCreate {
	_c.mutation.SetTitle(v)
	return _c
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_c *DocketCreate) SetNillableTitle(v *string) *DocketCreate {
	if v != nil {
		_c.SetTitle(*v)
	}
	return _c
}

// SetCompany sets the "company" field.
func (_c *DocketCreate) SetCompany(v string) *DocketCreate {
	_c.mutation.SetCompany(v)
	return _c
}

// SetNillableCompany sets the "company" field if the given value is not nil.
func (_c *DocketCreate) SetNillableCompany(v *string) *DocketCreate {
	if v != nil {
		_c.SetCompany(*v)
	}
	return _c
}

// SetSector sets the "sector" field.
func (_c *DocketCreate) SetSector(v string) *DocketCreate {
	_c.mutation.SetSector(v)
	return _c
}

// SetNillableSector sets the "sector" field if the given value is not nil.
func (_c *DocketCreate) SetNillableSector(v *string) *DocketCreate {
	if v != nil {
		_c.SetSector(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *DocketCreate) SetStatus(v string) *DocketCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *DocketCreate) SetNillableStatus(v *string) *DocketCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetFirstSeenAt sets the "first_seen_at" field.
func (_c *DocketCreate) SetFirstSeenAt(v time.Time) *DocketCreate {
	_c.mutation.SetFirstSeenAt(v)
	return _c
}

// SetLastMentionedAt sets the "last_mentioned_at" field.
func (_c *DocketCreate) SetLastMentionedAt(v time.Time) *DocketCreate {
	_c.mutation.SetLastMentionedAt(v)
	return _c
}

// SetMentionCount sets the "mention_count" field.
func (_c *DocketCreate) SetMentionCount(v int) *DocketCreate {
	_c.mutation.SetMentionCount(v)
	return _c
}

// SetNillableMentionCount sets the "mention_count" field if the given value is not nil.
func (_c *DocketCreate) SetNillableMentionCount(v *int) *DocketCreate {
	if v != nil {
		_c.SetMentionCount(*v)
	}
	return _c
}

// SetConfidence sets the "confidence" field.
func (_c *DocketCreate) SetConfidence(v docket.Confidence) *DocketCreate {
	_c.mutation.SetConfidence(v)
	return _c
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_c *DocketCreate) SetNillableConfidence(v *docket.Confidence) *DocketCreate {
	if v != nil {
		_c.SetConfidence(*v)
	}
	return _c
}

// SetKnownDocketID sets the "known_docket_id" field.
func (_c *DocketCreate) SetKnownDocketID(v string) *DocketCreate {
	_c.mutation.SetKnownDocketID(v)
	return _c
}

// SetNillableKnownDocketID sets the "known_docket_id" field if the given value is not nil.
func (_c *DocketCreate) SetNillableKnownDocketID(v *string) *DocketCreate {
	if v != nil {
		_c.SetKnownDocketID(*v)
	}
	return _c
}

// SetMatchScore sets the "match_score" field.
func (_c *DocketCreate) SetMatchScore(v float64) *DocketCreate {
	_c.mutation.SetMatchScore(v)
	return _c
}

// SetNillableMatchScore sets the "match_score" field if the given value is not nil.
func (_c *DocketCreate) SetNillableMatchScore(v *float64) *DocketCreate {
	if v != nil {
		_c.SetMatchScore(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *DocketCreate) SetID(v string) *DocketCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetKnownDocket sets the "known_docket" edge to the KnownDocket entity.
func (_c *DocketCreate) SetKnownDocket(v *KnownDocket) *DocketCreate {
	return _c.SetKnownDocketID(v.ID)
}

// AddHearingDocketIDs adds the "hearing_dockets" edge to the HearingDocket entity by IDs.
func (_c *DocketCreate) AddHearingDocketIDs(ids ...string) *DocketCreate {
	_c.mutation.AddHearingDocketIDs(ids...)
	return _c
}

// AddHearingDockets adds the "hearing_dockets" edges to the HearingDocket entity.
func (_c *DocketCreate) AddHearingDockets(v ...*HearingDocket) *DocketCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddHearingDocketIDs(ids...)
}

// Mutation returns the DocketMutation object of the builder.
func (_c *DocketCreate) Mutation() *DocketMutation {
	return _c.mutation
}

// Save creates the Docket in the database.
func (_c *DocketCreate) Save(ctx context.Context) (*Docket, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *DocketCreate) SaveX(ctx context.Context) *Docket {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DocketCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DocketCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *DocketCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := docket.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := docket.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.MentionCount(); !ok {
		v := docket.DefaultMentionCount
		_c.mutation.SetMentionCount(v)
	}
	if _, ok := _c.mutation.Confidence(); !ok {
		v := docket.DefaultConfidence
		_c.mutation.SetConfidence(v)
	}
	if _, ok := _c.mutation.MatchScore(); !ok {
		v := docket.DefaultMatchScore
		_c.mutation.SetMatchScore(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *DocketCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Docket.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Docket.updated_at"`)}
	}
	if _, ok := _c.mutation.StateCode(); !ok {
		return &ValidationError{Name: "state_code", err: errors.New(`ent: missing required field "Docket.state_code"`)}
	}
	if v, ok := _c.mutation.StateCode(); ok {
		if err := docket.StateCodeValidator(v); err != nil {
			return &ValidationError{Name: "state_code", err: fmt.Errorf(`ent: validator failed for field "Docket.state_code": %w`, err)}
		}
	}
	if _, ok := _c.mutation.DocketNumber(); !ok {
		return &ValidationError{Name: "docket_number", err: errors.New(`ent: missing required field "Docket.docket_number"`)}
	}
	if _, ok := _c.mutation.NormalizedID(); !ok {
		return &ValidationError{Name: "normalized_id", err: errors.New(`ent: missing required field "Docket.normalized_id"`)}
	}
	if _, ok := _c.mutation.FirstSeenAt(); !ok {
		return &ValidationError{Name: "first_seen_at", err: errors.New(`ent: missing required field "Docket.first_seen_at"`)}
	}
	if _, ok := _c.mutation.LastMentionedAt(); !ok {
		return &ValidationError{Name: "last_mentioned_at", err: errors.New(`ent: missing required field "Docket.last_mentioned_at"`)}
	}
	if _, ok := _c.mutation.MentionCount(); !ok {
		return &ValidationError{Name: "mention_count", err: errors.New(`ent: missing required field "Docket.mention_count"`)}
	}
	if _, ok := _c.mutation.Confidence(); !ok {
		return &ValidationError{Name: "confidence", err: errors.New(`ent: missing required field "Docket.confidence"`)}
	}
	if v, ok := _c.mutation.Confidence(); ok {
		if err := docket.ConfidenceValidator(v); err != nil {
			return &ValidationError{Name: "confidence", err: fmt.Errorf(`ent: validator failed for field "Docket.confidence": %w`, err)}
		}
	}
	if _, ok := _c.mutation.MatchScore(); !ok {
		return &ValidationError{Name: "match_score", err: errors.New(`ent: missing required field "Docket.match_score"`)}
	}
	return nil
}

func (_c *DocketCreate) sqlSave(ctx context.Context) (*Docket, error) {
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
			return nil, fmt.Errorf("unexpected Docket.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *DocketCreate) createSpec() (*Docket, *sqlgraph.CreateSpec) {
	var (
		_node = &Docket{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(docket.Table, sqlgraph.NewFieldSpec(docket.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(docket.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(docket.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.StateCode(); ok {
		_spec.SetField(docket.FieldStateCode, field.TypeString, value)
		_node.StateCode = value
	}
	if value, ok := _c.mutation.DocketNumber(); ok {
		_spec.SetField(docket.FieldDocketNumber, field.TypeString, value)
		_node.DocketNumber = value
	}
	if value, ok := _c.mutation.NormalizedID(); ok {
		_spec.SetField(docket.FieldNormalizedID, field.TypeString, value)
		_node.NormalizedID = value
	}
	if value, ok := _c.mutation.Title(); ok {
		_spec.SetField(docket.FieldTitle, field.TypeString, value)
		_node.Title = value
	}
	if value, ok := _c.mutation.Company(); ok {
		_spec.SetField(docket.FieldCompany, field.TypeString, value)
		_node.Company = value
	}
	if value, ok := _c.mutation.Sector(); ok {
		_spec.SetField(docket.FieldSector, field.TypeString, value)
		_node.Sector = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(docket.FieldStatus, field.TypeString, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.FirstSeenAt(); ok {
		_spec.SetField(docket.FieldFirstSeenAt, field.TypeTime, value)
		_node.FirstSeenAt = value
	}
	if value, ok := _c.mutation.LastMentionedAt(); ok {
		_spec.SetField(docket.FieldLastMentionedAt, field.TypeTime, value)
		_node.LastMentionedAt = value
	}
	if value, ok := _c.mutation.MentionCount(); ok {
		_spec.SetField(docket.FieldMentionCount, field.TypeInt, value)
		_node.MentionCount = value
	}
	if value, ok := _c.mutation.Confidence(); ok {
		_spec.SetField(docket.FieldConfidence, field.TypeEnum, value)
		_node.Confidence = value
	}
	if value, ok := _c.mutation.MatchScore(); ok {
		_spec.SetField(docket.FieldMatchScore, field.TypeFloat64, value)
		_node.MatchScore = value
	}
	if nodes := _c.mutation.KnownDocketIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   docket.KnownDocketTable,
			Columns: []string{docket.KnownDocketColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(knowndocket.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.KnownDocketID = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.HearingDocketsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   docket.HearingDocketsTable,
			Columns: []string{docket.HearingDocketsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(hearingdocket.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// DocketCreateBulk is the builder for creating many Docket entities in bulk.
type DocketCreateBulk struct {
	config
	err      error
	builders []*DocketCreate
}

// Save creates the Docket entities in the database.
func (_c *DocketCreateBulk) Save(ctx context.Context) ([]*Docket, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Docket, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*DocketMutation)
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
func (_c *DocketCreateBulk) SaveX(ctx context.Context) []*Docket {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DocketCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DocketCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
