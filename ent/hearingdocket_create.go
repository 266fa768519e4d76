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
	"github.com/canaryscope/canaryscope/ent/hearing"
	"github.com/canaryscope/canaryscope/ent/hearingdocket"
)

// HearingDocketCreate is the builder for creating a HearingDocket entity.
type HearingDocketCreate struct {
	config
	mutation *HearingDocketMutation
	hooks    []Hook
}

// SetCreatedAt sets the "created_at" field.
func (_c *HearingDocketCreate) SetCreatedAt(v time.Time) *HearingDocketCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *HearingDocketCreate) SetNillableCreatedAt(v *time.Time) *HearingDocketCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *HearingDocketCreate) SetUpdatedAt(v time.Time) *HearingDocketCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *HearingDocketCreate) SetNillableUpdatedAt(v *time.Time) *HearingDocketCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetHearingID sets the "hearing_id" field.
func (_c *HearingDocketCreate) SetHearingID(v string) *HearingDocketCreate {
	_c.mutation.SetHearingID(v)
	return _c
}

// SetDocketID sets the "docket_id" field.
func (_c *HearingDocketCreate) SetDocketID(v string) *HearingDocketCreate {
	_c.mutation.SetDocketID(v)
	return _c
}

// SetConfidenceScore sets the "confidence_score" field.
func (_c *HearingDocketCreate) SetConfidenceScore(v float64) *HearingDocketCreate {
	_c.mutation.SetConfidenceScore(v)
	return _c
}

// SetMatchType sets the "match_type" field.
func (_c *HearingDocketCreate) SetMatchType(v hearingdocket.MatchType) *HearingDocketCreate {
	_c.mutation.SetMatchType(v)
	return _c
}

// SetNillableMatchType sets the "match_type" field if the given value is not nil.
func (_c *HearingDocketCreate) SetNillableMatchType(v *hearingdocket.MatchType) *HearingDocketCreate {
	if v != nil {
		_c.SetMatchType(*v)
	}
	return _c
}

// SetNeedsReview sets the "needs_review" field.
func (_c *HearingDocketCreate) SetNeedsReview(v bool) *HearingDocketCreate {
	_c.mutation.SetNeedsReview(v)
	return _c
}

// SetNillableNeedsReview sets the "needs_review" field if the given value is not nil.
func (_c *HearingDocketCreate) SetNillableNeedsReview(v *bool) *HearingDocketCreate {
	if v != nil {
		_c.SetNeedsReview(*v)
	}
	return _c
}

// SetReviewReason sets the "review_reason" field.
func (_c *HearingDocketCreate) SetReviewReason(v string) *HearingDocketCreate {
	_c.mutation.SetReviewReason(v)
	return _c
}

// SetNillableReviewReason sets the "review_reason" field if the given value is not nil.
func (_c *HearingDocketCreate) SetNillableReviewReason(v *string) *HearingDocketCreate {
	if v != nil {
		_c.SetReviewReason(*v)
	}
	return _c
}

// SetContextSummary sets the "context_summary" field.
func (_c *HearingDocketCreate) SetContextSummary(v string) *HearingDocketCreate {
	_c.mutation.SetContextSummary(v)
	return _c
}

// SetNillableContextSummary sets the "context_summary" field if the given value is not nil.
func (_c *HearingDocketCreate) SetNillableContextSummary(v *string) *HearingDocketCreate {
	if v != nil {
		_c.SetContextSummary(*v)
	}
	return _c
}

// SetIsPrimary sets the "is_primary" field.
func (_c *HearingDocketCreate) SetIsPrimary(v bool) *HearingDocketCreate {
	_c.mutation.SetIsPrimary(v)
	return _c
}

// SetNillableIsPrimary sets the "is_primary" field if the given value is not nil.
func (_c *HearingDocketCreate) SetNillableIsPrimary(v *bool) *HearingDocketCreate {
	if v != nil {
		_c.SetIsPrimary(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *HearingDocketCreate) SetID(v string) *HearingDocketCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetHearing sets the "hearing" edge to the Hearing entity.
func (_c *HearingDocketCreate) SetHearing(v *Hearing) *HearingDocketCreate {
	return _c.SetHearingID(v.ID)
}

// SetDocket sets the "docket" edge to the Docket entity.
func (_c *HearingDocketCreate) SetDocket(v *Docket) *HearingDocketCreate {
	return _c.SetDocketID(v.ID)
}

// Mutation returns the HearingDocketMutation object of the builder.
func (_c *HearingDocketCreate) Mutation() *HearingDocketMutation {
	return _c.mutation
}

// Save creates the HearingDocket in the database.
func (_c *HearingDocketCreate) Save(ctx context.Context) (*HearingDocket, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *HearingDocketCreate) SaveX(ctx context.Context) *HearingDocket {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *HearingDocketCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *HearingDocketCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *HearingDocketCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := hearingdocket.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := hearingdocket.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.MatchType(); !ok {
		v := hearingdocket.DefaultMatchType
		_c.mutation.SetMatchType(v)
	}
	if _, ok := _c.mutation.NeedsReview(); !ok {
		v := hearingdocket.DefaultNeedsReview
		_c.mutation.SetNeedsReview(v)
	}
	if _, ok := _c.mutation.IsPrimary(); !ok {
		v := hearingdocket.DefaultIsPrimary
		_c.mutation.SetIsPrimary(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *HearingDocketCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "HearingDocket.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "HearingDocket.updated_at"`)}
	}
	if _, ok := _c.mutation.HearingID(); !ok {
		return &ValidationError{Name: "hearing_id", err: errors.New(`ent: missing required field "HearingDocket.hearing_id"`)}
	}
	if _, ok := _c.mutation.DocketID(); !ok {
		return &ValidationError{Name: "docket_id", err: errors.New(`ent: missing required field "HearingDocket.docket_id"`)}
	}
	if _, ok := _c.mutation.ConfidenceScore(); !ok {
		return &ValidationError{Name: "confidence_score", err: errors.New(`ent: missing required field "HearingDocket.confidence_score"`)}
	}
	if _, ok := _c.mutation.MatchType(); !ok {
		return &ValidationError{Name: "match_type", err: errors.New(`ent: missing required field "HearingDocket.match_type"`)}
	}
	if v, ok := _c.mutation.MatchType(); ok {
		if err := hearingdocket.MatchTypeValidator(v); err != nil {
			return &ValidationError{Name: "match_type", err: fmt.Errorf(`ent: validator failed for field "HearingDocket.match_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.NeedsReview(); !ok {
		return &ValidationError{Name: "needs_review", err: errors.New(`ent: missing required field "HearingDocket.needs_review"`)}
	}
	if _, ok := _c.mutation.IsPrimary(); !ok {
		return &ValidationError{Name: "is_primary", err: errors.New(`ent: missing required field "HearingDocket.is_primary"`)}
	}
	if len(_c.mutation.HearingIDs()) == 0 {
		return &ValidationError{Name: "hearing", err: errors.New(`ent: missing required edge "HearingDocket.hearing"`)}
	}
	if len(_c.mutation.DocketIDs()) == 0 {
		return &ValidationError{Name: "docket", err: errors.New(`ent: missing required edge "HearingDocket.docket"`)}
	}
	return nil
}

func (_c *HearingDocketCreate) sqlSave(ctx context.Context) (*HearingDocket, error) {
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
			return nil, fmt.Errorf("unexpected HearingDocket.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *HearingDocketCreate) createSpec() (*HearingDocket, *sqlgraph.CreateSpec) {
	var (
		_node = &HearingDocket{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(hearingdocket.Table, sqlgraph.NewFieldSpec(hearingdocket.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(hearingdocket.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(hearingdocket.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.ConfidenceScore(); ok {
		_spec.SetField(hearingdocket.FieldConfidenceScore, field.TypeFloat64, value)
		_node.ConfidenceScore = value
	}
	if value, ok := _c.mutation.MatchType(); ok {
		_spec.SetField(hearingdocket.FieldMatchType, field.TypeEnum, value)
		_node.MatchType = value
	}
	if value, ok := _c.mutation.NeedsReview(); ok {
		_spec.SetField(hearingdocket.FieldNeedsReview, field.TypeBool, value)
		_node.NeedsReview = value
	}
	if value, ok := _c.mutation.ReviewReason(); ok {
		_spec.SetField(hearingdocket.FieldReviewReason, field.TypeString, value)
		_node.ReviewReason = value
	}
	if value, ok := _c.mutation.ContextSummary(); ok {
		_spec.SetField(hearingdocket.FieldContextSummary, field.TypeString, value)
		_node.ContextSummary = value
	}
	if value, ok := _c.mutation.IsPrimary(); ok {
		_spec.SetField(hearingdocket.FieldIsPrimary, field.TypeBool, value)
		_node.IsPrimary = value
	}
	if nodes := _c.mutation.HearingIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   hearingdocket.HearingTable,
			Columns: []string{hearingdocket.HearingColumn},
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
	if nodes := _c.mutation.DocketIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   hearingdocket.DocketTable,
			Columns: []string{hearingdocket.DocketColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(docket.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.DocketID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// HearingDocketCreateBulk is the builder for creating many HearingDocket entities in bulk.
type HearingDocketCreateBulk struct {
	config
	err      error
	builders []*HearingDocketCreate
}

// Save creates the HearingDocket entities in the database.
func (_c *HearingDocketCreateBulk) Save(ctx context.Context) ([]*HearingDocket, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*HearingDocket, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*HearingDocketMutation)
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
func (_c *HearingDocketCreateBulk) SaveX(ctx context.Context) []*HearingDocket {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *HearingDocketCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *HearingDocketCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
