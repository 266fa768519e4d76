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
	"github.com/canaryscope/canaryscope/ent/hearingtopic"
	"github.com/canaryscope/canaryscope/ent/topic"
)

// HearingTopicCreate is the builder for creating a HearingTopic entity.
type HearingTopicCreate struct {
	config
	mutation *HearingTopicMutation
	hooks    []Hook
}

// SetCreatedAt sets the "created_at" field.
func (_c *HearingTopicCreate) SetCreatedAt(v time.Time) *HearingTopicCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *HearingTopicCreate) SetNillableCreatedAt(v *time.Time) *HearingTopicCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *HearingTopicCreate) SetUpdatedAt(v time.Time) *HearingTopicCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *HearingTopicCreate) SetNillableUpdatedAt(v *time.Time) *HearingTopicCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetHearingID sets the "hearing_id" field.
func (_c *HearingTopicCreate) SetHearingID(v string) *HearingTopicCreate {
	_c.mutation.SetHearingID(v)
	return _c
}

// SetTopicID sets the "topic_id" field.
func (_c *HearingTopicCreate) SetTopicID(v string) *HearingTopicCreate {
	_c.mutation.SetTopicID(v)
	return _c
}

// SetNillableTopicID sets the "topic_id" field if the given value is not nil.
func (_c *HearingTopicCreate) SetNillableTopicID(v *string) *HearingTopicCreate {
	if v != nil {
		_c.SetTopicID(*v)
	}
	return _c
}

// SetRawName sets the "raw_name" field.
func (_c *HearingTopicCreate) SetRawName(v string) *HearingTopicCreate {
	_c.mutation.SetRawName(v)
	return _c
}

// SetRelevance sets the "relevance" field.
func (_c *HearingTopicCreate) SetRelevance(v string) *HearingTopicCreate {
	_c.mutation.SetRelevance(v)
	return _c
}

// SetNillableRelevance sets the "relevance" field if the given value is not nil.
func (_c *HearingTopicCreate) SetNillableRelevance(v *string) *HearingTopicCreate {
	if v != nil {
		_c.SetRelevance(*v)
	}
	return _c
}

// SetConfidence sets the "confidence" field.
func (_c *HearingTopicCreate) SetConfidence(v float64) *HearingTopicCreate {
	_c.mutation.SetConfidence(v)
	return _c
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_c *HearingTopicCreate) SetNillableConfidence(v *float64) *HearingTopicCreate {
	if v != nil {
		_c.SetConfidence(*v)
	}
	return _c
}

// SetNeedsReview sets the "needs_review" field.
func (_c *HearingTopicCreate) SetNeedsReview(v bool) *HearingTopicCreate {
	_c.mutation.SetNeedsReview(v)
	return _c
}

// SetNillableNeedsReview sets the "needs_review" field if the given value is not nil.
func (_c *HearingTopicCreate) SetNillableNeedsReview(v *bool) *HearingTopicCreate {
	if v != nil {
		_c.SetNeedsReview(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *HearingTopicCreate) SetID(v string) *HearingTopicCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetHearing sets the "hearing" edge to the Hearing entity.
func (_c *HearingTopicCreate) SetHearing(v *Hearing) *HearingTopicCreate {
	return _c.SetHearingID(v.ID)
}

// SetTopic sets the "topic" edge to the Topic entity.
func (_c *HearingTopicCreate) SetTopic(v *Topic) *HearingTopicCreate {
	return _c.SetTopicID(v.ID)
}

// Mutation returns the HearingTopicMutation object of the builder.
func (_c *HearingTopicCreate) Mutation() *HearingTopicMutation {
	return _c.mutation
}

// Save creates the HearingTopic in the database.
func (_c *HearingTopicCreate) Save(ctx context.Context) (*HearingTopic, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *HearingTopicCreate) SaveX(ctx context.Context) *HearingTopic {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *HearingTopicCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *HearingTopicCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *HearingTopicCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := hearingtopic.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := hearingtopic.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.Confidence(); !ok {
		v := hearingtopic.DefaultConfidence
		_c.mutation.SetConfidence(v)
	}
	if _, ok := _c.mutation.NeedsReview(); !ok {
		v := hearingtopic.DefaultNeedsReview
		_c.mutation.SetNeedsReview(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *HearingTopicCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "HearingTopic.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "HearingTopic.updated_at"`)}
	}
	if _, ok := _c.mutation.HearingID(); !ok {
		return &ValidationError{Name: "hearing_id", err: errors.New(`ent: missing required field "HearingTopic.hearing_id"`)}
	}
	if _, ok := _c.mutation.RawName(); !ok {
		return &ValidationError{Name: "raw_name", err: errors.New(`ent: missing required field "HearingTopic.raw_name"`)}
	}
	if _, ok := _c.mutation.Confidence(); !ok {
		return &ValidationError{Name: "confidence", err: errors.New(`ent: missing required field "HearingTopic.confidence"`)}
	}
	if _, ok := _c.mutation.NeedsReview(); !ok {
		return &ValidationError{Name: "needs_review", err: errors.New(`ent: missing required field "HearingTopic.needs_review"`)}
	}
	if len(_c.mutation.HearingIDs()) == 0 {
		return &ValidationError{Name: "hearing", err: errors.New(`ent: missing required edge "HearingTopic.hearing"`)}
	}
	return nil
}

func (_c *HearingTopicCreate) sqlSave(ctx context.Context) (*HearingTopic, error) {
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
			return nil, fmt.Errorf("unexpected HearingTopic.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *HearingTopicCreate) createSpec() (*HearingTopic, *sqlgraph.CreateSpec) {
	var (
		_node = &HearingTopic{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(hearingtopic.Table, sqlgraph.NewFieldSpec(hearingtopic.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(hearingtopic.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(hearingtopic.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.RawName(); ok {
		_spec.SetField(hearingtopic.FieldRawName, field.TypeString, value)
		_node.RawName = value
	}
	if value, ok := _c.mutation.Relevance(); ok {
		_spec.SetField(hearingtopic.FieldRelevance, field.TypeString, value)
		_node.Relevance = value
	}
	if value, ok := _c.mutation.Confidence(); ok {
		_spec.SetField(hearingtopic.FieldConfidence, field.TypeFloat64, value)
		_node.Confidence = value
	}
	if value, ok := _c.mutation.NeedsReview(); ok {
		_spec.SetField(hearingtopic.FieldNeedsReview, field.TypeBool, value)
		_node.NeedsReview = value
	}
	if nodes := _c.mutation.HearingIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   hearingtopic.HearingTable,
			Columns: []string{hearingtopic.HearingColumn},
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
	if nodes := _c.mutation.TopicIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   hearingtopic.TopicTable,
			Columns: []string{hearingtopic.TopicColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(topic.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.TopicID = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// HearingTopicCreateBulk is the builder for creating many HearingTopic entities in bulk.
type HearingTopicCreateBulk struct {
	config
	err      error
	builders []*HearingTopicCreate
}

// Save creates the HearingTopic entities in the database.
func (_c *HearingTopicCreateBulk) Save(ctx context.Context) ([]*HearingTopic, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*HearingTopic, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*HearingTopicMutation)
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
func (_c *HearingTopicCreateBulk) SaveX(ctx context.Context) []*HearingTopic {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *HearingTopicCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *HearingTopicCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
