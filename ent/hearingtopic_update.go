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
	"github.com/canaryscope/canaryscope/ent/hearingtopic"
	"github.com/canaryscope/canaryscope/ent/predicate"
	"github.com/canaryscope/canaryscope/ent/topic"
)

// HearingTopicUpdate is the builder for updating HearingTopic entities.
type HearingTopicUpdate struct {
	config
	hooks    []Hook
	mutation *HearingTopicMutation
}

// Where appends a list predicates to the HearingTopicUpdate builder.
func (_u *HearingTopicUpdate) Where(ps ...predicate.HearingTopic) *HearingTopicUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *HearingTopicUpdate) SetUpdatedAt(v time.Time) *HearingTopicUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetTopicID sets the "topic_id" field.
func (_u *HearingTopicUpdate) SetTopicID(v string) *HearingTopicUpdate {
	_u.mutation.SetTopicID(v)
	return _u
}

// SetNillableTopicID sets the "topic_id" field if the given value is not nil.
func (_u *HearingTopicUpdate) SetNillableTopicID(v *string) *HearingTopicUpdate {
	if v != nil {
		_u.SetTopicID(*v)
	}
	return _u
}

// ClearTopicID clears the value of the "topic_id" field.
func (_u *HearingTopicUpdate) ClearTopicID() *HearingTopicUpdate {
	_u.mutation.ClearTopicID()
	return _u
}

// SetRawName sets the "raw_name" field.
func (_u *HearingTopicUpdate) SetRawName(v string) *HearingTopicUpdate {
	_u.mutation.SetRawName(v)
	return _u
}

// SetNillableRawName sets the "raw_name" field if the given value is not nil.
func (_u *HearingTopicUpdate) SetNillableRawName(v *string) *HearingTopicUpdate {
	if v != nil {
		_u.SetRawName(*v)
	}
	return _u
}

// SetRelevance sets the "relevance" field.
func (_u *HearingTopicUpdate) SetRelevance(v string) *HearingTopicUpdate {
	_u.mutation.SetRelevance(v)
	return _u
}

// SetNillableRelevance sets the "relevance" field if the given value is not nil.
func (_u *HearingTopicUpdate) SetNillableRelevance(v *string) *HearingTopicUpdate {
	if v != nil {
		_u.SetRelevance(*v)
	}
	return _u
}

// ClearRelevance clears the value of the "relevance" field.
func (_u *HearingTopicUpdate) ClearRelevance() *HearingTopicUpdate {
	_u.mutation.ClearRelevance()
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *HearingTopicUpdate) SetConfidence(v float64) *HearingTopicUpdate {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *HearingTopicUpdate) SetNillableConfidence(v *float64) *HearingTopicUpdate {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *HearingTopicUpdate) AddConfidence(v float64) *HearingTopicUpdate {
	_u.mutation.AddConfidence(v)
	return _u
}

// SetNeedsReview sets the "needs_review" field.
func (_u *HearingTopicUpdate) SetNeedsReview(v bool) *HearingTopicUpdate {
	_u.mutation.SetNeedsReview(v)
	return _u
}

// SetNillableNeedsReview sets the "needs_review" field if the given value is not nil.
func (_u *HearingTopicUpdate) SetNillableNeedsReview(v *bool) *HearingTopicUpdate {
	if v != nil {
		_u.SetNeedsReview(*v)
	}
	return _u
}

// SetTopic sets the "topic" edge to the Topic entity.
func (_u *HearingTopicUpdate) SetTopic(v *Topic) *HearingTopicUpdate {
	return _u.SetTopicID(v.ID)
}

// Mutation returns the HearingTopicMutation object of the builder.
func (_u *HearingTopicUpdate) Mutation() *HearingTopicMutation {
	return _u.mutation
}

// ClearTopic clears the "topic" edge to the Topic entity.
func (_u *HearingTopicUpdate) ClearTopic() *HearingTopicUpdate {
	_u.mutation.ClearTopic()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *HearingTopicUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *HearingTopicUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *HearingTopicUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *HearingTopicUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *HearingTopicUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := hearingtopic.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *HearingTopicUpdate) check() error {
	if _u.mutation.HearingCleared() && len(_u.mutation.HearingIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "HearingTopic.hearing"`)
	}
	return nil
}

func (_u *HearingTopicUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(hearingtopic.Table, hearingtopic.Columns, sqlgraph.NewFieldSpec(hearingtopic.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(hearingtopic.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.RawName(); ok {
		_spec.SetField(hearingtopic.FieldRawName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Relevance(); ok {
		_spec.SetField(hearingtopic.FieldRelevance, field.TypeString, value)
	}
	if _u.mutation.RelevanceCleared() {
		_spec.ClearField(hearingtopic.FieldRelevance, field.TypeString)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(hearingtopic.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(hearingtopic.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.NeedsReview(); ok {
		_spec.SetField(hearingtopic.FieldNeedsReview, field.TypeBool, value)
	}
	if _u.mutation.TopicCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TopicIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{hearingtopic.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// HearingTopicUpdateOne is the builder for updating a single HearingTopic entity.
type HearingTopicUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *HearingTopicMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *HearingTopicUpdateOne) SetUpdatedAt(v time.Time) *HearingTopicUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetTopicID sets the "topic_id" field.
func (_u *HearingTopicUpdateOne) SetTopicID(v string) *HearingTopicUpdateOne {
	_u.mutation.SetTopicID(v)
	return _u
}

// SetNillableTopicID sets the "topic_id" field if the given value is not nil.
func (_u *HearingTopicUpdateOne) SetNillableTopicID(v *string) *HearingTopicUpdateOne {
	if v != nil {
		_u.SetTopicID(*v)
	}
	return _u
}

// ClearTopicID clears the value of the "topic_id" field.
func (_u *HearingTopicUpdateOne) ClearTopicID() *HearingTopicUpdateOne {
	_u.mutation.ClearTopicID()
	return _u
}

// SetRawName sets the "raw_name" field.
func (_u *HearingTopicUpdateOne) SetRawName(v string) *HearingTopicUpdateOne {
	_u.mutation.SetRawName(v)
	return _u
}

// SetNillableRawName sets the "raw_name" field if the given value is not nil.
func (_u *HearingTopicUpdateOne) SetNillableRawName(v *string) *HearingTopicUpdateOne {
	if v != nil {
		_u.SetRawName(*v)
	}
	return _u
}

// SetRelevance sets the "relevance" field.
func (_u *HearingTopicUpdateOne) SetRelevance(v string) *HearingTopicUpdateOne {
	_u.mutation.SetRelevance(v)
	return _u
}

// SetNillableRelevance sets the "relevance" field if the given value is not nil.
func (_u *HearingTopicUpdateOne) SetNillableRelevance(v *string) *HearingTopicUpdateOne {
	if v != nil {
		_u.SetRelevance(*v)
	}
	return _u
}

// ClearRelevance clears the value of the "relevance" field.
func (_u *HearingTopicUpdateOne) ClearRelevance() *HearingTopicUpdateOne {
	_u.mutation.ClearRelevance()
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *HearingTopicUpdateOne) SetConfidence(v float64) *HearingTopicUpdateOne {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *HearingTopicUpdateOne) SetNillableConfidence(v *float64) *HearingTopicUpdateOne {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *HearingTopicUpdateOne) AddConfidence(v float64) *HearingTopicUpdateOne {
	_u.mutation.AddConfidence(v)
	return _u
}

// SetNeedsReview sets the "needs_review" field.
func (_u *HearingTopicUpdateOne) SetNeedsReview(v bool) *HearingTopicUpdateOne {
	_u.mutation.SetNeedsReview(v)
	return _u
}

// SetNillableNeedsReview sets the "needs_review" field if the given value is not nil.
func (_u *HearingTopicUpdateOne) SetNillableNeedsReview(v *bool) *HearingTopicUpdateOne {
	if v != nil {
		_u.SetNeedsReview(*v)
	}
	return _u
}

// SetTopic sets the "topic" edge to the Topic entity.
func (_u *HearingTopicUpdateOne) SetTopic(v *Topic) *HearingTopicUpdateOne {
	return _u.SetTopicID(v.ID)
}

// Mutation returns the HearingTopicMutation object of the builder.
func (_u *HearingTopicUpdateOne) Mutation() *HearingTopicMutation {
	return _u.mutation
}

// ClearTopic clears the "topic" edge to the Topic entity.
func (_u *HearingTopicUpdateOne) ClearTopic() *HearingTopicUpdateOne {
	_u.mutation.ClearTopic()
	return _u
}

// Where appends a list predicates to the HearingTopicUpdate builder.
func (_u *HearingTopicUpdateOne) Where(ps ...predicate.HearingTopic) *HearingTopicUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *HearingTopicUpdateOne) Select(field string, fields ...string) *HearingTopicUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated HearingTopic entity.
func (_u *HearingTopicUpdateOne) Save(ctx context.Context) (*HearingTopic, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *HearingTopicUpdateOne) SaveX(ctx context.Context) *HearingTopic {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *HearingTopicUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *HearingTopicUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *HearingTopicUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := hearingtopic.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *HearingTopicUpdateOne) check() error {
	if _u.mutation.HearingCleared() && len(_u.mutation.HearingIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "HearingTopic.hearing"`)
	}
	return nil
}

func (_u *HearingTopicUpdateOne) sqlSave(ctx context.Context) (_node *HearingTopic, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(hearingtopic.Table, hearingtopic.Columns, sqlgraph.NewFieldSpec(hearingtopic.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "HearingTopic.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, hearingtopic.FieldID)
		for _, f := range fields {
			if !hearingtopic.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != hearingtopic.FieldID {
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
		_spec.SetField(hearingtopic.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.RawName(); ok {
		_spec.SetField(hearingtopic.FieldRawName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Relevance(); ok {
		_spec.SetField(hearingtopic.FieldRelevance, field.TypeString, value)
	}
	if _u.mutation.RelevanceCleared() {
		_spec.ClearField(hearingtopic.FieldRelevance, field.TypeString)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(hearingtopic.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(hearingtopic.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.NeedsReview(); ok {
		_spec.SetField(hearingtopic.FieldNeedsReview, field.TypeBool, value)
	}
	if _u.mutation.TopicCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TopicIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &HearingTopic{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{hearingtopic.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
