// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/canaryscope/canaryscope/ent/hearingtopic"
	"github.com/canaryscope/canaryscope/ent/predicate"
	"github.com/canaryscope/canaryscope/ent/topic"
)

// TopicUpdate is the builder for updating Topic entities.
type TopicUpdate struct {
	config
	hooks    []Hook
	mutation *TopicMutation
}

// Where appends a list predicates to the TopicUpdate builder.
func (_u *TopicUpdate) Where(ps ...predicate.Topic) *TopicUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *TopicUpdate) SetUpdatedAt(v time.Time) *TopicUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetName sets the "name" field.
func (_u *TopicUpdate) SetName(v string) *TopicUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *TopicUpdate) SetNillableName(v *string) *TopicUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetNormalizedName sets the "normalized_name" field.
func (_u *TopicUpdate) SetNormalizedName(v string) *TopicUpdate {
	_u.mutation.SetNormalizedName(v)
	return _u
}

// SetNillableNormalizedName sets the "normalized_name" field if the given value is not nil.
func (_u *TopicUpdate) SetNillableNormalizedName(v *string) *TopicUpdate {
	if v != nil {
		_u.SetNormalizedName(*v)
	}
	return _u
}

// SetAliases sets the "aliases" field.
func (_u *TopicUpdate) SetAliases(v []string) *TopicUpdate {
	_u.mutation.SetAliases(v)
	return _u
}

// AppendAliases appends value to the "aliases" field.
func (_u *TopicUpdate) AppendAliases(v []string) *TopicUpdate {
	_u.mutation.AppendAliases(v)
	return _u
}

// ClearAliases clears the value of the "aliases" field.
func (_u *TopicUpdate) ClearAliases() *TopicUpdate {
	_u.mutation.ClearAliases()
	return _u
}

// SetCategory sets the "category" field.
func (_u *TopicUpdate) SetCategory(v string) *TopicUpdate {
	_u.mutation.SetCategory(v)
	return _u
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_u *TopicUpdate) SetNillableCategory(v *string) *TopicUpdate {
	if v != nil {
		_u.SetCategory(*v)
	}
	return _u
}

// ClearCategory clears the value of the "category" field.
func (_u *TopicUpdate) ClearCategory() *TopicUpdate {
	_u.mutation.ClearCategory()
	return _u
}

// SetMentionCount sets the "mention_count" field.
func (_u *TopicUpdate) SetMentionCount(v int) *TopicUpdate {
	_u.mutation.ResetMentionCount()
	_u.mutation.SetMentionCount(v)
	return _u
}

// SetNillableMentionCount sets the "mention_count" field if the given value is not nil.
func (_u *TopicUpdate) SetNillableMentionCount(v *int) *TopicUpdate {
	if v != nil {
		_u.SetMentionCount(*v)
	}
	return _u
}

// AddMentionCount adds value to the "mention_count" field.
func (_u *TopicUpdate) AddMentionCount(v int) *TopicUpdate {
	_u.mutation.AddMentionCount(v)
	return _u
}

// AddHearingTopicIDs adds the "hearing_topics" edge to the HearingTopic entity by IDs.
func (_u *TopicUpdate) AddHearingTopicIDs(ids ...string) *TopicUpdate {
	_u.mutation.AddHearingTopicIDs(ids...)
	return _u
}

// AddHearingTopics adds the "hearing_topics" edges to the HearingTopic entity.
func (_u *TopicUpdate) AddHearingTopics(v ...*HearingTopic) *TopicUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddHearingTopicIDs(ids...)
}

// Mutation returns the TopicMutation object of the builder.
func (_u *TopicUpdate) Mutation() *TopicMutation {
	return _u.mutation
}

// ClearHearingTopics clears all "hearing_topics" edges to the HearingTopic entity.
func (_u *TopicUpdate) ClearHearingTopics() *TopicUpdate {
	_u.mutation.ClearHearingTopics()
	return _u
}

// RemoveHearingTopicIDs removes the "hearing_topics" edge to HearingTopic entities by IDs.
func (_u *TopicUpdate) RemoveHearingTopicIDs(ids ...string) *TopicUpdate {
	_u.mutation.RemoveHearingTopicIDs(ids...)
	return _u
}

// RemoveHearingTopics removes "hearing_topics" edges to HearingTopic entities.
func (_u *TopicUpdate) RemoveHearingTopics(v ...*HearingTopic) *TopicUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveHearingTopicIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *TopicUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TopicUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *TopicUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TopicUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *TopicUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := topic.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *TopicUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(topic.Table, topic.Columns, sqlgraph.NewFieldSpec(topic.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(topic.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(topic.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.NormalizedName(); ok {
		_spec.SetField(topic.FieldNormalizedName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Aliases(); ok {
		_spec.SetField(topic.FieldAliases, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedAliases(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, topic.FieldAliases, value)
		})
	}
	if _u.mutation.AliasesCleared() {
		_spec.ClearField(topic.FieldAliases, field.TypeJSON)
	}
	if value, ok := _u.mutation.Category(); ok {
		_spec.SetField(topic.FieldCategory, field.TypeString, value)
	}
	if _u.mutation.CategoryCleared() {
		_spec.ClearField(topic.FieldCategory, field.TypeString)
	}
	if value, ok := _u.mutation.MentionCount(); ok {
		_spec.SetField(topic.FieldMentionCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMentionCount(); ok {
		_spec.AddField(topic.FieldMentionCount, field.TypeInt, value)
	}
	if _u.mutation.HearingTopicsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   topic.HearingTopicsTable,
			Columns: []string{topic.HearingTopicsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(hearingtopic.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedHearingTopicsIDs(); len(nodes) > 0 && !_u.mutation.HearingTopicsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   topic.HearingTopicsTable,
			Columns: []string{topic.HearingTopicsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(hearingtopic.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.HearingTopicsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   topic.HearingTopicsTable,
			Columns: []string{topic.HearingTopicsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(hearingtopic.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{topic.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// TopicUpdateOne is the builder for updating a single Topic entity.
type TopicUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *TopicMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *TopicUpdateOne) SetUpdatedAt(v time.Time) *TopicUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetName sets the "name" field.
func (_u *TopicUpdateOne) SetName(v string) *TopicUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *TopicUpdateOne) SetNillableName(v *string) *TopicUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetNormalizedName sets the "normalized_name" field.
func (_u *TopicUpdateOne) SetNormalizedName(v string) *TopicUpdateOne {
	_u.mutation.SetNormalizedName(v)
	return _u
}

// SetNillableNormalizedName sets the "normalized_name" field if the given value is not nil.
func (_u *TopicUpdateOne) SetNillableNormalizedName(v *string) *TopicUpdateOne {
	if v != nil {
		_u.SetNormalizedName(*v)
	}
	return _u
}

// SetAliases sets the "aliases" field.
func (_u *TopicUpdateOne) SetAliases(v []string) *TopicUpdateOne {
	_u.mutation.SetAliases(v)
	return _u
}

// AppendAliases appends value to the "aliases" field.
func (_u *TopicUpdateOne) AppendAliases(v []string) *TopicUpdateOne {
	_u.mutation.AppendAliases(v)
	return _u
}

// ClearAliases clears the value of the "aliases" field.
func (_u *TopicUpdateOne) ClearAliases() *TopicUpdateOne {
	_u.mutation.ClearAliases()
	return _u
}

// SetCategory sets the "category" field.
func (_u *TopicUpdateOne) SetCategory(v string) *TopicUpdateOne {
	_u.mutation.SetCategory(v)
	return _u
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_u *TopicUpdateOne) SetNillableCategory(v *string) *TopicUpdateOne {
	if v != nil {
		_u.SetCategory(*v)
	}
	return _u
}

// ClearCategory clears the value of the "category" field.
func (_u *TopicUpdateOne) ClearCategory() *TopicUpdateOne {
	_u.mutation.ClearCategory()
	return _u
}

// SetMentionCount sets the "mention_count" field.
func (_u *TopicUpdateOne) SetMentionCount(v int) *TopicUpdateOne {
	_u.mutation.ResetMentionCount()
	_u.mutation.SetMentionCount(v)
	return _u
}

// SetNillableMentionCount sets the "mention_count" field if the given value is not nil.
func (_u *TopicUpdateOne) SetNillableMentionCount(v *int) *TopicUpdateOne {
	if v != nil {
		_u.SetMentionCount(*v)
	}
	return _u
}

// AddMentionCount adds value to the "mention_count" field.
func (_u *TopicUpdateOne) AddMentionCount(v int) *TopicUpdateOne {
	_u.mutation.AddMentionCount(v)
	return _u
}

// AddHearingTopicIDs adds the "hearing_topics" edge to the HearingTopic entity by IDs.
func (_u *TopicUpdateOne) AddHearingTopicIDs(ids ...string) *TopicUpdateOne {
	_u.mutation.AddHearingTopicIDs(ids...)
	return _u
}

// AddHearingTopics adds the "hearing_topics" edges to the HearingTopic entity.
func (_u *TopicUpdateOne) AddHearingTopics(v ...*HearingTopic) *TopicUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddHearingTopicIDs(ids...)
}

// Mutation returns the TopicMutation object of the builder.
func (_u *TopicUpdateOne) Mutation() *TopicMutation {
	return _u.mutation
}

// ClearHearingTopics clears all "hearing_topics" edges to the HearingTopic entity.
func (_u *TopicUpdateOne) ClearHearingTopics() *TopicUpdateOne {
	_u.mutation.ClearHearingTopics()
	return _u
}

// RemoveHearingTopicIDs removes the "hearing_topics" edge to HearingTopic entities by IDs.
func (_u *TopicUpdateOne) RemoveHearingTopicIDs(ids ...string) *TopicUpdateOne {
	_u.mutation.RemoveHearingTopicIDs(ids...)
	return _u
}

// RemoveHearingTopics removes "hearing_topics" edges to HearingTopic entities.
func (_u *TopicUpdateOne) RemoveHearingTopics(v ...*HearingTopic) *TopicUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveHearingTopicIDs(ids...)
}

// Where appends a list predicates to the TopicUpdate builder.
func (_u *TopicUpdateOne) Where(ps ...predicate.Topic) *TopicUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *TopicUpdateOne) Select(field string, fields ...string) *TopicUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Topic entity.
func (_u *TopicUpdateOne) Save(ctx context.Context) (*Topic, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TopicUpdateOne) SaveX(ctx context.Context) *Topic {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *TopicUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TopicUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *TopicUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := topic.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *TopicUpdateOne) sqlSave(ctx context.Context) (_node *Topic, err error) {
	_spec := sqlgraph.NewUpdateSpec(topic.Table, topic.Columns, sqlgraph.NewFieldSpec(topic.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Topic.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, topic.FieldID)
		for _, f := range fields {
			if !topic.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != topic.FieldID {
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
		_spec.SetField(topic.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(topic.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.NormalizedName(); ok {
		_spec.SetField(topic.FieldNormalizedName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Aliases(); ok {
		_spec.SetField(topic.FieldAliases, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedAliases(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, topic.FieldAliases, value)
		})
	}
	if _u.mutation.AliasesCleared() {
		_spec.ClearField(topic.FieldAliases, field.TypeJSON)
	}
	if value, ok := _u.mutation.Category(); ok {
		_spec.SetField(topic.FieldCategory, field.TypeString, value)
	}
	if _u.mutation.CategoryCleared() {
		_spec.ClearField(topic.FieldCategory, field.TypeString)
	}
	if value, ok := _u.mutation.MentionCount(); ok {
		_spec.SetField(topic.FieldMentionCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMentionCount(); ok {
		_spec.AddField(topic.FieldMentionCount, field.TypeInt, value)
	}
	if _u.mutation.HearingTopicsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   topic.HearingTopicsTable,
			Columns: []string{topic.HearingTopicsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(hearingtopic.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedHearingTopicsIDs(); len(nodes) > 0 && !_u.mutation.HearingTopicsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   topic.HearingTopicsTable,
			Columns: []string{topic.HearingTopicsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(hearingtopic.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.HearingTopicsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   topic.HearingTopicsTable,
			Columns: []string{topic.HearingTopicsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(hearingtopic.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Topic{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{topic.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
