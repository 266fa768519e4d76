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
	"github.com/canaryscope/canaryscope/ent/segment"
)

// SegmentUpdate is the builder for updating Segment entities.
type SegmentUpdate struct {
	config
	hooks    []Hook
	mutation *SegmentMutation
}

// Where appends a list predicates to the SegmentUpdate builder.
func (_u *SegmentUpdate) Where(ps ...predicate.Segment) *SegmentUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *SegmentUpdate) SetUpdatedAt(v time.Time) *SegmentUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetSegmentIndex sets the "segment_index" field.
func (_u *SegmentUpdate) SetSegmentIndex(v int) *SegmentUpdate {
	_u.mutation.ResetSegmentIndex()
	_u.mutation.SetSegmentIndex(v)
	return _u
}

// SetNillableSegmentIndex sets the "segment_index" field if the given value is not nil.
func (_u *SegmentUpdate) SetNillableSegmentIndex(v *int) *SegmentUpdate {
	if v != nil {
		_u.SetSegmentIndex(*v)
	}
	return _u
}

// AddSegmentIndex adds value to the "segment_index" field.
func (_u *SegmentUpdate) AddSegmentIndex(v int) *SegmentUpdate {
	_u.mutation.AddSegmentIndex(v)
	return _u
}

// SetStartTime sets the "start_time" field.
func (_u *SegmentUpdate) SetStartTime(v float64) *SegmentUpdate {
	_u.mutation.ResetStartTime()
	_u.mutation.SetStartTime(v)
	return _u
}

// SetNillableStartTime sets the "start_time" field if the given value is not nil.
func (_u *SegmentUpdate) SetNillableStartTime(v *float64) *SegmentUpdate {
	if v != nil {
		_u.SetStartTime(*v)
	}
	return _u
}

// AddStartTime adds value to the "start_time" field.
func (_u *SegmentUpdate) AddStartTime(v float64) *SegmentUpdate {
	_u.mutation.AddStartTime(v)
	return _u
}

// SetEndTime sets the "end_time" field.
func (_u *SegmentUpdate) SetEndTime(v float64) *SegmentUpdate {
	_u.mutation.ResetEndTime()
	_u.mutation.SetEndTime(v)
	return _u
}

// SetNillableEndTime sets the "end_time" field if the given value is not nil.
func (_u *SegmentUpdate) SetNillableEndTime(v *float64) *SegmentUpdate {
	if v != nil {
		_u.SetEndTime(*v)
	}
	return _u
}

// AddEndTime adds value to the "end_time" field.
func (_u *SegmentUpdate) AddEndTime(v float64) *SegmentUpdate {
	_u.mutation.AddEndTime(v)
	return _u
}

// SetText sets the "text" field.
func (_u *SegmentUpdate) SetText(v string) *SegmentUpdate {
	_u.mutation.SetText(v)
	return _u
}

// SetNillableText sets the "text" field if the given value is not nil.
func (_u *SegmentUpdate) SetNillableText(v *string) *SegmentUpdate {
	if v != nil {
		_u.SetText(*v)
	}
	return _u
}

// SetSpeaker sets the "speaker" field.
func (_u *SegmentUpdate) SetSpeaker(v string) *SegmentUpdate {
	_u.mutation.SetSpeaker(v)
	return _u
}

// SetNillableSpeaker sets the "speaker" field if the given value is not nil.
func (_u *SegmentUpdate) SetNillableSpeaker(v *string) *SegmentUpdate {
	if v != nil {
		_u.SetSpeaker(*v)
	}
	return _u
}

// ClearSpeaker clears the value of the "speaker" field.
func (_u *SegmentUpdate) ClearSpeaker() *SegmentUpdate {
	_u.mutation.ClearSpeaker()
	return _u
}

// SetSpeakerRole sets the "speaker_role" field.
func (_u *SegmentUpdate) SetSpeakerRole(v string) *SegmentUpdate {
	_u.mutation.SetSpeakerRole(v)
	return _u
}

// SetNillableSpeakerRole sets the "speaker_role" field if the given value is not nil.
func (_u *SegmentUpdate) SetNillableSpeakerRole(v *string) *SegmentUpdate {
	if v != nil {
		_u.SetSpeakerRole(*v)
	}
	return _u
}

// ClearSpeakerRole clears the value of the "speaker_role" field.
func (_u *SegmentUpdate) ClearSpeakerRole() *SegmentUpdate {
	_u.mutation.ClearSpeakerRole()
	return _u
}

// Mutation returns the SegmentMutation object of the builder.
func (_u *SegmentUpdate) Mutation() *SegmentMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SegmentUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SegmentUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SegmentUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SegmentUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *SegmentUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := segment.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SegmentUpdate) check() error {
	if _u.mutation.HearingCleared() && len(_u.mutation.HearingIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Segment.hearing"`)
	}
	return nil
}

func (_u *SegmentUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(segment.Table, segment.Columns, sqlgraph.NewFieldSpec(segment.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(segment.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.SegmentIndex(); ok {
		_spec.SetField(segment.FieldSegmentIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSegmentIndex(); ok {
		_spec.AddField(segment.FieldSegmentIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.StartTime(); ok {
		_spec.SetField(segment.FieldStartTime, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedStartTime(); ok {
		_spec.AddField(segment.FieldStartTime, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.EndTime(); ok {
		_spec.SetField(segment.FieldEndTime, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedEndTime(); ok {
		_spec.AddField(segment.FieldEndTime, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Text(); ok {
		_spec.SetField(segment.FieldText, field.TypeString, value)
	}
	if value, ok := _u.mutation.Speaker(); ok {
		_spec.SetField(segment.FieldSpeaker, field.TypeString, value)
	}
	if _u.mutation.SpeakerCleared() {
		_spec.ClearField(segment.FieldSpeaker, field.TypeString)
	}
	if value, ok := _u.mutation.SpeakerRole(); ok {
		_spec.SetField(segment.FieldSpeakerRole, field.TypeString, value)
	}
	if _u.mutation.SpeakerRoleCleared() {
		_spec.ClearField(segment.FieldSpeakerRole, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{segment.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SegmentUpdateOne is the builder for updating a single Segment entity.
type SegmentUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SegmentMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *SegmentUpdateOne) SetUpdatedAt(v time.Time) *SegmentUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetSegmentIndex sets the "segment_index" field.
func (_u *SegmentUpdateOne) SetSegmentIndex(v int) *SegmentUpdateOne {
	_u.mutation.ResetSegmentIndex()
	_u.mutation.SetSegmentIndex(v)
	return _u
}

// SetNillableSegmentIndex sets the "segment_index" field if the given value is not nil.
func (_u *SegmentUpdateOne) SetNillableSegmentIndex(v *int) *SegmentUpdateOne {
	if v != nil {
		_u.SetSegmentIndex(*v)
	}
	return _u
}

// AddSegmentIndex adds value to the "segment_index" field.
func (_u *SegmentUpdateOne) AddSegmentIndex(v int) *SegmentUpdateOne {
	_u.mutation.AddSegmentIndex(v)
	return _u
}

// SetStartTime sets the "start_time" field.
func (_u *SegmentUpdateOne) SetStartTime(v float64) *SegmentUpdateOne {
	_u.mutation.ResetStartTime()
	_u.mutation.SetStartTime(v)
	return _u
}

// SetNillableStartTime sets the "start_time" field if the given value is not nil.
func (_u *SegmentUpdateOne) SetNillableStartTime(v *float64) *SegmentUpdateOne {
	if v != nil {
		_u.SetStartTime(*v)
	}
	return _u
}

// AddStartTime adds value to the "start_time" field.
func (_u *SegmentUpdateOne) AddStartTime(v float64) *SegmentUpdateOne {
	_u.mutation.AddStartTime(v)
	return _u
}

// SetEndTime sets the "end_time" field.
func (_u *SegmentUpdateOne) SetEndTime(v float64) *SegmentUpdateOne {
	_u.mutation.ResetEndTime()
	_u.mutation.SetEndTime(v)
	return _u
}

// SetNillableEndTime sets the "end_time" field if the given value is not nil.
func (_u *SegmentUpdateOne) SetNillableEndTime(v *float64) *SegmentUpdateOne {
	if v != nil {
		_u.SetEndTime(*v)
	}
	return _u
}

// AddEndTime adds value to the "end_time" field.
func (_u *SegmentUpdateOne) AddEndTime(v float64) *SegmentUpdateOne {
	_u.mutation.AddEndTime(v)
	return _u
}

// SetText sets the "text" field.
func (_u *SegmentUpdateOne) SetText(v string) *SegmentUpdateOne {
	_u.mutation.SetText(v)
	return _u
}

// SetNillableText sets the "text" field if the given value is not nil.
func (_u *SegmentUpdateOne) SetNillableText(v *string) *SegmentUpdateOne {
	if v != nil {
		_u.SetText(*v)
	}
	return _u
}

// SetSpeaker sets the "speaker" field.
func (_u *SegmentUpdateOne) SetSpeaker(v string) *SegmentUpdateOne {
	_u.mutation.SetSpeaker(v)
	return _u
}

// SetNillableSpeaker sets the "speaker" field if the given value is not nil.
func (_u *SegmentUpdateOne) SetNillableSpeaker(v *string) *SegmentUpdateOne {
	if v != nil {
		_u.SetSpeaker(*v)
	}
	return _u
}

// ClearSpeaker clears the value of the "speaker" field.
func (_u *SegmentUpdateOne) ClearSpeaker() *SegmentUpdateOne {
	_u.mutation.ClearSpeaker()
	return _u
}

// SetSpeakerRole sets the "speaker_role" field.
func (_u *SegmentUpdateOne) SetSpeakerRole(v string) *SegmentUpdateOne {
	_u.mutation.SetSpeakerRole(v)
	return _u
}

// SetNillableSpeakerRole sets the "speaker_role" field if the given value is not nil.
func (_u *SegmentUpdateOne) SetNillableSpeakerRole(v *string) *SegmentUpdateOne {
	if v != nil {
		_u.SetSpeakerRole(*v)
	}
	return _u
}

// ClearSpeakerRole clears the value of the "speaker_role" field.
func (_u *SegmentUpdateOne) ClearSpeakerRole() *SegmentUpdateOne {
	_u.mutation.ClearSpeakerRole()
	return _u
}

// Mutation returns the SegmentMutation object of the builder.
func (_u *SegmentUpdateOne) Mutation() *SegmentMutation {
	return _u.mutation
}

// Where appends a list predicates to the SegmentUpdate builder.
func (_u *SegmentUpdateOne) Where(ps ...predicate.Segment) *SegmentUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SegmentUpdateOne) Select(field string, fields ...string) *SegmentUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Segment entity.
func (_u *SegmentUpdateOne) Save(ctx context.Context) (*Segment, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SegmentUpdateOne) SaveX(ctx context.Context) *Segment {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SegmentUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SegmentUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *SegmentUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := segment.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SegmentUpdateOne) check() error {
	if _u.mutation.HearingCleared() && len(_u.mutation.HearingIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Segment.hearing"`)
	}
	return nil
}

func (_u *SegmentUpdateOne) sqlSave(ctx context.Context) (_node *Segment, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(segment.Table, segment.Columns, sqlgraph.NewFieldSpec(segment.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Segment.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, segment.FieldID)
		for _, f := range fields {
			if !segment.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != segment.FieldID {
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
		_spec.SetField(segment.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.SegmentIndex(); ok {
		_spec.SetField(segment.FieldSegmentIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSegmentIndex(); ok {
		_spec.AddField(segment.FieldSegmentIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.StartTime(); ok {
		_spec.SetField(segment.FieldStartTime, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedStartTime(); ok {
		_spec.AddField(segment.FieldStartTime, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.EndTime(); ok {
		_spec.SetField(segment.FieldEndTime, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedEndTime(); ok {
		_spec.AddField(segment.FieldEndTime, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Text(); ok {
		_spec.SetField(segment.FieldText, field.TypeString, value)
	}
	if value, ok := _u.mutation.Speaker(); ok {
		_spec.SetField(segment.FieldSpeaker, field.TypeString, value)
	}
	if _u.mutation.SpeakerCleared() {
		_spec.ClearField(segment.FieldSpeaker, field.TypeString)
	}
	if value, ok := _u.mutation.SpeakerRole(); ok {
		_spec.SetField(segment.FieldSpeakerRole, field.TypeString, value)
	}
	if _u.mutation.SpeakerRoleCleared() {
		_spec.ClearField(segment.FieldSpeakerRole, field.TypeString)
	}
	_node = &Segment{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{segment.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
