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
	"github.com/canaryscope/canaryscope/ent/hearingdocket"
	"github.com/canaryscope/canaryscope/ent/predicate"
)

// HearingDocketUpdate is the builder for updating HearingDocket entities.
type HearingDocketUpdate struct {
	config
	hooks    []Hook
	mutation *HearingDocketMutation
}

// Where appends a list predicates to the HearingDocketUpdate builder.
func (_u *HearingDocketUpdate) Where(ps ...predicate.HearingDocket) *HearingDocketUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *HearingDocketUpdate) SetUpdatedAt(v time.Time) *HearingDocketUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetConfidenceScore sets the "confidence_score" field.
func (_u *HearingDocketUpdate) SetConfidenceScore(v float64) *HearingDocketUpdate {
	_u.mutation.ResetConfidenceScore()
	_u.mutation.SetConfidenceScore(v)
	return _u
}

// SetNillableConfidenceScore sets the "confidence_score" field if the given value is not nil.
func (_u *HearingDocketUpdate) SetNillableConfidenceScore(v *float64) *HearingDocketUpdate {
	if v != nil {
		_u.SetConfidenceScore(*v)
	}
	return _u
}

// AddConfidenceScore adds value to the "confidence_score" field.
func (_u *HearingDocketUpdate) AddConfidenceScore(v float64) *HearingDocketUpdate {
	_u.mutation.AddConfidenceScore(v)
	return _u
}

// SetMatchType sets the "match_type" field.
func (_u *HearingDocketUpdate) SetMatchType(v hearingdocket.MatchType) *HearingDocketUpdate {
	_u.mutation.SetMatchType(v)
	return _u
}

// SetNillableMatchType sets the "match_type" field if the given value is not nil.
func (_u *HearingDocketUpdate) SetNillableMatchType(v *hearingdocket.MatchType) *HearingDocketUpdate {
	if v != nil {
		_u.SetMatchType(*v)
	}
	return _u
}

// SetNeedsReview sets the "needs_review" field.
func (_u *HearingDocketUpdate) SetNeedsReview(v bool) *HearingDocketUpdate {
	_u.mutation.SetNeedsReview(v)
	return _u
}

// SetNillableNeedsReview sets the "needs_review" field if the given value is not nil.
func (_u *HearingDocketUpdate) SetNillableNeedsReview(v *bool) *HearingDocketUpdate {
	if v != nil {
		_u.SetNeedsReview(*v)
	}
	return _u
}

// SetReviewReason sets the "review_reason" field.
func (_u *HearingDocketUpdate) SetReviewReason(v string) *HearingDocketUpdate {
	_u.mutation.SetReviewReason(v)
	return _u
}

// SetNillableReviewReason sets the "review_reason" field if the given value is not nil.
func (_u *HearingDocketUpdate) SetNillableReviewReason(v *string) *HearingDocketUpdate {
	if v != nil {
		_u.SetReviewReason(*v)
	}
	return _u
}

// ClearReviewReason clears the value of the "review_reason" field.
func (_u *HearingDocketUpdate) ClearReviewReason() *HearingDocketUpdate {
	_u.mutation.ClearReviewReason()
	return _u
}

// SetContextSummary sets the "context_summary" field.
func (_u *HearingDocketUpdate) SetContextSummary(v string) *HearingDocketUpdate {
	_u.mutation.SetContextSummary(v)
	return _u
}

// SetNillableContextSummary sets the "context_summary" field if the given value is not nil.
func (_u *HearingDocketUpdate) SetNillableContextSummary(v *string) *HearingDocketUpdate {
	if v != nil {
		_u.SetContextSummary(*v)
	}
	return _u
}

// ClearContextSummary clears the value of the "context_summary" field.
func (_u *HearingDocketUpdate) ClearContextSummary() *HearingDocketUpdate {
	_u.mutation.ClearContextSummary()
	return _u
}

// SetIsPrimary sets the "is_primary" field.
func (_u *HearingDocketUpdate) SetIsPrimary(v bool) *HearingDocketUpdate {
	_u.mutation.SetIsPrimary(v)
	return _u
}

// SetNillableIsPrimary sets the "is_primary" field if the given value is not nil.
func (_u *HearingDocketUpdate) SetNillableIsPrimary(v *bool) *HearingDocketUpdate {
	if v != nil {
		_u.SetIsPrimary(*v)
	}
	return _u
}

// Mutation returns the HearingDocketMutation object of the builder.
func (_u *HearingDocketUpdate) Mutation() *HearingDocketMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *HearingDocketUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *HearingDocketUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *HearingDocketUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *HearingDocketUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *HearingDocketUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := hearingdocket.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *HearingDocketUpdate) check() error {
	if v, ok := _u.mutation.MatchType(); ok {
		if err := hearingdocket.MatchTypeValidator(v); err != nil {
			return &ValidationError{Name: "match_type", err: fmt.Errorf(`ent: validator failed for field "HearingDocket.match_type": %w`, err)}
		}
	}
	if _u.mutation.HearingCleared() && len(_u.mutation.HearingIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "HearingDocket.hearing"`)
	}
	if _u.mutation.DocketCleared() && len(_u.mutation.DocketIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "HearingDocket.docket"`)
	}
	return nil
}

func (_u *HearingDocketUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(hearingdocket.Table, hearingdocket.Columns, sqlgraph.NewFieldSpec(hearingdocket.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(hearingdocket.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.ConfidenceScore(); ok {
		_spec.SetField(hearingdocket.FieldConfidenceScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidenceScore(); ok {
		_spec.AddField(hearingdocket.FieldConfidenceScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.MatchType(); ok {
		_spec.SetField(hearingdocket.FieldMatchType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.NeedsReview(); ok {
		_spec.SetField(hearingdocket.FieldNeedsReview, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ReviewReason(); ok {
		_spec.SetField(hearingdocket.FieldReviewReason, field.TypeString, value)
	}
	if _u.mutation.ReviewReasonCleared() {
		_spec.ClearField(hearingdocket.FieldReviewReason, field.TypeString)
	}
	if value, ok := _u.mutation.ContextSummary(); ok {
		_spec.SetField(hearingdocket.FieldContextSummary, field.TypeString, value)
	}
	if _u.mutation.ContextSummaryCleared() {
		_spec.ClearField(hearingdocket.FieldContextSummary, field.TypeString)
	}
	if value, ok := _u.mutation.IsPrimary(); ok {
		_spec.SetField(hearingdocket.FieldIsPrimary, field.TypeBool, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{hearingdocket.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// HearingDocketUpdateOne is the builder for updating a single HearingDocket entity.
type HearingDocketUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *HearingDocketMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *HearingDocketUpdateOne) SetUpdatedAt(v time.Time) *HearingDocketUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetConfidenceScore sets the "confidence_score" field.
func (_u *HearingDocketUpdateOne) SetConfidenceScore(v float64) *HearingDocketUpdateOne {
	_u.mutation.ResetConfidenceScore()
	_u.mutation.SetConfidenceScore(v)
	return _u
}

// SetNillableConfidenceScore sets the "confidence_score" field if the given value is not nil.
func (_u *HearingDocketUpdateOne) SetNillableConfidenceScore(v *float64) *HearingDocketUpdateOne {
	if v != nil {
		_u.SetConfidenceScore(*v)
	}
	return _u
}

// AddConfidenceScore adds value to the "confidence_score" field.
func (_u *HearingDocketUpdateOne) AddConfidenceScore(v float64) *HearingDocketUpdateOne {
	_u.mutation.AddConfidenceScore(v)
	return _u
}

// SetMatchType sets the "match_type" field.
func (_u *HearingDocketUpdateOne) SetMatchType(v hearingdocket.MatchType) *HearingDocketUpdateOne {
	_u.mutation.SetMatchType(v)
	return _u
}

// SetNillableMatchType sets the "match_type" field if the given value is not nil.
func (_u *HearingDocketUpdateOne) SetNillableMatchType(v *hearingdocket.MatchType) *HearingDocketUpdateOne {
	if v != nil {
		_u.SetMatchType(*v)
	}
	return _u
}

// SetNeedsReview sets the "needs_review" field.
func (_u *HearingDocketUpdateOne) SetNeedsReview(v bool) *HearingDocketUpdateOne {
	_u.mutation.SetNeedsReview(v)
	return _u
}

// SetNillableNeedsReview sets the "needs_review" field if the given value is not nil.
func (_u *HearingDocketUpdateOne) SetNillableNeedsReview(v *bool) *HearingDocketUpdateOne {
	if v != nil {
		_u.SetNeedsReview(*v)
	}
	return _u
}

// SetReviewReason sets the "review_reason" field.
func (_u *HearingDocketUpdateOne) SetReviewReason(v string) *HearingDocketUpdateOne {
	_u.mutation.SetReviewReason(v)
	return _u
}

// SetNillableReviewReason sets the "review_reason" field if the given value is not nil.
func (_u *HearingDocketUpdateOne) SetNillableReviewReason(v *string) *HearingDocketUpdateOne {
	if v != nil {
		_u.SetReviewReason(*v)
	}
	return _u
}

// ClearReviewReason clears the value of the "review_reason" field.
func (_u *HearingDocketUpdateOne) ClearReviewReason() *HearingDocketUpdateOne {
	_u.mutation.ClearReviewReason()
	return _u
}

// SetContextSummary sets the "context_summary" field.
func (_u *HearingDocketUpdateOne) SetContextSummary(v string) *HearingDocketUpdateOne {
	_u.mutation.SetContextSummary(v)
	return _u
}

// SetNillableContextSummary sets the "context_summary" field if the given value is not nil.
func (_u *HearingDocketUpdateOne) SetNillableContextSummary(v *string) *HearingDocketUpdateOne {
	if v != nil {
		_u.SetContextSummary(*v)
	}
	return _u
}

// ClearContextSummary clears the value of the "context_summary" field.
func (_u *HearingDocketUpdateOne) ClearContextSummary() *HearingDocketUpdateOne {
	_u.mutation.ClearContextSummary()
	return _u
}

// SetIsPrimary sets the "is_primary" field.
func (_u *HearingDocketUpdateOne) SetIsPrimary(v bool) *HearingDocketUpdateOne {
	_u.mutation.SetIsPrimary(v)
	return _u
}

// SetNillableIsPrimary sets the "is_primary" field if the given value is not nil.
func (_u *HearingDocketUpdateOne) SetNillableIsPrimary(v *bool) *HearingDocketUpdateOne {
	if v != nil {
		_u.SetIsPrimary(*v)
	}
	return _u
}

// Mutation returns the HearingDocketMutation object of the builder.
func (_u *HearingDocketUpdateOne) Mutation() *HearingDocketMutation {
	return _u.mutation
}

// Where appends a list predicates to the HearingDocketUpdate builder.
func (_u *HearingDocketUpdateOne) Where(ps ...predicate.HearingDocket) *HearingDocketUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *HearingDocketUpdateOne) Select(field string, fields ...string) *HearingDocketUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated HearingDocket entity.
func (_u *HearingDocketUpdateOne) Save(ctx context.Context) (*HearingDocket, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *HearingDocketUpdateOne) SaveX(ctx context.Context) *HearingDocket {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *HearingDocketUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *HearingDocketUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *HearingDocketUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := hearingdocket.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *HearingDocketUpdateOne) check() error {
	if v, ok := _u.mutation.MatchType(); ok {
		if err := hearingdocket.MatchTypeValidator(v); err != nil {
			return &ValidationError{Name: "match_type", err: fmt.Errorf(`ent: validator failed for field "HearingDocket.match_type": %w`, err)}
		}
	}
	if _u.mutation.HearingCleared() && len(_u.mutation.HearingIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "HearingDocket.hearing"`)
	}
	if _u.mutation.DocketCleared() && len(_u.mutation.DocketIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "HearingDocket.docket"`)
	}
	return nil
}

func (_u *HearingDocketUpdateOne) sqlSave(ctx context.Context) (_node *HearingDocket, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(hearingdocket.Table, hearingdocket.Columns, sqlgraph.NewFieldSpec(hearingdocket.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "HearingDocket.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, hearingdocket.FieldID)
		for _, f := range fields {
			if !hearingdocket.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != hearingdocket.FieldID {
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
		_spec.SetField(hearingdocket.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.ConfidenceScore(); ok {
		_spec.SetField(hearingdocket.FieldConfidenceScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidenceScore(); ok {
		_spec.AddField(hearingdocket.FieldConfidenceScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.MatchType(); ok {
		_spec.SetField(hearingdocket.FieldMatchType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.NeedsReview(); ok {
		_spec.SetField(hearingdocket.FieldNeedsReview, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ReviewReason(); ok {
		_spec.SetField(hearingdocket.FieldReviewReason, field.TypeString, value)
	}
	if _u.mutation.ReviewReasonCleared() {
		_spec.ClearField(hearingdocket.FieldReviewReason, field.TypeString)
	}
	if value, ok := _u.mutation.ContextSummary(); ok {
		_spec.SetField(hearingdocket.FieldContextSummary, field.TypeString, value)
	}
	if _u.mutation.ContextSummaryCleared() {
		_spec.ClearField(hearingdocket.FieldContextSummary, field.TypeString)
	}
	if value, ok := _u.mutation.IsPrimary(); ok {
		_spec.SetField(hearingdocket.FieldIsPrimary, field.TypeBool, value)
	}
	_node = &HearingDocket{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{hearingdocket.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
