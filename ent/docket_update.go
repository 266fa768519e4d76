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
	"github.com/canaryscope/canaryscope/ent/docket"
	"github.com/canaryscope/canaryscope/ent/hearingdocket"
	"github.com/canaryscope/canaryscope/ent/knowndocket"
	"github.com/canaryscope/canaryscope/ent/predicate"
)

// DocketUpdate is the builder for updating Docket entities.
type DocketUpdate struct {
	config
	hooks    []Hook
	mutation *DocketMutation
}

// Where appends a list predicates to the DocketUpdate builder.
func (_u *DocketUpdate) Where(ps ...predicate.Docket) *DocketUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *DocketUpdate) SetUpdatedAt(v time.Time) *DocketUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetStateCode sets the "state_code" field.
func (_u *DocketUpdate) SetStateCode(v string) *DocketUpdate {
	_u.mutation.SetStateCode(v)
	return _u
}

// SetNillableStateCode sets the "state_code" field if the given value is not nil.
func (_u *DocketUpdate) SetNillableStateCode(v *string) *DocketUpdate {
	if v != nil {
		_u.SetStateCode(*v)
	}
	return _u
}

// SetDocketNumber sets the "docket_number" field.
func (_u *DocketUpdate) SetDocketNumber(v string) *DocketUpdate {
	_u.mutation.SetDocketNumber(v)
	return _u
}

// SetNillableDocketNumber sets the "docket_number" field if the given value is not nil.
func (_u *DocketUpdate) SetNillableDocketNumber(v *string) *DocketUpdate {
	if v != nil {
		_u.SetDocketNumber(*v)
	}
	return _u
}

// SetNormalizedID sets the "normalized_id" field.
func (_u *DocketUpdate) SetNormalizedID(v string) *DocketUpdate {
	_u.mutation.SetNormalizedID(v)
	return _u
}

// SetNillableNormalizedID sets the "normalized_id" field if the given value is not nil.
func (_u *DocketUpdate) SetNillableNormalizedID(v *string) *DocketUpdate {
	if v != nil {
		_u.SetNormalizedID(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *DocketUpdate) SetTitle(v string) *DocketUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *DocketUpdate) SetNillableTitle(v *string) *DocketUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// ClearTitle clears the value of the "title" field.
func (_u *DocketUpdate) ClearTitle() *DocketUpdate {
	_u.mutation.ClearTitle()
	return _u
}

// SetCompany sets the "company" field.
func (_u *DocketUpdate) SetCompany(v string) *DocketUpdate {
	_u.mutation.SetCompany(v)
	return _u
}

// SetNillableCompany sets the "company" field if the given value is not nil.
func (_u *DocketUpdate) SetNillableCompany(v *string) *DocketUpdate {
	if v != nil {
		_u.SetCompany(*v)
	}
	return _u
}

// ClearCompany clears the value of the "company" field.
func (_u *DocketUpdate) ClearCompany() *DocketUpdate {
	_u.mutation.ClearCompany()
	return _u
}

// SetSector sets the "sector" field.
func (_u *DocketUpdate) SetSector(v string) *DocketUpdate {
	_u.mutation.SetSector(v)
	return _u
}

// SetNillableSector sets the "sector" field if the given value is not nil.
func (_u *DocketUpdate) SetNillableSector(v *string) *DocketUpdate {
	if v != nil {
		_u.SetSector(*v)
	}
	return _u
}

// ClearSector clears the value of the "sector" field.
func (_u *DocketUpdate) ClearSector() *DocketUpdate {
	_u.mutation.ClearSector()
	return _u
}

// SetStatus sets the "status" field.
func (_u *DocketUpdate) SetStatus(v string) *DocketUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *DocketUpdate) SetNillableStatus(v *string) *DocketUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// ClearStatus clears the value of the "status" field.
func (_u *DocketUpdate) ClearStatus() *DocketUpdate {
	_u.mutation.ClearStatus()
	return _u
}

// SetFirstSeenAt sets the "first_seen_at" field.
func (_u *DocketUpdate) SetFirstSeenAt(v time.Time) *DocketUpdate {
	_u.mutation.SetFirstSeenAt(v)
	return _u
}

// SetNillableFirstSeenAt sets the "first_seen_at" field if the given value is not nil.
func (_u *DocketUpdate) SetNillableFirstSeenAt(v *time.Time) *DocketUpdate {
	if v != nil {
		_u.SetFirstSeenAt(*v)
	}
	return _u
}

// SetLastMentionedAt sets the "last_mentioned_at" field.
func (_u *DocketUpdate) SetLastMentionedAt(v time.Time) *DocketUpdate {
	_u.mutation.SetLastMentionedAt(v)
	return _u
}

// SetNillableLastMentionedAt sets the "last_mentioned_at" field if the given value is not nil.
func (_u *DocketUpdate) SetNillableLastMentionedAt(v *time.Time) *DocketUpdate {
	if v != nil {
		_u.SetLastMentionedAt(*v)
	}
	return _u
}

// SetMentionCount sets the "mention_count" field.
func (_u *DocketUpdate) SetMentionCount(v int) *DocketUpdate {
	_u.mutation.ResetMentionCount()
	_u.mutation.SetMentionCount(v)
	return _u
}

// SetNillableMentionCount sets the "mention_count" field if the given value is not nil.
func (_u *DocketUpdate) SetNillableMentionCount(v *int) *DocketUpdate {
	if v != nil {
		_u.SetMentionCount(*v)
	}
	return _u
}

// AddMentionCount adds value to the "mention_count" field.
func (_u *DocketUpdate) AddMentionCount(v int) *DocketUpdate {
	_u.mutation.AddMentionCount(v)
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *DocketUpdate) SetConfidence(v docket.Confidence) *DocketUpdate {
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *DocketUpdate) SetNillableConfidence(v *docket.Confidence) *DocketUpdate {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// SetKnownDocketID sets the "known_docket_id" field.
func (_u *DocketUpdate) SetKnownDocketID(v string) *DocketUpdate {
	_u.mutation.SetKnownDocketID(v)
	return _u
}

// SetNillableKnownDocketID sets the "known_docket_id" field if the given value is not nil.
func (_u *DocketUpdate) SetNillableKnownDocketID(v *string) *DocketUpdate {
	if v != nil {
		_u.SetKnownDocketID(*v)
	}
	return _u
}

// ClearKnownDocketID clears the value of the "known_docket_id" field.
func (_u *DocketUpdate) ClearKnownDocketID() *DocketUpdate {
	_u.mutation.ClearKnownDocketID()
	return _u
}

// SetMatchScore sets the "match_score" field.
func (_u *DocketUpdate) SetMatchScore(v float64) *DocketUpdate {
	_u.mutation.ResetMatchScore()
	_u.mutation.SetMatchScore(v)
	return _u
}

// SetNillableMatchScore sets the "match_score" field if the given value is not nil.
func (_u *DocketUpdate) SetNillableMatchScore(v *float64) *DocketUpdate {
	if v != nil {
		_u.SetMatchScore(*v)
	}
	return _u
}

// AddMatchScore adds value to the "match_score" field.
func (_u *DocketUpdate) AddMatchScore(v float64) *DocketUpdate {
	_u.mutation.AddMatchScore(v)
	return _u
}

// SetKnownDocket sets the "known_docket" edge to the KnownDocket entity.
func (_u *DocketUpdate) SetKnownDocket(v *KnownDocket) *DocketUpdate {
	return _u.SetKnownDocketID(v.ID)
}

// AddHearingDocketIDs adds the "hearing_dockets" edge to the HearingDocket entity by IDs.
func (_u *DocketUpdate) AddHearingDocketIDs(ids ...string) *DocketUpdate {
	_u.mutation.AddHearingDocketIDs(ids...)
	return _u
}

// AddHearingDockets adds the "hearing_dockets" edges to the HearingDocket entity.
func (_u *DocketUpdate) AddHearingDockets(v ...*HearingDocket) *DocketUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddHearingDocketIDs(ids...)
}

// Mutation returns the DocketMutation object of the builder.
func (_u *DocketUpdate) Mutation() *DocketMutation {
	return _u.mutation
}

// ClearKnownDocket clears the "known_docket" edge to the KnownDocket entity.
func (_u *DocketUpdate) ClearKnownDocket() *DocketUpdate {
	_u.mutation.ClearKnownDocket()
	return _u
}

// ClearHearingDockets clears all "hearing_dockets" edges to the HearingDocket entity.
func (_u *DocketUpdate) ClearHearingDockets() *DocketUpdate {
	_u.mutation.ClearHearingDockets()
	return _u
}

// RemoveHearingDocketIDs removes the "hearing_dockets" edge to HearingDocket entities by IDs.
func (_u *DocketUpdate) RemoveHearingDocketIDs(ids ...string) *DocketUpdate {
	_u.mutation.RemoveHearingDocketIDs(ids...)
	return _u
}

// RemoveHearingDockets removes "hearing_dockets" edges to HearingDocket entities.
func (_u *DocketUpdate) RemoveHearingDockets(v ...*HearingDocket) *DocketUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveHearingDocketIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *DocketUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DocketUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *DocketUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DocketUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *DocketUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := docket.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DocketUpdate) check() error {
	if v, ok := _u.mutation.StateCode(); ok {
		if err := docket.StateCodeValidator(v); err != nil {
			return &ValidationError{Name: "state_code", err: fmt.Errorf(`ent: validator failed for field "Docket.state_code": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Confidence(); ok {
		if err := docket.ConfidenceValidator(v); err != nil {
			return &ValidationError{Name: "confidence", err: fmt.Errorf(`ent: validator failed for field "Docket.confidence": %w`, err)}
		}
	}
	return nil
}

func (_u *DocketUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(docket.Table, docket.Columns, sqlgraph.NewFieldSpec(docket.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(docket.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.StateCode(); ok {
		_spec.SetField(docket.FieldStateCode, field.TypeString, value)
	}
	if value, ok := _u.mutation.DocketNumber(); ok {
		_spec.SetField(docket.FieldDocketNumber, field.TypeString, value)
	}
	if value, ok := _u.mutation.NormalizedID(); ok {
		_spec.SetField(docket.FieldNormalizedID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(docket.FieldTitle, field.TypeString, value)
	}
	if _u.mutation.TitleCleared() {
		_spec.ClearField(docket.FieldTitle, field.TypeString)
	}
	if value, ok := _u.mutation.Company(); ok {
		_spec.SetField(docket.FieldCompany, field.TypeString, value)
	}
	if _u.mutation.CompanyCleared() {
		_spec.ClearField(docket.FieldCompany, field.TypeString)
	}
	if value, ok := _u.mutation.Sector(); ok {
		_spec.SetField(docket.FieldSector, field.TypeString, value)
	}
	if _u.mutation.SectorCleared() {
		_spec.ClearField(docket.FieldSector, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(docket.FieldStatus, field.TypeString, value)
	}
	if _u.mutation.StatusCleared() {
		_spec.ClearField(docket.FieldStatus, field.TypeString)
	}
	if value, ok := _u.mutation.FirstSeenAt(); ok {
		_spec.SetField(docket.FieldFirstSeenAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.LastMentionedAt(); ok {
		_spec.SetField(docket.FieldLastMentionedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.MentionCount(); ok {
		_spec.SetField(docket.FieldMentionCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMentionCount(); ok {
		_spec.AddField(docket.FieldMentionCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(docket.FieldConfidence, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.MatchScore(); ok {
		_spec.SetField(docket.FieldMatchScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedMatchScore(); ok {
		_spec.AddField(docket.FieldMatchScore, field.TypeFloat64, value)
	}
	if _u.mutation.KnownDocketCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.KnownDocketIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.HearingDocketsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedHearingDocketsIDs(); len(nodes) > 0 && !_u.mutation.HearingDocketsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.HearingDocketsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{docket.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// DocketUpdateOne is the builder for updating a single Docket entity.
type DocketUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *DocketMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *DocketUpdateOne) SetUpdatedAt(v time.Time) *DocketUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetStateCode sets the "state_code" field.
func (_u *DocketUpdateOne) SetStateCode(v string) *DocketUpdateOne {
	_u.mutation.SetStateCode(v)
	return _u
}

// SetNillableStateCode sets the "state_code" field if the given value is not nil.
func (_u *DocketUpdateOne) SetNillableStateCode(v *string) *DocketUpdateOne {
	if v != nil {
		_u.SetStateCode(*v)
	}
	return _u
}

// SetDocketNumber sets the "docket_number" field.
func (_u *DocketUpdateOne) SetDocketNumber(v string) *DocketUpdateOne {
	_u.mutation.SetDocketNumber(v)
	return _u
}

// SetNillableDocketNumber sets the "docket_number" field if the given value is not nil.
func (_u *DocketUpdateOne) SetNillableDocketNumber(v *string) *DocketUpdateOne {
	if v != nil {
		_u.SetDocketNumber(*v)
	}
	return _u
}

// SetNormalizedID sets the "normalized_id" field.
func (_u *DocketUpdateOne) SetNormalizedID(v string) *DocketUpdateOne {
	_u.mutation.SetNormalizedID(v)
	return _u
}

// SetNillableNormalizedID sets the "normalized_id" field if the given value is not nil.
func (_u *DocketUpdateOne) SetNillableNormalizedID(v *string) *DocketUpdateOne {
	if v != nil {
		_u.SetNormalizedID(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *DocketUpdateOne) SetTitle(v string) *DocketUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *DocketUpdateOne) SetNillableTitle(v *string) *DocketUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// ClearTitle clears the value of the "title" field.
func (_u *DocketUpdateOne) ClearTitle() *DocketUpdateOne {
	_u.mutation.ClearTitle()
	return _u
}

// SetCompany sets the "company" field.
func (_u *DocketUpdateOne) SetCompany(v string) *DocketUpdateOne {
	_u.mutation.SetCompany(v)
	return _u
}

// SetNillableCompany sets the "company" field if the given value is not nil.
func (_u *DocketUpdateOne) SetNillableCompany(v *string) *DocketUpdateOne {
	if v != nil {
		_u.SetCompany(*v)
	}
	return _u
}

// ClearCompany clears the value of the "company" field.
func (_u *DocketUpdateOne) ClearCompany() *DocketUpdateOne {
	_u.mutation.ClearCompany()
	return _u
}

// SetSector sets the "sector" field.
func (_u *DocketUpdateOne) SetSector(v string) *DocketUpdateOne {
	_u.mutation.SetSector(v)
	return _u
}

// SetNillableSector sets the "sector" field if the given value is not nil.
func (_u *DocketUpdateOne) SetNillableSector(v *string) *DocketUpdateOne {
	if v != nil {
		_u.SetSector(*v)
	}
	return _u
}

// ClearSector clears the value of the "sector" field.
func (_u *DocketUpdateOne) ClearSector() *DocketUpdateOne {
	_u.mutation.ClearSector()
	return _u
}

// SetStatus sets the "status" field.
func (_u *DocketUpdateOne) SetStatus(v string) *DocketUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *DocketUpdateOne) SetNillableStatus(v *string) *DocketUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// ClearStatus clears the value of the "status" field.
func (_u *DocketUpdateOne) ClearStatus() *DocketUpdateOne {
	_u.mutation.ClearStatus()
	return _u
}

// SetFirstSeenAt sets the "first_seen_at" field.
func (_u *DocketUpdateOne) SetFirstSeenAt(v time.Time) *DocketUpdateOne {
	_u.mutation.SetFirstSeenAt(v)
	return _u
}

// SetNillableFirstSeenAt sets the "first_seen_at" field if the given value is not nil.
func (_u *DocketUpdateOne) SetNillableFirstSeenAt(v *time.Time) *DocketUpdateOne {
	if v != nil {
		_u.SetFirstSeenAt(*v)
	}
	return _u
}

// SetLastMentionedAt sets the "last_mentioned_at" field.
func (_u *DocketUpdateOne) SetLastMentionedAt(v time.Time) *DocketUpdateOne {
	_u.mutation.SetLastMentionedAt(v)
	return _u
}

// SetNillableLastMentionedAt sets the "last_mentioned_at" field if the given value is not nil.
func (_u *DocketUpdateOne) SetNillableLastMentionedAt(v *time.Time) *DocketUpdateOne {
	if v != nil {
		_u.SetLastMentionedAt(*v)
	}
	return _u
}

// SetMentionCount sets the "mention_count" field.
func (_u *DocketUpdateOne) SetMentionCount(v int) *DocketUpdateOne {
	_u.mutation.ResetMentionCount()
	_u.mutation.SetMentionCount(v)
	return _u
}

// SetNillableMentionCount sets the "mention_count" field if the given value is not nil.
func (_u *DocketUpdateOne) SetNillableMentionCount(v *int) *DocketUpdateOne {
	if v != nil {
		_u.SetMentionCount(*v)
	}
	return _u
}

// AddMentionCount adds value to the "mention_count" field.
func (_u *DocketUpdateOne) AddMentionCount(v int) *DocketUpdateOne {
	_u.mutation.AddMentionCount(v)
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *DocketUpdateOne) SetConfidence(v docket.Confidence) *DocketUpdateOne {
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *DocketUpdateOne) SetNillableConfidence(v *docket.Confidence) *DocketUpdateOne {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// SetKnownDocketID sets the "known_docket_id" field.
func (_u *DocketUpdateOne) SetKnownDocketID(v string) *DocketUpdateOne {
	_u.mutation.SetKnownDocketID(v)
	return _u
}

// SetNillableKnownDocketID sets the "known_docket_id" field if the given value is not nil.
func (_u *DocketUpdateOne) SetNillableKnownDocketID(v *string) *DocketUpdateOne {
	if v != nil {
		_u.SetKnownDocketID(*v)
	}
	return _u
}

// ClearKnownDocketID clears the value of the "known_docket_id" field.
func (_u *DocketUpdateOne) ClearKnownDocketID() *DocketUpdateOne {
	_u.mutation.ClearKnownDocketID()
	return _u
}

// SetMatchScore sets the "match_score" field.
func (_u *DocketUpdateOne) SetMatchScore(v float64) *DocketUpdateOne {
	_u.mutation.ResetMatchScore()
	_u.mutation.SetMatchScore(v)
	return _u
}

// SetNillableMatchScore sets the "match_score" field if the given value is not nil.
func (_u *DocketUpdateOne) SetNillableMatchScore(v *float64) *DocketUpdateOne {
	if v != nil {
		_u.SetMatchScore(*v)
	}
	return _u
}

// AddMatchScore adds value to the "match_score" field.
func (_u *DocketUpdateOne) AddMatchScore(v float64) *DocketUpdateOne {
	_u.mutation.AddMatchScore(v)
	return _u
}

// SetKnownDocket sets the "known_docket" edge to the KnownDocket entity.
func (_u *DocketUpdateOne) SetKnownDocket(v *KnownDocket) *DocketUpdateOne {
	return _u.SetKnownDocketID(v.ID)
}

// AddHearingDocketIDs adds the "hearing_dockets" edge to the HearingDocket entity by IDs.
func (_u *DocketUpdateOne) AddHearingDocketIDs(ids ...string) *DocketUpdateOne {
	_u.mutation.AddHearingDocketIDs(ids...)
	return _u
}

// AddHearingDockets adds the "hearing_dockets" edges to the HearingDocket entity.
func (_u *DocketUpdateOne) AddHearingDockets(v ...*HearingDocket) *DocketUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddHearingDocketIDs(ids...)
}

// Mutation returns the DocketMutation object of the builder.
func (_u *DocketUpdateOne) Mutation() *DocketMutation {
	return _u.mutation
}

// ClearKnownDocket clears the "known_docket" edge to the KnownDocket entity.
func (_u *DocketUpdateOne) ClearKnownDocket() *DocketUpdateOne {
	_u.mutation.ClearKnownDocket()
	return _u
}

// ClearHearingDockets clears all "hearing_dockets" edges to the HearingDocket entity.
func (_u *DocketUpdateOne) ClearHearingDockets() *DocketUpdateOne {
	_u.mutation.ClearHearingDockets()
	return _u
}

// RemoveHearingDocketIDs removes the "hearing_dockets" edge to HearingDocket entities by IDs.
func (_u *DocketUpdateOne) RemoveHearingDocketIDs(ids ...string) *DocketUpdateOne {
	_u.mutation.RemoveHearingDocketIDs(ids...)
	return _u
}

// RemoveHearingDockets removes "hearing_dockets" edges to HearingDocket entities.
func (_u *DocketUpdateOne) RemoveHearingDockets(v ...*HearingDocket) *DocketUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveHearingDocketIDs(ids...)
}

// Where appends a list predicates to the DocketUpdate builder.
func (_u *DocketUpdateOne) Where(ps ...predicate.Docket) *DocketUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *DocketUpdateOne) Select(field string, fields ...string) *DocketUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Docket entity.
func (_u *DocketUpdateOne) Save(ctx context.Context) (*Docket, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DocketUpdateOne) SaveX(ctx context.Context) *Docket {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *DocketUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DocketUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *DocketUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := docket.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DocketUpdateOne) check() error {
	if v, ok := _u.mutation.StateCode(); ok {
		if err := docket.StateCodeValidator(v); err != nil {
			return &ValidationError{Name: "state_code", err: fmt.Errorf(`ent: validator failed for field "Docket.state_code": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Confidence(); ok {
		if err := docket.ConfidenceValidator(v); err != nil {
			return &ValidationError{Name: "confidence", err: fmt.Errorf(`ent: validator failed for field "Docket.confidence": %w`, err)}
		}
	}
	return nil
}

func (_u *DocketUpdateOne) sqlSave(ctx context.Context) (_node *Docket, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(docket.Table, docket.Columns, sqlgraph.NewFieldSpec(docket.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Docket.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, docket.FieldID)
		for _, f := range fields {
			if !docket.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != docket.FieldID {
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
		_spec.SetField(docket.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.StateCode(); ok {
		_spec.SetField(docket.FieldStateCode, field.TypeString, value)
	}
	if value, ok := _u.mutation.DocketNumber(); ok {
		_spec.SetField(docket.FieldDocketNumber, field.TypeString, value)
	}
	if value, ok := _u.mutation.NormalizedID(); ok {
		_spec.SetField(docket.FieldNormalizedID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(docket.FieldTitle, field.TypeString, value)
	}
	if _u.mutation.TitleCleared() {
		_spec.ClearField(docket.FieldTitle, field.TypeString)
	}
	if value, ok := _u.mutation.Company(); ok {
		_spec.SetField(docket.FieldCompany, field.TypeString, value)
	}
	if _u.mutation.CompanyCleared() {
		_spec.ClearField(docket.FieldCompany, field.TypeString)
	}
	if value, ok := _u.mutation.Sector(); ok {
		_spec.SetField(docket.FieldSector, field.TypeString, value)
	}
	if _u.mutation.SectorCleared() {
		_spec.ClearField(docket.FieldSector, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(docket.FieldStatus, field.TypeString, value)
	}
	if _u.mutation.StatusCleared() {
		_spec.ClearField(docket.FieldStatus, field.TypeString)
	}
	if value, ok := _u.mutation.FirstSeenAt(); ok {
		_spec.SetField(docket.FieldFirstSeenAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.LastMentionedAt(); ok {
		_spec.SetField(docket.FieldLastMentionedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.MentionCount(); ok {
		_spec.SetField(docket.FieldMentionCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMentionCount(); ok {
		_spec.AddField(docket.FieldMentionCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(docket.FieldConfidence, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.MatchScore(); ok {
		_spec.SetField(docket.FieldMatchScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedMatchScore(); ok {
		_spec.AddField(docket.FieldMatchScore, field.TypeFloat64, value)
	}
	if _u.mutation.KnownDocketCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.KnownDocketIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.HearingDocketsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedHearingDocketsIDs(); len(nodes) > 0 && !_u.mutation.HearingDocketsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.HearingDocketsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Docket{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{docket.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
