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
	"github.com/canaryscope/canaryscope/ent/extracteddocket"
	"github.com/canaryscope/canaryscope/ent/knowndocket"
	"github.com/canaryscope/canaryscope/ent/predicate"
)

// ExtractedDocketUpdate is the builder for updating ExtractedDocket entities.
type ExtractedDocketUpdate struct {
	config
	hooks    []Hook
	mutation *ExtractedDocketMutation
}

// Where appends a list predicates to the ExtractedDocketUpdate builder.
func (_u *ExtractedDocketUpdate) Where(ps ...predicate.ExtractedDocket) *ExtractedDocketUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ExtractedDocketUpdate) SetUpdatedAt(v time.Time) *ExtractedDocketUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetRawText sets the "raw_text" field.
func (_u *ExtractedDocketUpdate) SetRawText(v string) *ExtractedDocketUpdate {
	_u.mutation.SetRawText(v)
	return _u
}

// SetNillableRawText sets the "raw_text" field if the given value is not nil.
func (_u *ExtractedDocketUpdate) SetNillableRawText(v *string) *ExtractedDocketUpdate {
	if v != nil {
		_u.SetRawText(*v)
	}
	return _u
}

// SetNormalizedID sets the "normalized_id" field.
func (_u *ExtractedDocketUpdate) SetNormalizedID(v string) *ExtractedDocketUpdate {
	_u.mutation.SetNormalizedID(v)
	return _u
}

// SetNillableNormalizedID sets the "normalized_id" field if the given value is not nil.
func (_u *ExtractedDocketUpdate) SetNillableNormalizedID(v *string) *ExtractedDocketUpdate {
	if v != nil {
		_u.SetNormalizedID(*v)
	}
	return _u
}

// SetStateCode sets the "state_code" field.
func (_u *ExtractedDocketUpdate) SetStateCode(v string) *ExtractedDocketUpdate {
	_u.mutation.SetStateCode(v)
	return _u
}

// SetNillableStateCode sets the "state_code" field if the given value is not nil.
func (_u *ExtractedDocketUpdate) SetNillableStateCode(v *string) *ExtractedDocketUpdate {
	if v != nil {
		_u.SetStateCode(*v)
	}
	return _u
}

// SetYear sets the "year" field.
func (_u *ExtractedDocketUpdate) SetYear(v int) *ExtractedDocketUpdate {
	_u.mutation.ResetYear()
	_u.mutation.SetYear(v)
	return _u
}

// SetNillableYear sets the "year" field if the given value is not nil.
func (_u *ExtractedDocketUpdate) SetNillableYear(v *int) *ExtractedDocketUpdate {
	if v != nil {
		_u.SetYear(*v)
	}
	return _u
}

// AddYear adds value to the "year" field.
func (_u *ExtractedDocketUpdate) AddYear(v int) *ExtractedDocketUpdate {
	_u.mutation.AddYear(v)
	return _u
}

// ClearYear clears the value of the "year" field.
func (_u *ExtractedDocketUpdate) ClearYear() *ExtractedDocketUpdate {
	_u.mutation.ClearYear()
	return _u
}

// SetCaseNumber sets the "case_number" field.
func (_u *ExtractedDocketUpdate) SetCaseNumber(v string) *ExtractedDocketUpdate {
	_u.mutation.SetCaseNumber(v)
	return _u
}

// SetNillableCaseNumber sets the "case_number" field if the given value is not nil.
func (_u *ExtractedDocketUpdate) SetNillableCaseNumber(v *string) *ExtractedDocketUpdate {
	if v != nil {
		_u.SetCaseNumber(*v)
	}
	return _u
}

// ClearCaseNumber clears the value of the "case_number" field.
func (_u *ExtractedDocketUpdate) ClearCaseNumber() *ExtractedDocketUpdate {
	_u.mutation.ClearCaseNumber()
	return _u
}

// SetSuffix sets the "suffix" field.
func (_u *ExtractedDocketUpdate) SetSuffix(v string) *ExtractedDocketUpdate {
	_u.mutation.SetSuffix(v)
	return _u
}

// SetNillableSuffix sets the "suffix" field if the given value is not nil.
func (_u *ExtractedDocketUpdate) SetNillableSuffix(v *string) *ExtractedDocketUpdate {
	if v != nil {
		_u.SetSuffix(*v)
	}
	return _u
}

// ClearSuffix clears the value of the "suffix" field.
func (_u *ExtractedDocketUpdate) ClearSuffix() *ExtractedDocketUpdate {
	_u.mutation.ClearSuffix()
	return _u
}

// SetSector sets the "sector" field.
func (_u *ExtractedDocketUpdate) SetSector(v string) *ExtractedDocketUpdate {
	_u.mutation.SetSector(v)
	return _u
}

// SetNillableSector sets the "sector" field if the given value is not nil.
func (_u *ExtractedDocketUpdate) SetNillableSector(v *string) *ExtractedDocketUpdate {
	if v != nil {
		_u.SetSector(*v)
	}
	return _u
}

// ClearSector clears the value of the "sector" field.
func (_u *ExtractedDocketUpdate) ClearSector() *ExtractedDocketUpdate {
	_u.mutation.ClearSector()
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *ExtractedDocketUpdate) SetConfidence(v float64) *ExtractedDocketUpdate {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *ExtractedDocketUpdate) SetNillableConfidence(v *float64) *ExtractedDocketUpdate {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *ExtractedDocketUpdate) AddConfidence(v float64) *ExtractedDocketUpdate {
	_u.mutation.AddConfidence(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *ExtractedDocketUpdate) SetStatus(v extracteddocket.Status) *ExtractedDocketUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ExtractedDocketUpdate) SetNillableStatus(v *extracteddocket.Status) *ExtractedDocketUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetMatchType sets the "match_type" field.
func (_u *ExtractedDocketUpdate) SetMatchType(v extracteddocket.MatchType) *ExtractedDocketUpdate {
	_u.mutation.SetMatchType(v)
	return _u
}

// SetNillableMatchType sets the "match_type" field if the given value is not nil.
func (_u *ExtractedDocketUpdate) SetNillableMatchType(v *extracteddocket.MatchType) *ExtractedDocketUpdate {
	if v != nil {
		_u.SetMatchType(*v)
	}
	return _u
}

// SetTriggerPhrase sets the "trigger_phrase" field.
func (_u *ExtractedDocketUpdate) SetTriggerPhrase(v string) *ExtractedDocketUpdate {
	_u.mutation.SetTriggerPhrase(v)
	return _u
}

// SetNillableTriggerPhrase sets the "trigger_phrase" field if the given value is not nil.
func (_u *ExtractedDocketUpdate) SetNillableTriggerPhrase(v *string) *ExtractedDocketUpdate {
	if v != nil {
		_u.SetTriggerPhrase(*v)
	}
	return _u
}

// ClearTriggerPhrase clears the value of the "trigger_phrase" field.
func (_u *ExtractedDocketUpdate) ClearTriggerPhrase() *ExtractedDocketUpdate {
	_u.mutation.ClearTriggerPhrase()
	return _u
}

// SetKnownDocketID sets the "known_docket_id" field.
func (_u *ExtractedDocketUpdate) SetKnownDocketID(v string) *ExtractedDocketUpdate {
	_u.mutation.SetKnownDocketID(v)
	return _u
}

// SetNillableKnownDocketID sets the "known_docket_id" field if the given value is not nil.
func (_u *ExtractedDocketUpdate) SetNillableKnownDocketID(v *string) *ExtractedDocketUpdate {
	if v != nil {
		_u.SetKnownDocketID(*v)
	}
	return _u
}

// ClearKnownDocketID clears the value of the "known_docket_id" field.
func (_u *ExtractedDocketUpdate) ClearKnownDocketID() *ExtractedDocketUpdate {
	_u.mutation.ClearKnownDocketID()
	return _u
}

// SetFuzzyScore sets the "fuzzy_score" field.
func (_u *ExtractedDocketUpdate) SetFuzzyScore(v float64) *ExtractedDocketUpdate {
	_u.mutation.ResetFuzzyScore()
	_u.mutation.SetFuzzyScore(v)
	return _u
}

// SetNillableFuzzyScore sets the "fuzzy_score" field if the given value is not nil.
func (_u *ExtractedDocketUpdate) SetNillableFuzzyScore(v *float64) *ExtractedDocketUpdate {
	if v != nil {
		_u.SetFuzzyScore(*v)
	}
	return _u
}

// AddFuzzyScore adds value to the "fuzzy_score" field.
func (_u *ExtractedDocketUpdate) AddFuzzyScore(v float64) *ExtractedDocketUpdate {
	_u.mutation.AddFuzzyScore(v)
	return _u
}

// SetContextBefore sets the "context_before" field.
func (_u *ExtractedDocketUpdate) SetContextBefore(v string) *ExtractedDocketUpdate {
	_u.mutation.SetContextBefore(v)
	return _u
}

// SetNillableContextBefore sets the "context_before" field if the given value is not nil.
func (_u *ExtractedDocketUpdate) SetNillableContextBefore(v *string) *ExtractedDocketUpdate {
	if v != nil {
		_u.SetContextBefore(*v)
	}
	return _u
}

// ClearContextBefore clears the value of the "context_before" field.
func (_u *ExtractedDocketUpdate) ClearContextBefore() *ExtractedDocketUpdate {
	_u.mutation.ClearContextBefore()
	return _u
}

// SetContextAfter sets the "context_after" field.
func (_u *ExtractedDocketUpdate) SetContextAfter(v string) *ExtractedDocketUpdate {
	_u.mutation.SetContextAfter(v)
	return _u
}

// SetNillableContextAfter sets the "context_after" field if the given value is not nil.
func (_u *ExtractedDocketUpdate) SetNillableContextAfter(v *string) *ExtractedDocketUpdate {
	if v != nil {
		_u.SetContextAfter(*v)
	}
	return _u
}

// ClearContextAfter clears the value of the "context_after" field.
func (_u *ExtractedDocketUpdate) ClearContextAfter() *ExtractedDocketUpdate {
	_u.mutation.ClearContextAfter()
	return _u
}

// SetSuggestedCorrection sets the "suggested_correction" field.
func (_u *ExtractedDocketUpdate) SetSuggestedCorrection(v string) *ExtractedDocketUpdate {
	_u.mutation.SetSuggestedCorrection(v)
	return _u
}

// SetNillableSuggestedCorrection sets the "suggested_correction" field if the given value is not nil.
func (_u *ExtractedDocketUpdate) SetNillableSuggestedCorrection(v *string) *ExtractedDocketUpdate {
	if v != nil {
		_u.SetSuggestedCorrection(*v)
	}
	return _u
}

// ClearSuggestedCorrection clears the value of the "suggested_correction" field.
func (_u *ExtractedDocketUpdate) ClearSuggestedCorrection() *ExtractedDocketUpdate {
	_u.mutation.ClearSuggestedCorrection()
	return _u
}

// SetKnownDocket sets the "known_docket" edge to the KnownDocket entity.
func (_u *ExtractedDocketUpdate) SetKnownDocket(v *KnownDocket) *ExtractedDocketUpdate {
	return _u.SetKnownDocketID(v.ID)
}

// Mutation returns the ExtractedDocketMutation object of the builder.
func (_u *ExtractedDocketUpdate) Mutation() *ExtractedDocketMutation {
	return _u.mutation
}

// ClearKnownDocket clears the "known_docket" edge to the KnownDocket entity.
func (_u *ExtractedDocketUpdate) ClearKnownDocket() *ExtractedDocketUpdate {
	_u.mutation.ClearKnownDocket()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ExtractedDocketUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ExtractedDocketUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ExtractedDocketUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ExtractedDocketUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ExtractedDocketUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := extracteddocket.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ExtractedDocketUpdate) check() error {
	if v, ok := _u.mutation.StateCode(); ok {
		if err := extracteddocket.StateCodeValidator(v); err != nil {
			return &ValidationError{Name: "state_code", err: fmt.Errorf(`ent: validator failed for field "ExtractedDocket.state_code": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := extracteddocket.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ExtractedDocket.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.MatchType(); ok {
		if err := extracteddocket.MatchTypeValidator(v); err != nil {
			return &ValidationError{Name: "match_type", err: fmt.Errorf(`ent: validator failed for field "ExtractedDocket.match_type": %w`, err)}
		}
	}
	if _u.mutation.HearingCleared() && len(_u.mutation.HearingIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ExtractedDocket.hearing"`)
	}
	return nil
}

func (_u *ExtractedDocketUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(extracteddocket.Table, extracteddocket.Columns, sqlgraph.NewFieldSpec(extracteddocket.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(extracteddocket.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.RawText(); ok {
		_spec.SetField(extracteddocket.FieldRawText, field.TypeString, value)
	}
	if value, ok := _u.mutation.NormalizedID(); ok {
		_spec.SetField(extracteddocket.FieldNormalizedID, field.TypeString, value)
	}
	if value, ok := _u.mutation.StateCode(); ok {
		_spec.SetField(extracteddocket.FieldStateCode, field.TypeString, value)
	}
	if value, ok := _u.mutation.Year(); ok {
		_spec.SetField(extracteddocket.FieldYear, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedYear(); ok {
		_spec.AddField(extracteddocket.FieldYear, field.TypeInt, value)
	}
	if _u.mutation.YearCleared() {
		_spec.ClearField(extracteddocket.FieldYear, field.TypeInt)
	}
	if value, ok := _u.mutation.CaseNumber(); ok {
		_spec.SetField(extracteddocket.FieldCaseNumber, field.TypeString, value)
	}
	if _u.mutation.CaseNumberCleared() {
		_spec.ClearField(extracteddocket.FieldCaseNumber, field.TypeString)
	}
	if value, ok := _u.mutation.Suffix(); ok {
		_spec.SetField(extracteddocket.FieldSuffix, field.TypeString, value)
	}
	if _u.mutation.SuffixCleared() {
		_spec.ClearField(extracteddocket.FieldSuffix, field.TypeString)
	}
	if value, ok := _u.mutation.Sector(); ok {
		_spec.SetField(extracteddocket.FieldSector, field.TypeString, value)
	}
	if _u.mutation.SectorCleared() {
		_spec.ClearField(extracteddocket.FieldSector, field.TypeString)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(extracteddocket.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(extracteddocket.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(extracteddocket.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.MatchType(); ok {
		_spec.SetField(extracteddocket.FieldMatchType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.TriggerPhrase(); ok {
		_spec.SetField(extracteddocket.FieldTriggerPhrase, field.TypeString, value)
	}
	if _u.mutation.TriggerPhraseCleared() {
		_spec.ClearField(extracteddocket.FieldTriggerPhrase, field.TypeString)
	}
	if value, ok := _u.mutation.FuzzyScore(); ok {
		_spec.SetField(extracteddocket.FieldFuzzyScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedFuzzyScore(); ok {
		_spec.AddField(extracteddocket.FieldFuzzyScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.ContextBefore(); ok {
		_spec.SetField(extracteddocket.FieldContextBefore, field.TypeString, value)
	}
	if _u.mutation.ContextBeforeCleared() {
		_spec.ClearField(extracteddocket.FieldContextBefore, field.TypeString)
	}
	if value, ok := _u.mutation.ContextAfter(); ok {
		_spec.SetField(extracteddocket.FieldContextAfter, field.TypeString, value)
	}
	if _u.mutation.ContextAfterCleared() {
		_spec.ClearField(extracteddocket.FieldContextAfter, field.TypeString)
	}
	if value, ok := _u.mutation.SuggestedCorrection(); ok {
		_spec.SetField(extracteddocket.FieldSuggestedCorrection, field.TypeString, value)
	}
	if _u.mutation.SuggestedCorrectionCleared() {
		_spec.ClearField(extracteddocket.FieldSuggestedCorrection, field.TypeString)
	}
	if _u.mutation.KnownDocketCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   extracteddocket.KnownDocketTable,
			Columns: []string{extracteddocket.KnownDocketColumn},
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
			Table:   extracteddocket.KnownDocketTable,
			Columns: []string{extracteddocket.KnownDocketColumn},
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
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{extracteddocket.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ExtractedDocketUpdateOne is the builder for updating a single ExtractedDocket entity.
type ExtractedDocketUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ExtractedDocketMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ExtractedDocketUpdateOne) SetUpdatedAt(v time.Time) *ExtractedDocketUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetRawText sets the "raw_text" field.
func (_u *ExtractedDocketUpdateOne) SetRawText(v string) *ExtractedDocketUpdateOne {
	_u.mutation.SetRawText(v)
	return _u
}

// SetNillableRawText sets the "raw_text" field if the given value is not nil.
func (_u *ExtractedDocketUpdateOne) SetNillableRawText(v *string) *ExtractedDocketUpdateOne {
	if v != nil {
		_u.SetRawText(*v)
	}
	return _u
}

// SetNormalizedID sets the "normalized_id" field.
func (_u *ExtractedDocketUpdateOne) SetNormalizedID(v string) *ExtractedDocketUpdateOne {
	_u.mutation.SetNormalizedID(v)
	return _u
}

// SetNillableNormalizedID sets the "normalized_id" field if the given value is not nil.
func (_u *ExtractedDocketUpdateOne) SetNillableNormalizedID(v *string) *ExtractedDocketUpdateOne {
	if v != nil {
		_u.SetNormalizedID(*v)
	}
	return _u
}

// SetStateCode sets the "state_code" field.
func (_u *ExtractedDocketUpdateOne) SetStateCode(v string) *ExtractedDocketUpdateOne {
	_u.mutation.SetStateCode(v)
	return _u
}

// SetNillableStateCode sets the "state_code" field if the given value is not nil.
func (_u *ExtractedDocketUpdateOne) SetNillableStateCode(v *string) *ExtractedDocketUpdateOne {
	if v != nil {
		_u.SetStateCode(*v)
	}
	return _u
}

// SetYear sets the "year" field.
func (_u *ExtractedDocketUpdateOne) SetYear(v int) *ExtractedDocketUpdateOne {
	_u.mutation.ResetYear()
	_u.mutation.SetYear(v)
	return _u
}

// SetNillableYear sets the "year" field if the given value is not nil.
func (_u *ExtractedDocketUpdateOne) SetNillableYear(v *int) *ExtractedDocketUpdateOne {
	if v != nil {
		_u.SetYear(*v)
	}
	return _u
}

// AddYear adds value to the "year" field.
func (_u *ExtractedDocketUpdateOne) AddYear(v int) *ExtractedDocketUpdateOne {
	_u.mutation.AddYear(v)
	return _u
}

// ClearYear clears the value of the "year" field.
func (_u *ExtractedDocketUpdateOne) ClearYear() *ExtractedDocketUpdateOne {
	_u.mutation.ClearYear()
	return _u
}

// SetCaseNumber sets the "case_number" field.
func (_u *ExtractedDocketUpdateOne) SetCaseNumber(v string) *ExtractedDocketUpdateOne {
	_u.mutation.SetCaseNumber(v)
	return _u
}

// SetNillableCaseNumber sets the "case_number" field if the given value is not nil.
func (_u *ExtractedDocketUpdateOne) SetNillableCaseNumber(v *string) *ExtractedDocketUpdateOne {
	if v != nil {
		_u.SetCaseNumber(*v)
	}
	return _u
}

// ClearCaseNumber clears the value of the "case_number" field.
func (_u *ExtractedDocketUpdateOne) ClearCaseNumber() *ExtractedDocketUpdateOne {
	_u.mutation.ClearCaseNumber()
	return _u
}

// SetSuffix sets the "suffix" field.
func (_u *ExtractedDocketUpdateOne) SetSuffix(v string) *ExtractedDocketUpdateOne {
	_u.mutation.SetSuffix(v)
	return _u
}

// SetNillableSuffix sets the "suffix" field if the given value is not nil.
func (_u *ExtractedDocketUpdateOne) SetNillableSuffix(v *string) *ExtractedDocketUpdateOne {
	if v != nil {
		_u.SetSuffix(*v)
	}
	return _u
}

// ClearSuffix clears the value of the "suffix" field.
func (_u *ExtractedDocketUpdateOne) ClearSuffix() *ExtractedDocketUpdateOne {
	_u.mutation.ClearSuffix()
	return _u
}

// SetSector sets the "sector" field.
func (_u *ExtractedDocketUpdateOne) SetSector(v string) *ExtractedDocketUpdateOne {
	_u.mutation.SetSector(v)
	return _u
}

// SetNillableSector sets the "sector" field if the given value is not nil.
func (_u *ExtractedDocketUpdateOne) SetNillableSector(v *string) *ExtractedDocketUpdateOne {
	if v != nil {
		_u.SetSector(*v)
	}
	return _u
}

// ClearSector clears the value of the "sector" field.
func (_u *ExtractedDocketUpdateOne) ClearSector() *ExtractedDocketUpdateOne {
	_u.mutation.ClearSector()
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *ExtractedDocketUpdateOne) SetConfidence(v float64) *ExtractedDocketUpdateOne {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *ExtractedDocketUpdateOne) SetNillableConfidence(v *float64) *ExtractedDocketUpdateOne {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *ExtractedDocketUpdateOne) AddConfidence(v float64) *ExtractedDocketUpdateOne {
	_u.mutation.AddConfidence(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *ExtractedDocketUpdateOne) SetStatus(v extracteddocket.Status) *ExtractedDocketUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ExtractedDocketUpdateOne) SetNillableStatus(v *extracteddocket.Status) *ExtractedDocketUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetMatchType sets the "match_type" field.
func (_u *ExtractedDocketUpdateOne) SetMatchType(v extracteddocket.MatchType) *ExtractedDocketUpdateOne {
	_u.mutation.SetMatchType(v)
	return _u
}

// SetNillableMatchType sets the "match_type" field if the given value is not nil.
func (_u *ExtractedDocketUpdateOne) SetNillableMatchType(v *extracteddocket.MatchType) *ExtractedDocketUpdateOne {
	if v != nil {
		_u.SetMatchType(*v)
	}
	return _u
}

// SetTriggerPhrase sets the "trigger_phrase" field.
func (_u *ExtractedDocketUpdateOne) SetTriggerPhrase(v string) *ExtractedDocketUpdateOne {
	_u.mutation.SetTriggerPhrase(v)
	return _u
}

// SetNillableTriggerPhrase sets the "trigger_phrase" field if the given value is not nil.
func (_u *ExtractedDocketUpdateOne) SetNillableTriggerPhrase(v *string) *ExtractedDocketUpdateOne {
	if v != nil {
		_u.SetTriggerPhrase(*v)
	}
	return _u
}

// ClearTriggerPhrase clears the value of the "trigger_phrase" field.
func (_u *ExtractedDocketUpdateOne) ClearTriggerPhrase() *ExtractedDocketUpdateOne {
	_u.mutation.ClearTriggerPhrase()
	return _u
}

// SetKnownDocketID sets the "known_docket_id" field.
func (_u *ExtractedDocketUpdateOne) SetKnownDocketID(v string) *ExtractedDocketUpdateOne {
	_u.mutation.SetKnownDocketID(v)
	return _u
}

// SetNillableKnownDocketID sets the "known_docket_id" field if the given value is not nil.
func (_u *ExtractedDocketUpdateOne) SetNillableKnownDocketID(v *string) *ExtractedDocketUpdateOne {
	if v != nil {
		_u.SetKnownDocketID(*v)
	}
	return _u
}

// ClearKnownDocketID clears the value of the "known_docket_id" field.
func (_u *ExtractedDocketUpdateOne) ClearKnownDocketID() *ExtractedDocketUpdateOne {
	_u.mutation.ClearKnownDocketID()
	return _u
}

// SetFuzzyScore sets the "fuzzy_score" field.
func (_u *ExtractedDocketUpdateOne) SetFuzzyScore(v float64) *ExtractedDocketUpdateOne {
	_u.mutation.ResetFuzzyScore()
	_u.mutation.SetFuzzyScore(v)
	return _u
}

// SetNillableFuzzyScore sets the "fuzzy_score" field if the given value is not nil.
func (_u *ExtractedDocketUpdateOne) SetNillableFuzzyScore(v *float64) *ExtractedDocketUpdateOne {
	if v != nil {
		_u.SetFuzzyScore(*v)
	}
	return _u
}

// AddFuzzyScore adds value to the "fuzzy_score" field.
func (_u *ExtractedDocketUpdateOne) AddFuzzyScore(v float64) *ExtractedDocketUpdateOne {
	_u.mutation.AddFuzzyScore(v)
	return _u
}

// SetContextBefore sets the "context_before" field.
func (_u *ExtractedDocketUpdateOne) SetContextBefore(v string) *ExtractedDocketUpdateOne {
	_u.mutation.SetContextBefore(v)
	return _u
}

// SetNillableContextBefore sets the "context_before" field if the given value is not nil.
func (_u *ExtractedDocketUpdateOne) SetNillableContextBefore(v *string) *ExtractedDocketUpdateOne {
	if v != nil {
		_u.SetContextBefore(*v)
	}
	return _u
}

// ClearContextBefore clears the value of the "context_before" field.
func (_u *ExtractedDocketUpdateOne) ClearContextBefore() *ExtractedDocketUpdateOne {
	_u.mutation.ClearContextBefore()
	return _u
}

// SetContextAfter sets the "context_after" field.
func (_u *ExtractedDocketUpdateOne) SetContextAfter(v string) *ExtractedDocketUpdateOne {
	_u.mutation.SetContextAfter(v)
	return _u
}

// SetNillableContextAfter sets the "context_after" field if the given value is not nil.
func (_u *ExtractedDocketUpdateOne) SetNillableContextAfter(v *string) *ExtractedDocketUpdateOne {
	if v != nil {
		_u.SetContextAfter(*v)
	}
	return _u
}

// ClearContextAfter clears the value of the "context_after" field.
func (_u *ExtractedDocketUpdateOne) ClearContextAfter() *ExtractedDocketUpdateOne {
	_u.mutation.ClearContextAfter()
	return _u
}

// SetSuggestedCorrection sets the "suggested_correction" field.
func (_u *ExtractedDocketUpdateOne) SetSuggestedCorrection(v string) *ExtractedDocketUpdateOne {
	_u.mutation.SetSuggestedCorrection(v)
	return _u
}

// SetNillableSuggestedCorrection sets the "suggested_correction" field if the given value is not nil.
func (_u *ExtractedDocketUpdateOne) SetNillableSuggestedCorrection(v *string) *ExtractedDocketUpdateOne {
	if v != nil {
		_u.SetSuggestedCorrection(*v)
	}
	return _u
}

// ClearSuggestedCorrection clears the value of the "suggested_correction" field.
func (_u *ExtractedDocketUpdateOne) ClearSuggestedCorrection() *ExtractedDocketUpdateOne {
	_u.mutation.ClearSuggestedCorrection()
	return _u
}

// SetKnownDocket sets the "known_docket" edge to the KnownDocket entity.
func (_u *ExtractedDocketUpdateOne) SetKnownDocket(v *KnownDocket) *ExtractedDocketUpdateOne {
	return _u.SetKnownDocketID(v.ID)
}

// Mutation returns the ExtractedDocketMutation object of the builder.
func (_u *ExtractedDocketUpdateOne) Mutation() *ExtractedDocketMutation {
	return _u.mutation
}

// ClearKnownDocket clears the "known_docket" edge to the KnownDocket entity.
func (_u *ExtractedDocketUpdateOne) ClearKnownDocket() *ExtractedDocketUpdateOne {
	_u.mutation.ClearKnownDocket()
	return _u
}

// Where appends a list predicates to the ExtractedDocketUpdate builder.
func (_u *ExtractedDocketUpdateOne) Where(ps ...predicate.ExtractedDocket) *ExtractedDocketUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ExtractedDocketUpdateOne) Select(field string, fields ...string) *ExtractedDocketUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ExtractedDocket entity.
func (_u *ExtractedDocketUpdateOne) Save(ctx context.Context) (*ExtractedDocket, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ExtractedDocketUpdateOne) SaveX(ctx context.Context) *ExtractedDocket {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ExtractedDocketUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ExtractedDocketUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ExtractedDocketUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := extracteddocket.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ExtractedDocketUpdateOne) check() error {
	if v, ok := _u.mutation.StateCode(); ok {
		if err := extracteddocket.StateCodeValidator(v); err != nil {
			return &ValidationError{Name: "state_code", err: fmt.Errorf(`ent: validator failed for field "ExtractedDocket.state_code": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := extracteddocket.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ExtractedDocket.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.MatchType(); ok {
		if err := extracteddocket.MatchTypeValidator(v); err != nil {
			return &ValidationError{Name: "match_type", err: fmt.Errorf(`ent: validator failed for field "ExtractedDocket.match_type": %w`, err)}
		}
	}
	if _u.mutation.HearingCleared() && len(_u.mutation.HearingIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ExtractedDocket.hearing"`)
	}
	return nil
}

func (_u *ExtractedDocketUpdateOne) sqlSave(ctx context.Context) (_node *ExtractedDocket, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(extracteddocket.Table, extracteddocket.Columns, sqlgraph.NewFieldSpec(extracteddocket.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ExtractedDocket.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, extracteddocket.FieldID)
		for _, f := range fields {
			if !extracteddocket.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != extracteddocket.FieldID {
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
		_spec.SetField(extracteddocket.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.RawText(); ok {
		_spec.SetField(extracteddocket.FieldRawText, field.TypeString, value)
	}
	if value, ok := _u.mutation.NormalizedID(); ok {
		_spec.SetField(extracteddocket.FieldNormalizedID, field.TypeString, value)
	}
	if value, ok := _u.mutation.StateCode(); ok {
		_spec.SetField(extracteddocket.FieldStateCode, field.TypeString, value)
	}
	if value, ok := _u.mutation.Year(); ok {
		_spec.SetField(extracteddocket.FieldYear, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedYear(); ok {
		_spec.AddField(extracteddocket.FieldYear, field.TypeInt, value)
	}
	if _u.mutation.YearCleared() {
		_spec.ClearField(extracteddocket.FieldYear, field.TypeInt)
	}
	if value, ok := _u.mutation.CaseNumber(); ok {
		_spec.SetField(extracteddocket.FieldCaseNumber, field.TypeString, value)
	}
	if _u.mutation.CaseNumberCleared() {
		_spec.ClearField(extracteddocket.FieldCaseNumber, field.TypeString)
	}
	if value, ok := _u.mutation.Suffix(); ok {
		_spec.SetField(extracteddocket.FieldSuffix, field.TypeString, value)
	}
	if _u.mutation.SuffixCleared() {
		_spec.ClearField(extracteddocket.FieldSuffix, field.TypeString)
	}
	if value, ok := _u.mutation.Sector(); ok {
		_spec.SetField(extracteddocket.FieldSector, field.TypeString, value)
	}
	if _u.mutation.SectorCleared() {
		_spec.ClearField(extracteddocket.FieldSector, field.TypeString)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(extracteddocket.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(extracteddocket.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(extracteddocket.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.MatchType(); ok {
		_spec.SetField(extracteddocket.FieldMatchType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.TriggerPhrase(); ok {
		_spec.SetField(extracteddocket.FieldTriggerPhrase, field.TypeString, value)
	}
	if _u.mutation.TriggerPhraseCleared() {
		_spec.ClearField(extracteddocket.FieldTriggerPhrase, field.TypeString)
	}
	if value, ok := _u.mutation.FuzzyScore(); ok {
		_spec.SetField(extracteddocket.FieldFuzzyScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedFuzzyScore(); ok {
		_spec.AddField(extracteddocket.FieldFuzzyScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.ContextBefore(); ok {
		_spec.SetField(extracteddocket.FieldContextBefore, field.TypeString, value)
	}
	if _u.mutation.ContextBeforeCleared() {
		_spec.ClearField(extracteddocket.FieldContextBefore, field.TypeString)
	}
	if value, ok := _u.mutation.ContextAfter(); ok {
		_spec.SetField(extracteddocket.FieldContextAfter, field.TypeString, value)
	}
	if _u.mutation.ContextAfterCleared() {
		_spec.ClearField(extracteddocket.FieldContextAfter, field.TypeString)
	}
	if value, ok := _u.mutation.SuggestedCorrection(); ok {
		_spec.SetField(extracteddocket.FieldSuggestedCorrection, field.TypeString, value)
	}
	if _u.mutation.SuggestedCorrectionCleared() {
		_spec.ClearField(extracteddocket.FieldSuggestedCorrection, field.TypeString)
	}
	if _u.mutation.KnownDocketCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   extracteddocket.KnownDocketTable,
			Columns: []string{extracteddocket.KnownDocketColumn},
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
			Table:   extracteddocket.KnownDocketTable,
			Columns: []string{extracteddocket.KnownDocketColumn},
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
	_node = &ExtractedDocket{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{extracteddocket.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
