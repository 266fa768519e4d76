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
	"github.com/canaryscope/canaryscope/ent/analysis"
	"github.com/canaryscope/canaryscope/ent/predicate"
)

// AnalysisUpdate is the builder for updating Analysis entities.
type AnalysisUpdate struct {
	config
	hooks    []Hook
	mutation *AnalysisMutation
}

// Where appends a list predicates to the AnalysisUpdate builder.
func (_u *AnalysisUpdate) Where(ps ...predicate.Analysis) *AnalysisUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *AnalysisUpdate) SetUpdatedAt(v time.Time) *AnalysisUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetSummary sets the "summary" field.
func (_u *AnalysisUpdate) SetSummary(v string) *AnalysisUpdate {
	_u.mutation.SetSummary(v)
	return _u
}

// SetNillableSummary sets the "summary" field if the given value is not nil.
func (_u *AnalysisUpdate) SetNillableSummary(v *string) *AnalysisUpdate {
	if v != nil {
		_u.SetSummary(*v)
	}
	return _u
}

// ClearSummary clears the value of the "summary" field.
func (_u *AnalysisUpdate) ClearSummary() *AnalysisUpdate {
	_u.mutation.ClearSummary()
	return _u
}

// SetOneSentenceSummary sets the "one_sentence_summary" field.
func (_u *AnalysisUpdate) SetOneSentenceSummary(v string) *AnalysisUpdate {
	_u.mutation.SetOneSentenceSummary(v)
	return _u
}

// SetNillableOneSentenceSummary sets the "one_sentence_summary" field if the given value is not nil.
func (_u *AnalysisUpdate) SetNillableOneSentenceSummary(v *string) *AnalysisUpdate {
	if v != nil {
		_u.SetOneSentenceSummary(*v)
	}
	return _u
}

// ClearOneSentenceSummary clears the value of the "one_sentence_summary" field.
func (_u *AnalysisUpdate) ClearOneSentenceSummary() *AnalysisUpdate {
	_u.mutation.ClearOneSentenceSummary()
	return _u
}

// SetParticipants sets the "participants" field.
func (_u *AnalysisUpdate) SetParticipants(v []map[string]interface{}) *AnalysisUpdate {
	_u.mutation.SetParticipants(v)
	return _u
}

// AppendParticipants appends value to the "participants" field.
func (_u *AnalysisUpdate) AppendParticipants(v []map[string]interface{}) *AnalysisUpdate {
	_u.mutation.AppendParticipants(v)
	return _u
}

// ClearParticipants clears the value of the "participants" field.
func (_u *AnalysisUpdate) ClearParticipants() *AnalysisUpdate {
	_u.mutation.ClearParticipants()
	return _u
}

// SetIssues sets the "issues" field.
func (_u *AnalysisUpdate) SetIssues(v []string) *AnalysisUpdate {
	_u.mutation.SetIssues(v)
	return _u
}

// AppendIssues appends value to the "issues" field.
func (_u *AnalysisUpdate) AppendIssues(v []string) *AnalysisUpdate {
	_u.mutation.AppendIssues(v)
	return _u
}

// ClearIssues clears the value of the "issues" field.
func (_u *AnalysisUpdate) ClearIssues() *AnalysisUpdate {
	_u.mutation.ClearIssues()
	return _u
}

// SetCommitments sets the "commitments" field.
func (_u *AnalysisUpdate) SetCommitments(v []string) *AnalysisUpdate {
	_u.mutation.SetCommitments(v)
	return _u
}

// AppendCommitments appends value to the "commitments" field.
func (_u *AnalysisUpdate) AppendCommitments(v []string) *AnalysisUpdate {
	_u.mutation.AppendCommitments(v)
	return _u
}

// ClearCommitments clears the value of the "commitments" field.
func (_u *AnalysisUpdate) ClearCommitments() *AnalysisUpdate {
	_u.mutation.ClearCommitments()
	return _u
}

// SetVulnerabilities sets the "vulnerabilities" field.
func (_u *AnalysisUpdate) SetVulnerabilities(v []string) *AnalysisUpdate {
	_u.mutation.SetVulnerabilities(v)
	return _u
}

// AppendVulnerabilities appends value to the "vulnerabilities" field.
func (_u *AnalysisUpdate) AppendVulnerabilities(v []string) *AnalysisUpdate {
	_u.mutation.AppendVulnerabilities(v)
	return _u
}

// ClearVulnerabilities clears the value of the "vulnerabilities" field.
func (_u *AnalysisUpdate) ClearVulnerabilities() *AnalysisUpdate {
	_u.mutation.ClearVulnerabilities()
	return _u
}

// SetCommissionerConcerns sets the "commissioner_concerns" field.
func (_u *AnalysisUpdate) SetCommissionerConcerns(v []string) *AnalysisUpdate {
	_u.mutation.SetCommissionerConcerns(v)
	return _u
}

// AppendCommissionerConcerns appends value to the "commissioner_concerns" field.
func (_u *AnalysisUpdate) AppendCommissionerConcerns(v []string) *AnalysisUpdate {
	_u.mutation.AppendCommissionerConcerns(v)
	return _u
}

// ClearCommissionerConcerns clears the value of the "commissioner_concerns" field.
func (_u *AnalysisUpdate) ClearCommissionerConcerns() *AnalysisUpdate {
	_u.mutation.ClearCommissionerConcerns()
	return _u
}

// SetCommissionerMood sets the "commissioner_mood" field.
func (_u *AnalysisUpdate) SetCommissionerMood(v analysis.CommissionerMood) *AnalysisUpdate {
	_u.mutation.SetCommissionerMood(v)
	return _u
}

// SetNillableCommissionerMood sets the "commissioner_mood" field if the given value is not nil.
func (_u *AnalysisUpdate) SetNillableCommissionerMood(v *analysis.CommissionerMood) *AnalysisUpdate {
	if v != nil {
		_u.SetCommissionerMood(*v)
	}
	return _u
}

// ClearCommissionerMood clears the value of the "commissioner_mood" field.
func (_u *AnalysisUpdate) ClearCommissionerMood() *AnalysisUpdate {
	_u.mutation.ClearCommissionerMood()
	return _u
}

// SetPublicSentiment sets the "public_sentiment" field.
func (_u *AnalysisUpdate) SetPublicSentiment(v analysis.PublicSentiment) *AnalysisUpdate {
	_u.mutation.SetPublicSentiment(v)
	return _u
}

// SetNillablePublicSentiment sets the "public_sentiment" field if the given value is not nil.
func (_u *AnalysisUpdate) SetNillablePublicSentiment(v *analysis.PublicSentiment) *AnalysisUpdate {
	if v != nil {
		_u.SetPublicSentiment(*v)
	}
	return _u
}

// ClearPublicSentiment clears the value of the "public_sentiment" field.
func (_u *AnalysisUpdate) ClearPublicSentiment() *AnalysisUpdate {
	_u.mutation.ClearPublicSentiment()
	return _u
}

// SetLikelyOutcome sets the "likely_outcome" field.
func (_u *AnalysisUpdate) SetLikelyOutcome(v string) *AnalysisUpdate {
	_u.mutation.SetLikelyOutcome(v)
	return _u
}

// SetNillableLikelyOutcome sets the "likely_outcome" field if the given value is not nil.
func (_u *AnalysisUpdate) SetNillableLikelyOutcome(v *string) *AnalysisUpdate {
	if v != nil {
		_u.SetLikelyOutcome(*v)
	}
	return _u
}

// ClearLikelyOutcome clears the value of the "likely_outcome" field.
func (_u *AnalysisUpdate) ClearLikelyOutcome() *AnalysisUpdate {
	_u.mutation.ClearLikelyOutcome()
	return _u
}

// SetOutcomeConfidence sets the "outcome_confidence" field.
func (_u *AnalysisUpdate) SetOutcomeConfidence(v float64) *AnalysisUpdate {
	_u.mutation.ResetOutcomeConfidence()
	_u.mutation.SetOutcomeConfidence(v)
	return _u
}

// SetNillableOutcomeConfidence sets the "outcome_confidence" field if the given value is not nil.
func (_u *AnalysisUpdate) SetNillableOutcomeConfidence(v *float64) *AnalysisUpdate {
	if v != nil {
		_u.SetOutcomeConfidence(*v)
	}
	return _u
}

// AddOutcomeConfidence adds value to the "outcome_confidence" field.
func (_u *AnalysisUpdate) AddOutcomeConfidence(v float64) *AnalysisUpdate {
	_u.mutation.AddOutcomeConfidence(v)
	return _u
}

// ClearOutcomeConfidence clears the value of the "outcome_confidence" field.
func (_u *AnalysisUpdate) ClearOutcomeConfidence() *AnalysisUpdate {
	_u.mutation.ClearOutcomeConfidence()
	return _u
}

// SetRiskFactors sets the "risk_factors" field.
func (_u *AnalysisUpdate) SetRiskFactors(v []string) *AnalysisUpdate {
	_u.mutation.SetRiskFactors(v)
	return _u
}

// AppendRiskFactors appends value to the "risk_factors" field.
func (_u *AnalysisUpdate) AppendRiskFactors(v []string) *AnalysisUpdate {
	_u.mutation.AppendRiskFactors(v)
	return _u
}

// ClearRiskFactors clears the value of the "risk_factors" field.
func (_u *AnalysisUpdate) ClearRiskFactors() *AnalysisUpdate {
	_u.mutation.ClearRiskFactors()
	return _u
}

// SetActionItems sets the "action_items" field.
func (_u *AnalysisUpdate) SetActionItems(v []string) *AnalysisUpdate {
	_u.mutation.SetActionItems(v)
	return _u
}

// AppendActionItems appends value to the "action_items" field.
func (_u *AnalysisUpdate) AppendActionItems(v []string) *AnalysisUpdate {
	_u.mutation.AppendActionItems(v)
	return _u
}

// ClearActionItems clears the value of the "action_items" field.
func (_u *AnalysisUpdate) ClearActionItems() *AnalysisUpdate {
	_u.mutation.ClearActionItems()
	return _u
}

// SetQuotes sets the "quotes" field.
func (_u *AnalysisUpdate) SetQuotes(v []map[string]interface{}) *AnalysisUpdate {
	_u.mutation.SetQuotes(v)
	return _u
}

// AppendQuotes appends value to the "quotes" field.
func (_u *AnalysisUpdate) AppendQuotes(v []map[string]interface{}) *AnalysisUpdate {
	_u.mutation.AppendQuotes(v)
	return _u
}

// ClearQuotes clears the value of the "quotes" field.
func (_u *AnalysisUpdate) ClearQuotes() *AnalysisUpdate {
	_u.mutation.ClearQuotes()
	return _u
}

// SetTopics sets the "topics" field.
func (_u *AnalysisUpdate) SetTopics(v []map[string]interface{}) *AnalysisUpdate {
	_u.mutation.SetTopics(v)
	return _u
}

// AppendTopics appends value to the "topics" field.
func (_u *AnalysisUpdate) AppendTopics(v []map[string]interface{}) *AnalysisUpdate {
	_u.mutation.AppendTopics(v)
	return _u
}

// ClearTopics clears the value of the "topics" field.
func (_u *AnalysisUpdate) ClearTopics() *AnalysisUpdate {
	_u.mutation.ClearTopics()
	return _u
}

// SetUtilities sets the "utilities" field.
func (_u *AnalysisUpdate) SetUtilities(v []map[string]interface{}) *AnalysisUpdate {
	_u.mutation.SetUtilities(v)
	return _u
}

// AppendUtilities appends value to the "utilities" field.
func (_u *AnalysisUpdate) AppendUtilities(v []map[string]interface{}) *AnalysisUpdate {
	_u.mutation.AppendUtilities(v)
	return _u
}

// ClearUtilities clears the value of the "utilities" field.
func (_u *AnalysisUpdate) ClearUtilities() *AnalysisUpdate {
	_u.mutation.ClearUtilities()
	return _u
}

// SetDockets sets the "dockets" field.
func (_u *AnalysisUpdate) SetDockets(v []string) *AnalysisUpdate {
	_u.mutation.SetDockets(v)
	return _u
}

// AppendDockets appends value to the "dockets" field.
func (_u *AnalysisUpdate) AppendDockets(v []string) *AnalysisUpdate {
	_u.mutation.AppendDockets(v)
	return _u
}

// ClearDockets clears the value of the "dockets" field.
func (_u *AnalysisUpdate) ClearDockets() *AnalysisUpdate {
	_u.mutation.ClearDockets()
	return _u
}

// SetRawOutput sets the "raw_output" field.
func (_u *AnalysisUpdate) SetRawOutput(v map[string]interface{}) *AnalysisUpdate {
	_u.mutation.SetRawOutput(v)
	return _u
}

// ClearRawOutput clears the value of the "raw_output" field.
func (_u *AnalysisUpdate) ClearRawOutput() *AnalysisUpdate {
	_u.mutation.ClearRawOutput()
	return _u
}

// SetModel sets the "model" field.
func (_u *AnalysisUpdate) SetModel(v string) *AnalysisUpdate {
	_u.mutation.SetModel(v)
	return _u
}

// SetNillableModel sets the "model" field if the given value is not nil.
func (_u *AnalysisUpdate) SetNillableModel(v *string) *AnalysisUpdate {
	if v != nil {
		_u.SetModel(*v)
	}
	return _u
}

// ClearModel clears the value of the "model" field.
func (_u *AnalysisUpdate) ClearModel() *AnalysisUpdate {
	_u.mutation.ClearModel()
	return _u
}

// SetCostUsd sets the "cost_usd" field.
func (_u *AnalysisUpdate) SetCostUsd(v float64) *AnalysisUpdate {
	_u.mutation.ResetCostUsd()
	_u.mutation.SetCostUsd(v)
	return _u
}

// SetNillableCostUsd sets the "cost_usd" field if the given value is not nil.
func (_u *AnalysisUpdate) SetNillableCostUsd(v *float64) *AnalysisUpdate {
	if v != nil {
		_u.SetCostUsd(*v)
	}
	return _u
}

// AddCostUsd adds value to the "cost_usd" field.
func (_u *AnalysisUpdate) AddCostUsd(v float64) *AnalysisUpdate {
	_u.mutation.AddCostUsd(v)
	return _u
}

// Mutation returns the AnalysisMutation object of the builder.
func (_u *AnalysisUpdate) Mutation() *AnalysisMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AnalysisUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AnalysisUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AnalysisUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AnalysisUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *AnalysisUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := analysis.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AnalysisUpdate) check() error {
	if v, ok := _u.mutation.CommissionerMood(); ok {
		if err := analysis.CommissionerMoodValidator(v); err != nil {
			return &ValidationError{Name: "commissioner_mood", err: fmt.Errorf(`ent: validator failed for field "Analysis.commissioner_mood": %w`, err)}
		}
	}
	if v, ok := _u.mutation.PublicSentiment(); ok {
		if err := analysis.PublicSentimentValidator(v); err != nil {
			return &ValidationError{Name: "public_sentiment", err: fmt.Errorf(`ent: validator failed for field "Analysis.public_sentiment": %w`, err)}
		}
	}
	if _u.mutation.HearingCleared() && len(_u.mutation.HearingIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Analysis.hearing"`)
	}
	return nil
}

func (_u *AnalysisUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(analysis.Table, analysis.Columns, sqlgraph.NewFieldSpec(analysis.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(analysis.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Summary(); ok {
		_spec.SetField(analysis.FieldSummary, field.TypeString, value)
	}
	if _u.mutation.SummaryCleared() {
		_spec.ClearField(analysis.FieldSummary, field.TypeString)
	}
	if value, ok := _u.mutation.OneSentenceSummary(); ok {
		_spec.SetField(analysis.FieldOneSentenceSummary, field.TypeString, value)
	}
	if _u.mutation.OneSentenceSummaryCleared() {
		_spec.ClearField(analysis.FieldOneSentenceSummary, field.TypeString)
	}
	if value, ok := _u.mutation.Participants(); ok {
		_spec.SetField(analysis.FieldParticipants, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedParticipants(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, analysis.FieldParticipants, value)
		})
	}
	if _u.mutation.ParticipantsCleared() {
		_spec.ClearField(analysis.FieldParticipants, field.TypeJSON)
	}
	if value, ok := _u.mutation.Issues(); ok {
		_spec.SetField(analysis.FieldIssues, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedIssues(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, analysis.FieldIssues, value)
		})
	}
	if _u.mutation.IssuesCleared() {
		_spec.ClearField(analysis.FieldIssues, field.TypeJSON)
	}
	if value, ok := _u.mutation.Commitments(); ok {
		_spec.SetField(analysis.FieldCommitments, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedCommitments(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, analysis.FieldCommitments, value)
		})
	}
	if _u.mutation.CommitmentsCleared() {
		_spec.ClearField(analysis.FieldCommitments, field.TypeJSON)
	}
	if value, ok := _u.mutation.Vulnerabilities(); ok {
		_spec.SetField(analysis.FieldVulnerabilities, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedVulnerabilities(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, analysis.FieldVulnerabilities, value)
		})
	}
	if _u.mutation.VulnerabilitiesCleared() {
		_spec.ClearField(analysis.FieldVulnerabilities, field.TypeJSON)
	}
	if value, ok := _u.mutation.CommissionerConcerns(); ok {
		_spec.SetField(analysis.FieldCommissionerConcerns, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedCommissionerConcerns(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, analysis.FieldCommissionerConcerns, value)
		})
	}
	if _u.mutation.CommissionerConcernsCleared() {
		_spec.ClearField(analysis.FieldCommissionerConcerns, field.TypeJSON)
	}
	if value, ok := _u.mutation.CommissionerMood(); ok {
		_spec.SetField(analysis.FieldCommissionerMood, field.TypeEnum, value)
	}
	if _u.mutation.CommissionerMoodCleared() {
		_spec.ClearField(analysis.FieldCommissionerMood, field.TypeEnum)
	}
	if value, ok := _u.mutation.PublicSentiment(); ok {
		_spec.SetField(analysis.FieldPublicSentiment, field.TypeEnum, value)
	}
	if _u.mutation.PublicSentimentCleared() {
		_spec.ClearField(analysis.FieldPublicSentiment, field.TypeEnum)
	}
	if value, ok := _u.mutation.LikelyOutcome(); ok {
		_spec.SetField(analysis.FieldLikelyOutcome, field.TypeString, value)
	}
	if _u.mutation.LikelyOutcomeCleared() {
		_spec.ClearField(analysis.FieldLikelyOutcome, field.TypeString)
	}
	if value, ok := _u.mutation.OutcomeConfidence(); ok {
		_spec.SetField(analysis.FieldOutcomeConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedOutcomeConfidence(); ok {
		_spec.AddField(analysis.FieldOutcomeConfidence, field.TypeFloat64, value)
	}
	if _u.mutation.OutcomeConfidenceCleared() {
		_spec.ClearField(analysis.FieldOutcomeConfidence, field.TypeFloat64)
	}
	if value, ok := _u.mutation.RiskFactors(); ok {
		_spec.SetField(analysis.FieldRiskFactors, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedRiskFactors(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, analysis.FieldRiskFactors, value)
		})
	}
	if _u.mutation.RiskFactorsCleared() {
		_spec.ClearField(analysis.FieldRiskFactors, field.TypeJSON)
	}
	if value, ok := _u.mutation.ActionItems(); ok {
		_spec.SetField(analysis.FieldActionItems, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedActionItems(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, analysis.FieldActionItems, value)
		})
	}
	if _u.mutation.ActionItemsCleared() {
		_spec.ClearField(analysis.FieldActionItems, field.TypeJSON)
	}
	if value, ok := _u.mutation.Quotes(); ok {
		_spec.SetField(analysis.FieldQuotes, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedQuotes(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, analysis.FieldQuotes, value)
		})
	}
	if _u.mutation.QuotesCleared() {
		_spec.ClearField(analysis.FieldQuotes, field.TypeJSON)
	}
	if value, ok := _u.mutation.Topics(); ok {
		_spec.SetField(analysis.FieldTopics, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedTopics(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, analysis.FieldTopics, value)
		})
	}
	if _u.mutation.TopicsCleared() {
		_spec.ClearField(analysis.FieldTopics, field.TypeJSON)
	}
	if value, ok := _u.mutation.Utilities(); ok {
		_spec.SetField(analysis.FieldUtilities, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedUtilities(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, analysis.FieldUtilities, value)
		})
	}
	if _u.mutation.UtilitiesCleared() {
		_spec.ClearField(analysis.FieldUtilities, field.TypeJSON)
	}
	if value, ok := _u.mutation.Dockets(); ok {
		_spec.SetField(analysis.FieldDockets, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedDockets(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, analysis.FieldDockets, value)
		})
	}
	if _u.mutation.DocketsCleared() {
		_spec.ClearField(analysis.FieldDockets, field.TypeJSON)
	}
	if value, ok := _u.mutation.RawOutput(); ok {
		_spec.SetField(analysis.FieldRawOutput, field.TypeJSON, value)
	}
	if _u.mutation.RawOutputCleared() {
		_spec.ClearField(analysis.FieldRawOutput, field.TypeJSON)
	}
	if value, ok := _u.mutation.Model(); ok {
		_spec.SetField(analysis.FieldModel, field.TypeString, value)
	}
	if _u.mutation.ModelCleared() {
		_spec.ClearField(analysis.FieldModel, field.TypeString)
	}
	if value, ok := _u.mutation.CostUsd(); ok {
		_spec.SetField(analysis.FieldCostUsd, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedCostUsd(); ok {
		_spec.AddField(analysis.FieldCostUsd, field.TypeFloat64, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{analysis.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AnalysisUpdateOne is the builder for updating a single Analysis entity.
type AnalysisUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AnalysisMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *AnalysisUpdateOne) SetUpdatedAt(v time.Time) *AnalysisUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetSummary sets the "summary" field.
func (_u *AnalysisUpdateOne) SetSummary(v string) *AnalysisUpdateOne {
	_u.mutation.SetSummary(v)
	return _u
}

// SetNillableSummary sets the "summary" field if the given value is not nil.
func (_u *AnalysisUpdateOne) SetNillableSummary(v *string) *AnalysisUpdateOne {
	if v != nil {
		_u.SetSummary(*v)
	}
	return _u
}

// ClearSummary clears the value of the "summary" field.
func (_u *AnalysisUpdateOne) ClearSummary() *AnalysisUpdateOne {
	_u.mutation.ClearSummary()
	return _u
}

// SetOneSentenceSummary sets the "one_sentence_summary" field.
func (_u *AnalysisUpdateOne) SetOneSentenceSummary(v string) *AnalysisUpdateOne {
	_u.mutation.SetOneSentenceSummary(v)
	return _u
}

// SetNillableOneSentenceSummary sets the "one_sentence_summary" field if the given value is not nil.
func (_u *AnalysisUpdateOne) SetNillableOneSentenceSummary(v *string) *AnalysisUpdateOne {
	if v != nil {
		_u.SetOneSentenceSummary(*v)
	}
	return _u
}

// ClearOneSentenceSummary clears the value of the "one_sentence_summary" field.
func (_u *AnalysisUpdateOne) ClearOneSentenceSummary() *AnalysisUpdateOne {
	_u.mutation.ClearOneSentenceSummary()
	return _u
}

// SetParticipants sets the "participants" field.
func (_u *AnalysisUpdateOne) SetParticipants(v []map[string]interface{}) *AnalysisUpdateOne {
	_u.mutation.SetParticipants(v)
	return _u
}

// AppendParticipants appends value to the "participants" field.
func (_u *AnalysisUpdateOne) AppendParticipants(v []map[string]interface{}) *AnalysisUpdateOne {
	_u.mutation.AppendParticipants(v)
	return _u
}

// ClearParticipants clears the value of the "participants" field.
func (_u *AnalysisUpdateOne) ClearParticipants() *AnalysisUpdateOne {
	_u.mutation.ClearParticipants()
	return _u
}

// SetIssues sets the "issues" field.
func (_u *AnalysisUpdateOne) SetIssues(v []string) *AnalysisUpdateOne {
	_u.mutation.SetIssues(v)
	return _u
}

// AppendIssues appends value to the "issues" field.
func (_u *AnalysisUpdateOne) AppendIssues(v []string) *AnalysisUpdateOne {
	_u.mutation.AppendIssues(v)
	return _u
}

// ClearIssues clears the value of the "issues" field.
func (_u *AnalysisUpdateOne) ClearIssues() *AnalysisUpdateOne {
	_u.mutation.ClearIssues()
	return _u
}

// SetCommitments sets the "commitments" field.
func (_u *AnalysisUpdateOne) SetCommitments(v []string) *AnalysisUpdateOne {
	_u.mutation.SetCommitments(v)
	return _u
}

// AppendCommitments appends value to the "commitments" field.
func (_u *AnalysisUpdateOne) AppendCommitments(v []string) *AnalysisUpdateOne {
	_u.mutation.AppendCommitments(v)
	return _u
}

// ClearCommitments clears the value of the "commitments" field.
func (_u *AnalysisUpdateOne) ClearCommitments() *AnalysisUpdateOne {
	_u.mutation.ClearCommitments()
	return _u
}

// SetVulnerabilities sets the "vulnerabilities" field.
func (_u *AnalysisUpdateOne) SetVulnerabilities(v []string) *AnalysisUpdateOne {
	_u.mutation.SetVulnerabilities(v)
	return _u
}

// AppendVulnerabilities appends value to the "vulnerabilities" field.
func (_u *AnalysisUpdateOne) AppendVulnerabilities(v []string) *AnalysisUpdateOne {
	_u.mutation.AppendVulnerabilities(v)
	return _u
}

// ClearVulnerabilities clears the value of the "vulnerabilities" field.
func (_u *AnalysisUpdateOne) ClearVulnerabilities() *AnalysisUpdateOne {
	_u.mutation.ClearVulnerabilities()
	return _u
}

// SetCommissionerConcerns sets the "commissioner_concerns" field.
func (_u *AnalysisUpdateOne) SetCommissionerConcerns(v []string) *AnalysisUpdateOne {
	_u.mutation.SetCommissionerConcerns(v)
	return _u
}

// AppendCommissionerConcerns appends value to the "commissioner_concerns" field.
func (_u *AnalysisUpdateOne) AppendCommissionerConcerns(v []string) *AnalysisUpdateOne {
	_u.mutation.AppendCommissionerConcerns(v)
	return _u
}

// ClearCommissionerConcerns clears the value of the "commissioner_concerns" field.
func (_u *AnalysisUpdateOne) ClearCommissionerConcerns() *AnalysisUpdateOne {
	_u.mutation.ClearCommissionerConcerns()
	return _u
}

// SetCommissionerMood sets the "commissioner_mood" field.
func (_u *AnalysisUpdateOne) SetCommissionerMood(v analysis.CommissionerMood) *AnalysisUpdateOne {
	_u.mutation.SetCommissionerMood(v)
	return _u
}

// SetNillableCommissionerMood sets the "commissioner_mood" field if the given value is not nil.
func (_u *AnalysisUpdateOne) SetNillableCommissionerMood(v *analysis.CommissionerMood) *AnalysisUpdateOne {
	if v != nil {
		_u.SetCommissionerMood(*v)
	}
	return _u
}

// ClearCommissionerMood clears the value of the "commissioner_mood" field.
func (_u *AnalysisUpdateOne) ClearCommissionerMood() *AnalysisUpdateOne {
	_u.mutation.ClearCommissionerMood()
	return _u
}

// SetPublicSentiment sets the "public_sentiment" field.
func (_u *AnalysisUpdateOne) SetPublicSentiment(v analysis.PublicSentiment) *AnalysisUpdateOne {
	_u.mutation.SetPublicSentiment(v)
	return _u
}

// SetNillablePublicSentiment sets the "public_sentiment" field if the given value is not nil.
func (_u *AnalysisUpdateOne) SetNillablePublicSentiment(v *analysis.PublicSentiment) *AnalysisUpdateOne {
	if v != nil {
		_u.SetPublicSentiment(*v)
	}
	return _u
}

// ClearPublicSentiment clears the value of the "public_sentiment" field.
func (_u *AnalysisUpdateOne) ClearPublicSentiment() *AnalysisUpdateOne {
	_u.mutation.ClearPublicSentiment()
	return _u
}

// SetLikelyOutcome sets the "likely_outcome" field.
func (_u *AnalysisUpdateOne) SetLikelyOutcome(v string) *AnalysisUpdateOne {
	_u.mutation.SetLikelyOutcome(v)
	return _u
}

// SetNillableLikelyOutcome sets the "likely_outcome" field if the given value is not nil.
func (_u *AnalysisUpdateOne) SetNillableLikelyOutcome(v *string) *AnalysisUpdateOne {
	if v != nil {
		_u.SetLikelyOutcome(*v)
	}
	return _u
}

// ClearLikelyOutcome clears the value of the "likely_outcome" field.
func (_u *AnalysisUpdateOne) ClearLikelyOutcome() *AnalysisUpdateOne {
	_u.mutation.ClearLikelyOutcome()
	return _u
}

// SetOutcomeConfidence sets the "outcome_confidence" field.
func (_u *AnalysisUpdateOne) SetOutcomeConfidence(v float64) *AnalysisUpdateOne {
	_u.mutation.ResetOutcomeConfidence()
	_u.mutation.SetOutcomeConfidence(v)
	return _u
}

// SetNillableOutcomeConfidence sets the "outcome_confidence" field if the given value is not nil.
func (_u *AnalysisUpdateOne) SetNillableOutcomeConfidence(v *float64) *AnalysisUpdateOne {
	if v != nil {
		_u.SetOutcomeConfidence(*v)
	}
	return _u
}

// AddOutcomeConfidence adds value to the "outcome_confidence" field.
func (_u *AnalysisUpdateOne) AddOutcomeConfidence(v float64) *AnalysisUpdateOne {
	_u.mutation.AddOutcomeConfidence(v)
	return _u
}

// ClearOutcomeConfidence clears the value of the "outcome_confidence" field.
func (_u *AnalysisUpdateOne) ClearOutcomeConfidence() *AnalysisUpdateOne {
	_u.mutation.ClearOutcomeConfidence()
	return _u
}

// SetRiskFactors sets the "risk_factors" field.
func (_u *AnalysisUpdateOne) SetRiskFactors(v []string) *AnalysisUpdateOne {
	_u.mutation.SetRiskFactors(v)
	return _u
}

// AppendRiskFactors appends value to the "risk_factors" field.
func (_u *AnalysisUpdateOne) AppendRiskFactors(v []string) *AnalysisUpdateOne {
	_u.mutation.AppendRiskFactors(v)
	return _u
}

// ClearRiskFactors clears the value of the "risk_factors" field.
func (_u *AnalysisUpdateOne) ClearRiskFactors() *AnalysisUpdateOne {
	_u.mutation.ClearRiskFactors()
	return _u
}

// SetActionItems sets the "action_items" field.
func (_u *AnalysisUpdateOne) SetActionItems(v []string) *AnalysisUpdateOne {
	_u.mutation.SetActionItems(v)
	return _u
}

// AppendActionItems appends value to the "action_items" field.
func (_u *AnalysisUpdateOne) AppendActionItems(v []string) *AnalysisUpdateOne {
	_u.mutation.AppendActionItems(v)
	return _u
}

// ClearActionItems clears the value of the "action_items" field.
func (_u *AnalysisUpdateOne) ClearActionItems() *AnalysisUpdateOne {
	_u.mutation.ClearActionItems()
	return _u
}

// SetQuotes sets the "quotes" field.
func (_u *AnalysisUpdateOne) SetQuotes(v []map[string]interface{}) *AnalysisUpdateOne {
	_u.mutation.SetQuotes(v)
	return _u
}

// AppendQuotes appends value to the "quotes" field.
func (_u *AnalysisUpdateOne) AppendQuotes(v []map[string]interface{}) *AnalysisUpdateOne {
	_u.mutation.AppendQuotes(v)
	return _u
}

// ClearQuotes clears the value of the "quotes" field.
func (_u *AnalysisUpdateOne) ClearQuotes() *AnalysisUpdateOne {
	_u.mutation.ClearQuotes()
	return _u
}

// SetTopics sets the "topics" field.
func (_u *AnalysisUpdateOne) SetTopics(v []map[string]interface{}) *AnalysisUpdateOne {
	_u.mutation.SetTopics(v)
	return _u
}

// AppendTopics appends value to the "topics" field.
func (_u *AnalysisUpdateOne) AppendTopics(v []map[string]interface{}) *AnalysisUpdateOne {
	_u.mutation.AppendTopics(v)
	return _u
}

// ClearTopics clears the value of the "topics" field.
func (_u *AnalysisUpdateOne) ClearTopics() *AnalysisUpdateOne {
	_u.mutation.ClearTopics()
	return _u
}

// SetUtilities sets the "utilities" field.
func (_u *AnalysisUpdateOne) SetUtilities(v []map[string]interface{}) *AnalysisUpdateOne {
	_u.mutation.SetUtilities(v)
	return _u
}

// AppendUtilities appends value to the "utilities" field.
func (_u *AnalysisUpdateOne) AppendUtilities(v []map[string]interface{}) *AnalysisUpdateOne {
	_u.mutation.AppendUtilities(v)
	return _u
}

// ClearUtilities clears the value of the "utilities" field.
func (_u *AnalysisUpdateOne) ClearUtilities() *AnalysisUpdateOne {
	_u.mutation.ClearUtilities()
	return _u
}

// SetDockets sets the "dockets" field.
func (_u *AnalysisUpdateOne) SetDockets(v []string) *AnalysisUpdateOne {
	_u.mutation.SetDockets(v)
	return _u
}

// AppendDockets appends value to the "dockets" field.
func (_u *AnalysisUpdateOne) AppendDockets(v []string) *AnalysisUpdateOne {
	_u.mutation.AppendDockets(v)
	return _u
}

// ClearDockets clears the value of the "dockets" field.
func (_u *AnalysisUpdateOne) ClearDockets() *AnalysisUpdateOne {
	_u.mutation.ClearDockets()
	return _u
}

// SetRawOutput sets the "raw_output" field.
func (_u *AnalysisUpdateOne) SetRawOutput(v map[string]interface{}) *AnalysisUpdateOne {
	_u.mutation.SetRawOutput(v)
	return _u
}

// ClearRawOutput clears the value of the "raw_output" field.
func (_u *AnalysisUpdateOne) ClearRawOutput() *AnalysisUpdateOne {
	_u.mutation.ClearRawOutput()
	return _u
}

// SetModel sets the "model" field.
func (_u *AnalysisUpdateOne) SetModel(v string) *AnalysisUpdateOne {
	_u.mutation.SetModel(v)
	return _u
}

// SetNillableModel sets the "model" field if the given value is not nil.
func (_u *AnalysisUpdateOne) SetNillableModel(v *string) *AnalysisUpdateOne {
	if v != nil {
		_u.SetModel(*v)
	}
	return _u
}

// ClearModel clears the value of the "model" field.
func (_u *AnalysisUpdateOne) ClearModel() *AnalysisUpdateOne {
	_u.mutation.ClearModel()
	return _u
}

// SetCostUsd sets the "cost_usd" field.
func (_u *AnalysisUpdateOne) SetCostUsd(v float64) *AnalysisUpdateOne {
	_u.mutation.ResetCostUsd()
	_u.mutation.SetCostUsd(v)
	return _u
}

// SetNillableCostUsd sets the "cost_usd" field if the given value is not nil.
func (_u *AnalysisUpdateOne) SetNillableCostUsd(v *float64) *AnalysisUpdateOne {
	if v != nil {
		_u.SetCostUsd(*v)
	}
	return _u
}

// AddCostUsd adds value to the "cost_usd" field.
func (_u *AnalysisUpdateOne) AddCostUsd(v float64) *AnalysisUpdateOne {
	_u.mutation.AddCostUsd(v)
	return _u
}

// Mutation returns the AnalysisMutation object of the builder.
func (_u *AnalysisUpdateOne) Mutation() *AnalysisMutation {
	return _u.mutation
}

// Where appends a list predicates to the AnalysisUpdate builder.
func (_u *AnalysisUpdateOne) Where(ps ...predicate.Analysis) *AnalysisUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AnalysisUpdateOne) Select(field string, fields ...string) *AnalysisUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Analysis entity.
func (_u *AnalysisUpdateOne) Save(ctx context.Context) (*Analysis, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AnalysisUpdateOne) SaveX(ctx context.Context) *Analysis {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AnalysisUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AnalysisUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *AnalysisUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := analysis.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AnalysisUpdateOne) check() error {
	if v, ok := _u.mutation.CommissionerMood(); ok {
		if err := analysis.CommissionerMoodValidator(v); err != nil {
			return &ValidationError{Name: "commissioner_mood", err: fmt.Errorf(`ent: validator failed for field "Analysis.commissioner_mood": %w`, err)}
		}
	}
	if v, ok := _u.mutation.PublicSentiment(); ok {
		if err := analysis.PublicSentimentValidator(v); err != nil {
			return &ValidationError{Name: "public_sentiment", err: fmt.Errorf(`ent: validator failed for field "Analysis.public_sentiment": %w`, err)}
		}
	}
	if _u.mutation.HearingCleared() && len(_u.mutation.HearingIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Analysis.hearing"`)
	}
	return nil
}

func (_u *AnalysisUpdateOne) sqlSave(ctx context.Context) (_node *Analysis, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(analysis.Table, analysis.Columns, sqlgraph.NewFieldSpec(analysis.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Analysis.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, analysis.FieldID)
		for _, f := range fields {
			if !analysis.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != analysis.FieldID {
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
		_spec.SetField(analysis.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Summary(); ok {
		_spec.SetField(analysis.FieldSummary, field.TypeString, value)
	}
	if _u.mutation.SummaryCleared() {
		_spec.ClearField(analysis.FieldSummary, field.TypeString)
	}
	if value, ok := _u.mutation.OneSentenceSummary(); ok {
		_spec.SetField(analysis.FieldOneSentenceSummary, field.TypeString, value)
	}
	if _u.mutation.OneSentenceSummaryCleared() {
		_spec.ClearField(analysis.FieldOneSentenceSummary, field.TypeString)
	}
	if value, ok := _u.mutation.Participants(); ok {
		_spec.SetField(analysis.FieldParticipants, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedParticipants(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, analysis.FieldParticipants, value)
		})
	}
	if _u.mutation.ParticipantsCleared() {
		_spec.ClearField(analysis.FieldParticipants, field.TypeJSON)
	}
	if value, ok := _u.mutation.Issues(); ok {
		_spec.SetField(analysis.FieldIssues, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedIssues(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, analysis.FieldIssues, value)
		})
	}
	if _u.mutation.IssuesCleared() {
		_spec.ClearField(analysis.FieldIssues, field.TypeJSON)
	}
	if value, ok := _u.mutation.Commitments(); ok {
		_spec.SetField(analysis.FieldCommitments, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedCommitments(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, analysis.FieldCommitments, value)
		})
	}
	if _u.mutation.CommitmentsCleared() {
		_spec.ClearField(analysis.FieldCommitments, field.TypeJSON)
	}
	if value, ok := _u.mutation.Vulnerabilities(); ok {
		_spec.SetField(analysis.FieldVulnerabilities, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedVulnerabilities(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, analysis.FieldVulnerabilities, value)
		})
	}
	if _u.mutation.VulnerabilitiesCleared() {
		_spec.ClearField(analysis.FieldVulnerabilities, field.TypeJSON)
	}
	if value, ok := _u.mutation.CommissionerConcerns(); ok {
		_spec.SetField(analysis.FieldCommissionerConcerns, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedCommissionerConcerns(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, analysis.FieldCommissionerConcerns, value)
		})
	}
	if _u.mutation.CommissionerConcernsCleared() {
		_spec.ClearField(analysis.FieldCommissionerConcerns, field.TypeJSON)
	}
	if value, ok := _u.mutation.CommissionerMood(); ok {
		_spec.SetField(analysis.FieldCommissionerMood, field.TypeEnum, value)
	}
	if _u.mutation.CommissionerMoodCleared() {
		_spec.ClearField(analysis.FieldCommissionerMood, field.TypeEnum)
	}
	if value, ok := _u.mutation.PublicSentiment(); ok {
		_spec.SetField(analysis.FieldPublicSentiment, field.TypeEnum, value)
	}
	if _u.mutation.PublicSentimentCleared() {
		_spec.ClearField(analysis.FieldPublicSentiment, field.TypeEnum)
	}
	if value, ok := _u.mutation.LikelyOutcome(); ok {
		_spec.SetField(analysis.FieldLikelyOutcome, field.TypeString, value)
	}
	if _u.mutation.LikelyOutcomeCleared() {
		_spec.ClearField(analysis.FieldLikelyOutcome, field.TypeString)
	}
	if value, ok := _u.mutation.OutcomeConfidence(); ok {
		_spec.SetField(analysis.FieldOutcomeConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedOutcomeConfidence(); ok {
		_spec.AddField(analysis.FieldOutcomeConfidence, field.TypeFloat64, value)
	}
	if _u.mutation.OutcomeConfidenceCleared() {
		_spec.ClearField(analysis.FieldOutcomeConfidence, field.TypeFloat64)
	}
	if value, ok := _u.mutation.RiskFactors(); ok {
		_spec.SetField(analysis.FieldRiskFactors, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedRiskFactors(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, analysis.FieldRiskFactors, value)
		})
	}
	if _u.mutation.RiskFactorsCleared() {
		_spec.ClearField(analysis.FieldRiskFactors, field.TypeJSON)
	}
	if value, ok := _u.mutation.ActionItems(); ok {
		_spec.SetField(analysis.FieldActionItems, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedActionItems(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, analysis.FieldActionItems, value)
		})
	}
	if _u.mutation.ActionItemsCleared() {
		_spec.ClearField(analysis.FieldActionItems, field.TypeJSON)
	}
	if value, ok := _u.mutation.Quotes(); ok {
		_spec.SetField(analysis.FieldQuotes, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedQuotes(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, analysis.FieldQuotes, value)
		})
	}
	if _u.mutation.QuotesCleared() {
		_spec.ClearField(analysis.FieldQuotes, field.TypeJSON)
	}
	if value, ok := _u.mutation.Topics(); ok {
		_spec.SetField(analysis.FieldTopics, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedTopics(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, analysis.FieldTopics, value)
		})
	}
	if _u.mutation.TopicsCleared() {
		_spec.ClearField(analysis.FieldTopics, field.TypeJSON)
	}
	if value, ok := _u.mutation.Utilities(); ok {
		_spec.SetField(analysis.FieldUtilities, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedUtilities(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, analysis.FieldUtilities, value)
		})
	}
	if _u.mutation.UtilitiesCleared() {
		_spec.ClearField(analysis.FieldUtilities, field.TypeJSON)
	}
	if value, ok := _u.mutation.Dockets(); ok {
		_spec.SetField(analysis.FieldDockets, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedDockets(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, analysis.FieldDockets, value)
		})
	}
	if _u.mutation.DocketsCleared() {
		_spec.ClearField(analysis.FieldDockets, field.TypeJSON)
	}
	if value, ok := _u.mutation.RawOutput(); ok {
		_spec.SetField(analysis.FieldRawOutput, field.TypeJSON, value)
	}
	if _u.mutation.RawOutputCleared() {
		_spec.ClearField(analysis.FieldRawOutput, field.TypeJSON)
	}
	if value, ok := _u.mutation.Model(); ok {
		_spec.SetField(analysis.FieldModel, field.TypeString, value)
	}
	if _u.mutation.ModelCleared() {
		_spec.ClearField(analysis.FieldModel, field.TypeString)
	}
	if value, ok := _u.mutation.CostUsd(); ok {
		_spec.SetField(analysis.FieldCostUsd, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedCostUsd(); ok {
		_spec.AddField(analysis.FieldCostUsd, field.TypeFloat64, value)
	}
	_node = &Analysis{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{analysis.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
