// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/canaryscope/canaryscope/ent/analysis"
	"github.com/canaryscope/canaryscope/ent/hearing"
)

// AnalysisCreate is the builder for creating a Analysis entity.
type AnalysisCreate struct {
	config
	mutation *AnalysisMutation
	hooks    []Hook
}

// SetCreatedAt sets the "created_at" field.
func (_c *AnalysisCreate) SetCreatedAt(v time.Time) *AnalysisCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *AnalysisCreate) SetNillableCreatedAt(v *time.Time) *AnalysisCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *AnalysisCreate) SetUpdatedAt(v time.Time) *AnalysisCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *AnalysisCreate) SetNillableUpdatedAt(v *time.Time) *AnalysisCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetHearingID sets the "hearing_id" field.
func (_c *AnalysisCreate) SetHearingID(v string) *AnalysisCreate {
	_c.mutation.SetHearingID(v)
	return _c
}

// SetSummary sets the "summary" field.
func (_c *AnalysisCreate) SetSummary(v string) *AnalysisCreate {
	_c.mutation.SetSummary(v)
	return _c
}

// SetNillableSummary sets the "summary" field if the given value is not nil.
func (_c *AnalysisCreate) SetNillableSummary(v *string) *AnalysisCreate {
	if v != nil {
		_c.SetSummary(*v)
	}
	return _c
}

// SetOneSentenceSummary sets the "one_sentence_summary" field.
func (_c *AnalysisCreate) SetOneSentenceSummary(v string) *AnalysisCreate {
	_c.mutation.SetOneSentenceSummary(v)
	return _c
}

// SetNillableOneSentenceSummary sets the "one_sentence_summary" field if the given value is not nil.
func (_c *AnalysisCreate) SetNillableOneSentenceSummary(v *string) *AnalysisCreate {
	if v != nil {
		_c.SetOneSentenceSummary(*v)
	}
	return _c
}

// SetParticipants sets the "participants" field.
func (_c *AnalysisCreate) SetParticipants(v []map[string]interface{}) *AnalysisCreate {
	_c.mutation.SetParticipants(v)
	return _c
}

// SetIssues sets the "issues" field.
func (_c *AnalysisCreate) SetIssues(v []string) *AnalysisCreate {
	_c.mutation.SetIssues(v)
	return _c
}

// SetCommitments sets the "commitments" field.
func (_c *AnalysisCreate) SetCommitments(v []string) *AnalysisCreate {
	_c.mutation.SetCommitments(v)
	return _c
}

// SetVulnerabilities sets the "vulnerabilities" field.
func (_c *AnalysisCreate) SetVulnerabilities(v []string) *AnalysisCreate {
	_c.mutation.SetVulnerabilities(v)
	return _c
}

// SetCommissionerConcerns sets the "commissioner_concerns" field.
func (_c *AnalysisCreate) SetCommissionerConcerns(v []string) *AnalysisCreate {
	_c.mutation.SetCommissionerConcerns(v)
	return _c
}

// SetCommissionerMood sets the "commissioner_mood" field.
func (_c *AnalysisCreate) SetCommissionerMood(v analysis.CommissionerMood) *AnalysisCreate {
	_c.mutation.SetCommissionerMood(v)
	return _c
}

// SetNillableCommissionerMood sets the "commissioner_mood" field if the given value is not nil.
func (_c *AnalysisCreate) SetNillableCommissionerMood(v *analysis.CommissionerMood) *AnalysisCreate {
	if v != nil {
		_c.SetCommissionerMood(*v)
	}
	return _c
}

// SetPublicSentiment sets the "public_sentiment" field.
func (_c *AnalysisCreate) SetPublicSentiment(v analysis.PublicSentiment) *AnalysisCreate {
	_c.mutation.SetPublicSentiment(v)
	return _c
}

// SetNillablePublicSentiment sets the "public_sentiment" field if the given value is not nil.
func (_c *AnalysisCreate) SetNillablePublicSentiment(v *analysis.PublicSentiment) *AnalysisCreate {
	if v != nil {
		_c.SetPublicSentiment(*v)
	}
	return _c
}

// SetLikelyOutcome sets the "likely_outcome" field.
func (_c *AnalysisCreate) SetLikelyOutcome(v string) *AnalysisCreate {
	_c.mutation.SetLikelyOutcome(v)
	return _c
}

// SetNillableLikelyOutcome sets the "likely_outcome" field if the given value is not nil.
func (_c *AnalysisCreate) SetNillableLikelyOutcome(v *string) *AnalysisCreate {
	if v != nil {
		_c.SetLikelyOutcome(*v)
	}
	return _c
}

// SetOutcomeConfidence sets the "outcome_confidence" field.
func (_c *AnalysisCreate) SetOutcomeConfidence(v float64) *AnalysisCreate {
	_c.mutation.SetOutcomeConfidence(v)
	return _c
}

// SetNillableOutcomeConfidence sets the "outcome_confidence" field if the given value is not nil.
func (_c *AnalysisCreate) SetNillableOutcomeConfidence(v *float64) *AnalysisCreate {
	if v != nil {
		_c.SetOutcomeConfidence(*v)
	}
	return _c
}

// SetRiskFactors sets the "risk_factors" field.
func (_c *AnalysisCreate) SetRiskFactors(v []string) *AnalysisCreate {
	_c.mutation.SetRiskFactors(v)
	return _c
}

// SetActionItems sets the "action_items" field.
func (_c *AnalysisCreate) SetActionItems(v []string) *AnalysisCreate {
	_c.mutation.SetActionItems(v)
	return _c
}

// SetQuotes sets the "quotes" field.
func (_c *AnalysisCreate) SetQuotes(v []map[string]interface{}) *AnalysisCreate {
	_c.mutation.SetQuotes(v)
	return _c
}

// SetTopics sets the "topics" field.
func (_c *AnalysisCreate) SetTopics(v []map[string]interface{}) *AnalysisCreate {
	_c.mutation.SetTopics(v)
	return _c
}

// SetUtilities sets the "utilities" field.
func (_c *AnalysisCreate) SetUtilities(v []map[string]interface{}) *AnalysisCreate {
	_c.mutation.SetUtilities(v)
	return _c
}

// SetDockets sets the "dockets" field.
func (_c *AnalysisCreate) SetDockets(v []string) *AnalysisCreate {
	_c.mutation.SetDockets(v)
	return _c
}

// SetRawOutput sets the "raw_output" field.
func (_c *AnalysisCreate) SetRawOutput(v map[string]interface{}) *AnalysisCreate {
	_c.mutation.SetRawOutput(v)
	return _c
}

// SetModel sets the "model" field.
func (_c *AnalysisCreate) SetModel(v string) *AnalysisCreate {
	_c.mutation.SetModel(v)
	return _c
}

// SetNillableModel sets the "model" field if the given value is not nil.
func (_c *AnalysisCreate) SetNillableModel(v *string) *AnalysisCreate {
	if v != nil {
		_c.SetModel(*v)
	}
	return _c
}

// SetCostUsd sets the "cost_usd" field.
func (_c *AnalysisCreate) SetCostUsd(v float64) *AnalysisCreate {
	_c.mutation.SetCostUsd(v)
	return _c
}

// SetNillableCostUsd sets the "cost_usd" field if the given value is not nil.
func (_c *AnalysisCreate) SetNillableCostUsd(v *float64) *AnalysisCreate {
	if v != nil {
		_c.SetCostUsd(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *AnalysisCreate) SetID(v string) *AnalysisCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetHearing sets the "hearing" edge to the Hearing entity.
func (_c *AnalysisCreate) SetHearing(v *Hearing) *AnalysisCreate {
	return _c.SetHearingID(v.ID)
}

// Mutation returns the AnalysisMutation object of the builder.
func (_c *AnalysisCreate) Mutation() *AnalysisMutation {
	return _c.mutation
}

// Save creates the Analysis in the database.
func (_c *AnalysisCreate) Save(ctx context.Context) (*Analysis, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AnalysisCreate) SaveX(ctx context.Context) *Analysis {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AnalysisCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AnalysisCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AnalysisCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := analysis.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := analysis.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.CostUsd(); !ok {
		v := analysis.DefaultCostUsd
		_c.mutation.SetCostUsd(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AnalysisCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Analysis.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Analysis.updated_at"`)}
	}
	if _, ok := _c.mutation.HearingID(); !ok {
		return &ValidationError{Name: "hearing_id", err: errors.New(`ent: missing required field "Analysis.hearing_id"`)}
	}
	if v, ok := _c.mutation.CommissionerMood(); ok {
		if err := analysis.CommissionerMoodValidator(v); err != nil {
			return &ValidationError{Name: "commissioner_mood", err: fmt.Errorf(`ent: validator failed for field "Analysis.commissioner_mood": %w`, err)}
		}
	}
	if v, ok := _c.mutation.PublicSentiment(); ok {
		if err := analysis.PublicSentimentValidator(v); err != nil {
			return &ValidationError{Name: "public_sentiment", err: fmt.Errorf(`ent: validator failed for field "Analysis.public_sentiment": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CostUsd(); !ok {
		return &ValidationError{Name: "cost_usd", err: errors.New(`ent: missing required field "Analysis.cost_usd"`)}
	}
	if len(_c.mutation.HearingIDs()) == 0 {
		return &ValidationError{Name: "hearing", err: errors.New(`ent: missing required edge "Analysis.hearing"`)}
	}
	return nil
}

func (_c *AnalysisCreate) sqlSave(ctx context.Context) (*Analysis, error) {
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
			return nil, fmt.Errorf("unexpected Analysis.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *AnalysisCreate) createSpec() (*Analysis, *sqlgraph.CreateSpec) {
	var (
		_node = &Analysis{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(analysis.Table, sqlgraph.NewFieldSpec(analysis.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(analysis.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(analysis.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.Summary(); ok {
		_spec.SetField(analysis.FieldSummary, field.TypeString, value)
		_node.Summary = value
	}
	if value, ok := _c.mutation.OneSentenceSummary(); ok {
		_spec.SetField(analysis.FieldOneSentenceSummary, field.TypeString, value)
		_node.OneSentenceSummary = value
	}
	if value, ok := _c.mutation.Participants(); ok {
		_spec.SetField(analysis.FieldParticipants, field.TypeJSON, value)
		_node.Participants = value
	}
	if value, ok := _c.mutation.Issues(); ok {
		_spec.SetField(analysis.FieldIssues, field.TypeJSON, value)
		_node.Issues = value
	}
	if value, ok := _c.mutation.Commitments(); ok {
		_spec.SetField(analysis.FieldCommitments, field.TypeJSON, value)
		_node.Commitments = value
	}
	if value, ok := _c.mutation.Vulnerabilities(); ok {
		_spec.SetField(analysis.FieldVulnerabilities, field.TypeJSON, value)
		_node.Vulnerabilities = value
	}
	if value, ok := _c.mutation.CommissionerConcerns(); ok {
		_spec.SetField(analysis.FieldCommissionerConcerns, field.TypeJSON, value)
		_node.CommissionerConcerns = value
	}
	if value, ok := _c.mutation.CommissionerMood(); ok {
		_spec.SetField(analysis.FieldCommissionerMood, field.TypeEnum, value)
		_node.CommissionerMood = value
	}
	if value, ok := _c.mutation.PublicSentiment(); ok {
		_spec.SetField(analysis.FieldPublicSentiment, field.TypeEnum, value)
		_node.PublicSentiment = value
	}
	if value, ok := _c.mutation.LikelyOutcome(); ok {
		_spec.SetField(analysis.FieldLikelyOutcome, field.TypeString, value)
		_node.LikelyOutcome = value
	}
	if value, ok := _c.mutation.OutcomeConfidence(); ok {
		_spec.SetField(analysis.FieldOutcomeConfidence, field.TypeFloat64, value)
		_node.OutcomeConfidence = &value
	}
	if value, ok := _c.mutation.RiskFactors(); ok {
		_spec.SetField(analysis.FieldRiskFactors, field.TypeJSON, value)
		_node.RiskFactors = value
	}
	if value, ok := _c.mutation.ActionItems(); ok {
		_spec.SetField(analysis.FieldActionItems, field.TypeJSON, value)
		_node.ActionItems = value
	}
	if value, ok := _c.mutation.Quotes(); ok {
		_spec.SetField(analysis.FieldQuotes, field.TypeJSON, value)
		_node.Quotes = value
	}
	if value, ok := _c.mutation.Topics(); ok {
		_spec.SetField(analysis.FieldTopics, field.TypeJSON, value)
		_node.Topics = value
	}
	if value, ok := _c.mutation.Utilities(); ok {
		_spec.SetField(analysis.FieldUtilities, field.TypeJSON, value)
		_node.Utilities = value
	}
	if value, ok := _c.mutation.Dockets(); ok {
		_spec.SetField(analysis.FieldDockets, field.TypeJSON, value)
		_node.Dockets = value
	}
	if value, ok := _c.mutation.RawOutput(); ok {
		_spec.SetField(analysis.FieldRawOutput, field.TypeJSON, value)
		_node.RawOutput = value
	}
	if value, ok := _c.mutation.Model(); ok {
		_spec.SetField(analysis.FieldModel, field.TypeString, value)
		_node.Model = value
	}
	if value, ok := _c.mutation.CostUsd(); ok {
		_spec.SetField(analysis.FieldCostUsd, field.TypeFloat64, value)
		_node.CostUsd = value
	}
	if nodes := _c.mutation.HearingIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   analysis.HearingTable,
			Columns: []string{analysis.HearingColumn},
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
	return _node, _spec
}

// AnalysisCreateBulk is the builder for creating many Analysis entities in bulk.
type AnalysisCreateBulk struct {
	config
	err      error
	builders []*AnalysisCreate
}

// Save creates the Analysis entities in the database.
func (_c *AnalysisCreateBulk) Save(ctx context.Context) ([]*Analysis, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Analysis, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AnalysisMutation)
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
func (_c *AnalysisCreateBulk) SaveX(ctx context.Context) []*Analysis {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AnalysisCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AnalysisCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
