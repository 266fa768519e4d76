// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/canaryscope/canaryscope/ent/extracteddocket"
	"github.com/canaryscope/canaryscope/ent/hearing"
	"github.com/canaryscope/canaryscope/ent/knowndocket"
)

// ExtractedDocketCreate is the builder for creating a ExtractedDocket entity.
type ExtractedDocketCreate struct {
	config
	mutation *ExtractedDocketMutation
	hooks    []Hook
}

// SetCreatedAt sets the "created_at" field.
func (_c *ExtractedDocketCreate) SetCreatedAt(v time.Time) *ExtractedDocketCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ExtractedDocketCreate) SetNillableCreatedAt(v *time.Time) *ExtractedDocketCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *ExtractedDocketCreate) SetUpdatedAt(v time.Time) *ExtractedDocketCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *ExtractedDocketCreate) SetNillableUpdatedAt(v *time.Time) *ExtractedDocketCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetHearingID sets the "hearing_id" field.
func (_c *ExtractedDocketCreate) SetHearingID(v string) *ExtractedDocketCreate {
	_c.mutation.SetHearingID(v)
	return _c
}

// SetRawText sets the "raw_text" field.
func (_c *ExtractedDocketCreate) SetRawText(v string) *ExtractedDocketCreate {
	_c.mutation.SetRawText(v)
	return _c
}

// SetNormalizedID sets the "normalized_id" field.
func (_c *ExtractedDocketCreate) SetNormalizedID(v string) *ExtractedDocketCreate {
	_c.mutation.SetNormalizedID(v)
	return _c
}

// SetStateCode sets the "state_code" field.
func (_c *ExtractedDocketCreate) SetStateCode(v string) *ExtractedDocketCreate {
	_c.mutation.SetStateCode(v)
	return _c
}

// SetYear sets the "year" field.
func (_c *ExtractedDocketCreate) SetYear(v int) *ExtractedDocketCreate {
	_c.mutation.SetYear(v)
	return _c
}

// SetNillableYear sets the "year" field if the given value is not nil.
func (_c *ExtractedDocketCreate) SetNillableYear(v *int) *ExtractedDocketCreate {
	if v != nil {
		_c.SetYear(*v)
	}
	return _c
}

// SetCaseNumber sets the "case_number" field.
func (_c *ExtractedDocketCreate) SetCaseNumber(v string) *ExtractedDocketCreate {
	_c.mutation.SetCaseNumber(v)
	return _c
}

// SetNillableCaseNumber sets the "case_number" field if the given value is not nil.
func (_c *ExtractedDocketCreate) SetNillableCaseNumber(v *string) *ExtractedDocketCreate {
	if v != nil {
		_c.SetCaseNumber(*v)
	}
	return _c
}

// SetSuffix sets the "suffix" field.
func (_c *ExtractedDocketCreate) SetSuffix(v string) *ExtractedDocketCreate {
	_c.mutation.SetSuffix(v)
	return _c
}

// SetNillableSuffix sets the "suffix" field if the given value is not nil.
func (_c *ExtractedDocketCreate) SetNillableSuffix(v *string) *ExtractedDocketCreate {
	if v != nil {
		_c.SetSuffix(*v)
	}
	return _c
}

// SetSector sets the "sector" field.
func (_c *ExtractedDocketCreate) SetSector(v string) *ExtractedDocketCreate {
	_c.mutation.SetSector(v)
	return _c
}

// SetNillableSector sets the "sector" field if the given value is not nil.
func (_c *ExtractedDocketCreate) SetNillableSector(v *string) *ExtractedDocketCreate {
	if v != nil {
		_c.SetSector(*v)
	}
	return _c
}

// SetConfidence sets the "confidence" field.
func (_c *ExtractedDocketCreate) SetConfidence(v float64) *ExtractedDocketCreate {
	_c.mutation.SetConfidence(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *ExtractedDocketCreate) SetStatus(v extracteddocket.Status) *ExtractedDocketCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetMatchType sets the "match_type" field.
func (_c *ExtractedDocketCreate) SetMatchType(v extracteddocket.MatchType) *ExtractedDocketCreate {
	_c.mutation.SetMatchType(v)
	return _c
}

// SetNillableMatchType sets the "match_type" field if the given value is not nil.
func (_c *ExtractedDocketCreate) SetNillableMatchType(v *extracteddocket.MatchType) *ExtractedDocketCreate {
	if v != nil {
		_c.SetMatchType(*v)
	}
	return _c
}

// SetTriggerPhrase sets the "trigger_phrase" field.
func (_c *ExtractedDocketCreate) SetTriggerPhrase(v string) *ExtractedDocketCreate {
	_c.mutation.SetTriggerPhrase(v)
	return _c
}

// SetNillableTriggerPhrase sets the "trigger_phrase" field if the given value is not nil.
func (_c *ExtractedDocketCreate) SetNillableTriggerPhrase(v *string) *ExtractedDocketCreate {
	if v != nil {
		_c.SetTriggerPhrase(*v)
	}
	return _c
}

// SetKnownDocketID sets the "known_docket_id" field.
func (_c *ExtractedDocketCreate) SetKnownDocketID(v string) *ExtractedDocketCreate {
	_c.mutation.SetKnownDocketID(v)
	return _c
}

// SetNillableKnownDocketID sets the "known_docket_id" field if the given value is not nil.
func (_c *ExtractedDocketCreate) SetNillableKnownDocketID(v *string) *ExtractedDocketCreate {
	if v != nil {
		_c.SetKnownDocketID(*v)
	}
	return _c
}

// SetFuzzyScore sets the "fuzzy_score" field.
func (_c *ExtractedDocketCreate) SetFuzzyScore(v float64) *ExtractedDocketCreate {
	_c.mutation.SetFuzzyScore(v)
	return _c
}

// SetNillableFuzzyScore sets the "fuzzy_score" field if the given value is not nil.
func (_c *ExtractedDocketCreate) SetNillableFuzzyScore(v *float64) *ExtractedDocketCreate {
	if v != nil {
		_c.SetFuzzyScore(*v)
	}
	return _c
}

// SetContextBefore sets the "context_before" field.
func (_c *ExtractedDocketCreate) SetContextBefore(v string) *ExtractedDocketCreate {
	_c.mutation.SetContextBefore(v)
	return _c
}

// SetNillableContextBefore sets the "context_before" field if the given value is not nil.
func (_c *ExtractedDocketCreate) SetNillableContextBefore(v *string) *ExtractedDocketCreate {
	if v != nil {
		_c.SetContextBefore(*v)
	}
	return _c
}

// SetContextAfter sets the "context_after" field.
func (_c *ExtractedDocketCreate) SetContextAfter(v string) *ExtractedDocketCreate {
	_c.mutation.SetContextAfter(v)
	return _c
}

// SetNillableContextAfter sets the "context_after" field if the given value is not nil.
func (_c *ExtractedDocketCreate) SetNillableContextAfter(v *string) *ExtractedDocketCreate {
	if v != nil {
		_c.SetContextAfter(*v)
	}
	return _c
}

// SetSuggestedCorrection sets the "suggested_correction" field.
func (_c *ExtractedDocketCreate) SetSuggestedCorrection(v string) *ExtractedDocketCreate {
	_c.mutation.SetSuggestedCorrection(v)
	return _c
}

// SetNillableSuggestedCorrection sets the "suggested_correction" field if the given value is not nil.
func (_c *ExtractedDocketCreate) SetNillableSuggestedCorrection(v *string) *ExtractedDocketCreate {
	if v != nil {
		_c.SetSuggestedCorrection(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ExtractedDocketCreate) SetID(v string) *ExtractedDocketCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetHearing sets the "hearing" edge to the Hearing entity.
func (_c *ExtractedDocketCreate) SetHearing(v *Hearing) *ExtractedDocketCreate {
	return _c.SetHearingID(v.ID)
}

// SetKnownDocket sets the "known_docket" edge to the KnownDocket entity.
func (_c *ExtractedDocketCreate) SetKnownDocket(v *KnownDocket) *ExtractedDocketCreate {
	return _c.SetKnownDocketID(v.ID)
}

// Mutation returns the ExtractedDocketMutation object of the builder.
func (_c *ExtractedDocketCreate) Mutation() *ExtractedDocketMutation {
	return _c.mutation
}

// Save creates the ExtractedDocket in the database.
func (_c *ExtractedDocketCreate) Save(ctx context.Context) (*ExtractedDocket, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ExtractedDocketCreate) SaveX(ctx context.Context) *ExtractedDocket {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ExtractedDocketCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ExtractedDocketCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ExtractedDocketCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := extracteddocket.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := extracteddocket.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.MatchType(); !ok {
		v := extracteddocket.DefaultMatchType
		_c.mutation.SetMatchType(v)
	}
	if _, ok := _c.mutation.FuzzyScore(); !ok {
		v := extracteddocket.DefaultFuzzyScore
		_c.mutation.SetFuzzyScore(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ExtractedDocketCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ExtractedDocket.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "ExtractedDocket.updated_at"`)}
	}
	if _, ok := _c.mutation.HearingID(); !ok {
		return &ValidationError{Name: "hearing_id", err: errors.New(`ent: missing required field "ExtractedDocket.hearing_id"`)}
	}
	if _, ok := _c.mutation.RawText(); !ok {
		return &ValidationError{Name: "raw_text", err: errors.New(`ent: missing required field "ExtractedDocket.raw_text"`)}
	}
	if _, ok := _c.mutation.NormalizedID(); !ok {
		return &ValidationError{Name: "normalized_id", err: errors.New(`ent: missing required field "ExtractedDocket.normalized_id"`)}
	}
	if _, ok := _c.mutation.StateCode(); !ok {
		return &ValidationError{Name: "state_code", err: errors.New(`ent: missing required field "ExtractedDocket.state_code"`)}
	}
	if v, ok := _c.mutation.StateCode(); ok {
		if err := extracteddocket.StateCodeValidator(v); err != nil {
			return &ValidationError{Name: "state_code", err: fmt.Errorf(`ent: validator failed for field "ExtractedDocket.state_code": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Confidence(); !ok {
		return &ValidationError{Name: "confidence", err: errors.New(`ent: missing required field "ExtractedDocket.confidence"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "ExtractedDocket.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := extracteddocket.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ExtractedDocket.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.MatchType(); !ok {
		return &ValidationError{Name: "match_type", err: errors.New(`ent: missing required field "ExtractedDocket.match_type"`)}
	}
	if v, ok := _c.mutation.MatchType(); ok {
		if err := extracteddocket.MatchTypeValidator(v); err != nil {
			return &ValidationError{Name: "match_type", err: fmt.Errorf(`ent: validator failed for field "ExtractedDocket.match_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.FuzzyScore(); !ok {
		return &ValidationError{Name: "fuzzy_score", err: errors.New(`ent: missing required field "ExtractedDocket.fuzzy_score"`)}
	}
	if len(_c.mutation.HearingIDs()) == 0 {
		return &ValidationError{Name: "hearing", err: errors.New(`ent: missing required edge "ExtractedDocket.hearing"`)}
	}
	return nil
}

func (_c *ExtractedDocketCreate) sqlSave(ctx context.Context) (*ExtractedDocket, error) {
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
			return nil, fmt.Errorf("unexpected ExtractedDocket.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ExtractedDocketCreate) createSpec() (*ExtractedDocket, *sqlgraph.CreateSpec) {
	var (
		_node = &ExtractedDocket{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(extracteddocket.Table, sqlgraph.NewFieldSpec(extracteddocket.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(extracteddocket.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(extracteddocket.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.RawText(); ok {
		_spec.SetField(extracteddocket.FieldRawText, field.TypeString, value)
		_node.RawText = value
	}
	if value, ok := _c.mutation.NormalizedID(); ok {
		_spec.SetField(extracteddocket.FieldNormalizedID, field.TypeString, value)
		_node.NormalizedID = value
	}
	if value, ok := _c.mutation.StateCode(); ok {
		_spec.SetField(extracteddocket.FieldStateCode, field.TypeString, value)
		_node.StateCode = value
	}
	if value, ok := _c.mutation.Year(); ok {
		_spec.SetField(extracteddocket.FieldYear, field.TypeInt, value)
		_node.Year = &value
	}
	if value, ok := _c.mutation.CaseNumber(); ok {
		_spec.SetField(extracteddocket.FieldCaseNumber, field.TypeString, value)
		_node.CaseNumber = value
	}
	if value, ok := _c.mutation.Suffix(); ok {
		_spec.SetField(extracteddocket.FieldSuffix, field.TypeString, value)
		_node.Suffix = value
	}
	if value, ok := _c.mutation.Sector(); ok {
		_spec.SetField(extracteddocket.FieldSector, field.TypeString, value)
		_node.Sector = value
	}
	if value, ok := _c.mutation.Confidence(); ok {
		_spec.SetField(extracteddocket.FieldConfidence, field.TypeFloat64, value)
		_node.Confidence = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(extracteddocket.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.MatchType(); ok {
		_spec.SetField(extracteddocket.FieldMatchType, field.TypeEnum, value)
		_node.MatchType = value
	}
	if value, ok := _c.mutation.TriggerPhrase(); ok {
		_spec.SetField(extracteddocket.FieldTriggerPhrase, field.TypeString, value)
		_node.TriggerPhrase = value
	}
	if value, ok := _c.mutation.FuzzyScore(); ok {
		_spec.SetField(extracteddocket.FieldFuzzyScore, field.TypeFloat64, value)
		_node.FuzzyScore = value
	}
	if value, ok := _c.mutation.ContextBefore(); ok {
		_spec.SetField(extracteddocket.FieldContextBefore, field.TypeString, value)
		_node.ContextBefore = value
	}
	if value, ok := _c.mutation.ContextAfter(); ok {
		_spec.SetField(extracteddocket.FieldContextAfter, field.TypeString, value)
		_node.ContextAfter = value
	}
	if value, ok := _c.mutation.SuggestedCorrection(); ok {
		_spec.SetField(extracteddocket.FieldSuggestedCorrection, field.TypeString, value)
		_node.SuggestedCorrection = value
	}
	if nodes := _c.mutation.HearingIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   extracteddocket.HearingTable,
			Columns: []string{extracteddocket.HearingColumn},
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
	if nodes := _c.mutation.KnownDocketIDs(); len(nodes) > 0 {
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
		_node.KnownDocketID = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// ExtractedDocketCreateBulk is the builder for creating many ExtractedDocket entities in bulk.
type ExtractedDocketCreateBulk struct {
	config
	err      error
	builders []*ExtractedDocketCreate
}

// Save creates the ExtractedDocket entities in the database.
func (_c *ExtractedDocketCreateBulk) Save(ctx context.Context) ([]*ExtractedDocket, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ExtractedDocket, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ExtractedDocketMutation)
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
func (_c *ExtractedDocketCreateBulk) SaveX(ctx context.Context) []*ExtractedDocket {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ExtractedDocketCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ExtractedDocketCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
