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
	"github.com/canaryscope/canaryscope/ent/extracteddocket"
	"github.com/canaryscope/canaryscope/ent/hearing"
	"github.com/canaryscope/canaryscope/ent/hearingdocket"
	"github.com/canaryscope/canaryscope/ent/hearingtopic"
	"github.com/canaryscope/canaryscope/ent/hearingutility"
	"github.com/canaryscope/canaryscope/ent/pipelinejob"
	"github.com/canaryscope/canaryscope/ent/segment"
	"github.com/canaryscope/canaryscope/ent/source"
	"github.com/canaryscope/canaryscope/ent/transcript"
)

// HearingCreate is the builder for creating a Hearing entity.
type HearingCreate struct {
	config
	mutation *HearingMutation
	hooks    []Hook
}

// SetCreatedAt sets the "created_at" field.
func (_c *HearingCreate) SetCreatedAt(v time.Time) *HearingCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *HearingCreate) SetNillableCreatedAt(v *time.Time) *HearingCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *HearingCreate) SetUpdatedAt(v time.Time) *HearingCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *HearingCreate) SetNillableUpdatedAt(v *time.Time) *HearingCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetSourceID sets the "source_id" field.
func (_c *HearingCreate) SetSourceID(v string) *HearingCreate {
	_c.mutation.SetSourceID(v)
	return _c
}

// SetStateCode sets the "state_code" field.
func (_c *HearingCreate) SetStateCode(v string) *HearingCreate {
	_c.mutation.SetStateCode(v)
	return _c
}

// SetExternalID sets the "external_id" field.
func (_c *HearingCreate) SetExternalID(v string) *HearingCreate {
	_c.mutation.SetExternalID(v)
	return _c
}

// SetTitle sets the "title" field.
func (_c *HearingCreate) SetTitle(v string) *HearingCreate {
	_c.mutation.SetTitle(v)
	return _c
}

// SetDescription sets the "description" field.
func (_c *HearingCreate) SetDescription(v string) *HearingCreate {
	_c.mutation.SetDescription(v)
	return _c
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_c *HearingCreate) SetNillableDescription(v *string) *HearingCreate {
	if v != nil {
		_c.SetDescription(*v)
	}
	return _c
}

// SetHearingDate sets the "hearing_date" field.
func (_c *HearingCreate) SetHearingDate(v time.Time) *HearingCreate {
	_c.mutation.SetHearingDate(v)
	return _c
}

// SetNillableHearingDate sets the "hearing_date" field if the given value is not nil.
func (_c *HearingCreate) SetNillableHearingDate(v *time.Time) *HearingCreate {
	if v != nil {
		_c.SetHearingDate(*v)
	}
	return _c
}

// SetHearingType sets the "hearing_type" field.
func (_c *HearingCreate) SetHearingType(v string) *HearingCreate {
	_c.mutation.SetHearingType(v)
	return _c
}

// SetNillableHearingType sets the "hearing_type" field if the given value is not nil.
func (_c *HearingCreate) SetNillableHearingType(v *string) *HearingCreate {
	if v != nil {
		_c.SetHearingType(*v)
	}
	return _c
}

// SetUtilityName sets the "utility_name" field.
func (_c *HearingCreate) SetUtilityName(v string) *HearingCreate {
	_c.mutation.SetUtilityName(v)
	return _c
}

// SetNillableUtilityName sets the "utility_name" field if the given value is not nil.
func (_c *HearingCreate) SetNillableUtilityName(v *string) *HearingCreate {
	if v != nil {
		_c.SetUtilityName(*v)
	}
	return _c
}

// SetDocketNumbers sets the "docket_numbers" field.
func (_c *HearingCreate) SetDocketNumbers(v []string) *HearingCreate {
	_c.mutation.SetDocketNumbers(v)
	return _c
}

// SetSourceURL sets the "source_url" field.
func (_c *HearingCreate) SetSourceURL(v string) *HearingCreate {
	_c.mutation.SetSourceURL(v)
	return _c
}

// SetNillableSourceURL sets the "source_url" field if the given value is not nil.
func (_c *HearingCreate) SetNillableSourceURL(v *string) *HearingCreate {
	if v != nil {
		_c.SetSourceURL(*v)
	}
	return _c
}

// SetMediaURL sets the "media_url" field.
func (_c *HearingCreate) SetMediaURL(v string) *HearingCreate {
	_c.mutation.SetMediaURL(v)
	return _c
}

// SetNillableMediaURL sets the "media_url" field if the given value is not nil.
func (_c *HearingCreate) SetNillableMediaURL(v *string) *HearingCreate {
	if v != nil {
		_c.SetMediaURL(*v)
	}
	return _c
}

// SetDurationSeconds sets the "duration_seconds" field.
func (_c *HearingCreate) SetDurationSeconds(v float64) *HearingCreate {
	_c.mutation.SetDurationSeconds(v)
	return _c
}

// SetNillableDurationSeconds sets the "duration_seconds" field if the given value is not nil.
func (_c *HearingCreate) SetNillableDurationSeconds(v *float64) *HearingCreate {
	if v != nil {
		_c.SetDurationSeconds(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *HearingCreate) SetStatus(v hearing.Status) *HearingCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *HearingCreate) SetNillableStatus(v *hearing.Status) *HearingCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *HearingCreate) SetID(v string) *HearingCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetSource sets the "source" edge to the Source entity.
func (_c *HearingCreate) SetSource(v *Source) *HearingCreate {
	return _c.SetSourceID(v.ID)
}

// SetTranscriptID sets the "transcript" edge to the Transcript entity by ID.
func (_c *HearingCreate) SetTranscriptID(id string) *HearingCreate {
	_c.mutation.SetTranscriptID(id)
	return _c
}

// SetNillableTranscriptID sets the "transcript" edge to the Transcript entity by ID if the given value is not nil.
func (_c *HearingCreate) SetNillableTranscriptID(id *string) *HearingCreate {
	if id != nil {
		_c = _c.SetTranscriptID(*id)
	}
	return _c
}

// SetTranscript sets the "transcript" edge to the Transcript entity.
func (_c *HearingCreate) SetTranscript(v *Transcript) *HearingCreate {
	return _c.SetTranscriptID(v.ID)
}

// AddSegmentIDs adds the "segments" edge to the Segment entity by IDs.
func (_c *HearingCreate) AddSegmentIDs(ids ...string) *HearingCreate {
	_c.mutation.AddSegmentIDs(ids...)
	return _c
}

// AddSegments adds the "segments" edges to the Segment entity.
func (_c *HearingCreate) AddSegments(v ...*Segment) *HearingCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddSegmentIDs(ids...)
}

// SetAnalysisID sets the "analysis" edge to the Analysis entity by ID.
func (_c *HearingCreate) SetAnalysisID(id string) *HearingCreate {
	_c.mutation.SetAnalysisID(id)
	return _c
}

// SetNillableAnalysisID sets the "analysis" edge to the Analysis entity by ID if the given value is not nil.
func (_c *HearingCreate) SetNillableAnalysisID(id *string) *HearingCreate {
	if id != nil {
		_c = _c.SetAnalysisID(*id)
	}
	return _c
}

// SetAnalysis sets the "analysis" edge to the Analysis entity.
func (_c *HearingCreate) SetAnalysis(v *Analysis) *HearingCreate {
	return _c.SetAnalysisID(v.ID)
}

// AddPipelineJobIDs adds the "pipeline_jobs" edge to the PipelineJob entity by IDs.
func (_c *HearingCreate) AddPipelineJobIDs(ids ...string) *HearingCreate {
	_c.mutation.AddPipelineJobIDs(ids...)
	return _c
}

// AddPipelineJobs adds the "pipeline_jobs" edges to the PipelineJob entity.
func (_c *HearingCreate) AddPipelineJobs(v ...*PipelineJob) *HearingCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddPipelineJobIDs(ids...)
}

// AddHearingDocketIDs adds the "hearing_dockets" edge to the HearingDocket entity by IDs.
func (_c *HearingCreate) AddHearingDocketIDs(ids ...string) *HearingCreate {
	_c.mutation.AddHearingDocketIDs(ids...)
	return _c
}

// AddHearingDockets adds the "hearing_dockets" edges to the HearingDocket entity.
func (_c *HearingCreate) AddHearingDockets(v ...*HearingDocket) *HearingCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddHearingDocketIDs(ids...)
}

// AddExtractedDocketIDs adds the "extracted_dockets" edge to the ExtractedDocket entity by IDs.
func (_c *HearingCreate) AddExtractedDocketIDs(ids ...string) *HearingCreate {
	_c.mutation.AddExtractedDocketIDs(ids...)
	return _c
}

// AddExtractedDockets adds the "extracted_dockets" edges to the ExtractedDocket entity.
func (_c *HearingCreate) AddExtractedDockets(v ...*ExtractedDocket) *HearingCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddExtractedDocketIDs(ids...)
}

// AddHearingUtilityIDs adds the "hearing_utilities" edge to the HearingUtility entity by IDs.
func (_c *HearingCreate) AddHearingUtilityIDs(ids ...string) *HearingCreate {
	_c.mutation.AddHearingUtilityIDs(ids...)
	return _c
}

// AddHearingUtilities adds the "hearing_utilities" edges to the HearingUtility entity.
func (_c *HearingCreate) AddHearingUtilities(v ...*HearingUtility) *HearingCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddHearingUtilityIDs(ids...)
}

// AddHearingTopicIDs adds the "hearing_topics" edge to the HearingTopic entity by IDs.
func (_c *HearingCreate) AddHearingTopicIDs(ids ...string) *HearingCreate {
	_c.mutation.AddHearingTopicIDs(ids...)
	return _c
}

// AddHearingTopics adds the "hearing_topics" edges to the HearingTopic entity.
func (_c *HearingCreate) AddHearingTopics(v ...*HearingTopic) *HearingCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddHearingTopicIDs(ids...)
}

// Mutation returns the HearingMutation object of the builder.
func (_c *HearingCreate) Mutation() *HearingMutation {
	return _c.mutation
}

// Save creates the Hearing in the database.
func (_c *HearingCreate) Save(ctx context.Context) (*Hearing, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *HearingCreate) SaveX(ctx context.Context) *Hearing {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *HearingCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *HearingCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *HearingCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := hearing.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := hearing.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := hearing.DefaultStatus
		_c.mutation.SetStatus(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *HearingCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Hearing.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Hearing.updated_at"`)}
	}
	if _, ok := _c.mutation.SourceID(); !ok {
		return &ValidationError{Name: "source_id", err: errors.New(`ent: missing required field "Hearing.source_id"`)}
	}
	if _, ok := _c.mutation.StateCode(); !ok {
		return &ValidationError{Name: "state_code", err: errors.New(`ent: missing required field "Hearing.state_code"`)}
	}
	if v, ok := _c.mutation.StateCode(); ok {
		if err := hearing.StateCodeValidator(v); err != nil {
			return &ValidationError{Name: "state_code", err: fmt.Errorf(`ent: validator failed for field "Hearing.state_code": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ExternalID(); !ok {
		return &ValidationError{Name: "external_id", err: errors.New(`ent: missing required field "Hearing.external_id"`)}
	}
	if _, ok := _c.mutation.Title(); !ok {
		return &ValidationError{Name: "title", err: errors.New(`ent: missing required field "Hearing.title"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Hearing.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := hearing.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Hearing.status": %w`, err)}
		}
	}
	if len(_c.mutation.SourceIDs()) == 0 {
		return &ValidationError{Name: "source", err: errors.New(`ent: missing required edge "Hearing.source"`)}
	}
	return nil
}

func (_c *HearingCreate) sqlSave(ctx context.Context) (*Hearing, error) {
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
			return nil, fmt.Errorf("unexpected Hearing.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *HearingCreate) createSpec() (*Hearing, *sqlgraph.CreateSpec) {
	var (
		_node = &Hearing{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(hearing.Table, sqlgraph.NewFieldSpec(hearing.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(hearing.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(hearing.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.StateCode(); ok {
		_spec.SetField(hearing.FieldStateCode, field.TypeString, value)
		_node.StateCode = value
	}
	if value, ok := _c.mutation.ExternalID(); ok {
		_spec.SetField(hearing.FieldExternalID, field.TypeString, value)
		_node.ExternalID = value
	}
	if value, ok := _c.mutation.Title(); ok {
		_spec.SetField(hearing.FieldTitle, field.TypeString, value)
		_node.Title = value
	}
	if value, ok := _c.mutation.Description(); ok {
		_spec.SetField(hearing.FieldDescription, field.TypeString, value)
		_node.Description = value
	}
	if value, ok := _c.mutation.HearingDate(); ok {
		_spec.SetField(hearing.FieldHearingDate, field.TypeTime, value)
		_node.HearingDate = &value
	}
	if value, ok := _c.mutation.HearingType(); ok {
		_spec.SetField(hearing.FieldHearingType, field.TypeString, value)
		_node.HearingType = value
	}
	if value, ok := _c.mutation.UtilityName(); ok {
		_spec.SetField(hearing.FieldUtilityName, field.TypeString, value)
		_node.UtilityName = value
	}
	if value, ok := _c.mutation.DocketNumbers(); ok {
		_spec.SetField(hearing.FieldDocketNumbers, field.TypeJSON, value)
		_node.DocketNumbers = value
	}
	if value, ok := _c.mutation.SourceURL(); ok {
		_spec.SetField(hearing.FieldSourceURL, field.TypeString, value)
		_node.SourceURL = value
	}
	if value, ok := _c.mutation.MediaURL(); ok {
		_spec.SetField(hearing.FieldMediaURL, field.TypeString, value)
		_node.MediaURL = value
	}
	if value, ok := _c.mutation.DurationSeconds(); ok {
		_spec.SetField(hearing.FieldDurationSeconds, field.TypeFloat64, value)
		_node.DurationSeconds = &value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(hearing.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if nodes := _c.mutation.SourceIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   hearing.SourceTable,
			Columns: []string{hearing.SourceColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(source.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.SourceID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.TranscriptIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   hearing.TranscriptTable,
			Columns: []string{hearing.TranscriptColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(transcript.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.SegmentsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   hearing.SegmentsTable,
			Columns: []string{hearing.SegmentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(segment.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.AnalysisIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   hearing.AnalysisTable,
			Columns: []string{hearing.AnalysisColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(analysis.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.PipelineJobsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   hearing.PipelineJobsTable,
			Columns: []string{hearing.PipelineJobsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(pipelinejob.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.HearingDocketsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   hearing.HearingDocketsTable,
			Columns: []string{hearing.HearingDocketsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(hearingdocket.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.ExtractedDocketsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   hearing.ExtractedDocketsTable,
			Columns: []string{hearing.ExtractedDocketsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(extracteddocket.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.HearingUtilitiesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   hearing.HearingUtilitiesTable,
			Columns: []string{hearing.HearingUtilitiesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(hearingutility.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.HearingTopicsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   hearing.HearingTopicsTable,
			Columns: []string{hearing.HearingTopicsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(hearingtopic.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// HearingCreateBulk is the builder for creating many Hearing entities in bulk.
type HearingCreateBulk struct {
	config
	err      error
	builders []*HearingCreate
}

// Save creates the Hearing entities in the database.
func (_c *HearingCreateBulk) Save(ctx context.Context) ([]*Hearing, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Hearing, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*HearingMutation)
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
func (_c *HearingCreateBulk) SaveX(ctx context.Context) []*Hearing {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *HearingCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *HearingCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
