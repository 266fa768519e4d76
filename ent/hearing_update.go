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
	"github.com/canaryscope/canaryscope/ent/extracteddocket"
	"github.com/canaryscope/canaryscope/ent/hearing"
	"github.com/canaryscope/canaryscope/ent/hearingdocket"
	"github.com/canaryscope/canaryscope/ent/hearingtopic"
	"github.com/canaryscope/canaryscope/ent/hearingutility"
	"github.com/canaryscope/canaryscope/ent/pipelinejob"
	"github.com/canaryscope/canaryscope/ent/predicate"
	"github.com/canaryscope/canaryscope/ent/segment"
	"github.com/canaryscope/canaryscope/ent/transcript"
)

// HearingUpdate is the builder for updating Hearing entities.
type HearingUpdate struct {
	config
	hooks    []Hook
	mutation *HearingMutation
}

// Where appends a list predicates to the HearingUpdate builder.
func (_u *HearingUpdate) Where(ps ...predicate.Hearing) *HearingUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *HearingUpdate) SetUpdatedAt(v time.Time) *HearingUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetStateCode sets the "state_code" field.
func (_u *HearingUpdate) SetStateCode(v string) *HearingUpdate {
	_u.mutation.SetStateCode(v)
	return _u
}

// SetNillableStateCode sets the "state_code" field if the given value is not nil.
func (_u *HearingUpdate) SetNillableStateCode(v *string) *HearingUpdate {
	if v != nil {
		_u.SetStateCode(*v)
	}
	return _u
}

// SetExternalID sets the "external_id" field.
func (_u *HearingUpdate) SetExternalID(v string) *HearingUpdate {
	_u.mutation.SetExternalID(v)
	return _u
}

// SetNillableExternalID sets the "external_id" field if the given value is not nil.
func (_u *HearingUpdate) SetNillableExternalID(v *string) *HearingUpdate {
	if v != nil {
		_u.SetExternalID(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *HearingUpdate) SetTitle(v string) *HearingUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *HearingUpdate) SetNillableTitle(v *string) *HearingUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *HearingUpdate) SetDescription(v string) *HearingUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *HearingUpdate) SetNillableDescription(v *string) *HearingUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *HearingUpdate) ClearDescription() *HearingUpdate {
	_u.mutation.ClearDescription()
	return _u
}

// SetHearingDate sets the "hearing_date" field.
func (_u *HearingUpdate) SetHearingDate(v time.Time) *HearingUpdate {
	_u.mutation.SetHearingDate(v)
	return _u
}

// SetNillableHearingDate sets the "hearing_date" field if the given value is not nil.
func (_u *HearingUpdate) SetNillableHearingDate(v *time.Time) *HearingUpdate {
	if v != nil {
		_u.SetHearingDate(*v)
	}
	return _u
}

// ClearHearingDate clears the value of the "hearing_date" field.
func (_u *HearingUpdate) ClearHearingDate() *HearingUpdate {
	_u.mutation.ClearHearingDate()
	return _u
}

// SetHearingType sets the "hearing_type" field.
func (_u *HearingUpdate) SetHearingType(v string) *HearingUpdate {
	_u.mutation.SetHearingType(v)
	return _u
}

// SetNillableHearingType sets the "hearing_type" field if the given value is not nil.
func (_u *HearingUpdate) SetNillableHearingType(v *string) *HearingUpdate {
	if v != nil {
		_u.SetHearingType(*v)
	}
	return _u
}

// ClearHearingType clears the value of the "hearing_type" field.
func (_u *HearingUpdate) ClearHearingType() *HearingUpdate {
	_u.mutation.ClearHearingType()
	return _u
}

// SetUtilityName sets the "utility_name" field.
func (_u *HearingUpdate) SetUtilityName(v string) *HearingUpdate {
	_u.mutation.SetUtilityName(v)
	return _u
}

// SetNillableUtilityName sets the "utility_name" field if the given value is not nil.
func (_u *HearingUpdate) SetNillableUtilityName(v *string) *HearingUpdate {
	if v != nil {
		_u.SetUtilityName(*v)
	}
	return _u
}

// ClearUtilityName clears the value of the "utility_name" field.
func (_u *HearingUpdate) ClearUtilityName() *HearingUpdate {
	_u.mutation.ClearUtilityName()
	return _u
}

// SetDocketNumbers sets the "docket_numbers" field.
func (_u *HearingUpdate) SetDocketNumbers(v []string) *HearingUpdate {
	_u.mutation.SetDocketNumbers(v)
	return _u
}

// AppendDocketNumbers appends value to the "docket_numbers" field.
func (_u *HearingUpdate) AppendDocketNumbers(v []string) *HearingUpdate {
	_u.mutation.AppendDocketNumbers(v)
	return _u
}

// ClearDocketNumbers clears the value of the "docket_numbers" field.
func (_u *HearingUpdate) ClearDocketNumbers() *HearingUpdate {
	_u.mutation.ClearDocketNumbers()
	return _u
}

// SetSourceURL sets the "source_url" field.
func (_u *HearingUpdate) SetSourceURL(v string) *HearingUpdate {
	_u.mutation.SetSourceURL(v)
	return _u
}

// SetNillableSourceURL sets the "source_url" field if the given value is not nil.
func (_u *HearingUpdate) SetNillableSourceURL(v *string) *HearingUpdate {
	if v != nil {
		_u.SetSourceURL(*v)
	}
	return _u
}

// ClearSourceURL clears the value of the "source_url" field.
func (_u *HearingUpdate) ClearSourceURL() *HearingUpdate {
	_u.mutation.ClearSourceURL()
	return _u
}

// SetMediaURL sets the "media_url" field.
func (_u *HearingUpdate) SetMediaURL(v string) *HearingUpdate {
	_u.mutation.SetMediaURL(v)
	return _u
}

// SetNillableMediaURL sets the "media_url" field if the given value is not nil.
func (_u *HearingUpdate) SetNillableMediaURL(v *string) *HearingUpdate {
	if v != nil {
		_u.SetMediaURL(*v)
	}
	return _u
}

// ClearMediaURL clears the value of the "media_url" field.
func (_u *HearingUpdate) ClearMediaURL() *HearingUpdate {
	_u.mutation.ClearMediaURL()
	return _u
}

// SetDurationSeconds sets the "duration_seconds" field.
func (_u *HearingUpdate) SetDurationSeconds(v float64) *HearingUpdate {
	_u.mutation.ResetDurationSeconds()
	_u.mutation.SetDurationSeconds(v)
	return _u
}

// SetNillableDurationSeconds sets the "duration_seconds" field if the given value is not nil.
func (_u *HearingUpdate) SetNillableDurationSeconds(v *float64) *HearingUpdate {
	if v != nil {
		_u.SetDurationSeconds(*v)
	}
	return _u
}

// AddDurationSeconds adds value to the "duration_seconds" field.
func (_u *HearingUpdate) AddDurationSeconds(v float64) *HearingUpdate {
	_u.mutation.AddDurationSeconds(v)
	return _u
}

// ClearDurationSeconds clears the value of the "duration_seconds" field.
func (_u *HearingUpdate) ClearDurationSeconds() *HearingUpdate {
	_u.mutation.ClearDurationSeconds()
	return _u
}

// SetStatus sets the "status" field.
func (_u *HearingUpdate) SetStatus(v hearing.Status) *HearingUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *HearingUpdate) SetNillableStatus(v *hearing.Status) *HearingUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetTranscriptID sets the "transcript" edge to the Transcript entity by ID.
func (_u *HearingUpdate) SetTranscriptID(id string) *HearingUpdate {
	_u.mutation.SetTranscriptID(id)
	return _u
}

// SetNillableTranscriptID sets the "transcript" edge to the Transcript entity by ID if the given value is not nil.
func (_u *HearingUpdate) SetNillableTranscriptID(id *string) *HearingUpdate {
	if id != nil {
		_u = _u.SetTranscriptID(*id)
	}
	return _u
}

// SetTranscript sets the "transcript" edge to the Transcript entity.
func (_u *HearingUpdate) SetTranscript(v *Transcript) *HearingUpdate {
	return _u.SetTranscriptID(v.ID)
}

// AddSegmentIDs adds the "segments" edge to the Segment entity by IDs.
func (_u *HearingUpdate) AddSegmentIDs(ids ...string) *HearingUpdate {
	_u.mutation.AddSegmentIDs(ids...)
	return _u
}

// AddSegments adds the "segments" edges to the Segment entity.
func (_u *HearingUpdate) AddSegments(v ...*Segment) *HearingUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddSegmentIDs(ids...)
}

// SetAnalysisID sets the "analysis" edge to the Analysis entity by ID.
func (_u *HearingUpdate) SetAnalysisID(id string) *HearingUpdate {
	_u.mutation.SetAnalysisID(id)
	return _u
}

// SetNillableAnalysisID sets the "analysis" edge to the Analysis entity by ID if the given value is not nil.
func (_u *HearingUpdate) SetNillableAnalysisID(id *string) *HearingUpdate {
	if id != nil {
		_u = _u.SetAnalysisID(*id)
	}
	return _u
}

// SetAnalysis sets the "analysis" edge to the Analysis entity.
func (_u *HearingUpdate) SetAnalysis(v *Analysis) *HearingUpdate {
	return _u.SetAnalysisID(v.ID)
}

// AddPipelineJobIDs adds the "pipeline_jobs" edge to the PipelineJob entity by IDs.
func (_u *HearingUpdate) AddPipelineJobIDs(ids ...string) *HearingUpdate {
	_u.mutation.AddPipelineJobIDs(ids...)
	return _u
}

// AddPipelineJobs adds the "pipeline_jobs" edges to the PipelineJob entity.
func (_u *HearingUpdate) AddPipelineJobs(v ...*PipelineJob) *HearingUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddPipelineJobIDs(ids...)
}

// AddHearingDocketIDs adds the "hearing_dockets" edge to the HearingDocket entity by IDs.
func (_u *HearingUpdate) AddHearingDocketIDs(ids ...string) *HearingUpdate {
	_u.mutation.AddHearingDocketIDs(ids...)
	return _u
}

// AddHearingDockets adds the "hearing_dockets" edges to the HearingDocket entity.
func (_u *HearingUpdate) AddHearingDockets(v ...*HearingDocket) *HearingUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddHearingDocketIDs(ids...)
}

// AddExtractedDocketIDs adds the "extracted_dockets" edge to the ExtractedDocket entity by IDs.
func (_u *HearingUpdate) AddExtractedDocketIDs(ids ...string) *HearingUpdate {
	_u.mutation.AddExtractedDocketIDs(ids...)
	return _u
}

// AddExtractedDockets adds the "extracted_dockets" edges to the ExtractedDocket entity.
func (_u *HearingUpdate) AddExtractedDockets(v ...*ExtractedDocket) *HearingUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddExtractedDocketIDs(ids...)
}

// AddHearingUtilityIDs adds the "hearing_utilities" edge to the HearingUtility entity by IDs.
func (_u *HearingUpdate) AddHearingUtilityIDs(ids ...string) *HearingUpdate {
	_u.mutation.AddHearingUtilityIDs(ids...)
	return _u
}

// AddHearingUtilities adds the "hearing_utilities" edges to the HearingUtility entity.
func (_u *HearingUpdate) AddHearingUtilities(v ...*HearingUtility) *HearingUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddHearingUtilityIDs(ids...)
}

// AddHearingTopicIDs adds the "hearing_topics" edge to the HearingTopic entity by IDs.
func (_u *HearingUpdate) AddHearingTopicIDs(ids ...string) *HearingUpdate {
	_u.mutation.AddHearingTopicIDs(ids...)
	return _u
}

// AddHearingTopics adds the "hearing_topics" edges to the HearingTopic entity.
func (_u *HearingUpdate) AddHearingTopics(v ...*HearingTopic) *HearingUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddHearingTopicIDs(ids...)
}

// Mutation returns the HearingMutation object of the builder.
func (_u *HearingUpdate) Mutation() *HearingMutation {
	return _u.mutation
}

// ClearTranscript clears the "transcript" edge to the Transcript entity.
func (_u *HearingUpdate) ClearTranscript() *HearingUpdate {
	_u.mutation.ClearTranscript()
	return _u
}

// ClearSegments clears all "segments" edges to the Segment entity.
func (_u *HearingUpdate) ClearSegments() *HearingUpdate {
	_u.mutation.ClearSegments()
	return _u
}

// RemoveSegmentIDs removes the "segments" edge to Segment entities by IDs.
func (_u *HearingUpdate) RemoveSegmentIDs(ids ...string) *HearingUpdate {
	_u.mutation.RemoveSegmentIDs(ids...)
	return _u
}

// RemoveSegments removes "segments" edges to Segment entities.
func (_u *HearingUpdate) RemoveSegments(v ...*Segment) *HearingUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveSegmentIDs(ids...)
}

// ClearAnalysis clears the "analysis" edge to the Analysis entity.
func (_u *HearingUpdate) ClearAnalysis() *HearingUpdate {
	_u.mutation.ClearAnalysis()
	return _u
}

// ClearPipelineJobs clears all "pipeline_jobs" edges to the PipelineJob entity.
func (_u *HearingUpdate) ClearPipelineJobs() *HearingUpdate {
	_u.mutation.ClearPipelineJobs()
	return _u
}

// RemovePipelineJobIDs removes the "pipeline_jobs" edge to PipelineJob entities by IDs.
func (_u *HearingUpdate) RemovePipelineJobIDs(ids ...string) *HearingUpdate {
	_u.mutation.RemovePipelineJobIDs(ids...)
	return _u
}

// RemovePipelineJobs removes "pipeline_jobs" edges to PipelineJob entities.
func (_u *HearingUpdate) RemovePipelineJobs(v ...*PipelineJob) *HearingUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemovePipelineJobIDs(ids...)
}

// ClearHearingDockets clears all "hearing_dockets" edges to the HearingDocket entity.
func (_u *HearingUpdate) ClearHearingDockets() *HearingUpdate {
	_u.mutation.ClearHearingDockets()
	return _u
}

// RemoveHearingDocketIDs removes the "hearing_dockets" edge to HearingDocket entities by IDs.
func (_u *HearingUpdate) RemoveHearingDocketIDs(ids ...string) *HearingUpdate {
	_u.mutation.RemoveHearingDocketIDs(ids...)
	return _u
}

// RemoveHearingDockets removes "hearing_dockets" edges to HearingDocket entities.
func (_u *HearingUpdate) RemoveHearingDockets(v ...*HearingDocket) *HearingUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveHearingDocketIDs(ids...)
}

// ClearExtractedDockets clears all "extracted_dockets" edges to the ExtractedDocket entity.
func (_u *HearingUpdate) ClearExtractedDockets() *HearingUpdate {
	_u.mutation.ClearExtractedDockets()
	return _u
}

// RemoveExtractedDocketIDs removes the "extracted_dockets" edge to ExtractedDocket entities by IDs.
func (_u *HearingUpdate) RemoveExtractedDocketIDs(ids ...string) *HearingUpdate {
	_u.mutation.RemoveExtractedDocketIDs(ids...)
	return _u
}

// RemoveExtractedDockets removes "extracted_dockets" edges to ExtractedDocket entities.
func (_u *HearingUpdate) RemoveExtractedDockets(v ...*ExtractedDocket) *HearingUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveExtractedDocketIDs(ids...)
}

// ClearHearingUtilities clears all "hearing_utilities" edges to the HearingUtility entity.
func (_u *HearingUpdate) ClearHearingUtilities() *HearingUpdate {
	_u.mutation.ClearHearingUtilities()
	return _u
}

// RemoveHearingUtilityIDs removes the "hearing_utilities" edge to HearingUtility entities by IDs.
func (_u *HearingUpdate) RemoveHearingUtilityIDs(ids ...string) *HearingUpdate {
	_u.mutation.RemoveHearingUtilityIDs(ids...)
	return _u
}

// RemoveHearingUtilities removes "hearing_utilities" edges to HearingUtility entities.
func (_u *HearingUpdate) RemoveHearingUtilities(v ...*HearingUtility) *HearingUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveHearingUtilityIDs(ids...)
}

// ClearHearingTopics clears all "hearing_topics" edges to the HearingTopic entity.
func (_u *HearingUpdate) ClearHearingTopics() *HearingUpdate {
	_u.mutation.ClearHearingTopics()
	return _u
}

// RemoveHearingTopicIDs removes the "hearing_topics" edge to HearingTopic entities by IDs.
func (_u *HearingUpdate) RemoveHearingTopicIDs(ids ...string) *HearingUpdate {
	_u.mutation.RemoveHearingTopicIDs(ids...)
	return _u
}

// RemoveHearingTopics removes "hearing_topics" edges to HearingTopic entities.
func (_u *HearingUpdate) RemoveHearingTopics(v ...*HearingTopic) *HearingUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveHearingTopicIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *HearingUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *HearingUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *HearingUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *HearingUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *HearingUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := hearing.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *HearingUpdate) check() error {
	if v, ok := _u.mutation.StateCode(); ok {
		if err := hearing.StateCodeValidator(v); err != nil {
			return &ValidationError{Name: "state_code", err: fmt.Errorf(`ent: validator failed for field "Hearing.state_code": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := hearing.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Hearing.status": %w`, err)}
		}
	}
	if _u.mutation.SourceCleared() && len(_u.mutation.SourceIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Hearing.source"`)
	}
	return nil
}

func (_u *HearingUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(hearing.Table, hearing.Columns, sqlgraph.NewFieldSpec(hearing.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(hearing.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.StateCode(); ok {
		_spec.SetField(hearing.FieldStateCode, field.TypeString, value)
	}
	if value, ok := _u.mutation.ExternalID(); ok {
		_spec.SetField(hearing.FieldExternalID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(hearing.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(hearing.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(hearing.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.HearingDate(); ok {
		_spec.SetField(hearing.FieldHearingDate, field.TypeTime, value)
	}
	if _u.mutation.HearingDateCleared() {
		_spec.ClearField(hearing.FieldHearingDate, field.TypeTime)
	}
	if value, ok := _u.mutation.HearingType(); ok {
		_spec.SetField(hearing.FieldHearingType, field.TypeString, value)
	}
	if _u.mutation.HearingTypeCleared() {
		_spec.ClearField(hearing.FieldHearingType, field.TypeString)
	}
	if value, ok := _u.mutation.UtilityName(); ok {
		_spec.SetField(hearing.FieldUtilityName, field.TypeString, value)
	}
	if _u.mutation.UtilityNameCleared() {
		_spec.ClearField(hearing.FieldUtilityName, field.TypeString)
	}
	if value, ok := _u.mutation.DocketNumbers(); ok {
		_spec.SetField(hearing.FieldDocketNumbers, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedDocketNumbers(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, hearing.FieldDocketNumbers, value)
		})
	}
	if _u.mutation.DocketNumbersCleared() {
		_spec.ClearField(hearing.FieldDocketNumbers, field.TypeJSON)
	}
	if value, ok := _u.mutation.SourceURL(); ok {
		_spec.SetField(hearing.FieldSourceURL, field.TypeString, value)
	}
	if _u.mutation.SourceURLCleared() {
		_spec.ClearField(hearing.FieldSourceURL, field.TypeString)
	}
	if value, ok := _u.mutation.MediaURL(); ok {
		_spec.SetField(hearing.FieldMediaURL, field.TypeString, value)
	}
	if _u.mutation.MediaURLCleared() {
		_spec.ClearField(hearing.FieldMediaURL, field.TypeString)
	}
	if value, ok := _u.mutation.DurationSeconds(); ok {
		_spec.SetField(hearing.FieldDurationSeconds, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedDurationSeconds(); ok {
		_spec.AddField(hearing.FieldDurationSeconds, field.TypeFloat64, value)
	}
	if _u.mutation.DurationSecondsCleared() {
		_spec.ClearField(hearing.FieldDurationSeconds, field.TypeFloat64)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(hearing.FieldStatus, field.TypeEnum, value)
	}
	if _u.mutation.TranscriptCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TranscriptIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.SegmentsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedSegmentsIDs(); len(nodes) > 0 && !_u.mutation.SegmentsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SegmentsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.AnalysisCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AnalysisIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.PipelineJobsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedPipelineJobsIDs(); len(nodes) > 0 && !_u.mutation.PipelineJobsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.PipelineJobsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.HearingDocketsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedHearingDocketsIDs(); len(nodes) > 0 && !_u.mutation.HearingDocketsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.HearingDocketsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ExtractedDocketsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedExtractedDocketsIDs(); len(nodes) > 0 && !_u.mutation.ExtractedDocketsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ExtractedDocketsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.HearingUtilitiesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedHearingUtilitiesIDs(); len(nodes) > 0 && !_u.mutation.HearingUtilitiesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.HearingUtilitiesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.HearingTopicsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedHearingTopicsIDs(); len(nodes) > 0 && !_u.mutation.HearingTopicsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.HearingTopicsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{hearing.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// HearingUpdateOne is the builder for updating a single Hearing entity.
type HearingUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *HearingMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *HearingUpdateOne) SetUpdatedAt(v time.Time) *HearingUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetStateCode sets the "state_code" field.
func (_u *HearingUpdateOne) SetStateCode(v string) *HearingUpdateOne {
	_u.mutation.SetStateCode(v)
	return _u
}

// SetNillableStateCode sets the "state_code" field if the given value is not nil.
func (_u *HearingUpdateOne) SetNillableStateCode(v *string) *HearingUpdateOne {
	if v != nil {
		_u.SetStateCode(*v)
	}
	return _u
}

// SetExternalID sets the "external_id" field.
func (_u *HearingUpdateOne) SetExternalID(v string) *HearingUpdateOne {
	_u.mutation.SetExternalID(v)
	return _u
}

// SetNillableExternalID sets the "external_id" field if the given value is not nil.
func (_u *HearingUpdateOne) SetNillableExternalID(v *string) *HearingUpdateOne {
	if v != nil {
		_u.SetExternalID(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *HearingUpdateOne) SetTitle(v string) *HearingUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *HearingUpdateOne) SetNillableTitle(v *string) *HearingUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *HearingUpdateOne) SetDescription(v string) *HearingUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *HearingUpdateOne) SetNillableDescription(v *string) *HearingUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *HearingUpdateOne) ClearDescription() *HearingUpdateOne {
	_u.mutation.ClearDescription()
	return _u
}

// SetHearingDate sets the "hearing_date" field.
func (_u *HearingUpdateOne) SetHearingDate(v time.Time) *HearingUpdateOne {
	_u.mutation.SetHearingDate(v)
	return _u
}

// SetNillableHearingDate sets the "hearing_date" field if the given value is not nil.
func (_u *HearingUpdateOne) SetNillableHearingDate(v *time.Time) *HearingUpdateOne {
	if v != nil {
		_u.SetHearingDate(*v)
	}
	return _u
}

// ClearHearingDate clears the value of the "hearing_date" field.
func (_u *HearingUpdateOne) ClearHearingDate() *HearingUpdateOne {
	_u.mutation.ClearHearingDate()
	return _u
}

// SetHearingType sets the "hearing_type" field.
func (_u *HearingUpdateOne) SetHearingType(v string) *HearingUpdateOne {
	_u.mutation.SetHearingType(v)
	return _u
}

// SetNillableHearingType sets the "hearing_type" field if the given value is not nil.
func (_u *HearingUpdateOne) SetNillableHearingType(v *string) *HearingUpdateOne {
	if v != nil {
		_u.SetHearingType(*v)
	}
	return _u
}

// ClearHearingType clears the value of the "hearing_type" field.
func (_u *HearingUpdateOne) ClearHearingType() *HearingUpdateOne {
	_u.mutation.ClearHearingType()
	return _u
}

// SetUtilityName sets the "utility_name" field.
func (_u *HearingUpdateOne) SetUtilityName(v string) *HearingUpdateOne {
	_u.mutation.SetUtilityName(v)
	return _u
}

// SetNillableUtilityName sets the "utility_name" field if the given value is not nil.
func (_u *HearingUpdateOne) SetNillableUtilityName(v *string) *HearingUpdateOne {
	if v != nil {
		_u.SetUtilityName(*v)
	}
	return _u
}

// ClearUtilityName clears the value of the "utility_name" field.
func (_u *HearingUpdateOne) ClearUtilityName() *HearingUpdateOne {
	_u.mutation.ClearUtilityName()
	return _u
}

// SetDocketNumbers sets the "docket_numbers" field.
func (_u *HearingUpdateOne) SetDocketNumbers(v []string) *HearingUpdateOne {
	_u.mutation.SetDocketNumbers(v)
	return _u
}

// AppendDocketNumbers appends value to the "docket_numbers" field.
func (_u *HearingUpdateOne) AppendDocketNumbers(v []string) *HearingUpdateOne {
	_u.mutation.AppendDocketNumbers(v)
	return _u
}

// ClearDocketNumbers clears the value of the "docket_numbers" field.
func (_u *HearingUpdateOne) ClearDocketNumbers() *HearingUpdateOne {
	_u.mutation.ClearDocketNumbers()
	return _u
}

// SetSourceURL sets the "source_url" field.
func (_u *HearingUpdateOne) SetSourceURL(v string) *HearingUpdateOne {
	_u.mutation.SetSourceURL(v)
	return _u
}

// SetNillableSourceURL sets the "source_url" field if the given value is not nil.
func (_u *HearingUpdateOne) SetNillableSourceURL(v *string) *HearingUpdateOne {
	if v != nil {
		_u.SetSourceURL(*v)
	}
	return _u
}

// ClearSourceURL clears the value of the "source_url" field.
func (_u *HearingUpdateOne) ClearSourceURL() *HearingUpdateOne {
	_u.mutation.ClearSourceURL()
	return _u
}

// SetMediaURL sets the "media_url" field.
func (_u *HearingUpdateOne) SetMediaURL(v string) *HearingUpdateOne {
	_u.mutation.SetMediaURL(v)
	return _u
}

// SetNillableMediaURL sets the "media_url" field if the given value is not nil.
func (_u *HearingUpdateOne) SetNillableMediaURL(v *string) *HearingUpdateOne {
	if v != nil {
		_u.SetMediaURL(*v)
	}
	return _u
}

// ClearMediaURL clears the value of the "media_url" field.
func (_u *HearingUpdateOne) ClearMediaURL() *HearingUpdateOne {
	_u.mutation.ClearMediaURL()
	return _u
}

// SetDurationSeconds sets the "duration_seconds" field.
func (_u *HearingUpdateOne) SetDurationSeconds(v float64) *HearingUpdateOne {
	_u.mutation.ResetDurationSeconds()
	_u.mutation.SetDurationSeconds(v)
	return _u
}

// SetNillableDurationSeconds sets the "duration_seconds" field if the given value is not nil.
func (_u *HearingUpdateOne) SetNillableDurationSeconds(v *float64) *HearingUpdateOne {
	if v != nil {
		_u.SetDurationSeconds(*v)
	}
	return _u
}

// AddDurationSeconds adds value to the "duration_seconds" field.
func (_u *HearingUpdateOne) AddDurationSeconds(v float64) *HearingUpdateOne {
	_u.mutation.AddDurationSeconds(v)
	return _u
}

// ClearDurationSeconds clears the value of the "duration_seconds" field.
func (_u *HearingUpdateOne) ClearDurationSeconds() *HearingUpdateOne {
	_u.mutation.ClearDurationSeconds()
	return _u
}

// SetStatus sets the "status" field.
func (_u *HearingUpdateOne) SetStatus(v hearing.Status) *HearingUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *HearingUpdateOne) SetNillableStatus(v *hearing.Status) *HearingUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetTranscriptID sets the "transcript" edge to the Transcript entity by ID.
func (_u *HearingUpdateOne) SetTranscriptID(id string) *HearingUpdateOne {
	_u.mutation.SetTranscriptID(id)
	return _u
}

// SetNillableTranscriptID sets the "transcript" edge to the Transcript entity by ID if the given value is not nil.
func (_u *HearingUpdateOne) SetNillableTranscriptID(id *string) *HearingUpdateOne {
	if id != nil {
		_u = _u.SetTranscriptID(*id)
	}
	return _u
}

// SetTranscript sets the "transcript" edge to the Transcript entity.
func (_u *HearingUpdateOne) SetTranscript(v *Transcript) *HearingUpdateOne {
	return _u.SetTranscriptID(v.ID)
}

// AddSegmentIDs adds the "segments" edge to the Segment entity by IDs.
func (_u *HearingUpdateOne) AddSegmentIDs(ids ...string) *HearingUpdateOne {
	_u.mutation.AddSegmentIDs(ids...)
	return _u
}

// AddSegments adds the "segments" edges to the Segment entity.
func (_u *HearingUpdateOne) AddSegments(v ...*Segment) *HearingUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddSegmentIDs(ids...)
}

// SetAnalysisID sets the "analysis" edge to the Analysis entity by ID.
func (_u *HearingUpdateOne) SetAnalysisID(id string) *HearingUpdateOne {
	_u.mutation.SetAnalysisID(id)
	return _u
}

// SetNillableAnalysisID sets the "analysis" edge to the Analysis entity by ID if the given value is not nil.
func (_u *HearingUpdateOne) SetNillableAnalysisID(id *string) *HearingUpdateOne {
	if id != nil {
		_u = _u.SetAnalysisID(*id)
	}
	return _u
}

// SetAnalysis sets the "analysis" edge to the Analysis entity.
func (_u *HearingUpdateOne) SetAnalysis(v *Analysis) *HearingUpdateOne {
	return _u.SetAnalysisID(v.ID)
}

// AddPipelineJobIDs adds the "pipeline_jobs" edge to the PipelineJob entity by IDs.
func (_u *HearingUpdateOne) AddPipelineJobIDs(ids ...string) *HearingUpdateOne {
	_u.mutation.AddPipelineJobIDs(ids...)
	return _u
}

// AddPipelineJobs adds the "pipeline_jobs" edges to the PipelineJob entity.
func (_u *HearingUpdateOne) AddPipelineJobs(v ...*PipelineJob) *HearingUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddPipelineJobIDs(ids...)
}

// AddHearingDocketIDs adds the "hearing_dockets" edge to the HearingDocket entity by IDs.
func (_u *HearingUpdateOne) AddHearingDocketIDs(ids ...string) *HearingUpdateOne {
	_u.mutation.AddHearingDocketIDs(ids...)
	return _u
}

// AddHearingDockets adds the "hearing_dockets" edges to the HearingDocket entity.
func (_u *HearingUpdateOne) AddHearingDockets(v ...*HearingDocket) *HearingUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddHearingDocketIDs(ids...)
}

// AddExtractedDocketIDs adds the "extracted_dockets" edge to the ExtractedDocket entity by IDs.
func (_u *HearingUpdateOne) AddExtractedDocketIDs(ids ...string) *HearingUpdateOne {
	_u.mutation.AddExtractedDocketIDs(ids...)
	return _u
}

// AddExtractedDockets adds the "extracted_dockets" edges to the ExtractedDocket entity.
func (_u *HearingUpdateOne) AddExtractedDockets(v ...*ExtractedDocket) *HearingUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddExtractedDocketIDs(ids...)
}

// AddHearingUtilityIDs adds the "hearing_utilities" edge to the HearingUtility entity by IDs.
func (_u *HearingUpdateOne) AddHearingUtilityIDs(ids ...string) *HearingUpdateOne {
	_u.mutation.AddHearingUtilityIDs(ids...)
	return _u
}

// AddHearingUtilities adds the "hearing_utilities" edges to the HearingUtility entity.
func (_u *HearingUpdateOne) AddHearingUtilities(v ...*HearingUtility) *HearingUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddHearingUtilityIDs(ids...)
}

// AddHearingTopicIDs adds the "hearing_topics" edge to the HearingTopic entity by IDs.
func (_u *HearingUpdateOne) AddHearingTopicIDs(ids ...string) *HearingUpdateOne {
	_u.mutation.AddHearingTopicIDs(ids...)
	return _u
}

// AddHearingTopics adds the "hearing_topics" edges to the HearingTopic entity.
func (_u *HearingUpdateOne) AddHearingTopics(v ...*HearingTopic) *HearingUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddHearingTopicIDs(ids...)
}

// Mutation returns the HearingMutation object of the builder.
func (_u *HearingUpdateOne) Mutation() *HearingMutation {
	return _u.mutation
}

// ClearTranscript clears the "transcript" edge to the Transcript entity.
func (_u *HearingUpdateOne) ClearTranscript() *HearingUpdateOne {
	_u.mutation.ClearTranscript()
	return _u
}

// ClearSegments clears all "segments" edges to the Segment entity.
func (_u *HearingUpdateOne) ClearSegments() *HearingUpdateOne {
	_u.mutation.ClearSegments()
	return _u
}

// RemoveSegmentIDs removes the "segments" edge to Segment entities by IDs.
func (_u *HearingUpdateOne) RemoveSegmentIDs(ids ...string) *HearingUpdateOne {
	_u.mutation.RemoveSegmentIDs(ids...)
	return _u
}

// RemoveSegments removes "segments" edges to Segment entities.
func (_u *HearingUpdateOne) RemoveSegments(v ...*Segment) *HearingUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveSegmentIDs(ids...)
}

// ClearAnalysis clears the "analysis" edge to the Analysis entity.
func (_u *HearingUpdateOne) ClearAnalysis() *HearingUpdateOne {
	_u.mutation.ClearAnalysis()
	return _u
}

// ClearPipelineJobs clears all "pipeline_jobs" edges to the PipelineJob entity.
func (_u *HearingUpdateOne) ClearPipelineJobs() *HearingUpdateOne {
	_u.mutation.ClearPipelineJobs()
	return _u
}

// RemovePipelineJobIDs removes the "pipeline_jobs" edge to PipelineJob entities by IDs.
func (_u *HearingUpdateOne) RemovePipelineJobIDs(ids ...string) *HearingUpdateOne {
	_u.mutation.RemovePipelineJobIDs(ids...)
	return _u
}

// RemovePipelineJobs removes "pipeline_jobs" edges to PipelineJob entities.
func (_u *HearingUpdateOne) RemovePipelineJobs(v ...*PipelineJob) *HearingUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemovePipelineJobIDs(ids...)
}

// ClearHearingDockets clears all "hearing_dockets" edges to the HearingDocket entity.
func (_u *HearingUpdateOne) ClearHearingDockets() *HearingUpdateOne {
	_u.mutation.ClearHearingDockets()
	return _u
}

// RemoveHearingDocketIDs removes the "hearing_dockets" edge to HearingDocket entities by IDs.
func (_u *HearingUpdateOne) RemoveHearingDocketIDs(ids ...string) *HearingUpdateOne {
	_u.mutation.RemoveHearingDocketIDs(ids...)
	return _u
}

// RemoveHearingDockets removes "hearing_dockets" edges to HearingDocket entities.
func (_u *HearingUpdateOne) RemoveHearingDockets(v ...*HearingDocket) *HearingUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveHearingDocketIDs(ids...)
}

// ClearExtractedDockets clears all "extracted_dockets" edges to the ExtractedDocket entity.
func (_u *HearingUpdateOne) ClearExtractedDockets() *HearingUpdateOne {
	_u.mutation.ClearExtractedDockets()
	return _u
}

// RemoveExtractedDocketIDs removes the "extracted_dockets" edge to ExtractedDocket entities by IDs.
func (_u *HearingUpdateOne) RemoveExtractedDocketIDs(ids ...string) *HearingUpdateOne {
	_u.mutation.RemoveExtractedDocketIDs(ids...)
	return _u
}

// RemoveExtractedDockets removes "extracted_dockets" edges to ExtractedDocket entities.
func (_u *HearingUpdateOne) RemoveExtractedDockets(v ...*ExtractedDocket) *HearingUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveExtractedDocketIDs(ids...)
}

// ClearHearingUtilities clears all "hearing_utilities" edges to the HearingUtility entity.
func (_u *HearingUpdateOne) ClearHearingUtilities() *HearingUpdateOne {
	_u.mutation.ClearHearingUtilities()
	return _u
}

// RemoveHearingUtilityIDs removes the "hearing_utilities" edge to HearingUtility entities by IDs.
func (_u *HearingUpdateOne) RemoveHearingUtilityIDs(ids ...string) *HearingUpdateOne {
	_u.mutation.RemoveHearingUtilityIDs(ids...)
	return _u
}

// RemoveHearingUtilities removes "hearing_utilities" edges to HearingUtility entities.
func (_u *HearingUpdateOne) RemoveHearingUtilities(v ...*HearingUtility) *HearingUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveHearingUtilityIDs(ids...)
}

// ClearHearingTopics clears all "hearing_topics" edges to the HearingTopic entity.
func (_u *HearingUpdateOne) ClearHearingTopics() *HearingUpdateOne {
	_u.mutation.ClearHearingTopics()
	return _u
}

// RemoveHearingTopicIDs removes the "hearing_topics" edge to HearingTopic entities by IDs.
func (_u *HearingUpdateOne) RemoveHearingTopicIDs(ids ...string) *HearingUpdateOne {
	_u.mutation.RemoveHearingTopicIDs(ids...)
	return _u
}

// RemoveHearingTopics removes "hearing_topics" edges to HearingTopic entities.
func (_u *HearingUpdateOne) RemoveHearingTopics(v ...*HearingTopic) *HearingUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveHearingTopicIDs(ids...)
}

// Where appends a list predicates to the HearingUpdate builder.
func (_u *HearingUpdateOne) Where(ps ...predicate.Hearing) *HearingUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *HearingUpdateOne) Select(field string, fields ...string) *HearingUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Hearing entity.
func (_u *HearingUpdateOne) Save(ctx context.Context) (*Hearing, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *HearingUpdateOne) SaveX(ctx context.Context) *Hearing {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *HearingUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *HearingUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *HearingUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := hearing.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *HearingUpdateOne) check() error {
	if v, ok := _u.mutation.StateCode(); ok {
		if err := hearing.StateCodeValidator(v); err != nil {
			return &ValidationError{Name: "state_code", err: fmt.Errorf(`ent: validator failed for field "Hearing.state_code": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := hearing.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Hearing.status": %w`, err)}
		}
	}
	if _u.mutation.SourceCleared() && len(_u.mutation.SourceIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Hearing.source"`)
	}
	return nil
}

func (_u *HearingUpdateOne) sqlSave(ctx context.Context) (_node *Hearing, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(hearing.Table, hearing.Columns, sqlgraph.NewFieldSpec(hearing.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Hearing.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, hearing.FieldID)
		for _, f := range fields {
			if !hearing.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != hearing.FieldID {
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
		_spec.SetField(hearing.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.StateCode(); ok {
		_spec.SetField(hearing.FieldStateCode, field.TypeString, value)
	}
	if value, ok := _u.mutation.ExternalID(); ok {
		_spec.SetField(hearing.FieldExternalID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(hearing.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(hearing.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(hearing.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.HearingDate(); ok {
		_spec.SetField(hearing.FieldHearingDate, field.TypeTime, value)
	}
	if _u.mutation.HearingDateCleared() {
		_spec.ClearField(hearing.FieldHearingDate, field.TypeTime)
	}
	if value, ok := _u.mutation.HearingType(); ok {
		_spec.SetField(hearing.FieldHearingType, field.TypeString, value)
	}
	if _u.mutation.HearingTypeCleared() {
		_spec.ClearField(hearing.FieldHearingType, field.TypeString)
	}
	if value, ok := _u.mutation.UtilityName(); ok {
		_spec.SetField(hearing.FieldUtilityName, field.TypeString, value)
	}
	if _u.mutation.UtilityNameCleared() {
		_spec.ClearField(hearing.FieldUtilityName, field.TypeString)
	}
	if value, ok := _u.mutation.DocketNumbers(); ok {
		_spec.SetField(hearing.FieldDocketNumbers, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedDocketNumbers(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, hearing.FieldDocketNumbers, value)
		})
	}
	if _u.mutation.DocketNumbersCleared() {
		_spec.ClearField(hearing.FieldDocketNumbers, field.TypeJSON)
	}
	if value, ok := _u.mutation.SourceURL(); ok {
		_spec.SetField(hearing.FieldSourceURL, field.TypeString, value)
	}
	if _u.mutation.SourceURLCleared() {
		_spec.ClearField(hearing.FieldSourceURL, field.TypeString)
	}
	if value, ok := _u.mutation.MediaURL(); ok {
		_spec.SetField(hearing.FieldMediaURL, field.TypeString, value)
	}
	if _u.mutation.MediaURLCleared() {
		_spec.ClearField(hearing.FieldMediaURL, field.TypeString)
	}
	if value, ok := _u.mutation.DurationSeconds(); ok {
		_spec.SetField(hearing.FieldDurationSeconds, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedDurationSeconds(); ok {
		_spec.AddField(hearing.FieldDurationSeconds, field.TypeFloat64, value)
	}
	if _u.mutation.DurationSecondsCleared() {
		_spec.ClearField(hearing.FieldDurationSeconds, field.TypeFloat64)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(hearing.FieldStatus, field.TypeEnum, value)
	}
	if _u.mutation.TranscriptCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TranscriptIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.SegmentsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedSegmentsIDs(); len(nodes) > 0 && !_u.mutation.SegmentsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SegmentsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.AnalysisCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AnalysisIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.PipelineJobsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedPipelineJobsIDs(); len(nodes) > 0 && !_u.mutation.PipelineJobsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.PipelineJobsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.HearingDocketsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedHearingDocketsIDs(); len(nodes) > 0 && !_u.mutation.HearingDocketsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.HearingDocketsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ExtractedDocketsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedExtractedDocketsIDs(); len(nodes) > 0 && !_u.mutation.ExtractedDocketsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ExtractedDocketsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.HearingUtilitiesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedHearingUtilitiesIDs(); len(nodes) > 0 && !_u.mutation.HearingUtilitiesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.HearingUtilitiesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.HearingTopicsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedHearingTopicsIDs(); len(nodes) > 0 && !_u.mutation.HearingTopicsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.HearingTopicsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Hearing{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{hearing.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
