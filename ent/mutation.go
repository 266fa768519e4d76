// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/canaryscope/canaryscope/ent/analysis"
	"github.com/canaryscope/canaryscope/ent/docket"
	"github.com/canaryscope/canaryscope/ent/extracteddocket"
	"github.com/canaryscope/canaryscope/ent/hearing"
	"github.com/canaryscope/canaryscope/ent/hearingdocket"
	"github.com/canaryscope/canaryscope/ent/hearingtopic"
	"github.com/canaryscope/canaryscope/ent/hearingutility"
	"github.com/canaryscope/canaryscope/ent/knowndocket"
	"github.com/canaryscope/canaryscope/ent/pipelinejob"
	"github.com/canaryscope/canaryscope/ent/pipelineschedule"
	"github.com/canaryscope/canaryscope/ent/pipelinestate"
	"github.com/canaryscope/canaryscope/ent/predicate"
	"github.com/canaryscope/canaryscope/ent/segment"
	"github.com/canaryscope/canaryscope/ent/source"
	"github.com/canaryscope/canaryscope/ent/state"
	"github.com/canaryscope/canaryscope/ent/topic"
	"github.com/canaryscope/canaryscope/ent/transcript"
	"github.com/canaryscope/canaryscope/ent/utility"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeAnalysis         = "Analysis"
	TypeDocket           = "Docket"
	TypeExtractedDocket  = "ExtractedDocket"
	TypeHearing          = "Hearing"
	TypeHearingDocket    = "HearingDocket"
	TypeHearingTopic     = "HearingTopic"
	TypeHearingUtility   = "HearingUtility"
	TypeKnownDocket      = "KnownDocket"
	TypePipelineJob      = "PipelineJob"
	TypePipelineSchedule = "PipelineSchedule"
	TypePipelineState    = "PipelineState"
	TypeSegment          = "Segment"
	TypeSource           = "Source"
	TypeState            = "State"
	TypeTopic            = "Topic"
	TypeTranscript       = "Transcript"
	TypeUtility          = "Utility"
)

// AnalysisMutation represents an operation that mutates the Analysis nodes in the graph.
type AnalysisMutation struct {
	config
	op                          Op
	typ                         string
	id                          *string
	created_at                  *time.Time
	updated_at                  *time.Time
	summary                     *string
	one_sentence_summary        *string
	participants                *[]map[string]interface{}
	appendparticipants          []map[string]interface{}
	issues                      *[]string
	appendissues                []string
	commitments                 *[]string
	appendcommitments           []string
	vulnerabilities             *[]string
	appendvulnerabilities       []string
	commissioner_concerns       *[]string
	appendcommissioner_concerns []string
	commissioner_mood           *analysis.CommissionerMood
	public_sentiment            *analysis.PublicSentiment
	likely_outcome              *string
	outcome_confidence          *float64
	addoutcome_confidence       *float64
	risk_factors                *[]string
	appendrisk_factors          []string
	action_items                *[]string
	appendaction_items          []string
	quotes                      *[]map[string]interface{}
	appendquotes                []map[string]interface{}
	topics                      *[]map[string]interface{}
	appendtopics                []map[string]interface{}
	utilities                   *[]map[string]interface{}
	appendutilities             []map[string]interface{}
	dockets                     *[]string
	appenddockets               []string
	raw_output                  *map[string]interface{}
	model                       *string
	cost_usd                    *float64
	addcost_usd                 *float64
	clearedFields               map[string]struct{}
	hearing                     *string
	clearedhearing              bool
	done                        bool
	oldValue                    func(context.Context) (*Analysis, error)
	predicates                  []predicate.Analysis
}

var _ ent.Mutation = (*AnalysisMutation)(nil)

// analysisOption allows management of the mutation configuration using functional options.
type analysisOption func(*AnalysisMutation)

// newAnalysisMutation creates new mutation for the Analysis entity.
func newAnalysisMutation(c config, op Op, opts ...analysisOption) *AnalysisMutation {
	m := &AnalysisMutation{
		config:        c,
		op:            op,
		typ:           TypeAnalysis,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAnalysisID sets the ID field of the mutation.
func withAnalysisID(id string) analysisOption {
	return func(m *AnalysisMutation) {
		var (
			err   error
			once  sync.Once
			value *Analysis
		)
		m.oldValue = func(ctx context.Context) (*Analysis, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Analysis.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAnalysis sets the old Analysis of the mutation.
func withAnalysis(node *Analysis) analysisOption {
	return func(m *AnalysisMutation) {
		m.oldValue = func(context.Context) (*Analysis, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AnalysisMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AnalysisMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Analysis entities.
func (m *AnalysisMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AnalysisMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AnalysisMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Analysis.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *AnalysisMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *AnalysisMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Analysis entity.
// If the Analysis object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnalysisMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *AnalysisMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *AnalysisMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *AnalysisMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Analysis entity.
// If the Analysis object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnalysisMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *AnalysisMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetHearingID sets the "hearing_id" field.
func (m *AnalysisMutation) SetHearingID(s string) {
	m.hearing = &s
}

// HearingID returns the value of the "hearing_id" field in the mutation.
func (m *AnalysisMutation) HearingID() (r string, exists bool) {
	v := m.hearing
	if v == nil {
		return
	}
	return *v, true
}

// OldHearingID returns the old "hearing_id" field's value of the Analysis entity.
// If the Analysis object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnalysisMutation) OldHearingID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldHearingID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldHearingID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldHearingID: %w", err)
	}
	return oldValue.HearingID, nil
}

// ResetHearingID resets all changes to the "hearing_id" field.
func (m *AnalysisMutation) ResetHearingID() {
	m.hearing = nil
}

// SetSummary sets the "summary" field.
func (m *AnalysisMutation) SetSummary(s string) {
	m.summary = &s
}

// Summary returns the value of the "summary" field in the mutation.
func (m *AnalysisMutation) Summary() (r string, exists bool) {
	v := m.summary
	if v == nil {
		return
	}
	return *v, true
}

// OldSummary returns the old "summary" field's value of the Analysis entity.
// If the Analysis object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnalysisMutation) OldSummary(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSummary is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSummary requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSummary: %w", err)
	}
	return oldValue.Summary, nil
}

// ClearSummary clears the value of the "summary" field.
func (m *AnalysisMutation) ClearSummary() {
	m.summary = nil
	m.clearedFields[analysis.FieldSummary] = struct{}{}
}

// SummaryCleared returns if the "summary" field was cleared in this mutation.
func (m *AnalysisMutation) SummaryCleared() bool {
	_, ok := m.clearedFields[analysis.FieldSummary]
	return ok
}

// ResetSummary resets all changes to the "summary" field.
func (m *AnalysisMutation) ResetSummary() {
	m.summary = nil
	delete(m.clearedFields, analysis.FieldSummary)
}

// SetOneSentenceSummary sets the "one_sentence_summary" field.
func (m *AnalysisMutation) SetOneSentenceSummary(s string) {
	m.one_sentence_summary = &s
}

// OneSentenceSummary returns the value of the "one_sentence_summary" field in the mutation.
func (m *AnalysisMutation) OneSentenceSummary() (r string, exists bool) {
	v := m.one_sentence_summary
	if v == nil {
		return
	}
	return *v, true
}

// OldOneSentenceSummary returns the old "one_sentence_summary" field's value of the Analysis entity.
// If the Analysis object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnalysisMutation) OldOneSentenceSummary(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOneSentenceSummary is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOneSentenceSummary requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOneSentenceSummary: %w", err)
	}
	return oldValue.OneSentenceSummary, nil
}

// ClearOneSentenceSummary clears the value of the "one_sentence_summary" field.
func (m *AnalysisMutation) ClearOneSentenceSummary() {
	m.one_sentence_summary = nil
	m.clearedFields[analysis.FieldOneSentenceSummary] = struct{}{}
}

// OneSentenceSummaryCleared returns if the "one_sentence_summary" field was cleared in this mutation.
func (m *AnalysisMutation) OneSentenceSummaryCleared() bool {
	_, ok := m.clearedFields[analysis.FieldOneSentenceSummary]
	return ok
}

// ResetOneSentenceSummary resets all changes to the "one_sentence_summary" field.
func (m *AnalysisMutation) ResetOneSentenceSummary() {
	m.one_sentence_summary = nil
	delete(m.clearedFields, analysis.FieldOneSentenceSummary)
}

// SetParticipants sets the "participants" field.
func (m *AnalysisMutation) SetParticipants(value []map[string]interface{}) {
	m.participants = &value
	m.appendparticipants = nil
}

// Participants returns the value of the "participants" field in the mutation.
func (m *AnalysisMutation) Participants() (r []map[string]interface{}, exists bool) {
	v := m.participants
	if v == nil {
		return
	}
	return *v, true
}

// OldParticipants returns the old "participants" field's value of the Analysis entity.
// If the Analysis object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnalysisMutation) OldParticipants(ctx context.Context) (v []map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldParticipants is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldParticipants requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldParticipants: %w", err)
	}
	return oldValue.Participants, nil
}

// AppendParticipants adds value to the "participants" field.
func (m *AnalysisMutation) AppendParticipants(value []map[string]interface{}) {
	m.appendparticipants = append(m.appendparticipants, value...)
}

// AppendedParticipants returns the list of values that were appended to the "participants" field in this mutation.
func (m *AnalysisMutation) AppendedParticipants() ([]map[string]interface{}, bool) {
	if len(m.appendparticipants) == 0 {
		return nil, false
	}
	return m.appendparticipants, true
}

// ClearParticipants clears the value of the "participants" field.
func (m *AnalysisMutation) ClearParticipants() {
	m.participants = nil
	m.appendparticipants = nil
	m.clearedFields[analysis.FieldParticipants] = struct{}{}
}

// ParticipantsCleared returns if the "participants" field was cleared in this mutation.
func (m *AnalysisMutation) ParticipantsCleared() bool {
	_, ok := m.clearedFields[analysis.FieldParticipants]
	return ok
}

// ResetParticipants resets all changes to the "participants" field.
func (m *AnalysisMutation) ResetParticipants() {
	m.participants = nil
	m.appendparticipants = nil
	delete(m.clearedFields, analysis.FieldParticipants)
}

// SetIssues sets the "issues" field.
func (m *AnalysisMutation) SetIssues(s []string) {
	m.issues = &s
	m.appendissues = nil
}

// Issues returns the value of the "issues" field in the mutation.
func (m *AnalysisMutation) Issues() (r []string, exists bool) {
	v := m.issues
	if v == nil {
		return
	}
	return *v, true
}

// OldIssues returns the old "issues" field's value of the Analysis entity.
// If the Analysis object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnalysisMutation) OldIssues(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIssues is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIssues requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIssues: %w", err)
	}
	return oldValue.Issues, nil
}

// AppendIssues adds s to the "issues" field.
func (m *AnalysisMutation) AppendIssues(s []string) {
	m.appendissues = append(m.appendissues, s...)
}

// AppendedIssues returns the list of values that were appended to the "issues" field in this mutation.
func (m *AnalysisMutation) AppendedIssues() ([]string, bool) {
	if len(m.appendissues) == 0 {
		return nil, false
	}
	return m.appendissues, true
}

// ClearIssues clears the value of the "issues" field.
func (m *AnalysisMutation) ClearIssues() {
	m.issues = nil
	m.appendissues = nil
	m.clearedFields[analysis.FieldIssues] = struct{}{}
}

// IssuesCleared returns if the "issues" field was cleared in this mutation.
func (m *AnalysisMutation) IssuesCleared() bool {
	_, ok := m.clearedFields[analysis.FieldIssues]
	return ok
}

// ResetIssues resets all changes to the "issues" field.
func (m *AnalysisMutation) ResetIssues() {
	m.issues = nil
	m.appendissues = nil
	delete(m.clearedFields, analysis.FieldIssues)
}

// SetCommitments sets the "commitments" field.
func (m *AnalysisMutation) SetCommitments(s []string) {
	m.commitments = &s
	m.appendcommitments = nil
}

// Commitments returns the value of the "commitments" field in the mutation.
func (m *AnalysisMutation) Commitments() (r []string, exists bool) {
	v := m.commitments
	if v == nil {
		return
	}
	return *v, true
}

// OldCommitments returns the old "commitments" field's value of the Analysis entity.
// If the Analysis object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnalysisMutation) OldCommitments(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCommitments is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCommitments requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCommitments: %w", err)
	}
	return oldValue.Commitments, nil
}

// AppendCommitments adds s to the "commitments" field.
func (m *AnalysisMutation) AppendCommitments(s []string) {
	m.appendcommitments = append(m.appendcommitments, s...)
}

// AppendedCommitments returns the list of values that were appended to the "commitments" field in this mutation.
func (m *AnalysisMutation) AppendedCommitments() ([]string, bool) {
	if len(m.appendcommitments) == 0 {
		return nil, false
	}
	return m.appendcommitments, true
}

// ClearCommitments clears the value of the "commitments" field.
func (m *AnalysisMutation) ClearCommitments() {
	m.commitments = nil
	m.appendcommitments = nil
	m.clearedFields[analysis.FieldCommitments] = struct{}{}
}

// CommitmentsCleared returns if the "commitments" field was cleared in this mutation.
func (m *AnalysisMutation) CommitmentsCleared() bool {
	_, ok := m.clearedFields[analysis.FieldCommitments]
	return ok
}

// ResetCommitments resets all changes to the "commitments" field.
func (m *AnalysisMutation) ResetCommitments() {
	m.commitments = nil
	m.appendcommitments = nil
	delete(m.clearedFields, analysis.FieldCommitments)
}

// SetVulnerabilities sets the "vulnerabilities" field.
func (m *AnalysisMutation) SetVulnerabilities(s []string) {
	m.vulnerabilities = &s
	m.appendvulnerabilities = nil
}

// Vulnerabilities returns the value of the "vulnerabilities" field in the mutation.
func (m *AnalysisMutation) Vulnerabilities() (r []string, exists bool) {
	v := m.vulnerabilities
	if v == nil {
		return
	}
	return *v, true
}

// OldVulnerabilities returns the old "vulnerabilities" field's value of the Analysis entity.
// If the Analysis object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnalysisMutation) OldVulnerabilities(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVulnerabilities is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVulnerabilities requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVulnerabilities: %w", err)
	}
	return oldValue.Vulnerabilities, nil
}

// AppendVulnerabilities adds s to the "vulnerabilities" field.
func (m *AnalysisMutation) AppendVulnerabilities(s []string) {
	m.appendvulnerabilities = append(m.appendvulnerabilities, s...)
}

// AppendedVulnerabilities returns the list of values that were appended to the "vulnerabilities" field in this mutation.
func (m *AnalysisMutation) AppendedVulnerabilities() ([]string, bool) {
	if len(m.appendvulnerabilities) == 0 {
		return nil, false
	}
	return m.appendvulnerabilities, true
}

// ClearVulnerabilities clears the value of the "vulnerabilities" field.
func (m *AnalysisMutation) ClearVulnerabilities() {
	m.vulnerabilities = nil
	m.appendvulnerabilities = nil
	m.clearedFields[analysis.FieldVulnerabilities] = struct{}{}
}

// VulnerabilitiesCleared returns if the "vulnerabilities" field was cleared in this mutation.
func (m *AnalysisMutation) VulnerabilitiesCleared() bool {
	_, ok := m.clearedFields[analysis.FieldVulnerabilities]
	return ok
}

// ResetVulnerabilities resets all changes to the "vulnerabilities" field.
func (m *AnalysisMutation) ResetVulnerabilities() {
	m.vulnerabilities = nil
	m.appendvulnerabilities = nil
	delete(m.clearedFields, analysis.FieldVulnerabilities)
}

// SetCommissionerConcerns sets the "commissioner_concerns" field.
func (m *AnalysisMutation) SetCommissionerConcerns(s []string) {
	m.commissioner_concerns = &s
	m.appendcommissioner_concerns = nil
}

// CommissionerConcerns returns the value of the "commissioner_concerns" field in the mutation.
func (m *AnalysisMutation) CommissionerConcerns() (r []string, exists bool) {
	v := m.commissioner_concerns
	if v == nil {
		return
	}
	return *v, true
}

// OldCommissionerConcerns returns the old "commissioner_concerns" field's value of the Analysis entity.
// If the Analysis object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnalysisMutation) OldCommissionerConcerns(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCommissionerConcerns is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCommissionerConcerns requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCommissionerConcerns: %w", err)
	}
	return oldValue.CommissionerConcerns, nil
}

// AppendCommissionerConcerns adds s to the "commissioner_concerns" field.
func (m *AnalysisMutation) AppendCommissionerConcerns(s []string) {
	m.appendcommissioner_concerns = append(m.appendcommissioner_concerns, s...)
}

// AppendedCommissionerConcerns returns the list of values that were appended to the "commissioner_concerns" field in this mutation.
func (m *AnalysisMutation) AppendedCommissionerConcerns() ([]string, bool) {
	if len(m.appendcommissioner_concerns) == 0 {
		return nil, false
	}
	return m.appendcommissioner_concerns, true
}

// ClearCommissionerConcerns clears the value of the "commissioner_concerns" field.
func (m *AnalysisMutation) ClearCommissionerConcerns() {
	m.commissioner_concerns = nil
	m.appendcommissioner_concerns = nil
	m.clearedFields[analysis.FieldCommissionerConcerns] = struct{}{}
}

// CommissionerConcernsCleared returns if the "commissioner_concerns" field was cleared in this mutation.
func (m *AnalysisMutation) CommissionerConcernsCleared() bool {
	_, ok := m.clearedFields[analysis.FieldCommissionerConcerns]
	return ok
}

// ResetCommissionerConcerns resets all changes to the "commissioner_concerns" field.
func (m *AnalysisMutation) ResetCommissionerConcerns() {
	m.commissioner_concerns = nil
	m.appendcommissioner_concerns = nil
	delete(m.clearedFields, analysis.FieldCommissionerConcerns)
}

// SetCommissionerMood sets the "commissioner_mood" field.
func (m *AnalysisMutation) SetCommissionerMood(am analysis.CommissionerMood) {
	m.commissioner_mood = &am
}

// CommissionerMood returns the value of the "commissioner_mood" field in the mutation.
func (m *AnalysisMutation) CommissionerMood() (r analysis.CommissionerMood, exists bool) {
	v := m.commissioner_mood
	if v == nil {
		return
	}
	return *v, true
}

// OldCommissionerMood returns the old "commissioner_mood" field's value of the Analysis entity.
// If the Analysis object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnalysisMutation) OldCommissionerMood(ctx context.Context) (v analysis.CommissionerMood, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCommissionerMood is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCommissionerMood requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCommissionerMood: %w", err)
	}
	return oldValue.CommissionerMood, nil
}

// ClearCommissionerMood clears the value of the "commissioner_mood" field.
func (m *AnalysisMutation) ClearCommissionerMood() {
	m.commissioner_mood = nil
	m.clearedFields[analysis.FieldCommissionerMood] = struct{}{}
}

// CommissionerMoodCleared returns if the "commissioner_mood" field was cleared in this mutation.
func (m *AnalysisMutation) CommissionerMoodCleared() bool {
	_, ok := m.clearedFields[analysis.FieldCommissionerMood]
	return ok
}

// ResetCommissionerMood resets all changes to the "commissioner_mood" field.
func (m *AnalysisMutation) ResetCommissionerMood() {
	m.commissioner_mood = nil
	delete(m.clearedFields, analysis.FieldCommissionerMood)
}

// SetPublicSentiment sets the "public_sentiment" field.
func (m *AnalysisMutation) SetPublicSentiment(as analysis.PublicSentiment) {
	m.public_sentiment = &as
}

// PublicSentiment returns the value of the "public_sentiment" field in the mutation.
func (m *AnalysisMutation) PublicSentiment() (r analysis.PublicSentiment, exists bool) {
	v := m.public_sentiment
	if v == nil {
		return
	}
	return *v, true
}

// OldPublicSentiment returns the old "public_sentiment" field's value of the Analysis entity.
// If the Analysis object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnalysisMutation) OldPublicSentiment(ctx context.Context) (v analysis.PublicSentiment, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPublicSentiment is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPublicSentiment requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPublicSentiment: %w", err)
	}
	return oldValue.PublicSentiment, nil
}

// ClearPublicSentiment clears the value of the "public_sentiment" field.
func (m *AnalysisMutation) ClearPublicSentiment() {
	m.public_sentiment = nil
	m.clearedFields[analysis.FieldPublicSentiment] = struct{}{}
}

// PublicSentimentCleared returns if the "public_sentiment" field was cleared in this mutation.
func (m *AnalysisMutation) PublicSentimentCleared() bool {
	_, ok := m.clearedFields[analysis.FieldPublicSentiment]
	return ok
}

// ResetPublicSentiment resets all changes to the "public_sentiment" field.
func (m *AnalysisMutation) ResetPublicSentiment() {
	m.public_sentiment = nil
	delete(m.clearedFields, analysis.FieldPublicSentiment)
}

// SetLikelyOutcome sets the "likely_outcome" field.
func (m *AnalysisMutation) SetLikelyOutcome(s string) {
	m.likely_outcome = &s
}

// LikelyOutcome returns the value of the "likely_outcome" field in the mutation.
func (m *AnalysisMutation) LikelyOutcome() (r string, exists bool) {
	v := m.likely_outcome
	if v == nil {
		return
	}
	return *v, true
}

// OldLikelyOutcome returns the old "likely_outcome" field's value of the Analysis entity.
// If the Analysis object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnalysisMutation) OldLikelyOutcome(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLikelyOutcome is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLikelyOutcome requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLikelyOutcome: %w", err)
	}
	return oldValue.LikelyOutcome, nil
}

// ClearLikelyOutcome clears the value of the "likely_outcome" field.
func (m *AnalysisMutation) ClearLikelyOutcome() {
	m.likely_outcome = nil
	m.clearedFields[analysis.FieldLikelyOutcome] = struct{}{}
}

// LikelyOutcomeCleared returns if the "likely_outcome" field was cleared in this mutation.
func (m *AnalysisMutation) LikelyOutcomeCleared() bool {
	_, ok := m.clearedFields[analysis.FieldLikelyOutcome]
	return ok
}

// ResetLikelyOutcome resets all changes to the "likely_outcome" field.
func (m *AnalysisMutation) ResetLikelyOutcome() {
	m.likely_outcome = nil
	delete(m.clearedFields, analysis.FieldLikelyOutcome)
}

// SetOutcomeConfidence sets the "outcome_confidence" field.
func (m *AnalysisMutation) SetOutcomeConfidence(f float64) {
	m.outcome_confidence = &f
	m.addoutcome_confidence = nil
}

// OutcomeConfidence returns the value of the "outcome_confidence" field in the mutation.
func (m *AnalysisMutation) OutcomeConfidence() (r float64, exists bool) {
	v := m.outcome_confidence
	if v == nil {
		return
	}
	return *v, true
}

// OldOutcomeConfidence returns the old "outcome_confidence" field's value of the Analysis entity.
// If the Analysis object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnalysisMutation) OldOutcomeConfidence(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOutcomeConfidence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOutcomeConfidence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOutcomeConfidence: %w", err)
	}
	return oldValue.OutcomeConfidence, nil
}

// AddOutcomeConfidence adds f to the "outcome_confidence" field.
func (m *AnalysisMutation) AddOutcomeConfidence(f float64) {
	if m.addoutcome_confidence != nil {
		*m.addoutcome_confidence += f
	} else {
		m.addoutcome_confidence = &f
	}
}

// AddedOutcomeConfidence returns the value that was added to the "outcome_confidence" field in this mutation.
func (m *AnalysisMutation) AddedOutcomeConfidence() (r float64, exists bool) {
	v := m.addoutcome_confidence
	if v == nil {
		return
	}
	return *v, true
}

// ClearOutcomeConfidence clears the value of the "outcome_confidence" field.
func (m *AnalysisMutation) ClearOutcomeConfidence() {
	m.outcome_confidence = nil
	m.addoutcome_confidence = nil
	m.clearedFields[analysis.FieldOutcomeConfidence] = struct{}{}
}

// OutcomeConfidenceCleared returns if the "outcome_confidence" field was cleared in this mutation.
func (m *AnalysisMutation) OutcomeConfidenceCleared() bool {
	_, ok := m.clearedFields[analysis.FieldOutcomeConfidence]
	return ok
}

// ResetOutcomeConfidence resets all changes to the "outcome_confidence" field.
func (m *AnalysisMutation) ResetOutcomeConfidence() {
	m.outcome_confidence = nil
	m.addoutcome_confidence = nil
	delete(m.clearedFields, analysis.FieldOutcomeConfidence)
}

// SetRiskFactors sets the "risk_factors" field.
func (m *AnalysisMutation) SetRiskFactors(s []string) {
	m.risk_factors = &s
	m.appendrisk_factors = nil
}

// RiskFactors returns the value of the "risk_factors" field in the mutation.
func (m *AnalysisMutation) RiskFactors() (r []string, exists bool) {
	v := m.risk_factors
	if v == nil {
		return
	}
	return *v, true
}

// OldRiskFactors returns the old "risk_factors" field's value of the Analysis entity.
// If the Analysis object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnalysisMutation) OldRiskFactors(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRiskFactors is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRiskFactors requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRiskFactors: %w", err)
	}
	return oldValue.RiskFactors, nil
}

// AppendRiskFactors adds s to the "risk_factors" field.
func (m *AnalysisMutation) AppendRiskFactors(s []string) {
	m.appendrisk_factors = append(m.appendrisk_factors, s...)
}

// AppendedRiskFactors returns the list of values that were appended to the "risk_factors" field in this mutation.
func (m *AnalysisMutation) AppendedRiskFactors() ([]string, bool) {
	if len(m.appendrisk_factors) == 0 {
		return nil, false
	}
	return m.appendrisk_factors, true
}

// ClearRiskFactors clears the value of the "risk_factors" field.
func (m *AnalysisMutation) ClearRiskFactors() {
	m.risk_factors = nil
	m.appendrisk_factors = nil
	m.clearedFields[analysis.FieldRiskFactors] = struct{}{}
}

// RiskFactorsCleared returns if the "risk_factors" field was cleared in this mutation.
func (m *AnalysisMutation) RiskFactorsCleared() bool {
	_, ok := m.clearedFields[analysis.FieldRiskFactors]
	return ok
}

// ResetRiskFactors resets all changes to the "risk_factors" field.
func (m *AnalysisMutation) ResetRiskFactors() {
	m.risk_factors = nil
	m.appendrisk_factors = nil
	delete(m.clearedFields, analysis.FieldRiskFactors)
}

// SetActionItems sets the "action_items" field.
func (m *AnalysisMutation) SetActionItems(s []string) {
	m.action_items = &s
	m.appendaction_items = nil
}

// ActionItems returns the value of the "action_items" field in the mutation.
func (m *AnalysisMutation) ActionItems() (r []string, exists bool) {
	v := m.action_items
	if v == nil {
		return
	}
	return *v, true
}

// OldActionItems returns the old "action_items" field's value of the Analysis entity.
// If the Analysis object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnalysisMutation) OldActionItems(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldActionItems is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldActionItems requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldActionItems: %w", err)
	}
	return oldValue.ActionItems, nil
}

// AppendActionItems adds s to the "action_items" field.
func (m *AnalysisMutation) AppendActionItems(s []string) {
	m.appendaction_items = append(m.appendaction_items, s...)
}

// AppendedActionItems returns the list of values that were appended to the "action_items" field in this mutation.
func (m *AnalysisMutation) AppendedActionItems() ([]string, bool) {
	if len(m.appendaction_items) == 0 {
		return nil, false
	}
	return m.appendaction_items, true
}

// ClearActionItems clears the value of the "action_items" field.
func (m *AnalysisMutation) ClearActionItems() {
	m.action_items = nil
	m.appendaction_items = nil
	m.clearedFields[analysis.FieldActionItems] = struct{}{}
}

// ActionItemsCleared returns if the "action_items" field was cleared in this mutation.
func (m *AnalysisMutation) ActionItemsCleared() bool {
	_, ok := m.clearedFields[analysis.FieldActionItems]
	return ok
}

// ResetActionItems resets all changes to the "action_items" field.
func (m *AnalysisMutation) ResetActionItems() {
	m.action_items = nil
	m.appendaction_items = nil
	delete(m.clearedFields, analysis.FieldActionItems)
}

// SetQuotes sets the "quotes" field.
func (m *AnalysisMutation) SetQuotes(value []map[string]interface{}) {
	m.quotes = &value
	m.appendquotes = nil
}

// Quotes returns the value of the "quotes" field in the mutation.
func (m *AnalysisMutation) Quotes() (r []map[string]interface{}, exists bool) {
	v := m.quotes
	if v == nil {
		return
	}
	return *v, true
}

// OldQuotes returns the old "quotes" field's value of the Analysis entity.
// If the Analysis object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnalysisMutation) OldQuotes(ctx context.Context) (v []map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQuotes is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQuotes requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQuotes: %w", err)
	}
	return oldValue.Quotes, nil
}

// AppendQuotes adds value to the "quotes" field.
func (m *AnalysisMutation) AppendQuotes(value []map[string]interface{}) {
	m.appendquotes = append(m.appendquotes, value...)
}

// AppendedQuotes returns the list of values that were appended to the "quotes" field in this mutation.
func (m *AnalysisMutation) AppendedQuotes() ([]map[string]interface{}, bool) {
	if len(m.appendquotes) == 0 {
		return nil, false
	}
	return m.appendquotes, true
}

// ClearQuotes clears the value of the "quotes" field.
func (m *AnalysisMutation) ClearQuotes() {
	m.quotes = nil
	m.appendquotes = nil
	m.clearedFields[analysis.FieldQuotes] = struct{}{}
}

// QuotesCleared returns if the "quotes" field was cleared in this mutation.
func (m *AnalysisMutation) QuotesCleared() bool {
	_, ok := m.clearedFields[analysis.FieldQuotes]
	return ok
}

// ResetQuotes resets all changes to the "quotes" field.
func (m *AnalysisMutation) ResetQuotes() {
	m.quotes = nil
	m.appendquotes = nil
	delete(m.clearedFields, analysis.FieldQuotes)
}

// SetTopics sets the "topics" field.
func (m *AnalysisMutation) SetTopics(value []map[string]interface{}) {
	m.topics = &value
	m.appendtopics = nil
}

// Topics returns the value of the "topics" field in the mutation.
func (m *AnalysisMutation) Topics() (r []map[string]interface{}, exists bool) {
	v := m.topics
	if v == nil {
		return
	}
	return *v, true
}

// OldTopics returns the old "topics" field's value of the Analysis entity.
// If the Analysis object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnalysisMutation) OldTopics(ctx context.Context) (v []map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTopics is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTopics requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTopics: %w", err)
	}
	return oldValue.Topics, nil
}

// AppendTopics adds value to the "topics" field.
func (m *AnalysisMutation) AppendTopics(value []map[string]interface{}) {
	m.appendtopics = append(m.appendtopics, value...)
}

// AppendedTopics returns the list of values that were appended to the "topics" field in this mutation.
func (m *AnalysisMutation) AppendedTopics() ([]map[string]interface{}, bool) {
	if len(m.appendtopics) == 0 {
		return nil, false
	}
	return m.appendtopics, true
}

// ClearTopics clears the value of the "topics" field.
func (m *AnalysisMutation) ClearTopics() {
	m.topics = nil
	m.appendtopics = nil
	m.clearedFields[analysis.FieldTopics] = struct{}{}
}

// TopicsCleared returns if the "topics" field was cleared in this mutation.
func (m *AnalysisMutation) TopicsCleared() bool {
	_, ok := m.clearedFields[analysis.FieldTopics]
	return ok
}

// ResetTopics resets all changes to the "topics" field.
func (m *AnalysisMutation) ResetTopics() {
	m.topics = nil
	m.appendtopics = nil
	delete(m.clearedFields, analysis.FieldTopics)
}

// SetUtilities sets the "utilities" field.
func (m *AnalysisMutation) SetUtilities(value []map[string]interface{}) {
	m.utilities = &value
	m.appendutilities = nil
}

// Utilities returns the value of the "utilities" field in the mutation.
func (m *AnalysisMutation) Utilities() (r []map[string]interface{}, exists bool) {
	v := m.utilities
	if v == nil {
		return
	}
	return *v, true
}

// OldUtilities returns the old "utilities" field's value of the Analysis entity.
// If the Analysis object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnalysisMutation) OldUtilities(ctx context.Context) (v []map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUtilities is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUtilities requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUtilities: %w", err)
	}
	return oldValue.Utilities, nil
}

// AppendUtilities adds value to the "utilities" field.
func (m *AnalysisMutation) AppendUtilities(value []map[string]interface{}) {
	m.appendutilities = append(m.appendutilities, value...)
}

// AppendedUtilities returns the list of values that were appended to the "utilities" field in this mutation.
func (m *AnalysisMutation) AppendedUtilities() ([]map[string]interface{}, bool) {
	if len(m.appendutilities) == 0 {
		return nil, false
	}
	return m.appendutilities, true
}

// ClearUtilities clears the value of the "utilities" field.
func (m *AnalysisMutation) ClearUtilities() {
	m.utilities = nil
	m.appendutilities = nil
	m.clearedFields[analysis.FieldUtilities] = struct{}{}
}

// UtilitiesCleared returns if the "utilities" field was cleared in this mutation.
func (m *AnalysisMutation) UtilitiesCleared() bool {
	_, ok := m.clearedFields[analysis.FieldUtilities]
	return ok
}

// ResetUtilities resets all changes to the "utilities" field.
func (m *AnalysisMutation) ResetUtilities() {
	m.utilities = nil
	m.appendutilities = nil
	delete(m.clearedFields, analysis.FieldUtilities)
}

// SetDockets sets the "dockets" field.
func (m *AnalysisMutation) SetDockets(s []string) {
	m.dockets = &s
	m.appenddockets = nil
}

// Dockets returns the value of the "dockets" field in the mutation.
func (m *AnalysisMutation) Dockets() (r []string, exists bool) {
	v := m.dockets
	if v == nil {
		return
	}
	return *v, true
}

// OldDockets returns the old "dockets" field's value of the Analysis entity.
// If the Analysis object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnalysisMutation) OldDockets(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDockets is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDockets requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDockets: %w", err)
	}
	return oldValue.Dockets, nil
}

// AppendDockets adds s to the "dockets" field.
func (m *AnalysisMutation) AppendDockets(s []string) {
	m.appenddockets = append(m.appenddockets, s...)
}

// AppendedDockets returns the list of values that were appended to the "dockets" field in this mutation.
func (m *AnalysisMutation) AppendedDockets() ([]string, bool) {
	if len(m.appenddockets) == 0 {
		return nil, false
	}
	return m.appenddockets, true
}

// ClearDockets clears the value of the "dockets" field.
func (m *AnalysisMutation) ClearDockets() {
	m.dockets = nil
	m.appenddockets = nil
	m.clearedFields[analysis.FieldDockets] = struct{}{}
}

// DocketsCleared returns if the "dockets" field was cleared in this mutation.
func (m *AnalysisMutation) DocketsCleared() bool {
	_, ok := m.clearedFields[analysis.FieldDockets]
	return ok
}

// ResetDockets resets all changes to the "dockets" field.
func (m *AnalysisMutation) ResetDockets() {
	m.dockets = nil
	m.appenddockets = nil
	delete(m.clearedFields, analysis.FieldDockets)
}

// SetRawOutput sets the "raw_output" field.
func (m *AnalysisMutation) SetRawOutput(value map[string]interface{}) {
	m.raw_output = &value
}

// RawOutput returns the value of the "raw_output" field in the mutation.
func (m *AnalysisMutation) RawOutput() (r map[string]interface{}, exists bool) {
	v := m.raw_output
	if v == nil {
		return
	}
	return *v, true
}

// OldRawOutput returns the old "raw_output" field's value of the Analysis entity.
// If the Analysis object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnalysisMutation) OldRawOutput(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRawOutput is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRawOutput requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRawOutput: %w", err)
	}
	return oldValue.RawOutput, nil
}

// ClearRawOutput clears the value of the "raw_output" field.
func (m *AnalysisMutation) ClearRawOutput() {
	m.raw_output = nil
	m.clearedFields[analysis.FieldRawOutput] = struct{}{}
}

// RawOutputCleared returns if the "raw_output" field was cleared in this mutation.
func (m *AnalysisMutation) RawOutputCleared() bool {
	_, ok := m.clearedFields[analysis.FieldRawOutput]
	return ok
}

// ResetRawOutput resets all changes to the "raw_output" field.
func (m *AnalysisMutation) ResetRawOutput() {
	m.raw_output = nil
	delete(m.clearedFields, analysis.FieldRawOutput)
}

// SetModel sets the "model" field.
func (m *AnalysisMutation) SetModel(s string) {
	m.model = &s
}

// Model returns the value of the "model" field in the mutation.
func (m *AnalysisMutation) Model() (r string, exists bool) {
	v := m.model
	if v == nil {
		return
	}
	return *v, true
}

// OldModel returns the old "model" field's value of the Analysis entity.
// If the Analysis object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnalysisMutation) OldModel(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldModel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldModel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldModel: %w", err)
	}
	return oldValue.Model, nil
}

// ClearModel clears the value of the "model" field.
func (m *AnalysisMutation) ClearModel() {
	m.model = nil
	m.clearedFields[analysis.FieldModel] = struct{}{}
}

// ModelCleared returns if the "model" field was cleared in this mutation.
func (m *AnalysisMutation) ModelCleared() bool {
	_, ok := m.clearedFields[analysis.FieldModel]
	return ok
}

// ResetModel resets all changes to the "model" field.
func (m *AnalysisMutation) ResetModel() {
	m.model = nil
	delete(m.clearedFields, analysis.FieldModel)
}

// SetCostUsd sets the "cost_usd" field.
func (m *AnalysisMutation) SetCostUsd(f float64) {
	m.cost_usd = &f
	m.addcost_usd = nil
}

// CostUsd returns the value of the "cost_usd" field in the mutation.
func (m *AnalysisMutation) CostUsd() (r float64, exists bool) {
	v := m.cost_usd
	if v == nil {
		return
	}
	return *v, true
}

// OldCostUsd returns the old "cost_usd" field's value of the Analysis entity.
// If the Analysis object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnalysisMutation) OldCostUsd(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCostUsd is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCostUsd requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCostUsd: %w", err)
	}
	return oldValue.CostUsd, nil
}

// AddCostUsd adds f to the "cost_usd" field.
func (m *AnalysisMutation) AddCostUsd(f float64) {
	if m.addcost_usd != nil {
		*m.addcost_usd += f
	} else {
		m.addcost_usd = &f
	}
}

// AddedCostUsd returns the value that was added to the "cost_usd" field in this mutation.
func (m *AnalysisMutation) AddedCostUsd() (r float64, exists bool) {
	v := m.addcost_usd
	if v == nil {
		return
	}
	return *v, true
}

// ResetCostUsd resets all changes to the "cost_usd" field.
func (m *AnalysisMutation) ResetCostUsd() {
	m.cost_usd = nil
	m.addcost_usd = nil
}

// ClearHearing clears the "hearing" edge to the Hearing entity.
func (m *AnalysisMutation) ClearHearing() {
	m.clearedhearing = true
	m.clearedFields[analysis.FieldHearingID] = struct{}{}
}

// HearingCleared reports if the "hearing" edge to the Hearing entity was cleared.
func (m *AnalysisMutation) HearingCleared() bool {
	return m.clearedhearing
}

// HearingIDs returns the "hearing" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// HearingID instead. It exists only for internal usage by the builders.
func (m *AnalysisMutation) HearingIDs() (ids []string) {
	if id := m.hearing; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetHearing resets all changes to the "hearing" edge.
func (m *AnalysisMutation) ResetHearing() {
	m.hearing = nil
	m.clearedhearing = false
}

// Where appends a list predicates to the AnalysisMutation builder.
func (m *AnalysisMutation) Where(ps ...predicate.Analysis) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AnalysisMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AnalysisMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Analysis, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AnalysisMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AnalysisMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Analysis).
func (m *AnalysisMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AnalysisMutation) Fields() []string {
	fields := make([]string, 0, 23)
	if m.created_at != nil {
		fields = append(fields, analysis.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, analysis.FieldUpdatedAt)
	}
	if m.hearing != nil {
		fields = append(fields, analysis.FieldHearingID)
	}
	if m.summary != nil {
		fields = append(fields, analysis.FieldSummary)
	}
	if m.one_sentence_summary != nil {
		fields = append(fields, analysis.FieldOneSentenceSummary)
	}
	if m.participants != nil {
		fields = append(fields, analysis.FieldParticipants)
	}
	if m.issues != nil {
		fields = append(fields, analysis.FieldIssues)
	}
	if m.commitments != nil {
		fields = append(fields, analysis.FieldCommitments)
	}
	if m.vulnerabilities != nil {
		fields = append(fields, analysis.FieldVulnerabilities)
	}
	if m.commissioner_concerns != nil {
		fields = append(fields, analysis.FieldCommissionerConcerns)
	}
	if m.commissioner_mood != nil {
		fields = append(fields, analysis.FieldCommissionerMood)
	}
	if m.public_sentiment != nil {
		fields = append(fields, analysis.FieldPublicSentiment)
	}
	if m.likely_outcome != nil {
		fields = append(fields, analysis.FieldLikelyOutcome)
	}
	if m.outcome_confidence != nil {
		fields = append(fields, analysis.FieldOutcomeConfidence)
	}
	if m.risk_factors != nil {
		fields = append(fields, analysis.FieldRiskFactors)
	}
	if m.action_items != nil {
		fields = append(fields, analysis.FieldActionItems)
	}
	if m.quotes != nil {
		fields = append(fields, analysis.FieldQuotes)
	}
	if m.topics != nil {
		fields = append(fields, analysis.FieldTopics)
	}
	if m.utilities != nil {
		fields = append(fields, analysis.FieldUtilities)
	}
	if m.dockets != nil {
		fields = append(fields, analysis.FieldDockets)
	}
	if m.raw_output != nil {
		fields = append(fields, analysis.FieldRawOutput)
	}
	if m.model != nil {
		fields = append(fields, analysis.FieldModel)
	}
	if m.cost_usd != nil {
		fields = append(fields, analysis.FieldCostUsd)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AnalysisMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case analysis.FieldCreatedAt:
		return m.CreatedAt()
	case analysis.FieldUpdatedAt:
		return m.UpdatedAt()
	case analysis.FieldHearingID:
		return m.HearingID()
	case analysis.FieldSummary:
		return m.Summary()
	case analysis.FieldOneSentenceSummary:
		return m.OneSentenceSummary()
	case analysis.FieldParticipants:
		return m.Participants()
	case analysis.FieldIssues:
		return m.Issues()
	case analysis.FieldCommitments:
		return m.Commitments()
	case analysis.FieldVulnerabilities:
		return m.Vulnerabilities()
	case analysis.FieldCommissionerConcerns:
		return m.CommissionerConcerns()
	case analysis.FieldCommissionerMood:
		return m.CommissionerMood()
	case analysis.FieldPublicSentiment:
		return m.PublicSentiment()
	case analysis.FieldLikelyOutcome:
		return m.LikelyOutcome()
	case analysis.FieldOutcomeConfidence:
		return m.OutcomeConfidence()
	case analysis.FieldRiskFactors:
		return m.RiskFactors()
	case analysis.FieldActionItems:
		return m.ActionItems()
	case analysis.FieldQuotes:
		return m.Quotes()
	case analysis.FieldTopics:
		return m.Topics()
	case analysis.FieldUtilities:
		return m.Utilities()
	case analysis.FieldDockets:
		return m.Dockets()
	case analysis.FieldRawOutput:
		return m.RawOutput()
	case analysis.FieldModel:
		return m.Model()
	case analysis.FieldCostUsd:
		return m.CostUsd()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AnalysisMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case analysis.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case analysis.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case analysis.FieldHearingID:
		return m.OldHearingID(ctx)
	case analysis.FieldSummary:
		return m.OldSummary(ctx)
	case analysis.FieldOneSentenceSummary:
		return m.OldOneSentenceSummary(ctx)
	case analysis.FieldParticipants:
		return m.OldParticipants(ctx)
	case analysis.FieldIssues:
		return m.OldIssues(ctx)
	case analysis.FieldCommitments:
		return m.OldCommitments(ctx)
	case analysis.FieldVulnerabilities:
		return m.OldVulnerabilities(ctx)
	case analysis.FieldCommissionerConcerns:
		return m.OldCommissionerConcerns(ctx)
	case analysis.FieldCommissionerMood:
		return m.OldCommissionerMood(ctx)
	case analysis.FieldPublicSentiment:
		return m.OldPublicSentiment(ctx)
	case analysis.FieldLikelyOutcome:
		return m.OldLikelyOutcome(ctx)
	case analysis.FieldOutcomeConfidence:
		return m.OldOutcomeConfidence(ctx)
	case analysis.FieldRiskFactors:
		return m.OldRiskFactors(ctx)
	case analysis.FieldActionItems:
		return m.OldActionItems(ctx)
	case analysis.FieldQuotes:
		return m.OldQuotes(ctx)
	case analysis.FieldTopics:
		return m.OldTopics(ctx)
	case analysis.FieldUtilities:
		return m.OldUtilities(ctx)
	case analysis.FieldDockets:
		return m.OldDockets(ctx)
	case analysis.FieldRawOutput:
		return m.OldRawOutput(ctx)
	case analysis.FieldModel:
		return m.OldModel(ctx)
	case analysis.FieldCostUsd:
		return m.OldCostUsd(ctx)
	}
	return nil, fmt.Errorf("unknown Analysis field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AnalysisMutation) SetField(name string, value ent.Value) error {
	switch name {
	case analysis.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case analysis.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case analysis.FieldHearingID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetHearingID(v)
		return nil
	case analysis.FieldSummary:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSummary(v)
		return nil
	case analysis.FieldOneSentenceSummary:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOneSentenceSummary(v)
		return nil
	case analysis.FieldParticipants:
		v, ok := value.([]map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetParticipants(v)
		return nil
	case analysis.FieldIssues:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIssues(v)
		return nil
	case analysis.FieldCommitments:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCommitments(v)
		return nil
	case analysis.FieldVulnerabilities:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVulnerabilities(v)
		return nil
	case analysis.FieldCommissionerConcerns:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCommissionerConcerns(v)
		return nil
	case analysis.FieldCommissionerMood:
		v, ok := value.(analysis.CommissionerMood)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCommissionerMood(v)
		return nil
	case analysis.FieldPublicSentiment:
		v, ok := value.(analysis.PublicSentiment)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPublicSentiment(v)
		return nil
	case analysis.FieldLikelyOutcome:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLikelyOutcome(v)
		return nil
	case analysis.FieldOutcomeConfidence:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOutcomeConfidence(v)
		return nil
	case analysis.FieldRiskFactors:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRiskFactors(v)
		return nil
	case analysis.FieldActionItems:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetActionItems(v)
		return nil
	case analysis.FieldQuotes:
		v, ok := value.([]map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQuotes(v)
		return nil
	case analysis.FieldTopics:
		v, ok := value.([]map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTopics(v)
		return nil
	case analysis.FieldUtilities:
		v, ok := value.([]map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUtilities(v)
		return nil
	case analysis.FieldDockets:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDockets(v)
		return nil
	case analysis.FieldRawOutput:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRawOutput(v)
		return nil
	case analysis.FieldModel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetModel(v)
		return nil
	case analysis.FieldCostUsd:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCostUsd(v)
		return nil
	}
	return fmt.Errorf("unknown Analysis field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AnalysisMutation) AddedFields() []string {
	var fields []string
	if m.addoutcome_confidence != nil {
		fields = append(fields, analysis.FieldOutcomeConfidence)
	}
	if m.addcost_usd != nil {
		fields = append(fields, analysis.FieldCostUsd)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AnalysisMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case analysis.FieldOutcomeConfidence:
		return m.AddedOutcomeConfidence()
	case analysis.FieldCostUsd:
		return m.AddedCostUsd()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AnalysisMutation) AddField(name string, value ent.Value) error {
	switch name {
	case analysis.FieldOutcomeConfidence:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddOutcomeConfidence(v)
		return nil
	case analysis.FieldCostUsd:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCostUsd(v)
		return nil
	}
	return fmt.Errorf("unknown Analysis numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AnalysisMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(analysis.FieldSummary) {
		fields = append(fields, analysis.FieldSummary)
	}
	if m.FieldCleared(analysis.FieldOneSentenceSummary) {
		fields = append(fields, analysis.FieldOneSentenceSummary)
	}
	if m.FieldCleared(analysis.FieldParticipants) {
		fields = append(fields, analysis.FieldParticipants)
	}
	if m.FieldCleared(analysis.FieldIssues) {
		fields = append(fields, analysis.FieldIssues)
	}
	if m.FieldCleared(analysis.FieldCommitments) {
		fields = append(fields, analysis.FieldCommitments)
	}
	if m.FieldCleared(analysis.FieldVulnerabilities) {
		fields = append(fields, analysis.FieldVulnerabilities)
	}
	if m.FieldCleared(analysis.FieldCommissionerConcerns) {
		fields = append(fields, analysis.FieldCommissionerConcerns)
	}
	if m.FieldCleared(analysis.FieldCommissionerMood) {
		fields = append(fields, analysis.FieldCommissionerMood)
	}
	if m.FieldCleared(analysis.FieldPublicSentiment) {
		fields = append(fields, analysis.FieldPublicSentiment)
	}
	if m.FieldCleared(analysis.FieldLikelyOutcome) {
		fields = append(fields, analysis.FieldLikelyOutcome)
	}
	if m.FieldCleared(analysis.FieldOutcomeConfidence) {
		fields = append(fields, analysis.FieldOutcomeConfidence)
	}
	if m.FieldCleared(analysis.FieldRiskFactors) {
		fields = append(fields, analysis.FieldRiskFactors)
	}
	if m.FieldCleared(analysis.FieldActionItems) {
		fields = append(fields, analysis.FieldActionItems)
	}
	if m.FieldCleared(analysis.FieldQuotes) {
		fields = append(fields, analysis.FieldQuotes)
	}
	if m.FieldCleared(analysis.FieldTopics) {
		fields = append(fields, analysis.FieldTopics)
	}
	if m.FieldCleared(analysis.FieldUtilities) {
		fields = append(fields, analysis.FieldUtilities)
	}
	if m.FieldCleared(analysis.FieldDockets) {
		fields = append(fields, analysis.FieldDockets)
	}
	if m.FieldCleared(analysis.FieldRawOutput) {
		fields = append(fields, analysis.FieldRawOutput)
	}
	if m.FieldCleared(analysis.FieldModel) {
		fields = append(fields, analysis.FieldModel)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AnalysisMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AnalysisMutation) ClearField(name string) error {
	switch name {
	case analysis.FieldSummary:
		m.ClearSummary()
		return nil
	case analysis.FieldOneSentenceSummary:
		m.ClearOneSentenceSummary()
		return nil
	case analysis.FieldParticipants:
		m.ClearParticipants()
		return nil
	case analysis.FieldIssues:
		m.ClearIssues()
		return nil
	case analysis.FieldCommitments:
		m.ClearCommitments()
		return nil
	case analysis.FieldVulnerabilities:
		m.ClearVulnerabilities()
		return nil
	case analysis.FieldCommissionerConcerns:
		m.ClearCommissionerConcerns()
		return nil
	case analysis.FieldCommissionerMood:
		m.ClearCommissionerMood()
		return nil
	case analysis.FieldPublicSentiment:
		m.ClearPublicSentiment()
		return nil
	case analysis.FieldLikelyOutcome:
		m.ClearLikelyOutcome()
		return nil
	case analysis.FieldOutcomeConfidence:
		m.ClearOutcomeConfidence()
		return nil
	case analysis.FieldRiskFactors:
		m.ClearRiskFactors()
		return nil
	case analysis.FieldActionItems:
		m.ClearActionItems()
		return nil
	case analysis.FieldQuotes:
		m.ClearQuotes()
		return nil
	case analysis.FieldTopics:
		m.ClearTopics()
		return nil
	case analysis.FieldUtilities:
		m.ClearUtilities()
		return nil
	case analysis.FieldDockets:
		m.ClearDockets()
		return nil
	case analysis.FieldRawOutput:
		m.ClearRawOutput()
		return nil
	case analysis.FieldModel:
		m.ClearModel()
		return nil
	}
	return fmt.Errorf("unknown Analysis nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AnalysisMutation) ResetField(name string) error {
	switch name {
	case analysis.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case analysis.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case analysis.FieldHearingID:
		m.ResetHearingID()
		return nil
	case analysis.FieldSummary:
		m.ResetSummary()
		return nil
	case analysis.FieldOneSentenceSummary:
		m.ResetOneSentenceSummary()
		return nil
	case analysis.FieldParticipants:
		m.ResetParticipants()
		return nil
	case analysis.FieldIssues:
		m.ResetIssues()
		return nil
	case analysis.FieldCommitments:
		m.ResetCommitments()
		return nil
	case analysis.FieldVulnerabilities:
		m.ResetVulnerabilities()
		return nil
	case analysis.FieldCommissionerConcerns:
		m.ResetCommissionerConcerns()
		return nil
	case analysis.FieldCommissionerMood:
		m.ResetCommissionerMood()
		return nil
	case analysis.FieldPublicSentiment:
		m.ResetPublicSentiment()
		return nil
	case analysis.FieldLikelyOutcome:
		m.ResetLikelyOutcome()
		return nil
	case analysis.FieldOutcomeConfidence:
		m.ResetOutcomeConfidence()
		return nil
	case analysis.FieldRiskFactors:
		m.ResetRiskFactors()
		return nil
	case analysis.FieldActionItems:
		m.ResetActionItems()
		return nil
	case analysis.FieldQuotes:
		m.ResetQuotes()
		return nil
	case analysis.FieldTopics:
		m.ResetTopics()
		return nil
	case analysis.FieldUtilities:
		m.ResetUtilities()
		return nil
	case analysis.FieldDockets:
		m.ResetDockets()
		return nil
	case analysis.FieldRawOutput:
		m.ResetRawOutput()
		return nil
	case analysis.FieldModel:
		m.ResetModel()
		return nil
	case analysis.FieldCostUsd:
		m.ResetCostUsd()
		return nil
	}
	return fmt.Errorf("unknown Analysis field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AnalysisMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.hearing != nil {
		edges = append(edges, analysis.EdgeHearing)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AnalysisMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case analysis.EdgeHearing:
		if id := m.hearing; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AnalysisMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AnalysisMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AnalysisMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedhearing {
		edges = append(edges, analysis.EdgeHearing)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AnalysisMutation) EdgeCleared(name string) bool {
	switch name {
	case analysis.EdgeHearing:
		return m.clearedhearing
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AnalysisMutation) ClearEdge(name string) error {
	switch name {
	case analysis.EdgeHearing:
		m.ClearHearing()
		return nil
	}
	return fmt.Errorf("unknown Analysis unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AnalysisMutation) ResetEdge(name string) error {
	switch name {
	case analysis.EdgeHearing:
		m.ResetHearing()
		return nil
	}
	return fmt.Errorf("unknown Analysis edge %s", name)
}

// DocketMutation represents an operation that mutates the Docket nodes in the graph.
type DocketMutation struct {
	config
	op                     Op
	typ                    string
	id                     *string
	created_at             *time.Time
	updated_at             *time.Time
	state_code             *string
	docket_number          *string
	normalized_id          *string
	title                  *string
	company                *string
	sector                 *string
	status                 *string
	first_seen_at          *time.Time
	last_mentioned_at      *time.Time
	mention_count          *int
	addmention_count       *int
	confidence             *docket.Confidence
	match_score            *float64
	addmatch_score         *float64
	clearedFields          map[string]struct{}
	known_docket           *string
	clearedknown_docket    bool
	hearing_dockets        map[string]struct{}
	removedhearing_dockets map[string]struct{}
	clearedhearing_dockets bool
	done                   bool
	oldValue               func(context.Context) (*Docket, error)
	predicates             []predicate.Docket
}

var _ ent.Mutation = (*DocketMutation)(nil)

// docketOption allows management of the mutation configuration using functional options.
type docketOption func(*DocketMutation)

// newDocketMutation creates new mutation for the Docket entity.
func newDocketMutation(c config, op Op, opts ...docketOption) *DocketMutation {
	m := &DocketMutation{
		config:        c,
		op:            op,
		typ:           TypeDocket,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withDocketID sets the ID field of the mutation.
func withDocketID(id string) docketOption {
	return func(m *DocketMutation) {
		var (
			err   error
			once  sync.Once
			value *Docket
		)
		m.oldValue = func(ctx context.Context) (*Docket, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Docket.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withDocket sets the old Docket of the mutation.
func withDocket(node *Docket) docketOption {
	return func(m *DocketMutation) {
		m.oldValue = func(context.Context) (*Docket, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m DocketMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m DocketMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Docket entities.
func (m *DocketMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *DocketMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *DocketMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Docket.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *DocketMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *DocketMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Docket entity.
// If the Docket object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocketMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *DocketMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *DocketMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *DocketMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Docket entity.
// If the Docket object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocketMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *DocketMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetStateCode sets the "state_code" field.
func (m *DocketMutation) SetStateCode(s string) {
	m.state_code = &s
}

// StateCode returns the value of the "state_code" field in the mutation.
func (m *DocketMutation) StateCode() (r string, exists bool) {
	v := m.state_code
	if v == nil {
		return
	}
	return *v, true
}

// OldStateCode returns the old "state_code" field's value of the Docket entity.
// If the Docket object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocketMutation) OldStateCode(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStateCode is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStateCode requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStateCode: %w", err)
	}
	return oldValue.StateCode, nil
}

// ResetStateCode resets all changes to the "state_code" field.
func (m *DocketMutation) ResetStateCode() {
	m.state_code = nil
}

// SetDocketNumber sets the "docket_number" field.
func (m *DocketMutation) SetDocketNumber(s string) {
	m.docket_number = &s
}

// DocketNumber returns the value of the "docket_number" field in the mutation.
func (m *DocketMutation) DocketNumber() (r string, exists bool) {
	v := m.docket_number
	if v == nil {
		return
	}
	return *v, true
}

// OldDocketNumber returns the old "docket_number" field's value of the Docket entity.
// If the Docket object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocketMutation) OldDocketNumber(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDocketNumber is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDocketNumber requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDocketNumber: %w", err)
	}
	return oldValue.DocketNumber, nil
}

// ResetDocketNumber resets all changes to the "docket_number" field.
func (m *DocketMutation) ResetDocketNumber() {
	m.docket_number = nil
}

// SetNormalizedID sets the "normalized_id" field.
func (m *DocketMutation) SetNormalizedID(s string) {
	m.normalized_id = &s
}

// NormalizedID returns the value of the "normalized_id" field in the mutation.
func (m *DocketMutation) NormalizedID() (r string, exists bool) {
	v := m.normalized_id
	if v == nil {
		return
	}
	return *v, true
}

// OldNormalizedID returns the old "normalized_id" field's value of the Docket entity.
// If the Docket object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocketMutation) OldNormalizedID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNormalizedID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNormalizedID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNormalizedID: %w", err)
	}
	return oldValue.NormalizedID, nil
}

// ResetNormalizedID resets all changes to the "normalized_id" field.
func (m *DocketMutation) ResetNormalizedID() {
	m.normalized_id = nil
}

// SetTitle sets the "title" field.
func (m *DocketMutation) SetTitle(s string) {
	m.title = &s
}

// Title returns the value of the "title" field in the mutation.
func (m *DocketMutation) Title() (r string, exists bool) {
	v := m.title
	if v == nil {
		return
	}
	return *v, true
}

// OldTitle returns the old "title" field's value of the Docket entity.
// If the Docket object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocketMutation) OldTitle(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTitle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTitle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTitle: %w", err)
	}
	return oldValue.Title, nil
}

// ClearTitle clears the value of the "title" field.
func (m *DocketMutation) ClearTitle() {
	m.title = nil
	m.clearedFields[docket.FieldTitle] = struct{}{}
}

// TitleCleared returns if the "title" field was cleared in this mutation.
func (m *DocketMutation) TitleCleared() bool {
	_, ok := m.clearedFields[docket.FieldTitle]
	return ok
}

// ResetTitle resets all changes to the "title" field.
func (m *DocketMutation) ResetTitle() {
	m.title = nil
	delete(m.clearedFields, docket.FieldTitle)
}

// SetCompany sets the "company" field.
func (m *DocketMutation) SetCompany(s string) {
	m.company = &s
}

// Company returns the value of the "company" field in the mutation.
func (m *DocketMutation) Company() (r string, exists bool) {
	v := m.company
	if v == nil {
		return
	}
	return *v, true
}

// OldCompany returns the old "company" field's value of the Docket entity.
// If the Docket object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocketMutation) OldCompany(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompany is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompany requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompany: %w", err)
	}
	return oldValue.Company, nil
}

// ClearCompany clears the value of the "company" field.
func (m *DocketMutation) ClearCompany() {
	m.company = nil
	m.clearedFields[docket.FieldCompany] = struct{}{}
}

// CompanyCleared returns if the "company" field was cleared in this mutation.
func (m *DocketMutation) CompanyCleared() bool {
	_, ok := m.clearedFields[docket.FieldCompany]
	return ok
}

// ResetCompany resets all changes to the "company" field.
func (m *DocketMutation) ResetCompany() {
	m.company = nil
	delete(m.clearedFields, docket.FieldCompany)
}

// SetSector sets the "sector" field.
func (m *DocketMutation) SetSector(s string) {
	m.sector = &s
}

// Sector returns the value of the "sector" field in the mutation.
func (m *DocketMutation) Sector() (r string, exists bool) {
	v := m.sector
	if v == nil {
		return
	}
	return *v, true
}

// OldSector returns the old "sector" field's value of the Docket entity.
// If the Docket object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocketMutation) OldSector(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSector is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSector requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSector: %w", err)
	}
	return oldValue.Sector, nil
}

// ClearSector clears the value of the "sector" field.
func (m *DocketMutation) ClearSector() {
	m.sector = nil
	m.clearedFields[docket.FieldSector] = struct{}{}
}

// SectorCleared returns if the "sector" field was cleared in this mutation.
func (m *DocketMutation) SectorCleared() bool {
	_, ok := m.clearedFields[docket.FieldSector]
	return ok
}

// ResetSector resets all changes to the "sector" field.
func (m *DocketMutation) ResetSector() {
	m.sector = nil
	delete(m.clearedFields, docket.FieldSector)
}

// SetStatus sets the "status" field.
func (m *DocketMutation) SetStatus(s string) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *DocketMutation) Status() (r string, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Docket entity.
// If the Docket object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocketMutation) OldStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ClearStatus clears the value of the "status" field.
func (m *DocketMutation) ClearStatus() {
	m.status = nil
	m.clearedFields[docket.FieldStatus] = struct{}{}
}

// StatusCleared returns if the "status" field was cleared in this mutation.
func (m *DocketMutation) StatusCleared() bool {
	_, ok := m.clearedFields[docket.FieldStatus]
	return ok
}

// ResetStatus resets all changes to the "status" field.
func (m *DocketMutation) ResetStatus() {
	m.status = nil
	delete(m.clearedFields, docket.FieldStatus)
}

// SetFirstSeenAt sets the "first_seen_at" field.
func (m *DocketMutation) SetFirstSeenAt(t time.Time) {
	m.first_seen_at = &t
}

// FirstSeenAt returns the value of the "first_seen_at" field in the mutation.
func (m *DocketMutation) FirstSeenAt() (r time.Time, exists bool) {
	v := m.first_seen_at
	if v == nil {
		return
	}
	return *v, true
}

// OldFirstSeenAt returns the old "first_seen_at" field's value of the Docket entity.
// If the Docket object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocketMutation) OldFirstSeenAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFirstSeenAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFirstSeenAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFirstSeenAt: %w", err)
	}
	return oldValue.FirstSeenAt, nil
}

// ResetFirstSeenAt resets all changes to the "first_seen_at" field.
func (m *DocketMutation) ResetFirstSeenAt() {
	m.first_seen_at = nil
}

// SetLastMentionedAt sets the "last_mentioned_at" field.
func (m *DocketMutation) SetLastMentionedAt(t time.Time) {
	m.last_mentioned_at = &t
}

// LastMentionedAt returns the value of the "last_mentioned_at" field in the mutation.
func (m *DocketMutation) LastMentionedAt() (r time.Time, exists bool) {
	v := m.last_mentioned_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastMentionedAt returns the old "last_mentioned_at" field's value of the Docket entity.
// If the Docket object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocketMutation) OldLastMentionedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastMentionedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastMentionedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastMentionedAt: %w", err)
	}
	return oldValue.LastMentionedAt, nil
}

// ResetLastMentionedAt resets all changes to the "last_mentioned_at" field.
func (m *DocketMutation) ResetLastMentionedAt() {
	m.last_mentioned_at = nil
}

// SetMentionCount sets the "mention_count" field.
func (m *DocketMutation) SetMentionCount(i int) {
	m.mention_count = &i
	m.addmention_count = nil
}

// MentionCount returns the value of the "mention_count" field in the mutation.
func (m *DocketMutation) MentionCount() (r int, exists bool) {
	v := m.mention_count
	if v == nil {
		return
	}
	return *v, true
}

// OldMentionCount returns the old "mention_count" field's value of the Docket entity.
// If the Docket object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocketMutation) OldMentionCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMentionCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMentionCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMentionCount: %w", err)
	}
	return oldValue.MentionCount, nil
}

// AddMentionCount adds i to the "mention_count" field.
func (m *DocketMutation) AddMentionCount(i int) {
	if m.addmention_count != nil {
		*m.addmention_count += i
	} else {
		m.addmention_count = &i
	}
}

// AddedMentionCount returns the value that was added to the "mention_count" field in this mutation.
func (m *DocketMutation) AddedMentionCount() (r int, exists bool) {
	v := m.addmention_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetMentionCount resets all changes to the "mention_count" field.
func (m *DocketMutation) ResetMentionCount() {
	m.mention_count = nil
	m.addmention_count = nil
}

// SetConfidence sets the "confidence" field.
func (m *DocketMutation) SetConfidence(d docket.Confidence) {
	m.confidence = &d
}

// Confidence returns the value of the "confidence" field in the mutation.
func (m *DocketMutation) Confidence() (r docket.Confidence, exists bool) {
	v := m.confidence
	if v == nil {
		return
	}
	return *v, true
}

// OldConfidence returns the old "confidence" field's value of the Docket entity.
// If the Docket object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocketMutation) OldConfidence(ctx context.Context) (v docket.Confidence, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConfidence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConfidence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConfidence: %w", err)
	}
	return oldValue.Confidence, nil
}

// ResetConfidence resets all changes to the "confidence" field.
func (m *DocketMutation) ResetConfidence() {
	m.confidence = nil
}

// SetKnownDocketID sets the "known_docket_id" field.
func (m *DocketMutation) SetKnownDocketID(s string) {
	m.known_docket = &s
}

// KnownDocketID returns the value of the "known_docket_id" field in the mutation.
func (m *DocketMutation) KnownDocketID() (r string, exists bool) {
	v := m.known_docket
	if v == nil {
		return
	}
	return *v, true
}

// OldKnownDocketID returns the old "known_docket_id" field's value of the Docket entity.
// If the Docket object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocketMutation) OldKnownDocketID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldKnownDocketID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldKnownDocketID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldKnownDocketID: %w", err)
	}
	return oldValue.KnownDocketID, nil
}

// ClearKnownDocketID clears the value of the "known_docket_id" field.
func (m *DocketMutation) ClearKnownDocketID() {
	m.known_docket = nil
	m.clearedFields[docket.FieldKnownDocketID] = struct{}{}
}

// KnownDocketIDCleared returns if the "known_docket_id" field was cleared in this mutation.
func (m *DocketMutation) KnownDocketIDCleared() bool {
	_, ok := m.clearedFields[docket.FieldKnownDocketID]
	return ok
}

// ResetKnownDocketID resets all changes to the "known_docket_id" field.
func (m *DocketMutation) ResetKnownDocketID() {
	m.known_docket = nil
	delete(m.clearedFields, docket.FieldKnownDocketID)
}

// SetMatchScore sets the "match_score" field.
func (m *DocketMutation) SetMatchScore(f float64) {
	m.match_score = &f
	m.addmatch_score = nil
}

// MatchScore returns the value of the "match_score" field in the mutation.
func (m *DocketMutation) MatchScore() (r float64, exists bool) {
	v := m.match_score
	if v == nil {
		return
	}
	return *v, true
}

// OldMatchScore returns the old "match_score" field's value of the Docket entity.
// If the Docket object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocketMutation) OldMatchScore(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMatchScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMatchScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMatchScore: %w", err)
	}
	return oldValue.MatchScore, nil
}

// AddMatchScore adds f to the "match_score" field.
func (m *DocketMutation) AddMatchScore(f float64) {
	if m.addmatch_score != nil {
		*m.addmatch_score += f
	} else {
		m.addmatch_score = &f
	}
}

// AddedMatchScore returns the value that was added to the "match_score" field in this mutation.
func (m *DocketMutation) AddedMatchScore() (r float64, exists bool) {
	v := m.addmatch_score
	if v == nil {
		return
	}
	return *v, true
}

// ResetMatchScore resets all changes to the "match_score" field.
func (m *DocketMutation) ResetMatchScore() {
	m.match_score = nil
	m.addmatch_score = nil
}

// ClearKnownDocket clears the "known_docket" edge to the KnownDocket entity.
func (m *DocketMutation) ClearKnownDocket() {
	m.clearedknown_docket = true
	m.clearedFields[docket.FieldKnownDocketID] = struct{}{}
}

// KnownDocketCleared reports if the "known_docket" edge to the KnownDocket entity was cleared.
func (m *DocketMutation) KnownDocketCleared() bool {
	return m.KnownDocketIDCleared() || m.clearedknown_docket
}

// KnownDocketIDs returns the "known_docket" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// KnownDocketID instead. It exists only for internal usage by the builders.
func (m *DocketMutation) KnownDocketIDs() (ids []string) {
	if id := m.known_docket; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetKnownDocket resets all changes to the "known_docket" edge.
func (m *DocketMutation) ResetKnownDocket() {
	m.known_docket = nil
	m.clearedknown_docket = false
}

// AddHearingDocketIDs adds the "hearing_dockets" edge to the HearingDocket entity by ids.
func (m *DocketMutation) AddHearingDocketIDs(ids ...string) {
	if m.hearing_dockets == nil {
		m.hearing_dockets = make(map[string]struct{})
	}
	for i := range ids {
		m.hearing_dockets[ids[i]] = struct{}{}
	}
}

// ClearHearingDockets clears the "hearing_dockets" edge to the HearingDocket entity.
func (m *DocketMutation) ClearHearingDockets() {
	m.clearedhearing_dockets = true
}

// HearingDocketsCleared reports if the "hearing_dockets" edge to the HearingDocket entity was cleared.
func (m *DocketMutation) HearingDocketsCleared() bool {
	return m.clearedhearing_dockets
}

// RemoveHearingDocketIDs removes the "hearing_dockets" edge to the HearingDocket entity by IDs.
func (m *DocketMutation) RemoveHearingDocketIDs(ids ...string) {
	if m.removedhearing_dockets == nil {
		m.removedhearing_dockets = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.hearing_dockets, ids[i])
		m.removedhearing_dockets[ids[i]] = struct{}{}
	}
}

// RemovedHearingDockets returns the removed IDs of the "hearing_dockets" edge to the HearingDocket entity.
func (m *DocketMutation) RemovedHearingDocketsIDs() (ids []string) {
	for id := range m.removedhearing_dockets {
		ids = append(ids, id)
	}
	return
}

// HearingDocketsIDs returns the "hearing_dockets" edge IDs in the mutation.
func (m *DocketMutation) HearingDocketsIDs() (ids []string) {
	for id := range m.hearing_dockets {
		ids = append(ids, id)
	}
	return
}

// ResetHearingDockets resets all changes to the "hearing_dockets" edge.
func (m *DocketMutation) ResetHearingDockets() {
	m.hearing_dockets = nil
	m.clearedhearing_dockets = false
	m.removedhearing_dockets = nil
}

// Where appends a list predicates to the DocketMutation builder.
func (m *DocketMutation) Where(ps ...predicate.Docket) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the DocketMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *DocketMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Docket, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *DocketMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *DocketMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Docket).
func (m *DocketMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *DocketMutation) Fields() []string {
	fields := make([]string, 0, 15)
	if m.created_at != nil {
		fields = append(fields, docket.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, docket.FieldUpdatedAt)
	}
	if m.state_code != nil {
		fields = append(fields, docket.FieldStateCode)
	}
	if m.docket_number != nil {
		fields = append(fields, docket.FieldDocketNumber)
	}
	if m.normalized_id != nil {
		fields = append(fields, docket.FieldNormalizedID)
	}
	if m.title != nil {
		fields = append(fields, docket.FieldTitle)
	}
	if m.company != nil {
		fields = append(fields, docket.FieldCompany)
	}
	if m.sector != nil {
		fields = append(fields, docket.FieldSector)
	}
	if m.status != nil {
		fields = append(fields, docket.FieldStatus)
	}
	if m.first_seen_at != nil {
		fields = append(fields, docket.FieldFirstSeenAt)
	}
	if m.last_mentioned_at != nil {
		fields = append(fields, docket.FieldLastMentionedAt)
	}
	if m.mention_count != nil {
		fields = append(fields, docket.FieldMentionCount)
	}
	if m.confidence != nil {
		fields = append(fields, docket.FieldConfidence)
	}
	if m.known_docket != nil {
		fields = append(fields, docket.FieldKnownDocketID)
	}
	if m.match_score != nil {
		fields = append(fields, docket.FieldMatchScore)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *DocketMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case docket.FieldCreatedAt:
		return m.CreatedAt()
	case docket.FieldUpdatedAt:
		return m.UpdatedAt()
	case docket.FieldStateCode:
		return m.StateCode()
	case docket.FieldDocketNumber:
		return m.DocketNumber()
	case docket.FieldNormalizedID:
		return m.NormalizedID()
	case docket.FieldTitle:
		return m.Title()
	case docket.FieldCompany:
		return m.Company()
	case docket.FieldSector:
		return m.Sector()
	case docket.FieldStatus:
		return m.Status()
	case docket.FieldFirstSeenAt:
		return m.FirstSeenAt()
	case docket.FieldLastMentionedAt:
		return m.LastMentionedAt()
	case docket.FieldMentionCount:
		return m.MentionCount()
	case docket.FieldConfidence:
		return m.Confidence()
	case docket.FieldKnownDocketID:
		return m.KnownDocketID()
	case docket.FieldMatchScore:
		return m.MatchScore()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *DocketMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case docket.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case docket.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case docket.FieldStateCode:
		return m.OldStateCode(ctx)
	case docket.FieldDocketNumber:
		return m.OldDocketNumber(ctx)
	case docket.FieldNormalizedID:
		return m.OldNormalizedID(ctx)
	case docket.FieldTitle:
		return m.OldTitle(ctx)
	case docket.FieldCompany:
		return m.OldCompany(ctx)
	case docket.FieldSector:
		return m.OldSector(ctx)
	case docket.FieldStatus:
		return m.OldStatus(ctx)
	case docket.FieldFirstSeenAt:
		return m.OldFirstSeenAt(ctx)
	case docket.FieldLastMentionedAt:
		return m.OldLastMentionedAt(ctx)
	case docket.FieldMentionCount:
		return m.OldMentionCount(ctx)
	case docket.FieldConfidence:
		return m.OldConfidence(ctx)
	case docket.FieldKnownDocketID:
		return m.OldKnownDocketID(ctx)
	case docket.FieldMatchScore:
		return m.OldMatchScore(ctx)
	}
	return nil, fmt.Errorf("unknown Docket field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DocketMutation) SetField(name string, value ent.Value) error {
	switch name {
	case docket.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case docket.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case docket.FieldStateCode:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStateCode(v)
		return nil
	case docket.FieldDocketNumber:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDocketNumber(v)
		return nil
	case docket.FieldNormalizedID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNormalizedID(v)
		return nil
	case docket.FieldTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitle(v)
		return nil
	case docket.FieldCompany:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompany(v)
		return nil
	case docket.FieldSector:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSector(v)
		return nil
	case docket.FieldStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case docket.FieldFirstSeenAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFirstSeenAt(v)
		return nil
	case docket.FieldLastMentionedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastMentionedAt(v)
		return nil
	case docket.FieldMentionCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMentionCount(v)
		return nil
	case docket.FieldConfidence:
		v, ok := value.(docket.Confidence)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConfidence(v)
		return nil
	case docket.FieldKnownDocketID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetKnownDocketID(v)
		return nil
	case docket.FieldMatchScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMatchScore(v)
		return nil
	}
	return fmt.Errorf("unknown Docket field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *DocketMutation) AddedFields() []string {
	var fields []string
	if m.addmention_count != nil {
		fields = append(fields, docket.FieldMentionCount)
	}
	if m.addmatch_score != nil {
		fields = append(fields, docket.FieldMatchScore)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *DocketMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case docket.FieldMentionCount:
		return m.AddedMentionCount()
	case docket.FieldMatchScore:
		return m.AddedMatchScore()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DocketMutation) AddField(name string, value ent.Value) error {
	switch name {
	case docket.FieldMentionCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMentionCount(v)
		return nil
	case docket.FieldMatchScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMatchScore(v)
		return nil
	}
	return fmt.Errorf("unknown Docket numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *DocketMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(docket.FieldTitle) {
		fields = append(fields, docket.FieldTitle)
	}
	if m.FieldCleared(docket.FieldCompany) {
		fields = append(fields, docket.FieldCompany)
	}
	if m.FieldCleared(docket.FieldSector) {
		fields = append(fields, docket.FieldSector)
	}
	if m.FieldCleared(docket.FieldStatus) {
		fields = append(fields, docket.FieldStatus)
	}
	if m.FieldCleared(docket.FieldKnownDocketID) {
		fields = append(fields, docket.FieldKnownDocketID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *DocketMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *DocketMutation) ClearField(name string) error {
	switch name {
	case docket.FieldTitle:
		m.ClearTitle()
		return nil
	case docket.FieldCompany:
		m.ClearCompany()
		return nil
	case docket.FieldSector:
		m.ClearSector()
		return nil
	case docket.FieldStatus:
		m.ClearStatus()
		return nil
	case docket.FieldKnownDocketID:
		m.ClearKnownDocketID()
		return nil
	}
	return fmt.Errorf("unknown Docket nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *DocketMutation) ResetField(name string) error {
	switch name {
	case docket.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case docket.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case docket.FieldStateCode:
		m.ResetStateCode()
		return nil
	case docket.FieldDocketNumber:
		m.ResetDocketNumber()
		return nil
	case docket.FieldNormalizedID:
		m.ResetNormalizedID()
		return nil
	case docket.FieldTitle:
		m.ResetTitle()
		return nil
	case docket.FieldCompany:
		m.ResetCompany()
		return nil
	case docket.FieldSector:
		m.ResetSector()
		return nil
	case docket.FieldStatus:
		m.ResetStatus()
		return nil
	case docket.FieldFirstSeenAt:
		m.ResetFirstSeenAt()
		return nil
	case docket.FieldLastMentionedAt:
		m.ResetLastMentionedAt()
		return nil
	case docket.FieldMentionCount:
		m.ResetMentionCount()
		return nil
	case docket.FieldConfidence:
		m.ResetConfidence()
		return nil
	case docket.FieldKnownDocketID:
		m.ResetKnownDocketID()
		return nil
	case docket.FieldMatchScore:
		m.ResetMatchScore()
		return nil
	}
	return fmt.Errorf("unknown Docket field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *DocketMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.known_docket != nil {
		edges = append(edges, docket.EdgeKnownDocket)
	}
	if m.hearing_dockets != nil {
		edges = append(edges, docket.EdgeHearingDockets)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *DocketMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case docket.EdgeKnownDocket:
		if id := m.known_docket; id != nil {
			return []ent.Value{*id}
		}
	case docket.EdgeHearingDockets:
		ids := make([]ent.Value, 0, len(m.hearing_dockets))
		for id := range m.hearing_dockets {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *DocketMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedhearing_dockets != nil {
		edges = append(edges, docket.EdgeHearingDockets)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *DocketMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case docket.EdgeHearingDockets:
		ids := make([]ent.Value, 0, len(m.removedhearing_dockets))
		for id := range m.removedhearing_dockets {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *DocketMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedknown_docket {
		edges = append(edges, docket.EdgeKnownDocket)
	}
	if m.clearedhearing_dockets {
		edges = append(edges, docket.EdgeHearingDockets)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *DocketMutation) EdgeCleared(name string) bool {
	switch name {
	case docket.EdgeKnownDocket:
		return m.clearedknown_docket
	case docket.EdgeHearingDockets:
		return m.clearedhearing_dockets
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *DocketMutation) ClearEdge(name string) error {
	switch name {
	case docket.EdgeKnownDocket:
		m.ClearKnownDocket()
		return nil
	}
	return fmt.Errorf("unknown Docket unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *DocketMutation) ResetEdge(name string) error {
	switch name {
	case docket.EdgeKnownDocket:
		m.ResetKnownDocket()
		return nil
	case docket.EdgeHearingDockets:
		m.ResetHearingDockets()
		return nil
	}
	return fmt.Errorf("unknown Docket edge %s", name)
}

// ExtractedDocketMutation represents an operation that mutates the ExtractedDocket nodes in the graph.
type ExtractedDocketMutation struct {
	config
	op                   Op
	typ                  string
	id                   *string
	created_at           *time.Time
	updated_at           *time.Time
	raw_text             *string
	normalized_id        *string
	state_code           *string
	year                 *int
	addyear              *int
	case_number          *string
	suffix               *string
	sector               *string
	confidence           *float64
	addconfidence        *float64
	status               *extracteddocket.Status
	match_type           *extracteddocket.MatchType
	trigger_phrase       *string
	fuzzy_score          *float64
	addfuzzy_score       *float64
	context_before       *string
	context_after        *string
	suggested_correction *string
	clearedFields        map[string]struct{}
	hearing              *string
	clearedhearing       bool
	known_docket         *string
	clearedknown_docket  bool
	done                 bool
	oldValue             func(context.Context) (*ExtractedDocket, error)
	predicates           []predicate.ExtractedDocket
}

var _ ent.Mutation = (*ExtractedDocketMutation)(nil)

// extracteddocketOption allows management of the mutation configuration using functional options.
type extracteddocketOption func(*ExtractedDocketMutation)

// newExtractedDocketMutation creates new mutation for the ExtractedDocket entity.
func newExtractedDocketMutation(c config, op Op, opts ...extracteddocketOption) *ExtractedDocketMutation {
	m := &ExtractedDocketMutation{
		config:        c,
		op:            op,
		typ:           TypeExtractedDocket,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withExtractedDocketID sets the ID field of the mutation.
func withExtractedDocketID(id string) extracteddocketOption {
	return func(m *ExtractedDocketMutation) {
		var (
			err   error
			once  sync.Once
			value *ExtractedDocket
		)
		m.oldValue = func(ctx context.Context) (*ExtractedDocket, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ExtractedDocket.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withExtractedDocket sets the old ExtractedDocket of the mutation.
func withExtractedDocket(node *ExtractedDocket) extracteddocketOption {
	return func(m *ExtractedDocketMutation) {
		m.oldValue = func(context.Context) (*ExtractedDocket, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ExtractedDocketMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ExtractedDocketMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ExtractedDocket entities.
func (m *ExtractedDocketMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ExtractedDocketMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ExtractedDocketMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ExtractedDocket.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *ExtractedDocketMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ExtractedDocketMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ExtractedDocket entity.
// If the ExtractedDocket object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractedDocketMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ExtractedDocketMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *ExtractedDocketMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *ExtractedDocketMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the ExtractedDocket entity.
// If the ExtractedDocket object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractedDocketMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *ExtractedDocketMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetHearingID sets the "hearing_id" field.
func (m *ExtractedDocketMutation) SetHearingID(s string) {
	m.hearing = &s
}

// HearingID returns the value of the "hearing_id" field in the mutation.
func (m *ExtractedDocketMutation) HearingID() (r string, exists bool) {
	v := m.hearing
	if v == nil {
		return
	}
	return *v, true
}

// OldHearingID returns the old "hearing_id" field's value of the ExtractedDocket entity.
// If the ExtractedDocket object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractedDocketMutation) OldHearingID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldHearingID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldHearingID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldHearingID: %w", err)
	}
	return oldValue.HearingID, nil
}

// ResetHearingID resets all changes to the "hearing_id" field.
func (m *ExtractedDocketMutation) ResetHearingID() {
	m.hearing = nil
}

// SetRawText sets the "raw_text" field.
func (m *ExtractedDocketMutation) SetRawText(s string) {
	m.raw_text = &s
}

// RawText returns the value of the "raw_text" field in the mutation.
func (m *ExtractedDocketMutation) RawText() (r string, exists bool) {
	v := m.raw_text
	if v == nil {
		return
	}
	return *v, true
}

// OldRawText returns the old "raw_text" field's value of the ExtractedDocket entity.
// If the ExtractedDocket object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractedDocketMutation) OldRawText(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRawText is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRawText requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRawText: %w", err)
	}
	return oldValue.RawText, nil
}

// ResetRawText resets all changes to the "raw_text" field.
func (m *ExtractedDocketMutation) ResetRawText() {
	m.raw_text = nil
}

// SetNormalizedID sets the "normalized_id" field.
func (m *ExtractedDocketMutation) SetNormalizedID(s string) {
	m.normalized_id = &s
}

// NormalizedID returns the value of the "normalized_id" field in the mutation.
func (m *ExtractedDocketMutation) NormalizedID() (r string, exists bool) {
	v := m.normalized_id
	if v == nil {
		return
	}
	return *v, true
}

// OldNormalizedID returns the old "normalized_id" field's value of the ExtractedDocket entity.
// If the ExtractedDocket object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractedDocketMutation) OldNormalizedID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNormalizedID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNormalizedID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNormalizedID: %w", err)
	}
	return oldValue.NormalizedID, nil
}

// ResetNormalizedID resets all changes to the "normalized_id" field.
func (m *ExtractedDocketMutation) ResetNormalizedID() {
	m.normalized_id = nil
}

// SetStateCode sets the "state_code" field.
func (m *ExtractedDocketMutation) SetStateCode(s string) {
	m.state_code = &s
}

// StateCode returns the value of the "state_code" field in the mutation.
func (m *ExtractedDocketMutation) StateCode() (r string, exists bool) {
	v := m.state_code
	if v == nil {
		return
	}
	return *v, true
}

// OldStateCode returns the old "state_code" field's value of the ExtractedDocket entity.
// If the ExtractedDocket object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractedDocketMutation) OldStateCode(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStateCode is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStateCode requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStateCode: %w", err)
	}
	return oldValue.StateCode, nil
}

// ResetStateCode resets all changes to the "state_code" field.
func (m *ExtractedDocketMutation) ResetStateCode() {
	m.state_code = nil
}

// SetYear sets the "year" field.
func (m *ExtractedDocketMutation) SetYear(i int) {
	m.year = &i
	m.addyear = nil
}

// Year returns the value of the "year" field in the mutation.
func (m *ExtractedDocketMutation) Year() (r int, exists bool) {
	v := m.year
	if v == nil {
		return
	}
	return *v, true
}

// OldYear returns the old "year" field's value of the ExtractedDocket entity.
// If the ExtractedDocket object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractedDocketMutation) OldYear(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldYear is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldYear requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldYear: %w", err)
	}
	return oldValue.Year, nil
}

// AddYear adds i to the "year" field.
func (m *ExtractedDocketMutation) AddYear(i int) {
	if m.addyear != nil {
		*m.addyear += i
	} else {
		m.addyear = &i
	}
}

// AddedYear returns the value that was added to the "year" field in this mutation.
func (m *ExtractedDocketMutation) AddedYear() (r int, exists bool) {
	v := m.addyear
	if v == nil {
		return
	}
	return *v, true
}

// ClearYear clears the value of the "year" field.
func (m *ExtractedDocketMutation) ClearYear() {
	m.year = nil
	m.addyear = nil
	m.clearedFields[extracteddocket.FieldYear] = struct{}{}
}

// YearCleared returns if the "year" field was cleared in this mutation.
func (m *ExtractedDocketMutation) YearCleared() bool {
	_, ok := m.clearedFields[extracteddocket.FieldYear]
	return ok
}

// ResetYear resets all changes to the "year" field.
func (m *ExtractedDocketMutation) ResetYear() {
	m.year = nil
	m.addyear = nil
	delete(m.clearedFields, extracteddocket.FieldYear)
}

// SetCaseNumber sets the "case_number" field.
func (m *ExtractedDocketMutation) SetCaseNumber(s string) {
	m.case_number = &s
}

// CaseNumber returns the value of the "case_number" field in the mutation.
func (m *ExtractedDocketMutation) CaseNumber() (r string, exists bool) {
	v := m.case_number
	if v == nil {
		return
	}
	return *v, true
}

// OldCaseNumber returns the old "case_number" field's value of the ExtractedDocket entity.
// If the ExtractedDocket object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractedDocketMutation) OldCaseNumber(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCaseNumber is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCaseNumber requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCaseNumber: %w", err)
	}
	return oldValue.CaseNumber, nil
}

// ClearCaseNumber clears the value of the "case_number" field.
func (m *ExtractedDocketMutation) ClearCaseNumber() {
	m.case_number = nil
	m.clearedFields[extracteddocket.FieldCaseNumber] = struct{}{}
}

// CaseNumberCleared returns if the "case_number" field was cleared in this mutation.
func (m *ExtractedDocketMutation) CaseNumberCleared() bool {
	_, ok := m.clearedFields[extracteddocket.FieldCaseNumber]
	return ok
}

// ResetCaseNumber resets all changes to the "case_number" field.
func (m *ExtractedDocketMutation) ResetCaseNumber() {
	m.case_number = nil
	delete(m.clearedFields, extracteddocket.FieldCaseNumber)
}

// SetSuffix sets the "suffix" field.
func (m *ExtractedDocketMutation) SetSuffix(s string) {
	m.suffix = &s
}

// Suffix returns the value of the "suffix" field in the mutation.
func (m *ExtractedDocketMutation) Suffix() (r string, exists bool) {
	v := m.suffix
	if v == nil {
		return
	}
	return *v, true
}

// OldSuffix returns the old "suffix" field's value of the ExtractedDocket entity.
// If the ExtractedDocket object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractedDocketMutation) OldSuffix(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSuffix is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSuffix requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSuffix: %w", err)
	}
	return oldValue.Suffix, nil
}

// ClearSuffix clears the value of the "suffix" field.
func (m *ExtractedDocketMutation) ClearSuffix() {
	m.suffix = nil
	m.clearedFields[extracteddocket.FieldSuffix] = struct{}{}
}

// SuffixCleared returns if the "suffix" field was cleared in this mutation.
func (m *ExtractedDocketMutation) SuffixCleared() bool {
	_, ok := m.clearedFields[extracteddocket.FieldSuffix]
	return ok
}

// ResetSuffix resets all changes to the "suffix" field.
func (m *ExtractedDocketMutation) ResetSuffix() {
	m.suffix = nil
	delete(m.clearedFields, extracteddocket.FieldSuffix)
}

// SetSector sets the "sector" field.
func (m *ExtractedDocketMutation) SetSector(s string) {
	m.sector = &s
}

// Sector returns the value of the "sector" field in the mutation.
func (m *ExtractedDocketMutation) Sector() (r string, exists bool) {
	v := m.sector
	if v == nil {
		return
	}
	return *v, true
}

// OldSector returns the old "sector" field's value of the ExtractedDocket entity.
// If the ExtractedDocket object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractedDocketMutation) OldSector(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSector is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSector requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSector: %w", err)
	}
	return oldValue.Sector, nil
}

// ClearSector clears the value of the "sector" field.
func (m *ExtractedDocketMutation) ClearSector() {
	m.sector = nil
	m.clearedFields[extracteddocket.FieldSector] = struct{}{}
}

// SectorCleared returns if the "sector" field was cleared in this mutation.
func (m *ExtractedDocketMutation) SectorCleared() bool {
	_, ok := m.clearedFields[extracteddocket.FieldSector]
	return ok
}

// ResetSector resets all changes to the "sector" field.
func (m *ExtractedDocketMutation) ResetSector() {
	m.sector = nil
	delete(m.clearedFields, extracteddocket.FieldSector)
}

// SetConfidence sets the "confidence" field.
func (m *ExtractedDocketMutation) SetConfidence(f float64) {
	m.confidence = &f
	m.addconfidence = nil
}

// Confidence returns the value of the "confidence" field in the mutation.
func (m *ExtractedDocketMutation) Confidence() (r float64, exists bool) {
	v := m.confidence
	if v == nil {
		return
	}
	return *v, true
}

// OldConfidence returns the old "confidence" field's value of the ExtractedDocket entity.
// If the ExtractedDocket object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractedDocketMutation) OldConfidence(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConfidence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConfidence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConfidence: %w", err)
	}
	return oldValue.Confidence, nil
}

// AddConfidence adds f to the "confidence" field.
func (m *ExtractedDocketMutation) AddConfidence(f float64) {
	if m.addconfidence != nil {
		*m.addconfidence += f
	} else {
		m.addconfidence = &f
	}
}

// AddedConfidence returns the value that was added to the "confidence" field in this mutation.
func (m *ExtractedDocketMutation) AddedConfidence() (r float64, exists bool) {
	v := m.addconfidence
	if v == nil {
		return
	}
	return *v, true
}

// ResetConfidence resets all changes to the "confidence" field.
func (m *ExtractedDocketMutation) ResetConfidence() {
	m.confidence = nil
	m.addconfidence = nil
}

// SetStatus sets the "status" field.
func (m *ExtractedDocketMutation) SetStatus(e extracteddocket.Status) {
	m.status = &e
}

// Status returns the value of the "status" field in the mutation.
func (m *ExtractedDocketMutation) Status() (r extracteddocket.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the ExtractedDocket entity.
// If the ExtractedDocket object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractedDocketMutation) OldStatus(ctx context.Context) (v extracteddocket.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *ExtractedDocketMutation) ResetStatus() {
	m.status = nil
}

// SetMatchType sets the "match_type" field.
func (m *ExtractedDocketMutation) SetMatchType(et extracteddocket.MatchType) {
	m.match_type = &et
}

// MatchType returns the value of the "match_type" field in the mutation.
func (m *ExtractedDocketMutation) MatchType() (r extracteddocket.MatchType, exists bool) {
	v := m.match_type
	if v == nil {
		return
	}
	return *v, true
}

// OldMatchType returns the old "match_type" field's value of the ExtractedDocket entity.
// If the ExtractedDocket object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractedDocketMutation) OldMatchType(ctx context.Context) (v extracteddocket.MatchType, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMatchType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMatchType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMatchType: %w", err)
	}
	return oldValue.MatchType, nil
}

// ResetMatchType resets all changes to the "match_type" field.
func (m *ExtractedDocketMutation) ResetMatchType() {
	m.match_type = nil
}

// SetTriggerPhrase sets the "trigger_phrase" field.
func (m *ExtractedDocketMutation) SetTriggerPhrase(s string) {
	m.trigger_phrase = &s
}

// TriggerPhrase returns the value of the "trigger_phrase" field in the mutation.
func (m *ExtractedDocketMutation) TriggerPhrase() (r string, exists bool) {
	v := m.trigger_phrase
	if v == nil {
		return
	}
	return *v, true
}

// OldTriggerPhrase returns the old "trigger_phrase" field's value of the ExtractedDocket entity.
// If the ExtractedDocket object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractedDocketMutation) OldTriggerPhrase(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTriggerPhrase is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTriggerPhrase requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTriggerPhrase: %w", err)
	}
	return oldValue.TriggerPhrase, nil
}

// ClearTriggerPhrase clears the value of the "trigger_phrase" field.
func (m *ExtractedDocketMutation) ClearTriggerPhrase() {
	m.trigger_phrase = nil
	m.clearedFields[extracteddocket.FieldTriggerPhrase] = struct{}{}
}

// TriggerPhraseCleared returns if the "trigger_phrase" field was cleared in this mutation.
func (m *ExtractedDocketMutation) TriggerPhraseCleared() bool {
	_, ok := m.clearedFields[extracteddocket.FieldTriggerPhrase]
	return ok
}

// ResetTriggerPhrase resets all changes to the "trigger_phrase" field.
func (m *ExtractedDocketMutation) ResetTriggerPhrase() {
	m.trigger_phrase = nil
	delete(m.clearedFields, extracteddocket.FieldTriggerPhrase)
}

// SetKnownDocketID sets the "known_docket_id" field.
func (m *ExtractedDocketMutation) SetKnownDocketID(s string) {
	m.known_docket = &s
}

// KnownDocketID returns the value of the "known_docket_id" field in the mutation.
func (m *ExtractedDocketMutation) KnownDocketID() (r string, exists bool) {
	v := m.known_docket
	if v == nil {
		return
	}
	return *v, true
}

// OldKnownDocketID returns the old "known_docket_id" field's value of the ExtractedDocket entity.
// If the ExtractedDocket object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractedDocketMutation) OldKnownDocketID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldKnownDocketID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldKnownDocketID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldKnownDocketID: %w", err)
	}
	return oldValue.KnownDocketID, nil
}

// ClearKnownDocketID clears the value of the "known_docket_id" field.
func (m *ExtractedDocketMutation) ClearKnownDocketID() {
	m.known_docket = nil
	m.clearedFields[extracteddocket.FieldKnownDocketID] = struct{}{}
}

// KnownDocketIDCleared returns if the "known_docket_id" field was cleared in this mutation.
func (m *ExtractedDocketMutation) KnownDocketIDCleared() bool {
	_, ok := m.clearedFields[extracteddocket.FieldKnownDocketID]
	return ok
}

// ResetKnownDocketID resets all changes to the "known_docket_id" field.
func (m *ExtractedDocketMutation) ResetKnownDocketID() {
	m.known_docket = nil
	delete(m.clearedFields, extracteddocket.FieldKnownDocketID)
}

// SetFuzzyScore sets the "fuzzy_score" field.
func (m *ExtractedDocketMutation) SetFuzzyScore(f float64) {
	m.fuzzy_score = &f
	m.addfuzzy_score = nil
}

// FuzzyScore returns the value of the "fuzzy_score" field in the mutation.
func (m *ExtractedDocketMutation) FuzzyScore() (r float64, exists bool) {
	v := m.fuzzy_score
	if v == nil {
		return
	}
	return *v, true
}

// OldFuzzyScore returns the old "fuzzy_score" field's value of the ExtractedDocket entity.
// If the ExtractedDocket object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractedDocketMutation) OldFuzzyScore(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFuzzyScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFuzzyScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFuzzyScore: %w", err)
	}
	return oldValue.FuzzyScore, nil
}

// AddFuzzyScore adds f to the "fuzzy_score" field.
func (m *ExtractedDocketMutation) AddFuzzyScore(f float64) {
	if m.addfuzzy_score != nil {
		*m.addfuzzy_score += f
	} else {
		m.addfuzzy_score = &f
	}
}

// AddedFuzzyScore returns the value that was added to the "fuzzy_score" field in this mutation.
func (m *ExtractedDocketMutation) AddedFuzzyScore() (r float64, exists bool) {
	v := m.addfuzzy_score
	if v == nil {
		return
	}
	return *v, true
}

// ResetFuzzyScore resets all changes to the "fuzzy_score" field.
func (m *ExtractedDocketMutation) ResetFuzzyScore() {
	m.fuzzy_score = nil
	m.addfuzzy_score = nil
}

// SetContextBefore sets the "context_before" field.
func (m *ExtractedDocketMutation) SetContextBefore(s string) {
	m.context_before = &s
}

// ContextBefore returns the value of the "context_before" field in the mutation.
func (m *ExtractedDocketMutation) ContextBefore() (r string, exists bool) {
	v := m.context_before
	if v == nil {
		return
	}
	return *v, true
}

// OldContextBefore returns the old "context_before" field's value of the ExtractedDocket entity.
// If the ExtractedDocket object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractedDocketMutation) OldContextBefore(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContextBefore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContextBefore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContextBefore: %w", err)
	}
	return oldValue.ContextBefore, nil
}

// ClearContextBefore clears the value of the "context_before" field.
func (m *ExtractedDocketMutation) ClearContextBefore() {
	m.context_before = nil
	m.clearedFields[extracteddocket.FieldContextBefore] = struct{}{}
}

// ContextBeforeCleared returns if the "context_before" field was cleared in this mutation.
func (m *ExtractedDocketMutation) ContextBeforeCleared() bool {
	_, ok := m.clearedFields[extracteddocket.FieldContextBefore]
	return ok
}

// ResetContextBefore resets all changes to the "context_before" field.
func (m *ExtractedDocketMutation) ResetContextBefore() {
	m.context_before = nil
	delete(m.clearedFields, extracteddocket.FieldContextBefore)
}

// SetContextAfter sets the "context_after" field.
func (m *ExtractedDocketMutation) SetContextAfter(s string) {
	m.context_after = &s
}

// ContextAfter returns the value of the "context_after" field in the mutation.
func (m *ExtractedDocketMutation) ContextAfter() (r string, exists bool) {
	v := m.context_after
	if v == nil {
		return
	}
	return *v, true
}

// OldContextAfter returns the old "context_after" field's value of the ExtractedDocket entity.
// If the ExtractedDocket object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractedDocketMutation) OldContextAfter(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContextAfter is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContextAfter requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContextAfter: %w", err)
	}
	return oldValue.ContextAfter, nil
}

// ClearContextAfter clears the value of the "context_after" field.
func (m *ExtractedDocketMutation) ClearContextAfter() {
	m.context_after = nil
	m.clearedFields[extracteddocket.FieldContextAfter] = struct{}{}
}

// ContextAfterCleared returns if the "context_after" field was cleared in this mutation.
func (m *ExtractedDocketMutation) ContextAfterCleared() bool {
	_, ok := m.clearedFields[extracteddocket.FieldContextAfter]
	return ok
}

// ResetContextAfter resets all changes to the "context_after" field.
func (m *ExtractedDocketMutation) ResetContextAfter() {
	m.context_after = nil
	delete(m.clearedFields, extracteddocket.FieldContextAfter)
}

// SetSuggestedCorrection sets the "suggested_correction" field.
func (m *ExtractedDocketMutation) SetSuggestedCorrection(s string) {
	m.suggested_correction = &s
}

// SuggestedCorrection returns the value of the "suggested_correction" field in the mutation.
func (m *ExtractedDocketMutation) SuggestedCorrection() (r string, exists bool) {
	v := m.suggested_correction
	if v == nil {
		return
	}
	return *v, true
}

// OldSuggestedCorrection returns the old "suggested_correction" field's value of the ExtractedDocket entity.
// If the ExtractedDocket object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractedDocketMutation) OldSuggestedCorrection(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSuggestedCorrection is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSuggestedCorrection requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSuggestedCorrection: %w", err)
	}
	return oldValue.SuggestedCorrection, nil
}

// ClearSuggestedCorrection clears the value of the "suggested_correction" field.
func (m *ExtractedDocketMutation) ClearSuggestedCorrection() {
	m.suggested_correction = nil
	m.clearedFields[extracteddocket.FieldSuggestedCorrection] = struct{}{}
}

// SuggestedCorrectionCleared returns if the "suggested_correction" field was cleared in this mutation.
func (m *ExtractedDocketMutation) SuggestedCorrectionCleared() bool {
	_, ok := m.clearedFields[extracteddocket.FieldSuggestedCorrection]
	return ok
}

// ResetSuggestedCorrection resets all changes to the "suggested_correction" field.
func (m *ExtractedDocketMutation) ResetSuggestedCorrection() {
	m.suggested_correction = nil
	delete(m.clearedFields, extracteddocket.FieldSuggestedCorrection)
}

// ClearHearing clears the "hearing" edge to the Hearing entity.
func (m *ExtractedDocketMutation) ClearHearing() {
	m.clearedhearing = true
	m.clearedFields[extracteddocket.FieldHearingID] = struct{}{}
}

// HearingCleared reports if the "hearing" edge to the Hearing entity was cleared.
func (m *ExtractedDocketMutation) HearingCleared() bool {
	return m.clearedhearing
}

// HearingIDs returns the "hearing" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// HearingID instead. It exists only for internal usage by the builders.
func (m *ExtractedDocketMutation) HearingIDs() (ids []string) {
	if id := m.hearing; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetHearing resets all changes to the "hearing" edge.
func (m *ExtractedDocketMutation) ResetHearing() {
	m.hearing = nil
	m.clearedhearing = false
}

// ClearKnownDocket clears the "known_docket" edge to the KnownDocket entity.
func (m *ExtractedDocketMutation) ClearKnownDocket() {
	m.clearedknown_docket = true
	m.clearedFields[extracteddocket.FieldKnownDocketID] = struct{}{}
}

// KnownDocketCleared reports if the "known_docket" edge to the KnownDocket entity was cleared.
func (m *ExtractedDocketMutation) KnownDocketCleared() bool {
	return m.KnownDocketIDCleared() || m.clearedknown_docket
}

// KnownDocketIDs returns the "known_docket" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// KnownDocketID instead. It exists only for internal usage by the builders.
func (m *ExtractedDocketMutation) KnownDocketIDs() (ids []string) {
	if id := m.known_docket; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetKnownDocket resets all changes to the "known_docket" edge.
func (m *ExtractedDocketMutation) ResetKnownDocket() {
	m.known_docket = nil
	m.clearedknown_docket = false
}

// Where appends a list predicates to the ExtractedDocketMutation builder.
func (m *ExtractedDocketMutation) Where(ps ...predicate.ExtractedDocket) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ExtractedDocketMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ExtractedDocketMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ExtractedDocket, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ExtractedDocketMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ExtractedDocketMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ExtractedDocket).
func (m *ExtractedDocketMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ExtractedDocketMutation) Fields() []string {
	fields := make([]string, 0, 19)
	if m.created_at != nil {
		fields = append(fields, extracteddocket.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, extracteddocket.FieldUpdatedAt)
	}
	if m.hearing != nil {
		fields = append(fields, extracteddocket.FieldHearingID)
	}
	if m.raw_text != nil {
		fields = append(fields, extracteddocket.FieldRawText)
	}
	if m.normalized_id != nil {
		fields = append(fields, extracteddocket.FieldNormalizedID)
	}
	if m.state_code != nil {
		fields = append(fields, extracteddocket.FieldStateCode)
	}
	if m.year != nil {
		fields = append(fields, extracteddocket.FieldYear)
	}
	if m.case_number != nil {
		fields = append(fields, extracteddocket.FieldCaseNumber)
	}
	if m.suffix != nil {
		fields = append(fields, extracteddocket.FieldSuffix)
	}
	if m.sector != nil {
		fields = append(fields, extracteddocket.FieldSector)
	}
	if m.confidence != nil {
		fields = append(fields, extracteddocket.FieldConfidence)
	}
	if m.status != nil {
		fields = append(fields, extracteddocket.FieldStatus)
	}
	if m.match_type != nil {
		fields = append(fields, extracteddocket.FieldMatchType)
	}
	if m.trigger_phrase != nil {
		fields = append(fields, extracteddocket.FieldTriggerPhrase)
	}
	if m.known_docket != nil {
		fields = append(fields, extracteddocket.FieldKnownDocketID)
	}
	if m.fuzzy_score != nil {
		fields = append(fields, extracteddocket.FieldFuzzyScore)
	}
	if m.context_before != nil {
		fields = append(fields, extracteddocket.FieldContextBefore)
	}
	if m.context_after != nil {
		fields = append(fields, extracteddocket.FieldContextAfter)
	}
	if m.suggested_correction != nil {
		fields = append(fields, extracteddocket.FieldSuggestedCorrection)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ExtractedDocketMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case extracteddocket.FieldCreatedAt:
		return m.CreatedAt()
	case extracteddocket.FieldUpdatedAt:
		return m.UpdatedAt()
	case extracteddocket.FieldHearingID:
		return m.HearingID()
	case extracteddocket.FieldRawText:
		return m.RawText()
	case extracteddocket.FieldNormalizedID:
		return m.NormalizedID()
	case extracteddocket.FieldStateCode:
		return m.StateCode()
	case extracteddocket.FieldYear:
		return m.Year()
	case extracteddocket.FieldCaseNumber:
		return m.CaseNumber()
	case extracteddocket.FieldSuffix:
		return m.Suffix()
	case extracteddocket.FieldSector:
		return m.Sector()
	case extracteddocket.FieldConfidence:
		return m.Confidence()
	case extracteddocket.FieldStatus:
		return m.Status()
	case extracteddocket.FieldMatchType:
		return m.MatchType()
	case extracteddocket.FieldTriggerPhrase:
		return m.TriggerPhrase()
	case extracteddocket.FieldKnownDocketID:
		return m.KnownDocketID()
	case extracteddocket.FieldFuzzyScore:
		return m.FuzzyScore()
	case extracteddocket.FieldContextBefore:
		return m.ContextBefore()
	case extracteddocket.FieldContextAfter:
		return m.ContextAfter()
	case extracteddocket.FieldSuggestedCorrection:
		return m.SuggestedCorrection()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ExtractedDocketMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case extracteddocket.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case extracteddocket.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case extracteddocket.FieldHearingID:
		return m.OldHearingID(ctx)
	case extracteddocket.FieldRawText:
		return m.OldRawText(ctx)
	case extracteddocket.FieldNormalizedID:
		return m.OldNormalizedID(ctx)
	case extracteddocket.FieldStateCode:
		return m.OldStateCode(ctx)
	case extracteddocket.FieldYear:
		return m.OldYear(ctx)
	case extracteddocket.FieldCaseNumber:
		return m.OldCaseNumber(ctx)
	case extracteddocket.FieldSuffix:
		return m.OldSuffix(ctx)
	case extracteddocket.FieldSector:
		return m.OldSector(ctx)
	case extracteddocket.FieldConfidence:
		return m.OldConfidence(ctx)
	case extracteddocket.FieldStatus:
		return m.OldStatus(ctx)
	case extracteddocket.FieldMatchType:
		return m.OldMatchType(ctx)
	case extracteddocket.FieldTriggerPhrase:
		return m.OldTriggerPhrase(ctx)
	case extracteddocket.FieldKnownDocketID:
		return m.OldKnownDocketID(ctx)
	case extracteddocket.FieldFuzzyScore:
		return m.OldFuzzyScore(ctx)
	case extracteddocket.FieldContextBefore:
		return m.OldContextBefore(ctx)
	case extracteddocket.FieldContextAfter:
		return m.OldContextAfter(ctx)
	case extracteddocket.FieldSuggestedCorrection:
		return m.OldSuggestedCorrection(ctx)
	}
	return nil, fmt.Errorf("unknown ExtractedDocket field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ExtractedDocketMutation) SetField(name string, value ent.Value) error {
	switch name {
	case extracteddocket.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case extracteddocket.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case extracteddocket.FieldHearingID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetHearingID(v)
		return nil
	case extracteddocket.FieldRawText:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRawText(v)
		return nil
	case extracteddocket.FieldNormalizedID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNormalizedID(v)
		return nil
	case extracteddocket.FieldStateCode:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStateCode(v)
		return nil
	case extracteddocket.FieldYear:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetYear(v)
		return nil
	case extracteddocket.FieldCaseNumber:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCaseNumber(v)
		return nil
	case extracteddocket.FieldSuffix:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSuffix(v)
		return nil
	case extracteddocket.FieldSector:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSector(v)
		return nil
	case extracteddocket.FieldConfidence:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConfidence(v)
		return nil
	case extracteddocket.FieldStatus:
		v, ok := value.(extracteddocket.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case extracteddocket.FieldMatchType:
		v, ok := value.(extracteddocket.MatchType)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMatchType(v)
		return nil
	case extracteddocket.FieldTriggerPhrase:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTriggerPhrase(v)
		return nil
	case extracteddocket.FieldKnownDocketID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetKnownDocketID(v)
		return nil
	case extracteddocket.FieldFuzzyScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFuzzyScore(v)
		return nil
	case extracteddocket.FieldContextBefore:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContextBefore(v)
		return nil
	case extracteddocket.FieldContextAfter:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContextAfter(v)
		return nil
	case extracteddocket.FieldSuggestedCorrection:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSuggestedCorrection(v)
		return nil
	}
	return fmt.Errorf("unknown ExtractedDocket field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ExtractedDocketMutation) AddedFields() []string {
	var fields []string
	if m.addyear != nil {
		fields = append(fields, extracteddocket.FieldYear)
	}
	if m.addconfidence != nil {
		fields = append(fields, extracteddocket.FieldConfidence)
	}
	if m.addfuzzy_score != nil {
		fields = append(fields, extracteddocket.FieldFuzzyScore)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ExtractedDocketMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case extracteddocket.FieldYear:
		return m.AddedYear()
	case extracteddocket.FieldConfidence:
		return m.AddedConfidence()
	case extracteddocket.FieldFuzzyScore:
		return m.AddedFuzzyScore()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ExtractedDocketMutation) AddField(name string, value ent.Value) error {
	switch name {
	case extracteddocket.FieldYear:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddYear(v)
		return nil
	case extracteddocket.FieldConfidence:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddConfidence(v)
		return nil
	case extracteddocket.FieldFuzzyScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddFuzzyScore(v)
		return nil
	}
	return fmt.Errorf("unknown ExtractedDocket numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ExtractedDocketMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(extracteddocket.FieldYear) {
		fields = append(fields, extracteddocket.FieldYear)
	}
	if m.FieldCleared(extracteddocket.FieldCaseNumber) {
		fields = append(fields, extracteddocket.FieldCaseNumber)
	}
	if m.FieldCleared(extracteddocket.FieldSuffix) {
		fields = append(fields, extracteddocket.FieldSuffix)
	}
	if m.FieldCleared(extracteddocket.FieldSector) {
		fields = append(fields, extracteddocket.FieldSector)
	}
	if m.FieldCleared(extracteddocket.FieldTriggerPhrase) {
		fields = append(fields, extracteddocket.FieldTriggerPhrase)
	}
	if m.FieldCleared(extracteddocket.FieldKnownDocketID) {
		fields = append(fields, extracteddocket.FieldKnownDocketID)
	}
	if m.FieldCleared(extracteddocket.FieldContextBefore) {
		fields = append(fields, extracteddocket.FieldContextBefore)
	}
	if m.FieldCleared(extracteddocket.FieldContextAfter) {
		fields = append(fields, extracteddocket.FieldContextAfter)
	}
	if m.FieldCleared(extracteddocket.FieldSuggestedCorrection) {
		fields = append(fields, extracteddocket.FieldSuggestedCorrection)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ExtractedDocketMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ExtractedDocketMutation) ClearField(name string) error {
	switch name {
	case extracteddocket.FieldYear:
		m.ClearYear()
		return nil
	case extracteddocket.FieldCaseNumber:
		m.ClearCaseNumber()
		return nil
	case extracteddocket.FieldSuffix:
		m.ClearSuffix()
		return nil
	case extracteddocket.FieldSector:
		m.ClearSector()
		return nil
	case extracteddocket.FieldTriggerPhrase:
		m.ClearTriggerPhrase()
		return nil
	case extracteddocket.FieldKnownDocketID:
		m.ClearKnownDocketID()
		return nil
	case extracteddocket.FieldContextBefore:
		m.ClearContextBefore()
		return nil
	case extracteddocket.FieldContextAfter:
		m.ClearContextAfter()
		return nil
	case extracteddocket.FieldSuggestedCorrection:
		m.ClearSuggestedCorrection()
		return nil
	}
	return fmt.Errorf("unknown ExtractedDocket nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ExtractedDocketMutation) ResetField(name string) error {
	switch name {
	case extracteddocket.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case extracteddocket.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case extracteddocket.FieldHearingID:
		m.ResetHearingID()
		return nil
	case extracteddocket.FieldRawText:
		m.ResetRawText()
		return nil
	case extracteddocket.FieldNormalizedID:
		m.ResetNormalizedID()
		return nil
	case extracteddocket.FieldStateCode:
		m.ResetStateCode()
		return nil
	case extracteddocket.FieldYear:
		m.ResetYear()
		return nil
	case extracteddocket.FieldCaseNumber:
		m.ResetCaseNumber()
		return nil
	case extracteddocket.FieldSuffix:
		m.ResetSuffix()
		return nil
	case extracteddocket.FieldSector:
		m.ResetSector()
		return nil
	case extracteddocket.FieldConfidence:
		m.ResetConfidence()
		return nil
	case extracteddocket.FieldStatus:
		m.ResetStatus()
		return nil
	case extracteddocket.FieldMatchType:
		m.ResetMatchType()
		return nil
	case extracteddocket.FieldTriggerPhrase:
		m.ResetTriggerPhrase()
		return nil
	case extracteddocket.FieldKnownDocketID:
		m.ResetKnownDocketID()
		return nil
	case extracteddocket.FieldFuzzyScore:
		m.ResetFuzzyScore()
		return nil
	case extracteddocket.FieldContextBefore:
		m.ResetContextBefore()
		return nil
	case extracteddocket.FieldContextAfter:
		m.ResetContextAfter()
		return nil
	case extracteddocket.FieldSuggestedCorrection:
		m.ResetSuggestedCorrection()
		return nil
	}
	return fmt.Errorf("unknown ExtractedDocket field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ExtractedDocketMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.hearing != nil {
		edges = append(edges, extracteddocket.EdgeHearing)
	}
	if m.known_docket != nil {
		edges = append(edges, extracteddocket.EdgeKnownDocket)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ExtractedDocketMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case extracteddocket.EdgeHearing:
		if id := m.hearing; id != nil {
			return []ent.Value{*id}
		}
	case extracteddocket.EdgeKnownDocket:
		if id := m.known_docket; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ExtractedDocketMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ExtractedDocketMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ExtractedDocketMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedhearing {
		edges = append(edges, extracteddocket.EdgeHearing)
	}
	if m.clearedknown_docket {
		edges = append(edges, extracteddocket.EdgeKnownDocket)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ExtractedDocketMutation) EdgeCleared(name string) bool {
	switch name {
	case extracteddocket.EdgeHearing:
		return m.clearedhearing
	case extracteddocket.EdgeKnownDocket:
		return m.clearedknown_docket
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ExtractedDocketMutation) ClearEdge(name string) error {
	switch name {
	case extracteddocket.EdgeHearing:
		m.ClearHearing()
		return nil
	case extracteddocket.EdgeKnownDocket:
		m.ClearKnownDocket()
		return nil
	}
	return fmt.Errorf("unknown ExtractedDocket unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ExtractedDocketMutation) ResetEdge(name string) error {
	switch name {
	case extracteddocket.EdgeHearing:
		m.ResetHearing()
		return nil
	case extracteddocket.EdgeKnownDocket:
		m.ResetKnownDocket()
		return nil
	}
	return fmt.Errorf("unknown ExtractedDocket edge %s", name)
}

// HearingMutation represents an operation that mutates the Hearing nodes in the graph.
type HearingMutation struct {
	config
	op                       Op
	typ                      string
	id                       *string
	created_at               *time.Time
	updated_at               *time.Time
	state_code               *string
	external_id              *string
	title                    *string
	description              *string
	hearing_date             *time.Time
	hearing_type             *string
	utility_name             *string
	docket_numbers           *[]string
	appenddocket_numbers     []string
	source_url               *string
	media_url                *string
	duration_seconds         *float64
	addduration_seconds      *float64
	status                   *hearing.Status
	clearedFields            map[string]struct{}
	source                   *string
	clearedsource            bool
	transcript               *string
	clearedtranscript        bool
	segments                 map[string]struct{}
	removedsegments          map[string]struct{}
	clearedsegments          bool
	analysis                 *string
	clearedanalysis          bool
	pipeline_jobs            map[string]struct{}
	removedpipeline_jobs     map[string]struct{}
	clearedpipeline_jobs     bool
	hearing_dockets          map[string]struct{}
	removedhearing_dockets   map[string]struct{}
	clearedhearing_dockets   bool
	extracted_dockets        map[string]struct{}
	removedextracted_dockets map[string]struct{}
	clearedextracted_dockets bool
	hearing_utilities        map[string]struct{}
	removedhearing_utilities map[string]struct{}
	clearedhearing_utilities bool
	hearing_topics           map[string]struct{}
	removedhearing_topics    map[string]struct{}
	clearedhearing_topics    bool
	done                     bool
	oldValue                 func(context.Context) (*Hearing, error)
	predicates               []predicate.Hearing
}

var _ ent.Mutation = (*HearingMutation)(nil)

// hearingOption allows management of the mutation configuration using functional options.
type hearingOption func(*HearingMutation)

// newHearingMutation creates new mutation for the Hearing entity.
func newHearingMutation(c config, op Op, opts ...hearingOption) *HearingMutation {
	m := &HearingMutation{
		config:        c,
		op:            op,
		typ:           TypeHearing,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withHearingID sets the ID field of the mutation.
func withHearingID(id string) hearingOption {
	return func(m *HearingMutation) {
		var (
			err   error
			once  sync.Once
			value *Hearing
		)
		m.oldValue = func(ctx context.Context) (*Hearing, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Hearing.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withHearing sets the old Hearing of the mutation.
func withHearing(node *Hearing) hearingOption {
	return func(m *HearingMutation) {
		m.oldValue = func(context.Context) (*Hearing, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m HearingMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m HearingMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Hearing entities.
func (m *HearingMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *HearingMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *HearingMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Hearing.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *HearingMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *HearingMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Hearing entity.
// If the Hearing object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *HearingMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *HearingMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *HearingMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *HearingMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Hearing entity.
// If the Hearing object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *HearingMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *HearingMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetSourceID sets the "source_id" field.
func (m *HearingMutation) SetSourceID(s string) {
	m.source = &s
}

// SourceID returns the value of the "source_id" field in the mutation.
func (m *HearingMutation) SourceID() (r string, exists bool) {
	v := m.source
	if v == nil {
		return
	}
	return *v, true
}

// OldSourceID returns the old "source_id" field's value of the Hearing entity.
// If the Hearing object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *HearingMutation) OldSourceID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSourceID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSourceID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSourceID: %w", err)
	}
	return oldValue.SourceID, nil
}

// ResetSourceID resets all changes to the "source_id" field.
func (m *HearingMutation) ResetSourceID() {
	m.source = nil
}

// SetStateCode sets the "state_code" field.
func (m *HearingMutation) SetStateCode(s string) {
	m.state_code = &s
}

// StateCode returns the value of the "state_code" field in the mutation.
func (m *HearingMutation) StateCode() (r string, exists bool) {
	v := m.state_code
	if v == nil {
		return
	}
	return *v, true
}

// OldStateCode returns the old "state_code" field's value of the Hearing entity.
// If the Hearing object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *HearingMutation) OldStateCode(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStateCode is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStateCode requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStateCode: %w", err)
	}
	return oldValue.StateCode, nil
}

// ResetStateCode resets all changes to the "state_code" field.
func (m *HearingMutation) ResetStateCode() {
	m.state_code = nil
}

// SetExternalID sets the "external_id" field.
func (m *HearingMutation) SetExternalID(s string) {
	m.external_id = &s
}

// ExternalID returns the value of the "external_id" field in the mutation.
func (m *HearingMutation) ExternalID() (r string, exists bool) {
	v := m.external_id
	if v == nil {
		return
	}
	return *v, true
}

// OldExternalID returns the old "external_id" field's value of the Hearing entity.
// If the Hearing object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *HearingMutation) OldExternalID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExternalID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExternalID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExternalID: %w", err)
	}
	return oldValue.ExternalID, nil
}

// ResetExternalID resets all changes to the "external_id" field.
func (m *HearingMutation) ResetExternalID() {
	m.external_id = nil
}

// SetTitle sets the "title" field.
func (m *HearingMutation) SetTitle(s string) {
	m.title = &s
}

// Title returns the value of the "title" field in the mutation.
func (m *HearingMutation) Title() (r string, exists bool) {
	v := m.title
	if v == nil {
		return
	}
	return *v, true
}

// OldTitle returns the old "title" field's value of the Hearing entity.
// If the Hearing object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *HearingMutation) OldTitle(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTitle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTitle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTitle: %w", err)
	}
	return oldValue.Title, nil
}

// ResetTitle resets all changes to the "title" field.
func (m *HearingMutation) ResetTitle() {
	m.title = nil
}

// SetDescription sets the "description" field.
func (m *HearingMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *HearingMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the Hearing entity.
// If the Hearing object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *HearingMutation) OldDescription(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ClearDescription clears the value of the "description" field.
func (m *HearingMutation) ClearDescription() {
	m.description = nil
	m.clearedFields[hearing.FieldDescription] = struct{}{}
}

// DescriptionCleared returns if the "description" field was cleared in this mutation.
func (m *HearingMutation) DescriptionCleared() bool {
	_, ok := m.clearedFields[hearing.FieldDescription]
	return ok
}

// ResetDescription resets all changes to the "description" field.
func (m *HearingMutation) ResetDescription() {
	m.description = nil
	delete(m.clearedFields, hearing.FieldDescription)
}

// SetHearingDate sets the "hearing_date" field.
func (m *HearingMutation) SetHearingDate(t time.Time) {
	m.hearing_date = &t
}

// HearingDate returns the value of the "hearing_date" field in the mutation.
func (m *HearingMutation) HearingDate() (r time.Time, exists bool) {
	v := m.hearing_date
	if v == nil {
		return
	}
	return *v, true
}

// OldHearingDate returns the old "hearing_date" field's value of the Hearing entity.
// If the Hearing object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *HearingMutation) OldHearingDate(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldHearingDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldHearingDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldHearingDate: %w", err)
	}
	return oldValue.HearingDate, nil
}

// ClearHearingDate clears the value of the "hearing_date" field.
func (m *HearingMutation) ClearHearingDate() {
	m.hearing_date = nil
	m.clearedFields[hearing.FieldHearingDate] = struct{}{}
}

// HearingDateCleared returns if the "hearing_date" field was cleared in this mutation.
func (m *HearingMutation) HearingDateCleared() bool {
	_, ok := m.clearedFields[hearing.FieldHearingDate]
	return ok
}

// ResetHearingDate resets all changes to the "hearing_date" field.
func (m *HearingMutation) ResetHearingDate() {
	m.hearing_date = nil
	delete(m.clearedFields, hearing.FieldHearingDate)
}

// SetHearingType sets the "hearing_type" field.
func (m *HearingMutation) SetHearingType(s string) {
	m.hearing_type = &s
}

// HearingType returns the value of the "hearing_type" field in the mutation.
func (m *HearingMutation) HearingType() (r string, exists bool) {
	v := m.hearing_type
	if v == nil {
		return
	}
	return *v, true
}

// OldHearingType returns the old "hearing_type" field's value of the Hearing entity.
// If the Hearing object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *HearingMutation) OldHearingType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldHearingType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldHearingType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldHearingType: %w", err)
	}
	return oldValue.HearingType, nil
}

// ClearHearingType clears the value of the "hearing_type" field.
func (m *HearingMutation) ClearHearingType() {
	m.hearing_type = nil
	m.clearedFields[hearing.FieldHearingType] = struct{}{}
}

// HearingTypeCleared returns if the "hearing_type" field was cleared in this mutation.
func (m *HearingMutation) HearingTypeCleared() bool {
	_, ok := m.clearedFields[hearing.FieldHearingType]
	return ok
}

// ResetHearingType resets all changes to the "hearing_type" field.
func (m *HearingMutation) ResetHearingType() {
	m.hearing_type = nil
	delete(m.clearedFields, hearing.FieldHearingType)
}

// SetUtilityName sets the "utility_name" field.
func (m *HearingMutation) SetUtilityName(s string) {
	m.utility_name = &s
}

// UtilityName returns the value of the "utility_name" field in the mutation.
func (m *HearingMutation) UtilityName() (r string, exists bool) {
	v := m.utility_name
	if v == nil {
		return
	}
	return *v, true
}

// OldUtilityName returns the old "utility_name" field's value of the Hearing entity.
// If the Hearing object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *HearingMutation) OldUtilityName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUtilityName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUtilityName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUtilityName: %w", err)
	}
	return oldValue.UtilityName, nil
}

// ClearUtilityName clears the value of the "utility_name" field.
func (m *HearingMutation) ClearUtilityName() {
	m.utility_name = nil
	m.clearedFields[hearing.FieldUtilityName] = struct{}{}
}

// UtilityNameCleared returns if the "utility_name" field was cleared in this mutation.
func (m *HearingMutation) UtilityNameCleared() bool {
	_, ok := m.clearedFields[hearing.FieldUtilityName]
	return ok
}

// ResetUtilityName resets all changes to the "utility_name" field.
func (m *HearingMutation) ResetUtilityName() {
	m.utility_name = nil
	delete(m.clearedFields, hearing.FieldUtilityName)
}

// SetDocketNumbers sets the "docket_numbers" field.
func (m *HearingMutation) SetDocketNumbers(s []string) {
	m.docket_numbers = &s
	m.appenddocket_numbers = nil
}

// DocketNumbers returns the value of the "docket_numbers" field in the mutation.
func (m *HearingMutation) DocketNumbers() (r []string, exists bool) {
	v := m.docket_numbers
	if v == nil {
		return
	}
	return *v, true
}

// OldDocketNumbers returns the old "docket_numbers" field's value of the Hearing entity.
// If the Hearing object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *HearingMutation) OldDocketNumbers(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDocketNumbers is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDocketNumbers requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDocketNumbers: %w", err)
	}
	return oldValue.DocketNumbers, nil
}

// AppendDocketNumbers adds s to the "docket_numbers" field.
func (m *HearingMutation) AppendDocketNumbers(s []string) {
	m.appenddocket_numbers = append(m.appenddocket_numbers, s...)
}

// AppendedDocketNumbers returns the list of values that were appended to the "docket_numbers" field in this mutation.
func (m *HearingMutation) AppendedDocketNumbers() ([]string, bool) {
	if len(m.appenddocket_numbers) == 0 {
		return nil, false
	}
	return m.appenddocket_numbers, true
}

// ClearDocketNumbers clears the value of the "docket_numbers" field.
func (m *HearingMutation) ClearDocketNumbers() {
	m.docket_numbers = nil
	m.appenddocket_numbers = nil
	m.clearedFields[hearing.FieldDocketNumbers] = struct{}{}
}

// DocketNumbersCleared returns if the "docket_numbers" field was cleared in this mutation.
func (m *HearingMutation) DocketNumbersCleared() bool {
	_, ok := m.clearedFields[hearing.FieldDocketNumbers]
	return ok
}

// ResetDocketNumbers resets all changes to the "docket_numbers" field.
func (m *HearingMutation) ResetDocketNumbers() {
	m.docket_numbers = nil
	m.appenddocket_numbers = nil
	delete(m.clearedFields, hearing.FieldDocketNumbers)
}

// SetSourceURL sets the "source_url" field.
func (m *HearingMutation) SetSourceURL(s string) {
	m.source_url = &s
}

// SourceURL returns the value of the "source_url" field in the mutation.
func (m *HearingMutation) SourceURL() (r string, exists bool) {
	v := m.source_url
	if v == nil {
		return
	}
	return *v, true
}

// OldSourceURL returns the old "source_url" field's value of the Hearing entity.
// If the Hearing object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *HearingMutation) OldSourceURL(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSourceURL is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSourceURL requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSourceURL: %w", err)
	}
	return oldValue.SourceURL, nil
}

// ClearSourceURL clears the value of the "source_url" field.
func (m *HearingMutation) ClearSourceURL() {
	m.source_url = nil
	m.clearedFields[hearing.FieldSourceURL] = struct{}{}
}

// SourceURLCleared returns if the "source_url" field was cleared in this mutation.
func (m *HearingMutation) SourceURLCleared() bool {
	_, ok := m.clearedFields[hearing.FieldSourceURL]
	return ok
}

// ResetSourceURL resets all changes to the "source_url" field.
func (m *HearingMutation) ResetSourceURL() {
	m.source_url = nil
	delete(m.clearedFields, hearing.FieldSourceURL)
}

// SetMediaURL sets the "media_url" field.
func (m *HearingMutation) SetMediaURL(s string) {
	m.media_url = &s
}

// MediaURL returns the value of the "media_url" field in the mutation.
func (m *HearingMutation) MediaURL() (r string, exists bool) {
	v := m.media_url
	if v == nil {
		return
	}
	return *v, true
}

// OldMediaURL returns the old "media_url" field's value of the Hearing entity.
// If the Hearing object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *HearingMutation) OldMediaURL(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMediaURL is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMediaURL requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMediaURL: %w", err)
	}
	return oldValue.MediaURL, nil
}

// ClearMediaURL clears the value of the "media_url" field.
func (m *HearingMutation) ClearMediaURL() {
	m.media_url = nil
	m.clearedFields[hearing.FieldMediaURL] = struct{}{}
}

// MediaURLCleared returns if the "media_url" field was cleared in this mutation.
func (m *HearingMutation) MediaURLCleared() bool {
	_, ok := m.clearedFields[hearing.FieldMediaURL]
	return ok
}

// ResetMediaURL resets all changes to the "media_url" field.
func (m *HearingMutation) ResetMediaURL() {
	m.media_url = nil
	delete(m.clearedFields, hearing.FieldMediaURL)
}

// SetDurationSeconds sets the "duration_seconds" field.
func (m *HearingMutation) SetDurationSeconds(f float64) {
	m.duration_seconds = &f
	m.addduration_seconds = nil
}

// DurationSeconds returns the value of the "duration_seconds" field in the mutation.
func (m *HearingMutation) DurationSeconds() (r float64, exists bool) {
	v := m.duration_seconds
	if v == nil {
		return
	}
	return *v, true
}

// OldDurationSeconds returns the old "duration_seconds" field's value of the Hearing entity.
// If the Hearing object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *HearingMutation) OldDurationSeconds(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDurationSeconds is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDurationSeconds requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDurationSeconds: %w", err)
	}
	return oldValue.DurationSeconds, nil
}

// AddDurationSeconds adds f to the "duration_seconds" field.
func (m *HearingMutation) AddDurationSeconds(f float64) {
	if m.addduration_seconds != nil {
		*m.addduration_seconds += f
	} else {
		m.addduration_seconds = &f
	}
}

// AddedDurationSeconds returns the value that was added to the "duration_seconds" field in this mutation.
func (m *HearingMutation) AddedDurationSeconds() (r float64, exists bool) {
	v := m.addduration_seconds
	if v == nil {
		return
	}
	return *v, true
}

// ClearDurationSeconds clears the value of the "duration_seconds" field.
func (m *HearingMutation) ClearDurationSeconds() {
	m.duration_seconds = nil
	m.addduration_seconds = nil
	m.clearedFields[hearing.FieldDurationSeconds] = struct{}{}
}

// DurationSecondsCleared returns if the "duration_seconds" field was cleared in this mutation.
func (m *HearingMutation) DurationSecondsCleared() bool {
	_, ok := m.clearedFields[hearing.FieldDurationSeconds]
	return ok
}

// ResetDurationSeconds resets all changes to the "duration_seconds" field.
func (m *HearingMutation) ResetDurationSeconds() {
	m.duration_seconds = nil
	m.addduration_seconds = nil
	delete(m.clearedFields, hearing.FieldDurationSeconds)
}

// SetStatus sets the "status" field.
func (m *HearingMutation) SetStatus(h hearing.Status) {
	m.status = &h
}

// Status returns the value of the "status" field in the mutation.
func (m *HearingMutation) Status() (r hearing.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Hearing entity.
// If the Hearing object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *HearingMutation) OldStatus(ctx context.Context) (v hearing.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *HearingMutation) ResetStatus() {
	m.status = nil
}

// ClearSource clears the "source" edge to the Source entity.
func (m *HearingMutation) ClearSource() {
	m.clearedsource = true
	m.clearedFields[hearing.FieldSourceID] = struct{}{}
}

// SourceCleared reports if the "source" edge to the Source entity was cleared.
func (m *HearingMutation) SourceCleared() bool {
	return m.clearedsource
}

// SourceIDs returns the "source" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// SourceID instead. It exists only for internal usage by the builders.
func (m *HearingMutation) SourceIDs() (ids []string) {
	if id := m.source; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetSource resets all changes to the "source" edge.
func (m *HearingMutation) ResetSource() {
	m.source = nil
	m.clearedsource = false
}

// SetTranscriptID sets the "transcript" edge to the Transcript entity by id.
func (m *HearingMutation) SetTranscriptID(id string) {
	m.transcript = &id
}

// ClearTranscript clears the "transcript" edge to the Transcript entity.
func (m *HearingMutation) ClearTranscript() {
	m.clearedtranscript = true
}

// TranscriptCleared reports if the "transcript" edge to the Transcript entity was cleared.
func (m *HearingMutation) TranscriptCleared() bool {
	return m.clearedtranscript
}

// TranscriptID returns the "transcript" edge ID in the mutation.
func (m *HearingMutation) TranscriptID() (id string, exists bool) {
	if m.transcript != nil {
		return *m.transcript, true
	}
	return
}

// TranscriptIDs returns the "transcript" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// TranscriptID instead. It exists only for internal usage by the builders.
func (m *HearingMutation) TranscriptIDs() (ids []string) {
	if id := m.transcript; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetTranscript resets all changes to the "transcript" edge.
func (m *HearingMutation) ResetTranscript() {
	m.transcript = nil
	m.clearedtranscript = false
}

// AddSegmentIDs adds the "segments" edge to the Segment entity by ids.
func (m *HearingMutation) AddSegmentIDs(ids ...string) {
	if m.segments == nil {
		m.segments = make(map[string]struct{})
	}
	for i := range ids {
		m.segments[ids[i]] = struct{}{}
	}
}

// ClearSegments clears the "segments" edge to the Segment entity.
func (m *HearingMutation) ClearSegments() {
	m.clearedsegments = true
}

// SegmentsCleared reports if the "segments" edge to the Segment entity was cleared.
func (m *HearingMutation) SegmentsCleared() bool {
	return m.clearedsegments
}

// RemoveSegmentIDs removes the "segments" edge to the Segment entity by IDs.
func (m *HearingMutation) RemoveSegmentIDs(ids ...string) {
	if m.removedsegments == nil {
		m.removedsegments = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.segments, ids[i])
		m.removedsegments[ids[i]] = struct{}{}
	}
}

// RemovedSegments returns the removed IDs of the "segments" edge to the Segment entity.
func (m *HearingMutation) RemovedSegmentsIDs() (ids []string) {
	for id := range m.removedsegments {
		ids = append(ids, id)
	}
	return
}

// SegmentsIDs returns the "segments" edge IDs in the mutation.
func (m *HearingMutation) SegmentsIDs() (ids []string) {
	for id := range m.segments {
		ids = append(ids, id)
	}
	return
}

// ResetSegments resets all changes to the "segments" edge.
func (m *HearingMutation) ResetSegments() {
	m.segments = nil
	m.clearedsegments = false
	m.removedsegments = nil
}

// SetAnalysisID sets the "analysis" edge to the Analysis entity by id.
func (m *HearingMutation) SetAnalysisID(id string) {
	m.analysis = &id
}

// ClearAnalysis clears the "analysis" edge to the Analysis entity.
func (m *HearingMutation) ClearAnalysis() {
	m.clearedanalysis = true
}

// AnalysisCleared reports if the "analysis" edge to the Analysis entity was cleared.
func (m *HearingMutation) AnalysisCleared() bool {
	return m.clearedanalysis
}

// AnalysisID returns the "analysis" edge ID in the mutation.
func (m *HearingMutation) AnalysisID() (id string, exists bool) {
	if m.analysis != nil {
		return *m.analysis, true
	}
	return
}

// AnalysisIDs returns the "analysis" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// AnalysisID instead. It exists only for internal usage by the builders.
func (m *HearingMutation) AnalysisIDs() (ids []string) {
	if id := m.analysis; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetAnalysis resets all changes to the "analysis" edge.
func (m *HearingMutation) ResetAnalysis() {
	m.analysis = nil
	m.clearedanalysis = false
}

// AddPipelineJobIDs adds the "pipeline_jobs" edge to the PipelineJob entity by ids.
func (m *HearingMutation) AddPipelineJobIDs(ids ...string) {
	if m.pipeline_jobs == nil {
		m.pipeline_jobs = make(map[string]struct{})
	}
	for i := range ids {
		m.pipeline_jobs[ids[i]] = struct{}{}
	}
}

// ClearPipelineJobs clears the "pipeline_jobs" edge to the PipelineJob entity.
func (m *HearingMutation) ClearPipelineJobs() {
	m.clearedpipeline_jobs = true
}

// PipelineJobsCleared reports if the "pipeline_jobs" edge to the PipelineJob entity was cleared.
func (m *HearingMutation) PipelineJobsCleared() bool {
	return m.clearedpipeline_jobs
}

// RemovePipelineJobIDs removes the "pipeline_jobs" edge to the PipelineJob entity by IDs.
func (m *HearingMutation) RemovePipelineJobIDs(ids ...string) {
	if m.removedpipeline_jobs == nil {
		m.removedpipeline_jobs = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.pipeline_jobs, ids[i])
		m.removedpipeline_jobs[ids[i]] = struct{}{}
	}
}

// RemovedPipelineJobs returns the removed IDs of the "pipeline_jobs" edge to the PipelineJob entity.
func (m *HearingMutation) RemovedPipelineJobsIDs() (ids []string) {
	for id := range m.removedpipeline_jobs {
		ids = append(ids, id)
	}
	return
}

// PipelineJobsIDs returns the "pipeline_jobs" edge IDs in the mutation.
func (m *HearingMutation) PipelineJobsIDs() (ids []string) {
	for id := range m.pipeline_jobs {
		ids = append(ids, id)
	}
	return
}

// ResetPipelineJobs resets all changes to the "pipeline_jobs" edge.
func (m *HearingMutation) ResetPipelineJobs() {
	m.pipeline_jobs = nil
	m.clearedpipeline_jobs = false
	m.removedpipeline_jobs = nil
}

// AddHearingDocketIDs adds the "hearing_dockets" edge to the HearingDocket entity by ids.
func (m *HearingMutation) AddHearingDocketIDs(ids ...string) {
	if m.hearing_dockets == nil {
		m.hearing_dockets = make(map[string]struct{})
	}
	for i := range ids {
		m.hearing_dockets[ids[i]] = struct{}{}
	}
}

// ClearHearingDockets clears the "hearing_dockets" edge to the HearingDocket entity.
func (m *HearingMutation) ClearHearingDockets() {
	m.clearedhearing_dockets = true
}

// HearingDocketsCleared reports if the "hearing_dockets" edge to the HearingDocket entity was cleared.
func (m *HearingMutation) HearingDocketsCleared() bool {
	return m.clearedhearing_dockets
}

// RemoveHearingDocketIDs removes the "hearing_dockets" edge to the HearingDocket entity by IDs.
func (m *HearingMutation) RemoveHearingDocketIDs(ids ...string) {
	if m.removedhearing_dockets == nil {
		m.removedhearing_dockets = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.hearing_dockets, ids[i])
		m.removedhearing_dockets[ids[i]] = struct{}{}
	}
}

// RemovedHearingDockets returns the removed IDs of the "hearing_dockets" edge to the HearingDocket entity.
func (m *HearingMutation) RemovedHearingDocketsIDs() (ids []string) {
	for id := range m.removedhearing_dockets {
		ids = append(ids, id)
	}
	return
}

// HearingDocketsIDs returns the "hearing_dockets" edge IDs in the mutation.
func (m *HearingMutation) HearingDocketsIDs() (ids []string) {
	for id := range m.hearing_dockets {
		ids = append(ids, id)
	}
	return
}

// ResetHearingDockets resets all changes to the "hearing_dockets" edge.
func (m *HearingMutation) ResetHearingDockets() {
	m.hearing_dockets = nil
	m.clearedhearing_dockets = false
	m.removedhearing_dockets = nil
}

// AddExtractedDocketIDs adds the "extracted_dockets" edge to the ExtractedDocket entity by ids.
func (m *HearingMutation) AddExtractedDocketIDs(ids ...string) {
	if m.extracted_dockets == nil {
		m.extracted_dockets = make(map[string]struct{})
	}
	for i := range ids {
		m.extracted_dockets[ids[i]] = struct{}{}
	}
}

// ClearExtractedDockets clears the "extracted_dockets" edge to the ExtractedDocket entity.
func (m *HearingMutation) ClearExtractedDockets() {
	m.clearedextracted_dockets = true
}

// ExtractedDocketsCleared reports if the "extracted_dockets" edge to the ExtractedDocket entity was cleared.
func (m *HearingMutation) ExtractedDocketsCleared() bool {
	return m.clearedextracted_dockets
}

// RemoveExtractedDocketIDs removes the "extracted_dockets" edge to the ExtractedDocket entity by IDs.
func (m *HearingMutation) RemoveExtractedDocketIDs(ids ...string) {
	if m.removedextracted_dockets == nil {
		m.removedextracted_dockets = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.extracted_dockets, ids[i])
		m.removedextracted_dockets[ids[i]] = struct{}{}
	}
}

// RemovedExtractedDockets returns the removed IDs of the "extracted_dockets" edge to the ExtractedDocket entity.
func (m *HearingMutation) RemovedExtractedDocketsIDs() (ids []string) {
	for id := range m.removedextracted_dockets {
		ids = append(ids, id)
	}
	return
}

// ExtractedDocketsIDs returns the "extracted_dockets" edge IDs in the mutation.
func (m *HearingMutation) ExtractedDocketsIDs() (ids []string) {
	for id := range m.extracted_dockets {
		ids = append(ids, id)
	}
	return
}

// ResetExtractedDockets resets all changes to the "extracted_dockets" edge.
func (m *HearingMutation) ResetExtractedDockets() {
	m.extracted_dockets = nil
	m.clearedextracted_dockets = false
	m.removedextracted_dockets = nil
}

// AddHearingUtilityIDs adds the "hearing_utilities" edge to the HearingUtility entity by ids.
func (m *HearingMutation) AddHearingUtilityIDs(ids ...string) {
	if m.hearing_utilities == nil {
		m.hearing_utilities = make(map[string]struct{})
	}
	for i := range ids {
		m.hearing_utilities[ids[i]] = struct{}{}
	}
}

// ClearHearingUtilities clears the "hearing_utilities" edge to the HearingUtility entity.
func (m *HearingMutation) ClearHearingUtilities() {
	m.clearedhearing_utilities = true
}

// HearingUtilitiesCleared reports if the "hearing_utilities" edge to the HearingUtility entity was cleared.
func (m *HearingMutation) HearingUtilitiesCleared() bool {
	return m.clearedhearing_utilities
}

// RemoveHearingUtilityIDs removes the "hearing_utilities" edge to the HearingUtility entity by IDs.
func (m *HearingMutation) RemoveHearingUtilityIDs(ids ...string) {
	if m.removedhearing_utilities == nil {
		m.removedhearing_utilities = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.hearing_utilities, ids[i])
		m.removedhearing_utilities[ids[i]] = struct{}{}
	}
}

// RemovedHearingUtilities returns the removed IDs of the "hearing_utilities" edge to the HearingUtility entity.
func (m *HearingMutation) RemovedHearingUtilitiesIDs() (ids []string) {
	for id := range m.removedhearing_utilities {
		ids = append(ids, id)
	}
	return
}

// HearingUtilitiesIDs returns the "hearing_utilities" edge IDs in the mutation.
func (m *HearingMutation) HearingUtilitiesIDs() (ids []string) {
	for id := range m.hearing_utilities {
		ids = append(ids, id)
	}
	return
}

// ResetHearingUtilities resets all changes to the "hearing_utilities" edge.
func (m *HearingMutation) ResetHearingUtilities() {
	m.hearing_utilities = nil
	m.clearedhearing_utilities = false
	m.removedhearing_utilities = nil
}

// AddHearingTopicIDs adds the "hearing_topics" edge to the HearingTopic entity by ids.
func (m *HearingMutation) AddHearingTopicIDs(ids ...string) {
	if m.hearing_topics == nil {
		m.hearing_topics = make(map[string]struct{})
	}
	for i := range ids {
		m.hearing_topics[ids[i]] = struct{}{}
	}
}

// ClearHearingTopics clears the "hearing_topics" edge to the HearingTopic entity.
func (m *HearingMutation) ClearHearingTopics() {
	m.clearedhearing_topics = true
}

// HearingTopicsCleared reports if the "hearing_topics" edge to the HearingTopic entity was cleared.
func (m *HearingMutation) HearingTopicsCleared() bool {
	return m.clearedhearing_topics
}

// RemoveHearingTopicIDs removes the "hearing_topics" edge to the HearingTopic entity by IDs.
func (m *HearingMutation) RemoveHearingTopicIDs(ids ...string) {
	if m.removedhearing_topics == nil {
		m.removedhearing_topics = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.hearing_topics, ids[i])
		m.removedhearing_topics[ids[i]] = struct{}{}
	}
}

// RemovedHearingTopics returns the removed IDs of the "hearing_topics" edge to the HearingTopic entity.
func (m *HearingMutation) RemovedHearingTopicsIDs() (ids []string) {
	for id := range m.removedhearing_topics {
		ids = append(ids, id)
	}
	return
}

// HearingTopicsIDs returns the "hearing_topics" edge IDs in the mutation.
func (m *HearingMutation) HearingTopicsIDs() (ids []string) {
	for id := range m.hearing_topics {
		ids = append(ids, id)
	}
	return
}

// ResetHearingTopics resets all changes to the "hearing_topics" edge.
func (m *HearingMutation) ResetHearingTopics() {
	m.hearing_topics = nil
	m.clearedhearing_topics = false
	m.removedhearing_topics = nil
}

// Where appends a list predicates to the HearingMutation builder.
func (m *HearingMutation) Where(ps ...predicate.Hearing) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the HearingMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *HearingMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Hearing, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *HearingMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *HearingMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Hearing).
func (m *HearingMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *HearingMutation) Fields() []string {
	fields := make([]string, 0, 15)
	if m.created_at != nil {
		fields = append(fields, hearing.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, hearing.FieldUpdatedAt)
	}
	if m.source != nil {
		fields = append(fields, hearing.FieldSourceID)
	}
	if m.state_code != nil {
		fields = append(fields, hearing.FieldStateCode)
	}
	if m.external_id != nil {
		fields = append(fields, hearing.FieldExternalID)
	}
	if m.title != nil {
		fields = append(fields, hearing.FieldTitle)
	}
	if m.description != nil {
		fields = append(fields, hearing.FieldDescription)
	}
	if m.hearing_date != nil {
		fields = append(fields, hearing.FieldHearingDate)
	}
	if m.hearing_type != nil {
		fields = append(fields, hearing.FieldHearingType)
	}
	if m.utility_name != nil {
		fields = append(fields, hearing.FieldUtilityName)
	}
	if m.docket_numbers != nil {
		fields = append(fields, hearing.FieldDocketNumbers)
	}
	if m.source_url != nil {
		fields = append(fields, hearing.FieldSourceURL)
	}
	if m.media_url != nil {
		fields = append(fields, hearing.FieldMediaURL)
	}
	if m.duration_seconds != nil {
		fields = append(fields, hearing.FieldDurationSeconds)
	}
	if m.status != nil {
		fields = append(fields, hearing.FieldStatus)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *HearingMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case hearing.FieldCreatedAt:
		return m.CreatedAt()
	case hearing.FieldUpdatedAt:
		return m.UpdatedAt()
	case hearing.FieldSourceID:
		return m.SourceID()
	case hearing.FieldStateCode:
		return m.StateCode()
	case hearing.FieldExternalID:
		return m.ExternalID()
	case hearing.FieldTitle:
		return m.Title()
	case hearing.FieldDescription:
		return m.Description()
	case hearing.FieldHearingDate:
		return m.HearingDate()
	case hearing.FieldHearingType:
		return m.HearingType()
	case hearing.FieldUtilityName:
		return m.UtilityName()
	case hearing.FieldDocketNumbers:
		return m.DocketNumbers()
	case hearing.FieldSourceURL:
		return m.SourceURL()
	case hearing.FieldMediaURL:
		return m.MediaURL()
	case hearing.FieldDurationSeconds:
		return m.DurationSeconds()
	case hearing.FieldStatus:
		return m.Status()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *HearingMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case hearing.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case hearing.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case hearing.FieldSourceID:
		return m.OldSourceID(ctx)
	case hearing.FieldStateCode:
		return m.OldStateCode(ctx)
	case hearing.FieldExternalID:
		return m.OldExternalID(ctx)
	case hearing.FieldTitle:
		return m.OldTitle(ctx)
	case hearing.FieldDescription:
		return m.OldDescription(ctx)
	case hearing.FieldHearingDate:
		return m.OldHearingDate(ctx)
	case hearing.FieldHearingType:
		return m.OldHearingType(ctx)
	case hearing.FieldUtilityName:
		return m.OldUtilityName(ctx)
	case hearing.FieldDocketNumbers:
		return m.OldDocketNumbers(ctx)
	case hearing.FieldSourceURL:
		return m.OldSourceURL(ctx)
	case hearing.FieldMediaURL:
		return m.OldMediaURL(ctx)
	case hearing.FieldDurationSeconds:
		return m.OldDurationSeconds(ctx)
	case hearing.FieldStatus:
		return m.OldStatus(ctx)
	}
	return nil, fmt.Errorf("unknown Hearing field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *HearingMutation) SetField(name string, value ent.Value) error {
	switch name {
	case hearing.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case hearing.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case hearing.FieldSourceID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSourceID(v)
		return nil
	case hearing.FieldStateCode:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStateCode(v)
		return nil
	case hearing.FieldExternalID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExternalID(v)
		return nil
	case hearing.FieldTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitle(v)
		return nil
	case hearing.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case hearing.FieldHearingDate:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetHearingDate(v)
		return nil
	case hearing.FieldHearingType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetHearingType(v)
		return nil
	case hearing.FieldUtilityName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUtilityName(v)
		return nil
	case hearing.FieldDocketNumbers:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDocketNumbers(v)
		return nil
	case hearing.FieldSourceURL:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSourceURL(v)
		return nil
	case hearing.FieldMediaURL:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMediaURL(v)
		return nil
	case hearing.FieldDurationSeconds:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDurationSeconds(v)
		return nil
	case hearing.FieldStatus:
		v, ok := value.(hearing.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	}
	return fmt.Errorf("unknown Hearing field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *HearingMutation) AddedFields() []string {
	var fields []string
	if m.addduration_seconds != nil {
		fields = append(fields, hearing.FieldDurationSeconds)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *HearingMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case hearing.FieldDurationSeconds:
		return m.AddedDurationSeconds()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *HearingMutation) AddField(name string, value ent.Value) error {
	switch name {
	case hearing.FieldDurationSeconds:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDurationSeconds(v)
		return nil
	}
	return fmt.Errorf("unknown Hearing numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *HearingMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(hearing.FieldDescription) {
		fields = append(fields, hearing.FieldDescription)
	}
	if m.FieldCleared(hearing.FieldHearingDate) {
		fields = append(fields, hearing.FieldHearingDate)
	}
	if m.FieldCleared(hearing.FieldHearingType) {
		fields = append(fields, hearing.FieldHearingType)
	}
	if m.FieldCleared(hearing.FieldUtilityName) {
		fields = append(fields, hearing.FieldUtilityName)
	}
	if m.FieldCleared(hearing.FieldDocketNumbers) {
		fields = append(fields, hearing.FieldDocketNumbers)
	}
	if m.FieldCleared(hearing.FieldSourceURL) {
		fields = append(fields, hearing.FieldSourceURL)
	}
	if m.FieldCleared(hearing.FieldMediaURL) {
		fields = append(fields, hearing.FieldMediaURL)
	}
	if m.FieldCleared(hearing.FieldDurationSeconds) {
		fields = append(fields, hearing.FieldDurationSeconds)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *HearingMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *HearingMutation) ClearField(name string) error {
	switch name {
	case hearing.FieldDescription:
		m.ClearDescription()
		return nil
	case hearing.FieldHearingDate:
		m.ClearHearingDate()
		return nil
	case hearing.FieldHearingType:
		m.ClearHearingType()
		return nil
	case hearing.FieldUtilityName:
		m.ClearUtilityName()
		return nil
	case hearing.FieldDocketNumbers:
		m.ClearDocketNumbers()
		return nil
	case hearing.FieldSourceURL:
		m.ClearSourceURL()
		return nil
	case hearing.FieldMediaURL:
		m.ClearMediaURL()
		return nil
	case hearing.FieldDurationSeconds:
		m.ClearDurationSeconds()
		return nil
	}
	return fmt.Errorf("unknown Hearing nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *HearingMutation) ResetField(name string) error {
	switch name {
	case hearing.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case hearing.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case hearing.FieldSourceID:
		m.ResetSourceID()
		return nil
	case hearing.FieldStateCode:
		m.ResetStateCode()
		return nil
	case hearing.FieldExternalID:
		m.ResetExternalID()
		return nil
	case hearing.FieldTitle:
		m.ResetTitle()
		return nil
	case hearing.FieldDescription:
		m.ResetDescription()
		return nil
	case hearing.FieldHearingDate:
		m.ResetHearingDate()
		return nil
	case hearing.FieldHearingType:
		m.ResetHearingType()
		return nil
	case hearing.FieldUtilityName:
		m.ResetUtilityName()
		return nil
	case hearing.FieldDocketNumbers:
		m.ResetDocketNumbers()
		return nil
	case hearing.FieldSourceURL:
		m.ResetSourceURL()
		return nil
	case hearing.FieldMediaURL:
		m.ResetMediaURL()
		return nil
	case hearing.FieldDurationSeconds:
		m.ResetDurationSeconds()
		return nil
	case hearing.FieldStatus:
		m.ResetStatus()
		return nil
	}
	return fmt.Errorf("unknown Hearing field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *HearingMutation) AddedEdges() []string {
	edges := make([]string, 0, 9)
	if m.source != nil {
		edges = append(edges, hearing.EdgeSource)
	}
	if m.transcript != nil {
		edges = append(edges, hearing.EdgeTranscript)
	}
	if m.segments != nil {
		edges = append(edges, hearing.EdgeSegments)
	}
	if m.analysis != nil {
		edges = append(edges, hearing.EdgeAnalysis)
	}
	if m.pipeline_jobs != nil {
		edges = append(edges, hearing.EdgePipelineJobs)
	}
	if m.hearing_dockets != nil {
		edges = append(edges, hearing.EdgeHearingDockets)
	}
	if m.extracted_dockets != nil {
		edges = append(edges, hearing.EdgeExtractedDockets)
	}
	if m.hearing_utilities != nil {
		edges = append(edges, hearing.EdgeHearingUtilities)
	}
	if m.hearing_topics != nil {
		edges = append(edges, hearing.EdgeHearingTopics)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *HearingMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case hearing.EdgeSource:
		if id := m.source; id != nil {
			return []ent.Value{*id}
		}
	case hearing.EdgeTranscript:
		if id := m.transcript; id != nil {
			return []ent.Value{*id}
		}
	case hearing.EdgeSegments:
		ids := make([]ent.Value, 0, len(m.segments))
		for id := range m.segments {
			ids = append(ids, id)
		}
		return ids
	case hearing.EdgeAnalysis:
		if id := m.analysis; id != nil {
			return []ent.Value{*id}
		}
	case hearing.EdgePipelineJobs:
		ids := make([]ent.Value, 0, len(m.pipeline_jobs))
		for id := range m.pipeline_jobs {
			ids = append(ids, id)
		}
		return ids
	case hearing.EdgeHearingDockets:
		ids := make([]ent.Value, 0, len(m.hearing_dockets))
		for id := range m.hearing_dockets {
			ids = append(ids, id)
		}
		return ids
	case hearing.EdgeExtractedDockets:
		ids := make([]ent.Value, 0, len(m.extracted_dockets))
		for id := range m.extracted_dockets {
			ids = append(ids, id)
		}
		return ids
	case hearing.EdgeHearingUtilities:
		ids := make([]ent.Value, 0, len(m.hearing_utilities))
		for id := range m.hearing_utilities {
			ids = append(ids, id)
		}
		return ids
	case hearing.EdgeHearingTopics:
		ids := make([]ent.Value, 0, len(m.hearing_topics))
		for id := range m.hearing_topics {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *HearingMutation) RemovedEdges() []string {
	edges := make([]string, 0, 9)
	if m.removedsegments != nil {
		edges = append(edges, hearing.EdgeSegments)
	}
	if m.removedpipeline_jobs != nil {
		edges = append(edges, hearing.EdgePipelineJobs)
	}
	if m.removedhearing_dockets != nil {
		edges = append(edges, hearing.EdgeHearingDockets)
	}
	if m.removedextracted_dockets != nil {
		edges = append(edges, hearing.EdgeExtractedDockets)
	}
	if m.removedhearing_utilities != nil {
		edges = append(edges, hearing.EdgeHearingUtilities)
	}
	if m.removedhearing_topics != nil {
		edges = append(edges, hearing.EdgeHearingTopics)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *HearingMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case hearing.EdgeSegments:
		ids := make([]ent.Value, 0, len(m.removedsegments))
		for id := range m.removedsegments {
			ids = append(ids, id)
		}
		return ids
	case hearing.EdgePipelineJobs:
		ids := make([]ent.Value, 0, len(m.removedpipeline_jobs))
		for id := range m.removedpipeline_jobs {
			ids = append(ids, id)
		}
		return ids
	case hearing.EdgeHearingDockets:
		ids := make([]ent.Value, 0, len(m.removedhearing_dockets))
		for id := range m.removedhearing_dockets {
			ids = append(ids, id)
		}
		return ids
	case hearing.EdgeExtractedDockets:
		ids := make([]ent.Value, 0, len(m.removedextracted_dockets))
		for id := range m.removedextracted_dockets {
			ids = append(ids, id)
		}
		return ids
	case hearing.EdgeHearingUtilities:
		ids := make([]ent.Value, 0, len(m.removedhearing_utilities))
		for id := range m.removedhearing_utilities {
			ids = append(ids, id)
		}
		return ids
	case hearing.EdgeHearingTopics:
		ids := make([]ent.Value, 0, len(m.removedhearing_topics))
		for id := range m.removedhearing_topics {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *HearingMutation) ClearedEdges() []string {
	edges := make([]string, 0, 9)
	if m.clearedsource {
		edges = append(edges, hearing.EdgeSource)
	}
	if m.clearedtranscript {
		edges = append(edges, hearing.EdgeTranscript)
	}
	if m.clearedsegments {
		edges = append(edges, hearing.EdgeSegments)
	}
	if m.clearedanalysis {
		edges = append(edges, hearing.EdgeAnalysis)
	}
	if m.clearedpipeline_jobs {
		edges = append(edges, hearing.EdgePipelineJobs)
	}
	if m.clearedhearing_dockets {
		edges = append(edges, hearing.EdgeHearingDockets)
	}
	if m.clearedextracted_dockets {
		edges = append(edges, hearing.EdgeExtractedDockets)
	}
	if m.clearedhearing_utilities {
		edges = append(edges, hearing.EdgeHearingUtilities)
	}
	if m.clearedhearing_topics {
		edges = append(edges, hearing.EdgeHearingTopics)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *HearingMutation) EdgeCleared(name string) bool {
	switch name {
	case hearing.EdgeSource:
		return m.clearedsource
	case hearing.EdgeTranscript:
		return m.clearedtranscript
	case hearing.EdgeSegments:
		return m.clearedsegments
	case hearing.EdgeAnalysis:
		return m.clearedanalysis
	case hearing.EdgePipelineJobs:
		return m.clearedpipeline_jobs
	case hearing.EdgeHearingDockets:
		return m.clearedhearing_dockets
	case hearing.EdgeExtractedDockets:
		return m.clearedextracted_dockets
	case hearing.EdgeHearingUtilities:
		return m.clearedhearing_utilities
	case hearing.EdgeHearingTopics:
		return m.clearedhearing_topics
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *HearingMutation) ClearEdge(name string) error {
	switch name {
	case hearing.EdgeSource:
		m.ClearSource()
		return nil
	case hearing.EdgeTranscript:
		m.ClearTranscript()
		return nil
	case hearing.EdgeAnalysis:
		m.ClearAnalysis()
		return nil
	}
	return fmt.Errorf("unknown Hearing unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *HearingMutation) ResetEdge(name string) error {
	switch name {
	case hearing.EdgeSource:
		m.ResetSource()
		return nil
	case hearing.EdgeTranscript:
		m.ResetTranscript()
		return nil
	case hearing.EdgeSegments:
		m.ResetSegments()
		return nil
	case hearing.EdgeAnalysis:
		m.ResetAnalysis()
		return nil
	case hearing.EdgePipelineJobs:
		m.ResetPipelineJobs()
		return nil
	case hearing.EdgeHearingDockets:
		m.ResetHearingDockets()
		return nil
	case hearing.EdgeExtractedDockets:
		m.ResetExtractedDockets()
		return nil
	case hearing.EdgeHearingUtilities:
		m.ResetHearingUtilities()
		return nil
	case hearing.EdgeHearingTopics:
		m.ResetHearingTopics()
		return nil
	}
	return fmt.Errorf("unknown Hearing edge %s", name)
}

// HearingDocketMutation represents an operation that mutates the HearingDocket nodes in the graph.
type HearingDocketMutation struct {
	config
	op                  Op
	typ                 string
	id                  *string
	created_at          *time.Time
	updated_at          *time.Time
	confidence_score    *float64
	addconfidence_score *float64
	match_type          *hearingdocket.MatchType
	needs_review        *bool
	review_reason       *string
	context_summary     *string
	is_primary          *bool
	clearedFields       map[string]struct{}
	hearing             *string
	clearedhearing      bool
	docket              *string
	cleareddocket       bool
	done                bool
	oldValue            func(context.Context) (*HearingDocket, error)
	predicates          []predicate.HearingDocket
}

var _ ent.Mutation = (*HearingDocketMutation)(nil)

// hearingdocketOption allows management of the mutation configuration using functional options.
type hearingdocketOption func(*HearingDocketMutation)

// newHearingDocketMutation creates new mutation for the HearingDocket entity.
func newHearingDocketMutation(c config, op Op, opts ...hearingdocketOption) *HearingDocketMutation {
	m := &HearingDocketMutation{
		config:        c,
		op:            op,
		typ:           TypeHearingDocket,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withHearingDocketID sets the ID field of the mutation.
func withHearingDocketID(id string) hearingdocketOption {
	return func(m *HearingDocketMutation) {
		var (
			err   error
			once  sync.Once
			value *HearingDocket
		)
		m.oldValue = func(ctx context.Context) (*HearingDocket, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().HearingDocket.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withHearingDocket sets the old HearingDocket of the mutation.
func withHearingDocket(node *HearingDocket) hearingdocketOption {
	return func(m *HearingDocketMutation) {
		m.oldValue = func(context.Context) (*HearingDocket, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m HearingDocketMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m HearingDocketMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of HearingDocket entities.
func (m *HearingDocketMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *HearingDocketMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *HearingDocketMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().HearingDocket.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *HearingDocketMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *HearingDocketMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the HearingDocket entity.
// If the HearingDocket object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *HearingDocketMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *HearingDocketMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *HearingDocketMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *HearingDocketMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the HearingDocket entity.
// If the HearingDocket object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *HearingDocketMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *HearingDocketMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetHearingID sets the "hearing_id" field.
func (m *HearingDocketMutation) SetHearingID(s string) {
	m.hearing = &s
}

// HearingID returns the value of the "hearing_id" field in the mutation.
func (m *HearingDocketMutation) HearingID() (r string, exists bool) {
	v := m.hearing
	if v == nil {
		return
	}
	return *v, true
}

// OldHearingID returns the old "hearing_id" field's value of the HearingDocket entity.
// If the HearingDocket object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *HearingDocketMutation) OldHearingID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldHearingID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldHearingID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldHearingID: %w", err)
	}
	return oldValue.HearingID, nil
}

// ResetHearingID resets all changes to the "hearing_id" field.
func (m *HearingDocketMutation) ResetHearingID() {
	m.hearing = nil
}

// SetDocketID sets the "docket_id" field.
func (m *HearingDocketMutation) SetDocketID(s string) {
	m.docket = &s
}

// DocketID returns the value of the "docket_id" field in the mutation.
func (m *HearingDocketMutation) DocketID() (r string, exists bool) {
	v := m.docket
	if v == nil {
		return
	}
	return *v, true
}

// OldDocketID returns the old "docket_id" field's value of the HearingDocket entity.
// If the HearingDocket object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *HearingDocketMutation) OldDocketID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDocketID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDocketID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDocketID: %w", err)
	}
	return oldValue.DocketID, nil
}

// ResetDocketID resets all changes to the "docket_id" field.
func (m *HearingDocketMutation) ResetDocketID() {
	m.docket = nil
}

// SetConfidenceScore sets the "confidence_score" field.
func (m *HearingDocketMutation) SetConfidenceScore(f float64) {
	m.confidence_score = &f
	m.addconfidence_score = nil
}

// ConfidenceScore returns the value of the "confidence_score" field in the mutation.
func (m *HearingDocketMutation) ConfidenceScore() (r float64, exists bool) {
	v := m.confidence_score
	if v == nil {
		return
	}
	return *v, true
}

// OldConfidenceScore returns the old "confidence_score" field's value of the HearingDocket entity.
// If the HearingDocket object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *HearingDocketMutation) OldConfidenceScore(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConfidenceScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConfidenceScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConfidenceScore: %w", err)
	}
	return oldValue.ConfidenceScore, nil
}

// AddConfidenceScore adds f to the "confidence_score" field.
func (m *HearingDocketMutation) AddConfidenceScore(f float64) {
	if m.addconfidence_score != nil {
		*m.addconfidence_score += f
	} else {
		m.addconfidence_score = &f
	}
}

// AddedConfidenceScore returns the value that was added to the "confidence_score" field in this mutation.
func (m *HearingDocketMutation) AddedConfidenceScore() (r float64, exists bool) {
	v := m.addconfidence_score
	if v == nil {
		return
	}
	return *v, true
}

// ResetConfidenceScore resets all changes to the "confidence_score" field.
func (m *HearingDocketMutation) ResetConfidenceScore() {
	m.confidence_score = nil
	m.addconfidence_score = nil
}

// SetMatchType sets the "match_type" field.
func (m *HearingDocketMutation) SetMatchType(ht hearingdocket.MatchType) {
	m.match_type = &ht
}

// MatchType returns the value of the "match_type" field in the mutation.
func (m *HearingDocketMutation) MatchType() (r hearingdocket.MatchType, exists bool) {
	v := m.match_type
	if v == nil {
		return
	}
	return *v, true
}

// OldMatchType returns the old "match_type" field's value of the HearingDocket entity.
// If the HearingDocket object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *HearingDocketMutation) OldMatchType(ctx context.Context) (v hearingdocket.MatchType, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMatchType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMatchType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMatchType: %w", err)
	}
	return oldValue.MatchType, nil
}

// ResetMatchType resets all changes to the "match_type" field.
func (m *HearingDocketMutation) ResetMatchType() {
	m.match_type = nil
}

// SetNeedsReview sets the "needs_review" field.
func (m *HearingDocketMutation) SetNeedsReview(b bool) {
	m.needs_review = &b
}

// NeedsReview returns the value of the "needs_review" field in the mutation.
func (m *HearingDocketMutation) NeedsReview() (r bool, exists bool) {
	v := m.needs_review
	if v == nil {
		return
	}
	return *v, true
}

// OldNeedsReview returns the old "needs_review" field's value of the HearingDocket entity.
// If the HearingDocket object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *HearingDocketMutation) OldNeedsReview(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNeedsReview is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNeedsReview requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNeedsReview: %w", err)
	}
	return oldValue.NeedsReview, nil
}

// ResetNeedsReview resets all changes to the "needs_review" field.
func (m *HearingDocketMutation) ResetNeedsReview() {
	m.needs_review = nil
}

// SetReviewReason sets the "review_reason" field.
func (m *HearingDocketMutation) SetReviewReason(s string) {
	m.review_reason = &s
}

// ReviewReason returns the value of the "review_reason" field in the mutation.
func (m *HearingDocketMutation) ReviewReason() (r string, exists bool) {
	v := m.review_reason
	if v == nil {
		return
	}
	return *v, true
}

// OldReviewReason returns the old "review_reason" field's value of the HearingDocket entity.
// If the HearingDocket object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *HearingDocketMutation) OldReviewReason(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReviewReason is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReviewReason requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReviewReason: %w", err)
	}
	return oldValue.ReviewReason, nil
}

// ClearReviewReason clears the value of the "review_reason" field.
func (m *HearingDocketMutation) ClearReviewReason() {
	m.review_reason = nil
	m.clearedFields[hearingdocket.FieldReviewReason] = struct{}{}
}

// ReviewReasonCleared returns if the "review_reason" field was cleared in this mutation.
func (m *HearingDocketMutation) ReviewReasonCleared() bool {
	_, ok := m.clearedFields[hearingdocket.FieldReviewReason]
	return ok
}

// ResetReviewReason resets all changes to the "review_reason" field.
func (m *HearingDocketMutation) ResetReviewReason() {
	m.review_reason = nil
	delete(m.clearedFields, hearingdocket.FieldReviewReason)
}

// SetContextSummary sets the "context_summary" field.
func (m *HearingDocketMutation) SetContextSummary(s string) {
	m.context_summary = &s
}

// ContextSummary returns the value of the "context_summary" field in the mutation.
func (m *HearingDocketMutation) ContextSummary() (r string, exists bool) {
	v := m.context_summary
	if v == nil {
		return
	}
	return *v, true
}

// OldContextSummary returns the old "context_summary" field's value of the HearingDocket entity.
// If the HearingDocket object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *HearingDocketMutation) OldContextSummary(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContextSummary is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContextSummary requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContextSummary: %w", err)
	}
	return oldValue.ContextSummary, nil
}

// ClearContextSummary clears the value of the "context_summary" field.
func (m *HearingDocketMutation) ClearContextSummary() {
	m.context_summary = nil
	m.clearedFields[hearingdocket.FieldContextSummary] = struct{}{}
}

// ContextSummaryCleared returns if the "context_summary" field was cleared in this mutation.
func (m *HearingDocketMutation) ContextSummaryCleared() bool {
	_, ok := m.clearedFields[hearingdocket.FieldContextSummary]
	return ok
}

// ResetContextSummary resets all changes to the "context_summary" field.
func (m *HearingDocketMutation) ResetContextSummary() {
	m.context_summary = nil
	delete(m.clearedFields, hearingdocket.FieldContextSummary)
}

// SetIsPrimary sets the "is_primary" field.
func (m *HearingDocketMutation) SetIsPrimary(b bool) {
	m.is_primary = &b
}

// IsPrimary returns the value of the "is_primary" field in the mutation.
func (m *HearingDocketMutation) IsPrimary() (r bool, exists bool) {
	v := m.is_primary
	if v == nil {
		return
	}
	return *v, true
}

// OldIsPrimary returns the old "is_primary" field's value of the HearingDocket entity.
// If the HearingDocket object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *HearingDocketMutation) OldIsPrimary(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsPrimary is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsPrimary requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsPrimary: %w", err)
	}
	return oldValue.IsPrimary, nil
}

// ResetIsPrimary resets all changes to the "is_primary" field.
func (m *HearingDocketMutation) ResetIsPrimary() {
	m.is_primary = nil
}

// ClearHearing clears the "hearing" edge to the Hearing entity.
func (m *HearingDocketMutation) ClearHearing() {
	m.clearedhearing = true
	m.clearedFields[hearingdocket.FieldHearingID] = struct{}{}
}

// HearingCleared reports if the "hearing" edge to the Hearing entity was cleared.
func (m *HearingDocketMutation) HearingCleared() bool {
	return m.clearedhearing
}

// HearingIDs returns the "hearing" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// HearingID instead. It exists only for internal usage by the builders.
func (m *HearingDocketMutation) HearingIDs() (ids []string) {
	if id := m.hearing; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetHearing resets all changes to the "hearing" edge.
func (m *HearingDocketMutation) ResetHearing() {
	m.hearing = nil
	m.clearedhearing = false
}

// ClearDocket clears the "docket" edge to the Docket entity.
func (m *HearingDocketMutation) ClearDocket() {
	m.cleareddocket = true
	m.clearedFields[hearingdocket.FieldDocketID] = struct{}{}
}

// DocketCleared reports if the "docket" edge to the Docket entity was cleared.
func (m *HearingDocketMutation) DocketCleared() bool {
	return m.cleareddocket
}

// DocketIDs returns the "docket" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// DocketID instead. It exists only for internal usage by the builders.
func (m *HearingDocketMutation) DocketIDs() (ids []string) {
	if id := m.docket; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetDocket resets all changes to the "docket" edge.
func (m *HearingDocketMutation) ResetDocket() {
	m.docket = nil
	m.cleareddocket = false
}

// Where appends a list predicates to the HearingDocketMutation builder.
func (m *HearingDocketMutation) Where(ps ...predicate.HearingDocket) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the HearingDocketMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *HearingDocketMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.HearingDocket, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *HearingDocketMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *HearingDocketMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (HearingDocket).
func (m *HearingDocketMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *HearingDocketMutation) Fields() []string {
	fields := make([]string, 0, 10)
	if m.created_at != nil {
		fields = append(fields, hearingdocket.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, hearingdocket.FieldUpdatedAt)
	}
	if m.hearing != nil {
		fields = append(fields, hearingdocket.FieldHearingID)
	}
	if m.docket != nil {
		fields = append(fields, hearingdocket.FieldDocketID)
	}
	if m.confidence_score != nil {
		fields = append(fields, hearingdocket.FieldConfidenceScore)
	}
	if m.match_type != nil {
		fields = append(fields, hearingdocket.FieldMatchType)
	}
	if m.needs_review != nil {
		fields = append(fields, hearingdocket.FieldNeedsReview)
	}
	if m.review_reason != nil {
		fields = append(fields, hearingdocket.FieldReviewReason)
	}
	if m.context_summary != nil {
		fields = append(fields, hearingdocket.FieldContextSummary)
	}
	if m.is_primary != nil {
		fields = append(fields, hearingdocket.FieldIsPrimary)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *HearingDocketMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case hearingdocket.FieldCreatedAt:
		return m.CreatedAt()
	case hearingdocket.FieldUpdatedAt:
		return m.UpdatedAt()
	case hearingdocket.FieldHearingID:
		return m.HearingID()
	case hearingdocket.FieldDocketID:
		return m.DocketID()
	case hearingdocket.FieldConfidenceScore:
		return m.ConfidenceScore()
	case hearingdocket.FieldMatchType:
		return m.MatchType()
	case hearingdocket.FieldNeedsReview:
		return m.NeedsReview()
	case hearingdocket.FieldReviewReason:
		return m.ReviewReason()
	case hearingdocket.FieldContextSummary:
		return m.ContextSummary()
	case hearingdocket.FieldIsPrimary:
		return m.IsPrimary()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *HearingDocketMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case hearingdocket.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case hearingdocket.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case hearingdocket.FieldHearingID:
		return m.OldHearingID(ctx)
	case hearingdocket.FieldDocketID:
		return m.OldDocketID(ctx)
	case hearingdocket.FieldConfidenceScore:
		return m.OldConfidenceScore(ctx)
	case hearingdocket.FieldMatchType:
		return m.OldMatchType(ctx)
	case hearingdocket.FieldNeedsReview:
		return m.OldNeedsReview(ctx)
	case hearingdocket.FieldReviewReason:
		return m.OldReviewReason(ctx)
	case hearingdocket.FieldContextSummary:
		return m.OldContextSummary(ctx)
	case hearingdocket.FieldIsPrimary:
		return m.OldIsPrimary(ctx)
	}
	return nil, fmt.Errorf("unknown HearingDocket field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *HearingDocketMutation) SetField(name string, value ent.Value) error {
	switch name {
	case hearingdocket.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case hearingdocket.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case hearingdocket.FieldHearingID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetHearingID(v)
		return nil
	case hearingdocket.FieldDocketID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDocketID(v)
		return nil
	case hearingdocket.FieldConfidenceScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConfidenceScore(v)
		return nil
	case hearingdocket.FieldMatchType:
		v, ok := value.(hearingdocket.MatchType)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMatchType(v)
		return nil
	case hearingdocket.FieldNeedsReview:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNeedsReview(v)
		return nil
	case hearingdocket.FieldReviewReason:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReviewReason(v)
		return nil
	case hearingdocket.FieldContextSummary:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContextSummary(v)
		return nil
	case hearingdocket.FieldIsPrimary:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsPrimary(v)
		return nil
	}
	return fmt.Errorf("unknown HearingDocket field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *HearingDocketMutation) AddedFields() []string {
	var fields []string
	if m.addconfidence_score != nil {
		fields = append(fields, hearingdocket.FieldConfidenceScore)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *HearingDocketMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case hearingdocket.FieldConfidenceScore:
		return m.AddedConfidenceScore()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *HearingDocketMutation) AddField(name string, value ent.Value) error {
	switch name {
	case hearingdocket.FieldConfidenceScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddConfidenceScore(v)
		return nil
	}
	return fmt.Errorf("unknown HearingDocket numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *HearingDocketMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(hearingdocket.FieldReviewReason) {
		fields = append(fields, hearingdocket.FieldReviewReason)
	}
	if m.FieldCleared(hearingdocket.FieldContextSummary) {
		fields = append(fields, hearingdocket.FieldContextSummary)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *HearingDocketMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *HearingDocketMutation) ClearField(name string) error {
	switch name {
	case hearingdocket.FieldReviewReason:
		m.ClearReviewReason()
		return nil
	case hearingdocket.FieldContextSummary:
		m.ClearContextSummary()
		return nil
	}
	return fmt.Errorf("unknown HearingDocket nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *HearingDocketMutation) ResetField(name string) error {
	switch name {
	case hearingdocket.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case hearingdocket.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case hearingdocket.FieldHearingID:
		m.ResetHearingID()
		return nil
	case hearingdocket.FieldDocketID:
		m.ResetDocketID()
		return nil
	case hearingdocket.FieldConfidenceScore:
		m.ResetConfidenceScore()
		return nil
	case hearingdocket.FieldMatchType:
		m.ResetMatchType()
		return nil
	case hearingdocket.FieldNeedsReview:
		m.ResetNeedsReview()
		return nil
	case hearingdocket.FieldReviewReason:
		m.ResetReviewReason()
		return nil
	case hearingdocket.FieldContextSummary:
		m.ResetContextSummary()
		return nil
	case hearingdocket.FieldIsPrimary:
		m.ResetIsPrimary()
		return nil
	}
	return fmt.Errorf("unknown HearingDocket field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *HearingDocketMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.hearing != nil {
		edges = append(edges, hearingdocket.EdgeHearing)
	}
	if m.docket != nil {
		edges = append(edges, hearingdocket.EdgeDocket)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *HearingDocketMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case hearingdocket.EdgeHearing:
		if id := m.hearing; id != nil {
			return []ent.Value{*id}
		}
	case hearingdocket.EdgeDocket:
		if id := m.docket; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *HearingDocketMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *HearingDocketMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *HearingDocketMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedhearing {
		edges = append(edges, hearingdocket.EdgeHearing)
	}
	if m.cleareddocket {
		edges = append(edges, hearingdocket.EdgeDocket)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *HearingDocketMutation) EdgeCleared(name string) bool {
	switch name {
	case hearingdocket.EdgeHearing:
		return m.clearedhearing
	case hearingdocket.EdgeDocket:
		return m.cleareddocket
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *HearingDocketMutation) ClearEdge(name string) error {
	switch name {
	case hearingdocket.EdgeHearing:
		m.ClearHearing()
		return nil
	case hearingdocket.EdgeDocket:
		m.ClearDocket()
		return nil
	}
	return fmt.Errorf("unknown HearingDocket unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *HearingDocketMutation) ResetEdge(name string) error {
	switch name {
	case hearingdocket.EdgeHearing:
		m.ResetHearing()
		return nil
	case hearingdocket.EdgeDocket:
		m.ResetDocket()
		return nil
	}
	return fmt.Errorf("unknown HearingDocket edge %s", name)
}

// HearingTopicMutation represents an operation that mutates the HearingTopic nodes in the graph.
type HearingTopicMutation struct {
	config
	op             Op
	typ            string
	id             *string
	created_at     *time.Time
	updated_at     *time.Time
	raw_name       *string
	relevance      *string
	confidence     *float64
	addconfidence  *float64
	needs_review   *bool
	clearedFields  map[string]struct{}
	hearing        *string
	clearedhearing bool
	topic          *string
	clearedtopic   bool
	done           bool
	oldValue       func(context.Context) (*HearingTopic, error)
	predicates     []predicate.HearingTopic
}

var _ ent.Mutation = (*HearingTopicMutation)(nil)

// hearingtopicOption allows management of the mutation configuration using functional options.
type hearingtopicOption func(*HearingTopicMutation)

// newHearingTopicMutation creates new mutation for the HearingTopic entity.
func newHearingTopicMutation(c config, op Op, opts ...hearingtopicOption) *HearingTopicMutation {
	m := &HearingTopicMutation{
		config:        c,
		op:            op,
		typ:           TypeHearingTopic,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withHearingTopicID sets the ID field of the mutation.
func withHearingTopicID(id string) hearingtopicOption {
	return func(m *HearingTopicMutation) {
		var (
			err   error
			once  sync.Once
			value *HearingTopic
		)
		m.oldValue = func(ctx context.Context) (*HearingTopic, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().HearingTopic.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withHearingTopic sets the old HearingTopic of the mutation.
func withHearingTopic(node *HearingTopic) hearingtopicOption {
	return func(m *HearingTopicMutation) {
		m.oldValue = func(context.Context) (*HearingTopic, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m HearingTopicMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m HearingTopicMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of HearingTopic entities.
func (m *HearingTopicMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *HearingTopicMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *HearingTopicMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().HearingTopic.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *HearingTopicMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *HearingTopicMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the HearingTopic entity.
// If the HearingTopic object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *HearingTopicMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *HearingTopicMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *HearingTopicMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *HearingTopicMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the HearingTopic entity.
// If the HearingTopic object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *HearingTopicMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *HearingTopicMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetHearingID sets the "hearing_id" field.
func (m *HearingTopicMutation) SetHearingID(s string) {
	m.hearing = &s
}

// HearingID returns the value of the "hearing_id" field in the mutation.
func (m *HearingTopicMutation) HearingID() (r string, exists bool) {
	v := m.hearing
	if v == nil {
		return
	}
	return *v, true
}

// OldHearingID returns the old "hearing_id" field's value of the HearingTopic entity.
// If the HearingTopic object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *HearingTopicMutation) OldHearingID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldHearingID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldHearingID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldHearingID: %w", err)
	}
	return oldValue.HearingID, nil
}

// ResetHearingID resets all changes to the "hearing_id" field.
func (m *HearingTopicMutation) ResetHearingID() {
	m.hearing = nil
}

// SetTopicID sets the "topic_id" field.
func (m *HearingTopicMutation) SetTopicID(s string) {
	m.topic = &s
}

// TopicID returns the value of the "topic_id" field in the mutation.
func (m *HearingTopicMutation) TopicID() (r string, exists bool) {
	v := m.topic
	if v == nil {
		return
	}
	return *v, true
}

// OldTopicID returns the old "topic_id" field's value of the HearingTopic entity.
// If the HearingTopic object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *HearingTopicMutation) OldTopicID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTopicID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTopicID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTopicID: %w", err)
	}
	return oldValue.TopicID, nil
}

// ClearTopicID clears the value of the "topic_id" field.
func (m *HearingTopicMutation) ClearTopicID() {
	m.topic = nil
	m.clearedFields[hearingtopic.FieldTopicID] = struct{}{}
}

// TopicIDCleared returns if the "topic_id" field was cleared in this mutation.
func (m *HearingTopicMutation) TopicIDCleared() bool {
	_, ok := m.clearedFields[hearingtopic.FieldTopicID]
	return ok
}

// ResetTopicID resets all changes to the "topic_id" field.
func (m *HearingTopicMutation) ResetTopicID() {
	m.topic = nil
	delete(m.clearedFields, hearingtopic.FieldTopicID)
}

// SetRawName sets the "raw_name" field.
func (m *HearingTopicMutation) SetRawName(s string) {
	m.raw_name = &s
}

// RawName returns the value of the "raw_name" field in the mutation.
func (m *HearingTopicMutation) RawName() (r string, exists bool) {
	v := m.raw_name
	if v == nil {
		return
	}
	return *v, true
}

// OldRawName returns the old "raw_name" field's value of the HearingTopic entity.
// If the HearingTopic object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *HearingTopicMutation) OldRawName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRawName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRawName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRawName: %w", err)
	}
	return oldValue.RawName, nil
}

// ResetRawName resets all changes to the "raw_name" field.
func (m *HearingTopicMutation) ResetRawName() {
	m.raw_name = nil
}

// SetRelevance sets the "relevance" field.
func (m *HearingTopicMutation) SetRelevance(s string) {
	m.relevance = &s
}

// Relevance returns the value of the "relevance" field in the mutation.
func (m *HearingTopicMutation) Relevance() (r string, exists bool) {
	v := m.relevance
	if v == nil {
		return
	}
	return *v, true
}

// OldRelevance returns the old "relevance" field's value of the HearingTopic entity.
// If the HearingTopic object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *HearingTopicMutation) OldRelevance(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRelevance is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRelevance requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRelevance: %w", err)
	}
	return oldValue.Relevance, nil
}

// ClearRelevance clears the value of the "relevance" field.
func (m *HearingTopicMutation) ClearRelevance() {
	m.relevance = nil
	m.clearedFields[hearingtopic.FieldRelevance] = struct{}{}
}

// RelevanceCleared returns if the "relevance" field was cleared in this mutation.
func (m *HearingTopicMutation) RelevanceCleared() bool {
	_, ok := m.clearedFields[hearingtopic.FieldRelevance]
	return ok
}

// ResetRelevance resets all changes to the "relevance" field.
func (m *HearingTopicMutation) ResetRelevance() {
	m.relevance = nil
	delete(m.clearedFields, hearingtopic.FieldRelevance)
}

// SetConfidence sets the "confidence" field.
func (m *HearingTopicMutation) SetConfidence(f float64) {
	m.confidence = &f
	m.addconfidence = nil
}

// Confidence returns the value of the "confidence" field in the mutation.
func (m *HearingTopicMutation) Confidence() (r float64, exists bool) {
	v := m.confidence
	if v == nil {
		return
	}
	return *v, true
}

// OldConfidence returns the old "confidence" field's value of the HearingTopic entity.
// If the HearingTopic object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *HearingTopicMutation) OldConfidence(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConfidence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConfidence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConfidence: %w", err)
	}
	return oldValue.Confidence, nil
}

// AddConfidence adds f to the "confidence" field.
func (m *HearingTopicMutation) AddConfidence(f float64) {
	if m.addconfidence != nil {
		*m.addconfidence += f
	} else {
		m.addconfidence = &f
	}
}

// AddedConfidence returns the value that was added to the "confidence" field in this mutation.
func (m *HearingTopicMutation) AddedConfidence() (r float64, exists bool) {
	v := m.addconfidence
	if v == nil {
		return
	}
	return *v, true
}

// ResetConfidence resets all changes to the "confidence" field.
func (m *HearingTopicMutation) ResetConfidence() {
	m.confidence = nil
	m.addconfidence = nil
}

// SetNeedsReview sets the "needs_review" field.
func (m *HearingTopicMutation) SetNeedsReview(b bool) {
	m.needs_review = &b
}

// NeedsReview returns the value of the "needs_review" field in the mutation.
func (m *HearingTopicMutation) NeedsReview() (r bool, exists bool) {
	v := m.needs_review
	if v == nil {
		return
	}
	return *v, true
}

// OldNeedsReview returns the old "needs_review" field's value of the HearingTopic entity.
// If the HearingTopic object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *HearingTopicMutation) OldNeedsReview(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNeedsReview is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNeedsReview requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNeedsReview: %w", err)
	}
	return oldValue.NeedsReview, nil
}

// ResetNeedsReview resets all changes to the "needs_review" field.
func (m *HearingTopicMutation) ResetNeedsReview() {
	m.needs_review = nil
}

// ClearHearing clears the "hearing" edge to the Hearing entity.
func (m *HearingTopicMutation) ClearHearing() {
	m.clearedhearing = true
	m.clearedFields[hearingtopic.FieldHearingID] = struct{}{}
}

// HearingCleared reports if the "hearing" edge to the Hearing entity was cleared.
func (m *HearingTopicMutation) HearingCleared() bool {
	return m.clearedhearing
}

// HearingIDs returns the "hearing" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// HearingID instead. It exists only for internal usage by the builders.
func (m *HearingTopicMutation) HearingIDs() (ids []string) {
	if id := m.hearing; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetHearing resets all changes to the "hearing" edge.
func (m *HearingTopicMutation) ResetHearing() {
	m.hearing = nil
	m.clearedhearing = false
}

// ClearTopic clears the "topic" edge to the Topic entity.
func (m *HearingTopicMutation) ClearTopic() {
	m.clearedtopic = true
	m.clearedFields[hearingtopic.FieldTopicID] = struct{}{}
}

// TopicCleared reports if the "topic" edge to the Topic entity was cleared.
func (m *HearingTopicMutation) TopicCleared() bool {
	return m.TopicIDCleared() || m.clearedtopic
}

// TopicIDs returns the "topic" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// TopicID instead. It exists only for internal usage by the builders.
func (m *HearingTopicMutation) TopicIDs() (ids []string) {
	if id := m.topic; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetTopic resets all changes to the "topic" edge.
func (m *HearingTopicMutation) ResetTopic() {
	m.topic = nil
	m.clearedtopic = false
}

// Where appends a list predicates to the HearingTopicMutation builder.
func (m *HearingTopicMutation) Where(ps ...predicate.HearingTopic) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the HearingTopicMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *HearingTopicMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.HearingTopic, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *HearingTopicMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *HearingTopicMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (HearingTopic).
func (m *HearingTopicMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *HearingTopicMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.created_at != nil {
		fields = append(fields, hearingtopic.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, hearingtopic.FieldUpdatedAt)
	}
	if m.hearing != nil {
		fields = append(fields, hearingtopic.FieldHearingID)
	}
	if m.topic != nil {
		fields = append(fields, hearingtopic.FieldTopicID)
	}
	if m.raw_name != nil {
		fields = append(fields, hearingtopic.FieldRawName)
	}
	if m.relevance != nil {
		fields = append(fields, hearingtopic.FieldRelevance)
	}
	if m.confidence != nil {
		fields = append(fields, hearingtopic.FieldConfidence)
	}
	if m.needs_review != nil {
		fields = append(fields, hearingtopic.FieldNeedsReview)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *HearingTopicMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case hearingtopic.FieldCreatedAt:
		return m.CreatedAt()
	case hearingtopic.FieldUpdatedAt:
		return m.UpdatedAt()
	case hearingtopic.FieldHearingID:
		return m.HearingID()
	case hearingtopic.FieldTopicID:
		return m.TopicID()
	case hearingtopic.FieldRawName:
		return m.RawName()
	case hearingtopic.FieldRelevance:
		return m.Relevance()
	case hearingtopic.FieldConfidence:
		return m.Confidence()
	case hearingtopic.FieldNeedsReview:
		return m.NeedsReview()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *HearingTopicMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case hearingtopic.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case hearingtopic.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case hearingtopic.FieldHearingID:
		return m.OldHearingID(ctx)
	case hearingtopic.FieldTopicID:
		return m.OldTopicID(ctx)
	case hearingtopic.FieldRawName:
		return m.OldRawName(ctx)
	case hearingtopic.FieldRelevance:
		return m.OldRelevance(ctx)
	case hearingtopic.FieldConfidence:
		return m.OldConfidence(ctx)
	case hearingtopic.FieldNeedsReview:
		return m.OldNeedsReview(ctx)
	}
	return nil, fmt.Errorf("unknown HearingTopic field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *HearingTopicMutation) SetField(name string, value ent.Value) error {
	switch name {
	case hearingtopic.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case hearingtopic.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case hearingtopic.FieldHearingID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetHearingID(v)
		return nil
	case hearingtopic.FieldTopicID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTopicID(v)
		return nil
	case hearingtopic.FieldRawName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRawName(v)
		return nil
	case hearingtopic.FieldRelevance:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRelevance(v)
		return nil
	case hearingtopic.FieldConfidence:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConfidence(v)
		return nil
	case hearingtopic.FieldNeedsReview:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNeedsReview(v)
		return nil
	}
	return fmt.Errorf("unknown HearingTopic field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *HearingTopicMutation) AddedFields() []string {
	var fields []string
	if m.addconfidence != nil {
		fields = append(fields, hearingtopic.FieldConfidence)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *HearingTopicMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case hearingtopic.FieldConfidence:
		return m.AddedConfidence()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *HearingTopicMutation) AddField(name string, value ent.Value) error {
	switch name {
	case hearingtopic.FieldConfidence:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddConfidence(v)
		return nil
	}
	return fmt.Errorf("unknown HearingTopic numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *HearingTopicMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(hearingtopic.FieldTopicID) {
		fields = append(fields, hearingtopic.FieldTopicID)
	}
	if m.FieldCleared(hearingtopic.FieldRelevance) {
		fields = append(fields, hearingtopic.FieldRelevance)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *HearingTopicMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *HearingTopicMutation) ClearField(name string) error {
	switch name {
	case hearingtopic.FieldTopicID:
		m.ClearTopicID()
		return nil
	case hearingtopic.FieldRelevance:
		m.ClearRelevance()
		return nil
	}
	return fmt.Errorf("unknown HearingTopic nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *HearingTopicMutation) ResetField(name string) error {
	switch name {
	case hearingtopic.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case hearingtopic.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case hearingtopic.FieldHearingID:
		m.ResetHearingID()
		return nil
	case hearingtopic.FieldTopicID:
		m.ResetTopicID()
		return nil
	case hearingtopic.FieldRawName:
		m.ResetRawName()
		return nil
	case hearingtopic.FieldRelevance:
		m.ResetRelevance()
		return nil
	case hearingtopic.FieldConfidence:
		m.ResetConfidence()
		return nil
	case hearingtopic.FieldNeedsReview:
		m.ResetNeedsReview()
		return nil
	}
	return fmt.Errorf("unknown HearingTopic field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *HearingTopicMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.hearing != nil {
		edges = append(edges, hearingtopic.EdgeHearing)
	}
	if m.topic != nil {
		edges = append(edges, hearingtopic.EdgeTopic)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *HearingTopicMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case hearingtopic.EdgeHearing:
		if id := m.hearing; id != nil {
			return []ent.Value{*id}
		}
	case hearingtopic.EdgeTopic:
		if id := m.topic; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *HearingTopicMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *HearingTopicMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *HearingTopicMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedhearing {
		edges = append(edges, hearingtopic.EdgeHearing)
	}
	if m.clearedtopic {
		edges = append(edges, hearingtopic.EdgeTopic)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *HearingTopicMutation) EdgeCleared(name string) bool {
	switch name {
	case hearingtopic.EdgeHearing:
		return m.clearedhearing
	case hearingtopic.EdgeTopic:
		return m.clearedtopic
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *HearingTopicMutation) ClearEdge(name string) error {
	switch name {
	case hearingtopic.EdgeHearing:
		m.ClearHearing()
		return nil
	case hearingtopic.EdgeTopic:
		m.ClearTopic()
		return nil
	}
	return fmt.Errorf("unknown HearingTopic unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *HearingTopicMutation) ResetEdge(name string) error {
	switch name {
	case hearingtopic.EdgeHearing:
		m.ResetHearing()
		return nil
	case hearingtopic.EdgeTopic:
		m.ResetTopic()
		return nil
	}
	return fmt.Errorf("unknown HearingTopic edge %s", name)
}

// HearingUtilityMutation represents an operation that mutates the HearingUtility nodes in the graph.
type HearingUtilityMutation struct {
	config
	op             Op
	typ            string
	id             *string
	created_at     *time.Time
	updated_at     *time.Time
	raw_name       *string
	role           *string
	confidence     *float64
	addconfidence  *float64
	needs_review   *bool
	clearedFields  map[string]struct{}
	hearing        *string
	clearedhearing bool
	utility        *string
	clearedutility bool
	done           bool
	oldValue       func(context.Context) (*HearingUtility, error)
	predicates     []predicate.HearingUtility
}

var _ ent.Mutation = (*HearingUtilityMutation)(nil)

// hearingutilityOption allows management of the mutation configuration using functional options.
type hearingutilityOption func(*HearingUtilityMutation)

// newHearingUtilityMutation creates new mutation for the HearingUtility entity.
func newHearingUtilityMutation(c config, op Op, opts ...hearingutilityOption) *HearingUtilityMutation {
	m := &HearingUtilityMutation{
		config:        c,
		op:            op,
		typ:           TypeHearingUtility,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withHearingUtilityID sets the ID field of the mutation.
func withHearingUtilityID(id string) hearingutilityOption {
	return func(m *HearingUtilityMutation) {
		var (
			err   error
			once  sync.Once
			value *HearingUtility
		)
		m.oldValue = func(ctx context.Context) (*HearingUtility, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().HearingUtility.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withHearingUtility sets the old HearingUtility of the mutation.
func withHearingUtility(node *HearingUtility) hearingutilityOption {
	return func(m *HearingUtilityMutation) {
		m.oldValue = func(context.Context) (*HearingUtility, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m HearingUtilityMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m HearingUtilityMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of HearingUtility entities.
func (m *HearingUtilityMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *HearingUtilityMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *HearingUtilityMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().HearingUtility.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *HearingUtilityMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *HearingUtilityMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the HearingUtility entity.
// If the HearingUtility object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *HearingUtilityMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *HearingUtilityMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *HearingUtilityMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *HearingUtilityMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the HearingUtility entity.
// If the HearingUtility object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *HearingUtilityMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *HearingUtilityMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetHearingID sets the "hearing_id" field.
func (m *HearingUtilityMutation) SetHearingID(s string) {
	m.hearing = &s
}

// HearingID returns the value of the "hearing_id" field in the mutation.
func (m *HearingUtilityMutation) HearingID() (r string, exists bool) {
	v := m.hearing
	if v == nil {
		return
	}
	return *v, true
}

// OldHearingID returns the old "hearing_id" field's value of the HearingUtility entity.
// If the HearingUtility object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *HearingUtilityMutation) OldHearingID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldHearingID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldHearingID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldHearingID: %w", err)
	}
	return oldValue.HearingID, nil
}

// ResetHearingID resets all changes to the "hearing_id" field.
func (m *HearingUtilityMutation) ResetHearingID() {
	m.hearing = nil
}

// SetUtilityID sets the "utility_id" field.
func (m *HearingUtilityMutation) SetUtilityID(s string) {
	m.utility = &s
}

// UtilityID returns the value of the "utility_id" field in the mutation.
func (m *HearingUtilityMutation) UtilityID() (r string, exists bool) {
	v := m.utility
	if v == nil {
		return
	}
	return *v, true
}

// OldUtilityID returns the old "utility_id" field's value of the HearingUtility entity.
// If the HearingUtility object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *HearingUtilityMutation) OldUtilityID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUtilityID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUtilityID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUtilityID: %w", err)
	}
	return oldValue.UtilityID, nil
}

// ClearUtilityID clears the value of the "utility_id" field.
func (m *HearingUtilityMutation) ClearUtilityID() {
	m.utility = nil
	m.clearedFields[hearingutility.FieldUtilityID] = struct{}{}
}

// UtilityIDCleared returns if the "utility_id" field was cleared in this mutation.
func (m *HearingUtilityMutation) UtilityIDCleared() bool {
	_, ok := m.clearedFields[hearingutility.FieldUtilityID]
	return ok
}

// ResetUtilityID resets all changes to the "utility_id" field.
func (m *HearingUtilityMutation) ResetUtilityID() {
	m.utility = nil
	delete(m.clearedFields, hearingutility.FieldUtilityID)
}

// SetRawName sets the "raw_name" field.
func (m *HearingUtilityMutation) SetRawName(s string) {
	m.raw_name = &s
}

// RawName returns the value of the "raw_name" field in the mutation.
func (m *HearingUtilityMutation) RawName() (r string, exists bool) {
	v := m.raw_name
	if v == nil {
		return
	}
	return *v, true
}

// OldRawName returns the old "raw_name" field's value of the HearingUtility entity.
// If the HearingUtility object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *HearingUtilityMutation) OldRawName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRawName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRawName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRawName: %w", err)
	}
	return oldValue.RawName, nil
}

// ResetRawName resets all changes to the "raw_name" field.
func (m *HearingUtilityMutation) ResetRawName() {
	m.raw_name = nil
}

// SetRole sets the "role" field.
func (m *HearingUtilityMutation) SetRole(s string) {
	m.role = &s
}

// Role returns the value of the "role" field in the mutation.
func (m *HearingUtilityMutation) Role() (r string, exists bool) {
	v := m.role
	if v == nil {
		return
	}
	return *v, true
}

// OldRole returns the old "role" field's value of the HearingUtility entity.
// If the HearingUtility object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *HearingUtilityMutation) OldRole(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRole is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRole requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRole: %w", err)
	}
	return oldValue.Role, nil
}

// ClearRole clears the value of the "role" field.
func (m *HearingUtilityMutation) ClearRole() {
	m.role = nil
	m.clearedFields[hearingutility.FieldRole] = struct{}{}
}

// RoleCleared returns if the "role" field was cleared in this mutation.
func (m *HearingUtilityMutation) RoleCleared() bool {
	_, ok := m.clearedFields[hearingutility.FieldRole]
	return ok
}

// ResetRole resets all changes to the "role" field.
func (m *HearingUtilityMutation) ResetRole() {
	m.role = nil
	delete(m.clearedFields, hearingutility.FieldRole)
}

// SetConfidence sets the "confidence" field.
func (m *HearingUtilityMutation) SetConfidence(f float64) {
	m.confidence = &f
	m.addconfidence = nil
}

// Confidence returns the value of the "confidence" field in the mutation.
func (m *HearingUtilityMutation) Confidence() (r float64, exists bool) {
	v := m.confidence
	if v == nil {
		return
	}
	return *v, true
}

// OldConfidence returns the old "confidence" field's value of the HearingUtility entity.
// If the HearingUtility object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *HearingUtilityMutation) OldConfidence(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConfidence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConfidence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConfidence: %w", err)
	}
	return oldValue.Confidence, nil
}

// AddConfidence adds f to the "confidence" field.
func (m *HearingUtilityMutation) AddConfidence(f float64) {
	if m.addconfidence != nil {
		*m.addconfidence += f
	} else {
		m.addconfidence = &f
	}
}

// AddedConfidence returns the value that was added to the "confidence" field in this mutation.
func (m *HearingUtilityMutation) AddedConfidence() (r float64, exists bool) {
	v := m.addconfidence
	if v == nil {
		return
	}
	return *v, true
}

// ResetConfidence resets all changes to the "confidence" field.
func (m *HearingUtilityMutation) ResetConfidence() {
	m.confidence = nil
	m.addconfidence = nil
}

// SetNeedsReview sets the "needs_review" field.
func (m *HearingUtilityMutation) SetNeedsReview(b bool) {
	m.needs_review = &b
}

// NeedsReview returns the value of the "needs_review" field in the mutation.
func (m *HearingUtilityMutation) NeedsReview() (r bool, exists bool) {
	v := m.needs_review
	if v == nil {
		return
	}
	return *v, true
}

// OldNeedsReview returns the old "needs_review" field's value of the HearingUtility entity.
// If the HearingUtility object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *HearingUtilityMutation) OldNeedsReview(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNeedsReview is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNeedsReview requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNeedsReview: %w", err)
	}
	return oldValue.NeedsReview, nil
}

// ResetNeedsReview resets all changes to the "needs_review" field.
func (m *HearingUtilityMutation) ResetNeedsReview() {
	m.needs_review = nil
}

// ClearHearing clears the "hearing" edge to the Hearing entity.
func (m *HearingUtilityMutation) ClearHearing() {
	m.clearedhearing = true
	m.clearedFields[hearingutility.FieldHearingID] = struct{}{}
}

// HearingCleared reports if the "hearing" edge to the Hearing entity was cleared.
func (m *HearingUtilityMutation) HearingCleared() bool {
	return m.clearedhearing
}

// HearingIDs returns the "hearing" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// HearingID instead. It exists only for internal usage by the builders.
func (m *HearingUtilityMutation) HearingIDs() (ids []string) {
	if id := m.hearing; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetHearing resets all changes to the "hearing" edge.
func (m *HearingUtilityMutation) ResetHearing() {
	m.hearing = nil
	m.clearedhearing = false
}

// ClearUtility clears the "utility" edge to the Utility entity.
func (m *HearingUtilityMutation) ClearUtility() {
	m.clearedutility = true
	m.clearedFields[hearingutility.FieldUtilityID] = struct{}{}
}

// UtilityCleared reports if the "utility" edge to the Utility entity was cleared.
func (m *HearingUtilityMutation) UtilityCleared() bool {
	return m.UtilityIDCleared() || m.clearedutility
}

// UtilityIDs returns the "utility" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// UtilityID instead. It exists only for internal usage by the builders.
func (m *HearingUtilityMutation) UtilityIDs() (ids []string) {
	if id := m.utility; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetUtility resets all changes to the "utility" edge.
func (m *HearingUtilityMutation) ResetUtility() {
	m.utility = nil
	m.clearedutility = false
}

// Where appends a list predicates to the HearingUtilityMutation builder.
func (m *HearingUtilityMutation) Where(ps ...predicate.HearingUtility) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the HearingUtilityMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *HearingUtilityMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.HearingUtility, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *HearingUtilityMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *HearingUtilityMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (HearingUtility).
func (m *HearingUtilityMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *HearingUtilityMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.created_at != nil {
		fields = append(fields, hearingutility.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, hearingutility.FieldUpdatedAt)
	}
	if m.hearing != nil {
		fields = append(fields, hearingutility.FieldHearingID)
	}
	if m.utility != nil {
		fields = append(fields, hearingutility.FieldUtilityID)
	}
	if m.raw_name != nil {
		fields = append(fields, hearingutility.FieldRawName)
	}
	if m.role != nil {
		fields = append(fields, hearingutility.FieldRole)
	}
	if m.confidence != nil {
		fields = append(fields, hearingutility.FieldConfidence)
	}
	if m.needs_review != nil {
		fields = append(fields, hearingutility.FieldNeedsReview)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *HearingUtilityMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case hearingutility.FieldCreatedAt:
		return m.CreatedAt()
	case hearingutility.FieldUpdatedAt:
		return m.UpdatedAt()
	case hearingutility.FieldHearingID:
		return m.HearingID()
	case hearingutility.FieldUtilityID:
		return m.UtilityID()
	case hearingutility.FieldRawName:
		return m.RawName()
	case hearingutility.FieldRole:
		return m.Role()
	case hearingutility.FieldConfidence:
		return m.Confidence()
	case hearingutility.FieldNeedsReview:
		return m.NeedsReview()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *HearingUtilityMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case hearingutility.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case hearingutility.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case hearingutility.FieldHearingID:
		return m.OldHearingID(ctx)
	case hearingutility.FieldUtilityID:
		return m.OldUtilityID(ctx)
	case hearingutility.FieldRawName:
		return m.OldRawName(ctx)
	case hearingutility.FieldRole:
		return m.OldRole(ctx)
	case hearingutility.FieldConfidence:
		return m.OldConfidence(ctx)
	case hearingutility.FieldNeedsReview:
		return m.OldNeedsReview(ctx)
	}
	return nil, fmt.Errorf("unknown HearingUtility field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *HearingUtilityMutation) SetField(name string, value ent.Value) error {
	switch name {
	case hearingutility.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case hearingutility.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case hearingutility.FieldHearingID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetHearingID(v)
		return nil
	case hearingutility.FieldUtilityID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUtilityID(v)
		return nil
	case hearingutility.FieldRawName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRawName(v)
		return nil
	case hearingutility.FieldRole:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRole(v)
		return nil
	case hearingutility.FieldConfidence:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConfidence(v)
		return nil
	case hearingutility.FieldNeedsReview:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNeedsReview(v)
		return nil
	}
	return fmt.Errorf("unknown HearingUtility field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *HearingUtilityMutation) AddedFields() []string {
	var fields []string
	if m.addconfidence != nil {
		fields = append(fields, hearingutility.FieldConfidence)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *HearingUtilityMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case hearingutility.FieldConfidence:
		return m.AddedConfidence()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *HearingUtilityMutation) AddField(name string, value ent.Value) error {
	switch name {
	case hearingutility.FieldConfidence:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddConfidence(v)
		return nil
	}
	return fmt.Errorf("unknown HearingUtility numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *HearingUtilityMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(hearingutility.FieldUtilityID) {
		fields = append(fields, hearingutility.FieldUtilityID)
	}
	if m.FieldCleared(hearingutility.FieldRole) {
		fields = append(fields, hearingutility.FieldRole)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *HearingUtilityMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *HearingUtilityMutation) ClearField(name string) error {
	switch name {
	case hearingutility.FieldUtilityID:
		m.ClearUtilityID()
		return nil
	case hearingutility.FieldRole:
		m.ClearRole()
		return nil
	}
	return fmt.Errorf("unknown HearingUtility nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *HearingUtilityMutation) ResetField(name string) error {
	switch name {
	case hearingutility.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case hearingutility.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case hearingutility.FieldHearingID:
		m.ResetHearingID()
		return nil
	case hearingutility.FieldUtilityID:
		m.ResetUtilityID()
		return nil
	case hearingutility.FieldRawName:
		m.ResetRawName()
		return nil
	case hearingutility.FieldRole:
		m.ResetRole()
		return nil
	case hearingutility.FieldConfidence:
		m.ResetConfidence()
		return nil
	case hearingutility.FieldNeedsReview:
		m.ResetNeedsReview()
		return nil
	}
	return fmt.Errorf("unknown HearingUtility field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *HearingUtilityMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.hearing != nil {
		edges = append(edges, hearingutility.EdgeHearing)
	}
	if m.utility != nil {
		edges = append(edges, hearingutility.EdgeUtility)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *HearingUtilityMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case hearingutility.EdgeHearing:
		if id := m.hearing; id != nil {
			return []ent.Value{*id}
		}
	case hearingutility.EdgeUtility:
		if id := m.utility; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *HearingUtilityMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *HearingUtilityMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *HearingUtilityMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedhearing {
		edges = append(edges, hearingutility.EdgeHearing)
	}
	if m.clearedutility {
		edges = append(edges, hearingutility.EdgeUtility)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *HearingUtilityMutation) EdgeCleared(name string) bool {
	switch name {
	case hearingutility.EdgeHearing:
		return m.clearedhearing
	case hearingutility.EdgeUtility:
		return m.clearedutility
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *HearingUtilityMutation) ClearEdge(name string) error {
	switch name {
	case hearingutility.EdgeHearing:
		m.ClearHearing()
		return nil
	case hearingutility.EdgeUtility:
		m.ClearUtility()
		return nil
	}
	return fmt.Errorf("unknown HearingUtility unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *HearingUtilityMutation) ResetEdge(name string) error {
	switch name {
	case hearingutility.EdgeHearing:
		m.ResetHearing()
		return nil
	case hearingutility.EdgeUtility:
		m.ResetUtility()
		return nil
	}
	return fmt.Errorf("unknown HearingUtility edge %s", name)
}

// KnownDocketMutation represents an operation that mutates the KnownDocket nodes in the graph.
type KnownDocketMutation struct {
	config
	op                       Op
	typ                      string
	id                       *string
	created_at               *time.Time
	updated_at               *time.Time
	state_code               *string
	docket_number            *string
	normalized_id            *string
	year                     *int
	addyear                  *int
	case_number              *string
	suffix                   *string
	utility_sector           *string
	title                    *string
	utility_name             *string
	filing_date              *time.Time
	status                   *string
	case_type                *string
	source_url               *string
	clearedFields            map[string]struct{}
	dockets                  map[string]struct{}
	removeddockets           map[string]struct{}
	cleareddockets           bool
	extracted_dockets        map[string]struct{}
	removedextracted_dockets map[string]struct{}
	clearedextracted_dockets bool
	done                     bool
	oldValue                 func(context.Context) (*KnownDocket, error)
	predicates               []predicate.KnownDocket
}

var _ ent.Mutation = (*KnownDocketMutation)(nil)

// knowndocketOption allows management of the mutation configuration using functional options.
type knowndocketOption func(*KnownDocketMutation)

// newKnownDocketMutation creates new mutation for the KnownDocket entity.
func newKnownDocketMutation(c config, op Op, opts ...knowndocketOption) *KnownDocketMutation {
	m := &KnownDocketMutation{
		config:        c,
		op:            op,
		typ:           TypeKnownDocket,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withKnownDocketID sets the ID field of the mutation.
func withKnownDocketID(id string) knowndocketOption {
	return func(m *KnownDocketMutation) {
		var (
			err   error
			once  sync.Once
			value *KnownDocket
		)
		m.oldValue = func(ctx context.Context) (*KnownDocket, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().KnownDocket.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withKnownDocket sets the old KnownDocket of the mutation.
func withKnownDocket(node *KnownDocket) knowndocketOption {
	return func(m *KnownDocketMutation) {
		m.oldValue = func(context.Context) (*KnownDocket, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m KnownDocketMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m KnownDocketMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of KnownDocket entities.
func (m *KnownDocketMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *KnownDocketMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *KnownDocketMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().KnownDocket.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *KnownDocketMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *KnownDocketMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the KnownDocket entity.
// If the KnownDocket object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *KnownDocketMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *KnownDocketMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *KnownDocketMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *KnownDocketMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the KnownDocket entity.
// If the KnownDocket object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *KnownDocketMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *KnownDocketMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetStateCode sets the "state_code" field.
func (m *KnownDocketMutation) SetStateCode(s string) {
	m.state_code = &s
}

// StateCode returns the value of the "state_code" field in the mutation.
func (m *KnownDocketMutation) StateCode() (r string, exists bool) {
	v := m.state_code
	if v == nil {
		return
	}
	return *v, true
}

// OldStateCode returns the old "state_code" field's value of the KnownDocket entity.
// If the KnownDocket object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *KnownDocketMutation) OldStateCode(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStateCode is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStateCode requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStateCode: %w", err)
	}
	return oldValue.StateCode, nil
}

// ResetStateCode resets all changes to the "state_code" field.
func (m *KnownDocketMutation) ResetStateCode() {
	m.state_code = nil
}

// SetDocketNumber sets the "docket_number" field.
func (m *KnownDocketMutation) SetDocketNumber(s string) {
	m.docket_number = &s
}

// DocketNumber returns the value of the "docket_number" field in the mutation.
func (m *KnownDocketMutation) DocketNumber() (r string, exists bool) {
	v := m.docket_number
	if v == nil {
		return
	}
	return *v, true
}

// OldDocketNumber returns the old "docket_number" field's value of the KnownDocket entity.
// If the KnownDocket object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *KnownDocketMutation) OldDocketNumber(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDocketNumber is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDocketNumber requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDocketNumber: %w", err)
	}
	return oldValue.DocketNumber, nil
}

// ResetDocketNumber resets all changes to the "docket_number" field.
func (m *KnownDocketMutation) ResetDocketNumber() {
	m.docket_number = nil
}

// SetNormalizedID sets the "normalized_id" field.
func (m *KnownDocketMutation) SetNormalizedID(s string) {
	m.normalized_id = &s
}

// NormalizedID returns the value of the "normalized_id" field in the mutation.
func (m *KnownDocketMutation) NormalizedID() (r string, exists bool) {
	v := m.normalized_id
	if v == nil {
		return
	}
	return *v, true
}

// OldNormalizedID returns the old "normalized_id" field's value of the KnownDocket entity.
// If the KnownDocket object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *KnownDocketMutation) OldNormalizedID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNormalizedID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNormalizedID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNormalizedID: %w", err)
	}
	return oldValue.NormalizedID, nil
}

// ResetNormalizedID resets all changes to the "normalized_id" field.
func (m *KnownDocketMutation) ResetNormalizedID() {
	m.normalized_id = nil
}

// SetYear sets the "year" field.
func (m *KnownDocketMutation) SetYear(i int) {
	m.year = &i
	m.addyear = nil
}

// Year returns the value of the "year" field in the mutation.
func (m *KnownDocketMutation) Year() (r int, exists bool) {
	v := m.year
	if v == nil {
		return
	}
	return *v, true
}

// OldYear returns the old "year" field's value of the KnownDocket entity.
// If the KnownDocket object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *KnownDocketMutation) OldYear(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldYear is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldYear requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldYear: %w", err)
	}
	return oldValue.Year, nil
}

// AddYear adds i to the "year" field.
func (m *KnownDocketMutation) AddYear(i int) {
	if m.addyear != nil {
		*m.addyear += i
	} else {
		m.addyear = &i
	}
}

// AddedYear returns the value that was added to the "year" field in this mutation.
func (m *KnownDocketMutation) AddedYear() (r int, exists bool) {
	v := m.addyear
	if v == nil {
		return
	}
	return *v, true
}

// ClearYear clears the value of the "year" field.
func (m *KnownDocketMutation) ClearYear() {
	m.year = nil
	m.addyear = nil
	m.clearedFields[knowndocket.FieldYear] = struct{}{}
}

// YearCleared returns if the "year" field was cleared in this mutation.
func (m *KnownDocketMutation) YearCleared() bool {
	_, ok := m.clearedFields[knowndocket.FieldYear]
	return ok
}

// ResetYear resets all changes to the "year" field.
func (m *KnownDocketMutation) ResetYear() {
	m.year = nil
	m.addyear = nil
	delete(m.clearedFields, knowndocket.FieldYear)
}

// SetCaseNumber sets the "case_number" field.
func (m *KnownDocketMutation) SetCaseNumber(s string) {
	m.case_number = &s
}

// CaseNumber returns the value of the "case_number" field in the mutation.
func (m *KnownDocketMutation) CaseNumber() (r string, exists bool) {
	v := m.case_number
	if v == nil {
		return
	}
	return *v, true
}

// OldCaseNumber returns the old "case_number" field's value of the KnownDocket entity.
// If the KnownDocket object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *KnownDocketMutation) OldCaseNumber(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCaseNumber is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCaseNumber requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCaseNumber: %w", err)
	}
	return oldValue.CaseNumber, nil
}

// ClearCaseNumber clears the value of the "case_number" field.
func (m *KnownDocketMutation) ClearCaseNumber() {
	m.case_number = nil
	m.clearedFields[knowndocket.FieldCaseNumber] = struct{}{}
}

// CaseNumberCleared returns if the "case_number" field was cleared in this mutation.
func (m *KnownDocketMutation) CaseNumberCleared() bool {
	_, ok := m.clearedFields[knowndocket.FieldCaseNumber]
	return ok
}

// ResetCaseNumber resets all changes to the "case_number" field.
func (m *KnownDocketMutation) ResetCaseNumber() {
	m.case_number = nil
	delete(m.clearedFields, knowndocket.FieldCaseNumber)
}

// SetSuffix sets the "suffix" field.
func (m *KnownDocketMutation) SetSuffix(s string) {
	m.suffix = &s
}

// Suffix returns the value of the "suffix" field in the mutation.
func (m *KnownDocketMutation) Suffix() (r string, exists bool) {
	v := m.suffix
	if v == nil {
		return
	}
	return *v, true
}

// OldSuffix returns the old "suffix" field's value of the KnownDocket entity.
// If the KnownDocket object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *KnownDocketMutation) OldSuffix(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSuffix is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSuffix requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSuffix: %w", err)
	}
	return oldValue.Suffix, nil
}

// ClearSuffix clears the value of the "suffix" field.
func (m *KnownDocketMutation) ClearSuffix() {
	m.suffix = nil
	m.clearedFields[knowndocket.FieldSuffix] = struct{}{}
}

// SuffixCleared returns if the "suffix" field was cleared in this mutation.
func (m *KnownDocketMutation) SuffixCleared() bool {
	_, ok := m.clearedFields[knowndocket.FieldSuffix]
	return ok
}

// ResetSuffix resets all changes to the "suffix" field.
func (m *KnownDocketMutation) ResetSuffix() {
	m.suffix = nil
	delete(m.clearedFields, knowndocket.FieldSuffix)
}

// SetUtilitySector sets the "utility_sector" field.
func (m *KnownDocketMutation) SetUtilitySector(s string) {
	m.utility_sector = &s
}

// UtilitySector returns the value of the "utility_sector" field in the mutation.
func (m *KnownDocketMutation) UtilitySector() (r string, exists bool) {
	v := m.utility_sector
	if v == nil {
		return
	}
	return *v, true
}

// OldUtilitySector returns the old "utility_sector" field's value of the KnownDocket entity.
// If the KnownDocket object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *KnownDocketMutation) OldUtilitySector(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUtilitySector is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUtilitySector requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUtilitySector: %w", err)
	}
	return oldValue.UtilitySector, nil
}

// ClearUtilitySector clears the value of the "utility_sector" field.
func (m *KnownDocketMutation) ClearUtilitySector() {
	m.utility_sector = nil
	m.clearedFields[knowndocket.FieldUtilitySector] = struct{}{}
}

// UtilitySectorCleared returns if the "utility_sector" field was cleared in this mutation.
func (m *KnownDocketMutation) UtilitySectorCleared() bool {
	_, ok := m.clearedFields[knowndocket.FieldUtilitySector]
	return ok
}

// ResetUtilitySector resets all changes to the "utility_sector" field.
func (m *KnownDocketMutation) ResetUtilitySector() {
	m.utility_sector = nil
	delete(m.clearedFields, knowndocket.FieldUtilitySector)
}

// SetTitle sets the "title" field.
func (m *KnownDocketMutation) SetTitle(s string) {
	m.title = &s
}

// Title returns the value of the "title" field in the mutation.
func (m *KnownDocketMutation) Title() (r string, exists bool) {
	v := m.title
	if v == nil {
		return
	}
	return *v, true
}

// OldTitle returns the old "title" field's value of the KnownDocket entity.
// If the KnownDocket object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *KnownDocketMutation) OldTitle(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTitle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTitle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTitle: %w", err)
	}
	return oldValue.Title, nil
}

// ClearTitle clears the value of the "title" field.
func (m *KnownDocketMutation) ClearTitle() {
	m.title = nil
	m.clearedFields[knowndocket.FieldTitle] = struct{}{}
}

// TitleCleared returns if the "title" field was cleared in this mutation.
func (m *KnownDocketMutation) TitleCleared() bool {
	_, ok := m.clearedFields[knowndocket.FieldTitle]
	return ok
}

// ResetTitle resets all changes to the "title" field.
func (m *KnownDocketMutation) ResetTitle() {
	m.title = nil
	delete(m.clearedFields, knowndocket.FieldTitle)
}

// SetUtilityName sets the "utility_name" field.
func (m *KnownDocketMutation) SetUtilityName(s string) {
	m.utility_name = &s
}

// UtilityName returns the value of the "utility_name" field in the mutation.
func (m *KnownDocketMutation) UtilityName() (r string, exists bool) {
	v := m.utility_name
	if v == nil {
		return
	}
	return *v, true
}

// OldUtilityName returns the old "utility_name" field's value of the KnownDocket entity.
// If the KnownDocket object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *KnownDocketMutation) OldUtilityName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUtilityName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUtilityName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUtilityName: %w", err)
	}
	return oldValue.UtilityName, nil
}

// ClearUtilityName clears the value of the "utility_name" field.
func (m *KnownDocketMutation) ClearUtilityName() {
	m.utility_name = nil
	m.clearedFields[knowndocket.FieldUtilityName] = struct{}{}
}

// UtilityNameCleared returns if the "utility_name" field was cleared in this mutation.
func (m *KnownDocketMutation) UtilityNameCleared() bool {
	_, ok := m.clearedFields[knowndocket.FieldUtilityName]
	return ok
}

// ResetUtilityName resets all changes to the "utility_name" field.
func (m *KnownDocketMutation) ResetUtilityName() {
	m.utility_name = nil
	delete(m.clearedFields, knowndocket.FieldUtilityName)
}

// SetFilingDate sets the "filing_date" field.
func (m *KnownDocketMutation) SetFilingDate(t time.Time) {
	m.filing_date = &t
}

// FilingDate returns the value of the "filing_date" field in the mutation.
func (m *KnownDocketMutation) FilingDate() (r time.Time, exists bool) {
	v := m.filing_date
	if v == nil {
		return
	}
	return *v, true
}

// OldFilingDate returns the old "filing_date" field's value of the KnownDocket entity.
// If the KnownDocket object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *KnownDocketMutation) OldFilingDate(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFilingDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFilingDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFilingDate: %w", err)
	}
	return oldValue.FilingDate, nil
}

// ClearFilingDate clears the value of the "filing_date" field.
func (m *KnownDocketMutation) ClearFilingDate() {
	m.filing_date = nil
	m.clearedFields[knowndocket.FieldFilingDate] = struct{}{}
}

// FilingDateCleared returns if the "filing_date" field was cleared in this mutation.
func (m *KnownDocketMutation) FilingDateCleared() bool {
	_, ok := m.clearedFields[knowndocket.FieldFilingDate]
	return ok
}

// ResetFilingDate resets all changes to the "filing_date" field.
func (m *KnownDocketMutation) ResetFilingDate() {
	m.filing_date = nil
	delete(m.clearedFields, knowndocket.FieldFilingDate)
}

// SetStatus sets the "status" field.
func (m *KnownDocketMutation) SetStatus(s string) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *KnownDocketMutation) Status() (r string, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the KnownDocket entity.
// If the KnownDocket object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *KnownDocketMutation) OldStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ClearStatus clears the value of the "status" field.
func (m *KnownDocketMutation) ClearStatus() {
	m.status = nil
	m.clearedFields[knowndocket.FieldStatus] = struct{}{}
}

// StatusCleared returns if the "status" field was cleared in this mutation.
func (m *KnownDocketMutation) StatusCleared() bool {
	_, ok := m.clearedFields[knowndocket.FieldStatus]
	return ok
}

// ResetStatus resets all changes to the "status" field.
func (m *KnownDocketMutation) ResetStatus() {
	m.status = nil
	delete(m.clearedFields, knowndocket.FieldStatus)
}

// SetCaseType sets the "case_type" field.
func (m *KnownDocketMutation) SetCaseType(s string) {
	m.case_type = &s
}

// CaseType returns the value of the "case_type" field in the mutation.
func (m *KnownDocketMutation) CaseType() (r string, exists bool) {
	v := m.case_type
	if v == nil {
		return
	}
	return *v, true
}

// OldCaseType returns the old "case_type" field's value of the KnownDocket entity.
// If the KnownDocket object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *KnownDocketMutation) OldCaseType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCaseType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCaseType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCaseType: %w", err)
	}
	return oldValue.CaseType, nil
}

// ClearCaseType clears the value of the "case_type" field.
func (m *KnownDocketMutation) ClearCaseType() {
	m.case_type = nil
	m.clearedFields[knowndocket.FieldCaseType] = struct{}{}
}

// CaseTypeCleared returns if the "case_type" field was cleared in this mutation.
func (m *KnownDocketMutation) CaseTypeCleared() bool {
	_, ok := m.clearedFields[knowndocket.FieldCaseType]
	return ok
}

// ResetCaseType resets all changes to the "case_type" field.
func (m *KnownDocketMutation) ResetCaseType() {
	m.case_type = nil
	delete(m.clearedFields, knowndocket.FieldCaseType)
}

// SetSourceURL sets the "source_url" field.
func (m *KnownDocketMutation) SetSourceURL(s string) {
	m.source_url = &s
}

// SourceURL returns the value of the "source_url" field in the mutation.
func (m *KnownDocketMutation) SourceURL() (r string, exists bool) {
	v := m.source_url
	if v == nil {
		return
	}
	return *v, true
}

// OldSourceURL returns the old "source_url" field's value of the KnownDocket entity.
// If the KnownDocket object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *KnownDocketMutation) OldSourceURL(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSourceURL is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSourceURL requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSourceURL: %w", err)
	}
	return oldValue.SourceURL, nil
}

// ClearSourceURL clears the value of the "source_url" field.
func (m *KnownDocketMutation) ClearSourceURL() {
	m.source_url = nil
	m.clearedFields[knowndocket.FieldSourceURL] = struct{}{}
}

// SourceURLCleared returns if the "source_url" field was cleared in this mutation.
func (m *KnownDocketMutation) SourceURLCleared() bool {
	_, ok := m.clearedFields[knowndocket.FieldSourceURL]
	return ok
}

// ResetSourceURL resets all changes to the "source_url" field.
func (m *KnownDocketMutation) ResetSourceURL() {
	m.source_url = nil
	delete(m.clearedFields, knowndocket.FieldSourceURL)
}

// AddDocketIDs adds the "dockets" edge to the Docket entity by ids.
func (m *KnownDocketMutation) AddDocketIDs(ids ...string) {
	if m.dockets == nil {
		m.dockets = make(map[string]struct{})
	}
	for i := range ids {
		m.dockets[ids[i]] = struct{}{}
	}
}

// ClearDockets clears the "dockets" edge to the Docket entity.
func (m *KnownDocketMutation) ClearDockets() {
	m.cleareddockets = true
}

// DocketsCleared reports if the "dockets" edge to the Docket entity was cleared.
func (m *KnownDocketMutation) DocketsCleared() bool {
	return m.cleareddockets
}

// RemoveDocketIDs removes the "dockets" edge to the Docket entity by IDs.
func (m *KnownDocketMutation) RemoveDocketIDs(ids ...string) {
	if m.removeddockets == nil {
		m.removeddockets = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.dockets, ids[i])
		m.removeddockets[ids[i]] = struct{}{}
	}
}

// RemovedDockets returns the removed IDs of the "dockets" edge to the Docket entity.
func (m *KnownDocketMutation) RemovedDocketsIDs() (ids []string) {
	for id := range m.removeddockets {
		ids = append(ids, id)
	}
	return
}

// DocketsIDs returns the "dockets" edge IDs in the mutation.
func (m *KnownDocketMutation) DocketsIDs() (ids []string) {
	for id := range m.dockets {
		ids = append(ids, id)
	}
	return
}

// ResetDockets resets all changes to the "dockets" edge.
func (m *KnownDocketMutation) ResetDockets() {
	m.dockets = nil
	m.cleareddockets = false
	m.removeddockets = nil
}

// AddExtractedDocketIDs adds the "extracted_dockets" edge to the ExtractedDocket entity by ids.
func (m *KnownDocketMutation) AddExtractedDocketIDs(ids ...string) {
	if m.extracted_dockets == nil {
		m.extracted_dockets = make(map[string]struct{})
	}
	for i := range ids {
		m.extracted_dockets[ids[i]] = struct{}{}
	}
}

// ClearExtractedDockets clears the "extracted_dockets" edge to the ExtractedDocket entity.
func (m *KnownDocketMutation) ClearExtractedDockets() {
	m.clearedextracted_dockets = true
}

// ExtractedDocketsCleared reports if the "extracted_dockets" edge to the ExtractedDocket entity was cleared.
func (m *KnownDocketMutation) ExtractedDocketsCleared() bool {
	return m.clearedextracted_dockets
}

// RemoveExtractedDocketIDs removes the "extracted_dockets" edge to the ExtractedDocket entity by IDs.
func (m *KnownDocketMutation) RemoveExtractedDocketIDs(ids ...string) {
	if m.removedextracted_dockets == nil {
		m.removedextracted_dockets = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.extracted_dockets, ids[i])
		m.removedextracted_dockets[ids[i]] = struct{}{}
	}
}

// RemovedExtractedDockets returns the removed IDs of the "extracted_dockets" edge to the ExtractedDocket entity.
func (m *KnownDocketMutation) RemovedExtractedDocketsIDs() (ids []string) {
	for id := range m.removedextracted_dockets {
		ids = append(ids, id)
	}
	return
}

// ExtractedDocketsIDs returns the "extracted_dockets" edge IDs in the mutation.
func (m *KnownDocketMutation) ExtractedDocketsIDs() (ids []string) {
	for id := range m.extracted_dockets {
		ids = append(ids, id)
	}
	return
}

// ResetExtractedDockets resets all changes to the "extracted_dockets" edge.
func (m *KnownDocketMutation) ResetExtractedDockets() {
	m.extracted_dockets = nil
	m.clearedextracted_dockets = false
	m.removedextracted_dockets = nil
}

// Where appends a list predicates to the KnownDocketMutation builder.
func (m *KnownDocketMutation) Where(ps ...predicate.KnownDocket) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the KnownDocketMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *KnownDocketMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.KnownDocket, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *KnownDocketMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *KnownDocketMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (KnownDocket).
func (m *KnownDocketMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *KnownDocketMutation) Fields() []string {
	fields := make([]string, 0, 15)
	if m.created_at != nil {
		fields = append(fields, knowndocket.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, knowndocket.FieldUpdatedAt)
	}
	if m.state_code != nil {
		fields = append(fields, knowndocket.FieldStateCode)
	}
	if m.docket_number != nil {
		fields = append(fields, knowndocket.FieldDocketNumber)
	}
	if m.normalized_id != nil {
		fields = append(fields, knowndocket.FieldNormalizedID)
	}
	if m.year != nil {
		fields = append(fields, knowndocket.FieldYear)
	}
	if m.case_number != nil {
		fields = append(fields, knowndocket.FieldCaseNumber)
	}
	if m.suffix != nil {
		fields = append(fields, knowndocket.FieldSuffix)
	}
	if m.utility_sector != nil {
		fields = append(fields, knowndocket.FieldUtilitySector)
	}
	if m.title != nil {
		fields = append(fields, knowndocket.FieldTitle)
	}
	if m.utility_name != nil {
		fields = append(fields, knowndocket.FieldUtilityName)
	}
	if m.filing_date != nil {
		fields = append(fields, knowndocket.FieldFilingDate)
	}
	if m.status != nil {
		fields = append(fields, knowndocket.FieldStatus)
	}
	if m.case_type != nil {
		fields = append(fields, knowndocket.FieldCaseType)
	}
	if m.source_url != nil {
		fields = append(fields, knowndocket.FieldSourceURL)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *KnownDocketMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case knowndocket.FieldCreatedAt:
		return m.CreatedAt()
	case knowndocket.FieldUpdatedAt:
		return m.UpdatedAt()
	case knowndocket.FieldStateCode:
		return m.StateCode()
	case knowndocket.FieldDocketNumber:
		return m.DocketNumber()
	case knowndocket.FieldNormalizedID:
		return m.NormalizedID()
	case knowndocket.FieldYear:
		return m.Year()
	case knowndocket.FieldCaseNumber:
		return m.CaseNumber()
	case knowndocket.FieldSuffix:
		return m.Suffix()
	case knowndocket.FieldUtilitySector:
		return m.UtilitySector()
	case knowndocket.FieldTitle:
		return m.Title()
	case knowndocket.FieldUtilityName:
		return m.UtilityName()
	case knowndocket.FieldFilingDate:
		return m.FilingDate()
	case knowndocket.FieldStatus:
		return m.Status()
	case knowndocket.FieldCaseType:
		return m.CaseType()
	case knowndocket.FieldSourceURL:
		return m.SourceURL()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *KnownDocketMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case knowndocket.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case knowndocket.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case knowndocket.FieldStateCode:
		return m.OldStateCode(ctx)
	case knowndocket.FieldDocketNumber:
		return m.OldDocketNumber(ctx)
	case knowndocket.FieldNormalizedID:
		return m.OldNormalizedID(ctx)
	case knowndocket.FieldYear:
		return m.OldYear(ctx)
	case knowndocket.FieldCaseNumber:
		return m.OldCaseNumber(ctx)
	case knowndocket.FieldSuffix:
		return m.OldSuffix(ctx)
	case knowndocket.FieldUtilitySector:
		return m.OldUtilitySector(ctx)
	case knowndocket.FieldTitle:
		return m.OldTitle(ctx)
	case knowndocket.FieldUtilityName:
		return m.OldUtilityName(ctx)
	case knowndocket.FieldFilingDate:
		return m.OldFilingDate(ctx)
	case knowndocket.FieldStatus:
		return m.OldStatus(ctx)
	case knowndocket.FieldCaseType:
		return m.OldCaseType(ctx)
	case knowndocket.FieldSourceURL:
		return m.OldSourceURL(ctx)
	}
	return nil, fmt.Errorf("unknown KnownDocket field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *KnownDocketMutation) SetField(name string, value ent.Value) error {
	switch name {
	case knowndocket.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case knowndocket.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case knowndocket.FieldStateCode:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStateCode(v)
		return nil
	case knowndocket.FieldDocketNumber:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDocketNumber(v)
		return nil
	case knowndocket.FieldNormalizedID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNormalizedID(v)
		return nil
	case knowndocket.FieldYear:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetYear(v)
		return nil
	case knowndocket.FieldCaseNumber:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCaseNumber(v)
		return nil
	case knowndocket.FieldSuffix:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSuffix(v)
		return nil
	case knowndocket.FieldUtilitySector:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUtilitySector(v)
		return nil
	case knowndocket.FieldTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitle(v)
		return nil
	case knowndocket.FieldUtilityName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUtilityName(v)
		return nil
	case knowndocket.FieldFilingDate:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFilingDate(v)
		return nil
	case knowndocket.FieldStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case knowndocket.FieldCaseType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCaseType(v)
		return nil
	case knowndocket.FieldSourceURL:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSourceURL(v)
		return nil
	}
	return fmt.Errorf("unknown KnownDocket field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *KnownDocketMutation) AddedFields() []string {
	var fields []string
	if m.addyear != nil {
		fields = append(fields, knowndocket.FieldYear)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *KnownDocketMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case knowndocket.FieldYear:
		return m.AddedYear()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *KnownDocketMutation) AddField(name string, value ent.Value) error {
	switch name {
	case knowndocket.FieldYear:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddYear(v)
		return nil
	}
	return fmt.Errorf("unknown KnownDocket numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *KnownDocketMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(knowndocket.FieldYear) {
		fields = append(fields, knowndocket.FieldYear)
	}
	if m.FieldCleared(knowndocket.FieldCaseNumber) {
		fields = append(fields, knowndocket.FieldCaseNumber)
	}
	if m.FieldCleared(knowndocket.FieldSuffix) {
		fields = append(fields, knowndocket.FieldSuffix)
	}
	if m.FieldCleared(knowndocket.FieldUtilitySector) {
		fields = append(fields, knowndocket.FieldUtilitySector)
	}
	if m.FieldCleared(knowndocket.FieldTitle) {
		fields = append(fields, knowndocket.FieldTitle)
	}
	if m.FieldCleared(knowndocket.FieldUtilityName) {
		fields = append(fields, knowndocket.FieldUtilityName)
	}
	if m.FieldCleared(knowndocket.FieldFilingDate) {
		fields = append(fields, knowndocket.FieldFilingDate)
	}
	if m.FieldCleared(knowndocket.FieldStatus) {
		fields = append(fields, knowndocket.FieldStatus)
	}
	if m.FieldCleared(knowndocket.FieldCaseType) {
		fields = append(fields, knowndocket.FieldCaseType)
	}
	if m.FieldCleared(knowndocket.FieldSourceURL) {
		fields = append(fields, knowndocket.FieldSourceURL)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *KnownDocketMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *KnownDocketMutation) ClearField(name string) error {
	switch name {
	case knowndocket.FieldYear:
		m.ClearYear()
		return nil
	case knowndocket.FieldCaseNumber:
		m.ClearCaseNumber()
		return nil
	case knowndocket.FieldSuffix:
		m.ClearSuffix()
		return nil
	case knowndocket.FieldUtilitySector:
		m.ClearUtilitySector()
		return nil
	case knowndocket.FieldTitle:
		m.ClearTitle()
		return nil
	case knowndocket.FieldUtilityName:
		m.ClearUtilityName()
		return nil
	case knowndocket.FieldFilingDate:
		m.ClearFilingDate()
		return nil
	case knowndocket.FieldStatus:
		m.ClearStatus()
		return nil
	case knowndocket.FieldCaseType:
		m.ClearCaseType()
		return nil
	case knowndocket.FieldSourceURL:
		m.ClearSourceURL()
		return nil
	}
	return fmt.Errorf("unknown KnownDocket nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *KnownDocketMutation) ResetField(name string) error {
	switch name {
	case knowndocket.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case knowndocket.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case knowndocket.FieldStateCode:
		m.ResetStateCode()
		return nil
	case knowndocket.FieldDocketNumber:
		m.ResetDocketNumber()
		return nil
	case knowndocket.FieldNormalizedID:
		m.ResetNormalizedID()
		return nil
	case knowndocket.FieldYear:
		m.ResetYear()
		return nil
	case knowndocket.FieldCaseNumber:
		m.ResetCaseNumber()
		return nil
	case knowndocket.FieldSuffix:
		m.ResetSuffix()
		return nil
	case knowndocket.FieldUtilitySector:
		m.ResetUtilitySector()
		return nil
	case knowndocket.FieldTitle:
		m.ResetTitle()
		return nil
	case knowndocket.FieldUtilityName:
		m.ResetUtilityName()
		return nil
	case knowndocket.FieldFilingDate:
		m.ResetFilingDate()
		return nil
	case knowndocket.FieldStatus:
		m.ResetStatus()
		return nil
	case knowndocket.FieldCaseType:
		m.ResetCaseType()
		return nil
	case knowndocket.FieldSourceURL:
		m.ResetSourceURL()
		return nil
	}
	return fmt.Errorf("unknown KnownDocket field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *KnownDocketMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.dockets != nil {
		edges = append(edges, knowndocket.EdgeDockets)
	}
	if m.extracted_dockets != nil {
		edges = append(edges, knowndocket.EdgeExtractedDockets)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *KnownDocketMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case knowndocket.EdgeDockets:
		ids := make([]ent.Value, 0, len(m.dockets))
		for id := range m.dockets {
			ids = append(ids, id)
		}
		return ids
	case knowndocket.EdgeExtractedDockets:
		ids := make([]ent.Value, 0, len(m.extracted_dockets))
		for id := range m.extracted_dockets {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *KnownDocketMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removeddockets != nil {
		edges = append(edges, knowndocket.EdgeDockets)
	}
	if m.removedextracted_dockets != nil {
		edges = append(edges, knowndocket.EdgeExtractedDockets)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *KnownDocketMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case knowndocket.EdgeDockets:
		ids := make([]ent.Value, 0, len(m.removeddockets))
		for id := range m.removeddockets {
			ids = append(ids, id)
		}
		return ids
	case knowndocket.EdgeExtractedDockets:
		ids := make([]ent.Value, 0, len(m.removedextracted_dockets))
		for id := range m.removedextracted_dockets {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *KnownDocketMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.cleareddockets {
		edges = append(edges, knowndocket.EdgeDockets)
	}
	if m.clearedextracted_dockets {
		edges = append(edges, knowndocket.EdgeExtractedDockets)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *KnownDocketMutation) EdgeCleared(name string) bool {
	switch name {
	case knowndocket.EdgeDockets:
		return m.cleareddockets
	case knowndocket.EdgeExtractedDockets:
		return m.clearedextracted_dockets
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *KnownDocketMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown KnownDocket unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *KnownDocketMutation) ResetEdge(name string) error {
	switch name {
	case knowndocket.EdgeDockets:
		m.ResetDockets()
		return nil
	case knowndocket.EdgeExtractedDockets:
		m.ResetExtractedDockets()
		return nil
	}
	return fmt.Errorf("unknown KnownDocket edge %s", name)
}

// PipelineJobMutation represents an operation that mutates the PipelineJob nodes in the graph.
type PipelineJobMutation struct {
	config
	op             Op
	typ            string
	id             *string
	created_at     *time.Time
	updated_at     *time.Time
	stage          *string
	status         *pipelinejob.Status
	started_at     *time.Time
	completed_at   *time.Time
	error_message  *string
	retry_count    *int
	addretry_count *int
	cost_usd       *float64
	addcost_usd    *float64
	metadata       *map[string]interface{}
	clearedFields  map[string]struct{}
	hearing        *string
	clearedhearing bool
	done           bool
	oldValue       func(context.Context) (*PipelineJob, error)
	predicates     []predicate.PipelineJob
}

var _ ent.Mutation = (*PipelineJobMutation)(nil)

// pipelinejobOption allows management of the mutation configuration using functional options.
type pipelinejobOption func(*PipelineJobMutation)

// newPipelineJobMutation creates new mutation for the PipelineJob entity.
func newPipelineJobMutation(c config, op Op, opts ...pipelinejobOption) *PipelineJobMutation {
	m := &PipelineJobMutation{
		config:        c,
		op:            op,
		typ:           TypePipelineJob,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withPipelineJobID sets the ID field of the mutation.
func withPipelineJobID(id string) pipelinejobOption {
	return func(m *PipelineJobMutation) {
		var (
			err   error
			once  sync.Once
			value *PipelineJob
		)
		m.oldValue = func(ctx context.Context) (*PipelineJob, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().PipelineJob.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withPipelineJob sets the old PipelineJob of the mutation.
func withPipelineJob(node *PipelineJob) pipelinejobOption {
	return func(m *PipelineJobMutation) {
		m.oldValue = func(context.Context) (*PipelineJob, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m PipelineJobMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m PipelineJobMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of PipelineJob entities.
func (m *PipelineJobMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *PipelineJobMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *PipelineJobMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().PipelineJob.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *PipelineJobMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *PipelineJobMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the PipelineJob entity.
// If the PipelineJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineJobMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *PipelineJobMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *PipelineJobMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *PipelineJobMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the PipelineJob entity.
// If the PipelineJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineJobMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *PipelineJobMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetHearingID sets the "hearing_id" field.
func (m *PipelineJobMutation) SetHearingID(s string) {
	m.hearing = &s
}

// HearingID returns the value of the "hearing_id" field in the mutation.
func (m *PipelineJobMutation) HearingID() (r string, exists bool) {
	v := m.hearing
	if v == nil {
		return
	}
	return *v, true
}

// OldHearingID returns the old "hearing_id" field's value of the PipelineJob entity.
// If the PipelineJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineJobMutation) OldHearingID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldHearingID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldHearingID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldHearingID: %w", err)
	}
	return oldValue.HearingID, nil
}

// ResetHearingID resets all changes to the "hearing_id" field.
func (m *PipelineJobMutation) ResetHearingID() {
	m.hearing = nil
}

// SetStage sets the "stage" field.
func (m *PipelineJobMutation) SetStage(s string) {
	m.stage = &s
}

// Stage returns the value of the "stage" field in the mutation.
func (m *PipelineJobMutation) Stage() (r string, exists bool) {
	v := m.stage
	if v == nil {
		return
	}
	return *v, true
}

// OldStage returns the old "stage" field's value of the PipelineJob entity.
// If the PipelineJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineJobMutation) OldStage(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStage: %w", err)
	}
	return oldValue.Stage, nil
}

// ResetStage resets all changes to the "stage" field.
func (m *PipelineJobMutation) ResetStage() {
	m.stage = nil
}

// SetStatus sets the "status" field.
func (m *PipelineJobMutation) SetStatus(pi pipelinejob.Status) {
	m.status = &pi
}

// Status returns the value of the "status" field in the mutation.
func (m *PipelineJobMutation) Status() (r pipelinejob.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the PipelineJob entity.
// If the PipelineJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineJobMutation) OldStatus(ctx context.Context) (v pipelinejob.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *PipelineJobMutation) ResetStatus() {
	m.status = nil
}

// SetStartedAt sets the "started_at" field.
func (m *PipelineJobMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *PipelineJobMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the PipelineJob entity.
// If the PipelineJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineJobMutation) OldStartedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ClearStartedAt clears the value of the "started_at" field.
func (m *PipelineJobMutation) ClearStartedAt() {
	m.started_at = nil
	m.clearedFields[pipelinejob.FieldStartedAt] = struct{}{}
}

// StartedAtCleared returns if the "started_at" field was cleared in this mutation.
func (m *PipelineJobMutation) StartedAtCleared() bool {
	_, ok := m.clearedFields[pipelinejob.FieldStartedAt]
	return ok
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *PipelineJobMutation) ResetStartedAt() {
	m.started_at = nil
	delete(m.clearedFields, pipelinejob.FieldStartedAt)
}

// SetCompletedAt sets the "completed_at" field.
func (m *PipelineJobMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *PipelineJobMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the PipelineJob entity.
// If the PipelineJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineJobMutation) OldCompletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedAt: %w", err)
	}
	return oldValue.CompletedAt, nil
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (m *PipelineJobMutation) ClearCompletedAt() {
	m.completed_at = nil
	m.clearedFields[pipelinejob.FieldCompletedAt] = struct{}{}
}

// CompletedAtCleared returns if the "completed_at" field was cleared in this mutation.
func (m *PipelineJobMutation) CompletedAtCleared() bool {
	_, ok := m.clearedFields[pipelinejob.FieldCompletedAt]
	return ok
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *PipelineJobMutation) ResetCompletedAt() {
	m.completed_at = nil
	delete(m.clearedFields, pipelinejob.FieldCompletedAt)
}

// SetErrorMessage sets the "error_message" field.
func (m *PipelineJobMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *PipelineJobMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the PipelineJob entity.
// If the PipelineJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineJobMutation) OldErrorMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *PipelineJobMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[pipelinejob.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *PipelineJobMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[pipelinejob.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *PipelineJobMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, pipelinejob.FieldErrorMessage)
}

// SetRetryCount sets the "retry_count" field.
func (m *PipelineJobMutation) SetRetryCount(i int) {
	m.retry_count = &i
	m.addretry_count = nil
}

// RetryCount returns the value of the "retry_count" field in the mutation.
func (m *PipelineJobMutation) RetryCount() (r int, exists bool) {
	v := m.retry_count
	if v == nil {
		return
	}
	return *v, true
}

// OldRetryCount returns the old "retry_count" field's value of the PipelineJob entity.
// If the PipelineJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineJobMutation) OldRetryCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRetryCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRetryCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRetryCount: %w", err)
	}
	return oldValue.RetryCount, nil
}

// AddRetryCount adds i to the "retry_count" field.
func (m *PipelineJobMutation) AddRetryCount(i int) {
	if m.addretry_count != nil {
		*m.addretry_count += i
	} else {
		m.addretry_count = &i
	}
}

// AddedRetryCount returns the value that was added to the "retry_count" field in this mutation.
func (m *PipelineJobMutation) AddedRetryCount() (r int, exists bool) {
	v := m.addretry_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetRetryCount resets all changes to the "retry_count" field.
func (m *PipelineJobMutation) ResetRetryCount() {
	m.retry_count = nil
	m.addretry_count = nil
}

// SetCostUsd sets the "cost_usd" field.
func (m *PipelineJobMutation) SetCostUsd(f float64) {
	m.cost_usd = &f
	m.addcost_usd = nil
}

// CostUsd returns the value of the "cost_usd" field in the mutation.
func (m *PipelineJobMutation) CostUsd() (r float64, exists bool) {
	v := m.cost_usd
	if v == nil {
		return
	}
	return *v, true
}

// OldCostUsd returns the old "cost_usd" field's value of the PipelineJob entity.
// If the PipelineJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineJobMutation) OldCostUsd(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCostUsd is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCostUsd requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCostUsd: %w", err)
	}
	return oldValue.CostUsd, nil
}

// AddCostUsd adds f to the "cost_usd" field.
func (m *PipelineJobMutation) AddCostUsd(f float64) {
	if m.addcost_usd != nil {
		*m.addcost_usd += f
	} else {
		m.addcost_usd = &f
	}
}

// AddedCostUsd returns the value that was added to the "cost_usd" field in this mutation.
func (m *PipelineJobMutation) AddedCostUsd() (r float64, exists bool) {
	v := m.addcost_usd
	if v == nil {
		return
	}
	return *v, true
}

// ResetCostUsd resets all changes to the "cost_usd" field.
func (m *PipelineJobMutation) ResetCostUsd() {
	m.cost_usd = nil
	m.addcost_usd = nil
}

// SetMetadata sets the "metadata" field.
func (m *PipelineJobMutation) SetMetadata(value map[string]interface{}) {
	m.metadata = &value
}

// Metadata returns the value of the "metadata" field in the mutation.
func (m *PipelineJobMutation) Metadata() (r map[string]interface{}, exists bool) {
	v := m.metadata
	if v == nil {
		return
	}
	return *v, true
}

// OldMetadata returns the old "metadata" field's value of the PipelineJob entity.
// If the PipelineJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineJobMutation) OldMetadata(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMetadata is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMetadata requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMetadata: %w", err)
	}
	return oldValue.Metadata, nil
}

// ClearMetadata clears the value of the "metadata" field.
func (m *PipelineJobMutation) ClearMetadata() {
	m.metadata = nil
	m.clearedFields[pipelinejob.FieldMetadata] = struct{}{}
}

// MetadataCleared returns if the "metadata" field was cleared in this mutation.
func (m *PipelineJobMutation) MetadataCleared() bool {
	_, ok := m.clearedFields[pipelinejob.FieldMetadata]
	return ok
}

// ResetMetadata resets all changes to the "metadata" field.
func (m *PipelineJobMutation) ResetMetadata() {
	m.metadata = nil
	delete(m.clearedFields, pipelinejob.FieldMetadata)
}

// ClearHearing clears the "hearing" edge to the Hearing entity.
func (m *PipelineJobMutation) ClearHearing() {
	m.clearedhearing = true
	m.clearedFields[pipelinejob.FieldHearingID] = struct{}{}
}

// HearingCleared reports if the "hearing" edge to the Hearing entity was cleared.
func (m *PipelineJobMutation) HearingCleared() bool {
	return m.clearedhearing
}

// HearingIDs returns the "hearing" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// HearingID instead. It exists only for internal usage by the builders.
func (m *PipelineJobMutation) HearingIDs() (ids []string) {
	if id := m.hearing; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetHearing resets all changes to the "hearing" edge.
func (m *PipelineJobMutation) ResetHearing() {
	m.hearing = nil
	m.clearedhearing = false
}

// Where appends a list predicates to the PipelineJobMutation builder.
func (m *PipelineJobMutation) Where(ps ...predicate.PipelineJob) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the PipelineJobMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *PipelineJobMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.PipelineJob, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *PipelineJobMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *PipelineJobMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (PipelineJob).
func (m *PipelineJobMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *PipelineJobMutation) Fields() []string {
	fields := make([]string, 0, 11)
	if m.created_at != nil {
		fields = append(fields, pipelinejob.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, pipelinejob.FieldUpdatedAt)
	}
	if m.hearing != nil {
		fields = append(fields, pipelinejob.FieldHearingID)
	}
	if m.stage != nil {
		fields = append(fields, pipelinejob.FieldStage)
	}
	if m.status != nil {
		fields = append(fields, pipelinejob.FieldStatus)
	}
	if m.started_at != nil {
		fields = append(fields, pipelinejob.FieldStartedAt)
	}
	if m.completed_at != nil {
		fields = append(fields, pipelinejob.FieldCompletedAt)
	}
	if m.error_message != nil {
		fields = append(fields, pipelinejob.FieldErrorMessage)
	}
	if m.retry_count != nil {
		fields = append(fields, pipelinejob.FieldRetryCount)
	}
	if m.cost_usd != nil {
		fields = append(fields, pipelinejob.FieldCostUsd)
	}
	if m.metadata != nil {
		fields = append(fields, pipelinejob.FieldMetadata)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *PipelineJobMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case pipelinejob.FieldCreatedAt:
		return m.CreatedAt()
	case pipelinejob.FieldUpdatedAt:
		return m.UpdatedAt()
	case pipelinejob.FieldHearingID:
		return m.HearingID()
	case pipelinejob.FieldStage:
		return m.Stage()
	case pipelinejob.FieldStatus:
		return m.Status()
	case pipelinejob.FieldStartedAt:
		return m.StartedAt()
	case pipelinejob.FieldCompletedAt:
		return m.CompletedAt()
	case pipelinejob.FieldErrorMessage:
		return m.ErrorMessage()
	case pipelinejob.FieldRetryCount:
		return m.RetryCount()
	case pipelinejob.FieldCostUsd:
		return m.CostUsd()
	case pipelinejob.FieldMetadata:
		return m.Metadata()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *PipelineJobMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case pipelinejob.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case pipelinejob.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case pipelinejob.FieldHearingID:
		return m.OldHearingID(ctx)
	case pipelinejob.FieldStage:
		return m.OldStage(ctx)
	case pipelinejob.FieldStatus:
		return m.OldStatus(ctx)
	case pipelinejob.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case pipelinejob.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	case pipelinejob.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case pipelinejob.FieldRetryCount:
		return m.OldRetryCount(ctx)
	case pipelinejob.FieldCostUsd:
		return m.OldCostUsd(ctx)
	case pipelinejob.FieldMetadata:
		return m.OldMetadata(ctx)
	}
	return nil, fmt.Errorf("unknown PipelineJob field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PipelineJobMutation) SetField(name string, value ent.Value) error {
	switch name {
	case pipelinejob.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case pipelinejob.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case pipelinejob.FieldHearingID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetHearingID(v)
		return nil
	case pipelinejob.FieldStage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStage(v)
		return nil
	case pipelinejob.FieldStatus:
		v, ok := value.(pipelinejob.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case pipelinejob.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case pipelinejob.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	case pipelinejob.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case pipelinejob.FieldRetryCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRetryCount(v)
		return nil
	case pipelinejob.FieldCostUsd:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCostUsd(v)
		return nil
	case pipelinejob.FieldMetadata:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMetadata(v)
		return nil
	}
	return fmt.Errorf("unknown PipelineJob field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *PipelineJobMutation) AddedFields() []string {
	var fields []string
	if m.addretry_count != nil {
		fields = append(fields, pipelinejob.FieldRetryCount)
	}
	if m.addcost_usd != nil {
		fields = append(fields, pipelinejob.FieldCostUsd)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *PipelineJobMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case pipelinejob.FieldRetryCount:
		return m.AddedRetryCount()
	case pipelinejob.FieldCostUsd:
		return m.AddedCostUsd()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PipelineJobMutation) AddField(name string, value ent.Value) error {
	switch name {
	case pipelinejob.FieldRetryCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRetryCount(v)
		return nil
	case pipelinejob.FieldCostUsd:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCostUsd(v)
		return nil
	}
	return fmt.Errorf("unknown PipelineJob numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *PipelineJobMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(pipelinejob.FieldStartedAt) {
		fields = append(fields, pipelinejob.FieldStartedAt)
	}
	if m.FieldCleared(pipelinejob.FieldCompletedAt) {
		fields = append(fields, pipelinejob.FieldCompletedAt)
	}
	if m.FieldCleared(pipelinejob.FieldErrorMessage) {
		fields = append(fields, pipelinejob.FieldErrorMessage)
	}
	if m.FieldCleared(pipelinejob.FieldMetadata) {
		fields = append(fields, pipelinejob.FieldMetadata)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *PipelineJobMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *PipelineJobMutation) ClearField(name string) error {
	switch name {
	case pipelinejob.FieldStartedAt:
		m.ClearStartedAt()
		return nil
	case pipelinejob.FieldCompletedAt:
		m.ClearCompletedAt()
		return nil
	case pipelinejob.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	case pipelinejob.FieldMetadata:
		m.ClearMetadata()
		return nil
	}
	return fmt.Errorf("unknown PipelineJob nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *PipelineJobMutation) ResetField(name string) error {
	switch name {
	case pipelinejob.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case pipelinejob.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case pipelinejob.FieldHearingID:
		m.ResetHearingID()
		return nil
	case pipelinejob.FieldStage:
		m.ResetStage()
		return nil
	case pipelinejob.FieldStatus:
		m.ResetStatus()
		return nil
	case pipelinejob.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case pipelinejob.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	case pipelinejob.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case pipelinejob.FieldRetryCount:
		m.ResetRetryCount()
		return nil
	case pipelinejob.FieldCostUsd:
		m.ResetCostUsd()
		return nil
	case pipelinejob.FieldMetadata:
		m.ResetMetadata()
		return nil
	}
	return fmt.Errorf("unknown PipelineJob field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *PipelineJobMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.hearing != nil {
		edges = append(edges, pipelinejob.EdgeHearing)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *PipelineJobMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case pipelinejob.EdgeHearing:
		if id := m.hearing; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *PipelineJobMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *PipelineJobMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *PipelineJobMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedhearing {
		edges = append(edges, pipelinejob.EdgeHearing)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *PipelineJobMutation) EdgeCleared(name string) bool {
	switch name {
	case pipelinejob.EdgeHearing:
		return m.clearedhearing
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *PipelineJobMutation) ClearEdge(name string) error {
	switch name {
	case pipelinejob.EdgeHearing:
		m.ClearHearing()
		return nil
	}
	return fmt.Errorf("unknown PipelineJob unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *PipelineJobMutation) ResetEdge(name string) error {
	switch name {
	case pipelinejob.EdgeHearing:
		m.ResetHearing()
		return nil
	}
	return fmt.Errorf("unknown PipelineJob edge %s", name)
}

// PipelineScheduleMutation represents an operation that mutates the PipelineSchedule nodes in the graph.
type PipelineScheduleMutation struct {
	config
	op              Op
	typ             string
	id              *string
	created_at      *time.Time
	updated_at      *time.Time
	name            *string
	target          *pipelineschedule.Target
	schedule_type   *pipelineschedule.ScheduleType
	schedule_value  *string
	_config         *map[string]interface{}
	enabled         *bool
	next_run_at     *time.Time
	last_run_at     *time.Time
	last_run_status *string
	last_run_error  *string
	clearedFields   map[string]struct{}
	done            bool
	oldValue        func(context.Context) (*PipelineSchedule, error)
	predicates      []predicate.PipelineSchedule
}

var _ ent.Mutation = (*PipelineScheduleMutation)(nil)

// pipelinescheduleOption allows management of the mutation configuration using functional options.
type pipelinescheduleOption func(*PipelineScheduleMutation)

// newPipelineScheduleMutation creates new mutation for the PipelineSchedule entity.
func newPipelineScheduleMutation(c config, op Op, opts ...pipelinescheduleOption) *PipelineScheduleMutation {
	m := &PipelineScheduleMutation{
		config:        c,
		op:            op,
		typ:           TypePipelineSchedule,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withPipelineScheduleID sets the ID field of the mutation.
func withPipelineScheduleID(id string) pipelinescheduleOption {
	return func(m *PipelineScheduleMutation) {
		var (
			err   error
			once  sync.Once
			value *PipelineSchedule
		)
		m.oldValue = func(ctx context.Context) (*PipelineSchedule, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().PipelineSchedule.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withPipelineSchedule sets the old PipelineSchedule of the mutation.
func withPipelineSchedule(node *PipelineSchedule) pipelinescheduleOption {
	return func(m *PipelineScheduleMutation) {
		m.oldValue = func(context.Context) (*PipelineSchedule, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m PipelineScheduleMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m PipelineScheduleMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of PipelineSchedule entities.
func (m *PipelineScheduleMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *PipelineScheduleMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *PipelineScheduleMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().PipelineSchedule.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *PipelineScheduleMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *PipelineScheduleMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the PipelineSchedule entity.
// If the PipelineSchedule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineScheduleMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *PipelineScheduleMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *PipelineScheduleMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *PipelineScheduleMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the PipelineSchedule entity.
// If the PipelineSchedule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineScheduleMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *PipelineScheduleMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetName sets the "name" field.
func (m *PipelineScheduleMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *PipelineScheduleMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the PipelineSchedule entity.
// If the PipelineSchedule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineScheduleMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *PipelineScheduleMutation) ResetName() {
	m.name = nil
}

// SetTarget sets the "target" field.
func (m *PipelineScheduleMutation) SetTarget(pi pipelineschedule.Target) {
	m.target = &pi
}

// Target returns the value of the "target" field in the mutation.
func (m *PipelineScheduleMutation) Target() (r pipelineschedule.Target, exists bool) {
	v := m.target
	if v == nil {
		return
	}
	return *v, true
}

// OldTarget returns the old "target" field's value of the PipelineSchedule entity.
// If the PipelineSchedule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineScheduleMutation) OldTarget(ctx context.Context) (v pipelineschedule.Target, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTarget is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTarget requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTarget: %w", err)
	}
	return oldValue.Target, nil
}

// ResetTarget resets all changes to the "target" field.
func (m *PipelineScheduleMutation) ResetTarget() {
	m.target = nil
}

// SetScheduleType sets the "schedule_type" field.
func (m *PipelineScheduleMutation) SetScheduleType(pt pipelineschedule.ScheduleType) {
	m.schedule_type = &pt
}

// ScheduleType returns the value of the "schedule_type" field in the mutation.
func (m *PipelineScheduleMutation) ScheduleType() (r pipelineschedule.ScheduleType, exists bool) {
	v := m.schedule_type
	if v == nil {
		return
	}
	return *v, true
}

// OldScheduleType returns the old "schedule_type" field's value of the PipelineSchedule entity.
// If the PipelineSchedule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineScheduleMutation) OldScheduleType(ctx context.Context) (v pipelineschedule.ScheduleType, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldScheduleType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldScheduleType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldScheduleType: %w", err)
	}
	return oldValue.ScheduleType, nil
}

// ResetScheduleType resets all changes to the "schedule_type" field.
func (m *PipelineScheduleMutation) ResetScheduleType() {
	m.schedule_type = nil
}

// SetScheduleValue sets the "schedule_value" field.
func (m *PipelineScheduleMutation) SetScheduleValue(s string) {
	m.schedule_value = &s
}

// ScheduleValue returns the value of the "schedule_value" field in the mutation.
func (m *PipelineScheduleMutation) ScheduleValue() (r string, exists bool) {
	v := m.schedule_value
	if v == nil {
		return
	}
	return *v, true
}

// OldScheduleValue returns the old "schedule_value" field's value of the PipelineSchedule entity.
// If the PipelineSchedule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineScheduleMutation) OldScheduleValue(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldScheduleValue is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldScheduleValue requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldScheduleValue: %w", err)
	}
	return oldValue.ScheduleValue, nil
}

// ResetScheduleValue resets all changes to the "schedule_value" field.
func (m *PipelineScheduleMutation) ResetScheduleValue() {
	m.schedule_value = nil
}

// SetConfig sets the "config" field.
func (m *PipelineScheduleMutation) SetConfig(value map[string]interface{}) {
	m._config = &value
}

// Config returns the value of the "config" field in the mutation.
func (m *PipelineScheduleMutation) Config() (r map[string]interface{}, exists bool) {
	v := m._config
	if v == nil {
		return
	}
	return *v, true
}

// OldConfig returns the old "config" field's value of the PipelineSchedule entity.
// If the PipelineSchedule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineScheduleMutation) OldConfig(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConfig is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConfig requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConfig: %w", err)
	}
	return oldValue.Config, nil
}

// ClearConfig clears the value of the "config" field.
func (m *PipelineScheduleMutation) ClearConfig() {
	m._config = nil
	m.clearedFields[pipelineschedule.FieldConfig] = struct{}{}
}

// ConfigCleared returns if the "config" field was cleared in this mutation.
func (m *PipelineScheduleMutation) ConfigCleared() bool {
	_, ok := m.clearedFields[pipelineschedule.FieldConfig]
	return ok
}

// ResetConfig resets all changes to the "config" field.
func (m *PipelineScheduleMutation) ResetConfig() {
	m._config = nil
	delete(m.clearedFields, pipelineschedule.FieldConfig)
}

// SetEnabled sets the "enabled" field.
func (m *PipelineScheduleMutation) SetEnabled(b bool) {
	m.enabled = &b
}

// Enabled returns the value of the "enabled" field in the mutation.
func (m *PipelineScheduleMutation) Enabled() (r bool, exists bool) {
	v := m.enabled
	if v == nil {
		return
	}
	return *v, true
}

// OldEnabled returns the old "enabled" field's value of the PipelineSchedule entity.
// If the PipelineSchedule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineScheduleMutation) OldEnabled(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEnabled is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEnabled requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEnabled: %w", err)
	}
	return oldValue.Enabled, nil
}

// ResetEnabled resets all changes to the "enabled" field.
func (m *PipelineScheduleMutation) ResetEnabled() {
	m.enabled = nil
}

// SetNextRunAt sets the "next_run_at" field.
func (m *PipelineScheduleMutation) SetNextRunAt(t time.Time) {
	m.next_run_at = &t
}

// NextRunAt returns the value of the "next_run_at" field in the mutation.
func (m *PipelineScheduleMutation) NextRunAt() (r time.Time, exists bool) {
	v := m.next_run_at
	if v == nil {
		return
	}
	return *v, true
}

// OldNextRunAt returns the old "next_run_at" field's value of the PipelineSchedule entity.
// If the PipelineSchedule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineScheduleMutation) OldNextRunAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNextRunAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNextRunAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNextRunAt: %w", err)
	}
	return oldValue.NextRunAt, nil
}

// ClearNextRunAt clears the value of the "next_run_at" field.
func (m *PipelineScheduleMutation) ClearNextRunAt() {
	m.next_run_at = nil
	m.clearedFields[pipelineschedule.FieldNextRunAt] = struct{}{}
}

// NextRunAtCleared returns if the "next_run_at" field was cleared in this mutation.
func (m *PipelineScheduleMutation) NextRunAtCleared() bool {
	_, ok := m.clearedFields[pipelineschedule.FieldNextRunAt]
	return ok
}

// ResetNextRunAt resets all changes to the "next_run_at" field.
func (m *PipelineScheduleMutation) ResetNextRunAt() {
	m.next_run_at = nil
	delete(m.clearedFields, pipelineschedule.FieldNextRunAt)
}

// SetLastRunAt sets the "last_run_at" field.
func (m *PipelineScheduleMutation) SetLastRunAt(t time.Time) {
	m.last_run_at = &t
}

// LastRunAt returns the value of the "last_run_at" field in the mutation.
func (m *PipelineScheduleMutation) LastRunAt() (r time.Time, exists bool) {
	v := m.last_run_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastRunAt returns the old "last_run_at" field's value of the PipelineSchedule entity.
// If the PipelineSchedule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineScheduleMutation) OldLastRunAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastRunAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastRunAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastRunAt: %w", err)
	}
	return oldValue.LastRunAt, nil
}

// ClearLastRunAt clears the value of the "last_run_at" field.
func (m *PipelineScheduleMutation) ClearLastRunAt() {
	m.last_run_at = nil
	m.clearedFields[pipelineschedule.FieldLastRunAt] = struct{}{}
}

// LastRunAtCleared returns if the "last_run_at" field was cleared in this mutation.
func (m *PipelineScheduleMutation) LastRunAtCleared() bool {
	_, ok := m.clearedFields[pipelineschedule.FieldLastRunAt]
	return ok
}

// ResetLastRunAt resets all changes to the "last_run_at" field.
func (m *PipelineScheduleMutation) ResetLastRunAt() {
	m.last_run_at = nil
	delete(m.clearedFields, pipelineschedule.FieldLastRunAt)
}

// SetLastRunStatus sets the "last_run_status" field.
func (m *PipelineScheduleMutation) SetLastRunStatus(s string) {
	m.last_run_status = &s
}

// LastRunStatus returns the value of the "last_run_status" field in the mutation.
func (m *PipelineScheduleMutation) LastRunStatus() (r string, exists bool) {
	v := m.last_run_status
	if v == nil {
		return
	}
	return *v, true
}

// OldLastRunStatus returns the old "last_run_status" field's value of the PipelineSchedule entity.
// If the PipelineSchedule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineScheduleMutation) OldLastRunStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastRunStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastRunStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastRunStatus: %w", err)
	}
	return oldValue.LastRunStatus, nil
}

// ClearLastRunStatus clears the value of the "last_run_status" field.
func (m *PipelineScheduleMutation) ClearLastRunStatus() {
	m.last_run_status = nil
	m.clearedFields[pipelineschedule.FieldLastRunStatus] = struct{}{}
}

// LastRunStatusCleared returns if the "last_run_status" field was cleared in this mutation.
func (m *PipelineScheduleMutation) LastRunStatusCleared() bool {
	_, ok := m.clearedFields[pipelineschedule.FieldLastRunStatus]
	return ok
}

// ResetLastRunStatus resets all changes to the "last_run_status" field.
func (m *PipelineScheduleMutation) ResetLastRunStatus() {
	m.last_run_status = nil
	delete(m.clearedFields, pipelineschedule.FieldLastRunStatus)
}

// SetLastRunError sets the "last_run_error" field.
func (m *PipelineScheduleMutation) SetLastRunError(s string) {
	m.last_run_error = &s
}

// LastRunError returns the value of the "last_run_error" field in the mutation.
func (m *PipelineScheduleMutation) LastRunError() (r string, exists bool) {
	v := m.last_run_error
	if v == nil {
		return
	}
	return *v, true
}

// OldLastRunError returns the old "last_run_error" field's value of the PipelineSchedule entity.
// If the PipelineSchedule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineScheduleMutation) OldLastRunError(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastRunError is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastRunError requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastRunError: %w", err)
	}
	return oldValue.LastRunError, nil
}

// ClearLastRunError clears the value of the "last_run_error" field.
func (m *PipelineScheduleMutation) ClearLastRunError() {
	m.last_run_error = nil
	m.clearedFields[pipelineschedule.FieldLastRunError] = struct{}{}
}

// LastRunErrorCleared returns if the "last_run_error" field was cleared in this mutation.
func (m *PipelineScheduleMutation) LastRunErrorCleared() bool {
	_, ok := m.clearedFields[pipelineschedule.FieldLastRunError]
	return ok
}

// ResetLastRunError resets all changes to the "last_run_error" field.
func (m *PipelineScheduleMutation) ResetLastRunError() {
	m.last_run_error = nil
	delete(m.clearedFields, pipelineschedule.FieldLastRunError)
}

// Where appends a list predicates to the PipelineScheduleMutation builder.
func (m *PipelineScheduleMutation) Where(ps ...predicate.PipelineSchedule) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the PipelineScheduleMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *PipelineScheduleMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.PipelineSchedule, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *PipelineScheduleMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *PipelineScheduleMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (PipelineSchedule).
func (m *PipelineScheduleMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *PipelineScheduleMutation) Fields() []string {
	fields := make([]string, 0, 12)
	if m.created_at != nil {
		fields = append(fields, pipelineschedule.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, pipelineschedule.FieldUpdatedAt)
	}
	if m.name != nil {
		fields = append(fields, pipelineschedule.FieldName)
	}
	if m.target != nil {
		fields = append(fields, pipelineschedule.FieldTarget)
	}
	if m.schedule_type != nil {
		fields = append(fields, pipelineschedule.FieldScheduleType)
	}
	if m.schedule_value != nil {
		fields = append(fields, pipelineschedule.FieldScheduleValue)
	}
	if m._config != nil {
		fields = append(fields, pipelineschedule.FieldConfig)
	}
	if m.enabled != nil {
		fields = append(fields, pipelineschedule.FieldEnabled)
	}
	if m.next_run_at != nil {
		fields = append(fields, pipelineschedule.FieldNextRunAt)
	}
	if m.last_run_at != nil {
		fields = append(fields, pipelineschedule.FieldLastRunAt)
	}
	if m.last_run_status != nil {
		fields = append(fields, pipelineschedule.FieldLastRunStatus)
	}
	if m.last_run_error != nil {
		fields = append(fields, pipelineschedule.FieldLastRunError)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *PipelineScheduleMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case pipelineschedule.FieldCreatedAt:
		return m.CreatedAt()
	case pipelineschedule.FieldUpdatedAt:
		return m.UpdatedAt()
	case pipelineschedule.FieldName:
		return m.Name()
	case pipelineschedule.FieldTarget:
		return m.Target()
	case pipelineschedule.FieldScheduleType:
		return m.ScheduleType()
	case pipelineschedule.FieldScheduleValue:
		return m.ScheduleValue()
	case pipelineschedule.FieldConfig:
		return m.Config()
	case pipelineschedule.FieldEnabled:
		return m.Enabled()
	case pipelineschedule.FieldNextRunAt:
		return m.NextRunAt()
	case pipelineschedule.FieldLastRunAt:
		return m.LastRunAt()
	case pipelineschedule.FieldLastRunStatus:
		return m.LastRunStatus()
	case pipelineschedule.FieldLastRunError:
		return m.LastRunError()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *PipelineScheduleMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case pipelineschedule.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case pipelineschedule.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case pipelineschedule.FieldName:
		return m.OldName(ctx)
	case pipelineschedule.FieldTarget:
		return m.OldTarget(ctx)
	case pipelineschedule.FieldScheduleType:
		return m.OldScheduleType(ctx)
	case pipelineschedule.FieldScheduleValue:
		return m.OldScheduleValue(ctx)
	case pipelineschedule.FieldConfig:
		return m.OldConfig(ctx)
	case pipelineschedule.FieldEnabled:
		return m.OldEnabled(ctx)
	case pipelineschedule.FieldNextRunAt:
		return m.OldNextRunAt(ctx)
	case pipelineschedule.FieldLastRunAt:
		return m.OldLastRunAt(ctx)
	case pipelineschedule.FieldLastRunStatus:
		return m.OldLastRunStatus(ctx)
	case pipelineschedule.FieldLastRunError:
		return m.OldLastRunError(ctx)
	}
	return nil, fmt.Errorf("unknown PipelineSchedule field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PipelineScheduleMutation) SetField(name string, value ent.Value) error {
	switch name {
	case pipelineschedule.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case pipelineschedule.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case pipelineschedule.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case pipelineschedule.FieldTarget:
		v, ok := value.(pipelineschedule.Target)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTarget(v)
		return nil
	case pipelineschedule.FieldScheduleType:
		v, ok := value.(pipelineschedule.ScheduleType)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetScheduleType(v)
		return nil
	case pipelineschedule.FieldScheduleValue:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetScheduleValue(v)
		return nil
	case pipelineschedule.FieldConfig:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConfig(v)
		return nil
	case pipelineschedule.FieldEnabled:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEnabled(v)
		return nil
	case pipelineschedule.FieldNextRunAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNextRunAt(v)
		return nil
	case pipelineschedule.FieldLastRunAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastRunAt(v)
		return nil
	case pipelineschedule.FieldLastRunStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastRunStatus(v)
		return nil
	case pipelineschedule.FieldLastRunError:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastRunError(v)
		return nil
	}
	return fmt.Errorf("unknown PipelineSchedule field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *PipelineScheduleMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *PipelineScheduleMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PipelineScheduleMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown PipelineSchedule numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *PipelineScheduleMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(pipelineschedule.FieldConfig) {
		fields = append(fields, pipelineschedule.FieldConfig)
	}
	if m.FieldCleared(pipelineschedule.FieldNextRunAt) {
		fields = append(fields, pipelineschedule.FieldNextRunAt)
	}
	if m.FieldCleared(pipelineschedule.FieldLastRunAt) {
		fields = append(fields, pipelineschedule.FieldLastRunAt)
	}
	if m.FieldCleared(pipelineschedule.FieldLastRunStatus) {
		fields = append(fields, pipelineschedule.FieldLastRunStatus)
	}
	if m.FieldCleared(pipelineschedule.FieldLastRunError) {
		fields = append(fields, pipelineschedule.FieldLastRunError)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *PipelineScheduleMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *PipelineScheduleMutation) ClearField(name string) error {
	switch name {
	case pipelineschedule.FieldConfig:
		m.ClearConfig()
		return nil
	case pipelineschedule.FieldNextRunAt:
		m.ClearNextRunAt()
		return nil
	case pipelineschedule.FieldLastRunAt:
		m.ClearLastRunAt()
		return nil
	case pipelineschedule.FieldLastRunStatus:
		m.ClearLastRunStatus()
		return nil
	case pipelineschedule.FieldLastRunError:
		m.ClearLastRunError()
		return nil
	}
	return fmt.Errorf("unknown PipelineSchedule nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *PipelineScheduleMutation) ResetField(name string) error {
	switch name {
	case pipelineschedule.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case pipelineschedule.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case pipelineschedule.FieldName:
		m.ResetName()
		return nil
	case pipelineschedule.FieldTarget:
		m.ResetTarget()
		return nil
	case pipelineschedule.FieldScheduleType:
		m.ResetScheduleType()
		return nil
	case pipelineschedule.FieldScheduleValue:
		m.ResetScheduleValue()
		return nil
	case pipelineschedule.FieldConfig:
		m.ResetConfig()
		return nil
	case pipelineschedule.FieldEnabled:
		m.ResetEnabled()
		return nil
	case pipelineschedule.FieldNextRunAt:
		m.ResetNextRunAt()
		return nil
	case pipelineschedule.FieldLastRunAt:
		m.ResetLastRunAt()
		return nil
	case pipelineschedule.FieldLastRunStatus:
		m.ResetLastRunStatus()
		return nil
	case pipelineschedule.FieldLastRunError:
		m.ResetLastRunError()
		return nil
	}
	return fmt.Errorf("unknown PipelineSchedule field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *PipelineScheduleMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *PipelineScheduleMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *PipelineScheduleMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *PipelineScheduleMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *PipelineScheduleMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *PipelineScheduleMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *PipelineScheduleMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown PipelineSchedule unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *PipelineScheduleMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown PipelineSchedule edge %s", name)
}

// PipelineStateMutation represents an operation that mutates the PipelineState nodes in the graph.
type PipelineStateMutation struct {
	config
	op            Op
	typ           string
	id            *string
	created_at    *time.Time
	updated_at    *time.Time
	paused        *bool
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*PipelineState, error)
	predicates    []predicate.PipelineState
}

var _ ent.Mutation = (*PipelineStateMutation)(nil)

// pipelinestateOption allows management of the mutation configuration using functional options.
type pipelinestateOption func(*PipelineStateMutation)

// newPipelineStateMutation creates new mutation for the PipelineState entity.
func newPipelineStateMutation(c config, op Op, opts ...pipelinestateOption) *PipelineStateMutation {
	m := &PipelineStateMutation{
		config:        c,
		op:            op,
		typ:           TypePipelineState,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withPipelineStateID sets the ID field of the mutation.
func withPipelineStateID(id string) pipelinestateOption {
	return func(m *PipelineStateMutation) {
		var (
			err   error
			once  sync.Once
			value *PipelineState
		)
		m.oldValue = func(ctx context.Context) (*PipelineState, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().PipelineState.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withPipelineState sets the old PipelineState of the mutation.
func withPipelineState(node *PipelineState) pipelinestateOption {
	return func(m *PipelineStateMutation) {
		m.oldValue = func(context.Context) (*PipelineState, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m PipelineStateMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m PipelineStateMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of PipelineState entities.
func (m *PipelineStateMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *PipelineStateMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *PipelineStateMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().PipelineState.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *PipelineStateMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *PipelineStateMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the PipelineState entity.
// If the PipelineState object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineStateMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *PipelineStateMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *PipelineStateMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *PipelineStateMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the PipelineState entity.
// If the PipelineState object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineStateMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *PipelineStateMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetPaused sets the "paused" field.
func (m *PipelineStateMutation) SetPaused(b bool) {
	m.paused = &b
}

// Paused returns the value of the "paused" field in the mutation.
func (m *PipelineStateMutation) Paused() (r bool, exists bool) {
	v := m.paused
	if v == nil {
		return
	}
	return *v, true
}

// OldPaused returns the old "paused" field's value of the PipelineState entity.
// If the PipelineState object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineStateMutation) OldPaused(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPaused is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPaused requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPaused: %w", err)
	}
	return oldValue.Paused, nil
}

// ResetPaused resets all changes to the "paused" field.
func (m *PipelineStateMutation) ResetPaused() {
	m.paused = nil
}

// Where appends a list predicates to the PipelineStateMutation builder.
func (m *PipelineStateMutation) Where(ps ...predicate.PipelineState) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the PipelineStateMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *PipelineStateMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.PipelineState, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *PipelineStateMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *PipelineStateMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (PipelineState).
func (m *PipelineStateMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *PipelineStateMutation) Fields() []string {
	fields := make([]string, 0, 3)
	if m.created_at != nil {
		fields = append(fields, pipelinestate.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, pipelinestate.FieldUpdatedAt)
	}
	if m.paused != nil {
		fields = append(fields, pipelinestate.FieldPaused)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *PipelineStateMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case pipelinestate.FieldCreatedAt:
		return m.CreatedAt()
	case pipelinestate.FieldUpdatedAt:
		return m.UpdatedAt()
	case pipelinestate.FieldPaused:
		return m.Paused()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *PipelineStateMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case pipelinestate.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case pipelinestate.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case pipelinestate.FieldPaused:
		return m.OldPaused(ctx)
	}
	return nil, fmt.Errorf("unknown PipelineState field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PipelineStateMutation) SetField(name string, value ent.Value) error {
	switch name {
	case pipelinestate.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case pipelinestate.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case pipelinestate.FieldPaused:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPaused(v)
		return nil
	}
	return fmt.Errorf("unknown PipelineState field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *PipelineStateMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *PipelineStateMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PipelineStateMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown PipelineState numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *PipelineStateMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *PipelineStateMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *PipelineStateMutation) ClearField(name string) error {
	return fmt.Errorf("unknown PipelineState nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *PipelineStateMutation) ResetField(name string) error {
	switch name {
	case pipelinestate.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case pipelinestate.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case pipelinestate.FieldPaused:
		m.ResetPaused()
		return nil
	}
	return fmt.Errorf("unknown PipelineState field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *PipelineStateMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *PipelineStateMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *PipelineStateMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *PipelineStateMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *PipelineStateMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *PipelineStateMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *PipelineStateMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown PipelineState unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *PipelineStateMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown PipelineState edge %s", name)
}

// SegmentMutation represents an operation that mutates the Segment nodes in the graph.
type SegmentMutation struct {
	config
	op               Op
	typ              string
	id               *string
	created_at       *time.Time
	updated_at       *time.Time
	segment_index    *int
	addsegment_index *int
	start_time       *float64
	addstart_time    *float64
	end_time         *float64
	addend_time      *float64
	text             *string
	speaker          *string
	speaker_role     *string
	clearedFields    map[string]struct{}
	hearing          *string
	clearedhearing   bool
	done             bool
	oldValue         func(context.Context) (*Segment, error)
	predicates       []predicate.Segment
}

var _ ent.Mutation = (*SegmentMutation)(nil)

// segmentOption allows management of the mutation configuration using functional options.
type segmentOption func(*SegmentMutation)

// newSegmentMutation creates new mutation for the Segment entity.
func newSegmentMutation(c config, op Op, opts ...segmentOption) *SegmentMutation {
	m := &SegmentMutation{
		config:        c,
		op:            op,
		typ:           TypeSegment,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withSegmentID sets the ID field of the mutation.
func withSegmentID(id string) segmentOption {
	return func(m *SegmentMutation) {
		var (
			err   error
			once  sync.Once
			value *Segment
		)
		m.oldValue = func(ctx context.Context) (*Segment, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Segment.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withSegment sets the old Segment of the mutation.
func withSegment(node *Segment) segmentOption {
	return func(m *SegmentMutation) {
		m.oldValue = func(context.Context) (*Segment, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m SegmentMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m SegmentMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Segment entities.
func (m *SegmentMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *SegmentMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *SegmentMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Segment.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *SegmentMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *SegmentMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Segment entity.
// If the Segment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SegmentMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *SegmentMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *SegmentMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *SegmentMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Segment entity.
// If the Segment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SegmentMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *SegmentMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetHearingID sets the "hearing_id" field.
func (m *SegmentMutation) SetHearingID(s string) {
	m.hearing = &s
}

// HearingID returns the value of the "hearing_id" field in the mutation.
func (m *SegmentMutation) HearingID() (r string, exists bool) {
	v := m.hearing
	if v == nil {
		return
	}
	return *v, true
}

// OldHearingID returns the old "hearing_id" field's value of the Segment entity.
// If the Segment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SegmentMutation) OldHearingID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldHearingID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldHearingID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldHearingID: %w", err)
	}
	return oldValue.HearingID, nil
}

// ResetHearingID resets all changes to the "hearing_id" field.
func (m *SegmentMutation) ResetHearingID() {
	m.hearing = nil
}

// SetSegmentIndex sets the "segment_index" field.
func (m *SegmentMutation) SetSegmentIndex(i int) {
	m.segment_index = &i
	m.addsegment_index = nil
}

// SegmentIndex returns the value of the "segment_index" field in the mutation.
func (m *SegmentMutation) SegmentIndex() (r int, exists bool) {
	v := m.segment_index
	if v == nil {
		return
	}
	return *v, true
}

// OldSegmentIndex returns the old "segment_index" field's value of the Segment entity.
// If the Segment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SegmentMutation) OldSegmentIndex(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSegmentIndex is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSegmentIndex requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSegmentIndex: %w", err)
	}
	return oldValue.SegmentIndex, nil
}

// AddSegmentIndex adds i to the "segment_index" field.
func (m *SegmentMutation) AddSegmentIndex(i int) {
	if m.addsegment_index != nil {
		*m.addsegment_index += i
	} else {
		m.addsegment_index = &i
	}
}

// AddedSegmentIndex returns the value that was added to the "segment_index" field in this mutation.
func (m *SegmentMutation) AddedSegmentIndex() (r int, exists bool) {
	v := m.addsegment_index
	if v == nil {
		return
	}
	return *v, true
}

// ResetSegmentIndex resets all changes to the "segment_index" field.
func (m *SegmentMutation) ResetSegmentIndex() {
	m.segment_index = nil
	m.addsegment_index = nil
}

// SetStartTime sets the "start_time" field.
func (m *SegmentMutation) SetStartTime(f float64) {
	m.start_time = &f
	m.addstart_time = nil
}

// StartTime returns the value of the "start_time" field in the mutation.
func (m *SegmentMutation) StartTime() (r float64, exists bool) {
	v := m.start_time
	if v == nil {
		return
	}
	return *v, true
}

// OldStartTime returns the old "start_time" field's value of the Segment entity.
// If the Segment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SegmentMutation) OldStartTime(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartTime is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartTime requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartTime: %w", err)
	}
	return oldValue.StartTime, nil
}

// AddStartTime adds f to the "start_time" field.
func (m *SegmentMutation) AddStartTime(f float64) {
	if m.addstart_time != nil {
		*m.addstart_time += f
	} else {
		m.addstart_time = &f
	}
}

// AddedStartTime returns the value that was added to the "start_time" field in this mutation.
func (m *SegmentMutation) AddedStartTime() (r float64, exists bool) {
	v := m.addstart_time
	if v == nil {
		return
	}
	return *v, true
}

// ResetStartTime resets all changes to the "start_time" field.
func (m *SegmentMutation) ResetStartTime() {
	m.start_time = nil
	m.addstart_time = nil
}

// SetEndTime sets the "end_time" field.
func (m *SegmentMutation) SetEndTime(f float64) {
	m.end_time = &f
	m.addend_time = nil
}

// EndTime returns the value of the "end_time" field in the mutation.
func (m *SegmentMutation) EndTime() (r float64, exists bool) {
	v := m.end_time
	if v == nil {
		return
	}
	return *v, true
}

// OldEndTime returns the old "end_time" field's value of the Segment entity.
// If the Segment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SegmentMutation) OldEndTime(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEndTime is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEndTime requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEndTime: %w", err)
	}
	return oldValue.EndTime, nil
}

// AddEndTime adds f to the "end_time" field.
func (m *SegmentMutation) AddEndTime(f float64) {
	if m.addend_time != nil {
		*m.addend_time += f
	} else {
		m.addend_time = &f
	}
}

// AddedEndTime returns the value that was added to the "end_time" field in this mutation.
func (m *SegmentMutation) AddedEndTime() (r float64, exists bool) {
	v := m.addend_time
	if v == nil {
		return
	}
	return *v, true
}

// ResetEndTime resets all changes to the "end_time" field.
func (m *SegmentMutation) ResetEndTime() {
	m.end_time = nil
	m.addend_time = nil
}

// SetText sets the "text" field.
func (m *SegmentMutation) SetText(s string) {
	m.text = &s
}

// Text returns the value of the "text" field in the mutation.
func (m *SegmentMutation) Text() (r string, exists bool) {
	v := m.text
	if v == nil {
		return
	}
	return *v, true
}

// OldText returns the old "text" field's value of the Segment entity.
// If the Segment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SegmentMutation) OldText(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldText is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldText requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldText: %w", err)
	}
	return oldValue.Text, nil
}

// ResetText resets all changes to the "text" field.
func (m *SegmentMutation) ResetText() {
	m.text = nil
}

// SetSpeaker sets the "speaker" field.
func (m *SegmentMutation) SetSpeaker(s string) {
	m.speaker = &s
}

// Speaker returns the value of the "speaker" field in the mutation.
func (m *SegmentMutation) Speaker() (r string, exists bool) {
	v := m.speaker
	if v == nil {
		return
	}
	return *v, true
}

// OldSpeaker returns the old "speaker" field's value of the Segment entity.
// If the Segment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SegmentMutation) OldSpeaker(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSpeaker is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSpeaker requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSpeaker: %w", err)
	}
	return oldValue.Speaker, nil
}

// ClearSpeaker clears the value of the "speaker" field.
func (m *SegmentMutation) ClearSpeaker() {
	m.speaker = nil
	m.clearedFields[segment.FieldSpeaker] = struct{}{}
}

// SpeakerCleared returns if the "speaker" field was cleared in this mutation.
func (m *SegmentMutation) SpeakerCleared() bool {
	_, ok := m.clearedFields[segment.FieldSpeaker]
	return ok
}

// ResetSpeaker resets all changes to the "speaker" field.
func (m *SegmentMutation) ResetSpeaker() {
	m.speaker = nil
	delete(m.clearedFields, segment.FieldSpeaker)
}

// SetSpeakerRole sets the "speaker_role" field.
func (m *SegmentMutation) SetSpeakerRole(s string) {
	m.speaker_role = &s
}

// SpeakerRole returns the value of the "speaker_role" field in the mutation.
func (m *SegmentMutation) SpeakerRole() (r string, exists bool) {
	v := m.speaker_role
	if v == nil {
		return
	}
	return *v, true
}

// OldSpeakerRole returns the old "speaker_role" field's value of the Segment entity.
// If the Segment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SegmentMutation) OldSpeakerRole(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSpeakerRole is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSpeakerRole requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSpeakerRole: %w", err)
	}
	return oldValue.SpeakerRole, nil
}

// ClearSpeakerRole clears the value of the "speaker_role" field.
func (m *SegmentMutation) ClearSpeakerRole() {
	m.speaker_role = nil
	m.clearedFields[segment.FieldSpeakerRole] = struct{}{}
}

// SpeakerRoleCleared returns if the "speaker_role" field was cleared in this mutation.
func (m *SegmentMutation) SpeakerRoleCleared() bool {
	_, ok := m.clearedFields[segment.FieldSpeakerRole]
	return ok
}

// ResetSpeakerRole resets all changes to the "speaker_role" field.
func (m *SegmentMutation) ResetSpeakerRole() {
	m.speaker_role = nil
	delete(m.clearedFields, segment.FieldSpeakerRole)
}

// ClearHearing clears the "hearing" edge to the Hearing entity.
func (m *SegmentMutation) ClearHearing() {
	m.clearedhearing = true
	m.clearedFields[segment.FieldHearingID] = struct{}{}
}

// HearingCleared reports if the "hearing" edge to the Hearing entity was cleared.
func (m *SegmentMutation) HearingCleared() bool {
	return m.clearedhearing
}

// HearingIDs returns the "hearing" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// HearingID instead. It exists only for internal usage by the builders.
func (m *SegmentMutation) HearingIDs() (ids []string) {
	if id := m.hearing; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetHearing resets all changes to the "hearing" edge.
func (m *SegmentMutation) ResetHearing() {
	m.hearing = nil
	m.clearedhearing = false
}

// Where appends a list predicates to the SegmentMutation builder.
func (m *SegmentMutation) Where(ps ...predicate.Segment) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the SegmentMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *SegmentMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Segment, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *SegmentMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *SegmentMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Segment).
func (m *SegmentMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *SegmentMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.created_at != nil {
		fields = append(fields, segment.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, segment.FieldUpdatedAt)
	}
	if m.hearing != nil {
		fields = append(fields, segment.FieldHearingID)
	}
	if m.segment_index != nil {
		fields = append(fields, segment.FieldSegmentIndex)
	}
	if m.start_time != nil {
		fields = append(fields, segment.FieldStartTime)
	}
	if m.end_time != nil {
		fields = append(fields, segment.FieldEndTime)
	}
	if m.text != nil {
		fields = append(fields, segment.FieldText)
	}
	if m.speaker != nil {
		fields = append(fields, segment.FieldSpeaker)
	}
	if m.speaker_role != nil {
		fields = append(fields, segment.FieldSpeakerRole)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *SegmentMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case segment.FieldCreatedAt:
		return m.CreatedAt()
	case segment.FieldUpdatedAt:
		return m.UpdatedAt()
	case segment.FieldHearingID:
		return m.HearingID()
	case segment.FieldSegmentIndex:
		return m.SegmentIndex()
	case segment.FieldStartTime:
		return m.StartTime()
	case segment.FieldEndTime:
		return m.EndTime()
	case segment.FieldText:
		return m.Text()
	case segment.FieldSpeaker:
		return m.Speaker()
	case segment.FieldSpeakerRole:
		return m.SpeakerRole()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *SegmentMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case segment.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case segment.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case segment.FieldHearingID:
		return m.OldHearingID(ctx)
	case segment.FieldSegmentIndex:
		return m.OldSegmentIndex(ctx)
	case segment.FieldStartTime:
		return m.OldStartTime(ctx)
	case segment.FieldEndTime:
		return m.OldEndTime(ctx)
	case segment.FieldText:
		return m.OldText(ctx)
	case segment.FieldSpeaker:
		return m.OldSpeaker(ctx)
	case segment.FieldSpeakerRole:
		return m.OldSpeakerRole(ctx)
	}
	return nil, fmt.Errorf("unknown Segment field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SegmentMutation) SetField(name string, value ent.Value) error {
	switch name {
	case segment.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case segment.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case segment.FieldHearingID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetHearingID(v)
		return nil
	case segment.FieldSegmentIndex:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSegmentIndex(v)
		return nil
	case segment.FieldStartTime:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartTime(v)
		return nil
	case segment.FieldEndTime:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEndTime(v)
		return nil
	case segment.FieldText:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetText(v)
		return nil
	case segment.FieldSpeaker:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSpeaker(v)
		return nil
	case segment.FieldSpeakerRole:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSpeakerRole(v)
		return nil
	}
	return fmt.Errorf("unknown Segment field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *SegmentMutation) AddedFields() []string {
	var fields []string
	if m.addsegment_index != nil {
		fields = append(fields, segment.FieldSegmentIndex)
	}
	if m.addstart_time != nil {
		fields = append(fields, segment.FieldStartTime)
	}
	if m.addend_time != nil {
		fields = append(fields, segment.FieldEndTime)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *SegmentMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case segment.FieldSegmentIndex:
		return m.AddedSegmentIndex()
	case segment.FieldStartTime:
		return m.AddedStartTime()
	case segment.FieldEndTime:
		return m.AddedEndTime()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SegmentMutation) AddField(name string, value ent.Value) error {
	switch name {
	case segment.FieldSegmentIndex:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSegmentIndex(v)
		return nil
	case segment.FieldStartTime:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddStartTime(v)
		return nil
	case segment.FieldEndTime:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddEndTime(v)
		return nil
	}
	return fmt.Errorf("unknown Segment numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *SegmentMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(segment.FieldSpeaker) {
		fields = append(fields, segment.FieldSpeaker)
	}
	if m.FieldCleared(segment.FieldSpeakerRole) {
		fields = append(fields, segment.FieldSpeakerRole)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *SegmentMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *SegmentMutation) ClearField(name string) error {
	switch name {
	case segment.FieldSpeaker:
		m.ClearSpeaker()
		return nil
	case segment.FieldSpeakerRole:
		m.ClearSpeakerRole()
		return nil
	}
	return fmt.Errorf("unknown Segment nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *SegmentMutation) ResetField(name string) error {
	switch name {
	case segment.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case segment.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case segment.FieldHearingID:
		m.ResetHearingID()
		return nil
	case segment.FieldSegmentIndex:
		m.ResetSegmentIndex()
		return nil
	case segment.FieldStartTime:
		m.ResetStartTime()
		return nil
	case segment.FieldEndTime:
		m.ResetEndTime()
		return nil
	case segment.FieldText:
		m.ResetText()
		return nil
	case segment.FieldSpeaker:
		m.ResetSpeaker()
		return nil
	case segment.FieldSpeakerRole:
		m.ResetSpeakerRole()
		return nil
	}
	return fmt.Errorf("unknown Segment field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *SegmentMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.hearing != nil {
		edges = append(edges, segment.EdgeHearing)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *SegmentMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case segment.EdgeHearing:
		if id := m.hearing; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *SegmentMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *SegmentMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *SegmentMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedhearing {
		edges = append(edges, segment.EdgeHearing)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *SegmentMutation) EdgeCleared(name string) bool {
	switch name {
	case segment.EdgeHearing:
		return m.clearedhearing
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *SegmentMutation) ClearEdge(name string) error {
	switch name {
	case segment.EdgeHearing:
		m.ClearHearing()
		return nil
	}
	return fmt.Errorf("unknown Segment unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *SegmentMutation) ResetEdge(name string) error {
	switch name {
	case segment.EdgeHearing:
		m.ResetHearing()
		return nil
	}
	return fmt.Errorf("unknown Segment edge %s", name)
}

// SourceMutation represents an operation that mutates the Source nodes in the graph.
type SourceMutation struct {
	config
	op                       Op
	typ                      string
	id                       *string
	created_at               *time.Time
	updated_at               *time.Time
	state_code               *string
	kind                     *source.Kind
	url                      *string
	_config                  *map[string]interface{}
	enabled                  *bool
	check_frequency_hours    *int
	addcheck_frequency_hours *int
	last_checked_at          *time.Time
	last_hearing_at          *time.Time
	status                   *source.Status
	error_message            *string
	clearedFields            map[string]struct{}
	hearings                 map[string]struct{}
	removedhearings          map[string]struct{}
	clearedhearings          bool
	done                     bool
	oldValue                 func(context.Context) (*Source, error)
	predicates               []predicate.Source
}

var _ ent.Mutation = (*SourceMutation)(nil)

// sourceOption allows management of the mutation configuration using functional options.
type sourceOption func(*SourceMutation)

// newSourceMutation creates new mutation for the Source entity.
func newSourceMutation(c config, op Op, opts ...sourceOption) *SourceMutation {
	m := &SourceMutation{
		config:        c,
		op:            op,
		typ:           TypeSource,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withSourceID sets the ID field of the mutation.
func withSourceID(id string) sourceOption {
	return func(m *SourceMutation) {
		var (
			err   error
			once  sync.Once
			value *Source
		)
		m.oldValue = func(ctx context.Context) (*Source, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Source.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withSource sets the old Source of the mutation.
func withSource(node *Source) sourceOption {
	return func(m *SourceMutation) {
		m.oldValue = func(context.Context) (*Source, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m SourceMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m SourceMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Source entities.
func (m *SourceMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *SourceMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *SourceMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Source.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *SourceMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *SourceMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Source entity.
// If the Source object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SourceMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *SourceMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *SourceMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *SourceMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Source entity.
// If the Source object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SourceMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *SourceMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetStateCode sets the "state_code" field.
func (m *SourceMutation) SetStateCode(s string) {
	m.state_code = &s
}

// StateCode returns the value of the "state_code" field in the mutation.
func (m *SourceMutation) StateCode() (r string, exists bool) {
	v := m.state_code
	if v == nil {
		return
	}
	return *v, true
}

// OldStateCode returns the old "state_code" field's value of the Source entity.
// If the Source object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SourceMutation) OldStateCode(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStateCode is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStateCode requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStateCode: %w", err)
	}
	return oldValue.StateCode, nil
}

// ResetStateCode resets all changes to the "state_code" field.
func (m *SourceMutation) ResetStateCode() {
	m.state_code = nil
}

// SetKind sets the "kind" field.
func (m *SourceMutation) SetKind(s source.Kind) {
	m.kind = &s
}

// Kind returns the value of the "kind" field in the mutation.
func (m *SourceMutation) Kind() (r source.Kind, exists bool) {
	v := m.kind
	if v == nil {
		return
	}
	return *v, true
}

// OldKind returns the old "kind" field's value of the Source entity.
// If the Source object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SourceMutation) OldKind(ctx context.Context) (v source.Kind, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldKind is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldKind requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldKind: %w", err)
	}
	return oldValue.Kind, nil
}

// ResetKind resets all changes to the "kind" field.
func (m *SourceMutation) ResetKind() {
	m.kind = nil
}

// SetURL sets the "url" field.
func (m *SourceMutation) SetURL(s string) {
	m.url = &s
}

// URL returns the value of the "url" field in the mutation.
func (m *SourceMutation) URL() (r string, exists bool) {
	v := m.url
	if v == nil {
		return
	}
	return *v, true
}

// OldURL returns the old "url" field's value of the Source entity.
// If the Source object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SourceMutation) OldURL(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldURL is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldURL requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldURL: %w", err)
	}
	return oldValue.URL, nil
}

// ResetURL resets all changes to the "url" field.
func (m *SourceMutation) ResetURL() {
	m.url = nil
}

// SetConfig sets the "config" field.
func (m *SourceMutation) SetConfig(value map[string]interface{}) {
	m._config = &value
}

// Config returns the value of the "config" field in the mutation.
func (m *SourceMutation) Config() (r map[string]interface{}, exists bool) {
	v := m._config
	if v == nil {
		return
	}
	return *v, true
}

// OldConfig returns the old "config" field's value of the Source entity.
// If the Source object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SourceMutation) OldConfig(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConfig is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConfig requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConfig: %w", err)
	}
	return oldValue.Config, nil
}

// ClearConfig clears the value of the "config" field.
func (m *SourceMutation) ClearConfig() {
	m._config = nil
	m.clearedFields[source.FieldConfig] = struct{}{}
}

// ConfigCleared returns if the "config" field was cleared in this mutation.
func (m *SourceMutation) ConfigCleared() bool {
	_, ok := m.clearedFields[source.FieldConfig]
	return ok
}

// ResetConfig resets all changes to the "config" field.
func (m *SourceMutation) ResetConfig() {
	m._config = nil
	delete(m.clearedFields, source.FieldConfig)
}

// SetEnabled sets the "enabled" field.
func (m *SourceMutation) SetEnabled(b bool) {
	m.enabled = &b
}

// Enabled returns the value of the "enabled" field in the mutation.
func (m *SourceMutation) Enabled() (r bool, exists bool) {
	v := m.enabled
	if v == nil {
		return
	}
	return *v, true
}

// OldEnabled returns the old "enabled" field's value of the Source entity.
// If the Source object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SourceMutation) OldEnabled(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEnabled is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEnabled requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEnabled: %w", err)
	}
	return oldValue.Enabled, nil
}

// ResetEnabled resets all changes to the "enabled" field.
func (m *SourceMutation) ResetEnabled() {
	m.enabled = nil
}

// SetCheckFrequencyHours sets the "check_frequency_hours" field.
func (m *SourceMutation) SetCheckFrequencyHours(i int) {
	m.check_frequency_hours = &i
	m.addcheck_frequency_hours = nil
}

// CheckFrequencyHours returns the value of the "check_frequency_hours" field in the mutation.
func (m *SourceMutation) CheckFrequencyHours() (r int, exists bool) {
	v := m.check_frequency_hours
	if v == nil {
		return
	}
	return *v, true
}

// OldCheckFrequencyHours returns the old "check_frequency_hours" field's value of the Source entity.
// If the Source object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SourceMutation) OldCheckFrequencyHours(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCheckFrequencyHours is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCheckFrequencyHours requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCheckFrequencyHours: %w", err)
	}
	return oldValue.CheckFrequencyHours, nil
}

// AddCheckFrequencyHours adds i to the "check_frequency_hours" field.
func (m *SourceMutation) AddCheckFrequencyHours(i int) {
	if m.addcheck_frequency_hours != nil {
		*m.addcheck_frequency_hours += i
	} else {
		m.addcheck_frequency_hours = &i
	}
}

// AddedCheckFrequencyHours returns the value that was added to the "check_frequency_hours" field in this mutation.
func (m *SourceMutation) AddedCheckFrequencyHours() (r int, exists bool) {
	v := m.addcheck_frequency_hours
	if v == nil {
		return
	}
	return *v, true
}

// ResetCheckFrequencyHours resets all changes to the "check_frequency_hours" field.
func (m *SourceMutation) ResetCheckFrequencyHours() {
	m.check_frequency_hours = nil
	m.addcheck_frequency_hours = nil
}

// SetLastCheckedAt sets the "last_checked_at" field.
func (m *SourceMutation) SetLastCheckedAt(t time.Time) {
	m.last_checked_at = &t
}

// LastCheckedAt returns the value of the "last_checked_at" field in the mutation.
func (m *SourceMutation) LastCheckedAt() (r time.Time, exists bool) {
	v := m.last_checked_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastCheckedAt returns the old "last_checked_at" field's value of the Source entity.
// If the Source object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SourceMutation) OldLastCheckedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastCheckedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastCheckedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastCheckedAt: %w", err)
	}
	return oldValue.LastCheckedAt, nil
}

// ClearLastCheckedAt clears the value of the "last_checked_at" field.
func (m *SourceMutation) ClearLastCheckedAt() {
	m.last_checked_at = nil
	m.clearedFields[source.FieldLastCheckedAt] = struct{}{}
}

// LastCheckedAtCleared returns if the "last_checked_at" field was cleared in this mutation.
func (m *SourceMutation) LastCheckedAtCleared() bool {
	_, ok := m.clearedFields[source.FieldLastCheckedAt]
	return ok
}

// ResetLastCheckedAt resets all changes to the "last_checked_at" field.
func (m *SourceMutation) ResetLastCheckedAt() {
	m.last_checked_at = nil
	delete(m.clearedFields, source.FieldLastCheckedAt)
}

// SetLastHearingAt sets the "last_hearing_at" field.
func (m *SourceMutation) SetLastHearingAt(t time.Time) {
	m.last_hearing_at = &t
}

// LastHearingAt returns the value of the "last_hearing_at" field in the mutation.
func (m *SourceMutation) LastHearingAt() (r time.Time, exists bool) {
	v := m.last_hearing_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastHearingAt returns the old "last_hearing_at" field's value of the Source entity.
// If the Source object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SourceMutation) OldLastHearingAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastHearingAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastHearingAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastHearingAt: %w", err)
	}
	return oldValue.LastHearingAt, nil
}

// ClearLastHearingAt clears the value of the "last_hearing_at" field.
func (m *SourceMutation) ClearLastHearingAt() {
	m.last_hearing_at = nil
	m.clearedFields[source.FieldLastHearingAt] = struct{}{}
}

// LastHearingAtCleared returns if the "last_hearing_at" field was cleared in this mutation.
func (m *SourceMutation) LastHearingAtCleared() bool {
	_, ok := m.clearedFields[source.FieldLastHearingAt]
	return ok
}

// ResetLastHearingAt resets all changes to the "last_hearing_at" field.
func (m *SourceMutation) ResetLastHearingAt() {
	m.last_hearing_at = nil
	delete(m.clearedFields, source.FieldLastHearingAt)
}

// SetStatus sets the "status" field.
func (m *SourceMutation) SetStatus(s source.Status) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *SourceMutation) Status() (r source.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Source entity.
// If the Source object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SourceMutation) OldStatus(ctx context.Context) (v source.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *SourceMutation) ResetStatus() {
	m.status = nil
}

// SetErrorMessage sets the "error_message" field.
func (m *SourceMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *SourceMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the Source entity.
// If the Source object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SourceMutation) OldErrorMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *SourceMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[source.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *SourceMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[source.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *SourceMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, source.FieldErrorMessage)
}

// AddHearingIDs adds the "hearings" edge to the Hearing entity by ids.
func (m *SourceMutation) AddHearingIDs(ids ...string) {
	if m.hearings == nil {
		m.hearings = make(map[string]struct{})
	}
	for i := range ids {
		m.hearings[ids[i]] = struct{}{}
	}
}

// ClearHearings clears the "hearings" edge to the Hearing entity.
func (m *SourceMutation) ClearHearings() {
	m.clearedhearings = true
}

// HearingsCleared reports if the "hearings" edge to the Hearing entity was cleared.
func (m *SourceMutation) HearingsCleared() bool {
	return m.clearedhearings
}

// RemoveHearingIDs removes the "hearings" edge to the Hearing entity by IDs.
func (m *SourceMutation) RemoveHearingIDs(ids ...string) {
	if m.removedhearings == nil {
		m.removedhearings = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.hearings, ids[i])
		m.removedhearings[ids[i]] = struct{}{}
	}
}

// RemovedHearings returns the removed IDs of the "hearings" edge to the Hearing entity.
func (m *SourceMutation) RemovedHearingsIDs() (ids []string) {
	for id := range m.removedhearings {
		ids = append(ids, id)
	}
	return
}

// HearingsIDs returns the "hearings" edge IDs in the mutation.
func (m *SourceMutation) HearingsIDs() (ids []string) {
	for id := range m.hearings {
		ids = append(ids, id)
	}
	return
}

// ResetHearings resets all changes to the "hearings" edge.
func (m *SourceMutation) ResetHearings() {
	m.hearings = nil
	m.clearedhearings = false
	m.removedhearings = nil
}

// Where appends a list predicates to the SourceMutation builder.
func (m *SourceMutation) Where(ps ...predicate.Source) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the SourceMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *SourceMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Source, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *SourceMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *SourceMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Source).
func (m *SourceMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *SourceMutation) Fields() []string {
	fields := make([]string, 0, 12)
	if m.created_at != nil {
		fields = append(fields, source.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, source.FieldUpdatedAt)
	}
	if m.state_code != nil {
		fields = append(fields, source.FieldStateCode)
	}
	if m.kind != nil {
		fields = append(fields, source.FieldKind)
	}
	if m.url != nil {
		fields = append(fields, source.FieldURL)
	}
	if m._config != nil {
		fields = append(fields, source.FieldConfig)
	}
	if m.enabled != nil {
		fields = append(fields, source.FieldEnabled)
	}
	if m.check_frequency_hours != nil {
		fields = append(fields, source.FieldCheckFrequencyHours)
	}
	if m.last_checked_at != nil {
		fields = append(fields, source.FieldLastCheckedAt)
	}
	if m.last_hearing_at != nil {
		fields = append(fields, source.FieldLastHearingAt)
	}
	if m.status != nil {
		fields = append(fields, source.FieldStatus)
	}
	if m.error_message != nil {
		fields = append(fields, source.FieldErrorMessage)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *SourceMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case source.FieldCreatedAt:
		return m.CreatedAt()
	case source.FieldUpdatedAt:
		return m.UpdatedAt()
	case source.FieldStateCode:
		return m.StateCode()
	case source.FieldKind:
		return m.Kind()
	case source.FieldURL:
		return m.URL()
	case source.FieldConfig:
		return m.Config()
	case source.FieldEnabled:
		return m.Enabled()
	case source.FieldCheckFrequencyHours:
		return m.CheckFrequencyHours()
	case source.FieldLastCheckedAt:
		return m.LastCheckedAt()
	case source.FieldLastHearingAt:
		return m.LastHearingAt()
	case source.FieldStatus:
		return m.Status()
	case source.FieldErrorMessage:
		return m.ErrorMessage()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *SourceMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case source.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case source.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case source.FieldStateCode:
		return m.OldStateCode(ctx)
	case source.FieldKind:
		return m.OldKind(ctx)
	case source.FieldURL:
		return m.OldURL(ctx)
	case source.FieldConfig:
		return m.OldConfig(ctx)
	case source.FieldEnabled:
		return m.OldEnabled(ctx)
	case source.FieldCheckFrequencyHours:
		return m.OldCheckFrequencyHours(ctx)
	case source.FieldLastCheckedAt:
		return m.OldLastCheckedAt(ctx)
	case source.FieldLastHearingAt:
		return m.OldLastHearingAt(ctx)
	case source.FieldStatus:
		return m.OldStatus(ctx)
	case source.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	}
	return nil, fmt.Errorf("unknown Source field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SourceMutation) SetField(name string, value ent.Value) error {
	switch name {
	case source.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case source.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case source.FieldStateCode:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStateCode(v)
		return nil
	case source.FieldKind:
		v, ok := value.(source.Kind)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetKind(v)
		return nil
	case source.FieldURL:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetURL(v)
		return nil
	case source.FieldConfig:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConfig(v)
		return nil
	case source.FieldEnabled:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEnabled(v)
		return nil
	case source.FieldCheckFrequencyHours:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCheckFrequencyHours(v)
		return nil
	case source.FieldLastCheckedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastCheckedAt(v)
		return nil
	case source.FieldLastHearingAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastHearingAt(v)
		return nil
	case source.FieldStatus:
		v, ok := value.(source.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case source.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	}
	return fmt.Errorf("unknown Source field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *SourceMutation) AddedFields() []string {
	var fields []string
	if m.addcheck_frequency_hours != nil {
		fields = append(fields, source.FieldCheckFrequencyHours)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *SourceMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case source.FieldCheckFrequencyHours:
		return m.AddedCheckFrequencyHours()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SourceMutation) AddField(name string, value ent.Value) error {
	switch name {
	case source.FieldCheckFrequencyHours:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCheckFrequencyHours(v)
		return nil
	}
	return fmt.Errorf("unknown Source numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *SourceMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(source.FieldConfig) {
		fields = append(fields, source.FieldConfig)
	}
	if m.FieldCleared(source.FieldLastCheckedAt) {
		fields = append(fields, source.FieldLastCheckedAt)
	}
	if m.FieldCleared(source.FieldLastHearingAt) {
		fields = append(fields, source.FieldLastHearingAt)
	}
	if m.FieldCleared(source.FieldErrorMessage) {
		fields = append(fields, source.FieldErrorMessage)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *SourceMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *SourceMutation) ClearField(name string) error {
	switch name {
	case source.FieldConfig:
		m.ClearConfig()
		return nil
	case source.FieldLastCheckedAt:
		m.ClearLastCheckedAt()
		return nil
	case source.FieldLastHearingAt:
		m.ClearLastHearingAt()
		return nil
	case source.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	}
	return fmt.Errorf("unknown Source nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *SourceMutation) ResetField(name string) error {
	switch name {
	case source.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case source.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case source.FieldStateCode:
		m.ResetStateCode()
		return nil
	case source.FieldKind:
		m.ResetKind()
		return nil
	case source.FieldURL:
		m.ResetURL()
		return nil
	case source.FieldConfig:
		m.ResetConfig()
		return nil
	case source.FieldEnabled:
		m.ResetEnabled()
		return nil
	case source.FieldCheckFrequencyHours:
		m.ResetCheckFrequencyHours()
		return nil
	case source.FieldLastCheckedAt:
		m.ResetLastCheckedAt()
		return nil
	case source.FieldLastHearingAt:
		m.ResetLastHearingAt()
		return nil
	case source.FieldStatus:
		m.ResetStatus()
		return nil
	case source.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	}
	return fmt.Errorf("unknown Source field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *SourceMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.hearings != nil {
		edges = append(edges, source.EdgeHearings)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *SourceMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case source.EdgeHearings:
		ids := make([]ent.Value, 0, len(m.hearings))
		for id := range m.hearings {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *SourceMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	if m.removedhearings != nil {
		edges = append(edges, source.EdgeHearings)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *SourceMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case source.EdgeHearings:
		ids := make([]ent.Value, 0, len(m.removedhearings))
		for id := range m.removedhearings {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *SourceMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedhearings {
		edges = append(edges, source.EdgeHearings)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *SourceMutation) EdgeCleared(name string) bool {
	switch name {
	case source.EdgeHearings:
		return m.clearedhearings
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *SourceMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Source unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *SourceMutation) ResetEdge(name string) error {
	switch name {
	case source.EdgeHearings:
		m.ResetHearings()
		return nil
	}
	return fmt.Errorf("unknown Source edge %s", name)
}

// StateMutation represents an operation that mutates the State nodes in the graph.
type StateMutation struct {
	config
	op              Op
	typ             string
	id              *string
	created_at      *time.Time
	updated_at      *time.Time
	code            *string
	name            *string
	commission_name *string
	clearedFields   map[string]struct{}
	done            bool
	oldValue        func(context.Context) (*State, error)
	predicates      []predicate.State
}

var _ ent.Mutation = (*StateMutation)(nil)

// stateOption allows management of the mutation configuration using functional options.
type stateOption func(*StateMutation)

// newStateMutation creates new mutation for the State entity.
func newStateMutation(c config, op Op, opts ...stateOption) *StateMutation {
	m := &StateMutation{
		config:        c,
		op:            op,
		typ:           TypeState,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withStateID sets the ID field of the mutation.
func withStateID(id string) stateOption {
	return func(m *StateMutation) {
		var (
			err   error
			once  sync.Once
			value *State
		)
		m.oldValue = func(ctx context.Context) (*State, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().State.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withState sets the old State of the mutation.
func withState(node *State) stateOption {
	return func(m *StateMutation) {
		m.oldValue = func(context.Context) (*State, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m StateMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m StateMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of State entities.
func (m *StateMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *StateMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *StateMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().State.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *StateMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *StateMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the State entity.
// If the State object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StateMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *StateMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *StateMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *StateMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the State entity.
// If the State object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StateMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *StateMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetCode sets the "code" field.
func (m *StateMutation) SetCode(s string) {
	m.code = &s
}

// Code returns the value of the "code" field in the mutation.
func (m *StateMutation) Code() (r string, exists bool) {
	v := m.code
	if v == nil {
		return
	}
	return *v, true
}

// OldCode returns the old "code" field's value of the State entity.
// If the State object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StateMutation) OldCode(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCode is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCode requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCode: %w", err)
	}
	return oldValue.Code, nil
}

// ResetCode resets all changes to the "code" field.
func (m *StateMutation) ResetCode() {
	m.code = nil
}

// SetName sets the "name" field.
func (m *StateMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *StateMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the State entity.
// If the State object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StateMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *StateMutation) ResetName() {
	m.name = nil
}

// SetCommissionName sets the "commission_name" field.
func (m *StateMutation) SetCommissionName(s string) {
	m.commission_name = &s
}

// CommissionName returns the value of the "commission_name" field in the mutation.
func (m *StateMutation) CommissionName() (r string, exists bool) {
	v := m.commission_name
	if v == nil {
		return
	}
	return *v, true
}

// OldCommissionName returns the old "commission_name" field's value of the State entity.
// If the State object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StateMutation) OldCommissionName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCommissionName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCommissionName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCommissionName: %w", err)
	}
	return oldValue.CommissionName, nil
}

// ClearCommissionName clears the value of the "commission_name" field.
func (m *StateMutation) ClearCommissionName() {
	m.commission_name = nil
	m.clearedFields[state.FieldCommissionName] = struct{}{}
}

// CommissionNameCleared returns if the "commission_name" field was cleared in this mutation.
func (m *StateMutation) CommissionNameCleared() bool {
	_, ok := m.clearedFields[state.FieldCommissionName]
	return ok
}

// ResetCommissionName resets all changes to the "commission_name" field.
func (m *StateMutation) ResetCommissionName() {
	m.commission_name = nil
	delete(m.clearedFields, state.FieldCommissionName)
}

// Where appends a list predicates to the StateMutation builder.
func (m *StateMutation) Where(ps ...predicate.State) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the StateMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *StateMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.State, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *StateMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *StateMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (State).
func (m *StateMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *StateMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.created_at != nil {
		fields = append(fields, state.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, state.FieldUpdatedAt)
	}
	if m.code != nil {
		fields = append(fields, state.FieldCode)
	}
	if m.name != nil {
		fields = append(fields, state.FieldName)
	}
	if m.commission_name != nil {
		fields = append(fields, state.FieldCommissionName)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *StateMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case state.FieldCreatedAt:
		return m.CreatedAt()
	case state.FieldUpdatedAt:
		return m.UpdatedAt()
	case state.FieldCode:
		return m.Code()
	case state.FieldName:
		return m.Name()
	case state.FieldCommissionName:
		return m.CommissionName()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *StateMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case state.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case state.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case state.FieldCode:
		return m.OldCode(ctx)
	case state.FieldName:
		return m.OldName(ctx)
	case state.FieldCommissionName:
		return m.OldCommissionName(ctx)
	}
	return nil, fmt.Errorf("unknown State field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *StateMutation) SetField(name string, value ent.Value) error {
	switch name {
	case state.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case state.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case state.FieldCode:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCode(v)
		return nil
	case state.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case state.FieldCommissionName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCommissionName(v)
		return nil
	}
	return fmt.Errorf("unknown State field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *StateMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *StateMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *StateMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown State numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *StateMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(state.FieldCommissionName) {
		fields = append(fields, state.FieldCommissionName)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *StateMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *StateMutation) ClearField(name string) error {
	switch name {
	case state.FieldCommissionName:
		m.ClearCommissionName()
		return nil
	}
	return fmt.Errorf("unknown State nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *StateMutation) ResetField(name string) error {
	switch name {
	case state.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case state.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case state.FieldCode:
		m.ResetCode()
		return nil
	case state.FieldName:
		m.ResetName()
		return nil
	case state.FieldCommissionName:
		m.ResetCommissionName()
		return nil
	}
	return fmt.Errorf("unknown State field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *StateMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *StateMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *StateMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *StateMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *StateMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *StateMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *StateMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown State unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *StateMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown State edge %s", name)
}

// TopicMutation represents an operation that mutates the Topic nodes in the graph.
type TopicMutation struct {
	config
	op                    Op
	typ                   string
	id                    *string
	created_at            *time.Time
	updated_at            *time.Time
	name                  *string
	normalized_name       *string
	aliases               *[]string
	appendaliases         []string
	category              *string
	mention_count         *int
	addmention_count      *int
	clearedFields         map[string]struct{}
	hearing_topics        map[string]struct{}
	removedhearing_topics map[string]struct{}
	clearedhearing_topics bool
	done                  bool
	oldValue              func(context.Context) (*Topic, error)
	predicates            []predicate.Topic
}

var _ ent.Mutation = (*TopicMutation)(nil)

// topicOption allows management of the mutation configuration using functional options.
type topicOption func(*TopicMutation)

// newTopicMutation creates new mutation for the Topic entity.
func newTopicMutation(c config, op Op, opts ...topicOption) *TopicMutation {
	m := &TopicMutation{
		config:        c,
		op:            op,
		typ:           TypeTopic,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withTopicID sets the ID field of the mutation.
func withTopicID(id string) topicOption {
	return func(m *TopicMutation) {
		var (
			err   error
			once  sync.Once
			value *Topic
		)
		m.oldValue = func(ctx context.Context) (*Topic, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Topic.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withTopic sets the old Topic of the mutation.
func withTopic(node *Topic) topicOption {
	return func(m *TopicMutation) {
		m.oldValue = func(context.Context) (*Topic, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m TopicMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m TopicMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Topic entities.
func (m *TopicMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *TopicMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *TopicMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Topic.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *TopicMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *TopicMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Topic entity.
// If the Topic object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TopicMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *TopicMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *TopicMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *TopicMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Topic entity.
// If the Topic object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TopicMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *TopicMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetName sets the "name" field.
func (m *TopicMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *TopicMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Topic entity.
// If the Topic object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TopicMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *TopicMutation) ResetName() {
	m.name = nil
}

// SetNormalizedName sets the "normalized_name" field.
func (m *TopicMutation) SetNormalizedName(s string) {
	m.normalized_name = &s
}

// NormalizedName returns the value of the "normalized_name" field in the mutation.
func (m *TopicMutation) NormalizedName() (r string, exists bool) {
	v := m.normalized_name
	if v == nil {
		return
	}
	return *v, true
}

// OldNormalizedName returns the old "normalized_name" field's value of the Topic entity.
// If the Topic object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TopicMutation) OldNormalizedName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNormalizedName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNormalizedName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNormalizedName: %w", err)
	}
	return oldValue.NormalizedName, nil
}

// ResetNormalizedName resets all changes to the "normalized_name" field.
func (m *TopicMutation) ResetNormalizedName() {
	m.normalized_name = nil
}

// SetAliases sets the "aliases" field.
func (m *TopicMutation) SetAliases(s []string) {
	m.aliases = &s
	m.appendaliases = nil
}

// Aliases returns the value of the "aliases" field in the mutation.
func (m *TopicMutation) Aliases() (r []string, exists bool) {
	v := m.aliases
	if v == nil {
		return
	}
	return *v, true
}

// OldAliases returns the old "aliases" field's value of the Topic entity.
// If the Topic object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TopicMutation) OldAliases(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAliases is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAliases requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAliases: %w", err)
	}
	return oldValue.Aliases, nil
}

// AppendAliases adds s to the "aliases" field.
func (m *TopicMutation) AppendAliases(s []string) {
	m.appendaliases = append(m.appendaliases, s...)
}

// AppendedAliases returns the list of values that were appended to the "aliases" field in this mutation.
func (m *TopicMutation) AppendedAliases() ([]string, bool) {
	if len(m.appendaliases) == 0 {
		return nil, false
	}
	return m.appendaliases, true
}

// ClearAliases clears the value of the "aliases" field.
func (m *TopicMutation) ClearAliases() {
	m.aliases = nil
	m.appendaliases = nil
	m.clearedFields[topic.FieldAliases] = struct{}{}
}

// AliasesCleared returns if the "aliases" field was cleared in this mutation.
func (m *TopicMutation) AliasesCleared() bool {
	_, ok := m.clearedFields[topic.FieldAliases]
	return ok
}

// ResetAliases resets all changes to the "aliases" field.
func (m *TopicMutation) ResetAliases() {
	m.aliases = nil
	m.appendaliases = nil
	delete(m.clearedFields, topic.FieldAliases)
}

// SetCategory sets the "category" field.
func (m *TopicMutation) SetCategory(s string) {
	m.category = &s
}

// Category returns the value of the "category" field in the mutation.
func (m *TopicMutation) Category() (r string, exists bool) {
	v := m.category
	if v == nil {
		return
	}
	return *v, true
}

// OldCategory returns the old "category" field's value of the Topic entity.
// If the Topic object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TopicMutation) OldCategory(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCategory is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCategory requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCategory: %w", err)
	}
	return oldValue.Category, nil
}

// ClearCategory clears the value of the "category" field.
func (m *TopicMutation) ClearCategory() {
	m.category = nil
	m.clearedFields[topic.FieldCategory] = struct{}{}
}

// CategoryCleared returns if the "category" field was cleared in this mutation.
func (m *TopicMutation) CategoryCleared() bool {
	_, ok := m.clearedFields[topic.FieldCategory]
	return ok
}

// ResetCategory resets all changes to the "category" field.
func (m *TopicMutation) ResetCategory() {
	m.category = nil
	delete(m.clearedFields, topic.FieldCategory)
}

// SetMentionCount sets the "mention_count" field.
func (m *TopicMutation) SetMentionCount(i int) {
	m.mention_count = &i
	m.addmention_count = nil
}

// MentionCount returns the value of the "mention_count" field in the mutation.
func (m *TopicMutation) MentionCount() (r int, exists bool) {
	v := m.mention_count
	if v == nil {
		return
	}
	return *v, true
}

// OldMentionCount returns the old "mention_count" field's value of the Topic entity.
// If the Topic object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TopicMutation) OldMentionCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMentionCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMentionCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMentionCount: %w", err)
	}
	return oldValue.MentionCount, nil
}

// AddMentionCount adds i to the "mention_count" field.
func (m *TopicMutation) AddMentionCount(i int) {
	if m.addmention_count != nil {
		*m.addmention_count += i
	} else {
		m.addmention_count = &i
	}
}

// AddedMentionCount returns the value that was added to the "mention_count" field in this mutation.
func (m *TopicMutation) AddedMentionCount() (r int, exists bool) {
	v := m.addmention_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetMentionCount resets all changes to the "mention_count" field.
func (m *TopicMutation) ResetMentionCount() {
	m.mention_count = nil
	m.addmention_count = nil
}

// AddHearingTopicIDs adds the "hearing_topics" edge to the HearingTopic entity by ids.
func (m *TopicMutation) AddHearingTopicIDs(ids ...string) {
	if m.hearing_topics == nil {
		m.hearing_topics = make(map[string]struct{})
	}
	for i := range ids {
		m.hearing_topics[ids[i]] = struct{}{}
	}
}

// ClearHearingTopics clears the "hearing_topics" edge to the HearingTopic entity.
func (m *TopicMutation) ClearHearingTopics() {
	m.clearedhearing_topics = true
}

// HearingTopicsCleared reports if the "hearing_topics" edge to the HearingTopic entity was cleared.
func (m *TopicMutation) HearingTopicsCleared() bool {
	return m.clearedhearing_topics
}

// RemoveHearingTopicIDs removes the "hearing_topics" edge to the HearingTopic entity by IDs.
func (m *TopicMutation) RemoveHearingTopicIDs(ids ...string) {
	if m.removedhearing_topics == nil {
		m.removedhearing_topics = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.hearing_topics, ids[i])
		m.removedhearing_topics[ids[i]] = struct{}{}
	}
}

// RemovedHearingTopics returns the removed IDs of the "hearing_topics" edge to the HearingTopic entity.
func (m *TopicMutation) RemovedHearingTopicsIDs() (ids []string) {
	for id := range m.removedhearing_topics {
		ids = append(ids, id)
	}
	return
}

// HearingTopicsIDs returns the "hearing_topics" edge IDs in the mutation.
func (m *TopicMutation) HearingTopicsIDs() (ids []string) {
	for id := range m.hearing_topics {
		ids = append(ids, id)
	}
	return
}

// ResetHearingTopics resets all changes to the "hearing_topics" edge.
func (m *TopicMutation) ResetHearingTopics() {
	m.hearing_topics = nil
	m.clearedhearing_topics = false
	m.removedhearing_topics = nil
}

// Where appends a list predicates to the TopicMutation builder.
func (m *TopicMutation) Where(ps ...predicate.Topic) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the TopicMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *TopicMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Topic, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *TopicMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *TopicMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Topic).
func (m *TopicMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *TopicMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.created_at != nil {
		fields = append(fields, topic.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, topic.FieldUpdatedAt)
	}
	if m.name != nil {
		fields = append(fields, topic.FieldName)
	}
	if m.normalized_name != nil {
		fields = append(fields, topic.FieldNormalizedName)
	}
	if m.aliases != nil {
		fields = append(fields, topic.FieldAliases)
	}
	if m.category != nil {
		fields = append(fields, topic.FieldCategory)
	}
	if m.mention_count != nil {
		fields = append(fields, topic.FieldMentionCount)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *TopicMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case topic.FieldCreatedAt:
		return m.CreatedAt()
	case topic.FieldUpdatedAt:
		return m.UpdatedAt()
	case topic.FieldName:
		return m.Name()
	case topic.FieldNormalizedName:
		return m.NormalizedName()
	case topic.FieldAliases:
		return m.Aliases()
	case topic.FieldCategory:
		return m.Category()
	case topic.FieldMentionCount:
		return m.MentionCount()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *TopicMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case topic.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case topic.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case topic.FieldName:
		return m.OldName(ctx)
	case topic.FieldNormalizedName:
		return m.OldNormalizedName(ctx)
	case topic.FieldAliases:
		return m.OldAliases(ctx)
	case topic.FieldCategory:
		return m.OldCategory(ctx)
	case topic.FieldMentionCount:
		return m.OldMentionCount(ctx)
	}
	return nil, fmt.Errorf("unknown Topic field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TopicMutation) SetField(name string, value ent.Value) error {
	switch name {
	case topic.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case topic.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case topic.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case topic.FieldNormalizedName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNormalizedName(v)
		return nil
	case topic.FieldAliases:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAliases(v)
		return nil
	case topic.FieldCategory:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCategory(v)
		return nil
	case topic.FieldMentionCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMentionCount(v)
		return nil
	}
	return fmt.Errorf("unknown Topic field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *TopicMutation) AddedFields() []string {
	var fields []string
	if m.addmention_count != nil {
		fields = append(fields, topic.FieldMentionCount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *TopicMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case topic.FieldMentionCount:
		return m.AddedMentionCount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TopicMutation) AddField(name string, value ent.Value) error {
	switch name {
	case topic.FieldMentionCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMentionCount(v)
		return nil
	}
	return fmt.Errorf("unknown Topic numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *TopicMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(topic.FieldAliases) {
		fields = append(fields, topic.FieldAliases)
	}
	if m.FieldCleared(topic.FieldCategory) {
		fields = append(fields, topic.FieldCategory)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *TopicMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *TopicMutation) ClearField(name string) error {
	switch name {
	case topic.FieldAliases:
		m.ClearAliases()
		return nil
	case topic.FieldCategory:
		m.ClearCategory()
		return nil
	}
	return fmt.Errorf("unknown Topic nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *TopicMutation) ResetField(name string) error {
	switch name {
	case topic.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case topic.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case topic.FieldName:
		m.ResetName()
		return nil
	case topic.FieldNormalizedName:
		m.ResetNormalizedName()
		return nil
	case topic.FieldAliases:
		m.ResetAliases()
		return nil
	case topic.FieldCategory:
		m.ResetCategory()
		return nil
	case topic.FieldMentionCount:
		m.ResetMentionCount()
		return nil
	}
	return fmt.Errorf("unknown Topic field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *TopicMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.hearing_topics != nil {
		edges = append(edges, topic.EdgeHearingTopics)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *TopicMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case topic.EdgeHearingTopics:
		ids := make([]ent.Value, 0, len(m.hearing_topics))
		for id := range m.hearing_topics {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *TopicMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	if m.removedhearing_topics != nil {
		edges = append(edges, topic.EdgeHearingTopics)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *TopicMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case topic.EdgeHearingTopics:
		ids := make([]ent.Value, 0, len(m.removedhearing_topics))
		for id := range m.removedhearing_topics {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *TopicMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedhearing_topics {
		edges = append(edges, topic.EdgeHearingTopics)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *TopicMutation) EdgeCleared(name string) bool {
	switch name {
	case topic.EdgeHearingTopics:
		return m.clearedhearing_topics
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *TopicMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Topic unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *TopicMutation) ResetEdge(name string) error {
	switch name {
	case topic.EdgeHearingTopics:
		m.ResetHearingTopics()
		return nil
	}
	return fmt.Errorf("unknown Topic edge %s", name)
}

// TranscriptMutation represents an operation that mutates the Transcript nodes in the graph.
type TranscriptMutation struct {
	config
	op             Op
	typ            string
	id             *string
	created_at     *time.Time
	updated_at     *time.Time
	full_text      *string
	word_count     *int
	addword_count  *int
	model          *string
	cost_usd       *float64
	addcost_usd    *float64
	clearedFields  map[string]struct{}
	hearing        *string
	clearedhearing bool
	done           bool
	oldValue       func(context.Context) (*Transcript, error)
	predicates     []predicate.Transcript
}

var _ ent.Mutation = (*TranscriptMutation)(nil)

// transcriptOption allows management of the mutation configuration using functional options.
type transcriptOption func(*TranscriptMutation)

// newTranscriptMutation creates new mutation for the Transcript entity.
func newTranscriptMutation(c config, op Op, opts ...transcriptOption) *TranscriptMutation {
	m := &TranscriptMutation{
		config:        c,
		op:            op,
		typ:           TypeTranscript,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withTranscriptID sets the ID field of the mutation.
func withTranscriptID(id string) transcriptOption {
	return func(m *TranscriptMutation) {
		var (
			err   error
			once  sync.Once
			value *Transcript
		)
		m.oldValue = func(ctx context.Context) (*Transcript, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Transcript.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withTranscript sets the old Transcript of the mutation.
func withTranscript(node *Transcript) transcriptOption {
	return func(m *TranscriptMutation) {
		m.oldValue = func(context.Context) (*Transcript, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m TranscriptMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m TranscriptMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Transcript entities.
func (m *TranscriptMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *TranscriptMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *TranscriptMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Transcript.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *TranscriptMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *TranscriptMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Transcript entity.
// If the Transcript object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TranscriptMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *TranscriptMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *TranscriptMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *TranscriptMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Transcript entity.
// If the Transcript object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TranscriptMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *TranscriptMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetHearingID sets the "hearing_id" field.
func (m *TranscriptMutation) SetHearingID(s string) {
	m.hearing = &s
}

// HearingID returns the value of the "hearing_id" field in the mutation.
func (m *TranscriptMutation) HearingID() (r string, exists bool) {
	v := m.hearing
	if v == nil {
		return
	}
	return *v, true
}

// OldHearingID returns the old "hearing_id" field's value of the Transcript entity.
// If the Transcript object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TranscriptMutation) OldHearingID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldHearingID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldHearingID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldHearingID: %w", err)
	}
	return oldValue.HearingID, nil
}

// ResetHearingID resets all changes to the "hearing_id" field.
func (m *TranscriptMutation) ResetHearingID() {
	m.hearing = nil
}

// SetFullText sets the "full_text" field.
func (m *TranscriptMutation) SetFullText(s string) {
	m.full_text = &s
}

// FullText returns the value of the "full_text" field in the mutation.
func (m *TranscriptMutation) FullText() (r string, exists bool) {
	v := m.full_text
	if v == nil {
		return
	}
	return *v, true
}

// OldFullText returns the old "full_text" field's value of the Transcript entity.
// If the Transcript object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TranscriptMutation) OldFullText(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFullText is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFullText requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFullText: %w", err)
	}
	return oldValue.FullText, nil
}

// ResetFullText resets all changes to the "full_text" field.
func (m *TranscriptMutation) ResetFullText() {
	m.full_text = nil
}

// SetWordCount sets the "word_count" field.
func (m *TranscriptMutation) SetWordCount(i int) {
	m.word_count = &i
	m.addword_count = nil
}

// WordCount returns the value of the "word_count" field in the mutation.
func (m *TranscriptMutation) WordCount() (r int, exists bool) {
	v := m.word_count
	if v == nil {
		return
	}
	return *v, true
}

// OldWordCount returns the old "word_count" field's value of the Transcript entity.
// If the Transcript object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TranscriptMutation) OldWordCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWordCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWordCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWordCount: %w", err)
	}
	return oldValue.WordCount, nil
}

// AddWordCount adds i to the "word_count" field.
func (m *TranscriptMutation) AddWordCount(i int) {
	if m.addword_count != nil {
		*m.addword_count += i
	} else {
		m.addword_count = &i
	}
}

// AddedWordCount returns the value that was added to the "word_count" field in this mutation.
func (m *TranscriptMutation) AddedWordCount() (r int, exists bool) {
	v := m.addword_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetWordCount resets all changes to the "word_count" field.
func (m *TranscriptMutation) ResetWordCount() {
	m.word_count = nil
	m.addword_count = nil
}

// SetModel sets the "model" field.
func (m *TranscriptMutation) SetModel(s string) {
	m.model = &s
}

// Model returns the value of the "model" field in the mutation.
func (m *TranscriptMutation) Model() (r string, exists bool) {
	v := m.model
	if v == nil {
		return
	}
	return *v, true
}

// OldModel returns the old "model" field's value of the Transcript entity.
// If the Transcript object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TranscriptMutation) OldModel(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldModel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldModel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldModel: %w", err)
	}
	return oldValue.Model, nil
}

// ClearModel clears the value of the "model" field.
func (m *TranscriptMutation) ClearModel() {
	m.model = nil
	m.clearedFields[transcript.FieldModel] = struct{}{}
}

// ModelCleared returns if the "model" field was cleared in this mutation.
func (m *TranscriptMutation) ModelCleared() bool {
	_, ok := m.clearedFields[transcript.FieldModel]
	return ok
}

// ResetModel resets all changes to the "model" field.
func (m *TranscriptMutation) ResetModel() {
	m.model = nil
	delete(m.clearedFields, transcript.FieldModel)
}

// SetCostUsd sets the "cost_usd" field.
func (m *TranscriptMutation) SetCostUsd(f float64) {
	m.cost_usd = &f
	m.addcost_usd = nil
}

// CostUsd returns the value of the "cost_usd" field in the mutation.
func (m *TranscriptMutation) CostUsd() (r float64, exists bool) {
	v := m.cost_usd
	if v == nil {
		return
	}
	return *v, true
}

// OldCostUsd returns the old "cost_usd" field's value of the Transcript entity.
// If the Transcript object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TranscriptMutation) OldCostUsd(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCostUsd is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCostUsd requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCostUsd: %w", err)
	}
	return oldValue.CostUsd, nil
}

// AddCostUsd adds f to the "cost_usd" field.
func (m *TranscriptMutation) AddCostUsd(f float64) {
	if m.addcost_usd != nil {
		*m.addcost_usd += f
	} else {
		m.addcost_usd = &f
	}
}

// AddedCostUsd returns the value that was added to the "cost_usd" field in this mutation.
func (m *TranscriptMutation) AddedCostUsd() (r float64, exists bool) {
	v := m.addcost_usd
	if v == nil {
		return
	}
	return *v, true
}

// ResetCostUsd resets all changes to the "cost_usd" field.
func (m *TranscriptMutation) ResetCostUsd() {
	m.cost_usd = nil
	m.addcost_usd = nil
}

// ClearHearing clears the "hearing" edge to the Hearing entity.
func (m *TranscriptMutation) ClearHearing() {
	m.clearedhearing = true
	m.clearedFields[transcript.FieldHearingID] = struct{}{}
}

// HearingCleared reports if the "hearing" edge to the Hearing entity was cleared.
func (m *TranscriptMutation) HearingCleared() bool {
	return m.clearedhearing
}

// HearingIDs returns the "hearing" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// HearingID instead. It exists only for internal usage by the builders.
func (m *TranscriptMutation) HearingIDs() (ids []string) {
	if id := m.hearing; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetHearing resets all changes to the "hearing" edge.
func (m *TranscriptMutation) ResetHearing() {
	m.hearing = nil
	m.clearedhearing = false
}

// Where appends a list predicates to the TranscriptMutation builder.
func (m *TranscriptMutation) Where(ps ...predicate.Transcript) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the TranscriptMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *TranscriptMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Transcript, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *TranscriptMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *TranscriptMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Transcript).
func (m *TranscriptMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *TranscriptMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.created_at != nil {
		fields = append(fields, transcript.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, transcript.FieldUpdatedAt)
	}
	if m.hearing != nil {
		fields = append(fields, transcript.FieldHearingID)
	}
	if m.full_text != nil {
		fields = append(fields, transcript.FieldFullText)
	}
	if m.word_count != nil {
		fields = append(fields, transcript.FieldWordCount)
	}
	if m.model != nil {
		fields = append(fields, transcript.FieldModel)
	}
	if m.cost_usd != nil {
		fields = append(fields, transcript.FieldCostUsd)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *TranscriptMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case transcript.FieldCreatedAt:
		return m.CreatedAt()
	case transcript.FieldUpdatedAt:
		return m.UpdatedAt()
	case transcript.FieldHearingID:
		return m.HearingID()
	case transcript.FieldFullText:
		return m.FullText()
	case transcript.FieldWordCount:
		return m.WordCount()
	case transcript.FieldModel:
		return m.Model()
	case transcript.FieldCostUsd:
		return m.CostUsd()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *TranscriptMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case transcript.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case transcript.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case transcript.FieldHearingID:
		return m.OldHearingID(ctx)
	case transcript.FieldFullText:
		return m.OldFullText(ctx)
	case transcript.FieldWordCount:
		return m.OldWordCount(ctx)
	case transcript.FieldModel:
		return m.OldModel(ctx)
	case transcript.FieldCostUsd:
		return m.OldCostUsd(ctx)
	}
	return nil, fmt.Errorf("unknown Transcript field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TranscriptMutation) SetField(name string, value ent.Value) error {
	switch name {
	case transcript.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case transcript.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case transcript.FieldHearingID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetHearingID(v)
		return nil
	case transcript.FieldFullText:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFullText(v)
		return nil
	case transcript.FieldWordCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWordCount(v)
		return nil
	case transcript.FieldModel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetModel(v)
		return nil
	case transcript.FieldCostUsd:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCostUsd(v)
		return nil
	}
	return fmt.Errorf("unknown Transcript field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *TranscriptMutation) AddedFields() []string {
	var fields []string
	if m.addword_count != nil {
		fields = append(fields, transcript.FieldWordCount)
	}
	if m.addcost_usd != nil {
		fields = append(fields, transcript.FieldCostUsd)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *TranscriptMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case transcript.FieldWordCount:
		return m.AddedWordCount()
	case transcript.FieldCostUsd:
		return m.AddedCostUsd()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TranscriptMutation) AddField(name string, value ent.Value) error {
	switch name {
	case transcript.FieldWordCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddWordCount(v)
		return nil
	case transcript.FieldCostUsd:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCostUsd(v)
		return nil
	}
	return fmt.Errorf("unknown Transcript numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *TranscriptMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(transcript.FieldModel) {
		fields = append(fields, transcript.FieldModel)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *TranscriptMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *TranscriptMutation) ClearField(name string) error {
	switch name {
	case transcript.FieldModel:
		m.ClearModel()
		return nil
	}
	return fmt.Errorf("unknown Transcript nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *TranscriptMutation) ResetField(name string) error {
	switch name {
	case transcript.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case transcript.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case transcript.FieldHearingID:
		m.ResetHearingID()
		return nil
	case transcript.FieldFullText:
		m.ResetFullText()
		return nil
	case transcript.FieldWordCount:
		m.ResetWordCount()
		return nil
	case transcript.FieldModel:
		m.ResetModel()
		return nil
	case transcript.FieldCostUsd:
		m.ResetCostUsd()
		return nil
	}
	return fmt.Errorf("unknown Transcript field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *TranscriptMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.hearing != nil {
		edges = append(edges, transcript.EdgeHearing)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *TranscriptMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case transcript.EdgeHearing:
		if id := m.hearing; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *TranscriptMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *TranscriptMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *TranscriptMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedhearing {
		edges = append(edges, transcript.EdgeHearing)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *TranscriptMutation) EdgeCleared(name string) bool {
	switch name {
	case transcript.EdgeHearing:
		return m.clearedhearing
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *TranscriptMutation) ClearEdge(name string) error {
	switch name {
	case transcript.EdgeHearing:
		m.ClearHearing()
		return nil
	}
	return fmt.Errorf("unknown Transcript unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *TranscriptMutation) ResetEdge(name string) error {
	switch name {
	case transcript.EdgeHearing:
		m.ResetHearing()
		return nil
	}
	return fmt.Errorf("unknown Transcript edge %s", name)
}

// UtilityMutation represents an operation that mutates the Utility nodes in the graph.
type UtilityMutation struct {
	config
	op                       Op
	typ                      string
	id                       *string
	created_at               *time.Time
	updated_at               *time.Time
	state_code               *string
	name                     *string
	normalized_name          *string
	aliases                  *[]string
	appendaliases            []string
	sector                   *string
	mention_count            *int
	addmention_count         *int
	clearedFields            map[string]struct{}
	hearing_utilities        map[string]struct{}
	removedhearing_utilities map[string]struct{}
	clearedhearing_utilities bool
	done                     bool
	oldValue                 func(context.Context) (*Utility, error)
	predicates               []predicate.Utility
}

var _ ent.Mutation = (*UtilityMutation)(nil)

// utilityOption allows management of the mutation configuration using functional options.
type utilityOption func(*UtilityMutation)

// newUtilityMutation creates new mutation for the Utility entity.
func newUtilityMutation(c config, op Op, opts ...utilityOption) *UtilityMutation {
	m := &UtilityMutation{
		config:        c,
		op:            op,
		typ:           TypeUtility,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withUtilityID sets the ID field of the mutation.
func withUtilityID(id string) utilityOption {
	return func(m *UtilityMutation) {
		var (
			err   error
			once  sync.Once
			value *Utility
		)
		m.oldValue = func(ctx context.Context) (*Utility, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Utility.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withUtility sets the old Utility of the mutation.
func withUtility(node *Utility) utilityOption {
	return func(m *UtilityMutation) {
		m.oldValue = func(context.Context) (*Utility, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m UtilityMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m UtilityMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Utility entities.
func (m *UtilityMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *UtilityMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *UtilityMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Utility.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *UtilityMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *UtilityMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Utility entity.
// If the Utility object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UtilityMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *UtilityMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *UtilityMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *UtilityMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Utility entity.
// If the Utility object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UtilityMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *UtilityMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetStateCode sets the "state_code" field.
func (m *UtilityMutation) SetStateCode(s string) {
	m.state_code = &s
}

// StateCode returns the value of the "state_code" field in the mutation.
func (m *UtilityMutation) StateCode() (r string, exists bool) {
	v := m.state_code
	if v == nil {
		return
	}
	return *v, true
}

// OldStateCode returns the old "state_code" field's value of the Utility entity.
// If the Utility object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UtilityMutation) OldStateCode(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStateCode is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStateCode requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStateCode: %w", err)
	}
	return oldValue.StateCode, nil
}

// ResetStateCode resets all changes to the "state_code" field.
func (m *UtilityMutation) ResetStateCode() {
	m.state_code = nil
}

// SetName sets the "name" field.
func (m *UtilityMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *UtilityMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Utility entity.
// If the Utility object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UtilityMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *UtilityMutation) ResetName() {
	m.name = nil
}

// SetNormalizedName sets the "normalized_name" field.
func (m *UtilityMutation) SetNormalizedName(s string) {
	m.normalized_name = &s
}

// NormalizedName returns the value of the "normalized_name" field in the mutation.
func (m *UtilityMutation) NormalizedName() (r string, exists bool) {
	v := m.normalized_name
	if v == nil {
		return
	}
	return *v, true
}

// OldNormalizedName returns the old "normalized_name" field's value of the Utility entity.
// If the Utility object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UtilityMutation) OldNormalizedName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNormalizedName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNormalizedName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNormalizedName: %w", err)
	}
	return oldValue.NormalizedName, nil
}

// ResetNormalizedName resets all changes to the "normalized_name" field.
func (m *UtilityMutation) ResetNormalizedName() {
	m.normalized_name = nil
}

// SetAliases sets the "aliases" field.
func (m *UtilityMutation) SetAliases(s []string) {
	m.aliases = &s
	m.appendaliases = nil
}

// Aliases returns the value of the "aliases" field in the mutation.
func (m *UtilityMutation) Aliases() (r []string, exists bool) {
	v := m.aliases
	if v == nil {
		return
	}
	return *v, true
}

// OldAliases returns the old "aliases" field's value of the Utility entity.
// If the Utility object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UtilityMutation) OldAliases(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAliases is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAliases requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAliases: %w", err)
	}
	return oldValue.Aliases, nil
}

// AppendAliases adds s to the "aliases" field.
func (m *UtilityMutation) AppendAliases(s []string) {
	m.appendaliases = append(m.appendaliases, s...)
}

// AppendedAliases returns the list of values that were appended to the "aliases" field in this mutation.
func (m *UtilityMutation) AppendedAliases() ([]string, bool) {
	if len(m.appendaliases) == 0 {
		return nil, false
	}
	return m.appendaliases, true
}

// ClearAliases clears the value of the "aliases" field.
func (m *UtilityMutation) ClearAliases() {
	m.aliases = nil
	m.appendaliases = nil
	m.clearedFields[utility.FieldAliases] = struct{}{}
}

// AliasesCleared returns if the "aliases" field was cleared in this mutation.
func (m *UtilityMutation) AliasesCleared() bool {
	_, ok := m.clearedFields[utility.FieldAliases]
	return ok
}

// ResetAliases resets all changes to the "aliases" field.
func (m *UtilityMutation) ResetAliases() {
	m.aliases = nil
	m.appendaliases = nil
	delete(m.clearedFields, utility.FieldAliases)
}

// SetSector sets the "sector" field.
func (m *UtilityMutation) SetSector(s string) {
	m.sector = &s
}

// Sector returns the value of the "sector" field in the mutation.
func (m *UtilityMutation) Sector() (r string, exists bool) {
	v := m.sector
	if v == nil {
		return
	}
	return *v, true
}

// OldSector returns the old "sector" field's value of the Utility entity.
// If the Utility object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UtilityMutation) OldSector(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSector is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSector requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSector: %w", err)
	}
	return oldValue.Sector, nil
}

// ClearSector clears the value of the "sector" field.
func (m *UtilityMutation) ClearSector() {
	m.sector = nil
	m.clearedFields[utility.FieldSector] = struct{}{}
}

// SectorCleared returns if the "sector" field was cleared in this mutation.
func (m *UtilityMutation) SectorCleared() bool {
	_, ok := m.clearedFields[utility.FieldSector]
	return ok
}

// ResetSector resets all changes to the "sector" field.
func (m *UtilityMutation) ResetSector() {
	m.sector = nil
	delete(m.clearedFields, utility.FieldSector)
}

// SetMentionCount sets the "mention_count" field.
func (m *UtilityMutation) SetMentionCount(i int) {
	m.mention_count = &i
	m.addmention_count = nil
}

// MentionCount returns the value of the "mention_count" field in the mutation.
func (m *UtilityMutation) MentionCount() (r int, exists bool) {
	v := m.mention_count
	if v == nil {
		return
	}
	return *v, true
}

// OldMentionCount returns the old "mention_count" field's value of the Utility entity.
// If the Utility object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UtilityMutation) OldMentionCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMentionCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMentionCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMentionCount: %w", err)
	}
	return oldValue.MentionCount, nil
}

// AddMentionCount adds i to the "mention_count" field.
func (m *UtilityMutation) AddMentionCount(i int) {
	if m.addmention_count != nil {
		*m.addmention_count += i
	} else {
		m.addmention_count = &i
	}
}

// AddedMentionCount returns the value that was added to the "mention_count" field in this mutation.
func (m *UtilityMutation) AddedMentionCount() (r int, exists bool) {
	v := m.addmention_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetMentionCount resets all changes to the "mention_count" field.
func (m *UtilityMutation) ResetMentionCount() {
	m.mention_count = nil
	m.addmention_count = nil
}

// AddHearingUtilityIDs adds the "hearing_utilities" edge to the HearingUtility entity by ids.
func (m *UtilityMutation) AddHearingUtilityIDs(ids ...string) {
	if m.hearing_utilities == nil {
		m.hearing_utilities = make(map[string]struct{})
	}
	for i := range ids {
		m.hearing_utilities[ids[i]] = struct{}{}
	}
}

// ClearHearingUtilities clears the "hearing_utilities" edge to the HearingUtility entity.
func (m *UtilityMutation) ClearHearingUtilities() {
	m.clearedhearing_utilities = true
}

// HearingUtilitiesCleared reports if the "hearing_utilities" edge to the HearingUtility entity was cleared.
func (m *UtilityMutation) HearingUtilitiesCleared() bool {
	return m.clearedhearing_utilities
}

// RemoveHearingUtilityIDs removes the "hearing_utilities" edge to the HearingUtility entity by IDs.
func (m *UtilityMutation) RemoveHearingUtilityIDs(ids ...string) {
	if m.removedhearing_utilities == nil {
		m.removedhearing_utilities = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.hearing_utilities, ids[i])
		m.removedhearing_utilities[ids[i]] = struct{}{}
	}
}

// RemovedHearingUtilities returns the removed IDs of the "hearing_utilities" edge to the HearingUtility entity.
func (m *UtilityMutation) RemovedHearingUtilitiesIDs() (ids []string) {
	for id := range m.removedhearing_utilities {
		ids = append(ids, id)
	}
	return
}

// HearingUtilitiesIDs returns the "hearing_utilities" edge IDs in the mutation.
func (m *UtilityMutation) HearingUtilitiesIDs() (ids []string) {
	for id := range m.hearing_utilities {
		ids = append(ids, id)
	}
	return
}

// ResetHearingUtilities resets all changes to the "hearing_utilities" edge.
func (m *UtilityMutation) ResetHearingUtilities() {
	m.hearing_utilities = nil
	m.clearedhearing_utilities = false
	m.removedhearing_utilities = nil
}

// Where appends a list predicates to the UtilityMutation builder.
func (m *UtilityMutation) Where(ps ...predicate.Utility) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the UtilityMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *UtilityMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Utility, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *UtilityMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *UtilityMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Utility).
func (m *UtilityMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *UtilityMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.created_at != nil {
		fields = append(fields, utility.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, utility.FieldUpdatedAt)
	}
	if m.state_code != nil {
		fields = append(fields, utility.FieldStateCode)
	}
	if m.name != nil {
		fields = append(fields, utility.FieldName)
	}
	if m.normalized_name != nil {
		fields = append(fields, utility.FieldNormalizedName)
	}
	if m.aliases != nil {
		fields = append(fields, utility.FieldAliases)
	}
	if m.sector != nil {
		fields = append(fields, utility.FieldSector)
	}
	if m.mention_count != nil {
		fields = append(fields, utility.FieldMentionCount)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *UtilityMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case utility.FieldCreatedAt:
		return m.CreatedAt()
	case utility.FieldUpdatedAt:
		return m.UpdatedAt()
	case utility.FieldStateCode:
		return m.StateCode()
	case utility.FieldName:
		return m.Name()
	case utility.FieldNormalizedName:
		return m.NormalizedName()
	case utility.FieldAliases:
		return m.Aliases()
	case utility.FieldSector:
		return m.Sector()
	case utility.FieldMentionCount:
		return m.MentionCount()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *UtilityMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case utility.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case utility.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case utility.FieldStateCode:
		return m.OldStateCode(ctx)
	case utility.FieldName:
		return m.OldName(ctx)
	case utility.FieldNormalizedName:
		return m.OldNormalizedName(ctx)
	case utility.FieldAliases:
		return m.OldAliases(ctx)
	case utility.FieldSector:
		return m.OldSector(ctx)
	case utility.FieldMentionCount:
		return m.OldMentionCount(ctx)
	}
	return nil, fmt.Errorf("unknown Utility field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UtilityMutation) SetField(name string, value ent.Value) error {
	switch name {
	case utility.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case utility.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case utility.FieldStateCode:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStateCode(v)
		return nil
	case utility.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case utility.FieldNormalizedName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNormalizedName(v)
		return nil
	case utility.FieldAliases:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAliases(v)
		return nil
	case utility.FieldSector:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSector(v)
		return nil
	case utility.FieldMentionCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMentionCount(v)
		return nil
	}
	return fmt.Errorf("unknown Utility field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *UtilityMutation) AddedFields() []string {
	var fields []string
	if m.addmention_count != nil {
		fields = append(fields, utility.FieldMentionCount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *UtilityMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case utility.FieldMentionCount:
		return m.AddedMentionCount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UtilityMutation) AddField(name string, value ent.Value) error {
	switch name {
	case utility.FieldMentionCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMentionCount(v)
		return nil
	}
	return fmt.Errorf("unknown Utility numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *UtilityMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(utility.FieldAliases) {
		fields = append(fields, utility.FieldAliases)
	}
	if m.FieldCleared(utility.FieldSector) {
		fields = append(fields, utility.FieldSector)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *UtilityMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *UtilityMutation) ClearField(name string) error {
	switch name {
	case utility.FieldAliases:
		m.ClearAliases()
		return nil
	case utility.FieldSector:
		m.ClearSector()
		return nil
	}
	return fmt.Errorf("unknown Utility nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *UtilityMutation) ResetField(name string) error {
	switch name {
	case utility.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case utility.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case utility.FieldStateCode:
		m.ResetStateCode()
		return nil
	case utility.FieldName:
		m.ResetName()
		return nil
	case utility.FieldNormalizedName:
		m.ResetNormalizedName()
		return nil
	case utility.FieldAliases:
		m.ResetAliases()
		return nil
	case utility.FieldSector:
		m.ResetSector()
		return nil
	case utility.FieldMentionCount:
		m.ResetMentionCount()
		return nil
	}
	return fmt.Errorf("unknown Utility field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *UtilityMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.hearing_utilities != nil {
		edges = append(edges, utility.EdgeHearingUtilities)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *UtilityMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case utility.EdgeHearingUtilities:
		ids := make([]ent.Value, 0, len(m.hearing_utilities))
		for id := range m.hearing_utilities {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *UtilityMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	if m.removedhearing_utilities != nil {
		edges = append(edges, utility.EdgeHearingUtilities)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *UtilityMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case utility.EdgeHearingUtilities:
		ids := make([]ent.Value, 0, len(m.removedhearing_utilities))
		for id := range m.removedhearing_utilities {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *UtilityMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedhearing_utilities {
		edges = append(edges, utility.EdgeHearingUtilities)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *UtilityMutation) EdgeCleared(name string) bool {
	switch name {
	case utility.EdgeHearingUtilities:
		return m.clearedhearing_utilities
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *UtilityMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Utility unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *UtilityMutation) ResetEdge(name string) error {
	switch name {
	case utility.EdgeHearingUtilities:
		m.ResetHearingUtilities()
		return nil
	}
	return fmt.Errorf("unknown Utility edge %s", name)
}
