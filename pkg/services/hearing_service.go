package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/canaryscope/canaryscope/ent"
	"github.com/canaryscope/canaryscope/ent/analysis"
	"github.com/canaryscope/canaryscope/ent/hearing"
	"github.com/canaryscope/canaryscope/ent/segment"
	"github.com/canaryscope/canaryscope/ent/transcript"
	"github.com/canaryscope/canaryscope/pkg/analyze"
	"github.com/canaryscope/canaryscope/pkg/models"
	"github.com/canaryscope/canaryscope/pkg/transcribe"
)

// HearingService manages hearing lifecycle and the artifact writes that
// accompany status transitions. Artifact and status always commit in
// the same transaction.
type HearingService struct {
	client *ent.Client
}

// NewHearingService creates a new HearingService
func NewHearingService(client *ent.Client) *HearingService {
	return &HearingService{client: client}
}

// UpsertHearing inserts a discovered hearing for a candidate, keyed by
// (source_id, external_id). Returns created=false when the hearing
// already exists; existing rows are not modified.
func (s *HearingService) UpsertHearing(ctx context.Context, sourceID, stateCode string, c models.HearingCandidate) (*ent.Hearing, bool, error) {
	if c.ExternalID == "" {
		return nil, false, NewValidationError("external_id", "required")
	}

	existing, err := s.client.Hearing.Query().
		Where(hearing.SourceIDEQ(sourceID), hearing.ExternalIDEQ(c.ExternalID)).
		Only(ctx)
	if err == nil {
		return existing, false, nil
	}
	if !ent.IsNotFound(err) {
		return nil, false, fmt.Errorf("failed to query hearing: %w", err)
	}

	builder := s.client.Hearing.Create().
		SetID(uuid.New().String()).
		SetSourceID(sourceID).
		SetStateCode(strings.ToUpper(stateCode)).
		SetExternalID(c.ExternalID).
		SetTitle(c.Title).
		SetStatus(hearing.StatusDiscovered)
	if c.Description != "" {
		builder.SetDescription(c.Description)
	}
	if !c.Date.IsZero() {
		builder.SetHearingDate(c.Date)
	}
	if c.TypeHint != "" {
		builder.SetHearingType(c.TypeHint)
	}
	if c.MediaURL != "" {
		builder.SetMediaURL(c.MediaURL)
	}
	if c.DurationSeconds > 0 {
		builder.SetDurationSeconds(float64(c.DurationSeconds))
	}

	created, err := builder.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			// Lost a race with another writer; the row exists now.
			existing, qerr := s.client.Hearing.Query().
				Where(hearing.SourceIDEQ(sourceID), hearing.ExternalIDEQ(c.ExternalID)).
				Only(ctx)
			if qerr == nil {
				return existing, false, nil
			}
			return nil, false, ErrAlreadyExists
		}
		return nil, false, fmt.Errorf("failed to create hearing: %w", err)
	}
	return created, true, nil
}

// GetHearing retrieves a hearing by ID with optional edge loading
func (s *HearingService) GetHearing(ctx context.Context, id string, withEdges bool) (*ent.Hearing, error) {
	query := s.client.Hearing.Query().Where(hearing.IDEQ(id))
	if withEdges {
		query = query.
			WithTranscript().
			WithAnalysis().
			WithHearingDockets().
			WithPipelineJobs()
	}

	h, err := query.Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get hearing: %w", err)
	}
	return h, nil
}

// ListByStatus returns hearings in any of the given statuses, oldest
// updated_at first, optionally restricted to a state subset.
func (s *HearingService) ListByStatus(ctx context.Context, statuses []hearing.Status, stateCodes []string, limit int) ([]*ent.Hearing, error) {
	query := s.client.Hearing.Query().
		Where(hearing.StatusIn(statuses...)).
		Order(ent.Asc(hearing.FieldUpdatedAt))
	if len(stateCodes) > 0 {
		upper := make([]string, len(stateCodes))
		for i, sc := range stateCodes {
			upper[i] = strings.ToUpper(sc)
		}
		query = query.Where(hearing.StateCodeIn(upper...))
	}
	if limit > 0 {
		query = query.Limit(limit)
	}

	rows, err := query.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list hearings: %w", err)
	}
	return rows, nil
}

// ListFinishedBefore returns hearings in a terminal status whose last
// update predates the cutoff, for retention sweeps.
func (s *HearingService) ListFinishedBefore(ctx context.Context, before time.Time, limit int) ([]*ent.Hearing, error) {
	query := s.client.Hearing.Query().
		Where(
			hearing.StatusIn(hearing.StatusComplete, hearing.StatusSkipped, hearing.StatusError),
			hearing.UpdatedAtLT(before),
		).
		Order(ent.Asc(hearing.FieldUpdatedAt))
	if limit > 0 {
		query = query.Limit(limit)
	}

	rows, err := query.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list finished hearings: %w", err)
	}
	return rows, nil
}

// SetStatus moves a hearing to a new status without artifacts.
func (s *HearingService) SetStatus(ctx context.Context, id string, status hearing.Status) error {
	err := s.client.Hearing.UpdateOneID(id).SetStatus(status).Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to update hearing status: %w", err)
	}
	return nil
}

// StatusCounts returns hearing counts grouped by status.
func (s *HearingService) StatusCounts(ctx context.Context) (map[string]int, error) {
	var rows []struct {
		Status string `json:"status"`
		Count  int    `json:"count"`
	}
	err := s.client.Hearing.Query().
		GroupBy(hearing.FieldStatus).
		Aggregate(ent.Count()).
		Scan(ctx, &rows)
	if err != nil {
		return nil, fmt.Errorf("failed to count hearings: %w", err)
	}

	counts := make(map[string]int, len(rows))
	for _, r := range rows {
		counts[r.Status] = r.Count
	}
	return counts, nil
}

// TransitionWithTranscript writes the transcript and its segments and
// advances the hearing to transcribed, all in one transaction.
func (s *HearingService) TransitionWithTranscript(ctx context.Context, hearingID string, result *transcribe.Result) (*ent.Transcript, error) {
	if result == nil || strings.TrimSpace(result.FullText) == "" {
		return nil, NewValidationError("full_text", "required")
	}

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	tr, err := tx.Transcript.Create().
		SetID(uuid.New().String()).
		SetHearingID(hearingID).
		SetFullText(result.FullText).
		SetWordCount(len(strings.Fields(result.FullText))).
		SetModel(result.Model).
		SetCostUsd(result.CostUSD).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, ErrAlreadyExists
		}
		return nil, fmt.Errorf("failed to create transcript: %w", err)
	}

	builders := make([]*ent.SegmentCreate, len(result.Segments))
	for i, seg := range result.Segments {
		builders[i] = tx.Segment.Create().
			SetID(uuid.New().String()).
			SetHearingID(hearingID).
			SetSegmentIndex(seg.Index).
			SetStartTime(seg.Start).
			SetEndTime(seg.End).
			SetText(seg.Text)
	}
	if _, err := tx.Segment.CreateBulk(builders...).Save(ctx); err != nil {
		return nil, fmt.Errorf("failed to create segments: %w", err)
	}

	if err := tx.Hearing.UpdateOneID(hearingID).
		SetStatus(hearing.StatusTranscribed).
		Exec(ctx); err != nil {
		return nil, fmt.Errorf("failed to advance hearing status: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transcript: %w", err)
	}
	return tr, nil
}

// DeleteTranscript removes a hearing's transcript and segments so a
// failed transcription retry starts clean.
func (s *HearingService) DeleteTranscript(ctx context.Context, hearingID string) error {
	tx, err := s.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.Segment.Delete().
		Where(segment.HearingIDEQ(hearingID)).
		Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete segments: %w", err)
	}
	if _, err := tx.Transcript.Delete().
		Where(transcript.HearingIDEQ(hearingID)).
		Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete transcript: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transcript cleanup: %w", err)
	}
	return nil
}

// GetTranscript returns a hearing's transcript.
func (s *HearingService) GetTranscript(ctx context.Context, hearingID string) (*ent.Transcript, error) {
	tr, err := s.client.Transcript.Query().
		Where(transcript.HearingIDEQ(hearingID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get transcript: %w", err)
	}
	return tr, nil
}

// GetAnalysis returns a hearing's analysis if one exists.
func (s *HearingService) GetAnalysis(ctx context.Context, hearingID string) (*ent.Analysis, error) {
	a, err := s.client.Analysis.Query().
		Where(analysis.HearingIDEQ(hearingID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get analysis: %w", err)
	}
	return a, nil
}

var validMoods = map[string]analysis.CommissionerMood{
	"supportive": analysis.CommissionerMoodSupportive,
	"skeptical":  analysis.CommissionerMoodSkeptical,
	"hostile":    analysis.CommissionerMoodHostile,
	"neutral":    analysis.CommissionerMoodNeutral,
	"mixed":      analysis.CommissionerMoodMixed,
}

var validSentiments = map[string]analysis.PublicSentiment{
	"supportive": analysis.PublicSentimentSupportive,
	"opposed":    analysis.PublicSentimentOpposed,
	"mixed":      analysis.PublicSentimentMixed,
	"none":       analysis.PublicSentimentNone,
}

// TransitionWithAnalysis writes the analysis row and advances the
// hearing to analyzed in one transaction. Fields the model omitted
// stay null; out-of-vocabulary enum values are dropped rather than
// failing the write.
func (s *HearingService) TransitionWithAnalysis(ctx context.Context, hearingID string, result *analyze.Result) (*ent.Analysis, error) {
	if result == nil {
		return nil, NewValidationError("analysis", "required")
	}

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	out := result.Output
	builder := tx.Analysis.Create().
		SetID(uuid.New().String()).
		SetHearingID(hearingID).
		SetModel(result.Model).
		SetCostUsd(result.CostUSD).
		SetRawOutput(result.Raw)

	if out.Summary != "" {
		builder.SetSummary(out.Summary)
	}
	if out.OneSentenceSummary != "" {
		builder.SetOneSentenceSummary(out.OneSentenceSummary)
	}
	if out.Participants != nil {
		builder.SetParticipants(out.Participants)
	}
	if out.Issues != nil {
		builder.SetIssues(out.Issues)
	}
	if out.Commitments != nil {
		builder.SetCommitments(out.Commitments)
	}
	if out.Vulnerabilities != nil {
		builder.SetVulnerabilities(out.Vulnerabilities)
	}
	if out.CommissionerConcerns != nil {
		builder.SetCommissionerConcerns(out.CommissionerConcerns)
	}
	if mood, ok := validMoods[strings.ToLower(out.CommissionerMood)]; ok {
		builder.SetCommissionerMood(mood)
	}
	if sentiment, ok := validSentiments[strings.ToLower(out.PublicSentiment)]; ok {
		builder.SetPublicSentiment(sentiment)
	}
	if out.LikelyOutcome != "" {
		builder.SetLikelyOutcome(out.LikelyOutcome)
	}
	if out.OutcomeConfidence != nil {
		builder.SetOutcomeConfidence(*out.OutcomeConfidence)
	}
	if out.RiskFactors != nil {
		builder.SetRiskFactors(out.RiskFactors)
	}
	if out.ActionItems != nil {
		builder.SetActionItems(out.ActionItems)
	}
	if out.Quotes != nil {
		builder.SetQuotes(out.Quotes)
	}
	if out.Topics != nil {
		builder.SetTopics(out.Topics)
	}
	if out.Utilities != nil {
		builder.SetUtilities(out.Utilities)
	}
	if out.Dockets != nil {
		builder.SetDockets(out.Dockets)
	}

	a, err := builder.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, ErrAlreadyExists
		}
		return nil, fmt.Errorf("failed to create analysis: %w", err)
	}

	if err := tx.Hearing.UpdateOneID(hearingID).
		SetStatus(hearing.StatusAnalyzed).
		Exec(ctx); err != nil {
		return nil, fmt.Errorf("failed to advance hearing status: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit analysis: %w", err)
	}
	return a, nil
}

// MaxCandidateDate returns the latest hearing date among candidates,
// used to advance a source's last_hearing_at watermark.
func MaxCandidateDate(candidates []models.HearingCandidate) *time.Time {
	var max time.Time
	for _, c := range candidates {
		if c.Date.After(max) {
			max = c.Date
		}
	}
	if max.IsZero() {
		return nil
	}
	return &max
}
