package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/canaryscope/canaryscope/ent"
	"github.com/canaryscope/canaryscope/ent/pipelinejob"
)

// JobService manages PipelineJob execution records.
type JobService struct {
	client *ent.Client
}

// NewJobService creates a new JobService
func NewJobService(client *ent.Client) *JobService {
	return &JobService{client: client}
}

// StartJob opens a running job for one (hearing, stage) attempt.
// retryCount is how many failed attempts preceded this one.
func (s *JobService) StartJob(ctx context.Context, hearingID, stage string, retryCount int) (*ent.PipelineJob, error) {
	job, err := s.client.PipelineJob.Create().
		SetID(uuid.New().String()).
		SetHearingID(hearingID).
		SetStage(stage).
		SetStatus(pipelinejob.StatusRunning).
		SetStartedAt(time.Now().UTC()).
		SetRetryCount(retryCount).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create pipeline job: %w", err)
	}
	return job, nil
}

// CompleteJob marks a job successful and records its cost and any
// stage outputs.
func (s *JobService) CompleteJob(ctx context.Context, jobID string, costUSD float64, metadata map[string]any) error {
	update := s.client.PipelineJob.UpdateOneID(jobID).
		SetStatus(pipelinejob.StatusComplete).
		SetCompletedAt(time.Now().UTC()).
		SetCostUsd(costUSD)
	if metadata != nil {
		update.SetMetadata(metadata)
	}
	if err := update.Exec(ctx); err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to complete pipeline job: %w", err)
	}
	return nil
}

// FailJob marks a job failed with a bounded error message. costUSD is
// recorded so spend on failed attempts stays in the audit trail.
func (s *JobService) FailJob(ctx context.Context, jobID string, costUSD float64, jobErr error) error {
	err := s.client.PipelineJob.UpdateOneID(jobID).
		SetStatus(pipelinejob.StatusFailed).
		SetCompletedAt(time.Now().UTC()).
		SetCostUsd(costUSD).
		SetErrorMessage(truncateError(jobErr.Error())).
		Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to fail pipeline job: %w", err)
	}
	return nil
}

// FailedAttempts counts prior failed jobs for a (hearing, stage) pair,
// which bounds orchestrator retries.
func (s *JobService) FailedAttempts(ctx context.Context, hearingID, stage string) (int, error) {
	n, err := s.client.PipelineJob.Query().
		Where(
			pipelinejob.HearingIDEQ(hearingID),
			pipelinejob.StageEQ(stage),
			pipelinejob.StatusEQ(pipelinejob.StatusFailed),
		).
		Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count job attempts: %w", err)
	}
	return n, nil
}

// PruneFinished deletes complete and failed jobs that finished before
// the cutoff. Running jobs are never pruned.
func (s *JobService) PruneFinished(ctx context.Context, before time.Time) (int, error) {
	n, err := s.client.PipelineJob.Delete().
		Where(
			pipelinejob.StatusIn(pipelinejob.StatusComplete, pipelinejob.StatusFailed),
			pipelinejob.CompletedAtLT(before),
		).
		Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to prune pipeline jobs: %w", err)
	}
	return n, nil
}

// LatestJob returns the most recent job for a hearing, used to surface
// the error message behind an error-status hearing.
func (s *JobService) LatestJob(ctx context.Context, hearingID string) (*ent.PipelineJob, error) {
	job, err := s.client.PipelineJob.Query().
		Where(pipelinejob.HearingIDEQ(hearingID)).
		Order(ent.Desc(pipelinejob.FieldCreatedAt)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get latest job: %w", err)
	}
	return job, nil
}
