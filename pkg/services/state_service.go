package services

import (
	"context"
	"fmt"

	"github.com/canaryscope/canaryscope/ent"
)

// pipelineStateKey is the singleton row's id.
const pipelineStateKey = "pipeline"

// StateService owns the cross-process pause flag.
type StateService struct {
	client *ent.Client
}

// NewStateService creates a new StateService
func NewStateService(client *ent.Client) *StateService {
	return &StateService{client: client}
}

// IsPaused reports the persisted pause flag. A missing row means not
// paused.
func (s *StateService) IsPaused(ctx context.Context) (bool, error) {
	row, err := s.client.PipelineState.Get(ctx, pipelineStateKey)
	if err != nil {
		if ent.IsNotFound(err) {
			return false, nil
		}
		return false, fmt.Errorf("failed to read pipeline state: %w", err)
	}
	return row.Paused, nil
}

// SetPaused persists the pause flag, creating the singleton row if
// needed.
func (s *StateService) SetPaused(ctx context.Context, paused bool) error {
	err := s.client.PipelineState.UpdateOneID(pipelineStateKey).
		SetPaused(paused).
		Exec(ctx)
	if err == nil {
		return nil
	}
	if !ent.IsNotFound(err) {
		return fmt.Errorf("failed to update pipeline state: %w", err)
	}

	_, err = s.client.PipelineState.Create().
		SetID(pipelineStateKey).
		SetPaused(paused).
		Save(ctx)
	if err != nil && !ent.IsConstraintError(err) {
		return fmt.Errorf("failed to create pipeline state: %w", err)
	}
	if ent.IsConstraintError(err) {
		// Race with another process creating the row; retry the update.
		return s.client.PipelineState.UpdateOneID(pipelineStateKey).
			SetPaused(paused).
			Exec(ctx)
	}
	return nil
}
