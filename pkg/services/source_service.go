package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/canaryscope/canaryscope/ent"
	"github.com/canaryscope/canaryscope/ent/source"
)

// SourceService manages ingestion sources
type SourceService struct {
	client *ent.Client
}

// NewSourceService creates a new SourceService
func NewSourceService(client *ent.Client) *SourceService {
	return &SourceService{client: client}
}

// CreateSourceRequest carries the fields for a new source
type CreateSourceRequest struct {
	StateCode           string
	Kind                string
	URL                 string
	Config              map[string]any
	CheckFrequencyHours int
}

// CreateSource registers a new ingestion source
func (s *SourceService) CreateSource(ctx context.Context, req CreateSourceRequest) (*ent.Source, error) {
	if req.StateCode == "" {
		return nil, NewValidationError("state_code", "required")
	}
	if req.URL == "" {
		return nil, NewValidationError("url", "required")
	}

	builder := s.client.Source.Create().
		SetID(uuid.New().String()).
		SetStateCode(strings.ToUpper(req.StateCode)).
		SetKind(source.Kind(req.Kind)).
		SetURL(req.URL)
	if req.Config != nil {
		builder.SetConfig(req.Config)
	}
	if req.CheckFrequencyHours > 0 {
		builder.SetCheckFrequencyHours(req.CheckFrequencyHours)
	}

	src, err := builder.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, ErrAlreadyExists
		}
		return nil, fmt.Errorf("failed to create source: %w", err)
	}
	return src, nil
}

// GetSource retrieves a source by ID
func (s *SourceService) GetSource(ctx context.Context, id string) (*ent.Source, error) {
	src, err := s.client.Source.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get source: %w", err)
	}
	return src, nil
}

// ListEnabled returns the enabled sources, optionally filtered by kind
// and state, in creation order.
func (s *SourceService) ListEnabled(ctx context.Context, kinds []string, stateCode string) ([]*ent.Source, error) {
	query := s.client.Source.Query().
		Where(source.EnabledEQ(true)).
		Order(ent.Asc(source.FieldCreatedAt))

	if len(kinds) > 0 {
		enumKinds := make([]source.Kind, len(kinds))
		for i, k := range kinds {
			enumKinds[i] = source.Kind(k)
		}
		query = query.Where(source.KindIn(enumKinds...))
	}
	if stateCode != "" {
		query = query.Where(source.StateCodeEQ(strings.ToUpper(stateCode)))
	}

	rows, err := query.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list sources: %w", err)
	}
	return rows, nil
}

// MarkChecked records a successful scrape pass: timestamps advance,
// status becomes active, any previous error clears.
func (s *SourceService) MarkChecked(ctx context.Context, id string, lastHearingAt *time.Time) error {
	update := s.client.Source.UpdateOneID(id).
		SetLastCheckedAt(time.Now().UTC()).
		SetStatus(source.StatusActive).
		ClearErrorMessage()
	if lastHearingAt != nil {
		update.SetLastHearingAt(*lastHearingAt)
	}

	if err := update.Exec(ctx); err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to mark source checked: %w", err)
	}
	return nil
}

// MarkFailed records a scrape failure on the source without touching
// last_checked_at, so the next pass retries promptly.
func (s *SourceService) MarkFailed(ctx context.Context, id string, scrapeErr error) error {
	err := s.client.Source.UpdateOneID(id).
		SetStatus(source.StatusError).
		SetErrorMessage(truncateError(scrapeErr.Error())).
		Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to mark source failed: %w", err)
	}
	return nil
}

// SetEnabled toggles a source
func (s *SourceService) SetEnabled(ctx context.Context, id string, enabled bool) error {
	err := s.client.Source.UpdateOneID(id).SetEnabled(enabled).Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to update source: %w", err)
	}
	return nil
}
