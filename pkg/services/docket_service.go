package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/canaryscope/canaryscope/ent"
	"github.com/canaryscope/canaryscope/ent/hearingdocket"
	"github.com/canaryscope/canaryscope/ent/knowndocket"
	"github.com/canaryscope/canaryscope/pkg/dockets"
	"github.com/canaryscope/canaryscope/pkg/models"
)

// DocketService manages the known-docket catalogue and the human
// review queue over extracted docket links.
type DocketService struct {
	client *ent.Client
}

// NewDocketService creates a new DocketService
func NewDocketService(client *ent.Client) *DocketService {
	return &DocketService{client: client}
}

// UpsertKnownDocket inserts or refreshes one catalogue entry, keyed by
// (state_code, docket_number). Returns created=true for new rows.
func (s *DocketService) UpsertKnownDocket(ctx context.Context, rec models.DocketRecord) (*ent.KnownDocket, bool, error) {
	if rec.StateCode == "" {
		return nil, false, NewValidationError("state_code", "required")
	}
	if rec.DocketNumber == "" {
		return nil, false, NewValidationError("docket_number", "required")
	}

	state := strings.ToUpper(rec.StateCode)
	normalized := dockets.NormalizeID(state, rec.DocketNumber)
	comps := dockets.ParseComponents(state, rec.DocketNumber)

	existing, err := s.client.KnownDocket.Query().
		Where(knowndocket.StateCodeEQ(state), knowndocket.DocketNumberEQ(rec.DocketNumber)).
		Only(ctx)
	if err == nil {
		update := existing.Update().
			SetTitle(rec.Title).
			SetStatus(rec.Status).
			SetCaseType(rec.DocketType)
		if rec.FilingDate != nil {
			update.SetFilingDate(*rec.FilingDate)
		}
		if len(rec.Parties) > 0 {
			update.SetUtilityName(rec.Parties[0])
		}
		updated, err := update.Save(ctx)
		if err != nil {
			return nil, false, fmt.Errorf("failed to update known docket: %w", err)
		}
		return updated, false, nil
	}
	if !ent.IsNotFound(err) {
		return nil, false, fmt.Errorf("failed to query known docket: %w", err)
	}

	builder := s.client.KnownDocket.Create().
		SetID(uuid.New().String()).
		SetStateCode(state).
		SetDocketNumber(rec.DocketNumber).
		SetNormalizedID(normalized).
		SetTitle(rec.Title).
		SetStatus(rec.Status).
		SetCaseType(rec.DocketType).
		SetUtilitySector(rec.Industry)
	if comps.Valid {
		if comps.Year != nil {
			builder.SetYear(*comps.Year)
		}
		builder.SetCaseNumber(comps.CaseNumber)
		builder.SetSuffix(comps.Suffix)
	}
	if rec.FilingDate != nil {
		builder.SetFilingDate(*rec.FilingDate)
	}
	if len(rec.Parties) > 0 {
		builder.SetUtilityName(rec.Parties[0])
	}

	created, err := builder.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, false, ErrAlreadyExists
		}
		return nil, false, fmt.Errorf("failed to create known docket: %w", err)
	}
	return created, true, nil
}

// CatalogSummary reports one catalogue sync pass.
type CatalogSummary struct {
	StateCode string `json:"state_code"`
	Fetched   int    `json:"fetched"`
	Created   int    `json:"created"`
	Updated   int    `json:"updated"`
	Errors    int    `json:"errors"`
}

// SyncCatalog upserts every record a catalogue fetch returned. Row
// failures are counted, not fatal.
func (s *DocketService) SyncCatalog(ctx context.Context, records []models.DocketRecord) CatalogSummary {
	summary := CatalogSummary{Fetched: len(records)}
	for _, rec := range records {
		if summary.StateCode == "" {
			summary.StateCode = strings.ToUpper(rec.StateCode)
		}
		_, created, err := s.UpsertKnownDocket(ctx, rec)
		switch {
		case err != nil:
			summary.Errors++
		case created:
			summary.Created++
		default:
			summary.Updated++
		}
	}
	return summary
}

// ReviewItem is one pending docket link with its hearing context.
type ReviewItem struct {
	LinkID         string    `json:"link_id"`
	HearingID      string    `json:"hearing_id"`
	HearingTitle   string    `json:"hearing_title"`
	DocketID       string    `json:"docket_id"`
	NormalizedID   string    `json:"normalized_id"`
	Confidence     float64   `json:"confidence"`
	MatchType      string    `json:"match_type"`
	ContextSummary string    `json:"context_summary"`
	IsPrimary      bool      `json:"is_primary"`
	CreatedAt      time.Time `json:"created_at"`
}

// ListReviewQueue returns docket links awaiting human review, highest
// confidence first so reviewers confirm near-certain links quickly.
func (s *DocketService) ListReviewQueue(ctx context.Context, limit int) ([]ReviewItem, error) {
	query := s.client.HearingDocket.Query().
		Where(hearingdocket.NeedsReviewEQ(true)).
		WithHearing().
		WithDocket().
		Order(ent.Desc(hearingdocket.FieldConfidenceScore))
	if limit > 0 {
		query = query.Limit(limit)
	}

	rows, err := query.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list review queue: %w", err)
	}

	items := make([]ReviewItem, 0, len(rows))
	for _, row := range rows {
		item := ReviewItem{
			LinkID:         row.ID,
			HearingID:      row.HearingID,
			DocketID:       row.DocketID,
			Confidence:     row.ConfidenceScore,
			MatchType:      string(row.MatchType),
			ContextSummary: row.ContextSummary,
			IsPrimary:      row.IsPrimary,
			CreatedAt:      row.CreatedAt,
		}
		if h := row.Edges.Hearing; h != nil {
			item.HearingTitle = h.Title
		}
		if d := row.Edges.Docket; d != nil {
			item.NormalizedID = d.NormalizedID
		}
		items = append(items, item)
	}
	return items, nil
}

// ResolveReview records a reviewer's verdict on one docket link. An
// approved link clears needs_review; a rejected link is deleted.
func (s *DocketService) ResolveReview(ctx context.Context, linkID string, approved bool, reason string) error {
	if approved {
		err := s.client.HearingDocket.UpdateOneID(linkID).
			SetNeedsReview(false).
			SetReviewReason(reason).
			Exec(ctx)
		if err != nil {
			if ent.IsNotFound(err) {
				return ErrNotFound
			}
			return fmt.Errorf("failed to approve docket link: %w", err)
		}
		return nil
	}

	err := s.client.HearingDocket.DeleteOneID(linkID).Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to reject docket link: %w", err)
	}
	return nil
}
