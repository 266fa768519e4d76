package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/google/uuid"

	"github.com/canaryscope/canaryscope/pkg/models"
)

func TestUpsertKnownDocket(t *testing.T) {
	client := newTestClient(t)
	svc := NewDocketService(client)
	ctx := context.Background()

	filed := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	rec := models.DocketRecord{
		StateCode:    "fl",
		DocketNumber: "20240035-GU",
		Title:        "Petition for rate increase by Peoples Gas",
		DocketType:   "rate case",
		FilingDate:   &filed,
		Parties:      []string{"Peoples Gas System"},
	}

	kd, created, err := svc.UpsertKnownDocket(ctx, rec)
	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, "FL-20240035-GU", kd.NormalizedID)
	require.NotNil(t, kd.Year)
	assert.Equal(t, 2024, *kd.Year)
	assert.Equal(t, "GU", kd.Suffix)

	// Re-sync refreshes fields without duplicating the row.
	rec.Status = "closed"
	updated, created, err := svc.UpsertKnownDocket(ctx, rec)
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, kd.ID, updated.ID)
	assert.Equal(t, "closed", updated.Status)

	n, err := client.KnownDocket.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestSyncCatalogCounts(t *testing.T) {
	client := newTestClient(t)
	svc := NewDocketService(client)
	ctx := context.Background()

	_, _, err := svc.UpsertKnownDocket(ctx, models.DocketRecord{StateCode: "TX", DocketNumber: "56211"})
	require.NoError(t, err)

	summary := svc.SyncCatalog(ctx, []models.DocketRecord{
		{StateCode: "TX", DocketNumber: "56211", Title: "Securitization"},
		{StateCode: "TX", DocketNumber: "56300"},
		{StateCode: "TX"}, // missing docket number
	})

	assert.Equal(t, "TX", summary.StateCode)
	assert.Equal(t, 3, summary.Fetched)
	assert.Equal(t, 1, summary.Created)
	assert.Equal(t, 1, summary.Updated)
	assert.Equal(t, 1, summary.Errors)
}

func TestReviewQueue(t *testing.T) {
	client := newTestClient(t)
	svc := NewDocketService(client)
	ctx := context.Background()

	src := createTestSource(t, client, "FL")
	h := createTestHearing(t, client, src.ID, "FL", "rev-1")

	now := time.Now().UTC()
	docketRow, err := client.Docket.Create().
		SetID(uuid.New().String()).
		SetStateCode("FL").
		SetDocketNumber("20240035-GU").
		SetNormalizedID("FL-20240035-GU").
		SetFirstSeenAt(now).
		SetLastMentionedAt(now).
		Save(ctx)
	require.NoError(t, err)

	link, err := client.HearingDocket.Create().
		SetID(uuid.New().String()).
		SetHearingID(h.ID).
		SetDocketID(docketRow.ID).
		SetConfidenceScore(88).
		SetMatchType("exact").
		SetNeedsReview(true).
		SetContextSummary("docket «20240035-GU» filed by Peoples Gas").
		Save(ctx)
	require.NoError(t, err)

	items, err := svc.ListReviewQueue(ctx, 10)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, link.ID, items[0].LinkID)
	assert.Equal(t, "FL-20240035-GU", items[0].NormalizedID)
	assert.Equal(t, h.Title, items[0].HearingTitle)

	// Approval clears the flag.
	require.NoError(t, svc.ResolveReview(ctx, link.ID, true, "verified against catalogue"))
	items, err = svc.ListReviewQueue(ctx, 10)
	require.NoError(t, err)
	assert.Empty(t, items)

	// Rejection deletes the link entirely.
	h2 := createTestHearing(t, client, src.ID, "FL", "rev-2")
	link2, err := client.HearingDocket.Create().
		SetID(uuid.New().String()).
		SetHearingID(h2.ID).
		SetDocketID(docketRow.ID).
		SetConfidenceScore(61).
		SetMatchType("fuzzy").
		SetNeedsReview(true).
		Save(ctx)
	require.NoError(t, err)

	require.NoError(t, svc.ResolveReview(ctx, link2.ID, false, "wrong docket"))
	n, err := client.HearingDocket.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestResolveReviewMissingLink(t *testing.T) {
	client := newTestClient(t)
	err := NewDocketService(client).ResolveReview(context.Background(), "nope", true, "")
	assert.ErrorIs(t, err, ErrNotFound)
}
