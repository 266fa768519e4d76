package scraper

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/canaryscope/canaryscope/ent"
	"github.com/canaryscope/canaryscope/ent/source"
	"github.com/canaryscope/canaryscope/pkg/models"
	"github.com/canaryscope/canaryscope/pkg/services"
	"github.com/canaryscope/canaryscope/pkg/sources"
	testdb "github.com/canaryscope/canaryscope/test/database"
)

// stubAdapter serves canned candidates (or a canned error) per source.
type stubAdapter struct {
	kind       string
	candidates map[string][]models.HearingCandidate
	fail       map[string]error
}

func (a *stubAdapter) Kind() string { return a.kind }

func (a *stubAdapter) List(_ context.Context, cfg sources.SourceConfig, _ *time.Time) ([]models.HearingCandidate, error) {
	if err := a.fail[cfg.SourceID]; err != nil {
		return nil, &sources.AdapterError{SourceID: cfg.SourceID, Kind: a.kind, Err: err}
	}
	return a.candidates[cfg.SourceID], nil
}

func newTestScraper(t *testing.T, adapter sources.Adapter) (*Scraper, *ent.Client, *services.SourceService) {
	t.Helper()
	client := testdb.NewTestClient(t).Client
	registry := sources.NewRegistry()
	registry.Register(adapter)
	sourceSvc := services.NewSourceService(client)
	return New(registry, sourceSvc, services.NewHearingService(client)), client, sourceSvc
}

func TestRunUpsertsAndCounts(t *testing.T) {
	adapter := &stubAdapter{
		kind:       sources.KindRSSFeed,
		candidates: map[string][]models.HearingCandidate{},
	}
	s, client, sourceSvc := newTestScraper(t, adapter)
	ctx := context.Background()

	src, err := sourceSvc.CreateSource(ctx, services.CreateSourceRequest{
		StateCode: "FL", Kind: sources.KindRSSFeed, URL: "https://feed",
	})
	require.NoError(t, err)

	hearingDate := time.Date(2026, 1, 7, 0, 0, 0, 0, time.UTC)
	adapter.candidates[src.ID] = []models.HearingCandidate{
		{ExternalID: "a", Title: "A", Date: hearingDate},
		{ExternalID: "b", Title: "B"},
	}

	// First pass: both are new.
	progress, err := s.Run(ctx, models.ScrapeFilters{})
	require.NoError(t, err)
	assert.Equal(t, StatusCompleted, progress.Status)
	assert.Equal(t, 2, progress.ItemsFound)
	assert.Equal(t, 2, progress.NewHearings)
	assert.Zero(t, progress.Errors)

	// Second pass: both exist already.
	progress, err = s.Run(ctx, models.ScrapeFilters{})
	require.NoError(t, err)
	assert.Equal(t, 2, progress.ExistingHearings)
	assert.Zero(t, progress.NewHearings)

	// Source bookkeeping advanced.
	reloaded, err := sourceSvc.GetSource(ctx, src.ID)
	require.NoError(t, err)
	assert.Equal(t, source.StatusActive, reloaded.Status)
	require.NotNil(t, reloaded.LastHearingAt)
	assert.Equal(t, hearingDate, reloaded.LastHearingAt.UTC())

	n, err := client.Hearing.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

func TestRunIsolatesPerSourceFailures(t *testing.T) {
	adapter := &stubAdapter{
		kind:       sources.KindRSSFeed,
		candidates: map[string][]models.HearingCandidate{},
		fail:       map[string]error{},
	}
	s, client, sourceSvc := newTestScraper(t, adapter)
	ctx := context.Background()

	bad, err := sourceSvc.CreateSource(ctx, services.CreateSourceRequest{
		StateCode: "FL", Kind: sources.KindRSSFeed, URL: "https://bad",
	})
	require.NoError(t, err)
	good, err := sourceSvc.CreateSource(ctx, services.CreateSourceRequest{
		StateCode: "TX", Kind: sources.KindRSSFeed, URL: "https://good",
	})
	require.NoError(t, err)

	adapter.fail[bad.ID] = errors.New("vendor returned 403")
	adapter.candidates[good.ID] = []models.HearingCandidate{{ExternalID: "x", Title: "X"}}

	progress, err := s.Run(ctx, models.ScrapeFilters{})
	require.NoError(t, err)

	assert.Equal(t, 1, progress.NewHearings)
	assert.Equal(t, 1, progress.Errors)
	require.Len(t, progress.LastErrors, 1)
	assert.Contains(t, progress.LastErrors[0], "vendor returned 403")

	reloadedBad, err := sourceSvc.GetSource(ctx, bad.ID)
	require.NoError(t, err)
	assert.Equal(t, source.StatusError, reloadedBad.Status)

	reloadedGood, err := sourceSvc.GetSource(ctx, good.ID)
	require.NoError(t, err)
	assert.Equal(t, source.StatusActive, reloadedGood.Status)

	n, err := client.Hearing.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestDryRunWritesNothing(t *testing.T) {
	adapter := &stubAdapter{
		kind:       sources.KindRSSFeed,
		candidates: map[string][]models.HearingCandidate{},
	}
	s, client, sourceSvc := newTestScraper(t, adapter)
	ctx := context.Background()

	src, err := sourceSvc.CreateSource(ctx, services.CreateSourceRequest{
		StateCode: "FL", Kind: sources.KindRSSFeed, URL: "https://feed",
	})
	require.NoError(t, err)
	adapter.candidates[src.ID] = []models.HearingCandidate{{ExternalID: "a", Title: "A"}}

	progress, err := s.Run(ctx, models.ScrapeFilters{DryRun: true})
	require.NoError(t, err)
	assert.Equal(t, 1, progress.ItemsFound)
	assert.Zero(t, progress.NewHearings)

	n, err := client.Hearing.Query().Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)

	// last_checked_at untouched on dry runs.
	reloaded, err := sourceSvc.GetSource(ctx, src.ID)
	require.NoError(t, err)
	assert.Nil(t, reloaded.LastCheckedAt)
}

func TestErrorRingKeepsLastTwenty(t *testing.T) {
	s := New(sources.NewRegistry(), nil, nil)
	for i := 0; i < 25; i++ {
		s.recordError(fmt.Errorf("error %d", i))
	}
	progress := s.Progress()
	assert.Equal(t, 25, progress.Errors)
	require.Len(t, progress.LastErrors, 20)
	assert.Equal(t, "error 5", progress.LastErrors[0])
	assert.Equal(t, "error 24", progress.LastErrors[19])
}

func TestRunRejectsConcurrentRuns(t *testing.T) {
	s := New(sources.NewRegistry(), nil, nil)
	s.mu.Lock()
	s.running = true
	s.mu.Unlock()

	_, err := s.Run(context.Background(), models.ScrapeFilters{})
	assert.ErrorIs(t, err, ErrAlreadyRunning)
}
