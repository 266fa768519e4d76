// Package e2e drives the HTTP control surface against real services
// and a real database, with the external-tool boundaries (yt-dlp,
// speech-to-text, the LLM) replaced by stubs.
package e2e

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/canaryscope/canaryscope/ent"
	"github.com/canaryscope/canaryscope/ent/hearing"
	"github.com/canaryscope/canaryscope/pkg/api"
	"github.com/canaryscope/canaryscope/pkg/config"
	"github.com/canaryscope/canaryscope/pkg/models"
	"github.com/canaryscope/canaryscope/pkg/pipeline"
	"github.com/canaryscope/canaryscope/pkg/scraper"
	"github.com/canaryscope/canaryscope/pkg/services"
	"github.com/canaryscope/canaryscope/pkg/sources"
	testdb "github.com/canaryscope/canaryscope/test/database"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// fixedAdapter yields the same candidates for every source.
type fixedAdapter struct {
	candidates []models.HearingCandidate
}

func (a *fixedAdapter) Kind() string { return sources.KindRSSFeed }

func (a *fixedAdapter) List(context.Context, sources.SourceConfig, *time.Time) ([]models.HearingCandidate, error) {
	return a.candidates, nil
}

// passStage advances the hearing to the given status, standing in for
// the real download/transcribe/analyze/extract work.
type passStage struct {
	name     string
	to       hearing.Status
	hearings *services.HearingService
}

func (s *passStage) Name() string { return s.name }

func (s *passStage) Run(ctx context.Context, h *ent.Hearing) pipeline.StageResult {
	if err := s.hearings.SetStatus(ctx, h.ID, s.to); err != nil {
		return pipeline.StageResult{Err: err, ShouldRetry: true}
	}
	return pipeline.StageResult{Success: true}
}

type harness struct {
	t          *testing.T
	server     *httptest.Server
	sourceSvc  *services.SourceService
	hearingSvc *services.HearingService
}

func newHarness(t *testing.T, adapter sources.Adapter) *harness {
	t.Helper()
	db := testdb.NewTestClient(t)

	sourceSvc := services.NewSourceService(db.Client)
	hearingSvc := services.NewHearingService(db.Client)
	jobSvc := services.NewJobService(db.Client)
	stateSvc := services.NewStateService(db.Client)

	registry := sources.NewRegistry()
	registry.Register(adapter)
	scrape := scraper.New(registry, sourceSvc, hearingSvc)

	orchestrator := pipeline.NewOrchestrator(hearingSvc, jobSvc, stateSvc, config.PipelineConfig{MaxRetries: 3},
		&passStage{name: pipeline.StageDownload, to: hearing.StatusTranscribing, hearings: hearingSvc},
		&passStage{name: pipeline.StageTranscribe, to: hearing.StatusTranscribed, hearings: hearingSvc},
		&passStage{name: pipeline.StageAnalyze, to: hearing.StatusAnalyzed, hearings: hearingSvc},
		&passStage{name: pipeline.StageExtract, to: hearing.StatusExtracted, hearings: hearingSvc},
	)

	server := api.NewServer(db, orchestrator, scrape,
		services.NewScheduleService(db.Client),
		services.NewDocketService(db.Client),
		hearingSvc,
		sources.NewCatalogRegistry(),
	)

	ts := httptest.NewServer(server.Router())
	t.Cleanup(ts.Close)
	return &harness{t: t, server: ts, sourceSvc: sourceSvc, hearingSvc: hearingSvc}
}

func (h *harness) post(path string, body any) (int, []byte) {
	h.t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(h.t, err)
	resp, err := http.Post(h.server.URL+path, "application/json", bytes.NewReader(raw))
	require.NoError(h.t, err)
	defer resp.Body.Close()
	data, err := io.ReadAll(resp.Body)
	require.NoError(h.t, err)
	return resp.StatusCode, data
}

func (h *harness) get(path string, out any) int {
	h.t.Helper()
	resp, err := http.Get(h.server.URL + path)
	require.NoError(h.t, err)
	defer resp.Body.Close()
	data, err := io.ReadAll(resp.Body)
	require.NoError(h.t, err)
	if out != nil {
		require.NoError(h.t, json.Unmarshal(data, out))
	}
	return resp.StatusCode
}

func TestScrapeThenPipelineOverHTTP(t *testing.T) {
	adapter := &fixedAdapter{candidates: []models.HearingCandidate{
		{ExternalID: "e2e-1", Title: "Storm cost recovery hearing"},
		{ExternalID: "e2e-2", Title: "Fuel adjustment workshop"},
	}}
	h := newHarness(t, adapter)

	_, err := h.sourceSvc.CreateSource(context.Background(), services.CreateSourceRequest{
		StateCode: "FL", Kind: sources.KindRSSFeed, URL: "https://example.test/feed",
	})
	require.NoError(t, err)

	status := h.get("/health", nil)
	require.Equal(t, http.StatusOK, status)

	// Discover hearings.
	code, _ := h.post("/api/v1/scraper/run", map[string]any{})
	require.Equal(t, http.StatusAccepted, code)

	require.Eventually(t, func() bool {
		var progress scraper.Progress
		h.get("/api/v1/scraper/progress", &progress)
		return progress.Status == scraper.StatusCompleted
	}, 10*time.Second, 20*time.Millisecond)

	var progress scraper.Progress
	h.get("/api/v1/scraper/progress", &progress)
	assert.Equal(t, 2, progress.NewHearings)

	// Process them to completion.
	code, _ = h.post("/api/v1/pipeline/start", map[string]any{"states": []string{"FL"}})
	require.Equal(t, http.StatusAccepted, code)

	type statusResponse struct {
		Run           pipeline.Status `json:"run"`
		HearingCounts map[string]int  `json:"hearing_counts"`
	}
	require.Eventually(t, func() bool {
		var resp statusResponse
		h.get("/api/v1/pipeline/status", &resp)
		return resp.Run.State == pipeline.StateCompleted
	}, 10*time.Second, 20*time.Millisecond)

	var resp statusResponse
	h.get("/api/v1/pipeline/status", &resp)
	assert.Equal(t, 2, resp.HearingCounts["complete"])
	assert.Equal(t, 2, resp.Run.Completed)
	assert.Equal(t, 8, resp.Run.Succeeded)
}

func TestPauseBlocksPipelineOverHTTP(t *testing.T) {
	adapter := &fixedAdapter{candidates: []models.HearingCandidate{
		{ExternalID: "pause-1", Title: "Rate case prehearing"},
	}}
	h := newHarness(t, adapter)

	src, err := h.sourceSvc.CreateSource(context.Background(), services.CreateSourceRequest{
		StateCode: "TX", Kind: sources.KindRSSFeed, URL: "https://example.test/feed",
	})
	require.NoError(t, err)
	_, _, err = h.hearingSvc.UpsertHearing(context.Background(), src.ID, "TX", adapter.candidates[0])
	require.NoError(t, err)

	code, _ := h.post("/api/v1/pipeline/pause", nil)
	require.Equal(t, http.StatusOK, code)

	code, _ = h.post("/api/v1/pipeline/start", map[string]any{})
	require.Equal(t, http.StatusAccepted, code)

	type statusResponse struct {
		Run pipeline.Status `json:"run"`
	}
	require.Eventually(t, func() bool {
		var resp statusResponse
		h.get("/api/v1/pipeline/status", &resp)
		return resp.Run.State == pipeline.StatePaused
	}, 10*time.Second, 20*time.Millisecond)

	var resp statusResponse
	h.get("/api/v1/pipeline/status", &resp)
	assert.Zero(t, resp.Run.StagesRun)

	// Resume and re-run to completion.
	code, _ = h.post("/api/v1/pipeline/resume", nil)
	require.Equal(t, http.StatusOK, code)
	code, _ = h.post("/api/v1/pipeline/start", map[string]any{})
	require.Equal(t, http.StatusAccepted, code)

	require.Eventually(t, func() bool {
		var resp statusResponse
		h.get("/api/v1/pipeline/status", &resp)
		return resp.Run.State == pipeline.StateCompleted && resp.Run.Completed == 1
	}, 10*time.Second, 20*time.Millisecond)
}
