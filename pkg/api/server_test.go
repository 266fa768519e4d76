package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

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

type stubPipelineCtl struct {
	startErr    error
	started     []models.PipelineFilters
	stopped     bool
	paused      bool
	resumed     bool
	status      pipeline.Status
	stageResult pipeline.StageResult
	stageErr    error
}

func (p *stubPipelineCtl) Start(filters models.PipelineFilters) error {
	p.started = append(p.started, filters)
	return p.startErr
}
func (p *stubPipelineCtl) Stop()                            { p.stopped = true }
func (p *stubPipelineCtl) Pause(context.Context) error      { p.paused = true; return nil }
func (p *stubPipelineCtl) Resume(context.Context) error     { p.resumed = true; return nil }
func (p *stubPipelineCtl) Status() pipeline.Status          { return p.status }
func (p *stubPipelineCtl) RunStage(_ context.Context, _, _ string) (pipeline.StageResult, error) {
	return p.stageResult, p.stageErr
}

type stubScrapeCtl struct {
	startErr error
	started  []models.ScrapeFilters
	stopped  bool
	progress scraper.Progress
}

func (s *stubScrapeCtl) Start(filters models.ScrapeFilters) error {
	s.started = append(s.started, filters)
	return s.startErr
}
func (s *stubScrapeCtl) RequestStop()               { s.stopped = true }
func (s *stubScrapeCtl) Progress() scraper.Progress { return s.progress }

type fakeCatalog struct {
	state   string
	records []models.DocketRecord
	err     error
}

func (f *fakeCatalog) StateCode() string { return f.state }
func (f *fakeCatalog) Fetch(context.Context, *time.Time) ([]models.DocketRecord, error) {
	return f.records, f.err
}

type apiFixture struct {
	router   *gin.Engine
	pipeline *stubPipelineCtl
	scraper  *stubScrapeCtl
}

func newAPIFixture(t *testing.T, catalogs ...sources.CatalogClient) *apiFixture {
	t.Helper()
	db := testdb.NewTestClient(t)
	pipe := &stubPipelineCtl{}
	scrape := &stubScrapeCtl{}

	registry := sources.NewCatalogRegistry()
	for _, c := range catalogs {
		registry.Register(c)
	}

	server := NewServer(db, pipe, scrape,
		services.NewScheduleService(db.Client),
		services.NewDocketService(db.Client),
		services.NewHearingService(db.Client),
		registry,
	)
	return &apiFixture{router: server.Router(), pipeline: pipe, scraper: scrape}
}

func (f *apiFixture) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)
	return w
}

func TestHealthEndpoint(t *testing.T) {
	f := newAPIFixture(t)
	w := f.do(t, http.MethodGet, "/health", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "healthy")
}

func TestPipelineStartPassesFilters(t *testing.T) {
	f := newAPIFixture(t)
	w := f.do(t, http.MethodPost, "/api/v1/pipeline/start", StartPipelineRequest{
		States:      []string{"FL"},
		OnlyStage:   "transcribe",
		MaxHearings: 5,
		MaxCostUSD:  2.5,
	})
	require.Equal(t, http.StatusAccepted, w.Code)
	require.Len(t, f.pipeline.started, 1)
	assert.Equal(t, []string{"FL"}, f.pipeline.started[0].StateCodes)
	assert.Equal(t, "transcribe", f.pipeline.started[0].OnlyStage)
	assert.Equal(t, 5, f.pipeline.started[0].MaxHearings)
}

func TestPipelineStartConflict(t *testing.T) {
	f := newAPIFixture(t)
	f.pipeline.startErr = pipeline.ErrAlreadyRunning
	w := f.do(t, http.MethodPost, "/api/v1/pipeline/start", nil)
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestPipelineControlEndpoints(t *testing.T) {
	f := newAPIFixture(t)
	assert.Equal(t, http.StatusOK, f.do(t, http.MethodPost, "/api/v1/pipeline/stop", nil).Code)
	assert.Equal(t, http.StatusOK, f.do(t, http.MethodPost, "/api/v1/pipeline/pause", nil).Code)
	assert.Equal(t, http.StatusOK, f.do(t, http.MethodPost, "/api/v1/pipeline/resume", nil).Code)
	assert.True(t, f.pipeline.stopped)
	assert.True(t, f.pipeline.paused)
	assert.True(t, f.pipeline.resumed)
}

func TestPipelineStatusIncludesHearingCounts(t *testing.T) {
	f := newAPIFixture(t)
	f.pipeline.status = pipeline.Status{State: pipeline.StateRunning}

	w := f.do(t, http.MethodGet, "/api/v1/pipeline/status", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Run           pipeline.Status `json:"run"`
		HearingCounts map[string]int  `json:"hearing_counts"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, pipeline.StateRunning, resp.Run.State)
	assert.NotNil(t, resp.HearingCounts)
}

func TestRunStageUnknownStage(t *testing.T) {
	f := newAPIFixture(t)
	f.pipeline.stageErr = services.ErrInvalidInput
	w := f.do(t, http.MethodPost, "/api/v1/pipeline/hearings/h-1/stages/polish", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestScraperRunAndProgress(t *testing.T) {
	f := newAPIFixture(t)
	w := f.do(t, http.MethodPost, "/api/v1/scraper/run", RunScraperRequest{
		Types: []string{"rss_feed"}, State: "FL", DryRun: true,
	})
	require.Equal(t, http.StatusAccepted, w.Code)
	require.Len(t, f.scraper.started, 1)
	assert.Equal(t, []string{"rss_feed"}, f.scraper.started[0].Kinds)
	assert.True(t, f.scraper.started[0].DryRun)

	f.scraper.progress = scraper.Progress{Status: scraper.StatusRunning, ItemsFound: 3}
	w = f.do(t, http.MethodGet, "/api/v1/scraper/progress", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var progress scraper.Progress
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &progress))
	assert.Equal(t, 3, progress.ItemsFound)
}

func TestScraperRunConflict(t *testing.T) {
	f := newAPIFixture(t)
	f.scraper.startErr = scraper.ErrAlreadyRunning
	w := f.do(t, http.MethodPost, "/api/v1/scraper/run", nil)
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestScheduleCRUD(t *testing.T) {
	f := newAPIFixture(t)

	w := f.do(t, http.MethodPost, "/api/v1/schedules", CreateScheduleRequest{
		Name: "nightly", Target: "all", ScheduleType: "daily", ScheduleValue: "02:00",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	var created struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	require.NotEmpty(t, created.ID)

	// Duplicate name.
	w = f.do(t, http.MethodPost, "/api/v1/schedules", CreateScheduleRequest{
		Name: "nightly", Target: "all", ScheduleType: "daily", ScheduleValue: "03:00",
	})
	assert.Equal(t, http.StatusConflict, w.Code)

	// Bad grammar.
	w = f.do(t, http.MethodPost, "/api/v1/schedules", CreateScheduleRequest{
		Name: "broken", Target: "pipeline", ScheduleType: "interval", ScheduleValue: "soon",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = f.do(t, http.MethodGet, "/api/v1/schedules", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "nightly")

	enabled := false
	w = f.do(t, http.MethodPatch, "/api/v1/schedules/"+created.ID, UpdateScheduleRequest{Enabled: &enabled})
	assert.Equal(t, http.StatusOK, w.Code)

	w = f.do(t, http.MethodDelete, "/api/v1/schedules/"+created.ID, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = f.do(t, http.MethodDelete, "/api/v1/schedules/"+created.ID, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestReviewQueueEmptyAndMissingLink(t *testing.T) {
	f := newAPIFixture(t)

	w := f.do(t, http.MethodGet, "/api/v1/review/dockets", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Count int `json:"count"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Zero(t, resp.Count)

	approved := true
	w = f.do(t, http.MethodPost, "/api/v1/review/dockets/missing", ResolveReviewRequest{Approved: &approved})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCatalogSync(t *testing.T) {
	fake := &fakeCatalog{state: "NV", records: []models.DocketRecord{
		{StateCode: "NV", DocketNumber: "24-06015", Title: "General rate case"},
	}}
	f := newAPIFixture(t, fake)

	w := f.do(t, http.MethodPost, "/api/v1/catalog/sync", SyncCatalogRequest{States: []string{"nv"}})
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Results []CatalogSyncResult `json:"results"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Results, 1)
	assert.Equal(t, "NV", resp.Results[0].StateCode)
	assert.Equal(t, 1, resp.Results[0].Fetched)
	assert.Equal(t, 1, resp.Results[0].Created)
	assert.Empty(t, resp.Results[0].Error)
}

func TestCatalogSyncUnknownState(t *testing.T) {
	f := newAPIFixture(t)
	w := f.do(t, http.MethodPost, "/api/v1/catalog/sync", SyncCatalogRequest{States: []string{"ZZ"}})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "no docket catalogue client")
}
