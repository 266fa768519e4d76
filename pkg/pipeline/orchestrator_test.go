package pipeline

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/canaryscope/canaryscope/ent"
	"github.com/canaryscope/canaryscope/ent/hearing"
	"github.com/canaryscope/canaryscope/pkg/config"
	"github.com/canaryscope/canaryscope/pkg/models"
	"github.com/canaryscope/canaryscope/pkg/services"
	"github.com/canaryscope/canaryscope/pkg/sources"
	testdb "github.com/canaryscope/canaryscope/test/database"
)

// stubStage runs an injected function under a real stage name.
type stubStage struct {
	name string
	run  func(ctx context.Context, h *ent.Hearing) StageResult
}

func (s *stubStage) Name() string { return s.name }

func (s *stubStage) Run(ctx context.Context, h *ent.Hearing) StageResult {
	return s.run(ctx, h)
}

type orchestratorFixture struct {
	client   *ent.Client
	hearings *services.HearingService
	jobs     *services.JobService
	state    *services.StateService
}

func newFixture(t *testing.T) *orchestratorFixture {
	t.Helper()
	client := testdb.NewTestClient(t).Client
	return &orchestratorFixture{
		client:   client,
		hearings: services.NewHearingService(client),
		jobs:     services.NewJobService(client),
		state:    services.NewStateService(client),
	}
}

func (f *orchestratorFixture) orchestrator(maxRetries int, stages ...Stage) *Orchestrator {
	return NewOrchestrator(f.hearings, f.jobs, f.state, config.PipelineConfig{MaxRetries: maxRetries}, stages...)
}

func (f *orchestratorFixture) newHearing(t *testing.T, externalID string) *ent.Hearing {
	t.Helper()
	ctx := context.Background()
	src, err := services.NewSourceService(f.client).CreateSource(ctx, services.CreateSourceRequest{
		StateCode: "FL", Kind: sources.KindRSSFeed, URL: "https://feed/" + externalID,
	})
	require.NoError(t, err)
	h, _, err := f.hearings.UpsertHearing(ctx, src.ID, "FL", models.HearingCandidate{
		ExternalID: externalID, Title: "Hearing " + externalID,
	})
	require.NoError(t, err)
	return h
}

// advancing returns a stub that moves the hearing to the given status,
// the way real stages commit their own transitions.
func (f *orchestratorFixture) advancing(name string, to hearing.Status, cost float64) *stubStage {
	return &stubStage{name: name, run: func(ctx context.Context, h *ent.Hearing) StageResult {
		if err := f.hearings.SetStatus(ctx, h.ID, to); err != nil {
			return failure(err, true)
		}
		return StageResult{Success: true, CostUSD: cost}
	}}
}

func TestRunDrivesHearingToComplete(t *testing.T) {
	f := newFixture(t)
	h := f.newHearing(t, "full-run")
	o := f.orchestrator(3,
		f.advancing(StageDownload, hearing.StatusTranscribing, 0),
		f.advancing(StageTranscribe, hearing.StatusTranscribed, 0.10),
		f.advancing(StageAnalyze, hearing.StatusAnalyzed, 0.05),
		f.advancing(StageExtract, hearing.StatusExtracted, 0),
	)

	status, err := o.Run(context.Background(), models.PipelineFilters{})
	require.NoError(t, err)

	assert.Equal(t, StateCompleted, status.State)
	assert.Equal(t, 1, status.HearingsTouched)
	assert.Equal(t, 4, status.StagesRun)
	assert.Equal(t, 4, status.Succeeded)
	assert.Equal(t, 1, status.Completed)
	assert.InDelta(t, 0.15, status.CostUSD, 0.001)

	reloaded, err := f.hearings.GetHearing(context.Background(), h.ID, false)
	require.NoError(t, err)
	assert.Equal(t, hearing.StatusComplete, reloaded.Status)

	jobs, err := f.client.PipelineJob.Query().All(context.Background())
	require.NoError(t, err)
	assert.Len(t, jobs, 4)
}

func TestRunExhaustsRetryBudget(t *testing.T) {
	f := newFixture(t)
	h := f.newHearing(t, "flaky")
	flaky := &stubStage{name: StageDownload, run: func(context.Context, *ent.Hearing) StageResult {
		return failure(errors.New("vendor timeout"), true)
	}}
	o := f.orchestrator(2, flaky)

	status, err := o.Run(context.Background(), models.PipelineFilters{})
	require.NoError(t, err)

	assert.Equal(t, 2, status.Failed)
	assert.Contains(t, status.LastError, "vendor timeout")

	reloaded, err := f.hearings.GetHearing(context.Background(), h.ID, false)
	require.NoError(t, err)
	assert.Equal(t, hearing.StatusError, reloaded.Status)

	attempts, err := f.jobs.FailedAttempts(context.Background(), h.ID, StageDownload)
	require.NoError(t, err)
	assert.Equal(t, 2, attempts)
}

func TestRunStopsOnPermanentFailure(t *testing.T) {
	f := newFixture(t)
	h := f.newHearing(t, "no-media")
	permanent := &stubStage{name: StageDownload, run: func(context.Context, *ent.Hearing) StageResult {
		return failure(errors.New("hearing has no media url"), false)
	}}
	o := f.orchestrator(3, permanent)

	status, err := o.Run(context.Background(), models.PipelineFilters{})
	require.NoError(t, err)
	assert.Equal(t, 1, status.StagesRun)
	assert.Equal(t, 1, status.Failed)

	reloaded, err := f.hearings.GetHearing(context.Background(), h.ID, false)
	require.NoError(t, err)
	assert.Equal(t, hearing.StatusError, reloaded.Status)
}

func TestRunMarksSkipped(t *testing.T) {
	f := newFixture(t)
	h := f.newHearing(t, "silent")
	short := &stubStage{name: StageDownload, run: func(context.Context, *ent.Hearing) StageResult {
		return StageResult{Err: errors.New("transcript too short"), SkipRemaining: true}
	}}
	o := f.orchestrator(3, short)

	status, err := o.Run(context.Background(), models.PipelineFilters{})
	require.NoError(t, err)
	assert.Equal(t, 1, status.Skipped)

	reloaded, err := f.hearings.GetHearing(context.Background(), h.ID, false)
	require.NoError(t, err)
	assert.Equal(t, hearing.StatusSkipped, reloaded.Status)
}

func TestOnlyStageFilterLeavesOthersUntouched(t *testing.T) {
	f := newFixture(t)
	h := f.newHearing(t, "filtered")
	o := f.orchestrator(3, f.advancing(StageDownload, hearing.StatusTranscribing, 0))

	status, err := o.Run(context.Background(), models.PipelineFilters{OnlyStage: StageAnalyze})
	require.NoError(t, err)
	assert.Zero(t, status.StagesRun)

	reloaded, err := f.hearings.GetHearing(context.Background(), h.ID, false)
	require.NoError(t, err)
	assert.Equal(t, hearing.StatusDiscovered, reloaded.Status)
}

func TestPausedPipelineProcessesNothing(t *testing.T) {
	f := newFixture(t)
	f.newHearing(t, "paused")
	o := f.orchestrator(3, f.advancing(StageDownload, hearing.StatusTranscribing, 0))
	require.NoError(t, o.Pause(context.Background()))

	status, err := o.Run(context.Background(), models.PipelineFilters{})
	require.NoError(t, err)
	assert.Equal(t, StatePaused, status.State)
	assert.Zero(t, status.StagesRun)

	// Resume and the same run request proceeds.
	require.NoError(t, o.Resume(context.Background()))
	status, err = o.Run(context.Background(), models.PipelineFilters{})
	require.NoError(t, err)
	assert.Equal(t, 1, status.StagesRun)
}

func TestMaxHearingsCapStopsRun(t *testing.T) {
	f := newFixture(t)
	f.newHearing(t, "cap-1")
	f.newHearing(t, "cap-2")
	skipAll := &stubStage{name: StageDownload, run: func(context.Context, *ent.Hearing) StageResult {
		return StageResult{Err: errors.New("no content"), SkipRemaining: true}
	}}
	o := f.orchestrator(3, skipAll)

	status, err := o.Run(context.Background(), models.PipelineFilters{MaxHearings: 1})
	require.NoError(t, err)
	assert.Equal(t, 1, status.HearingsTouched)
	assert.Equal(t, 1, status.Skipped)
}

func TestMaxCostCapStopsRun(t *testing.T) {
	f := newFixture(t)
	f.newHearing(t, "cost-1")
	f.newHearing(t, "cost-2")
	costly := &stubStage{name: StageDownload, run: func(ctx context.Context, h *ent.Hearing) StageResult {
		return StageResult{Err: errors.New("spent anyway"), SkipRemaining: true, CostUSD: 2.0}
	}}
	o := f.orchestrator(3, costly)

	status, err := o.Run(context.Background(), models.PipelineFilters{MaxCostUSD: 1.5})
	require.NoError(t, err)
	assert.Equal(t, 1, status.HearingsTouched)
	assert.InDelta(t, 2.0, status.CostUSD, 0.001)

	// The spend survives on the failed job row, not just in the run
	// snapshot.
	jobs, err := f.client.PipelineJob.Query().All(context.Background())
	require.NoError(t, err)
	require.Len(t, jobs, 1)
	assert.InDelta(t, 2.0, jobs[0].CostUsd, 0.001)
}

func TestRunRejectsConcurrentRuns(t *testing.T) {
	f := newFixture(t)
	o := f.orchestrator(3)
	require.NoError(t, o.begin())

	_, err := o.Run(context.Background(), models.PipelineFilters{})
	assert.ErrorIs(t, err, ErrAlreadyRunning)
}

func TestRunStage(t *testing.T) {
	f := newFixture(t)
	h := f.newHearing(t, "manual")
	o := f.orchestrator(3, f.advancing(StageDownload, hearing.StatusTranscribing, 0))

	_, err := o.RunStage(context.Background(), h.ID, "polish")
	assert.ErrorIs(t, err, services.ErrInvalidInput)

	result, err := o.RunStage(context.Background(), h.ID, StageDownload)
	require.NoError(t, err)
	assert.True(t, result.Success)

	reloaded, err := f.hearings.GetHearing(context.Background(), h.ID, false)
	require.NoError(t, err)
	assert.Equal(t, hearing.StatusTranscribing, reloaded.Status)

	latest, err := f.jobs.LatestJob(context.Background(), h.ID)
	require.NoError(t, err)
	assert.Equal(t, StageDownload, latest.Stage)
}
