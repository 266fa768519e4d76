package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/canaryscope/canaryscope/ent"
	"github.com/canaryscope/canaryscope/pkg/models"
	"github.com/canaryscope/canaryscope/pkg/pipeline"
	"github.com/canaryscope/canaryscope/pkg/scraper"
	"github.com/canaryscope/canaryscope/pkg/services"
	testdb "github.com/canaryscope/canaryscope/test/database"
)

type stubPipeline struct {
	calls []models.PipelineFilters
	err   error
}

func (p *stubPipeline) Run(_ context.Context, filters models.PipelineFilters) (pipeline.Status, error) {
	p.calls = append(p.calls, filters)
	return pipeline.Status{}, p.err
}

type stubScraper struct {
	calls []models.ScrapeFilters
	err   error
}

func (s *stubScraper) Run(_ context.Context, filters models.ScrapeFilters) (scraper.Progress, error) {
	s.calls = append(s.calls, filters)
	return scraper.Progress{}, s.err
}

func newTestScheduler(t *testing.T) (*Scheduler, *services.ScheduleService, *ent.Client, *stubPipeline, *stubScraper) {
	t.Helper()
	client := testdb.NewTestClient(t).Client
	schedules := services.NewScheduleService(client)
	pipe := &stubPipeline{}
	scrape := &stubScraper{}
	return New(schedules, pipe, scrape, time.Minute), schedules, client, pipe, scrape
}

// makeDue creates a schedule and backdates next_run_at so the next
// tick fires it.
func makeDue(t *testing.T, client *ent.Client, schedules *services.ScheduleService, req services.CreateScheduleRequest) *ent.PipelineSchedule {
	t.Helper()
	created, err := schedules.CreateSchedule(context.Background(), req)
	require.NoError(t, err)
	past := time.Now().UTC().Add(-time.Minute)
	require.NoError(t, client.PipelineSchedule.UpdateOneID(created.ID).SetNextRunAt(past).Exec(context.Background()))
	return created
}

func TestTickDispatchesPipelineWithConfig(t *testing.T) {
	s, schedules, client, pipe, scrape := newTestScheduler(t)
	makeDue(t, client, schedules, services.CreateScheduleRequest{
		Name:          "nightly",
		Target:        "pipeline",
		ScheduleType:  "daily",
		ScheduleValue: "02:00",
		Config: map[string]any{
			"state_codes":  []any{"FL", "TX"},
			"only_stage":   "transcribe",
			"max_cost_usd": 5.0,
			"max_hearings": float64(10),
		},
	})

	now := time.Now().UTC()
	s.Tick(context.Background(), now)

	require.Len(t, pipe.calls, 1)
	assert.Empty(t, scrape.calls)
	assert.Equal(t, []string{"FL", "TX"}, pipe.calls[0].StateCodes)
	assert.Equal(t, "transcribe", pipe.calls[0].OnlyStage)
	assert.InDelta(t, 5.0, pipe.calls[0].MaxCostUSD, 0.001)
	assert.Equal(t, 10, pipe.calls[0].MaxHearings)

	// next_run_at advanced past now, last run recorded as success.
	rows, err := schedules.ListSchedules(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "success", rows[0].LastRunStatus)
	require.NotNil(t, rows[0].NextRunAt)
	assert.True(t, rows[0].NextRunAt.After(now))
}

func TestTickDispatchesScraper(t *testing.T) {
	s, schedules, client, pipe, scrape := newTestScheduler(t)
	makeDue(t, client, schedules, services.CreateScheduleRequest{
		Name:          "hourly-scrape",
		Target:        "scraper",
		ScheduleType:  "interval",
		ScheduleValue: "1h",
		Config: map[string]any{
			"kinds":      []any{"rss_feed"},
			"state_code": "FL",
		},
	})

	s.Tick(context.Background(), time.Now().UTC())

	require.Len(t, scrape.calls, 1)
	assert.Empty(t, pipe.calls)
	assert.Equal(t, []string{"rss_feed"}, scrape.calls[0].Kinds)
	assert.Equal(t, "FL", scrape.calls[0].StateCode)
}

func TestTickAllTargetScrapesThenRuns(t *testing.T) {
	s, schedules, client, pipe, scrape := newTestScheduler(t)
	makeDue(t, client, schedules, services.CreateScheduleRequest{
		Name:          "full-cycle",
		Target:        "all",
		ScheduleType:  "interval",
		ScheduleValue: "6h",
	})

	s.Tick(context.Background(), time.Now().UTC())

	assert.Len(t, scrape.calls, 1)
	assert.Len(t, pipe.calls, 1)
}

func TestTickRecordsFailureAndStillAdvances(t *testing.T) {
	s, schedules, client, pipe, _ := newTestScheduler(t)
	pipe.err = errors.New("pipeline already running")
	makeDue(t, client, schedules, services.CreateScheduleRequest{
		Name:          "contended",
		Target:        "pipeline",
		ScheduleType:  "interval",
		ScheduleValue: "30m",
	})

	now := time.Now().UTC()
	s.Tick(context.Background(), now)

	rows, err := schedules.ListSchedules(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "error", rows[0].LastRunStatus)
	assert.Contains(t, rows[0].LastRunError, "already running")
	require.NotNil(t, rows[0].NextRunAt)
	assert.True(t, rows[0].NextRunAt.After(now))
}

func TestTickSkipsDisabledAndFutureSchedules(t *testing.T) {
	s, schedules, client, pipe, _ := newTestScheduler(t)

	disabled := makeDue(t, client, schedules, services.CreateScheduleRequest{
		Name: "disabled", Target: "pipeline", ScheduleType: "interval", ScheduleValue: "1h",
	})
	require.NoError(t, schedules.SetEnabled(context.Background(), disabled.ID, false))

	// Created with next_run_at in the future; never backdated.
	_, err := schedules.CreateSchedule(context.Background(), services.CreateScheduleRequest{
		Name: "future", Target: "pipeline", ScheduleType: "interval", ScheduleValue: "1h",
	})
	require.NoError(t, err)

	s.Tick(context.Background(), time.Now().UTC())
	assert.Empty(t, pipe.calls)
}

func TestStartStop(t *testing.T) {
	s, _, _, _, _ := newTestScheduler(t)
	s.interval = 10 * time.Millisecond

	s.Start(context.Background())
	time.Sleep(20 * time.Millisecond)
	s.Stop()

	// Stop on a stopped scheduler is a no-op.
	s.Stop()
}
