package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateScheduleValue(t *testing.T) {
	tests := []struct {
		scheduleType string
		value        string
		ok           bool
	}{
		{"interval", "30m", true},
		{"interval", "2h", true},
		{"interval", "1d", true},
		{"interval", "30s", false},
		{"interval", "m30", false},
		{"daily", "06:00", true},
		{"daily", "23:59", true},
		{"daily", "24:00", false},
		{"daily", "12:60", false},
		{"daily", "noon", false},
		{"cron", "0 6 * * 1", true},
		{"cron", "every day", false},
		{"weekly", "1", false},
	}

	for _, tt := range tests {
		t.Run(tt.scheduleType+"/"+tt.value, func(t *testing.T) {
			err := ValidateScheduleValue(tt.scheduleType, tt.value)
			if tt.ok {
				assert.NoError(t, err)
			} else {
				assert.True(t, IsValidationError(err))
			}
		})
	}
}

func TestNextRunInterval(t *testing.T) {
	from := time.Date(2026, 1, 7, 10, 0, 0, 0, time.UTC)

	next, err := NextRun("interval", "30m", from)
	require.NoError(t, err)
	assert.Equal(t, from.Add(30*time.Minute), next)

	next, err = NextRun("interval", "1d", from)
	require.NoError(t, err)
	assert.Equal(t, from.Add(24*time.Hour), next)
}

func TestNextRunDailyStrictlyAfter(t *testing.T) {
	// Before today's firing time → today.
	from := time.Date(2026, 1, 7, 5, 0, 0, 0, time.UTC)
	next, err := NextRun("daily", "06:30", from)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 1, 7, 6, 30, 0, 0, time.UTC), next)

	// Exactly at the firing time → tomorrow (strictly after).
	from = time.Date(2026, 1, 7, 6, 30, 0, 0, time.UTC)
	next, err = NextRun("daily", "06:30", from)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 1, 8, 6, 30, 0, 0, time.UTC), next)
}

func TestNextRunCron(t *testing.T) {
	from := time.Date(2026, 1, 7, 10, 0, 0, 0, time.UTC) // a Wednesday
	next, err := NextRun("cron", "0 6 * * 1", from)      // Mondays 06:00
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 1, 12, 6, 0, 0, 0, time.UTC), next)
}

func TestScheduleLifecycle(t *testing.T) {
	client := newTestClient(t)
	svc := NewScheduleService(client)
	ctx := context.Background()

	schedule, err := svc.CreateSchedule(ctx, CreateScheduleRequest{
		Name:          "nightly-pipeline",
		Target:        "pipeline",
		ScheduleType:  "daily",
		ScheduleValue: "02:00",
		Config:        map[string]any{"max_hearings": 10},
	})
	require.NoError(t, err)
	require.NotNil(t, schedule.NextRunAt)

	// Duplicate names are rejected.
	_, err = svc.CreateSchedule(ctx, CreateScheduleRequest{
		Name:          "nightly-pipeline",
		Target:        "pipeline",
		ScheduleType:  "interval",
		ScheduleValue: "1h",
	})
	assert.ErrorIs(t, err, ErrAlreadyExists)

	// Not due yet when next_run_at is in the future.
	due, err := svc.DueSchedules(ctx, time.Now().UTC())
	require.NoError(t, err)
	assert.Empty(t, due)

	// Force it due and pick it up.
	require.NoError(t, client.PipelineSchedule.UpdateOneID(schedule.ID).
		SetNextRunAt(time.Now().UTC().Add(-time.Minute)).Exec(ctx))
	due, err = svc.DueSchedules(ctx, time.Now().UTC())
	require.NoError(t, err)
	require.Len(t, due, 1)

	// A failed run stores the truncated error and reschedules.
	ranAt := time.Now().UTC()
	require.NoError(t, svc.RecordRun(ctx, schedule.ID, ranAt, errors.New("scrape blew up")))

	reloaded, err := client.PipelineSchedule.Get(ctx, schedule.ID)
	require.NoError(t, err)
	assert.Equal(t, "error", reloaded.LastRunStatus)
	assert.Equal(t, "scrape blew up", reloaded.LastRunError)
	require.NotNil(t, reloaded.NextRunAt)
	assert.True(t, reloaded.NextRunAt.After(ranAt))

	// Disabled schedules never come due.
	require.NoError(t, svc.SetEnabled(ctx, schedule.ID, false))
	require.NoError(t, client.PipelineSchedule.UpdateOneID(schedule.ID).
		SetNextRunAt(time.Now().UTC().Add(-time.Minute)).Exec(ctx))
	due, err = svc.DueSchedules(ctx, time.Now().UTC())
	require.NoError(t, err)
	assert.Empty(t, due)

	require.NoError(t, svc.DeleteSchedule(ctx, schedule.ID))
	assert.ErrorIs(t, svc.DeleteSchedule(ctx, schedule.ID), ErrNotFound)
}

func TestCreateScheduleRejectsBadValue(t *testing.T) {
	client := newTestClient(t)
	_, err := NewScheduleService(client).CreateSchedule(context.Background(), CreateScheduleRequest{
		Name:          "bad",
		Target:        "scraper",
		ScheduleType:  "interval",
		ScheduleValue: "soon",
	})
	assert.True(t, IsValidationError(err))
}
