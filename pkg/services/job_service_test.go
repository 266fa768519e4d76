package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/canaryscope/canaryscope/ent/pipelinejob"
)

func TestJobLifecycle(t *testing.T) {
	client := newTestClient(t)
	src := createTestSource(t, client, "FL")
	h := createTestHearing(t, client, src.ID, "FL", "job-1")
	svc := NewJobService(client)
	ctx := context.Background()

	job, err := svc.StartJob(ctx, h.ID, "transcribe", 0)
	require.NoError(t, err)
	assert.Equal(t, pipelinejob.StatusRunning, job.Status)

	require.NoError(t, svc.CompleteJob(ctx, job.ID, 0.25, map[string]any{"provider": "groq"}))

	done, err := client.PipelineJob.Get(ctx, job.ID)
	require.NoError(t, err)
	assert.Equal(t, pipelinejob.StatusComplete, done.Status)
	assert.InDelta(t, 0.25, done.CostUsd, 0.001)
	require.NotNil(t, done.CompletedAt)
}

func TestFailedAttemptsBoundRetries(t *testing.T) {
	client := newTestClient(t)
	src := createTestSource(t, client, "FL")
	h := createTestHearing(t, client, src.ID, "FL", "job-2")
	svc := NewJobService(client)
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		job, err := svc.StartJob(ctx, h.ID, "analyze", i)
		require.NoError(t, err)
		require.NoError(t, svc.FailJob(ctx, job.ID, 0, errors.New("rate limited")))
	}
	// A failure on a different stage does not count.
	other, err := svc.StartJob(ctx, h.ID, "transcribe", 0)
	require.NoError(t, err)
	require.NoError(t, svc.FailJob(ctx, other.ID, 0.12, errors.New("no audio")))

	n, err := svc.FailedAttempts(ctx, h.ID, "analyze")
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	latest, err := svc.LatestJob(ctx, h.ID)
	require.NoError(t, err)
	assert.Equal(t, "transcribe", latest.Stage)
	require.NotNil(t, latest.ErrorMessage)
	assert.Equal(t, "no audio", *latest.ErrorMessage)
	// Spend on the failed attempt stays in the audit trail.
	assert.InDelta(t, 0.12, latest.CostUsd, 0.001)
}
