package cleanup

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/canaryscope/canaryscope/ent"
	"github.com/canaryscope/canaryscope/ent/hearing"
	"github.com/canaryscope/canaryscope/pkg/config"
	"github.com/canaryscope/canaryscope/pkg/media"
	"github.com/canaryscope/canaryscope/pkg/models"
	"github.com/canaryscope/canaryscope/pkg/services"
	"github.com/canaryscope/canaryscope/pkg/sources"
	testdb "github.com/canaryscope/canaryscope/test/database"
)

type cleanupFixture struct {
	client   *ent.Client
	hearings *services.HearingService
	jobs     *services.JobService
	audioDir string
	service  *Service
}

func newCleanupFixture(t *testing.T) *cleanupFixture {
	t.Helper()
	client := testdb.NewTestClient(t).Client
	hearings := services.NewHearingService(client)
	jobs := services.NewJobService(client)
	audioDir := t.TempDir()
	cfg := config.RetentionConfig{
		AudioRetentionDays: 7,
		JobRetentionDays:   30,
		CleanupInterval:    time.Hour,
	}
	return &cleanupFixture{
		client:   client,
		hearings: hearings,
		jobs:     jobs,
		audioDir: audioDir,
		service:  NewService(cfg, audioDir, hearings, jobs),
	}
}

// finishedHearing creates a hearing in the given status with a
// backdated updated_at and a cached audio file.
func (f *cleanupFixture) finishedHearing(t *testing.T, externalID string, status hearing.Status, age time.Duration) *ent.Hearing {
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

	require.NoError(t, f.client.Hearing.UpdateOneID(h.ID).
		SetStatus(status).
		SetUpdatedAt(time.Now().UTC().Add(-age)).
		Exec(ctx))

	key := media.CacheKey(externalID, "", h.ID)
	path := media.CachePath(f.audioDir, "FL", key)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte("audio"), 0o644))
	return h
}

func TestPruneAudioRemovesOnlyExpired(t *testing.T) {
	f := newCleanupFixture(t)

	old := f.finishedHearing(t, "old-done", hearing.StatusComplete, 10*24*time.Hour)
	recent := f.finishedHearing(t, "recent-done", hearing.StatusComplete, 24*time.Hour)
	skipped := f.finishedHearing(t, "old-skipped", hearing.StatusSkipped, 10*24*time.Hour)

	f.service.RunAll(context.Background())

	assert.Empty(t, media.FindCached(f.audioDir, "FL", media.CacheKey("old-done", "", old.ID)))
	assert.Empty(t, media.FindCached(f.audioDir, "FL", media.CacheKey("old-skipped", "", skipped.ID)))
	assert.NotEmpty(t, media.FindCached(f.audioDir, "FL", media.CacheKey("recent-done", "", recent.ID)))
}

func TestPruneAudioIgnoresActiveHearings(t *testing.T) {
	f := newCleanupFixture(t)
	active := f.finishedHearing(t, "still-working", hearing.StatusTranscribing, 10*24*time.Hour)

	f.service.RunAll(context.Background())

	assert.NotEmpty(t, media.FindCached(f.audioDir, "FL", media.CacheKey("still-working", "", active.ID)))
}

func TestPruneJobsDeletesOnlyOldFinished(t *testing.T) {
	f := newCleanupFixture(t)
	ctx := context.Background()
	h := f.finishedHearing(t, "jobs", hearing.StatusComplete, time.Hour)

	oldDone, err := f.jobs.StartJob(ctx, h.ID, "transcribe", 0)
	require.NoError(t, err)
	require.NoError(t, f.jobs.CompleteJob(ctx, oldDone.ID, 0, nil))
	require.NoError(t, f.client.PipelineJob.UpdateOneID(oldDone.ID).
		SetCompletedAt(time.Now().UTC().Add(-60*24*time.Hour)).
		Exec(ctx))

	// Running jobs have no completed_at and are never pruned.
	running, err := f.jobs.StartJob(ctx, h.ID, "analyze", 0)
	require.NoError(t, err)

	recent, err := f.jobs.StartJob(ctx, h.ID, "extract", 0)
	require.NoError(t, err)
	require.NoError(t, f.jobs.CompleteJob(ctx, recent.ID, 0, nil))

	f.service.RunAll(ctx)

	_, err = f.client.PipelineJob.Get(ctx, oldDone.ID)
	assert.True(t, ent.IsNotFound(err))

	_, err = f.client.PipelineJob.Get(ctx, running.ID)
	assert.NoError(t, err)

	_, err = f.client.PipelineJob.Get(ctx, recent.ID)
	assert.NoError(t, err)
}

func TestStartStopIdempotent(t *testing.T) {
	f := newCleanupFixture(t)
	f.service.Start(context.Background())
	f.service.Stop()
	f.service.Stop()
}
