// Package cleanup provides data retention services: cached audio for
// finished hearings and old pipeline job rows.
package cleanup

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/canaryscope/canaryscope/pkg/config"
	"github.com/canaryscope/canaryscope/pkg/media"
	"github.com/canaryscope/canaryscope/pkg/services"
)

// sweepBatchSize bounds one retention query.
const sweepBatchSize = 500

// Service periodically enforces retention policies:
//   - Deletes cached audio for hearings that reached a terminal status
//     (complete, skipped, error) before the audio retention cutoff
//   - Prunes finished PipelineJob rows past the job retention cutoff
//
// All operations are idempotent.
type Service struct {
	cfg      config.RetentionConfig
	audioDir string
	hearings *services.HearingService
	jobs     *services.JobService
	logger   *slog.Logger

	cancel context.CancelFunc
	done   chan struct{}
}

// NewService creates a new cleanup service.
func NewService(cfg config.RetentionConfig, audioDir string, hearings *services.HearingService, jobs *services.JobService) *Service {
	return &Service{
		cfg:      cfg,
		audioDir: audioDir,
		hearings: hearings,
		jobs:     jobs,
		logger:   slog.Default().With("component", "cleanup"),
	}
}

// Start launches the background cleanup loop.
func (s *Service) Start(ctx context.Context) {
	if s.cancel != nil {
		return
	}
	ctx, s.cancel = context.WithCancel(ctx)
	s.done = make(chan struct{})

	go s.run(ctx)

	s.logger.Info("cleanup service started",
		"audio_retention_days", s.cfg.AudioRetentionDays,
		"job_retention_days", s.cfg.JobRetentionDays,
		"interval", s.cfg.CleanupInterval)
}

// Stop signals the cleanup loop to exit and waits for it to finish.
func (s *Service) Stop() {
	if s.cancel == nil {
		return
	}
	s.cancel()
	<-s.done
	s.logger.Info("cleanup service stopped")
}

func (s *Service) run(ctx context.Context) {
	defer close(s.done)

	s.RunAll(ctx)

	ticker := time.NewTicker(s.cfg.CleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.RunAll(ctx)
		}
	}
}

// RunAll performs one retention sweep.
func (s *Service) RunAll(ctx context.Context) {
	now := time.Now().UTC()
	s.pruneAudio(ctx, now)
	s.pruneJobs(ctx, now)
}

// pruneAudio removes cached audio files for hearings finished before
// the retention cutoff. A retention of zero days disables the sweep.
func (s *Service) pruneAudio(ctx context.Context, now time.Time) {
	if s.cfg.AudioRetentionDays <= 0 {
		return
	}
	cutoff := now.AddDate(0, 0, -s.cfg.AudioRetentionDays)

	rows, err := s.hearings.ListFinishedBefore(ctx, cutoff, sweepBatchSize)
	if err != nil {
		s.logger.Error("retention: listing finished hearings failed", "error", err)
		return
	}

	removed := 0
	for _, h := range rows {
		key := media.CacheKey(h.ExternalID, h.MediaURL, h.ID)
		path := media.FindCached(s.audioDir, h.StateCode, key)
		if path == "" {
			continue
		}
		if err := os.Remove(path); err != nil {
			s.logger.Warn("retention: removing cached audio failed", "path", path, "error", err)
			continue
		}
		removed++
	}
	if removed > 0 {
		s.logger.Info("retention: removed cached audio", "files", removed)
	}
}

// pruneJobs deletes finished pipeline jobs past the retention cutoff.
func (s *Service) pruneJobs(ctx context.Context, now time.Time) {
	if s.cfg.JobRetentionDays <= 0 {
		return
	}
	cutoff := now.AddDate(0, 0, -s.cfg.JobRetentionDays)

	n, err := s.jobs.PruneFinished(ctx, cutoff)
	if err != nil {
		s.logger.Error("retention: pruning pipeline jobs failed", "error", err)
		return
	}
	if n > 0 {
		s.logger.Info("retention: pruned pipeline jobs", "count", n)
	}
}
