// Package scheduler runs database-backed schedules: a polling loop
// that fires due schedules and dispatches them to the scraper and the
// pipeline orchestrator.
package scheduler

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/canaryscope/canaryscope/ent"
	"github.com/canaryscope/canaryscope/ent/pipelineschedule"
	"github.com/canaryscope/canaryscope/pkg/models"
	"github.com/canaryscope/canaryscope/pkg/pipeline"
	"github.com/canaryscope/canaryscope/pkg/scraper"
	"github.com/canaryscope/canaryscope/pkg/services"
)

// sleepChunk bounds how long Stop can be kept waiting by the
// inter-tick sleep.
const sleepChunk = time.Second

// PipelineRunner runs one synchronous pipeline pass.
type PipelineRunner interface {
	Run(ctx context.Context, filters models.PipelineFilters) (pipeline.Status, error)
}

// ScrapeRunner runs one synchronous scrape pass.
type ScrapeRunner interface {
	Run(ctx context.Context, filters models.ScrapeFilters) (scraper.Progress, error)
}

// Scheduler polls for due schedules and dispatches them. Runs execute
// synchronously inside the tick, so a long pipeline run delays later
// schedules rather than stacking concurrent runs.
type Scheduler struct {
	schedules *services.ScheduleService
	pipeline  PipelineRunner
	scraper   ScrapeRunner
	interval  time.Duration
	logger    *slog.Logger

	mu       sync.Mutex
	running  bool
	stopping bool
	done     chan struct{}
}

// New creates a Scheduler.
func New(schedules *services.ScheduleService, pipelineRunner PipelineRunner, scrapeRunner ScrapeRunner, interval time.Duration) *Scheduler {
	return &Scheduler{
		schedules: schedules,
		pipeline:  pipelineRunner,
		scraper:   scrapeRunner,
		interval:  interval,
		logger:    slog.Default().With("component", "scheduler"),
	}
}

// Start launches the polling loop. Calling Start on a running
// scheduler is a no-op.
func (s *Scheduler) Start(ctx context.Context) {
	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		return
	}
	s.running = true
	s.stopping = false
	s.done = make(chan struct{})
	s.mu.Unlock()

	s.logger.Info("scheduler started", "check_interval", s.interval)
	go s.loop(ctx)
}

// Stop halts the loop and waits for an in-flight tick to finish.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	if !s.running {
		s.mu.Unlock()
		return
	}
	s.stopping = true
	done := s.done
	s.mu.Unlock()

	<-done
	s.logger.Info("scheduler stopped")
}

func (s *Scheduler) loop(ctx context.Context) {
	defer func() {
		s.mu.Lock()
		s.running = false
		close(s.done)
		s.mu.Unlock()
	}()

	for {
		s.Tick(ctx, time.Now().UTC())
		if !s.sleep(ctx) {
			return
		}
	}
}

// sleep waits one check interval in small chunks so Stop and context
// cancellation take effect promptly. It reports whether to keep going.
func (s *Scheduler) sleep(ctx context.Context) bool {
	deadline := time.Now().Add(s.interval)
	for {
		if ctx.Err() != nil || s.stopWanted() {
			return false
		}
		remaining := time.Until(deadline)
		if remaining <= 0 {
			return true
		}
		if remaining > sleepChunk {
			remaining = sleepChunk
		}
		time.Sleep(remaining)
	}
}

func (s *Scheduler) stopWanted() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stopping
}

// Tick fires every schedule due at now. Each schedule's outcome is
// recorded and its next_run_at advanced regardless of success, so a
// failing schedule cannot wedge the loop.
func (s *Scheduler) Tick(ctx context.Context, now time.Time) {
	due, err := s.schedules.DueSchedules(ctx, now)
	if err != nil {
		s.logger.Error("due schedule query failed", "error", err)
		return
	}

	for _, schedule := range due {
		if ctx.Err() != nil || s.stopWanted() {
			return
		}
		runErr := s.dispatch(ctx, schedule)
		if runErr != nil {
			s.logger.Warn("scheduled run failed", "schedule", schedule.Name, "target", schedule.Target, "error", runErr)
		} else {
			s.logger.Info("scheduled run finished", "schedule", schedule.Name, "target", schedule.Target)
		}
		if err := s.schedules.RecordRun(ctx, schedule.ID, now, runErr); err != nil {
			s.logger.Error("recording schedule run failed", "schedule", schedule.Name, "error", err)
		}
	}
}

// dispatch runs the schedule's target. The "all" target scrapes first
// so freshly discovered hearings enter the same pipeline pass.
func (s *Scheduler) dispatch(ctx context.Context, schedule *ent.PipelineSchedule) error {
	switch schedule.Target {
	case pipelineschedule.TargetPipeline:
		_, err := s.pipeline.Run(ctx, pipelineFiltersFrom(schedule.Config))
		return err
	case pipelineschedule.TargetScraper:
		_, err := s.scraper.Run(ctx, scrapeFiltersFrom(schedule.Config))
		return err
	case pipelineschedule.TargetAll:
		_, scrapeErr := s.scraper.Run(ctx, scrapeFiltersFrom(schedule.Config))
		_, pipeErr := s.pipeline.Run(ctx, pipelineFiltersFrom(schedule.Config))
		return errors.Join(scrapeErr, pipeErr)
	default:
		return fmt.Errorf("unknown schedule target %q", schedule.Target)
	}
}

// pipelineFiltersFrom decodes the schedule's config blob. Unknown keys
// are ignored; JSON numbers arrive as float64.
func pipelineFiltersFrom(cfg map[string]any) models.PipelineFilters {
	var filters models.PipelineFilters
	filters.StateCodes = stringSlice(cfg["state_codes"])
	if v, ok := cfg["only_stage"].(string); ok {
		filters.OnlyStage = v
	}
	if v, ok := cfg["max_cost_usd"].(float64); ok {
		filters.MaxCostUSD = v
	}
	if v, ok := cfg["max_hearings"].(float64); ok {
		filters.MaxHearings = int(v)
	}
	return filters
}

func scrapeFiltersFrom(cfg map[string]any) models.ScrapeFilters {
	var filters models.ScrapeFilters
	filters.Kinds = stringSlice(cfg["kinds"])
	if v, ok := cfg["state_code"].(string); ok {
		filters.StateCode = v
	}
	if v, ok := cfg["dry_run"].(bool); ok {
		filters.DryRun = v
	}
	return filters
}

func stringSlice(v any) []string {
	items, ok := v.([]any)
	if !ok {
		return nil
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
	}
	return out
}
