package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/canaryscope/canaryscope/ent"
	"github.com/canaryscope/canaryscope/ent/hearing"
	"github.com/canaryscope/canaryscope/pkg/config"
	"github.com/canaryscope/canaryscope/pkg/metrics"
	"github.com/canaryscope/canaryscope/pkg/models"
	"github.com/canaryscope/canaryscope/pkg/services"
)

// Run states reported by Status.
const (
	StateIdle      = "idle"
	StateRunning   = "running"
	StateStopping  = "stopping"
	StatePaused    = "paused"
	StateCompleted = "completed"
)

// selectBatchSize bounds one selection query.
const selectBatchSize = 20

// ErrAlreadyRunning is returned when a run is requested while one is
// active.
var ErrAlreadyRunning = errors.New("pipeline already running")

// Status is a snapshot of the current or last run.
type Status struct {
	State            string  `json:"state"`
	CurrentHearingID string  `json:"current_hearing_id,omitempty"`
	CurrentStage     string  `json:"current_stage,omitempty"`
	HearingsTouched  int     `json:"hearings_touched"`
	StagesRun        int     `json:"stages_run"`
	Succeeded        int     `json:"succeeded"`
	Failed           int     `json:"failed"`
	Skipped          int     `json:"skipped"`
	Completed        int     `json:"completed"`
	CostUSD          float64 `json:"cost_usd"`
	LastError        string  `json:"last_error,omitempty"`
}

// Orchestrator selects actionable hearings and drives them through the
// stages, one hearing at a time. Retry bounds, job bookkeeping, cost
// accounting, and the terminal extracted to complete transition live
// here; everything else belongs to the stages.
type Orchestrator struct {
	hearings   *services.HearingService
	jobs       *services.JobService
	state      *services.StateService
	stages     map[string]Stage
	maxRetries int
	logger     *slog.Logger

	mu            sync.Mutex
	running       bool
	stopRequested bool
	status        Status
	cancel        context.CancelFunc
}

// NewOrchestrator creates an Orchestrator over the given stages.
func NewOrchestrator(hearings *services.HearingService, jobs *services.JobService, state *services.StateService, cfg config.PipelineConfig, stages ...Stage) *Orchestrator {
	byName := make(map[string]Stage, len(stages))
	for _, stage := range stages {
		byName[stage.Name()] = stage
	}
	return &Orchestrator{
		hearings:   hearings,
		jobs:       jobs,
		state:      state,
		stages:     byName,
		maxRetries: cfg.MaxRetries,
		logger:     slog.Default().With("component", "pipeline"),
		status:     Status{State: StateIdle},
	}
}

// Start launches a run in the background. Only one run may be active
// per process.
func (o *Orchestrator) Start(filters models.PipelineFilters) error {
	if err := o.begin(); err != nil {
		return err
	}
	ctx, cancel := context.WithCancel(context.Background())
	o.mu.Lock()
	o.cancel = cancel
	o.mu.Unlock()

	go func() {
		defer cancel()
		o.run(ctx, filters)
		o.finish()
	}()
	return nil
}

// Run executes a run synchronously and returns the final snapshot.
func (o *Orchestrator) Run(ctx context.Context, filters models.PipelineFilters) (Status, error) {
	if err := o.begin(); err != nil {
		return Status{}, err
	}
	o.run(ctx, filters)
	o.finish()
	return o.Status(), nil
}

// Stop asks the current run to stop after the in-flight stage.
func (o *Orchestrator) Stop() {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.running {
		o.stopRequested = true
		o.status.State = StateStopping
	}
}

// Pause persists the pause flag; the current run halts before the next
// hearing and later runs refuse to process until Resume.
func (o *Orchestrator) Pause(ctx context.Context) error {
	return o.state.SetPaused(ctx, true)
}

// Resume clears the pause flag.
func (o *Orchestrator) Resume(ctx context.Context) error {
	return o.state.SetPaused(ctx, false)
}

// Status returns a copy of the current snapshot.
func (o *Orchestrator) Status() Status {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.status
}

// RunStage executes a single named stage against one hearing,
// synchronously, with full job bookkeeping. The stage's own status
// preconditions are not checked; this is the manual override surface.
func (o *Orchestrator) RunStage(ctx context.Context, hearingID, stageName string) (StageResult, error) {
	stage, ok := o.stages[stageName]
	if !ok {
		return StageResult{}, fmt.Errorf("%w: unknown stage %q", services.ErrInvalidInput, stageName)
	}
	h, err := o.hearings.GetHearing(ctx, hearingID, false)
	if err != nil {
		return StageResult{}, err
	}
	return o.executeStage(ctx, h, stage), nil
}

func (o *Orchestrator) begin() error {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.running {
		return ErrAlreadyRunning
	}
	o.running = true
	o.stopRequested = false
	o.status = Status{State: StateRunning}
	metrics.PipelineRunning.Set(1)
	return nil
}

func (o *Orchestrator) finish() {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.running = false
	o.cancel = nil
	o.status.CurrentHearingID = ""
	o.status.CurrentStage = ""
	if o.status.State == StateRunning || o.status.State == StateStopping {
		o.status.State = StateCompleted
	}
	metrics.PipelineRunning.Set(0)
}

// run repeatedly selects actionable hearings and processes them until
// none remain, a cap is hit, or the run is stopped or paused. A pass
// that processes nothing ends the run; that covers both an empty
// backlog and a backlog fully excluded by the only_stage filter.
func (o *Orchestrator) run(ctx context.Context, filters models.PipelineFilters) {
	o.logger.Info("pipeline run started",
		"state_codes", filters.StateCodes,
		"only_stage", filters.OnlyStage,
		"max_cost_usd", filters.MaxCostUSD,
		"max_hearings", filters.MaxHearings)

	touched := make(map[string]struct{})
	for {
		if o.haltWanted(ctx) {
			break
		}

		batch, err := o.hearings.ListByStatus(ctx, actionableStatuses, filters.StateCodes, selectBatchSize)
		if err != nil {
			o.setLastError(err)
			o.logger.Error("hearing selection failed", "error", err)
			break
		}
		if len(batch) == 0 {
			break
		}

		processed := 0
		for _, h := range batch {
			if o.haltWanted(ctx) {
				break
			}
			if o.capsReached(filters, touched, h.ID) {
				o.logger.Info("run cap reached", "cost_usd", o.Status().CostUSD, "hearings", len(touched))
				o.requestStop()
				break
			}
			if o.processHearing(ctx, h, filters, touched) {
				processed++
			}
		}
		if processed == 0 {
			break
		}
	}

	final := o.Status()
	o.logger.Info("pipeline run finished",
		"hearings_touched", final.HearingsTouched,
		"stages_run", final.StagesRun,
		"succeeded", final.Succeeded,
		"failed", final.Failed,
		"skipped", final.Skipped,
		"completed", final.Completed,
		"cost_usd", final.CostUSD)
}

// processHearing runs one stage (or the terminal transition) for one
// hearing. It reports whether any work happened so the outer loop can
// detect a fully-filtered backlog.
func (o *Orchestrator) processHearing(ctx context.Context, h *ent.Hearing, filters models.PipelineFilters, touched map[string]struct{}) bool {
	if h.Status == hearing.StatusExtracted {
		if filters.OnlyStage != "" {
			return false
		}
		if err := o.hearings.SetStatus(ctx, h.ID, hearing.StatusComplete); err != nil {
			o.setLastError(err)
			return false
		}
		o.noteTouched(touched, h.ID)
		o.bumpCompleted()
		metrics.HearingsCompleted.Inc()
		o.logger.Info("hearing complete", "hearing_id", h.ID)
		return true
	}

	stageName, ok := stageForStatus[h.Status]
	if !ok {
		return false
	}
	if filters.OnlyStage != "" && stageName != filters.OnlyStage {
		return false
	}
	stage := o.stages[stageName]
	if stage == nil {
		o.setLastError(fmt.Errorf("no stage registered for %q", stageName))
		return false
	}

	attempts, err := o.jobs.FailedAttempts(ctx, h.ID, stageName)
	if err != nil {
		o.setLastError(err)
		return false
	}
	if attempts >= o.maxRetries {
		o.logger.Warn("retry budget exhausted", "hearing_id", h.ID, "stage", stageName, "attempts", attempts)
		if err := o.hearings.SetStatus(ctx, h.ID, hearing.StatusError); err != nil {
			o.setLastError(err)
			return false
		}
		o.noteTouched(touched, h.ID)
		o.bumpFailed()
		return true
	}

	o.setCurrent(h.ID, stageName)
	o.noteTouched(touched, h.ID)
	o.executeStage(ctx, h, stage)
	o.clearCurrent()
	return true
}

// executeStage runs one stage with job bookkeeping and applies the
// result to the hearing: skip and permanent failures move the status,
// transient failures leave it for reselection.
func (o *Orchestrator) executeStage(ctx context.Context, h *ent.Hearing, stage Stage) StageResult {
	attempts, err := o.jobs.FailedAttempts(ctx, h.ID, stage.Name())
	if err != nil {
		o.setLastError(err)
		attempts = 0
	}
	job, err := o.jobs.StartJob(ctx, h.ID, stage.Name(), attempts)
	if err != nil {
		o.setLastError(err)
		return failure(err, true)
	}

	start := time.Now()
	result := stage.Run(ctx, h)
	elapsed := time.Since(start)
	metrics.StageDuration.WithLabelValues(stage.Name()).Observe(elapsed.Seconds())
	metrics.StageCost.WithLabelValues(stage.Name()).Add(result.CostUSD)
	o.addCost(result.CostUSD)
	o.bumpStagesRun()

	switch {
	case result.Success:
		metrics.StageRuns.WithLabelValues(stage.Name(), "success").Inc()
		if err := o.jobs.CompleteJob(ctx, job.ID, result.CostUSD, result.Outputs); err != nil {
			o.setLastError(err)
		}
		o.bumpSucceeded()
		o.logger.Info("stage succeeded",
			"hearing_id", h.ID, "stage", stage.Name(),
			"duration", elapsed.Round(time.Millisecond), "cost_usd", result.CostUSD)

	case result.SkipRemaining:
		metrics.StageRuns.WithLabelValues(stage.Name(), "skipped").Inc()
		if err := o.jobs.FailJob(ctx, job.ID, result.CostUSD, result.Err); err != nil {
			o.setLastError(err)
		}
		if err := o.hearings.SetStatus(ctx, h.ID, hearing.StatusSkipped); err != nil {
			o.setLastError(err)
		}
		o.bumpSkipped()
		o.logger.Info("hearing skipped", "hearing_id", h.ID, "stage", stage.Name(), "reason", result.Err)

	default:
		metrics.StageRuns.WithLabelValues(stage.Name(), "failure").Inc()
		if err := o.jobs.FailJob(ctx, job.ID, result.CostUSD, result.Err); err != nil {
			o.setLastError(err)
		}
		o.setLastError(result.Err)
		permanent := !result.ShouldRetry || attempts+1 >= o.maxRetries
		if permanent {
			if err := o.hearings.SetStatus(ctx, h.ID, hearing.StatusError); err != nil {
				o.setLastError(err)
			}
		}
		o.bumpFailed()
		o.logger.Warn("stage failed",
			"hearing_id", h.ID, "stage", stage.Name(),
			"attempt", attempts+1, "permanent", permanent, "error", result.Err)
	}
	return result
}

// haltWanted checks every reason to stop processing: context
// cancellation, an explicit stop, or the persisted pause flag.
func (o *Orchestrator) haltWanted(ctx context.Context) bool {
	if ctx.Err() != nil {
		return true
	}
	o.mu.Lock()
	stop := o.stopRequested
	o.mu.Unlock()
	if stop {
		return true
	}

	paused, err := o.state.IsPaused(ctx)
	if err != nil {
		o.setLastError(err)
		return false
	}
	if paused {
		o.mu.Lock()
		o.status.State = StatePaused
		o.mu.Unlock()
		return true
	}
	return false
}

func (o *Orchestrator) capsReached(filters models.PipelineFilters, touched map[string]struct{}, nextID string) bool {
	o.mu.Lock()
	cost := o.status.CostUSD
	o.mu.Unlock()
	if filters.MaxCostUSD > 0 && cost >= filters.MaxCostUSD {
		return true
	}
	if filters.MaxHearings > 0 {
		if _, seen := touched[nextID]; !seen && len(touched) >= filters.MaxHearings {
			return true
		}
	}
	return false
}

func (o *Orchestrator) requestStop() {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.stopRequested = true
}

func (o *Orchestrator) noteTouched(touched map[string]struct{}, id string) {
	if _, seen := touched[id]; seen {
		return
	}
	touched[id] = struct{}{}
	o.mu.Lock()
	o.status.HearingsTouched = len(touched)
	o.mu.Unlock()
}

func (o *Orchestrator) setCurrent(hearingID, stage string) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.status.CurrentHearingID = hearingID
	o.status.CurrentStage = stage
}

func (o *Orchestrator) clearCurrent() {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.status.CurrentHearingID = ""
	o.status.CurrentStage = ""
}

func (o *Orchestrator) setLastError(err error) {
	if err == nil {
		return
	}
	o.mu.Lock()
	defer o.mu.Unlock()
	o.status.LastError = err.Error()
}

func (o *Orchestrator) addCost(cost float64) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.status.CostUSD += cost
}

func (o *Orchestrator) bumpStagesRun() {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.status.StagesRun++
}

func (o *Orchestrator) bumpSucceeded() {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.status.Succeeded++
}

func (o *Orchestrator) bumpFailed() {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.status.Failed++
}

func (o *Orchestrator) bumpSkipped() {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.status.Skipped++
}

func (o *Orchestrator) bumpCompleted() {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.status.Completed++
}
