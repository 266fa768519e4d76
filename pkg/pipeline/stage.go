// Package pipeline owns the hearing state machine: stage selection,
// job bookkeeping, retry bounds, and run accounting. Stages do the
// work and commit their own artifact+status transitions; the
// orchestrator never re-interprets a stage's retry decision.
package pipeline

import (
	"context"

	"github.com/canaryscope/canaryscope/ent"
	"github.com/canaryscope/canaryscope/ent/hearing"
)

// Stage names.
const (
	StageDownload   = "download"
	StageTranscribe = "transcribe"
	StageAnalyze    = "analyze"
	StageExtract    = "extract"
)

// StageResult reports one stage execution.
type StageResult struct {
	Success bool
	Err     error
	CostUSD float64
	// ShouldRetry marks transient failures; the orchestrator reselects
	// the hearing next pass until the retry budget is spent.
	ShouldRetry bool
	// SkipRemaining short-circuits the rest of the pipeline; the
	// hearing is marked skipped instead of advancing.
	SkipRemaining bool
	// Outputs are recorded on the PipelineJob for observability.
	Outputs map[string]any
}

// failure builds a failed result.
func failure(err error, retry bool) StageResult {
	return StageResult{Err: err, ShouldRetry: retry}
}

// Stage is one unit of pipeline work. On success the stage has already
// advanced the hearing's status (atomically with its artifacts, when it
// has any).
type Stage interface {
	Name() string
	Run(ctx context.Context, h *ent.Hearing) StageResult
}

// stageForStatus maps an actionable hearing status to the stage that
// handles it. Working statuses map to their own stage so a crash
// mid-stage is reselected on the next pass.
var stageForStatus = map[hearing.Status]string{
	hearing.StatusDiscovered:   StageDownload,
	hearing.StatusDownloading:  StageDownload,
	hearing.StatusTranscribing: StageTranscribe,
	hearing.StatusTranscribed:  StageAnalyze,
	hearing.StatusAnalyzing:    StageAnalyze,
	hearing.StatusAnalyzed:     StageExtract,
	hearing.StatusExtracting:   StageExtract,
}

// actionableStatuses are the statuses the orchestrator selects on,
// including extracted which only needs the terminal bookkeeping step.
var actionableStatuses = []hearing.Status{
	hearing.StatusDiscovered,
	hearing.StatusDownloading,
	hearing.StatusTranscribing,
	hearing.StatusTranscribed,
	hearing.StatusAnalyzing,
	hearing.StatusAnalyzed,
	hearing.StatusExtracting,
	hearing.StatusExtracted,
}
