// Package metrics registers the Prometheus collectors shared by the
// scraper and the pipeline orchestrator.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// StageRuns counts stage executions by stage and outcome
	// (success, failure, skipped).
	StageRuns = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "canaryscope_stage_runs_total",
		Help: "Pipeline stage executions by stage and outcome.",
	}, []string{"stage", "outcome"})

	// StageDuration observes wall-clock seconds per stage execution.
	StageDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "canaryscope_stage_duration_seconds",
		Help:    "Wall-clock duration of pipeline stage executions.",
		Buckets: prometheus.ExponentialBuckets(1, 2, 14),
	}, []string{"stage"})

	// StageCost accumulates provider spend in USD per stage.
	StageCost = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "canaryscope_stage_cost_usd_total",
		Help: "Accumulated provider cost in USD by stage.",
	}, []string{"stage"})

	// HearingsCompleted counts hearings that reached the complete status.
	HearingsCompleted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "canaryscope_hearings_completed_total",
		Help: "Hearings that finished the full pipeline.",
	})

	// PipelineRunning is 1 while a pipeline run is active.
	PipelineRunning = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "canaryscope_pipeline_running",
		Help: "Whether a pipeline run is currently active.",
	})

	// ScrapeItemsFound counts candidates returned by source adapters.
	ScrapeItemsFound = promauto.NewCounter(prometheus.CounterOpts{
		Name: "canaryscope_scrape_items_found_total",
		Help: "Hearing candidates returned by source adapters.",
	})

	// ScrapeNewHearings counts newly discovered hearings.
	ScrapeNewHearings = promauto.NewCounter(prometheus.CounterOpts{
		Name: "canaryscope_scrape_new_hearings_total",
		Help: "Hearings created by scrape runs.",
	})

	// ScrapeErrors counts errors recorded during scrape runs.
	ScrapeErrors = promauto.NewCounter(prometheus.CounterOpts{
		Name: "canaryscope_scrape_errors_total",
		Help: "Errors recorded during scrape runs.",
	})
)

// Handler returns the HTTP handler serving the default registry.
func Handler() http.Handler {
	return promhttp.Handler()
}
