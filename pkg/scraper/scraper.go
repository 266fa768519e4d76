// Package scraper drives the source adapters and upserts what they
// discover. One run at a time per process; stop is cooperative and
// never interrupts mid-item.
package scraper

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/canaryscope/canaryscope/ent"
	"github.com/canaryscope/canaryscope/pkg/metrics"
	"github.com/canaryscope/canaryscope/pkg/models"
	"github.com/canaryscope/canaryscope/pkg/services"
	"github.com/canaryscope/canaryscope/pkg/sources"
)

// Run states.
const (
	StatusIdle      = "idle"
	StatusRunning   = "running"
	StatusStopping  = "stopping"
	StatusCompleted = "completed"
	StatusError     = "error"
)

// errorRingSize bounds the retained error tail; individual messages
// are capped at errorMaxLen.
const (
	errorRingSize = 20
	errorMaxLen   = 500
)

// ErrAlreadyRunning is returned when a run is requested while one is
// active.
var ErrAlreadyRunning = errors.New("scrape already running")

// Progress is a snapshot of the current or last run.
type Progress struct {
	Status           string   `json:"status"`
	CurrentSource    string   `json:"current_source,omitempty"`
	SourcesProcessed int      `json:"sources_processed"`
	ItemsFound       int      `json:"items_found"`
	NewHearings      int      `json:"new_hearings"`
	ExistingHearings int      `json:"existing_hearings"`
	Errors           int      `json:"errors"`
	LastErrors       []string `json:"last_errors,omitempty"`
	DryRun           bool     `json:"dry_run"`
}

// Scraper coordinates one scrape pass over the enabled sources.
type Scraper struct {
	registry   *sources.Registry
	sourceSvc  *services.SourceService
	hearingSvc *services.HearingService
	logger     *slog.Logger

	mu            sync.Mutex
	running       bool
	stopRequested bool
	progress      Progress
}

// New creates a Scraper.
func New(registry *sources.Registry, sourceSvc *services.SourceService, hearingSvc *services.HearingService) *Scraper {
	return &Scraper{
		registry:   registry,
		sourceSvc:  sourceSvc,
		hearingSvc: hearingSvc,
		logger:     slog.Default().With("component", "scraper"),
		progress:   Progress{Status: StatusIdle},
	}
}

// Start launches a scrape pass in the background, failing fast when
// one is already active.
func (s *Scraper) Start(filters models.ScrapeFilters) error {
	if err := s.begin(filters.DryRun); err != nil {
		return err
	}
	go func() {
		if err := s.runPass(context.Background(), filters); err != nil {
			s.logger.Error("scrape run failed", "error", err)
		}
	}()
	return nil
}

// Run executes one scrape pass synchronously. Only one run may be
// active per process.
func (s *Scraper) Run(ctx context.Context, filters models.ScrapeFilters) (Progress, error) {
	if err := s.begin(filters.DryRun); err != nil {
		return Progress{}, err
	}
	err := s.runPass(ctx, filters)
	return s.Progress(), err
}

func (s *Scraper) begin(dryRun bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.running {
		return ErrAlreadyRunning
	}
	s.running = true
	s.stopRequested = false
	s.progress = Progress{Status: StatusRunning, DryRun: dryRun}
	return nil
}

func (s *Scraper) runPass(ctx context.Context, filters models.ScrapeFilters) error {
	defer func() {
		s.mu.Lock()
		s.running = false
		s.progress.CurrentSource = ""
		if s.progress.Status == StatusRunning || s.progress.Status == StatusStopping {
			s.progress.Status = StatusCompleted
		}
		s.mu.Unlock()
	}()

	srcs, err := s.sourceSvc.ListEnabled(ctx, filters.Kinds, filters.StateCode)
	if err != nil {
		s.setStatus(StatusError)
		s.recordError(err)
		return fmt.Errorf("listing sources: %w", err)
	}

	s.logger.Info("scrape started", "sources", len(srcs), "dry_run", filters.DryRun)
	for _, src := range srcs {
		if s.stopWanted() {
			s.setStatus(StatusStopping)
			break
		}
		s.setCurrentSource(src.ID)
		s.scrapeSource(ctx, src, filters.DryRun)
		s.bumpSourcesProcessed()
	}

	final := s.Progress()
	s.logger.Info("scrape finished",
		"items_found", final.ItemsFound,
		"new_hearings", final.NewHearings,
		"existing_hearings", final.ExistingHearings,
		"errors", final.Errors)
	return nil
}

// RequestStop asks the current run to stop between items.
func (s *Scraper) RequestStop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.running {
		s.stopRequested = true
		s.progress.Status = StatusStopping
	}
}

// Progress returns a copy of the current snapshot.
func (s *Scraper) Progress() Progress {
	s.mu.Lock()
	defer s.mu.Unlock()
	snapshot := s.progress
	snapshot.LastErrors = append([]string(nil), s.progress.LastErrors...)
	return snapshot
}

// scrapeSource runs one adapter and commits its results. Failures are
// recorded on the source and do not affect other sources.
func (s *Scraper) scrapeSource(ctx context.Context, src *ent.Source, dryRun bool) {
	adapter, err := s.registry.Lookup(string(src.Kind))
	if err != nil {
		s.recordError(err)
		_ = s.sourceSvc.MarkFailed(ctx, src.ID, err)
		return
	}

	cfg := sources.SourceConfig{
		SourceID:  src.ID,
		StateCode: src.StateCode,
		URL:       src.URL,
		Settings:  src.Config,
	}
	candidates, err := adapter.List(ctx, cfg, src.LastCheckedAt)
	if err != nil {
		s.logger.Warn("source scrape failed", "source_id", src.ID, "error", err)
		s.recordError(err)
		_ = s.sourceSvc.MarkFailed(ctx, src.ID, err)
		return
	}

	s.addItemsFound(len(candidates))
	for _, candidate := range candidates {
		if s.stopWanted() {
			return
		}
		if dryRun {
			continue
		}
		_, created, err := s.hearingSvc.UpsertHearing(ctx, src.ID, src.StateCode, candidate)
		if err != nil {
			s.recordError(fmt.Errorf("upserting %q: %w", candidate.ExternalID, err))
			continue
		}
		s.countHearing(created)
	}

	if !dryRun {
		if err := s.sourceSvc.MarkChecked(ctx, src.ID, services.MaxCandidateDate(candidates)); err != nil {
			s.recordError(err)
		}
	}
}

func (s *Scraper) stopWanted() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stopRequested
}

func (s *Scraper) setStatus(status string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.progress.Status = status
}

func (s *Scraper) setCurrentSource(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.progress.CurrentSource = id
}

func (s *Scraper) bumpSourcesProcessed() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.progress.SourcesProcessed++
}

func (s *Scraper) addItemsFound(n int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.progress.ItemsFound += n
	metrics.ScrapeItemsFound.Add(float64(n))
}

func (s *Scraper) countHearing(created bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if created {
		s.progress.NewHearings++
		metrics.ScrapeNewHearings.Inc()
	} else {
		s.progress.ExistingHearings++
	}
}

func (s *Scraper) recordError(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.progress.Errors++
	metrics.ScrapeErrors.Inc()
	msg := err.Error()
	if len(msg) > errorMaxLen {
		msg = msg[:errorMaxLen]
	}
	s.progress.LastErrors = append(s.progress.LastErrors, msg)
	if len(s.progress.LastErrors) > errorRingSize {
		s.progress.LastErrors = s.progress.LastErrors[len(s.progress.LastErrors)-errorRingSize:]
	}
}
