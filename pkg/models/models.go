// Package models holds the plain data types shared across adapters,
// orchestrators, and the API layer.
package models

import "time"

// HearingCandidate is the uniform record every source adapter yields.
// Adapters never touch the database; the scraper upserts candidates.
type HearingCandidate struct {
	ExternalID  string
	Title       string
	Description string
	Date        time.Time
	MediaURL    string
	// DurationSeconds is 0 when the source does not report it.
	DurationSeconds int
	// TypeHint is the source's best guess at the hearing type
	// (e.g. "agenda conference", "workshop").
	TypeHint   string
	Categories []string
}

// DocketRecord is a catalogue entry returned by a state commission's
// public search API, destined for the known-docket catalogue.
type DocketRecord struct {
	StateCode    string
	DocketNumber string
	Title        string
	DocketType   string
	Industry     string
	Status       string
	FilingDate   *time.Time
	Parties      []string
}

// ScrapeFilters narrows one scraper run.
type ScrapeFilters struct {
	// Kinds restricts which adapter families run; empty means all.
	Kinds []string
	// StateCode restricts to one state; empty means all.
	StateCode string
	// DryRun lists candidates without writing hearings.
	DryRun bool
}

// PipelineFilters narrows one orchestrator run.
type PipelineFilters struct {
	// StateCodes restricts processing to a state subset; empty means all.
	StateCodes []string
	// OnlyStage runs exactly one named stage per hearing then stops.
	OnlyStage string
	// MaxCostUSD stops the run once accumulated stage cost exceeds it.
	// Zero means unbounded.
	MaxCostUSD float64
	// MaxHearings bounds how many hearings one run touches. Zero means
	// unbounded.
	MaxHearings int
}
