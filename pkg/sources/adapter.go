// Package sources implements the adapter families that discover new
// hearings: video channels, meeting-archive calendars, RSS/Atom feeds,
// and state docket-catalogue APIs. Adapters never write to the
// database; the scraper upserts what they yield.
package sources

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/canaryscope/canaryscope/pkg/models"
)

// Adapter kind identifiers, matching the source table's kind enum.
const (
	KindVideoChannel = "video_channel"
	KindAdminMonitor = "admin_monitor"
	KindRSSFeed      = "rss_feed"
	KindAPIEndpoint  = "api_endpoint"
)

// SourceConfig is the slice of a source row an adapter needs.
type SourceConfig struct {
	SourceID  string
	StateCode string
	URL       string
	// Settings is the source's adapter-private configuration blob.
	Settings map[string]any
}

// Adapter lists available items from one source since the last check.
// Implementations are pure functions of (config, since).
type Adapter interface {
	Kind() string
	List(ctx context.Context, cfg SourceConfig, since *time.Time) ([]models.HearingCandidate, error)
}

// AdapterError wraps an adapter failure with enough identity for the
// scraper to isolate the fault to one source.
type AdapterError struct {
	SourceID string
	Kind     string
	Err      error
}

func (e *AdapterError) Error() string {
	return fmt.Sprintf("source %s (%s): %v", e.SourceID, e.Kind, e.Err)
}

func (e *AdapterError) Unwrap() error {
	return e.Err
}

// Registry dispatches by source kind.
type Registry struct {
	adapters map[string]Adapter
}

// NewRegistry builds a registry with the default adapter families.
func NewRegistry() *Registry {
	r := &Registry{adapters: make(map[string]Adapter)}
	r.Register(NewVideoAdapter("yt-dlp"))
	r.Register(NewCalendarAdapter())
	r.Register(NewFeedAdapter())
	return r
}

// Register adds or replaces the adapter for its kind.
func (r *Registry) Register(a Adapter) {
	r.adapters[a.Kind()] = a
}

// Lookup returns the adapter for a kind.
func (r *Registry) Lookup(kind string) (Adapter, error) {
	a, ok := r.adapters[kind]
	if !ok {
		return nil, fmt.Errorf("unknown source kind %q", kind)
	}
	return a, nil
}

// Kinds lists the registered kinds in stable order.
func (r *Registry) Kinds() []string {
	kinds := make([]string, 0, len(r.adapters))
	for k := range r.adapters {
		kinds = append(kinds, k)
	}
	sort.Strings(kinds)
	return kinds
}
