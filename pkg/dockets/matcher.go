package dockets

import (
	"strings"
	"time"

	"github.com/agnivade/levenshtein"
)

// Fuzzy-match thresholds on the 0–100 Levenshtein-ratio scale.
const (
	// fuzzyCandidateScore is the minimum ratio for a fuzzy match to be
	// considered at all.
	fuzzyCandidateScore = 60
	// correctionDistance is the maximum edit distance for a correction
	// suggestion on review/rejected candidates.
	correctionDistance = 2
)

// MatchType classifies how a candidate was resolved against the
// catalogue.
type MatchType string

// Match types.
const (
	MatchExact MatchType = "exact"
	MatchFuzzy MatchType = "fuzzy"
	MatchNone  MatchType = "none"
)

// CatalogEntry is the slice of a KnownDocket the matcher needs.
type CatalogEntry struct {
	ID           string
	NormalizedID string
	StateCode    string
	FilingDate   *time.Time
}

// MatchResult is the outcome of catalogue matching for one candidate.
type MatchResult struct {
	Type       MatchType
	Score      float64 // 100 for exact, ratio for fuzzy, 0 for none
	KnownID    string  // matched KnownDocket entity id, empty for none
	FuzzyScore float64 // raw fuzzy ratio, 0 unless fuzzy attempted
}

// Matcher resolves normalized docket ids against an in-memory snapshot
// of the KnownDocket catalogue.
type Matcher struct {
	byNormalized map[string]CatalogEntry
	byState      map[string][]CatalogEntry
}

// NewMatcher indexes the catalogue snapshot.
func NewMatcher(entries []CatalogEntry) *Matcher {
	m := &Matcher{
		byNormalized: make(map[string]CatalogEntry, len(entries)),
		byState:      make(map[string][]CatalogEntry),
	}
	for _, e := range entries {
		m.byNormalized[e.NormalizedID] = e
		m.byState[e.StateCode] = append(m.byState[e.StateCode], e)
	}
	return m
}

// Ratio computes the Levenshtein ratio of two strings on a 0–100
// scale: 100·(1 − distance/max(len)). This is the scale all
// thresholds in this package and in entity linking are defined on.
func Ratio(a, b string) float64 {
	if a == b {
		return 100
	}
	maxLen := len(a)
	if len(b) > maxLen {
		maxLen = len(b)
	}
	if maxLen == 0 {
		return 100
	}
	dist := levenshtein.ComputeDistance(a, b)
	return 100 * (1 - float64(dist)/float64(maxLen))
}

// Match resolves a normalized id. Exact catalogue hits score 100;
// otherwise the best fuzzy match within the candidate's state wins,
// ties broken by more recent filing date. Ratios below the candidate
// floor yield MatchNone.
func (m *Matcher) Match(stateCode, normalizedID string) MatchResult {
	if entry, ok := m.byNormalized[normalizedID]; ok {
		return MatchResult{Type: MatchExact, Score: 100, KnownID: entry.ID}
	}

	var best CatalogEntry
	var bestScore float64
	for _, entry := range m.byState[strings.ToUpper(stateCode)] {
		score := Ratio(normalizedID, entry.NormalizedID)
		if score > bestScore || (score == bestScore && moreRecent(entry, best)) {
			best = entry
			bestScore = score
		}
	}

	if bestScore >= fuzzyCandidateScore {
		return MatchResult{Type: MatchFuzzy, Score: bestScore, KnownID: best.ID, FuzzyScore: bestScore}
	}
	return MatchResult{Type: MatchNone, FuzzyScore: bestScore}
}

// SuggestCorrection proposes the nearest catalogue entry within a
// small edit distance of the normalized form, for reviewer tooling.
// Returns empty when nothing is close enough.
func (m *Matcher) SuggestCorrection(stateCode, normalizedID string) string {
	bestDist := correctionDistance + 1
	var suggestion string
	for _, entry := range m.byState[strings.ToUpper(stateCode)] {
		dist := levenshtein.ComputeDistance(normalizedID, entry.NormalizedID)
		if dist < bestDist {
			bestDist = dist
			suggestion = entry.NormalizedID
		}
	}
	if bestDist <= correctionDistance {
		return suggestion
	}
	return ""
}

func moreRecent(a, b CatalogEntry) bool {
	if a.FilingDate == nil {
		return false
	}
	if b.FilingDate == nil {
		return true
	}
	return a.FilingDate.After(*b.FilingDate)
}
