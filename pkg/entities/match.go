// Package entities canonicalizes LLM-extracted utility names and topic
// tags against catalogue records, with fuzzy fallback and a review
// gate mirroring docket linking.
package entities

import (
	"strings"

	"github.com/canaryscope/canaryscope/pkg/dockets"
)

// Per-kind thresholds on the 0–100 Levenshtein-ratio scale.
const (
	UtilityAcceptThreshold = 85
	UtilityReviewThreshold = 70
	TopicAcceptThreshold   = 80
	TopicReviewThreshold   = 50
)

// Confidence boosts.
const (
	confidenceWeight   = 0.8
	boostApplicantRole = 10
	boostHighRelevance = 5
)

// Canonical is the slice of a catalogue record the matcher needs.
type Canonical struct {
	ID             string
	NormalizedName string
	Aliases        []string
}

// MatchOutcome is the result of canonicalizing one extracted name.
type MatchOutcome struct {
	CanonicalID string // empty when unmatched
	Score       float64
	Confidence  float64
	NeedsReview bool
}

// Normalize lowercases and trims an extracted entity name.
func Normalize(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// MatchName resolves a raw name against canonical records: exact match
// on name or alias first, then fuzzy with the given thresholds. boost
// is the caller's role/relevance corroboration.
func MatchName(raw string, records []Canonical, acceptThreshold, reviewThreshold, boost float64) MatchOutcome {
	normalized := Normalize(raw)

	for _, rec := range records {
		if rec.NormalizedName == normalized {
			return outcome(rec.ID, 100, boost, acceptThreshold)
		}
		for _, alias := range rec.Aliases {
			if Normalize(alias) == normalized {
				return outcome(rec.ID, 100, boost, acceptThreshold)
			}
		}
	}

	var best Canonical
	var bestScore float64
	for _, rec := range records {
		score := dockets.Ratio(normalized, rec.NormalizedName)
		if score > bestScore {
			best = rec
			bestScore = score
		}
	}

	if bestScore >= reviewThreshold {
		return outcome(best.ID, bestScore, boost, acceptThreshold)
	}

	// Unmatched names are still linked (canonical id empty) so they
	// surface in canonicalization review.
	return MatchOutcome{Confidence: 0, NeedsReview: true}
}

func outcome(id string, score, boost, acceptThreshold float64) MatchOutcome {
	confidence := score*confidenceWeight + boost
	if confidence > 100 {
		confidence = 100
	}
	return MatchOutcome{
		CanonicalID: id,
		Score:       score,
		Confidence:  confidence,
		NeedsReview: confidence < acceptThreshold,
	}
}
