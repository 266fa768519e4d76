package dockets

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContextBoosts(t *testing.T) {
	valid := Components{Valid: true, Suffix: "GU"}

	tests := []struct {
		name      string
		candidate Candidate
		comps     Components
		utilities []string
		want      float64
	}{
		{
			name:      "keyword plus valid suffix",
			candidate: Candidate{ContextBefore: "rate case hearing, docket ", RawText: "20240035-GU"},
			comps:     valid,
			want:      boostContextKeyword + boostValidSuffix,
		},
		{
			name:      "fallback suffix earns no suffix boost",
			candidate: Candidate{ContextBefore: "docket ", RawText: "20240035"},
			comps:     Components{Valid: true, Suffix: FallbackSuffix},
			want:      boostContextKeyword,
		},
		{
			name:      "utility co-occurrence",
			candidate: Candidate{ContextAfter: " filed by Tampa Electric Company"},
			comps:     Components{Valid: false},
			utilities: []string{"Tampa Electric Company"},
			want:      boostUtilityNearby,
		},
		{
			name:      "no corroboration",
			candidate: Candidate{ContextBefore: "the meeting continued "},
			comps:     Components{Valid: false},
			want:      0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ContextBoosts(tt.candidate, tt.comps, tt.utilities))
		})
	}
}

func TestConfidence(t *testing.T) {
	// Exact matches are fully trusted regardless of boosts.
	assert.Equal(t, float64(100), Confidence(MatchResult{Type: MatchExact, Score: 100}, 0))

	// Fuzzy: 0.7·score + boosts, capped at 100.
	assert.InDelta(t, 0.7*80+25, Confidence(MatchResult{Type: MatchFuzzy, Score: 80}, 25), 0.001)
	assert.Equal(t, float64(100), Confidence(MatchResult{Type: MatchFuzzy, Score: 100}, 50))

	// Unmatched candidates get the flat low confidence.
	assert.Equal(t, float64(unmatchedConfidence), Confidence(MatchResult{Type: MatchNone}, 25))
}

func TestRoute(t *testing.T) {
	assert.Equal(t, StatusAccepted, Route(100, AcceptThreshold, ReviewThreshold))
	assert.Equal(t, StatusAccepted, Route(85, AcceptThreshold, ReviewThreshold))
	assert.Equal(t, StatusNeedsReview, Route(84.9, AcceptThreshold, ReviewThreshold))
	assert.Equal(t, StatusNeedsReview, Route(60, AcceptThreshold, ReviewThreshold))
	assert.Equal(t, StatusRejected, Route(59.9, AcceptThreshold, ReviewThreshold))
	assert.Equal(t, StatusRejected, Route(30, AcceptThreshold, ReviewThreshold))
}

func TestRouteMatchAutoAcceptsStrongFuzzy(t *testing.T) {
	// A fuzzy ratio of 85 is accepted even with zero boosts, where the
	// blended confidence alone (0.7·85 = 59.5) would reject it.
	strong := MatchResult{Type: MatchFuzzy, Score: 85}
	conf := Confidence(strong, 0)
	assert.Less(t, conf, float64(ReviewThreshold))
	assert.Equal(t, StatusAccepted, RouteMatch(strong, conf, AcceptThreshold, ReviewThreshold))

	// Below the auto-accept ratio, confidence routing applies.
	weak := MatchResult{Type: MatchFuzzy, Score: 84}
	assert.Equal(t, StatusRejected,
		RouteMatch(weak, Confidence(weak, 0), AcceptThreshold, ReviewThreshold))
	assert.Equal(t, StatusNeedsReview,
		RouteMatch(weak, Confidence(weak, 15), AcceptThreshold, ReviewThreshold))

	// Exact and unmatched candidates never take the fuzzy shortcut.
	exact := MatchResult{Type: MatchExact, Score: 100}
	assert.Equal(t, StatusAccepted, RouteMatch(exact, Confidence(exact, 0), AcceptThreshold, ReviewThreshold))
	none := MatchResult{Type: MatchNone, Score: 90}
	assert.Equal(t, StatusRejected, RouteMatch(none, Confidence(none, 0), AcceptThreshold, ReviewThreshold))
}
