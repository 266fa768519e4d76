package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var utilityRecords = []Canonical{
	{ID: "u-1", NormalizedName: "tampa electric company", Aliases: []string{"TECO", "Tampa Electric"}},
	{ID: "u-2", NormalizedName: "duke energy florida", Aliases: []string{"DEF"}},
	{ID: "u-3", NormalizedName: "florida power & light", Aliases: []string{"FPL"}},
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, "tampa electric company", Normalize("  Tampa Electric Company "))
}

func TestMatchNameExact(t *testing.T) {
	out := MatchName("Tampa Electric Company", utilityRecords, UtilityAcceptThreshold, UtilityReviewThreshold, 0)
	assert.Equal(t, "u-1", out.CanonicalID)
	assert.Equal(t, float64(100), out.Score)
	assert.Equal(t, float64(80), out.Confidence)
	assert.True(t, out.NeedsReview, "100·0.8 = 80 sits below the utility accept threshold without a boost")
}

func TestMatchNameAlias(t *testing.T) {
	out := MatchName("FPL", utilityRecords, UtilityAcceptThreshold, UtilityReviewThreshold, 0)
	assert.Equal(t, "u-3", out.CanonicalID)
	assert.Equal(t, float64(100), out.Score)
}

func TestMatchNameApplicantBoostClearsReview(t *testing.T) {
	out := MatchName("Tampa Electric Company", utilityRecords, UtilityAcceptThreshold, UtilityReviewThreshold, boostApplicantRole)
	assert.Equal(t, float64(90), out.Confidence)
	assert.False(t, out.NeedsReview)
}

func TestMatchNameFuzzy(t *testing.T) {
	out := MatchName("Tampa Electric Compny", utilityRecords, UtilityAcceptThreshold, UtilityReviewThreshold, 0)
	assert.Equal(t, "u-1", out.CanonicalID)
	assert.Greater(t, out.Score, float64(90))
	assert.True(t, out.NeedsReview)
}

func TestMatchNameUnmatched(t *testing.T) {
	out := MatchName("Pacific Gas and Electric", utilityRecords, UtilityAcceptThreshold, UtilityReviewThreshold, 0)
	assert.Empty(t, out.CanonicalID)
	assert.Equal(t, float64(0), out.Confidence)
	assert.True(t, out.NeedsReview)
}

func TestMatchNameTopicThresholds(t *testing.T) {
	topics := []Canonical{
		{ID: "t-1", NormalizedName: "rate case"},
		{ID: "t-2", NormalizedName: "storm hardening"},
	}

	// "rate cases" vs "rate case": 1 edit over 10 chars → ratio 90,
	// confidence 90·0.8 + 5 = 77, below the topic accept threshold.
	out := MatchName("rate cases", topics, TopicAcceptThreshold, TopicReviewThreshold, boostHighRelevance)
	assert.Equal(t, "t-1", out.CanonicalID)
	assert.InDelta(t, 77, out.Confidence, 0.01)
	assert.True(t, out.NeedsReview)
}
