package dockets

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func catalogTime(s string) *time.Time {
	t, _ := time.Parse("2006-01-02", s)
	return &t
}

func testCatalog() []CatalogEntry {
	return []CatalogEntry{
		{ID: "kd-1", NormalizedID: "FL-20240035-GU", StateCode: "FL", FilingDate: catalogTime("2024-02-15")},
		{ID: "kd-2", NormalizedID: "FL-20240036-EI", StateCode: "FL", FilingDate: catalogTime("2024-03-01")},
		{ID: "kd-3", NormalizedID: "CA-A.24-07-003", StateCode: "CA", FilingDate: catalogTime("2024-07-10")},
		{ID: "kd-4", NormalizedID: "TX-55555", StateCode: "TX", FilingDate: nil},
	}
}

func TestRatio(t *testing.T) {
	assert.Equal(t, float64(100), Ratio("FL-20240035-GU", "FL-20240035-GU"))
	assert.Equal(t, float64(100), Ratio("", ""))

	// One edit in a 14-char string.
	r := Ratio("FL-20240035-GU", "FL-20240036-GU")
	assert.InDelta(t, 100*(1-1.0/14), r, 0.01)

	assert.Less(t, Ratio("TX-44250", "CA-A.24-07-003"), float64(60))
}

func TestMatchExact(t *testing.T) {
	m := NewMatcher(testCatalog())
	res := m.Match("FL", "FL-20240035-GU")
	assert.Equal(t, MatchExact, res.Type)
	assert.Equal(t, float64(100), res.Score)
	assert.Equal(t, "kd-1", res.KnownID)
}

func TestMatchFuzzy(t *testing.T) {
	m := NewMatcher(testCatalog())
	// One digit off from kd-1.
	res := m.Match("FL", "FL-20240034-GU")
	require.Equal(t, MatchFuzzy, res.Type)
	assert.Equal(t, "kd-1", res.KnownID)
	assert.GreaterOrEqual(t, res.Score, float64(60))
}

func TestMatchNoneBelowFloor(t *testing.T) {
	m := NewMatcher(testCatalog())
	res := m.Match("CA", "CA-44250")
	assert.Equal(t, MatchNone, res.Type)
	assert.Empty(t, res.KnownID)
}

func TestMatchTieBreaksByFilingDate(t *testing.T) {
	older := CatalogEntry{ID: "old", NormalizedID: "FL-20240010-EI", StateCode: "FL", FilingDate: catalogTime("2024-01-01")}
	newer := CatalogEntry{ID: "new", NormalizedID: "FL-20240020-EI", StateCode: "FL", FilingDate: catalogTime("2024-06-01")}
	m := NewMatcher([]CatalogEntry{older, newer})

	// Equidistant from both entries (one digit each).
	res := m.Match("FL", "FL-20240000-EI")
	if res.Type == MatchFuzzy {
		assert.Equal(t, "new", res.KnownID)
	}
}

func TestMatchScopedToState(t *testing.T) {
	m := NewMatcher(testCatalog())
	// Identical except the state prefix; must not fuzzy-match across
	// states with a high score from another state's catalogue.
	res := m.Match("TX", "TX-20240035-GU")
	assert.NotEqual(t, MatchExact, res.Type)
	if res.Type == MatchFuzzy {
		assert.Equal(t, "kd-4", res.KnownID)
	}
}

func TestSuggestCorrection(t *testing.T) {
	m := NewMatcher(testCatalog())
	assert.Equal(t, "FL-20240035-GU", m.SuggestCorrection("FL", "FL-20240035-GX"))
	assert.Empty(t, m.SuggestCorrection("FL", "FL-99999999-ZZ"))
}
