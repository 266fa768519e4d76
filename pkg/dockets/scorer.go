package dockets

import "strings"

// Routing thresholds on the 0–100 confidence scale.
const (
	// AcceptThreshold routes candidates straight to accepted.
	AcceptThreshold = 85
	// ReviewThreshold routes candidates to the human review queue;
	// below it they are rejected.
	ReviewThreshold = 60
	// PrimaryThreshold marks a link primary for ranking.
	PrimaryThreshold = 90
	// FuzzyAutoAcceptScore is the raw fuzzy-match ratio at or above
	// which a catalogue match is accepted outright, before the blended
	// confidence is consulted.
	FuzzyAutoAcceptScore = 85
	// unmatchedConfidence is assigned to candidates with no catalogue
	// match at all.
	unmatchedConfidence = 30
)

// Context boost values (§ scoring design).
const (
	boostContextKeyword = 15
	boostValidSuffix    = 10
	boostUtilityNearby  = 10
)

// contextKeywords corroborate that the surrounding text is talking
// about a proceeding.
var contextKeywords = []string{"docket", "case", "proceeding", "hearing"}

// Status routes an extracted candidate.
type Status string

// Candidate statuses.
const (
	StatusAccepted    Status = "accepted"
	StatusNeedsReview Status = "needs_review"
	StatusRejected    Status = "rejected"
)

// ContextBoosts computes the additive score boosts derived from the
// candidate's surrounding window. utilityNames is the state's known
// utility vocabulary; a co-occurrence within the stored context earns
// a corroboration boost.
func ContextBoosts(c Candidate, comps Components, utilityNames []string) float64 {
	var boost float64
	window := strings.ToLower(c.ContextBefore + c.RawText + c.ContextAfter)

	for _, kw := range contextKeywords {
		if strings.Contains(window, kw) {
			boost += boostContextKeyword
			break
		}
	}
	if comps.Valid && comps.Suffix != "" && comps.Suffix != FallbackSuffix {
		boost += boostValidSuffix
	}
	for _, name := range utilityNames {
		if name != "" && strings.Contains(window, strings.ToLower(name)) {
			boost += boostUtilityNearby
			break
		}
	}
	return boost
}

// Confidence combines match score and context boosts. Exact matches
// are fully trusted; fuzzy matches are discounted and corroborated by
// context; unmatched candidates get a flat low confidence.
func Confidence(match MatchResult, boosts float64) float64 {
	switch match.Type {
	case MatchExact:
		return 100
	case MatchFuzzy:
		c := 0.7*match.Score + boosts
		if c > 100 {
			return 100
		}
		return c
	default:
		return unmatchedConfidence
	}
}

// RouteMatch routes a candidate. A fuzzy catalogue match at or above
// FuzzyAutoAcceptScore is accepted outright; everything else routes on
// the blended confidence.
func RouteMatch(match MatchResult, confidence, acceptThreshold, reviewThreshold float64) Status {
	if match.Type == MatchFuzzy && match.Score >= FuzzyAutoAcceptScore {
		return StatusAccepted
	}
	return Route(confidence, acceptThreshold, reviewThreshold)
}

// Route maps a confidence to a candidate status using the given
// thresholds (the package defaults unless the operator overrode them).
func Route(confidence, acceptThreshold, reviewThreshold float64) Status {
	switch {
	case confidence >= acceptThreshold:
		return StatusAccepted
	case confidence >= reviewThreshold:
		return StatusNeedsReview
	default:
		return StatusRejected
	}
}
