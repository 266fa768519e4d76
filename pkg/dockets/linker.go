package dockets

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/canaryscope/canaryscope/ent"
	"github.com/canaryscope/canaryscope/ent/docket"
	"github.com/canaryscope/canaryscope/ent/extracteddocket"
	"github.com/canaryscope/canaryscope/ent/hearingdocket"
	"github.com/canaryscope/canaryscope/ent/knowndocket"
)

// LinkerConfig tunes routing and link review policy.
type LinkerConfig struct {
	AcceptThreshold float64
	ReviewThreshold float64
	// AlwaysReviewLinks flags every created HearingDocket for human
	// review regardless of confidence (the reference behavior).
	AlwaysReviewLinks bool
}

// DefaultLinkerConfig returns the package-default thresholds.
func DefaultLinkerConfig() LinkerConfig {
	return LinkerConfig{
		AcceptThreshold:   AcceptThreshold,
		ReviewThreshold:   ReviewThreshold,
		AlwaysReviewLinks: true,
	}
}

// Linker runs the full extraction pipeline for a hearing and persists
// the outcome: one ExtractedDocket row per surviving candidate, plus
// Docket/HearingDocket rows for the non-rejected ones.
type Linker struct {
	client *ent.Client
	cfg    LinkerConfig
}

// NewLinker creates a Linker.
func NewLinker(client *ent.Client, cfg LinkerConfig) *Linker {
	return &Linker{client: client, cfg: cfg}
}

// ScoredCandidate is a candidate after validation, matching, and
// scoring.
type ScoredCandidate struct {
	Candidate
	Components          Components
	NormalizedID        string
	Match               MatchResult
	Confidence          float64
	Status              Status
	SuggestedCorrection string
}

// LinkResult summarizes one extraction run.
type LinkResult struct {
	Candidates   int
	Accepted     int
	NeedsReview  int
	Rejected     int
	LinksCreated int
}

// Process extracts docket references from text (title + transcript),
// scores them against the KnownDocket catalogue, and replaces the
// hearing's extraction artifacts in one transaction. Re-running is
// idempotent: prior ExtractedDocket rows and HearingDocket links are
// deleted first.
func (l *Linker) Process(ctx context.Context, hearing *ent.Hearing, text string) (*LinkResult, error) {
	matcher, utilityNames, err := l.loadCatalog(ctx, hearing.StateCode)
	if err != nil {
		return nil, fmt.Errorf("loading docket catalog: %w", err)
	}

	scored := l.score(hearing.StateCode, text, matcher, utilityNames)

	tx, err := l.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("starting transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if err := l.cleanup(ctx, tx, hearing.ID); err != nil {
		return nil, err
	}

	result := &LinkResult{Candidates: len(scored)}
	for _, sc := range scored {
		if err := l.storeCandidate(ctx, tx, hearing, sc); err != nil {
			return nil, err
		}
		switch sc.Status {
		case StatusAccepted:
			result.Accepted++
		case StatusNeedsReview:
			result.NeedsReview++
		default:
			result.Rejected++
		}
		if sc.Status != StatusRejected {
			if err := l.linkDocket(ctx, tx, hearing, sc); err != nil {
				return nil, err
			}
			result.LinksCreated++
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("committing extraction: %w", err)
	}
	return result, nil
}

// score runs extraction, validation, matching, and scoring, then
// deduplicates by normalized id keeping the highest-confidence
// instance (earliest textual position wins ties so the stored context
// reflects the first mention).
func (l *Linker) score(stateCode, text string, matcher *Matcher, utilityNames []string) []ScoredCandidate {
	candidates := Extract(stateCode, text)

	scored := make([]ScoredCandidate, 0, len(candidates))
	for _, c := range candidates {
		comps := ParseComponents(stateCode, c.RawText)
		normalized := NormalizeID(stateCode, c.RawText)
		match := matcher.Match(stateCode, normalized)

		// Invalid formats are rejected unless the catalogue
		// corroborates them.
		if !comps.Valid && match.Type == MatchNone {
			scored = append(scored, ScoredCandidate{
				Candidate:    c,
				Components:   comps,
				NormalizedID: normalized,
				Match:        match,
				Confidence:   unmatchedConfidence,
				Status:       StatusRejected,
			})
			continue
		}

		boosts := ContextBoosts(c, comps, utilityNames)
		confidence := Confidence(match, boosts)
		scored = append(scored, ScoredCandidate{
			Candidate:    c,
			Components:   comps,
			NormalizedID: normalized,
			Match:        match,
			Confidence:   confidence,
			Status:       RouteMatch(match, confidence, l.cfg.AcceptThreshold, l.cfg.ReviewThreshold),
		})
	}

	deduped := dedupe(scored)
	for i := range deduped {
		if deduped[i].Status != StatusAccepted {
			deduped[i].SuggestedCorrection = matcher.SuggestCorrection(stateCode, deduped[i].NormalizedID)
		}
	}
	return deduped
}

func dedupe(scored []ScoredCandidate) []ScoredCandidate {
	best := make(map[string]ScoredCandidate)
	for _, sc := range scored {
		cur, ok := best[sc.NormalizedID]
		if !ok || sc.Confidence > cur.Confidence ||
			(sc.Confidence == cur.Confidence && sc.Position < cur.Position) {
			best[sc.NormalizedID] = sc
		}
	}
	out := make([]ScoredCandidate, 0, len(best))
	for _, sc := range best {
		out = append(out, sc)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Position < out[j].Position })
	return out
}

// loadCatalog snapshots the state's KnownDocket catalogue and its
// utility vocabulary for context corroboration.
func (l *Linker) loadCatalog(ctx context.Context, stateCode string) (*Matcher, []string, error) {
	rows, err := l.client.KnownDocket.Query().
		Where(knowndocket.StateCodeEQ(strings.ToUpper(stateCode))).
		All(ctx)
	if err != nil {
		return nil, nil, err
	}

	entries := make([]CatalogEntry, 0, len(rows))
	nameSet := make(map[string]struct{})
	for _, row := range rows {
		entries = append(entries, CatalogEntry{
			ID:           row.ID,
			NormalizedID: row.NormalizedID,
			StateCode:    row.StateCode,
			FilingDate:   row.FilingDate,
		})
		if row.UtilityName != "" {
			nameSet[row.UtilityName] = struct{}{}
		}
	}
	names := make([]string, 0, len(nameSet))
	for name := range nameSet {
		names = append(names, name)
	}
	return NewMatcher(entries), names, nil
}

// cleanup deletes prior extraction artifacts so re-runs are idempotent.
func (l *Linker) cleanup(ctx context.Context, tx *ent.Tx, hearingID string) error {
	if _, err := tx.ExtractedDocket.Delete().
		Where(extracteddocket.HearingIDEQ(hearingID)).
		Exec(ctx); err != nil {
		return fmt.Errorf("deleting prior extracted dockets: %w", err)
	}
	if _, err := tx.HearingDocket.Delete().
		Where(hearingdocket.HearingIDEQ(hearingID)).
		Exec(ctx); err != nil {
		return fmt.Errorf("deleting prior hearing-docket links: %w", err)
	}
	return nil
}

func (l *Linker) storeCandidate(ctx context.Context, tx *ent.Tx, hearing *ent.Hearing, sc ScoredCandidate) error {
	create := tx.ExtractedDocket.Create().
		SetID(uuid.New().String()).
		SetHearingID(hearing.ID).
		SetRawText(sc.RawText).
		SetNormalizedID(sc.NormalizedID).
		SetStateCode(strings.ToUpper(hearing.StateCode)).
		SetCaseNumber(sc.Components.CaseNumber).
		SetSuffix(sc.Components.Suffix).
		SetSector(sc.Components.Sector).
		SetConfidence(sc.Confidence).
		SetStatus(extracteddocket.Status(sc.Status)).
		SetMatchType(extracteddocket.MatchType(sc.Match.Type)).
		SetFuzzyScore(sc.Match.FuzzyScore).
		SetContextBefore(sc.ContextBefore).
		SetContextAfter(sc.ContextAfter)

	if sc.Components.Year != nil {
		create.SetYear(*sc.Components.Year)
	}
	if sc.TriggerPhrase != "" {
		create.SetTriggerPhrase(sc.TriggerPhrase)
	}
	if sc.Match.KnownID != "" {
		create.SetKnownDocketID(sc.Match.KnownID)
	}
	if sc.SuggestedCorrection != "" {
		create.SetSuggestedCorrection(sc.SuggestedCorrection)
	}

	if _, err := create.Save(ctx); err != nil {
		return fmt.Errorf("storing extracted docket %s: %w", sc.NormalizedID, err)
	}
	return nil
}

// linkDocket upserts the Docket row keyed by normalized id and creates
// the HearingDocket link for a non-rejected candidate.
func (l *Linker) linkDocket(ctx context.Context, tx *ent.Tx, hearing *ent.Hearing, sc ScoredCandidate) error {
	now := time.Now()

	existing, err := tx.Docket.Query().
		Where(docket.NormalizedIDEQ(sc.NormalizedID)).
		Only(ctx)
	var docketID string
	switch {
	case err == nil:
		if err := existing.Update().
			SetMentionCount(existing.MentionCount + 1).
			SetLastMentionedAt(now).
			Exec(ctx); err != nil {
			return fmt.Errorf("updating docket %s: %w", sc.NormalizedID, err)
		}
		docketID = existing.ID
	case ent.IsNotFound(err):
		create := tx.Docket.Create().
			SetID(uuid.New().String()).
			SetStateCode(strings.ToUpper(hearing.StateCode)).
			SetDocketNumber(strings.TrimPrefix(sc.NormalizedID, strings.ToUpper(hearing.StateCode)+"-")).
			SetNormalizedID(sc.NormalizedID).
			SetSector(sc.Components.Sector).
			SetFirstSeenAt(now).
			SetLastMentionedAt(now).
			SetMentionCount(1).
			SetConfidence(docketConfidence(sc.Match.Type)).
			SetMatchScore(sc.Match.Score)
		if sc.Match.KnownID != "" {
			create.SetKnownDocketID(sc.Match.KnownID)
		}
		created, err := create.Save(ctx)
		if err != nil {
			return fmt.Errorf("creating docket %s: %w", sc.NormalizedID, err)
		}
		docketID = created.ID
	default:
		return fmt.Errorf("querying docket %s: %w", sc.NormalizedID, err)
	}

	needsReview := l.cfg.AlwaysReviewLinks || sc.Status == StatusNeedsReview
	reviewReason := ""
	if needsReview {
		reviewReason = "extracted link requires human verification"
	}

	if _, err := tx.HearingDocket.Create().
		SetID(uuid.New().String()).
		SetHearingID(hearing.ID).
		SetDocketID(docketID).
		SetConfidenceScore(sc.Confidence).
		SetMatchType(hearingdocket.MatchType(sc.Match.Type)).
		SetNeedsReview(needsReview).
		SetReviewReason(reviewReason).
		SetContextSummary(contextSummary(sc)).
		SetIsPrimary(sc.Confidence >= PrimaryThreshold).
		Save(ctx); err != nil {
		return fmt.Errorf("creating hearing-docket link %s: %w", sc.NormalizedID, err)
	}
	return nil
}

func docketConfidence(mt MatchType) docket.Confidence {
	switch mt {
	case MatchExact:
		return docket.ConfidenceVerified
	case MatchFuzzy:
		return docket.ConfidencePossible
	default:
		return docket.ConfidenceUnverified
	}
}

// contextSummary renders the surrounding transcript snippet with the
// matched span delimited.
func contextSummary(sc ScoredCandidate) string {
	return fmt.Sprintf("%s«%s»%s", sc.ContextBefore, sc.RawText, sc.ContextAfter)
}
