package entities

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/canaryscope/canaryscope/ent"
	"github.com/canaryscope/canaryscope/ent/hearingtopic"
	"github.com/canaryscope/canaryscope/ent/hearingutility"
	"github.com/canaryscope/canaryscope/ent/topic"
	"github.com/canaryscope/canaryscope/ent/utility"
)

// UtilityMention is one utility name extracted by the analyzer.
type UtilityMention struct {
	Name string
	Role string
}

// TopicMention is one topic tag extracted by the analyzer.
type TopicMention struct {
	Name      string
	Relevance string
}

// LinkSummary reports what one linking pass produced.
type LinkSummary struct {
	Linked    int
	Unmatched int
}

// Linker writes junction rows connecting a hearing to canonical
// utilities and topics.
type Linker struct {
	client *ent.Client
}

// NewLinker creates a Linker.
func NewLinker(client *ent.Client) *Linker {
	return &Linker{client: client}
}

// LinkUtilities canonicalizes the analyzer's utility mentions for a
// hearing. Prior links for the hearing are replaced.
func (l *Linker) LinkUtilities(ctx context.Context, hearingID, stateCode string, mentions []UtilityMention) (*LinkSummary, error) {
	records, err := l.utilityRecords(ctx, stateCode)
	if err != nil {
		return nil, fmt.Errorf("loading canonical utilities: %w", err)
	}

	tx, err := l.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("starting transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.HearingUtility.Delete().
		Where(hearingutility.HearingIDEQ(hearingID)).
		Exec(ctx); err != nil {
		return nil, fmt.Errorf("deleting prior utility links: %w", err)
	}

	summary := &LinkSummary{}
	for _, m := range mentions {
		if strings.TrimSpace(m.Name) == "" {
			continue
		}
		var boost float64
		if strings.EqualFold(m.Role, "applicant") {
			boost = boostApplicantRole
		}
		out := MatchName(m.Name, records, UtilityAcceptThreshold, UtilityReviewThreshold, boost)

		create := tx.HearingUtility.Create().
			SetID(uuid.New().String()).
			SetHearingID(hearingID).
			SetRawName(m.Name).
			SetRole(m.Role).
			SetConfidence(out.Confidence).
			SetNeedsReview(out.NeedsReview)
		if out.CanonicalID != "" {
			create.SetUtilityID(out.CanonicalID)
		}
		if _, err := create.Save(ctx); err != nil {
			return nil, fmt.Errorf("linking utility %q: %w", m.Name, err)
		}

		if out.CanonicalID != "" {
			if err := tx.Utility.UpdateOneID(out.CanonicalID).
				AddMentionCount(1).
				Exec(ctx); err != nil {
				return nil, fmt.Errorf("counting mention for utility %q: %w", m.Name, err)
			}
			summary.Linked++
		} else {
			summary.Unmatched++
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("committing utility links: %w", err)
	}
	return summary, nil
}

// LinkTopics canonicalizes the analyzer's topic mentions for a
// hearing. Prior links for the hearing are replaced.
func (l *Linker) LinkTopics(ctx context.Context, hearingID string, mentions []TopicMention) (*LinkSummary, error) {
	records, err := l.topicRecords(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading canonical topics: %w", err)
	}

	tx, err := l.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("starting transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.HearingTopic.Delete().
		Where(hearingtopic.HearingIDEQ(hearingID)).
		Exec(ctx); err != nil {
		return nil, fmt.Errorf("deleting prior topic links: %w", err)
	}

	summary := &LinkSummary{}
	for _, m := range mentions {
		if strings.TrimSpace(m.Name) == "" {
			continue
		}
		var boost float64
		if strings.EqualFold(m.Relevance, "high") {
			boost = boostHighRelevance
		}
		out := MatchName(m.Name, records, TopicAcceptThreshold, TopicReviewThreshold, boost)

		create := tx.HearingTopic.Create().
			SetID(uuid.New().String()).
			SetHearingID(hearingID).
			SetRawName(m.Name).
			SetRelevance(m.Relevance).
			SetConfidence(out.Confidence).
			SetNeedsReview(out.NeedsReview)
		if out.CanonicalID != "" {
			create.SetTopicID(out.CanonicalID)
		}
		if _, err := create.Save(ctx); err != nil {
			return nil, fmt.Errorf("linking topic %q: %w", m.Name, err)
		}

		if out.CanonicalID != "" {
			if err := tx.Topic.UpdateOneID(out.CanonicalID).
				AddMentionCount(1).
				Exec(ctx); err != nil {
				return nil, fmt.Errorf("counting mention for topic %q: %w", m.Name, err)
			}
			summary.Linked++
		} else {
			summary.Unmatched++
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("committing topic links: %w", err)
	}
	return summary, nil
}

func (l *Linker) utilityRecords(ctx context.Context, stateCode string) ([]Canonical, error) {
	rows, err := l.client.Utility.Query().
		Where(utility.StateCodeEQ(strings.ToUpper(stateCode))).
		All(ctx)
	if err != nil {
		return nil, err
	}
	records := make([]Canonical, len(rows))
	for i, row := range rows {
		records[i] = Canonical{
			ID:             row.ID,
			NormalizedName: row.NormalizedName,
			Aliases:        row.Aliases,
		}
	}
	return records, nil
}

func (l *Linker) topicRecords(ctx context.Context) ([]Canonical, error) {
	rows, err := l.client.Topic.Query().Order(ent.Asc(topic.FieldNormalizedName)).All(ctx)
	if err != nil {
		return nil, err
	}
	records := make([]Canonical, len(rows))
	for i, row := range rows {
		records[i] = Canonical{
			ID:             row.ID,
			NormalizedName: row.NormalizedName,
			Aliases:        row.Aliases,
		}
	}
	return records, nil
}
