package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/canaryscope/canaryscope/ent"
	"github.com/canaryscope/canaryscope/pkg/models"
	testdb "github.com/canaryscope/canaryscope/test/database"
)

// newTestClient opens an isolated test database.
func newTestClient(t *testing.T) *ent.Client {
	t.Helper()
	return testdb.NewTestClient(t).Client
}

// createTestSource inserts a source to hang hearings off.
func createTestSource(t *testing.T, client *ent.Client, stateCode string) *ent.Source {
	t.Helper()
	src, err := NewSourceService(client).CreateSource(context.Background(), CreateSourceRequest{
		StateCode: stateCode,
		Kind:      "rss_feed",
		URL:       "https://feeds.example.com/" + stateCode,
	})
	require.NoError(t, err)
	return src
}

// createTestHearing inserts a discovered hearing.
func createTestHearing(t *testing.T, client *ent.Client, sourceID, stateCode, externalID string) *ent.Hearing {
	t.Helper()
	h, created, err := NewHearingService(client).UpsertHearing(context.Background(), sourceID, stateCode, models.HearingCandidate{
		ExternalID: externalID,
		Title:      "Agenda Conference " + externalID,
		Date:       time.Date(2026, 1, 7, 9, 30, 0, 0, time.UTC),
		MediaURL:   "https://example.com/" + externalID + ".mp3",
	})
	require.NoError(t, err)
	require.True(t, created)
	return h
}
