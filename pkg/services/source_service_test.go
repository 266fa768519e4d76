package services

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/canaryscope/canaryscope/ent/source"
)

func TestCreateSourceValidation(t *testing.T) {
	client := newTestClient(t)
	svc := NewSourceService(client)
	ctx := context.Background()

	_, err := svc.CreateSource(ctx, CreateSourceRequest{Kind: "rss_feed", URL: "https://x"})
	assert.True(t, IsValidationError(err))

	_, err = svc.CreateSource(ctx, CreateSourceRequest{StateCode: "FL", Kind: "rss_feed"})
	assert.True(t, IsValidationError(err))

	src, err := svc.CreateSource(ctx, CreateSourceRequest{StateCode: "fl", Kind: "rss_feed", URL: "https://x"})
	require.NoError(t, err)
	assert.Equal(t, "FL", src.StateCode)
	assert.Equal(t, source.StatusPending, src.Status)
}

func TestListEnabledFilters(t *testing.T) {
	client := newTestClient(t)
	svc := NewSourceService(client)
	ctx := context.Background()

	fl, err := svc.CreateSource(ctx, CreateSourceRequest{StateCode: "FL", Kind: "rss_feed", URL: "https://a"})
	require.NoError(t, err)
	_, err = svc.CreateSource(ctx, CreateSourceRequest{StateCode: "TX", Kind: "video_channel", URL: "https://b"})
	require.NoError(t, err)

	rows, err := svc.ListEnabled(ctx, nil, "")
	require.NoError(t, err)
	assert.Len(t, rows, 2)

	rows, err = svc.ListEnabled(ctx, []string{"rss_feed"}, "fl")
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, fl.ID, rows[0].ID)

	// Disabled sources drop out.
	require.NoError(t, svc.SetEnabled(ctx, fl.ID, false))
	rows, err = svc.ListEnabled(ctx, nil, "FL")
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestMarkCheckedAndFailed(t *testing.T) {
	client := newTestClient(t)
	svc := NewSourceService(client)
	ctx := context.Background()

	src, err := svc.CreateSource(ctx, CreateSourceRequest{StateCode: "FL", Kind: "rss_feed", URL: "https://x"})
	require.NoError(t, err)

	// Failure records a truncated message and error status.
	long := errors.New(strings.Repeat("boom ", 200))
	require.NoError(t, svc.MarkFailed(ctx, src.ID, long))

	got, err := svc.GetSource(ctx, src.ID)
	require.NoError(t, err)
	assert.Equal(t, source.StatusError, got.Status)
	require.NotNil(t, got.ErrorMessage)
	assert.Len(t, *got.ErrorMessage, 500)
	assert.Nil(t, got.LastCheckedAt)

	// Success clears the error and advances the watermarks.
	latest := time.Date(2026, 1, 7, 0, 0, 0, 0, time.UTC)
	require.NoError(t, svc.MarkChecked(ctx, src.ID, &latest))

	got, err = svc.GetSource(ctx, src.ID)
	require.NoError(t, err)
	assert.Equal(t, source.StatusActive, got.Status)
	assert.Nil(t, got.ErrorMessage)
	require.NotNil(t, got.LastCheckedAt)
	require.NotNil(t, got.LastHearingAt)
	assert.Equal(t, latest, got.LastHearingAt.UTC())
}
