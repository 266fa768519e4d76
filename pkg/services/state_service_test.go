package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPauseFlag(t *testing.T) {
	client := newTestClient(t)
	svc := NewStateService(client)
	ctx := context.Background()

	// No row yet means not paused.
	paused, err := svc.IsPaused(ctx)
	require.NoError(t, err)
	assert.False(t, paused)

	require.NoError(t, svc.SetPaused(ctx, true))
	paused, err = svc.IsPaused(ctx)
	require.NoError(t, err)
	assert.True(t, paused)

	require.NoError(t, svc.SetPaused(ctx, false))
	paused, err = svc.IsPaused(ctx)
	require.NoError(t, err)
	assert.False(t, paused)

	// Still a single row after repeated toggles.
	n, err := client.PipelineState.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}
