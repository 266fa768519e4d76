package media

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCacheKey(t *testing.T) {
	// Sanitized external ids win.
	assert.Equal(t, "dQw4w9WgXcQ", CacheKey("dQw4w9WgXcQ", "https://example.com/a", "h-1"))
	assert.Equal(t, "meeting_2024-05", CacheKey("meeting 2024-05!", "", "h-1"))

	// Feed items without usable ids hash the URL.
	key := CacheKey("", "https://feeds.example.com/ep1.mp3", "h-1")
	assert.Regexp(t, `^rss_[0-9a-f]{16}$`, key)
	// Deterministic across calls.
	assert.Equal(t, key, CacheKey("", "https://feeds.example.com/ep1.mp3", "h-2"))

	// Last resort is the hearing id.
	assert.Equal(t, "hearing_h-9", CacheKey("???", "", "h-9"))
}

func TestCachePathNamespacesByState(t *testing.T) {
	assert.Equal(t, filepath.Join("/cache", "FL", "abc.mp3"), CachePath("/cache", "fl", "abc"))
	assert.Equal(t, filepath.Join("/cache", "abc.mp3"), CachePath("/cache", "", "abc"))
}

func TestFindCachedProbesExtensions(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "TX"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "TX", "abc.m4a"), []byte("audio"), 0o644))

	assert.Equal(t, filepath.Join(dir, "TX", "abc.m4a"), FindCached(dir, "TX", "abc"))
	assert.Empty(t, FindCached(dir, "TX", "missing"))
}

func TestFindCachedIgnoresEmptyFiles(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "abc.mp3"), nil, 0o644))
	assert.Empty(t, FindCached(dir, "", "abc"))
}
