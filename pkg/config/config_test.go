package config

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.HTTPPort)
	assert.Equal(t, "./audio_cache", cfg.Media.AudioDir)
	assert.Equal(t, "yt-dlp", cfg.Media.YtdlpPath)
	assert.Equal(t, 100_000, cfg.Analyze.MaxInputTokens)
	assert.Equal(t, 0.2, cfg.Analyze.Temperature)
	assert.Equal(t, float64(85), cfg.Extract.AcceptThreshold)
	assert.Equal(t, float64(60), cfg.Extract.ReviewThreshold)
	assert.True(t, cfg.Extract.AlwaysReviewLinks)
	assert.Equal(t, 3, cfg.Pipeline.MaxRetries)
	assert.Equal(t, 60*time.Second, cfg.Scheduler.CheckInterval)
	assert.Equal(t, 14, cfg.Retention.AudioRetentionDays)
	assert.Equal(t, 6*time.Hour, cfg.Retention.CleanupInterval)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("AUDIO_DIR", "/var/audio")
	t.Setenv("GROQ_API_KEY", "gsk_test")
	t.Setenv("EXTRACTION_ALWAYS_REVIEW", "false")
	t.Setenv("SCHEDULER_CHECK_INTERVAL", "30s")
	t.Setenv("PIPELINE_MAX_RETRIES", "5")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.HTTPPort)
	assert.Equal(t, "/var/audio", cfg.Media.AudioDir)
	assert.Equal(t, "gsk_test", cfg.Providers.GroqAPIKey)
	assert.False(t, cfg.Extract.AlwaysReviewLinks)
	assert.Equal(t, 30*time.Second, cfg.Scheduler.CheckInterval)
	assert.Equal(t, 5, cfg.Pipeline.MaxRetries)
}

func TestValidateAggregatesErrors(t *testing.T) {
	cfg := &Config{
		Media:     MediaConfig{AudioDir: ""},
		Analyze:   AnalyzeConfig{MaxInputTokens: 0},
		Extract:   ExtractConfig{AcceptThreshold: 50, ReviewThreshold: 60},
		Pipeline:  PipelineConfig{MaxRetries: -1},
		Scheduler: SchedulerConfig{CheckInterval: 0},
		Retention: RetentionConfig{AudioRetentionDays: -1, CleanupInterval: 0},
	}

	err := cfg.Validate()
	require.Error(t, err)
	require.True(t, errors.Is(err, ErrValidationFailed))

	var verrs ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Len(t, verrs, 7)
}

func TestValidateOK(t *testing.T) {
	cfg := &Config{
		Media:     MediaConfig{AudioDir: "./audio"},
		Analyze:   AnalyzeConfig{MaxInputTokens: 1000},
		Extract:   ExtractConfig{AcceptThreshold: 85, ReviewThreshold: 60},
		Pipeline:  PipelineConfig{MaxRetries: 3},
		Scheduler: SchedulerConfig{CheckInterval: time.Minute},
		Retention: RetentionConfig{AudioRetentionDays: 14, JobRetentionDays: 90, CleanupInterval: time.Hour},
	}
	assert.NoError(t, cfg.Validate())
}
