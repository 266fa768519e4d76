// Package config provides environment-driven configuration for the
// CanaryScope core: database, provider credentials, media tooling,
// pipeline and scheduler knobs.
package config

import (
	"os"
	"strconv"
	"time"
)

// Config is the root configuration for the CanaryScope process.
type Config struct {
	HTTPPort  string
	Database  DatabaseConfig
	Providers ProviderConfig
	Media     MediaConfig
	Analyze   AnalyzeConfig
	Extract   ExtractConfig
	Pipeline  PipelineConfig
	Scheduler SchedulerConfig
	Retention RetentionConfig
}

// DatabaseConfig selects the backing store. A postgres:// URL uses
// pgx; anything else (including empty) falls back to a local SQLite
// file for development.
type DatabaseConfig struct {
	URL string
}

// ProviderConfig carries credentials and model names for the
// speech-to-text and analysis providers. Presence of keys drives the
// transcriber's provider probe (Groq → Azure → OpenAI → local).
type ProviderConfig struct {
	GroqAPIKey       string
	GroqWhisperModel string

	AzureEndpoint          string
	AzureAPIKey            string
	AzureAPIVersion        string
	AzureWhisperDeployment string
	AzureChatDeployment    string

	OpenAIAPIKey     string
	UseOpenAIWhisper bool
	WhisperModel     string

	LocalWhisperModel string

	AnalysisModel string
	PolishModel   string
}

// MediaConfig configures the audio cache and the external tools the
// media fetcher and transcriber shell out to.
type MediaConfig struct {
	AudioDir   string
	YtdlpPath  string
	FFmpegPath string
}

// AnalyzeConfig bounds the single LLM analysis call.
type AnalyzeConfig struct {
	MaxInputTokens     int
	MaxOutputTokens    int
	Temperature        float64
	GenerateEmbeddings bool
}

// ExtractConfig tunes docket extraction routing. AlwaysReviewLinks
// preserves the reference behavior of flagging every created link for
// human review regardless of confidence; operators may relax it.
type ExtractConfig struct {
	AcceptThreshold   float64
	ReviewThreshold   float64
	AlwaysReviewLinks bool
}

// PipelineConfig bounds the per-hearing orchestrator.
type PipelineConfig struct {
	MaxRetries int
}

// SchedulerConfig controls the schedule daemon loop.
type SchedulerConfig struct {
	CheckInterval time.Duration
}

// RetentionConfig bounds on-disk and in-database growth: cached audio
// for finished hearings and old pipeline job rows.
type RetentionConfig struct {
	AudioRetentionDays int
	JobRetentionDays   int
	CleanupInterval    time.Duration
}

// Load reads configuration from the environment, applying defaults.
// The returned config is validated; callers get every problem at once.
func Load() (*Config, error) {
	cfg := &Config{
		HTTPPort: getEnv("HTTP_PORT", "8080"),
		Database: DatabaseConfig{
			URL: os.Getenv("DATABASE_URL"),
		},
		Providers: ProviderConfig{
			GroqAPIKey:             os.Getenv("GROQ_API_KEY"),
			GroqWhisperModel:       getEnv("GROQ_WHISPER_MODEL", "whisper-large-v3"),
			AzureEndpoint:          os.Getenv("AZURE_OPENAI_ENDPOINT"),
			AzureAPIKey:            os.Getenv("AZURE_OPENAI_API_KEY"),
			AzureAPIVersion:        getEnv("AZURE_OPENAI_API_VERSION", "2024-06-01"),
			AzureWhisperDeployment: os.Getenv("AZURE_WHISPER_DEPLOYMENT"),
			AzureChatDeployment:    os.Getenv("AZURE_CHAT_DEPLOYMENT"),
			OpenAIAPIKey:           os.Getenv("OPENAI_API_KEY"),
			UseOpenAIWhisper:       getEnvBool("USE_OPENAI_WHISPER", false),
			WhisperModel:           getEnv("WHISPER_MODEL", "whisper-1"),
			LocalWhisperModel:      getEnv("LOCAL_WHISPER_MODEL", "base"),
			AnalysisModel:          getEnv("ANALYSIS_MODEL", "gpt-4o"),
			PolishModel:            os.Getenv("LLM_POLISH_MODEL"),
		},
		Media: MediaConfig{
			AudioDir:   getEnv("AUDIO_DIR", "./audio_cache"),
			YtdlpPath:  getEnv("YTDLP_PATH", "yt-dlp"),
			FFmpegPath: getEnv("FFMPEG_PATH", "ffmpeg"),
		},
		Analyze: AnalyzeConfig{
			MaxInputTokens:     getEnvInt("ANALYSIS_MAX_INPUT_TOKENS", 100_000),
			MaxOutputTokens:    getEnvInt("ANALYSIS_MAX_OUTPUT_TOKENS", 4000),
			Temperature:        0.2,
			GenerateEmbeddings: getEnvBool("GENERATE_EMBEDDINGS", false),
		},
		Extract: ExtractConfig{
			AcceptThreshold:   85,
			ReviewThreshold:   60,
			AlwaysReviewLinks: getEnvBool("EXTRACTION_ALWAYS_REVIEW", true),
		},
		Pipeline: PipelineConfig{
			MaxRetries: getEnvInt("PIPELINE_MAX_RETRIES", 3),
		},
		Scheduler: SchedulerConfig{
			CheckInterval: getEnvDuration("SCHEDULER_CHECK_INTERVAL", 60*time.Second),
		},
		Retention: RetentionConfig{
			AudioRetentionDays: getEnvInt("AUDIO_RETENTION_DAYS", 14),
			JobRetentionDays:   getEnvInt("JOB_RETENTION_DAYS", 90),
			CleanupInterval:    getEnvDuration("CLEANUP_INTERVAL", 6*time.Hour),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks cross-field consistency, aggregating every problem.
func (c *Config) Validate() error {
	var errs ValidationErrors

	if c.Media.AudioDir == "" {
		errs = append(errs, NewValidationError("media", "audio_dir", "must not be empty"))
	}
	if c.Analyze.MaxInputTokens <= 0 {
		errs = append(errs, NewValidationError("analyze", "max_input_tokens", "must be positive"))
	}
	if c.Extract.ReviewThreshold >= c.Extract.AcceptThreshold {
		errs = append(errs, NewValidationError("extract", "review_threshold", "must be below accept_threshold"))
	}
	if c.Pipeline.MaxRetries < 0 {
		errs = append(errs, NewValidationError("pipeline", "max_retries", "must not be negative"))
	}
	if c.Scheduler.CheckInterval <= 0 {
		errs = append(errs, NewValidationError("scheduler", "check_interval", "must be positive"))
	}
	if c.Retention.AudioRetentionDays < 0 || c.Retention.JobRetentionDays < 0 {
		errs = append(errs, NewValidationError("retention", "retention_days", "must not be negative"))
	}
	if c.Retention.CleanupInterval <= 0 {
		errs = append(errs, NewValidationError("retention", "cleanup_interval", "must be positive"))
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return defaultValue
}
