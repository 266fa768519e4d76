// CanaryScope core server: scrapes utility-commission hearing
// sources, runs the transcription and analysis pipeline, and serves
// the control API.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/canaryscope/canaryscope/pkg/analyze"
	"github.com/canaryscope/canaryscope/pkg/api"
	"github.com/canaryscope/canaryscope/pkg/cleanup"
	"github.com/canaryscope/canaryscope/pkg/config"
	"github.com/canaryscope/canaryscope/pkg/database"
	"github.com/canaryscope/canaryscope/pkg/dockets"
	"github.com/canaryscope/canaryscope/pkg/entities"
	"github.com/canaryscope/canaryscope/pkg/llm"
	"github.com/canaryscope/canaryscope/pkg/media"
	"github.com/canaryscope/canaryscope/pkg/pipeline"
	"github.com/canaryscope/canaryscope/pkg/scheduler"
	"github.com/canaryscope/canaryscope/pkg/scraper"
	"github.com/canaryscope/canaryscope/pkg/services"
	"github.com/canaryscope/canaryscope/pkg/sources"
	"github.com/canaryscope/canaryscope/pkg/transcribe"
	"github.com/canaryscope/canaryscope/pkg/version"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Warn("Could not load .env file, continuing with existing environment", "error", err)
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	slog.Info("Starting CanaryScope", "version", version.Full(), "http_port", cfg.HTTPPort)

	ctx := context.Background()

	// 1. Database
	dbClient, err := database.NewClient(ctx, database.DefaultConfig(cfg.Database.URL))
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			slog.Error("Error closing database client", "error", err)
		}
	}()
	slog.Info("Connected to database", "dialect", dbClient.Dialect())

	// 2. Services
	sourceSvc := services.NewSourceService(dbClient.Client)
	hearingSvc := services.NewHearingService(dbClient.Client)
	docketSvc := services.NewDocketService(dbClient.Client)
	jobSvc := services.NewJobService(dbClient.Client)
	scheduleSvc := services.NewScheduleService(dbClient.Client)
	stateSvc := services.NewStateService(dbClient.Client)

	// 3. Source adapters and scraper
	adapterRegistry := sources.NewRegistry()
	adapterRegistry.Register(sources.NewVideoAdapter(cfg.Media.YtdlpPath))
	catalogRegistry := sources.NewCatalogRegistry()
	scrape := scraper.New(adapterRegistry, sourceSvc, hearingSvc)

	// 4. Pipeline stages
	fetcher := media.NewFetcher(cfg.Media.AudioDir, cfg.Media.YtdlpPath)
	transcriber := transcribe.New(cfg.Providers, cfg.Media.FFmpegPath)
	slog.Info("Transcription provider selected", "provider", transcriber.Provider())

	analyzer := analyze.NewAnalyzer(
		analysisClient(cfg.Providers),
		cfg.Analyze.MaxInputTokens,
		cfg.Analyze.MaxOutputTokens,
		cfg.Analyze.Temperature,
	)

	docketLinker := dockets.NewLinker(dbClient.Client, dockets.LinkerConfig{
		AcceptThreshold:   cfg.Extract.AcceptThreshold,
		ReviewThreshold:   cfg.Extract.ReviewThreshold,
		AlwaysReviewLinks: cfg.Extract.AlwaysReviewLinks,
	})
	entityLinker := entities.NewLinker(dbClient.Client)

	orchestrator := pipeline.NewOrchestrator(hearingSvc, jobSvc, stateSvc, cfg.Pipeline,
		pipeline.NewDownloadStage(fetcher, hearingSvc),
		pipeline.NewTranscribeStage(transcriber, hearingSvc, cfg.Media.AudioDir),
		pipeline.NewAnalyzeStage(analyzer, hearingSvc),
		pipeline.NewExtractStage(docketLinker, entityLinker, hearingSvc, cfg.Analyze.GenerateEmbeddings),
	)

	// 5. Background loops: scheduler and retention
	sched := scheduler.New(scheduleSvc, orchestrator, scrape, cfg.Scheduler.CheckInterval)
	sched.Start(ctx)
	defer sched.Stop()

	retention := cleanup.NewService(cfg.Retention, cfg.Media.AudioDir, hearingSvc, jobSvc)
	retention.Start(ctx)
	defer retention.Stop()

	// 6. HTTP server
	server := api.NewServer(dbClient, orchestrator, scrape, scheduleSvc, docketSvc, hearingSvc, catalogRegistry)
	httpServer := &http.Server{
		Addr:    ":" + cfg.HTTPPort,
		Handler: server.Router(),
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("HTTP server listening", "addr", httpServer.Addr)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("HTTP server error", "error", err)
			errCh <- err
		}
	}()

	slog.Info("CanaryScope started successfully")

	// 7. Wait for shutdown signal or server error
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)
	select {
	case sig := <-sigCh:
		slog.Info("Shutdown signal received", "signal", sig)
	case err := <-errCh:
		slog.Error("Shutting down due to server error", "error", err)
	}

	// 8. Graceful shutdown: stop accepting requests, stop the loops,
	// let an in-flight stage finish.
	orchestrator.Stop()
	scrape.RequestStop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	}

	slog.Info("CanaryScope stopped")
}

// analysisClient builds the chat-completions client. Azure wins when a
// chat deployment is configured; otherwise OpenAI with the configured
// analysis model.
func analysisClient(p config.ProviderConfig) *llm.Client {
	if p.AzureEndpoint != "" && p.AzureAPIKey != "" && p.AzureChatDeployment != "" {
		return llm.NewAzure(p.AzureEndpoint, p.AzureAPIKey, p.AzureAPIVersion, p.AzureChatDeployment)
	}
	return llm.NewOpenAI("", p.OpenAIAPIKey, p.AnalysisModel)
}
