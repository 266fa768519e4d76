// Package api exposes the control surface: pipeline and scraper
// control, schedule management, the docket review queue, catalogue
// sync, health, and metrics.
package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/canaryscope/canaryscope/pkg/database"
	"github.com/canaryscope/canaryscope/pkg/metrics"
	"github.com/canaryscope/canaryscope/pkg/models"
	"github.com/canaryscope/canaryscope/pkg/pipeline"
	"github.com/canaryscope/canaryscope/pkg/scraper"
	"github.com/canaryscope/canaryscope/pkg/services"
	"github.com/canaryscope/canaryscope/pkg/sources"
	"github.com/canaryscope/canaryscope/pkg/version"
)

// PipelineController is the orchestrator surface the API needs.
type PipelineController interface {
	Start(filters models.PipelineFilters) error
	Stop()
	Pause(ctx context.Context) error
	Resume(ctx context.Context) error
	Status() pipeline.Status
	RunStage(ctx context.Context, hearingID, stageName string) (pipeline.StageResult, error)
}

// ScrapeController is the scraper surface the API needs.
type ScrapeController interface {
	Start(filters models.ScrapeFilters) error
	RequestStop()
	Progress() scraper.Progress
}

// Server wires the HTTP handlers to the services and controllers.
type Server struct {
	db        *database.Client
	pipeline  PipelineController
	scraper   ScrapeController
	schedules *services.ScheduleService
	dockets   *services.DocketService
	hearings  *services.HearingService
	catalogs  *sources.CatalogRegistry
	logger    *slog.Logger
}

// NewServer creates the API server.
func NewServer(
	db *database.Client,
	pipelineCtl PipelineController,
	scrapeCtl ScrapeController,
	schedules *services.ScheduleService,
	dockets *services.DocketService,
	hearings *services.HearingService,
	catalogs *sources.CatalogRegistry,
) *Server {
	return &Server{
		db:        db,
		pipeline:  pipelineCtl,
		scraper:   scrapeCtl,
		schedules: schedules,
		dockets:   dockets,
		hearings:  hearings,
		catalogs:  catalogs,
		logger:    slog.Default().With("component", "api"),
	}
}

// Router builds the gin engine with all routes registered.
func (s *Server) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	r.GET("/health", s.health)
	r.GET("/metrics", gin.WrapH(metrics.Handler()))

	v1 := r.Group("/api/v1")
	{
		pipe := v1.Group("/pipeline")
		pipe.POST("/start", s.startPipeline)
		pipe.POST("/stop", s.stopPipeline)
		pipe.POST("/pause", s.pausePipeline)
		pipe.POST("/resume", s.resumePipeline)
		pipe.GET("/status", s.pipelineStatus)
		pipe.POST("/hearings/:id/stages/:stage", s.runStage)

		scrape := v1.Group("/scraper")
		scrape.POST("/run", s.runScraper)
		scrape.POST("/stop", s.stopScraper)
		scrape.GET("/progress", s.scraperProgress)

		v1.GET("/schedules", s.listSchedules)
		v1.POST("/schedules", s.createSchedule)
		v1.PATCH("/schedules/:id", s.updateSchedule)
		v1.DELETE("/schedules/:id", s.deleteSchedule)

		v1.GET("/review/dockets", s.listReviewQueue)
		v1.POST("/review/dockets/:id", s.resolveReview)

		v1.POST("/catalog/sync", s.syncCatalog)
	}
	return r
}

// health reports process and database liveness.
func (s *Server) health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	dbHealth, err := database.Health(ctx, s.db.DB())
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":   "unhealthy",
			"database": dbHealth,
			"error":    err.Error(),
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"status":   "healthy",
		"database": dbHealth,
		"version":  version.Full(),
	})
}
