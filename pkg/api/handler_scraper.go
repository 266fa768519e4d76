package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/canaryscope/canaryscope/pkg/models"
)

// RunScraperRequest carries the optional scrape filters.
type RunScraperRequest struct {
	Types  []string `json:"types"`
	State  string   `json:"state"`
	DryRun bool     `json:"dry_run"`
}

// runScraper handles POST /api/v1/scraper/run. The scrape runs in the
// background; progress is polled via /scraper/progress.
func (s *Server) runScraper(c *gin.Context) {
	var req RunScraperRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}

	filters := models.ScrapeFilters{
		Kinds:     req.Types,
		StateCode: req.State,
		DryRun:    req.DryRun,
	}
	if err := s.scraper.Start(filters); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusAccepted, gin.H{"message": "scrape started"})
}

// stopScraper handles POST /api/v1/scraper/stop.
func (s *Server) stopScraper(c *gin.Context) {
	s.scraper.RequestStop()
	c.JSON(http.StatusOK, gin.H{"message": "stop requested"})
}

// scraperProgress handles GET /api/v1/scraper/progress.
func (s *Server) scraperProgress(c *gin.Context) {
	c.JSON(http.StatusOK, s.scraper.Progress())
}
