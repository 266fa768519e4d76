package api

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/canaryscope/canaryscope/pkg/services"
)

// ResolveReviewRequest is the POST /api/v1/review/dockets/:id body.
type ResolveReviewRequest struct {
	Approved *bool  `json:"approved" binding:"required"`
	Reason   string `json:"reason"`
}

// SyncCatalogRequest is the POST /api/v1/catalog/sync body. Empty
// states means every registered state.
type SyncCatalogRequest struct {
	States []string `json:"states"`
	Since  string   `json:"since"`
}

// CatalogSyncResult is one state's sync outcome.
type CatalogSyncResult struct {
	services.CatalogSummary
	Error string `json:"error,omitempty"`
}

// listReviewQueue handles GET /api/v1/review/dockets.
func (s *Server) listReviewQueue(c *gin.Context) {
	limit := 50
	if v := c.Query("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 || n > 500 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be between 1 and 500"})
			return
		}
		limit = n
	}

	items, err := s.dockets.ListReviewQueue(c.Request.Context(), limit)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": items, "count": len(items)})
}

// resolveReview handles POST /api/v1/review/dockets/:id.
func (s *Server) resolveReview(c *gin.Context) {
	var req ResolveReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := s.dockets.ResolveReview(c.Request.Context(), c.Param("id"), *req.Approved, req.Reason); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "review resolved"})
}

// syncCatalog handles POST /api/v1/catalog/sync. States without a
// registered catalogue client fail individually; the rest still sync.
func (s *Server) syncCatalog(c *gin.Context) {
	var req SyncCatalogRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}

	var since *time.Time
	if req.Since != "" {
		t, err := time.Parse(time.RFC3339, req.Since)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "since must be RFC3339"})
			return
		}
		since = &t
	}

	states := req.States
	if len(states) == 0 {
		states = s.catalogs.States()
	}

	results := make([]CatalogSyncResult, 0, len(states))
	for _, state := range states {
		result := CatalogSyncResult{}
		result.StateCode = strings.ToUpper(state)

		client, err := s.catalogs.Lookup(state)
		if err != nil {
			result.Error = err.Error()
			results = append(results, result)
			continue
		}

		records, err := client.Fetch(c.Request.Context(), since)
		if err != nil {
			s.logger.Warn("catalogue fetch failed", "state", state, "error", err)
			result.Error = err.Error()
			results = append(results, result)
			continue
		}

		summary := s.dockets.SyncCatalog(c.Request.Context(), records)
		summary.StateCode = result.StateCode
		results = append(results, CatalogSyncResult{CatalogSummary: summary})
	}
	c.JSON(http.StatusOK, gin.H{"results": results})
}
