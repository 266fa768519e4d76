package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/canaryscope/canaryscope/pkg/models"
)

// StartPipelineRequest carries the optional run filters and caps.
type StartPipelineRequest struct {
	States      []string `json:"states"`
	OnlyStage   string   `json:"only_stage"`
	MaxHearings int      `json:"max_hearings"`
	MaxCostUSD  float64  `json:"max_cost_usd"`
}

// startPipeline handles POST /api/v1/pipeline/start.
func (s *Server) startPipeline(c *gin.Context) {
	var req StartPipelineRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}

	filters := models.PipelineFilters{
		StateCodes:  req.States,
		OnlyStage:   req.OnlyStage,
		MaxHearings: req.MaxHearings,
		MaxCostUSD:  req.MaxCostUSD,
	}
	if err := s.pipeline.Start(filters); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusAccepted, gin.H{"message": "pipeline run started"})
}

// stopPipeline handles POST /api/v1/pipeline/stop.
func (s *Server) stopPipeline(c *gin.Context) {
	s.pipeline.Stop()
	c.JSON(http.StatusOK, gin.H{"message": "stop requested"})
}

// pausePipeline handles POST /api/v1/pipeline/pause.
func (s *Server) pausePipeline(c *gin.Context) {
	if err := s.pipeline.Pause(c.Request.Context()); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "pipeline paused"})
}

// resumePipeline handles POST /api/v1/pipeline/resume.
func (s *Server) resumePipeline(c *gin.Context) {
	if err := s.pipeline.Resume(c.Request.Context()); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "pipeline resumed"})
}

// pipelineStatus handles GET /api/v1/pipeline/status. The snapshot is
// augmented with hearing counts by status.
func (s *Server) pipelineStatus(c *gin.Context) {
	counts, err := s.hearings.StatusCounts(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"run":            s.pipeline.Status(),
		"hearing_counts": counts,
	})
}

// runStage handles POST /api/v1/pipeline/hearings/:id/stages/:stage,
// the one-shot manual stage run.
func (s *Server) runStage(c *gin.Context) {
	result, err := s.pipeline.RunStage(c.Request.Context(), c.Param("id"), c.Param("stage"))
	if err != nil {
		writeError(c, err)
		return
	}

	resp := gin.H{
		"success":  result.Success,
		"cost_usd": result.CostUSD,
		"outputs":  result.Outputs,
	}
	if result.Err != nil {
		resp["error"] = result.Err.Error()
	}
	c.JSON(http.StatusOK, resp)
}
