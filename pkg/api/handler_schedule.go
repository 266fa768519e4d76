package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/canaryscope/canaryscope/pkg/services"
)

// CreateScheduleRequest is the POST /api/v1/schedules body.
type CreateScheduleRequest struct {
	Name          string         `json:"name" binding:"required"`
	Target        string         `json:"target" binding:"required"`
	ScheduleType  string         `json:"schedule_type" binding:"required"`
	ScheduleValue string         `json:"schedule_value" binding:"required"`
	Config        map[string]any `json:"config"`
}

// UpdateScheduleRequest is the PATCH /api/v1/schedules/:id body.
type UpdateScheduleRequest struct {
	Enabled *bool `json:"enabled" binding:"required"`
}

// listSchedules handles GET /api/v1/schedules.
func (s *Server) listSchedules(c *gin.Context) {
	rows, err := s.schedules.ListSchedules(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"schedules": rows})
}

// createSchedule handles POST /api/v1/schedules.
func (s *Server) createSchedule(c *gin.Context) {
	var req CreateScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	schedule, err := s.schedules.CreateSchedule(c.Request.Context(), services.CreateScheduleRequest{
		Name:          req.Name,
		Target:        req.Target,
		ScheduleType:  req.ScheduleType,
		ScheduleValue: req.ScheduleValue,
		Config:        req.Config,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, schedule)
}

// updateSchedule handles PATCH /api/v1/schedules/:id. Only the enabled
// flag is mutable; grammar or target changes are a delete and recreate.
func (s *Server) updateSchedule(c *gin.Context) {
	var req UpdateScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := s.schedules.SetEnabled(c.Request.Context(), c.Param("id"), *req.Enabled); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "schedule updated"})
}

// deleteSchedule handles DELETE /api/v1/schedules/:id.
func (s *Server) deleteSchedule(c *gin.Context) {
	if err := s.schedules.DeleteSchedule(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "schedule deleted"})
}
