package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/parasnikum/DevSync/internal/middleware"
	"github.com/parasnikum/DevSync/internal/services"
)

type ActivityHandler struct {
	activityService *services.ActivityService
}

func NewActivityHandler(activityService *services.ActivityService) *ActivityHandler {
	return &ActivityHandler{activityService: activityService}
}

// Track records one activity event for today
func (h *ActivityHandler) Track(c *gin.Context) {
	session := middleware.GetSession(c)

	if err := h.activityService.Track(session.UserID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to track activity"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "activity recorded"})
}

// GetHeatmap returns per-day counts and the current streak. The window
// defaults to a year and is clamped to positive values.
func (h *ActivityHandler) GetHeatmap(c *gin.Context) {
	session := middleware.GetSession(c)

	windowDays := 365
	if raw := c.Query("days"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			windowDays = parsed
		}
	}

	heatmap, err := h.activityService.GetHeatmap(session.UserID, windowDays)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load heatmap"})
		return
	}

	c.JSON(http.StatusOK, heatmap)
}
