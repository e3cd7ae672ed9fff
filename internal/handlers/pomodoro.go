package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/parasnikum/DevSync/internal/middleware"
	"github.com/parasnikum/DevSync/internal/models"
	"github.com/parasnikum/DevSync/internal/services"
)

type PomodoroHandler struct {
	pomodoroService *services.PomodoroService
}

func NewPomodoroHandler(pomodoroService *services.PomodoroService) *PomodoroHandler {
	return &PomodoroHandler{pomodoroService: pomodoroService}
}

type sessionRequest struct {
	Kind            string    `json:"kind" binding:"required"`
	DurationMinutes int       `json:"duration_minutes" binding:"required"`
	StartedAt       time.Time `json:"started_at"`
}

// RecordSession logs a completed pomodoro block
func (h *PomodoroHandler) RecordSession(c *gin.Context) {
	session := middleware.GetSession(c)

	var req sessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	recorded, err := h.pomodoroService.RecordSession(session.UserID, models.SessionKind(req.Kind), req.DurationMinutes, req.StartedAt)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"session": recorded})
}

// GetSummary returns total focus time and recent sessions
func (h *PomodoroHandler) GetSummary(c *gin.Context) {
	session := middleware.GetSession(c)

	summary, err := h.pomodoroService.GetSummary(session.UserID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load summary"})
		return
	}

	c.JSON(http.StatusOK, summary)
}
