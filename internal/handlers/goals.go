package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/parasnikum/DevSync/internal/middleware"
	"github.com/parasnikum/DevSync/internal/services"
)

type GoalHandler struct {
	goalService *services.GoalService
}

func NewGoalHandler(goalService *services.GoalService) *GoalHandler {
	return &GoalHandler{goalService: goalService}
}

type goalRequest struct {
	Text string `json:"text" binding:"required"`
	Done bool   `json:"done"`
}

// ListGoals returns the user's goals, newest first
func (h *GoalHandler) ListGoals(c *gin.Context) {
	session := middleware.GetSession(c)

	goals, err := h.goalService.GetGoals(session.UserID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load goals"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"goals": goals})
}

// CreateGoal adds a goal for the user
func (h *GoalHandler) CreateGoal(c *gin.Context) {
	session := middleware.GetSession(c)

	var req goalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	goal, err := h.goalService.CreateGoal(session.UserID, req.Text)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"goal": goal})
}

// UpdateGoal edits a goal's text or toggles completion
func (h *GoalHandler) UpdateGoal(c *gin.Context) {
	session := middleware.GetSession(c)

	var req goalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	goal, err := h.goalService.UpdateGoal(session.UserID, c.Param("id"), req.Text, req.Done)
	if err != nil {
		if errors.Is(err, services.ErrNotOwner) {
			c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusNotFound, gin.H{"error": "goal not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"goal": goal})
}

// DeleteGoal removes a goal
func (h *GoalHandler) DeleteGoal(c *gin.Context) {
	session := middleware.GetSession(c)

	if err := h.goalService.DeleteGoal(session.UserID, c.Param("id")); err != nil {
		if errors.Is(err, services.ErrNotOwner) {
			c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusNotFound, gin.H{"error": "goal not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "goal deleted"})
}
