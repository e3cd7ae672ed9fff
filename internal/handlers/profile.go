package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/parasnikum/DevSync/internal/middleware"
	"github.com/parasnikum/DevSync/internal/services"
)

type ProfileHandler struct {
	userService *services.UserService
}

func NewProfileHandler(userService *services.UserService) *ProfileHandler {
	return &ProfileHandler{userService: userService}
}

// GetProfile returns the authenticated user's profile
func (h *ProfileHandler) GetProfile(c *gin.Context) {
	session := middleware.GetSession(c)

	user, err := h.userService.GetUserByID(session.UserID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": user})
}

// UpdateProfile applies edits to the authenticated user's profile
func (h *ProfileHandler) UpdateProfile(c *gin.Context) {
	session := middleware.GetSession(c)

	var update services.ProfileUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.userService.UpdateProfile(session.UserID, update)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": user})
}

type projectRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description" binding:"required"`
	Link        string `json:"link"`
}

// AddProject adds a portfolio project to the profile
func (h *ProfileHandler) AddProject(c *gin.Context) {
	session := middleware.GetSession(c)

	var req projectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.userService.AddProject(session.UserID, req.Name, req.Description, req.Link)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"user": user})
}

// DeleteProject removes a portfolio project from the profile
func (h *ProfileHandler) DeleteProject(c *gin.Context) {
	session := middleware.GetSession(c)

	user, err := h.userService.DeleteProject(session.UserID, c.Param("id"))
	if err != nil {
		if errors.Is(err, services.ErrProjectNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete project"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": user})
}

// ResetAvatar regenerates the user's generated avatar
func (h *ProfileHandler) ResetAvatar(c *gin.Context) {
	session := middleware.GetSession(c)

	user, err := h.userService.ResetAvatar(session.UserID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": user})
}
