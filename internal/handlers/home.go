package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type HomeHandler struct{}

func NewHomeHandler() *HomeHandler {
	return &HomeHandler{}
}

// Index greets API consumers hitting the root path
func (h *HomeHandler) Index(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"name":    "DevSync API",
		"message": "developer productivity dashboard backend",
	})
}

// Health reports liveness for load balancers and uptime checks
func (h *HomeHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// NotFound answers unknown routes with JSON
func NotFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
}
