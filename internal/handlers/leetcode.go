package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/parasnikum/DevSync/internal/services"
)

type LeetCodeHandler struct {
	leetcodeService *services.LeetCodeService
}

func NewLeetCodeHandler(leetcodeService *services.LeetCodeService) *LeetCodeHandler {
	return &LeetCodeHandler{leetcodeService: leetcodeService}
}

// GetStats returns cached LeetCode stats for a username, refreshing them
// first when the cached copy has gone stale
func (h *LeetCodeHandler) GetStats(c *gin.Context) {
	username := c.Param("username")
	if username == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "username is required"})
		return
	}

	stats, err := h.leetcodeService.GetStats(c.Request.Context(), username)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"stats": stats})
}
