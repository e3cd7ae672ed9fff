package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/parasnikum/DevSync/internal/middleware"
	"github.com/parasnikum/DevSync/internal/services"
)

type NoteHandler struct {
	noteService *services.NoteService
}

func NewNoteHandler(noteService *services.NoteService) *NoteHandler {
	return &NoteHandler{noteService: noteService}
}

type noteRequest struct {
	Title   string `json:"title" binding:"required"`
	Content string `json:"content"`
}

// ListNotes returns the user's notes, newest first
func (h *NoteHandler) ListNotes(c *gin.Context) {
	session := middleware.GetSession(c)

	notes, err := h.noteService.GetNotes(session.UserID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load notes"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"notes": notes})
}

// CreateNote adds a note for the user
func (h *NoteHandler) CreateNote(c *gin.Context) {
	session := middleware.GetSession(c)

	var req noteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	note, err := h.noteService.CreateNote(session.UserID, req.Title, req.Content)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"note": note})
}

// UpdateNote edits a note
func (h *NoteHandler) UpdateNote(c *gin.Context) {
	session := middleware.GetSession(c)

	var req noteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	note, err := h.noteService.UpdateNote(session.UserID, c.Param("id"), req.Title, req.Content)
	if err != nil {
		if errors.Is(err, services.ErrNotOwner) {
			c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusNotFound, gin.H{"error": "note not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"note": note})
}

// DeleteNote removes a note
func (h *NoteHandler) DeleteNote(c *gin.Context) {
	session := middleware.GetSession(c)

	if err := h.noteService.DeleteNote(session.UserID, c.Param("id")); err != nil {
		if errors.Is(err, services.ErrNotOwner) {
			c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusNotFound, gin.H{"error": "note not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "note deleted"})
}
