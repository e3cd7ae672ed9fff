package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/parasnikum/DevSync/internal/models"
	"github.com/parasnikum/DevSync/internal/repositories"
)

type NoteService struct {
	noteRepo *repositories.NoteRepository
}

func NewNoteService(noteRepo *repositories.NoteRepository) *NoteService {
	return &NoteService{
		noteRepo: noteRepo,
	}
}

// CreateNote creates a note for a user
func (s *NoteService) CreateNote(userID, title, content string) (*models.Note, error) {
	if strings.TrimSpace(content) == "" {
		return nil, errors.New("note content is required")
	}

	note := models.NewNote(userID, strings.TrimSpace(title), content)
	if err := s.noteRepo.Create(note); err != nil {
		return nil, fmt.Errorf("failed to create note: %w", err)
	}

	return note, nil
}

// GetNotes lists a user's notes
func (s *NoteService) GetNotes(userID string) ([]*models.Note, error) {
	return s.noteRepo.GetByUserID(userID)
}

// UpdateNote changes a note's title and content
func (s *NoteService) UpdateNote(userID, noteID, title, content string) (*models.Note, error) {
	if strings.TrimSpace(content) == "" {
		return nil, errors.New("note content is required")
	}

	note, err := s.noteRepo.GetByID(noteID)
	if err != nil {
		return nil, fmt.Errorf("failed to get note: %w", err)
	}
	if note.UserID != userID {
		return nil, ErrNotOwner
	}

	note.Title = strings.TrimSpace(title)
	note.Content = content
	note.UpdatedAt = time.Now()

	if err := s.noteRepo.Update(note); err != nil {
		return nil, fmt.Errorf("failed to update note: %w", err)
	}

	return note, nil
}

// DeleteNote removes a note
func (s *NoteService) DeleteNote(userID, noteID string) error {
	note, err := s.noteRepo.GetByID(noteID)
	if err != nil {
		return fmt.Errorf("failed to get note: %w", err)
	}
	if note.UserID != userID {
		return ErrNotOwner
	}

	return s.noteRepo.Delete(noteID)
}
