package models

import (
	"time"

	"github.com/google/uuid"
)

// Goal is a single dashboard goal entry
type Goal struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Text      string    `json:"text"`
	Done      bool      `json:"done"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewGoal creates a new Goal with a generated UUID
func NewGoal(userID, text string) *Goal {
	now := time.Now()
	return &Goal{
		ID:        uuid.New().String(),
		UserID:    userID,
		Text:      text,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
