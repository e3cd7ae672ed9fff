package models

import (
	"time"

	"github.com/google/uuid"
)

// ContactMessage is a submission from the public contact form
type ContactMessage struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

// NewContactMessage creates a new ContactMessage with a generated UUID
func NewContactMessage(name, email, message string) *ContactMessage {
	return &ContactMessage{
		ID:        uuid.New().String(),
		Name:      name,
		Email:     email,
		Message:   message,
		CreatedAt: time.Now(),
	}
}
