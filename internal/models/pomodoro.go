package models

import (
	"time"

	"github.com/google/uuid"
)

// SessionKind distinguishes focus blocks from breaks
type SessionKind string

const (
	SessionKindFocus SessionKind = "focus"
	SessionKindBreak SessionKind = "break"
)

// PomodoroSession is one completed timer block
type PomodoroSession struct {
	ID              string      `json:"id"`
	UserID          string      `json:"user_id"`
	Kind            SessionKind `json:"kind"`
	DurationMinutes int         `json:"duration_minutes"`
	StartedAt       time.Time   `json:"started_at"`
	CreatedAt       time.Time   `json:"created_at"`
}

// NewPomodoroSession creates a new PomodoroSession with a generated UUID
func NewPomodoroSession(userID string, kind SessionKind, durationMinutes int, startedAt time.Time) *PomodoroSession {
	return &PomodoroSession{
		ID:              uuid.New().String(),
		UserID:          userID,
		Kind:            kind,
		DurationMinutes: durationMinutes,
		StartedAt:       startedAt,
		CreatedAt:       time.Now(),
	}
}

// ActivityDay is one cell of the activity heatmap
type ActivityDay struct {
	ID     string `json:"id"`
	UserID string `json:"user_id"`
	Day    string `json:"day"` // YYYY-MM-DD
	Count  int    `json:"count"`
}
