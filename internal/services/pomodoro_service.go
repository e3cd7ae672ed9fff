package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/parasnikum/DevSync/internal/models"
	"github.com/parasnikum/DevSync/internal/repositories"
)

type PomodoroService struct {
	pomodoroRepo *repositories.PomodoroRepository
	activityRepo *repositories.ActivityRepository
}

func NewPomodoroService(pomodoroRepo *repositories.PomodoroRepository, activityRepo *repositories.ActivityRepository) *PomodoroService {
	return &PomodoroService{
		pomodoroRepo: pomodoroRepo,
		activityRepo: activityRepo,
	}
}

// RecordSession stores a completed timer block. Focus sessions also bump the
// activity heatmap for the day the session started.
func (s *PomodoroService) RecordSession(userID string, kind models.SessionKind, durationMinutes int, startedAt time.Time) (*models.PomodoroSession, error) {
	if kind != models.SessionKindFocus && kind != models.SessionKindBreak {
		return nil, errors.New("kind must be focus or break")
	}
	if durationMinutes <= 0 {
		return nil, errors.New("duration must be positive")
	}
	if startedAt.IsZero() {
		startedAt = time.Now()
	}

	session := models.NewPomodoroSession(userID, kind, durationMinutes, startedAt)
	if err := s.pomodoroRepo.Create(session); err != nil {
		return nil, fmt.Errorf("failed to record session: %w", err)
	}

	if kind == models.SessionKindFocus {
		day := startedAt.Format("2006-01-02")
		if err := s.activityRepo.Increment(userID, day); err != nil {
			return nil, fmt.Errorf("failed to update activity: %w", err)
		}
	}

	return session, nil
}

// Summary aggregates a user's pomodoro history for the dashboard
type PomodoroSummary struct {
	TotalFocusMinutes int                       `json:"total_focus_minutes"`
	RecentSessions    []*models.PomodoroSession `json:"recent_sessions"`
}

// GetSummary returns total focus time and the latest sessions
func (s *PomodoroService) GetSummary(userID string) (*PomodoroSummary, error) {
	total, err := s.pomodoroRepo.TotalFocusMinutes(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to sum focus minutes: %w", err)
	}

	sessions, err := s.pomodoroRepo.GetByUserID(userID, 20)
	if err != nil {
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}

	return &PomodoroSummary{
		TotalFocusMinutes: total,
		RecentSessions:    sessions,
	}, nil
}
