package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/parasnikum/DevSync/internal/models"
	"github.com/parasnikum/DevSync/internal/repositories"
)

// ErrNotOwner is returned when a user touches a record they do not own
var ErrNotOwner = errors.New("record does not belong to this user")

type GoalService struct {
	goalRepo *repositories.GoalRepository
}

func NewGoalService(goalRepo *repositories.GoalRepository) *GoalService {
	return &GoalService{
		goalRepo: goalRepo,
	}
}

// CreateGoal creates a goal for a user
func (s *GoalService) CreateGoal(userID, text string) (*models.Goal, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, errors.New("goal text is required")
	}

	goal := models.NewGoal(userID, text)
	if err := s.goalRepo.Create(goal); err != nil {
		return nil, fmt.Errorf("failed to create goal: %w", err)
	}

	return goal, nil
}

// GetGoals lists a user's goals
func (s *GoalService) GetGoals(userID string) ([]*models.Goal, error) {
	return s.goalRepo.GetByUserID(userID)
}

// UpdateGoal changes a goal's text and done state
func (s *GoalService) UpdateGoal(userID, goalID, text string, done bool) (*models.Goal, error) {
	goal, err := s.goalRepo.GetByID(goalID)
	if err != nil {
		return nil, fmt.Errorf("failed to get goal: %w", err)
	}
	if goal.UserID != userID {
		return nil, ErrNotOwner
	}

	if text = strings.TrimSpace(text); text != "" {
		goal.Text = text
	}
	goal.Done = done
	goal.UpdatedAt = time.Now()

	if err := s.goalRepo.Update(goal); err != nil {
		return nil, fmt.Errorf("failed to update goal: %w", err)
	}

	return goal, nil
}

// DeleteGoal removes a goal
func (s *GoalService) DeleteGoal(userID, goalID string) error {
	goal, err := s.goalRepo.GetByID(goalID)
	if err != nil {
		return fmt.Errorf("failed to get goal: %w", err)
	}
	if goal.UserID != userID {
		return ErrNotOwner
	}

	return s.goalRepo.Delete(goalID)
}
