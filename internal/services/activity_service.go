package services

import (
	"fmt"
	"time"

	"github.com/parasnikum/DevSync/internal/models"
	"github.com/parasnikum/DevSync/internal/repositories"
)

const dayFormat = "2006-01-02"

type ActivityService struct {
	activityRepo *repositories.ActivityRepository
}

func NewActivityService(activityRepo *repositories.ActivityRepository) *ActivityService {
	return &ActivityService{
		activityRepo: activityRepo,
	}
}

// Track bumps today's activity counter for a user
func (s *ActivityService) Track(userID string) error {
	return s.activityRepo.Increment(userID, time.Now().Format(dayFormat))
}

// Heatmap is the activity window plus the derived current streak
type Heatmap struct {
	Days   []*models.ActivityDay `json:"days"`
	Streak int                   `json:"streak"`
}

// GetHeatmap returns the last `windowDays` of activity and the user's
// current streak
func (s *ActivityService) GetHeatmap(userID string, windowDays int) (*Heatmap, error) {
	if windowDays <= 0 {
		windowDays = 365
	}

	since := time.Now().AddDate(0, 0, -windowDays).Format(dayFormat)
	days, err := s.activityRepo.GetSince(userID, since)
	if err != nil {
		return nil, fmt.Errorf("failed to load activity: %w", err)
	}

	return &Heatmap{
		Days:   days,
		Streak: CurrentStreak(days, time.Now()),
	}, nil
}

// CurrentStreak counts consecutive active days ending today or yesterday.
// A streak is not broken until a full day has passed without activity.
func CurrentStreak(days []*models.ActivityDay, now time.Time) int {
	active := make(map[string]bool, len(days))
	for _, d := range days {
		if d.Count > 0 {
			active[d.Day] = true
		}
	}

	cursor := now
	if !active[cursor.Format(dayFormat)] {
		// today has no activity yet; streak may still be alive from yesterday
		cursor = cursor.AddDate(0, 0, -1)
	}

	streak := 0
	for active[cursor.Format(dayFormat)] {
		streak++
		cursor = cursor.AddDate(0, 0, -1)
	}

	return streak
}
