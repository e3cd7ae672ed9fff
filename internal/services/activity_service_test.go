package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/parasnikum/DevSync/internal/models"
)

func activityDays(now time.Time, offsets ...int) []*models.ActivityDay {
	days := make([]*models.ActivityDay, 0, len(offsets))
	for _, offset := range offsets {
		days = append(days, &models.ActivityDay{
			Day:   now.AddDate(0, 0, -offset).Format(dayFormat),
			Count: 1,
		})
	}
	return days
}

func TestCurrentStreak(t *testing.T) {
	now := time.Date(2025, 7, 10, 15, 0, 0, 0, time.UTC)

	testCases := []struct {
		name     string
		days     []*models.ActivityDay
		expected int
	}{
		{
			name:     "No activity",
			days:     nil,
			expected: 0,
		},
		{
			name:     "Active today only",
			days:     activityDays(now, 0),
			expected: 1,
		},
		{
			name:     "Three day run ending today",
			days:     activityDays(now, 0, 1, 2),
			expected: 3,
		},
		{
			name:     "Streak alive without activity today",
			days:     activityDays(now, 1, 2),
			expected: 2,
		},
		{
			name:     "Broken by a missed day",
			days:     activityDays(now, 0, 2, 3),
			expected: 1,
		},
		{
			name:     "Old activity does not count",
			days:     activityDays(now, 5, 6, 7),
			expected: 0,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, CurrentStreak(tc.days, now))
		})
	}
}

func TestCurrentStreakIgnoresZeroCountDays(t *testing.T) {
	now := time.Date(2025, 7, 10, 15, 0, 0, 0, time.UTC)
	days := []*models.ActivityDay{
		{Day: now.Format(dayFormat), Count: 0},
		{Day: now.AddDate(0, 0, -1).Format(dayFormat), Count: 2},
	}

	assert.Equal(t, 1, CurrentStreak(days, now))
}
