package services

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/parasnikum/DevSync/internal/models"
)

const leetcodeFixture = `{
	"data": {
		"matchedUser": {
			"username": "alice",
			"profile": {"ranking": 1234, "userAvatar": "https://assets.leetcode.com/alice.png"},
			"submitStatsGlobal": {
				"acSubmissionNum": [
					{"difficulty": "All", "count": 150},
					{"difficulty": "Easy", "count": 80},
					{"difficulty": "Medium", "count": 60},
					{"difficulty": "Hard", "count": 10}
				]
			},
			"badges": [{"id": "b1", "displayName": "50 Days Badge", "icon": "https://assets.leetcode.com/badge.png"}],
			"submissionCalendar": "{\"1719792000\": 3, \"1719878400\": 1}"
		},
		"userContestRanking": {
			"attendedContestsCount": 12,
			"rating": 1650.5,
			"globalRanking": 40000,
			"totalParticipants": 250000,
			"topPercentage": 16.0,
			"badge": {"name": "Knight", "icon": "https://assets.leetcode.com/knight.png", "expired": false}
		},
		"userContestRankingHistory": [
			{"attended": true, "rating": 1500, "contest": {"title": "Weekly Contest 400", "startTime": 1719100800}}
		],
		"recentAcSubmissionList": [
			{"id": "99", "title": "Two Sum", "titleSlug": "two-sum", "timestamp": "1719792000"},
			{"id": "100", "title": "Add Two Numbers", "titleSlug": "add-two-numbers", "timestamp": "not-a-number"}
		]
	}
}`

func TestBuildStats(t *testing.T) {
	var payload leetcodeResponse
	require.NoError(t, json.Unmarshal([]byte(leetcodeFixture), &payload))

	service := &LeetCodeService{}
	stats, err := service.buildStats("alice", &payload)
	require.NoError(t, err)

	assert.Equal(t, "alice", stats.Username)
	assert.Equal(t, 1234, stats.Ranking)
	assert.Equal(t, "https://assets.leetcode.com/alice.png", stats.Avatar)
	assert.Len(t, stats.Solved, 4)
	assert.Equal(t, "All", stats.Solved[0].Difficulty)
	assert.Equal(t, 150, stats.Solved[0].Count)
	assert.Len(t, stats.Badges, 1)
	assert.Equal(t, "50 Days Badge", stats.Badges[0].DisplayName)

	assert.Equal(t, map[string]int{"1719792000": 3, "1719878400": 1}, stats.SubmissionCalendar)

	// Submissions with malformed timestamps are skipped
	assert.Len(t, stats.RecentSubmissions, 1)
	assert.Equal(t, "two-sum", stats.RecentSubmissions[0].TitleSlug)
	assert.Equal(t, time.Unix(1719792000, 0), stats.RecentSubmissions[0].Timestamp)

	assert.Equal(t, 12, stats.ContestRating.AttendedContestsCount)
	assert.Equal(t, 1650.5, stats.ContestRating.Rating)
	assert.Equal(t, "Knight", stats.ContestRating.Badge.Name)
	assert.Len(t, stats.ContestHistory, 1)
	assert.Equal(t, "Weekly Contest 400", stats.ContestHistory[0].Title)
}

func TestBuildStatsBadCalendar(t *testing.T) {
	var payload leetcodeResponse
	require.NoError(t, json.Unmarshal([]byte(leetcodeFixture), &payload))
	payload.Data.MatchedUser.SubmissionCalendar = "{broken"

	service := &LeetCodeService{}
	_, err := service.buildStats("alice", &payload)
	assert.Error(t, err)
}

func TestLeetCodeStatsStaleness(t *testing.T) {
	window := 6 * time.Hour

	t.Run("Fresh stats", func(t *testing.T) {
		stats := models.NewLeetCodeStats("alice")
		stats.LastUpdated = time.Now().Add(-1 * time.Hour)
		assert.False(t, stats.IsStale(window))
	})

	t.Run("Stale stats", func(t *testing.T) {
		stats := models.NewLeetCodeStats("alice")
		stats.LastUpdated = time.Now().Add(-7 * time.Hour)
		assert.True(t, stats.IsStale(window))
	})

	t.Run("Never updated", func(t *testing.T) {
		stats := models.NewLeetCodeStats("alice")
		assert.True(t, stats.IsStale(window))
	})
}
