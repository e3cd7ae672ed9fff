package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// SolvedCount is the number of accepted submissions per difficulty
type SolvedCount struct {
	Difficulty string `json:"difficulty"`
	Count      int    `json:"count"`
}

// Badge is a LeetCode profile badge
type Badge struct {
	ID          string `json:"id"`
	DisplayName string `json:"display_name"`
	Icon        string `json:"icon"`
}

// RecentSubmission is one entry of the recent accepted submissions list
type RecentSubmission struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	TitleSlug string    `json:"title_slug"`
	Timestamp time.Time `json:"timestamp"`
}

// ContestBadge is the badge attached to a contest rating
type ContestBadge struct {
	Name    string `json:"name"`
	Icon    string `json:"icon"`
	Expired bool   `json:"expired"`
}

// ContestRating summarizes a user's contest standing
type ContestRating struct {
	AttendedContestsCount int          `json:"attended_contests_count"`
	Rating                float64      `json:"rating"`
	GlobalRanking         int          `json:"global_ranking"`
	TotalParticipants     int          `json:"total_participants"`
	TopPercentage         float64      `json:"top_percentage"`
	Badge                 ContestBadge `json:"badge"`
}

// ContestHistoryEntry is one attended (or skipped) contest
type ContestHistoryEntry struct {
	Attended  bool      `json:"attended"`
	Rating    float64   `json:"rating"`
	Title     string    `json:"title"`
	StartTime time.Time `json:"start_time"`
}

// LeetCodeStats is the cached coding profile for one LeetCode username.
// The cache is refreshed when LastUpdated falls behind the staleness window.
type LeetCodeStats struct {
	ID                 string                `json:"id"`
	Username           string                `json:"username"`
	Ranking            int                   `json:"ranking"`
	Avatar             string                `json:"avatar"`
	Solved             []SolvedCount         `json:"solved"`
	Badges             []Badge               `json:"badges"`
	SubmissionCalendar map[string]int        `json:"submission_calendar"`
	RecentSubmissions  []RecentSubmission    `json:"recent_submissions"`
	ContestRating      ContestRating         `json:"contest_rating"`
	ContestHistory     []ContestHistoryEntry `json:"contest_history"`
	LastUpdated        time.Time             `json:"last_updated"`
	CreatedAt          time.Time             `json:"created_at"`
	UpdatedAt          time.Time             `json:"updated_at"`
}

// NewLeetCodeStats creates an empty stats record for a username
func NewLeetCodeStats(username string) *LeetCodeStats {
	now := time.Now()
	return &LeetCodeStats{
		ID:                 uuid.New().String(),
		Username:           strings.ToLower(strings.TrimSpace(username)),
		Solved:             []SolvedCount{},
		Badges:             []Badge{},
		SubmissionCalendar: map[string]int{},
		RecentSubmissions:  []RecentSubmission{},
		ContestHistory:     []ContestHistoryEntry{},
		CreatedAt:          now,
		UpdatedAt:          now,
	}
}

// IsStale reports whether the cached profile is older than the given window
func (s *LeetCodeStats) IsStale(window time.Duration) bool {
	return time.Since(s.LastUpdated) > window
}
