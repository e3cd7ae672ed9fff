package services

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/parasnikum/DevSync/internal/models"
	"github.com/parasnikum/DevSync/internal/repositories"
	"github.com/parasnikum/DevSync/pkg/config"
)

// ErrLeetCodeUserNotFound is returned when the remote profile does not exist
var ErrLeetCodeUserNotFound = errors.New("leetcode user not found")

const leetcodeProfileQuery = `query LeetCodeProfile($username: String!, $limit: Int!) {
  matchedUser(username: $username) {
    username
    profile { ranking userAvatar }
    submitStatsGlobal { acSubmissionNum { difficulty count } }
    badges { id displayName icon }
    submissionCalendar
  }
  userContestRanking(username: $username) {
    attendedContestsCount rating globalRanking totalParticipants topPercentage
    badge { name icon expired }
  }
  userContestRankingHistory(username: $username) {
    attended rating contest { title startTime }
  }
  recentAcSubmissionList(username: $username, limit: $limit) {
    id title titleSlug timestamp
  }
}`

type LeetCodeService struct {
	leetcodeRepo *repositories.LeetCodeRepository
	httpClient   *http.Client
	endpoint     string
	staleAfter   time.Duration
}

func NewLeetCodeService(leetcodeRepo *repositories.LeetCodeRepository) *LeetCodeService {
	return &LeetCodeService{
		leetcodeRepo: leetcodeRepo,
		httpClient:   &http.Client{Timeout: 30 * time.Second},
		endpoint:     config.AppConfig.LeetCode.Endpoint,
		staleAfter:   time.Duration(config.AppConfig.LeetCode.StaleHours) * time.Hour,
	}
}

// GetStats returns the cached profile for a username. When the cache is
// missing or older than the staleness window, the profile is fetched from
// LeetCode first.
func (s *LeetCodeService) GetStats(ctx context.Context, username string) (*models.LeetCodeStats, error) {
	username = strings.ToLower(strings.TrimSpace(username))
	if username == "" {
		return nil, errors.New("username is required")
	}

	stats, err := s.leetcodeRepo.GetByUsername(username)
	if err != nil {
		if err != sql.ErrNoRows {
			return nil, fmt.Errorf("failed to read cache: %w", err)
		}
		return s.SyncUser(ctx, username)
	}

	if stats.IsStale(s.staleAfter) {
		fresh, err := s.SyncUser(ctx, username)
		if err != nil {
			// Serve the stale copy rather than failing the request
			return stats, nil
		}
		return fresh, nil
	}

	return stats, nil
}

// StaleUsernames lists cached usernames whose profile is due for a refresh
func (s *LeetCodeService) StaleUsernames(limit int) ([]string, error) {
	cutoff := time.Now().Add(-s.staleAfter)
	return s.leetcodeRepo.GetStale(cutoff, limit)
}

// SyncUser fetches the profile from LeetCode and upserts the cache row
func (s *LeetCodeService) SyncUser(ctx context.Context, username string) (*models.LeetCodeStats, error) {
	username = strings.ToLower(strings.TrimSpace(username))

	payload, err := s.fetchProfile(ctx, username)
	if err != nil {
		return nil, err
	}

	stats, err := s.buildStats(username, payload)
	if err != nil {
		return nil, err
	}

	if err := s.leetcodeRepo.Upsert(stats); err != nil {
		return nil, fmt.Errorf("failed to upsert stats for %s: %w", username, err)
	}

	return stats, nil
}

// leetcodeResponse mirrors the GraphQL response shape
type leetcodeResponse struct {
	Data struct {
		MatchedUser *struct {
			Username string `json:"username"`
			Profile  struct {
				Ranking    int    `json:"ranking"`
				UserAvatar string `json:"userAvatar"`
			} `json:"profile"`
			SubmitStatsGlobal struct {
				AcSubmissionNum []struct {
					Difficulty string `json:"difficulty"`
					Count      int    `json:"count"`
				} `json:"acSubmissionNum"`
			} `json:"submitStatsGlobal"`
			Badges []struct {
				ID          string `json:"id"`
				DisplayName string `json:"displayName"`
				Icon        string `json:"icon"`
			} `json:"badges"`
			SubmissionCalendar string `json:"submissionCalendar"`
		} `json:"matchedUser"`
		UserContestRanking *struct {
			AttendedContestsCount int     `json:"attendedContestsCount"`
			Rating                float64 `json:"rating"`
			GlobalRanking         int     `json:"globalRanking"`
			TotalParticipants     int     `json:"totalParticipants"`
			TopPercentage         float64 `json:"topPercentage"`
			Badge                 *struct {
				Name    string `json:"name"`
				Icon    string `json:"icon"`
				Expired bool   `json:"expired"`
			} `json:"badge"`
		} `json:"userContestRanking"`
		UserContestRankingHistory []struct {
			Attended bool    `json:"attended"`
			Rating   float64 `json:"rating"`
			Contest  struct {
				Title     string `json:"title"`
				StartTime int64  `json:"startTime"`
			} `json:"contest"`
		} `json:"userContestRankingHistory"`
		RecentAcSubmissionList []struct {
			ID        string `json:"id"`
			Title     string `json:"title"`
			TitleSlug string `json:"titleSlug"`
			Timestamp string `json:"timestamp"`
		} `json:"recentAcSubmissionList"`
	} `json:"data"`
}

func (s *LeetCodeService) fetchProfile(ctx context.Context, username string) (*leetcodeResponse, error) {
	body, err := json.Marshal(map[string]interface{}{
		"query": leetcodeProfileQuery,
		"variables": map[string]interface{}{
			"username": username,
			"limit":    10,
		},
	})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to reach LeetCode: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("LeetCode API returned status: %d", resp.StatusCode)
	}

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	var payload leetcodeResponse
	if err := json.Unmarshal(respBody, &payload); err != nil {
		return nil, fmt.Errorf("failed to unmarshal profile data: %w", err)
	}

	if payload.Data.MatchedUser == nil {
		return nil, ErrLeetCodeUserNotFound
	}

	return &payload, nil
}

func (s *LeetCodeService) buildStats(username string, payload *leetcodeResponse) (*models.LeetCodeStats, error) {
	matched := payload.Data.MatchedUser

	stats := models.NewLeetCodeStats(username)
	stats.Ranking = matched.Profile.Ranking
	stats.Avatar = matched.Profile.UserAvatar
	stats.LastUpdated = time.Now()

	for _, entry := range matched.SubmitStatsGlobal.AcSubmissionNum {
		stats.Solved = append(stats.Solved, models.SolvedCount{
			Difficulty: entry.Difficulty,
			Count:      entry.Count,
		})
	}

	for _, badge := range matched.Badges {
		stats.Badges = append(stats.Badges, models.Badge{
			ID:          badge.ID,
			DisplayName: badge.DisplayName,
			Icon:        badge.Icon,
		})
	}

	// The calendar arrives as a JSON string of unix-day -> submission count
	if matched.SubmissionCalendar != "" {
		var calendar map[string]int
		if err := json.Unmarshal([]byte(matched.SubmissionCalendar), &calendar); err != nil {
			return nil, fmt.Errorf("failed to parse submission calendar: %w", err)
		}
		stats.SubmissionCalendar = calendar
	}

	for _, sub := range payload.Data.RecentAcSubmissionList {
		ts, err := strconv.ParseInt(sub.Timestamp, 10, 64)
		if err != nil {
			continue
		}
		stats.RecentSubmissions = append(stats.RecentSubmissions, models.RecentSubmission{
			ID:        sub.ID,
			Title:     sub.Title,
			TitleSlug: sub.TitleSlug,
			Timestamp: time.Unix(ts, 0),
		})
	}

	if ranking := payload.Data.UserContestRanking; ranking != nil {
		stats.ContestRating = models.ContestRating{
			AttendedContestsCount: ranking.AttendedContestsCount,
			Rating:                ranking.Rating,
			GlobalRanking:         ranking.GlobalRanking,
			TotalParticipants:     ranking.TotalParticipants,
			TopPercentage:         ranking.TopPercentage,
		}
		if ranking.Badge != nil {
			stats.ContestRating.Badge = models.ContestBadge{
				Name:    ranking.Badge.Name,
				Icon:    ranking.Badge.Icon,
				Expired: ranking.Badge.Expired,
			}
		}
	}

	for _, contest := range payload.Data.UserContestRankingHistory {
		stats.ContestHistory = append(stats.ContestHistory, models.ContestHistoryEntry{
			Attended:  contest.Attended,
			Rating:    contest.Rating,
			Title:     contest.Contest.Title,
			StartTime: time.Unix(contest.Contest.StartTime, 0),
		})
	}

	return stats, nil
}
