package repositories

import (
	"database/sql"
	"encoding/json"
	"time"

	"github.com/parasnikum/DevSync/internal/models"
)

type LeetCodeRepository struct {
	db *sql.DB
}

func NewLeetCodeRepository(db *sql.DB) *LeetCodeRepository {
	return &LeetCodeRepository{
		db: db,
	}
}

const leetcodeColumns = `id, username, ranking, avatar, solved, badges, submission_calendar, recent_submissions, contest_rating, contest_history, last_updated, created_at, updated_at`

// GetByUsername retrieves cached stats for a username
func (r *LeetCodeRepository) GetByUsername(username string) (*models.LeetCodeStats, error) {
	query := `SELECT ` + leetcodeColumns + ` FROM leetcode_stats WHERE username = ?`

	stats := &models.LeetCodeStats{}
	var solved, badges, calendar, recent, rating, history string

	err := r.db.QueryRow(query, username).Scan(
		&stats.ID,
		&stats.Username,
		&stats.Ranking,
		&stats.Avatar,
		&solved,
		&badges,
		&calendar,
		&recent,
		&rating,
		&history,
		&stats.LastUpdated,
		&stats.CreatedAt,
		&stats.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	for _, field := range []struct {
		raw string
		dst interface{}
	}{
		{solved, &stats.Solved},
		{badges, &stats.Badges},
		{calendar, &stats.SubmissionCalendar},
		{recent, &stats.RecentSubmissions},
		{rating, &stats.ContestRating},
		{history, &stats.ContestHistory},
	} {
		if err := json.Unmarshal([]byte(field.raw), field.dst); err != nil {
			return nil, err
		}
	}

	return stats, nil
}

// Upsert inserts or replaces the cached stats for a username
func (r *LeetCodeRepository) Upsert(stats *models.LeetCodeStats) error {
	solved, err := json.Marshal(stats.Solved)
	if err != nil {
		return err
	}
	badges, err := json.Marshal(stats.Badges)
	if err != nil {
		return err
	}
	calendar, err := json.Marshal(stats.SubmissionCalendar)
	if err != nil {
		return err
	}
	recent, err := json.Marshal(stats.RecentSubmissions)
	if err != nil {
		return err
	}
	rating, err := json.Marshal(stats.ContestRating)
	if err != nil {
		return err
	}
	history, err := json.Marshal(stats.ContestHistory)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO leetcode_stats (` + leetcodeColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(username) DO UPDATE SET
			ranking = excluded.ranking,
			avatar = excluded.avatar,
			solved = excluded.solved,
			badges = excluded.badges,
			submission_calendar = excluded.submission_calendar,
			recent_submissions = excluded.recent_submissions,
			contest_rating = excluded.contest_rating,
			contest_history = excluded.contest_history,
			last_updated = excluded.last_updated,
			updated_at = excluded.updated_at
	`

	_, err = r.db.Exec(query,
		stats.ID,
		stats.Username,
		stats.Ranking,
		stats.Avatar,
		string(solved),
		string(badges),
		string(calendar),
		string(recent),
		string(rating),
		string(history),
		stats.LastUpdated,
		stats.CreatedAt,
		stats.UpdatedAt,
	)
	return err
}

// GetStale retrieves usernames whose cache is older than the cutoff,
// oldest first, up to limit
func (r *LeetCodeRepository) GetStale(cutoff time.Time, limit int) ([]string, error) {
	query := `
		SELECT username
		FROM leetcode_stats
		WHERE last_updated < ?
		ORDER BY last_updated ASC
		LIMIT ?
	`

	rows, err := r.db.Query(query, cutoff, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var usernames []string
	for rows.Next() {
		var username string
		if err := rows.Scan(&username); err != nil {
			return nil, err
		}
		usernames = append(usernames, username)
	}

	return usernames, rows.Err()
}
