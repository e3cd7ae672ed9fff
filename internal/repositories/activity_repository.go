package repositories

import (
	"database/sql"

	"github.com/google/uuid"
	"github.com/parasnikum/DevSync/internal/models"
)

type ActivityRepository struct {
	db *sql.DB
}

func NewActivityRepository(db *sql.DB) *ActivityRepository {
	return &ActivityRepository{
		db: db,
	}
}

// Increment bumps the activity counter for a user on a given day
func (r *ActivityRepository) Increment(userID, day string) error {
	query := `
		INSERT INTO activity_days (id, user_id, day, count)
		VALUES (?, ?, ?, 1)
		ON CONFLICT(user_id, day) DO UPDATE SET count = count + 1
	`

	_, err := r.db.Exec(query, uuid.New().String(), userID, day)
	return err
}

// GetSince retrieves a user's activity days on or after the given day,
// oldest first
func (r *ActivityRepository) GetSince(userID, day string) ([]*models.ActivityDay, error) {
	query := `
		SELECT id, user_id, day, count
		FROM activity_days
		WHERE user_id = ? AND day >= ?
		ORDER BY day ASC
	`

	rows, err := r.db.Query(query, userID, day)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var days []*models.ActivityDay
	for rows.Next() {
		entry := &models.ActivityDay{}
		err := rows.Scan(
			&entry.ID,
			&entry.UserID,
			&entry.Day,
			&entry.Count,
		)
		if err != nil {
			return nil, err
		}
		days = append(days, entry)
	}

	return days, rows.Err()
}
