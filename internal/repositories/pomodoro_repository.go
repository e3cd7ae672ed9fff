package repositories

import (
	"database/sql"

	"github.com/parasnikum/DevSync/internal/models"
)

type PomodoroRepository struct {
	db *sql.DB
}

func NewPomodoroRepository(db *sql.DB) *PomodoroRepository {
	return &PomodoroRepository{
		db: db,
	}
}

// Create records a completed pomodoro session
func (r *PomodoroRepository) Create(session *models.PomodoroSession) error {
	query := `
		INSERT INTO pomodoro_sessions (id, user_id, kind, duration_minutes, started_at, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`

	_, err := r.db.Exec(query,
		session.ID,
		session.UserID,
		session.Kind,
		session.DurationMinutes,
		session.StartedAt,
		session.CreatedAt,
	)
	return err
}

// GetByUserID retrieves the most recent sessions for a user
func (r *PomodoroRepository) GetByUserID(userID string, limit int) ([]*models.PomodoroSession, error) {
	query := `
		SELECT id, user_id, kind, duration_minutes, started_at, created_at
		FROM pomodoro_sessions
		WHERE user_id = ?
		ORDER BY started_at DESC
		LIMIT ?
	`

	rows, err := r.db.Query(query, userID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sessions []*models.PomodoroSession
	for rows.Next() {
		session := &models.PomodoroSession{}
		err := rows.Scan(
			&session.ID,
			&session.UserID,
			&session.Kind,
			&session.DurationMinutes,
			&session.StartedAt,
			&session.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		sessions = append(sessions, session)
	}

	return sessions, rows.Err()
}

// TotalFocusMinutes sums the focus time a user has logged
func (r *PomodoroRepository) TotalFocusMinutes(userID string) (int, error) {
	query := `
		SELECT COALESCE(SUM(duration_minutes), 0)
		FROM pomodoro_sessions
		WHERE user_id = ? AND kind = ?
	`

	var total int
	err := r.db.QueryRow(query, userID, models.SessionKindFocus).Scan(&total)
	return total, err
}
