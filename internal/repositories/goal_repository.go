package repositories

import (
	"database/sql"

	"github.com/parasnikum/DevSync/internal/models"
)

type GoalRepository struct {
	db *sql.DB
}

func NewGoalRepository(db *sql.DB) *GoalRepository {
	return &GoalRepository{
		db: db,
	}
}

// Create creates a new goal
func (r *GoalRepository) Create(goal *models.Goal) error {
	query := `
		INSERT INTO goals (id, user_id, text, done, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`

	_, err := r.db.Exec(query,
		goal.ID,
		goal.UserID,
		goal.Text,
		goal.Done,
		goal.CreatedAt,
		goal.UpdatedAt,
	)
	return err
}

// GetByID retrieves a goal by ID
func (r *GoalRepository) GetByID(id string) (*models.Goal, error) {
	query := `SELECT id, user_id, text, done, created_at, updated_at FROM goals WHERE id = ?`

	goal := &models.Goal{}
	err := r.db.QueryRow(query, id).Scan(
		&goal.ID,
		&goal.UserID,
		&goal.Text,
		&goal.Done,
		&goal.CreatedAt,
		&goal.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return goal, nil
}

// GetByUserID retrieves all goals for a user, newest first
func (r *GoalRepository) GetByUserID(userID string) ([]*models.Goal, error) {
	query := `
		SELECT id, user_id, text, done, created_at, updated_at
		FROM goals
		WHERE user_id = ?
		ORDER BY created_at DESC
	`

	rows, err := r.db.Query(query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var goals []*models.Goal
	for rows.Next() {
		goal := &models.Goal{}
		err := rows.Scan(
			&goal.ID,
			&goal.UserID,
			&goal.Text,
			&goal.Done,
			&goal.CreatedAt,
			&goal.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		goals = append(goals, goal)
	}

	return goals, rows.Err()
}

// Update updates a goal
func (r *GoalRepository) Update(goal *models.Goal) error {
	query := `UPDATE goals SET text = ?, done = ?, updated_at = ? WHERE id = ?`

	_, err := r.db.Exec(query,
		goal.Text,
		goal.Done,
		goal.UpdatedAt,
		goal.ID,
	)
	return err
}

// Delete deletes a goal
func (r *GoalRepository) Delete(id string) error {
	_, err := r.db.Exec(`DELETE FROM goals WHERE id = ?`, id)
	return err
}
