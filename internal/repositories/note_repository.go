package repositories

import (
	"database/sql"

	"github.com/parasnikum/DevSync/internal/models"
)

type NoteRepository struct {
	db *sql.DB
}

func NewNoteRepository(db *sql.DB) *NoteRepository {
	return &NoteRepository{
		db: db,
	}
}

// Create creates a new note
func (r *NoteRepository) Create(note *models.Note) error {
	query := `
		INSERT INTO notes (id, user_id, title, content, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`

	_, err := r.db.Exec(query,
		note.ID,
		note.UserID,
		note.Title,
		note.Content,
		note.CreatedAt,
		note.UpdatedAt,
	)
	return err
}

// GetByID retrieves a note by ID
func (r *NoteRepository) GetByID(id string) (*models.Note, error) {
	query := `SELECT id, user_id, title, content, created_at, updated_at FROM notes WHERE id = ?`

	note := &models.Note{}
	err := r.db.QueryRow(query, id).Scan(
		&note.ID,
		&note.UserID,
		&note.Title,
		&note.Content,
		&note.CreatedAt,
		&note.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return note, nil
}

// GetByUserID retrieves all notes for a user, most recently updated first
func (r *NoteRepository) GetByUserID(userID string) ([]*models.Note, error) {
	query := `
		SELECT id, user_id, title, content, created_at, updated_at
		FROM notes
		WHERE user_id = ?
		ORDER BY updated_at DESC
	`

	rows, err := r.db.Query(query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var notes []*models.Note
	for rows.Next() {
		note := &models.Note{}
		err := rows.Scan(
			&note.ID,
			&note.UserID,
			&note.Title,
			&note.Content,
			&note.CreatedAt,
			&note.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		notes = append(notes, note)
	}

	return notes, rows.Err()
}

// Update updates a note
func (r *NoteRepository) Update(note *models.Note) error {
	query := `UPDATE notes SET title = ?, content = ?, updated_at = ? WHERE id = ?`

	_, err := r.db.Exec(query,
		note.Title,
		note.Content,
		note.UpdatedAt,
		note.ID,
	)
	return err
}

// Delete deletes a note
func (r *NoteRepository) Delete(id string) error {
	_, err := r.db.Exec(`DELETE FROM notes WHERE id = ?`, id)
	return err
}
