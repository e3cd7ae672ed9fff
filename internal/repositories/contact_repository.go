package repositories

import (
	"database/sql"

	"github.com/parasnikum/DevSync/internal/models"
)

type ContactRepository struct {
	db *sql.DB
}

func NewContactRepository(db *sql.DB) *ContactRepository {
	return &ContactRepository{
		db: db,
	}
}

// Create stores a contact form submission
func (r *ContactRepository) Create(message *models.ContactMessage) error {
	query := `
		INSERT INTO contact_messages (id, name, email, message, created_at)
		VALUES (?, ?, ?, ?, ?)
	`

	_, err := r.db.Exec(query,
		message.ID,
		message.Name,
		message.Email,
		message.Message,
		message.CreatedAt,
	)
	return err
}
