package repositories

import (
	"database/sql"
	"encoding/json"

	"github.com/google/uuid"
	"github.com/parasnikum/DevSync/internal/models"
)

type UserRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{
		db: db,
	}
}

const userColumns = `id, name, email, password_hash, avatar, bio, location, skills, social_links, projects, github_access_token, email_verified, verification_code, verification_expires, created_at, updated_at`

// Create creates a new user
func (r *UserRepository) Create(user *models.User) error {
	skills, err := json.Marshal(user.Skills)
	if err != nil {
		return err
	}
	socialLinks, err := json.Marshal(user.SocialLinks)
	if err != nil {
		return err
	}
	projects, err := json.Marshal(user.Projects)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO users (` + userColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err = r.db.Exec(query,
		user.ID.String(),
		user.Name,
		user.Email,
		user.PasswordHash,
		user.Avatar,
		user.Bio,
		user.Location,
		string(skills),
		string(socialLinks),
		string(projects),
		user.GitHubAccessToken,
		user.EmailVerified,
		user.VerificationCode,
		user.VerificationExpires,
		user.CreatedAt,
		user.UpdatedAt,
	)
	return err
}

// GetByID retrieves a user by ID
func (r *UserRepository) GetByID(id string) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = ?`
	return r.scanUser(r.db.QueryRow(query, id))
}

// GetByEmail retrieves a user by email
func (r *UserRepository) GetByEmail(email string) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = ?`
	return r.scanUser(r.db.QueryRow(query, email))
}

// Update updates a user
func (r *UserRepository) Update(user *models.User) error {
	skills, err := json.Marshal(user.Skills)
	if err != nil {
		return err
	}
	socialLinks, err := json.Marshal(user.SocialLinks)
	if err != nil {
		return err
	}
	projects, err := json.Marshal(user.Projects)
	if err != nil {
		return err
	}

	query := `
		UPDATE users
		SET name = ?, email = ?, password_hash = ?, avatar = ?, bio = ?, location = ?, skills = ?,
		    social_links = ?, projects = ?, github_access_token = ?, email_verified = ?,
		    verification_code = ?, verification_expires = ?, updated_at = ?
		WHERE id = ?
	`

	_, err = r.db.Exec(query,
		user.Name,
		user.Email,
		user.PasswordHash,
		user.Avatar,
		user.Bio,
		user.Location,
		string(skills),
		string(socialLinks),
		string(projects),
		user.GitHubAccessToken,
		user.EmailVerified,
		user.VerificationCode,
		user.VerificationExpires,
		user.UpdatedAt,
		user.ID.String(),
	)
	return err
}

func (r *UserRepository) scanUser(row *sql.Row) (*models.User, error) {
	var user models.User
	var userID, skills, socialLinks, projects string

	err := row.Scan(
		&userID,
		&user.Name,
		&user.Email,
		&user.PasswordHash,
		&user.Avatar,
		&user.Bio,
		&user.Location,
		&skills,
		&socialLinks,
		&projects,
		&user.GitHubAccessToken,
		&user.EmailVerified,
		&user.VerificationCode,
		&user.VerificationExpires,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	user.ID, err = uuid.Parse(userID)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal([]byte(skills), &user.Skills); err != nil {
		return nil, err
	}
	if err := json.Unmarshal([]byte(socialLinks), &user.SocialLinks); err != nil {
		return nil, err
	}
	if err := json.Unmarshal([]byte(projects), &user.Projects); err != nil {
		return nil, err
	}

	return &user, nil
}
