package services

import (
	"crypto/rand"
	"database/sql"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/parasnikum/DevSync/internal/models"
	"github.com/parasnikum/DevSync/internal/repositories"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidCredentials   = errors.New("invalid email or password")
	ErrEmailNotVerified     = errors.New("email is not verified")
	ErrEmailAlreadyVerified = errors.New("email is already verified")
	ErrVerificationExpired  = errors.New("verification code has expired")
	ErrInvalidCode          = errors.New("invalid verification code")
)

const verificationTTL = 15 * time.Minute

type UserService struct {
	userRepo *repositories.UserRepository
}

func NewUserService(userRepo *repositories.UserRepository) *UserService {
	return &UserService{
		userRepo: userRepo,
	}
}

// Register creates an unverified user with a hashed password and a fresh
// verification code. If the email already belongs to an unverified user,
// a new code is issued for that user instead.
func (s *UserService) Register(name, email, password string) (*models.User, string, error) {
	name = strings.TrimSpace(name)
	email = strings.ToLower(strings.TrimSpace(email))

	if name == "" {
		return nil, "", errors.New("name is required")
	}
	if !strings.Contains(email, "@") {
		return nil, "", errors.New("a valid email is required")
	}
	if len(password) < 6 {
		return nil, "", errors.New("password must be at least 6 characters")
	}

	existing, err := s.userRepo.GetByEmail(email)
	if err != nil && err != sql.ErrNoRows {
		return nil, "", fmt.Errorf("failed to look up user: %w", err)
	}

	if existing != nil {
		if existing.EmailVerified {
			return nil, "", errors.New("user already exists")
		}
		// Unverified duplicate registration: re-issue the code
		code, err := s.setVerificationCode(existing)
		if err != nil {
			return nil, "", err
		}
		return existing, code, nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", fmt.Errorf("failed to hash password: %w", err)
	}

	user := models.NewUser(name, email)
	user.PasswordHash = string(hash)

	code := generateVerificationCode()
	expires := time.Now().Add(verificationTTL)
	user.VerificationCode = &code
	user.VerificationExpires = &expires

	if err := s.userRepo.Create(user); err != nil {
		return nil, "", fmt.Errorf("failed to create user: %w", err)
	}

	return user, code, nil
}

// VerifyEmail checks the verification code and marks the user verified
func (s *UserService) VerifyEmail(userID, code string) (*models.User, error) {
	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	if user.EmailVerified {
		return nil, ErrEmailAlreadyVerified
	}
	if user.VerificationCode == nil || *user.VerificationCode != code {
		return nil, ErrInvalidCode
	}
	if user.VerificationExpires == nil || time.Now().After(*user.VerificationExpires) {
		return nil, ErrVerificationExpired
	}

	user.EmailVerified = true
	user.VerificationCode = nil
	user.VerificationExpires = nil
	user.UpdatedAt = time.Now()

	if err := s.userRepo.Update(user); err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}

	return user, nil
}

// ResendVerification issues a fresh verification code for an unverified user
func (s *UserService) ResendVerification(userID string) (*models.User, string, error) {
	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		return nil, "", fmt.Errorf("failed to get user: %w", err)
	}

	if user.EmailVerified {
		return nil, "", ErrEmailAlreadyVerified
	}

	code, err := s.setVerificationCode(user)
	if err != nil {
		return nil, "", err
	}

	return user, code, nil
}

// Authenticate validates email/password credentials for a verified user
func (s *UserService) Authenticate(email, password string) (*models.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	user, err := s.userRepo.GetByEmail(email)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	if user.PasswordHash == "" {
		// OAuth-only account
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	if !user.EmailVerified {
		return nil, ErrEmailNotVerified
	}

	return user, nil
}

// GetUserByID retrieves a user by ID
func (s *UserService) GetUserByID(id string) (*models.User, error) {
	return s.userRepo.GetByID(id)
}

// GetUserByEmail retrieves a user by email
func (s *UserService) GetUserByEmail(email string) (*models.User, error) {
	return s.userRepo.GetByEmail(strings.ToLower(strings.TrimSpace(email)))
}

// CreateUser creates a new user record directly (OAuth sign-in)
func (s *UserService) CreateUser(user *models.User) error {
	return s.userRepo.Create(user)
}

// NewGitHubUser builds a verified user from a GitHub OAuth profile.
// OAuth sign-ins skip email verification since GitHub already did it.
func (s *UserService) NewGitHubUser(githubUser *GitHubUser, accessToken string) *models.User {
	name := githubUser.Name
	if name == "" {
		name = githubUser.Login
	}
	user := models.NewUser(name, githubUser.Email)
	user.GitHubAccessToken = accessToken
	user.EmailVerified = true
	if githubUser.AvatarURL != "" {
		user.Avatar = githubUser.AvatarURL
	}
	user.SocialLinks.GitHub = "https://github.com/" + githubUser.Login
	return user
}

// UpdateUser updates a user
func (s *UserService) UpdateUser(user *models.User) error {
	user.UpdatedAt = time.Now()
	return s.userRepo.Update(user)
}

// ProfileUpdate carries the editable profile fields
type ProfileUpdate struct {
	Name        string             `json:"name"`
	Bio         string             `json:"bio"`
	Location    string             `json:"location"`
	Skills      []string           `json:"skills"`
	SocialLinks models.SocialLinks `json:"social_links"`
}

// UpdateProfile applies a profile update to the user
func (s *UserService) UpdateProfile(userID string, update ProfileUpdate) (*models.User, error) {
	if strings.TrimSpace(update.Name) == "" {
		return nil, errors.New("name is required")
	}

	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	user.Name = strings.TrimSpace(update.Name)
	user.Bio = update.Bio
	user.Location = update.Location
	if update.Skills != nil {
		user.Skills = update.Skills
	}
	user.SocialLinks = update.SocialLinks
	user.UpdatedAt = time.Now()

	if err := s.userRepo.Update(user); err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}

	return user, nil
}

// ErrProjectNotFound is returned when a project ID is not on the profile
var ErrProjectNotFound = errors.New("project not found")

// AddProject prepends a portfolio project to the user's profile
func (s *UserService) AddProject(userID, name, description, link string) (*models.User, error) {
	if strings.TrimSpace(name) == "" {
		return nil, errors.New("project name is required")
	}
	if strings.TrimSpace(description) == "" {
		return nil, errors.New("project description is required")
	}

	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load user: %w", err)
	}

	user.AddProject(strings.TrimSpace(name), strings.TrimSpace(description), strings.TrimSpace(link))
	if err := s.UpdateUser(user); err != nil {
		return nil, fmt.Errorf("failed to save project: %w", err)
	}

	return user, nil
}

// DeleteProject removes a portfolio project from the user's profile
func (s *UserService) DeleteProject(userID, projectID string) (*models.User, error) {
	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load user: %w", err)
	}

	if !user.RemoveProject(projectID) {
		return nil, ErrProjectNotFound
	}
	if err := s.UpdateUser(user); err != nil {
		return nil, fmt.Errorf("failed to save profile: %w", err)
	}

	return user, nil
}

// ResetAvatar regenerates the user's avatar from their email
func (s *UserService) ResetAvatar(userID string) (*models.User, error) {
	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	user.Avatar = models.GenerateAvatarURL(user.Email, user.Name)
	user.UpdatedAt = time.Now()

	if err := s.userRepo.Update(user); err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}

	return user, nil
}

func (s *UserService) setVerificationCode(user *models.User) (string, error) {
	code := generateVerificationCode()
	expires := time.Now().Add(verificationTTL)
	user.VerificationCode = &code
	user.VerificationExpires = &expires
	user.UpdatedAt = time.Now()

	if err := s.userRepo.Update(user); err != nil {
		return "", fmt.Errorf("failed to save verification code: %w", err)
	}

	return code, nil
}

// generateVerificationCode returns a random 6-digit code
func generateVerificationCode() string {
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		// crypto/rand failing is unrecoverable for auth purposes
		panic(err)
	}
	return fmt.Sprintf("%06d", n.Int64()+100000)
}
