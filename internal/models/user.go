package models

import (
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
)

// SocialLinks holds the external profile links a user can attach to their
// account, including competitive coding platforms.
type SocialLinks struct {
	GitHub      string `json:"github,omitempty"`
	GitLab      string `json:"gitlab,omitempty"`
	LinkedIn    string `json:"linkedin,omitempty"`
	Twitter     string `json:"twitter,omitempty"`
	Website     string `json:"website,omitempty"`
	CodeChef    string `json:"codechef,omitempty"`
	HackerRank  string `json:"hackerrank,omitempty"`
	LeetCode    string `json:"leetcode,omitempty"`
	Codeforces  string `json:"codeforces,omitempty"`
	HackerEarth string `json:"hackerearth,omitempty"`
}

// Project is a portfolio entry on a user's profile
type Project struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Link        string    `json:"link,omitempty"`
	Date        time.Time `json:"date"`
}

type User struct {
	ID                  uuid.UUID   `json:"id"`
	Name                string      `json:"name"`
	Email               string      `json:"email"`
	PasswordHash        string      `json:"-"`
	Avatar              string      `json:"avatar"`
	Bio                 string      `json:"bio"`
	Location            string      `json:"location"`
	Skills              []string    `json:"skills"`
	SocialLinks         SocialLinks `json:"social_links"`
	Projects            []Project   `json:"projects"`
	GitHubAccessToken   string      `json:"-"`
	EmailVerified       bool        `json:"email_verified"`
	VerificationCode    *string     `json:"-"`
	VerificationExpires *time.Time  `json:"-"`
	CreatedAt           time.Time   `json:"created_at"`
	UpdatedAt           time.Time   `json:"updated_at"`
}

// NewUser creates a new User with a generated UUID and a default avatar
func NewUser(name, email string) *User {
	now := time.Now()
	return &User{
		ID:        uuid.New(),
		Name:      name,
		Email:     strings.ToLower(strings.TrimSpace(email)),
		Avatar:    GenerateAvatarURL(email, name),
		Skills:    []string{},
		Projects:  []Project{},
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// AddProject prepends a project to the user's portfolio, newest first
func (u *User) AddProject(name, description, link string) *Project {
	project := Project{
		ID:          uuid.New().String(),
		Name:        name,
		Description: description,
		Link:        link,
		Date:        time.Now(),
	}
	u.Projects = append([]Project{project}, u.Projects...)
	return &u.Projects[0]
}

// RemoveProject deletes the project with the given ID, reporting whether it
// was present
func (u *User) RemoveProject(projectID string) bool {
	for i, project := range u.Projects {
		if project.ID == projectID {
			u.Projects = append(u.Projects[:i], u.Projects[i+1:]...)
			return true
		}
	}
	return false
}

// GenerateAvatarURL builds a deterministic DiceBear avatar URL seeded by the
// user's email, falling back to the name.
func GenerateAvatarURL(email, name string) string {
	identifier := email
	if identifier == "" {
		identifier = name
	}
	if identifier == "" {
		identifier = "user"
	}
	identifier = strings.ToLower(strings.TrimSpace(identifier))

	return "https://api.dicebear.com/6.x/micah/svg?seed=" + url.QueryEscape(identifier)
}
