package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/parasnikum/DevSync/internal/models"
)

func TestGenerateVerificationCode(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		code := generateVerificationCode()
		assert.Len(t, code, 6)
		for _, r := range code {
			assert.True(t, r >= '0' && r <= '9')
		}
		seen[code] = true
	}
	// Not a distribution test, just a sanity check that codes vary
	assert.Greater(t, len(seen), 1)
}

func TestUserProjects(t *testing.T) {
	user := models.NewUser("Alice", "alice@example.com")

	first := user.AddProject("DevSync", "Productivity dashboard", "https://github.com/alice/devsync")
	second := user.AddProject("Sorter", "Sorting visualizer", "")

	t.Run("Newest project first", func(t *testing.T) {
		assert.Len(t, user.Projects, 2)
		assert.Equal(t, "Sorter", user.Projects[0].Name)
		assert.Equal(t, "DevSync", user.Projects[1].Name)
		assert.NotEmpty(t, first.ID)
		assert.NotEqual(t, first.ID, second.ID)
	})

	t.Run("Remove existing project", func(t *testing.T) {
		assert.True(t, user.RemoveProject(first.ID))
		assert.Len(t, user.Projects, 1)
		assert.Equal(t, "Sorter", user.Projects[0].Name)
	})

	t.Run("Remove unknown project", func(t *testing.T) {
		assert.False(t, user.RemoveProject("missing-id"))
		assert.Len(t, user.Projects, 1)
	})
}

func TestNewGitHubUser(t *testing.T) {
	service := &UserService{}

	t.Run("Full profile", func(t *testing.T) {
		user := service.NewGitHubUser(&GitHubUser{
			Login:     "octocat",
			Name:      "The Octocat",
			Email:     "octo@example.com",
			AvatarURL: "https://avatars.githubusercontent.com/u/1",
		}, "gho_token")

		assert.Equal(t, "The Octocat", user.Name)
		assert.Equal(t, "octo@example.com", user.Email)
		assert.True(t, user.EmailVerified)
		assert.Equal(t, "gho_token", user.GitHubAccessToken)
		assert.Equal(t, "https://avatars.githubusercontent.com/u/1", user.Avatar)
		assert.Equal(t, "https://github.com/octocat", user.SocialLinks.GitHub)
	})

	t.Run("Falls back to login and generated avatar", func(t *testing.T) {
		user := service.NewGitHubUser(&GitHubUser{
			Login: "octocat",
			Email: "octo@example.com",
		}, "gho_token")

		assert.Equal(t, "octocat", user.Name)
		assert.Equal(t, models.GenerateAvatarURL("octo@example.com", "octocat"), user.Avatar)
	})
}
