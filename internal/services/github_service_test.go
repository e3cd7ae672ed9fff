package services

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/oauth2"
)

func newGitHubTestService(t *testing.T, handler http.Handler) *GitHubService {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	return &GitHubService{
		oauthConfig: &oauth2.Config{},
		apiBaseURL:  server.URL,
	}
}

func githubTestToken() *oauth2.Token {
	return &oauth2.Token{AccessToken: "test-token"}
}

func TestGetUserInfoPublicEmail(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/user", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"id": 1, "login": "octocat", "name": "The Octocat", "email": "octo@example.com", "avatar_url": "https://avatars.githubusercontent.com/u/1"}`)
	})
	mux.HandleFunc("/user/emails", func(w http.ResponseWriter, r *http.Request) {
		t.Error("emails endpoint should not be called when the profile email is public")
	})

	service := newGitHubTestService(t, mux)
	user, err := service.GetUserInfo(githubTestToken())
	require.NoError(t, err)
	assert.Equal(t, "octo@example.com", user.Email)
	assert.Equal(t, "octocat", user.Login)
}

func TestGetUserInfoHiddenEmail(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/user", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"id": 1, "login": "octocat", "email": ""}`)
	})
	mux.HandleFunc("/user/emails", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `[
			{"email": "octocat@users.noreply.github.com", "primary": false, "verified": true},
			{"email": "octo@example.com", "primary": true, "verified": true}
		]`)
	})

	service := newGitHubTestService(t, mux)
	user, err := service.GetUserInfo(githubTestToken())
	require.NoError(t, err)
	assert.Equal(t, "octo@example.com", user.Email)
}

func TestGetUserInfoEmailFallback(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/user", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"id": 1, "login": "octocat", "email": ""}`)
	})
	mux.HandleFunc("/user/emails", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"message": "forbidden"}`, http.StatusForbidden)
	})

	service := newGitHubTestService(t, mux)
	user, err := service.GetUserInfo(githubTestToken())
	require.NoError(t, err)
	assert.Equal(t, "octocat@users.noreply.github.com", user.Email)
}
