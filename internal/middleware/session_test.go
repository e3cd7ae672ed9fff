package middleware

import (
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/parasnikum/DevSync/pkg/config"
	"github.com/stretchr/testify/assert"
)

func makeSessionCookie(t *testing.T, data SessionData) string {
	t.Helper()
	encoded, err := json.Marshal(data)
	assert.NoError(t, err)
	payload := base64.URLEncoding.EncodeToString(encoded)
	return createSignature(payload) + "." + payload
}

func TestSessionExtension(t *testing.T) {
	// Load config for testing
	config.Load()

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(SessionMiddleware())

	router.GET("/test", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "success"})
	})

	sessionData := SessionData{
		UserID:    "test-user",
		Name:      "Test User",
		Email:     "test@example.com",
		ExpiresAt: time.Now().Add(1 * time.Hour),
	}
	cookieValue := makeSessionCookie(t, sessionData)

	req, _ := http.NewRequest("GET", "/test", nil)
	req.AddCookie(&http.Cookie{
		Name:  "session",
		Value: cookieValue,
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	// The middleware should re-issue the cookie with a fresh expiry
	setCookieHeader := w.Header().Get("Set-Cookie")
	assert.NotEmpty(t, setCookieHeader, "Set-Cookie header should be present")
	assert.Contains(t, setCookieHeader, "session=", "Set-Cookie header should contain session cookie")

	sessionPart := strings.Split(setCookieHeader, ";")[0]
	sessionValue := strings.TrimPrefix(sessionPart, "session=")
	decodedSessionValue, err := url.QueryUnescape(sessionValue)
	assert.NoError(t, err, "Should be able to URL-decode session value")

	parts := strings.Split(decodedSessionValue, ".")
	assert.Equal(t, 2, len(parts), "Cookie should have signature and data parts")
	assert.True(t, verifySignature(parts[1], parts[0]), "Cookie signature should be valid")

	decodedData, err := base64.URLEncoding.DecodeString(parts[1])
	assert.NoError(t, err, "Should be able to decode session data")

	var extendedSession SessionData
	assert.NoError(t, json.Unmarshal(decodedData, &extendedSession))

	assert.Equal(t, sessionData.UserID, extendedSession.UserID)
	assert.Equal(t, sessionData.Name, extendedSession.Name)
	assert.Equal(t, sessionData.Email, extendedSession.Email)

	// Expiry should be pushed out to roughly 24 hours from now
	expectedMinExpiry := time.Now().Add(23 * time.Hour)
	assert.True(t, extendedSession.ExpiresAt.After(expectedMinExpiry), "Session expiry should be extended")
}

func TestExpiredSessionRejected(t *testing.T) {
	config.Load()

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(SessionMiddleware())
	router.Use(AuthRequired())

	router.GET("/protected", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "success"})
	})

	sessionData := SessionData{
		UserID:    "test-user",
		Name:      "Test User",
		Email:     "test@example.com",
		ExpiresAt: time.Now().Add(-1 * time.Minute),
	}

	req, _ := http.NewRequest("GET", "/protected", nil)
	req.AddCookie(&http.Cookie{
		Name:  "session",
		Value: makeSessionCookie(t, sessionData),
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestTamperedSessionRejected(t *testing.T) {
	config.Load()

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(SessionMiddleware())
	router.Use(AuthRequired())

	router.GET("/protected", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "success"})
	})

	// Forge a payload without a matching signature
	forged := SessionData{
		UserID:    "someone-else",
		Name:      "Mallory",
		Email:     "mallory@example.com",
		ExpiresAt: time.Now().Add(1 * time.Hour),
	}
	encoded, _ := json.Marshal(forged)
	payload := base64.URLEncoding.EncodeToString(encoded)

	req, _ := http.NewRequest("GET", "/protected", nil)
	req.AddCookie(&http.Cookie{
		Name:  "session",
		Value: "bad-signature." + payload,
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthRequiredWithoutSession(t *testing.T) {
	config.Load()

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(SessionMiddleware())

	protected := router.Group("/api")
	protected.Use(AuthRequired())
	protected.GET("/profile", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "success"})
	})

	req, _ := http.NewRequest("GET", "/api/profile", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
