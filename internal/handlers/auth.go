package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/parasnikum/DevSync/internal/middleware"
	"github.com/parasnikum/DevSync/internal/services"
	"github.com/parasnikum/DevSync/pkg/config"
	"github.com/parasnikum/DevSync/pkg/logger"
)

type AuthHandler struct {
	userService   *services.UserService
	emailService  *services.EmailService
	githubService *services.GitHubService
}

func NewAuthHandler(userService *services.UserService, emailService *services.EmailService) *AuthHandler {
	return &AuthHandler{
		userService:   userService,
		emailService:  emailService,
		githubService: services.NewGitHubService(),
	}
}

type registerRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

// Register creates a new account and sends the verification code
func (h *AuthHandler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, code, err := h.userService.Register(req.Name, req.Email, req.Password)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if h.emailService.Enabled() {
		if err := h.emailService.SendVerificationEmail(user.Email, code); err != nil {
			logger.WithError(err).Error("Failed to send verification email")
		}
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "account created, check your email for the verification code",
		"user":    user,
	})
}

type verifyEmailRequest struct {
	UserID string `json:"user_id" binding:"required"`
	Code   string `json:"code" binding:"required"`
}

// VerifyEmail confirms the 6-digit code sent at registration
func (h *AuthHandler) VerifyEmail(c *gin.Context) {
	var req verifyEmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.userService.VerifyEmail(req.UserID, req.Code)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidCode), errors.Is(err, services.ErrVerificationExpired):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, services.ErrEmailAlreadyVerified):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "verification failed"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "email verified", "user": user})
}

type resendVerificationRequest struct {
	UserID string `json:"user_id" binding:"required"`
}

// ResendVerification issues a fresh verification code
func (h *AuthHandler) ResendVerification(c *gin.Context) {
	var req resendVerificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, code, err := h.userService.ResendVerification(req.UserID)
	if err != nil {
		if errors.Is(err, services.ErrEmailAlreadyVerified) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if h.emailService.Enabled() {
		if err := h.emailService.SendVerificationEmail(user.Email, code); err != nil {
			logger.WithError(err).Error("Failed to send verification email")
		}
	}

	c.JSON(http.StatusOK, gin.H{"message": "verification code resent"})
}

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Login authenticates with email and password and sets the session cookie
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.userService.Authenticate(req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidCredentials):
			c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		case errors.Is(err, services.ErrEmailNotVerified):
			c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "login failed"})
		}
		return
	}

	if err := middleware.SetSession(c, user.ID.String(), user.Name, user.Email); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "session creation failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "logged in", "user": user})
}

// Logout clears the session cookie
func (h *AuthHandler) Logout(c *gin.Context) {
	middleware.ClearSession(c)
	c.JSON(http.StatusOK, gin.H{"message": "logged out"})
}

// GitHubLogin initiates GitHub OAuth flow
func (h *AuthHandler) GitHubLogin(c *gin.Context) {
	authURL := h.githubService.GetAuthURL()
	c.Redirect(http.StatusTemporaryRedirect, authURL)
}

// GitHubCallback handles GitHub OAuth callback
func (h *AuthHandler) GitHubCallback(c *gin.Context) {
	clientURL := config.AppConfig.Server.ClientURL

	code := c.Query("code")
	if code == "" {
		c.Redirect(http.StatusFound, clientURL+"/login?error=no_code")
		return
	}

	token, err := h.githubService.ExchangeCodeForToken(code)
	if err != nil {
		c.Redirect(http.StatusFound, clientURL+"/login?error=token_exchange_failed")
		return
	}

	githubUser, err := h.githubService.GetUserInfo(token)
	if err != nil {
		c.Redirect(http.StatusFound, clientURL+"/login?error=user_info_failed")
		return
	}

	user, err := h.userService.GetUserByEmail(githubUser.Email)
	if err != nil || user == nil {
		user = h.userService.NewGitHubUser(githubUser, token.AccessToken)
		if err := h.userService.CreateUser(user); err != nil {
			c.Redirect(http.StatusFound, clientURL+"/login?error=user_creation_failed")
			return
		}
	} else {
		user.GitHubAccessToken = token.AccessToken
		if err := h.userService.UpdateUser(user); err != nil {
			c.Redirect(http.StatusFound, clientURL+"/login?error=user_update_failed")
			return
		}
	}

	if err := middleware.SetSession(c, user.ID.String(), user.Name, user.Email); err != nil {
		c.Redirect(http.StatusFound, clientURL+"/login?error=session_creation_failed")
		return
	}

	c.Redirect(http.StatusFound, clientURL+"/dashboard")
}
