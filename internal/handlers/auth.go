// Package handlers contains HTTP request handlers for the dictionary service.
package handlers

import (
	"errors"
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/gin-gonic/gin"

	"github.com/dev-bomo/cuvinte-banatene/internal/middleware"
	"github.com/dev-bomo/cuvinte-banatene/internal/models"
	"github.com/dev-bomo/cuvinte-banatene/internal/repository"
	"github.com/dev-bomo/cuvinte-banatene/internal/service"
	"github.com/dev-bomo/cuvinte-banatene/pkg/respond"
)

// AuthHandler handles authentication HTTP requests.
type AuthHandler struct {
	authService service.AuthService
}

// NewAuthHandler creates a new AuthHandler instance.
func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// RegisterRequest represents the registration payload.
type RegisterRequest struct {
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

// LoginRequest represents the login payload.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// VerifyEmailRequest represents the email verification payload.
type VerifyEmailRequest struct {
	Token string `json:"token" binding:"required"`
}

// ResendVerificationRequest represents the token resend payload.
type ResendVerificationRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// SessionResponse pairs a session token with its user.
type SessionResponse struct {
	Token string       `json:"token"`
	User  *models.User `json:"user"`
}

// Register creates a new contributor account and returns a session token.
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, err.Error())
		return
	}

	user, token, err := h.authService.Register(c.Request.Context(), req.Username, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			respond.Error(c, http.StatusConflict, "Username or email already exists")
			return
		}
		log.Error("registration failed", "err", err)
		respond.Error(c, http.StatusInternalServerError, "Error creating contributor account")
		return
	}

	c.JSON(http.StatusCreated, SessionResponse{Token: token, User: user})
}

// Login authenticates a user and returns a session token.
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, err.Error())
		return
	}

	user, token, err := h.authService.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		respond.Error(c, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	c.JSON(http.StatusOK, SessionResponse{Token: token, User: user})
}

// Me returns the authenticated user.
func (h *AuthHandler) Me(c *gin.Context) {
	c.JSON(http.StatusOK, middleware.CurrentUser(c))
}

// VerifyEmail consumes a verification token.
func (h *AuthHandler) VerifyEmail(c *gin.Context) {
	var req VerifyEmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, err.Error())
		return
	}

	user, err := h.authService.VerifyEmail(c.Request.Context(), req.Token)
	if err != nil {
		if errors.Is(err, service.ErrInvalidToken) {
			respond.Error(c, http.StatusBadRequest, "Invalid or expired verification token")
			return
		}
		log.Error("email verification failed", "err", err)
		respond.Error(c, http.StatusInternalServerError, "Error verifying email")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Email verified successfully",
		"user":    user,
	})
}

// ResendVerification issues and mails a fresh verification token.
func (h *AuthHandler) ResendVerification(c *gin.Context) {
	var req ResendVerificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, err.Error())
		return
	}

	_, err := h.authService.ResendVerification(c.Request.Context(), req.Email)
	if err != nil {
		if errors.Is(err, service.ErrNotFoundOrVerified) {
			respond.Error(c, http.StatusBadRequest, "User not found or already verified")
			return
		}
		log.Error("resend verification failed", "err", err)
		respond.Error(c, http.StatusInternalServerError, "Failed to send verification email")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Verification email sent successfully"})
}

// Logout ends the session. The client discards its token; when a blocklist is
// configured the presented token is additionally revoked server-side.
func (h *AuthHandler) Logout(c *gin.Context) {
	if token := middleware.ExtractToken(c); token != "" {
		if err := h.authService.Logout(c.Request.Context(), token); err != nil {
			log.Warn("failed to blocklist token on logout", "err", err)
		}
	}
	c.JSON(http.StatusOK, gin.H{"message": "Logged out successfully"})
}
