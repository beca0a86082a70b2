// Package middleware provides the HTTP guard chain for the dictionary service.
package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/dev-bomo/cuvinte-banatene/internal/models"
	"github.com/dev-bomo/cuvinte-banatene/internal/service"
	"github.com/dev-bomo/cuvinte-banatene/pkg/respond"
)

// userContextKey is the gin context key holding the authenticated user.
const userContextKey = "currentUser"

// Authenticate requires a bearer session token and resolves it to a user.
// A missing token yields 401; an invalid or expired token, or a token whose
// user no longer exists, yields 403. Failure halts the chain.
func Authenticate(auth service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := ExtractToken(c)
		if token == "" {
			respond.AbortError(c, http.StatusUnauthorized, "Access token required")
			return
		}

		user, err := auth.Authenticate(c.Request.Context(), token)
		if err != nil {
			respond.AbortError(c, http.StatusForbidden, "Invalid or expired token")
			return
		}

		c.Set(userContextKey, user)
		c.Next()
	}
}

// RequireRole rejects users whose role is outside the permitted set.
// It must run after Authenticate.
func RequireRole(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := CurrentUser(c)
		if user == nil || !user.HasRole(roles...) {
			respond.AbortError(c, http.StatusForbidden, "Insufficient role")
			return
		}
		c.Next()
	}
}

// RequireVerifiedEmail rejects users who have not verified their email.
// It must run after Authenticate.
func RequireVerifiedEmail() gin.HandlerFunc {
	return func(c *gin.Context) {
		user := CurrentUser(c)
		if user == nil {
			respond.AbortError(c, http.StatusUnauthorized, "Authentication required")
			return
		}
		if !user.EmailVerified {
			respond.AbortError(c, http.StatusForbidden, "Email verification required to perform this action")
			return
		}
		c.Next()
	}
}

// CurrentUser returns the user resolved by Authenticate, or nil.
func CurrentUser(c *gin.Context) *models.User {
	value, ok := c.Get(userContextKey)
	if !ok {
		return nil
	}
	user, ok := value.(*models.User)
	if !ok {
		return nil
	}
	return user
}

// ExtractToken pulls the bearer token out of the Authorization header.
func ExtractToken(c *gin.Context) string {
	parts := strings.Split(c.GetHeader("Authorization"), " ")
	if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
		return parts[1]
	}
	return ""
}
