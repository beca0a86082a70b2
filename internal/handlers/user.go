package handlers

import (
	"errors"
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/gin-gonic/gin"

	"github.com/dev-bomo/cuvinte-banatene/internal/middleware"
	"github.com/dev-bomo/cuvinte-banatene/internal/repository"
	"github.com/dev-bomo/cuvinte-banatene/internal/service"
	"github.com/dev-bomo/cuvinte-banatene/pkg/respond"
)

// UserHandler handles admin-facing user management requests.
type UserHandler struct {
	userService service.UserService
}

// NewUserHandler creates a new UserHandler instance.
func NewUserHandler(userService service.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// UserCreateRequest represents the payload for an admin-created account.
type UserCreateRequest struct {
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Role     string `json:"role" binding:"omitempty,oneof=admin contributor"`
}

// UserUpdateRequest represents a partial user update. A password field is
// accepted but ignored; passwords do not change through this endpoint.
type UserUpdateRequest struct {
	Username *string `json:"username"`
	Email    *string `json:"email"`
	Password *string `json:"password"`
	Role     *string `json:"role" binding:"omitempty,oneof=admin contributor"`
}

// List returns every user, newest first.
func (h *UserHandler) List(c *gin.Context) {
	users, err := h.userService.List(c.Request.Context())
	if err != nil {
		log.Error("failed to list users", "err", err)
		respond.Error(c, http.StatusInternalServerError, "Error fetching users")
		return
	}
	c.JSON(http.StatusOK, users)
}

// Get returns a single user by id.
func (h *UserHandler) Get(c *gin.Context) {
	user, err := h.userService.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			respond.Error(c, http.StatusNotFound, "User not found")
			return
		}
		log.Error("failed to fetch user", "err", err)
		respond.Error(c, http.StatusInternalServerError, "Error fetching user")
		return
	}
	c.JSON(http.StatusOK, user)
}

// Create adds an account with an explicit role.
func (h *UserHandler) Create(c *gin.Context) {
	var req UserCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, err.Error())
		return
	}

	user, err := h.userService.Create(c.Request.Context(), req.Username, req.Email, req.Password, req.Role)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			respond.Error(c, http.StatusConflict, "Username or email already exists")
			return
		}
		log.Error("failed to create user", "err", err)
		respond.Error(c, http.StatusInternalServerError, "Error creating user")
		return
	}

	c.JSON(http.StatusCreated, user)
}

// Update applies a partial update to an account.
func (h *UserHandler) Update(c *gin.Context) {
	var req UserUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, err.Error())
		return
	}

	user, err := h.userService.Update(c.Request.Context(), c.Param("id"), service.UserUpdate{
		Username: req.Username,
		Email:    req.Email,
		Role:     req.Role,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNoUpdates):
			respond.Error(c, http.StatusBadRequest, "No fields to update")
		case errors.Is(err, repository.ErrNotFound):
			respond.Error(c, http.StatusNotFound, "User not found")
		case errors.Is(err, repository.ErrDuplicate):
			respond.Error(c, http.StatusConflict, "Username or email already exists")
		default:
			log.Error("failed to update user", "err", err)
			respond.Error(c, http.StatusInternalServerError, "Error updating user")
		}
		return
	}

	c.JSON(http.StatusOK, user)
}

// Delete removes an account. Deleting the acting admin's own account is
// rejected.
func (h *UserHandler) Delete(c *gin.Context) {
	actor := middleware.CurrentUser(c)
	if actor == nil {
		respond.Error(c, http.StatusUnauthorized, "Authentication required")
		return
	}

	if err := h.userService.Delete(c.Request.Context(), actor.ID, c.Param("id")); err != nil {
		switch {
		case errors.Is(err, service.ErrSelfDelete):
			respond.Error(c, http.StatusBadRequest, "Cannot delete your own account")
		case errors.Is(err, repository.ErrNotFound):
			respond.Error(c, http.StatusNotFound, "User not found")
		default:
			log.Error("failed to delete user", "err", err)
			respond.Error(c, http.StatusInternalServerError, "Error deleting user")
		}
		return
	}

	c.Status(http.StatusNoContent)
}
