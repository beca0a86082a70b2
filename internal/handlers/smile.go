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

// SmileHandler handles smile HTTP requests.
type SmileHandler struct {
	smileService service.SmileService
}

// NewSmileHandler creates a new SmileHandler instance.
func NewSmileHandler(smileService service.SmileService) *SmileHandler {
	return &SmileHandler{smileService: smileService}
}

// SmileRequest represents the smile payload.
type SmileRequest struct {
	WordID string `json:"wordId" binding:"required"`
}

// SmileResponse represents the action-result envelope for smile endpoints.
type SmileResponse struct {
	Success    bool   `json:"success"`
	SmileCount int    `json:"smileCount"`
	Message    string `json:"message"`
}

// Smile records an anonymous smile on a word.
func (h *SmileHandler) Smile(c *gin.Context) {
	var req SmileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "Word ID is required")
		return
	}

	count, err := h.smileService.Smile(c.Request.Context(), req.WordID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			respond.Error(c, http.StatusNotFound, "Word not found")
			return
		}
		log.Error("failed to add smile", "err", err)
		respond.Error(c, http.StatusInternalServerError, "Internal server error")
		return
	}

	c.JSON(http.StatusOK, SmileResponse{
		Success:    true,
		SmileCount: count,
		Message:    "Smile recorded successfully! 😊",
	})
}

// SmileAsUser records an authenticated smile, one per (user, word).
func (h *SmileHandler) SmileAsUser(c *gin.Context) {
	user := middleware.CurrentUser(c)
	if user == nil {
		respond.Error(c, http.StatusUnauthorized, "Authentication required")
		return
	}

	var req SmileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "Word ID is required")
		return
	}

	count, err := h.smileService.SmileAsUser(c.Request.Context(), user.ID, req.WordID)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			respond.Error(c, http.StatusNotFound, "Word not found")
		case errors.Is(err, service.ErrAlreadySmiled):
			respond.Error(c, http.StatusBadRequest, "You have already smiled at this word! 😊")
		default:
			log.Error("failed to add user smile", "err", err)
			respond.Error(c, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	c.JSON(http.StatusOK, SmileResponse{
		Success:    true,
		SmileCount: count,
		Message:    "Smile recorded successfully! 😊",
	})
}

// ListUserSmiles returns the ids of the words the user smiled at.
func (h *SmileHandler) ListUserSmiles(c *gin.Context) {
	user := middleware.CurrentUser(c)
	if user == nil {
		respond.Error(c, http.StatusUnauthorized, "Authentication required")
		return
	}

	ids, err := h.smileService.SmiledWordIDs(c.Request.Context(), user.ID)
	if err != nil {
		log.Error("failed to list user smiles", "err", err)
		respond.Error(c, http.StatusInternalServerError, "Internal server error")
		return
	}
	if ids == nil {
		ids = []string{}
	}

	c.JSON(http.StatusOK, gin.H{
		"smiledWordIds": ids,
		"count":         len(ids),
	})
}

// Unsmile removes an authenticated smile.
func (h *SmileHandler) Unsmile(c *gin.Context) {
	user := middleware.CurrentUser(c)
	if user == nil {
		respond.Error(c, http.StatusUnauthorized, "Authentication required")
		return
	}

	count, err := h.smileService.Unsmile(c.Request.Context(), user.ID, c.Param("wordId"))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNotSmiled):
			respond.Error(c, http.StatusBadRequest, "You haven't smiled at this word yet!")
		case errors.Is(err, repository.ErrNotFound):
			respond.Error(c, http.StatusNotFound, "Word not found")
		default:
			log.Error("failed to remove user smile", "err", err)
			respond.Error(c, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	c.JSON(http.StatusOK, SmileResponse{
		Success:    true,
		SmileCount: count,
		Message:    "Smile removed successfully",
	})
}
