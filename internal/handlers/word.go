package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/charmbracelet/log"
	"github.com/gin-gonic/gin"

	"github.com/dev-bomo/cuvinte-banatene/internal/models"
	"github.com/dev-bomo/cuvinte-banatene/internal/repository"
	"github.com/dev-bomo/cuvinte-banatene/internal/service"
	"github.com/dev-bomo/cuvinte-banatene/pkg/respond"
)

// WordHandler handles dictionary entry HTTP requests.
type WordHandler struct {
	wordService service.WordService
}

// NewWordHandler creates a new WordHandler instance.
func NewWordHandler(wordService service.WordService) *WordHandler {
	return &WordHandler{wordService: wordService}
}

// WordCreateRequest represents the payload for a new entry.
type WordCreateRequest struct {
	Word             string            `json:"word" binding:"required"`
	Definition       string            `json:"definition" binding:"required"`
	ShortDescription string            `json:"shortDescription" binding:"required"`
	Category         string            `json:"category"`
	Origin           string            `json:"origin"`
	Examples         models.StringList `json:"examples"`
	Pronunciation    string            `json:"pronunciation"`
}

// WordUpdateRequest represents a partial entry update.
type WordUpdateRequest struct {
	Word             *string            `json:"word"`
	Definition       *string            `json:"definition"`
	ShortDescription *string            `json:"shortDescription"`
	Category         *string            `json:"category"`
	Origin           *string            `json:"origin"`
	Examples         *models.StringList `json:"examples"`
	Pronunciation    *string            `json:"pronunciation"`
}

// WordListResponse is the pagination envelope for word listings.
type WordListResponse struct {
	Words []models.Word `json:"words"`
	Total int64         `json:"total"`
	Page  int           `json:"page"`
	Limit int           `json:"limit"`
}

// List returns one page of words. Defaults: page 1, limit 10, alphabetical.
func (h *WordHandler) List(c *gin.Context) {
	page := queryInt(c, "page", 1)
	limit := queryInt(c, "limit", 10)
	sort := c.DefaultQuery("sort", repository.SortAlphabetical)

	words, total, err := h.wordService.List(c.Request.Context(), page, limit, sort)
	if err != nil {
		log.Error("failed to list words", "err", err)
		respond.Error(c, http.StatusInternalServerError, "Error fetching words")
		return
	}

	c.JSON(http.StatusOK, WordListResponse{
		Words: words,
		Total: total,
		Page:  page,
		Limit: limit,
	})
}

// Alphabetical returns every word ordered by the word field.
func (h *WordHandler) Alphabetical(c *gin.Context) {
	words, err := h.wordService.ListAlphabetical(c.Request.Context())
	if err != nil {
		log.Error("failed to list words alphabetically", "err", err)
		respond.Error(c, http.StatusInternalServerError, "Error fetching alphabetical words")
		return
	}
	c.JSON(http.StatusOK, gin.H{"words": words})
}

// Get returns a single word by id.
func (h *WordHandler) Get(c *gin.Context) {
	word, err := h.wordService.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			respond.Error(c, http.StatusNotFound, "Word not found")
			return
		}
		log.Error("failed to fetch word", "err", err)
		respond.Error(c, http.StatusInternalServerError, "Error fetching word")
		return
	}
	c.JSON(http.StatusOK, word)
}

// Create adds a new dictionary entry.
func (h *WordHandler) Create(c *gin.Context) {
	var req WordCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, err.Error())
		return
	}

	word, err := h.wordService.Create(c.Request.Context(), service.WordCreate{
		Word:             req.Word,
		Definition:       req.Definition,
		ShortDescription: req.ShortDescription,
		Category:         req.Category,
		Origin:           req.Origin,
		Examples:         req.Examples,
		Pronunciation:    req.Pronunciation,
	})
	if err != nil {
		log.Error("failed to create word", "err", err)
		respond.Error(c, http.StatusInternalServerError, "Error creating word")
		return
	}

	c.JSON(http.StatusCreated, word)
}

// Update applies a partial update to an entry.
func (h *WordHandler) Update(c *gin.Context) {
	var req WordUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, err.Error())
		return
	}

	word, err := h.wordService.Update(c.Request.Context(), c.Param("id"), service.WordUpdate{
		Word:             req.Word,
		Definition:       req.Definition,
		ShortDescription: req.ShortDescription,
		Category:         req.Category,
		Origin:           req.Origin,
		Examples:         req.Examples,
		Pronunciation:    req.Pronunciation,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNoUpdates):
			respond.Error(c, http.StatusBadRequest, "No fields to update")
		case errors.Is(err, repository.ErrNotFound):
			respond.Error(c, http.StatusNotFound, "Word not found")
		default:
			log.Error("failed to update word", "err", err)
			respond.Error(c, http.StatusInternalServerError, "Error updating word")
		}
		return
	}

	c.JSON(http.StatusOK, word)
}

// Delete removes an entry.
func (h *WordHandler) Delete(c *gin.Context) {
	if err := h.wordService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			respond.Error(c, http.StatusNotFound, "Word not found")
			return
		}
		log.Error("failed to delete word", "err", err)
		respond.Error(c, http.StatusInternalServerError, "Error deleting word")
		return
	}
	c.Status(http.StatusNoContent)
}

func queryInt(c *gin.Context, key string, defaultValue int) int {
	value, err := strconv.Atoi(c.Query(key))
	if err != nil || value < 1 {
		return defaultValue
	}
	return value
}
