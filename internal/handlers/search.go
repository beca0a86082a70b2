package handlers

import (
	"net/http"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/gin-gonic/gin"

	"github.com/dev-bomo/cuvinte-banatene/internal/service"
	"github.com/dev-bomo/cuvinte-banatene/pkg/respond"
)

// SearchHandler handles search HTTP requests.
type SearchHandler struct {
	searchService service.SearchService
}

// NewSearchHandler creates a new SearchHandler instance.
func NewSearchHandler(searchService service.SearchService) *SearchHandler {
	return &SearchHandler{searchService: searchService}
}

// SearchResponse carries ranked results with the echoed query.
type SearchResponse struct {
	Results []service.SearchResult `json:"results"`
	Total   int                    `json:"total"`
	Query   string                 `json:"query"`
}

// Search returns ranked matches for a free-text query.
func (h *SearchHandler) Search(c *gin.Context) {
	query := strings.TrimSpace(c.Query("q"))
	if query == "" {
		respond.Error(c, http.StatusBadRequest, "Search query is required")
		return
	}

	results, err := h.searchService.Search(c.Request.Context(), query)
	if err != nil {
		log.Error("search failed", "err", err)
		respond.Error(c, http.StatusInternalServerError, "Error searching words")
		return
	}

	c.JSON(http.StatusOK, SearchResponse{
		Results: results,
		Total:   len(results),
		Query:   query,
	})
}
