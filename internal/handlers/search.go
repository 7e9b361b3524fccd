package handlers

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/verbum-domini-api/internal/models"
	"github.com/verbum-domini-api/internal/services"
)

const (
	defaultSearchLimit = 10
	maxSearchLimit     = 50
)

// SearchHandler serves semantic verse search
type SearchHandler struct {
	search *services.VectorSearchService
}

func NewSearchHandler(search *services.VectorSearchService) *SearchHandler {
	return &SearchHandler{search: search}
}

// SemanticSearch handles POST /search
func (h *SearchHandler) SemanticSearch(c echo.Context) error {
	var req models.SemanticSearchRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}

	limit := req.Limit
	if limit < 1 || limit > maxSearchLimit {
		limit = defaultSearchLimit
	}

	citations, err := h.search.SearchVersesCitations(c.Request().Context(), req.Query, strings.TrimSpace(req.Translation), limit)
	if err != nil {
		return httpError(err, "")
	}

	return c.JSON(http.StatusOK, models.SemanticSearchResponse{
		Query:   strings.TrimSpace(req.Query),
		Results: citations,
	})
}

func (h *SearchHandler) RegisterRoutes(g *echo.Group) {
	g.POST("/search", h.SemanticSearch)
}
