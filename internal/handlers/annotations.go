package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/verbum-domini-api/internal/middleware"
	"github.com/verbum-domini-api/internal/models"
	"github.com/verbum-domini-api/internal/services"
)

// AnnotationHandler serves the signed-in user's bookmarks, highlights and notes
type AnnotationHandler struct {
	annotations *services.AnnotationService
}

// NewAnnotationHandler creates a new annotation handler
func NewAnnotationHandler(annotations *services.AnnotationService) *AnnotationHandler {
	return &AnnotationHandler{annotations: annotations}
}

// ToggleBookmark handles POST /verses/:id/bookmark
func (h *AnnotationHandler) ToggleBookmark(c echo.Context) error {
	bookmarked, err := h.annotations.ToggleBookmark(c.Request().Context(), middleware.UserID(c), c.Param("id"))
	if err != nil {
		return httpError(err, "Verse not found")
	}
	return c.JSON(http.StatusOK, models.ToggleBookmarkResponse{Bookmarked: bookmarked})
}

// SetHighlight handles PUT /verses/:id/highlight
func (h *AnnotationHandler) SetHighlight(c echo.Context) error {
	var req models.SetHighlightRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}

	highlight, err := h.annotations.SetHighlight(c.Request().Context(), middleware.UserID(c), c.Param("id"), req.Color)
	if err != nil {
		return httpError(err, "Verse not found")
	}
	if highlight == nil {
		return c.NoContent(http.StatusNoContent)
	}
	return c.JSON(http.StatusOK, highlight)
}

// AddNote handles POST /verses/:id/notes
func (h *AnnotationHandler) AddNote(c echo.Context) error {
	var req models.AddNoteRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}

	note, err := h.annotations.AddNote(c.Request().Context(), middleware.UserID(c), c.Param("id"), req.Content)
	if err != nil {
		return httpError(err, "Verse not found")
	}
	return c.JSON(http.StatusCreated, note)
}

// ListNotes handles GET /verses/:id/notes
func (h *AnnotationHandler) ListNotes(c echo.Context) error {
	notes, err := h.annotations.ListNotes(c.Request().Context(), middleware.UserID(c), c.Param("id"))
	if err != nil {
		return httpError(err, "Verse not found")
	}
	return c.JSON(http.StatusOK, notes)
}

// DeleteNote handles DELETE /notes/:id
func (h *AnnotationHandler) DeleteNote(c echo.Context) error {
	if err := h.annotations.DeleteNote(c.Request().Context(), middleware.UserID(c), c.Param("id")); err != nil {
		return httpError(err, "Note not found")
	}
	return c.NoContent(http.StatusNoContent)
}

// ListBookmarks handles GET /me/bookmarks
func (h *AnnotationHandler) ListBookmarks(c echo.Context) error {
	marks, err := h.annotations.ListBookmarks(c.Request().Context(), middleware.UserID(c))
	if err != nil {
		return httpError(err, "")
	}
	return c.JSON(http.StatusOK, marks)
}

// ListHighlights handles GET /me/highlights
func (h *AnnotationHandler) ListHighlights(c echo.Context) error {
	marks, err := h.annotations.ListHighlights(c.Request().Context(), middleware.UserID(c))
	if err != nil {
		return httpError(err, "")
	}
	return c.JSON(http.StatusOK, marks)
}

// RegisterRoutes registers annotation routes behind the user id check
func (h *AnnotationHandler) RegisterRoutes(g *echo.Group) {
	user := g.Group("", middleware.RequireUser())
	user.POST("/verses/:id/bookmark", h.ToggleBookmark)
	user.PUT("/verses/:id/highlight", h.SetHighlight)
	user.POST("/verses/:id/notes", h.AddNote)
	user.GET("/verses/:id/notes", h.ListNotes)
	user.DELETE("/notes/:id", h.DeleteNote)
	user.GET("/me/bookmarks", h.ListBookmarks)
	user.GET("/me/highlights", h.ListHighlights)
}
