package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/verbum-domini-api/internal/services"
)

// LiturgyHandler serves the liturgical day descriptor
type LiturgyHandler struct {
	liturgy *services.LiturgyService
}

// NewLiturgyHandler creates a new liturgy handler
func NewLiturgyHandler(liturgy *services.LiturgyService) *LiturgyHandler {
	return &LiturgyHandler{liturgy: liturgy}
}

// Today handles GET /liturgy/today
func (h *LiturgyHandler) Today(c echo.Context) error {
	return c.JSON(http.StatusOK, h.liturgy.Today())
}

// ForDate handles GET /liturgy/:date
func (h *LiturgyHandler) ForDate(c echo.Context) error {
	day, err := h.liturgy.ForDate(c.Param("date"))
	if err != nil {
		return httpError(err, "")
	}
	return c.JSON(http.StatusOK, day)
}

// RegisterRoutes registers liturgy routes
func (h *LiturgyHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/liturgy/today", h.Today)
	g.GET("/liturgy/:date", h.ForDate)
}
