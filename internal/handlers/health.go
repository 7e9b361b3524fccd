package handlers

import (
	"net/http"

	"github.com/jmoiron/sqlx"
	"github.com/labstack/echo/v4"

	"github.com/verbum-domini-api/pkg/schema/db"
)

// HealthHandler handles health check endpoints
type HealthHandler struct {
	conn *sqlx.DB
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(conn *sqlx.DB) *HealthHandler {
	return &HealthHandler{conn: conn}
}

// HealthResponse is the response for basic health check
type HealthResponse struct {
	Status string `json:"status"`
}

// DatabaseHealthResponse is the response for database health check
type DatabaseHealthResponse struct {
	Status   string `json:"status"`
	Database string `json:"database"`
}

// Health handles GET /health
func (h *HealthHandler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, HealthResponse{
		Status: "healthy",
	})
}

// DatabaseHealth handles GET /health/database
func (h *HealthHandler) DatabaseHealth(c echo.Context) error {
	if err := db.Ping(c.Request().Context(), h.conn); err != nil {
		return c.JSON(http.StatusServiceUnavailable, map[string]string{
			"status": "error",
			"error":  err.Error(),
		})
	}

	return c.JSON(http.StatusOK, DatabaseHealthResponse{
		Status:   "connected",
		Database: h.conn.DriverName(),
	})
}

// RegisterRoutes registers health check routes
func (h *HealthHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/health", h.Health)
	g.GET("/health/database", h.DatabaseHealth)
}
