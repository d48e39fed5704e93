package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// HealthHandler handles GET /health — liveness probe. The store is
// in-memory, so there are no external dependencies to check.
type HealthHandler struct{}

func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

func (h *HealthHandler) Liveness(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status": "ok",
	})
}
