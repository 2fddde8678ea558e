package handlers

import (
	"context"
	"net/http"
	"time"

	"xestetik/internal/services"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

const readinessTimeout = 2 * time.Second

// Pinger is the part of the lead store the readiness probe needs
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandlers handles health check endpoints
type HealthHandlers struct {
	catalogService services.CatalogService
	store          Pinger
}

// NewHealthHandlers creates a new health handlers instance
func NewHealthHandlers(catalogService services.CatalogService, store Pinger) *HealthHandlers {
	return &HealthHandlers{catalogService: catalogService, store: store}
}

// HealthStatus is the liveness payload
type HealthStatus struct {
	Status   string `json:"status"`
	Products int    `json:"products"`
}

// HealthCheck reports liveness and the catalog size
func (h *HealthHandlers) HealthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, &HealthStatus{Status: "ok", Products: h.catalogService.Count()})
}

// ReadinessCheck determines if the lead store accepts queries
func (h *HealthHandlers) ReadinessCheck(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), readinessTimeout)
	defer cancel()

	if err := h.store.Ping(ctx); err != nil {
		zap.L().Warn("readiness check failed", zap.Error(err))
		return c.JSON(http.StatusServiceUnavailable, map[string]string{
			"status":  "not_ready",
			"message": "Lead store unavailable",
		})
	}

	return c.JSON(http.StatusOK, map[string]string{
		"status":  "ready",
		"message": "All systems operational",
	})
}
