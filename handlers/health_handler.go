package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lumbunggroup/lumbung-backend/logger"
	"github.com/lumbunggroup/lumbung-backend/services"
	"github.com/lumbunggroup/lumbung-backend/types"
)

// HealthHandler serves the probes. Readiness follows the contact delivery
// channel: a form that cannot send should not receive traffic.
type HealthHandler struct {
	healthService *services.HealthService
}

func NewHealthHandler(healthService *services.HealthService) *HealthHandler {
	return &HealthHandler{healthService: healthService}
}

func (h *HealthHandler) LivenessCheck(c *gin.Context) {
	c.JSON(http.StatusOK, types.StatusResponse{Status: string(types.HealthStatusUp)})
}

func (h *HealthHandler) ReadinessCheck(c *gin.Context) {
	health := h.healthService.CheckHealth(c.Request.Context())
	status := http.StatusOK
	if !health.Ready() {
		status = http.StatusServiceUnavailable
		logger.GetLogger().Warnw("Contact backend not ready",
			"delivery_mode", health.DeliveryMode,
			"reason", health.Reason)
	}
	c.JSON(status, health)
}

// DetailedHealth always answers 200 so dashboards can read DOWN components.
func (h *HealthHandler) DetailedHealth(c *gin.Context) {
	c.JSON(http.StatusOK, h.healthService.CheckHealth(c.Request.Context()))
}
