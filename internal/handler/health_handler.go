package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"codedoc/internal/port"
)

// HealthHandler handles health check endpoints.
type HealthHandler struct {
	auditRepo port.GenerationAuditRepository
}

// NewHealthHandler creates a new HealthHandler.
func NewHealthHandler(auditRepo port.GenerationAuditRepository) *HealthHandler {
	return &HealthHandler{auditRepo: auditRepo}
}

// Liveness handles GET /healthz
func (h *HealthHandler) Liveness(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Readiness handles GET /readyz
func (h *HealthHandler) Readiness(c *gin.Context) {
	if err := h.auditRepo.Ping(c.Request.Context()); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable", "error": "audit store not reachable"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
