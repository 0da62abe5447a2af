// Package api provides HTTP handlers for graphrag.
package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// HealthHandler serves the liveness endpoint.
type HealthHandler struct {
	version   string
	startTime time.Time
	entities  int
}

// NewHealthHandler creates a HealthHandler reporting version and the loaded entity count.
func NewHealthHandler(version string, entities int) *HealthHandler {
	return &HealthHandler{version: version, startTime: time.Now(), entities: entities}
}

type healthResponse struct {
	Status        string  `json:"status"`
	Version       string  `json:"version"`
	Entities      int     `json:"entities"`
	UptimeSeconds float64 `json:"uptime_seconds"`
}

// Liveness handles GET /api/v1/health.
func (h *HealthHandler) Liveness(c *gin.Context) {
	c.JSON(http.StatusOK, healthResponse{
		Status:        "ok",
		Version:       h.version,
		Entities:      h.entities,
		UptimeSeconds: time.Since(h.startTime).Seconds(),
	})
}
