package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// SessionCounter reports how many edit sessions are held in memory.
type SessionCounter interface {
	Len() int
}

// HealthHandler provides health check endpoints.
type HealthHandler struct {
	sessions SessionCounter
	version  string
}

// NewHealthHandler creates a new health handler.
func NewHealthHandler(sessions SessionCounter, version string) *HealthHandler {
	return &HealthHandler{sessions: sessions, version: version}
}

// Live handles liveness probe (is the process alive?).
// GET /health/live
func (h *HealthHandler) Live(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
	})
}

// Ready handles readiness probe.
// The engine keeps no connections of its own; the backend is reached per request.
// GET /health/ready
func (h *HealthHandler) Ready(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":   "ok",
		"app":      "salesdesk",
		"version":  h.version,
		"sessions": h.sessions.Len(),
	})
}
