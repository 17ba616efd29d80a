package handler

import (
	"context"
	"net/http"
	"time"

	coreport "github.com/amirhossein-jamali/trade-saga/internal/domain/port/core"
	"github.com/gin-gonic/gin"
)

const healthTimeout = 2 * time.Second

// Pinger reports whether a dependency is reachable
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler serves liveness
type HealthHandler struct {
	db     Pinger
	logger coreport.Logger
}

// NewHealthHandler creates a health handler. db may be nil.
func NewHealthHandler(db Pinger, logger coreport.Logger) *HealthHandler {
	return &HealthHandler{db: db, logger: logger}
}

// Healthz handles the GET /healthz endpoint
func (h *HealthHandler) Healthz(c *gin.Context) {
	if h.db != nil {
		ctx, cancel := context.WithTimeout(c.Request.Context(), healthTimeout)
		defer cancel()

		if err := h.db.Ping(ctx); err != nil {
			h.logger.Error("Health check failed", map[string]any{
				"component": "database",
				"error":     err.Error(),
			})
			c.JSON(http.StatusServiceUnavailable, gin.H{"ok": false, "database": "unreachable"})
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{"ok": true})
}
