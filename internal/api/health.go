package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/bodyai/backend/internal/database"
)

// HealthHandler reports whether the backing stores are reachable.
type HealthHandler struct {
	db     *database.Database
	redis  *redis.Client
	logger *zap.Logger
}

// NewHealthHandler creates a new HealthHandler instance. The Redis client may
// be nil when chat history is disabled.
func NewHealthHandler(db *database.Database, rdb *redis.Client, logger *zap.Logger) *HealthHandler {
	return &HealthHandler{db: db, redis: rdb, logger: logger}
}

// Health handles GET /health.
func (h *HealthHandler) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	if err := h.db.HealthCheck(ctx); err != nil {
		h.logger.Error("health check failed", zap.Error(err))
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unhealthy", "database": err.Error()})
		return
	}

	if h.redis != nil {
		if err := h.redis.Ping(ctx).Err(); err != nil {
			h.logger.Error("redis health check failed", zap.Error(err))
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unhealthy", "redis": err.Error()})
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
