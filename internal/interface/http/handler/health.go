package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"libcatalog/pkg/response"
)

// HealthHandler reports liveness plus the state of the two external
// collaborators (catalog database, queue backing store).
type HealthHandler struct {
	db  *gorm.DB
	rdb *redis.Client
}

// NewHealthHandler creates the handler.
func NewHealthHandler(db *gorm.DB, rdb *redis.Client) *HealthHandler {
	return &HealthHandler{db: db, rdb: rdb}
}

// Health reports service liveness.
// @Summary      Health check
// @Tags         health
// @Produce      json
// @Success      200 {object} response.Response
// @Router       /health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	ctx := c.Request.Context()

	dbStatus := "up"
	if sqlDB, err := h.db.DB(); err != nil || sqlDB.PingContext(ctx) != nil {
		dbStatus = "down"
	}

	queueStatus := "up"
	if err := h.rdb.Ping(ctx).Err(); err != nil {
		queueStatus = "down"
	}

	response.Success(c, "OK", gin.H{
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"database":  dbStatus,
		"queue":     queueStatus,
	})
}
