package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"libcatalog/pkg/response"
)

// RequestLogger tags every request with an id, stores a request-scoped
// logger for the error boundary, and logs one access record per request
// (warn for 4xx, error for 5xx).
func RequestLogger(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := uuid.New().String()
		c.Header("X-Request-ID", requestID)

		reqLogger := logger.With(zap.String("requestId", requestID))
		c.Set(response.LoggerKey, reqLogger)

		start := time.Now()
		c.Next()
		latency := time.Since(start)

		status := c.Writer.Status()
		fields := []zap.Field{
			zap.Int("status", status),
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.String("clientIp", c.ClientIP()),
			zap.Duration("latency", latency),
		}
		switch {
		case status >= 500:
			reqLogger.Error("request failed", fields...)
		case status >= 400:
			reqLogger.Warn("request rejected", fields...)
		default:
			reqLogger.Info("request handled", fields...)
		}
	}
}
