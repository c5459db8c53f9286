package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"libcatalog/pkg/metrics"
)

// Metrics records request counts and latency per route. The route template
// (FullPath) is used instead of the raw URL to keep label cardinality
// bounded.
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		metrics.HTTPRequestsTotal.WithLabelValues(
			c.Request.Method, path, strconv.Itoa(c.Writer.Status())).Inc()
		metrics.HTTPRequestDuration.WithLabelValues(
			c.Request.Method, path).Observe(time.Since(start).Seconds())
	}
}
