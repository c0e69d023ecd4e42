package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/neuroatlas/neuroquery/internal/metrics"
)

// MetricsMiddleware records request counts and latency per route. The
// route template (not the raw path) is used as the label to keep
// cardinality bounded.
func MetricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		method := c.Request.Method

		metrics.RequestTotal.WithLabelValues(method, path, strconv.Itoa(c.Writer.Status())).Inc()
		metrics.RequestDuration.WithLabelValues(method, path).Observe(time.Since(start).Seconds())
	}
}
