package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/loudent/library/pkg/metrics"
)

// Metrics records request counts and latency. Paths are recorded as route
// templates, not raw URLs, to bound label cardinality.
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		if metrics.HTTPRequestsTotal != nil {
			metrics.HTTPRequestsTotal.WithLabelValues(
				c.Request.Method, path, strconv.Itoa(c.Writer.Status()),
			).Inc()
		}
		if metrics.HTTPRequestDuration != nil {
			metrics.HTTPRequestDuration.WithLabelValues(
				c.Request.Method, path,
			).Observe(time.Since(start).Seconds())
		}
	}
}
