package middleware

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/acmeshop/itemsvc/internal/metrics"
)

// Metrics records HTTP request counts and durations for Prometheus
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		// Use full route path (e.g., /items2/:item_id) to keep label cardinality bounded
		path := c.FullPath()
		if path == "" {
			path = c.Request.URL.Path
		}
		method := c.Request.Method
		status := fmt.Sprintf("%d", c.Writer.Status())
		metrics.HTTPRequestsTotal.WithLabelValues(path, method, status).Inc()
		dur := time.Since(start).Seconds()
		metrics.HTTPRequestDuration.WithLabelValues(path, method).Observe(dur)
	}
}
