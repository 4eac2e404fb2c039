package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"bookfair-reservation/internal/pkg/metrics"
)

// MetricsMiddleware records every request under its route template.
func MetricsMiddleware(m *metrics.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		m.ObserveRequest(c.Request.Method, c.FullPath(), c.Writer.Status(), time.Since(start))
	}
}
