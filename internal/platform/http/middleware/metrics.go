package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"market_relay/internal/platform/metrics"
)

// Metrics records every request on rec, labelled by the templated gin route
// to keep label cardinality low. Unmatched paths are recorded as "unmatched".
func Metrics(rec *metrics.Recorder) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		rec.ObserveRequest(route, c.Request.Method, c.Writer.Status(), time.Since(start))
	}
}
