// Package di provides dependency injection factories for creating application components.
package di

import (
	"net/http"

	"golang.org/x/time/rate"

	"market_relay/internal/platform/config"
	infrahttp "market_relay/internal/platform/http"
	"market_relay/internal/platform/metrics"
)

// NewUpstreamClient creates the throttled, instrumented HTTP client shared by every source.
func NewUpstreamClient(cfg config.HTTPConfig, rec *metrics.Recorder) *http.Client {
	limiter := rate.NewLimiter(rate.Limit(cfg.RatePerSecond), cfg.Burst)
	return infrahttp.NewHTTPClient(cfg.Timeout,
		infrahttp.WithLimiter(limiter),
		infrahttp.WithRecorder(rec),
	)
}
