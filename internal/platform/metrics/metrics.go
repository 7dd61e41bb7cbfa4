// Package metrics records Prometheus metrics for inbound requests and upstream fetches.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Recorder holds the relay's Prometheus collectors.
// A nil *Recorder is valid and records nothing.
type Recorder struct {
	upstreamTotal    *prometheus.CounterVec
	upstreamDuration *prometheus.HistogramVec
	requestsTotal    *prometheus.CounterVec
	requestDuration  *prometheus.HistogramVec
}

// New registers the collectors on reg.
func New(reg prometheus.Registerer) *Recorder {
	f := promauto.With(reg)
	return &Recorder{
		upstreamTotal: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "relay_upstream_requests_total",
				Help: "Total number of upstream requests by host, method and outcome",
			},
			[]string{"host", "method", "outcome"},
		),
		upstreamDuration: f.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "relay_upstream_request_duration_seconds",
				Help:    "Duration of upstream requests in seconds",
				Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
			},
			[]string{"host"},
		),
		requestsTotal: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "relay_http_requests_total",
				Help: "Total number of HTTP requests served",
			},
			[]string{"route", "method", "status"},
		),
		requestDuration: f.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "relay_http_request_duration_seconds",
				Help:    "HTTP request duration in seconds",
				Buckets: []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
			},
			[]string{"route", "method"},
		),
	}
}

// ObserveUpstream records one upstream request. outcome is a status code or "error".
func (r *Recorder) ObserveUpstream(host, method, outcome string, d time.Duration) {
	if r == nil {
		return
	}
	r.upstreamTotal.WithLabelValues(host, method, outcome).Inc()
	r.upstreamDuration.WithLabelValues(host).Observe(d.Seconds())
}

// ObserveRequest records one served request. route should be the templated route path.
func (r *Recorder) ObserveRequest(route, method string, status int, d time.Duration) {
	if r == nil {
		return
	}
	r.requestsTotal.WithLabelValues(route, method, strconv.Itoa(status)).Inc()
	r.requestDuration.WithLabelValues(route, method).Observe(d.Seconds())
}
