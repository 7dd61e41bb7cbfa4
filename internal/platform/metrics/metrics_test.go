package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRecorder_ObserveUpstream(t *testing.T) {
	t.Parallel()

	reg := prometheus.NewRegistry()
	r := New(reg)

	r.ObserveUpstream("chukul.com", "GET", "200", 120*time.Millisecond)
	r.ObserveUpstream("chukul.com", "GET", "200", 80*time.Millisecond)
	r.ObserveUpstream("chukul.com", "GET", "error", time.Second)

	assert.Equal(t, 2.0, testutil.ToFloat64(r.upstreamTotal.WithLabelValues("chukul.com", "GET", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.upstreamTotal.WithLabelValues("chukul.com", "GET", "error")))
}

func TestRecorder_ObserveRequest(t *testing.T) {
	t.Parallel()

	reg := prometheus.NewRegistry()
	r := New(reg)

	r.ObserveRequest("/get_cdsc_data", "GET", 500, time.Second)

	assert.Equal(t, 1.0, testutil.ToFloat64(r.requestsTotal.WithLabelValues("/get_cdsc_data", "GET", "500")))
}

func TestRecorder_NilIsNoop(t *testing.T) {
	t.Parallel()

	var r *Recorder
	assert.NotPanics(t, func() {
		r.ObserveUpstream("h", "GET", "200", time.Millisecond)
		r.ObserveRequest("/", "GET", 200, time.Millisecond)
	})
}
