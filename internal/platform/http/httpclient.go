// Package http builds the HTTP client used for every upstream source.
package http

import (
	"net"
	"net/http"
	"strconv"
	"time"

	"golang.org/x/time/rate"

	"market_relay/internal/platform/metrics"
)

// DefaultUserAgent is sent when a request carries no User-Agent of its own.
// Some sources reject the Go default.
const DefaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/115.0.0.0 Safari/537.36"

// Option customises NewHTTPClient.
type Option func(*clientOptions)

type clientOptions struct {
	limiter   *rate.Limiter
	recorder  *metrics.Recorder
	userAgent string
}

// WithLimiter throttles outgoing requests; each request waits for a token.
func WithLimiter(l *rate.Limiter) Option {
	return func(o *clientOptions) { o.limiter = l }
}

// WithRecorder records every upstream request on r.
func WithRecorder(r *metrics.Recorder) Option {
	return func(o *clientOptions) { o.recorder = r }
}

// WithUserAgent overrides DefaultUserAgent.
func WithUserAgent(ua string) Option {
	return func(o *clientOptions) { o.userAgent = ua }
}

// NewHTTPClient は外部API呼び出し用に設定されたHTTPクライアントを作成します。
//
// 設定:
//   - Dialer.Timeout: TCP接続タイムアウト（デフォルトより短い）
//   - MaxIdleConns / IdleConnTimeout: 接続の再利用
//   - TLSHandshakeTimeout: HTTPSハンドシェイクの最大時間
//   - Client.Timeout: リクエスト全体のタイムアウト（呼び出し元から渡される）
//
// http.DefaultClient にはタイムアウトがないため、上流への呼び出しはすべてこのクライアントを通し、
// 自動リトライは行いません。
func NewHTTPClient(timeout time.Duration, opts ...Option) *http.Client {
	o := clientOptions{userAgent: DefaultUserAgent}
	for _, opt := range opts {
		opt(&o)
	}

	var rt http.RoundTripper = &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   5 * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		MaxIdleConns:        100,
		IdleConnTimeout:     90 * time.Second,
		TLSHandshakeTimeout: 5 * time.Second,
	}
	rt = &instrumentedTransport{next: rt, recorder: o.recorder}
	if o.limiter != nil {
		rt = &throttledTransport{next: rt, limiter: o.limiter}
	}
	rt = &userAgentTransport{next: rt, userAgent: o.userAgent}

	return &http.Client{Timeout: timeout, Transport: rt}
}

// throttledTransport waits for the limiter before each request.
type throttledTransport struct {
	next    http.RoundTripper
	limiter *rate.Limiter
}

func (t *throttledTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if err := t.limiter.Wait(req.Context()); err != nil {
		return nil, err
	}
	return t.next.RoundTrip(req)
}

// instrumentedTransport records host, status and latency of each request.
type instrumentedTransport struct {
	next     http.RoundTripper
	recorder *metrics.Recorder
}

func (t *instrumentedTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	start := time.Now()
	res, err := t.next.RoundTrip(req)

	outcome := "error"
	if err == nil {
		outcome = strconv.Itoa(res.StatusCode)
	}
	t.recorder.ObserveUpstream(req.URL.Host, req.Method, outcome, time.Since(start))
	return res, err
}

// userAgentTransport sets a User-Agent when the request has none.
type userAgentTransport struct {
	next      http.RoundTripper
	userAgent string
}

func (t *userAgentTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if req.Header.Get("User-Agent") != "" || t.userAgent == "" {
		return t.next.RoundTrip(req)
	}
	// RoundTripper must not modify the caller's request
	r := req.Clone(req.Context())
	r.Header.Set("User-Agent", t.userAgent)
	return t.next.RoundTrip(r)
}

// CacheBuster returns the epoch-milliseconds value appended as "_" to upstream URLs.
func CacheBuster(now time.Time) string {
	return strconv.FormatInt(now.UnixMilli(), 10)
}
