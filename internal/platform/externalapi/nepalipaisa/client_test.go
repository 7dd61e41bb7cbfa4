package nepalipaisa

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"market_relay/internal/shared/apperr"
)

func newTestClient(srv *httptest.Server) *Client {
	c := NewClient(srv.URL+"/api/", srv.Client())
	c.now = func() time.Time { return time.UnixMilli(1705276800123) }
	return c
}

func TestClient_TopMarketMovers(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/GetTopMarketMovers", r.URL.Path)
		q := r.URL.Query()
		assert.Equal(t, "gainers", q.Get("indicator"))
		assert.Equal(t, "5", q.Get("limit"))
		assert.Equal(t, "1705276800123", q.Get("_"))
		assert.True(t, q.Has("sectorCode"))
		_, _ = w.Write([]byte(`{"result":[{"stockSymbol":"NABIL","percentChange":9.98,"ltp":512.00}]}`))
	}))
	defer srv.Close()

	got, err := newTestClient(srv).TopMarketMovers(context.Background(), "gainers", 5)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "NABIL", got[0]["stockSymbol"])
	// numbers keep their upstream text
	assert.Equal(t, json.Number("512.00"), got[0]["ltp"])
}

func TestClient_TopMarketMovers_MissingResult(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"message":"ok"}`))
	}))
	defer srv.Close()

	got, err := newTestClient(srv).TopMarketMovers(context.Background(), "turnover", 5)
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestClient_LiveIndices(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/GetIndexLive":
			_, _ = w.Write([]byte(`{"result":[{"indexName":"NEPSE","indexValue":2045.12}]}`))
		case "/api/GetSubIndexLive":
			_, _ = w.Write([]byte(`{}`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer srv.Close()

	c := newTestClient(srv)

	got, err := c.LiveIndices(context.Background(), "GetIndexLive")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "NEPSE", got[0]["indexName"])

	_, err = c.LiveIndices(context.Background(), "GetSubIndexLive")
	assert.ErrorIs(t, err, apperr.ErrParse)

	_, err = c.LiveIndices(context.Background(), "Unknown")
	assert.ErrorIs(t, err, apperr.ErrUpstreamFetch)
}

func TestClient_NepseLive(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/GetNepseLive", r.URL.Path)
		_, _ = w.Write([]byte(`{"result":{"indexValue":2045.678,"asOfDateString":"2024-01-15"}}`))
	}))
	defer srv.Close()

	got, err := newTestClient(srv).NepseLive(context.Background())
	require.NoError(t, err)
	assert.Equal(t, json.Number("2045.678"), got["indexValue"])
	assert.Equal(t, "2024-01-15", got["asOfDateString"])
}
