// Package chukul queries the chukul market data API.
package chukul

import (
	"context"
	"net/http"
	"net/url"
	"strings"
	"time"

	marketuc "market_relay/internal/feature/market/usecase"
	movemententity "market_relay/internal/feature/movement/domain/entity"
	movementuc "market_relay/internal/feature/movement/usecase"
	"market_relay/internal/platform/externalapi"
	infrahttp "market_relay/internal/platform/http"
	"market_relay/internal/shared/record"
)

// Client reads market status, intraday history, daily index series,
// stock performance and the symbol list.
type Client struct {
	baseURL string
	client  *http.Client
	now     func() time.Time
}

var (
	_ marketuc.MarketSource        = (*Client)(nil)
	_ movementuc.PerformanceSource = (*Client)(nil)
)

// NewClient returns a Client rooted at baseURL, e.g. https://chukul.com/api.
func NewClient(baseURL string, client *http.Client) *Client {
	return &Client{baseURL: strings.TrimRight(baseURL, "/"), client: client, now: time.Now}
}

// Performance returns the day's percentage change of every stock.
func (c *Client) Performance(ctx context.Context) ([]movemententity.Performance, error) {
	var out []movemententity.Performance
	if err := c.get(ctx, "/data/intrahistorydata/performance/?type=stock", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// MarketStatus returns the market status object as published.
func (c *Client) MarketStatus(ctx context.Context) (record.Record, error) {
	var out record.Record
	if err := c.get(ctx, "/tools/market/status/", &out); err != nil {
		return nil, err
	}
	if out == nil {
		out = record.Record{}
	}
	return out, nil
}

// IntraHistory returns the intraday bars of symbol.
func (c *Client) IntraHistory(ctx context.Context, symbol string) ([]record.Record, error) {
	q := url.Values{}
	q.Set("symbol", symbol)

	var out []record.Record
	if err := c.get(ctx, "/data/intrahistorydata/?"+q.Encode(), &out); err != nil {
		return nil, err
	}
	return out, nil
}

// DailyIndex returns the daily series object of one index key.
func (c *Client) DailyIndex(ctx context.Context, key string) (record.Record, error) {
	var out record.Record
	if err := c.get(ctx, "/data/v2/daily/"+url.PathEscape(key)+"/", &out); err != nil {
		return nil, err
	}
	if out == nil {
		out = record.Record{}
	}
	return out, nil
}

// Symbols returns every listed symbol record.
func (c *Client) Symbols(ctx context.Context) ([]record.Record, error) {
	q := url.Values{}
	q.Set("_", infrahttp.CacheBuster(c.now()))

	var out []record.Record
	if err := c.get(ctx, "/data/symbol/?"+q.Encode(), &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) get(ctx context.Context, path string, dst any) error {
	return externalapi.GetJSON(ctx, c.client, c.baseURL+path, nil, dst)
}
