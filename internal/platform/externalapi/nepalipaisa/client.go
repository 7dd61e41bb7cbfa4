// Package nepalipaisa queries the nepalipaisa market JSON API.
package nepalipaisa

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	indicesuc "market_relay/internal/feature/indices/usecase"
	marketuc "market_relay/internal/feature/market/usecase"
	moversuc "market_relay/internal/feature/movers/usecase"
	"market_relay/internal/platform/externalapi"
	"market_relay/internal/platform/externalapi/nepalipaisa/dto"
	infrahttp "market_relay/internal/platform/http"
	"market_relay/internal/shared/apperr"
)

// Client reads market movers, live indices and the live NEPSE summary.
type Client struct {
	baseURL string
	client  *http.Client
	now     func() time.Time
}

var (
	_ moversuc.MoversSource      = (*Client)(nil)
	_ indicesuc.IndexSource      = (*Client)(nil)
	_ marketuc.LiveSummarySource = (*Client)(nil)
)

// NewClient returns a Client rooted at baseURL, e.g. https://nepalipaisa.com/api.
func NewClient(baseURL string, client *http.Client) *Client {
	return &Client{baseURL: strings.TrimRight(baseURL, "/"), client: client, now: time.Now}
}

// TopMarketMovers returns the movers of one indicator. A missing result list is empty.
func (c *Client) TopMarketMovers(ctx context.Context, indicator string, limit int) ([]map[string]any, error) {
	q := url.Values{}
	q.Set("indicator", indicator)
	q.Set("sectorCode", "")
	q.Set("limit", strconv.Itoa(limit))
	q.Set("_", infrahttp.CacheBuster(c.now()))

	var body dto.ListResponse
	if err := externalapi.GetJSON(ctx, c.client, c.baseURL+"/GetTopMarketMovers?"+q.Encode(), nil, &body); err != nil {
		return nil, err
	}
	if body.Result == nil {
		return []map[string]any{}, nil
	}
	return *body.Result, nil
}

// LiveIndices returns the records of GetIndexLive or GetSubIndexLive.
// Unlike the movers list, the result key is mandatory here.
func (c *Client) LiveIndices(ctx context.Context, endpoint string) ([]map[string]any, error) {
	q := url.Values{}
	q.Set("_", infrahttp.CacheBuster(c.now()))

	var body dto.ListResponse
	if err := externalapi.GetJSON(ctx, c.client, c.baseURL+"/"+endpoint+"?"+q.Encode(), nil, &body); err != nil {
		return nil, err
	}
	if body.Result == nil {
		return nil, fmt.Errorf("%w: %s has no result", apperr.ErrParse, endpoint)
	}
	return *body.Result, nil
}

// NepseLive returns the live NEPSE summary object. A missing result is empty.
func (c *Client) NepseLive(ctx context.Context) (map[string]any, error) {
	var body dto.ObjectResponse
	if err := externalapi.GetJSON(ctx, c.client, c.baseURL+"/GetNepseLive", nil, &body); err != nil {
		return nil, err
	}
	if body.Result == nil {
		return map[string]any{}, nil
	}
	return body.Result, nil
}
