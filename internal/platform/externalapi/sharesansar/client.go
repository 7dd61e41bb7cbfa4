// Package sharesansar queries the sharesansar issue listing.
package sharesansar

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"market_relay/internal/feature/issues/domain/entity"
	"market_relay/internal/feature/issues/usecase"
	"market_relay/internal/platform/externalapi"
	infrahttp "market_relay/internal/platform/http"
)

// Client reads the existing issues listing.
type Client struct {
	baseURL string
	client  *http.Client
	now     func() time.Time
}

var _ usecase.IssueSource = (*Client)(nil)

type listingResponse struct {
	Data []entity.RawIssue `json:"data"`
}

// NewClient returns a Client rooted at baseURL, e.g. https://www.sharesansar.com.
func NewClient(baseURL string, client *http.Client) *Client {
	return &Client{baseURL: strings.TrimRight(baseURL, "/"), client: client, now: time.Now}
}

// ExistingIssues returns up to limit raw entries of one issue type code.
// The listing only answers requests that look like its own XHR calls.
func (c *Client) ExistingIssues(ctx context.Context, typeCode, limit int) ([]entity.RawIssue, error) {
	endpoint := c.baseURL + "/existing-issues"

	q := url.Values{}
	q.Set("draw", "1")
	q.Set("start", "0")
	q.Set("length", strconv.Itoa(limit))
	q.Set("search[value]", "")
	q.Set("search[regex]", "false")
	q.Set("type", strconv.Itoa(typeCode))
	q.Set("_", infrahttp.CacheBuster(c.now()))

	header := http.Header{}
	header.Set("User-Agent", infrahttp.DefaultUserAgent)
	header.Set("Accept", "application/json, text/javascript, */*; q=0.01")
	header.Set("Referer", endpoint)
	header.Set("X-Requested-With", "XMLHttpRequest")

	var body listingResponse
	if err := externalapi.GetJSON(ctx, c.client, endpoint+"?"+q.Encode(), header, &body); err != nil {
		return nil, err
	}
	if body.Data == nil {
		return []entity.RawIssue{}, nil
	}
	return body.Data, nil
}
