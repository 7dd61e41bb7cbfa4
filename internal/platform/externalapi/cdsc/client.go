// Package cdsc scrapes the depository's homepage statistics block.
package cdsc

import (
	"context"
	"fmt"
	"net/http"

	"github.com/PuerkitoBio/goquery"

	"market_relay/internal/feature/depository/domain/entity"
	"market_relay/internal/feature/depository/usecase"
	"market_relay/internal/platform/externalapi"
	"market_relay/internal/shared/apperr"
)

// Client reads the statistics block.
type Client struct {
	pageURL string
	client  *http.Client
}

var _ usecase.StatisticsSource = (*Client)(nil)

// NewClient returns a Client for the homepage at pageURL.
func NewClient(pageURL string, client *http.Client) *Client {
	return &Client{pageURL: pageURL, client: client}
}

// Statistics returns the h4 elements of the block as value/label pairs.
// A trailing element without a partner is dropped.
func (c *Client) Statistics(ctx context.Context) ([]entity.Pair, error) {
	doc, err := externalapi.GetDocument(ctx, c.client, c.pageURL, nil)
	if err != nil {
		return nil, err
	}

	block := doc.Find("div.fun-factor-area").First()
	if block.Length() == 0 {
		return nil, fmt.Errorf("%w: statistics block not found", apperr.ErrParse)
	}

	var texts []string
	block.Find("h4").Each(func(_ int, s *goquery.Selection) {
		texts = append(texts, s.Text())
	})

	pairs := make([]entity.Pair, 0, len(texts)/2)
	for i := 0; i+1 < len(texts); i += 2 {
		pairs = append(pairs, entity.Pair{Value: texts[i], Label: texts[i+1]})
	}
	return pairs, nil
}
