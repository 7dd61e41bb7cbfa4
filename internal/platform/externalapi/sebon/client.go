// Package sebon scrapes the securities board's prospectus listing.
package sebon

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"market_relay/internal/feature/filings/domain/entity"
	"market_relay/internal/feature/filings/usecase"
	"market_relay/internal/platform/externalapi"
	"market_relay/internal/shared/apperr"
)

// Client reads prospectus pages and sizes the linked documents.
type Client struct {
	baseURL string
	client  *http.Client
}

var _ usecase.FilingsSource = (*Client)(nil)

// NewClient returns a Client rooted at baseURL, e.g. https://www.sebon.gov.np.
func NewClient(baseURL string, client *http.Client) *Client {
	return &Client{baseURL: strings.TrimRight(baseURL, "/"), client: client}
}

// PageURL returns the listing URL of page n.
func (c *Client) PageURL(page int) string {
	return fmt.Sprintf("%s/prospectus?page=%d", c.baseURL, page)
}

// ProspectusRows fetches one listing page and returns the cells of every table row.
// Header rows come back with zero cells; the caller filters by cell count.
func (c *Client) ProspectusRows(ctx context.Context, page int) ([]entity.RawRow, error) {
	pageURL := c.PageURL(page)
	doc, err := externalapi.GetDocument(ctx, c.client, pageURL, nil)
	if err != nil {
		return nil, err
	}

	table := doc.Find("table").First()
	if table.Length() == 0 {
		return nil, fmt.Errorf("%w: no filings table on page %d", apperr.ErrParse, page)
	}

	base, _ := url.Parse(pageURL)
	var rows []entity.RawRow
	table.Find("tbody tr").Each(func(_ int, tr *goquery.Selection) {
		var row entity.RawRow
		tr.Find("td").Each(func(_ int, td *goquery.Selection) {
			cell := entity.RawCell{Text: td.Text()}
			if href, ok := td.Find("a").First().Attr("href"); ok {
				cell.Href = href
				cell.URL = resolve(base, href)
			}
			row.Cells = append(row.Cells, cell)
		})
		rows = append(rows, row)
	})
	return rows, nil
}

// ContentLength issues a HEAD request and returns the advertised body size in bytes.
func (c *Client) ContentLength(ctx context.Context, rawURL string) (int64, error) {
	res, err := externalapi.Do(ctx, c.client, http.MethodHead, rawURL, nil)
	if err != nil {
		return 0, err
	}
	_ = res.Body.Close()

	if res.ContentLength < 0 {
		return 0, fmt.Errorf("%w: %s has no content length", apperr.ErrParse, rawURL)
	}
	return res.ContentLength, nil
}

// resolve makes href absolute against the page it was found on.
func resolve(base *url.URL, href string) string {
	ref, err := url.Parse(strings.TrimSpace(href))
	if err != nil || base == nil {
		return href
	}
	return base.ResolveReference(ref).String()
}
