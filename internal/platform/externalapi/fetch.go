// Package externalapi holds the request plumbing shared by every upstream source client.
package externalapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/PuerkitoBio/goquery"

	"market_relay/internal/shared/apperr"
)

// Do sends a request with the given headers and returns the response once the
// status is below 400. The caller closes the body.
func Do(ctx context.Context, client *http.Client, method, rawURL string, header http.Header) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, method, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: build request: %v", apperr.ErrUpstreamFetch, err)
	}
	for k, vs := range header {
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}

	res, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", apperr.ErrUpstreamFetch, req.URL.Host, err)
	}
	if res.StatusCode >= 400 {
		closeBody(res.Body)
		return nil, fmt.Errorf("%w: %s http %d", apperr.ErrUpstreamFetch, req.URL.Host, res.StatusCode)
	}
	return res, nil
}

// GetJSON fetches rawURL and decodes the body into dst.
// Numbers in interface values are kept as json.Number so they are re-emitted verbatim.
func GetJSON(ctx context.Context, client *http.Client, rawURL string, header http.Header, dst any) error {
	res, err := Do(ctx, client, http.MethodGet, rawURL, header)
	if err != nil {
		return err
	}
	defer closeBody(res.Body)

	dec := json.NewDecoder(res.Body)
	dec.UseNumber()
	if err := dec.Decode(dst); err != nil {
		return fmt.Errorf("%w: decode %s: %v", apperr.ErrParse, res.Request.URL.Host, err)
	}
	return nil
}

// GetDocument fetches rawURL and parses the body as HTML.
func GetDocument(ctx context.Context, client *http.Client, rawURL string, header http.Header) (*goquery.Document, error) {
	res, err := Do(ctx, client, http.MethodGet, rawURL, header)
	if err != nil {
		return nil, err
	}
	defer closeBody(res.Body)

	doc, err := goquery.NewDocumentFromReader(res.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: html %s: %v", apperr.ErrParse, res.Request.URL.Host, err)
	}
	return doc, nil
}

func closeBody(body io.ReadCloser) {
	// 読み残しを捨ててコネクションを再利用する
	_, _ = io.Copy(io.Discard, body)
	if err := body.Close(); err != nil {
		slog.Warn("failed to close response body", "error", err)
	}
}
