// Package usecase normalizes prospectus listing pages.
package usecase

import (
	"context"
	"log/slog"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"market_relay/internal/feature/filings/domain/entity"
	"market_relay/internal/shared/batch"
)

// cellsPerRow is the only row shape that carries a filing.
const cellsPerRow = 4

var bytesPerMB = decimal.NewFromInt(1024 * 1024)

// FilingsSource reads listing pages.
type FilingsSource interface {
	ProspectusRows(ctx context.Context, page int) ([]entity.RawRow, error)
	ContentLength(ctx context.Context, rawURL string) (int64, error)
}

// FilingsUsecase fetches and normalizes prospectus pages.
type FilingsUsecase struct {
	src         FilingsSource
	parallelism int
}

// NewFilingsUsecase creates a FilingsUsecase.
func NewFilingsUsecase(src FilingsSource) *FilingsUsecase {
	return &FilingsUsecase{src: src, parallelism: batch.DefaultParallelism}
}

// Prospectus returns the filings of every page in request order.
// A failing page is reported in the failure list; the call fails only when every page failed.
func (u *FilingsUsecase) Prospectus(ctx context.Context, pages []int) ([]entity.Filing, []batch.Failure, error) {
	keys := make([]string, len(pages))
	for i, p := range pages {
		keys[i] = strconv.Itoa(p)
	}

	out, failures := batch.Collect(ctx, keys, u.parallelism, func(ctx context.Context, key string) ([]entity.Filing, error) {
		page, _ := strconv.Atoi(key)
		rows, err := u.src.ProspectusRows(ctx, page)
		if err != nil {
			return nil, err
		}
		return u.normalizePage(ctx, rows), nil
	})
	return out, failures, batch.Outcome(keys, failures)
}

func (u *FilingsUsecase) normalizePage(ctx context.Context, rows []entity.RawRow) []entity.Filing {
	filings := make([]entity.Filing, 0, len(rows))
	for _, row := range rows {
		f, ok := NormalizeRow(row)
		if !ok {
			continue
		}
		f.FileSizeMB = u.sizeOf(ctx, row.Cells[2].URL)
		filings = append(filings, f)
	}
	return filings
}

// sizeOf never fails: any sizing error leaves the size unknown.
func (u *FilingsUsecase) sizeOf(ctx context.Context, rawURL string) *float64 {
	if rawURL == "" {
		return nil
	}
	n, err := u.src.ContentLength(ctx, rawURL)
	if err != nil {
		slog.DebugContext(ctx, "file size unavailable", "url", rawURL, "error", err)
		return nil
	}
	mb := MegaBytes(n)
	return &mb
}

// NormalizeRow maps a four-cell row to a Filing. Rows of any other shape are rejected.
// The size is left unknown.
func NormalizeRow(row entity.RawRow) (entity.Filing, bool) {
	if len(row.Cells) != cellsPerRow {
		return entity.Filing{}, false
	}
	return entity.Filing{
		Title:         strings.TrimSpace(row.Cells[0].Text),
		Date:          strings.TrimSpace(row.Cells[1].Text),
		PrimaryLink:   row.Cells[2].Href,
		SecondaryLink: row.Cells[3].Href,
	}, true
}

// MegaBytes converts a byte count to MB rounded to two decimals.
func MegaBytes(n int64) float64 {
	f, _ := decimal.NewFromInt(n).Div(bytesPerMB).Round(2).Float64()
	return f
}
