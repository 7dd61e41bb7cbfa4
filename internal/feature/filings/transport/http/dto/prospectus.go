package dto

import (
	"fmt"
	"strconv"
	"strings"

	"market_relay/internal/feature/filings/domain/entity"
	"market_relay/internal/shared/apperr"
)

// ProspectusQuery is the query string of GET /get_prospectus.
type ProspectusQuery struct {
	Pages string `form:"pages" default:"1"`
}

// PageNumbers parses the comma separated page list. Every entry must be a positive integer.
func (q ProspectusQuery) PageNumbers() ([]int, error) {
	parts := strings.Split(q.Pages, ",")
	pages := make([]int, 0, len(parts))
	for _, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil || n < 1 {
			return nil, fmt.Errorf("%w: page %q", apperr.ErrValidation, p)
		}
		pages = append(pages, n)
	}
	return pages, nil
}

// FilingResponse is one prospectus record.
type FilingResponse struct {
	Title         string `json:"title"`
	Date          string `json:"date"`
	PrimaryLink   string `json:"primaryLink"`
	SecondaryLink string `json:"secondaryLink"`
	FileSize      any    `json:"fileSize"` // MB number or "N/A"
}

// NewFilingResponses maps entities to response records.
func NewFilingResponses(filings []entity.Filing) []FilingResponse {
	out := make([]FilingResponse, 0, len(filings))
	for _, f := range filings {
		var size any = "N/A"
		if f.FileSizeMB != nil {
			size = *f.FileSizeMB
		}
		out = append(out, FilingResponse{
			Title:         f.Title,
			Date:          f.Date,
			PrimaryLink:   f.PrimaryLink,
			SecondaryLink: f.SecondaryLink,
			FileSize:      size,
		})
	}
	return out
}
