package dto

import (
	"encoding/json"
	"strconv"

	"market_relay/internal/feature/issues/domain/entity"
)

// DefaultLimit is used when limit is absent or not a positive integer.
const DefaultLimit = 20

// UpcomingIssuesQuery is the query string of GET /get_upcoming_issues.
type UpcomingIssuesQuery struct {
	Type  string `form:"type" default:"all"`
	Limit string `form:"limit"`
}

// LimitValue returns the requested limit, falling back to DefaultLimit.
func (q UpcomingIssuesQuery) LimitValue() int {
	n, err := strconv.Atoi(q.Limit)
	if err != nil || n < 1 {
		return DefaultLimit
	}
	return n
}

// IssueResponse is one upcoming issue.
type IssueResponse struct {
	CompanyName           string          `json:"companyName"`
	CompanySymbol         string          `json:"companySymbol"`
	Units                 string          `json:"units"`
	Price                 string          `json:"price"`
	OpeningDateAd         json.RawMessage `json:"openingDateAd"`
	ClosingDateAd         json.RawMessage `json:"closingDateAd"`
	ExtendedClosingDateAd json.RawMessage `json:"extendedClosingDateAd"`
	OpeningDateBs         string          `json:"openingDateBs"`
	ClosingDateBs         string          `json:"closingDateBs"`
	ExtendedClosingDateBs string          `json:"extendedClosingDateBs"`
	ListingDate           json.RawMessage `json:"listingDate"`
	IssueManager          json.RawMessage `json:"issueManager"`
	Status                string          `json:"status"`
	IssueType             string          `json:"issueType"`
}

// NewIssueResponses maps entities to response records.
func NewIssueResponses(issues []entity.Issue) []IssueResponse {
	out := make([]IssueResponse, 0, len(issues))
	for _, i := range issues {
		out = append(out, IssueResponse(i))
	}
	return out
}
