package dto

import "strconv"

// DefaultLimit is used when limit is absent or not a positive integer.
const DefaultLimit = 100

// TopPerformersQuery is the query string of GET /get_top_performers.
type TopPerformersQuery struct {
	Limit     string `form:"limit"`
	Indicator string `form:"indicator" default:"gainers"`
}

// LimitValue returns the requested limit, falling back to DefaultLimit.
func (q TopPerformersQuery) LimitValue() int {
	n, err := strconv.Atoi(q.Limit)
	if err != nil || n < 1 {
		return DefaultLimit
	}
	return n
}
