package dto

// MarketIndicesQuery is the query string of GET /get_market_indices.
type MarketIndicesQuery struct {
	Type string `form:"type" default:"all_indices"`
}
