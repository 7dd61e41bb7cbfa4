package dto

// Market data kinds accepted by POST /get_market_data.
const (
	MarketStateData = "market_state_data"
	MarketChartData = "market_chart_data"
)

// MarketDataRequest is the body of POST /get_market_data.
type MarketDataRequest struct {
	Type string `json:"type" binding:"required,oneof=market_state_data market_chart_data"`
}
