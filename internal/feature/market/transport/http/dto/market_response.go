package dto

import "market_relay/internal/feature/market/domain/entity"

// MarketStateResponse is the flattened status plus latest bar.
type MarketStateResponse struct {
	IsOpen       any `json:"is_open"`
	AsOf         any `json:"as_of"`
	AsOfLive     any `json:"as_of_live"`
	AsOfWeekly   any `json:"as_of_weekly"`
	AsOfHourly   any `json:"as_of_hourly"`
	AsOfLiveUnix any `json:"as_of_live_unix"`
	Date         any `json:"date"`
	Symbol       any `json:"symbol"`
	Open         any `json:"open"`
	High         any `json:"high"`
	Low          any `json:"low"`
	Close        any `json:"close"`
	CurrVolume   any `json:"curr_volume"`
	Volume       any `json:"volume"`
	CurrAmount   any `json:"curr_amount"`
	Amount       any `json:"amount"`
}

// NewMarketStateResponse flattens s.
func NewMarketStateResponse(s entity.MarketState) MarketStateResponse {
	return MarketStateResponse{
		IsOpen:       s.IsOpen,
		AsOf:         s.AsOf,
		AsOfLive:     s.AsOfLive,
		AsOfWeekly:   s.AsOfWeekly,
		AsOfHourly:   s.AsOfHourly,
		AsOfLiveUnix: s.AsOfLiveUnix,
		Date:         s.Bar.Date,
		Symbol:       s.Bar.Symbol,
		Open:         s.Bar.Open,
		High:         s.Bar.High,
		Low:          s.Bar.Low,
		Close:        s.Bar.Close,
		CurrVolume:   s.Bar.CurrVolume,
		Volume:       s.Bar.Volume,
		CurrAmount:   s.Bar.CurrAmount,
		Amount:       s.Bar.Amount,
	}
}

// ChartPointResponse is one intraday chart point.
type ChartPointResponse struct {
	ID     any `json:"id"`
	Close  any `json:"close"`
	Date   any `json:"date"`
	Symbol any `json:"symbol"`
}

// NewChartPointResponses converts the chart points.
func NewChartPointResponses(points []entity.ChartPoint) []ChartPointResponse {
	out := make([]ChartPointResponse, 0, len(points))
	for _, p := range points {
		out = append(out, ChartPointResponse(p))
	}
	return out
}

// StatusResponse wraps the raw market status.
type StatusResponse struct {
	Success bool `json:"success"`
	Data    any  `json:"data"`
}

// IndexChartResponse is the daily series of one index.
type IndexChartResponse struct {
	Success     bool `json:"success"`
	Data        any  `json:"data"`
	PointChange any  `json:"point_change"`
}

// OpenFlag is the single entry of the insights status list.
type OpenFlag struct {
	IsOpen any `json:"is_open"`
}

// CloseSummaryResponse is the end-of-day summary.
type CloseSummaryResponse struct {
	Index         any `json:"index"`
	Change        any `json:"change"`
	PercentChange any `json:"percent_change"`
	Turnover      any `json:"turnover"`
	Transactions  any `json:"transactions"`
	Advanced      any `json:"advanced"`
	Declined      any `json:"declined"`
	Unchanged     any `json:"unchanged"`
	Date          any `json:"date"`
}

// CompanyResponse is one listed symbol.
type CompanyResponse struct {
	Symbol any `json:"symbol"`
	Name   any `json:"name"`
}

// NewCompanyResponses converts the company list.
func NewCompanyResponses(companies []entity.Company) []CompanyResponse {
	out := make([]CompanyResponse, 0, len(companies))
	for _, c := range companies {
		out = append(out, CompanyResponse(c))
	}
	return out
}
