// Package entity defines the market state, chart and summary records.
// Values are upstream JSON passed through; nil marshals as null.
package entity

// Bar is one intraday NEPSE bar.
type Bar struct {
	Date       any
	Symbol     any
	Open       any
	High       any
	Low        any
	Close      any
	CurrVolume any
	Volume     any
	CurrAmount any
	Amount     any
}

// MarketState merges the market status with the latest intraday bar.
type MarketState struct {
	IsOpen       any
	AsOf         any
	AsOfLive     any
	AsOfWeekly   any
	AsOfHourly   any
	AsOfLiveUnix any
	Bar          Bar
}

// ChartPoint is one point of the intraday chart.
type ChartPoint struct {
	ID     any
	Close  any
	Date   any
	Symbol any
}

// IndexChart is the daily series of one index.
type IndexChart struct {
	Data        any
	PointChange any
}

// CloseSummary is the end-of-day NEPSE summary.
type CloseSummary struct {
	Index         any
	Change        any
	PercentChange any
	Turnover      any
	Transactions  any
	Advanced      any
	Declined      any
	Unchanged     any
	Date          any
}

// Company is one listed symbol.
type Company struct {
	Symbol any
	Name   any
}
