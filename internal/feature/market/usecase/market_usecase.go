// Package usecase reshapes market status, intraday and index data.
package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"market_relay/internal/feature/market/domain/entity"
	"market_relay/internal/shared/apperr"
	"market_relay/internal/shared/record"
)

// DefaultIndex is charted when no index is requested.
const DefaultIndex = "nepse"

// NepseSymbol is the intraday series of the main index.
const NepseSymbol = "NEPSE"

// IndexKeys maps chart aliases to upstream index keys.
var IndexKeys = map[string]string{
	"nepse":        "nepse",
	"banking":      "bankingind",
	"devbank":      "devbankind",
	"finance":      "financeind",
	"hotels":       "hotelind",
	"hydro":        "hydropowind",
	"invest":       "invidx",
	"life":         "lifeinsuind",
	"manufacture":  "manufactureind",
	"microfinance": "microfinind",
	"mutual":       "mutualind",
	"nonlife":      "nonlifeind",
	"others":       "othersind",
	"trading":      "tradingind",
}

// isoLayouts are the timestamp shapes accepted by FormatClock.
var isoLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999Z07:00",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02T15:04",
	"2006-01-02",
}

// MarketSource is the intraday/status API.
type MarketSource interface {
	MarketStatus(ctx context.Context) (record.Record, error)
	IntraHistory(ctx context.Context, symbol string) ([]record.Record, error)
	DailyIndex(ctx context.Context, key string) (record.Record, error)
	Symbols(ctx context.Context) ([]record.Record, error)
}

// LiveSummarySource returns the live NEPSE summary object.
type LiveSummarySource interface {
	NepseLive(ctx context.Context) (record.Record, error)
}

// MarketUsecase serves the market endpoints.
type MarketUsecase struct {
	market MarketSource
	live   LiveSummarySource
}

// NewMarketUsecase creates a MarketUsecase.
func NewMarketUsecase(market MarketSource, live LiveSummarySource) *MarketUsecase {
	return &MarketUsecase{market: market, live: live}
}

// Status returns the raw market status.
func (u *MarketUsecase) Status(ctx context.Context) (record.Record, error) {
	return u.market.MarketStatus(ctx)
}

// IsOpen reports the is_open flag of the market status, false when absent.
func (u *MarketUsecase) IsOpen(ctx context.Context) (any, error) {
	s, err := u.market.MarketStatus(ctx)
	if err != nil {
		return nil, err
	}
	return getOr(s, "is_open", false), nil
}

// State merges the market status with the first NEPSE intraday bar.
func (u *MarketUsecase) State(ctx context.Context) (entity.MarketState, error) {
	status, err := u.market.MarketStatus(ctx)
	if err != nil {
		return entity.MarketState{}, err
	}
	bars, err := u.market.IntraHistory(ctx, NepseSymbol)
	if err != nil {
		return entity.MarketState{}, err
	}
	if len(bars) == 0 {
		return entity.MarketState{}, fmt.Errorf("%w: empty intraday series", apperr.ErrNoData)
	}

	bar := bars[0]
	return entity.MarketState{
		IsOpen:       status["is_open"],
		AsOf:         status["as_of"],
		AsOfLive:     status["as_of_live"],
		AsOfWeekly:   status["as_of_weekly"],
		AsOfHourly:   status["as_of_hourly"],
		AsOfLiveUnix: status["as_of_live_unix"],
		Bar: entity.Bar{
			Date:       FormatClock(bar["date"]),
			Symbol:     bar["symbol"],
			Open:       bar["open"],
			High:       bar["high"],
			Low:        bar["low"],
			Close:      bar["close"],
			CurrVolume: bar["curr_volume"],
			Volume:     bar["volume"],
			CurrAmount: bar["curr_amount"],
			Amount:     bar["amount"],
		},
	}, nil
}

// IntradayChart returns the NEPSE intraday series reduced to chart points.
func (u *MarketUsecase) IntradayChart(ctx context.Context) ([]entity.ChartPoint, error) {
	bars, err := u.market.IntraHistory(ctx, NepseSymbol)
	if err != nil {
		return nil, err
	}
	out := make([]entity.ChartPoint, 0, len(bars))
	for _, b := range bars {
		out = append(out, entity.ChartPoint{
			ID:     b["id"],
			Close:  b["close"],
			Date:   FormatClock(b["date"]),
			Symbol: b["symbol"],
		})
	}
	return out, nil
}

// IndexChart returns the daily series of the index named by alias (case-insensitive).
func (u *MarketUsecase) IndexChart(ctx context.Context, alias string) (entity.IndexChart, error) {
	if alias == "" {
		alias = DefaultIndex
	}
	key, ok := IndexKeys[strings.ToLower(alias)]
	if !ok {
		return entity.IndexChart{}, fmt.Errorf("%w: index %q", apperr.ErrValidation, alias)
	}

	raw, err := u.market.DailyIndex(ctx, key)
	if err != nil {
		return entity.IndexChart{}, err
	}
	return entity.IndexChart{
		Data:        getOr(raw, "data", []any{}),
		PointChange: raw["point_change"],
	}, nil
}

// CloseSummary returns the live NEPSE summary with index figures rounded to two decimals.
func (u *MarketUsecase) CloseSummary(ctx context.Context) (entity.CloseSummary, error) {
	data, err := u.live.NepseLive(ctx)
	if err != nil {
		return entity.CloseSummary{}, err
	}

	index, err := round2(data, "indexValue")
	if err != nil {
		return entity.CloseSummary{}, err
	}
	change, err := round2(data, "difference")
	if err != nil {
		return entity.CloseSummary{}, err
	}
	pct, err := round2(data, "percentChange")
	if err != nil {
		return entity.CloseSummary{}, err
	}

	zero := json.Number("0")
	return entity.CloseSummary{
		Index:         index,
		Change:        change,
		PercentChange: pct,
		Turnover:      getOr(data, "turnover", zero),
		Transactions:  getOr(data, "noOfTransactions", zero),
		Advanced:      getOr(data, "noOfGainers", zero),
		Declined:      getOr(data, "noOfLosers", zero),
		Unchanged:     getOr(data, "noOfUnchanged", zero),
		Date:          getOr(data, "asOfDateString", ""),
	}, nil
}

// Companies returns the symbol/name pairs, dropping entries that lack either key.
// An empty list is treated as a failed fetch.
func (u *MarketUsecase) Companies(ctx context.Context) ([]entity.Company, error) {
	symbols, err := u.market.Symbols(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]entity.Company, 0, len(symbols))
	for _, s := range symbols {
		sym, okSym := s["symbol"]
		name, okName := s["name"]
		if !okSym || !okName {
			continue
		}
		out = append(out, entity.Company{Symbol: sym, Name: name})
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("%w: no companies", apperr.ErrNoData)
	}
	return out, nil
}

// FormatClock renders an ISO timestamp as HH:MM:SS in its own offset.
// Anything that does not parse is returned unchanged.
func FormatClock(v any) any {
	s, ok := v.(string)
	if !ok {
		return v
	}
	for _, layout := range isoLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format(time.TimeOnly)
		}
	}
	return s
}

// round2 rounds a numeric field half away from zero; an absent field is 0.
func round2(rec record.Record, key string) (json.Number, error) {
	v, ok := rec[key]
	if !ok || v == nil {
		return json.Number("0"), nil
	}
	var d decimal.Decimal
	switch n := v.(type) {
	case json.Number:
		var err error
		if d, err = decimal.NewFromString(n.String()); err != nil {
			return "", fmt.Errorf("%w: %s: %v", apperr.ErrParse, key, err)
		}
	case float64:
		d = decimal.NewFromFloat(n)
	default:
		return "", fmt.Errorf("%w: %s is %T", apperr.ErrParse, key, v)
	}
	return json.Number(d.Round(2).String()), nil
}

func getOr(rec record.Record, key string, def any) any {
	if v, ok := rec[key]; ok {
		return v
	}
	return def
}
