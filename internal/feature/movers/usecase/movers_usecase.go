// Package usecase fetches and tags market movers per indicator.
package usecase

import (
	"context"
	"fmt"
	"slices"

	"market_relay/internal/shared/apperr"
	"market_relay/internal/shared/batch"
	"market_relay/internal/shared/record"
)

const (
	// All selects the AllIndicators table.
	All = "all"
	// TypeField names the indicator a record was fetched for.
	TypeField = "type"
)

// Indicators lists every indicator the upstream accepts.
var Indicators = []string{"turnover", "gainers", "losers", "sharestraded", "transactions"}

// AllIndicators is the fetch order of "all". transactions is not part of it.
var AllIndicators = []string{"turnover", "gainers", "losers", "sharestraded"}

// MoversSource returns the raw movers of one indicator.
type MoversSource interface {
	TopMarketMovers(ctx context.Context, indicator string, limit int) ([]record.Record, error)
}

// MoversUsecase builds the market mover lists.
type MoversUsecase struct {
	src         MoversSource
	parallelism int
}

// NewMoversUsecase creates a MoversUsecase.
func NewMoversUsecase(src MoversSource) *MoversUsecase {
	return &MoversUsecase{src: src, parallelism: batch.DefaultParallelism}
}

// Resolve expands indicator into the ordered list of indicators to fetch.
func Resolve(indicator string) ([]string, error) {
	if indicator == All {
		return AllIndicators, nil
	}
	if slices.Contains(Indicators, indicator) {
		return []string{indicator}, nil
	}
	return nil, fmt.Errorf("%w: indicator %q", apperr.ErrValidation, indicator)
}

// TopPerformers returns the movers of indicator, tagged with their source indicator.
func (u *MoversUsecase) TopPerformers(ctx context.Context, indicator string, limit int) ([]record.Record, []batch.Failure, error) {
	keys, err := Resolve(indicator)
	if err != nil {
		return nil, nil, err
	}

	out, failures := batch.Collect(ctx, keys, u.parallelism, func(ctx context.Context, key string) ([]record.Record, error) {
		items, err := u.src.TopMarketMovers(ctx, key, limit)
		if err != nil {
			return nil, err
		}
		return record.Tag(items, TypeField, key), nil
	})
	return out, failures, batch.Outcome(keys, failures)
}
