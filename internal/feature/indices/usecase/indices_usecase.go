// Package usecase fetches live index and sub-index quotes.
package usecase

import (
	"context"
	"fmt"

	"market_relay/internal/shared/apperr"
	"market_relay/internal/shared/batch"
	"market_relay/internal/shared/record"
)

// Category keys.
const (
	Indices    = "indices"
	SubIndices = "sub_indices"
	AllIndices = "all_indices"

	// TypeField names the category a record was fetched for.
	TypeField = "type"
)

// endpoints maps each category to its upstream endpoint.
var endpoints = map[string]string{
	Indices:    "GetIndexLive",
	SubIndices: "GetSubIndexLive",
}

// Categories expands a requested type into the ordered categories to fetch.
func Categories(kind string) ([]string, error) {
	switch kind {
	case Indices, SubIndices:
		return []string{kind}, nil
	case AllIndices:
		return []string{Indices, SubIndices}, nil
	default:
		return nil, fmt.Errorf("%w: type %q", apperr.ErrValidation, kind)
	}
}

// IndexSource returns the raw quotes of one upstream endpoint.
type IndexSource interface {
	LiveIndices(ctx context.Context, endpoint string) ([]record.Record, error)
}

// IndicesUsecase builds the index lists.
type IndicesUsecase struct {
	src         IndexSource
	parallelism int
}

// NewIndicesUsecase creates an IndicesUsecase.
func NewIndicesUsecase(src IndexSource) *IndicesUsecase {
	return &IndicesUsecase{src: src, parallelism: batch.DefaultParallelism}
}

// MarketIndices returns the quotes of kind, each tagged with its category.
func (u *IndicesUsecase) MarketIndices(ctx context.Context, kind string) ([]record.Record, []batch.Failure, error) {
	keys, err := Categories(kind)
	if err != nil {
		return nil, nil, err
	}

	out, failures := batch.Collect(ctx, keys, u.parallelism, func(ctx context.Context, key string) ([]record.Record, error) {
		items, err := u.src.LiveIndices(ctx, endpoints[key])
		if err != nil {
			return nil, err
		}
		return record.Tag(items, TypeField, key), nil
	})
	return out, failures, batch.Outcome(keys, failures)
}
