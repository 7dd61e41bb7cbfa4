// Package usecase classifies daily stock performance into movement buckets.
package usecase

import (
	"context"

	"market_relay/internal/feature/movement/domain/entity"
)

// Circuit thresholds in percent.
const (
	upperCircuit = 9.9
	lowerCircuit = -9.9
	lowerBound   = -10.0
)

// PerformanceSource returns the day's performance of every stock.
type PerformanceSource interface {
	Performance(ctx context.Context) ([]entity.Performance, error)
}

// MovementUsecase builds the movement summary.
type MovementUsecase struct {
	src PerformanceSource
}

// NewMovementUsecase creates a MovementUsecase.
func NewMovementUsecase(src PerformanceSource) *MovementUsecase {
	return &MovementUsecase{src: src}
}

// Summary counts the day's stocks per bucket.
func (u *MovementUsecase) Summary(ctx context.Context) (entity.Summary, error) {
	items, err := u.src.Performance(ctx)
	if err != nil {
		return nil, err
	}
	return Summarize(items), nil
}

// Summarize counts items per bucket. Every bucket is present in the result.
func Summarize(items []entity.Performance) entity.Summary {
	s := make(entity.Summary, len(entity.Buckets))
	for _, b := range entity.Buckets {
		s[b] = 0
	}
	for _, it := range items {
		s[Classify(it.PercentageChange)]++
	}
	return s
}

// Classify buckets a percentage change. The circuit bands are checked before
// the sign, so 9.95 is a positive circuit and -9.95 a negative one.
// The negative band is open at -10: exactly -10 is Declined.
func Classify(pc *float64) entity.Bucket {
	switch {
	case pc == nil:
		return entity.Unchanged
	case *pc > upperCircuit:
		return entity.PositiveCircuit
	case *pc > lowerBound && *pc <= lowerCircuit:
		return entity.NegativeCircuit
	case *pc > 0:
		return entity.Advanced
	case *pc < 0:
		return entity.Declined
	default:
		return entity.Unchanged
	}
}
