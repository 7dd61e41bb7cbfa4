// Package usecase normalizes the depository statistics block.
package usecase

import (
	"context"
	"sort"
	"strings"

	"market_relay/internal/feature/depository/domain/entity"
)

// importantPositions are the pair indices flagged as headline figures.
var importantPositions = map[int]bool{8: true, 10: true, 11: true, 12: true, 13: true}

// StatisticsSource returns the raw pairs in page order.
type StatisticsSource interface {
	Statistics(ctx context.Context) ([]entity.Pair, error)
}

// DepositoryUsecase builds the statistics list.
type DepositoryUsecase struct {
	src StatisticsSource
}

// NewDepositoryUsecase creates a DepositoryUsecase.
func NewDepositoryUsecase(src StatisticsSource) *DepositoryUsecase {
	return &DepositoryUsecase{src: src}
}

// Statistics returns the normalized pairs with the important ones first.
func (u *DepositoryUsecase) Statistics(ctx context.Context) ([]entity.Statistic, error) {
	pairs, err := u.src.Statistics(ctx)
	if err != nil {
		return nil, err
	}
	return SortImportantFirst(Normalize(pairs)), nil
}

// Normalize assigns sequential ids and the important flag.
func Normalize(pairs []entity.Pair) []entity.Statistic {
	out := make([]entity.Statistic, len(pairs))
	for i, p := range pairs {
		out[i] = entity.Statistic{
			ID:        i,
			Key:       strings.TrimSpace(p.Label),
			Value:     strings.TrimSpace(p.Value),
			Important: importantPositions[i],
		}
	}
	return out
}

// SortImportantFirst moves important statistics to the front, keeping relative order.
// The input is not modified.
func SortImportantFirst(stats []entity.Statistic) []entity.Statistic {
	out := make([]entity.Statistic, len(stats))
	copy(out, stats)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Important && !out[j].Important
	})
	return out
}
