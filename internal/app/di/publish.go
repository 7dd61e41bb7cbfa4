package di

import (
	"context"
	"log/slog"

	"github.com/creasty/defaults"

	depositorydto "market_relay/internal/feature/depository/transport/http/dto"
	filingsdto "market_relay/internal/feature/filings/transport/http/dto"
	indicesdto "market_relay/internal/feature/indices/transport/http/dto"
	issuesdto "market_relay/internal/feature/issues/transport/http/dto"
	movementdto "market_relay/internal/feature/movement/transport/http/dto"
	moversdto "market_relay/internal/feature/movers/transport/http/dto"
	"market_relay/internal/feature/publish/domain/entity"
	publishuc "market_relay/internal/feature/publish/usecase"
	"market_relay/internal/shared/batch"
)

// NewProducers maps every publishable dataset to its pipeline, run with the
// same defaults as the matching GET endpoint and rendered with the same DTOs.
func NewProducers(u *Usecases) map[entity.Dataset]publishuc.Producer {
	return map[entity.Dataset]publishuc.Producer{
		entity.Prospectus: func(ctx context.Context) (any, int, error) {
			var q filingsdto.ProspectusQuery
			if err := defaults.Set(&q); err != nil {
				return nil, 0, err
			}
			pages, err := q.PageNumbers()
			if err != nil {
				return nil, 0, err
			}
			filings, failures, err := u.Filings.Prospectus(ctx, pages)
			logPartial(ctx, entity.Prospectus, failures)
			if err != nil {
				return nil, 0, err
			}
			return filingsdto.NewFilingResponses(filings), len(filings), nil
		},
		entity.CDSC: func(ctx context.Context) (any, int, error) {
			stats, err := u.Depository.Statistics(ctx)
			if err != nil {
				return nil, 0, err
			}
			return depositorydto.NewStatisticResponses(stats), len(stats), nil
		},
		entity.TopPerformers: func(ctx context.Context) (any, int, error) {
			var q moversdto.TopPerformersQuery
			if err := defaults.Set(&q); err != nil {
				return nil, 0, err
			}
			records, failures, err := u.Movers.TopPerformers(ctx, q.Indicator, q.LimitValue())
			logPartial(ctx, entity.TopPerformers, failures)
			if err != nil {
				return nil, 0, err
			}
			return records, len(records), nil
		},
		entity.MarketIndices: func(ctx context.Context) (any, int, error) {
			var q indicesdto.MarketIndicesQuery
			if err := defaults.Set(&q); err != nil {
				return nil, 0, err
			}
			records, failures, err := u.Indices.MarketIndices(ctx, q.Type)
			logPartial(ctx, entity.MarketIndices, failures)
			if err != nil {
				return nil, 0, err
			}
			return records, len(records), nil
		},
		entity.UpcomingIssues: func(ctx context.Context) (any, int, error) {
			var q issuesdto.UpcomingIssuesQuery
			if err := defaults.Set(&q); err != nil {
				return nil, 0, err
			}
			issues, failures, err := u.Issues.UpcomingIssues(ctx, q.Type, q.LimitValue())
			logPartial(ctx, entity.UpcomingIssues, failures)
			if err != nil {
				return nil, 0, err
			}
			return issuesdto.NewIssueResponses(issues), len(issues), nil
		},
		entity.StockMovementSummary: func(ctx context.Context) (any, int, error) {
			s, err := u.Movement.Summary(ctx)
			if err != nil {
				return nil, 0, err
			}
			counts := movementdto.NewBucketCounts(s)
			return counts, len(counts), nil
		},
	}
}

func logPartial(ctx context.Context, ds entity.Dataset, failures []batch.Failure) {
	for _, f := range failures {
		slog.WarnContext(ctx, "publish item failed", "dataset", ds, "key", f.Key, "error", f.Err)
	}
}
