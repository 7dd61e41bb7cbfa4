package di

import (
	"context"

	"github.com/redis/go-redis/v9"

	"market_relay/internal/app/router"
	depositoryhandler "market_relay/internal/feature/depository/transport/handler"
	filingshandler "market_relay/internal/feature/filings/transport/handler"
	indiceshandler "market_relay/internal/feature/indices/transport/handler"
	issueshandler "market_relay/internal/feature/issues/transport/handler"
	markethandler "market_relay/internal/feature/market/transport/handler"
	movementhandler "market_relay/internal/feature/movement/transport/handler"
	movershandler "market_relay/internal/feature/movers/transport/handler"
	publishhandler "market_relay/internal/feature/publish/transport/handler"
	platformhandler "market_relay/internal/platform/http/handler"
)

// NewHandlers creates every handler mounted by the router.
func NewHandlers(apiKey string, u *Usecases, rdb *redis.Client) router.Handlers {
	var ping platformhandler.PingFunc
	if rdb != nil {
		ping = func(ctx context.Context) error { return rdb.Ping(ctx).Err() }
	}

	return router.Handlers{
		Health:     platformhandler.NewHealthHandler(ping),
		Home:       markethandler.NewHomeHandler(apiKey),
		Filings:    filingshandler.NewFilingsHandler(u.Filings),
		Depository: depositoryhandler.NewDepositoryHandler(u.Depository),
		Movers:     movershandler.NewMoversHandler(u.Movers),
		Indices:    indiceshandler.NewIndicesHandler(u.Indices),
		Issues:     issueshandler.NewIssuesHandler(u.Issues),
		Movement:   movementhandler.NewMovementHandler(u.Movement),
		Market:     markethandler.NewMarketHandler(u.Market),
		Publish:    publishhandler.NewPublishHandler(u.Publish),
	}
}
