package di

import (
	"net/http"

	"github.com/redis/go-redis/v9"

	depositoryadapters "market_relay/internal/feature/depository/adapters"
	depositoryuc "market_relay/internal/feature/depository/usecase"
	filingsuc "market_relay/internal/feature/filings/usecase"
	indicesuc "market_relay/internal/feature/indices/usecase"
	issuesuc "market_relay/internal/feature/issues/usecase"
	marketadapters "market_relay/internal/feature/market/adapters"
	marketuc "market_relay/internal/feature/market/usecase"
	movementuc "market_relay/internal/feature/movement/usecase"
	moversuc "market_relay/internal/feature/movers/usecase"
	publishuc "market_relay/internal/feature/publish/usecase"
	"market_relay/internal/platform/cache"
	"market_relay/internal/platform/config"
	"market_relay/internal/platform/contentstore"
	"market_relay/internal/platform/externalapi/cdsc"
	"market_relay/internal/platform/externalapi/chukul"
	"market_relay/internal/platform/externalapi/nepalipaisa"
	"market_relay/internal/platform/externalapi/sebon"
	"market_relay/internal/platform/externalapi/sharesansar"
)

// Usecases holds one usecase per feature.
type Usecases struct {
	Filings    *filingsuc.FilingsUsecase
	Depository *depositoryuc.DepositoryUsecase
	Movers     *moversuc.MoversUsecase
	Indices    *indicesuc.IndicesUsecase
	Issues     *issuesuc.IssuesUsecase
	Movement   *movementuc.MovementUsecase
	Market     *marketuc.MarketUsecase
	Publish    *publishuc.PublishUsecase
}

// NewUsecases wires the upstream clients into the feature usecases.
// rdb may be nil, in which case nothing is cached.
func NewUsecases(cfg config.Config, client *http.Client, rdb *redis.Client) *Usecases {
	up := cfg.Upstream
	paisa := nepalipaisa.NewClient(up.NepalipaisaBaseURL, client)
	chu := chukul.NewClient(up.ChukulBaseURL, client)

	u := &Usecases{
		Filings: filingsuc.NewFilingsUsecase(sebon.NewClient(up.SebonBaseURL, client)),
		Depository: depositoryuc.NewDepositoryUsecase(
			depositoryadapters.NewCachedStatistics(cdsc.NewClient(up.CDSCURL, client), rdb, cache.Fixed(cfg.Cache.TTL)),
		),
		Movers:   moversuc.NewMoversUsecase(paisa),
		Indices:  indicesuc.NewIndicesUsecase(paisa),
		Issues:   issuesuc.NewIssuesUsecase(sharesansar.NewClient(up.SharesansarBaseURL, client)),
		Movement: movementuc.NewMovementUsecase(chu),
		Market:   marketuc.NewMarketUsecase(marketadapters.NewCachedSymbols(chu, rdb), paisa),
	}

	// nilの*Storeをインターフェースに入れないよう明示的に分岐する
	var sink publishuc.Sink
	if cfg.GitHub.Enabled() {
		sink = contentstore.New(cfg.GitHub, &http.Client{Timeout: cfg.HTTP.Timeout})
	}
	u.Publish = publishuc.NewPublishUsecase(sink, NewProducers(u))
	return u
}
