// Package router mounts every feature handler on one gin engine.
package router

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	depositoryhandler "market_relay/internal/feature/depository/transport/handler"
	filingshandler "market_relay/internal/feature/filings/transport/handler"
	indiceshandler "market_relay/internal/feature/indices/transport/handler"
	issueshandler "market_relay/internal/feature/issues/transport/handler"
	markethandler "market_relay/internal/feature/market/transport/handler"
	movementhandler "market_relay/internal/feature/movement/transport/handler"
	movershandler "market_relay/internal/feature/movers/transport/handler"
	publishhandler "market_relay/internal/feature/publish/transport/handler"
	"market_relay/internal/platform/apikey"
	platformhandler "market_relay/internal/platform/http/handler"
	"market_relay/internal/platform/http/middleware"
	"market_relay/internal/platform/http/response"
	"market_relay/internal/platform/metrics"
	"market_relay/internal/shared/ratelimiter"
)

// Handlers groups the handlers mounted by NewRouter.
type Handlers struct {
	Health     *platformhandler.HealthHandler
	Home       *markethandler.HomeHandler
	Filings    *filingshandler.FilingsHandler
	Depository *depositoryhandler.DepositoryHandler
	Movers     *movershandler.MoversHandler
	Indices    *indiceshandler.IndicesHandler
	Issues     *issueshandler.IssuesHandler
	Movement   *movementhandler.MovementHandler
	Market     *markethandler.MarketHandler
	Publish    *publishhandler.PublishHandler
}

// Options carries the cross-cutting pieces of the engine.
type Options struct {
	APIKey     string
	Limiter    ratelimiter.Store
	RetryAfter int // seconds, sent with 429
	Recorder   *metrics.Recorder
	Metrics    http.Handler // served at /metrics when set
}

// NewRouter builds the engine. Rate limiting always runs before the key check.
func NewRouter(h Handlers, opts Options) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestID(), middleware.Metrics(opts.Recorder))

	limit := ratelimiter.Middleware(opts.Limiter, opts.RetryAfter)

	// 認証不要
	r.GET("/healthz", h.Health.Health)
	r.HEAD("/healthz", h.Health.Health)
	r.OPTIONS("/healthz", h.Health.Health)
	if opts.Metrics != nil {
		r.GET("/metrics", gin.WrapH(opts.Metrics))
	}

	r.GET("/", limit, h.Home.Home)
	// HEADリクエストを大量に発行するため制限をかける
	r.GET("/get_prospectus", limit, h.Filings.GetProspectus)
	r.GET("/get_cdsc_data", h.Depository.GetStatistics)
	r.GET("/get_top_performers", h.Movers.GetTopPerformers)
	r.GET("/get_market_indices", h.Indices.GetMarketIndices)
	r.GET("/get_upcoming_issues", h.Issues.GetUpcomingIssues)
	r.GET("/get_stock_movement_summary", h.Movement.GetSummary)
	r.POST("/get_market_data", h.Market.GetMarketData)

	// /api 配下: CORS → レート制限 → APIキー
	api := r.Group("/api")
	api.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowHeaders:    []string{"Origin", "Content-Type", "Accept", apikey.DefaultHeader, "view-mode", "index"},
	}), limit)
	{
		successKey := apikey.Required(apikey.Options{
			Secret:       opts.APIKey,
			Unauthorized: response.Fail("Unauthorized. Invalid API Key."),
		})
		listKey := apikey.Required(apikey.Options{
			Secret:       opts.APIKey,
			Unauthorized: []response.ErrorBody{{Error: "Unauthorized. Invalid API Key."}},
		})
		viewKey := apikey.Required(apikey.Options{
			Secret:       opts.APIKey,
			Header:       "view-mode",
			Query:        "view-mode",
			Unauthorized: []response.ErrorBody{{Error: "Unauthorized. Invalid Key."}},
		})

		api.GET("/v1/market/status", successKey, h.Market.GetStatus)
		api.GET("/v1/market/chart", successKey, h.Market.GetChart)
		api.GET("/v1/market/insights/status", listKey, h.Market.GetInsightsStatus)
		api.GET("/v2/post/nepse/close", viewKey, h.Market.GetCloseSummary)
		api.GET("/get_companies", h.Market.GetCompanies)
		api.POST("/v1/publish/:dataset", successKey, h.Publish.Publish)
	}

	return r
}
