// Package handler serves market status, charts, the close summary and the company list.
package handler

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"market_relay/internal/feature/market/domain/entity"
	"market_relay/internal/feature/market/transport/http/dto"
	"market_relay/internal/platform/http/request"
	"market_relay/internal/platform/http/response"
	"market_relay/internal/shared/apperr"
	"market_relay/internal/shared/record"
)

// MarketUsecase is consumed by MarketHandler.
type MarketUsecase interface {
	Status(ctx context.Context) (record.Record, error)
	IsOpen(ctx context.Context) (any, error)
	State(ctx context.Context) (entity.MarketState, error)
	IntradayChart(ctx context.Context) ([]entity.ChartPoint, error)
	IndexChart(ctx context.Context, alias string) (entity.IndexChart, error)
	CloseSummary(ctx context.Context) (entity.CloseSummary, error)
	Companies(ctx context.Context) ([]entity.Company, error)
}

// MarketHandler handles the market routes.
type MarketHandler struct {
	uc MarketUsecase
}

// NewMarketHandler creates a MarketHandler.
func NewMarketHandler(uc MarketUsecase) *MarketHandler {
	return &MarketHandler{uc: uc}
}

// GetMarketData handles POST /get_market_data.
func (h *MarketHandler) GetMarketData(c *gin.Context) {
	invalid := response.Fail(`Invalid or missing "type" parameter.`)

	var body dto.MarketDataRequest
	if err := request.BindJSON(c, &body); err != nil {
		c.JSON(http.StatusBadRequest, invalid)
		return
	}

	ctx := c.Request.Context()
	switch body.Type {
	case dto.MarketStateData:
		state, err := h.uc.State(ctx)
		if err != nil {
			h.fail(c, "market_state", err)
			return
		}
		c.JSON(http.StatusOK, []dto.MarketStateResponse{dto.NewMarketStateResponse(state)})
	case dto.MarketChartData:
		points, err := h.uc.IntradayChart(ctx)
		if err != nil {
			h.fail(c, "market_chart", err)
			return
		}
		c.JSON(http.StatusOK, dto.NewChartPointResponses(points))
	default:
		// 空のボディはバインドされずここに来る
		c.JSON(http.StatusBadRequest, invalid)
	}
}

func (h *MarketHandler) fail(c *gin.Context, op string, err error) {
	response.LogFailure(c, op, err)
	c.JSON(http.StatusInternalServerError, response.Fail("Failed to fetch market data."))
}

// GetStatus handles GET /api/v1/market/status.
func (h *MarketHandler) GetStatus(c *gin.Context) {
	status, err := h.uc.Status(c.Request.Context())
	if err != nil {
		response.LogFailure(c, "market_status", err)
		c.JSON(http.StatusInternalServerError, response.Fail("Failed to fetch market status."))
		return
	}
	c.JSON(http.StatusOK, dto.StatusResponse{Success: true, Data: status})
}

// GetChart handles GET /api/v1/market/chart. The index header wins over the query.
func (h *MarketHandler) GetChart(c *gin.Context) {
	alias := c.GetHeader("index")
	if alias == "" {
		alias = c.Query("index")
	}

	chart, err := h.uc.IndexChart(c.Request.Context(), alias)
	switch {
	case errors.Is(err, apperr.ErrValidation):
		c.JSON(http.StatusBadRequest, response.Fail(fmt.Sprintf("Invalid index name '%s'. Please check your input.", alias)))
	case err != nil:
		response.LogFailure(c, "market_chart", err)
		c.JSON(http.StatusInternalServerError, response.Fail("Failed to fetch chart data."))
	default:
		c.JSON(http.StatusOK, dto.IndexChartResponse{Success: true, Data: chart.Data, PointChange: chart.PointChange})
	}
}

// GetInsightsStatus handles GET /api/v1/market/insights/status.
func (h *MarketHandler) GetInsightsStatus(c *gin.Context) {
	open, err := h.uc.IsOpen(c.Request.Context())
	if err != nil {
		response.LogFailure(c, "market_insights", err)
		c.JSON(http.StatusInternalServerError, []response.ErrorBody{{Error: "Unable to fetch market status."}})
		return
	}
	c.JSON(http.StatusOK, []dto.OpenFlag{{IsOpen: open}})
}

// GetCloseSummary handles GET /api/v2/post/nepse/close.
func (h *MarketHandler) GetCloseSummary(c *gin.Context) {
	s, err := h.uc.CloseSummary(c.Request.Context())
	if err != nil {
		response.LogFailure(c, "nepse_close", err)
		c.JSON(http.StatusInternalServerError, []response.ErrorBody{{Error: "Failed to fetch NEPSE close summary."}})
		return
	}
	c.JSON(http.StatusOK, []dto.CloseSummaryResponse{dto.CloseSummaryResponse(s)})
}

// GetCompanies handles GET /api/get_companies.
func (h *MarketHandler) GetCompanies(c *gin.Context) {
	companies, err := h.uc.Companies(c.Request.Context())
	if err != nil {
		response.LogFailure(c, "companies", err)
		c.JSON(http.StatusInternalServerError, response.Fail("Failed to fetch companies data."))
		return
	}
	c.JSON(http.StatusOK, dto.NewCompanyResponses(companies))
}
