// Package handler serves the live index quotes.
package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"market_relay/internal/feature/indices/transport/http/dto"
	"market_relay/internal/platform/http/request"
	"market_relay/internal/platform/http/response"
	"market_relay/internal/shared/apperr"
	"market_relay/internal/shared/batch"
	"market_relay/internal/shared/record"
)

// IndicesUsecase is consumed by IndicesHandler.
type IndicesUsecase interface {
	MarketIndices(ctx context.Context, kind string) ([]record.Record, []batch.Failure, error)
}

// IndicesHandler handles GET /get_market_indices.
type IndicesHandler struct {
	uc IndicesUsecase
}

// NewIndicesHandler creates an IndicesHandler.
func NewIndicesHandler(uc IndicesUsecase) *IndicesHandler {
	return &IndicesHandler{uc: uc}
}

// GetMarketIndices returns index, sub-index or both quote lists.
func (h *IndicesHandler) GetMarketIndices(c *gin.Context) {
	invalid := response.ErrorBody{Error: "Invalid type parameter"}

	var q dto.MarketIndicesQuery
	if err := request.BindQuery(c, &q); err != nil {
		c.JSON(http.StatusBadRequest, invalid)
		return
	}

	records, failures, err := h.uc.MarketIndices(c.Request.Context(), q.Type)
	response.LogPartial(c, "market_indices", failures)
	switch {
	case errors.Is(err, apperr.ErrValidation):
		c.JSON(http.StatusBadRequest, invalid)
	case err != nil:
		response.LogFailure(c, "market_indices", err)
		c.JSON(http.StatusInternalServerError, response.Fail("Failed to fetch market indices."))
	default:
		c.JSON(http.StatusOK, records)
	}
}
