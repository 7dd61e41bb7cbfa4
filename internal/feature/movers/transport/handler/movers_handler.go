// Package handler serves the market mover lists.
package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"market_relay/internal/feature/movers/transport/http/dto"
	"market_relay/internal/platform/http/request"
	"market_relay/internal/platform/http/response"
	"market_relay/internal/shared/apperr"
	"market_relay/internal/shared/batch"
	"market_relay/internal/shared/record"
)

const (
	msgInvalidIndicator = "Invalid indicator specified"
	msgFailed           = "Failed to retrieve top performers data."
)

// MoversUsecase is consumed by MoversHandler.
type MoversUsecase interface {
	TopPerformers(ctx context.Context, indicator string, limit int) ([]record.Record, []batch.Failure, error)
}

// MoversHandler handles GET /get_top_performers.
type MoversHandler struct {
	uc MoversUsecase
}

// NewMoversHandler creates a MoversHandler.
func NewMoversHandler(uc MoversUsecase) *MoversHandler {
	return &MoversHandler{uc: uc}
}

// GetTopPerformers returns the movers of one indicator or of the "all" table.
//
// Example:
// GET /get_top_performers?limit=100&indicator=gainers
func (h *MoversHandler) GetTopPerformers(c *gin.Context) {
	var q dto.TopPerformersQuery
	if err := request.BindQuery(c, &q); err != nil {
		c.JSON(http.StatusBadRequest, response.Fail(msgInvalidIndicator))
		return
	}

	records, failures, err := h.uc.TopPerformers(c.Request.Context(), q.Indicator, q.LimitValue())
	response.LogPartial(c, "top_performers", failures)
	if errors.Is(err, apperr.ErrValidation) {
		c.JSON(http.StatusBadRequest, response.Fail(msgInvalidIndicator))
		return
	}
	if err != nil {
		response.LogFailure(c, "top_performers", err)
		c.JSON(http.StatusInternalServerError, response.Fail(msgFailed))
		return
	}

	c.JSON(http.StatusOK, records)
}
