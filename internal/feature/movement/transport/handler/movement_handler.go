// Package handler serves the stock movement summary.
package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"market_relay/internal/feature/movement/domain/entity"
	"market_relay/internal/feature/movement/transport/http/dto"
	"market_relay/internal/platform/http/response"
)

// MovementUsecase is consumed by MovementHandler.
type MovementUsecase interface {
	Summary(ctx context.Context) (entity.Summary, error)
}

// MovementHandler handles GET /get_stock_movement_summary.
type MovementHandler struct {
	uc MovementUsecase
}

// NewMovementHandler creates a MovementHandler.
func NewMovementHandler(uc MovementUsecase) *MovementHandler {
	return &MovementHandler{uc: uc}
}

// GetSummary returns the five bucket counts. Its failure body is a one-element array.
func (h *MovementHandler) GetSummary(c *gin.Context) {
	s, err := h.uc.Summary(c.Request.Context())
	if err != nil {
		response.LogFailure(c, "stock_movement_summary", err)
		c.JSON(http.StatusInternalServerError, []response.Failure{response.Fail("Failed to fetch stock movement data.")})
		return
	}
	c.JSON(http.StatusOK, dto.NewBucketCounts(s))
}
