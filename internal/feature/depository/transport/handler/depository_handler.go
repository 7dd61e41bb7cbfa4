// Package handler serves the depository statistics.
package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"market_relay/internal/feature/depository/domain/entity"
	"market_relay/internal/feature/depository/transport/http/dto"
	"market_relay/internal/platform/http/response"
)

// DepositoryUsecase is consumed by DepositoryHandler.
type DepositoryUsecase interface {
	Statistics(ctx context.Context) ([]entity.Statistic, error)
}

// DepositoryHandler handles GET /get_cdsc_data.
type DepositoryHandler struct {
	uc DepositoryUsecase
}

// NewDepositoryHandler creates a DepositoryHandler.
func NewDepositoryHandler(uc DepositoryUsecase) *DepositoryHandler {
	return &DepositoryHandler{uc: uc}
}

// GetStatistics returns the statistics with the important ones first.
func (h *DepositoryHandler) GetStatistics(c *gin.Context) {
	stats, err := h.uc.Statistics(c.Request.Context())
	if err != nil {
		response.LogFailure(c, "cdsc_data", err)
		c.JSON(http.StatusInternalServerError, response.Fail("Failed to fetch CDSC data."))
		return
	}
	c.JSON(http.StatusOK, dto.NewStatisticResponses(stats))
}
