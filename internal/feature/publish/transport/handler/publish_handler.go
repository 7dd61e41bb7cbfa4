// Package handler triggers dataset publication.
package handler

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"market_relay/internal/feature/publish/domain/entity"
	"market_relay/internal/feature/publish/transport/http/dto"
	"market_relay/internal/feature/publish/usecase"
	"market_relay/internal/platform/http/response"
	"market_relay/internal/shared/apperr"
)

// PublishUsecase is consumed by PublishHandler.
type PublishUsecase interface {
	Publish(ctx context.Context, dataset string) (entity.Publication, error)
}

// PublishHandler handles POST /api/v1/publish/:dataset.
type PublishHandler struct {
	uc PublishUsecase
}

// NewPublishHandler creates a PublishHandler.
func NewPublishHandler(uc PublishUsecase) *PublishHandler {
	return &PublishHandler{uc: uc}
}

// Publish refreshes one dataset snapshot.
func (h *PublishHandler) Publish(c *gin.Context) {
	dataset := c.Param("dataset")

	pub, err := h.uc.Publish(c.Request.Context(), dataset)
	switch {
	case errors.Is(err, apperr.ErrValidation):
		c.JSON(http.StatusBadRequest, response.Fail(fmt.Sprintf("Unknown dataset '%s'.", dataset)))
	case errors.Is(err, usecase.ErrSinkUnavailable):
		c.JSON(http.StatusServiceUnavailable, response.Fail("Publication sink is not configured."))
	case err != nil:
		response.LogFailure(c, "publish", err)
		c.JSON(http.StatusInternalServerError, response.Fail(fmt.Sprintf("Failed to publish %s.", dataset)))
	default:
		c.JSON(http.StatusOK, dto.NewPublishResponse(pub))
	}
}
