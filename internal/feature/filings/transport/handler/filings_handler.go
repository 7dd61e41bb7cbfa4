// Package handler serves the prospectus listing.
package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"market_relay/internal/feature/filings/domain/entity"
	"market_relay/internal/feature/filings/transport/http/dto"
	"market_relay/internal/platform/http/request"
	"market_relay/internal/platform/http/response"
	"market_relay/internal/shared/batch"
)

const (
	msgInvalidPages = "Invalid pages parameter"
	msgFailed       = "Failed to fetch prospectus data."
)

// FilingsUsecase はハンドラー側で定義するユースケースインターフェースです。
type FilingsUsecase interface {
	Prospectus(ctx context.Context, pages []int) ([]entity.Filing, []batch.Failure, error)
}

// FilingsHandler handles GET /get_prospectus.
type FilingsHandler struct {
	uc FilingsUsecase
}

// NewFilingsHandler creates a FilingsHandler.
func NewFilingsHandler(uc FilingsUsecase) *FilingsHandler {
	return &FilingsHandler{uc: uc}
}

// GetProspectus returns the filings of the requested pages.
//
// Example:
// GET /get_prospectus?pages=1,2
func (h *FilingsHandler) GetProspectus(c *gin.Context) {
	var q dto.ProspectusQuery
	if err := request.BindQuery(c, &q); err != nil {
		c.JSON(http.StatusBadRequest, response.Fail(msgInvalidPages))
		return
	}
	pages, err := q.PageNumbers()
	if err != nil {
		c.JSON(http.StatusBadRequest, response.Fail(msgInvalidPages))
		return
	}

	filings, failures, err := h.uc.Prospectus(c.Request.Context(), pages)
	response.LogPartial(c, "prospectus", failures)
	if err != nil {
		response.LogFailure(c, "prospectus", err)
		c.JSON(response.Status(err), response.Fail(msgFailed))
		return
	}

	c.JSON(http.StatusOK, dto.NewFilingResponses(filings))
}
