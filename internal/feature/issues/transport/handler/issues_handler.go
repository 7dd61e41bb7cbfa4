// Package handler serves the upcoming issue calendar.
package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"market_relay/internal/feature/issues/domain/entity"
	"market_relay/internal/feature/issues/transport/http/dto"
	"market_relay/internal/platform/http/request"
	"market_relay/internal/platform/http/response"
	"market_relay/internal/shared/apperr"
	"market_relay/internal/shared/batch"
)

// IssuesUsecase is consumed by IssuesHandler.
type IssuesUsecase interface {
	UpcomingIssues(ctx context.Context, kind string, limit int) ([]entity.Issue, []batch.Failure, error)
}

// IssuesHandler handles GET /get_upcoming_issues.
type IssuesHandler struct {
	uc IssuesUsecase
}

// NewIssuesHandler creates an IssuesHandler.
func NewIssuesHandler(uc IssuesUsecase) *IssuesHandler {
	return &IssuesHandler{uc: uc}
}

// GetUpcomingIssues returns the issues of one type or of every type.
//
// Example:
// GET /get_upcoming_issues?type=ipo&limit=20
func (h *IssuesHandler) GetUpcomingIssues(c *gin.Context) {
	invalid := response.ErrorBody{Error: "Invalid type parameter"}

	var q dto.UpcomingIssuesQuery
	if err := request.BindQuery(c, &q); err != nil {
		c.JSON(http.StatusBadRequest, invalid)
		return
	}

	issues, failures, err := h.uc.UpcomingIssues(c.Request.Context(), q.Type, q.LimitValue())
	response.LogPartial(c, "upcoming_issues", failures)
	switch {
	case errors.Is(err, apperr.ErrValidation):
		c.JSON(http.StatusBadRequest, invalid)
	case err != nil:
		response.LogFailure(c, "upcoming_issues", err)
		c.JSON(http.StatusInternalServerError, response.Fail("Failed to fetch upcoming issues."))
	default:
		c.JSON(http.StatusOK, dto.NewIssueResponses(issues))
	}
}
