// Package response holds the JSON envelopes shared by every endpoint family.
package response

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"market_relay/internal/platform/http/middleware"
	"market_relay/internal/shared/apperr"
	"market_relay/internal/shared/batch"
)

// Failure is the {"success":false,"message":...} body.
type Failure struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// Fail builds a Failure with message.
func Fail(message string) Failure {
	return Failure{Success: false, Message: message}
}

// ErrorBody is the {"error":...} body used by the index and issue families.
type ErrorBody struct {
	Error string `json:"error"`
}

// Status maps an error kind to its HTTP status. Anything unknown is a 500.
func Status(err error) int {
	switch {
	case errors.Is(err, apperr.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, apperr.ErrAuth):
		return http.StatusUnauthorized
	case errors.Is(err, apperr.ErrRateLimited):
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}

// LogFailure logs a whole-request failure with the request id.
// The error text stays in the log and never reaches the client.
func LogFailure(c *gin.Context, op string, err error) {
	slog.ErrorContext(c.Request.Context(), "request failed",
		"op", op,
		"request_id", middleware.RequestIDFrom(c.Request.Context()),
		"path", c.Request.URL.Path,
		"error", err,
	)
}

// LogPartial logs the per-item failures of a batch that still produced a response.
func LogPartial(c *gin.Context, op string, failures []batch.Failure) {
	for _, f := range failures {
		slog.WarnContext(c.Request.Context(), "batch item failed",
			"op", op,
			"request_id", middleware.RequestIDFrom(c.Request.Context()),
			"key", f.Key,
			"error", f.Err,
		)
	}
}
