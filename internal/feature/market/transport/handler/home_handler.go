package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"market_relay/internal/platform/apikey"
)

// HomeHandler handles GET /.
type HomeHandler struct {
	secret string
}

// NewHomeHandler creates a HomeHandler checking the api_key query parameter.
func NewHomeHandler(secret string) *HomeHandler {
	return &HomeHandler{secret: secret}
}

// Home greets callers that present the key.
func (h *HomeHandler) Home(c *gin.Context) {
	if !apikey.Valid(h.secret, c.Query(apikey.DefaultQuery)) {
		c.String(http.StatusUnauthorized, http.StatusText(http.StatusUnauthorized))
		return
	}
	c.String(http.StatusOK, "Thanks for visiting! Your IP has been recorded.")
}
