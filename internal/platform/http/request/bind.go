// Package request binds query strings and bodies onto DTOs.
package request

import (
	"fmt"

	"github.com/creasty/defaults"
	"github.com/gin-gonic/gin"

	"market_relay/internal/shared/apperr"
)

// BindQuery fills dst from its `default` tags, then from the query string.
// Binding and `binding` tag violations are reported as apperr.ErrValidation.
func BindQuery(c *gin.Context, dst any) error {
	if err := defaults.Set(dst); err != nil {
		return fmt.Errorf("query defaults: %w", err)
	}
	if err := c.ShouldBindQuery(dst); err != nil {
		return fmt.Errorf("%w: %v", apperr.ErrValidation, err)
	}
	return nil
}

// BindJSON is BindQuery for a JSON body. An empty body leaves the defaults in place.
func BindJSON(c *gin.Context, dst any) error {
	if err := defaults.Set(dst); err != nil {
		return fmt.Errorf("body defaults: %w", err)
	}
	if c.Request.ContentLength == 0 {
		return nil
	}
	if err := c.ShouldBindJSON(dst); err != nil {
		return fmt.Errorf("%w: %v", apperr.ErrValidation, err)
	}
	return nil
}
