// Package apikey guards routes with a shared-secret key.
package apikey

import (
	"crypto/subtle"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Default key locations.
const (
	DefaultHeader = "x-api-key"
	DefaultQuery  = "api_key"
)

// Options configures one gate. Each route family answers 401 with its own body shape.
type Options struct {
	Secret       string
	Header       string // defaults to DefaultHeader
	Query        string // defaults to DefaultQuery
	Unauthorized any    // JSON body of the 401 response
}

// Required returns a middleware that accepts the request when either the header
// or the query parameter equals the configured secret. An empty secret rejects
// every request. The upstream is never contacted for a rejected request because
// the chain is aborted here.
func Required(opts Options) gin.HandlerFunc {
	if opts.Header == "" {
		opts.Header = DefaultHeader
	}
	if opts.Query == "" {
		opts.Query = DefaultQuery
	}
	if opts.Unauthorized == nil {
		opts.Unauthorized = gin.H{"success": false, "message": "Unauthorized. Invalid API Key."}
	}

	return func(c *gin.Context) {
		if !Valid(opts.Secret, c.GetHeader(opts.Header)) && !Valid(opts.Secret, c.Query(opts.Query)) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, opts.Unauthorized)
			return
		}
		c.Next()
	}
}

// Valid compares a presented key with the secret in constant time.
func Valid(secret, presented string) bool {
	if secret == "" || presented == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(secret), []byte(presented)) == 1
}
