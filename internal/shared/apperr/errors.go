// Package apperr defines the error kinds shared by every relay endpoint.
package apperr

import "errors"

// Error kinds. Adapters and usecases wrap these with fmt.Errorf("...: %w", kind)
// so that handlers can pick a status code with errors.Is.
var (
	// ErrUpstreamFetch indicates a network error or a non-2xx answer from an upstream source.
	ErrUpstreamFetch = errors.New("upstream fetch failed")

	// ErrParse indicates that the expected HTML or JSON structure was absent.
	ErrParse = errors.New("upstream payload could not be parsed")

	// ErrValidation indicates a bad or unsupported request parameter.
	ErrValidation = errors.New("invalid request parameter")

	// ErrAuth indicates a missing or mismatched API key.
	ErrAuth = errors.New("unauthorized")

	// ErrRateLimited indicates that the per-client request window is exhausted.
	ErrRateLimited = errors.New("rate limit exceeded")

	// ErrPublish indicates that the publication sink rejected a write.
	ErrPublish = errors.New("publication failed")

	// ErrNoData indicates that every item of a batch failed.
	ErrNoData = errors.New("no upstream source succeeded")
)
