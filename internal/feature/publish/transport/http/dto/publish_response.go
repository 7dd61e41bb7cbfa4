package dto

import (
	"fmt"
	"time"

	"market_relay/internal/feature/publish/domain/entity"
)

// PublishResponse is the success body of POST /api/v1/publish/:dataset.
type PublishResponse struct {
	Success     bool   `json:"success"`
	Message     string `json:"message"`
	Path        string `json:"path"`
	RefreshedAt string `json:"refreshedAt"`
}

// NewPublishResponse builds the success body.
func NewPublishResponse(p entity.Publication) PublishResponse {
	return PublishResponse{
		Success:     true,
		Message:     fmt.Sprintf("Published %s (%d records).", p.Dataset, p.Count),
		Path:        p.Path,
		RefreshedAt: p.RefreshedAt.Format(time.RFC3339),
	}
}
