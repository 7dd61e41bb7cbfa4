package dto

import (
	"strconv"

	"market_relay/internal/feature/depository/domain/entity"
)

// StatisticResponse is one depository statistic. id and imp are strings on the wire.
type StatisticResponse struct {
	ID        string `json:"id"`
	DataKey   string `json:"dataKey"`
	DataValue string `json:"dataValue"`
	Imp       string `json:"imp"`
}

// NewStatisticResponses maps entities to response records.
func NewStatisticResponses(stats []entity.Statistic) []StatisticResponse {
	out := make([]StatisticResponse, 0, len(stats))
	for _, s := range stats {
		out = append(out, StatisticResponse{
			ID:        strconv.Itoa(s.ID),
			DataKey:   s.Key,
			DataValue: s.Value,
			Imp:       strconv.FormatBool(s.Important),
		})
	}
	return out
}
