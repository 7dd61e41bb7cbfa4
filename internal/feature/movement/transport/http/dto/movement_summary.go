package dto

import "market_relay/internal/feature/movement/domain/entity"

// BucketCount is one entry of the movement summary.
type BucketCount struct {
	ID       int    `json:"id"`
	Label    string `json:"label"`
	Category string `json:"category"`
	Count    int    `json:"count"`
}

// NewBucketCounts lists the summary in bucket order.
func NewBucketCounts(s entity.Summary) []BucketCount {
	out := make([]BucketCount, 0, len(entity.Buckets))
	for i, b := range entity.Buckets {
		out = append(out, BucketCount{ID: i, Label: b.Label(), Category: b.Category(), Count: s[b]})
	}
	return out
}
