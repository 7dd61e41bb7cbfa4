// Package entity defines the published dataset records.
package entity

import "time"

// Dataset names a published endpoint snapshot.
type Dataset string

// Publishable datasets.
const (
	Prospectus           Dataset = "prospectus"
	CDSC                 Dataset = "cdsc"
	TopPerformers        Dataset = "top_performers"
	MarketIndices        Dataset = "market_indices"
	UpcomingIssues       Dataset = "upcoming_issues"
	StockMovementSummary Dataset = "stock_movement_summary"
)

// Datasets lists every publishable dataset.
var Datasets = []Dataset{Prospectus, CDSC, TopPerformers, MarketIndices, UpcomingIssues, StockMovementSummary}

// Publication is the outcome of one successful publish.
type Publication struct {
	Dataset     Dataset
	Path        string
	Count       int
	RefreshedAt time.Time
}

// Meta is the companion document written next to each dataset.
type Meta struct {
	Dataset     Dataset `json:"dataset"`
	Count       int     `json:"count"`
	RefreshedAt string  `json:"refreshedAt"`
}
