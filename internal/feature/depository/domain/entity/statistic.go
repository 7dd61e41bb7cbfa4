// Package entity defines the depository statistics records.
package entity

// Pair is one value/label pair of the statistics block, untrimmed.
type Pair struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// Statistic is one normalized pair.
type Statistic struct {
	ID        int
	Key       string
	Value     string
	Important bool
}
