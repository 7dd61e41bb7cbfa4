// Package entity defines the stock movement buckets.
package entity

// Bucket classifies one day's price change.
type Bucket int

// Buckets in response order.
const (
	Advanced Bucket = iota
	Declined
	Unchanged
	PositiveCircuit
	NegativeCircuit
)

// Buckets lists every bucket in response order.
var Buckets = []Bucket{Advanced, Declined, Unchanged, PositiveCircuit, NegativeCircuit}

// Label is the display name of b.
func (b Bucket) Label() string {
	switch b {
	case Advanced:
		return "Advanced"
	case Declined:
		return "Declined"
	case Unchanged:
		return "Unchanged"
	case PositiveCircuit:
		return "+ve Circuit"
	case NegativeCircuit:
		return "-ve Circuit"
	}
	return ""
}

// Category is the machine name of b.
func (b Bucket) Category() string {
	switch b {
	case Advanced:
		return "advanced"
	case Declined:
		return "declined"
	case Unchanged:
		return "unchanged"
	case PositiveCircuit:
		return "positiveCircuit"
	case NegativeCircuit:
		return "negativeCircuit"
	}
	return ""
}

// Performance is one stock's change for the day. PercentageChange is nil when absent.
type Performance struct {
	PercentageChange *float64 `json:"percentage_change"`
}

// Summary counts the stocks of each bucket.
type Summary map[Bucket]int
