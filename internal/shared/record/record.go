// Package record handles the loosely typed JSON objects passed through from upstream.
package record

import "maps"

// Record is one upstream JSON object. Numbers are json.Number.
type Record = map[string]any

// Tag returns copies of items with field set to value. The inputs are not modified.
func Tag(items []Record, field, value string) []Record {
	out := make([]Record, 0, len(items))
	for _, item := range items {
		rec := maps.Clone(item)
		if rec == nil {
			rec = Record{}
		}
		rec[field] = value
		out = append(out, rec)
	}
	return out
}
