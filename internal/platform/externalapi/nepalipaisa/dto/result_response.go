package dto

// ListResponse is the envelope of the list endpoints.
// Result is nil when the key is absent.
type ListResponse struct {
	Result *[]map[string]any `json:"result"`
}

// ObjectResponse is the envelope of GetNepseLive.
type ObjectResponse struct {
	Result map[string]any `json:"result"`
}
