package request

// UpdateFieldRequest is the request body for editing a single form field
type UpdateFieldRequest struct {
	Field string `json:"field"`
	Value string `json:"value"`
}
