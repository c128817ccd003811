package handler

// APIResponse represents a generic action result for OpenAPI documentation
// @Description Tagged action result with typed data field
type APIResponse[T any] struct {
	Success bool   `json:"success" example:"true"`
	Error   string `json:"error,omitempty"`
	Data    T      `json:"data,omitempty"`
}

// ErrorResponse represents a failed action result for OpenAPI documentation
// @Description Failed action result
type ErrorResponse struct {
	Success bool   `json:"success" example:"false"`
	Error   string `json:"error" example:"invoice not found"`
}

// IDData is the data of delete and assign results
// @Description Identifier of the affected record
type IDData string

// CheckedRequest marks a record as reviewed
type CheckedRequest struct {
	Checked bool `json:"checked" example:"true"`
}
