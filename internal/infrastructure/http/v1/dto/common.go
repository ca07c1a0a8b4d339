// Package dto provides Data Transfer Objects for API requests/responses.
package dto

// ListResponse wraps list results.
type ListResponse struct {
	Items      any `json:"items"`
	TotalItems int `json:"totalItems"`
}

// NewListResponse creates a list response.
func NewListResponse(items any, total int) ListResponse {
	return ListResponse{Items: items, TotalItems: total}
}

// SuccessResponse for operations without data.
type SuccessResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

// ErrorResponse for error details.
type ErrorResponse struct {
	Code    string         `json:"code"`
	Message string         `json:"message"`
	Details map[string]any `json:"details,omitempty"`
}
