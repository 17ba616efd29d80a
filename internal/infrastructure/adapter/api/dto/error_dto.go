package dto

// ErrorResponse represents a standardized error response for the API
type ErrorResponse struct {
	OK      bool   `json:"ok"`
	Error   string `json:"error"`
	Message string `json:"message"`
}
