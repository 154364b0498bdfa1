package dto

// ErrorResponse is the failure envelope shared by every report endpoint.
// No partial statement is ever attached: a query failure aborts the whole
// computation and only this envelope is returned.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// NewErrorResponse builds the failure envelope.
func NewErrorResponse(message string) ErrorResponse {
	return ErrorResponse{Success: false, Error: message}
}
