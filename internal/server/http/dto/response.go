package dto

// ErrorResponse is the uniform failure envelope. Messages are opaque;
// internal error detail never leaks to the caller.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// NewError builds a failure envelope.
func NewError(message string) ErrorResponse {
	return ErrorResponse{Success: false, Message: message}
}

// HealthResponse reports data-store connectivity.
type HealthResponse struct {
	Success bool   `json:"success"`
	Status  string `json:"status"`
}
