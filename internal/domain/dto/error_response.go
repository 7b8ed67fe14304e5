package dto

import "time"

// ErrorResponse is the standard error body returned by every endpoint.
//
// Fields:
//   - Message: human readable summary of what failed.
//   - ErrorDetails: underlying error text, if any.
//   - Timestamp: UTC time the error was produced.
type ErrorResponse struct {
	Success      bool      `json:"success" example:"false"`
	Message      string    `json:"message" example:"failed to build dashboard"`
	ErrorDetails string    `json:"error,omitempty" example:"connection refused"`
	Timestamp    time.Time `json:"timestamp"`
}

// Error implements the error interface so an ErrorResponse can travel
// through c.Error and be rendered by the error middleware.
func (e ErrorResponse) Error() string {
	if e.ErrorDetails == "" {
		return e.Message
	}
	return e.Message + ": " + e.ErrorDetails
}

// NewErrorResponse builds an ErrorResponse, copying err's text when set.
func NewErrorResponse(message string, err error) ErrorResponse {
	resp := ErrorResponse{
		Message:   message,
		Timestamp: time.Now().UTC(),
	}
	if err != nil {
		resp.ErrorDetails = err.Error()
	}
	return resp
}
