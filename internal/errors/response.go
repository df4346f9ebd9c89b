package errors

import (
	"github.com/cockroachdb/errors"
)

// ErrorDetail is the serializable shape of a single error.
type ErrorDetail struct {
	Message string `json:"message"`
	Hint    string `json:"hint,omitempty"`
}

// ErrorResponse is the envelope handed to host-integration adapters that want
// to surface a module error outside Go (admin notices, host logs).
type ErrorResponse struct {
	Success bool        `json:"success"`
	Error   ErrorDetail `json:"error"`
}

// NewErrorResponse flattens err into its serializable form.
func NewErrorResponse(err error) *ErrorResponse {
	if err == nil {
		return &ErrorResponse{Success: true}
	}
	return &ErrorResponse{
		Success: false,
		Error: ErrorDetail{
			Message: errors.UnwrapAll(err).Error(),
			Hint:    Hint(err),
		},
	}
}
