package models

// ErrorResponse is the single-message error body used for auth,
// not-found and authorization failures.
type ErrorResponse struct {
	Msg string `json:"msg"`
}

// FieldError is one field-level validation failure.
type FieldError struct {
	Msg   string `json:"msg"`
	Param string `json:"param,omitempty"`
}

// ValidationErrorResponse wraps field-level validation failures.
type ValidationErrorResponse struct {
	Errors []FieldError `json:"errors"`
}

// NewErrorResponse creates a single-message error response
func NewErrorResponse(msg string) ErrorResponse {
	return ErrorResponse{Msg: msg}
}

// NewValidationErrorResponse creates a validation error response from
// per-field messages.
func NewValidationErrorResponse(errors map[string]string) ValidationErrorResponse {
	out := ValidationErrorResponse{Errors: make([]FieldError, 0, len(errors))}
	for param, msg := range errors {
		out.Errors = append(out.Errors, FieldError{Msg: msg, Param: param})
	}
	return out
}

// MessageResponse acknowledges a mutation with no entity payload.
type MessageResponse struct {
	Msg string `json:"msg"`
}
