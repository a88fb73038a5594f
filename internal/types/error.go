package types

import "fmt"

// Error type tags carried on responses so clients can branch on failure class.
const (
	ErrTypeValidation    = "validation"
	ErrTypeGeneration    = "generation"
	ErrTypeNotFound      = "not_found"
	ErrTypeAuthorization = "authorization"
	ErrTypeInternal      = "internal"
)

type CustomError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Type    string `json:"type"`
}

func (e *CustomError) Error() string {
	return fmt.Sprintf("%d: %s [type: %s]", e.Code, e.Message, e.Type)
}

// NewValidationError reports caller input that violates a precondition.
// Always recoverable by the caller; surfaced as a 400.
func NewValidationError(message string) *CustomError {
	return &CustomError{Code: 400, Message: message, Type: ErrTypeValidation}
}

// NewGenerationError reports a failed or unparseable provider completion.
// Surfaced as a 500; the gateway never retries.
func NewGenerationError(message string) *CustomError {
	return &CustomError{Code: 500, Message: message, Type: ErrTypeGeneration}
}

// NewNotFoundError reports an id lookup that found nothing.
func NewNotFoundError(message string) *CustomError {
	return &CustomError{Code: 404, Message: message, Type: ErrTypeNotFound}
}
