package application

// ValidationError marks request-shape problems the caller can fix by
// changing the request.
type ValidationError struct {
	Message string
}

// NewValidationError creates a ValidationError with the given message.
func NewValidationError(message string) *ValidationError {
	return &ValidationError{Message: message}
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return e.Message
}

// NotFoundError marks lookups of resources that do not exist.
type NotFoundError struct {
	Message string
}

// NewNotFoundError creates a NotFoundError with the given message.
func NewNotFoundError(message string) *NotFoundError {
	return &NotFoundError{Message: message}
}

// Error implements the error interface.
func (e *NotFoundError) Error() string {
	return e.Message
}
