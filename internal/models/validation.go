package models

// ValidationError is the only domain error kind: a pre-save rule failed.
// Save aborts, the form keeps its in-progress values and the message is
// surfaced as a destructive notification.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func NewValidationError(message string) *ValidationError {
	return &ValidationError{Message: message}
}
