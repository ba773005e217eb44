package response

import (
	"errors"
)

type Error struct {
	Code int
	Err  error
}

func (e *Error) Error() string {
	return e.Err.Error()
}

func (e *Error) Is(target error) bool {
	var t *Error
	ok := errors.As(target, &t)
	if !ok {
		return false
	}
	return e.Code == t.Code && e.Err.Error() == t.Err.Error()
}

func NewError(code int, err string) error {
	return &Error{code, errors.New(err)}
}

// ValidationError is a business-rule rejection carrying every violation
// collected by the entity rule set. It is an expected outcome, not a fault.
type ValidationError struct {
	Message    string
	Violations []string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func NewValidationError(message string, violations []string) error {
	return &ValidationError{Message: message, Violations: violations}
}

// Envelope is the uniform body of every API response.
type Envelope struct {
	Message string      `json:"message"`
	Data    interface{} `json:"data"`
}

func NewEnvelope(message string, data interface{}) Envelope {
	return Envelope{Message: message, Data: data}
}
