package entity

import (
	"errors"
	"strings"
)

var (
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")
	ErrUnauthorized  = errors.New("unauthorized")
	ErrForbidden     = errors.New("forbidden")
	ErrTokenInvalid  = errors.New("invalid token")
	ErrSessionEnded  = errors.New("session ended")
)

// ErrInvalidCredentials covers unknown identifiers, wrong passwords and wrong
// roles alike. Callers must not be able to tell them apart.
var ErrInvalidCredentials = errors.New("invalid credentials")

const (
	InvalidCredentialsMessage = "Invalid credentials. Please check your Employee ID, password, and role."
	EmptyCredentialsMessage   = "Please enter your Employee ID and password"
	FillAllFieldsMessage      = "Please fill all fields."
)

var (
	ErrIdentityUnavailable = errors.New("identity provider unavailable")
	ErrUnknownMessageType  = errors.New("unknown message type")
)

var (
	ErrLeaveNotPending  = errors.New("leave request is not pending")
	ErrAttendanceClosed = errors.New("attendance for today is already closed")
	ErrLeaveTypeInUse   = errors.New("leave type is in use")
)

// ValidationError is a user input problem. Message is safe to show as is.
type ValidationError struct {
	Message string
	Fields  []string
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return e.Message
	}

	return e.Message + " (" + strings.Join(e.Fields, ", ") + ")"
}

func NewValidationError(message string, fields ...string) *ValidationError {
	return &ValidationError{Message: message, Fields: fields}
}

func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
