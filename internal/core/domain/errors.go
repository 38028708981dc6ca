package domain

import "errors"

var (
	ErrPollNotFound  = errors.New("poll not found")
	ErrInvalidOption = errors.New("option does not belong to this poll")
	ErrAlreadyVoted  = errors.New("you have already voted in this poll")
)

// Messages below are shown to users as-is.
var (
	ErrTitleRequired    = &ValidationError{Message: "Title is required"}
	ErrTooFewOptions    = &ValidationError{Message: "At least two options are required"}
	ErrMissingPollID    = &ValidationError{Message: "Missing poll id"}
	ErrInvalidPollID    = &ValidationError{Message: "Invalid poll id"}
	ErrInvalidVote      = &ValidationError{Message: "Invalid poll or option"}
	ErrNotAuthenticated = &AuthenticationError{Message: "Not authenticated"}
	ErrPermissionDenied = &PermissionError{Message: "You do not have permission to modify this poll"}
)

type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

type AuthenticationError struct {
	Message string
}

func (e *AuthenticationError) Error() string { return e.Message }

type PermissionError struct {
	Message string
}

func (e *PermissionError) Error() string { return e.Message }

// StorageError hides a datastore failure behind a generic message. The cause
// is kept for logging and errors.Is, never for display.
type StorageError struct {
	Message string
	Err     error
}

func NewStorageError(message string, err error) *StorageError {
	return &StorageError{Message: message, Err: err}
}

func (e *StorageError) Error() string { return e.Message }

func (e *StorageError) Unwrap() error { return e.Err }
