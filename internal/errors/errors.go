package errors

import (
	"errors"
	"net/http"
)

// Error kinds for the parking core. Every failure returned by the registry,
// the ledger and the parking service wraps one of these; callers branch with
// errors.Is and never parse messages.
var (
	// ErrNotFound reports an unresolved lot or session id/code.
	ErrNotFound = errors.New("not found")
	// ErrSpacesExhausted reports a lot with no available spaces at
	// reservation time. Retrying without waiting for capacity is pointless.
	ErrSpacesExhausted = errors.New("no available spaces")
	// ErrInvalidTransition reports an operation attempted from a session
	// state that does not permit it. Retrying never changes the outcome.
	ErrInvalidTransition = errors.New("invalid session transition")
	// ErrAlreadyExists reports a uniqueness conflict (duplicate user email).
	ErrAlreadyExists = errors.New("already exists")
)

// StatusForError maps a core error to the HTTP status it surfaces as.
func StatusForError(err error) int {
	switch {
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrSpacesExhausted), errors.Is(err, ErrAlreadyExists):
		return http.StatusConflict
	case errors.Is(err, ErrInvalidTransition):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}
