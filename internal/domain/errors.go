package domain

import "errors"

// Engine error taxonomy. Service operations return these (usually wrapped
// with fmt.Errorf %w); the API layer translates them into HTTP statuses.
var (
	// ErrConflict: double-open on an already-active console, or
	// double-close on an already-closed session.
	ErrConflict = errors.New("conflict")

	// ErrNotFound: unknown session/console/member/product/staff id, or
	// operating on a non-active session where an active one is required.
	ErrNotFound = errors.New("not found")

	// ErrValidation: negative or non-numeric monetary/time input.
	ErrValidation = errors.New("validation failed")

	// ErrForbidden: the caller's role does not permit the action.
	ErrForbidden = errors.New("forbidden")
)
