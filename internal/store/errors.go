package store

import "errors"

var (
	// ErrNotFound is returned when a user or booking does not exist.
	ErrNotFound = errors.New("record not found")
	// ErrDuplicateEmail is returned on signup with an already registered email.
	ErrDuplicateEmail = errors.New("email already registered")
	// ErrBadPassword is returned when credentials do not match. Handlers must
	// collapse it with ErrNotFound into one generic message so login failures
	// never reveal whether the account exists.
	ErrBadPassword = errors.New("password mismatch")
)
