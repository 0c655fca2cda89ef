// Package errs contains sentinel errors used across layers for stable error mapping.
package errs

import "errors"

var (
	// ErrInvalidCredentials indicates a sign-in pair that matches no known identity.
	ErrInvalidCredentials = errors.New("invalid username or password")

	// ErrEmptyUsername indicates a sign-up attempt with a blank username.
	ErrEmptyUsername = errors.New("username is required")

	// ErrEmptyCard indicates a card submission with a blank question or answer.
	ErrEmptyCard = errors.New("question and answer are required")

	// ErrNotPermitted indicates a removal the requester's identity/role does not allow.
	ErrNotPermitted = errors.New("not permitted")

	// ErrNotFound indicates the referenced card does not exist.
	ErrNotFound = errors.New("not found")
)
