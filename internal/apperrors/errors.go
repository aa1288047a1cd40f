// Package apperrors defines the domain error vocabulary shared by services and
// handlers. Services return these; handlers translate them to HTTP statuses.
package apperrors

import "errors"

var (
	// ErrSelfFollow rejects a follow edge from a user to themselves.
	ErrSelfFollow = errors.New("cannot follow yourself")

	// ErrNotFound means a user, rating or favorite id did not resolve.
	ErrNotFound = errors.New("not found")

	// ErrUnauthorized means the request carried no valid identity.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrEmailTaken and ErrUsernameTaken reject duplicate signups.
	ErrEmailTaken    = errors.New("email already registered")
	ErrUsernameTaken = errors.New("username already taken")

	// ErrInvalidCredentials covers both unknown email and wrong password.
	ErrInvalidCredentials = errors.New("incorrect email or password")
)
