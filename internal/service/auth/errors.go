package auth

import "errors"

// Common authentication service errors
var (
	// ErrInvalidToken indicates the token format is invalid or signature doesn't match
	ErrInvalidToken = errors.New("invalid authentication token")

	// ErrExpiredToken indicates the token has expired
	ErrExpiredToken = errors.New("authentication token has expired")

	// ErrMissingToken indicates a token was expected but not provided
	ErrMissingToken = errors.New("authentication token is missing")

	// ErrHashingFailed indicates the password hashing subsystem itself
	// failed. This is distinct from a wrong password, which is a normal
	// negative verification result.
	ErrHashingFailed = errors.New("password hashing failed")
)
