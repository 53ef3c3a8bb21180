package service

import "errors"

// Common service errors.
var (
	// ErrInvalidCredentials is returned by Login for an unknown email or
	// a wrong password. The two cases are deliberately indistinguishable.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrWrongPassword is returned by ChangePassword when the supplied
	// current password does not match. Unlike a login failure this is a
	// bad request from an already-authenticated caller.
	ErrWrongPassword = errors.New("current password is incorrect")
)
