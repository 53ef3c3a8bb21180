// Package auth provides password hashing and JWT session token services.
package auth
