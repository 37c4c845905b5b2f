// Package auth implements bearer-token issuance and verification plus the
// login flow around it.
package auth

import "errors"

// User is the credential view of an account needed to authenticate.
type User struct {
	ID           int64
	Username     string
	PasswordHash string
}

var (
	// ErrNotFound indicates no account exists for the username.
	ErrNotFound = errors.New("user not found")
	// ErrInvalidCredentials indicates a failed username/password check.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrTooManyAttempts indicates the login throttle tripped.
	ErrTooManyAttempts = errors.New("too many login attempts")
	// ErrInvalidToken indicates a token whose signature or shape is wrong.
	ErrInvalidToken = errors.New("invalid token")
	// ErrTokenExpired indicates a structurally valid token past its expiry.
	ErrTokenExpired = errors.New("token expired")
)
