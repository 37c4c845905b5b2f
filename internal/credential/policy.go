// Package credential holds the password policy and hashing primitives used
// by registration and login.
package credential

import "strings"

const specialChars = "!@#$%^&"

// Policy violation messages, surfaced to the client verbatim.
const (
	msgTooShort   = "Password must be 8 characters or longer"
	msgTooLong    = "Password must be 72 characters or less"
	msgSpaces     = "Password must not start or end with empty spaces"
	msgComplexity = "Password must contain at least one lowercase letter, one uppercase letter, one number, and one special character"
)

// PolicyError describes a password that fails a strength rule.
type PolicyError struct {
	msg string
}

func (e *PolicyError) Error() string { return e.msg }

// ValidatePassword checks a candidate password against the strength rules.
// Rules run in a fixed order and the first failure wins: length lower bound,
// length upper bound, surrounding whitespace, then character complexity.
func ValidatePassword(password string) error {
	if len(password) < 8 {
		return &PolicyError{msg: msgTooShort}
	}
	if len(password) > 72 {
		return &PolicyError{msg: msgTooLong}
	}
	if strings.HasPrefix(password, " ") || strings.HasSuffix(password, " ") {
		return &PolicyError{msg: msgSpaces}
	}
	if !hasComplexity(password) {
		return &PolicyError{msg: msgComplexity}
	}
	return nil
}

func hasComplexity(password string) bool {
	var lower, upper, digit, special bool
	for _, r := range password {
		switch {
		case r >= 'a' && r <= 'z':
			lower = true
		case r >= 'A' && r <= 'Z':
			upper = true
		case r >= '0' && r <= '9':
			digit = true
		case strings.ContainsRune(specialChars, r):
			special = true
		}
	}
	return lower && upper && digit && special
}
