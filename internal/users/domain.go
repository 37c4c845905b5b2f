// Package users implements the user directory and the registration flow.
package users

import (
	"errors"
	"fmt"

	"github.com/courtside/courtside/internal/platform/sanitize"
)

// User is a stored account row. PasswordHash is the bcrypt hash; plaintext
// never reaches this struct.
type User struct {
	ID           int64
	Username     string
	TeamName     *string
	FirstName    string
	LastName     string
	Email        string
	PasswordHash string
}

// PublicUser is the client-facing view of an account. It deliberately has no
// password field of any kind.
type PublicUser struct {
	ID        int64   `json:"id"`
	Username  string  `json:"username"`
	TeamName  *string `json:"team_name"`
	FirstName string  `json:"first_name"`
	LastName  string  `json:"last_name"`
	Email     string  `json:"email"`
}

// Public builds the sanitized client view of the user.
func (u *User) Public() PublicUser {
	view := PublicUser{
		ID:        u.ID,
		Username:  sanitize.HTML(u.Username),
		FirstName: sanitize.HTML(u.FirstName),
		LastName:  sanitize.HTML(u.LastName),
		Email:     sanitize.HTML(u.Email),
	}
	if u.TeamName != nil {
		team := sanitize.HTML(*u.TeamName)
		view.TeamName = &team
	}
	return view
}

var (
	// ErrNotFound indicates no user row exists for the lookup.
	ErrNotFound = errors.New("user not found")
	// ErrUsernameTaken indicates the username is already claimed, whether
	// found by the uniqueness check or raised by the store constraint.
	ErrUsernameTaken = errors.New("username is already taken")
)

// MissingFieldError reports an absent or empty required registration field.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("Missing '%s' in request body", e.Field)
}
