// Package players implements CRUD for roster players.
package players

import (
	"errors"

	"github.com/courtside/courtside/internal/platform/sanitize"
)

// Player is a stored player row.
type Player struct {
	ID        int64
	FirstName string
	LastName  string
	Team      string
	Position  string
	UserID    int64
}

// PublicPlayer is the client-facing view of a player.
type PublicPlayer struct {
	ID        int64  `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Team      string `json:"team"`
	Position  string `json:"position"`
	UserID    int64  `json:"user_id"`
}

// Public builds the sanitized client view of the player.
func (p *Player) Public() PublicPlayer {
	return PublicPlayer{
		ID:        p.ID,
		FirstName: sanitize.HTML(p.FirstName),
		LastName:  sanitize.HTML(p.LastName),
		Team:      sanitize.HTML(p.Team),
		Position:  sanitize.HTML(p.Position),
		UserID:    p.UserID,
	}
}

// ErrNotFound indicates no player row exists for the lookup.
var ErrNotFound = errors.New("player not found")
