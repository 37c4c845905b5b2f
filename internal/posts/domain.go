// Package posts implements CRUD for user-authored posts.
package posts

import (
	"errors"
	"time"

	"github.com/courtside/courtside/internal/platform/sanitize"
)

// Post is a stored post row.
type Post struct {
	ID            int64
	Title         string
	Content       string
	DatePublished time.Time
	UserID        *int64
}

// PublicPost is the client-facing view of a post. Title and content are
// user-authored text, so the view is always sanitized.
type PublicPost struct {
	ID            int64     `json:"id"`
	Title         string    `json:"title"`
	Content       string    `json:"content"`
	DatePublished time.Time `json:"date_published"`
	UserID        *int64    `json:"user_id"`
}

// Public builds the sanitized client view of the post.
func (p *Post) Public() PublicPost {
	return PublicPost{
		ID:            p.ID,
		Title:         sanitize.HTML(p.Title),
		Content:       sanitize.HTML(p.Content),
		DatePublished: p.DatePublished,
		UserID:        p.UserID,
	}
}

// ErrNotFound indicates no post row exists for the lookup.
var ErrNotFound = errors.New("post not found")
