package posts

// CreatePostRequest is the POST /api/posts body.
type CreatePostRequest struct {
	Title   string `json:"title" validate:"required"`
	Content string `json:"content" validate:"required"`
	UserID  *int64 `json:"user_id"`
}

// UpdatePostRequest is the PATCH /api/posts/{post_id} body; only present
// fields are written.
type UpdatePostRequest struct {
	Title   *string `json:"title"`
	Content *string `json:"content"`
}
