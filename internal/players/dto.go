package players

// CreatePlayerRequest is the POST /api/players body. Every field is
// required.
type CreatePlayerRequest struct {
	FirstName string `json:"first_name" validate:"required"`
	LastName  string `json:"last_name" validate:"required"`
	Team      string `json:"team" validate:"required"`
	Position  string `json:"position" validate:"required"`
	UserID    *int64 `json:"user_id" validate:"required"`
}

// UpdatePlayerRequest is the PATCH /api/players/{player_id} body; only
// present fields are written.
type UpdatePlayerRequest struct {
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
	Team      *string `json:"team"`
	Position  *string `json:"position"`
}
