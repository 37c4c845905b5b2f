package users

// RegistrationRequest is the POST /api/users body. team_name is the only
// optional field.
type RegistrationRequest struct {
	Username  string  `json:"username"`
	Password  string  `json:"password"`
	TeamName  *string `json:"team_name"`
	FirstName string  `json:"first_name"`
	LastName  string  `json:"last_name"`
	Email     string  `json:"email"`
}

// requiredFields returns the declared required field list in validation
// order. Validation iterates this list rather than reflecting over the
// struct, so the required set is explicit.
func (r *RegistrationRequest) requiredFields() []struct{ name, value string } {
	return []struct{ name, value string }{
		{"username", r.Username},
		{"password", r.Password},
		{"first_name", r.FirstName},
		{"last_name", r.LastName},
		{"email", r.Email},
	}
}
