package users

import (
	"context"
	"errors"

	"github.com/courtside/courtside/internal/credential"
)

// Service runs the registration flow and directory reads.
type Service struct {
	repo   Repository
	hasher *credential.Hasher
}

// NewService builds a Service instance.
func NewService(repo Repository, hasher *credential.Hasher) *Service {
	return &Service{repo: repo, hasher: hasher}
}

// Register validates the request, enforces username uniqueness, hashes the
// password and persists the user. The steps run in a fixed order: required
// fields, password policy, uniqueness lookup, hash, insert. The insert is
// the only side effect; any failure before it leaves no partial state.
func (s *Service) Register(ctx context.Context, req RegistrationRequest) (*PublicUser, error) {
	for _, field := range req.requiredFields() {
		if field.value == "" {
			return nil, &MissingFieldError{Field: field.name}
		}
	}

	if err := credential.ValidatePassword(req.Password); err != nil {
		return nil, err
	}

	_, err := s.repo.FindByUsername(ctx, req.Username)
	if err == nil {
		return nil, ErrUsernameTaken
	}
	if !errors.Is(err, ErrNotFound) {
		return nil, err
	}

	hashed, err := s.hasher.Hash(req.Password)
	if err != nil {
		return nil, err
	}

	// The uniqueness check above can race with a concurrent insert; the
	// store's unique constraint surfaces as ErrUsernameTaken here.
	user, err := s.repo.Insert(ctx, User{
		Username:     req.Username,
		TeamName:     req.TeamName,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Email:        req.Email,
		PasswordHash: hashed,
	})
	if err != nil {
		return nil, err
	}

	view := user.Public()
	return &view, nil
}

// GetByID returns the public view of one user.
func (s *Service) GetByID(ctx context.Context, id int64) (*PublicUser, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	view := user.Public()
	return &view, nil
}

// ListAll returns the public view of every user.
func (s *Service) ListAll(ctx context.Context) ([]PublicUser, error) {
	all, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	views := make([]PublicUser, 0, len(all))
	for i := range all {
		views = append(views, all[i].Public())
	}
	return views, nil
}
