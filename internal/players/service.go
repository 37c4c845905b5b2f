package players

import "context"

// Service handles player business logic.
type Service struct {
	repo Repository
}

// NewService builds a Service instance.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func publicViews(all []Player) []PublicPlayer {
	views := make([]PublicPlayer, 0, len(all))
	for i := range all {
		views = append(views, all[i].Public())
	}
	return views
}

// ListAll returns the sanitized view of every player.
func (s *Service) ListAll(ctx context.Context) ([]PublicPlayer, error) {
	all, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	return publicViews(all), nil
}

// ListByUser returns the sanitized players owned by a user.
func (s *Service) ListByUser(ctx context.Context, userID int64) ([]PublicPlayer, error) {
	all, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return publicViews(all), nil
}

// GetByID returns the sanitized view of one player.
func (s *Service) GetByID(ctx context.Context, id int64) (*PublicPlayer, error) {
	player, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	view := player.Public()
	return &view, nil
}

// Create persists a new player.
func (s *Service) Create(ctx context.Context, req CreatePlayerRequest) (*PublicPlayer, error) {
	player, err := s.repo.Insert(ctx, Player{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Team:      req.Team,
		Position:  req.Position,
		UserID:    *req.UserID,
	})
	if err != nil {
		return nil, err
	}
	view := player.Public()
	return &view, nil
}

// Update applies the present fields to an existing player.
func (s *Service) Update(ctx context.Context, id int64, req UpdatePlayerRequest) error {
	return s.repo.Update(ctx, id, req)
}

// Delete removes a player.
func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
