package posts

import "context"

// Service handles post business logic.
type Service struct {
	repo Repository
}

// NewService builds a Service instance.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func publicViews(all []Post) []PublicPost {
	views := make([]PublicPost, 0, len(all))
	for i := range all {
		views = append(views, all[i].Public())
	}
	return views
}

// ListAll returns the sanitized view of every post.
func (s *Service) ListAll(ctx context.Context) ([]PublicPost, error) {
	all, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	return publicViews(all), nil
}

// ListByUser returns the sanitized posts owned by a user.
func (s *Service) ListByUser(ctx context.Context, userID int64) ([]PublicPost, error) {
	all, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return publicViews(all), nil
}

// GetByID returns the sanitized view of one post.
func (s *Service) GetByID(ctx context.Context, id int64) (*PublicPost, error) {
	post, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	view := post.Public()
	return &view, nil
}

// Create persists a new post.
func (s *Service) Create(ctx context.Context, req CreatePostRequest) (*PublicPost, error) {
	post, err := s.repo.Insert(ctx, Post{
		Title:   req.Title,
		Content: req.Content,
		UserID:  req.UserID,
	})
	if err != nil {
		return nil, err
	}
	view := post.Public()
	return &view, nil
}

// Update applies the present fields to an existing post.
func (s *Service) Update(ctx context.Context, id int64, req UpdatePostRequest) error {
	return s.repo.Update(ctx, id, req)
}

// Delete removes a post.
func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
