package auth

import (
	"context"
	"errors"
	"log/slog"

	"github.com/courtside/courtside/internal/credential"
)

// Service wraps the login flow: throttle check, credential lookup, password
// comparison, token issuance.
type Service struct {
	logger   *slog.Logger
	repo     Repository
	hasher   *credential.Hasher
	issuer   *TokenIssuer
	throttle *LoginThrottle
}

// NewService constructs a new Service. The throttle may be nil when Redis is
// not configured.
func NewService(logger *slog.Logger, repo Repository, hasher *credential.Hasher, issuer *TokenIssuer, throttle *LoginThrottle) *Service {
	return &Service{logger: logger, repo: repo, hasher: hasher, issuer: issuer, throttle: throttle}
}

// Login validates the credentials and returns a signed bearer token.
func (s *Service) Login(ctx context.Context, username, password string) (string, error) {
	if s.throttle != nil {
		allowed, err := s.throttle.Allow(ctx, username)
		if err != nil {
			// Throttle outage must not lock everyone out.
			s.logger.Warn("login throttle unavailable", slog.Any("error", err))
		} else if !allowed {
			return "", ErrTooManyAttempts
		}
	}

	user, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			s.recordFailure(ctx, username)
			return "", ErrInvalidCredentials
		}
		return "", err
	}

	if !s.hasher.Verify(password, user.PasswordHash) {
		s.recordFailure(ctx, username)
		return "", ErrInvalidCredentials
	}

	if s.throttle != nil {
		if err := s.throttle.Reset(ctx, username); err != nil {
			s.logger.Warn("login throttle reset", slog.Any("error", err))
		}
	}

	return s.issuer.Issue(user.ID, user.Username)
}

func (s *Service) recordFailure(ctx context.Context, username string) {
	if s.throttle == nil {
		return
	}
	if err := s.throttle.RecordFailure(ctx, username); err != nil {
		s.logger.Warn("login throttle record", slog.Any("error", err))
	}
}
