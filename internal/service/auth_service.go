package service

import (
	"context"
	"time"

	"github.com/homevista/homevista-backend/internal/domain"
	"github.com/homevista/homevista-backend/internal/repository"
	"github.com/homevista/homevista-backend/pkg/auth"
	"github.com/homevista/homevista-backend/pkg/config"
	"github.com/homevista/homevista-backend/pkg/events"
	"github.com/homevista/homevista-backend/pkg/logger"
)

type AuthService interface {
	Register(ctx context.Context, data domain.User) domain.User
	// Login authenticates against the stored plaintext credentials and
	// issues a token nothing downstream verifies. The token exists for API
	// compatibility, not security.
	Login(ctx context.Context, email, password string) (domain.User, string, error)
}

type authService struct {
	users repository.UserRepository
	bus   events.Publisher
	cfg   *config.Config
}

func NewAuthService(users repository.UserRepository, bus events.Publisher, cfg *config.Config) AuthService {
	return &authService{
		users: users,
		bus:   bus,
		cfg:   cfg,
	}
}

func (s *authService) Register(ctx context.Context, data domain.User) domain.User {
	user := s.users.Register(data)

	event := events.UserRegisteredEvent{
		Email:        user.Email(),
		Username:     user.Username(),
		RegisteredAt: time.Now(),
	}
	if err := s.bus.Publish(ctx, events.UserRegistered, event); err != nil {
		logger.ErrorContext(ctx, "Failed to publish user registered event", "error", err, "email", user.Email())
	}

	return user
}

func (s *authService) Login(ctx context.Context, email, password string) (domain.User, string, error) {
	user, err := s.users.Authenticate(email, password)
	if err != nil {
		return nil, "", err
	}

	token, err := auth.NewAccessToken(user.Email(), "user", s.cfg.Auth.JWTSecret, s.cfg.Auth.AccessTokenTTL)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}
