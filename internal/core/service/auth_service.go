package service

import (
	"context"
	"errors"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/datacatalog/metadata-system/internal/core/domain"
	"github.com/datacatalog/metadata-system/internal/core/ports"
	"github.com/datacatalog/metadata-system/internal/core/token"
)

// AuthService implements registration and login. Registration always assigns
// the default role; elevated roles only come from the startup seed.
type AuthService struct {
	repo     ports.AuthRepository
	throttle ports.LoginThrottle
	codec    *token.Codec
}

func NewAuthService(repo ports.AuthRepository, throttle ports.LoginThrottle, codec *token.Codec) *AuthService {
	if throttle == nil {
		throttle = noopThrottle{}
	}
	return &AuthService{repo: repo, throttle: throttle, codec: codec}
}

func (s *AuthService) Register(ctx context.Context, username, password, email string) (*domain.User, error) {
	if username == "" || password == "" || email == "" {
		return nil, domain.ErrMissingFields
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
		Role:         domain.RoleUser,
		CreatedAt:    time.Now().UTC(),
	}
	return s.repo.Create(ctx, user)
}

func (s *AuthService) Login(ctx context.Context, username, password string) (string, *domain.User, error) {
	if username == "" || password == "" {
		return "", nil, domain.ErrMissingFields
	}

	allowed, err := s.throttle.Allow(ctx, username)
	if err != nil {
		return "", nil, err
	}
	if !allowed {
		return "", nil, domain.ErrTooManyAttempts
	}

	user, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			// Unknown usernames count against the throttle like a bad
			// password, so attackers cannot tell the two apart by which
			// names eventually hit the lockout.
			_ = s.throttle.RecordFailure(ctx, username)
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		_ = s.throttle.RecordFailure(ctx, username)
		return "", nil, domain.ErrInvalidCredentials
	}

	signed, err := s.codec.Issue(user.ID, user.Username, user.Role)
	if err != nil {
		return "", nil, err
	}

	_ = s.throttle.Reset(ctx, username)
	return signed, user, nil
}

// noopThrottle permits every attempt. Used when no Redis-backed throttle is wired.
type noopThrottle struct{}

func (noopThrottle) Allow(context.Context, string) (bool, error) { return true, nil }
func (noopThrottle) RecordFailure(context.Context, string) error { return nil }
func (noopThrottle) Reset(context.Context, string) error         { return nil }
