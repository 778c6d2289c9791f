package ports

import (
	"context"

	"github.com/datacatalog/metadata-system/internal/core/domain"
)

// AuthRepository defines the interface for user persistence. The
// implementation assigns the sequential user id on Create.
type AuthRepository interface {
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
}

// LoginThrottle limits repeated failed logins per username.
type LoginThrottle interface {
	// Allow reports whether another login attempt is permitted.
	Allow(ctx context.Context, username string) (bool, error)
	RecordFailure(ctx context.Context, username string) error
	Reset(ctx context.Context, username string) error
}
