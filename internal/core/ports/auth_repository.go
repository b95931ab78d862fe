package ports

import (
	"context"

	"github.com/cinemateca/catalog-api/internal/core/domain"
)

// UserRepository defines the persistence interface for user accounts.
type UserRepository interface {
	// FindByUsername matches the username exactly (case-sensitive).
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	// FindByUsernameFold matches the username ignoring case, as login does.
	FindByUsernameFold(ctx context.Context, username string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	List(ctx context.Context) ([]domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
}
