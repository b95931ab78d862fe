package ports

import (
	"context"

	"github.com/cinemateca/catalog-api/internal/core/domain"
)

// RegisterInput carries the fields required to create an account.
type RegisterInput struct {
	Username    string
	Password    string
	DisplayName string
	Role        string
}

// AuthService defines the account and credential use-cases.
type AuthService interface {
	Register(ctx context.Context, input RegisterInput) (*domain.User, error)
	Login(ctx context.Context, username, password string) (string, *domain.User, error)
	IsUsernameTaken(ctx context.Context, username string) (bool, error)
	GetUser(ctx context.Context, id string) (*domain.User, error)
	ListUsers(ctx context.Context) ([]domain.User, error)
}
