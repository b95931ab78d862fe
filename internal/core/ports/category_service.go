package ports

import (
	"context"

	"github.com/cinemateca/catalog-api/internal/core/domain"
)

// CategoryService defines the category use-cases.
type CategoryService interface {
	List(ctx context.Context) ([]domain.Category, error)
	Get(ctx context.Context, id string) (*domain.Category, error)
	Create(ctx context.Context, name string) (*domain.Category, error)
	Update(ctx context.Context, id, name string) (*domain.Category, error)
	Delete(ctx context.Context, id string) error
}
