package ports

import (
	"context"

	"github.com/cinemateca/catalog-api/internal/core/domain"
)

// CategoryRepository defines the persistence interface for categories.
type CategoryRepository interface {
	List(ctx context.Context) ([]domain.Category, error)
	FindByID(ctx context.Context, id string) (*domain.Category, error)
	ExistsByName(ctx context.Context, name string) (bool, error)
	Create(ctx context.Context, category *domain.Category) (*domain.Category, error)
	Update(ctx context.Context, category *domain.Category) error
	Delete(ctx context.Context, id string) error
}
