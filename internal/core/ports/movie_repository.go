package ports

import (
	"context"

	"github.com/cinemateca/catalog-api/internal/core/domain"
)

// MovieRepository defines the persistence interface for movies.
type MovieRepository interface {
	List(ctx context.Context) ([]domain.Movie, error)
	FindByID(ctx context.Context, id string) (*domain.Movie, error)
	FindByCategory(ctx context.Context, categoryID string) ([]domain.Movie, error)
	// Search matches term as a case-insensitive substring of the name or
	// description. An empty term returns all movies.
	Search(ctx context.Context, term string) ([]domain.Movie, error)
	ExistsByName(ctx context.Context, name string) (bool, error)
	Create(ctx context.Context, movie *domain.Movie) (*domain.Movie, error)
	Update(ctx context.Context, movie *domain.Movie) error
	Delete(ctx context.Context, id string) error
}
