package ports

import (
	"context"

	"github.com/cinemateca/catalog-api/internal/core/domain"
)

// MovieInput carries the writable movie fields.
type MovieInput struct {
	Name            string
	Description     string
	DurationMinutes int
	Classification  string
	ImageURL        string
	CategoryID      string
}

// MovieService defines the movie use-cases.
type MovieService interface {
	List(ctx context.Context) ([]domain.Movie, error)
	Get(ctx context.Context, id string) (*domain.Movie, error)
	ListByCategory(ctx context.Context, categoryID string) ([]domain.Movie, error)
	Search(ctx context.Context, term string) ([]domain.Movie, error)
	Create(ctx context.Context, input MovieInput) (*domain.Movie, error)
	Update(ctx context.Context, id string, input MovieInput) (*domain.Movie, error)
	Delete(ctx context.Context, id string) error
}
