package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/cinemateca/catalog-api/internal/api/metrics"
	"github.com/cinemateca/catalog-api/internal/core/domain"
	"github.com/cinemateca/catalog-api/internal/core/ports"
)

const moviesCacheKey = "catalog:peliculas"

// MovieService implements movie CRUD, by-category listing, and search.
type MovieService struct {
	repo       ports.MovieRepository
	categories ports.CategoryRepository
	cache      ports.ListCache
	logger     zerolog.Logger
}

func NewMovieService(repo ports.MovieRepository, categories ports.CategoryRepository, cache ports.ListCache, logger zerolog.Logger) *MovieService {
	return &MovieService{repo: repo, categories: categories, cache: cache, logger: logger}
}

// List returns all movies, served from the cache when warm.
func (s *MovieService) List(ctx context.Context) ([]domain.Movie, error) {
	if s.cache != nil {
		var cached []domain.Movie
		hit, err := s.cache.Get(ctx, moviesCacheKey, &cached)
		if err != nil {
			s.logger.Warn().Err(err).Msg("movie cache read failed")
		} else if hit {
			metrics.CacheTotal.WithLabelValues("hit").Inc()
			return cached, nil
		} else {
			metrics.CacheTotal.WithLabelValues("miss").Inc()
		}
	}

	movies, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, moviesCacheKey, movies); err != nil {
			s.logger.Warn().Err(err).Msg("movie cache write failed")
		}
	}
	return movies, nil
}

func (s *MovieService) Get(ctx context.Context, id string) (*domain.Movie, error) {
	return s.repo.FindByID(ctx, id)
}

// ListByCategory returns the movies in a category. An unknown category is a
// not-found error, not an empty list.
func (s *MovieService) ListByCategory(ctx context.Context, categoryID string) ([]domain.Movie, error) {
	if _, err := s.categories.FindByID(ctx, categoryID); err != nil {
		return nil, err
	}
	return s.repo.FindByCategory(ctx, categoryID)
}

// Search matches term as a case-insensitive substring of a movie's name or
// description. An empty term falls back to the full (cached) listing.
func (s *MovieService) Search(ctx context.Context, term string) ([]domain.Movie, error) {
	metrics.MovieSearchesTotal.Inc()
	if term == "" {
		return s.List(ctx)
	}
	return s.repo.Search(ctx, term)
}

// Create adds a movie after validating its classification and category.
func (s *MovieService) Create(ctx context.Context, input ports.MovieInput) (*domain.Movie, error) {
	if err := s.validate(ctx, input); err != nil {
		return nil, err
	}

	exists, err := s.repo.ExistsByName(ctx, input.Name)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.ErrMovieExists
	}

	now := time.Now().UTC()
	created, err := s.repo.Create(ctx, &domain.Movie{
		Name:            input.Name,
		Description:     input.Description,
		DurationMinutes: input.DurationMinutes,
		Classification:  domain.Classification(input.Classification),
		ImageURL:        input.ImageURL,
		CategoryID:      input.CategoryID,
		CreatedAt:       now,
		UpdatedAt:       now,
	})
	if err != nil {
		return nil, err
	}

	s.invalidate(ctx)
	s.logger.Info().Str("movie", created.Name).Str("category_id", created.CategoryID).Msg("movie created")
	return created, nil
}

// Update replaces the writable fields of an existing movie.
func (s *MovieService) Update(ctx context.Context, id string, input ports.MovieInput) (*domain.Movie, error) {
	if err := s.validate(ctx, input); err != nil {
		return nil, err
	}

	movie, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	movie.Name = input.Name
	movie.Description = input.Description
	movie.DurationMinutes = input.DurationMinutes
	movie.Classification = domain.Classification(input.Classification)
	movie.ImageURL = input.ImageURL
	movie.CategoryID = input.CategoryID
	movie.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, movie); err != nil {
		return nil, err
	}

	s.invalidate(ctx)
	return movie, nil
}

func (s *MovieService) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidate(ctx)
	return nil
}

func (s *MovieService) validate(ctx context.Context, input ports.MovieInput) error {
	if input.Name == "" || input.CategoryID == "" || input.DurationMinutes <= 0 {
		return domain.ErrInvalidInput
	}
	if !domain.Classification(input.Classification).Valid() {
		return domain.ErrInvalidInput
	}
	if _, err := s.categories.FindByID(ctx, input.CategoryID); err != nil {
		return err
	}
	return nil
}

func (s *MovieService) invalidate(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx, moviesCacheKey); err != nil {
		s.logger.Warn().Err(err).Msg("movie cache invalidation failed")
	}
}
