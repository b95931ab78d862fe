package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/cinemateca/catalog-api/internal/api/metrics"
	"github.com/cinemateca/catalog-api/internal/core/domain"
	"github.com/cinemateca/catalog-api/internal/core/ports"
)

const categoriesCacheKey = "catalog:categorias"

// CategoryService implements category CRUD with a cached listing.
type CategoryService struct {
	repo   ports.CategoryRepository
	cache  ports.ListCache
	logger zerolog.Logger
}

func NewCategoryService(repo ports.CategoryRepository, cache ports.ListCache, logger zerolog.Logger) *CategoryService {
	return &CategoryService{repo: repo, cache: cache, logger: logger}
}

// List returns all categories, served from the cache when warm. Cache
// failures degrade to a repository read, never to a request failure.
func (s *CategoryService) List(ctx context.Context) ([]domain.Category, error) {
	if s.cache != nil {
		var cached []domain.Category
		hit, err := s.cache.Get(ctx, categoriesCacheKey, &cached)
		if err != nil {
			s.logger.Warn().Err(err).Msg("category cache read failed")
		} else if hit {
			metrics.CacheTotal.WithLabelValues("hit").Inc()
			return cached, nil
		} else {
			metrics.CacheTotal.WithLabelValues("miss").Inc()
		}
	}

	categories, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, categoriesCacheKey, categories); err != nil {
			s.logger.Warn().Err(err).Msg("category cache write failed")
		}
	}
	return categories, nil
}

func (s *CategoryService) Get(ctx context.Context, id string) (*domain.Category, error) {
	return s.repo.FindByID(ctx, id)
}

// Create adds a category with a unique name.
func (s *CategoryService) Create(ctx context.Context, name string) (*domain.Category, error) {
	if name == "" {
		return nil, domain.ErrInvalidInput
	}

	exists, err := s.repo.ExistsByName(ctx, name)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.ErrCategoryExists
	}

	created, err := s.repo.Create(ctx, &domain.Category{
		Name:      name,
		CreatedAt: time.Now().UTC(),
	})
	if err != nil {
		return nil, err
	}

	s.invalidate(ctx)
	s.logger.Info().Str("category", created.Name).Msg("category created")
	return created, nil
}

// Update renames an existing category.
func (s *CategoryService) Update(ctx context.Context, id, name string) (*domain.Category, error) {
	if name == "" {
		return nil, domain.ErrInvalidInput
	}

	category, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	category.Name = name
	if err := s.repo.Update(ctx, category); err != nil {
		return nil, err
	}

	s.invalidate(ctx)
	return category, nil
}

func (s *CategoryService) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidate(ctx)
	return nil
}

func (s *CategoryService) invalidate(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx, categoriesCacheKey); err != nil {
		s.logger.Warn().Err(err).Msg("category cache invalidation failed")
	}
}
