package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/cinemateca/catalog-api/internal/core/domain"
	"github.com/cinemateca/catalog-api/internal/core/ports"
)

type stubMovieService struct {
	listFn     func(ctx context.Context) ([]domain.Movie, error)
	getFn      func(ctx context.Context, id string) (*domain.Movie, error)
	byCatFn    func(ctx context.Context, categoryID string) ([]domain.Movie, error)
	searchFn   func(ctx context.Context, term string) ([]domain.Movie, error)
	createFn   func(ctx context.Context, input ports.MovieInput) (*domain.Movie, error)
	updateFn   func(ctx context.Context, id string, input ports.MovieInput) (*domain.Movie, error)
	deleteFn   func(ctx context.Context, id string) error
}

func (s *stubMovieService) List(ctx context.Context) ([]domain.Movie, error) {
	return s.listFn(ctx)
}

func (s *stubMovieService) Get(ctx context.Context, id string) (*domain.Movie, error) {
	return s.getFn(ctx, id)
}

func (s *stubMovieService) ListByCategory(ctx context.Context, categoryID string) ([]domain.Movie, error) {
	return s.byCatFn(ctx, categoryID)
}

func (s *stubMovieService) Search(ctx context.Context, term string) ([]domain.Movie, error) {
	return s.searchFn(ctx, term)
}

func (s *stubMovieService) Create(ctx context.Context, input ports.MovieInput) (*domain.Movie, error) {
	return s.createFn(ctx, input)
}

func (s *stubMovieService) Update(ctx context.Context, id string, input ports.MovieInput) (*domain.Movie, error) {
	return s.updateFn(ctx, id, input)
}

func (s *stubMovieService) Delete(ctx context.Context, id string) error {
	return s.deleteFn(ctx, id)
}

func TestMovieHandler_Create_Success(t *testing.T) {
	stub := &stubMovieService{
		createFn: func(ctx context.Context, input ports.MovieInput) (*domain.Movie, error) {
			if input.Name != "Metropolis" || input.Classification != "+13" {
				t.Fatalf("unexpected input: %+v", input)
			}
			return &domain.Movie{ID: "mov1", Name: input.Name, CategoryID: input.CategoryID}, nil
		},
	}
	h := NewMovieHandler(stub)

	c, rec := newTestContext(t, http.MethodPost, "/api/peliculas",
		`{"name":"Metropolis","description":"a city divided","duration_minutes":153,"classification":"+13","category_id":"cat1"}`)

	if err := h.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
}

func TestMovieHandler_Create_InvalidClassification(t *testing.T) {
	stub := &stubMovieService{
		createFn: func(ctx context.Context, input ports.MovieInput) (*domain.Movie, error) {
			t.Fatalf("service should not be called")
			return nil, nil
		},
	}
	h := NewMovieHandler(stub)

	c, _ := newTestContext(t, http.MethodPost, "/api/peliculas",
		`{"name":"Metropolis","description":"a city divided","duration_minutes":153,"classification":"nc-17","category_id":"cat1"}`)

	err := h.Create(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 validation error, got %v", err)
	}
}

func TestMovieHandler_Search_PassesTerm(t *testing.T) {
	stub := &stubMovieService{
		searchFn: func(ctx context.Context, term string) ([]domain.Movie, error) {
			if term != "metro" {
				t.Fatalf("unexpected term %q", term)
			}
			return []domain.Movie{{ID: "mov1", Name: "Metropolis"}}, nil
		},
	}
	h := NewMovieHandler(stub)

	c, rec := newTestContext(t, http.MethodGet, "/api/peliculas/buscar?nombre=metro", "")

	if err := h.Search(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var movies []map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &movies); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(movies) != 1 || movies[0]["name"] != "Metropolis" {
		t.Fatalf("unexpected payload: %+v", movies)
	}
}

func TestMovieHandler_ListByCategory_NotFound(t *testing.T) {
	stub := &stubMovieService{
		byCatFn: func(ctx context.Context, categoryID string) ([]domain.Movie, error) {
			return nil, domain.ErrCategoryNotFound
		},
	}
	h := NewMovieHandler(stub)

	c, _ := newTestContext(t, http.MethodGet, "/api/peliculas/categoria/missing", "")
	c.SetParamNames("categoriaId")
	c.SetParamValues("missing")

	if err := h.ListByCategory(c); !errors.Is(err, domain.ErrCategoryNotFound) {
		t.Fatalf("expected ErrCategoryNotFound to propagate, got %v", err)
	}
}
