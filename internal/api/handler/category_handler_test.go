package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/cinemateca/catalog-api/internal/core/domain"
)

type stubCategoryService struct {
	listFn   func(ctx context.Context) ([]domain.Category, error)
	getFn    func(ctx context.Context, id string) (*domain.Category, error)
	createFn func(ctx context.Context, name string) (*domain.Category, error)
	updateFn func(ctx context.Context, id, name string) (*domain.Category, error)
	deleteFn func(ctx context.Context, id string) error
}

func (s *stubCategoryService) List(ctx context.Context) ([]domain.Category, error) {
	return s.listFn(ctx)
}

func (s *stubCategoryService) Get(ctx context.Context, id string) (*domain.Category, error) {
	return s.getFn(ctx, id)
}

func (s *stubCategoryService) Create(ctx context.Context, name string) (*domain.Category, error) {
	return s.createFn(ctx, name)
}

func (s *stubCategoryService) Update(ctx context.Context, id, name string) (*domain.Category, error) {
	return s.updateFn(ctx, id, name)
}

func (s *stubCategoryService) Delete(ctx context.Context, id string) error {
	return s.deleteFn(ctx, id)
}

func TestCategoryHandler_Create_Success(t *testing.T) {
	stub := &stubCategoryService{
		createFn: func(ctx context.Context, name string) (*domain.Category, error) {
			return &domain.Category{ID: "cat1", Name: name}, nil
		},
	}
	h := NewCategoryHandler(stub)

	c, rec := newTestContext(t, http.MethodPost, "/api/categorias", `{"name":"Drama"}`)

	if err := h.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["name"] != "Drama" {
		t.Fatalf("unexpected payload: %+v", resp)
	}
}

func TestCategoryHandler_Create_MissingName(t *testing.T) {
	stub := &stubCategoryService{
		createFn: func(ctx context.Context, name string) (*domain.Category, error) {
			t.Fatalf("service should not be called")
			return nil, nil
		},
	}
	h := NewCategoryHandler(stub)

	c, _ := newTestContext(t, http.MethodPost, "/api/categorias", `{}`)

	err := h.Create(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 validation error, got %v", err)
	}
}

func TestCategoryHandler_Update_BodyIDMismatch(t *testing.T) {
	stub := &stubCategoryService{
		updateFn: func(ctx context.Context, id, name string) (*domain.Category, error) {
			t.Fatalf("service should not be called")
			return nil, nil
		},
	}
	h := NewCategoryHandler(stub)

	c, _ := newTestContext(t, http.MethodPatch, "/api/categorias/cat1", `{"id":"cat2","name":"Terror"}`)
	c.SetParamNames("id")
	c.SetParamValues("cat1")

	err := h.Update(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for id mismatch, got %v", err)
	}
}

func TestCategoryHandler_Get_NotFound(t *testing.T) {
	stub := &stubCategoryService{
		getFn: func(ctx context.Context, id string) (*domain.Category, error) {
			return nil, domain.ErrCategoryNotFound
		},
	}
	h := NewCategoryHandler(stub)

	c, _ := newTestContext(t, http.MethodGet, "/api/categorias/missing", "")
	c.SetParamNames("id")
	c.SetParamValues("missing")

	if err := h.Get(c); !errors.Is(err, domain.ErrCategoryNotFound) {
		t.Fatalf("expected ErrCategoryNotFound to propagate, got %v", err)
	}
}

func TestCategoryHandler_Delete_Success(t *testing.T) {
	stub := &stubCategoryService{
		deleteFn: func(ctx context.Context, id string) error {
			if id != "cat1" {
				t.Fatalf("unexpected id %q", id)
			}
			return nil
		},
	}
	h := NewCategoryHandler(stub)

	c, rec := newTestContext(t, http.MethodDelete, "/api/categorias/cat1", "")
	c.SetParamNames("id")
	c.SetParamValues("cat1")

	if err := h.Delete(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
}
