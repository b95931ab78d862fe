package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/cinemateca/catalog-api/internal/core/domain"
)

func renderError(t *testing.T, err error) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	NewHTTPErrorHandler(zerolog.Nop())(err, c)

	var body map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid json body: %v", err)
	}
	return rec, body
}

func TestErrorHandler_DomainErrors(t *testing.T) {
	cases := []struct {
		err  error
		code int
	}{
		{domain.ErrInvalidInput, http.StatusBadRequest},
		{domain.ErrInvalidCredentials, http.StatusUnauthorized},
		{domain.ErrUserNotFound, http.StatusNotFound},
		{domain.ErrUserExists, http.StatusConflict},
		{domain.ErrCategoryNotFound, http.StatusNotFound},
		{domain.ErrCategoryExists, http.StatusConflict},
		{domain.ErrMovieNotFound, http.StatusNotFound},
		{domain.ErrMovieExists, http.StatusConflict},
	}

	for _, tc := range cases {
		rec, body := renderError(t, tc.err)
		if rec.Code != tc.code {
			t.Errorf("%v: expected status %d, got %d", tc.err, tc.code, rec.Code)
		}
		if success, _ := body["success"].(bool); success {
			t.Errorf("%v: expected success=false", tc.err)
		}
		msgs, ok := body["errors"].([]any)
		if !ok || len(msgs) == 0 {
			t.Errorf("%v: expected non-empty errors list, got %v", tc.err, body["errors"])
		}
	}
}

func TestErrorHandler_WrappedDomainError(t *testing.T) {
	rec, _ := renderError(t, fmt.Errorf("login: %w", domain.ErrInvalidCredentials))
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for wrapped credentials error, got %d", rec.Code)
	}
}

func TestErrorHandler_ValidationMessageList(t *testing.T) {
	err := echo.NewHTTPError(http.StatusBadRequest, []string{"username is required", "password is required"})
	rec, body := renderError(t, err)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	msgs, _ := body["errors"].([]any)
	if len(msgs) != 2 || msgs[0] != "username is required" {
		t.Fatalf("expected ordered message list, got %v", msgs)
	}
}

func TestErrorHandler_UnexpectedErrorIsGeneric(t *testing.T) {
	internal := errors.New("mongo: socket closed unexpectedly")
	rec, body := renderError(t, internal)
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
	msgs, _ := body["errors"].([]any)
	if len(msgs) != 1 || msgs[0] != "internal server error" {
		t.Fatalf("expected generic message, got %v", msgs)
	}
}
