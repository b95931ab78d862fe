package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
)

func TestRBAC_AllowsPermittedRole(t *testing.T) {
	e := echo.New()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(ContextRole, "admin")

	called := false
	handler := RBAC("admin")(func(c echo.Context) error {
		called = true
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next not called")
	}
}

func TestRBAC_RejectsOtherRole(t *testing.T) {
	e := echo.New()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(ContextRole, "user")

	handler := RBAC("admin")(func(c echo.Context) error {
		t.Fatalf("next should not be called")
		return nil
	})

	assertHTTPError(t, handler(c), http.StatusForbidden)
}

func TestRBAC_RejectsMissingRole(t *testing.T) {
	e := echo.New()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := RBAC("admin", "user")(func(c echo.Context) error {
		t.Fatalf("next should not be called")
		return nil
	})

	assertHTTPError(t, handler(c), http.StatusForbidden)
}
