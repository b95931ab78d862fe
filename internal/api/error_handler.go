package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/cinemateca/catalog-api/internal/core/domain"
)

// errorResponse is the canonical error envelope for all API errors: a success
// flag that is always false plus an ordered list of human-readable messages.
type errorResponse struct {
	Success bool     `json:"success"`
	Errors  []string `json:"errors"`
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps known domain errors to their appropriate HTTP status codes.
//   - Logs unexpected errors internally without leaking details to the client.
//   - Renders a consistent JSON envelope: {"success": false, "errors": [...]}.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, msgs := resolveError(err, log, c)
		_ = c.JSON(code, errorResponse{Success: false, Errors: msgs})
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, []string) {
	// Echo's own errors (bind failures, 404 from router, validation).
	var he *echo.HTTPError
	if errors.As(err, &he) {
		if msgs, ok := he.Message.([]string); ok {
			return he.Code, msgs
		}
		return he.Code, []string{fmt.Sprintf("%v", he.Message)}
	}

	// Known domain errors → deterministic HTTP codes.
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest, []string{err.Error()}
	case errors.Is(err, domain.ErrInvalidCredentials):
		// One message for unknown user and wrong password alike.
		return http.StatusUnauthorized, []string{"invalid username or password"}
	case errors.Is(err, domain.ErrUserNotFound):
		return http.StatusNotFound, []string{"user not found"}
	case errors.Is(err, domain.ErrUserExists):
		return http.StatusConflict, []string{"username already taken"}
	case errors.Is(err, domain.ErrCategoryNotFound):
		return http.StatusNotFound, []string{"category not found"}
	case errors.Is(err, domain.ErrCategoryExists):
		return http.StatusConflict, []string{"category already exists"}
	case errors.Is(err, domain.ErrMovieNotFound):
		return http.StatusNotFound, []string{"movie not found"}
	case errors.Is(err, domain.ErrMovieExists):
		return http.StatusConflict, []string{"movie already exists"}
	}

	// Unexpected error: log the real cause, return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, []string{"internal server error"}
}
