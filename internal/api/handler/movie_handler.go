package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/cinemateca/catalog-api/internal/core/ports"
)

// MovieHandler handles HTTP requests for the movie catalog.
type MovieHandler struct {
	service ports.MovieService
}

func NewMovieHandler(service ports.MovieService) *MovieHandler {
	return &MovieHandler{service: service}
}

type movieRequest struct {
	Name            string `json:"name"             validate:"required,min=1,max=200"`
	Description     string `json:"description"      validate:"required"`
	DurationMinutes int    `json:"duration_minutes" validate:"required,gt=0"`
	Classification  string `json:"classification"   validate:"required,oneof=atp +7 +13 +16 +18"`
	ImageURL        string `json:"image_url,omitempty"`
	CategoryID      string `json:"category_id"      validate:"required"`
}

func (r movieRequest) toInput() ports.MovieInput {
	return ports.MovieInput{
		Name:            r.Name,
		Description:     r.Description,
		DurationMinutes: r.DurationMinutes,
		Classification:  r.Classification,
		ImageURL:        r.ImageURL,
		CategoryID:      r.CategoryID,
	}
}

// List returns all movies.
//
// @Summary      List movies
// @Tags         peliculas
// @Produce      json
// @Success      200  {array}  domain.Movie
// @Router       /peliculas [get]
func (h *MovieHandler) List(c echo.Context) error {
	movies, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, movies)
}

// Get returns a single movie.
//
// @Summary      Get a movie by ID
// @Tags         peliculas
// @Produce      json
// @Param        id   path      string  true  "Movie ID"
// @Success      200  {object}  domain.Movie
// @Failure      404  {object}  map[string]any
// @Router       /peliculas/{id} [get]
func (h *MovieHandler) Get(c echo.Context) error {
	movie, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, movie)
}

// ListByCategory returns the movies belonging to one category.
//
// @Summary      List movies in a category
// @Tags         peliculas
// @Produce      json
// @Param        categoriaId  path      string  true  "Category ID"
// @Success      200          {array}   domain.Movie
// @Failure      404          {object}  map[string]any
// @Router       /peliculas/categoria/{categoriaId} [get]
func (h *MovieHandler) ListByCategory(c echo.Context) error {
	movies, err := h.service.ListByCategory(c.Request().Context(), c.Param("categoriaId"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, movies)
}

// Search matches movies by name or description substring.
//
// @Summary      Search movies
// @Tags         peliculas
// @Produce      json
// @Param        nombre  query     string  false  "Substring to match against name or description"
// @Success      200     {array}   domain.Movie
// @Router       /peliculas/buscar [get]
func (h *MovieHandler) Search(c echo.Context) error {
	movies, err := h.service.Search(c.Request().Context(), c.QueryParam("nombre"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, movies)
}

// Create adds a new movie. Admin only.
//
// @Summary      Create a movie
// @Tags         peliculas
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      movieRequest  true  "Movie details"
// @Success      201   {object}  domain.Movie
// @Failure      400   {object}  map[string]any
// @Failure      404   {object}  map[string]any
// @Failure      409   {object}  map[string]any
// @Router       /peliculas [post]
func (h *MovieHandler) Create(c echo.Context) error {
	var req movieRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	movie, err := h.service.Create(c.Request().Context(), req.toInput())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, movie)
}

// Update replaces the writable fields of a movie. Admin only.
//
// @Summary      Update a movie
// @Tags         peliculas
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string        true  "Movie ID"
// @Param        body  body      movieRequest  true  "Movie details"
// @Success      200   {object}  domain.Movie
// @Failure      400   {object}  map[string]any
// @Failure      404   {object}  map[string]any
// @Router       /peliculas/{id} [patch]
func (h *MovieHandler) Update(c echo.Context) error {
	var req movieRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	movie, err := h.service.Update(c.Request().Context(), c.Param("id"), req.toInput())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, movie)
}

// Delete removes a movie. Admin only.
//
// @Summary      Delete a movie
// @Tags         peliculas
// @Security     BearerAuth
// @Param        id  path  string  true  "Movie ID"
// @Success      204
// @Failure      404  {object}  map[string]any
// @Router       /peliculas/{id} [delete]
func (h *MovieHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
