package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/cinemateca/catalog-api/internal/core/ports"
)

// CategoryHandler handles HTTP requests for category CRUD.
type CategoryHandler struct {
	service ports.CategoryService
}

func NewCategoryHandler(service ports.CategoryService) *CategoryHandler {
	return &CategoryHandler{service: service}
}

type categoryRequest struct {
	// ID is optional in the body; when present on update it must match the
	// path parameter.
	ID   string `json:"id,omitempty"`
	Name string `json:"name" validate:"required,min=1,max=100"`
}

// List returns all categories.
//
// @Summary      List categories
// @Tags         categorias
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  domain.Category
// @Router       /categorias [get]
func (h *CategoryHandler) List(c echo.Context) error {
	categories, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, categories)
}

// Get returns a single category.
//
// @Summary      Get a category by ID
// @Tags         categorias
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Category ID"
// @Success      200  {object}  domain.Category
// @Failure      404  {object}  map[string]any
// @Router       /categorias/{id} [get]
func (h *CategoryHandler) Get(c echo.Context) error {
	category, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, category)
}

// Create adds a new category. Admin only.
//
// @Summary      Create a category
// @Tags         categorias
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      categoryRequest  true  "Category details"
// @Success      201   {object}  domain.Category
// @Failure      400   {object}  map[string]any
// @Failure      409   {object}  map[string]any
// @Router       /categorias [post]
func (h *CategoryHandler) Create(c echo.Context) error {
	var req categoryRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	category, err := h.service.Create(c.Request().Context(), req.Name)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, category)
}

// Update renames a category. Admin only. Serves both PATCH and PUT.
//
// @Summary      Update a category
// @Tags         categorias
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string           true  "Category ID"
// @Param        body  body      categoryRequest  true  "Category details"
// @Success      200   {object}  domain.Category
// @Failure      400   {object}  map[string]any
// @Failure      404   {object}  map[string]any
// @Router       /categorias/{id} [patch]
func (h *CategoryHandler) Update(c echo.Context) error {
	var req categoryRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	id := c.Param("id")
	if req.ID != "" && req.ID != id {
		return echo.NewHTTPError(http.StatusBadRequest, "body id does not match path id")
	}

	category, err := h.service.Update(c.Request().Context(), id, req.Name)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, category)
}

// Delete removes a category. Admin only.
//
// @Summary      Delete a category
// @Tags         categorias
// @Security     BearerAuth
// @Param        id  path  string  true  "Category ID"
// @Success      204
// @Failure      404  {object}  map[string]any
// @Router       /categorias/{id} [delete]
func (h *CategoryHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
