package handler

import (
	"github.com/labstack/echo/v4"

	"saukstas/internal/application/usecase/abstraction"
	"saukstas/internal/presentation"
)

type CategoryHandler struct {
	categories abstraction.Categories
}

func NewCategoryHandler(categories abstraction.Categories) *CategoryHandler {
	return &CategoryHandler{
		categories: categories,
	}
}

// HandleList handles GET /categories requests from the cached counts.
func (h *CategoryHandler) HandleList(c echo.Context) error {
	return presentation.OK(c, h.categories.Counts())
}

// HandleRebuild handles POST /admin/categories/rebuild requests.
func (h *CategoryHandler) HandleRebuild(c echo.Context) error {
	counts, err := h.categories.Rebuild(c.Request().Context())
	if err != nil {
		return presentation.Fail(c, err)
	}

	return presentation.OK(c, counts)
}
