package handler

import (
	"github.com/labstack/echo/v4"

	"saukstas/internal/application/usecase"
	"saukstas/internal/application/usecase/abstraction"
	"saukstas/internal/presentation"
)

type RecipeHandler struct {
	recipes abstraction.Recipes
}

func NewRecipeHandler(recipes abstraction.Recipes) *RecipeHandler {
	return &RecipeHandler{
		recipes: recipes,
	}
}

// HandleList handles GET /recipes requests. Only published recipes are listed.
func (h *RecipeHandler) HandleList(c echo.Context) error {
	return h.list(c, false)
}

// HandleAdminList handles GET /admin/recipes requests.
func (h *RecipeHandler) HandleAdminList(c echo.Context) error {
	return h.list(c, true)
}

func (h *RecipeHandler) list(c echo.Context, admin bool) error {
	page, err := h.recipes.List(c.Request().Context(), usecase.ListFilter{
		Page:     queryInt(c, "page"),
		Limit:    queryInt(c, "limit"),
		Category: c.QueryParam("category"),
		Status:   c.QueryParam("status"),
		Popular:  c.QueryParam("popular") == "true",
		Admin:    admin,
	})
	if err != nil {
		return presentation.Fail(c, err)
	}

	return presentation.OKWithMeta(c, page.Items, page.Meta)
}

// HandleGet handles GET /recipes/:id requests.
func (h *RecipeHandler) HandleGet(c echo.Context) error {
	return h.get(c, false)
}

func (h *RecipeHandler) HandleAdminGet(c echo.Context) error {
	return h.get(c, true)
}

func (h *RecipeHandler) get(c echo.Context, includeDrafts bool) error {
	r, err := h.recipes.Get(c.Request().Context(), c.Param(presentation.IDParam), includeDrafts)
	if err != nil {
		return presentation.Fail(c, err)
	}

	return presentation.OK(c, r)
}

// HandleCreate handles POST /admin/recipes with multipart fields and an optional image.
func (h *RecipeHandler) HandleCreate(c echo.Context) error {
	form, img, err := readForm(c, presentation.ImageField)
	if err != nil {
		return presentation.Fail(c, err)
	}

	r, err := h.recipes.Create(c.Request().Context(), form, img)
	if err != nil {
		return presentation.Fail(c, err)
	}

	return presentation.Created(c, r)
}

// HandleUpdate handles PUT /admin/recipes/:id. Omitted fields keep their stored values.
func (h *RecipeHandler) HandleUpdate(c echo.Context) error {
	form, img, err := readForm(c, presentation.ImageField)
	if err != nil {
		return presentation.Fail(c, err)
	}

	r, err := h.recipes.Update(c.Request().Context(), c.Param(presentation.IDParam), form, img)
	if err != nil {
		return presentation.Fail(c, err)
	}

	return presentation.OK(c, r)
}

func (h *RecipeHandler) HandleDelete(c echo.Context) error {
	if err := h.recipes.Delete(c.Request().Context(), c.Param(presentation.IDParam)); err != nil {
		return presentation.Fail(c, err)
	}

	return presentation.Message(c, "Recipe deleted")
}
