package handler

import (
	"github.com/labstack/echo/v4"

	"saukstas/internal/application/usecase/abstraction"
	"saukstas/internal/application/validation"
	"saukstas/internal/domain/model"
	"saukstas/internal/presentation"
)

type MediaHandler struct {
	media abstraction.Media
}

func NewMediaHandler(media abstraction.Media) *MediaHandler {
	return &MediaHandler{
		media: media,
	}
}

// HandleList handles GET /admin/media?category= requests.
func (h *MediaHandler) HandleList(c echo.Context) error {
	objects, err := h.media.List(c.Request().Context(), c.QueryParam("category"))
	if err != nil {
		return presentation.Fail(c, err)
	}

	return presentation.OK(c, objects)
}

// HandleUpload handles POST /admin/media/upload with a multipart image and an
// optional category field.
func (h *MediaHandler) HandleUpload(c echo.Context) error {
	if !isMultipart(c) {
		return presentation.Fail(c, validation.Errors{"multipart body with an image file is required"})
	}

	form, img, err := readForm(c, presentation.ImageField)
	if err != nil {
		return presentation.Fail(c, err)
	}
	if img == nil {
		return presentation.Fail(c, validation.Errors{"image is required"})
	}

	category := model.MediaCategory(form.Get("category"))
	if category == "" {
		category = model.MediaRecipes
	}

	stored, err := h.media.Store(c.Request().Context(), img, category)
	if err != nil {
		return presentation.Fail(c, err)
	}

	return presentation.Created(c, stored)
}

// HandleDelete handles DELETE /admin/media/* where the rest of the path is an
// object key or a bare filename.
func (h *MediaHandler) HandleDelete(c echo.Context) error {
	if err := h.media.Delete(c.Request().Context(), c.Param("*")); err != nil {
		return presentation.Fail(c, err)
	}

	return presentation.Message(c, "Image deleted")
}
