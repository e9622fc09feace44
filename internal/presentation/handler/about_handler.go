package handler

import (
	"encoding/json"

	"github.com/labstack/echo/v4"

	"saukstas/internal/application/usecase/abstraction"
	"saukstas/internal/application/validation"
	"saukstas/internal/domain/model"
	"saukstas/internal/presentation"
)

type AboutHandler struct {
	about abstraction.About
}

func NewAboutHandler(about abstraction.About) *AboutHandler {
	return &AboutHandler{
		about: about,
	}
}

// HandleGet handles GET /api/about and GET /admin/about requests.
func (h *AboutHandler) HandleGet(c echo.Context) error {
	page, err := h.about.Get(c.Request().Context())
	if err != nil {
		return presentation.Fail(c, err)
	}

	return presentation.OK(c, page)
}

// HandleUpdate handles PUT /admin/about. A multipart body carries the page as
// JSON in the payload field next to the image and sidebar_image files.
func (h *AboutHandler) HandleUpdate(c echo.Context) error {
	var (
		page           model.AboutPage
		image, sidebar *validation.Image
	)

	if isMultipart(c) {
		mf, err := c.MultipartForm()
		if err != nil {
			return presentation.Fail(c, validation.Errors{"malformed multipart body"})
		}
		if payload := mf.Value[presentation.PayloadField]; len(payload) > 0 {
			if err := json.Unmarshal([]byte(payload[0]), &page); err != nil {
				return presentation.Fail(c, errBadJSON)
			}
		}
		if image, err = readImage(mf, presentation.ImageField); err != nil {
			return presentation.Fail(c, err)
		}
		if sidebar, err = readImage(mf, presentation.SidebarField); err != nil {
			return presentation.Fail(c, err)
		}
	} else if err := json.NewDecoder(c.Request().Body).Decode(&page); err != nil {
		return presentation.Fail(c, errBadJSON)
	}

	saved, err := h.about.Update(c.Request().Context(), page, image, sidebar)
	if err != nil {
		return presentation.Fail(c, err)
	}

	return presentation.OK(c, saved)
}
