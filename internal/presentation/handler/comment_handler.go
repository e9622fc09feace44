package handler

import (
	"github.com/labstack/echo/v4"

	"saukstas/internal/application/usecase/abstraction"
	"saukstas/internal/presentation"
)

type CommentHandler struct {
	comments abstraction.Comments
}

func NewCommentHandler(comments abstraction.Comments) *CommentHandler {
	return &CommentHandler{
		comments: comments,
	}
}

// HandleList handles GET /recipes/:id/comments requests.
func (h *CommentHandler) HandleList(c echo.Context) error {
	comments, err := h.comments.List(c.Request().Context(), c.Param(presentation.IDParam))
	if err != nil {
		return presentation.Fail(c, err)
	}

	return presentation.OK(c, comments)
}

// HandleAdd handles POST /recipes/:id/comments requests.
func (h *CommentHandler) HandleAdd(c echo.Context) error {
	form, _, err := readForm(c, "")
	if err != nil {
		return presentation.Fail(c, err)
	}

	comment, err := h.comments.Add(c.Request().Context(), c.Param(presentation.IDParam), form)
	if err != nil {
		return presentation.Fail(c, err)
	}

	return presentation.Created(c, comment)
}

// HandleListAll handles GET /admin/comments?status= requests.
func (h *CommentHandler) HandleListAll(c echo.Context) error {
	comments, err := h.comments.ListAll(c.Request().Context(), c.QueryParam("status"))
	if err != nil {
		return presentation.Fail(c, err)
	}

	return presentation.OK(c, comments)
}

func (h *CommentHandler) HandleDelete(c echo.Context) error {
	err := h.comments.Delete(c.Request().Context(), c.Param(presentation.IDParam), c.Param(presentation.CommentIDParam))
	if err != nil {
		return presentation.Fail(c, err)
	}

	return presentation.Message(c, "Comment deleted")
}

func (h *CommentHandler) HandleApprove(c echo.Context) error {
	err := h.comments.Approve(c.Request().Context(), c.Param(presentation.IDParam), c.Param(presentation.CommentIDParam))
	if err != nil {
		return presentation.Fail(c, err)
	}

	return presentation.Message(c, "Comment approved")
}
