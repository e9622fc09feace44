package handler

import (
	"net/http"
	"net/url"

	"github.com/labstack/echo/v4"

	"saukstas/internal/application/usecase/abstraction"
	"saukstas/internal/presentation"
)

type NewsletterHandler struct {
	subscribers abstraction.Subscribers
	newsletter  abstraction.Newsletter
}

func NewNewsletterHandler(subscribers abstraction.Subscribers, newsletter abstraction.Newsletter) *NewsletterHandler {
	return &NewsletterHandler{
		subscribers: subscribers,
		newsletter:  newsletter,
	}
}

type subscribeRequest struct {
	Email string `json:"email" form:"email"`
}

type sendRequest struct {
	Subject string `json:"subject" form:"subject"`
	Content string `json:"content" form:"content"`
}

type testRequest struct {
	Email    string `json:"email" form:"email"`
	RecipeID string `json:"recipeId" form:"recipeId"`
}

type importRequest struct {
	Emails []string `json:"emails" form:"emails"`
}

// HandleSubscribe handles POST /api/newsletter/subscribe requests.
func (h *NewsletterHandler) HandleSubscribe(c echo.Context) error {
	var req subscribeRequest
	if err := bind(c, &req); err != nil {
		return presentation.Fail(c, err)
	}

	out, err := h.subscribers.Subscribe(c.Request().Context(), req.Email)
	if err != nil {
		return presentation.Fail(c, err)
	}

	return c.JSON(http.StatusOK, out)
}

// HandleUnsubscribe handles GET /api/newsletter/unsubscribe?email=&token= requests.
// An unknown address or a bad token is a soft failure with status 200.
func (h *NewsletterHandler) HandleUnsubscribe(c echo.Context) error {
	out, err := h.subscribers.Unsubscribe(c.Request().Context(), c.QueryParam("email"), c.QueryParam("token"))
	if err != nil {
		return presentation.Fail(c, err)
	}

	return c.JSON(http.StatusOK, out)
}

func (h *NewsletterHandler) HandleListSubscribers(c echo.Context) error {
	subs, err := h.subscribers.List(c.Request().Context())
	if err != nil {
		return presentation.Fail(c, err)
	}

	return presentation.OK(c, subs)
}

// HandleRemoveSubscriber handles DELETE /admin/newsletter/subscribers/:email requests.
func (h *NewsletterHandler) HandleRemoveSubscriber(c echo.Context) error {
	email, err := url.PathUnescape(c.Param(presentation.EmailParam))
	if err != nil {
		email = c.Param(presentation.EmailParam)
	}

	if err := h.subscribers.Remove(c.Request().Context(), email); err != nil {
		return presentation.Fail(c, err)
	}

	return presentation.Message(c, "Subscriber removed")
}

// HandleSend handles POST /admin/newsletter/send requests. The response waits
// for the whole batch.
func (h *NewsletterHandler) HandleSend(c echo.Context) error {
	var req sendRequest
	if err := bind(c, &req); err != nil {
		return presentation.Fail(c, err)
	}

	res, err := h.newsletter.Send(c.Request().Context(), req.Subject, req.Content)
	if err != nil {
		return presentation.Fail(c, err)
	}

	return c.JSON(http.StatusOK, presentation.Envelope{
		Success: true,
		Data:    res,
		Message: "Newsletter sent",
	})
}

func (h *NewsletterHandler) HandleTest(c echo.Context) error {
	var req testRequest
	if err := bind(c, &req); err != nil {
		return presentation.Fail(c, err)
	}

	if err := h.newsletter.SendTest(c.Request().Context(), req.Email, req.RecipeID); err != nil {
		return presentation.Fail(c, err)
	}

	return presentation.Message(c, "Test email sent")
}

func (h *NewsletterHandler) HandleImport(c echo.Context) error {
	var req importRequest
	if err := bind(c, &req); err != nil {
		return presentation.Fail(c, err)
	}

	n, err := h.subscribers.Import(c.Request().Context(), req.Emails)
	if err != nil {
		return presentation.Fail(c, err)
	}

	return presentation.OK(c, map[string]int{"imported": n})
}
