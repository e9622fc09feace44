package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"saukstas/internal/application/usecase"
	"saukstas/internal/application/usecase/abstraction"
	"saukstas/internal/domain/model"
	"saukstas/internal/presentation"
)

type AuthHandler struct {
	auth abstraction.Auth
}

func NewAuthHandler(auth abstraction.Auth) *AuthHandler {
	return &AuthHandler{
		auth: auth,
	}
}

type loginRequest struct {
	Username string `json:"username" form:"username"`
	Email    string `json:"email" form:"email"`
	Password string `json:"password" form:"password"`
}

type setupRequest struct {
	SetupKey string `json:"setup_key" form:"setup_key"`
	Username string `json:"username" form:"username"`
	Email    string `json:"email" form:"email"`
	Password string `json:"password" form:"password"`
}

type userView struct {
	ID        string     `json:"id"`
	Username  string     `json:"username"`
	Email     string     `json:"email,omitempty"`
	Role      string     `json:"role"`
	LastLogin *time.Time `json:"last_login,omitempty"`
}

type loginResponse struct {
	Success   bool      `json:"success"`
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
	User      userView  `json:"user"`
}

type verifyResponse struct {
	Success bool     `json:"success"`
	User    userView `json:"user"`
}

func viewOf(u *model.User) userView {
	return userView{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		Role:      u.Role,
		LastLogin: u.LastLogin,
	}
}

// HandleLogin handles POST /auth/login. The identity is the username or the email.
func (h *AuthHandler) HandleLogin(c echo.Context) error {
	var req loginRequest
	if err := bind(c, &req); err != nil {
		return presentation.Fail(c, err)
	}

	identity := req.Username
	if identity == "" {
		identity = req.Email
	}

	res, err := h.auth.Login(c.Request().Context(), identity, req.Password)
	if err != nil {
		return presentation.Fail(c, err)
	}

	return c.JSON(http.StatusOK, loginResponse{
		Success:   true,
		Token:     res.Token,
		ExpiresAt: res.ExpiresAt,
		User:      viewOf(res.User),
	})
}

// HandleVerify handles GET /auth/verify behind the bearer middleware.
func (h *AuthHandler) HandleVerify(c echo.Context) error {
	user, ok := c.Get(presentation.UserKey).(*model.User)
	if !ok {
		return presentation.Fail(c, usecase.ErrUnauthorized)
	}

	return c.JSON(http.StatusOK, verifyResponse{Success: true, User: viewOf(user)})
}

// HandleSetup handles POST /auth/setup, the one-time admin creation.
func (h *AuthHandler) HandleSetup(c echo.Context) error {
	var req setupRequest
	if err := bind(c, &req); err != nil {
		return presentation.Fail(c, err)
	}

	user, err := h.auth.SetupAdmin(c.Request().Context(), usecase.SetupInput{
		SetupKey: req.SetupKey,
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return presentation.Fail(c, err)
	}

	return presentation.Created(c, viewOf(user))
}
