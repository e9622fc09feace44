package router

import (
	"net/http"

	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"

	"saukstas/internal/application/usecase/abstraction"
	"saukstas/internal/presentation"
	"saukstas/internal/presentation/handler"
	"saukstas/internal/presentation/middleware"
)

type Config struct {
	AllowedOrigins     []string
	BodyLimit          string
	RateLimitPerMinute int
}

type Handlers struct {
	Auth       abstraction.Auth
	Recipes    *handler.RecipeHandler
	Comments   *handler.CommentHandler
	Categories *handler.CategoryHandler
	About      *handler.AboutHandler
	Login      *handler.AuthHandler
	Newsletter *handler.NewsletterHandler
	Dashboard  *handler.DashboardHandler
	Media      *handler.MediaHandler
}

// New builds the HTTP surface. Public routes are served both bare and under /api.
func New(cfg Config, h Handlers) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = presentation.ErrorHandler

	e.Use(echoMiddleware.CORSWithConfig(echoMiddleware.CORSConfig{
		AllowOrigins: cfg.AllowedOrigins,
		AllowHeaders: []string{echo.HeaderAuthorization, echo.HeaderContentType, echo.HeaderContentLength},
		AllowMethods: []string{http.MethodGet, http.MethodPut, http.MethodPost,
			http.MethodDelete, http.MethodHead, http.MethodOptions},
		ExposeHeaders: []string{presentation.RetryAfter},
		MaxAge:        86400,
	}))
	e.Use(middleware.RequestLogger())
	e.Use(echoMiddleware.Recover())
	e.Use(echoMiddleware.Secure())
	e.Use(echoMiddleware.BodyLimit(cfg.BodyLimit))
	e.Use(middleware.RateLimit(cfg.RateLimitPerMinute))

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "OK")
	})

	bearer := middleware.AuthMiddleware(h.Auth)

	for _, g := range []*echo.Group{e.Group(""), e.Group("/api")} {
		g.GET("/recipes", h.Recipes.HandleList)
		g.GET("/recipes/:id", h.Recipes.HandleGet)
		g.GET("/recipes/:id/comments", h.Comments.HandleList)
		g.POST("/recipes/:id/comments", h.Comments.HandleAdd)
		g.GET("/categories", h.Categories.HandleList)
		g.GET("/about", h.About.HandleGet)

		g.POST("/newsletter/subscribe", h.Newsletter.HandleSubscribe)
		g.GET("/newsletter/unsubscribe", h.Newsletter.HandleUnsubscribe)

		g.POST("/auth/login", h.Login.HandleLogin)
		g.GET("/auth/verify", h.Login.HandleVerify, bearer)
		g.POST("/auth/setup", h.Login.HandleSetup)
	}

	admin := e.Group("/admin", bearer)

	admin.GET("/dashboard/stats", h.Dashboard.HandleStats)

	admin.GET("/recipes", h.Recipes.HandleAdminList)
	admin.GET("/recipes/:id", h.Recipes.HandleAdminGet)
	admin.POST("/recipes", h.Recipes.HandleCreate)
	admin.PUT("/recipes/:id", h.Recipes.HandleUpdate)
	admin.DELETE("/recipes/:id", h.Recipes.HandleDelete)

	admin.GET("/comments", h.Comments.HandleListAll)
	admin.DELETE("/recipes/:id/comments/:commentId", h.Comments.HandleDelete)
	admin.PUT("/recipes/:id/comments/:commentId/approve", h.Comments.HandleApprove)

	admin.POST("/categories/rebuild", h.Categories.HandleRebuild)

	admin.GET("/about", h.About.HandleGet)
	admin.PUT("/about", h.About.HandleUpdate)

	admin.GET("/media", h.Media.HandleList)
	admin.POST("/media/upload", h.Media.HandleUpload)
	admin.DELETE("/media/*", h.Media.HandleDelete)

	admin.GET("/newsletter/subscribers", h.Newsletter.HandleListSubscribers)
	admin.DELETE("/newsletter/subscribers/:email", h.Newsletter.HandleRemoveSubscriber)
	admin.POST("/newsletter/send", h.Newsletter.HandleSend)
	admin.POST("/newsletter/test", h.Newsletter.HandleTest)
	admin.POST("/newsletter/import", h.Newsletter.HandleImport)

	return e
}
