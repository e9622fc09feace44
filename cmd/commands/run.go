package commands

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"saukstas"
	"saukstas/config"
	"saukstas/internal/application/usecase"
	"saukstas/internal/domain/repository/attempts"
	"saukstas/internal/infrastructure/database"
	"saukstas/internal/infrastructure/mailer"
	"saukstas/internal/infrastructure/minio"
	"saukstas/internal/presentation/handler"
	"saukstas/internal/presentation/router"
	"saukstas/pkg/logger"

	attemptsInfra "saukstas/internal/infrastructure/attempts"
)

func HandleRun(args []string) {
	if len(args) < 3 {
		ExitOnError(errors.New("at least 1 arguments expected\nuse help command for more information"))
	}

	cfg, err := config.Load(args[2])
	if err != nil {
		ExitOnError(err)
	}

	logger.InitGlobalLogger(&cfg.Logger)

	logger.Info("running saukstas", "version", saukstas.StringVersion())

	db, err := database.Connect(cfg.DBConfig)
	if err != nil {
		ExitOnError(err)
	}
	defer func() {
		if err := db.Stop(); err != nil {
			logger.Error("couldn't stop db instance", "err", err)
		}
	}()

	recipeStore := database.NewRecipeStore(db)
	commentStore := database.NewCommentStore(db)
	subscriberStore := database.NewSubscriberStore(db)
	settingsStore := database.NewSettingsStore(db)
	userStore := database.NewUserStore(db)

	minIOClient, err := minio.New(&cfg.MinIOClient)
	if err != nil {
		ExitOnError(err)
	}
	if err := minIOClient.EnsureBucket(context.Background(), cfg.MinIOUploader.Bucket); err != nil {
		ExitOnError(fmt.Errorf("prepare bucket %s: %w", cfg.MinIOUploader.Bucket, err))
	}
	minIOUploader := minio.NewUploader(minIOClient.MinioClient, &cfg.MinIOUploader)
	minIORemover := minio.NewRemover(minIOClient.MinioClient, cfg.MinIOUploader.Bucket, &cfg.MinIORemover)
	minIOLister := minio.NewLister(minIOClient.MinioClient, minIOUploader, &cfg.MinIOUploader)

	attemptStore, closeAttempts := newAttemptStore(cfg.Attempts)
	defer closeAttempts()

	sender, err := mailer.New(cfg.Mailer)
	if err != nil {
		ExitOnError(err)
	}

	tokens := usecase.NewTokens(cfg.Auth.JWTSecret, time.Duration(cfg.Auth.TokenTTLInHours)*time.Hour)
	media := usecase.NewMediaStore(minIOUploader, minIORemover, minIOLister)
	categories := usecase.NewCategoryIndex(recipeStore)
	recipes := usecase.NewRecipeService(recipeStore, commentStore, media, categories)
	comments := usecase.NewCommentService(commentStore, recipeStore)
	subscribers := usecase.NewSubscriberService(subscriberStore, tokens)
	about := usecase.NewAboutService(settingsStore, media)
	dashboard := usecase.NewDashboard(recipeStore, commentStore, subscriberStore, comments, media)
	dispatcher := usecase.NewDispatcher(subscriberStore, recipeStore, sender, tokens, media, usecase.NewsletterConfig{
		SiteURL:   cfg.Newsletter.SiteURL,
		SendDelay: time.Duration(cfg.Newsletter.SendDelayInMS) * time.Millisecond,
	})
	auth := usecase.NewAuthenticator(userStore, attemptStore, tokens, usecase.AuthConfig{
		MaxAttempts: cfg.Auth.MaxAttempts,
		Lockout:     time.Duration(cfg.Auth.LockoutInMinutes) * time.Minute,
		SetupKey:    cfg.Auth.SetupKey,
	})

	if _, err := categories.Rebuild(context.Background()); err != nil {
		logger.Warn("initial category rebuild failed", "err", err)
	}

	e := router.New(router.Config{
		AllowedOrigins:     cfg.HTTP.AllowedOrigins,
		BodyLimit:          cfg.HTTP.BodyLimit,
		RateLimitPerMinute: cfg.HTTP.RateLimitPerMinute,
	}, router.Handlers{
		Auth:       auth,
		Recipes:    handler.NewRecipeHandler(recipes),
		Comments:   handler.NewCommentHandler(comments),
		Categories: handler.NewCategoryHandler(categories),
		About:      handler.NewAboutHandler(about),
		Login:      handler.NewAuthHandler(auth),
		Newsletter: handler.NewNewsletterHandler(subscribers, dispatcher),
		Dashboard:  handler.NewDashboardHandler(dashboard),
		Media:      handler.NewMediaHandler(media),
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.Info("listening", "address", cfg.HTTP.Address)
		if err := e.Start(cfg.HTTP.Address); err != nil && !errors.Is(err, http.ErrServerClosed) {
			ExitOnError(fmt.Errorf("shutting down server: %w", err))
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		logger.Error("graceful shutdown failed", "err", err)
	}
}

// newAttemptStore uses Redis when a URI is configured and process memory otherwise.
func newAttemptStore(cfg attemptsInfra.Config) (attempts.Store, func()) {
	if cfg.URI == "" {
		logger.Info("login attempts kept in memory")

		return attemptsInfra.NewMemoryStore(), func() {}
	}

	store, err := attemptsInfra.NewRedisStore(cfg)
	if err != nil {
		ExitOnError(fmt.Errorf("connect redis: %w", err))
	}

	return store, func() {
		if err := store.Close(); err != nil {
			logger.Error("couldn't close redis client", "err", err)
		}
	}
}
