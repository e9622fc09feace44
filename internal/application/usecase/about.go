package usecase

import (
	"context"
	"errors"
	"time"

	"saukstas/internal/application/validation"
	"saukstas/internal/domain/model"
	"saukstas/internal/domain/repository/database"
	"saukstas/pkg/logger"
)

type AboutService struct {
	settings database.SettingsRepository
	media    *MediaStore
	now      func() time.Time
}

func NewAboutService(settings database.SettingsRepository, media *MediaStore) *AboutService {
	return &AboutService{
		settings: settings,
		media:    media,
		now:      time.Now,
	}
}

// Get returns the saved page, or the built-in default before the first save.
func (s *AboutService) Get(ctx context.Context) (model.AboutPage, error) {
	page, err := s.load(ctx)
	if err != nil {
		return model.AboutPage{}, err
	}

	return s.withURLs(page), nil
}

func (s *AboutService) load(ctx context.Context) (model.AboutPage, error) {
	page, err := s.settings.GetAbout(ctx)
	if errors.Is(err, database.ErrNotFound) {
		return model.DefaultAboutPage(), nil
	}
	if err != nil {
		return model.AboutPage{}, upstream("failed to load about page", err)
	}

	return *page, nil
}

// Update replaces the page. New files replace the stored images; an empty image
// reference in the page removes the stored one.
func (s *AboutService) Update(ctx context.Context, in model.AboutPage, image, sidebar *validation.Image) (model.AboutPage, error) {
	page, err := validation.About(in)
	if err != nil {
		return model.AboutPage{}, err
	}

	current, err := s.load(ctx)
	if err != nil {
		return model.AboutPage{}, err
	}

	var stored []string
	page.Image, err = s.swap(ctx, current.Image, page.Image, image, &stored)
	if err != nil {
		return model.AboutPage{}, err
	}
	page.SidebarImage, err = s.swap(ctx, current.SidebarImage, page.SidebarImage, sidebar, &stored)
	if err != nil {
		for _, key := range stored {
			s.media.discard(ctx, key)
		}

		return model.AboutPage{}, err
	}

	now := s.now().UTC()
	page.UpdatedAt = &now

	if err := s.settings.PutAbout(ctx, &page); err != nil {
		for _, key := range stored {
			s.media.discard(ctx, key)
		}

		return model.AboutPage{}, upstream("failed to save about page", err)
	}

	for _, old := range []string{current.Image, current.SidebarImage} {
		if old != "" && old != page.Image && old != page.SidebarImage {
			s.media.discard(ctx, old)
		}
	}

	logger.Info("about page updated")

	return s.withURLs(page), nil
}

// swap decides the image key to keep. Uploads are recorded in stored for rollback.
func (s *AboutService) swap(ctx context.Context, current, requested string, file *validation.Image,
	stored *[]string,
) (string, error) {
	if file != nil {
		res, err := s.media.Store(ctx, file, model.MediaAbout)
		if err != nil {
			return "", err
		}
		*stored = append(*stored, res.Path)

		return res.Path, nil
	}
	if requested == "" {
		return "", nil
	}

	return current, nil
}

func (s *AboutService) withURLs(page model.AboutPage) model.AboutPage {
	page.ImageURL = s.media.URL(page.Image)
	page.SidebarImageURL = s.media.URL(page.SidebarImage)

	return page
}
