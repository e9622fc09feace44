package usecase

import (
	"bytes"
	"context"
	"path"
	"strings"

	"saukstas/internal/application/validation"
	"saukstas/internal/domain/dto"
	"saukstas/internal/domain/model"
	"saukstas/internal/domain/repository/minio"
	"saukstas/pkg/logger"
	"saukstas/pkg/utils"
)

// MediaStore names, stores and deletes image blobs under recipes/ and about/.
type MediaStore struct {
	uploader minio.Uploader
	remover  minio.Remover
	lister   minio.Lister
	names    *utils.FilenameGenerator
}

func NewMediaStore(uploader minio.Uploader, remover minio.Remover, lister minio.Lister) *MediaStore {
	return &MediaStore{
		uploader: uploader,
		remover:  remover,
		lister:   lister,
		names:    utils.NewFilenameGenerator(),
	}
}

func (m *MediaStore) Store(ctx context.Context, img *validation.Image, category model.MediaCategory) (dto.StoredFile, error) {
	if !category.Valid() {
		return dto.StoredFile{}, validation.Errors{"unknown media category " + string(category)}
	}

	filename := m.names.Next(img.MIME)
	key := string(category) + "/" + filename

	res, err := m.uploader.Upload(ctx, key, bytes.NewReader(img.Data), img.Size(), img.MIME)
	if err != nil {
		return dto.StoredFile{}, upstream("failed to store image", err, "key", key)
	}

	return dto.StoredFile{Filename: filename, Path: res.Key, URL: res.URL}, nil
}

// Delete removes a blob by object key or bare filename. A bare filename is
// looked up under recipes/. Missing blobs are not an error.
func (m *MediaStore) Delete(ctx context.Context, pathOrFilename string) error {
	key, err := objectKey(pathOrFilename)
	if err != nil {
		return err
	}

	if err := m.remover.Remove(ctx, key); err != nil {
		return upstream("failed to delete image", err, "key", key)
	}

	logger.Debug("image deleted", "key", key)

	return nil
}

// discard deletes a blob that is no longer referenced, logging instead of failing.
func (m *MediaStore) discard(ctx context.Context, key string) {
	if key == "" {
		return
	}
	if err := m.Delete(ctx, key); err != nil {
		logger.Warn("orphaned image left in storage", "key", key, "err", err)
	}
}

func (m *MediaStore) List(ctx context.Context, category string) ([]model.MediaObject, error) {
	prefix := ""
	if category != "" {
		if !model.MediaCategory(category).Valid() {
			return nil, validation.Errors{"unknown media category " + category}
		}
		prefix = category + "/"
	}

	objects, err := m.lister.List(ctx, prefix)
	if err != nil {
		return nil, upstream("failed to list images", err)
	}

	return objects, nil
}

func (m *MediaStore) URL(key string) string {
	if key == "" {
		return ""
	}

	return m.uploader.URL(key)
}

func objectKey(pathOrFilename string) (string, error) {
	p := strings.TrimPrefix(strings.TrimSpace(pathOrFilename), "/")
	if p == "" || strings.Contains(p, "..") || strings.Contains(p, "\\") {
		return "", validation.Errors{"invalid media path"}
	}

	if !strings.Contains(p, "/") {
		return string(model.MediaRecipes) + "/" + p, nil
	}

	dir, file := path.Split(p)
	category := model.MediaCategory(strings.TrimSuffix(dir, "/"))
	if !category.Valid() || file == "" {
		return "", validation.Errors{"invalid media path"}
	}

	return p, nil
}
