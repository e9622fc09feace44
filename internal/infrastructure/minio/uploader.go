package minio

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/minio/minio-go/v7"

	"saukstas/internal/domain/entity"
	"saukstas/pkg/logger"
)

type Uploader struct {
	minioClient *minio.Client
	cfg         *UploaderConfig
}

func NewUploader(minioClient *minio.Client, config *UploaderConfig) *Uploader {
	return &Uploader{
		minioClient: minioClient,
		cfg:         config,
	}
}

func (u *Uploader) Upload(ctx context.Context, key string, body io.Reader, size int64,
	contentType string,
) (entity.UploadResult, error) {
	ctx, cancel := context.WithTimeout(ctx, time.Duration(u.cfg.Timeout)*time.Millisecond)
	defer cancel()

	info, err := u.minioClient.PutObject(ctx, u.cfg.Bucket, key, body, size, minio.PutObjectOptions{
		ContentType:  contentType,
		CacheControl: "public, max-age=31536000",
	})
	if err != nil {
		logger.Error("failed to upload object", "key", key, "err", err)

		return entity.UploadResult{}, fmt.Errorf("upload %s: %w", key, err)
	}

	return entity.UploadResult{
		Key:         key,
		URL:         u.URL(key),
		Size:        info.Size,
		ContentType: contentType,
	}, nil
}

// URL is the public address of an object key.
func (u *Uploader) URL(key string) string {
	return strings.TrimRight(u.cfg.PublicURL, "/") + "/" + strings.TrimLeft(key, "/")
}
