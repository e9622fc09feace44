package minio

import (
	"context"
	"io"

	"saukstas/internal/domain/entity"
)

type Uploader interface {
	Upload(ctx context.Context, key string, body io.Reader, size int64, contentType string) (entity.UploadResult, error)
	URL(key string) string
}
