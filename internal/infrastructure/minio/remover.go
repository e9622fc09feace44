package minio

import (
	"context"
	"time"

	"github.com/minio/minio-go/v7"

	"saukstas/pkg/logger"
)

type Remover struct {
	minioClient *minio.Client
	bucket      string
	cfg         *RemoverConfig
}

func NewRemover(minioClient *minio.Client, bucket string, cfg *RemoverConfig) *Remover {
	return &Remover{
		minioClient: minioClient,
		bucket:      bucket,
		cfg:         cfg,
	}
}

// Remove deletes an object. Removing a missing key is not an error.
func (r *Remover) Remove(ctx context.Context, key string) error {
	ctx, cancel := context.WithTimeout(ctx, time.Duration(r.cfg.Timeout)*time.Millisecond)
	defer cancel()

	err := r.minioClient.RemoveObject(ctx, r.bucket, key, minio.RemoveObjectOptions{})
	if err != nil {
		if minio.ToErrorResponse(err).Code == "NoSuchKey" {
			logger.Warn("object already gone", "key", key)

			return nil
		}
		logger.Error("failed to remove object", "key", key, "err", err)

		return err
	}

	return nil
}
