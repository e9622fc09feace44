package minio

import (
	"context"
	"fmt"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"saukstas/pkg/logger"
)

type Client struct {
	MinioClient *minio.Client
}

func New(cfg *ClientConfig) (*Client, error) {
	logger.Info("connecting to minio", "endpoint", cfg.Endpoint)

	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.Secure,
	})
	if err != nil {
		logger.Error("failed to initialize minio client", "err", err)

		return nil, err
	}

	return &Client{
		MinioClient: client,
	}, nil
}

// EnsureBucket creates the bucket when missing and makes its objects publicly readable.
func (c *Client) EnsureBucket(ctx context.Context, bucket string) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	exists, err := c.MinioClient.BucketExists(ctx, bucket)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}

	if err := c.MinioClient.MakeBucket(ctx, bucket, minio.MakeBucketOptions{}); err != nil {
		return err
	}

	policy := fmt.Sprintf(`{"Version":"2012-10-17","Statement":[{"Effect":"Allow","Principal":{"AWS":["*"]},`+
		`"Action":["s3:GetObject"],"Resource":["arn:aws:s3:::%s/*"]}]}`, bucket)

	return c.MinioClient.SetBucketPolicy(ctx, bucket, policy)
}
