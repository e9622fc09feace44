package minio

import (
	"context"
	"path"
	"sort"
	"strings"
	"time"

	"github.com/minio/minio-go/v7"

	"saukstas/internal/domain/model"
)

type Lister struct {
	minioClient *minio.Client
	uploader    *Uploader
	cfg         *UploaderConfig
}

func NewLister(minioClient *minio.Client, uploader *Uploader, cfg *UploaderConfig) *Lister {
	return &Lister{
		minioClient: minioClient,
		uploader:    uploader,
		cfg:         cfg,
	}
}

// List returns objects under prefix, newest first.
func (l *Lister) List(ctx context.Context, prefix string) ([]model.MediaObject, error) {
	ctx, cancel := context.WithTimeout(ctx, time.Duration(l.cfg.Timeout)*time.Millisecond)
	defer cancel()

	objects := make([]model.MediaObject, 0)
	for obj := range l.minioClient.ListObjects(ctx, l.cfg.Bucket, minio.ListObjectsOptions{
		Prefix:    prefix,
		Recursive: true,
	}) {
		if obj.Err != nil {
			return nil, obj.Err
		}

		category, _, _ := strings.Cut(obj.Key, "/")
		objects = append(objects, model.MediaObject{
			Path:         obj.Key,
			Filename:     path.Base(obj.Key),
			Category:     model.MediaCategory(category),
			URL:          l.uploader.URL(obj.Key),
			Size:         obj.Size,
			ContentType:  obj.ContentType,
			LastModified: obj.LastModified,
		})
	}

	sort.Slice(objects, func(i, j int) bool {
		return objects[i].LastModified.After(objects[j].LastModified)
	})

	return objects, nil
}
