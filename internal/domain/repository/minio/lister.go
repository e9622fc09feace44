package minio

import (
	"context"

	"saukstas/internal/domain/model"
)

type Lister interface {
	List(ctx context.Context, prefix string) ([]model.MediaObject, error)
}
