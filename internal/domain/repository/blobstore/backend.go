package blobstore

import (
	"context"
	"io"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/model"
)

// Backend stores asset content. Open returns a reader positioned at offset
// that yields at most length bytes.
type Backend interface {
	Kind() model.StorageKind
	Put(ctx context.Context, key, contentType string, body io.Reader) (entity.StoredBlob, error)
	Open(ctx context.Context, asset *model.Asset, offset, length int64) (io.ReadCloser, error)
	Remove(ctx context.Context, asset *model.Asset) error
}
