// Package inline keeps asset content base64 encoded inside the asset document.
package inline

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"io"

	"storefront/internal/domain/apperror"
	"storefront/internal/domain/entity"
	"storefront/internal/domain/model"
)

// MaxSize bounds inline content so that its base64 form plus the asset
// metadata stays under MongoDB's 16MB document limit.
const MaxSize = 10 << 20

type Store struct{}

func New() *Store {
	return &Store{}
}

func (*Store) Kind() model.StorageKind {
	return model.StorageInline
}

func (*Store) Put(_ context.Context, _, _ string, body io.Reader) (entity.StoredBlob, error) {
	raw, err := io.ReadAll(io.LimitReader(body, MaxSize+1))
	if err != nil {
		return entity.StoredBlob{}, fmt.Errorf("read error: %w", err)
	}

	if len(raw) > MaxSize {
		return entity.StoredBlob{}, apperror.Validationf("file",
			"file exceeds the %dMB limit of inline storage", MaxSize>>20)
	}

	return entity.StoredBlob{
		Data: base64.StdEncoding.EncodeToString(raw),
		Size: int64(len(raw)),
	}, nil
}

func (*Store) Open(_ context.Context, asset *model.Asset, offset, length int64) (io.ReadCloser, error) {
	raw, err := base64.StdEncoding.DecodeString(asset.Data)
	if err != nil {
		return nil, fmt.Errorf("corrupt inline data for %s: %w", asset.ID, err)
	}

	size := int64(len(raw))
	if offset < 0 || offset > size {
		return nil, fmt.Errorf("offset %d outside %d bytes", offset, size)
	}

	end := size
	if length >= 0 && offset+length < size {
		end = offset + length
	}

	return io.NopCloser(bytes.NewReader(raw[offset:end])), nil
}

// Remove is a no-op; the content goes away with the document.
func (*Store) Remove(context.Context, *model.Asset) error {
	return nil
}
