package minio

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/minio/minio-go/v7"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/model"
	"storefront/pkg/logger"
)

// Store keeps asset content as objects in one bucket.
type Store struct {
	minioClient *minio.Client
	cfg         BucketConfig
}

func NewStore(minioClient *minio.Client, cfg BucketConfig) *Store {
	return &Store{
		minioClient: minioClient,
		cfg:         cfg,
	}
}

func (*Store) Kind() model.StorageKind {
	return model.StorageMinIO
}

func (s *Store) Put(ctx context.Context, key, contentType string, body io.Reader) (entity.StoredBlob, error) {
	ctx, cancel := context.WithTimeout(ctx, time.Duration(s.cfg.Timeout)*time.Millisecond)
	defer cancel()

	info, err := s.minioClient.PutObject(ctx, s.cfg.Bucket, key, body, -1, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		logger.Error("failed to upload object", "object", key, "err", err)
		s.cleanup(key)

		return entity.StoredBlob{}, fmt.Errorf("object upload failed: %w", err)
	}

	return entity.StoredBlob{
		Location: key,
		Size:     info.Size,
	}, nil
}

// Open reads the object. The request context bounds the read, not the
// configured timeout, since streams may outlive it.
func (s *Store) Open(ctx context.Context, asset *model.Asset, offset, length int64) (io.ReadCloser, error) {
	opts := minio.GetObjectOptions{}

	// SetRange(0, 0) means the whole object, so the first byte alone is
	// served by limiting the reader instead.
	var err error
	switch {
	case length > 0 && offset+length-1 > 0:
		err = opts.SetRange(offset, offset+length-1)
	case offset > 0:
		err = opts.SetRange(offset, 0)
	}
	if err != nil {
		return nil, err
	}

	obj, err := s.minioClient.GetObject(ctx, s.cfg.Bucket, asset.Location, opts)
	if err != nil {
		return nil, fmt.Errorf("get object: %w", err)
	}

	// GetObject is lazy; Stat performs the request so a missing object fails
	// here instead of after the response headers are sent.
	if _, err := obj.Stat(); err != nil {
		_ = obj.Close()

		return nil, fmt.Errorf("stat object %s: %w", asset.Location, err)
	}

	if length < 0 {
		return obj, nil
	}

	return &limitedObject{Reader: io.LimitReader(obj, length), obj: obj}, nil
}

func (s *Store) Remove(ctx context.Context, asset *model.Asset) error {
	ctx, cancel := context.WithTimeout(ctx, time.Duration(s.cfg.Timeout)*time.Millisecond)
	defer cancel()

	return s.minioClient.RemoveObject(ctx, s.cfg.Bucket, asset.Location, minio.RemoveObjectOptions{})
}

func (s *Store) cleanup(key string) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(s.cfg.Timeout)*time.Millisecond)
	defer cancel()

	if err := s.minioClient.RemoveObject(ctx, s.cfg.Bucket, key, minio.RemoveObjectOptions{}); err != nil {
		logger.Error("failed to cleanup object", "object", key, "err", err)
	}
}

type limitedObject struct {
	io.Reader
	obj *minio.Object
}

func (l *limitedObject) Close() error {
	return l.obj.Close()
}
