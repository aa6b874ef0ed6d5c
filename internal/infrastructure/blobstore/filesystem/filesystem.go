// Package filesystem stores asset content as files under a root directory.
package filesystem

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/model"
)

type Store struct {
	root string
}

func New(root string) (*Store, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("create media dir: %w", err)
	}

	return &Store{root: root}, nil
}

func (*Store) Kind() model.StorageKind {
	return model.StorageFilesystem
}

func (s *Store) path(key string) string {
	return filepath.Join(s.root, filepath.Base(key))
}

func (s *Store) Put(ctx context.Context, key, _ string, body io.Reader) (entity.StoredBlob, error) {
	name := filepath.Base(key)
	f, err := os.OpenFile(s.path(name), os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return entity.StoredBlob{}, fmt.Errorf("create file: %w", err)
	}

	n, err := io.Copy(f, &contextReader{ctx: ctx, r: body})
	closeErr := f.Close()
	if err == nil {
		err = closeErr
	}
	if err != nil {
		_ = os.Remove(s.path(name))

		return entity.StoredBlob{}, fmt.Errorf("write file: %w", err)
	}

	return entity.StoredBlob{Location: name, Size: n}, nil
}

func (s *Store) Open(_ context.Context, asset *model.Asset, offset, length int64) (io.ReadCloser, error) {
	f, err := os.Open(s.path(asset.Location))
	if err != nil {
		return nil, fmt.Errorf("open file: %w", err)
	}

	if _, err := f.Seek(offset, io.SeekStart); err != nil {
		_ = f.Close()

		return nil, fmt.Errorf("seek file: %w", err)
	}

	if length < 0 {
		return f, nil
	}

	return &limitedFile{Reader: io.LimitReader(f, length), file: f}, nil
}

func (s *Store) Remove(_ context.Context, asset *model.Asset) error {
	err := os.Remove(s.path(asset.Location))
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}

	return err
}

type limitedFile struct {
	io.Reader
	file *os.File
}

func (l *limitedFile) Close() error {
	return l.file.Close()
}

type contextReader struct {
	ctx context.Context
	r   io.Reader
}

func (c *contextReader) Read(p []byte) (int, error) {
	if err := c.ctx.Err(); err != nil {
		return 0, err
	}

	return c.r.Read(p)
}
