package usecase

import (
	"context"
	"io"
	"sync"

	"github.com/stretchr/testify/mock"

	"storefront/internal/domain/dto"
	"storefront/internal/domain/entity"
	"storefront/internal/domain/model"
	"storefront/internal/domain/repository/blobstore"
)

type MockRepository[T any] struct {
	mock.Mock
}

func result[T any](args mock.Arguments) (*T, error) {
	doc, _ := args.Get(0).(*T)

	return doc, args.Error(1)
}

func (m *MockRepository[T]) GetByID(ctx context.Context, id string) (*T, error) {
	return result[T](m.Called(ctx, id))
}

func (m *MockRepository[T]) GetBy(ctx context.Context, field string, value any) (*T, error) {
	return result[T](m.Called(ctx, field, value))
}

func (m *MockRepository[T]) Write(ctx context.Context, doc *T) error {
	return m.Called(ctx, doc).Error(0)
}

func (m *MockRepository[T]) List(ctx context.Context, q dto.ListQuery) ([]T, int64, error) {
	args := m.Called(ctx, q)
	items, _ := args.Get(0).([]T)

	return items, args.Get(1).(int64), args.Error(2)
}

func (m *MockRepository[T]) Update(ctx context.Context, id string, fields dto.Fields) (*T, error) {
	return result[T](m.Called(ctx, id, fields))
}

func (m *MockRepository[T]) Increment(ctx context.Context, id, field string, delta int64) (*T, error) {
	return result[T](m.Called(ctx, id, field, delta))
}

func (m *MockRepository[T]) Remove(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

type MockPublisher struct {
	mock.Mock
}

func (m *MockPublisher) Publish(ctx context.Context, message string) error {
	return m.Called(ctx, message).Error(0)
}

// memoryBackend is an in-memory blob backend.
type memoryBackend struct {
	mu      sync.Mutex
	objects map[string][]byte
	putErr  error
	rmErr   error
}

func newMemoryBackend() *memoryBackend {
	return &memoryBackend{objects: map[string][]byte{}}
}

func (*memoryBackend) Kind() model.StorageKind {
	return model.StorageFilesystem
}

func (b *memoryBackend) Put(_ context.Context, key, _ string, body io.Reader) (entity.StoredBlob, error) {
	if b.putErr != nil {
		return entity.StoredBlob{}, b.putErr
	}

	raw, err := io.ReadAll(body)
	if err != nil {
		return entity.StoredBlob{}, err
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	b.objects[key] = raw

	return entity.StoredBlob{Location: key, Size: int64(len(raw))}, nil
}

func (b *memoryBackend) Open(_ context.Context, asset *model.Asset, offset, length int64) (io.ReadCloser, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	raw := b.objects[asset.Location]

	return io.NopCloser(io.NewSectionReader(readerAt(raw), offset, length)), nil
}

func (b *memoryBackend) Remove(_ context.Context, asset *model.Asset) error {
	if b.rmErr != nil {
		return b.rmErr
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	delete(b.objects, asset.Location)

	return nil
}

func (b *memoryBackend) has(key string) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	_, ok := b.objects[key]

	return ok
}

type readerAt []byte

func (r readerAt) ReadAt(p []byte, off int64) (int, error) {
	if off >= int64(len(r)) {
		return 0, io.EOF
	}
	n := copy(p, r[off:])
	if n < len(p) {
		return n, io.EOF
	}

	return n, nil
}

type singleRegistry struct {
	backend blobstore.Backend
}

func (r singleRegistry) Default() blobstore.Backend {
	return r.backend
}

func (r singleRegistry) For(model.StorageKind) (blobstore.Backend, error) {
	return r.backend, nil
}
