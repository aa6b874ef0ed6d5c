package usecase

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"storefront/internal/domain/apperror"
	"storefront/internal/domain/dto"
	"storefront/internal/domain/entity"
	"storefront/internal/domain/model"
	"storefront/pkg/byterange"
)

var pngHeader = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR\x00\x00\x00\x01\x00\x00\x00\x01\x08\x06\x00\x00\x00")

func pngBytes(size int) []byte {
	out := make([]byte, size)
	copy(out, pngHeader)
	for i := len(pngHeader); i < size; i++ {
		out[i] = byte(i % 251)
	}

	return out
}

func newImages(repo *MockRepository[model.Asset], backend *memoryBackend, publisher *MockPublisher) *Media {
	events := NewEvents(nil)
	if publisher != nil {
		events = NewEvents(publisher)
	}

	return NewMedia(model.MediaImage, repo, singleRegistry{backend: backend}, events)
}

func TestUpload(t *testing.T) {
	t.Parallel()

	repo := &MockRepository[model.Asset]{}
	repo.On("Write", mock.Anything, mock.Anything).Return(nil)
	publisher := &MockPublisher{}
	publisher.On("Publish", mock.Anything, eventOfType(entity.EventMediaUploaded)).Return(nil)
	backend := newMemoryBackend()

	content := pngBytes(5000)
	asset, err := newImages(repo, backend, publisher).Upload(context.Background(), dto.Actor{ID: "u1"}, dto.UploadInput{
		Body:         bytes.NewReader(content),
		OriginalName: "../../cat.png",
		Title:        "Cat",
		Tags:         []string{" pets", "cats ", "pets"},
	})
	require.NoError(t, err)

	assert.Equal(t, "image/png", asset.ContentType)
	assert.Equal(t, int64(len(content)), asset.SizeBytes)
	assert.True(t, strings.HasSuffix(asset.Filename, ".png"))
	assert.Equal(t, "cat.png", asset.OriginalName)
	assert.Equal(t, []string{"pets", "cats"}, asset.Tags)
	assert.Equal(t, "u1", asset.CreatedBy)
	assert.True(t, backend.has(asset.Filename))
	publisher.AssertExpectations(t)
}

func TestUploadRejects(t *testing.T) {
	t.Parallel()

	repo := &MockRepository[model.Asset]{}
	backend := newMemoryBackend()
	images := newImages(repo, backend, nil)
	ctx := context.Background()

	_, err := images.Upload(ctx, dto.Actor{}, dto.UploadInput{Body: strings.NewReader("just some text")})
	assert.True(t, apperror.Is(err, apperror.KindValidation))

	_, err = images.Upload(ctx, dto.Actor{}, dto.UploadInput{
		Body:         strings.NewReader("just some text"),
		DeclaredType: "image/png",
	})
	assert.True(t, apperror.Is(err, apperror.KindValidation), "a declared type never overrides a sniffed one")

	_, err = images.Upload(ctx, dto.Actor{}, dto.UploadInput{Body: bytes.NewReader(nil)})
	assert.True(t, apperror.Is(err, apperror.KindValidation))

	_, err = images.Upload(ctx, dto.Actor{}, dto.UploadInput{})
	assert.True(t, apperror.Is(err, apperror.KindValidation))

	repo.AssertNotCalled(t, "Write", mock.Anything, mock.Anything)
}

func TestUploadFallsBackToDeclaredType(t *testing.T) {
	t.Parallel()

	repo := &MockRepository[model.Asset]{}
	repo.On("Write", mock.Anything, mock.Anything).Return(nil)
	videos := NewMedia(model.MediaVideo, repo, singleRegistry{backend: newMemoryBackend()}, NewEvents(nil))
	content := bytes.Repeat([]byte{0xde, 0xad, 0x00, 0x01}, 256)

	asset, err := videos.Upload(context.Background(), dto.Actor{}, dto.UploadInput{
		Body:         bytes.NewReader(content),
		DeclaredType: "video/mp2t; charset=binary",
	})
	require.NoError(t, err)
	assert.Equal(t, "video/mp2t", asset.ContentType)

	_, err = videos.Upload(context.Background(), dto.Actor{}, dto.UploadInput{
		Body:         bytes.NewReader(content),
		DeclaredType: "image/png",
	})
	assert.True(t, apperror.Is(err, apperror.KindValidation))
}

func TestUploadKeepsBackendValidationErrors(t *testing.T) {
	t.Parallel()

	backend := newMemoryBackend()
	backend.putErr = apperror.Validation("file", "file exceeds the 10MB limit of inline storage")
	repo := &MockRepository[model.Asset]{}

	_, err := newImages(repo, backend, nil).Upload(context.Background(), dto.Actor{}, dto.UploadInput{
		Body: bytes.NewReader(pngBytes(100)),
	})
	assert.True(t, apperror.Is(err, apperror.KindValidation))
	repo.AssertNotCalled(t, "Write", mock.Anything, mock.Anything)
}

func TestUploadRemovesBlobWhenRecordFails(t *testing.T) {
	t.Parallel()

	repo := &MockRepository[model.Asset]{}
	repo.On("Write", mock.Anything, mock.Anything).Return(errors.New("db down"))
	backend := newMemoryBackend()

	_, err := newImages(repo, backend, nil).Upload(context.Background(), dto.Actor{}, dto.UploadInput{
		Body: bytes.NewReader(pngBytes(100)),
	})
	assert.True(t, apperror.Is(err, apperror.KindStorage))
	assert.Empty(t, backend.objects)
}

func TestMediaOwnership(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		createdBy string
		actor     dto.Actor
		allowed   bool
	}{
		{"creator", "u1", dto.Actor{ID: "u1"}, true},
		{"admin", "u1", dto.Actor{ID: "a", Role: model.RoleAdmin}, true},
		{"other user", "u1", dto.Actor{ID: "u2"}, false},
		{"anonymous caller", "u1", dto.Actor{}, false},
		{"anonymous asset", "", dto.Actor{}, true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			asset := &model.Asset{ID: "a1", CreatedBy: tt.createdBy, Location: "a1.png"}
			repo := &MockRepository[model.Asset]{}
			repo.On("GetByID", mock.Anything, "a1").Return(asset, nil)
			repo.On("Remove", mock.Anything, "a1").Return(nil)
			repo.On("Update", mock.Anything, "a1", mock.Anything).Return(asset, nil)

			images := newImages(repo, newMemoryBackend(), nil)
			title := "new"

			_, updateErr := images.Update(context.Background(), tt.actor, "a1", dto.AssetPatch{Title: &title})
			deleteErr := images.Delete(context.Background(), tt.actor, "a1")

			if tt.allowed {
				assert.NoError(t, updateErr)
				assert.NoError(t, deleteErr)

				return
			}

			assert.Equal(t, http.StatusForbidden, apperror.StatusCode(updateErr))
			assert.Equal(t, http.StatusForbidden, apperror.StatusCode(deleteErr))
			repo.AssertNotCalled(t, "Remove", mock.Anything, mock.Anything)
		})
	}
}

func TestDeleteSwallowsBlobFailure(t *testing.T) {
	t.Parallel()

	asset := &model.Asset{ID: "a1", Location: "a1.png"}
	repo := &MockRepository[model.Asset]{}
	repo.On("GetByID", mock.Anything, "a1").Return(asset, nil)
	repo.On("Remove", mock.Anything, "a1").Return(nil).Once()

	backend := newMemoryBackend()
	backend.rmErr = errors.New("permission denied")

	require.NoError(t, newImages(repo, backend, nil).Delete(context.Background(), dto.Actor{}, "a1"))
	repo.AssertExpectations(t)
}

func TestOpen(t *testing.T) {
	t.Parallel()

	const size = 64
	content := pngBytes(size)
	backend := newMemoryBackend()
	backend.objects["a.png"] = content
	asset := &model.Asset{ID: "a", Location: "a.png", SizeBytes: size}

	images := newImages(&MockRepository[model.Asset]{}, backend, nil)
	ctx := context.Background()

	read := func(header string) (byterange.Plan, []byte) {
		plan, rc, err := images.Open(ctx, asset, header, true)
		require.NoError(t, err)
		defer rc.Close()
		body, err := io.ReadAll(rc)
		require.NoError(t, err)

		return plan, body
	}

	plan, body := read("")
	assert.Equal(t, http.StatusOK, plan.Status)
	assert.Equal(t, content, body)

	for start := int64(0); start < size; start += 7 {
		for end := start; end < size; end += 5 {
			plan, body := read(fmt.Sprintf("bytes=%d-%d", start, end))
			assert.Equal(t, http.StatusPartialContent, plan.Status)
			assert.Equal(t, content[start:end+1], body)

			_, again := read(fmt.Sprintf("bytes=%d-%d", start, end))
			assert.Equal(t, body, again)
		}
	}

	plan, body = read("bytes=5-")
	assert.Equal(t, int64(5), plan.Start)
	assert.Equal(t, content[5:], body)

	plan, rc, err := images.Open(ctx, asset, "bytes=10-", false)
	require.NoError(t, err)
	assert.Equal(t, int64(size-10), plan.Length)
	empty, _ := io.ReadAll(rc)
	assert.Empty(t, empty)

	plan, _, err = images.Open(ctx, asset, "bytes=100-", true)
	require.ErrorIs(t, err, byterange.ErrUnsatisfiable)
	assert.Equal(t, http.StatusRequestedRangeNotSatisfiable, plan.Status)
}

func TestOpenStopsOnCancel(t *testing.T) {
	t.Parallel()

	backend := newMemoryBackend()
	backend.objects["a.png"] = pngBytes(32)
	asset := &model.Asset{ID: "a", Location: "a.png", SizeBytes: 32}

	ctx, cancel := context.WithCancel(context.Background())
	_, rc, err := newImages(&MockRepository[model.Asset]{}, backend, nil).Open(ctx, asset, "", true)
	require.NoError(t, err)
	cancel()

	_, err = rc.Read(make([]byte, 8))
	assert.ErrorIs(t, err, context.Canceled)
}
