package blobstore

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront/internal/domain/model"
	"storefront/internal/infrastructure/blobstore/inline"
)

func TestRegistry(t *testing.T) {
	t.Parallel()

	r, err := NewRegistry(model.StorageInline, inline.New())
	require.NoError(t, err)
	assert.Equal(t, model.StorageInline, r.Default().Kind())

	b, err := r.For(model.StorageInline)
	require.NoError(t, err)
	assert.Equal(t, model.StorageInline, b.Kind())

	_, err = r.For(model.StorageMinIO)
	assert.Error(t, err)

	_, err = NewRegistry(model.StorageFilesystem, inline.New())
	assert.Error(t, err)
}
