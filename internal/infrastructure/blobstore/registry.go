// Package blobstore selects the backend that holds an asset's content.
package blobstore

import (
	"fmt"

	"storefront/internal/domain/model"
	"storefront/internal/domain/repository/blobstore"
)

type Registry struct {
	backends map[model.StorageKind]blobstore.Backend
	current  model.StorageKind
}

// NewRegistry registers backends and makes current the one new uploads go to.
func NewRegistry(current model.StorageKind, backends ...blobstore.Backend) (*Registry, error) {
	r := &Registry{
		backends: make(map[model.StorageKind]blobstore.Backend, len(backends)),
		current:  current,
	}
	for _, b := range backends {
		r.backends[b.Kind()] = b
	}

	if _, ok := r.backends[current]; !ok {
		return nil, fmt.Errorf("no backend registered for storage %q", current)
	}

	return r, nil
}

// Default is the backend new uploads are written to.
func (r *Registry) Default() blobstore.Backend {
	return r.backends[r.current]
}

// For returns the backend an existing asset was stored with.
func (r *Registry) For(kind model.StorageKind) (blobstore.Backend, error) {
	b, ok := r.backends[kind]
	if !ok {
		return nil, fmt.Errorf("no backend registered for storage %q", kind)
	}

	return b, nil
}
