package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"storefront/internal/domain/dto"
	"storefront/internal/domain/repository/database"
)

// Resource implements the read and delete operations every entity shares.
type Resource[T any] struct {
	name  string
	repo  database.Repository[T]
	now   func() time.Time
	newID func() string
}

func NewResource[T any](name string, repo database.Repository[T]) Resource[T] {
	return Resource[T]{
		name:  name,
		repo:  repo,
		now:   func() time.Time { return time.Now().UTC() },
		newID: uuid.NewString,
	}
}

func (r *Resource[T]) Get(ctx context.Context, id string) (*T, error) {
	doc, err := r.repo.GetByID(ctx, id)
	if err != nil {
		return nil, repositoryError(r.name, "get", err)
	}

	return doc, nil
}

func (r *Resource[T]) List(ctx context.Context, q dto.ListQuery) (*dto.Page[T], error) {
	q.Normalize()

	items, total, err := r.repo.List(ctx, q)
	if err != nil {
		return nil, repositoryError(r.name, "list", err)
	}

	return dto.NewPage(items, q, total), nil
}

func (r *Resource[T]) Delete(ctx context.Context, _ dto.Actor, id string) error {
	if err := r.repo.Remove(ctx, id); err != nil {
		return repositoryError(r.name, "delete", err)
	}

	return nil
}

func (r *Resource[T]) write(ctx context.Context, doc *T) error {
	if err := r.repo.Write(ctx, doc); err != nil {
		return repositoryError(r.name, "save", err)
	}

	return nil
}

// update stores fields stamped with the update time.
func (r *Resource[T]) update(ctx context.Context, id string, fields dto.Fields) (*T, error) {
	if len(fields) == 0 {
		return r.Get(ctx, id)
	}
	fields["updated_at"] = r.now()

	doc, err := r.repo.Update(ctx, id, fields)
	if err != nil {
		return nil, repositoryError(r.name, "update", err)
	}

	return doc, nil
}
