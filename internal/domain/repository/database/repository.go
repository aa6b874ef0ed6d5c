package database

import (
	"context"
	"errors"

	"storefront/internal/domain/dto"
)

var (
	ErrNotFound      = errors.New("document not found")
	ErrDuplicate     = errors.New("duplicate key")
	ErrInvalidFilter = errors.New("invalid filter")
)

type Retriever[T any] interface {
	GetByID(ctx context.Context, id string) (*T, error)
	GetBy(ctx context.Context, field string, value any) (*T, error)
}

type Writer[T any] interface {
	Write(ctx context.Context, doc *T) error
}

// Lister returns one page of matching documents and the total match count.
type Lister[T any] interface {
	List(ctx context.Context, query dto.ListQuery) ([]T, int64, error)
}

type Updater[T any] interface {
	Update(ctx context.Context, id string, fields dto.Fields) (*T, error)
	Increment(ctx context.Context, id, field string, delta int64) (*T, error)
}

type Remover interface {
	Remove(ctx context.Context, id string) error
}

type Repository[T any] interface {
	Retriever[T]
	Writer[T]
	Lister[T]
	Updater[T]
	Remover
}
