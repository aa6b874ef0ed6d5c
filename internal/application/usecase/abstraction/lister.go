package abstraction

import (
	"context"

	"storefront/internal/domain/dto"
)

type Lister[T any] interface {
	List(ctx context.Context, q dto.ListQuery) (*dto.Page[T], error)
}
