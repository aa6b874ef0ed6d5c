package abstraction

import (
	"context"

	"storefront/internal/domain/dto"
)

type Creator[T, In any] interface {
	Create(ctx context.Context, actor dto.Actor, in In) (*T, error)
}
