package abstraction

import (
	"context"

	"storefront/internal/domain/dto"
)

type Updater[T, P any] interface {
	Update(ctx context.Context, actor dto.Actor, id string, patch P) (*T, error)
}
