package abstraction

import (
	"context"

	"storefront/internal/domain/dto"
)

type Deleter interface {
	Delete(ctx context.Context, actor dto.Actor, id string) error
}
