package abstraction

import (
	"context"

	"storefront/internal/domain/dto"
)

type Authenticator interface {
	Login(ctx context.Context, in dto.LoginInput) (*dto.Token, error)
}
