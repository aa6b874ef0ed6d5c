package abstraction

import "context"

type Getter[T any] interface {
	Get(ctx context.Context, id string) (*T, error)
}
