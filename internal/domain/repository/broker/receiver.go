package broker

import "context"

// Receiver streams events to a named consumer until ctx is done.
type Receiver interface {
	Messages(ctx context.Context, consumerName string) (<-chan Message, error)
}
