package broker

import "context"

// Publisher appends an encoded domain event to the event stream.
type Publisher interface {
	Publish(ctx context.Context, event string) error
}
