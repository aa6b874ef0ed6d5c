package broker

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

const ackTimeout = 2 * time.Second

// Event is one stream entry delivered to a consumer of the group.
type Event struct {
	id     string
	body   string
	stream string
	group  string
	redis  *redis.Client
}

func (e *Event) Body() string {
	return e.body
}

// Ack removes the entry from the group's pending list.
func (e *Event) Ack() error {
	ctx, cancel := context.WithTimeout(context.Background(), ackTimeout)
	defer cancel()

	return e.redis.XAck(ctx, e.stream, e.group, e.id).Err()
}

// Nack leaves the entry pending so that it is reclaimed and delivered again
// once it has been idle for the configured claim interval.
func (*Event) Nack() error {
	return nil
}
