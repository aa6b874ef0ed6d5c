package broker

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"storefront/internal/domain/repository/broker"
	"storefront/pkg/logger"
)

const (
	readBlock  = 5 * time.Second
	readCount  = 10
	retryDelay = time.Second
)

// Receiver delivers stream events to one consumer of the group. Entries left
// pending by a failed or crashed consumer are reclaimed before new ones are read.
type Receiver struct {
	client *Client
	block  time.Duration
}

func NewReceiver(client *Client) *Receiver {
	return &Receiver{
		client: client,
		block:  readBlock,
	}
}

// Messages starts consuming as consumerName. The channel is closed once ctx is done.
func (r *Receiver) Messages(ctx context.Context, consumerName string) (<-chan broker.Message, error) {
	if r.client == nil || r.client.redis == nil {
		return nil, errors.New("redis not initialized")
	}

	if r.client.group == "" {
		return nil, errors.New("no consumer group configured")
	}

	out := make(chan broker.Message)
	go r.consume(ctx, out, consumerName)

	return out, nil
}

func (r *Receiver) consume(ctx context.Context, out chan<- broker.Message, consumer string) {
	defer close(out)

	cursor := "0-0"
	for ctx.Err() == nil {
		var claimed []redis.XMessage
		claimed, cursor = r.reclaim(ctx, consumer, cursor)
		if !r.emit(ctx, out, claimed) {
			return
		}

		fresh, err := r.read(ctx, consumer)
		if err != nil {
			if ctx.Err() == nil {
				logger.Error("failed to read events", "consumer", consumer, "err", err)
				sleep(ctx, retryDelay)
			}

			continue
		}

		if !r.emit(ctx, out, fresh) {
			return
		}
	}

	logger.Debug("event consumer stopped", "consumer", consumer)
}

func (r *Receiver) reclaim(ctx context.Context, consumer, cursor string) ([]redis.XMessage, string) {
	messages, next, err := r.client.redis.XAutoClaim(ctx, &redis.XAutoClaimArgs{
		Stream:   r.client.stream,
		Group:    r.client.group,
		Consumer: consumer,
		MinIdle:  r.client.claimIdle,
		Start:    cursor,
		Count:    readCount,
	}).Result()
	if err != nil {
		if ctx.Err() == nil {
			logger.Warn("failed to reclaim pending events", "consumer", consumer, "err", err)
		}

		return nil, "0-0"
	}

	return messages, next
}

func (r *Receiver) read(ctx context.Context, consumer string) ([]redis.XMessage, error) {
	streams, err := r.client.redis.XReadGroup(ctx, &redis.XReadGroupArgs{
		Group:    r.client.group,
		Consumer: consumer,
		Streams:  []string{r.client.stream, ">"},
		Count:    readCount,
		Block:    r.block,
	}).Result()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var messages []redis.XMessage
	for _, stream := range streams {
		messages = append(messages, stream.Messages...)
	}

	return messages, nil
}

// emit reports false once ctx is done.
func (r *Receiver) emit(ctx context.Context, out chan<- broker.Message, messages []redis.XMessage) bool {
	for _, msg := range messages {
		body, ok := msg.Values[eventField].(string)
		if !ok {
			logger.Error("dropping stream entry without event", "id", msg.ID)
			_ = r.client.redis.XAck(ctx, r.client.stream, r.client.group, msg.ID).Err()

			continue
		}

		select {
		case out <- &Event{
			id:     msg.ID,
			body:   body,
			stream: r.client.stream,
			group:  r.client.group,
			redis:  r.client.redis,
		}:
		case <-ctx.Done():
			return false
		}
	}

	return true
}

func sleep(ctx context.Context, d time.Duration) {
	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-t.C:
	case <-ctx.Done():
	}
}
