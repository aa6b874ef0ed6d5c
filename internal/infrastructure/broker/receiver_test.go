package broker

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront/internal/domain/repository/broker"
)

func nextEvent(t *testing.T, ch <-chan broker.Message) broker.Message {
	t.Helper()

	select {
	case msg, ok := <-ch:
		require.True(t, ok, "event channel closed")

		return msg
	case <-time.After(10 * time.Second):
		t.Fatal("timed out waiting for event")

		return nil
	}
}

func TestReceiverDeliversEvents(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, Config{URI: setupRedis(t)})
	publisher := NewPublisher(client, PublisherConfig{Timeout: 1000})

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Second)
	defer cancel()

	events := []string{
		orderEvent(t, "o-1", "processing"),
		orderEvent(t, "o-1", "shipped"),
		orderEvent(t, "o-2", "cancelled"),
	}
	for _, event := range events {
		require.NoError(t, publisher.Publish(ctx, event))
	}

	ch, err := NewReceiver(client).Messages(ctx, "bot-1")
	require.NoError(t, err)

	for _, want := range events {
		msg := nextEvent(t, ch)
		assert.JSONEq(t, want, msg.Body())
		require.NoError(t, msg.Ack())
	}

	pending, err := client.redis.XPending(ctx, client.stream, client.group).Result()
	require.NoError(t, err)
	assert.Zero(t, pending.Count)
}

func TestReceiverRedeliversNackedEvents(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, Config{URI: setupRedis(t), ClaimIdle: 100})
	publisher := NewPublisher(client, PublisherConfig{Timeout: 1000})
	receiver := NewReceiver(client)
	receiver.block = 200 * time.Millisecond

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Second)
	defer cancel()

	event := orderEvent(t, "o-9", "delivered")
	require.NoError(t, publisher.Publish(ctx, event))

	ch, err := receiver.Messages(ctx, "bot-1")
	require.NoError(t, err)

	first := nextEvent(t, ch)
	assert.JSONEq(t, event, first.Body())
	require.NoError(t, first.Nack())

	again := nextEvent(t, ch)
	assert.JSONEq(t, event, again.Body())
	require.NoError(t, again.Ack())
}

func TestReceiverSplitsEventsAcrossConsumers(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, Config{URI: setupRedis(t)})
	publisher := NewPublisher(client, PublisherConfig{Timeout: 1000})

	const total, consumers = 60, 3

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	for i := 0; i < total; i++ {
		require.NoError(t, publisher.Publish(ctx, orderEvent(t, fmt.Sprintf("o-%d", i), "paid")))
	}

	receiver := NewReceiver(client)
	received := make(chan string, total)

	var wg sync.WaitGroup
	for i := 0; i < consumers; i++ {
		ch, err := receiver.Messages(ctx, fmt.Sprintf("bot-%d", i))
		require.NoError(t, err)

		wg.Add(1)
		go func() {
			defer wg.Done()

			for msg := range ch {
				received <- msg.Body()
				_ = msg.Ack()
			}
		}()
	}

	wg.Wait()
	close(received)

	seen := make(map[string]bool)
	for body := range received {
		assert.False(t, seen[body], "event delivered twice: %s", body)
		seen[body] = true
	}
	assert.Len(t, seen, total)
}

func TestReceiverStopsOnCancel(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, Config{URI: setupRedis(t)})

	ctx, cancel := context.WithCancel(context.Background())
	ch, err := NewReceiver(client).Messages(ctx, "bot-cancel")
	require.NoError(t, err)
	cancel()

	select {
	case _, ok := <-ch:
		assert.False(t, ok, "expected channel to be closed")
	case <-time.After(10 * time.Second):
		t.Fatal("receiver did not stop")
	}
}

func TestReceiverRequiresClient(t *testing.T) {
	t.Parallel()

	ch, err := (&Receiver{}).Messages(context.Background(), "bot")
	assert.Nil(t, ch)
	assert.Error(t, err)
}
