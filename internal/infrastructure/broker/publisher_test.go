package broker

import (
	"context"
	"fmt"
	"net"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"storefront/internal/domain/entity"
)

const (
	redisImage = "redis:7-alpine"
	streamName = "storefront-events-test"
	groupName  = "storefront-bot-test"
)

func setupRedis(t *testing.T) string {
	t.Helper()
	ctx := context.Background()

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        redisImage,
			ExposedPorts: []string{"6379/tcp"},
			WaitingFor:   wait.ForListeningPort("6379/tcp"),
		},
		Started: true,
	})
	require.NoError(t, err, "failed to start redis container")
	t.Cleanup(func() { _ = container.Terminate(ctx) })

	host, err := container.Host(ctx)
	require.NoError(t, err)

	port, err := container.MappedPort(ctx, "6379")
	require.NoError(t, err)

	return fmt.Sprintf("redis://%s", net.JoinHostPort(host, port.Port()))
}

func newTestClient(t *testing.T, cfg Config) *Client {
	t.Helper()

	if cfg.StreamName == "" {
		cfg.StreamName = streamName
	}
	if cfg.GroupName == "" {
		cfg.GroupName = groupName
	}

	client, err := NewClient(cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })

	return client
}

func orderEvent(t *testing.T, id, status string) string {
	t.Helper()

	raw, err := json.Marshal(entity.Event{
		Type:       entity.EventOrderStatusChanged,
		ResourceID: id,
		UserID:     "1001",
		Status:     status,
		OccurredAt: time.Now().UTC(),
	})
	require.NoError(t, err)

	return string(raw)
}

func TestNewClientRejectsBadURI(t *testing.T) {
	t.Parallel()

	_, err := NewClient(Config{URI: "not a uri", StreamName: streamName})
	assert.Error(t, err)
}

func TestPublish(t *testing.T) {
	t.Parallel()

	uri := setupRedis(t)

	tests := []struct {
		name    string
		maxLen  int64
		events  int
		wantMax int64
	}{
		{"single event", 0, 1, 1},
		{"untrimmed stream", 0, 50, 50},
		{"trimmed stream", 10, 500, 200},
	}

	for i, tt := range tests {
		i := i
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			stream := fmt.Sprintf("%s-%d", streamName, i)
			client := newTestClient(t, Config{URI: uri, StreamName: stream, MaxLen: tt.maxLen})
			publisher := NewPublisher(client, PublisherConfig{Timeout: 1000})

			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()

			for n := 0; n < tt.events; n++ {
				require.NoError(t, publisher.Publish(ctx, orderEvent(t, fmt.Sprintf("o-%d", n), "shipped")))
			}

			length, err := client.redis.XLen(ctx, stream).Result()
			require.NoError(t, err)
			assert.LessOrEqual(t, length, tt.wantMax)
			assert.Positive(t, length)

			last, err := client.redis.XRevRangeN(ctx, stream, "+", "-", 1).Result()
			require.NoError(t, err)
			require.Len(t, last, 1)

			var event entity.Event
			require.NoError(t, json.Unmarshal([]byte(last[0].Values[eventField].(string)), &event))
			assert.Equal(t, fmt.Sprintf("o-%d", tt.events-1), event.ResourceID)
		})
	}
}

func TestPublishWithoutClient(t *testing.T) {
	t.Parallel()

	publisher := NewPublisher(nil, PublisherConfig{})
	assert.Error(t, publisher.Publish(context.Background(), "{}"))
}
