package session

import (
	"context"
	"fmt"
	"net"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"storefront/internal/bot/dialogue"
)

const redisImage = "redis:7-alpine"

func testStore(t *testing.T, store dialogue.Store) {
	t.Helper()

	ctx := context.Background()
	catalog := []dialogue.Item{{ID: "p1", Name: "Lamp", Price: 12}, {ID: "p2", Name: "Desk", Price: 99.5}}

	state, err := store.Load(ctx, 1)
	require.NoError(t, err)
	assert.True(t, state.IsIdle())

	require.NoError(t, store.Save(ctx, 1, dialogue.AwaitingProductSelection(catalog)))
	require.NoError(t, store.Save(ctx, 2, dialogue.AwaitingQuantity(catalog[1])))

	state, err = store.Load(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, dialogue.StepAwaitingProductSelection, state.Step)
	assert.Equal(t, catalog, state.Catalog)

	state, err = store.Load(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, dialogue.StepAwaitingQuantity, state.Step)
	require.NotNil(t, state.Product)
	assert.Equal(t, catalog[1], *state.Product)

	require.NoError(t, store.Clear(ctx, 1))
	state, err = store.Load(ctx, 1)
	require.NoError(t, err)
	assert.True(t, state.IsIdle())

	require.NoError(t, store.Save(ctx, 2, dialogue.Idle()))
	state, err = store.Load(ctx, 2)
	require.NoError(t, err)
	assert.True(t, state.IsIdle())

	require.NoError(t, store.Clear(ctx, 42))
}

func TestMemory(t *testing.T) {
	t.Parallel()

	testStore(t, NewMemory())
}

func TestMemoryConcurrentChats(t *testing.T) {
	t.Parallel()

	store := NewMemory()
	ctx := context.Background()

	var wg sync.WaitGroup
	for chat := int64(1); chat <= 50; chat++ {
		wg.Add(1)
		go func(chat int64) {
			defer wg.Done()
			item := dialogue.Item{ID: fmt.Sprint(chat)}
			assert.NoError(t, store.Save(ctx, chat, dialogue.AwaitingQuantity(item)))
		}(chat)
	}
	wg.Wait()

	for chat := int64(1); chat <= 50; chat++ {
		state, err := store.Load(ctx, chat)
		require.NoError(t, err)
		require.NotNil(t, state.Product)
		assert.Equal(t, fmt.Sprint(chat), state.Product.ID)
	}
}

func TestBolt(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "sessions.db")
	store, err := OpenBolt(path)
	require.NoError(t, err)

	testStore(t, store)

	require.NoError(t, store.Save(context.Background(), 7, dialogue.AwaitingQuantity(dialogue.Item{ID: "p9"})))
	require.NoError(t, store.Close())

	reopened, err := OpenBolt(path)
	require.NoError(t, err)
	defer reopened.Close()

	state, err := reopened.Load(context.Background(), 7)
	require.NoError(t, err)
	require.NotNil(t, state.Product)
	assert.Equal(t, "p9", state.Product.ID)
}

func setupRedis(t *testing.T) (*redis.Client, func()) {
	t.Helper()
	ctx := context.Background()

	redisC, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        redisImage,
			ExposedPorts: []string{"6379/tcp"},
			WaitingFor:   wait.ForListeningPort("6379/tcp"),
		},
		Started: true,
	})
	if err != nil {
		t.Fatalf("failed to start Redis container: %v", err)
	}

	host, err := redisC.Host(ctx)
	require.NoError(t, err)

	port, err := redisC.MappedPort(ctx, "6379")
	require.NoError(t, err)

	client := redis.NewClient(&redis.Options{Addr: net.JoinHostPort(host, port.Port())})

	return client, func() {
		_ = client.Close()
		_ = redisC.Terminate(ctx)
	}
}

func TestRedis(t *testing.T) {
	t.Parallel()

	client, terminate := setupRedis(t)
	defer terminate()

	testStore(t, NewRedis(client, time.Minute))

	ctx := context.Background()
	store := NewRedis(client, time.Minute)
	require.NoError(t, store.Save(ctx, 3, dialogue.AwaitingQuantity(dialogue.Item{ID: "p1"})))

	ttl, err := client.TTL(ctx, "session:3").Result()
	require.NoError(t, err)
	assert.Greater(t, ttl, time.Duration(0))
	assert.LessOrEqual(t, ttl, time.Minute)
}

func TestNew(t *testing.T) {
	t.Parallel()

	store, closeFn, err := New(Config{}, nil)
	require.NoError(t, err)
	assert.IsType(t, &Memory{}, store)
	require.NoError(t, closeFn())

	_, _, err = New(Config{Store: KindRedis}, nil)
	assert.Error(t, err)

	_, _, err = New(Config{Store: "etcd"}, nil)
	assert.Error(t, err)

	store, closeFn, err = New(Config{Store: KindBolt, BoltPath: filepath.Join(t.TempDir(), "s.db")}, nil)
	require.NoError(t, err)
	assert.IsType(t, &Bolt{}, store)
	require.NoError(t, closeFn())
}
