package broker

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	// eventField is the stream entry field holding the encoded event.
	eventField = "event"

	defaultClaimIdle = time.Minute
	connectTimeout   = 5 * time.Second
)

// Client owns the redis connection shared by the event publisher, the event
// receiver and the redis session store.
type Client struct {
	redis     *redis.Client
	stream    string
	group     string
	maxLen    int64
	claimIdle time.Duration
}

func NewClient(cfg Config) (*Client, error) {
	opt, err := redis.ParseURL(cfg.URI)
	if err != nil {
		return nil, fmt.Errorf("parse broker uri: %w", err)
	}

	rdb := redis.NewClient(opt)

	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()

		return nil, fmt.Errorf("ping broker: %w", err)
	}

	if cfg.GroupName != "" {
		err = rdb.XGroupCreateMkStream(ctx, cfg.StreamName, cfg.GroupName, "$").Err()
		if err != nil && !isBusyGroup(err) {
			_ = rdb.Close()

			return nil, fmt.Errorf("create consumer group: %w", err)
		}
	}

	claimIdle := time.Duration(cfg.ClaimIdle) * time.Millisecond
	if claimIdle <= 0 {
		claimIdle = defaultClaimIdle
	}

	return &Client{
		redis:     rdb,
		stream:    cfg.StreamName,
		group:     cfg.GroupName,
		maxLen:    cfg.MaxLen,
		claimIdle: claimIdle,
	}, nil
}

// Redis exposes the underlying connection for other redis backed stores.
func (c *Client) Redis() *redis.Client {
	return c.redis
}

func (c *Client) Close() error {
	return c.redis.Close()
}

func isBusyGroup(err error) bool {
	return err != nil && strings.HasPrefix(err.Error(), "BUSYGROUP")
}
