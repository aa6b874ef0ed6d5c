package session

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/goccy/go-json"
	"github.com/redis/go-redis/v9"

	"storefront/internal/bot/dialogue"
)

const keyPrefix = "session:"

// Redis keeps sessions as JSON values that expire after ttl of inactivity.
type Redis struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedis(client *redis.Client, ttl time.Duration) *Redis {
	return &Redis{
		client: client,
		ttl:    ttl,
	}
}

func key(chatID int64) string {
	return keyPrefix + strconv.FormatInt(chatID, 10)
}

func (r *Redis) Load(ctx context.Context, chatID int64) (dialogue.State, error) {
	raw, err := r.client.Get(ctx, key(chatID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return dialogue.Idle(), nil
	}
	if err != nil {
		return dialogue.State{}, fmt.Errorf("load session %d: %w", chatID, err)
	}

	var state dialogue.State
	if err := json.Unmarshal(raw, &state); err != nil {
		return dialogue.State{}, fmt.Errorf("decode session %d: %w", chatID, err)
	}

	return state, nil
}

func (r *Redis) Save(ctx context.Context, chatID int64, state dialogue.State) error {
	if state.IsIdle() {
		return r.Clear(ctx, chatID)
	}

	raw, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("encode session %d: %w", chatID, err)
	}

	if err := r.client.Set(ctx, key(chatID), raw, r.ttl).Err(); err != nil {
		return fmt.Errorf("save session %d: %w", chatID, err)
	}

	return nil
}

func (r *Redis) Clear(ctx context.Context, chatID int64) error {
	if err := r.client.Del(ctx, key(chatID)).Err(); err != nil {
		return fmt.Errorf("clear session %d: %w", chatID, err)
	}

	return nil
}
