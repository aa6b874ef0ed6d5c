package session

import (
	"context"
	"fmt"
	"strconv"

	"github.com/goccy/go-json"
	bolt "go.etcd.io/bbolt"

	"storefront/internal/bot/dialogue"
)

var bucket = []byte("sessions")

// Bolt keeps sessions in an embedded bbolt file so they survive restarts.
type Bolt struct {
	db *bolt.DB
}

func OpenBolt(path string) (*Bolt, error) {
	db, err := bolt.Open(path, 0o600, nil)
	if err != nil {
		return nil, fmt.Errorf("open session file: %w", err)
	}

	if err := db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucket)

		return err
	}); err != nil {
		_ = db.Close()

		return nil, fmt.Errorf("create session bucket: %w", err)
	}

	return &Bolt{db: db}, nil
}

func boltKey(chatID int64) []byte {
	return []byte(strconv.FormatInt(chatID, 10))
}

func (b *Bolt) Load(_ context.Context, chatID int64) (dialogue.State, error) {
	state := dialogue.Idle()

	err := b.db.View(func(tx *bolt.Tx) error {
		raw := tx.Bucket(bucket).Get(boltKey(chatID))
		if raw == nil {
			return nil
		}

		return json.Unmarshal(raw, &state)
	})
	if err != nil {
		return dialogue.State{}, fmt.Errorf("load session %d: %w", chatID, err)
	}

	return state, nil
}

func (b *Bolt) Save(ctx context.Context, chatID int64, state dialogue.State) error {
	if state.IsIdle() {
		return b.Clear(ctx, chatID)
	}

	raw, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("encode session %d: %w", chatID, err)
	}

	if err := b.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucket).Put(boltKey(chatID), raw)
	}); err != nil {
		return fmt.Errorf("save session %d: %w", chatID, err)
	}

	return nil
}

func (b *Bolt) Clear(_ context.Context, chatID int64) error {
	if err := b.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucket).Delete(boltKey(chatID))
	}); err != nil {
		return fmt.Errorf("clear session %d: %w", chatID, err)
	}

	return nil
}

func (b *Bolt) Close() error {
	return b.db.Close()
}
