package session

import (
	"fmt"
	"time"

	"storefront/internal/bot/dialogue"
	"storefront/internal/infrastructure/broker"
)

const (
	KindMemory = "memory"
	KindRedis  = "redis"
	KindBolt   = "bolt"
)

type Config struct {
	Store    string `yaml:"store"`
	TTL      int64  `yaml:"ttl_in_minutes"`
	BoltPath string `yaml:"bolt_path"`
}

// New builds the store cfg names. The redis store shares the broker
// connection, so brokerClient must be set when cfg.Store is redis. The
// returned close function releases the store.
func New(cfg Config, brokerClient *broker.Client) (dialogue.Store, func() error, error) {
	noop := func() error { return nil }

	switch cfg.Store {
	case "", KindMemory:
		return NewMemory(), noop, nil
	case KindRedis:
		if brokerClient == nil {
			return nil, nil, fmt.Errorf("redis session store needs a broker connection")
		}

		return NewRedis(brokerClient.Redis(), time.Duration(cfg.TTL)*time.Minute), noop, nil
	case KindBolt:
		store, err := OpenBolt(cfg.BoltPath)
		if err != nil {
			return nil, nil, err
		}

		return store, store.Close, nil
	default:
		return nil, nil, fmt.Errorf("unknown session store %q", cfg.Store)
	}
}
