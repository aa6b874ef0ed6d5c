package usecase

import (
	"context"
	"time"

	"github.com/goccy/go-json"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository/broker"
	"storefront/pkg/logger"
)

// Events publishes domain events. Publishing never fails the caller's operation.
type Events struct {
	publisher broker.Publisher
}

func NewEvents(publisher broker.Publisher) *Events {
	return &Events{publisher: publisher}
}

func (e *Events) Publish(ctx context.Context, event entity.Event) {
	if e == nil || e.publisher == nil {
		return
	}

	if event.OccurredAt.IsZero() {
		event.OccurredAt = time.Now().UTC()
	}

	body, err := json.Marshal(event)
	if err != nil {
		logger.Error("failed to encode event", "type", event.Type, "err", err)

		return
	}

	if err := e.publisher.Publish(ctx, string(body)); err != nil {
		logger.Error("failed to publish event", "type", event.Type, "id", event.ResourceID, "err", err)
	}
}
