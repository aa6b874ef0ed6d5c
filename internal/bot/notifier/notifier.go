// Package notifier tells chat users when their orders change status.
package notifier

import (
	"context"
	"fmt"
	"strconv"

	"github.com/goccy/go-json"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository/broker"
	"storefront/pkg/logger"
)

type TextSender interface {
	SendText(ctx context.Context, chatID int64, text string) error
}

type Notifier struct {
	receiver broker.Receiver
	sender   TextSender
	consumer string
}

func New(receiver broker.Receiver, sender TextSender, consumer string) *Notifier {
	return &Notifier{
		receiver: receiver,
		sender:   sender,
		consumer: consumer,
	}
}

// Run consumes events until ctx is done.
func (n *Notifier) Run(ctx context.Context) error {
	messages, err := n.receiver.Messages(ctx, n.consumer)
	if err != nil {
		return fmt.Errorf("subscribe to events: %w", err)
	}

	for msg := range messages {
		if err := n.handle(ctx, msg.Body()); err != nil {
			logger.Error("failed to deliver order notification", "err", err)

			if err := msg.Nack(); err != nil {
				logger.Error("failed to nack event", "err", err)
			}

			continue
		}

		if err := msg.Ack(); err != nil {
			logger.Error("failed to ack event", "err", err)
		}
	}

	return nil
}

// handle sends the notification for one event body. Events that concern no
// chat are skipped without error.
func (n *Notifier) handle(ctx context.Context, body string) error {
	var event entity.Event
	if err := json.Unmarshal([]byte(body), &event); err != nil {
		logger.Warn("skipping malformed event", "err", err)

		return nil
	}

	if event.Type != entity.EventOrderStatusChanged {
		return nil
	}

	chatID, err := strconv.ParseInt(event.UserID, 10, 64)
	if err != nil {
		logger.Debug("order owner is not a chat", "order", event.ResourceID, "user", event.UserID)

		return nil
	}

	text := fmt.Sprintf("Your order %s is now %s.", event.ResourceID, event.Status)

	return n.sender.SendText(ctx, chatID, text)
}
