// Package dialogue implements the chat ordering conversation: browse the
// catalog, pick a product by number, send a quantity, submit the order.
package dialogue

import (
	"context"
	"strconv"
	"strings"

	"storefront/internal/domain/dto"
	"storefront/internal/domain/model"
	"storefront/pkg/logger"
)

type Catalog interface {
	Products(ctx context.Context) ([]model.Product, error)
}

type OrderSubmitter interface {
	CreateOrder(ctx context.Context, in dto.OrderInput) (*model.Order, error)
}

// Input is one inbound message or callback query of a chat.
type Input struct {
	ChatID   int64
	Text     string
	Callback string
}

type Dialogue struct {
	catalog  Catalog
	orders   OrderSubmitter
	sessions Store
}

func New(catalog Catalog, orders OrderSubmitter, sessions Store) *Dialogue {
	return &Dialogue{
		catalog:  catalog,
		orders:   orders,
		sessions: sessions,
	}
}

// Handle advances the conversation of in.ChatID by one input and returns
// the reply to send.
func (d *Dialogue) Handle(ctx context.Context, in Input) Reply {
	text := strings.TrimSpace(in.Text)
	command := strings.ToLower(text)

	if command == CancelCommand {
		if err := d.sessions.Clear(ctx, in.ChatID); err != nil {
			logger.Error("failed to clear session", "chat", in.ChatID, "err", err)

			return Reply{Text: failureMessage}
		}

		return Reply{Text: cancelledMessage}
	}

	state, err := d.sessions.Load(ctx, in.ChatID)
	if err != nil {
		logger.Error("failed to load session", "chat", in.ChatID, "err", err)

		return Reply{Text: failureMessage}
	}

	switch state.Step {
	case StepAwaitingProductSelection:
		return d.selectProduct(ctx, in, state, text)
	case StepAwaitingQuantity:
		return d.submitOrder(ctx, in.ChatID, state, text)
	default:
		return d.idle(ctx, in, command)
	}
}

func isViewProducts(in Input, command string) bool {
	return in.Callback == ViewProductsCallback || command == ViewProductsText || command == ViewProductsCommand
}

func (d *Dialogue) idle(ctx context.Context, in Input, command string) Reply {
	if !isViewProducts(in, command) {
		return helpReply()
	}

	products, err := d.catalog.Products(ctx)
	if err != nil {
		logger.Error("failed to fetch catalog", "chat", in.ChatID, "err", err)

		return Reply{Text: failureMessage}
	}

	if len(products) == 0 {
		return Reply{Text: emptyCatalogMessage}
	}

	catalog := make([]Item, 0, len(products))
	for _, p := range products {
		catalog = append(catalog, itemOf(p))
	}

	if err := d.sessions.Save(ctx, in.ChatID, AwaitingProductSelection(catalog)); err != nil {
		logger.Error("failed to save session", "chat", in.ChatID, "err", err)

		return Reply{Text: failureMessage}
	}

	return catalogReply(catalog)
}

func (d *Dialogue) selectProduct(ctx context.Context, in Input, state State, text string) Reply {
	raw := text
	if in.Callback != "" {
		raw = strings.TrimPrefix(in.Callback, productCallbackPrefix)
	}

	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n < 1 || n > len(state.Catalog) {
		return invalidSelectionReply(len(state.Catalog))
	}

	item := state.Catalog[n-1]
	if err := d.sessions.Save(ctx, in.ChatID, AwaitingQuantity(item)); err != nil {
		logger.Error("failed to save session", "chat", in.ChatID, "err", err)

		return Reply{Text: failureMessage}
	}

	return quantityReply(item)
}

// submitOrder places the order once a valid quantity arrives. The session
// is cleared whether or not the order succeeds.
func (d *Dialogue) submitOrder(ctx context.Context, chatID int64, state State, text string) Reply {
	if state.Product == nil {
		if err := d.sessions.Clear(ctx, chatID); err != nil {
			logger.Error("failed to clear session", "chat", chatID, "err", err)
		}

		return helpReply()
	}

	quantity, err := strconv.Atoi(text)
	if err != nil || quantity < 1 {
		return Reply{Text: invalidQuantityMessage}
	}

	item := *state.Product

	if err := d.sessions.Clear(ctx, chatID); err != nil {
		logger.Error("failed to clear session", "chat", chatID, "err", err)
	}

	order, err := d.orders.CreateOrder(ctx, dto.OrderInput{
		UserID: strconv.FormatInt(chatID, 10),
		Items:  []dto.OrderItemInput{{ProductID: item.ID, Quantity: quantity}},
	})
	if err != nil {
		logger.Error("failed to submit order", "chat", chatID, "product", item.ID, "err", err)

		return Reply{Text: failureMessage}
	}

	return confirmationReply(item, quantity, order.ID)
}
