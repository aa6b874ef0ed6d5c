// Package telegram connects the ordering dialogue to Telegram over long polling.
package telegram

import (
	"context"
	"errors"
	"sync"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"golang.org/x/time/rate"

	"storefront/internal/bot/dialogue"
	"storefront/pkg/logger"
)

const (
	defaultPollTimeout = 30
	defaultSendRate    = 25
)

// Sender is the part of the Telegram API the bot writes through.
type Sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error)
}

type Handler interface {
	Handle(ctx context.Context, in dialogue.Input) dialogue.Reply
}

type Bot struct {
	api      Sender
	handler  Handler
	limiter  *rate.Limiter
	inflight sync.WaitGroup
}

func NewBot(api Sender, handler Handler, cfg Config) *Bot {
	perSecond := cfg.SendRate
	if perSecond <= 0 {
		perSecond = defaultSendRate
	}

	burst := cfg.SendBurst
	if burst < 1 {
		burst = 1
	}

	return &Bot{
		api:     api,
		handler: handler,
		limiter: rate.NewLimiter(rate.Limit(perSecond), burst),
	}
}

// Connect authenticates with the bot token and starts long polling.
func Connect(cfg Config) (*tgbotapi.BotAPI, tgbotapi.UpdatesChannel, error) {
	if cfg.Token == "" {
		return nil, nil, errors.New("telegram bot token is required")
	}

	if err := tgbotapi.SetLogger(botLogger{}); err != nil {
		return nil, nil, err
	}

	api, err := tgbotapi.NewBotAPI(cfg.Token)
	if err != nil {
		return nil, nil, err
	}

	timeout := cfg.PollTimeout
	if timeout <= 0 {
		timeout = defaultPollTimeout
	}

	updateConfig := tgbotapi.NewUpdate(0)
	updateConfig.Timeout = timeout

	logger.Info("telegram bot connected", "username", api.Self.UserName)

	return api, api.GetUpdatesChan(updateConfig), nil
}

// Run handles updates until ctx is done or the channel closes. Each update
// runs in its own goroutine; Run waits for them before returning.
func (b *Bot) Run(ctx context.Context, updates <-chan tgbotapi.Update) {
	defer b.inflight.Wait()

	for {
		select {
		case <-ctx.Done():
			return
		case update, ok := <-updates:
			if !ok {
				logger.Info("telegram updates channel closed")

				return
			}

			b.inflight.Add(1)
			go func() {
				defer b.inflight.Done()
				b.handleUpdate(ctx, update)
			}()
		}
	}
}

func (b *Bot) handleUpdate(ctx context.Context, update tgbotapi.Update) {
	var in dialogue.Input

	switch {
	case update.CallbackQuery != nil:
		query := update.CallbackQuery
		if query.Message == nil || query.Message.Chat == nil {
			return
		}

		if _, err := b.api.Request(tgbotapi.NewCallback(query.ID, "")); err != nil {
			logger.Warn("failed to answer callback query", "id", query.ID, "err", err)
		}

		in = dialogue.Input{ChatID: query.Message.Chat.ID, Callback: query.Data}
	case update.Message != nil && update.Message.Chat != nil:
		if update.Message.Text == "" {
			return
		}

		in = dialogue.Input{ChatID: update.Message.Chat.ID, Text: update.Message.Text}
	default:
		return
	}

	logger.Debug("telegram update received", "chat", in.ChatID, "update", update.UpdateID)

	reply := b.handler.Handle(ctx, in)
	if err := b.send(ctx, in.ChatID, reply); err != nil {
		logger.Error("failed to send telegram reply", "chat", in.ChatID, "err", err)
	}
}

// SendText sends a plain message to chatID.
func (b *Bot) SendText(ctx context.Context, chatID int64, text string) error {
	return b.send(ctx, chatID, dialogue.Reply{Text: text})
}

func (b *Bot) send(ctx context.Context, chatID int64, reply dialogue.Reply) error {
	if reply.Text == "" {
		return nil
	}

	if err := b.limiter.Wait(ctx); err != nil {
		return err
	}

	msg := tgbotapi.NewMessage(chatID, reply.Text)
	if len(reply.Buttons) > 0 {
		rows := make([][]tgbotapi.InlineKeyboardButton, 0, len(reply.Buttons))
		for _, button := range reply.Buttons {
			rows = append(rows, tgbotapi.NewInlineKeyboardRow(
				tgbotapi.NewInlineKeyboardButtonData(button.Label, button.Data)))
		}
		msg.ReplyMarkup = tgbotapi.NewInlineKeyboardMarkup(rows...)
	}

	_, err := b.api.Send(msg)

	return err
}
