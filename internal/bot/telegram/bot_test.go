package telegram

import (
	"context"
	"sync"
	"testing"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront/internal/bot/dialogue"
)

type recordingSender struct {
	mu       sync.Mutex
	sent     []tgbotapi.MessageConfig
	answered []string
}

func (s *recordingSender) Send(c tgbotapi.Chattable) (tgbotapi.Message, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if msg, ok := c.(tgbotapi.MessageConfig); ok {
		s.sent = append(s.sent, msg)
	}

	return tgbotapi.Message{}, nil
}

func (s *recordingSender) Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if cb, ok := c.(tgbotapi.CallbackConfig); ok {
		s.answered = append(s.answered, cb.CallbackQueryID)
	}

	return &tgbotapi.APIResponse{Ok: true}, nil
}

func (s *recordingSender) messages() []tgbotapi.MessageConfig {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]tgbotapi.MessageConfig(nil), s.sent...)
}

type recordingHandler struct {
	mu     sync.Mutex
	inputs []dialogue.Input
	reply  dialogue.Reply
}

func (h *recordingHandler) Handle(_ context.Context, in dialogue.Input) dialogue.Reply {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.inputs = append(h.inputs, in)

	return h.reply
}

func runUpdates(t *testing.T, bot *Bot, updates ...tgbotapi.Update) {
	t.Helper()

	ch := make(chan tgbotapi.Update, len(updates))
	for _, u := range updates {
		ch <- u
	}
	close(ch)

	done := make(chan struct{})
	go func() {
		bot.Run(context.Background(), ch)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("bot did not stop after the updates channel closed")
	}
}

func TestBotHandlesTextMessages(t *testing.T) {
	t.Parallel()

	sender := &recordingSender{}
	handler := &recordingHandler{reply: dialogue.Reply{
		Text:    "pick one",
		Buttons: []dialogue.Button{{Label: "1. Lamp", Data: "product:1"}, {Label: "2. Desk", Data: "product:2"}},
	}}
	bot := NewBot(sender, handler, Config{SendRate: 1000, SendBurst: 10})

	runUpdates(t, bot, tgbotapi.Update{
		UpdateID: 1,
		Message:  &tgbotapi.Message{Text: "view products", Chat: &tgbotapi.Chat{ID: 77}},
	})

	require.Len(t, handler.inputs, 1)
	assert.Equal(t, dialogue.Input{ChatID: 77, Text: "view products"}, handler.inputs[0])

	sent := sender.messages()
	require.Len(t, sent, 1)
	assert.Equal(t, int64(77), sent[0].ChatID)
	assert.Equal(t, "pick one", sent[0].Text)

	markup, ok := sent[0].ReplyMarkup.(tgbotapi.InlineKeyboardMarkup)
	require.True(t, ok)
	require.Len(t, markup.InlineKeyboard, 2)
	require.NotNil(t, markup.InlineKeyboard[1][0].CallbackData)
	assert.Equal(t, "product:2", *markup.InlineKeyboard[1][0].CallbackData)
}

func TestBotHandlesCallbacks(t *testing.T) {
	t.Parallel()

	sender := &recordingSender{}
	handler := &recordingHandler{reply: dialogue.Reply{Text: "how many?"}}
	bot := NewBot(sender, handler, Config{SendRate: 1000, SendBurst: 10})

	runUpdates(t, bot, tgbotapi.Update{
		UpdateID: 2,
		CallbackQuery: &tgbotapi.CallbackQuery{
			ID:      "cb-1",
			Data:    "product:1",
			Message: &tgbotapi.Message{Chat: &tgbotapi.Chat{ID: 5}},
		},
	})

	require.Len(t, handler.inputs, 1)
	assert.Equal(t, dialogue.Input{ChatID: 5, Callback: "product:1"}, handler.inputs[0])
	assert.Equal(t, []string{"cb-1"}, sender.answered)

	sent := sender.messages()
	require.Len(t, sent, 1)
	assert.Nil(t, sent[0].ReplyMarkup)
}

func TestBotIgnoresOtherUpdates(t *testing.T) {
	t.Parallel()

	sender := &recordingSender{}
	handler := &recordingHandler{reply: dialogue.Reply{Text: "unused"}}
	bot := NewBot(sender, handler, Config{})

	runUpdates(t, bot,
		tgbotapi.Update{UpdateID: 3},
		tgbotapi.Update{UpdateID: 4, Message: &tgbotapi.Message{Chat: &tgbotapi.Chat{ID: 1}}},
		tgbotapi.Update{UpdateID: 5, CallbackQuery: &tgbotapi.CallbackQuery{ID: "orphan"}},
	)

	assert.Empty(t, handler.inputs)
	assert.Empty(t, sender.messages())
}

func TestBotHandlesChatsConcurrently(t *testing.T) {
	t.Parallel()

	sender := &recordingSender{}
	handler := &recordingHandler{reply: dialogue.Reply{Text: "ok"}}
	bot := NewBot(sender, handler, Config{SendRate: 10000, SendBurst: 100})

	updates := make([]tgbotapi.Update, 0, 20)
	for i := 0; i < 20; i++ {
		updates = append(updates, tgbotapi.Update{
			UpdateID: i,
			Message:  &tgbotapi.Message{Text: "hi", Chat: &tgbotapi.Chat{ID: int64(i)}},
		})
	}

	runUpdates(t, bot, updates...)

	assert.Len(t, sender.messages(), 20)
}

func TestSendTextHonoursCancellation(t *testing.T) {
	t.Parallel()

	sender := &recordingSender{}
	bot := NewBot(sender, &recordingHandler{}, Config{SendRate: 0.001, SendBurst: 1})

	require.NoError(t, bot.SendText(context.Background(), 1, "first"))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.Error(t, bot.SendText(ctx, 1, "second"))
	assert.Len(t, sender.messages(), 1)
}
